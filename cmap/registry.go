package cmap

import (
	"sort"

	"github.com/pkg/errors"
)

// Names of the conversion maps a Bijoy converter requires.
const (
	BijoyRepair    = "bijoy-repair"     // repairs legacy text before glyph substitution
	BijoyToUnicode = "bijoy-to-unicode" // Bijoy glyphs → Unicode code-points
	UnicodeRepair  = "unicode-repair"   // repairs after Bijoy→Unicode substitution
	UnicodeToBijoy = "unicode-to-bijoy" // Unicode code-points → Bijoy glyphs
	BijoyKar       = "bijoy-kar"        // kar fixes after Unicode→Bijoy substitution
	BijoyRaFola    = "bijoy-rafola"     // ra-fola fixes after Unicode→Bijoy substitution
)

// RequiredMaps lists the map names a Registry must provide for conversion.
var RequiredMaps = []string{
	BijoyRepair, BijoyToUnicode, UnicodeRepair, UnicodeToBijoy, BijoyKar, BijoyRaFola,
}

// Registry is a read-only collection of conversion maps, addressed by name.
type Registry struct {
	maps map[string]*Map
}

// NewRegistry creates a registry from a set of maps. Map names must be unique.
func NewRegistry(maps ...*Map) (*Registry, error) {
	reg := &Registry{maps: make(map[string]*Map, len(maps))}
	for _, m := range maps {
		if m == nil {
			return nil, errors.New("registry: cannot register nil map")
		}
		if _, exists := reg.maps[m.Name]; exists {
			return nil, errors.Errorf("registry: duplicate conversion map %s", m.Name)
		}
		reg.maps[m.Name] = m
	}
	return reg, nil
}

// Map returns the conversion map for a name.
func (reg *Registry) Map(name string) (*Map, bool) {
	m, ok := reg.maps[name]
	return m, ok
}

// Names returns the names of all maps in reg, sorted.
func (reg *Registry) Names() []string {
	names := make([]string, 0, len(reg.maps))
	for n := range reg.maps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Validate checks that all maps of RequiredMaps are present.
func (reg *Registry) Validate() error {
	for _, name := range RequiredMaps {
		if _, ok := reg.maps[name]; !ok {
			return errors.Errorf("registry: missing conversion map %s", name)
		}
	}
	return nil
}
