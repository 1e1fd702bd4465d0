/*
Package tables provides the conversion tables for Bijoy ⇄ Unicode
conversion.

Tables are JSON documents, embedded into the binary at build time. Each
document describes one conversion map (see package cmap for the format).
The set of tables is

	bijoy-repair       repairs of sloppy Bijoy input (regexp)
	bijoy-to-unicode   Bijoy glyphs to Unicode code-points
	unicode-repair     repairs of the substituted Unicode text
	unicode-to-bijoy   Unicode code-points to Bijoy glyphs
	bijoy-kar          kar glyph fixes of Bijoy output (regexp)
	bijoy-rafola       ra-fola ligatures of Bijoy output (regexp)

Applications may bring their own tables by loading them with cmap.Load
and assembling a cmap.Registry; the embedded set is what the default
converter uses.
*/
package tables

import (
	"embed"
	"io/fs"
	"path"
	"sync"

	"github.com/npillmayer/bijoy/cmap"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

//go:embed *.json
var files embed.FS

// FS returns the embedded table documents.
func FS() fs.FS {
	return files
}

// Load parses every embedded table document and returns a validated
// registry of conversion maps.
func Load() (*cmap.Registry, error) {
	return LoadFS(files)
}

// LoadFS parses every *.json file at the top level of fsys into a conversion
// map and returns a registry of these maps. The registry is validated to
// contain all maps a converter requires.
func LoadFS(fsys fs.FS) (*cmap.Registry, error) {
	names, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, errors.Wrap(err, "tables")
	}
	maps := make([]*cmap.Map, 0, len(names))
	for _, name := range names {
		doc, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Wrapf(err, "tables: cannot read %s", name)
		}
		m, err := cmap.Parse(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "tables: %s", name)
		}
		if base := name[:len(name)-len(path.Ext(name))]; base != m.Name {
			tracer().Infof("tables: file %s holds conversion map %s", name, m.Name)
		}
		maps = append(maps, m)
	}
	reg, err := cmap.NewRegistry(maps...)
	if err != nil {
		return nil, err
	}
	if err = reg.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("tables: loaded %d conversion maps", len(maps))
	return reg, nil
}

var defaultRegistry struct {
	once sync.Once
	reg  *cmap.Registry
	err  error
}

// Default returns the registry of the embedded tables. Tables are parsed
// on first call only.
func Default() (*cmap.Registry, error) {
	defaultRegistry.once.Do(func() {
		defaultRegistry.reg, defaultRegistry.err = Load()
	})
	return defaultRegistry.reg, defaultRegistry.err
}
