/*
Package subst applies conversion maps to text.

A conversion map is compiled into a list of patterns once. Applying the
pattern list to a text runs the patterns strictly in map order; each
pattern replaces all of its non-overlapping matches, left to right, before
the next pattern gets its turn.

Compilation may fail for malformed regular expressions. This is a fault of
the conversion table, reported once when the map is compiled. Applying a
compiled pattern list never fails.
*/
package subst

import (
	"regexp"
	"strings"
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

type pattern struct {
	literal     string
	re          *regexp.Regexp // nil for literal patterns
	replacement string
}

func (p pattern) apply(s string) string {
	if p.re != nil {
		return p.re.ReplaceAllString(s, p.replacement)
	}
	return strings.ReplaceAll(s, p.literal, p.replacement)
}

// Patterns is a compiled conversion map. It is immutable and may be shared
// between goroutines.
type Patterns struct {
	name     string
	patterns []pattern
}

// Compile builds the pattern list for a conversion map.
func Compile(m *cmap.Map) (*Patterns, error) {
	if m == nil {
		return nil, errors.New("cannot compile nil conversion map")
	}
	pl := &Patterns{name: m.Name, patterns: make([]pattern, 0, m.Len())}
	for i, rule := range m.Rules() {
		p := pattern{literal: rule.Pattern, replacement: rule.Replacement}
		if rule.Syntax == cmap.Regexp {
			re, err := regexp.Compile(rule.Pattern)
			if err != nil {
				return nil, errors.Wrapf(err, "conversion map %s, rule #%d", m.Name, i+1)
			}
			p.re = re
		}
		pl.patterns = append(pl.patterns, p)
	}
	tracer().Debugf("compiled conversion map %s into %d patterns", m.Name, len(pl.patterns))
	return pl, nil
}

// MustCompile is like Compile, but panics on errors.
func MustCompile(m *cmap.Map) *Patterns {
	pl, err := Compile(m)
	if err != nil {
		panic(err.Error())
	}
	return pl
}

// Apply runs all patterns over s, in order.
func (pl *Patterns) Apply(s string) string {
	if pl == nil || s == "" {
		return s
	}
	for _, p := range pl.patterns {
		s = p.apply(s)
	}
	return s
}

// Len is the number of patterns in pl.
func (pl *Patterns) Len() int {
	return len(pl.patterns)
}

// Name is the name of the conversion map pl has been compiled from.
func (pl *Patterns) Name() string {
	return pl.name
}

// --- Cache -----------------------------------------------------------------

// Cache compiles each conversion map at most once. A Cache is safe for
// concurrent use; the zero value is ready to use.
type Cache struct {
	mx      sync.Mutex
	entries map[*cmap.Map]*cacheEntry
}

type cacheEntry struct {
	once     sync.Once
	patterns *Patterns
	err      error
}

// Patterns returns the compiled pattern list for m, compiling it on first use.
// A compilation error is remembered and returned for every subsequent call.
func (c *Cache) Patterns(m *cmap.Map) (*Patterns, error) {
	c.mx.Lock()
	if c.entries == nil {
		c.entries = make(map[*cmap.Map]*cacheEntry)
	}
	e, ok := c.entries[m]
	if !ok {
		e = &cacheEntry{}
		c.entries[m] = e
	}
	c.mx.Unlock()
	e.once.Do(func() {
		e.patterns, e.err = Compile(m)
		if e.err != nil {
			tracer().Errorf("%v", e.err)
		}
	})
	return e.patterns, e.err
}

var globalCache Cache

// For returns the compiled pattern list for m from a process-wide cache.
func For(m *cmap.Map) (*Patterns, error) {
	return globalCache.Patterns(m)
}
