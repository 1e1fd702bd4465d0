/*
Package cmap holds conversion maps: ordered lists of pattern/replacement
rules, which drive the substitution passes of a conversion.

The order of rules within a map is significant. Later rules may match text
produced by earlier ones, therefore rules are kept in exactly the order in
which they have been added (or read from a table document). Patterns are
unique within a map.

Conversion maps are built once, usually by package tables, and are
read-only thereafter. They are safe for concurrent use by multiple readers.
*/
package cmap

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/bijoy/internal/tracing"
	"github.com/pkg/errors"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return tracing.Tracer()
}

// Syntax tells how the pattern of a rule is to be interpreted.
type Syntax int8

// Literal patterns match themselves, Regexp patterns are RE2 regular
// expressions (see package regexp).
const (
	Literal Syntax = iota
	Regexp
)

func (s Syntax) String() string {
	switch s {
	case Literal:
		return "literal"
	case Regexp:
		return "regexp"
	}
	return fmt.Sprintf("Syntax(%d)", int(s))
}

// ParseSyntax returns the syntax for a name as used in table documents.
func ParseSyntax(name string) (Syntax, error) {
	switch name {
	case "literal", "lit":
		return Literal, nil
	case "regexp", "re":
		return Regexp, nil
	}
	return Literal, errors.Errorf("unknown pattern syntax %q", name)
}

// Rule is a single substitution: every match of Pattern is replaced by
// Replacement. For regular expressions, Replacement may refer to submatches
// with $1, ${name} etc.
type Rule struct {
	Pattern     string
	Replacement string
	Syntax      Syntax
}

func (r Rule) String() string {
	return fmt.Sprintf("[%s %q→%q]", r.Syntax, r.Pattern, r.Replacement)
}

// Map is an ordered collection of rules with unique patterns.
type Map struct {
	Name  string
	rules *linkedhashmap.Map // pattern → Rule, in insertion order
}

// NewMap creates an empty conversion map.
func NewMap(name string) *Map {
	return &Map{
		Name:  name,
		rules: linkedhashmap.New(),
	}
}

// FromRules creates a conversion map from a list of rules, keeping their order.
func FromRules(name string, rules ...Rule) (*Map, error) {
	m := NewMap(name)
	for _, r := range rules {
		if err := m.Add(r); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustFromRules is like FromRules, but panics on duplicate patterns.
// It is meant for maps defined in source code.
func MustFromRules(name string, rules ...Rule) *Map {
	m, err := FromRules(name, rules...)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// Add appends a rule at the end of m. Empty patterns and patterns already
// present in m are rejected.
func (m *Map) Add(r Rule) error {
	if r.Pattern == "" {
		return errors.Errorf("conversion map %s: empty pattern", m.Name)
	}
	if _, found := m.rules.Get(r.Pattern); found {
		return errors.Errorf("conversion map %s: duplicate pattern %q", m.Name, r.Pattern)
	}
	m.rules.Put(r.Pattern, r)
	return nil
}

// Len returns the number of rules in m.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.rules.Size()
}

// Lookup returns the rule for a pattern.
func (m *Map) Lookup(pattern string) (Rule, bool) {
	v, found := m.rules.Get(pattern)
	if !found {
		return Rule{}, false
	}
	return v.(Rule), true
}

// Rules returns the rules of m in order.
func (m *Map) Rules() []Rule {
	if m == nil {
		return nil
	}
	rules := make([]Rule, 0, m.rules.Size())
	it := m.rules.Iterator()
	for it.Next() {
		rules = append(rules, it.Value().(Rule))
	}
	return rules
}

func (m *Map) String() string {
	return fmt.Sprintf("cmap[%s: %d rules]", m.Name, m.Len())
}
