package bijoy

import (
	"strings"
	"sync"

	"github.com/npillmayer/bijoy/bangla"
	"github.com/npillmayer/bijoy/cmap"
	"github.com/npillmayer/bijoy/reorder"
	"github.com/npillmayer/bijoy/subst"
	"github.com/npillmayer/bijoy/tables"
	"github.com/pkg/errors"
)

// lineBreak matches a single line break. Go's multi-line anchors know only
// LF, so line boundaries are matched explicitly.
const lineBreak = `\r\n|[\r\n\x{2028}\x{2029}]`

// Fixed substitutions of the conversion pipeline. Other than the tables,
// these are part of the algorithm.
var (
	// Unicode input is brought into the shape the Unicode→Bijoy table
	// expects: nukta forms are precomposed, two-part vowel signs are split
	// and the RA of a ra-fola+ya-fola sequence is kept from becoming a reph.
	unicodeInputFixes = subst.MustCompile(cmap.MustFromRules("unicode-input-fixes",
		cmap.Rule{Pattern: "\u09AC\u09BC", Replacement: "\u09B0"}, // ba+nukta
		cmap.Rule{Pattern: "\u09A1\u09BC", Replacement: "\u09DC"}, // dda+nukta
		cmap.Rule{Pattern: "\u09A2\u09BC", Replacement: "\u09DD"}, // ddha+nukta
		cmap.Rule{Pattern: "\u09AF\u09BC", Replacement: "\u09DF"}, // ya+nukta
		cmap.Rule{Pattern: "\u09CB", Replacement: "\u09C7\u09BE"}, // o-kar
		cmap.Rule{Pattern: "\u09CC", Replacement: "\u09C7\u09D7"}, // au-kar
		cmap.Rule{Pattern: "\u09CD\u09B0\u09CD\u09AF", Replacement: "\u09CD\u09B0\u200D\u09CD\u09AF"},
	))

	// RA+halant at the end of a line is not a reph. Bijoy writes it as RA
	// followed by the explicit halant glyph. Lines end at CR, LF, CRLF and
	// the Unicode line and paragraph separators.
	lineEndReph = subst.MustCompile(cmap.MustFromRules("line-end-reph",
		cmap.Rule{Pattern: `র্\x{200C}?(` + lineBreak + `|$)`, Replacement: "i&${1}", Syntax: cmap.Regexp},
	))

	// Bijoy has separate glyphs for e-kar and ai-kar at the start of a line
	// and after an opening bracket or quote.
	bijoyContextFixes = subst.MustCompile(cmap.MustFromRules("bijoy-context-fixes",
		cmap.Rule{Pattern: "(^|" + lineBreak + ")‡", Replacement: "${1}†", Syntax: cmap.Regexp},
		cmap.Rule{Pattern: "(^|" + lineBreak + ")‰", Replacement: "${1}ˆ", Syntax: cmap.Regexp},
		cmap.Rule{Pattern: "(‡", Replacement: "(†"},
		cmap.Rule{Pattern: "[‡", Replacement: "[†"},
		cmap.Rule{Pattern: "Ô‡", Replacement: "Ô†"},
		cmap.Rule{Pattern: "Ò‡", Replacement: "Ò†"},
		cmap.Rule{Pattern: "(‰", Replacement: "(ˆ"},
		cmap.Rule{Pattern: "[‰", Replacement: "[ˆ"},
		cmap.Rule{Pattern: "Ô‰", Replacement: "Ôˆ"},
		cmap.Rule{Pattern: "Ò‰", Replacement: "Òˆ"},
	))

	// Bijoy has no glyph for the independent vowel আ; it is typed as অ
	// followed by aa-kar.
	unicodeOutputFixes = subst.MustCompile(cmap.MustFromRules("unicode-output-fixes",
		cmap.Rule{Pattern: "\u0985\u09BE", Replacement: "\u0986"}, // অা → আ
	))
)

// Converter converts between Bijoy and Unicode, driven by a set of
// conversion maps. A Converter is safe for concurrent use.
type Converter struct {
	bijoyRepair    *subst.Patterns
	bijoyToUnicode *subst.Patterns
	unicodeRepair  *subst.Patterns
	unicodeToBijoy *subst.Patterns
	bijoyKar       *subst.Patterns
	bijoyRaFola    *subst.Patterns
}

// New creates a converter for the conversion maps of reg. reg has to provide
// all maps named in cmap.RequiredMaps. Maps are compiled eagerly; a map
// which does not compile is reported as an error.
func New(reg *cmap.Registry) (*Converter, error) {
	if reg == nil {
		return nil, errors.New("bijoy: converter needs a registry of conversion maps")
	}
	if err := reg.Validate(); err != nil {
		return nil, errors.Wrap(err, "bijoy")
	}
	c := &Converter{}
	slots := []struct {
		name string
		p    **subst.Patterns
	}{
		{cmap.BijoyRepair, &c.bijoyRepair},
		{cmap.BijoyToUnicode, &c.bijoyToUnicode},
		{cmap.UnicodeRepair, &c.unicodeRepair},
		{cmap.UnicodeToBijoy, &c.unicodeToBijoy},
		{cmap.BijoyKar, &c.bijoyKar},
		{cmap.BijoyRaFola, &c.bijoyRaFola},
	}
	for _, slot := range slots {
		m, _ := reg.Map(slot.name)
		p, err := subst.For(m)
		if err != nil {
			return nil, errors.Wrapf(err, "bijoy: conversion map %s", slot.name)
		}
		*slot.p = p
	}
	return c, nil
}

var defaultConverter struct {
	once sync.Once
	conv *Converter
}

// Default returns the converter for the embedded conversion tables. It is
// created on first use. Default panics if the embedded tables are broken.
func Default() *Converter {
	defaultConverter.once.Do(func() {
		reg, err := tables.Default()
		if err != nil {
			panic(errors.Wrap(err, "bijoy: embedded conversion tables"))
		}
		if defaultConverter.conv, err = New(reg); err != nil {
			panic(err)
		}
		tracer().Debugf("bijoy: default converter ready")
	})
	return defaultConverter.conv
}

// ToUnicode converts Bijoy text to Unicode. Text which already contains
// Bengali Unicode characters is returned unchanged.
func (c *Converter) ToUnicode(text string) string {
	if text == "" || IsUnicode(text) {
		return text
	}
	s := c.bijoyRepair.Apply(text)
	s = c.bijoyToUnicode.Apply(s)
	s = c.unicodeRepair.Apply(s)
	s = reorder.ToLogical(s)
	return unicodeOutputFixes.Apply(s)
}

// ToBijoy converts Unicode text to Bijoy. Characters without a Bijoy glyph
// are left as they are.
func (c *Converter) ToBijoy(text string) string {
	if text == "" {
		return text
	}
	s := unicodeInputFixes.Apply(text)
	s = lineEndReph.Apply(s)
	s = reorder.ToVisual(s)
	s = c.unicodeToBijoy.Apply(s)
	s = bijoyContextFixes.Apply(s)
	s = c.bijoyKar.Apply(s)
	return c.bijoyRaFola.Apply(s)
}

// IsUnicode reports whether text contains at least one character of the
// Bengali Unicode block.
func IsUnicode(text string) bool {
	return strings.IndexFunc(text, bangla.IsBengali) >= 0
}

// ToUnicode converts Bijoy text to Unicode, using the default converter.
func ToUnicode(text string) string {
	return Default().ToUnicode(text)
}

// ToBijoy converts Unicode text to Bijoy, using the default converter.
func ToBijoy(text string) string {
	return Default().ToBijoy(text)
}
