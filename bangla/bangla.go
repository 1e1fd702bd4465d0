package bangla

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Code-points the reordering rules refer to by name.
const (
	Halant       rune = '্'      // U+09CD virama
	Ra           rune = 'র'      // U+09B0
	EKar         rune = 'ে'      // U+09C7 e-kar
	AKar         rune = 'া'      // U+09BE aa-kar
	AuLengthMark rune = 'ৗ'      // U+09D7
	OKar         rune = 'ো'      // U+09CB o-kar
	AuKar        rune = 'ৌ'      // U+09CC au-kar
	Chandrabindu rune = 'ঁ'      // U+0981
	Anusvara     rune = 'ং'      // U+0982
	Visarga      rune = 'ঃ'      // U+0983
	KhandaTa     rune = 'ৎ'      // U+09CE
	ZWNJ         rune = '\u200C' // zero width non-joiner
	ZWJ          rune = '\u200D' // zero width joiner
)

// Class is the type for the code-point classes of package bangla.
type Class int8

// Code-point classes, in order of priority for ClassForRune.
const (
	Other Class = iota
	HalantClass
	PreKarClass
	PostKarClass
	NuktaClass
	ConsonantClass
	SpaceClass
)

var classNames = [...]string{"Other", "Halant", "PreKar", "PostKar", "Nukta", "Consonant", "Space"}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Range tables for the classes.
var (
	PreKar  = rangetable.New('ি', 'ৈ', EKar) // ি ৈ ে
	PostKar = rangetable.New(AKar, OKar, AuKar, AuLengthMark,
		'ু', 'ূ', 'ী', 'ৃ') // া ো ৌ ৗ ু ূ ী ৃ
	Nukta     = rangetable.New(Anusvara, Visarga, Chandrabindu)
	Consonant = rangetable.Merge(
		&unicode.RangeTable{
			R16: []unicode.Range16{
				{0x0995, 0x09B9, 1}, // ক … হ
				{0x09DC, 0x09DF, 1}, // ড় … য়
			},
		},
		rangetable.New(Anusvara, Visarga, Chandrabindu, KhandaTa),
	)
	Space = rangetable.New(' ', '\t', '\n', '\r')
)

// Bengali is the Unicode block of the Bengali script, U+0980…U+09FF.
var Bengali = &unicode.RangeTable{
	R16: []unicode.Range16{{0x0980, 0x09FF, 1}},
}

// IsHalant is true for the Bengali sign virama (hasanta).
func IsHalant(r rune) bool {
	return r == Halant
}

// IsPreKar is true for vowel signs written before their consonant.
func IsPreKar(r rune) bool {
	return unicode.Is(PreKar, r)
}

// IsPostKar is true for vowel signs written after their consonant.
func IsPostKar(r rune) bool {
	return unicode.Is(PostKar, r)
}

// IsKar is true for any vowel sign known to the reordering rules.
func IsKar(r rune) bool {
	return IsPreKar(r) || IsPostKar(r)
}

// IsNukta is true for anusvara, visarga and chandrabindu.
func IsNukta(r rune) bool {
	return unicode.Is(Nukta, r)
}

// IsConsonant is true for Bengali consonants, including the nukta forms
// ড় ঢ় য়, khanda ta and the three diacritic signs.
func IsConsonant(r rune) bool {
	return unicode.Is(Consonant, r)
}

// IsSpace is true for blank, tab, newline and carriage return.
func IsSpace(r rune) bool {
	return unicode.Is(Space, r)
}

// IsBengali is true for code-points of the Bengali Unicode block.
func IsBengali(r rune) bool {
	return unicode.Is(Bengali, r)
}

// ClassForRune returns the class of a code-point. Where predicates overlap,
// the class with the lower number wins.
func ClassForRune(r rune) Class {
	switch {
	case IsHalant(r):
		return HalantClass
	case IsPreKar(r):
		return PreKarClass
	case IsPostKar(r):
		return PostKarClass
	case IsNukta(r):
		return NuktaClass
	case IsConsonant(r):
		return ConsonantClass
	case IsSpace(r):
		return SpaceClass
	}
	return Other
}
