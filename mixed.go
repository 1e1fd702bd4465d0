package bijoy

import (
	"bufio"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// RunKind classifies a run of text for mixed-text conversion.
type RunKind int8

// Kinds of runs, as returned by ClassifyRun.
const (
	OtherRun   RunKind = iota // neither Bengali nor Bijoy, e.g. numbers
	SpaceRun                  // whitespace
	UnicodeRun                // contains Bengali Unicode characters
	BijoyRun                  // looks like Bijoy text
)

func (k RunKind) String() string {
	switch k {
	case SpaceRun:
		return "space"
	case UnicodeRun:
		return "unicode"
	case BijoyRun:
		return "bijoy"
	}
	return "other"
}

// Characters which are typical for Bijoy text. Latin letters count as
// Bijoy, as most Bijoy glyphs live on them.
var looksLikeBijoy = regexp.MustCompile(`[A-Za-z|†‡¶¡]`)

// runSpace is the whitespace separating runs: the Unicode White_Space
// characters without NEL (U+0085), plus the byte order mark U+FEFF.
var runSpace = rangetable.New(
	'\t', '\n', '\v', '\f', '\r', ' ', '\u00A0', '\u1680',
	'\u2000', '\u2001', '\u2002', '\u2003', '\u2004', '\u2005',
	'\u2006', '\u2007', '\u2008', '\u2009', '\u200A',
	'\u2028', '\u2029', '\u202F', '\u205F', '\u3000', '\uFEFF',
)

func isRunSpace(r rune) bool {
	return unicode.Is(runSpace, r)
}

// ClassifyRun tells what kind of text a run produced by ScanRuns is.
func ClassifyRun(run string) RunKind {
	switch {
	case strings.TrimFunc(run, isRunSpace) == "":
		return SpaceRun
	case IsUnicode(run):
		return UnicodeRun
	case looksLikeBijoy.MatchString(run):
		return BijoyRun
	}
	return OtherRun
}

// ScanRuns is a split function for a bufio.Scanner. It returns alternating
// runs of whitespace and non-whitespace. Whitespace is Unicode White_Space
// except NEL (U+0085), plus U+FEFF. Concatenating all tokens reproduces the
// input exactly.
func ScanRuns(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}
	if !atEOF && !utf8.FullRune(data) {
		return 0, nil, nil
	}
	first, _ := utf8.DecodeRune(data)
	space := isRunSpace(first)
	for i := 0; i < len(data); {
		if !atEOF && !utf8.FullRune(data[i:]) {
			break
		}
		r, w := utf8.DecodeRune(data[i:])
		if isRunSpace(r) != space {
			return i, data[:i], nil
		}
		i += w
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil // request more data
}

// Runs splits text into runs of whitespace and non-whitespace.
func Runs(text string) []string {
	var runs []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 1024), len(text)+utf8.UTFMax)
	scanner.Split(ScanRuns)
	for scanner.Scan() {
		runs = append(runs, scanner.Text())
	}
	if err := scanner.Err(); err != nil { // cannot happen for a string reader
		tracer().Errorf("bijoy: splitting text into runs: %v", err)
	}
	return runs
}

// ConvertMixed converts text in which Bijoy and Unicode may be mixed into
// Unicode. Every run of non-whitespace which looks like Bijoy is converted
// on its own; whitespace, Unicode runs and other runs are kept as they are.
func (c *Converter) ConvertMixed(text string) string {
	if text == "" {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, run := range Runs(text) {
		if ClassifyRun(run) == BijoyRun {
			b.WriteString(c.ToUnicode(run))
		} else {
			b.WriteString(run)
		}
	}
	return b.String()
}

// ConvertMixed converts mixed Bijoy/Unicode text to Unicode, using the
// default converter.
func ConvertMixed(text string) string {
	return Default().ConvertMixed(text)
}
