package bijoy

import (
	"sync"
	"testing"

	"github.com/npillmayer/bijoy/cmap"
	"github.com/npillmayer/bijoy/internal/tracing"
)

func TestToUnicode(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	tests := []struct{ in, out string }{
		{"", ""},
		{"Avgvi †mvbvi evsjv", "আমার সোনার বাংলা"},
		{"Rbve †gvt b~iæj Avwgb", "জনাব মোঃ নূরুল আমিন"},
		{"Avwg evsjvq Mvb MvB|", "আমি বাংলায় গান গাই।"},
		{"ag©", "ধর্ম"},    // reph behind a single consonant
		{"Kvh©", "কার্য"},  // reph behind a consonant following a kar
		{"egv©", "বর্মা"},  // reph behind consonant+kar
		{"†¶Î", "ক্ষেত্র"}, // e-kar in front of a conjunct
		{"‡KŠkj", "কৌশল"},  // e-kar + au length mark
		{"¸iæ", "গুরু"},    // kar ligatures
		{"wKš‘", "কিন্তু"}, // i-kar
		{"wwK", "কি"},      // repaired double i-kar
		{"a‡g©i", "ধর্মের"},
		{"ÔwKš‘Õ", "‘কিন্তু’"},
		{"2024", "২০২৪"}, // digits
		{"আমার", "আমার"}, // Unicode is not touched
		{"abc আমার", "abc আমার"},
	}
	for i, test := range tests {
		if out := ToUnicode(test.in); out != test.out {
			t.Errorf("test #%d: ToUnicode(%q): expected %q, have %q", i, test.in, test.out, out)
		}
	}
}

func TestToBijoy(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	tests := []struct{ in, out string }{
		{"", ""},
		{"আমার সোনার বাংলা", "Avgvi ‡mvbvi evsjv"},
		{"সোনা", "†mvbv"}, // e-kar at the start of a line
		{"সে\nসে", "†m\n†m"},
		{"(সে)", "(†m)"}, // e-kar after an opening bracket
		{"জনাব মোঃ নূরুল আমিন", "Rbve ‡gvt b~iæj Avwgb"},
		{"ধর্ম", "ag©"},
		{"কার্য", "Kvh©"},
		{"ক্ষেত্র", "†¶Î"},
		{"কৌশল", "†KŠkj"},
		{"গুরু", "¸iæ"},
		{"কিন্তু", "wKš‘"},
		{"‘কিন্তু’", "ÔwKš‘Õ"}, // quote glyphs are not taken from ligatures
		{"ধর্মের", "a‡g©i"},    // reph in front of RA is no ra-fola
		{"কর্", "Ki&"},         // RA+halant at the end of a line is no reph
		{"কর্\rকর্", "Ki&\rKi&"},
		{"কর্\r\nসে", "Ki&\r\n†m"},
		{"কর্\u2028সে\u2029সে", "Ki&\u2028†m\u2029†m"},
		{"সে\rসে", "†m\r†m"},
		{"২০২৪", "2024"},
		{"abc", "abc"},
	}
	for i, test := range tests {
		if out := ToBijoy(test.in); out != test.out {
			t.Errorf("test #%d: ToBijoy(%q): expected %q, have %q", i, test.in, test.out, out)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	for _, text := range []string{
		"আমার সোনার বাংলা",
		"জনাব মোঃ নূরুল আমিন",
		"ধর্ম", "কার্য", "বর্মা", "র্কি",
		"ক্ষেত্র", "কৌশল", "গুরু", "কিন্তু",
		"ধর্মের", "‘কিন্তু’",
	} {
		b := ToBijoy(text)
		if u := ToUnicode(b); u != text {
			t.Errorf("round trip of %q failed: Bijoy %q, back %q", text, b, u)
		}
	}
}

func TestBijoyRoundTrip(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	for _, text := range []string{
		"Avgvi ‡mvbvi evsjv",
		"Rbve ‡gvt b~iæj Avwgb",
		"ag©", "Kvh©", "a‡g©i",
		"†¶Î", "†KŠkj", "¸iæ",
		"wKš‘", "ÔwKš‘Õ",
	} {
		u := ToUnicode(text)
		if b := ToBijoy(u); b != text {
			t.Errorf("round trip of %q failed: Unicode %q, back %q", text, u, b)
		}
	}
}

func TestIdempotence(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	u := ToUnicode("Avgvi †mvbvi evsjv")
	if uu := ToUnicode(u); uu != u {
		t.Errorf("expected ToUnicode to leave Unicode text alone, have %q", uu)
	}
}

func TestIsUnicode(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	tests := []struct {
		in  string
		out bool
	}{
		{"", false},
		{"Avgvi", false},
		{"hello, world", false},
		{"আমার", true},
		{"Avgvi ক", true},
		{"ঀ", true},
		{"৿", true},
		{"਀", false},
	}
	for i, test := range tests {
		if out := IsUnicode(test.in); out != test.out {
			t.Errorf("test #%d: IsUnicode(%q): expected %v", i, test.in, test.out)
		}
	}
}

func TestNewConverter(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	if _, err := New(nil); err == nil {
		t.Errorf("expected converter without registry to fail")
	}
	reg, err := cmap.NewRegistry(cmap.MustFromRules(cmap.BijoyToUnicode,
		cmap.Rule{Pattern: "K", Replacement: "ক"}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(reg); err == nil {
		t.Errorf("expected converter for incomplete registry to fail")
	}
}

func TestConverterWithCustomTables(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	empty := func(name string) *cmap.Map { return cmap.NewMap(name) }
	reg, err := cmap.NewRegistry(
		empty(cmap.BijoyRepair),
		cmap.MustFromRules(cmap.BijoyToUnicode,
			cmap.Rule{Pattern: "K", Replacement: "ক"},
			cmap.Rule{Pattern: "w", Replacement: "ি"},
		),
		empty(cmap.UnicodeRepair),
		cmap.MustFromRules(cmap.UnicodeToBijoy,
			cmap.Rule{Pattern: "ক", Replacement: "K"},
			cmap.Rule{Pattern: "ি", Replacement: "w"},
		),
		empty(cmap.BijoyKar),
		empty(cmap.BijoyRaFola),
	)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(reg)
	if err != nil {
		t.Fatal(err)
	}
	if u := c.ToUnicode("wK"); u != "কি" {
		t.Errorf("expected কি, have %q", u)
	}
	if b := c.ToBijoy("কি"); b != "wK" {
		t.Errorf("expected wK, have %q", b)
	}
}

func TestBrokenTable(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	maps := make([]*cmap.Map, 0, len(cmap.RequiredMaps))
	for _, name := range cmap.RequiredMaps {
		m := cmap.NewMap(name)
		if name == cmap.BijoyKar {
			m = cmap.MustFromRules(name, cmap.Rule{Pattern: "(", Replacement: "", Syntax: cmap.Regexp})
		}
		maps = append(maps, m)
	}
	reg, err := cmap.NewRegistry(maps...)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(reg); err == nil {
		t.Errorf("expected malformed regular expression to be reported")
	}
}

func TestConcurrentConversion(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if u := ToUnicode("Avgvi †mvbvi evsjv"); u != "আমার সোনার বাংলা" {
					errs <- u
					return
				}
				if b := ToBijoy("ক্ষেত্র"); b != "†¶Î" {
					errs <- b
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Errorf("unexpected result under concurrency: %q", e)
	}
}
