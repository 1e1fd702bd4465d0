package subst

import (
	"sync"
	"testing"

	"github.com/npillmayer/bijoy/cmap"
	"github.com/npillmayer/bijoy/internal/tracing"
)

func TestOrderMatters(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	m := cmap.MustFromRules("order",
		cmap.Rule{Pattern: "ab", Replacement: "X"},
		cmap.Rule{Pattern: "X", Replacement: "Y"},
		cmap.Rule{Pattern: "a", Replacement: "Z"},
	)
	pl := MustCompile(m)
	if out := pl.Apply("abab a"); out != "YY Z" {
		t.Errorf("expected 'YY Z', have %q", out)
	}
	reversed := cmap.MustFromRules("reversed",
		cmap.Rule{Pattern: "a", Replacement: "Z"},
		cmap.Rule{Pattern: "ab", Replacement: "X"},
		cmap.Rule{Pattern: "X", Replacement: "Y"},
	)
	if out := MustCompile(reversed).Apply("abab a"); out != "ZbZb Z" {
		t.Errorf("expected 'ZbZb Z', have %q", out)
	}
}

func TestSaturatesNonOverlapping(t *testing.T) {
	m := cmap.MustFromRules("sat", cmap.Rule{Pattern: "aa", Replacement: "b"})
	if out := MustCompile(m).Apply("aaaaa"); out != "bba" {
		t.Errorf("expected 'bba', have %q", out)
	}
}

func TestRegexpPatterns(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	m := cmap.MustFromRules("re",
		cmap.Rule{Pattern: `(?m)^‡`, Replacement: "†", Syntax: cmap.Regexp},
		cmap.Rule{Pattern: `(?m)র্$`, Replacement: "i&", Syntax: cmap.Regexp},
		cmap.Rule{Pattern: `([ক-হ])া`, Replacement: "${1}v", Syntax: cmap.Regexp},
		cmap.Rule{Pattern: `|`, Replacement: "।"}, // literal, not an empty alternation
	)
	pl := MustCompile(m)
	in := "‡K ‡K\n‡কা কর্\nকর্ |"
	out := pl.Apply(in)
	expected := "†K ‡K\n†কv কi&\nকর্ ।"
	if out != expected {
		t.Errorf("expected %q, have %q", expected, out)
	}
}

func TestCompileError(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	m := cmap.MustFromRules("bad", cmap.Rule{Pattern: "([", Replacement: "", Syntax: cmap.Regexp})
	if _, err := Compile(m); err == nil {
		t.Fatal("expected malformed pattern to fail compilation")
	}
	var c Cache
	_, err1 := c.Patterns(m)
	_, err2 := c.Patterns(m)
	if err1 == nil || err1 != err2 {
		t.Errorf("expected cache to remember compilation error, have %v / %v", err1, err2)
	}
}

func TestCacheCompilesOnce(t *testing.T) {
	m := cmap.MustFromRules("once", cmap.Rule{Pattern: "x", Replacement: "y"})
	var c Cache
	results := make([]*Patterns, 16)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.Patterns(m)
		}(i)
	}
	wg.Wait()
	for i, pl := range results {
		if pl == nil || pl != results[0] {
			t.Fatalf("expected all callers to share one pattern list, #%d differs", i)
		}
	}
	if out := results[0].Apply("xox"); out != "yoy" {
		t.Errorf("expected 'yoy', have %q", out)
	}
}

func TestEmptyInput(t *testing.T) {
	m := cmap.MustFromRules("e", cmap.Rule{Pattern: "x", Replacement: "y"})
	if out := MustCompile(m).Apply(""); out != "" {
		t.Errorf("expected empty output, have %q", out)
	}
}
