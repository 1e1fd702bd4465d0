package main

import (
	"bytes"
	"strings"
	"testing"
)

func run(stdin string, args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	conf := &Config{
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &errOut,
	}
	code := Cmd(conf, args...)
	return code, out.String(), errOut.String()
}

func TestUnicodeArgs(t *testing.T) {
	code, out, _ := run("", "unicode", "Avgvi", "†mvbvi", "evsjv")
	if code != 0 {
		t.Fatalf("expected exit code 0, have %d", code)
	}
	if out != "আমার সোনার বাংলা\n" {
		t.Errorf("expected আমার সোনার বাংলা, have %q", out)
	}
}

func TestUnicodeStdin(t *testing.T) {
	code, out, _ := run("Avgvi\n†mvbv\n", "unicode")
	if code != 0 {
		t.Fatalf("expected exit code 0, have %d", code)
	}
	if out != "আমার\nসোনা\n" {
		t.Errorf("expected আমার\\nসোনা\\n, have %q", out)
	}
}

func TestUnicodeLegacyStdin(t *testing.T) {
	code, out, _ := run(string([]byte{0x86, 'm', 'v', 'b', 'v'}), "unicode", "-legacy")
	if code != 0 {
		t.Fatalf("expected exit code 0, have %d", code)
	}
	if out != "সোনা" {
		t.Errorf("expected সোনা, have %q", out)
	}
}

func TestBijoy(t *testing.T) {
	code, out, _ := run("", "bijoy", "ধর্ম")
	if code != 0 || out != "ag©\n" {
		t.Errorf("expected ag©, have %q (exit code %d)", out, code)
	}
	code, out, _ = run("সে\nআমার\n", "bijoy")
	if code != 0 || out != "†m\nAvgvi\n" {
		t.Errorf("expected †m\\nAvgvi\\n, have %q (exit code %d)", out, code)
	}
}

func TestBijoyLegacy(t *testing.T) {
	code, out, _ := run("", "bijoy", "-legacy", "সোনা")
	if code != 0 {
		t.Fatalf("expected exit code 0, have %d", code)
	}
	if expected := string([]byte{0x86, 'm', 'v', 'b', 'v', '\n'}); out != expected {
		t.Errorf("expected % x, have % x", expected, out)
	}
	code, out, _ = run("সোনা", "bijoy", "-legacy")
	if expected := string([]byte{0x86, 'm', 'v', 'b', 'v'}); code != 0 || out != expected {
		t.Errorf("expected % x, have % x (exit code %d)", expected, out, code)
	}
}

func TestMixed(t *testing.T) {
	code, out, _ := run("Avgvi আমার 2024", "mixed")
	if code != 0 || out != "আমার আমার 2024" {
		t.Errorf("expected আমার আমার 2024, have %q (exit code %d)", out, code)
	}
}

func TestDetect(t *testing.T) {
	if _, out, _ := run("", "detect", "আমার"); out != "unicode\n" {
		t.Errorf("expected unicode, have %q", out)
	}
	if _, out, _ := run("Avgvi", "detect"); out != "not unicode\n" {
		t.Errorf("expected not unicode, have %q", out)
	}
}

func TestTokens(t *testing.T) {
	code, out, _ := run("", "tokens", "Avgvi", "2024")
	if code != 0 {
		t.Fatalf("expected exit code 0, have %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 runs, have %q", out)
	}
	if f := strings.Fields(lines[1]); len(f) != 3 || f[1] != "bijoy" || f[2] != "আমার" {
		t.Errorf("unexpected row for Bijoy run: %q", lines[1])
	}
	if f := strings.Fields(lines[2]); len(f) != 3 || f[1] != "other" {
		t.Errorf("unexpected row for number run: %q", lines[2])
	}
}

func TestVersion(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"-v"}, {"unicode", "--version"}} {
		if _, out, _ := run("", args...); out != "bijoy v"+Version+"\n" {
			t.Errorf("%v: expected version, have %q", args, out)
		}
	}
}

func TestBadFlag(t *testing.T) {
	code, _, errOut := run("", "unicode", "-nonsense")
	if code != 1 {
		t.Errorf("expected exit code 1, have %d", code)
	}
	if !strings.Contains(errOut, "Usage: bijoy unicode") {
		t.Errorf("expected usage on stderr, have %q", errOut)
	}
}

func TestUsage(t *testing.T) {
	help := newServeCmd(nil, nil).Help()
	for _, s := range []string{"Usage: bijoy serve", "-addr", "-trace=error"} {
		if !strings.Contains(help, s) {
			t.Errorf("expected help to contain %q", s)
		}
	}
}
