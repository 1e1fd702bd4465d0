package bijoy

import (
	"io/ioutil"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/npillmayer/bijoy/internal/tracing"
	"golang.org/x/text/transform"
)

func TestDecoder(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	in := "Avgvi\nআমার evsjv\n†mvbv"
	out, _, err := transform.String(NewDecoder(), in)
	if err != nil {
		t.Fatal(err)
	}
	// the second line contains Unicode and is left alone
	if expected := "আমার\nআমার evsjv\nসোনা"; out != expected {
		t.Errorf("expected %q, have %q", expected, out)
	}
}

func TestDecoderReader(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	r := transform.NewReader(iotest.OneByteReader(strings.NewReader("Avgvi\r\n†mvbv\n")), NewDecoder())
	b, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if expected := "আমার\r\nসোনা\n"; string(b) != expected {
		t.Errorf("expected %q, have %q", expected, string(b))
	}
}

func TestDecoderShortDst(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	tr := NewDecoder()
	src := []byte("Avgvi\n†mvbv")
	dst := make([]byte, 5)
	var out []byte
	for i := 0; i < 100; i++ {
		nDst, nSrc, err := tr.Transform(dst, src, true)
		out = append(out, dst[:nDst]...)
		src = src[nSrc:]
		if err == nil {
			break
		}
		if err != transform.ErrShortDst {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if expected := "আমার\nসোনা"; string(out) != expected {
		t.Errorf("expected %q, have %q", expected, string(out))
	}
}

func TestEncoder(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	out, _, err := transform.String(NewEncoder(), "সে\nআমার")
	if err != nil {
		t.Fatal(err)
	}
	if expected := "†m\nAvgvi"; out != expected {
		t.Errorf("expected %q, have %q", expected, out)
	}
}
