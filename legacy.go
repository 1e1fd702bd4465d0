package bijoy

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Bijoy documents are 8-bit text. The glyph code-points of Bijoy fonts are
// those of Windows-1252, which differs from Latin-1 in 0x80…0x9F, where
// Bijoy keeps e.g. † ‡ ˆ ‰ Š.
var legacy = charmap.Windows1252

// DecodeLegacy converts Bijoy text stored as Windows-1252 bytes to Unicode.
func (c *Converter) DecodeLegacy(b []byte) (string, error) {
	s, err := legacy.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrap(err, "bijoy: cannot decode Windows-1252 input")
	}
	return c.ToUnicode(string(s)), nil
}

// EncodeLegacy converts Unicode text to Bijoy and returns it as
// Windows-1252 bytes. Characters which remain after conversion and have no
// Windows-1252 code-point cause an error.
func (c *Converter) EncodeLegacy(text string) ([]byte, error) {
	b, err := legacy.NewEncoder().String(c.ToBijoy(text))
	if err != nil {
		return nil, errors.Wrap(err, "bijoy: text not representable in Windows-1252")
	}
	return []byte(b), nil
}

// NewLegacyReader returns a reader which delivers the Unicode conversion of
// Bijoy text, read from r as Windows-1252 bytes.
func (c *Converter) NewLegacyReader(r io.Reader) io.Reader {
	return transform.NewReader(r, transform.Chain(legacy.NewDecoder(), c.NewDecoder()))
}

// NewLegacyWriter returns a writer which converts Unicode text written to it
// to Bijoy and writes it to w as Windows-1252 bytes. Clients must close the
// writer to flush a pending last line.
func (c *Converter) NewLegacyWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, transform.Chain(c.NewEncoder(), legacy.NewEncoder()))
}

// DecodeLegacy converts Windows-1252 encoded Bijoy text to Unicode, using
// the default converter.
func DecodeLegacy(b []byte) (string, error) {
	return Default().DecodeLegacy(b)
}

// EncodeLegacy converts Unicode text to Windows-1252 encoded Bijoy, using
// the default converter.
func EncodeLegacy(text string) ([]byte, error) {
	return Default().EncodeLegacy(text)
}
