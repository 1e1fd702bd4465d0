package bijoy

import (
	"bytes"

	"golang.org/x/text/transform"
)

// lineTransformer converts its input line by line. Input is held back until
// a line is complete (or input ends), then the whole line is converted.
type lineTransformer struct {
	convert func(string) string
	line    []byte // incomplete line
	out     []byte // converted text not yet handed out
}

var _ transform.Transformer = (*lineTransformer)(nil)

func newLineTransformer(convert func(string) string) *lineTransformer {
	return &lineTransformer{convert: convert}
}

// Reset implements transform.Transformer.
func (lt *lineTransformer) Reset() {
	lt.line = lt.line[:0]
	lt.out = lt.out[:0]
}

// Transform implements transform.Transformer.
func (lt *lineTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		if len(lt.out) > 0 {
			n := copy(dst[nDst:], lt.out)
			nDst += n
			lt.out = lt.out[n:]
			if len(lt.out) > 0 {
				return nDst, nSrc, transform.ErrShortDst
			}
		}
		if nSrc == len(src) {
			break
		}
		i := bytes.IndexByte(src[nSrc:], '\n')
		if i < 0 {
			lt.line = append(lt.line, src[nSrc:]...)
			nSrc = len(src)
			break
		}
		lt.line = append(lt.line, src[nSrc:nSrc+i+1]...)
		nSrc += i + 1
		lt.flushLine()
	}
	if atEOF && len(lt.line) > 0 {
		lt.flushLine()
		n := copy(dst[nDst:], lt.out)
		nDst += n
		lt.out = lt.out[n:]
		if len(lt.out) > 0 {
			return nDst, nSrc, transform.ErrShortDst
		}
	}
	return nDst, nSrc, nil
}

func (lt *lineTransformer) flushLine() {
	lt.out = append(lt.out[:0], lt.convert(string(lt.line))...)
	lt.line = lt.line[:0]
}

// NewDecoder returns a transformer converting a stream of Bijoy text to
// Unicode. Conversion works line by line; a line which already contains
// Bengali Unicode characters is passed through unchanged.
func (c *Converter) NewDecoder() transform.Transformer {
	return newLineTransformer(c.ToUnicode)
}

// NewEncoder returns a transformer converting a stream of Unicode text to
// Bijoy, line by line.
func (c *Converter) NewEncoder() transform.Transformer {
	return newLineTransformer(c.ToBijoy)
}

// NewDecoder returns a line-wise Bijoy→Unicode transformer of the default
// converter.
func NewDecoder() transform.Transformer {
	return Default().NewDecoder()
}

// NewEncoder returns a line-wise Unicode→Bijoy transformer of the default
// converter.
func NewEncoder() transform.Transformer {
	return Default().NewEncoder()
}
