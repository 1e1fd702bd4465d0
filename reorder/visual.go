package reorder

import (
	"github.com/npillmayer/bijoy/bangla"
	"github.com/npillmayer/bijoy/internal/runebuf"
)

// --- Logical → visual ------------------------------------------------------

// visualScan is the state of a logical→visual scan. Besides the cursor it
// keeps a barrier: the lookback of a rule must not reach a position at or
// before the barrier, as the runes there have already been relocated.
type visualScan struct {
	buf     *runebuf.Buffer
	t       int
	barrier int
}

type visualRule func(*visualScan) outcome

var visualRules = [...]visualRule{
	preKarInFront,
	rephBehindCluster,
}

// ToVisual re-orders Unicode text into the typing order of Bijoy, which is
// the order the Bijoy glyph substitution expects.
func ToVisual(text string) string {
	if text == "" {
		return text
	}
	buf := runebuf.Borrow(text)
	defer runebuf.Release(buf)
	scan := &visualScan{buf: buf}
	for ; scan.t < buf.Len(); scan.t++ {
		for _, rule := range visualRules {
			o := rule(scan)
			scan.t += o.advance
			if o.done {
				break
			}
		}
	}
	return buf.String()
}

// preKarInFront: a pre-base vowel sign is moved in front of the consonant
// cluster it follows. The cluster is found by walking back over
// consonant+halant pairs, but not beyond the barrier.
//
//	C ্ C ে  ⇒  ে C ্ C
func preKarInFront(s *visualScan) outcome {
	b, t := s.buf, s.t
	if !bangla.IsPreKar(b.At(t)) {
		return nothing
	}
	r := 1
	for bangla.IsConsonant(b.At(t - r)) {
		if t-r < 0 || t-r <= s.barrier {
			break
		}
		if !bangla.IsHalant(b.At(t - r - 1)) {
			break
		}
		r += 2
	}
	start := t - r
	if start < 0 {
		start = 0
	}
	b.Move(t, t+1, start)
	s.barrier = t + 1
	tracer().Debugf("reorder: moved pre-kar from %d to %d, barrier now %d", t, start, s.barrier)
	return outcome{fired: true, done: true}
}

// rephBehindCluster: a reph (RA+halant in front of a consonant cluster) is
// moved behind the cluster, which is where Bijoy expects it to be typed. If
// the cluster carries a pre-base vowel sign, that sign is moved in front of
// the cluster. The cursor and the barrier resume behind the moved runes.
//
//	র ্ C ্ C ি  ⇒  ি C ্ C র ্
func rephBehindCluster(s *visualScan) outcome {
	b, t := s.buf, s.t
	if !(t < b.Len()-1 && bangla.IsHalant(b.At(t)) && b.At(t-1) == bangla.Ra) {
		return nothing
	}
	i, e := 1, 0
	for {
		if bangla.IsConsonant(b.At(t+i)) && bangla.IsHalant(b.At(t+i+1)) {
			i += 2
		} else if bangla.IsConsonant(b.At(t+i)) && bangla.IsPreKar(b.At(t+i+1)) {
			e = 1
			break
		} else {
			break
		}
	}
	end := t + i + 1
	if end > b.Len() {
		end = b.Len()
	}
	b.Move(t-1, t+1, end)
	if e == 1 {
		b.Move(t+i+1, t+i+2, t-1)
	}
	tracer().Debugf("reorder: moved reph at %d behind cluster of length %d", t-1, i)
	s.barrier = t + i + e + 1
	return outcome{fired: true, advance: i + e, done: true}
}
