package reorder

import (
	"github.com/npillmayer/bijoy/bangla"
	"github.com/npillmayer/bijoy/internal/runebuf"
)

// outcome is what a rule reports back to the scanner.
type outcome struct {
	fired   bool
	advance int  // cursor movement on top of the regular step to the next position
	done    bool // skip the remaining rules at this position
}

var nothing = outcome{}

// --- Visual → logical ------------------------------------------------------

// logicalScan is the state of a visual→logical scan. The cursor is the only
// state carried from one position to the next.
type logicalScan struct {
	buf *runebuf.Buffer
	t   int
}

type logicalRule func(*logicalScan) outcome

// Rules are tested in this order at every position. A rule sees the
// buffer as left by the rules before it.
var logicalRules = [...]logicalRule{
	halantAfterKar,
	raHalantKar,
	rephToFront,
	preKarBehindCluster,
	chandrabinduAfterKar,
}

// ToLogical re-orders text in Bijoy typing order, already substituted to
// Unicode code-points, into Unicode logical order.
func ToLogical(text string) string {
	if text == "" {
		return text
	}
	buf := runebuf.Borrow(text)
	defer runebuf.Release(buf)
	scan := &logicalScan{buf: buf}
	for ; scan.t < buf.Len(); scan.t++ {
		for _, rule := range logicalRules {
			o := rule(scan)
			scan.t += o.advance
			if o.done {
				break
			}
		}
	}
	return buf.String()
}

// halantAfterKar: a halant typed after a vowel sign or diacritic belongs,
// together with the consonant following it, in front of that sign.
//
//	kar ্ C  ⇒  ্ C kar
func halantAfterKar(s *logicalScan) outcome {
	b, t := s.buf, s.t
	if t > 0 && t < b.Len()-1 && bangla.IsHalant(b.At(t)) &&
		(bangla.IsKar(b.At(t-1)) || bangla.IsNukta(b.At(t-1))) {
		b.Move(t-1, t, t+2)
		tracer().Debugf("reorder: moved sign at %d behind halant", t-1)
		return outcome{fired: true}
	}
	return nothing
}

// raHalantKar: a vowel sign typed after RA+halant is placed in front of the
// pair. The pair then is a reph candidate for rephToFront at the same
// position.
//
//	র ্ kar  ⇒  kar র ্
func raHalantKar(s *logicalScan) outcome {
	b, t := s.buf, s.t
	if t > 0 && t < b.Len()-1 && bangla.IsHalant(b.At(t)) && b.At(t-1) == bangla.Ra &&
		!bangla.IsHalant(b.At(t-2)) && bangla.IsKar(b.At(t+1)) {
		b.Move(t+1, t+2, t-1)
		tracer().Debugf("reorder: moved kar at %d in front of RA+halant", t+1)
		return outcome{fired: true}
	}
	return nothing
}

// rephToFront: RA+halant typed after a consonant cluster is a reph and
// belongs in front of the cluster. The cluster is found by walking back over
// consonant+halant pairs, optionally behind a single vowel sign. The cursor
// resumes behind the moved pair.
//
//	C ্ C kar র ্  ⇒  র ্ C ্ C kar
func rephToFront(s *logicalScan) outcome {
	b, t := s.buf, s.t
	if !(t < b.Len()-1 && b.At(t) == bangla.Ra && bangla.IsHalant(b.At(t+1)) &&
		!bangla.IsHalant(b.At(t-1))) {
		return nothing
	}
	i := rephLookback(b, t)
	start := t - i
	if start < 0 {
		start = 0
	}
	b.Move(t, t+2, start)
	tracer().Debugf("reorder: moved reph from %d to %d", t, start)
	return outcome{fired: true, advance: 1, done: true}
}

// rephLookback returns the distance from the RA at position t back to the
// first rune of the cluster the reph belongs to.
func rephLookback(b *runebuf.Buffer, t int) int {
	i := 1
	for t-i >= 0 {
		if bangla.IsConsonant(b.At(t-i)) && bangla.IsHalant(b.At(t-i-1)) {
			i += 2
		} else if i == 1 && bangla.IsKar(b.At(t-i)) {
			i++
		} else {
			break
		}
	}
	return i
}

// preKarBehindCluster: a pre-base vowel sign is typed in front of its
// consonant cluster and belongs behind it. E-kar followed by aa-kar or the
// au length mark merges into o-kar or au-kar. The cursor resumes at the
// vowel sign's new position.
//
//	ে C ্ C া  ⇒  C ্ C ো
func preKarBehindCluster(s *logicalScan) outcome {
	b, t := s.buf, s.t
	if !(t < b.Len()-1 && bangla.IsPreKar(b.At(t)) && !bangla.IsSpace(b.At(t+1))) {
		return nothing
	}
	r := clusterLookahead(b, t)
	kar := b.At(t)
	next := b.At(t + r + 1)
	end := t + r + 1
	if end > b.Len() {
		end = b.Len()
	}
	pos := b.Move(t, t+1, end)
	if kar == bangla.EKar {
		switch next {
		case bangla.AKar:
			b.Splice(pos, pos+2, bangla.OKar)
		case bangla.AuLengthMark:
			b.Splice(pos, pos+2, bangla.AuKar)
		}
	}
	tracer().Debugf("reorder: moved pre-kar from %d behind cluster of length %d", t, r)
	return outcome{fired: true, advance: r}
}

// clusterLookahead returns the length of the consonant cluster following the
// pre-kar at position t. The rune directly after the vowel sign counts as the
// cluster's first rune in any case.
func clusterLookahead(b *runebuf.Buffer, t int) int {
	r := 1
	for bangla.IsConsonant(b.At(t + r)) {
		if !bangla.IsHalant(b.At(t + r + 1)) {
			break
		}
		r += 2
	}
	return r
}

// chandrabinduAfterKar: chandrabindu belongs behind a following post-base
// vowel sign.
//
//	ঁ kar  ⇒  kar ঁ
func chandrabinduAfterKar(s *logicalScan) outcome {
	b, t := s.buf, s.t
	if t < b.Len()-1 && b.At(t) == bangla.Chandrabindu && bangla.IsPostKar(b.At(t+1)) {
		b.Swap(t, t+1)
		return outcome{fired: true}
	}
	return nothing
}
