/*
Package reorder converts Bengali text between visual (typed) order and
logical (Unicode) order.

Legacy Bijoy text stores vowel signs and the reph form of RA in the order
they are typed, which is the order they appear on screen. Unicode requires
them in logical order: a pre-base vowel sign follows its consonant cluster,
a reph precedes it. After glyph substitution, text still has the order of
its source encoding; ToLogical and ToVisual perform the re-sequencing.

Both algorithms scan their input from left to right with a cursor and
test a small set of rules at each position. Rules move short runs of runes
and tell the scanner how far the cursor has to advance to resume behind
what they have moved. The two directions have different state: ToLogical
works with the cursor only, ToVisual additionally keeps a barrier, which
prevents a later rule from reaching back into a span already relocated.

Both functions treat their input as opaque where no rule applies: runes
outside the Bengali classes pass through in place.
*/
package reorder

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
