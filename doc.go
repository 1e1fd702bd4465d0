/*
Package bijoy converts Bengali text between the legacy Bijoy encoding and
Unicode.

Description

Bijoy is the keyboard layout and font encoding which dominated Bengali
desktop publishing before Unicode support became common. Bijoy fonts place
Bengali glyphs on the code-points of Latin-1 (more precisely: Windows-1252)
characters. Text is stored in the order it is typed, which is the order in
which glyphs appear on screen. A pre-base vowel sign such as ে is typed
before its consonant, a reph is typed after the cluster it sits on.

Unicode stores Bengali in logical order. Converting between the two
therefore needs two steps besides glyph substitution: re-ordering from
visual to logical order (ToUnicode) and back (ToBijoy).

	s := bijoy.ToUnicode("Avgvi †mvbvi evsjv")   // "আমার সোনার বাংলা"
	b := bijoy.ToBijoy("আমার সোনার বাংলা")       // "Avgvi ‡mvbvi evsjv"

Conversion is driven by substitution tables, which are embedded into the
package (see package tables). Clients wanting different tables create a
Converter of their own with New.

Text in which Bijoy and Unicode are mixed may be converted with
ConvertMixed, which works on runs of non-whitespace and leaves Unicode
runs untouched. Streams are converted line by line with the transformers
returned by NewDecoder and NewEncoder. Bijoy documents usually are stored
as Windows-1252 bytes, which DecodeLegacy and EncodeLegacy handle.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bijoy

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
