/*
Package bangla classifies Bengali code-points for the purpose of re-ordering
text between visual (typed) order and logical (Unicode) order.

Classification

The reordering algorithms of this module look at single runes and need to
know whether a rune is a halant (vowel killer), a vowel sign (kar) which is
written before or after its consonant, one of the diacritic signs anusvara,
visarga and chandrabindu, a consonant, or whitespace. Package bangla offers
a predicate for each of these questions, plus ClassForRune, which assigns a
single class to a rune.

The predicates keep the ranges conventional for Bijoy converters. In
particular IsConsonant accepts the three diacritic signs as well, because
conjunct scanning treats them as part of a cluster. ClassForRune resolves
this overlap by priority: a rune which is a diacritic sign is classified as
Nukta, never as Consonant.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bangla
