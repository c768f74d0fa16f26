// Package tafqit spells monetary amounts in words (Arabic, English, Turkish)
// the way they appear on invoices and other legal trade documents: the
// integer part, the currency main unit, and, when present, the fractional
// part with the currency's fractional unit.
//
// Everything in this package is a pure function over constant tables; it is
// safe for concurrent use without coordination.
package tafqit

import (
	"math"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// AmountInWords converts a monetary amount to its spelled-out phrase in the
// given language, e.g. 1234.56 USD (en) -> "one thousand two hundred and
// thirty four US dollars and fifty six cents".
//
// The amount is spelled unsigned: negative amounts produce the same phrase
// as their absolute value, with no minus word. A fractional part that rounds
// to a whole unit (e.g. 99.999) carries into the integer part instead of
// spelling one hundred cents. The function is total: any amount, any
// currency code and any language value produce a non-empty phrase.
func AmountInWords(amount decimal.Decimal, currencyCode string, lang Language) string {
	lang = normalize(lang)

	abs := amount.Abs()
	intPart := abs.Floor()
	cents := abs.Sub(intPart).Mul(oneHundred).Round(0).IntPart()

	units := uint64(intPart.IntPart())
	if cents >= 100 {
		units++
		cents = 0
	}

	main, fraction := LookupCurrency(currencyCode, lang)
	words := SpellInteger(units, lang)

	if cents > 0 {
		rules := rulesByLanguage[lang]
		return words + " " + main + " " + rules.conjunction + " " + SpellInteger(uint64(cents), lang) + " " + fraction
	}
	return words + " " + main
}

// AmountInWordsFloat is a convenience wrapper for callers holding a raw
// float and a raw language string. NaN and infinite values spell as zero,
// mirroring the policy that missing amounts are treated as zero.
func AmountInWordsFloat(amount float64, currencyCode string, lang string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return AmountInWords(decimal.NewFromFloat(amount), currencyCode, ParseLanguage(lang))
}
