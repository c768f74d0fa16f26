package tafqit

import "strings"

// latinGrammar drives the chunked power-of-thousand spelling shared by the
// English and Turkish engines. The differences between the two are carried
// entirely by this table: word lists, the connector inserted after a hundreds
// word, and the Turkish rules that drop the leading "bir" before "yüz" and
// "bin".
type latinGrammar struct {
	ones         []string // index 0 unused; EN carries 1..19, TR carries 1..9
	tens         []string
	hundred      string
	scales       []string
	hundredJoin  string // EN inserts "and" between hundreds and the remainder
	bareHundred  bool   // 1xx spells the hundred word without a leading one
	bareThousand bool   // a thousands chunk of exactly 1 spells the bare scale word
}

var englishGrammar = latinGrammar{
	ones: []string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"},
	tens:        []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"},
	hundred:     "hundred",
	scales:      []string{"", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion"},
	hundredJoin: "and",
}

var turkishGrammar = latinGrammar{
	ones:         []string{"", "bir", "iki", "üç", "dört", "beş", "altı", "yedi", "sekiz", "dokuz"},
	tens:         []string{"", "on", "yirmi", "otuz", "kırk", "elli", "altmış", "yetmiş", "seksen", "doksan"},
	hundred:      "yüz",
	scales:       []string{"", "bin", "milyon", "milyar", "trilyon", "katrilyon", "kentilyon"},
	bareHundred:  true,
	bareThousand: true,
}

// spellChunk spells a value in 1..999.
func (g latinGrammar) spellChunk(x int) string {
	var w []string

	if x >= 100 {
		h := x / 100
		if h == 1 && g.bareHundred {
			w = append(w, g.hundred)
		} else {
			w = append(w, g.ones[h], g.hundred)
		}
		x %= 100
		if x > 0 && g.hundredJoin != "" {
			w = append(w, g.hundredJoin)
		}
	}

	// English keeps 1..19 in the ones table; Turkish teens are regular
	// (on bir, on iki, ...) so anything >= 10 goes through the tens table.
	if x >= 20 || (x >= 10 && len(g.ones) <= 10) {
		w = append(w, g.tens[x/10])
		if r := x % 10; r > 0 {
			w = append(w, g.ones[r])
		}
	} else if x > 0 {
		w = append(w, g.ones[x])
	}

	return strings.Join(w, " ")
}

func (g latinGrammar) spell(n uint64) string {
	parts := make([]string, 0, 4)
	for idx := 0; n > 0; idx++ {
		chunk := int(n % 1000)
		n /= 1000
		if chunk == 0 {
			continue
		}
		var txt string
		if idx == 1 && chunk == 1 && g.bareThousand {
			txt = g.scales[1]
		} else {
			txt = g.spellChunk(chunk)
			if scale := g.scales[idx]; scale != "" {
				txt += " " + scale
			}
		}
		parts = append(parts, txt)
	}

	// Chunks were collected least-significant first.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ")
}

// Arabic word tables. Hundreds have dedicated words for 100..900 rather than
// a count plus a hundred word.
var (
	arabicOnes = []string{"", "واحد", "اثنان", "ثلاثة", "أربعة", "خمسة", "ستة", "سبعة", "ثمانية", "تسعة",
		"عشرة", "أحد عشر", "اثنا عشر", "ثلاثة عشر", "أربعة عشر", "خمسة عشر", "ستة عشر", "سبعة عشر", "ثمانية عشر", "تسعة عشر"}
	arabicTens     = []string{"", "عشرة", "عشرون", "ثلاثون", "أربعون", "خمسون", "ستون", "سبعون", "ثمانون", "تسعون"}
	arabicHundreds = []string{"", "مئة", "مئتان", "ثلاثمئة", "أربعمئة", "خمسمئة", "ستمئة", "سبعمئة", "ثمانمئة", "تسعمئة"}
)

// arabicScale carries the noun forms for one power-of-thousand group:
// singular for a count of one, dual for two, plural for 3..10, and the
// singular again (reversed agreement) for 11 and above.
type arabicScale struct {
	singular string
	dual     string
	plural   string
}

var (
	arabicThousand = arabicScale{"ألف", "ألفان", "آلاف"}
	arabicMillion  = arabicScale{"مليون", "مليونان", "ملايين"}
)

const arabicAnd = " و "

func arabicUnder100(x int) string {
	if x < 20 {
		return arabicOnes[x]
	}
	t, u := x/10, x%10
	if u == 0 {
		return arabicTens[t]
	}
	return arabicOnes[u] + arabicAnd + arabicTens[t]
}

func arabicUnder1000(x int) string {
	h, r := x/100, x%100
	parts := make([]string, 0, 2)
	if h > 0 {
		parts = append(parts, arabicHundreds[h])
	}
	if r > 0 {
		parts = append(parts, arabicUnder100(r))
	}
	return strings.Join(parts, arabicAnd)
}

// arabicGroup spells a scale group: the count followed by the correctly
// agreed noun form. Counts of one and two use the bare singular/dual noun;
// 3..10 take the plural; 11 and above revert to the singular.
func arabicGroup(count uint64, scale arabicScale) string {
	switch {
	case count == 1:
		return scale.singular
	case count == 2:
		return scale.dual
	case count >= 3 && count <= 10:
		return arabicUnder1000(int(count)) + " " + scale.plural
	default:
		return spellArabic(count) + " " + scale.singular
	}
}

func spellArabic(n uint64) string {
	millions := n / 1_000_000
	rem := n % 1_000_000
	thousands := rem / 1000
	under := rem % 1000

	parts := make([]string, 0, 3)
	if millions > 0 {
		parts = append(parts, arabicGroup(millions, arabicMillion))
	}
	if thousands > 0 {
		parts = append(parts, arabicGroup(thousands, arabicThousand))
	}
	if under > 0 {
		parts = append(parts, arabicUnder1000(int(under)))
	}
	return strings.Join(parts, arabicAnd)
}

// SpellInteger spells a non-negative integer as cardinal-number words in the
// given language. Unrecognized languages spell in English.
func SpellInteger(n uint64, lang Language) string {
	lang = normalize(lang)
	if n == 0 {
		return rulesByLanguage[lang].zero
	}
	switch lang {
	case Arabic:
		return spellArabic(n)
	case Turkish:
		return turkishGrammar.spell(n)
	default:
		return englishGrammar.spell(n)
	}
}
