package tafqit

import "strings"

// unitNames is the pair of currency unit names used when assembling an
// amount phrase: the main denomination and its fractional subdivision.
type unitNames struct {
	main     string
	fraction string
}

// lexicon maps an ISO currency code to its unit names per language.
// Loaded once as a constant table and never mutated; every entry carries all
// three language buckets.
var lexicon = map[string]map[Language]unitNames{
	"USD": {
		Arabic:  {"دولار أمريكي", "سنت"},
		English: {"US dollars", "cents"},
		Turkish: {"Amerikan doları", "sent"},
	},
	"EUR": {
		Arabic:  {"يورو", "سنت"},
		English: {"euros", "cents"},
		Turkish: {"euro", "sent"},
	},
	"TRY": {
		Arabic:  {"ليرة تركية", "قرش"},
		English: {"Turkish liras", "kuruş"},
		Turkish: {"Türk lirası", "kuruş"},
	},
	"GBP": {
		Arabic:  {"جنيه إسترليني", "بنس"},
		English: {"pounds sterling", "pence"},
		Turkish: {"İngiliz sterlini", "peni"},
	},
	"SAR": {
		Arabic:  {"ريال سعودي", "هللة"},
		English: {"Saudi riyals", "halalas"},
		Turkish: {"Suudi riyali", "halala"},
	},
	"AED": {
		Arabic:  {"درهم إماراتي", "فلس"},
		English: {"UAE dirhams", "fils"},
		Turkish: {"BAE dirhemi", "fils"},
	},
	"RUB": {
		Arabic:  {"روبل روسي", "كوبيك"},
		English: {"Russian rubles", "kopeks"},
		Turkish: {"Rus rublesi", "kopek"},
	},
	"CNY": {
		Arabic:  {"يوان صيني", "فين"},
		English: {"Chinese yuan", "fen"},
		Turkish: {"Çin yuanı", "fen"},
	},
	"JPY": {
		Arabic:  {"ين ياباني", "سين"},
		English: {"Japanese yen", "sen"},
		Turkish: {"Japon yeni", "sen"},
	},
	"IQD": {
		Arabic:  {"دينار عراقي", "فلس"},
		English: {"Iraqi dinars", "fils"},
		Turkish: {"Irak dinarı", "fils"},
	},
	"EGP": {
		Arabic:  {"جنيه مصري", "قرش"},
		English: {"Egyptian pounds", "piastres"},
		Turkish: {"Mısır lirası", "kuruş"},
	},
	"JOD": {
		Arabic:  {"دينار أردني", "فلس"},
		English: {"Jordanian dinars", "fils"},
		Turkish: {"Ürdün dinarı", "fils"},
	},
	"KWD": {
		Arabic:  {"دينار كويتي", "فلس"},
		English: {"Kuwaiti dinars", "fils"},
		Turkish: {"Kuveyt dinarı", "fils"},
	},
	"OMR": {
		Arabic:  {"ريال عماني", "بيسة"},
		English: {"Omani rials", "baisa"},
		Turkish: {"Umman riyali", "baisa"},
	},
	"BHD": {
		Arabic:  {"دينار بحريني", "فلس"},
		English: {"Bahraini dinars", "fils"},
		Turkish: {"Bahreyn dinarı", "fils"},
	},
	"QAR": {
		Arabic:  {"ريال قطري", "درهم"},
		English: {"Qatari riyals", "dirhams"},
		Turkish: {"Katar riyali", "dirhem"},
	},
}

// SupportedCurrencyCodes returns the codes present in the lexicon, for
// callers that want to enumerate (tests, seeding).
func SupportedCurrencyCodes() []string {
	codes := make([]string, 0, len(lexicon))
	for code := range lexicon {
		codes = append(codes, code)
	}
	return codes
}

// LookupCurrency returns the main and fractional unit names for a currency
// code in the given language. Unknown codes fall back to the code itself (or
// a generic localized word when the code is empty) plus a localized word for
// cents. The returned strings are always non-empty; lookup never fails.
func LookupCurrency(code string, lang Language) (main, fraction string) {
	lang = normalize(lang)
	code = strings.ToUpper(strings.TrimSpace(code))

	entry, ok := lexicon[code]
	if !ok {
		rules := rulesByLanguage[lang]
		if code == "" {
			return rules.genericMain, rules.genericFraction
		}
		return code, rules.genericFraction
	}

	names, ok := entry[lang]
	if !ok {
		names = entry[English]
	}
	return names.main, names.fraction
}
