package tafqit

import "strings"

// Language identifies one of the supported spelling languages.
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
	Turkish Language = "tr"
)

// languageRules holds the assembly-level words for one language: the word
// for zero, the conjunction joining the main and fractional clauses, and the
// generic fallback unit names used when a currency code is unknown.
type languageRules struct {
	zero            string
	conjunction     string
	genericMain     string
	genericFraction string
}

var rulesByLanguage = map[Language]languageRules{
	Arabic: {
		zero:            "صفر",
		conjunction:     "و",
		genericMain:     "عملة",
		genericFraction: "سنت",
	},
	English: {
		zero:            "zero",
		conjunction:     "and",
		genericMain:     "currency",
		genericFraction: "cents",
	},
	Turkish: {
		zero:            "sıfır",
		conjunction:     "ve",
		genericMain:     "para birimi",
		genericFraction: "sent",
	},
}

// ParseLanguage normalizes a language code. Anything that is not a known
// code spells in English; callers never get an error for a bad language.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ar":
		return Arabic
	case "tr":
		return Turkish
	default:
		return English
	}
}

// normalize guards against Language values constructed directly rather than
// through ParseLanguage.
func normalize(lang Language) Language {
	if _, ok := rulesByLanguage[lang]; !ok {
		return English
	}
	return lang
}
