package domain

// Currency represents a currency registered for use on trade documents.
// Display names are carried per document language; the spelled-out unit
// names used for amount-in-words come from the static tafqit lexicon, not
// from this record.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Precision    int    `json:"precision"`    // decimal places on documents
	NameEN       string `json:"nameEn"`
	NameAR       string `json:"nameAr"`
	NameTR       string `json:"nameTr"`
	AuditFields
}

// NameFor returns the display name for the given document language,
// falling back to the English name.
func (c Currency) NameFor(lang string) string {
	switch lang {
	case "ar":
		if c.NameAR != "" {
			return c.NameAR
		}
	case "tr":
		if c.NameTR != "" {
			return c.NameTR
		}
	}
	return c.NameEN
}
