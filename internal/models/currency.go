package models

// Currency mirrors the currencies table.
type Currency struct {
	CurrencyCode string `db:"currency_code"`
	Symbol       string `db:"symbol"`
	Precision    int    `db:"precision"`
	NameEN       string `db:"name_en"`
	NameAR       string `db:"name_ar"`
	NameTR       string `db:"name_tr"`
	AuditFields
}
