package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. Totals are denormalized
// aggregates of the item lines.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	Number          string          `db:"number"`
	Kind            string          `db:"kind"`
	SellerCompanyID string          `db:"seller_company_id"`
	BuyerCompanyID  string          `db:"buyer_company_id"`
	CurrencyCode    string          `db:"currency_code"`
	Status          string          `db:"status"`
	TransactionDate time.Time       `db:"transaction_date"`
	Notes           string          `db:"notes"`
	TotalsCount     decimal.Decimal `db:"totals_count"`
	TotalsGrossKg   decimal.Decimal `db:"totals_gross_kg"`
	TotalsNetKg     decimal.Decimal `db:"totals_net_kg"`
	TotalsValue     decimal.Decimal `db:"totals_value"`
	AuditFields
}

// TransactionItem mirrors the transaction_items table.
type TransactionItem struct {
	ItemID        string          `db:"item_id"`
	TransactionID string          `db:"transaction_id"`
	MaterialID    string          `db:"material_id"`
	Description   string          `db:"description"`
	Quantity      decimal.Decimal `db:"quantity"`
	GrossKg       decimal.Decimal `db:"gross_kg"`
	NetKg         decimal.Decimal `db:"net_kg"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	LineTotal     decimal.Decimal `db:"line_total"`
	PricingTypeID string          `db:"pricing_type_id"`
	CurrencyCode  string          `db:"currency_code"`
}
