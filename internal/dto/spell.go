package dto

import "github.com/shopspring/decimal"

// SpellAmountRequest asks for a monetary amount spelled out in words.
type SpellAmountRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Language     string          `json:"language" binding:"omitempty,oneof=ar en tr"`
}

// SpellAmountResponse returns the spelled-out phrase.
type SpellAmountResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Language     string          `json:"language"`
	Words        string          `json:"words"`
}
