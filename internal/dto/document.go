package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BuildDocumentRequest selects what to build: the document code picks the
// layout family (invoice, packing list, ...), the language picks the field
// variants and the amount-in-words language.
type BuildDocumentRequest struct {
	DocumentCode string `form:"documentCode" binding:"required"`
	Language     string `form:"language" binding:"omitempty,oneof=ar en tr"`
}

// DocumentLineContext is one goods line as it appears on a document.
type DocumentLineContext struct {
	Position    int             `json:"position"`
	MaterialID  string          `json:"materialID"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	GrossKg     decimal.Decimal `json:"grossKg"`
	NetKg       decimal.Decimal `json:"netKg"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	PriceUnit   string          `json:"priceUnit,omitempty"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// DocumentContextResponse is the fully aggregated, language-resolved context
// a renderer needs to produce the document. Rendering itself is out of scope.
type DocumentContextResponse struct {
	DocumentCode    string                `json:"documentCode"`
	Reference       string                `json:"reference"` // e.g. "INV-260007"
	Language        string                `json:"language"`
	TransactionID   string                `json:"transactionID"`
	Number          string                `json:"number"`
	Kind            string                `json:"kind"`
	SellerCompanyID string                `json:"sellerCompanyID"`
	BuyerCompanyID  string                `json:"buyerCompanyID"`
	TransactionDate time.Time             `json:"transactionDate"`
	CurrencyCode    string                `json:"currencyCode"`
	CurrencyName    string                `json:"currencyName"`
	CurrencySymbol  string                `json:"currencySymbol"`
	Lines           []DocumentLineContext `json:"lines"`
	TotalQuantity   decimal.Decimal       `json:"totalQuantity"`
	TotalGrossKg    decimal.Decimal       `json:"totalGrossKg"`
	TotalNetKg      decimal.Decimal       `json:"totalNetKg"`
	TotalValue      decimal.Decimal       `json:"totalValue"`
	TotalValueText  string                `json:"totalValueText"` // rounded to the currency's precision
	AmountInWords   string                `json:"amountInWords"`
	GeneratedAt     time.Time             `json:"generatedAt"`
}
