package domain

import "github.com/shopspring/decimal"

// ComputeBasis selects which measured quantity a pricing type multiplies by
// the unit price.
type ComputeBasis string

const (
	ComputeByQuantity ComputeBasis = "QTY"
	ComputeByNet      ComputeBasis = "NET"
	ComputeByGross    ComputeBasis = "GROSS"
)

// PricingType describes how a line total is derived from a line's measures:
// base(ComputeBy) / Divisor * unit price. The Code carries the legacy
// shorthand (UNIT, KG, TON, GROSS, ...) used when a type has no formula row.
type PricingType struct {
	PricingTypeID string          `json:"pricingTypeID"`
	Code          string          `json:"code"`
	ComputeBy     ComputeBasis    `json:"computeBy"`
	PriceUnit     string          `json:"priceUnit"` // label on documents, e.g. "kg"
	Divisor       decimal.Decimal `json:"divisor"`   // e.g. 1000 for per-ton prices
	AuditFields
}

// PriceRule is one row of the price list: a unit price agreed between a
// seller and a buyer for a material, under a pricing type and currency,
// optionally narrowed to a delivery method.
type PriceRule struct {
	PriceRuleID      string          `json:"priceRuleID"`
	SellerCompanyID  string          `json:"sellerCompanyID"`
	BuyerCompanyID   string          `json:"buyerCompanyID"`
	MaterialID       string          `json:"materialID"`
	PricingTypeID    string          `json:"pricingTypeID"`
	CurrencyCode     string          `json:"currencyCode"`
	DeliveryMethodID *string         `json:"deliveryMethodID,omitempty"` // nil = any delivery method
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	IsActive         bool            `json:"isActive"`
	AuditFields
}
