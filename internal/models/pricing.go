package models

import "github.com/shopspring/decimal"

// PricingType mirrors the pricing_types table.
type PricingType struct {
	PricingTypeID string          `db:"pricing_type_id"`
	Code          string          `db:"code"`
	ComputeBy     string          `db:"compute_by"`
	PriceUnit     string          `db:"price_unit"`
	Divisor       decimal.Decimal `db:"divisor"`
	AuditFields
}

// PriceRule mirrors the price_rules table.
type PriceRule struct {
	PriceRuleID      string          `db:"price_rule_id"`
	SellerCompanyID  string          `db:"seller_company_id"`
	BuyerCompanyID   string          `db:"buyer_company_id"`
	MaterialID       string          `db:"material_id"`
	PricingTypeID    string          `db:"pricing_type_id"`
	CurrencyCode     string          `db:"currency_code"`
	DeliveryMethodID *string         `db:"delivery_method_id"`
	UnitPrice        decimal.Decimal `db:"unit_price"`
	IsActive         bool            `db:"is_active"`
	AuditFields
}
