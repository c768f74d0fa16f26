package dto

import (
	"github.com/logiport/logiport_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePricingTypeRequest defines the data needed to create a pricing type.
type CreatePricingTypeRequest struct {
	Code      string           `json:"code" binding:"required,uppercase"`
	ComputeBy string           `json:"computeBy" binding:"required,oneof=QTY NET GROSS"`
	PriceUnit string           `json:"priceUnit"`
	Divisor   *decimal.Decimal `json:"divisor"`
}

// PricingTypeResponse defines the data returned for a pricing type.
type PricingTypeResponse struct {
	PricingTypeID string          `json:"pricingTypeID"`
	Code          string          `json:"code"`
	ComputeBy     string          `json:"computeBy"`
	PriceUnit     string          `json:"priceUnit"`
	Divisor       decimal.Decimal `json:"divisor"`
}

// ToPricingTypeResponse converts a domain.PricingType to its response DTO
func ToPricingTypeResponse(pt *domain.PricingType) PricingTypeResponse {
	return PricingTypeResponse{
		PricingTypeID: pt.PricingTypeID,
		Code:          pt.Code,
		ComputeBy:     string(pt.ComputeBy),
		PriceUnit:     pt.PriceUnit,
		Divisor:       pt.Divisor,
	}
}

// ToListPricingTypeResponse converts domain pricing types to response DTOs
func ToListPricingTypeResponse(pts []domain.PricingType) []PricingTypeResponse {
	res := make([]PricingTypeResponse, len(pts))
	for i, pt := range pts {
		res[i] = ToPricingTypeResponse(&pt)
	}
	return res
}

// CreatePriceRuleRequest defines the data needed to create a price rule.
type CreatePriceRuleRequest struct {
	SellerCompanyID  string          `json:"sellerCompanyID" binding:"required"`
	BuyerCompanyID   string          `json:"buyerCompanyID" binding:"required"`
	MaterialID       string          `json:"materialID" binding:"required"`
	PricingTypeID    string          `json:"pricingTypeID" binding:"required"`
	CurrencyCode     string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	DeliveryMethodID *string         `json:"deliveryMethodID"`
	UnitPrice        decimal.Decimal `json:"unitPrice" binding:"required"`
}

// BestPriceQuery carries the lookup key for price selection.
type BestPriceQuery struct {
	SellerCompanyID  string  `form:"sellerCompanyID" binding:"required"`
	BuyerCompanyID   string  `form:"buyerCompanyID" binding:"required"`
	MaterialID       string  `form:"materialID" binding:"required"`
	PricingTypeID    string  `form:"pricingTypeID" binding:"required"`
	CurrencyCode     string  `form:"currencyCode" binding:"required"`
	DeliveryMethodID *string `form:"deliveryMethodID"`
}

// PriceRuleResponse defines the data returned for a price rule.
type PriceRuleResponse struct {
	PriceRuleID      string          `json:"priceRuleID"`
	SellerCompanyID  string          `json:"sellerCompanyID"`
	BuyerCompanyID   string          `json:"buyerCompanyID"`
	MaterialID       string          `json:"materialID"`
	PricingTypeID    string          `json:"pricingTypeID"`
	CurrencyCode     string          `json:"currencyCode"`
	DeliveryMethodID *string         `json:"deliveryMethodID,omitempty"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	IsActive         bool            `json:"isActive"`
}

// ToPriceRuleResponse converts a domain.PriceRule to its response DTO
func ToPriceRuleResponse(rule *domain.PriceRule) PriceRuleResponse {
	return PriceRuleResponse{
		PriceRuleID:      rule.PriceRuleID,
		SellerCompanyID:  rule.SellerCompanyID,
		BuyerCompanyID:   rule.BuyerCompanyID,
		MaterialID:       rule.MaterialID,
		PricingTypeID:    rule.PricingTypeID,
		CurrencyCode:     rule.CurrencyCode,
		DeliveryMethodID: rule.DeliveryMethodID,
		UnitPrice:        rule.UnitPrice,
		IsActive:         rule.IsActive,
	}
}

// ToListPriceRuleResponse converts domain price rules to response DTOs
func ToListPriceRuleResponse(rules []domain.PriceRule) []PriceRuleResponse {
	res := make([]PriceRuleResponse, len(rules))
	for i, rule := range rules {
		res[i] = ToPriceRuleResponse(&rule)
	}
	return res
}
