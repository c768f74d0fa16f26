package mapping

import (
	"github.com/logiport/logiport_backend/internal/core/domain"
	"github.com/logiport/logiport_backend/internal/models"
)

// ToModelPricingType converts a domain PricingType to a model PricingType
func ToModelPricingType(d domain.PricingType) models.PricingType {
	return models.PricingType{
		PricingTypeID: d.PricingTypeID,
		Code:          d.Code,
		ComputeBy:     string(d.ComputeBy),
		PriceUnit:     d.PriceUnit,
		Divisor:       d.Divisor,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPricingType converts a model PricingType to a domain PricingType
func ToDomainPricingType(m models.PricingType) domain.PricingType {
	return domain.PricingType{
		PricingTypeID: m.PricingTypeID,
		Code:          m.Code,
		ComputeBy:     domain.ComputeBasis(m.ComputeBy),
		PriceUnit:     m.PriceUnit,
		Divisor:       m.Divisor,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPriceRule converts a domain PriceRule to a model PriceRule
func ToModelPriceRule(d domain.PriceRule) models.PriceRule {
	return models.PriceRule{
		PriceRuleID:      d.PriceRuleID,
		SellerCompanyID:  d.SellerCompanyID,
		BuyerCompanyID:   d.BuyerCompanyID,
		MaterialID:       d.MaterialID,
		PricingTypeID:    d.PricingTypeID,
		CurrencyCode:     d.CurrencyCode,
		DeliveryMethodID: d.DeliveryMethodID,
		UnitPrice:        d.UnitPrice,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPriceRule converts a model PriceRule to a domain PriceRule
func ToDomainPriceRule(m models.PriceRule) domain.PriceRule {
	return domain.PriceRule{
		PriceRuleID:      m.PriceRuleID,
		SellerCompanyID:  m.SellerCompanyID,
		BuyerCompanyID:   m.BuyerCompanyID,
		MaterialID:       m.MaterialID,
		PricingTypeID:    m.PricingTypeID,
		CurrencyCode:     m.CurrencyCode,
		DeliveryMethodID: m.DeliveryMethodID,
		UnitPrice:        m.UnitPrice,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPriceRuleSlice converts a slice of model PriceRules to domain PriceRules
func ToDomainPriceRuleSlice(ms []models.PriceRule) []domain.PriceRule {
	ds := make([]domain.PriceRule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPriceRule(m)
	}
	return ds
}
