package mapping

import (
	"github.com/logiport/logiport_backend/internal/core/domain"
	"github.com/logiport/logiport_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Items are mapped separately since they live in their own table.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		Number:          d.Number,
		Kind:            string(d.Kind),
		SellerCompanyID: d.SellerCompanyID,
		BuyerCompanyID:  d.BuyerCompanyID,
		CurrencyCode:    d.CurrencyCode,
		Status:          string(d.Status),
		TransactionDate: d.TransactionDate,
		Notes:           d.Notes,
		TotalsCount:     d.Totals.Count,
		TotalsGrossKg:   d.Totals.GrossKg,
		TotalsNetKg:     d.Totals.NetKg,
		TotalsValue:     d.Totals.Value,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		Number:          m.Number,
		Kind:            domain.TransactionKind(m.Kind),
		SellerCompanyID: m.SellerCompanyID,
		BuyerCompanyID:  m.BuyerCompanyID,
		CurrencyCode:    m.CurrencyCode,
		Status:          domain.TransactionStatus(m.Status),
		TransactionDate: m.TransactionDate,
		Notes:           m.Notes,
		Totals: domain.TransactionTotals{
			Count:   m.TotalsCount,
			GrossKg: m.TotalsGrossKg,
			NetKg:   m.TotalsNetKg,
			Value:   m.TotalsValue,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransactionItem converts a domain TransactionItem to a model TransactionItem
func ToModelTransactionItem(d domain.TransactionItem) models.TransactionItem {
	return models.TransactionItem{
		ItemID:        d.ItemID,
		TransactionID: d.TransactionID,
		MaterialID:    d.MaterialID,
		Description:   d.Description,
		Quantity:      d.Quantity,
		GrossKg:       d.GrossKg,
		NetKg:         d.NetKg,
		UnitPrice:     d.UnitPrice,
		LineTotal:     d.LineTotal,
		PricingTypeID: d.PricingTypeID,
		CurrencyCode:  d.CurrencyCode,
	}
}

// ToDomainTransactionItem converts a model TransactionItem to a domain TransactionItem
func ToDomainTransactionItem(m models.TransactionItem) domain.TransactionItem {
	return domain.TransactionItem{
		ItemID:        m.ItemID,
		TransactionID: m.TransactionID,
		MaterialID:    m.MaterialID,
		Description:   m.Description,
		Quantity:      m.Quantity,
		GrossKg:       m.GrossKg,
		NetKg:         m.NetKg,
		UnitPrice:     m.UnitPrice,
		LineTotal:     m.LineTotal,
		PricingTypeID: m.PricingTypeID,
		CurrencyCode:  m.CurrencyCode,
	}
}

// ToDomainTransactionItemSlice converts model items to domain items
func ToDomainTransactionItemSlice(ms []models.TransactionItem) []domain.TransactionItem {
	ds := make([]domain.TransactionItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransactionItem(m)
	}
	return ds
}
