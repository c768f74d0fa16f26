package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a trade deal.
type TransactionKind string

const (
	Import  TransactionKind = "IMPORT"
	Export  TransactionKind = "EXPORT"
	Transit TransactionKind = "TRANSIT"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusDraft    TransactionStatus = "draft"
	StatusActive   TransactionStatus = "active"
	StatusClosed   TransactionStatus = "closed"
	StatusArchived TransactionStatus = "archived"
)

// allowedTransitions is the full status machine: drafts activate, active
// deals close or revert to draft, closed deals reopen or archive, archived
// deals are final.
var allowedTransitions = map[TransactionStatus][]TransactionStatus{
	StatusDraft:    {StatusActive},
	StatusActive:   {StatusClosed, StatusDraft},
	StatusClosed:   {StatusActive, StatusArchived},
	StatusArchived: {},
}

// IsValid reports whether s is one of the known statuses.
func (s TransactionStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo reports whether the status machine permits moving from s
// to next.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransactionItem is a single goods line within a transaction. LineTotal is
// computed from the pricing type formula when not supplied by the caller.
type TransactionItem struct {
	ItemID        string          `json:"itemID"`
	TransactionID string          `json:"transactionID"`
	MaterialID    string          `json:"materialID"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	GrossKg       decimal.Decimal `json:"grossKg"`
	NetKg         decimal.Decimal `json:"netKg"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
	PricingTypeID string          `json:"pricingTypeID"`
	CurrencyCode  string          `json:"currencyCode"`
}

// TransactionTotals aggregates the item lines; recomputed from the items on
// every write, never trusted from the caller.
type TransactionTotals struct {
	Count   decimal.Decimal `json:"count"`
	GrossKg decimal.Decimal `json:"grossKg"`
	NetKg   decimal.Decimal `json:"netKg"`
	Value   decimal.Decimal `json:"value"`
}

// Transaction is an import/export/transit deal: parties, goods lines and
// their aggregated totals, plus the lifecycle status.
type Transaction struct {
	TransactionID   string            `json:"transactionID"`
	Number          string            `json:"number"` // assigned by the numbering service
	Kind            TransactionKind   `json:"kind"`
	SellerCompanyID string            `json:"sellerCompanyID"`
	BuyerCompanyID  string            `json:"buyerCompanyID"`
	CurrencyCode    string            `json:"currencyCode"`
	Status          TransactionStatus `json:"status"`
	TransactionDate time.Time         `json:"transactionDate"`
	Notes           string            `json:"notes"`
	Items           []TransactionItem `json:"items,omitempty"`
	Totals          TransactionTotals `json:"totals"`
	AuditFields
}

// RecalculateTotals rebuilds the aggregate totals from the item lines.
func (t *Transaction) RecalculateTotals() {
	totals := TransactionTotals{
		Count:   decimal.Zero,
		GrossKg: decimal.Zero,
		NetKg:   decimal.Zero,
		Value:   decimal.Zero,
	}
	for _, item := range t.Items {
		totals.Count = totals.Count.Add(item.Quantity)
		totals.GrossKg = totals.GrossKg.Add(item.GrossKg)
		totals.NetKg = totals.NetKg.Add(item.NetKg)
		totals.Value = totals.Value.Add(item.LineTotal)
	}
	t.Totals = totals
}
