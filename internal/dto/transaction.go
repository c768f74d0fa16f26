package dto

import (
	"time"

	"github.com/logiport/logiport_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionItemRequest is one goods line in a create/update request.
// LineTotal is optional; when absent it is computed from the pricing type.
type CreateTransactionItemRequest struct {
	MaterialID    string           `json:"materialID" binding:"required"`
	Description   string           `json:"description"`
	Quantity      decimal.Decimal  `json:"quantity"`
	GrossKg       decimal.Decimal  `json:"grossKg"`
	NetKg         decimal.Decimal  `json:"netKg"`
	UnitPrice     decimal.Decimal  `json:"unitPrice"`
	LineTotal     *decimal.Decimal `json:"lineTotal"`
	PricingTypeID string           `json:"pricingTypeID" binding:"required"`
	CurrencyCode  string           `json:"currencyCode" binding:"required,uppercase,len=3"`
}

// CreateTransactionRequest defines the data needed to create a transaction.
type CreateTransactionRequest struct {
	Kind            string                         `json:"kind" binding:"required,oneof=IMPORT EXPORT TRANSIT"`
	SellerCompanyID string                         `json:"sellerCompanyID" binding:"required"`
	BuyerCompanyID  string                         `json:"buyerCompanyID" binding:"required"`
	CurrencyCode    string                         `json:"currencyCode" binding:"required,uppercase,len=3"`
	TransactionDate time.Time                      `json:"transactionDate" binding:"required"`
	Notes           string                         `json:"notes"`
	Items           []CreateTransactionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateTransactionItemsRequest replaces the goods lines of a transaction.
type UpdateTransactionItemsRequest struct {
	Items []CreateTransactionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ChangeTransactionStatusRequest moves a transaction through its lifecycle.
type ChangeTransactionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft active closed archived"`
}

// ListTransactionsRequest carries list filters and the pagination cursor.
type ListTransactionsRequest struct {
	Status    string `form:"status" binding:"omitempty,oneof=draft active closed archived"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken string `form:"nextToken"`
}

// TransactionItemResponse is one goods line in a response.
type TransactionItemResponse struct {
	ItemID        string          `json:"itemID"`
	MaterialID    string          `json:"materialID"`
	Description   string          `json:"description,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	GrossKg       decimal.Decimal `json:"grossKg"`
	NetKg         decimal.Decimal `json:"netKg"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
	PricingTypeID string          `json:"pricingTypeID"`
	CurrencyCode  string          `json:"currencyCode"`
}

// TransactionTotalsResponse carries the aggregated totals.
type TransactionTotalsResponse struct {
	Count   decimal.Decimal `json:"count"`
	GrossKg decimal.Decimal `json:"grossKg"`
	NetKg   decimal.Decimal `json:"netKg"`
	Value   decimal.Decimal `json:"value"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                    `json:"transactionID"`
	Number          string                    `json:"number"`
	Kind            string                    `json:"kind"`
	SellerCompanyID string                    `json:"sellerCompanyID"`
	BuyerCompanyID  string                    `json:"buyerCompanyID"`
	CurrencyCode    string                    `json:"currencyCode"`
	Status          string                    `json:"status"`
	TransactionDate time.Time                 `json:"transactionDate"`
	Notes           string                    `json:"notes,omitempty"`
	Items           []TransactionItemResponse `json:"items,omitempty"`
	Totals          TransactionTotalsResponse `json:"totals"`
	CreatedAt       time.Time                 `json:"createdAt"`
	CreatedBy       string                    `json:"createdBy"`
}

// ListTransactionsResponse wraps a page of transactions with the cursor for
// the next page (empty when exhausted).
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionItemResponse converts a domain item to its response DTO
func ToTransactionItemResponse(item domain.TransactionItem) TransactionItemResponse {
	return TransactionItemResponse{
		ItemID:        item.ItemID,
		MaterialID:    item.MaterialID,
		Description:   item.Description,
		Quantity:      item.Quantity,
		GrossKg:       item.GrossKg,
		NetKg:         item.NetKg,
		UnitPrice:     item.UnitPrice,
		LineTotal:     item.LineTotal,
		PricingTypeID: item.PricingTypeID,
		CurrencyCode:  item.CurrencyCode,
	}
}

// ToTransactionResponse converts a domain.Transaction to its response DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	items := make([]TransactionItemResponse, len(txn.Items))
	for i, item := range txn.Items {
		items[i] = ToTransactionItemResponse(item)
	}
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Number:          txn.Number,
		Kind:            string(txn.Kind),
		SellerCompanyID: txn.SellerCompanyID,
		BuyerCompanyID:  txn.BuyerCompanyID,
		CurrencyCode:    txn.CurrencyCode,
		Status:          string(txn.Status),
		TransactionDate: txn.TransactionDate,
		Notes:           txn.Notes,
		Items:           items,
		Totals: TransactionTotalsResponse{
			Count:   txn.Totals.Count,
			GrossKg: txn.Totals.GrossKg,
			NetKg:   txn.Totals.NetKg,
			Value:   txn.Totals.Value,
		},
		CreatedAt: txn.CreatedAt,
		CreatedBy: txn.CreatedBy,
	}
}
