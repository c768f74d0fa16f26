package services

import (
	"context"

	"github.com/logiport/logiport_backend/internal/core/domain"
	"github.com/logiport/logiport_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction with its items.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions.
	ListTransactions(ctx context.Context, req dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// CreateTransaction validates the request, assigns the next
	// transaction number, computes missing line totals and the aggregate
	// totals, and persists the transaction as a draft.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// ReplaceItems swaps the goods lines of a transaction and recomputes
	// totals. Only draft and active transactions may be edited.
	ReplaceItems(ctx context.Context, transactionID string, req dto.UpdateTransactionItemsRequest, updaterUserID string) (*domain.Transaction, error)

	// ChangeStatus moves a transaction through its lifecycle, enforcing
	// the allowed transitions.
	ChangeStatus(ctx context.Context, transactionID string, next domain.TransactionStatus, updaterUserID string) (*domain.Transaction, error)

	// DeleteTransaction removes a draft transaction and releases its
	// number for reuse.
	DeleteTransaction(ctx context.Context, transactionID string, deleterUserID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
