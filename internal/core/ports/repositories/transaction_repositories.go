package repositories

import (
	"context"
	"time"

	"github.com/logiport/logiport_backend/internal/core/domain"
)

// TransactionReader defines read operations for transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its items.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions ordered by transaction date
	// then creation time descending, optionally filtered by status,
	// starting strictly after the (afterDate, afterCreatedAt) cursor pair
	// (zero values = from the top), limited to limit rows. The creation
	// time breaks ties between rows sharing a transaction date.
	ListTransactions(ctx context.Context, status *domain.TransactionStatus, afterDate, afterCreatedAt time.Time, limit int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transactions
type TransactionWriter interface {
	// SaveTransaction persists a transaction header and its items
	// atomically, replacing any previously stored items.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionStatus moves a transaction to a new status.
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, updaterUserID string) error

	// DeleteTransaction removes a transaction and its items.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
