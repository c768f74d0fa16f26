package services

import (
	"context"

	"github.com/logiport/logiport_backend/internal/dto"
)

// DocumentSvcFacade builds language-resolved document contexts from
// transaction data.
type DocumentSvcFacade interface {
	// BuildContext aggregates a transaction, its currency and its totals
	// into the context a renderer needs, including the amount-in-words
	// line in the requested language.
	BuildContext(ctx context.Context, transactionID string, req dto.BuildDocumentRequest) (*dto.DocumentContextResponse, error)
}
