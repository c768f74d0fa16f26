package services

import "context"

// NumberingSvcFacade assigns transaction numbers and document reference
// prefixes.
type NumberingSvcFacade interface {
	// NextTransactionNumber reserves and returns the next free transaction
	// number. Numbers freed by deletions are reused before new ones are
	// minted; the counter never moves backwards past a number still in use.
	NextTransactionNumber(ctx context.Context) (string, error)

	// SyncLastNumber realigns the stored counter with the numbers actually
	// present, after deletions. Returns the resulting counter value.
	SyncLastNumber(ctx context.Context) (int64, error)

	// PrefixForDocCode returns the file/reference prefix for a document
	// code (e.g. "invoice.proforma" -> "INV-PRO").
	PrefixForDocCode(docCode string) string
}
