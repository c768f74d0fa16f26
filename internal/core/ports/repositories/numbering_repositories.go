package repositories

import "context"

// NumberingRepositoryFacade exposes the persistence the numbering service
// needs: the stored counter in app_settings and the numbers actually in use
// in the transactions table.
type NumberingRepositoryFacade interface {
	// GetLastNumber returns the stored last transaction number, or 0 when
	// the setting has never been written.
	GetLastNumber(ctx context.Context) (int64, error)

	// SaveLastNumber persists the last transaction number.
	SaveLastNumber(ctx context.Context, n int64) error

	// MaxAssignedNumber returns the highest numeric transaction number
	// actually present in the transactions table (0 when none).
	MaxAssignedNumber(ctx context.Context) (int64, error)

	// NumberExists reports whether a transaction already carries the number.
	NumberExists(ctx context.Context, number string) (bool, error)
}
