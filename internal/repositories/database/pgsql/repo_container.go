package pgsql

import (
	portsrepo "github.com/logiport/logiport_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:    newPgxCurrencyRepository(dbPool),
		PricingTypeRepo: newPgxPricingTypeRepository(dbPool),
		PriceRuleRepo:   newPgxPriceRuleRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		NumberingRepo:   newPgxNumberingRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
