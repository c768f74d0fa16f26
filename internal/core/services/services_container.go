package services

import (
	portsrepo "github.com/logiport/logiport_backend/internal/core/ports/repositories"
	portssvc "github.com/logiport/logiport_backend/internal/core/ports/services"
	"github.com/logiport/logiport_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency, pricing and numbering come first since the transaction and
	// document services depend on them.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Pricing = NewPricingService(repos.PricingTypeRepo, repos.PriceRuleRepo)
	container.Numbering = NewNumberingService(repos.NumberingRepo, cfg.TransactionNumberPrefix)

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		container.Currency,
		container.Pricing,
		container.Numbering,
	)

	container.Document = NewDocumentService(
		container.Transaction,
		container.Currency,
		container.Pricing,
		container.Numbering,
	)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}
