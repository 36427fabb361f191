package services

import (
	portsrepo "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/repositories"
	portssvc "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/services"
	"github.com/jainutkarshh/StockFlow-ERP/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Party = NewPartyService(repos.PartyRepo)
	container.Product = NewProductService(repos.ProductRepo)
	container.Stock = NewStockService(repos.ProductRepo, repos.PartyRepo, repos.StockRepo)

	// The ledger service is built first since settlements size themselves
	// from computed balances.
	container.Ledger = NewLedgerService(repos.PartyRepo, repos.StockRepo, repos.PaymentRepo, repos.ReportingRepo)
	container.Payment = NewPaymentService(repos.PartyRepo, repos.PaymentRepo, container.Ledger)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}
