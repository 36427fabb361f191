package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartyRepo:     newPgxPartyRepository(dbPool),
		ProductRepo:   newPgxProductRepository(dbPool),
		StockRepo:     newPgxStockRepository(dbPool),
		PaymentRepo:   newPgxPaymentRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
	}
}
