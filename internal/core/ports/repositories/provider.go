package repositories

// RepositoryProvider bundles the persistence ports for service wiring.
type RepositoryProvider struct {
	PartyRepo     PartyRepository
	ProductRepo   ProductRepository
	StockRepo     StockRepository
	PaymentRepo   PaymentRepository
	ReportingRepo ReportingRepository
	UserRepo      UserRepository
}
