package services

// ServiceContainer bundles the application services for route registration.
type ServiceContainer struct {
	Party   PartyService
	Product ProductService
	Stock   StockService
	Payment PaymentService
	Ledger  LedgerService
	User    UserService
	Token   TokenService
}
