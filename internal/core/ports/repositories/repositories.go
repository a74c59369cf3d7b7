package repositories

// RepositoryProvider holds every repository the services need.
type RepositoryProvider struct {
	CalculationRepo CalculationRepositoryFacade
}
