package services

import (
	portsrepo "github.com/SscSPs/cashier_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashier_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Change: NewChangeService(repos.CalculationRepo),
	}
}
