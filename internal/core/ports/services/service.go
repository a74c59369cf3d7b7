package services

// ServiceContainer holds instances of all the application services.
// It is built in main and handed to the handlers.
type ServiceContainer struct {
	Change ChangeSvcFacade
}
