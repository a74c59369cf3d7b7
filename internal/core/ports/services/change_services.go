package services

import (
	"context"

	"github.com/SscSPs/cashier_app/internal/core/domain"
	"github.com/SscSPs/cashier_app/internal/dto"
)

// ChangeCalculatorSvc defines the change-making operations
type ChangeCalculatorSvc interface {
	// CalculateChange computes the change for a purchase and records it in the history.
	CalculateChange(ctx context.Context, req dto.CalculateChangeRequest) (*domain.ChangeCalculation, error)

	// BreakDownUnits breaks a raw cent amount without recording anything.
	BreakDownUnits(ctx context.Context, changeUnits domain.MinorUnits) domain.ChangeResult

	// ListDenominations returns the cash drawer, largest first.
	ListDenominations(ctx context.Context) []domain.Denomination
}

// ChangeHistorySvc defines read operations over past calculations
type ChangeHistorySvc interface {
	// GetCalculationByID retrieves a recorded calculation.
	GetCalculationByID(ctx context.Context, calculationID string) (*domain.ChangeCalculation, error)

	// ListCalculations retrieves a page of calculations, newest first. The response
	// carries a NextToken when more calculations remain.
	ListCalculations(ctx context.Context, params dto.ListCalculationsParams) (*dto.ListCalculationsResponse, error)
}

// ChangeSvcFacade combines all change-related service interfaces
type ChangeSvcFacade interface {
	ChangeCalculatorSvc
	ChangeHistorySvc

	// CheckHealth reports whether the history store is reachable.
	CheckHealth(ctx context.Context) error
}
