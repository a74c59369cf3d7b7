package repositories

import (
	"context"

	"github.com/SscSPs/cashier_app/internal/core/domain"
	"github.com/SscSPs/cashier_app/internal/utils/pagination"
)

// CalculationReader defines read operations for the calculation history
type CalculationReader interface {
	// FindCalculationByID retrieves a stored calculation. Returns apperrors.ErrNotFound if missing.
	FindCalculationByID(ctx context.Context, calculationID string) (*domain.ChangeCalculation, error)

	// ListRecentCalculations retrieves up to limit calculations ordered by
	// (created_at DESC, calculation_id DESC), starting after the cursor when one is given.
	ListRecentCalculations(ctx context.Context, limit int, after *pagination.Cursor) ([]domain.ChangeCalculation, error)
}

// CalculationWriter defines write operations for the calculation history
type CalculationWriter interface {
	// SaveCalculation persists a new calculation.
	SaveCalculation(ctx context.Context, calc domain.ChangeCalculation) error
}

// CalculationRepositoryFacade combines all calculation-related repository interfaces
type CalculationRepositoryFacade interface {
	CalculationReader
	CalculationWriter
	HealthChecker
}
