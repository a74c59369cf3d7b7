package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cashier_app/internal/apperrors"
	"github.com/SscSPs/cashier_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashier_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashier_app/internal/core/ports/services"
	"github.com/SscSPs/cashier_app/internal/dto"
	"github.com/SscSPs/cashier_app/internal/utils/cashier"
	"github.com/SscSPs/cashier_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// DefaultListLimit is used when a list request carries no limit.
	DefaultListLimit = 20
	// MaxListLimit caps how many calculations one list request returns.
	MaxListLimit = 100
)

// maxAmount is the first value with more integer digits than the history stores.
var maxAmount = decimal.New(1, domain.MaxAmountIntegerDigits)

// ChangeService computes change and keeps a history of priced calculations.
type ChangeService struct {
	BaseService
	calcRepo portsrepo.CalculationRepositoryFacade
	now      func() time.Time
}

// ChangeServiceOption configures a ChangeService.
type ChangeServiceOption func(*ChangeService)

// WithClock overrides the time source used to stamp calculations.
func WithClock(now func() time.Time) ChangeServiceOption {
	return func(s *ChangeService) {
		s.now = now
	}
}

// NewChangeService creates a new ChangeService.
func NewChangeService(calcRepo portsrepo.CalculationRepositoryFacade, opts ...ChangeServiceOption) *ChangeService {
	s := &ChangeService{
		calcRepo: calcRepo,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ChangeSvcFacade = (*ChangeService)(nil)

// CalculateChange converts the purchase to a cent delta, breaks it down, and records it.
func (s *ChangeService) CalculateChange(ctx context.Context, req dto.CalculateChangeRequest) (*domain.ChangeCalculation, error) {
	// Presence is handled by DTO binding tags.
	if req.Price == nil || req.AmountPaid == nil {
		return nil, fmt.Errorf("%w: price and amount paid are required", apperrors.ErrValidation)
	}
	if err := validateAmount("price", *req.Price); err != nil {
		return nil, err
	}
	if err := validateAmount("amount paid", *req.AmountPaid); err != nil {
		return nil, err
	}

	changeUnits, err := cashier.ChangeUnitsFromAmounts(*req.Price, *req.AmountPaid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	calc := domain.ChangeCalculation{
		CalculationID: uuid.NewString(),
		Price:         *req.Price,
		AmountPaid:    *req.AmountPaid,
		Result:        cashier.CalculateChange(changeUnits),
		CreatedAt:     s.now().UTC(),
	}

	if err := s.calcRepo.SaveCalculation(ctx, calc); err != nil {
		s.LogError(ctx, err, "Failed to save change calculation", slog.String("calculation_id", calc.CalculationID))
		return nil, fmt.Errorf("failed to save change calculation in service: %w", err)
	}

	s.LogInfo(ctx, "Change calculated",
		slog.String("calculation_id", calc.CalculationID),
		slog.String("outcome", string(calc.Result.Outcome)),
		slog.Int64("change_units", int64(changeUnits)),
	)
	return &calc, nil
}

// validateAmount rejects amounts the history columns cannot store exactly.
func validateAmount(name string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s cannot be negative", apperrors.ErrValidation, name)
	}
	if !amount.Equal(amount.Truncate(domain.AmountScale)) {
		return fmt.Errorf("%w: %s cannot have more than %d decimal places", apperrors.ErrValidation, name, domain.AmountScale)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%w: %s must be less than %s", apperrors.ErrValidation, name, maxAmount.String())
	}
	return nil
}

// BreakDownUnits applies the change calculator to a raw cent amount.
func (s *ChangeService) BreakDownUnits(ctx context.Context, changeUnits domain.MinorUnits) domain.ChangeResult {
	result := cashier.CalculateChange(changeUnits)
	s.LogDebug(ctx, "Broke down change units",
		slog.Int64("change_units", int64(changeUnits)),
		slog.String("outcome", string(result.Outcome)),
	)
	return result
}

// ListDenominations returns a copy of the drawer so callers cannot reorder it.
func (s *ChangeService) ListDenominations(_ context.Context) []domain.Denomination {
	out := make([]domain.Denomination, len(domain.Denominations))
	copy(out, domain.Denominations)
	return out
}

// GetCalculationByID retrieves a recorded calculation.
func (s *ChangeService) GetCalculationByID(ctx context.Context, calculationID string) (*domain.ChangeCalculation, error) {
	if _, err := uuid.Parse(calculationID); err != nil {
		return nil, fmt.Errorf("%w: calculation ID %q is not a valid UUID", apperrors.ErrValidation, calculationID)
	}
	calc, err := s.calcRepo.FindCalculationByID(ctx, calculationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get calculation in service: %w", err)
	}
	return calc, nil
}

// ListCalculations retrieves a page of calculations, newest first.
func (s *ChangeService) ListCalculations(ctx context.Context, params dto.ListCalculationsParams) (*dto.ListCalculationsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	var after *pagination.Cursor
	if params.NextToken != nil && *params.NextToken != "" {
		cursor, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		after = &cursor
	}

	// We fetch one extra item to determine if there's a next page.
	calcs, err := s.calcRepo.ListRecentCalculations(ctx, limit+1, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list calculations from repository")
		return nil, fmt.Errorf("failed to list calculations in service: %w", err)
	}

	var nextToken *string
	if len(calcs) > limit {
		last := calcs[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.CalculationID})
		nextToken = &token
		calcs = calcs[:limit]
	}

	resp := dto.ToListCalculationsResponse(calcs, nextToken)
	s.LogDebug(ctx, "Calculations listed", slog.Int("count", len(resp.Calculations)), slog.Bool("has_more", nextToken != nil))
	return &resp, nil
}

// CheckHealth pings the history store.
func (s *ChangeService) CheckHealth(ctx context.Context) error {
	if err := s.calcRepo.Ping(ctx); err != nil {
		return fmt.Errorf("history store unavailable: %w", err)
	}
	return nil
}

