package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/cashier_app/internal/apperrors"
	"github.com/SscSPs/cashier_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashier_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashier_app/internal/utils/pagination"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultHistorySize is used when no positive size is configured.
const DefaultHistorySize = 1000

// CalculationRepository keeps the most recent calculations in a bounded LRU.
// Used when no database is configured; the oldest entries are evicted first.
type CalculationRepository struct {
	cache *lru.Cache[string, domain.ChangeCalculation]
}

// Ensure implementation matches interface
var _ portsrepo.CalculationRepositoryFacade = (*CalculationRepository)(nil)

// NewCalculationRepository creates an in-memory history holding up to size entries.
func NewCalculationRepository(size int) (*CalculationRepository, error) {
	if size <= 0 {
		size = DefaultHistorySize
	}
	cache, err := lru.New[string, domain.ChangeCalculation](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create calculation cache: %w", err)
	}
	return &CalculationRepository{cache: cache}, nil
}

// SaveCalculation stores calc, refusing to overwrite an existing id.
func (r *CalculationRepository) SaveCalculation(_ context.Context, calc domain.ChangeCalculation) error {
	if ok, _ := r.cache.ContainsOrAdd(calc.CalculationID, calc); ok {
		return fmt.Errorf("calculation %s: %w", calc.CalculationID, apperrors.ErrDuplicate)
	}
	return nil
}

// FindCalculationByID looks a calculation up without touching its recency.
func (r *CalculationRepository) FindCalculationByID(_ context.Context, calculationID string) (*domain.ChangeCalculation, error) {
	calc, ok := r.cache.Peek(calculationID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &calc, nil
}

// ListRecentCalculations returns up to limit calculations, newest first, in the same
// order the Postgres repository uses.
func (r *CalculationRepository) ListRecentCalculations(_ context.Context, limit int, after *pagination.Cursor) ([]domain.ChangeCalculation, error) {
	if limit <= 0 {
		return []domain.ChangeCalculation{}, nil
	}

	// Values is a snapshot; entries evicted meanwhile are simply not listed.
	all := r.cache.Values()
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CalculationID > all[j].CalculationID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	out := make([]domain.ChangeCalculation, 0, min(limit, len(all)))
	for _, calc := range all {
		if after != nil && !after.Precedes(calc.CreatedAt, calc.CalculationID) {
			continue
		}
		out = append(out, calc)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// Ping always succeeds.
func (r *CalculationRepository) Ping(context.Context) error {
	return nil
}
