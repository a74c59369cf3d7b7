package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/cashier_app/internal/apperrors"
	"github.com/SscSPs/cashier_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashier_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashier_app/internal/models"
	"github.com/SscSPs/cashier_app/internal/utils/mapping"
	"github.com/SscSPs/cashier_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCalculationRepository struct {
	BaseRepository
}

// newPgxCalculationRepository creates a new repository for the calculation history.
func newPgxCalculationRepository(pool *pgxpool.Pool) portsrepo.CalculationRepositoryFacade {
	return &PgxCalculationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CalculationRepositoryFacade = (*PgxCalculationRepository)(nil)

const calculationColumns = `calculation_id, price, amount_paid, outcome, change_units, shortfall, breakdown, created_at`

// SaveCalculation inserts a new calculation row.
func (r *PgxCalculationRepository) SaveCalculation(ctx context.Context, calc domain.ChangeCalculation) error {
	modelCalc, err := mapping.ToModelChangeCalculation(calc)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO change_calculations (` + calculationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err = r.Pool.Exec(ctx, query,
		modelCalc.CalculationID,
		modelCalc.Price,
		modelCalc.AmountPaid,
		modelCalc.Outcome,
		modelCalc.ChangeUnits,
		modelCalc.Shortfall,
		modelCalc.Breakdown,
		modelCalc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("calculation %s: %w", modelCalc.CalculationID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save calculation %s: %w", modelCalc.CalculationID, err)
	}
	return nil
}

// FindCalculationByID retrieves a calculation by its ID.
func (r *PgxCalculationRepository) FindCalculationByID(ctx context.Context, calculationID string) (*domain.ChangeCalculation, error) {
	query := `
		SELECT ` + calculationColumns + `
		FROM change_calculations
		WHERE calculation_id = $1;
	`
	var modelCalc models.ChangeCalculation
	err := scanCalculation(r.Pool.QueryRow(ctx, query, calculationID), &modelCalc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find calculation %s: %w", calculationID, err)
	}

	domainCalc, err := mapping.ToDomainChangeCalculation(modelCalc)
	if err != nil {
		return nil, err
	}
	return &domainCalc, nil
}

// ListRecentCalculations retrieves up to limit calculations, newest first, starting
// strictly after the given cursor when one is supplied.
func (r *PgxCalculationRepository) ListRecentCalculations(ctx context.Context, limit int, after *pagination.Cursor) ([]domain.ChangeCalculation, error) {
	if limit <= 0 {
		return []domain.ChangeCalculation{}, nil
	}

	baseQuery := `
		SELECT ` + calculationColumns + `
		FROM change_calculations
	`
	// calculation_id breaks ties between rows stamped with the same instant.
	orderByClause := `ORDER BY created_at DESC, calculation_id DESC`

	args := []interface{}{}
	whereClause := ""
	if after != nil {
		// Tuple comparison matches the ORDER BY above.
		whereClause = `WHERE (created_at, calculation_id) < ($1, $2)`
		args = append(args, after.CreatedAt, after.ID)
	}
	query := baseQuery + " " + whereClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}
	defer rows.Close()

	modelCalcs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ChangeCalculation, error) {
		var calc models.ChangeCalculation
		err := scanCalculation(row, &calc)
		return calc, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan calculations: %w", err)
	}

	return mapping.ToDomainChangeCalculationSlice(modelCalcs)
}

func scanCalculation(row pgx.Row, calc *models.ChangeCalculation) error {
	return row.Scan(
		&calc.CalculationID,
		&calc.Price,
		&calc.AmountPaid,
		&calc.Outcome,
		&calc.ChangeUnits,
		&calc.Shortfall,
		&calc.Breakdown,
		&calc.CreatedAt,
	)
}
