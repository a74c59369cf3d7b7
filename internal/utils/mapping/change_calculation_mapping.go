package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/cashier_app/internal/core/domain"
	"github.com/SscSPs/cashier_app/internal/models"
)

// ToModelChangeCalculation converts a domain ChangeCalculation to a model ChangeCalculation
func ToModelChangeCalculation(d domain.ChangeCalculation) (models.ChangeCalculation, error) {
	breakdown := d.Result.Breakdown
	if breakdown == nil {
		breakdown = domain.Breakdown{}
	}
	raw, err := json.Marshal(breakdown)
	if err != nil {
		return models.ChangeCalculation{}, fmt.Errorf("failed to encode breakdown: %w", err)
	}
	return models.ChangeCalculation{
		CalculationID: d.CalculationID,
		Price:         d.Price,
		AmountPaid:    d.AmountPaid,
		Outcome:       string(d.Result.Outcome),
		ChangeUnits:   int64(d.Result.ChangeUnits),
		Shortfall:     int64(d.Result.Shortfall),
		Breakdown:     raw,
		CreatedAt:     d.CreatedAt,
	}, nil
}

// ToDomainChangeCalculation converts a model ChangeCalculation to a domain ChangeCalculation
func ToDomainChangeCalculation(m models.ChangeCalculation) (domain.ChangeCalculation, error) {
	breakdown := domain.Breakdown{}
	if len(m.Breakdown) > 0 {
		if err := json.Unmarshal(m.Breakdown, &breakdown); err != nil {
			return domain.ChangeCalculation{}, fmt.Errorf("failed to decode breakdown for calculation %s: %w", m.CalculationID, err)
		}
	}
	return domain.ChangeCalculation{
		CalculationID: m.CalculationID,
		Price:         m.Price,
		AmountPaid:    m.AmountPaid,
		Result: domain.ChangeResult{
			Outcome:     domain.ChangeOutcome(m.Outcome),
			ChangeUnits: domain.MinorUnits(m.ChangeUnits),
			Shortfall:   domain.MinorUnits(m.Shortfall),
			Breakdown:   breakdown,
		},
		CreatedAt: m.CreatedAt,
	}, nil
}

// ToDomainChangeCalculationSlice converts a slice of model rows to domain calculations
func ToDomainChangeCalculationSlice(ms []models.ChangeCalculation) ([]domain.ChangeCalculation, error) {
	ds := make([]domain.ChangeCalculation, len(ms))
	for i, m := range ms {
		d, err := ToDomainChangeCalculation(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
