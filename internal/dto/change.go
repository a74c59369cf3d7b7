package dto

import (
	"time"

	"github.com/SscSPs/cashier_app/internal/core/domain"
	"github.com/SscSPs/cashier_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CalculateChangeRequest defines the data needed to compute change for a purchase.
// Amounts accept JSON numbers or strings ("12.33").
type CalculateChangeRequest struct {
	Price      *decimal.Decimal `json:"price" binding:"required" swaggertype:"string" example:"12.33"`
	AmountPaid *decimal.Decimal `json:"amountPaid" binding:"required" swaggertype:"string" example:"56.00"`
}

// BreakDownUnitsRequest asks for the breakdown of a raw cent amount. Negative values
// are allowed and report a shortfall; the minimum keeps that shortfall representable.
type BreakDownUnitsRequest struct {
	ChangeUnits *int64 `json:"changeUnits" binding:"required,min=-9223372036854775807" example:"4367"`
}

// ListCalculationsParams defines query parameters for listing past calculations.
type ListCalculationsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"` // Token for fetching the next page
}

// DenominationResponse defines the data returned for a denomination.
type DenominationResponse struct {
	Value   int64  `json:"value"`   // Face value in cents
	Display string `json:"display"` // Face value in dollars, e.g. "0.25"
	Label   string `json:"label"`
	Kind    string `json:"kind"`
}

// DenominationCountResponse is one line of a breakdown.
type DenominationCountResponse struct {
	Label    string `json:"label"`
	Value    int64  `json:"value"`
	Kind     string `json:"kind"`
	Count    int64  `json:"count"`
	Subtotal string `json:"subtotal"`
}

// ChangeResultResponse defines the data returned for a breakdown.
type ChangeResultResponse struct {
	Outcome        string                      `json:"outcome" example:"CHANGE_DUE"`
	ChangeUnits    int64                       `json:"changeUnits"`
	ChangeDue      string                      `json:"changeDue" example:"43.67"`
	ShortfallUnits int64                       `json:"shortfallUnits"`
	Shortfall      string                      `json:"shortfall" example:"0.00"`
	LargeChange    bool                        `json:"largeChange"`
	Pieces         int64                       `json:"pieces"`
	Breakdown      []DenominationCountResponse `json:"breakdown"`
}

// ChangeCalculationResponse defines the data returned for a recorded calculation.
type ChangeCalculationResponse struct {
	CalculationID string          `json:"calculationID"`
	Price         decimal.Decimal `json:"price" swaggertype:"string"`
	AmountPaid    decimal.Decimal `json:"amountPaid" swaggertype:"string"`
	ChangeResultResponse
	CreatedAt time.Time `json:"createdAt"`
}

// ListCalculationsResponse wraps a page of calculations.
type ListCalculationsResponse struct {
	Calculations []ChangeCalculationResponse `json:"calculations"`
	NextToken    *string                     `json:"nextToken,omitempty"` // Absent on the last page
}

// ToDenominationResponse converts a domain.Denomination to its DTO
func ToDenominationResponse(d domain.Denomination) DenominationResponse {
	return DenominationResponse{
		Value:   int64(d.Value),
		Display: utils.FormatMinorUnits(d.Value),
		Label:   d.Label,
		Kind:    string(d.Kind),
	}
}

// ToListDenominationResponse converts the drawer to DTOs, preserving order
func ToListDenominationResponse(ds []domain.Denomination) []DenominationResponse {
	res := make([]DenominationResponse, len(ds))
	for i, d := range ds {
		res[i] = ToDenominationResponse(d)
	}
	return res
}

// ToChangeResultResponse converts a domain.ChangeResult to its DTO
func ToChangeResultResponse(r domain.ChangeResult) ChangeResultResponse {
	lines := make([]DenominationCountResponse, len(r.Breakdown))
	for i, dc := range r.Breakdown {
		lines[i] = DenominationCountResponse{
			Label:    dc.Label,
			Value:    int64(dc.Value),
			Kind:     string(dc.Kind),
			Count:    dc.Count,
			Subtotal: utils.FormatMinorUnits(dc.Subtotal()),
		}
	}
	return ChangeResultResponse{
		Outcome:        string(r.Outcome),
		ChangeUnits:    int64(r.ChangeUnits),
		ChangeDue:      utils.FormatMinorUnits(r.ChangeUnits),
		ShortfallUnits: int64(r.Shortfall),
		Shortfall:      utils.FormatMinorUnits(r.Shortfall),
		LargeChange:    r.IsLargeChange(),
		Pieces:         r.Breakdown.Pieces(),
		Breakdown:      lines,
	}
}

// ToChangeCalculationResponse converts a domain.ChangeCalculation to its DTO
func ToChangeCalculationResponse(c *domain.ChangeCalculation) ChangeCalculationResponse {
	return ChangeCalculationResponse{
		CalculationID:        c.CalculationID,
		Price:                c.Price,
		AmountPaid:           c.AmountPaid,
		ChangeResultResponse: ToChangeResultResponse(c.Result),
		CreatedAt:            c.CreatedAt,
	}
}

// ToListCalculationsResponse converts a page of calculations to the list DTO
func ToListCalculationsResponse(calcs []domain.ChangeCalculation, nextToken *string) ListCalculationsResponse {
	res := make([]ChangeCalculationResponse, len(calcs))
	for i := range calcs {
		res[i] = ToChangeCalculationResponse(&calcs[i])
	}
	return ListCalculationsResponse{Calculations: res, NextToken: nextToken}
}
