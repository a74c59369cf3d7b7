package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChangeCalculation is the change_calculations row.
type ChangeCalculation struct {
	CalculationID string          `json:"calculationID"`
	Price         decimal.Decimal `json:"price"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	Outcome       string          `json:"outcome"`
	ChangeUnits   int64           `json:"changeUnits"`
	Shortfall     int64           `json:"shortfall"`
	Breakdown     []byte          `json:"breakdown"` // JSONB
	CreatedAt     time.Time       `json:"createdAt"`
}
