package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChangeOutcome classifies the result of a change calculation.
type ChangeOutcome string

const (
	ChangeDue         ChangeOutcome = "CHANGE_DUE"
	ExactPayment      ChangeOutcome = "EXACT_PAYMENT"
	InsufficientFunds ChangeOutcome = "INSUFFICIENT_FUNDS"
)

// LargeChangeThreshold marks change that needs at least one 20$ bill.
const LargeChangeThreshold MinorUnits = 2000

// ChangeResult is the outcome of breaking an amount into denominations.
// Only one of ChangeUnits/Shortfall is non-zero; Breakdown is empty unless the
// outcome is ChangeDue.
type ChangeResult struct {
	Outcome     ChangeOutcome `json:"outcome"`
	ChangeUnits MinorUnits    `json:"changeUnits"`
	Shortfall   MinorUnits    `json:"shortfall"`
	Breakdown   Breakdown     `json:"breakdown"`
}

// IsLargeChange reports whether the change due reaches LargeChangeThreshold.
func (r ChangeResult) IsLargeChange() bool {
	return r.Outcome == ChangeDue && r.ChangeUnits >= LargeChangeThreshold
}

// Recorded prices and payments match the NUMERIC(19, 4) history columns.
const (
	AmountScale            = 4
	MaxAmountIntegerDigits = 15
)

// ChangeCalculation is a priced calculation kept in the history.
type ChangeCalculation struct {
	CalculationID string          `json:"calculationID"` // Primary Key (UUID)
	Price         decimal.Decimal `json:"price"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	Result        ChangeResult    `json:"result"`
	CreatedAt     time.Time       `json:"createdAt"`
}
