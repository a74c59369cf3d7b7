package utils

import (
	"github.com/SscSPs/cashier_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatMinorUnits formats a cent amount as dollars with two decimals.
// Example: 4367 returns "43.67", -150 returns "-1.50"
func FormatMinorUnits(units domain.MinorUnits) string {
	return MinorUnitsToDecimal(units).StringFixed(2)
}

// MinorUnitsToDecimal scales a cent amount back to dollars.
func MinorUnitsToDecimal(units domain.MinorUnits) decimal.Decimal {
	return decimal.New(int64(units), -2)
}
