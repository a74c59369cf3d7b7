package cashier

import (
	"errors"
	"fmt"
	"math"

	"github.com/SscSPs/cashier_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrAmountOutOfRange is returned when an amount does not fit in domain.MinorUnits.
var ErrAmountOutOfRange = errors.New("amount out of range")

var (
	maxUnits = decimal.NewFromInt(int64(domain.MaxMinorUnits))
	minUnits = decimal.NewFromInt(int64(domain.MinMinorUnits))
)

// ToMinorUnits converts a dollar amount to whole cents, rounding half to even.
// This is the only place a fractional amount becomes an integer amount.
func ToMinorUnits(amount decimal.Decimal) (domain.MinorUnits, error) {
	cents := amount.Shift(2).RoundBank(0)
	if cents.GreaterThan(maxUnits) || cents.LessThan(minUnits) {
		return 0, fmt.Errorf("%w: %s", ErrAmountOutOfRange, amount.String())
	}
	return domain.MinorUnits(cents.IntPart()), nil
}

// ChangeUnitsFromAmounts returns paid - price in cents. A negative result means the
// payment falls short.
func ChangeUnitsFromAmounts(price, paid decimal.Decimal) (domain.MinorUnits, error) {
	// Subtract first so the difference is rounded once, not each side separately.
	return ToMinorUnits(paid.Sub(price))
}

// CalculateChange breaks changeUnits into the default denominations.
// changeUnits must not be below domain.MinMinorUnits.
//
// Negative input short-circuits to InsufficientFunds carrying the shortfall, zero is
// ExactPayment, and anything else yields a greedy breakdown that sums back to the
// input exactly.
func CalculateChange(changeUnits domain.MinorUnits) domain.ChangeResult {
	switch {
	case changeUnits < 0:
		return domain.ChangeResult{
			Outcome:   domain.InsufficientFunds,
			Shortfall: -changeUnits,
			Breakdown: domain.Breakdown{},
		}
	case changeUnits == 0:
		return domain.ChangeResult{
			Outcome:   domain.ExactPayment,
			Breakdown: domain.Breakdown{},
		}
	}

	// The default table ends in a 1¢ coin, so the residue is always zero.
	breakdown, _ := BreakDownWith(domain.Denominations, changeUnits)
	return domain.ChangeResult{
		Outcome:     domain.ChangeDue,
		ChangeUnits: changeUnits,
		Breakdown:   breakdown,
	}
}

// BreakDownWith runs the greedy largest-first breakdown over table, which must be
// sorted by descending value. It returns the breakdown and whatever could not be paid
// out with the given table.
func BreakDownWith(table []domain.Denomination, units domain.MinorUnits) (domain.Breakdown, domain.MinorUnits) {
	breakdown := domain.Breakdown{}
	remaining := units
	for _, d := range table {
		if remaining <= 0 {
			break
		}
		count := remaining / d.Value
		if count > 0 {
			breakdown = append(breakdown, domain.DenominationCount{Denomination: d, Count: int64(count)})
		}
		remaining %= d.Value
	}
	return breakdown, remaining
}

// ValidateTable checks that table is usable for greedy change-making: strictly
// descending positive values ending with a unit value of 1.
func ValidateTable(table []domain.Denomination) error {
	if len(table) == 0 {
		return fmt.Errorf("denomination table is empty")
	}
	for i, d := range table {
		if d.Value <= 0 {
			return fmt.Errorf("denomination %q has non-positive value %d", d.Label, d.Value)
		}
		if i > 0 && d.Value >= table[i-1].Value {
			return fmt.Errorf("denomination %q (%d) is not smaller than %q (%d)", d.Label, d.Value, table[i-1].Label, table[i-1].Value)
		}
	}
	if last := table[len(table)-1]; last.Value != 1 {
		return fmt.Errorf("smallest denomination must be 1, got %q (%d)", last.Label, last.Value)
	}
	return nil
}

// ValidateCanonical fails unless table is a valid drawer on which greedy change
// always uses the fewest pieces.
func ValidateCanonical(table []domain.Denomination) error {
	ok, err := IsCanonical(table)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("denomination table is not canonical: greedy change is not always minimal")
	}
	return nil
}

// IsCanonical reports whether the greedy breakdown over table always uses the fewest
// pieces. A counterexample, if any, is smaller than the sum of the two largest values,
// so only that range is compared against an exact minimum-count solution.
func IsCanonical(table []domain.Denomination) (bool, error) {
	if err := ValidateTable(table); err != nil {
		return false, err
	}
	if len(table) < 3 {
		return true, nil
	}

	limit := table[0].Value + table[1].Value
	best := make([]int64, limit)
	for x := domain.MinorUnits(1); x < limit; x++ {
		best[x] = math.MaxInt64
		for _, d := range table {
			if d.Value <= x && best[x-d.Value]+1 < best[x] {
				best[x] = best[x-d.Value] + 1
			}
		}
		greedy, _ := BreakDownWith(table, x)
		if greedy.Pieces() > best[x] {
			return false, nil
		}
	}
	return true, nil
}
