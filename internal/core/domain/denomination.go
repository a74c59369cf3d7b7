package domain

import "math"

// MinorUnits is an exact monetary amount counted in cents.
type MinorUnits int64

// UnitsPerMajor is the number of minor units in one dollar.
const UnitsPerMajor MinorUnits = 100

// Supported range of MinorUnits. It is symmetric so a shortfall -n always fits.
const (
	MaxMinorUnits MinorUnits = math.MaxInt64
	MinMinorUnits MinorUnits = -math.MaxInt64
)

// DenominationKind tells bills and coins apart.
type DenominationKind string

const (
	Bill DenominationKind = "BILL"
	Coin DenominationKind = "COIN"
)

// Denomination is a face value available for making change.
type Denomination struct {
	Value MinorUnits       `json:"value"` // Face value in cents
	Label string           `json:"label"` // e.g. "20$", "25¢"
	Kind  DenominationKind `json:"kind"`
}

// Denominations is the cash drawer, largest first. Order is part of the contract:
// breakdowns are computed and reported in this order.
//
// The table is canonical, so a greedy breakdown over it is also the one with the
// fewest pieces. Changing it requires re-checking that property.
var Denominations = []Denomination{
	{Value: 2000, Label: "20$", Kind: Bill},
	{Value: 1000, Label: "10$", Kind: Bill},
	{Value: 500, Label: "5$", Kind: Bill},
	{Value: 200, Label: "2$", Kind: Coin},
	{Value: 100, Label: "1$", Kind: Coin},
	{Value: 25, Label: "25¢", Kind: Coin},
	{Value: 10, Label: "10¢", Kind: Coin},
	{Value: 5, Label: "5¢", Kind: Coin},
	{Value: 1, Label: "1¢", Kind: Coin},
}

// DenominationCount is one line of a breakdown.
type DenominationCount struct {
	Denomination
	Count int64 `json:"count"`
}

// Subtotal is value × count.
func (dc DenominationCount) Subtotal() MinorUnits {
	return dc.Value * MinorUnits(dc.Count)
}

// Breakdown lists the pieces to hand back, in table order, non-zero counts only.
type Breakdown []DenominationCount

// Total sums the breakdown back into minor units.
func (b Breakdown) Total() MinorUnits {
	var total MinorUnits
	for _, dc := range b {
		total += dc.Subtotal()
	}
	return total
}

// Pieces is the total number of bills and coins.
func (b Breakdown) Pieces() int64 {
	var n int64
	for _, dc := range b {
		n += dc.Count
	}
	return n
}
