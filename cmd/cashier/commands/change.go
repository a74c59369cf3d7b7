package commands

import (
	"fmt"

	"github.com/SscSPs/cashier_app/internal/utils/cashier"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func changeCmd() *cobra.Command {
	var price, paid string
	cmd := &cobra.Command{
		Use:   "change",
		Short: "Compute the change owed for a purchase",
		Example: "  cashier change --price 12.33 --paid 56\n" +
			"  cashier change --price 10 --paid 8.50",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseAmount("price", price)
			if err != nil {
				return err
			}
			a, err := parseAmount("paid", paid)
			if err != nil {
				return err
			}
			units, err := cashier.ChangeUnitsFromAmounts(p, a)
			if err != nil {
				return fmt.Errorf("--price %s --paid %s: %w", p, a, err)
			}
			return WriteReceipt(cmd.OutOrStdout(), cashier.CalculateChange(units))
		},
	}
	cmd.Flags().StringVar(&price, "price", "", "item price in dollars, e.g. 12.33")
	cmd.Flags().StringVar(&paid, "paid", "", "amount paid in dollars, e.g. 56")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("paid")
	return cmd
}

func parseAmount(name, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %q is not an amount", name, raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("--%s: amount cannot be negative", name)
	}
	return d, nil
}
