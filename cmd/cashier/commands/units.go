package commands

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/cashier_app/internal/core/domain"
	"github.com/SscSPs/cashier_app/internal/utils/cashier"
	"github.com/spf13/cobra"
)

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units <cents>",
		Short: "Break an amount of cents into bills and coins",
		Long:  "Break an amount of cents into bills and coins. A negative amount is reported as a shortfall.",
		Example: "  cashier units 4367\n" +
			"  cashier units -- -150",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%q is not a whole number of cents", args[0])
			}
			if domain.MinorUnits(n) < domain.MinMinorUnits {
				return fmt.Errorf("%d is below the smallest supported amount %d", n, domain.MinMinorUnits)
			}
			return WriteReceipt(cmd.OutOrStdout(), cashier.CalculateChange(domain.MinorUnits(n)))
		},
	}
}
