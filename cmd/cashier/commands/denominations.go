package commands

import (
	"fmt"

	"github.com/SscSPs/cashier_app/internal/core/domain"
	"github.com/SscSPs/cashier_app/internal/utils"
	"github.com/spf13/cobra"
)

func denominationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "denominations",
		Short: "List the cash drawer, largest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, d := range domain.Denominations {
				if _, err := fmt.Fprintf(out, "%-4s %-4s %6s $\n", d.Label, d.Kind, utils.FormatMinorUnits(d.Value)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
