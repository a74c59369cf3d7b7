package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var noColor bool

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cashier",
		Short:        "Compute change and break it into bills and coins",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	root.AddCommand(changeCmd(), unitsCmd(), denominationsCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
