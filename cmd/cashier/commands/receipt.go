package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/cashier_app/internal/core/domain"
	"github.com/SscSPs/cashier_app/internal/utils"
	"github.com/fatih/color"
)

var (
	warnColor  = color.New(color.FgRed, color.Bold)
	okColor    = color.New(color.FgGreen)
	titleColor = color.New(color.FgYellow, color.Bold)
)

// WriteReceipt prints the result the way a cashier reads it: the shortfall, an exact
// payment notice, or the change due followed by one line per denomination.
func WriteReceipt(w io.Writer, result domain.ChangeResult) error {
	switch result.Outcome {
	case domain.InsufficientFunds:
		_, err := warnColor.Fprintf(w, "Insufficient payment, missing %s $\n", utils.FormatMinorUnits(result.Shortfall))
		return err
	case domain.ExactPayment:
		_, err := okColor.Fprintln(w, "Exact payment")
		return err
	}

	icon := "💵"
	if result.IsLargeChange() {
		icon = "💰"
	}
	if _, err := titleColor.Fprintf(w, "Overpaid %s. Give back %s $\n", icon, utils.FormatMinorUnits(result.ChangeUnits)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Take from the drawer\n%s\n\n", strings.Repeat("-", 20)); err != nil {
		return err
	}
	for _, dc := range result.Breakdown {
		if _, err := fmt.Fprintf(w, "%-3s : %d\n", dc.Label, dc.Count); err != nil {
			return err
		}
	}
	return nil
}
