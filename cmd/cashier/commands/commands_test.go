package commands_test

import (
	"bytes"
	"testing"

	"github.com/SscSPs/cashier_app/cmd/cashier/commands"
	"github.com/SscSPs/cashier_app/internal/utils/cashier"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	root := commands.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestChangeCommand_PrintsBreakdown(t *testing.T) {
	out, err := run(t, "change", "--price", "12.33", "--paid", "56")
	require.NoError(t, err)

	want := "Overpaid 💰. Give back 43.67 $\n" +
		"Take from the drawer\n" +
		"--------------------\n\n" +
		"20$ : 2\n" +
		"5$  : 1\n" +
		"2$  : 1\n" +
		"25¢ : 2\n" +
		"10¢ : 1\n" +
		"5¢  : 1\n" +
		"1¢  : 2\n"
	assert.Equal(t, want, out)
}

func TestChangeCommand_Insufficient(t *testing.T) {
	out, err := run(t, "change", "--price", "10", "--paid", "8.50")
	require.NoError(t, err)
	assert.Equal(t, "Insufficient payment, missing 1.50 $\n", out)
}

func TestChangeCommand_Exact(t *testing.T) {
	out, err := run(t, "change", "--price", "19.99", "--paid", "19.99")
	require.NoError(t, err)
	assert.Equal(t, "Exact payment\n", out)
}

func TestChangeCommand_RejectsBadInput(t *testing.T) {
	_, err := run(t, "change", "--price", "abc", "--paid", "1")
	assert.Error(t, err)

	_, err = run(t, "change", "--price", "-1", "--paid", "1")
	assert.Error(t, err)

	_, err = run(t, "change", "--price", "1")
	assert.Error(t, err)
}

func TestUnitsCommand(t *testing.T) {
	out, err := run(t, "units", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "Overpaid 💰. Give back 20.00 $")
	assert.Contains(t, out, "20$ : 1\n")
	assert.NotContains(t, out, "10$")

	out, err = run(t, "units", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Overpaid 💵")
	assert.Contains(t, out, "1¢  : 1\n")

	_, err = run(t, "units", "1.5")
	assert.Error(t, err)
}

func TestDenominationsCommand(t *testing.T) {
	out, err := run(t, "denominations")
	require.NoError(t, err)
	assert.Contains(t, out, "20$  BILL  20.00 $")
	assert.Contains(t, out, "1¢   COIN   0.01 $")
}

func TestWriteReceipt_SmallChangeIcon(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	require.NoError(t, commands.WriteReceipt(&buf, cashier.CalculateChange(1999)))
	assert.Contains(t, buf.String(), "💵")
}

func TestUnitsCommand_NegativeAfterDoubleDash(t *testing.T) {
	out, err := run(t, "units", "--", "-150")
	require.NoError(t, err)
	assert.Equal(t, "Insufficient payment, missing 1.50 $\n", out)
}

func TestChangeCommand_RejectsAmountsTooLargeForCents(t *testing.T) {
	out, err := run(t, "change", "--price", "0", "--paid", "100000000000000000")

	require.ErrorIs(t, err, cashier.ErrAmountOutOfRange)
	assert.NotContains(t, out, "Insufficient payment")
}

func TestUnitsCommand_RejectsUnrepresentableShortfall(t *testing.T) {
	_, err := run(t, "units", "--", "-9223372036854775808")
	assert.Error(t, err)

	out, err := run(t, "units", "--", "-9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, "Insufficient payment, missing 92233720368547758.07 $\n", out)
}
