package cmd

import (
	"fmt"
	"io"

	"github.com/theirongolddev/spendlog/internal/cli"
	"github.com/theirongolddev/spendlog/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [MONTH]",
	Short: "Compare a month's spending with its budget",
	Long:  "Show budget, total spent and what is left for MONTH (YYYY-MM, default this month).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	month, err := monthArg(args)
	if err != nil {
		return err
	}
	b, err := openBooks()
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), b.budgets.Summarize(month, b.ledger))
	return nil
}

// printSummary renders a month summary. A negative remainder is reported as
// the amount over budget.
func printSummary(out io.Writer, s model.Summary) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("BUDGET  "+cli.FormatMonth(s.Month)))
	fmt.Fprintln(out)

	budgetStr := money(s.Budget)
	if s.Budget.IsZero() {
		budgetStr += " (not set)"
	}
	rows := [][]string{
		{"Month", s.Month},
		{"Total spent", money(s.Spent)},
		{"Monthly budget", budgetStr},
		{"---"},
		{"Remaining", money(s.Remaining)},
	}
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if s.Budget.IsPositive() {
		fmt.Fprintln(out, "  "+cli.RenderBudgetBar(s.UsedFraction(), 40))
	}
	fmt.Fprintln(out)

	if s.OverBudget() {
		fmt.Fprintln(out, cli.RenderWarn(fmt.Sprintf("  ⚠ You have exceeded your budget by %s!", money(s.Remaining.Abs()))))
	} else {
		fmt.Fprintln(out, cli.RenderOK(fmt.Sprintf("  ✓ You have %s left for the month.", money(s.Remaining))))
	}
}
