package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendlog/internal/cli"
	"github.com/theirongolddev/spendlog/internal/model"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget [MONTH]",
	Short: "Show monthly budgets",
	Long: "Without MONTH, list every month that has a budget with its spending. " +
		"With MONTH (YYYY-MM), show that month's current budget.",
	Args: cobra.MaximumNArgs(1),
	RunE: runBudget,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set MONTH AMOUNT",
	Short: "Set or replace the budget for a month",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetSet,
}

func init() {
	budgetCmd.AddCommand(budgetSetCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, args []string) error {
	b, err := openBooks()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		month, err := model.ParseMonth(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  Current budget for %s: %s\n", month, money(b.budgets.Get(month)))
		return nil
	}

	months := b.budgets.Months()
	if len(months) == 0 {
		fmt.Fprintln(out, "\n  No budgets set. Use `spendlog budget set YYYY-MM AMOUNT`.")
		return nil
	}

	rows := make([][]string, 0, len(months))
	for i := len(months) - 1; i >= 0; i-- {
		s := b.budgets.Summarize(months[i], b.ledger)
		rows = append(rows, []string{
			s.Month,
			money(s.Budget),
			money(s.Spent),
			money(s.Remaining),
			cli.FormatPercent(s.UsedFraction()),
		})
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   "Monthly budgets",
		Headers: []string{"Month", "Budget", "Spent", "Remaining", "Used"},
		Rows:    rows,
	}))
	return nil
}

func runBudgetSet(cmd *cobra.Command, args []string) error {
	month, err := model.ParseMonth(args[0])
	if err != nil {
		return err
	}
	amount, err := model.ParseAmount(args[1])
	if err != nil {
		return err
	}

	b, err := openBooks()
	if err != nil {
		return err
	}
	b.budgets.Set(month, amount)
	if err := b.saveBudgets(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderOK(fmt.Sprintf("  Budget for %s updated to %s", month, money(amount))))
	return nil
}
