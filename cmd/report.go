package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendlog/internal/cli"
	"github.com/theirongolddev/spendlog/internal/model"
	"github.com/theirongolddev/spendlog/internal/report"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Monthly spending report",
	Long:  "Per-month budget and spending table. With --month, also break the month down by category and day.",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

var reportMonth string

func init() {
	reportCmd.Flags().StringVarP(&reportMonth, "month", "m", "", "Break down this month (YYYY-MM)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	month := ""
	if reportMonth != "" {
		m, err := model.ParseMonth(reportMonth)
		if err != nil {
			return err
		}
		month = m
	}

	b, err := openBooks()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	expenses := b.ledger.ListSorted(false)
	months := report.Months(expenses, b.budgets.All())
	if len(months) == 0 {
		fmt.Fprintln(out, "\n  No expenses recorded.")
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("MONTHLY REPORT"))
	fmt.Fprintln(out)

	rows := make([][]string, 0, len(months))
	trend := make([]float64, len(months))
	for i, ms := range months {
		rows = append(rows, []string{
			ms.Month,
			cli.FormatNumber(int64(ms.Count)),
			money(ms.Budget),
			money(ms.Spent),
			money(ms.Remaining),
		})
		// Oldest on the left.
		trend[len(months)-1-i] = ms.Spent.InexactFloat64()
	}
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Records", "Budget", "Spent", "Remaining"},
		Rows:    rows,
	}))
	if len(months) > 1 {
		fmt.Fprintf(out, "  Trend  %s\n", cli.RenderSparkline(trend))
	}

	if month == "" {
		return nil
	}
	return printMonthBreakdown(cmd, expenses, month)
}

func printMonthBreakdown(cmd *cobra.Command, expenses []model.Expense, month string) error {
	out := cmd.OutOrStdout()
	cats := report.Categories(expenses, month)
	if len(cats) == 0 {
		fmt.Fprintf(out, "\n  No expenses in %s.\n", month)
		return nil
	}

	rows := make([][]string, 0, len(cats))
	labelW := 0
	for _, c := range cats {
		rows = append(rows, []string{
			c.Category.Label(),
			cli.FormatNumber(int64(c.Count)),
			money(c.Spent),
			cli.FormatPercent(c.SharePercent / 100),
		})
		labelW = max(labelW, len(c.Category.Label()))
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   "By category  " + cli.FormatMonth(month),
		Headers: []string{"Category", "Records", "Spent", "Share"},
		Rows:    rows,
	}))

	peak := cats[0].Spent.InexactFloat64()
	for _, c := range cats {
		fmt.Fprintln(out, cli.RenderHorizontalBar(c.Category.Label(), c.Spent.InexactFloat64(), peak, labelW, 30))
	}

	days, err := report.Days(expenses, month)
	if err != nil {
		return err
	}
	daily := make([]float64, len(days))
	for i, d := range days {
		daily[i] = d.Spent.InexactFloat64()
	}
	fmt.Fprintf(out, "\n  Daily  %s\n", cli.RenderSparkline(daily))
	return nil
}
