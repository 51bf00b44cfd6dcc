package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendlog/internal/cli"
	"github.com/theirongolddev/spendlog/internal/model"
	"github.com/theirongolddev/spendlog/internal/report"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "view"},
	Short:   "List expenses, latest first",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listAsc   bool
	listMonth string
	listLimit int
)

func init() {
	listCmd.Flags().BoolVar(&listAsc, "asc", false, "Oldest first")
	listCmd.Flags().StringVarP(&listMonth, "month", "m", "", "Only this month (YYYY-MM)")
	listCmd.Flags().IntVarP(&listLimit, "limit", "l", 0, "Show at most this many records (0 = all)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if listMonth != "" {
		m, err := model.ParseMonth(listMonth)
		if err != nil {
			return err
		}
		listMonth = m
	}

	b, err := openBooks()
	if err != nil {
		return err
	}

	descending := cfg.Display.NewestFirst && !listAsc
	expenses := report.FilterMonth(b.ledger.ListSorted(descending), listMonth)

	out := cmd.OutOrStdout()
	if len(expenses) == 0 {
		fmt.Fprintln(out, "\n  No expenses recorded.")
		return nil
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	shown := expenses
	if listLimit > 0 && len(shown) > listLimit {
		shown = shown[:listLimit]
	}

	title := "ALL EXPENSES"
	if listMonth != "" {
		title = "EXPENSES  " + cli.FormatMonth(listMonth)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(fmt.Sprintf("%s (%d)", title, len(expenses))))
	fmt.Fprintln(out)

	fmt.Fprint(out, cli.RenderTable(expenseTable(shown, total)))
	return nil
}

func expenseTable(expenses []model.Expense, total decimal.Decimal) cli.Table {
	rows := make([][]string, 0, len(expenses)+2)
	for _, e := range expenses {
		rows = append(rows, []string{
			e.Date,
			e.Category.Label(),
			money(e.Amount),
			cli.Truncate(e.Description, 40),
		})
	}
	rows = append(rows, []string{"---"}, []string{"Total", "", money(total), ""})

	return cli.Table{
		Headers:  []string{"Date", "Category", "Amount", "Description"},
		Rows:     rows,
		LeftCols: 2,
	}
}
