package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/spendlog/internal/cli"
	"github.com/theirongolddev/spendlog/internal/store"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Copy expenses and budgets into a SQLite database",
	Long: "Replace the contents of a SQLite database with the current ledger and " +
		"budgets. The CSV ledger and budget file remain the source of truth.",
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Database path (default <data-dir>/spendlog.db)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	b, err := openBooks()
	if err != nil {
		return err
	}

	path := exportOut
	if path == "" {
		path = filepath.Join(cfg.ResolvedDataDir(), "spendlog.db")
	}

	m, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	ctx := cmd.Context()
	if err := m.Export(ctx, b.ledger.ListSorted(false), b.budgets.All()); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	totals, err := m.MonthTotals(ctx)
	if err != nil {
		return err
	}
	nExp, err := m.ExpenseCount(ctx)
	if err != nil {
		return err
	}
	nBud, err := m.BudgetCount(ctx)
	if err != nil {
		return err
	}

	t := cli.Table{
		Title:   "Exported Month Totals",
		Headers: []string{"Month", "Spent", "Ledger"},
	}
	mismatch := 0
	for _, mt := range totals {
		check := "ok"
		if !mt.Spent.Equal(b.ledger.TotalForMonth(mt.Month)) {
			check = "MISMATCH"
			mismatch++
		}
		t.Rows = append(t.Rows, []string{cli.FormatMonth(mt.Month), money(mt.Spent), check})
	}

	out := cmd.OutOrStdout()
	if len(t.Rows) > 0 {
		fmt.Fprint(out, cli.RenderTable(t))
	}
	fmt.Fprintln(out, cli.RenderOK(fmt.Sprintf("  Exported %s expenses and %s budgets to %s",
		cli.FormatNumber(int64(nExp)), cli.FormatNumber(int64(nBud)), path)))
	if mismatch > 0 {
		return fmt.Errorf("%d month totals differ from the ledger", mismatch)
	}
	return nil
}
