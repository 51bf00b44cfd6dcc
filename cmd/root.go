// Package cmd implements the spendlog CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/spendlog/internal/budget"
	"github.com/theirongolddev/spendlog/internal/cli"
	"github.com/theirongolddev/spendlog/internal/config"
	"github.com/theirongolddev/spendlog/internal/ledger"
	"github.com/theirongolddev/spendlog/internal/logging"
	"github.com/theirongolddev/spendlog/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagConfig  string
	flagQuiet   bool
	flagVerbose bool
)

// cfg is the effective configuration, loaded before any command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "spendlog",
	Short: "Personal expense and monthly budget tracker",
	Long: "Record daily expenses in a CSV ledger, set a budget per month and " +
		"see how much is left. Run without a command for the interactive menu.",
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
	RunE:              runMenu,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding expenses.csv and budget.txt")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details")
}

// initApp resolves configuration (flag > env > file > default) and sets up
// logging.
func initApp(_ *cobra.Command, _ []string) error {
	config.LoadDotEnv()

	loaded, err := config.LoadFrom(configPath())
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		loaded.General.DataDir = flagDataDir
	}
	cfg = loaded

	level := cfg.General.LogLevel
	if flagVerbose {
		level = "debug"
	}
	if _, err := logging.ParseLevel(level); err != nil {
		fmt.Fprintf(os.Stderr, "  %v, using info\n", err)
	}
	logging.Setup(os.Stderr, level, flagQuiet)
	slog.Debug("config resolved", "config", configPath(), "data_dir", cfg.ResolvedDataDir())
	return nil
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}

// books is the loaded ledger plus budgets for one command run.
type books struct {
	ledger  *ledger.Ledger
	budgets *budget.Tracker
}

// openBooks loads both stores, logging any rows that were skipped.
func openBooks() (*books, error) {
	l := ledger.New(cfg.ExpensePath())
	lr, err := l.Load()
	if err != nil {
		return nil, err
	}
	logLedgerReport(l.Path(), lr)

	b := budget.New(cfg.BudgetPath())
	br, err := b.Load()
	if err != nil {
		return nil, err
	}
	for _, e := range br.Skipped {
		slog.Debug("ignoring budget line",
			logging.FieldFile, b.Path(), logging.FieldLine, e.Line,
			logging.FieldRaw, e.Raw, logging.FieldReason, e.Err)
	}

	slog.Debug("books loaded", "records", l.Len(), "budgets", b.Len())
	return &books{ledger: l, budgets: b}, nil
}

func logLedgerReport(path string, r ledger.LoadReport) {
	for _, e := range r.Skipped {
		slog.Warn("skipping invalid expense entry",
			logging.FieldFile, path, logging.FieldLine, e.Line,
			logging.FieldRaw, strings.Join(e.Raw, ","), logging.FieldReason, e.Err)
	}
	for _, e := range r.Warnings {
		slog.Warn("unknown category, using Miscellaneous",
			logging.FieldFile, path, logging.FieldLine, e.Line,
			logging.FieldRaw, strings.Join(e.Raw, ","))
	}
}

func (b *books) saveLedger() error {
	if err := b.ledger.Save(); err != nil {
		return fmt.Errorf("saving expenses: %w", err)
	}
	slog.Debug("expenses saved", logging.FieldFile, b.ledger.Path(), "records", b.ledger.Len())
	return nil
}

func (b *books) saveBudgets() error {
	if err := b.budgets.Save(); err != nil {
		return fmt.Errorf("saving budgets: %w", err)
	}
	slog.Debug("budgets saved", logging.FieldFile, b.budgets.Path(), "months", b.budgets.Len())
	return nil
}

// monthArg returns the month named by args[0], or the current month.
func monthArg(args []string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return model.MonthOf(time.Now()), nil
	}
	return model.ParseMonth(args[0])
}

func money(d decimal.Decimal) string {
	return cli.FormatMoney(d, cfg.Display.Currency)
}
