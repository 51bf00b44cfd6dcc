package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendlog/internal/model"
	"github.com/theirongolddev/spendlog/internal/tui"
	"github.com/theirongolddev/spendlog/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse expenses and budgets in a full-screen dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

var tuiMonth string

func init() {
	tuiCmd.Flags().StringVarP(&tuiMonth, "month", "m", "", "Month to open on (YYYY-MM, default current)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	month := tuiMonth
	if month != "" {
		m, err := model.ParseMonth(month)
		if err != nil {
			return err
		}
		month = m
	}

	theme.SetActive(cfg.Display.Theme)
	// Without a forced profile lipgloss may pick Ascii and drop backgrounds.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		ExpensePath: cfg.ExpensePath(),
		BudgetPath:  cfg.BudgetPath(),
		Currency:    cfg.Display.Currency,
		NewestFirst: cfg.Display.NewestFirst,
		Month:       month,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
