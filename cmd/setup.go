package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/spendlog/internal/cli"
	"github.com/theirongolddev/spendlog/internal/config"
	"github.com/theirongolddev/spendlog/internal/logging"
	"github.com/theirongolddev/spendlog/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	path := configPath()
	next, err := setupSeed(path)
	if err != nil {
		return err
	}

	dataDir := next.ResolvedDataDir()
	themeName := next.Display.Theme
	levels := []string{"debug", "info", "warn", "error"}

	themeOpts := make([]huh.Option[string], 0, len(theme.Names()))
	for _, n := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(n, n))
	}
	levelOpts := make([]huh.Option[string], 0, len(levels))
	for _, l := range levels {
		levelOpts = append(levelOpts, huh.NewOption(l, l))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Welcome to spendlog!")
	fmt.Fprintln(out)
	if flagDataDir != "" || os.Getenv(config.EnvDataDir) != "" ||
		os.Getenv(config.EnvCurrency) != "" || os.Getenv(config.EnvLogLevel) != "" {
		fmt.Fprintln(out, cli.RenderMuted("  --data-dir and SPENDLOG_* overrides still apply at run time but are not saved."))
		fmt.Fprintln(out)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Holds the expense ledger and budget file").
				Value(&dataDir).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("data directory is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Currency symbol").
				CharLimit(4).
				Value(&next.Display.Currency),
			huh.NewConfirm().
				Title("List newest expenses first?").
				Affirmative("Yes").
				Negative("No").
				Value(&next.Display.NewestFirst),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),
			huh.NewSelect[string]().
				Title("Log level").
				Options(levelOpts...).
				Value(&next.General.LogLevel).
				Validate(func(s string) error {
					_, err := logging.ParseLevel(s)
					return err
				}),
		),
	).WithTheme(formTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(out, cli.RenderMuted("  Setup cancelled, nothing saved."))
			return nil
		}
		return err
	}

	next.General.DataDir = strings.TrimSpace(dataDir)
	if next.General.DataDir == config.DefaultDataDir() {
		next.General.DataDir = ""
	}
	next.Display.Theme = themeName

	if err := config.SaveTo(next, path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderOK("  Saved to "+path))
	fmt.Fprintln(out, cli.RenderMuted("  Run `spendlog setup` anytime to reconfigure."))
	fmt.Fprintln(out)
	return nil
}

// setupSeed returns the saved configuration the wizard starts from. Flag and
// environment overrides are left out so they are not written back.
func setupSeed(path string) (config.Config, error) {
	return config.LoadFile(path)
}
