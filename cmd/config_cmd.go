package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/spendlog/internal/cli"
	"github.com/theirongolddev/spendlog/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	path := configPath()

	fmt.Fprintf(out, "  Config file: %s\n", path)
	if config.Exists(path) {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Data directory: %s\n", cfg.ResolvedDataDir())
	fmt.Fprintf(out, "    Expense file:   %s\n", cfg.ExpensePath())
	fmt.Fprintf(out, "    Budget file:    %s\n", cfg.BudgetPath())
	fmt.Fprintf(out, "    Log level:      %s\n", cfg.General.LogLevel)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Display]")
	fmt.Fprintf(out, "    Currency:       %s\n", cfg.Display.Currency)
	fmt.Fprintf(out, "    Newest first:   %v\n", cfg.Display.NewestFirst)
	fmt.Fprintf(out, "    Theme:          %s\n", cfg.Display.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, cli.RenderMuted("  Run `spendlog setup` to reconfigure."))
	return nil
}

var errConfigExists = errors.New("config file already exists (use --force to overwrite)")

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configPath()
	if config.Exists(path) && !configInitForce {
		return fmt.Errorf("%s: %w", path, errConfigExists)
	}
	if err := config.SaveTo(config.DefaultConfig(), path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderOK("  Wrote "+path))
	return nil
}
