package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/spendlog/internal/cli"
	"github.com/theirongolddev/spendlog/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense",
	Long: "Record an expense and save the ledger. Any of --date, --category or " +
		"--amount left out is asked for interactively.",
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addDate     string
	addCategory int
	addAmount   string
	addDesc     string
)

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Date spent (YYYY-MM-DD)")
	addCmd.Flags().IntVarP(&addCategory, "category", "c", 0, "Category code (see `spendlog categories`)")
	addCmd.Flags().StringVarP(&addAmount, "amount", "a", "", "Amount spent")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "Short description")
	rootCmd.AddCommand(addCmd)
}

// expenseInput holds raw form values before validation.
type expenseInput struct {
	date     string
	category int
	amount   string
	desc     string
}

func runAdd(cmd *cobra.Command, _ []string) error {
	b, err := openBooks()
	if err != nil {
		return err
	}

	in := expenseInput{date: addDate, category: addCategory, amount: addAmount, desc: addDesc}
	flags := cmd.Flags()
	if !flags.Changed("date") || !flags.Changed("category") || !flags.Changed("amount") {
		if in.date == "" {
			in.date = time.Now().Format(model.DateLayout)
		}
		if err := promptExpense(&in); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), "  Cancelled.")
				return nil
			}
			return err
		}
	}

	e, err := in.expense()
	if err != nil {
		return err
	}
	if err := b.ledger.Add(e); err != nil {
		return err
	}
	if err := b.saveLedger(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.RenderOK("  Expense added successfully!"))
	if s := b.budgets.Summarize(e.Date[:len(model.MonthLayout)], b.ledger); s.Budget.IsPositive() && s.OverBudget() {
		fmt.Fprintln(out, cli.RenderWarn(fmt.Sprintf("  %s is now over budget by %s", s.Month, money(s.Remaining.Abs()))))
	}
	return nil
}

// expense validates the raw input. An unknown category code falls back to
// Miscellaneous with a warning; a bad amount or date rejects the input.
func (in expenseInput) expense() (model.Expense, error) {
	date := strings.TrimSpace(in.date)
	if err := model.ValidateDate(date); err != nil {
		return model.Expense{}, err
	}
	amount, err := model.ParseAmount(in.amount)
	if err != nil {
		return model.Expense{}, err
	}
	cat := model.FromCode(in.category)
	if !model.Category(in.category).Valid() {
		slog.Warn("invalid category code, defaulting to Miscellaneous", "code", in.category)
	}
	return model.Expense{
		Date:        date,
		Category:    cat,
		Amount:      amount,
		Description: strings.TrimSpace(in.desc),
	}, nil
}

func promptExpense(in *expenseInput) error {
	if !model.Category(in.category).Valid() {
		in.category = int(model.Miscellaneous)
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&in.date).
				Validate(model.ValidateDate),
			huh.NewSelect[int]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&in.category),
			huh.NewInput().
				Title("Amount spent ("+cfg.Display.Currency+")").
				Placeholder("0.00").
				Value(&in.amount).
				Validate(func(s string) error {
					_, err := model.ParseAmount(s)
					return err
				}),
			huh.NewInput().
				Title("Description").
				CharLimit(200).
				Value(&in.desc),
		),
	).WithTheme(formTheme())
	return form.Run()
}

func categoryOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(model.All()))
	for _, c := range model.All() {
		opts = append(opts, huh.NewOption(strconv.Itoa(c.Code())+". "+c.Label(), c.Code()))
	}
	return opts
}

func formTheme() *huh.Theme {
	switch cfg.Display.Theme {
	case "catppuccin-mocha":
		return huh.ThemeCatppuccin()
	case "terminal":
		return huh.ThemeBase()
	default:
		return huh.ThemeCharm()
	}
}
