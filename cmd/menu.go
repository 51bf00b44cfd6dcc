package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/theirongolddev/spendlog/internal/cli"
	"github.com/theirongolddev/spendlog/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu (default when no command is given)",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

type menuChoice int

const (
	menuAdd menuChoice = iota + 1
	menuView
	menuTrack
	menuSave
	menuExit
)

func runMenu(cmd *cobra.Command, _ []string) error {
	b, err := openBooks()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	for {
		choice := menuAdd
		err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[menuChoice]().
				Title("Personal Expense Tracker").
				Options(
					huh.NewOption("1. Add expense", menuAdd),
					huh.NewOption("2. View expenses", menuView),
					huh.NewOption("3. Track budget", menuTrack),
					huh.NewOption("4. Save expenses", menuSave),
					huh.NewOption("5. Exit", menuExit),
				).
				Value(&choice),
		)).WithTheme(formTheme()).Run()
		// Aborting the menu is treated like Exit so nothing typed is lost.
		if errors.Is(err, huh.ErrUserAborted) {
			choice = menuExit
		} else if err != nil {
			return err
		}

		switch choice {
		case menuAdd:
			if err := menuAddExpense(out, b); err != nil {
				return err
			}
		case menuView:
			menuViewExpenses(out, b)
		case menuTrack:
			if err := menuTrackBudget(out, b); err != nil {
				return err
			}
		case menuSave:
			if err := b.saveLedger(); err != nil {
				return err
			}
			fmt.Fprintln(out, cli.RenderOK(fmt.Sprintf("  Saved %d expenses.", b.ledger.Len())))
		case menuExit:
			if err := b.saveLedger(); err != nil {
				return err
			}
			if err := b.saveBudgets(); err != nil {
				return err
			}
			fmt.Fprintln(out, "  Exiting... Goodbye!")
			return nil
		}
	}
}

// menuAddExpense adds to the in-memory ledger only; it is written on Save or
// Exit.
func menuAddExpense(out io.Writer, b *books) error {
	in := expenseInput{date: time.Now().Format(model.DateLayout)}
	if err := promptExpense(&in); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	e, err := in.expense()
	if err != nil {
		fmt.Fprintln(out, cli.RenderError("  "+err.Error()))
		return nil
	}
	if err := b.ledger.Add(e); err != nil {
		fmt.Fprintln(out, cli.RenderError("  "+err.Error()))
		return nil
	}
	fmt.Fprintln(out, cli.RenderOK("  Expense added successfully!"))
	return nil
}

func menuViewExpenses(out io.Writer, b *books) {
	if b.ledger.Len() == 0 {
		fmt.Fprintln(out, "  No expenses recorded.")
		return
	}
	expenses := b.ledger.ListSorted(true)
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	fmt.Fprintln(out, "\n  All Expenses (latest first)")
	fmt.Fprint(out, cli.RenderTable(expenseTable(expenses, total)))
}

// menuTrackBudget shows a month's budget, optionally replaces it (saving the
// budget file straight away) and prints the month summary.
func menuTrackBudget(out io.Writer, b *books) error {
	var monthStr string
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Month to track (YYYY-MM)").
			Placeholder(model.MonthOf(time.Now())).
			Value(&monthStr).
			Validate(func(s string) error {
				_, err := model.ParseMonth(s)
				return err
			}),
	)).WithTheme(formTheme()).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	if err != nil {
		return err
	}
	month, err := model.ParseMonth(monthStr)
	if err != nil {
		fmt.Fprintln(out, cli.RenderError("  Invalid month format. Please use YYYY-MM (e.g., 2025-06)."))
		return nil
	}

	fmt.Fprintf(out, "  Current budget for %s: %s\n", month, money(b.budgets.Get(month)))

	edit := false
	var amountStr string
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Edit the monthly budget?").
				Affirmative("Yes").
				Negative("No").
				Value(&edit),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("New monthly budget").
				Value(&amountStr).
				Validate(func(s string) error {
					_, err := model.ParseAmount(s)
					return err
				}),
		).WithHideFunc(func() bool { return !edit }),
	).WithTheme(formTheme()).Run()
	if err != nil && !errors.Is(err, huh.ErrUserAborted) {
		return err
	}

	if edit && err == nil {
		amount, perr := model.ParseAmount(amountStr)
		if perr != nil {
			fmt.Fprintln(out, cli.RenderError("  Invalid budget input."))
			return nil
		}
		b.budgets.Set(month, amount)
		if err := b.saveBudgets(); err != nil {
			return err
		}
		fmt.Fprintln(out, cli.RenderOK(fmt.Sprintf("  Budget for %s updated to %s", month, money(amount))))
	}

	printSummary(out, b.budgets.Summarize(month, b.ledger))
	return nil
}
