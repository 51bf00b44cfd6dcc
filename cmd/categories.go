package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/spendlog/internal/cli"
	"github.com/theirongolddev/spendlog/internal/model"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List expense category codes",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	rows := make([][]string, 0, len(model.All()))
	for _, c := range model.All() {
		rows = append(rows, []string{strconv.Itoa(c.Code()), c.Label()})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:    "Expense categories",
		Headers:  []string{"Code", "Label"},
		Rows:     rows,
		LeftCols: 2,
	}))
	fmt.Fprintln(out, cli.RenderMuted("  Unknown codes are recorded as Miscellaneous."))
	return nil
}
