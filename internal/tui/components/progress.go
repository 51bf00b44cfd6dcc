package components

import (
	"fmt"

	"github.com/theirongolddev/spendlog/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// BudgetBar renders a labelled budget usage bar. used is spent/budget and
// may exceed 1; the bar is clamped but the percentage is not.
func BudgetBar(label string, used float64, labelW, barWidth int) string {
	t := theme.Active
	color := t.ForUsage(used)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(barWidth, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(min(max(used, 0), 1)) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", used*100))
}
