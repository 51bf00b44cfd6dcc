package components

import (
	"strings"

	"github.com/theirongolddev/spendlog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders one block per value scaled to the largest value.
// Negative values render as the lowest block.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		buf.WriteRune(sparkBlocks[min(max(idx, 0), len(sparkBlocks)-1)])
	}
	return lipgloss.NewStyle().Foreground(color).Render(buf.String())
}

// ShareBar renders a horizontal bar of share (0-100) scaled to width cells.
func ShareBar(share float64, width int) string {
	t := theme.Active
	filled := min(max(int(share/100*float64(width)), 0), width)
	return lipgloss.NewStyle().Foreground(t.Blue).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat("·", width-filled))
}
