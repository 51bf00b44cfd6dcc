package components

import (
	"strings"

	"github.com/theirongolddev/spendlog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune // shortcut, always the first letter of Name lowercased
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Expenses", Key: 'e'},
	{Name: "Categories", Key: 'c'},
	{Name: "Months", Key: 'm'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}
	row := " " + strings.Join(parts, " ")
	return lipgloss.NewStyle().MaxWidth(width).Render(row)
}

func renderTab(tab Tab, active bool) string {
	t := theme.Active
	pad := lipgloss.NewStyle().Padding(0, 1)

	if active {
		return pad.Foreground(t.Accent).Bold(true).Underline(true).Render(tab.Name)
	}
	// Highlight the shortcut letter.
	key := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(tab.Name[:1])
	rest := lipgloss.NewStyle().Foreground(t.TextMuted).Render(tab.Name[1:])
	return pad.Render(key + rest)
}

// TabVisualWidth returns the rendered width of a tab, used for mouse hit
// testing.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
