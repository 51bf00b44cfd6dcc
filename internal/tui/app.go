// Package tui provides the interactive Bubble Tea dashboard for spendlog.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/theirongolddev/spendlog/internal/budget"
	"github.com/theirongolddev/spendlog/internal/cli"
	"github.com/theirongolddev/spendlog/internal/ledger"
	"github.com/theirongolddev/spendlog/internal/model"
	"github.com/theirongolddev/spendlog/internal/report"
	"github.com/theirongolddev/spendlog/internal/tui/components"
	"github.com/theirongolddev/spendlog/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when both stores have been read.
type DataLoadedMsg struct {
	Ledger   *ledger.Ledger
	Budgets  *budget.Tracker
	Skipped  int
	Warnings int
	LoadTime time.Duration
	Err      error
}

// Options configures the dashboard.
type Options struct {
	ExpensePath string
	BudgetPath  string
	Currency    string
	NewestFirst bool
	// Month is the initially selected YYYY-MM month; empty means the
	// current month.
	Month string
}

// App is the root Bubble Tea model.
type App struct {
	opts Options

	// Data
	ledger   *ledger.Ledger
	budgets  *budget.Tracker
	loaded   bool
	loadErr  error
	loadTime time.Duration
	skipped  int
	warnings int

	// Pre-computed for the selected month
	months   []string
	summary  model.Summary
	monthly  []model.Expense
	cats     []model.CategoryStats
	days     []model.DayStats
	history  []model.MonthStats
	expTable table.Model

	// UI state
	width       int
	height      int
	activeTab   int
	showHelp    bool
	month       string
	newestFirst bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minTableHeight   = 3
)

// NewApp creates a new dashboard model. Data is loaded by Init.
func NewApp(opts Options) App {
	month := opts.Month
	if month == "" {
		month = model.MonthOf(time.Now())
	}
	return App{
		opts:        opts,
		month:       month,
		newestFirst: opts.NewestFirst,
		expTable:    newExpenseTable(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.opts.ExpensePath, a.opts.BudgetPath),
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.recompute()
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		if msg.Err != nil {
			return a, nil
		}
		a.ledger = msg.Ledger
		a.budgets = msg.Budgets
		a.skipped = msg.Skipped
		a.warnings = msg.Warnings
		a.loadTime = msg.LoadTime
		a.recompute()
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
			return a, nil
		}
		if a.activeTab == 0 {
			var cmd tea.Cmd
			a.expTable, cmd = a.expTable.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" || key == "q" {
			return a, tea.Quit
		}
		if !a.loaded {
			return a, nil
		}
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "[", "left", "h":
			a.shiftMonth(-1)
			return a, nil
		case "]", "right", "l":
			a.shiftMonth(1)
			return a, nil
		case "s":
			a.newestFirst = !a.newestFirst
			a.recompute()
			return a, nil
		case "r":
			return a, loadDataCmd(a.opts.ExpensePath, a.opts.BudgetPath)
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		if a.activeTab == 0 {
			var cmd tea.Cmd
			a.expTable, cmd = a.expTable.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

// shiftMonth moves the selection by delta months through the months that
// have data, stopping at either end.
func (a *App) shiftMonth(delta int) {
	i := sort.SearchStrings(a.months, a.month)
	if i >= len(a.months) || a.months[i] != a.month {
		return
	}
	j := min(max(i+delta, 0), len(a.months)-1)
	if j != i {
		a.month = a.months[j]
		a.expTable.GotoTop()
		a.recompute()
	}
}

func (a *App) recompute() {
	if a.ledger == nil || a.budgets == nil {
		return
	}

	all := a.ledger.ListSorted(a.newestFirst)
	a.history = report.Months(all, a.budgets.All())

	// Month navigation covers every month with data plus the selected one.
	seen := map[string]bool{a.month: true}
	a.months = []string{a.month}
	for _, ms := range a.history {
		if !seen[ms.Month] {
			seen[ms.Month] = true
			a.months = append(a.months, ms.Month)
		}
	}
	sort.Strings(a.months)

	a.summary = a.budgets.Summarize(a.month, a.ledger)
	a.monthly = report.FilterMonth(all, a.month)
	a.cats = report.Categories(a.monthly, "")
	a.days, _ = report.Days(a.monthly, a.month)

	a.refreshTable()
}

func newExpenseTable() table.Model {
	t := theme.Active
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.Accent).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(true)

	return table.New(
		table.WithColumns(expenseColumns(80)),
		table.WithFocused(true),
		table.WithStyles(styles),
	)
}

func expenseColumns(width int) []table.Column {
	const dateW, catW, amountW = 10, 22, 14
	descW := max(width-dateW-catW-amountW-8, 10)
	return []table.Column{
		{Title: "Date", Width: dateW},
		{Title: "Category", Width: catW},
		{Title: "Amount", Width: amountW},
		{Title: "Description", Width: descW},
	}
}

func (a *App) refreshTable() {
	cw := a.contentWidth()
	rows := make([]table.Row, len(a.monthly))
	for i, e := range a.monthly {
		rows[i] = table.Row{
			e.Date,
			e.Category.Label(),
			fmt.Sprintf("%14s", cli.FormatMoney(e.Amount, a.opts.Currency)),
			e.Description,
		}
	}
	a.expTable.SetColumns(expenseColumns(cw))
	a.expTable.SetRows(rows)
	a.expTable.SetWidth(cw)
	a.expTable.SetHeight(max(a.height-15, minTableHeight))
}

func (a App) contentWidth() int {
	if a.width == 0 {
		return maxContentWidth
	}
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  spendlog needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if !a.loaded {
		return "\n  Loading expenses..."
	}
	if a.loadErr != nil {
		return "\n  " + cli.RenderError("Could not load data: "+a.loadErr.Error()) +
			"\n\n  " + cli.RenderMuted("[q]uit")
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	monthStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	order := "newest first"
	if !a.newestFirst {
		order = "oldest first"
	}
	header := components.RenderTabBar(a.activeTab, a.width) + "\n" +
		" " + dimStyle.Render("◂ ") + monthStyle.Render(cli.FormatMonth(a.month)) + dimStyle.Render(" ▸") +
		dimStyle.Render("  ·  "+order)

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderExpensesTab(cw)
	case 1:
		content = a.renderCategoriesTab(cw)
	case 2:
		content = a.renderMonthsTab(cw)
	}

	info := fmt.Sprintf("%d records · %s", a.ledger.Len(), a.loadTime.Round(time.Millisecond))
	if a.skipped > 0 || a.warnings > 0 {
		info = fmt.Sprintf("%d skipped · %d warnings · %s", a.skipped, a.warnings, info)
	}
	status := components.RenderStatusBar(a.width, "[ ] month  s sort  e/c/m tabs  r reload  ? help  q quit", info)

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", content)
	if a.height > 0 {
		body = padHeight(truncateHeight(body, a.height-1), a.height-1)
	}
	return body + "\n" + status
}

func (a App) renderExpensesTab(cw int) string {
	t := theme.Active
	s := a.summary
	cur := a.opts.Currency

	remainingColor := t.Green
	remainingLabel := "Left"
	if s.OverBudget() {
		remainingColor = t.Red
		remainingLabel = "Over by"
	}
	remaining := s.Remaining.Abs()

	metrics := []components.Metric{
		{Label: "Budget", Value: cli.FormatMoney(s.Budget, cur)},
		{Label: "Spent", Value: cli.FormatMoney(s.Spent, cur), Note: fmt.Sprintf("%d records", len(a.monthly))},
		{Label: remainingLabel, Value: cli.FormatMoney(remaining, cur), Color: remainingColor},
	}
	if s.Budget.IsZero() {
		metrics[0].Note = "not set"
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	if s.Budget.IsPositive() {
		b.WriteString(" " + components.BudgetBar("Used", s.UsedFraction(), 6, max(cw-20, 10)))
		b.WriteString("\n")
	}

	daily := make([]float64, len(a.days))
	for i, d := range a.days {
		daily[i] = d.Spent.InexactFloat64()
	}
	b.WriteString(" " + lipgloss.NewStyle().Foreground(t.TextMuted).Render(fmt.Sprintf("%-6s ", "Daily")) +
		components.Sparkline(daily, t.Blue))
	b.WriteString("\n\n")

	if len(a.monthly) == 0 {
		b.WriteString("  " + cli.RenderMuted("No expenses recorded for "+cli.FormatMonth(a.month)))
		return b.String()
	}
	b.WriteString(a.expTable.View())
	return b.String()
}

func (a App) renderCategoriesTab(cw int) string {
	if len(a.cats) == 0 {
		return components.ContentCard("By category", cli.RenderMuted("Nothing spent this month"), cw)
	}

	inner := components.CardInnerWidth(cw)
	const labelW, amountW, pctW = 24, 14, 7
	barW := max(inner-labelW-amountW-pctW-3, 5)

	var b strings.Builder
	for i, c := range a.cats {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%-*s ", labelW, c.Category.Label()))
		b.WriteString(components.ShareBar(c.SharePercent, barW))
		b.WriteString(fmt.Sprintf(" %*s", amountW, cli.FormatMoney(c.Spent, a.opts.Currency)))
		b.WriteString(fmt.Sprintf(" %*s", pctW-1, cli.FormatPercent(c.SharePercent/100)))
	}
	return components.ContentCard("By category · "+cli.FormatMonth(a.month), b.String(), cw)
}

func (a App) renderMonthsTab(cw int) string {
	t := theme.Active
	if len(a.history) == 0 {
		return components.ContentCard("Months", cli.RenderMuted("No data yet"), cw)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(
		fmt.Sprintf("%-10s %14s %14s %14s %7s", "Month", "Budget", "Spent", "Remaining", "Count")))
	for _, ms := range a.history {
		line := fmt.Sprintf("%-10s %14s %14s %14s %7d",
			ms.Month,
			cli.FormatMoney(ms.Budget, a.opts.Currency),
			cli.FormatMoney(ms.Spent, a.opts.Currency),
			cli.FormatMoney(ms.Remaining, a.opts.Currency),
			ms.Count)
		style := lipgloss.NewStyle().Foreground(t.TextPrimary)
		if ms.Remaining.IsNegative() {
			style = style.Foreground(t.Red)
		}
		if ms.Month == a.month {
			style = style.Bold(true)
		}
		b.WriteString("\n" + style.Render(line))
	}
	return components.ContentCard("Months", b.String(), cw)
}

func (a App) viewHelp() string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	keys := []struct{ key, desc string }{
		{"[  ]", "previous / next month"},
		{"s", "toggle newest/oldest first"},
		{"e c m", "expenses, categories, months"},
		{"tab", "next tab"},
		{"↑ ↓", "scroll expenses"},
		{"r", "reload from disk"},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(keyStyle.Render(fmt.Sprintf("%-7s", k.key)) + descStyle.Render(k.desc) + "\n")
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3).
		Render(strings.TrimRight(b.String(), "\n"))

	return lipgloss.Place(a.width, max(a.height, 1), lipgloss.Center, lipgloss.Center, card)
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow RenderTabBar: one leading space, one space between tabs.
func (a App) tabAtX(x int) int {
	pos := 1
	for i, tab := range components.Tabs {
		w := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1
	}
	return -1
}

func loadDataCmd(expensePath, budgetPath string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		l := ledger.New(expensePath)
		lr, err := l.Load()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		b := budget.New(budgetPath)
		br, err := b.Load()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}

		return DataLoadedMsg{
			Ledger:   l,
			Budgets:  b,
			Skipped:  len(lr.Skipped) + len(br.Skipped),
			Warnings: len(lr.Warnings),
			LoadTime: time.Since(start),
		}
	}
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
