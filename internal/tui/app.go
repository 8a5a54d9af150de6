// Package tui provides the interactive Bubble Tea dashboard for outlay.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"outlay/internal/cli"
	"outlay/internal/model"
	"outlay/internal/tui/components"
	"outlay/internal/tui/theme"
)

// Data is everything the dashboard renders, precomputed before launch.
type Data struct {
	Report model.Report
	Months []model.MonthTotal
}

// tab indices
const (
	tabOverview = iota
	tabExpenses
	tabGoals
	tabForecast
	tabCount
)

var tabNames = [tabCount]string{"Overview", "Expenses", "Goals", "Forecast"}

// App is the root Bubble Tea model.
type App struct {
	data Data

	width     int
	height    int
	activeTab int
}

// New creates the dashboard model.
func New(data Data) App {
	return App{data: data}
}

// Run launches the dashboard in the alternate screen.
func Run(data Data) error {
	_, err := tea.NewProgram(New(data), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		case "tab", "l", "right":
			a.activeTab = (a.activeTab + 1) % tabCount
		case "shift+tab", "h", "left":
			a.activeTab = (a.activeTab + tabCount - 1) % tabCount
		case "o", "1":
			a.activeTab = tabOverview
		case "e", "2":
			a.activeTab = tabExpenses
		case "g", "3":
			a.activeTab = tabGoals
		case "f", "4":
			a.activeTab = tabForecast
		}
		return a, nil
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(a.renderTabBar())
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabExpenses:
		b.WriteString(a.viewExpenses())
	case tabGoals:
		b.WriteString(a.viewGoals())
	case tabForecast:
		b.WriteString(a.viewForecast())
	default:
		b.WriteString(a.viewOverview())
	}

	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	return b.String()
}

func (a App) renderTabBar() string {
	t := theme.Active
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if i == a.activeTab {
			parts = append(parts, activeStyle.Render(name))
		} else {
			parts = append(parts, inactiveStyle.Render(name))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (a App) renderStatusBar() string {
	t := theme.Active
	hint := lipgloss.NewStyle().Foreground(t.TextDim)
	return hint.Render("  tab: switch  o/e/g/f: jump  q: quit")
}

func (a App) viewOverview() string {
	t := theme.Active
	r := a.data.Report

	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var b strings.Builder

	fmt.Fprintf(&b, "  %s %s\n", label.Render("Total spent:   "), value.Render(cli.FormatAmount(r.TotalSpent)))
	fmt.Fprintf(&b, "  %s %s\n", label.Render("Monthly budget:"), value.Render(cli.FormatAmount(r.MonthlyBudget)))
	b.WriteString("\n")

	if r.MonthlyBudget > 0 {
		used := r.TotalSpent / r.MonthlyBudget
		b.WriteString("  " + components.LabeledBar("Budget", used, 8, 30) + "\n\n")
	}

	statusStyle := lipgloss.NewStyle().Foreground(cli.StatusColor(r.Status)).Bold(true)
	fmt.Fprintf(&b, "  %s %s\n", label.Render("Status:        "), statusStyle.Render(string(r.Status)))

	if r.NextMonth != nil {
		fmt.Fprintf(&b, "  %s %s\n", label.Render("Next month:    "), value.Render(cli.FormatAmount(*r.NextMonth)))
	}

	fmt.Fprintf(&b, "\n  %s %d expenses, %d goals\n",
		label.Render("Tracked:       "), len(r.Expenses), len(r.Goals))

	return b.String()
}

func (a App) viewExpenses() string {
	t := theme.Active
	r := a.data.Report

	if len(r.Expenses) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("  No expenses recorded.")
	}

	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	text := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amount := lipgloss.NewStyle().Foreground(t.Green)

	// Most recent entries that fit the terminal height.
	visible := a.height - 8
	if visible < 3 {
		visible = 3
	}
	expenses := r.Expenses
	if len(expenses) > visible {
		expenses = expenses[len(expenses)-visible:]
	}

	var b strings.Builder
	for _, e := range expenses {
		fmt.Fprintf(&b, "  %s  %-13s %s %s\n",
			muted.Render(cli.FormatDate(e.Date)),
			e.Category,
			amount.Render(fmt.Sprintf("%10s", cli.FormatAmount(e.Amount))),
			text.Render(e.Description),
		)
	}
	if len(expenses) < len(r.Expenses) {
		fmt.Fprintf(&b, "  %s\n", muted.Render(fmt.Sprintf("(%d earlier entries hidden)", len(r.Expenses)-len(expenses))))
	}
	return b.String()
}

func (a App) viewGoals() string {
	t := theme.Active
	r := a.data.Report

	if len(r.Goals) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("  No goals configured. Set one with `outlay goals set`.")
	}

	labelW := 0
	for _, g := range r.Goals {
		if len(g.Name) > labelW {
			labelW = len(g.Name)
		}
	}

	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for _, g := range r.Goals {
		b.WriteString("  " + components.LabeledBar(g.Name, g.Percent/100, labelW, 30) + "\n")
		fmt.Fprintf(&b, "  %s\n\n", muted.Render(fmt.Sprintf("%*s %s of %s", labelW, "",
			cli.FormatAmount(g.Spent), cli.FormatAmount(g.Target))))
	}
	return b.String()
}

func (a App) viewForecast() string {
	t := theme.Active

	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	text := lipgloss.NewStyle().Foreground(t.TextPrimary)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	if len(a.data.Months) == 0 {
		return muted.Render("  No expense history yet — nothing to forecast.")
	}

	var b strings.Builder
	totals := make([]float64, 0, len(a.data.Months))
	for _, m := range a.data.Months {
		fmt.Fprintf(&b, "  %s  %s\n",
			muted.Render(cli.FormatMonth(m.Year, m.Month)),
			text.Render(fmt.Sprintf("%10s", cli.FormatAmount(m.Total))),
		)
		totals = append(totals, m.Total)
	}

	if len(totals) > 1 {
		fmt.Fprintf(&b, "\n  %s\n", accent.Render(components.Sparkline(totals)))
	}
	if a.data.Report.NextMonth != nil {
		fmt.Fprintf(&b, "\n  %s %s\n",
			muted.Render("Predicted next month:"),
			accent.Render(cli.FormatAmount(*a.data.Report.NextMonth)))
	}
	return b.String()
}
