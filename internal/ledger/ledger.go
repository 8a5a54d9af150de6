// Package ledger holds the in-memory expense ledger: recorded expenses,
// named goals, and budget threshold checks.
package ledger

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"outlay/internal/category"
	"outlay/internal/model"
)

var (
	// ErrInvalidAmount is returned when an expense amount is not positive.
	ErrInvalidAmount = errors.New("expense amount must be positive")
	// ErrInvalidGoal is returned when a goal target is not positive.
	ErrInvalidGoal = errors.New("goal target must be positive")
)

// approachingShare is the fraction of the monthly budget above which the
// status switches from "within" to "approaching".
const approachingShare = 0.9

// Ledger owns an insertion-ordered sequence of expenses and a set of named
// goals. It is not safe for concurrent mutation; callers serialize access.
type Ledger struct {
	monthlyBudget float64
	categorizer   *category.Categorizer
	now           func() time.Time

	expenses []model.Expense
	goals    map[string]float64
}

// Option configures a Ledger at construction.
type Option func(*Ledger)

// WithClock overrides the clock used to date new expenses. Tests use this
// for deterministic dates.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithCategorizer overrides the default taxonomy.
func WithCategorizer(c *category.Categorizer) Option {
	return func(l *Ledger) { l.categorizer = c }
}

// New creates a ledger with a fixed monthly budget.
func New(monthlyBudget float64, opts ...Option) *Ledger {
	l := &Ledger{
		monthlyBudget: monthlyBudget,
		categorizer:   category.New(category.Default),
		now:           time.Now,
		goals:         make(map[string]float64),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddExpense categorizes the description and appends an expense dated today
// (day precision). Amounts must be positive.
func (l *Ledger) AddExpense(amount float64, description string) (model.Expense, error) {
	return l.Record(amount, description, l.now())
}

// Record appends an expense with an explicit date. This is the insertion path
// for historical entries loaded from a ledger file.
func (l *Ledger) Record(amount float64, description string, date time.Time) (model.Expense, error) {
	if amount <= 0 {
		return model.Expense{}, ErrInvalidAmount
	}

	e := model.Expense{
		Amount:      amount,
		Description: description,
		Category:    l.categorizer.Categorize(description),
		Date:        truncateToDay(date),
	}
	l.expenses = append(l.expenses, e)
	return e, nil
}

// SetGoal inserts or overwrites a goal target. Rejecting non-positive targets
// keeps the progress percentage well-defined.
func (l *Ledger) SetGoal(name string, target float64) error {
	if target <= 0 {
		return ErrInvalidGoal
	}
	l.goals[name] = target
	return nil
}

// Expenses returns the recorded expenses in insertion order.
func (l *Ledger) Expenses() []model.Expense {
	out := make([]model.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Goals returns the configured goals sorted by name.
func (l *Ledger) Goals() []model.Goal {
	out := make([]model.Goal, 0, len(l.goals))
	for name, target := range l.goals {
		out = append(out, model.Goal{Name: name, Target: target})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// MonthlyBudget returns the budget the ledger was constructed with.
func (l *Ledger) MonthlyBudget() float64 {
	return l.monthlyBudget
}

// TotalSpent sums all recorded amounts, with no category or date filtering.
func (l *Ledger) TotalSpent() float64 {
	var total float64
	for _, e := range l.expenses {
		total += e.Amount
	}
	return total
}

// GoalProgress computes per-goal progress, sorted by goal name.
//
// An expense counts toward a goal when its description contains the goal name
// as a plain case-insensitive substring. This is deliberately a different rule
// from category keyword matching: no word boundaries, no taxonomy involved.
func (l *Ledger) GoalProgress() []model.GoalProgress {
	progress := make([]model.GoalProgress, 0, len(l.goals))
	for _, g := range l.Goals() {
		var spent float64
		for _, e := range l.expenses {
			if containsIgnoreCase(e.Description, g.Name) {
				spent += e.Amount
			}
		}
		progress = append(progress, model.GoalProgress{
			Name:    g.Name,
			Target:  g.Target,
			Spent:   spent,
			Percent: round2(spent / g.Target * 100),
		})
	}
	return progress
}

// BudgetAlert classifies total spend against the monthly budget.
// Exactly on budget is "approaching", not "exceeded".
func (l *Ledger) BudgetAlert() model.BudgetStatus {
	spent := l.TotalSpent()
	switch {
	case spent > l.monthlyBudget:
		return model.StatusExceeded
	case spent > approachingShare*l.monthlyBudget:
		return model.StatusApproaching
	default:
		return model.StatusWithin
	}
}

// Report assembles the full report structure rendered by the CLI.
// nextMonth is nil when the forecaster has no history to work with.
func (l *Ledger) Report(nextMonth *float64) model.Report {
	return model.Report{
		Expenses:      l.Expenses(),
		TotalSpent:    l.TotalSpent(),
		MonthlyBudget: l.monthlyBudget,
		Status:        l.BudgetAlert(),
		Goals:         l.GoalProgress(),
		NextMonth:     nextMonth,
	}
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
