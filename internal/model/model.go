// Package model defines domain types for outlay expenses, goals, and reports.
package model

import "time"

// Expense is a single recorded outgoing. Immutable once created; the ledger
// assigns the category and date at insertion time.
type Expense struct {
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

// Goal is a named savings/spending target. One active target per name,
// last write wins.
type Goal struct {
	Name   string  `json:"name"`
	Target float64 `json:"target"`
}

// GoalProgress holds the computed progress for one goal.
type GoalProgress struct {
	Name    string  `json:"name"`
	Target  float64 `json:"target"`
	Spent   float64 `json:"spent"`
	Percent float64 `json:"percent"`
}

// BudgetStatus classifies total spend against the monthly budget.
type BudgetStatus string

// Budget status values, ordered from worst to best.
const (
	StatusExceeded    BudgetStatus = "exceeded"
	StatusApproaching BudgetStatus = "approaching"
	StatusWithin      BudgetStatus = "within"
)

// MonthTotal holds the summed spend for one calendar month.
type MonthTotal struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

// Before reports whether m is chronologically earlier than other.
// Comparison is on the structured (year, month) pair, never on a
// formatted key string.
func (m MonthTotal) Before(other MonthTotal) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// Report is the full output of `outlay report`, serialized as-is for --json.
type Report struct {
	Expenses      []Expense      `json:"expenses"`
	TotalSpent    float64        `json:"total_spent"`
	MonthlyBudget float64        `json:"monthly_budget"`
	Status        BudgetStatus   `json:"budget_status"`
	Goals         []GoalProgress `json:"goals,omitempty"`
	NextMonth     *float64       `json:"predicted_next_month,omitempty"`
}
