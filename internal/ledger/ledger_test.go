package ledger

import (
	"errors"
	"math"
	"testing"
	"time"

	"outlay/internal/model"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 15, 4, 5, 0, time.UTC)
	}
}

func mustAdd(t *testing.T, l *Ledger, amount float64, desc string) model.Expense {
	t.Helper()
	e, err := l.AddExpense(amount, desc)
	if err != nil {
		t.Fatalf("AddExpense(%v, %q): %v", amount, desc, err)
	}
	return e
}

func TestAddExpense_DatesAndCategorizes(t *testing.T) {
	l := New(1000, WithClock(fixedClock(2026, time.August, 27)))

	e := mustAdd(t, l, 120, "Groceries at supermarket")

	if e.Category != "food" {
		t.Errorf("Category = %q, want food", e.Category)
	}
	want := time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC)
	if !e.Date.Equal(want) {
		t.Errorf("Date = %v, want %v (day precision)", e.Date, want)
	}
}

func TestAddExpense_RejectsNonPositive(t *testing.T) {
	l := New(1000)

	if _, err := l.AddExpense(0, "free"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("AddExpense(0) err = %v, want ErrInvalidAmount", err)
	}
	if _, err := l.AddExpense(-5, "refund"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("AddExpense(-5) err = %v, want ErrInvalidAmount", err)
	}
	if len(l.Expenses()) != 0 {
		t.Errorf("rejected expenses were recorded: %d", len(l.Expenses()))
	}
}

func TestTotalSpent(t *testing.T) {
	l := New(1000, WithClock(fixedClock(2026, time.August, 1)))

	if got := l.TotalSpent(); got != 0 {
		t.Errorf("empty TotalSpent = %v, want 0", got)
	}

	mustAdd(t, l, 10.25, "coffee")
	mustAdd(t, l, 89.75, "electricity bill")

	if got := l.TotalSpent(); got != 100 {
		t.Errorf("TotalSpent = %v, want 100", got)
	}
}

func TestExpensesInsertionOrder(t *testing.T) {
	l := New(1000, WithClock(fixedClock(2026, time.August, 1)))
	mustAdd(t, l, 1, "first")
	mustAdd(t, l, 2, "second")
	mustAdd(t, l, 3, "third")

	got := l.Expenses()
	if len(got) != 3 || got[0].Description != "first" || got[2].Description != "third" {
		t.Errorf("Expenses order = %+v, want insertion order", got)
	}
}

func TestSetGoal(t *testing.T) {
	l := New(1000)

	if err := l.SetGoal("vacation", 500); err != nil {
		t.Fatalf("SetGoal: %v", err)
	}
	// last write wins
	if err := l.SetGoal("vacation", 800); err != nil {
		t.Fatalf("SetGoal overwrite: %v", err)
	}

	goals := l.Goals()
	if len(goals) != 1 || goals[0].Target != 800 {
		t.Errorf("Goals = %+v, want single vacation target 800", goals)
	}

	if err := l.SetGoal("bad", 0); !errors.Is(err, ErrInvalidGoal) {
		t.Errorf("SetGoal(0) err = %v, want ErrInvalidGoal", err)
	}
	if err := l.SetGoal("bad", -10); !errors.Is(err, ErrInvalidGoal) {
		t.Errorf("SetGoal(-10) err = %v, want ErrInvalidGoal", err)
	}
}

func TestGoalProgress_SubstringMatch(t *testing.T) {
	l := New(1000, WithClock(fixedClock(2026, time.August, 1)))
	mustAdd(t, l, 200, "Course enrollment")
	mustAdd(t, l, 50, "Netflix subscription")

	if err := l.SetGoal("course", 500); err != nil {
		t.Fatal(err)
	}

	progress := l.GoalProgress()
	if len(progress) != 1 {
		t.Fatalf("GoalProgress len = %d, want 1", len(progress))
	}
	// Case-insensitive plain substring: "course" matches "Course enrollment".
	if progress[0].Percent != 40.0 {
		t.Errorf("Percent = %v, want 40.0", progress[0].Percent)
	}
	if progress[0].Spent != 200 {
		t.Errorf("Spent = %v, want 200", progress[0].Spent)
	}
}

func TestGoalProgress_Rounding(t *testing.T) {
	l := New(1000, WithClock(fixedClock(2026, time.August, 1)))
	mustAdd(t, l, 100, "trip tickets")

	if err := l.SetGoal("trip", 300); err != nil {
		t.Fatal(err)
	}

	progress := l.GoalProgress()
	// 100/300*100 = 33.333... -> 33.33
	if progress[0].Percent != 33.33 {
		t.Errorf("Percent = %v, want 33.33", progress[0].Percent)
	}
}

func TestGoalProgress_NoMatches(t *testing.T) {
	l := New(1000, WithClock(fixedClock(2026, time.August, 1)))
	mustAdd(t, l, 100, "coffee")

	if err := l.SetGoal("vacation", 500); err != nil {
		t.Fatal(err)
	}

	progress := l.GoalProgress()
	if progress[0].Percent != 0 || progress[0].Spent != 0 {
		t.Errorf("unmatched goal progress = %+v, want zero", progress[0])
	}
}

func TestBudgetAlert_Thresholds(t *testing.T) {
	cases := []struct {
		spent  float64
		budget float64
		want   model.BudgetStatus
	}{
		{spent: 400, budget: 1000, want: model.StatusWithin},
		// exactly 90% is not yet approaching (strict comparison)
		{spent: 900, budget: 1000, want: model.StatusWithin},
		{spent: 900.01, budget: 1000, want: model.StatusApproaching},
		// exactly on budget is not exceeded
		{spent: 1000, budget: 1000, want: model.StatusApproaching},
		{spent: 1000.01, budget: 1000, want: model.StatusExceeded},
	}

	for _, tc := range cases {
		l := New(tc.budget, WithClock(fixedClock(2026, time.August, 1)))
		mustAdd(t, l, tc.spent, "stuff")
		if got := l.BudgetAlert(); got != tc.want {
			t.Errorf("BudgetAlert(spent=%v, budget=%v) = %q, want %q", tc.spent, tc.budget, got, tc.want)
		}
	}
}

func TestBudgetAlert_MonotonicInBudget(t *testing.T) {
	rank := map[model.BudgetStatus]int{
		model.StatusExceeded:    0,
		model.StatusApproaching: 1,
		model.StatusWithin:      2,
	}

	prev := -1
	for _, budget := range []float64{100, 400, 444, 445, 500, 1000} {
		l := New(budget, WithClock(fixedClock(2026, time.August, 1)))
		mustAdd(t, l, 400, "stuff")
		r := rank[l.BudgetAlert()]
		if r < prev {
			t.Fatalf("status went backward at budget %v", budget)
		}
		prev = r
	}
}

func TestScenario(t *testing.T) {
	l := New(1000, WithClock(fixedClock(2026, time.August, 27)))

	mustAdd(t, l, 120, "Groceries at supermarket")
	mustAdd(t, l, 50, "Netflix subscription")
	mustAdd(t, l, 30, "Bus fare")
	mustAdd(t, l, 200, "Course enrollment")

	wantCategories := []string{"food", "entertainment", "transport", "education"}
	for i, e := range l.Expenses() {
		if e.Category != wantCategories[i] {
			t.Errorf("expense %d category = %q, want %q", i, e.Category, wantCategories[i])
		}
	}

	if got := l.TotalSpent(); got != 400 {
		t.Errorf("TotalSpent = %v, want 400", got)
	}
	if got := l.BudgetAlert(); got != model.StatusWithin {
		t.Errorf("BudgetAlert = %q, want within", got)
	}

	if err := l.SetGoal("course", 500); err != nil {
		t.Fatal(err)
	}
	progress := l.GoalProgress()
	if math.Abs(progress[0].Percent-40.0) > 1e-9 {
		t.Errorf("course progress = %v, want 40.0", progress[0].Percent)
	}
}

func TestReport(t *testing.T) {
	l := New(1000, WithClock(fixedClock(2026, time.August, 1)))
	mustAdd(t, l, 400, "stuff")

	next := 123.45
	r := l.Report(&next)

	if r.TotalSpent != 400 || r.MonthlyBudget != 1000 || r.Status != model.StatusWithin {
		t.Errorf("Report = %+v", r)
	}
	if r.NextMonth == nil || *r.NextMonth != 123.45 {
		t.Errorf("Report.NextMonth = %v, want 123.45", r.NextMonth)
	}
}
