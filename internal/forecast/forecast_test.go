package forecast

import (
	"errors"
	"math"
	"testing"
	"time"

	"outlay/internal/model"
)

func expenseOn(year int, month time.Month, day int, amount float64) model.Expense {
	return model.Expense{
		Amount:      amount,
		Description: "test",
		Category:    "other",
		Date:        time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestMonthlyTotals_GroupsAndSums(t *testing.T) {
	expenses := []model.Expense{
		expenseOn(2026, time.January, 5, 100),
		expenseOn(2026, time.January, 20, 50),
		expenseOn(2026, time.February, 1, 75),
	}

	months := MonthlyTotals(expenses)
	if len(months) != 2 {
		t.Fatalf("len = %d, want 2", len(months))
	}
	if months[0].Total != 150 {
		t.Errorf("January total = %v, want 150", months[0].Total)
	}
	if months[1].Total != 75 {
		t.Errorf("February total = %v, want 75", months[1].Total)
	}
}

func TestMonthlyTotals_ChronologicalNotLexical(t *testing.T) {
	// September vs October would invert under a lexical "2026-9"/"2026-10"
	// sort; December vs next January crosses the year boundary.
	expenses := []model.Expense{
		expenseOn(2027, time.January, 1, 4),
		expenseOn(2026, time.October, 1, 2),
		expenseOn(2026, time.December, 1, 3),
		expenseOn(2026, time.September, 1, 1),
	}

	months := MonthlyTotals(expenses)

	want := []model.MonthTotal{
		{Year: 2026, Month: 9, Total: 1},
		{Year: 2026, Month: 10, Total: 2},
		{Year: 2026, Month: 12, Total: 3},
		{Year: 2027, Month: 1, Total: 4},
	}
	if len(months) != len(want) {
		t.Fatalf("len = %d, want %d", len(months), len(want))
	}
	for i := range want {
		if months[i] != want[i] {
			t.Errorf("months[%d] = %+v, want %+v", i, months[i], want[i])
		}
	}
}

func TestPredictNextMonth_LinearRoundTrip(t *testing.T) {
	// Totals exactly on total = 10*index + 100 for months 0..4.
	var expenses []model.Expense
	for i := 0; i < 5; i++ {
		expenses = append(expenses, expenseOn(2026, time.Month(i+1), 10, 100+10*float64(i)))
	}

	got, err := PredictNextMonth(expenses)
	if err != nil {
		t.Fatalf("PredictNextMonth: %v", err)
	}
	if math.Abs(got-150.0) > 1e-9 {
		t.Errorf("prediction = %v, want 150.0", got)
	}
}

func TestPredictNextMonth_DecliningTrend(t *testing.T) {
	expenses := []model.Expense{
		expenseOn(2026, time.March, 1, 300),
		expenseOn(2026, time.April, 1, 200),
		expenseOn(2026, time.May, 1, 100),
	}

	got, err := PredictNextMonth(expenses)
	if err != nil {
		t.Fatalf("PredictNextMonth: %v", err)
	}
	if math.Abs(got-0.0) > 1e-9 {
		t.Errorf("prediction = %v, want 0.0", got)
	}
}

func TestPredictNextMonth_SingleMonthFlat(t *testing.T) {
	expenses := []model.Expense{
		expenseOn(2026, time.June, 3, 80),
		expenseOn(2026, time.June, 17, 40),
	}

	got, err := PredictNextMonth(expenses)
	if err != nil {
		t.Fatalf("single month should not error, got %v", err)
	}
	if got != 120 {
		t.Errorf("flat extrapolation = %v, want 120", got)
	}
}

func TestPredictNextMonth_EmptyHistory(t *testing.T) {
	_, err := PredictNextMonth(nil)
	if !errors.Is(err, ErrNoHistory) {
		t.Errorf("err = %v, want ErrNoHistory", err)
	}
}

func TestPredictNextMonth_Rounds(t *testing.T) {
	expenses := []model.Expense{
		expenseOn(2026, time.January, 1, 10),
		expenseOn(2026, time.February, 1, 10.10),
		expenseOn(2026, time.March, 1, 10.21),
	}

	got, err := PredictNextMonth(expenses)
	if err != nil {
		t.Fatalf("PredictNextMonth: %v", err)
	}
	if got != math.Round(got*100)/100 {
		t.Errorf("prediction %v not rounded to 2 decimal places", got)
	}
}
