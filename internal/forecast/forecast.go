// Package forecast aggregates expenses into monthly totals and extrapolates
// the next month's spend from a least-squares trend line.
package forecast

import (
	"errors"
	"math"
	"sort"

	"outlay/internal/model"
)

// ErrNoHistory is returned when prediction is attempted with no expenses.
var ErrNoHistory = errors.New("no expense history to forecast from")

// MonthlyTotals groups expenses by calendar (year, month) and returns the
// totals in chronological order.
func MonthlyTotals(expenses []model.Expense) []model.MonthTotal {
	type key struct {
		year  int
		month int
	}

	byMonth := make(map[key]float64)
	for _, e := range expenses {
		k := key{year: e.Date.Year(), month: int(e.Date.Month())}
		byMonth[k] += e.Amount
	}

	months := make([]model.MonthTotal, 0, len(byMonth))
	for k, total := range byMonth {
		months = append(months, model.MonthTotal{Year: k.year, Month: k.month, Total: total})
	}

	// Sort on the structured pair; a lexical sort over formatted keys would
	// order "2024-9" after "2024-10".
	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j])
	})

	return months
}

// PredictNextMonth fits total = a*index + b over the chronological month
// index and evaluates the line one step past the last observed month,
// rounded to 2 decimal places.
//
// A single month of history yields a flat extrapolation (that month's total).
// Empty history returns ErrNoHistory.
func PredictNextMonth(expenses []model.Expense) (float64, error) {
	months := MonthlyTotals(expenses)

	switch len(months) {
	case 0:
		return 0, ErrNoHistory
	case 1:
		return round2(months[0].Total), nil
	}

	slope, intercept := fitLine(months)
	next := slope*float64(len(months)) + intercept
	return round2(next), nil
}

// fitLine computes the ordinary least-squares line over (index, total) pairs
// where index = 0, 1, 2, ... in chronological order.
func fitLine(months []model.MonthTotal) (slope, intercept float64) {
	n := float64(len(months))

	var sumX, sumY, sumXY, sumX2 float64
	for i, m := range months {
		x := float64(i)
		sumX += x
		sumY += m.Total
		sumXY += x * m.Total
		sumX2 += x * x
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
