package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"outlay/internal/cli"
	"outlay/internal/forecast"
	"outlay/internal/ledger"
	"outlay/internal/model"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full expense report: list, goals, budget status, forecast",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	led, path, err := loadLedger()
	if err != nil {
		return err
	}

	report := led.Report(predictOrNil(led))

	if flagJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(report.Expenses) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		fmt.Printf("  Add one with `outlay add`, or point --file at a ledger (looked in %s).\n\n", path)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSE REPORT"))
	fmt.Println()

	rows := make([][]string, 0, len(report.Expenses)+2)
	for _, e := range report.Expenses {
		rows = append(rows, []string{
			cli.FormatDate(e.Date),
			e.Category,
			e.Description,
			cli.FormatAmount(e.Amount),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "TOTAL", cli.FormatAmount(report.TotalSpent)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Category", "Description", "Amount"},
		Rows:    rows,
	}))

	if len(report.Goals) > 0 {
		fmt.Println()
		printGoalTable(report.Goals)
	}

	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderStatus(report.Status, report.TotalSpent, report.MonthlyBudget))

	if report.NextMonth != nil {
		fmt.Printf("  Predicted next month: %s\n", cli.FormatAmount(*report.NextMonth))
	}
	fmt.Println()

	return nil
}

// predictOrNil runs the forecaster, treating an empty history as "no
// prediction" rather than an error at report level.
func predictOrNil(led *ledger.Ledger) *float64 {
	next, err := forecast.PredictNextMonth(led.Expenses())
	if err != nil {
		return nil
	}
	return &next
}

func printGoalTable(goals []model.GoalProgress) {
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{
			g.Name,
			cli.FormatAmount(g.Spent),
			cli.FormatAmount(g.Target),
			cli.RenderMiniBar(g.Percent/100, 20),
			cli.FormatPercent(g.Percent),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Goals",
		Headers: []string{"Goal", "Spent", "Target", "Bar", "Progress"},
		Rows:    rows,
	}))
}

// errIsNoHistory reports whether err is the forecaster's empty-history error.
func errIsNoHistory(err error) bool {
	return errors.Is(err, forecast.ErrNoHistory)
}
