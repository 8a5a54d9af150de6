package cmd

import (
	"encoding/json"
	"fmt"

	"outlay/internal/cli"
	"outlay/internal/forecast"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Monthly totals and next-month spending prediction",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	led, _, err := loadLedger()
	if err != nil {
		return err
	}

	expenses := led.Expenses()
	months := forecast.MonthlyTotals(expenses)

	next, err := forecast.PredictNextMonth(expenses)
	if errIsNoHistory(err) {
		fmt.Println("\n  No expense history yet — nothing to forecast.")
		fmt.Println()
		return nil
	}
	if err != nil {
		return err
	}

	if flagJSON {
		out := struct {
			Months    []float64 `json:"monthly_totals"`
			NextMonth float64   `json:"predicted_next_month"`
		}{NextMonth: next}
		for _, m := range months {
			out.Months = append(out.Months, m.Total)
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding forecast: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING TREND"))
	fmt.Println()

	rows := make([][]string, 0, len(months))
	totals := make([]float64, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{
			cli.FormatMonth(m.Year, m.Month),
			cli.FormatAmount(m.Total),
		})
		totals = append(totals, m.Total)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Total"},
		Rows:    rows,
	}))

	if len(totals) > 1 {
		fmt.Printf("\n  Trend: %s\n", cli.RenderSparkline(totals))
	}
	if len(months) == 1 {
		fmt.Println("\n  Only one month of history — flat extrapolation.")
	}
	fmt.Printf("  Predicted next month: %s\n\n", cli.FormatAmount(next))

	return nil
}
