package cmd

import (
	"outlay/internal/config"
	"outlay/internal/forecast"
	"outlay/internal/tui"
	"outlay/internal/tui/theme"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	theme.SetByName(cfg.Appearance.Theme)

	led, _, err := loadLedger()
	if err != nil {
		return err
	}

	data := tui.Data{
		Report: led.Report(predictOrNil(led)),
		Months: forecast.MonthlyTotals(led.Expenses()),
	}

	return tui.Run(data)
}
