// Package cmd implements the outlay CLI commands.
package cmd

import (
	"fmt"
	"os"

	"outlay/internal/config"
	"outlay/internal/ledger"
	"outlay/internal/source"

	"github.com/spf13/cobra"
)

var (
	flagFile   string
	flagBudget float64
	flagQuiet  bool
	flagJSON   bool
)

var rootCmd = &cobra.Command{
	Use:   "outlay",
	Short: "Personal expense tracker",
	Long:  "Track expenses from a plain CSV ledger: categories, budget alerts, goals, and a next-month forecast.",
	RunE:  runReport,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Ledger CSV file (default: config or XDG data dir)")
	rootCmd.PersistentFlags().Float64VarP(&flagBudget, "budget", "b", 0, "Monthly budget override")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Emit JSON instead of tables")
}

// loadLedger is the shared loading path used by all commands: resolve config,
// parse the ledger file, and replay every entry into a fresh in-memory ledger.
func loadLedger() (*ledger.Ledger, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}

	path := flagFile
	if path == "" {
		path = config.LedgerPath(cfg)
	}

	budget := cfg.Budget.Monthly
	if flagBudget > 0 {
		budget = flagBudget
	}

	result, err := source.ParseFile(path)
	if err != nil {
		return nil, "", err
	}
	if result.LineErrors > 0 && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  %d ledger lines could not be parsed\n", result.LineErrors)
	}

	led := ledger.New(budget)

	for _, entry := range result.Entries {
		var recErr error
		if entry.Date.IsZero() {
			_, recErr = led.AddExpense(entry.Amount, entry.Description)
		} else {
			_, recErr = led.Record(entry.Amount, entry.Description, entry.Date)
		}
		if recErr != nil && !flagQuiet {
			fmt.Fprintf(os.Stderr, "  skipped %q: %v\n", entry.Description, recErr)
		}
	}

	for name, target := range cfg.Goals {
		if err := led.SetGoal(name, target); err != nil && !flagQuiet {
			fmt.Fprintf(os.Stderr, "  skipped goal %q: %v\n", name, err)
		}
	}

	return led, path, nil
}
