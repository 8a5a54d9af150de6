package cmd

import (
	"fmt"
	"sort"

	"outlay/internal/cli"
	"outlay/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Ledger file: %s\n", config.LedgerPath(cfg))
	fmt.Println()

	fmt.Println("  [Budget]")
	fmt.Printf("    Monthly budget: %s\n", cli.FormatAmount(cfg.Budget.Monthly))
	fmt.Println()

	fmt.Println("  [Goals]")
	if len(cfg.Goals) == 0 {
		fmt.Println("    none configured")
	} else {
		names := make([]string, 0, len(cfg.Goals))
		for name := range cfg.Goals {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("    %-15s %s\n", name, cli.FormatAmount(cfg.Goals[name]))
		}
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `outlay setup` to reconfigure.")
	return nil
}
