package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"outlay/internal/cli"
	"outlay/internal/config"
	"outlay/internal/source"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	ledgerPath := config.LedgerPath(cfg)
	result, _ := source.ParseFile(ledgerPath)

	fmt.Println()
	fmt.Println("  Welcome to outlay!")
	fmt.Println()
	if len(result.Entries) > 0 {
		fmt.Printf("  Found %d expenses in %s\n\n", len(result.Entries), ledgerPath)
	}

	// 1. Monthly budget
	fmt.Println("  1. Monthly budget")
	fmt.Printf("     Current: %s\n", cli.FormatAmount(cfg.Budget.Monthly))
	fmt.Print("     > ")
	budgetIn, _ := reader.ReadString('\n')
	budgetIn = strings.TrimSpace(budgetIn)
	if budgetIn != "" {
		budget, err := strconv.ParseFloat(budgetIn, 64)
		if err != nil || budget <= 0 {
			fmt.Println("     Not a positive number, keeping current value.")
		} else {
			cfg.Budget.Monthly = budget
		}
	}
	fmt.Println()

	// 2. Ledger file
	fmt.Println("  2. Ledger file")
	fmt.Printf("     Current: %s\n", ledgerPath)
	fmt.Print("     > ")
	pathIn, _ := reader.ReadString('\n')
	pathIn = strings.TrimSpace(pathIn)
	if pathIn != "" {
		cfg.General.LedgerFile = pathIn
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `outlay setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
