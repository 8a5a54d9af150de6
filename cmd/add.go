package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"outlay/internal/category"
	"outlay/internal/cli"
	"outlay/internal/config"
	"outlay/internal/source"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagAddDate string

var addCmd = &cobra.Command{
	Use:   "add [amount] [description...]",
	Short: "Record an expense",
	Long:  "Record an expense in the ledger file. With no arguments, prompts interactively.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Expense date as 2006-01-02 (default: today)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	var (
		amount      float64
		description string
		err         error
	)

	switch {
	case len(args) >= 2:
		amount, err = strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[0], err)
		}
		description = strings.Join(args[1:], " ")
	case len(args) == 0:
		amount, description, err = promptExpense()
		if err != nil {
			return err
		}
	default:
		return errors.New("usage: outlay add <amount> <description>, or no arguments for the interactive form")
	}

	if amount <= 0 {
		return errors.New("expense amount must be positive")
	}

	date := time.Now()
	if flagAddDate != "" {
		date, err = time.ParseInLocation(source.DateLayout, flagAddDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", flagAddDate, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path := flagFile
	if path == "" {
		path = config.LedgerPath(cfg)
	}

	entry := source.Entry{Date: date, Amount: amount, Description: description}
	if err := source.Append(path, entry); err != nil {
		return err
	}

	// Reload so the confirmation reflects the full ledger, not just this entry.
	led, _, err := loadLedger()
	if err != nil {
		return err
	}

	assigned := category.New(category.Default).Categorize(description)
	fmt.Printf("\n  Recorded %s  %s  (%s)\n",
		cli.FormatAmount(amount), description, assigned)
	fmt.Printf("  %s\n\n", cli.RenderStatus(led.BudgetAlert(), led.TotalSpent(), led.MonthlyBudget()))

	return nil
}

// promptExpense collects amount and description via an interactive form.
func promptExpense() (float64, string, error) {
	var (
		amountStr   string
		description string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return errors.New("enter a number")
					}
					if v <= 0 {
						return errors.New("amount must be positive")
					}
					return nil
				}).
				Value(&amountStr),
			huh.NewInput().
				Title("Description").
				Placeholder("Groceries at supermarket").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("description is required")
					}
					return nil
				}).
				Value(&description),
		),
	)

	if err := form.Run(); err != nil {
		return 0, "", err
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}

	return amount, strings.TrimSpace(description), nil
}
