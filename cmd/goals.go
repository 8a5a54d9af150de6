package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"outlay/internal/cli"
	"outlay/internal/config"

	"github.com/spf13/cobra"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show progress toward savings/spending goals",
	RunE:  runGoals,
}

var goalsSetCmd = &cobra.Command{
	Use:   "set <name> <target>",
	Short: "Create or overwrite a goal target",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalsSet,
}

var goalsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsRemove,
}

func init() {
	goalsCmd.AddCommand(goalsSetCmd)
	goalsCmd.AddCommand(goalsRemoveCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(_ *cobra.Command, _ []string) error {
	led, _, err := loadLedger()
	if err != nil {
		return err
	}

	progress := led.GoalProgress()

	if flagJSON {
		data, err := json.MarshalIndent(progress, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding goals: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(progress) == 0 {
		fmt.Println("\n  No goals configured.")
		fmt.Println("  Set one with `outlay goals set vacation 500`.")
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("GOAL PROGRESS"))
	fmt.Println()
	printGoalTable(progress)
	fmt.Println()

	return nil
}

func runGoalsSet(_ *cobra.Command, args []string) error {
	name := args[0]
	target, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", args[1], err)
	}
	if target <= 0 {
		return fmt.Errorf("goal target must be positive, got %s", args[1])
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Goals == nil {
		cfg.Goals = make(map[string]float64)
	}
	cfg.Goals[name] = target

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("  Goal %q set to %s\n", name, cli.FormatAmount(target))
	return nil
}

func runGoalsRemove(_ *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if _, ok := cfg.Goals[name]; !ok {
		return fmt.Errorf("no goal named %q", name)
	}
	delete(cfg.Goals, name)

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("  Goal %q removed\n", name)
	return nil
}
