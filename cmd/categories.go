package cmd

import (
	"fmt"
	"strings"

	"outlay/internal/category"
	"outlay/internal/cli"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category taxonomy",
	RunE:  runCategories,
}

var categorizeCmd = &cobra.Command{
	Use:   "categorize <description...>",
	Short: "Show which category a description falls into",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCategorize,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(categorizeCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	rows := make([][]string, 0, len(category.Default)+1)
	for _, cat := range category.Default {
		rows = append(rows, []string{cat.Name, strings.Join(cat.Keywords, ", ")})
	}
	rows = append(rows, []string{category.Fallback, "(no keyword matched)"})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Categories (match order)",
		Headers: []string{"Category", "Keywords"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runCategorize(_ *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	c := category.New(category.Default)
	fmt.Printf("  %s -> %s\n", description, c.Categorize(description))
	return nil
}
