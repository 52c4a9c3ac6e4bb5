package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/financely/financely/internal/config"
	"github.com/financely/financely/internal/snapshot"
)

const sampleSnapshot = `# Transactions may also live in transactions/*.csv. Budgets match a
# transaction's name, or its category when the name is empty.
transactions:
  - type: income
    amount: 50000
    name: Salary
    category: Salary
    date: 01-01-2025
  - type: expense
    amount: 15000
    name: Rent
    category: Housing
    date: 03-01-2025
  - type: expense
    amount: 4200
    name: Groceries
    category: Food
    date: 10-01-2025
budgets:
  - category: Groceries
    limit: 5000
    period: monthly
goals:
  - name: Emergency Fund
    target_amount: 100000
    current_amount: 20000
    priority: high
`

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new Financely workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "profile name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(out io.Writer, dir, name string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	// Create directory structure.
	dirs := []string{
		"logs",
		"import",
		filepath.Join("import", "processed"),
		snapshot.TransactionsDir,
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write financely.yaml.
	if err := config.Save(cfgPath, config.Default(name)); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write a starter snapshot.
	if err := os.WriteFile(filepath.Join(dir, snapshot.File), []byte(sampleSnapshot), 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	// Keep credentials out of version control.
	gitignore := ".env\nlogs/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	// Write import/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Fprintf(out, "Initialized Financely workspace at %s\n", dir)
	return nil
}
