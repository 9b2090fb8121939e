package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmatusz/recipematch/internal/config"
	"github.com/pmatusz/recipematch/internal/database"
	"github.com/pmatusz/recipematch/internal/output"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List or show saved match runs",
	Long: `List match runs saved with 'recipematch match --save', or show one
run's ranked results.

Examples:
  recipematch history
  recipematch history --limit 5
  recipematch history 2f6c0de0-9f3a-4c1b-8e65-1f0f6f2a9b11`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Open database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if len(args) == 1 {
		run, err := db.GetRun(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load run %s: %w", args[0], err)
		}
		return output.Output(outputFmt, run)
	}

	runs, err := db.ListRuns(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	return output.Output(outputFmt, runs)
}
