package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmatusz/recipematch/internal/config"
	"github.com/pmatusz/recipematch/internal/database"
	"github.com/pmatusz/recipematch/internal/matcher"
	"github.com/pmatusz/recipematch/internal/output"
	"github.com/pmatusz/recipematch/internal/profile"
	"github.com/pmatusz/recipematch/internal/recipe"
)

var matchCmd = &cobra.Command{
	Use:   "match <preferences.json> <dataset.csv> <output.json> [weights.conf]",
	Short: "Score a recipe dataset against a preference profile",
	Long: `Score every recipe in a dataset against a preference profile and
write the top-ranked matches to a JSON result file.

Without a weights file every criterion counts for one point. With one, each
criterion's contribution is scaled by its configured weight.

Examples:
  recipematch match prefs.json recipes.csv result.json
  recipematch match prefs.json recipes.csv result.json weights.conf
  recipematch match prefs.json recipes.csv result.json --top 10 --save`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runMatch,
}

var (
	matchTop     int
	matchWeights string
	matchSave    bool
)

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().IntVar(&matchTop, "top", 0, "number of results to keep (default from config)")
	matchCmd.Flags().StringVar(&matchWeights, "weights", "", "criterion weights file")
	matchCmd.Flags().BoolVar(&matchSave, "save", false, "save this run to history")
}

func runMatch(cmd *cobra.Command, args []string) error {
	prefsPath, datasetPath, outputPath := args[0], args[1], args[2]

	weightsPath := matchWeights
	if len(args) == 4 {
		weightsPath = args[3]
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if weightsPath == "" {
		weightsPath = cfg.Matcher.WeightsPath
	}

	// Ingest preference profile (fatal on failure)
	prof, err := profile.Load(prefsPath)
	if err != nil {
		return err
	}

	// Ingest recipe dataset (fatal only if unreadable)
	recipes, warnings, err := recipe.ReadFile(datasetPath)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", datasetPath, w)
	}

	// Resolve weights: no source at all means the uniform regime
	weights := matcher.UniformWeights()
	if weightsPath != "" {
		var ok bool
		weights, ok = matcher.LoadWeights(weightsPath)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: weights file %s not readable, using defaults\n", weightsPath)
		}
		if err := weights.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: invalid weights in %s (%v), using defaults\n", weightsPath, err)
			weights = matcher.DefaultWeights()
		}
	}

	topN := cfg.Matcher.TopN
	if cmd.Flags().Changed("top") {
		topN = matchTop
	}

	// Score and rank
	scorer := matcher.NewScorer(weights)
	scored := scorer.ScoreAll(recipes, prof)
	ranked := matcher.Rank(scored, topN)

	// Emit the result file
	if err := output.WriteResults(outputPath, ranked); err != nil {
		return err
	}

	fmt.Printf("Scored %d recipe(s), wrote top %d to %s\n\n", len(recipes), len(ranked), outputPath)

	if matchSave {
		if err := saveRun(cmd, cfg, prefsPath, datasetPath, weightsPath, len(recipes), topN, ranked); err != nil {
			return err
		}
	}

	return output.Output(outputFmt, ranked)
}

func saveRun(cmd *cobra.Command, cfg *config.Config, prefsPath, datasetPath, weightsPath string,
	recipeCount, topN int, ranked []recipe.Scored) error {

	ctx := cmd.Context()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	run := &database.Run{
		PreferencesPath: prefsPath,
		DatasetPath:     datasetPath,
		WeightsPath:     weightsPath,
		RecipeCount:     recipeCount,
		TopN:            topN,
	}
	for i, r := range ranked {
		run.Results = append(run.Results, database.RunResult{
			Rank:     i + 1,
			RecipeID: r.ID,
			Name:     r.Name,
			Accuracy: r.Accuracy,
		})
	}

	if err := db.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	fmt.Printf("Saved run %s\n\n", run.ID)
	return nil
}
