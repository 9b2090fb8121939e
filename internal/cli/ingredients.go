package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmatusz/recipematch/internal/output"
	"github.com/pmatusz/recipematch/internal/recipe"
)

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients <dataset.csv>",
	Short: "List the ingredient vocabulary of a dataset",
	Long: `List the distinct ingredient tokens in a recipe dataset with their
occurrence counts, most frequent first. Useful when building the liked and
disliked lists of a preference profile.

Examples:
  recipematch ingredients recipes.csv
  recipematch ingredients recipes.csv --limit 50 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runIngredients,
}

var ingredientsLimit int

func init() {
	rootCmd.AddCommand(ingredientsCmd)

	ingredientsCmd.Flags().IntVar(&ingredientsLimit, "limit", 0, "maximum number of entries to show (0 = all)")
}

func runIngredients(cmd *cobra.Command, args []string) error {
	recipes, warnings, err := recipe.ReadFile(args[0])
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", args[0], w)
	}

	vocab := recipe.Vocabulary(recipes)
	if ingredientsLimit > 0 && ingredientsLimit < len(vocab) {
		vocab = vocab[:ingredientsLimit]
	}

	return output.Output(outputFmt, vocab)
}
