package output

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/pmatusz/recipematch/internal/database"
	"github.com/pmatusz/recipematch/internal/recipe"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []recipe.Scored:
		return scoredTable(w, v)
	case []recipe.IngredientCount:
		return vocabularyTable(w, v)
	case []database.Run:
		return runsTable(w, v)
	case *database.Run:
		return runDetail(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func scoredTable(w io.Writer, scored []recipe.Scored) error {
	if len(scored) == 0 {
		fmt.Fprintln(w, "No recipes to show.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("RANK", "ID", "NAME", "MINUTES", "CALORIES", "RATING", "ACCURACY")

	for i, r := range scored {
		if err := table.Append(
			strconv.Itoa(i+1),
			strconv.Itoa(r.ID),
			truncate(r.Name, 40),
			strconv.Itoa(r.Minutes),
			strconv.FormatFloat(r.Calories, 'f', 1, 64),
			strconv.FormatFloat(r.AvgRating, 'f', 1, 64),
			strconv.FormatFloat(r.Accuracy, 'f', 3, 64),
		); err != nil {
			return err
		}
	}

	return table.Render()
}

func vocabularyTable(w io.Writer, vocab []recipe.IngredientCount) error {
	if len(vocab) == 0 {
		fmt.Fprintln(w, "No ingredients found.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("INGREDIENT", "COUNT")

	for _, ic := range vocab {
		if err := table.Append(ic.Ingredient, strconv.Itoa(ic.Count)); err != nil {
			return err
		}
	}

	return table.Render()
}

func runsTable(w io.Writer, runs []database.Run) error {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No saved runs. Use 'recipematch match --save' to record one.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("ID", "DATASET", "RECIPES", "TOP N", "CREATED")

	for _, r := range runs {
		if err := table.Append(
			r.ID,
			truncate(r.DatasetPath, 40),
			strconv.Itoa(r.RecipeCount),
			strconv.Itoa(r.TopN),
			r.CreatedAt.Format("Jan 02, 2006 15:04"),
		); err != nil {
			return err
		}
	}

	return table.Render()
}

func runDetail(w io.Writer, r *database.Run) error {
	fmt.Fprintf(w, "Run:          %s\n", r.ID)
	fmt.Fprintf(w, "Preferences:  %s\n", r.PreferencesPath)
	fmt.Fprintf(w, "Dataset:      %s (%d recipes)\n", r.DatasetPath, r.RecipeCount)
	if r.WeightsPath != "" {
		fmt.Fprintf(w, "Weights:      %s\n", r.WeightsPath)
	}
	fmt.Fprintf(w, "Created:      %s\n", r.CreatedAt.Format("Jan 02, 2006 15:04"))

	if len(r.Results) == 0 {
		return nil
	}
	fmt.Fprintln(w)

	table := tablewriter.NewTable(w)
	table.Header("RANK", "RECIPE ID", "NAME", "ACCURACY")

	for _, res := range r.Results {
		if err := table.Append(
			strconv.Itoa(res.Rank),
			strconv.Itoa(res.RecipeID),
			truncate(res.Name, 40),
			strconv.FormatFloat(res.Accuracy, 'f', 3, 64),
		); err != nil {
			return err
		}
	}

	return table.Render()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
