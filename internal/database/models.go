package database

import "time"

// Run represents one saved match run: which inputs were scored and what the
// ranked outcome was.
type Run struct {
	ID              string      `json:"id"`
	PreferencesPath string      `json:"preferences_path"`
	DatasetPath     string      `json:"dataset_path"`
	WeightsPath     string      `json:"weights_path,omitempty"`
	RecipeCount     int         `json:"recipe_count"`
	TopN            int         `json:"top_n"`
	CreatedAt       time.Time   `json:"created_at"`
	Results         []RunResult `json:"results,omitempty"`
}

// RunResult is one ranked entry of a saved run.
type RunResult struct {
	Rank     int     `json:"rank"`
	RecipeID int     `json:"recipe_id"`
	Name     string  `json:"name"`
	Accuracy float64 `json:"accuracy"`
}
