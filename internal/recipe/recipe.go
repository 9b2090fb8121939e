package recipe

// Recipe represents one catalog entry from a recipe dataset.
type Recipe struct {
	ID          int      `json:"id"`
	AvgRating   float64  `json:"avg_rating"`
	ReviewCount int      `json:"review_count"`
	Minutes     int      `json:"minutes"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Fat         float64  `json:"fat"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Tags        []string `json:"tags"`
}

// Scored pairs a recipe with its computed match accuracy.
type Scored struct {
	Recipe
	Accuracy float64 `json:"accuracy"`
}
