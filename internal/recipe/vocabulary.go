package recipe

import (
	"sort"
	"strings"
)

// IngredientCount pairs an ingredient token with its number of occurrences
// across a dataset.
type IngredientCount struct {
	Ingredient string `json:"ingredient"`
	Count      int    `json:"count"`
}

// Vocabulary returns the distinct lower-cased ingredient tokens of the
// dataset with occurrence counts, most frequent first. Ties sort
// alphabetically.
func Vocabulary(recipes []Recipe) []IngredientCount {
	counts := make(map[string]int)
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			counts[strings.ToLower(ing)]++
		}
	}

	vocab := make([]IngredientCount, 0, len(counts))
	for ing, n := range counts {
		vocab = append(vocab, IngredientCount{Ingredient: ing, Count: n})
	}

	sort.Slice(vocab, func(i, j int) bool {
		if vocab[i].Count != vocab[j].Count {
			return vocab[i].Count > vocab[j].Count
		}
		return vocab[i].Ingredient < vocab[j].Ingredient
	})

	return vocab
}
