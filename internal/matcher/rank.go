package matcher

import (
	"sort"

	"github.com/pmatusz/recipematch/internal/recipe"
)

// Rank returns the n highest-accuracy recipes in descending order. The sort
// is stable, so recipes with equal accuracy keep their ingestion order.
// A negative n is treated as zero; an n larger than the input returns the
// whole collection. The input slice is not modified.
func Rank(scored []recipe.Scored, n int) []recipe.Scored {
	if n < 0 {
		n = 0
	}

	ranked := make([]recipe.Scored, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Accuracy > ranked[j].Accuracy
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
