package matcher

import (
	"strings"

	"github.com/pmatusz/recipematch/internal/profile"
	"github.com/pmatusz/recipematch/internal/recipe"
)

// Scorer computes normalized match accuracy for recipes against a
// preference profile.
type Scorer struct {
	weights Weights
}

// NewScorer creates a Scorer with the given criterion weights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// Score computes how well one recipe satisfies the profile, as a value in
// [0, 1]. Every applicable criterion adds its weight to the possible total;
// satisfied criteria add the same weight to the earned total. A profile
// with no applicable criteria scores 0.
func (s *Scorer) Score(r *recipe.Recipe, p *profile.Profile) float64 {
	var earned, possible float64

	// Name match only applies when the profile names a target.
	if p.RecipeName != "" {
		possible += s.weights.Name
		if containsFold(r.Name, p.RecipeName) {
			earned += s.weights.Name
		}
	}

	possible += s.weights.Minutes
	if p.Minutes.Contains(float64(r.Minutes)) {
		earned += s.weights.Minutes
	}

	possible += s.weights.Calories
	if p.Calories.Contains(r.Calories) {
		earned += s.weights.Calories
	}

	possible += s.weights.Fat
	if p.Fat.Contains(r.Fat) {
		earned += s.weights.Fat
	}

	possible += s.weights.Protein
	if p.Protein.Contains(r.Protein) {
		earned += s.weights.Protein
	}

	possible += s.weights.Rating
	if p.Rating.Contains(r.AvgRating) {
		earned += s.weights.Rating
	}

	// Each liked term is an independent criterion rewarding presence.
	for _, term := range p.Liked {
		possible += s.weights.Liked
		if containsIngredient(r.Ingredients, term) {
			earned += s.weights.Liked
		}
	}

	// Each disliked term is an independent criterion rewarding absence.
	for _, term := range p.Disliked {
		possible += s.weights.Disliked
		if !containsIngredient(r.Ingredients, term) {
			earned += s.weights.Disliked
		}
	}

	if possible <= 0 {
		return 0.0
	}
	return earned / possible
}

// ScoreAll scores every recipe, preserving ingestion order.
func (s *Scorer) ScoreAll(recipes []recipe.Recipe, p *profile.Profile) []recipe.Scored {
	scored := make([]recipe.Scored, 0, len(recipes))
	for _, r := range recipes {
		scored = append(scored, recipe.Scored{
			Recipe:   r,
			Accuracy: s.Score(&r, p),
		})
	}
	return scored
}

// containsFold reports whether text contains sub, case-insensitively.
// Plain substring containment: "egg" matches "eggplant".
func containsFold(text, sub string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(sub))
}

// containsIngredient reports whether any ingredient token contains the
// search term.
func containsIngredient(ingredients []string, term string) bool {
	for _, ing := range ingredients {
		if containsFold(ing, term) {
			return true
		}
	}
	return false
}
