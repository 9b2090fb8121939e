package profile

import (
	"errors"
	"fmt"
)

// Permissive bounds substituted when the preference document omits a value.
const (
	DefaultSpanMax   = 10000
	DefaultRatingMax = 5
)

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the range, boundary-inclusive on
// both ends.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FullSpan returns the permissive default range for macros and minutes.
func FullSpan() Range {
	return Range{Min: 0, Max: DefaultSpanMax}
}

// RatingSpan returns the permissive default range for the 0-5 rating scale.
func RatingSpan() Range {
	return Range{Min: 0, Max: DefaultRatingMax}
}

// Profile represents one user's search intent. An empty RecipeName means
// "no name constraint".
type Profile struct {
	RecipeName string   `json:"recipe_name"`
	Calories   Range    `json:"calories"`
	Fat        Range    `json:"fat"`
	Protein    Range    `json:"protein"`
	Minutes    Range    `json:"minutes"`
	Rating     Range    `json:"rating"`
	Liked      []string `json:"ingredients_liked"`
	Disliked   []string `json:"ingredients_disliked"`
}

// Default returns a fully permissive profile: full-span ranges, no name
// constraint, empty ingredient lists.
func Default() *Profile {
	return &Profile{
		Calories: FullSpan(),
		Fat:      FullSpan(),
		Protein:  FullSpan(),
		Minutes:  FullSpan(),
		Rating:   RatingSpan(),
		Liked:    []string{},
		Disliked: []string{},
	}
}

// Validate checks that every range satisfies min <= max.
func (p *Profile) Validate() error {
	var errs []error
	check := func(name string, r Range) {
		if r.Min > r.Max {
			errs = append(errs, fmt.Errorf("%s: min %g greater than max %g", name, r.Min, r.Max))
		}
	}

	check("calories", p.Calories)
	check("fat", p.Fat)
	check("protein", p.Protein)
	check("minutes", p.Minutes)
	check("rating", p.Rating)

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
