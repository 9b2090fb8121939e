package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// fileProfile mirrors the preference document keys. Pointer bounds
// distinguish an omitted value from an explicit zero.
type fileProfile struct {
	RecipeName *string  `json:"recipe_name"`
	CalMin     *float64 `json:"cal_min"`
	CalMax     *float64 `json:"cal_max"`
	FatMin     *float64 `json:"fat_min"`
	FatMax     *float64 `json:"fat_max"`
	ProtMin    *float64 `json:"prot_min"`
	ProtMax    *float64 `json:"prot_max"`
	MinutesMin *float64 `json:"minutes_min"`
	MinutesMax *float64 `json:"minutes_max"`
	RatingMin  *float64 `json:"rating_min"`
	RatingMax  *float64 `json:"rating_max"`
	Liked      []string `json:"ingredients_liked"`
	Disliked   []string `json:"ingredients_disliked"`
}

// Load reads and parses a preference profile document.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse builds a Profile from a JSON preference document, substituting the
// permissive default span for any omitted bound.
func Parse(data []byte) (*Profile, error) {
	var fp fileProfile
	if err := json.Unmarshal(data, &fp); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}

	p := Default()

	if fp.RecipeName != nil {
		p.RecipeName = strings.TrimSpace(*fp.RecipeName)
	}
	if fp.CalMin != nil {
		p.Calories.Min = *fp.CalMin
	}
	if fp.CalMax != nil {
		p.Calories.Max = *fp.CalMax
	}
	if fp.FatMin != nil {
		p.Fat.Min = *fp.FatMin
	}
	if fp.FatMax != nil {
		p.Fat.Max = *fp.FatMax
	}
	if fp.ProtMin != nil {
		p.Protein.Min = *fp.ProtMin
	}
	if fp.ProtMax != nil {
		p.Protein.Max = *fp.ProtMax
	}
	if fp.MinutesMin != nil {
		p.Minutes.Min = *fp.MinutesMin
	}
	if fp.MinutesMax != nil {
		p.Minutes.Max = *fp.MinutesMax
	}
	if fp.RatingMin != nil {
		p.Rating.Min = *fp.RatingMin
	}
	if fp.RatingMax != nil {
		p.Rating.Max = *fp.RatingMax
	}

	p.Liked = cleanTerms(fp.Liked)
	p.Disliked = cleanTerms(fp.Disliked)

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preferences: %w", err)
	}

	return p, nil
}

// cleanTerms trims each search term and drops empties. The result is never
// nil.
func cleanTerms(terms []string) []string {
	out := []string{}
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
