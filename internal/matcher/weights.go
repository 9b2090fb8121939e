package matcher

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Weights holds the relative importance of each scored criterion. Liked and
// Disliked apply per ingredient list entry.
type Weights struct {
	Name     float64
	Calories float64
	Fat      float64
	Protein  float64
	Minutes  float64
	Rating   float64
	Liked    float64
	Disliked float64
}

// UniformWeights makes every applicable criterion count for exactly one
// point. This is the regime used when no weights source is configured.
func UniformWeights() Weights {
	return Weights{
		Name:     1.0,
		Calories: 1.0,
		Fat:      1.0,
		Protein:  1.0,
		Minutes:  1.0,
		Rating:   1.0,
		Liked:    1.0,
		Disliked: 1.0,
	}
}

// DefaultWeights returns the documented fallback used when a weights file is
// named but cannot be read.
func DefaultWeights() Weights {
	return Weights{
		Name:     5.0,
		Calories: 1.0,
		Fat:      1.0,
		Protein:  1.0,
		Minutes:  1.0,
		Rating:   1.0,
		Liked:    2.0,
		Disliked: 2.0,
	}
}

// Validate rejects negative weights. A zero weight is valid and makes the
// criterion contribute nothing to either accumulator.
func (w Weights) Validate() error {
	var errs []error
	check := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s weight must be non-negative, got %g", name, v))
		}
	}

	check("name", w.Name)
	check("cal", w.Calories)
	check("fat", w.Fat)
	check("prot", w.Protein)
	check("time", w.Minutes)
	check("rating", w.Rating)
	check("liked", w.Liked)
	check("disliked", w.Disliked)

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// LoadWeights reads a line-oriented "key = value" weights file. Comment
// lines starting with '#' and blank lines are skipped; malformed lines and
// unknown keys are ignored. A missing or unreadable file is not an error:
// the documented defaults apply and ok is false so the caller can report
// the fallback.
func LoadWeights(path string) (w Weights, ok bool) {
	w = DefaultWeights()

	f, err := os.Open(path)
	if err != nil {
		return w, false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			continue
		}

		switch strings.TrimSpace(key) {
		case "weight_name":
			w.Name = v
		case "weight_cal":
			w.Calories = v
		case "weight_fat":
			w.Fat = v
		case "weight_prot":
			w.Protein = v
		case "weight_time":
			w.Minutes = v
		case "weight_rating":
			w.Rating = v
		case "weight_liked":
			w.Liked = v
		case "weight_disliked":
			w.Disliked = v
		}
	}

	return w, true
}
