package recipe

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// numFields is the expected number of columns per dataset row:
// id, avg rating, review count, minutes, calories, protein, fat,
// name, ingredients, tags.
const numFields = 10

// ReadFile loads a recipe dataset from a CSV file. The returned warnings
// describe rows that were tolerated despite malformed or missing fields;
// an error is returned only when the file itself cannot be read.
func ReadFile(path string) ([]Recipe, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a recipe dataset. The first row is a header and is skipped.
// Short rows leave their unassigned trailing fields at zero values and
// unparseable numerics keep zero, both reported as warnings rather than
// errors.
func Read(r io.Reader) ([]Recipe, []string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var recipes []Recipe
	var warnings []string

	line := 0
	for {
		line++
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		if line == 1 {
			// Header row
			continue
		}

		rec, warns := parseRecord(record, line)
		warnings = append(warnings, warns...)
		recipes = append(recipes, rec)
	}

	return recipes, warnings, nil
}

// parseRecord assigns fields positionally. Fields beyond the expected count
// are ignored; missing trailing fields keep their zero values.
func parseRecord(fields []string, line int) (Recipe, []string) {
	var warnings []string
	warn := func(col string, err error) {
		warnings = append(warnings, fmt.Sprintf("line %d: bad %s value: %v", line, col, err))
	}

	if len(fields) != numFields {
		warnings = append(warnings, fmt.Sprintf("line %d: expected %d fields, got %d", line, numFields, len(fields)))
	}

	r := Recipe{
		Ingredients: []string{},
		Tags:        []string{},
	}

	for i, field := range fields {
		field = strings.TrimSpace(field)
		switch i {
		case 0:
			v, err := strconv.Atoi(field)
			if err != nil {
				warn("id", err)
				continue
			}
			r.ID = v
		case 1:
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				warn("avg_rating", err)
				continue
			}
			r.AvgRating = v
		case 2:
			v, err := strconv.Atoi(field)
			if err != nil {
				warn("review_count", err)
				continue
			}
			r.ReviewCount = v
		case 3:
			v, err := strconv.Atoi(field)
			if err != nil {
				warn("minutes", err)
				continue
			}
			r.Minutes = v
		case 4:
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				warn("calories", err)
				continue
			}
			r.Calories = v
		case 5:
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				warn("protein", err)
				continue
			}
			r.Protein = v
		case 6:
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				warn("fat", err)
				continue
			}
			r.Fat = v
		case 7:
			r.Name = field
		case 8:
			r.Ingredients = SplitTokens(field)
		case 9:
			r.Tags = SplitTokens(field)
		}
	}

	return r, warnings
}

// SplitTokens splits a semicolon-separated token list, trimming each token
// and dropping empties. The result is never nil.
func SplitTokens(s string) []string {
	tokens := []string{}
	for _, tok := range strings.Split(s, ";") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
