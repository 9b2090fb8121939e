package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pmatusz/recipematch/internal/recipe"
)

// Accuracy renders with exactly three decimal places in JSON, matching the
// result file contract.
type Accuracy float64

// MarshalJSON implements json.Marshaler.
func (a Accuracy) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', 3, 64)), nil
}

// ResultRow is one entry of the result file.
type ResultRow struct {
	ID       int      `json:"id"`
	Accuracy Accuracy `json:"accuracy"`
}

// WriteResults writes the ranked recipes to path as a JSON array of
// {id, accuracy} objects in ranked order.
func WriteResults(path string, ranked []recipe.Scored) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer f.Close()

	return WriteResultsTo(f, ranked)
}

// WriteResultsTo writes the result array to the given writer.
func WriteResultsTo(w io.Writer, ranked []recipe.Scored) error {
	rows := make([]ResultRow, 0, len(ranked))
	for _, r := range ranked {
		rows = append(rows, ResultRow{ID: r.ID, Accuracy: Accuracy(r.Accuracy)})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

// JSON writes data as JSON to stdout
func JSON(data interface{}) error {
	return JSONTo(os.Stdout, data)
}

// JSONTo writes data as JSON to the given writer
func JSONTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Output writes data in the specified format
func Output(format string, data interface{}) error {
	switch format {
	case "json":
		return JSON(data)
	case "table", "":
		return Table(data)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
