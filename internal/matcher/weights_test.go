package matcher

import (
	"os"
	"path/filepath"
	"testing"
)

func writeWeightsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "weights.conf")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write weights file: %v", err)
	}
	return path
}

func TestLoadWeights(t *testing.T) {
	path := writeWeightsFile(t, `# criterion weights
weight_name = 3.0

weight_liked=4
weight_time = 0.5
unknown_key = 9
not a key value line
weight_rating = oops
`)

	w, ok := LoadWeights(path)
	if !ok {
		t.Fatal("expected ok for readable file")
	}

	if w.Name != 3.0 {
		t.Errorf("Name = %g, want 3.0", w.Name)
	}
	if w.Liked != 4.0 {
		t.Errorf("Liked = %g, want 4.0", w.Liked)
	}
	if w.Minutes != 0.5 {
		t.Errorf("Minutes = %g, want 0.5", w.Minutes)
	}
	// Malformed value keeps the default
	if w.Rating != 1.0 {
		t.Errorf("Rating = %g, want default 1.0", w.Rating)
	}
	// Untouched keys keep documented defaults
	if w.Disliked != 2.0 {
		t.Errorf("Disliked = %g, want default 2.0", w.Disliked)
	}
	if w.Calories != 1.0 {
		t.Errorf("Calories = %g, want default 1.0", w.Calories)
	}
}

func TestLoadWeights_MissingFile(t *testing.T) {
	w, ok := LoadWeights(filepath.Join(t.TempDir(), "does-not-exist.conf"))
	if ok {
		t.Error("expected ok=false for missing file")
	}
	if w != DefaultWeights() {
		t.Errorf("weights = %+v, want defaults", w)
	}
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()

	if w.Name != 5.0 {
		t.Errorf("Name = %g, want 5.0", w.Name)
	}
	if w.Liked != 2.0 || w.Disliked != 2.0 {
		t.Errorf("Liked/Disliked = %g/%g, want 2.0/2.0", w.Liked, w.Disliked)
	}
	if w.Calories != 1.0 || w.Fat != 1.0 || w.Protein != 1.0 || w.Minutes != 1.0 || w.Rating != 1.0 {
		t.Errorf("range weights = %+v, want 1.0 each", w)
	}
}

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Weights)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			modify:  func(w *Weights) {},
			wantErr: false,
		},
		{
			name:    "zero weight is valid",
			modify:  func(w *Weights) { w.Liked = 0 },
			wantErr: false,
		},
		{
			name:    "negative weight rejected",
			modify:  func(w *Weights) { w.Name = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := DefaultWeights()
			tt.modify(&w)

			err := w.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
