package matcher

import (
	"testing"

	"github.com/pmatusz/recipematch/internal/recipe"
)

func scoredWith(id int, accuracy float64) recipe.Scored {
	return recipe.Scored{
		Recipe:   recipe.Recipe{ID: id},
		Accuracy: accuracy,
	}
}

func TestRank(t *testing.T) {
	input := []recipe.Scored{
		scoredWith(1, 0.5),
		scoredWith(2, 0.9),
		scoredWith(3, 0.1),
		scoredWith(4, 0.7),
	}

	tests := []struct {
		name    string
		n       int
		wantIDs []int
	}{
		{
			name:    "top 3 in descending order",
			n:       3,
			wantIDs: []int{2, 4, 1},
		},
		{
			name:    "n larger than input returns all",
			n:       10,
			wantIDs: []int{2, 4, 1, 3},
		},
		{
			name:    "n zero returns empty",
			n:       0,
			wantIDs: []int{},
		},
		{
			name:    "negative n treated as zero",
			n:       -1,
			wantIDs: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(input, tt.n)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("rank %d: ID = %d, want %d", i+1, got[i].ID, want)
				}
			}
		})
	}
}

func TestRank_StableTieBreak(t *testing.T) {
	// Equal accuracies keep ingestion order.
	input := []recipe.Scored{
		scoredWith(10, 0.5),
		scoredWith(20, 0.5),
		scoredWith(30, 0.9),
		scoredWith(40, 0.5),
	}

	got := Rank(input, 4)
	wantIDs := []int{30, 10, 20, 40}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("rank %d: ID = %d, want %d", i+1, got[i].ID, want)
		}
	}
}

func TestRank_SingleElement(t *testing.T) {
	got := Rank([]recipe.Scored{scoredWith(7, 0.3)}, 3)
	if len(got) != 1 || got[0].ID != 7 {
		t.Errorf("Rank(1 element, 3) = %v, want the single element", got)
	}
}

func TestRank_Empty(t *testing.T) {
	if got := Rank(nil, 3); len(got) != 0 {
		t.Errorf("Rank(nil, 3) = %v, want empty", got)
	}
}

func TestRank_InputNotModified(t *testing.T) {
	input := []recipe.Scored{
		scoredWith(1, 0.1),
		scoredWith(2, 0.9),
	}

	Rank(input, 2)
	if input[0].ID != 1 || input[1].ID != 2 {
		t.Errorf("input reordered: %v", input)
	}
}
