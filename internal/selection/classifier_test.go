package selection

import (
	"testing"

	"github.com/abhisek/medquiz/internal/performance"
)

func rec(correct, incorrect int) *performance.Record {
	return &performance.Record{Correct: correct, Incorrect: incorrect}
}

func TestClassify_NeverSeen(t *testing.T) {
	if got := Classify(nil); got != DifficultyNew {
		t.Errorf("Classify(nil) = %s, want new", got)
	}
}

func TestClassify_BelowAttemptFloor(t *testing.T) {
	// Under three attempts accuracy is meaningless: even 0% or 100%
	// classify as new.
	cases := []*performance.Record{
		rec(0, 0),
		rec(2, 0),
		rec(0, 2),
		rec(1, 1),
	}
	for _, r := range cases {
		if got := Classify(r); got != DifficultyNew {
			t.Errorf("Classify(%d/%d) = %s, want new", r.Correct, r.Attempts(), got)
		}
	}
}

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		correct, incorrect int
		want               Difficulty
	}{
		{17, 3, DifficultyEasy},    // 0.85 exactly, boundary inclusive
		{18, 2, DifficultyEasy},    // 0.90
		{51, 49, DifficultyMedium}, // 0.51 exactly
		{3, 1, DifficultyMedium},   // 0.75
		{10, 10, DifficultyHard},   // 0.50 exactly falls below medium
		{0, 3, DifficultyHard},
	}
	for _, tc := range cases {
		r := rec(tc.correct, tc.incorrect)
		if got := Classify(r); got != tc.want {
			t.Errorf("Classify(%d/%d) = %s, want %s", tc.correct, r.Attempts(), got, tc.want)
		}
	}
}
