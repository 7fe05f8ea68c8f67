package selection

import (
	"testing"

	"github.com/abhisek/medquiz/internal/catalog"
	"github.com/abhisek/medquiz/internal/performance"
	"github.com/abhisek/medquiz/internal/progression"
)

var testItem = catalog.Item{
	ID:       "aortic-stenosis",
	Category: catalog.CategoryCardiology,
}

// hardRec classifies as hard: 1/4 correct over four attempts.
func hardRec() *performance.Record {
	return &performance.Record{Correct: 1, Incorrect: 3}
}

// mediumRec classifies as medium: 3/4 correct.
func mediumRec() *performance.Record {
	return &performance.Record{Correct: 3, Incorrect: 1}
}

func TestWeight_Base(t *testing.T) {
	w := Weight(testItem, nil, nil, nil, progression.TierStudent)
	if w != 1.0 {
		t.Errorf("base weight = %v, want 1.0", w)
	}
}

func TestWeight_ModifiersCompound(t *testing.T) {
	tricky := map[string]bool{testItem.ID: true}
	weak := map[catalog.Category]bool{testItem.Category: true}

	// weak x2.0, tricky x3.0, tier-5 hard x1.5 = 9.0 exactly.
	w := Weight(testItem, hardRec(), tricky, weak, progression.TierFellow)
	if w != 9.0 {
		t.Errorf("compound weight = %v, want 9.0", w)
	}
}

func TestWeight_TierConditionedBonus(t *testing.T) {
	cases := []struct {
		name string
		rec  *performance.Record
		tier progression.Tier
		want float64
	}{
		{"beginner sees even distribution", hardRec(), progression.TierStudent, 1.0},
		{"tier 2 sees even distribution", hardRec(), progression.TierIntern, 1.0},
		{"mid tier boosts hard", hardRec(), progression.TierResident, 1.3},
		{"mid tier ignores medium", mediumRec(), progression.TierRegistrar, 1.0},
		{"high tier boosts hard", hardRec(), progression.TierAttending, 1.5},
		{"high tier boosts medium", mediumRec(), progression.TierFellow, 1.2},
	}
	for _, tc := range cases {
		if got := Weight(testItem, tc.rec, nil, nil, tc.tier); got != tc.want {
			t.Errorf("%s: weight = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestWeight_AlwaysPositive(t *testing.T) {
	for tier := progression.MinTier; tier <= progression.MaxTier; tier++ {
		for _, r := range []*performance.Record{nil, hardRec(), mediumRec()} {
			if w := Weight(testItem, r, nil, nil, tier); w <= 0 {
				t.Fatalf("weight = %v at tier %d, want > 0", w, tier)
			}
		}
	}
}

func TestWeakCategories(t *testing.T) {
	items := []catalog.Item{
		{ID: "a", Category: catalog.CategoryCardiology},
		{ID: "b", Category: catalog.CategoryCardiology},
		{ID: "c", Category: catalog.CategoryRenal},
		{ID: "d", Category: catalog.CategoryNeurology},
	}
	records := map[string]*performance.Record{
		"a": {Correct: 1, Incorrect: 4}, // cardiology: 2/10 = 0.2
		"b": {Correct: 1, Incorrect: 4},
		"c": {Correct: 9, Incorrect: 1}, // renal: 9/10 = 0.9
		// neurology: no attempts, must be skipped
	}

	weak := WeakCategories(records, items)

	// Overall accuracy is 11/20 = 0.55.
	if !weak[catalog.CategoryCardiology] {
		t.Error("cardiology (0.2 < 0.55) should be weak")
	}
	if weak[catalog.CategoryRenal] {
		t.Error("renal (0.9 > 0.55) should not be weak")
	}
	if weak[catalog.CategoryNeurology] {
		t.Error("category with zero attempts should be skipped, not weak")
	}
}

func TestWeakCategories_NoAttempts(t *testing.T) {
	items := []catalog.Item{{ID: "a", Category: catalog.CategoryCardiology}}
	weak := WeakCategories(nil, items)
	if len(weak) != 0 {
		t.Errorf("weak = %v, want empty with no attempts", weak)
	}
}
