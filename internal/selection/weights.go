package selection

import (
	"github.com/abhisek/medquiz/internal/catalog"
	"github.com/abhisek/medquiz/internal/performance"
	"github.com/abhisek/medquiz/internal/progression"
)

// Weight modifiers. All modifiers stack multiplicatively on the base, so
// a weak-category, tricky-marked, hard item at tier 5 carries
// 2.0 x 3.0 x 1.5 = 9.0.
const (
	BaseWeight         = 1.0
	WeakCategoryFactor = 2.0
	TrickyFactor       = 3.0

	// Tier-conditioned difficulty bonuses. Beginners (tiers 1-2) get an
	// even distribution; higher tiers see hard material more often.
	HighTierHardFactor   = 1.5
	HighTierMediumFactor = 1.2
	MidTierHardFactor    = 1.3
)

// Weight computes the selection weight for one item. Always positive.
func Weight(item catalog.Item, rec *performance.Record, tricky map[string]bool, weak map[catalog.Category]bool, tier progression.Tier) float64 {
	w := BaseWeight

	if weak[item.Category] {
		w *= WeakCategoryFactor
	}
	if tricky[item.ID] {
		w *= TrickyFactor
	}

	difficulty := Classify(rec)
	switch {
	case tier.Clamp() >= progression.TierFellow:
		if difficulty == DifficultyHard {
			w *= HighTierHardFactor
		} else if difficulty == DifficultyMedium {
			w *= HighTierMediumFactor
		}
	case tier.Clamp() >= progression.TierResident:
		if difficulty == DifficultyHard {
			w *= MidTierHardFactor
		}
	}

	return w
}

// WeakCategories marks every category whose aggregate accuracy falls
// strictly below the learner's overall accuracy. Categories with no
// attempted items are skipped, not marked weak.
func WeakCategories(records map[string]*performance.Record, items []catalog.Item) map[catalog.Category]bool {
	type tally struct{ correct, attempts int }
	byCategory := make(map[catalog.Category]*tally)
	overall := tally{}

	for _, item := range items {
		rec, ok := records[item.ID]
		if !ok || rec.Attempts() == 0 {
			continue
		}
		t := byCategory[item.Category]
		if t == nil {
			t = &tally{}
			byCategory[item.Category] = t
		}
		t.correct += rec.Correct
		t.attempts += rec.Attempts()
		overall.correct += rec.Correct
		overall.attempts += rec.Attempts()
	}

	weak := make(map[catalog.Category]bool)
	if overall.attempts == 0 {
		return weak
	}
	overallAcc := float64(overall.correct) / float64(overall.attempts)

	for cat, t := range byCategory {
		if t.attempts == 0 {
			continue
		}
		if float64(t.correct)/float64(t.attempts) < overallAcc {
			weak[cat] = true
		}
	}
	return weak
}
