package progression

import "github.com/abhisek/medquiz/internal/catalog"

// CategoryStats counts answers within one category.
type CategoryStats struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// State is the learner's persistent progression: cumulative points, the
// pending tier-up payload awaiting display, best streak, and per-category
// answer counters. Updated atomically after each session's final score.
type State struct {
	Points        int                               `json:"points"`
	PendingTierUp *TierUp                           `json:"pending_tier_up,omitempty"`
	BestStreak    int                               `json:"best_streak"`
	Categories    map[catalog.Category]CategoryStats `json:"categories,omitempty"`
}

// Tier returns the learner's current tier.
func (s *State) Tier() Tier {
	return TierForPoints(s.Points)
}

// Apply folds one finished session into the state and returns the tier-up
// event if the session crossed a boundary. Session points below zero are
// treated as zero.
func (s *State) Apply(sessionPoints, bestStreak int, perCategory map[catalog.Category]CategoryStats) *TierUp {
	if sessionPoints < 0 {
		sessionPoints = 0
	}

	tierUp := CheckTierUp(s.Points, sessionPoints)
	s.Points += sessionPoints

	if bestStreak > s.BestStreak {
		s.BestStreak = bestStreak
	}

	if len(perCategory) > 0 && s.Categories == nil {
		s.Categories = make(map[catalog.Category]CategoryStats)
	}
	for cat, cs := range perCategory {
		agg := s.Categories[cat]
		agg.Correct += cs.Correct
		agg.Total += cs.Total
		s.Categories[cat] = agg
	}

	if tierUp != nil {
		s.PendingTierUp = tierUp
	}
	return tierUp
}

// ClearPendingTierUp acknowledges a displayed tier-up.
func (s *State) ClearPendingTierUp() {
	s.PendingTierUp = nil
}

// Sanitize clamps a state loaded from storage into valid ranges.
func (s *State) Sanitize() {
	if s.Points < 0 {
		s.Points = 0
	}
	if s.BestStreak < 0 {
		s.BestStreak = 0
	}
	for cat, cs := range s.Categories {
		if !cat.Valid() {
			delete(s.Categories, cat)
			continue
		}
		if cs.Correct < 0 {
			cs.Correct = 0
		}
		if cs.Total < cs.Correct {
			cs.Total = cs.Correct
		}
		s.Categories[cat] = cs
	}
}
