package progression

import (
	"testing"

	"github.com/abhisek/medquiz/internal/catalog"
)

func TestApply_AccumulatesPoints(t *testing.T) {
	s := &State{Points: 100}
	s.Apply(250, 0, nil)
	if s.Points != 350 {
		t.Errorf("Points = %d, want 350", s.Points)
	}
}

func TestApply_NegativePointsTreatedAsZero(t *testing.T) {
	s := &State{Points: 100}
	s.Apply(-50, 0, nil)
	if s.Points != 100 {
		t.Errorf("Points = %d, want 100", s.Points)
	}
}

func TestApply_TierUpSetsPending(t *testing.T) {
	s := &State{Points: 290}
	up := s.Apply(50, 0, nil)
	if up == nil {
		t.Fatal("expected tier-up")
	}
	if s.PendingTierUp == nil || s.PendingTierUp.To != TierIntern {
		t.Errorf("PendingTierUp = %+v, want pending to tier 2", s.PendingTierUp)
	}

	s.ClearPendingTierUp()
	if s.PendingTierUp != nil {
		t.Error("expected cleared pending tier-up")
	}
}

func TestApply_BestStreakOnlyImproves(t *testing.T) {
	s := &State{BestStreak: 8}
	s.Apply(0, 5, nil)
	if s.BestStreak != 8 {
		t.Errorf("BestStreak = %d, want 8 (worse run ignored)", s.BestStreak)
	}
	s.Apply(0, 12, nil)
	if s.BestStreak != 12 {
		t.Errorf("BestStreak = %d, want 12", s.BestStreak)
	}
}

func TestApply_MergesCategoryStats(t *testing.T) {
	s := &State{}
	s.Apply(0, 0, map[catalog.Category]CategoryStats{
		catalog.CategoryCardiology: {Correct: 2, Total: 3},
	})
	s.Apply(0, 0, map[catalog.Category]CategoryStats{
		catalog.CategoryCardiology: {Correct: 1, Total: 2},
		catalog.CategoryRenal:      {Correct: 4, Total: 4},
	})

	cardio := s.Categories[catalog.CategoryCardiology]
	if cardio.Correct != 3 || cardio.Total != 5 {
		t.Errorf("cardiology = %+v, want 3/5", cardio)
	}
	renal := s.Categories[catalog.CategoryRenal]
	if renal.Correct != 4 || renal.Total != 4 {
		t.Errorf("renal = %+v, want 4/4", renal)
	}
}

func TestSanitize(t *testing.T) {
	s := &State{
		Points:     -10,
		BestStreak: -1,
		Categories: map[catalog.Category]CategoryStats{
			catalog.CategoryRenal:       {Correct: 5, Total: 3},
			catalog.Category("made-up"): {Correct: 1, Total: 1},
		},
	}
	s.Sanitize()

	if s.Points != 0 {
		t.Errorf("Points = %d, want 0", s.Points)
	}
	if s.BestStreak != 0 {
		t.Errorf("BestStreak = %d, want 0", s.BestStreak)
	}
	if _, ok := s.Categories[catalog.Category("made-up")]; ok {
		t.Error("unknown category should be dropped")
	}
	renal := s.Categories[catalog.CategoryRenal]
	if renal.Total != 5 {
		t.Errorf("renal total = %d, want clamped to correct count 5", renal.Total)
	}
}
