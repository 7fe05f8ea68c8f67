package spacedrep

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestReview_FirstCorrect(t *testing.T) {
	s := Review(Schedule{EaseFactor: DefaultEaseFactor}, true, false, testNow)

	if s.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", s.IntervalDays)
	}
	if s.Repetition != 1 {
		t.Errorf("Repetition = %d, want 1", s.Repetition)
	}
	if s.EaseFactor != 2.5 {
		t.Errorf("EaseFactor = %v, want 2.5 (quality 4 leaves ease unchanged)", s.EaseFactor)
	}
	wantDue := testNow.AddDate(0, 0, 1)
	if s.NextDue == nil || !s.NextDue.Equal(wantDue) {
		t.Errorf("NextDue = %v, want %v", s.NextDue, wantDue)
	}
}

func TestReview_SecondCorrect(t *testing.T) {
	first := Review(Schedule{EaseFactor: DefaultEaseFactor}, true, false, testNow)
	second := Review(first, true, false, testNow.AddDate(0, 0, 1))

	if second.IntervalDays != 6 {
		t.Errorf("IntervalDays = %d, want 6", second.IntervalDays)
	}
	if second.Repetition != 2 {
		t.Errorf("Repetition = %d, want 2", second.Repetition)
	}
}

func TestReview_ThirdCorrect_CappedAtFourteen(t *testing.T) {
	s := Schedule{IntervalDays: 6, Repetition: 2, EaseFactor: 2.5}
	next := Review(s, true, false, testNow)

	// 6 x 2.5 = 15, capped to 14.
	if next.IntervalDays != 14 {
		t.Errorf("IntervalDays = %d, want 14", next.IntervalDays)
	}
	if next.Repetition != 3 {
		t.Errorf("Repetition = %d, want 3", next.Repetition)
	}
}

func TestReview_Incorrect_ResetsFromAnyState(t *testing.T) {
	states := []Schedule{
		{},
		{IntervalDays: 1, Repetition: 1, EaseFactor: 2.5},
		{IntervalDays: 14, Repetition: 5, EaseFactor: 2.0},
	}
	for _, s := range states {
		next := Review(s, false, false, testNow)
		if next.IntervalDays != 1 {
			t.Errorf("from %+v: IntervalDays = %d, want 1", s, next.IntervalDays)
		}
		if next.Repetition != 0 {
			t.Errorf("from %+v: Repetition = %d, want 0", s, next.Repetition)
		}
	}
}

func TestReview_Incorrect_StrictlyDecreasesEase(t *testing.T) {
	s := Schedule{IntervalDays: 14, Repetition: 4, EaseFactor: 2.5}
	next := Review(s, false, false, testNow)
	if next.EaseFactor >= s.EaseFactor {
		t.Errorf("EaseFactor = %v, want < %v", next.EaseFactor, s.EaseFactor)
	}
}

func TestReview_EaseNeverBelowFloor(t *testing.T) {
	s := Schedule{EaseFactor: DefaultEaseFactor}
	for i := 0; i < 50; i++ {
		s = Review(s, false, false, testNow)
		if s.EaseFactor < MinEaseFactor {
			t.Fatalf("after %d incorrect answers: EaseFactor = %v, below floor %v",
				i+1, s.EaseFactor, MinEaseFactor)
		}
	}
	if s.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %v, want exactly %v after unbounded incorrect run",
			s.EaseFactor, MinEaseFactor)
	}
}

func TestReview_TrickyHalvesGrownInterval(t *testing.T) {
	// 14 x 2.5 = 35 -> capped 14 -> halved to 7.
	s := Schedule{IntervalDays: 14, Repetition: 2, EaseFactor: 2.5}
	next := Review(s, true, true, testNow)
	if next.IntervalDays != 7 {
		t.Errorf("IntervalDays = %d, want 7", next.IntervalDays)
	}
}

func TestReview_TrickyNeverTouchesOneDayInterval(t *testing.T) {
	// First correct review is fixed at 1 day.
	first := Review(Schedule{EaseFactor: DefaultEaseFactor}, true, true, testNow)
	if first.IntervalDays != 1 {
		t.Errorf("first correct: IntervalDays = %d, want 1", first.IntervalDays)
	}

	// A reset from an incorrect answer is also fixed at 1 day.
	reset := Review(Schedule{IntervalDays: 14, Repetition: 3, EaseFactor: 2.5}, false, true, testNow)
	if reset.IntervalDays != 1 {
		t.Errorf("incorrect reset: IntervalDays = %d, want 1", reset.IntervalDays)
	}
}

func TestReview_ZeroEaseTreatedAsDefault(t *testing.T) {
	// A zero-value schedule (never reviewed) must not start at the floor.
	s := Review(Schedule{}, true, false, testNow)
	if s.EaseFactor != DefaultEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", s.EaseFactor, DefaultEaseFactor)
	}
}

func TestReview_IntervalAlwaysInRange(t *testing.T) {
	s := Schedule{EaseFactor: DefaultEaseFactor}
	outcomes := []bool{true, true, true, true, false, true, true, true, true, true}
	for _, correct := range outcomes {
		s = Review(s, correct, false, testNow)
		if s.IntervalDays < 1 || s.IntervalDays > MaxIntervalDays {
			t.Fatalf("IntervalDays = %d, want within [1, %d]", s.IntervalDays, MaxIntervalDays)
		}
	}
}

func TestIsDue(t *testing.T) {
	if (Schedule{}).IsDue(testNow) {
		t.Error("never-scheduled item should not be due")
	}

	past := testNow.AddDate(0, 0, -1)
	future := testNow.AddDate(0, 0, 1)

	if !(Schedule{NextDue: &past}).IsDue(testNow) {
		t.Error("past due date should be due")
	}
	if !(Schedule{NextDue: &testNow}).IsDue(testNow) {
		t.Error("exactly-now due date should be due")
	}
	if (Schedule{NextDue: &future}).IsDue(testNow) {
		t.Error("future due date should not be due")
	}
}

func TestOverdueDays(t *testing.T) {
	due := testNow.AddDate(0, 0, -2)
	s := Schedule{NextDue: &due}
	if got := s.OverdueDays(testNow); got != 2 {
		t.Errorf("OverdueDays = %v, want 2", got)
	}

	future := testNow.AddDate(0, 0, 3)
	s = Schedule{NextDue: &future}
	if got := s.OverdueDays(testNow); got != 0 {
		t.Errorf("OverdueDays = %v, want 0 before due date", got)
	}
}
