package spacedrep

import (
	"math"
	"time"
)

// Schedule holds the spaced repetition state for a single item.
// The zero value means "never reviewed".
type Schedule struct {
	IntervalDays int        `json:"interval_days"`
	Repetition   int        `json:"repetition"`
	EaseFactor   float64    `json:"ease_factor"`
	NextDue      *time.Time `json:"next_due,omitempty"`
}

// Review applies one answer outcome and returns the updated schedule.
//
// The ease factor moves by the SM-2 delta for the mapped quality score and
// is clamped at MinEaseFactor. A correct answer walks the 1-day, 6-day,
// round(interval x ef) ladder; an incorrect answer resets to a 1-day
// interval and repetition zero regardless of prior state. Intervals are
// capped at MaxIntervalDays, and tricky-marked items have any interval
// above one day halved after the cap.
func Review(s Schedule, correct, tricky bool, now time.Time) Schedule {
	q := QualityIncorrect
	if correct {
		q = QualityCorrect
	}

	ef := s.EaseFactor
	if ef < MinEaseFactor {
		ef = DefaultEaseFactor
	}
	ef += 0.1 - float64(5-q)*(0.08+float64(5-q)*0.02)
	if ef < MinEaseFactor {
		ef = MinEaseFactor
	}

	next := Schedule{EaseFactor: ef}

	if correct {
		switch s.Repetition {
		case 0:
			next.IntervalDays = FirstIntervalDays
		case 1:
			next.IntervalDays = SecondIntervalDays
		default:
			next.IntervalDays = int(math.Round(float64(s.IntervalDays) * ef))
		}
		next.Repetition = s.Repetition + 1
	} else {
		next.IntervalDays = 1
		next.Repetition = 0
	}

	if next.IntervalDays > MaxIntervalDays {
		next.IntervalDays = MaxIntervalDays
	}

	// Halving only touches grown intervals: a just-reset interval and the
	// first correct review are both fixed at 1 day already.
	if tricky && next.IntervalDays > 1 {
		next.IntervalDays = int(math.Round(float64(next.IntervalDays) * TrickyIntervalFactor))
		if next.IntervalDays < 1 {
			next.IntervalDays = 1
		}
	}

	due := now.AddDate(0, 0, next.IntervalDays)
	next.NextDue = &due
	return next
}

// IsDue reports whether the item is due for review. Items with no next-due
// date (never scheduled) are not due.
func (s Schedule) IsDue(now time.Time) bool {
	if s.NextDue == nil {
		return false
	}
	return !now.Before(*s.NextDue)
}

// OverdueDays returns how many days past due the item is. Returns 0 if the
// item is not yet due or has never been scheduled.
func (s Schedule) OverdueDays(now time.Time) float64 {
	if s.NextDue == nil || now.Before(*s.NextDue) {
		return 0
	}
	return now.Sub(*s.NextDue).Hours() / 24.0
}
