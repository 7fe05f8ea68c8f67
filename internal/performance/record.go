package performance

import (
	"math"
	"time"

	"github.com/abhisek/medquiz/internal/catalog"
	"github.com/abhisek/medquiz/internal/spacedrep"
)

// Record tracks one learner's history with one item. Created on first
// exposure, updated after every answer, removed only by a full reset.
type Record struct {
	Correct   int        `json:"correct"`
	Incorrect int        `json:"incorrect"`
	LastSeen  *time.Time `json:"last_seen,omitempty"`

	// AvgResponseMs averages timed answers only; ResponseSamples counts
	// how many answers carried a response time. Untimed study answers
	// add an attempt but no sample.
	AvgResponseMs   float64 `json:"avg_response_ms"`
	ResponseSamples int     `json:"response_samples,omitempty"`

	Schedule spacedrep.Schedule `json:"schedule"`
}

// Attempts returns the total number of answers recorded.
func (r *Record) Attempts() int {
	return r.Correct + r.Incorrect
}

// Accuracy returns the fraction of correct answers, or 0 with no attempts.
func (r *Record) Accuracy() float64 {
	n := r.Attempts()
	if n == 0 {
		return 0
	}
	return float64(r.Correct) / float64(n)
}

// sanitize clamps a record loaded from storage into valid ranges so a
// corrupt or hand-edited record can never poison downstream math.
func (r *Record) sanitize() {
	if r.Correct < 0 {
		r.Correct = 0
	}
	if r.Incorrect < 0 {
		r.Incorrect = 0
	}
	if math.IsNaN(r.AvgResponseMs) || math.IsInf(r.AvgResponseMs, 0) || r.AvgResponseMs < 0 {
		r.AvgResponseMs = 0
	}
	if r.ResponseSamples < 0 {
		r.ResponseSamples = 0
	}
	if r.Schedule.IntervalDays < 0 {
		r.Schedule.IntervalDays = 0
	}
	if r.Schedule.IntervalDays > spacedrep.MaxIntervalDays {
		r.Schedule.IntervalDays = spacedrep.MaxIntervalDays
	}
	if r.Schedule.Repetition < 0 {
		r.Schedule.Repetition = 0
	}
	ef := r.Schedule.EaseFactor
	if math.IsNaN(ef) || math.IsInf(ef, 0) {
		r.Schedule.EaseFactor = spacedrep.DefaultEaseFactor
	} else if ef != 0 && ef < spacedrep.MinEaseFactor {
		r.Schedule.EaseFactor = spacedrep.MinEaseFactor
	}
}

// TrickyMark flags an item the learner wants to see more often.
// Independent of the performance record; removable at any time.
type TrickyMark struct {
	ItemID   string           `json:"item_id"`
	MarkedAt time.Time        `json:"marked_at"`
	Category catalog.Category `json:"category"`
}
