package engine

import (
	"time"

	"github.com/abhisek/medquiz/internal/catalog"
	"github.com/abhisek/medquiz/internal/progression"
)

// Mode selects the session flow.
type Mode string

const (
	ModeQuiz   Mode = "quiz"   // weighted selection over the full catalog
	ModeReview Mode = "review" // due items only, feeds the scheduler
	ModeStudy  Mode = "study"  // untimed, unscored, tricky-marking allowed
	ModeDaily  Mode = "daily"  // deterministic daily challenge
)

// Session is the transient state of one run. It exists only in memory and
// holds every counter the run needs; nothing session-scoped lives outside
// this value.
type Session struct {
	ID   string
	Mode Mode

	// Items is the ordered question set drawn at session start.
	Items []catalog.Item

	// Index points at the current item.
	Index int

	// QuestionTime is the per-question budget; zero means untimed.
	QuestionTime time.Duration

	// TimeRemaining counts down for the current question.
	TimeRemaining time.Duration

	// SelectedOption is the option chosen for the current question, if any.
	SelectedOption string

	// Score accumulates points, including the perfect-round bonus at the end.
	Score int

	// Answered and CorrectCount track progress through the item set.
	Answered     int
	CorrectCount int

	// ConsecutiveCorrect is the live streak; BestCombo the longest run.
	ConsecutiveCorrect int
	BestCombo          int

	// PerCategory tallies answers by item category for progression stats.
	PerCategory map[catalog.Category]progression.CategoryStats

	// Done is set when the last item is answered or the session is
	// cancelled. Ticks and answers against a done session are no-ops.
	Done bool

	// finished guards FinishSession so late calls cannot double-apply.
	finished bool

	StartedAt time.Time
}

// CurrentItem returns the item awaiting an answer.
func (s *Session) CurrentItem() (catalog.Item, bool) {
	if s.Done || s.Index < 0 || s.Index >= len(s.Items) {
		return catalog.Item{}, false
	}
	return s.Items[s.Index], true
}

// Remaining returns how many items have not been answered yet.
func (s *Session) Remaining() int {
	return len(s.Items) - s.Answered
}

// Cancel abandons the session. Pending timer ticks become no-ops.
func (s *Session) Cancel() {
	s.Done = true
}

// advance moves to the next item or finishes the set.
func (s *Session) advance() {
	s.Index++
	s.SelectedOption = ""
	if s.Index >= len(s.Items) {
		s.Done = true
		return
	}
	s.TimeRemaining = s.QuestionTime
}

// tally records one answer against the per-category counters.
func (s *Session) tally(cat catalog.Category, correct bool) {
	if s.PerCategory == nil {
		s.PerCategory = make(map[catalog.Category]progression.CategoryStats)
	}
	cs := s.PerCategory[cat]
	cs.Total++
	if correct {
		cs.Correct++
	}
	s.PerCategory[cat] = cs
}
