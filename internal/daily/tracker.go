package daily

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/medquiz/internal/store"
)

// ErrAlreadyCompleted signals a re-completion attempt for a day that is
// already done. Distinct from transient store failures: it means caller
// misuse, not environment failure.
var ErrAlreadyCompleted = errors.New("daily challenge already completed")

// stateKey is the settings-namespace key holding the challenge state.
const stateKey = "daily-challenge"

// State is the persistent daily challenge record: which dates were
// completed, which ISO weeks have been rewarded, banked freeze credits,
// and the current/best completion streaks.
type State struct {
	CompletedDates map[string]bool `json:"completed_dates"`
	WeeklyRewarded map[string]bool `json:"weekly_rewarded"`
	FreezeCredits  int             `json:"freeze_credits"`
	CurrentStreak  int             `json:"current_streak"`
	BestStreak     int             `json:"best_streak"`
}

func newState() *State {
	return &State{
		CompletedDates: make(map[string]bool),
		WeeklyRewarded: make(map[string]bool),
	}
}

func (s *State) sanitize() {
	if s.CompletedDates == nil {
		s.CompletedDates = make(map[string]bool)
	}
	if s.WeeklyRewarded == nil {
		s.WeeklyRewarded = make(map[string]bool)
	}
	if s.FreezeCredits < 0 {
		s.FreezeCredits = 0
	}
	if s.FreezeCredits > MaxFreezeCredits {
		s.FreezeCredits = MaxFreezeCredits
	}
	if s.CurrentStreak < 0 {
		s.CurrentStreak = 0
	}
	if s.BestStreak < s.CurrentStreak {
		s.BestStreak = s.CurrentStreak
	}
}

// CompletionResult reports the outcome of completing a day's challenge.
type CompletionResult struct {
	Streak        int  // streak length after this completion
	BestStreak    int  // best streak ever
	UsedFreeze    bool // a freeze credit was consumed to bridge yesterday
	FreezeGranted bool // the weekly goal granted a new freeze credit
	Milestone     int  // 7, 30 or 100 when a milestone was just reached, else 0
}

// Tracker manages daily challenge completion state over the record store.
type Tracker struct {
	records store.Records
	log     *zap.Logger
}

// NewTracker creates a Tracker. A nil logger is replaced with a no-op.
func NewTracker(records store.Records, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{records: records, log: log}
}

// State loads the challenge state, supplying defaults when the record is
// absent or unreadable.
func (t *Tracker) State(ctx context.Context) *State {
	raw, err := t.records.Get(ctx, store.NSSettings, stateKey)
	if err != nil {
		t.log.Warn("read daily challenge state", zap.Error(err))
		return newState()
	}
	if raw == nil {
		return newState()
	}

	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		t.log.Warn("malformed daily challenge state, using defaults", zap.Error(err))
		return newState()
	}
	s.sanitize()
	return &s
}

// Completed reports whether the challenge for now's calendar day is done.
func (t *Tracker) Completed(ctx context.Context, now time.Time) bool {
	return t.State(ctx).CompletedDates[DayKey(now)]
}

// Complete marks today's challenge done and recomputes streak state.
// A second completion for the same day returns ErrAlreadyCompleted.
func (t *Tracker) Complete(ctx context.Context, now time.Time) (*CompletionResult, error) {
	s := t.State(ctx)
	key := DayKey(now)

	if s.CompletedDates[key] {
		return nil, ErrAlreadyCompleted
	}
	s.CompletedDates[key] = true

	prevStreak := s.CurrentStreak
	length, used := StreakAfterCompletion(s.CompletedDates, s.FreezeCredits, now)
	s.FreezeCredits -= used
	s.CurrentStreak = length
	if length > s.BestStreak {
		s.BestStreak = length
	}

	result := &CompletionResult{
		Streak:     length,
		BestStreak: s.BestStreak,
		UsedFreeze: used > 0,
		Milestone:  MilestoneReached(prevStreak, length),
	}

	// Weekly goal: seven completions inside one ISO week bank a freeze,
	// at most once per week and never above the cap.
	wk := weekKey(now)
	if !s.WeeklyRewarded[wk] &&
		s.FreezeCredits < MaxFreezeCredits &&
		completionsInWeek(s.CompletedDates, now) >= WeeklyGoal {
		s.FreezeCredits++
		s.WeeklyRewarded[wk] = true
		result.FreezeGranted = true
	}

	if err := t.save(ctx, s); err != nil {
		// The completion already happened from the caller's point of
		// view; losing the write costs future consistency only.
		t.log.Warn("save daily challenge state", zap.Error(err))
	}
	return result, nil
}

func (t *Tracker) save(ctx context.Context, s *State) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return t.records.Set(ctx, store.NSSettings, stateKey, raw)
}
