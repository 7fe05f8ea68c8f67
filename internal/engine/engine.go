package engine

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/medquiz/internal/catalog"
	"github.com/abhisek/medquiz/internal/daily"
	"github.com/abhisek/medquiz/internal/performance"
	"github.com/abhisek/medquiz/internal/progression"
	"github.com/abhisek/medquiz/internal/scoring"
	"github.com/abhisek/medquiz/internal/selection"
	"github.com/abhisek/medquiz/internal/store"
)

// ErrNoDueItems signals a review session start with nothing due.
var ErrNoDueItems = errors.New("no items due for review")

// progressionKey is the single key in the progression namespace.
const progressionKey = "state"

// Engine wires the selection, scheduling, scoring and progression
// subsystems over one record store. All computation is synchronous; the
// only persistence is atomic whole-record reads and writes, each one
// independently fallible.
type Engine struct {
	catalog *catalog.Catalog
	perf    *performance.Service
	daily   *daily.Tracker
	records store.Records
	logs    store.SessionLogs
	log     *zap.Logger
	now     func() time.Time
	rng     *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand overrides the session RNG, for tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// New creates an Engine over the given record store and catalog.
func New(records store.Records, logs store.SessionLogs, cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		records: records,
		logs:    logs,
		log:     zap.NewNop(),
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.perf = performance.NewService(records, e.log)
	e.daily = daily.NewTracker(records, e.log)
	return e
}

// Performance exposes the performance record service (tricky marks, reset).
func (e *Engine) Performance() *performance.Service {
	return e.perf
}

// Daily exposes the daily challenge tracker.
func (e *Engine) Daily() *daily.Tracker {
	return e.daily
}

// Progression loads the learner's progression state, supplying defaults
// when the record is absent or unreadable.
func (e *Engine) Progression(ctx context.Context) *progression.State {
	raw, err := e.records.Get(ctx, store.NSProgression, progressionKey)
	if err != nil {
		e.log.Warn("read progression state", zap.Error(err))
		return &progression.State{}
	}
	if raw == nil {
		return &progression.State{}
	}

	var s progression.State
	if err := json.Unmarshal(raw, &s); err != nil {
		e.log.Warn("malformed progression state, using defaults", zap.Error(err))
		return &progression.State{}
	}
	s.Sanitize()
	return &s
}

func (e *Engine) saveProgression(ctx context.Context, s *progression.State) {
	raw, err := json.Marshal(s)
	if err != nil {
		e.log.Warn("marshal progression state", zap.Error(err))
		return
	}
	if err := e.records.Set(ctx, store.NSProgression, progressionKey, raw); err != nil {
		e.log.Warn("save progression state", zap.Error(err))
	}
}

// StartSession builds a session of k items for the given mode.
//
// Quiz and study sessions draw from the full catalog with weighted
// sampling; review sessions serve due items most-overdue first. Study
// sessions are untimed.
func (e *Engine) StartSession(ctx context.Context, mode Mode, k int) (*Session, error) {
	now := e.now()
	prog := e.Progression(ctx)
	tier := prog.Tier()

	var items []catalog.Item
	switch mode {
	case ModeReview:
		due := e.perf.DueItemIDs(ctx, now)
		if len(due) == 0 {
			return nil, ErrNoDueItems
		}
		if k < 0 {
			k = 0
		}
		if k > len(due) {
			k = len(due)
		}
		for _, id := range due[:k] {
			if it, ok := e.catalog.ByID(id); ok {
				items = append(items, it)
			}
		}
	default:
		records := e.perf.AllRecords(ctx)
		tricky := e.perf.TrickyIDs(ctx)
		weak := selection.WeakCategories(records, e.catalog.All())

		pool := e.catalog.All()
		weights := make([]float64, len(pool))
		for i, it := range pool {
			weights[i] = selection.Weight(it, records[it.ID], tricky, weak, tier)
		}

		var err error
		items, err = selection.WeightedSample(e.rng, pool, weights, k)
		if err != nil {
			return nil, err
		}
	}

	questionTime := progression.TimerForTier(tier)
	if mode == ModeStudy {
		questionTime = 0 // untimed
	}

	return &Session{
		ID:            uuid.NewString(),
		Mode:          mode,
		Items:         items,
		QuestionTime:  questionTime,
		TimeRemaining: questionTime,
		StartedAt:     now,
	}, nil
}

// StartDailyChallenge builds today's deterministic challenge session.
func (e *Engine) StartDailyChallenge(ctx context.Context) (*Session, daily.Config, error) {
	now := e.now()
	cfg := daily.ConfigForDate(daily.DayKey(now))
	items := daily.Questions(cfg, e.catalog)

	return &Session{
		ID:            uuid.NewString(),
		Mode:          ModeDaily,
		Items:         items,
		QuestionTime:  cfg.TimeLimit,
		TimeRemaining: cfg.TimeLimit,
		StartedAt:     now,
	}, cfg, nil
}

// CompleteDailyChallenge records today's challenge as done and returns
// the streak outcome. Re-completion yields daily.ErrAlreadyCompleted.
func (e *Engine) CompleteDailyChallenge(ctx context.Context) (*daily.CompletionResult, error) {
	return e.daily.Complete(ctx, e.now())
}

// AnswerResult reports one processed answer.
type AnswerResult struct {
	Item      catalog.Item
	Correct   bool
	TimedOut  bool
	Points    int
	ComboTier int
	Streak    int
}

// SubmitAnswer processes the learner's choice for the current question.
// The answer is correct when the selected option is the current item's ID.
// Returns nil if the session is done or has no current question.
func (e *Engine) SubmitAnswer(ctx context.Context, s *Session, selectedID string) *AnswerResult {
	item, ok := s.CurrentItem()
	if !ok {
		return nil
	}
	s.SelectedOption = selectedID
	return e.applyAnswer(ctx, s, item, selectedID == item.ID, false)
}

// Tick advances the countdown by one second. Reaching zero resolves the
// current question as a timeout (an incorrect answer worth zero points).
// Ticks against a done, untimed, or already-expired session are no-ops,
// so a queued tick arriving after cancellation cannot corrupt state.
func (e *Engine) Tick(ctx context.Context, s *Session) *AnswerResult {
	if s.Done || s.QuestionTime == 0 {
		return nil
	}
	item, ok := s.CurrentItem()
	if !ok {
		return nil
	}
	if s.TimeRemaining <= 0 {
		return nil
	}

	s.TimeRemaining -= time.Second
	if s.TimeRemaining > 0 {
		return nil
	}
	s.TimeRemaining = 0
	return e.applyAnswer(ctx, s, item, false, true)
}

func (e *Engine) applyAnswer(ctx context.Context, s *Session, item catalog.Item, correct, timedOut bool) *AnswerResult {
	now := e.now()

	result := &AnswerResult{Item: item, Correct: correct, TimedOut: timedOut}

	if correct {
		s.ConsecutiveCorrect++
		if s.ConsecutiveCorrect > s.BestCombo {
			s.BestCombo = s.ConsecutiveCorrect
		}
		result.ComboTier = scoring.ComboTier(s.ConsecutiveCorrect)
		if s.Mode != ModeStudy {
			result.Points = scoring.AnswerPoints(s.TimeRemaining, s.QuestionTime, result.ComboTier)
		}
		s.CorrectCount++
	} else {
		s.ConsecutiveCorrect = 0
		result.ComboTier = 1
	}
	result.Streak = s.ConsecutiveCorrect

	s.Score += result.Points
	s.Answered++
	s.tally(item.Category, correct)

	responseMs := int((s.QuestionTime - s.TimeRemaining).Milliseconds())
	e.perf.RecordAnswer(ctx, item.ID, correct, responseMs, now)

	if s.Mode == ModeReview {
		tricky := e.perf.TrickyIDs(ctx)
		e.perf.ApplyReview(ctx, item.ID, correct, tricky[item.ID], now)
	}

	s.advance()
	return result
}

// Summary reports a finished session.
type Summary struct {
	SessionID    string
	Mode         Mode
	Score        int
	Questions    int
	Correct      int
	BestCombo    int
	PerfectRound bool
	TierUp       *progression.TierUp
}

// FinishSession applies the perfect-round bonus, folds the session into
// the persistent progression state, and appends the history entry. Each
// persistence write is independently fallible: failures are logged and
// the in-memory summary is returned regardless. Calling it twice for the
// same session returns nil.
func (e *Engine) FinishSession(ctx context.Context, s *Session) *Summary {
	if s.finished {
		return nil
	}
	s.finished = true
	s.Done = true

	if s.Mode != ModeStudy {
		if bonus := scoring.PerfectBonus(s.CorrectCount, len(s.Items)); bonus > 0 && s.Answered == len(s.Items) {
			s.Score += bonus
		}
	}

	summary := &Summary{
		SessionID:    s.ID,
		Mode:         s.Mode,
		Score:        s.Score,
		Questions:    s.Answered,
		Correct:      s.CorrectCount,
		BestCombo:    s.BestCombo,
		PerfectRound: len(s.Items) > 0 && s.CorrectCount == len(s.Items),
	}

	if s.Mode != ModeStudy {
		prog := e.Progression(ctx)
		summary.TierUp = prog.Apply(s.Score, s.BestCombo, s.PerCategory)
		e.saveProgression(ctx, prog)
	}

	if e.logs != nil {
		entry := store.SessionLogEntry{
			SessionID:  s.ID,
			Mode:       string(s.Mode),
			Score:      s.Score,
			Questions:  s.Answered,
			Correct:    s.CorrectCount,
			BestCombo:  s.BestCombo,
			StartedAt:  s.StartedAt,
			FinishedAt: e.now(),
		}
		if err := e.logs.Append(ctx, entry); err != nil {
			e.log.Warn("append session log", zap.String("session", s.ID), zap.Error(err))
		}
	}

	return summary
}
