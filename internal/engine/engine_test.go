package engine

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/medquiz/internal/catalog"
	"github.com/abhisek/medquiz/internal/daily"
	"github.com/abhisek/medquiz/internal/performance"
	"github.com/abhisek/medquiz/internal/progression"
	"github.com/abhisek/medquiz/internal/spacedrep"
	"github.com/abhisek/medquiz/internal/store"
)

// memRecords is an in-memory store.Records for tests.
type memRecords struct {
	data map[string]map[string]json.RawMessage
}

func newMemRecords() *memRecords {
	return &memRecords{data: make(map[string]map[string]json.RawMessage)}
}

func (m *memRecords) Get(_ context.Context, ns, key string) (json.RawMessage, error) {
	return m.data[ns][key], nil
}

func (m *memRecords) Set(_ context.Context, ns, key string, data json.RawMessage) error {
	if m.data[ns] == nil {
		m.data[ns] = make(map[string]json.RawMessage)
	}
	m.data[ns][key] = append(json.RawMessage(nil), data...)
	return nil
}

func (m *memRecords) Remove(_ context.Context, ns, key string) error {
	delete(m.data[ns], key)
	return nil
}

func (m *memRecords) MultiRemove(_ context.Context, ns string) error {
	delete(m.data, ns)
	return nil
}

func (m *memRecords) Keys(_ context.Context, ns string) ([]string, error) {
	var keys []string
	for k := range m.data[ns] {
		keys = append(keys, k)
	}
	return keys, nil
}

var _ store.Records = (*memRecords)(nil)

// memLogs is an in-memory store.SessionLogs for tests.
type memLogs struct {
	entries []store.SessionLogEntry
}

func (m *memLogs) Append(_ context.Context, entry store.SessionLogEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memLogs) Recent(_ context.Context, limit int) ([]store.SessionLogEntry, error) {
	out := make([]store.SessionLogEntry, len(m.entries))
	copy(out, m.entries)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

var _ store.SessionLogs = (*memLogs)(nil)

var engineNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*Engine, *memRecords, *memLogs) {
	t.Helper()
	records := newMemRecords()
	logs := &memLogs{}
	e := New(records, logs, catalog.MustLoad(),
		WithClock(func() time.Time { return engineNow }),
		WithRand(rand.New(rand.NewSource(11))),
	)
	return e, records, logs
}

func TestStartSession_Quiz(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	s, err := e.StartSession(ctx, ModeQuiz, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Items) != 5 {
		t.Fatalf("got %d items, want 5", len(s.Items))
	}
	seen := make(map[string]bool)
	for _, it := range s.Items {
		if seen[it.ID] {
			t.Errorf("duplicate item %s in session", it.ID)
		}
		seen[it.ID] = true
	}
	if s.QuestionTime != 15*time.Second {
		t.Errorf("question time = %v, want 15s at tier 1", s.QuestionTime)
	}
	if s.ID == "" {
		t.Error("session needs an ID")
	}
}

func TestSubmitAnswer_CorrectFullTime(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	s, err := e.StartSession(ctx, ModeQuiz, 3)
	if err != nil {
		t.Fatal(err)
	}
	item, _ := s.CurrentItem()

	res := e.SubmitAnswer(ctx, s, item.ID)
	if res == nil || !res.Correct {
		t.Fatalf("result = %+v, want correct", res)
	}
	if res.Points != 150 {
		t.Errorf("points = %d, want 150 (base 100 + full speed bonus 50)", res.Points)
	}
	if res.Streak != 1 || res.ComboTier != 1 {
		t.Errorf("streak/tier = %d/%d, want 1/1", res.Streak, res.ComboTier)
	}
	if s.Score != 150 || s.Answered != 1 || s.Index != 1 {
		t.Errorf("session after answer: score=%d answered=%d index=%d", s.Score, s.Answered, s.Index)
	}
	if s.TimeRemaining != s.QuestionTime {
		t.Errorf("timer not reset for next question: %v", s.TimeRemaining)
	}

	// The answer lands in the performance record.
	rec := e.Performance().Record(ctx, item.ID)
	if rec.Correct != 1 {
		t.Errorf("performance record correct = %d, want 1", rec.Correct)
	}
}

func TestSubmitAnswer_ComboEscalates(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	s, err := e.StartSession(ctx, ModeQuiz, 4)
	if err != nil {
		t.Fatal(err)
	}

	wantPoints := []int{150, 150, 300} // third correct enters combo tier 2
	for i, want := range wantPoints {
		item, _ := s.CurrentItem()
		res := e.SubmitAnswer(ctx, s, item.ID)
		if res.Points != want {
			t.Errorf("answer %d: points = %d, want %d", i+1, res.Points, want)
		}
	}

	// A wrong answer resets the streak and scores nothing.
	item, _ := s.CurrentItem()
	res := e.SubmitAnswer(ctx, s, "wrong-"+item.ID)
	if res.Correct || res.Points != 0 || res.Streak != 0 {
		t.Errorf("wrong answer result = %+v, want zeroed", res)
	}
	if s.BestCombo != 3 {
		t.Errorf("best combo = %d, want 3", s.BestCombo)
	}
}

func TestTick_CountdownAndTimeout(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	s, err := e.StartSession(ctx, ModeQuiz, 1)
	if err != nil {
		t.Fatal(err)
	}
	item, _ := s.CurrentItem()

	for i := 0; i < 14; i++ {
		if res := e.Tick(ctx, s); res != nil {
			t.Fatalf("tick %d resolved early: %+v", i+1, res)
		}
	}
	if s.TimeRemaining != time.Second {
		t.Fatalf("time remaining = %v, want 1s", s.TimeRemaining)
	}

	res := e.Tick(ctx, s)
	if res == nil || !res.TimedOut || res.Correct || res.Points != 0 {
		t.Fatalf("final tick = %+v, want timeout", res)
	}
	if !s.Done {
		t.Error("single-question session should be done after timeout")
	}

	// Late ticks against the finished session are no-ops.
	if extra := e.Tick(ctx, s); extra != nil {
		t.Errorf("tick after done = %+v, want nil", extra)
	}

	// The timeout counts as an incorrect attempt.
	rec := e.Performance().Record(ctx, item.ID)
	if rec.Incorrect != 1 {
		t.Errorf("incorrect = %d, want 1", rec.Incorrect)
	}
}

func TestTick_CancelledSession(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	s, err := e.StartSession(ctx, ModeQuiz, 2)
	if err != nil {
		t.Fatal(err)
	}
	s.Cancel()
	if res := e.Tick(ctx, s); res != nil {
		t.Errorf("tick after cancel = %+v, want nil", res)
	}
	if res := e.SubmitAnswer(ctx, s, "anything"); res != nil {
		t.Errorf("answer after cancel = %+v, want nil", res)
	}
}

func TestStudySession_UntimedAndUnscored(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	s, err := e.StartSession(ctx, ModeStudy, 3)
	if err != nil {
		t.Fatal(err)
	}
	if s.QuestionTime != 0 {
		t.Fatalf("study question time = %v, want untimed", s.QuestionTime)
	}
	if res := e.Tick(ctx, s); res != nil {
		t.Error("ticks must be no-ops in untimed sessions")
	}

	item, _ := s.CurrentItem()
	res := e.SubmitAnswer(ctx, s, item.ID)
	if !res.Correct || res.Points != 0 {
		t.Errorf("study answer = %+v, want correct with zero points", res)
	}
}

func TestReviewSession(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := e.StartSession(ctx, ModeReview, 5); !errors.Is(err, ErrNoDueItems) {
		t.Fatalf("err = %v, want ErrNoDueItems", err)
	}

	// Seed one overdue record.
	dueID := catalog.MustLoad().All()[0].ID
	due := engineNow.AddDate(0, 0, -2)
	rec := &performance.Record{Correct: 3, Schedule: spacedrep.Schedule{
		IntervalDays: 1, Repetition: 1, EaseFactor: 2.5, NextDue: &due,
	}}
	if err := e.Performance().SaveRecord(ctx, dueID, rec); err != nil {
		t.Fatal(err)
	}

	s, err := e.StartSession(ctx, ModeReview, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Items) != 1 || s.Items[0].ID != dueID {
		t.Fatalf("review items = %v, want just %s", s.Items, dueID)
	}

	e.SubmitAnswer(ctx, s, dueID)

	// A correct review advances the schedule.
	got := e.Performance().Record(ctx, dueID)
	if got.Schedule.Repetition != 2 {
		t.Errorf("repetition = %d, want 2", got.Schedule.Repetition)
	}
	if got.Schedule.IntervalDays != spacedrep.SecondIntervalDays {
		t.Errorf("interval = %d, want %d", got.Schedule.IntervalDays, spacedrep.SecondIntervalDays)
	}
	if got.Schedule.NextDue == nil || !got.Schedule.NextDue.After(engineNow) {
		t.Errorf("next due = %v, want in the future", got.Schedule.NextDue)
	}
}

func TestReviewSession_ClampsRequestedCount(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	dueID := catalog.MustLoad().All()[0].ID
	due := engineNow.AddDate(0, 0, -1)
	rec := &performance.Record{Correct: 3, Schedule: spacedrep.Schedule{
		IntervalDays: 1, Repetition: 1, EaseFactor: 2.5, NextDue: &due,
	}}
	if err := e.Performance().SaveRecord(ctx, dueID, rec); err != nil {
		t.Fatal(err)
	}

	// A negative count clamps to an empty session rather than failing.
	s, err := e.StartSession(ctx, ModeReview, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Items) != 0 {
		t.Errorf("got %d items for negative count, want 0", len(s.Items))
	}

	s, err = e.StartSession(ctx, ModeReview, 99)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Items) != 1 {
		t.Errorf("got %d items for oversized count, want 1", len(s.Items))
	}
}

func TestFinishSession_PerfectRound(t *testing.T) {
	e, _, logs := newTestEngine(t)
	ctx := context.Background()

	s, err := e.StartSession(ctx, ModeQuiz, 2)
	if err != nil {
		t.Fatal(err)
	}
	for {
		item, ok := s.CurrentItem()
		if !ok {
			break
		}
		e.SubmitAnswer(ctx, s, item.ID)
	}

	sum := e.FinishSession(ctx, s)
	if sum == nil {
		t.Fatal("no summary")
	}
	if !sum.PerfectRound {
		t.Error("two of two correct should be a perfect round")
	}
	if sum.Score != 150+150+250 {
		t.Errorf("score = %d, want 550 with perfect bonus", sum.Score)
	}

	// The session folds into progression and history.
	if got := e.Progression(ctx).Points; got != sum.Score {
		t.Errorf("progression points = %d, want %d", got, sum.Score)
	}
	if len(logs.entries) != 1 {
		t.Fatalf("%d log entries, want 1", len(logs.entries))
	}
	if logs.entries[0].Score != sum.Score || logs.entries[0].Mode != string(ModeQuiz) {
		t.Errorf("log entry = %+v", logs.entries[0])
	}

	// A second finish is a no-op.
	if again := e.FinishSession(ctx, s); again != nil {
		t.Errorf("second finish = %+v, want nil", again)
	}
	if len(logs.entries) != 1 {
		t.Error("second finish appended another log entry")
	}
}

func TestFinishSession_TierUp(t *testing.T) {
	e, records, _ := newTestEngine(t)
	ctx := context.Background()

	seed, _ := json.Marshal(progression.State{Points: 290})
	if err := records.Set(ctx, store.NSProgression, "state", seed); err != nil {
		t.Fatal(err)
	}

	s, err := e.StartSession(ctx, ModeQuiz, 1)
	if err != nil {
		t.Fatal(err)
	}
	item, _ := s.CurrentItem()
	e.SubmitAnswer(ctx, s, item.ID)

	sum := e.FinishSession(ctx, s)
	if sum.TierUp == nil {
		t.Fatal("expected a tier-up crossing 300 points")
	}
	if sum.TierUp.To != progression.TierIntern {
		t.Errorf("tier-up to %d, want %d", sum.TierUp.To, progression.TierIntern)
	}

	prog := e.Progression(ctx)
	if prog.PendingTierUp == nil {
		t.Error("tier-up should persist as pending")
	}
	if prog.Points != 290+sum.Score {
		t.Errorf("points = %d, want %d", prog.Points, 290+sum.Score)
	}
}

func TestStudySession_DoesNotTouchProgression(t *testing.T) {
	e, _, logs := newTestEngine(t)
	ctx := context.Background()

	s, err := e.StartSession(ctx, ModeStudy, 2)
	if err != nil {
		t.Fatal(err)
	}
	for {
		item, ok := s.CurrentItem()
		if !ok {
			break
		}
		e.SubmitAnswer(ctx, s, item.ID)
	}
	sum := e.FinishSession(ctx, s)

	// A flawless study session still scores zero: no answer points, no
	// perfect-round bonus.
	if sum.Score != 0 {
		t.Errorf("study summary score = %d, want 0", sum.Score)
	}
	if got := e.Progression(ctx).Points; got != 0 {
		t.Errorf("progression points = %d, want untouched 0", got)
	}
	// History still records the study session, at zero score.
	if len(logs.entries) != 1 {
		t.Fatalf("%d log entries, want 1", len(logs.entries))
	}
	if logs.entries[0].Score != 0 {
		t.Errorf("logged score = %d, want 0", logs.entries[0].Score)
	}
}

func TestDailyChallenge(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	s1, cfg, err := e.StartDailyChallenge(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Date != daily.DayKey(engineNow) {
		t.Errorf("config date = %s, want %s", cfg.Date, daily.DayKey(engineNow))
	}
	if s1.QuestionTime != cfg.TimeLimit {
		t.Errorf("question time = %v, want %v", s1.QuestionTime, cfg.TimeLimit)
	}

	// The same day always yields the same challenge.
	s2, _, err := e.StartDailyChallenge(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s1.Items, s2.Items) {
		t.Error("same-day challenges differ")
	}

	if _, err := e.CompleteDailyChallenge(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := e.CompleteDailyChallenge(ctx); !errors.Is(err, daily.ErrAlreadyCompleted) {
		t.Errorf("err = %v, want ErrAlreadyCompleted", err)
	}
}
