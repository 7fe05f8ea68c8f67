package daily

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

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

// monday is 2026-01-05, the first day of ISO week 2026-W02.
var monday = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

func TestTracker_FirstCompletion(t *testing.T) {
	tr := NewTracker(newMemRecords(), nil)
	ctx := context.Background()

	res, err := tr.Complete(ctx, monday)
	if err != nil {
		t.Fatal(err)
	}
	if res.Streak != 1 || res.BestStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", res.Streak, res.BestStreak)
	}
	if res.UsedFreeze || res.FreezeGranted || res.Milestone != 0 {
		t.Errorf("unexpected extras in first completion: %+v", res)
	}
	if !tr.Completed(ctx, monday) {
		t.Error("day should report completed")
	}
}

func TestTracker_RecompletionRejected(t *testing.T) {
	tr := NewTracker(newMemRecords(), nil)
	ctx := context.Background()

	if _, err := tr.Complete(ctx, monday); err != nil {
		t.Fatal(err)
	}
	_, err := tr.Complete(ctx, monday.Add(4*time.Hour))
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestTracker_WeeklyGoalGrantsFreezeAndMilestone(t *testing.T) {
	tr := NewTracker(newMemRecords(), nil)
	ctx := context.Background()

	// Complete Monday through Saturday.
	for i := 0; i < 6; i++ {
		res, err := tr.Complete(ctx, monday.AddDate(0, 0, i))
		if err != nil {
			t.Fatal(err)
		}
		if res.FreezeGranted {
			t.Fatalf("day %d: freeze granted before the weekly goal", i+1)
		}
	}

	// Sunday is the seventh completion of the ISO week and the seventh
	// consecutive day.
	res, err := tr.Complete(ctx, monday.AddDate(0, 0, 6))
	if err != nil {
		t.Fatal(err)
	}
	if res.Streak != 7 {
		t.Errorf("streak = %d, want 7", res.Streak)
	}
	if !res.FreezeGranted {
		t.Error("seventh completion in the week should grant a freeze")
	}
	if res.Milestone != 7 {
		t.Errorf("milestone = %d, want 7", res.Milestone)
	}
	if got := tr.State(ctx).FreezeCredits; got != 1 {
		t.Errorf("freeze credits = %d, want 1", got)
	}
}

func TestTracker_FreezeBridgesMissedDay(t *testing.T) {
	tr := NewTracker(newMemRecords(), nil)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		if _, err := tr.Complete(ctx, monday.AddDate(0, 0, i)); err != nil {
			t.Fatal(err)
		}
	}

	// Skip the next Monday; complete Tuesday. The banked freeze bridges
	// the gap and the frozen day counts.
	res, err := tr.Complete(ctx, monday.AddDate(0, 0, 8))
	if err != nil {
		t.Fatal(err)
	}
	if !res.UsedFreeze {
		t.Error("expected a freeze to bridge the missed day")
	}
	if res.Streak != 9 {
		t.Errorf("streak = %d, want 9", res.Streak)
	}
	if got := tr.State(ctx).FreezeCredits; got != 0 {
		t.Errorf("freeze credits = %d, want 0 after spending", got)
	}
}

func TestTracker_FreezeCreditsCapped(t *testing.T) {
	tr := NewTracker(newMemRecords(), nil)
	ctx := context.Background()

	// Two full weeks without a miss: the second weekly goal cannot bank a
	// second credit past the cap.
	for i := 0; i < 14; i++ {
		if _, err := tr.Complete(ctx, monday.AddDate(0, 0, i)); err != nil {
			t.Fatal(err)
		}
	}
	if got := tr.State(ctx).FreezeCredits; got != MaxFreezeCredits {
		t.Errorf("freeze credits = %d, want capped at %d", got, MaxFreezeCredits)
	}
}

func TestTracker_StateDefaults(t *testing.T) {
	records := newMemRecords()
	tr := NewTracker(records, nil)
	ctx := context.Background()

	s := tr.State(ctx)
	if s.CurrentStreak != 0 || s.FreezeCredits != 0 || len(s.CompletedDates) != 0 {
		t.Errorf("fresh state = %+v, want zeroed", s)
	}

	// Malformed stored state degrades to defaults instead of failing.
	_ = records.Set(ctx, store.NSSettings, "daily-challenge", json.RawMessage(`{broken`))
	s = tr.State(ctx)
	if s.CurrentStreak != 0 || len(s.CompletedDates) != 0 {
		t.Errorf("state after corrupt record = %+v, want defaults", s)
	}
}

func TestTracker_SanitizeClampsStoredState(t *testing.T) {
	records := newMemRecords()
	tr := NewTracker(records, nil)
	ctx := context.Background()

	raw, _ := json.Marshal(State{
		CompletedDates: map[string]bool{"2026-01-05": true},
		FreezeCredits:  5,
		CurrentStreak:  9,
		BestStreak:     2,
	})
	_ = records.Set(ctx, store.NSSettings, "daily-challenge", raw)

	s := tr.State(ctx)
	if s.FreezeCredits != MaxFreezeCredits {
		t.Errorf("freeze credits = %d, want clamped to %d", s.FreezeCredits, MaxFreezeCredits)
	}
	if s.BestStreak < s.CurrentStreak {
		t.Errorf("best streak %d below current %d", s.BestStreak, s.CurrentStreak)
	}
}
