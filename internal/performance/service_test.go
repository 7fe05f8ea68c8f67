package performance

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/abhisek/medquiz/internal/catalog"
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

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestRecord_AbsentYieldsZero(t *testing.T) {
	svc := NewService(newMemRecords(), nil)
	rec := svc.Record(context.Background(), "aortic-stenosis")
	if rec.Attempts() != 0 || rec.LastSeen != nil {
		t.Errorf("fresh record = %+v, want zero", rec)
	}
}

func TestRecord_MalformedYieldsZero(t *testing.T) {
	records := newMemRecords()
	ctx := context.Background()
	_ = records.Set(ctx, store.NSPerformance, "gout", json.RawMessage(`{not json`))

	svc := NewService(records, nil)
	rec := svc.Record(ctx, "gout")
	if rec.Attempts() != 0 {
		t.Errorf("record after corrupt data = %+v, want zero", rec)
	}
}

func TestRecord_SanitizesStoredEase(t *testing.T) {
	records := newMemRecords()
	ctx := context.Background()
	raw, _ := json.Marshal(Record{
		Correct:  5,
		Schedule: spacedrep.Schedule{IntervalDays: 99, Repetition: 3, EaseFactor: 0.5},
	})
	_ = records.Set(ctx, store.NSPerformance, "gout", raw)

	svc := NewService(records, nil)
	rec := svc.Record(ctx, "gout")
	if rec.Schedule.EaseFactor != spacedrep.MinEaseFactor {
		t.Errorf("ease factor = %v, want clamped to %v", rec.Schedule.EaseFactor, spacedrep.MinEaseFactor)
	}
	if rec.Schedule.IntervalDays != spacedrep.MaxIntervalDays {
		t.Errorf("interval = %d, want clamped to %d", rec.Schedule.IntervalDays, spacedrep.MaxIntervalDays)
	}
}

func TestRecordAnswer_CountsAndRollingAverage(t *testing.T) {
	svc := NewService(newMemRecords(), nil)
	ctx := context.Background()

	rec := svc.RecordAnswer(ctx, "gout", true, 1000, testNow)
	if rec.Correct != 1 || rec.AvgResponseMs != 1000 {
		t.Fatalf("after first answer: %+v", rec)
	}

	rec = svc.RecordAnswer(ctx, "gout", false, 2000, testNow.Add(time.Minute))
	if rec.Correct != 1 || rec.Incorrect != 1 {
		t.Errorf("counts = %d/%d, want 1/1", rec.Correct, rec.Incorrect)
	}
	if rec.AvgResponseMs != 1500 {
		t.Errorf("avg response = %v, want 1500", rec.AvgResponseMs)
	}
	if rec.LastSeen == nil || !rec.LastSeen.Equal(testNow.Add(time.Minute)) {
		t.Errorf("last seen = %v, want the second answer time", rec.LastSeen)
	}

	// The update must persist: a fresh read sees the same state.
	if got := svc.Record(ctx, "gout"); got.Attempts() != 2 {
		t.Errorf("persisted attempts = %d, want 2", got.Attempts())
	}
}

func TestRecordAnswer_UntimedAnswersDoNotSkewAverage(t *testing.T) {
	svc := NewService(newMemRecords(), nil)
	ctx := context.Background()

	svc.RecordAnswer(ctx, "gout", true, 1000, testNow)
	rec := svc.RecordAnswer(ctx, "gout", true, 0, testNow)
	if rec.AvgResponseMs != 1000 {
		t.Errorf("avg response = %v, want unchanged 1000", rec.AvgResponseMs)
	}
	if rec.ResponseSamples != 1 {
		t.Errorf("samples = %d, want 1", rec.ResponseSamples)
	}

	// The average covers timed samples only: an intervening untimed
	// attempt must not dilute the next timed one.
	rec = svc.RecordAnswer(ctx, "gout", true, 2000, testNow)
	if rec.AvgResponseMs != 1500 {
		t.Errorf("avg response = %v, want 1500 over two timed samples", rec.AvgResponseMs)
	}
	if rec.Attempts() != 3 || rec.ResponseSamples != 2 {
		t.Errorf("attempts/samples = %d/%d, want 3/2", rec.Attempts(), rec.ResponseSamples)
	}
}

func TestApplyReview_PersistsSchedule(t *testing.T) {
	svc := NewService(newMemRecords(), nil)
	ctx := context.Background()

	rec := svc.ApplyReview(ctx, "gout", true, false, testNow)
	if rec.Schedule.Repetition != 1 || rec.Schedule.IntervalDays != spacedrep.FirstIntervalDays {
		t.Errorf("schedule after first correct review = %+v", rec.Schedule)
	}

	got := svc.Record(ctx, "gout")
	if got.Schedule.Repetition != 1 {
		t.Errorf("persisted repetition = %d, want 1", got.Schedule.Repetition)
	}
}

func TestDueItemIDs_OrderAndFiltering(t *testing.T) {
	records := newMemRecords()
	svc := NewService(records, nil)
	ctx := context.Background()

	save := func(id string, attempts int, due time.Time) {
		rec := &Record{Correct: attempts, Schedule: spacedrep.Schedule{
			IntervalDays: 1, Repetition: 1, EaseFactor: 2.5, NextDue: &due,
		}}
		if err := svc.SaveRecord(ctx, id, rec); err != nil {
			t.Fatal(err)
		}
	}

	save("barely-due", 3, testNow.AddDate(0, 0, -1))
	save("very-overdue", 3, testNow.AddDate(0, 0, -5))
	save("not-due", 3, testNow.AddDate(0, 0, 3))
	save("never-attempted", 0, testNow.AddDate(0, 0, -5))
	save("tie-b", 3, testNow.AddDate(0, 0, -2))
	save("tie-a", 3, testNow.AddDate(0, 0, -2))

	got := svc.DueItemIDs(ctx, testNow)
	want := []string{"very-overdue", "tie-a", "tie-b", "barely-due"}
	if len(got) != len(want) {
		t.Fatalf("due = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("due[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTrickyLifecycle(t *testing.T) {
	svc := NewService(newMemRecords(), nil)
	ctx := context.Background()
	item := catalog.Item{ID: "gout", Category: catalog.CategoryRheumatology}

	if err := svc.MarkTricky(ctx, item, testNow); err != nil {
		t.Fatal(err)
	}
	if !svc.TrickyIDs(ctx)["gout"] {
		t.Error("mark not visible")
	}

	if err := svc.UnmarkTricky(ctx, "gout"); err != nil {
		t.Fatal(err)
	}
	if svc.TrickyIDs(ctx)["gout"] {
		t.Error("mark survived unmark")
	}
}

func TestReset(t *testing.T) {
	svc := NewService(newMemRecords(), nil)
	ctx := context.Background()

	svc.RecordAnswer(ctx, "gout", true, 1000, testNow)
	item := catalog.Item{ID: "sle", Category: catalog.CategoryRheumatology}
	if err := svc.MarkTricky(ctx, item, testNow); err != nil {
		t.Fatal(err)
	}

	if err := svc.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	if n := len(svc.AllRecords(ctx)); n != 0 {
		t.Errorf("%d records survived reset", n)
	}
	if len(svc.TrickyIDs(ctx)) != 0 {
		t.Error("tricky marks survived reset")
	}
}
