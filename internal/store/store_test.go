package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecords_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	records := s.Records()
	ctx := context.Background()

	// Absent key reads as nil, not an error.
	raw, err := records.Get(ctx, NSPerformance, "gout")
	require.NoError(t, err)
	assert.Nil(t, raw)

	err = records.Set(ctx, NSPerformance, "gout", json.RawMessage(`{"correct":3}`))
	require.NoError(t, err)

	raw, err = records.Get(ctx, NSPerformance, "gout")
	require.NoError(t, err)
	assert.JSONEq(t, `{"correct":3}`, string(raw))

	// Overwrite replaces in place.
	err = records.Set(ctx, NSPerformance, "gout", json.RawMessage(`{"correct":4}`))
	require.NoError(t, err)
	raw, err = records.Get(ctx, NSPerformance, "gout")
	require.NoError(t, err)
	assert.JSONEq(t, `{"correct":4}`, string(raw))
}

func TestRecords_NamespaceIsolation(t *testing.T) {
	s := openTestStore(t)
	records := s.Records()
	ctx := context.Background()

	require.NoError(t, records.Set(ctx, NSPerformance, "gout", json.RawMessage(`1`)))
	require.NoError(t, records.Set(ctx, NSTricky, "gout", json.RawMessage(`2`)))

	perf, err := records.Get(ctx, NSPerformance, "gout")
	require.NoError(t, err)
	tricky, err := records.Get(ctx, NSTricky, "gout")
	require.NoError(t, err)
	assert.NotEqual(t, string(perf), string(tricky))

	// Clearing one namespace leaves the other alone.
	require.NoError(t, records.MultiRemove(ctx, NSPerformance))
	perf, err = records.Get(ctx, NSPerformance, "gout")
	require.NoError(t, err)
	assert.Nil(t, perf)
	tricky, err = records.Get(ctx, NSTricky, "gout")
	require.NoError(t, err)
	assert.NotNil(t, tricky)
}

func TestRecords_RemoveAndKeys(t *testing.T) {
	s := openTestStore(t)
	records := s.Records()
	ctx := context.Background()

	require.NoError(t, records.Set(ctx, NSTricky, "a", json.RawMessage(`{}`)))
	require.NoError(t, records.Set(ctx, NSTricky, "b", json.RawMessage(`{}`)))

	keys, err := records.Keys(ctx, NSTricky)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)

	require.NoError(t, records.Remove(ctx, NSTricky, "a"))
	keys, err = records.Keys(ctx, NSTricky)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys)

	// Removing an absent key is fine.
	assert.NoError(t, records.Remove(ctx, NSTricky, "missing"))
}

func TestSessionLogs(t *testing.T) {
	s := openTestStore(t)
	logs := s.SessionLogs()
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := logs.Append(ctx, SessionLogEntry{
			SessionID:  string(rune('a' + i)),
			Mode:       "quiz",
			Score:      100 * (i + 1),
			Questions:  5,
			Correct:    4,
			BestCombo:  3,
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			FinishedAt: base.Add(time.Duration(i)*time.Hour + 10*time.Minute),
		})
		require.NoError(t, err)
	}

	recent, err := logs.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].SessionID, "newest first")
	assert.Equal(t, "b", recent[1].SessionID)

	all, err := logs.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
