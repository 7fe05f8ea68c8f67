package performance

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/medquiz/internal/catalog"
	"github.com/abhisek/medquiz/internal/spacedrep"
	"github.com/abhisek/medquiz/internal/store"
)

// Service manages performance records and tricky marks over the record
// store. Reads degrade to fresh defaults; a missing or malformed record
// means "first time", never an error.
type Service struct {
	records store.Records
	log     *zap.Logger
}

// NewService creates a Service. A nil logger is replaced with a no-op.
func NewService(records store.Records, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{records: records, log: log}
}

// Record loads the performance record for an item. Absent or unreadable
// records yield a fresh zero record.
func (s *Service) Record(ctx context.Context, itemID string) *Record {
	raw, err := s.records.Get(ctx, store.NSPerformance, itemID)
	if err != nil {
		s.log.Warn("read performance record", zap.String("item", itemID), zap.Error(err))
		return &Record{}
	}
	if raw == nil {
		return &Record{}
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.log.Warn("malformed performance record, using defaults",
			zap.String("item", itemID), zap.Error(err))
		return &Record{}
	}
	rec.sanitize()
	return &rec
}

// AllRecords loads every stored performance record keyed by item ID.
// Unreadable entries are skipped.
func (s *Service) AllRecords(ctx context.Context) map[string]*Record {
	out := make(map[string]*Record)
	keys, err := s.records.Keys(ctx, store.NSPerformance)
	if err != nil {
		s.log.Warn("list performance records", zap.Error(err))
		return out
	}
	for _, id := range keys {
		raw, err := s.records.Get(ctx, store.NSPerformance, id)
		if err != nil || raw == nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		rec.sanitize()
		out[id] = &rec
	}
	return out
}

// SaveRecord writes a record back. The caller decides whether a failure
// matters; session flow treats it as log-and-continue.
func (s *Service) SaveRecord(ctx context.Context, itemID string, rec *Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.records.Set(ctx, store.NSPerformance, itemID, raw)
}

// RecordAnswer applies one answer to an item's record: attempt counts,
// last-seen timestamp, and the rolling response-time average. The updated
// record is saved; a failed write is logged and the in-memory record
// still returned.
func (s *Service) RecordAnswer(ctx context.Context, itemID string, correct bool, responseMs int, now time.Time) *Record {
	rec := s.Record(ctx, itemID)

	if correct {
		rec.Correct++
	} else {
		rec.Incorrect++
	}
	rec.LastSeen = &now
	if responseMs > 0 {
		rec.ResponseSamples++
		rec.AvgResponseMs += (float64(responseMs) - rec.AvgResponseMs) / float64(rec.ResponseSamples)
	}

	if err := s.SaveRecord(ctx, itemID, rec); err != nil {
		s.log.Warn("save performance record", zap.String("item", itemID), zap.Error(err))
	}
	return rec
}

// ApplyReview runs the spaced repetition transition for a review answer
// and persists the new schedule.
func (s *Service) ApplyReview(ctx context.Context, itemID string, correct, tricky bool, now time.Time) *Record {
	rec := s.Record(ctx, itemID)
	rec.Schedule = spacedrep.Review(rec.Schedule, correct, tricky, now)

	if err := s.SaveRecord(ctx, itemID, rec); err != nil {
		s.log.Warn("save review schedule", zap.String("item", itemID), zap.Error(err))
	}
	return rec
}

// DueItemIDs returns items due for review, most overdue first. Items
// without prior attempts are excluded; they belong to the quiz flow.
func (s *Service) DueItemIDs(ctx context.Context, now time.Time) []string {
	type dueItem struct {
		id      string
		overdue float64
	}
	var due []dueItem

	for id, rec := range s.AllRecords(ctx) {
		if rec.Attempts() == 0 {
			continue
		}
		if rec.Schedule.IsDue(now) {
			due = append(due, dueItem{id: id, overdue: rec.Schedule.OverdueDays(now)})
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].id < due[j].id
	})

	ids := make([]string, len(due))
	for i, d := range due {
		ids[i] = d.id
	}
	return ids
}

// MarkTricky flags an item for heavier selection weighting.
func (s *Service) MarkTricky(ctx context.Context, item catalog.Item, now time.Time) error {
	mark := TrickyMark{ItemID: item.ID, MarkedAt: now, Category: item.Category}
	raw, err := json.Marshal(mark)
	if err != nil {
		return err
	}
	return s.records.Set(ctx, store.NSTricky, item.ID, raw)
}

// UnmarkTricky removes a tricky flag.
func (s *Service) UnmarkTricky(ctx context.Context, itemID string) error {
	return s.records.Remove(ctx, store.NSTricky, itemID)
}

// TrickyIDs returns the set of tricky-marked item IDs.
func (s *Service) TrickyIDs(ctx context.Context) map[string]bool {
	out := make(map[string]bool)
	keys, err := s.records.Keys(ctx, store.NSTricky)
	if err != nil {
		s.log.Warn("list tricky marks", zap.Error(err))
		return out
	}
	for _, id := range keys {
		out[id] = true
	}
	return out
}

// Reset removes all performance records and tricky marks.
func (s *Service) Reset(ctx context.Context) error {
	for _, ns := range []string{store.NSPerformance, store.NSTricky} {
		if err := s.records.MultiRemove(ctx, ns); err != nil {
			return err
		}
	}
	return nil
}
