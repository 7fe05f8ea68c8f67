package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/medquiz/ent"
	"github.com/abhisek/medquiz/ent/sessionlog"
)

// SessionLogEntry is one completed session's summary.
type SessionLogEntry struct {
	SessionID  string
	Mode       string
	Score      int
	Questions  int
	Correct    int
	BestCombo  int
	StartedAt  time.Time
	FinishedAt time.Time
}

// SessionLogs is an append-only history of completed sessions.
type SessionLogs interface {
	// Append records a finished session.
	Append(ctx context.Context, entry SessionLogEntry) error

	// Recent returns the most recent entries, newest first.
	Recent(ctx context.Context, limit int) ([]SessionLogEntry, error)
}

// entSessionLogs implements SessionLogs using the ent client.
type entSessionLogs struct {
	client *ent.Client
}

func (r *entSessionLogs) Append(ctx context.Context, entry SessionLogEntry) error {
	_, err := r.client.SessionLog.Create().
		SetSessionID(entry.SessionID).
		SetMode(entry.Mode).
		SetScore(entry.Score).
		SetQuestions(entry.Questions).
		SetCorrect(entry.Correct).
		SetBestCombo(entry.BestCombo).
		SetStartedAt(entry.StartedAt).
		SetFinishedAt(entry.FinishedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append session log: %w", err)
	}
	return nil
}

func (r *entSessionLogs) Recent(ctx context.Context, limit int) ([]SessionLogEntry, error) {
	q := r.client.SessionLog.Query().
		Order(ent.Desc(sessionlog.FieldFinishedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	logs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session logs: %w", err)
	}

	entries := make([]SessionLogEntry, len(logs))
	for i, l := range logs {
		entries[i] = SessionLogEntry{
			SessionID:  l.SessionID,
			Mode:       l.Mode,
			Score:      l.Score,
			Questions:  l.Questions,
			Correct:    l.Correct,
			BestCombo:  l.BestCombo,
			StartedAt:  l.StartedAt,
			FinishedAt: l.FinishedAt,
		}
	}
	return entries, nil
}
