// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/medquiz/ent/sessionlog"
)

// SessionLog is the model entity for the SessionLog schema.
type SessionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the session
	SessionID string `json:"session_id,omitempty"`
	// quiz, review, study, or daily
	Mode string `json:"mode,omitempty"`
	// Final session score including the perfect-round bonus
	Score int `json:"score,omitempty"`
	// Questions served
	Questions int `json:"questions,omitempty"`
	// Questions answered correctly
	Correct int `json:"correct,omitempty"`
	// Longest consecutive-correct run in the session
	BestCombo int `json:"best_combo,omitempty"`
	// When the session began
	StartedAt time.Time `json:"started_at,omitempty"`
	// When the session finished
	FinishedAt   time.Time `json:"finished_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionlog.FieldID, sessionlog.FieldScore, sessionlog.FieldQuestions, sessionlog.FieldCorrect, sessionlog.FieldBestCombo:
			values[i] = new(sql.NullInt64)
		case sessionlog.FieldSessionID, sessionlog.FieldMode:
			values[i] = new(sql.NullString)
		case sessionlog.FieldStartedAt, sessionlog.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionLog fields.
func (sl *SessionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			sl.ID = int(value.Int64)
		case sessionlog.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				sl.SessionID = value.String
			}
		case sessionlog.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				sl.Mode = value.String
			}
		case sessionlog.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				sl.Score = int(value.Int64)
			}
		case sessionlog.FieldQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value.Valid {
				sl.Questions = int(value.Int64)
			}
		case sessionlog.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				sl.Correct = int(value.Int64)
			}
		case sessionlog.FieldBestCombo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field best_combo", values[i])
			} else if value.Valid {
				sl.BestCombo = int(value.Int64)
			}
		case sessionlog.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				sl.StartedAt = value.Time
			}
		case sessionlog.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				sl.FinishedAt = value.Time
			}
		default:
			sl.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionLog.
// This includes values selected through modifiers, order, etc.
func (sl *SessionLog) Value(name string) (ent.Value, error) {
	return sl.selectValues.Get(name)
}

// Update returns a builder for updating this SessionLog.
// Note that you need to call SessionLog.Unwrap() before calling this method if this SessionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (sl *SessionLog) Update() *SessionLogUpdateOne {
	return NewSessionLogClient(sl.config).UpdateOne(sl)
}

// Unwrap unwraps the SessionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sl *SessionLog) Unwrap() *SessionLog {
	_tx, ok := sl.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionLog is not a transactional entity")
	}
	sl.config.driver = _tx.drv
	return sl
}

// String implements the fmt.Stringer.
func (sl *SessionLog) String() string {
	var builder strings.Builder
	builder.WriteString("SessionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sl.ID))
	builder.WriteString("session_id=")
	builder.WriteString(sl.SessionID)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(sl.Mode)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", sl.Score))
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", sl.Questions))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", sl.Correct))
	builder.WriteString(", ")
	builder.WriteString("best_combo=")
	builder.WriteString(fmt.Sprintf("%v", sl.BestCombo))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(sl.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("finished_at=")
	builder.WriteString(sl.FinishedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionLogs is a parsable slice of SessionLog.
type SessionLogs []*SessionLog
