package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionLog is an append-only record of one completed session,
// kept for history and stats display by the host application.
type SessionLog struct {
	ent.Schema
}

func (SessionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session"),
		field.String("mode").
			NotEmpty().
			Comment("quiz, review, study, or daily"),
		field.Int("score").
			Default(0).
			Comment("Final session score including the perfect-round bonus"),
		field.Int("questions").
			Default(0).
			Comment("Questions served"),
		field.Int("correct").
			Default(0).
			Comment("Questions answered correctly"),
		field.Int("best_combo").
			Default(0).
			Comment("Longest consecutive-correct run in the session"),
		field.Time("started_at").
			Comment("When the session began"),
		field.Time("finished_at").
			Default(time.Now).
			Comment("When the session finished"),
	}
}

func (SessionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("finished_at"),
	}
}
