package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Record is a namespaced key-value entry holding one engine record as JSON.
// The engine treats records as opaque structured data; the four namespaces
// (performance, tricky, progression, settings) partition the key space.
type Record struct {
	ent.Schema
}

func (Record) Fields() []ent.Field {
	return []ent.Field{
		field.String("namespace").
			NotEmpty().
			Comment("Logical namespace: performance, tricky, progression, settings"),
		field.String("key").
			NotEmpty().
			Comment("Record key within the namespace (e.g. item ID)"),
		field.Bytes("data").
			Comment("Record payload as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (Record) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("namespace", "key").Unique(),
	}
}
