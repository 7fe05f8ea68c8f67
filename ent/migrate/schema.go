// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// RecordsColumns holds the columns for the "records" table.
	RecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "namespace", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "data", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RecordsTable holds the schema information for the "records" table.
	RecordsTable = &schema.Table{
		Name:       "records",
		Columns:    RecordsColumns,
		PrimaryKey: []*schema.Column{RecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "record_namespace_key",
				Unique:  true,
				Columns: []*schema.Column{RecordsColumns[1], RecordsColumns[2]},
			},
		},
	}
	// SessionLogsColumns holds the columns for the "session_logs" table.
	SessionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "questions", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "best_combo", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime},
	}
	// SessionLogsTable holds the schema information for the "session_logs" table.
	SessionLogsTable = &schema.Table{
		Name:       "session_logs",
		Columns:    SessionLogsColumns,
		PrimaryKey: []*schema.Column{SessionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionlog_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionLogsColumns[1]},
			},
			{
				Name:    "sessionlog_finished_at",
				Unique:  false,
				Columns: []*schema.Column{SessionLogsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		RecordsTable,
		SessionLogsTable,
	}
)

func init() {
}
