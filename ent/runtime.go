// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/medquiz/ent/record"
	"github.com/abhisek/medquiz/ent/schema"
	"github.com/abhisek/medquiz/ent/sessionlog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	recordFields := schema.Record{}.Fields()
	_ = recordFields
	// recordDescNamespace is the schema descriptor for namespace field.
	recordDescNamespace := recordFields[0].Descriptor()
	// record.NamespaceValidator is a validator for the "namespace" field. It is called by the builders before save.
	record.NamespaceValidator = recordDescNamespace.Validators[0].(func(string) error)
	// recordDescKey is the schema descriptor for key field.
	recordDescKey := recordFields[1].Descriptor()
	// record.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	record.KeyValidator = recordDescKey.Validators[0].(func(string) error)
	// recordDescUpdatedAt is the schema descriptor for updated_at field.
	recordDescUpdatedAt := recordFields[3].Descriptor()
	// record.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	record.DefaultUpdatedAt = recordDescUpdatedAt.Default.(func() time.Time)
	// record.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	record.UpdateDefaultUpdatedAt = recordDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionlogFields := schema.SessionLog{}.Fields()
	_ = sessionlogFields
	// sessionlogDescSessionID is the schema descriptor for session_id field.
	sessionlogDescSessionID := sessionlogFields[0].Descriptor()
	// sessionlog.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionlog.SessionIDValidator = sessionlogDescSessionID.Validators[0].(func(string) error)
	// sessionlogDescMode is the schema descriptor for mode field.
	sessionlogDescMode := sessionlogFields[1].Descriptor()
	// sessionlog.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionlog.ModeValidator = sessionlogDescMode.Validators[0].(func(string) error)
	// sessionlogDescScore is the schema descriptor for score field.
	sessionlogDescScore := sessionlogFields[2].Descriptor()
	// sessionlog.DefaultScore holds the default value on creation for the score field.
	sessionlog.DefaultScore = sessionlogDescScore.Default.(int)
	// sessionlogDescQuestions is the schema descriptor for questions field.
	sessionlogDescQuestions := sessionlogFields[3].Descriptor()
	// sessionlog.DefaultQuestions holds the default value on creation for the questions field.
	sessionlog.DefaultQuestions = sessionlogDescQuestions.Default.(int)
	// sessionlogDescCorrect is the schema descriptor for correct field.
	sessionlogDescCorrect := sessionlogFields[4].Descriptor()
	// sessionlog.DefaultCorrect holds the default value on creation for the correct field.
	sessionlog.DefaultCorrect = sessionlogDescCorrect.Default.(int)
	// sessionlogDescBestCombo is the schema descriptor for best_combo field.
	sessionlogDescBestCombo := sessionlogFields[5].Descriptor()
	// sessionlog.DefaultBestCombo holds the default value on creation for the best_combo field.
	sessionlog.DefaultBestCombo = sessionlogDescBestCombo.Default.(int)
	// sessionlogDescFinishedAt is the schema descriptor for finished_at field.
	sessionlogDescFinishedAt := sessionlogFields[7].Descriptor()
	// sessionlog.DefaultFinishedAt holds the default value on creation for the finished_at field.
	sessionlog.DefaultFinishedAt = sessionlogDescFinishedAt.Default.(func() time.Time)
}
