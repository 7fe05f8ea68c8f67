// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/medquiz/ent/predicate"
	"github.com/abhisek/medquiz/ent/sessionlog"
)

// SessionLogUpdate is the builder for updating SessionLog entities.
type SessionLogUpdate struct {
	config
	hooks    []Hook
	mutation *SessionLogMutation
}

// Where appends a list predicates to the SessionLogUpdate builder.
func (slu *SessionLogUpdate) Where(ps ...predicate.SessionLog) *SessionLogUpdate {
	slu.mutation.Where(ps...)
	return slu
}

// SetSessionID sets the "session_id" field.
func (slu *SessionLogUpdate) SetSessionID(s string) *SessionLogUpdate {
	slu.mutation.SetSessionID(s)
	return slu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (slu *SessionLogUpdate) SetNillableSessionID(s *string) *SessionLogUpdate {
	if s != nil {
		slu.SetSessionID(*s)
	}
	return slu
}

// SetMode sets the "mode" field.
func (slu *SessionLogUpdate) SetMode(s string) *SessionLogUpdate {
	slu.mutation.SetMode(s)
	return slu
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (slu *SessionLogUpdate) SetNillableMode(s *string) *SessionLogUpdate {
	if s != nil {
		slu.SetMode(*s)
	}
	return slu
}

// SetScore sets the "score" field.
func (slu *SessionLogUpdate) SetScore(i int) *SessionLogUpdate {
	slu.mutation.ResetScore()
	slu.mutation.SetScore(i)
	return slu
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (slu *SessionLogUpdate) SetNillableScore(i *int) *SessionLogUpdate {
	if i != nil {
		slu.SetScore(*i)
	}
	return slu
}

// AddScore adds i to the "score" field.
func (slu *SessionLogUpdate) AddScore(i int) *SessionLogUpdate {
	slu.mutation.AddScore(i)
	return slu
}

// SetQuestions sets the "questions" field.
func (slu *SessionLogUpdate) SetQuestions(i int) *SessionLogUpdate {
	slu.mutation.ResetQuestions()
	slu.mutation.SetQuestions(i)
	return slu
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (slu *SessionLogUpdate) SetNillableQuestions(i *int) *SessionLogUpdate {
	if i != nil {
		slu.SetQuestions(*i)
	}
	return slu
}

// AddQuestions adds i to the "questions" field.
func (slu *SessionLogUpdate) AddQuestions(i int) *SessionLogUpdate {
	slu.mutation.AddQuestions(i)
	return slu
}

// SetCorrect sets the "correct" field.
func (slu *SessionLogUpdate) SetCorrect(i int) *SessionLogUpdate {
	slu.mutation.ResetCorrect()
	slu.mutation.SetCorrect(i)
	return slu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (slu *SessionLogUpdate) SetNillableCorrect(i *int) *SessionLogUpdate {
	if i != nil {
		slu.SetCorrect(*i)
	}
	return slu
}

// AddCorrect adds i to the "correct" field.
func (slu *SessionLogUpdate) AddCorrect(i int) *SessionLogUpdate {
	slu.mutation.AddCorrect(i)
	return slu
}

// SetBestCombo sets the "best_combo" field.
func (slu *SessionLogUpdate) SetBestCombo(i int) *SessionLogUpdate {
	slu.mutation.ResetBestCombo()
	slu.mutation.SetBestCombo(i)
	return slu
}

// SetNillableBestCombo sets the "best_combo" field if the given value is not nil.
func (slu *SessionLogUpdate) SetNillableBestCombo(i *int) *SessionLogUpdate {
	if i != nil {
		slu.SetBestCombo(*i)
	}
	return slu
}

// AddBestCombo adds i to the "best_combo" field.
func (slu *SessionLogUpdate) AddBestCombo(i int) *SessionLogUpdate {
	slu.mutation.AddBestCombo(i)
	return slu
}

// SetStartedAt sets the "started_at" field.
func (slu *SessionLogUpdate) SetStartedAt(t time.Time) *SessionLogUpdate {
	slu.mutation.SetStartedAt(t)
	return slu
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (slu *SessionLogUpdate) SetNillableStartedAt(t *time.Time) *SessionLogUpdate {
	if t != nil {
		slu.SetStartedAt(*t)
	}
	return slu
}

// SetFinishedAt sets the "finished_at" field.
func (slu *SessionLogUpdate) SetFinishedAt(t time.Time) *SessionLogUpdate {
	slu.mutation.SetFinishedAt(t)
	return slu
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (slu *SessionLogUpdate) SetNillableFinishedAt(t *time.Time) *SessionLogUpdate {
	if t != nil {
		slu.SetFinishedAt(*t)
	}
	return slu
}

// Mutation returns the SessionLogMutation object of the builder.
func (slu *SessionLogUpdate) Mutation() *SessionLogMutation {
	return slu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (slu *SessionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, slu.sqlSave, slu.mutation, slu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (slu *SessionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := slu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (slu *SessionLogUpdate) Exec(ctx context.Context) error {
	_, err := slu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (slu *SessionLogUpdate) ExecX(ctx context.Context) {
	if err := slu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (slu *SessionLogUpdate) check() error {
	if v, ok := slu.mutation.SessionID(); ok {
		if err := sessionlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionLog.session_id": %w`, err)}
		}
	}
	if v, ok := slu.mutation.Mode(); ok {
		if err := sessionlog.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "SessionLog.mode": %w`, err)}
		}
	}
	return nil
}

func (slu *SessionLogUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := slu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionlog.Table, sessionlog.Columns, sqlgraph.NewFieldSpec(sessionlog.FieldID, field.TypeInt))
	if ps := slu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := slu.mutation.SessionID(); ok {
		_spec.SetField(sessionlog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := slu.mutation.Mode(); ok {
		_spec.SetField(sessionlog.FieldMode, field.TypeString, value)
	}
	if value, ok := slu.mutation.Score(); ok {
		_spec.SetField(sessionlog.FieldScore, field.TypeInt, value)
	}
	if value, ok := slu.mutation.AddedScore(); ok {
		_spec.AddField(sessionlog.FieldScore, field.TypeInt, value)
	}
	if value, ok := slu.mutation.Questions(); ok {
		_spec.SetField(sessionlog.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := slu.mutation.AddedQuestions(); ok {
		_spec.AddField(sessionlog.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := slu.mutation.Correct(); ok {
		_spec.SetField(sessionlog.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := slu.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionlog.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := slu.mutation.BestCombo(); ok {
		_spec.SetField(sessionlog.FieldBestCombo, field.TypeInt, value)
	}
	if value, ok := slu.mutation.AddedBestCombo(); ok {
		_spec.AddField(sessionlog.FieldBestCombo, field.TypeInt, value)
	}
	if value, ok := slu.mutation.StartedAt(); ok {
		_spec.SetField(sessionlog.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := slu.mutation.FinishedAt(); ok {
		_spec.SetField(sessionlog.FieldFinishedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, slu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	slu.mutation.done = true
	return n, nil
}

// SessionLogUpdateOne is the builder for updating a single SessionLog entity.
type SessionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionLogMutation
}

// SetSessionID sets the "session_id" field.
func (sluo *SessionLogUpdateOne) SetSessionID(s string) *SessionLogUpdateOne {
	sluo.mutation.SetSessionID(s)
	return sluo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (sluo *SessionLogUpdateOne) SetNillableSessionID(s *string) *SessionLogUpdateOne {
	if s != nil {
		sluo.SetSessionID(*s)
	}
	return sluo
}

// SetMode sets the "mode" field.
func (sluo *SessionLogUpdateOne) SetMode(s string) *SessionLogUpdateOne {
	sluo.mutation.SetMode(s)
	return sluo
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (sluo *SessionLogUpdateOne) SetNillableMode(s *string) *SessionLogUpdateOne {
	if s != nil {
		sluo.SetMode(*s)
	}
	return sluo
}

// SetScore sets the "score" field.
func (sluo *SessionLogUpdateOne) SetScore(i int) *SessionLogUpdateOne {
	sluo.mutation.ResetScore()
	sluo.mutation.SetScore(i)
	return sluo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (sluo *SessionLogUpdateOne) SetNillableScore(i *int) *SessionLogUpdateOne {
	if i != nil {
		sluo.SetScore(*i)
	}
	return sluo
}

// AddScore adds i to the "score" field.
func (sluo *SessionLogUpdateOne) AddScore(i int) *SessionLogUpdateOne {
	sluo.mutation.AddScore(i)
	return sluo
}

// SetQuestions sets the "questions" field.
func (sluo *SessionLogUpdateOne) SetQuestions(i int) *SessionLogUpdateOne {
	sluo.mutation.ResetQuestions()
	sluo.mutation.SetQuestions(i)
	return sluo
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (sluo *SessionLogUpdateOne) SetNillableQuestions(i *int) *SessionLogUpdateOne {
	if i != nil {
		sluo.SetQuestions(*i)
	}
	return sluo
}

// AddQuestions adds i to the "questions" field.
func (sluo *SessionLogUpdateOne) AddQuestions(i int) *SessionLogUpdateOne {
	sluo.mutation.AddQuestions(i)
	return sluo
}

// SetCorrect sets the "correct" field.
func (sluo *SessionLogUpdateOne) SetCorrect(i int) *SessionLogUpdateOne {
	sluo.mutation.ResetCorrect()
	sluo.mutation.SetCorrect(i)
	return sluo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (sluo *SessionLogUpdateOne) SetNillableCorrect(i *int) *SessionLogUpdateOne {
	if i != nil {
		sluo.SetCorrect(*i)
	}
	return sluo
}

// AddCorrect adds i to the "correct" field.
func (sluo *SessionLogUpdateOne) AddCorrect(i int) *SessionLogUpdateOne {
	sluo.mutation.AddCorrect(i)
	return sluo
}

// SetBestCombo sets the "best_combo" field.
func (sluo *SessionLogUpdateOne) SetBestCombo(i int) *SessionLogUpdateOne {
	sluo.mutation.ResetBestCombo()
	sluo.mutation.SetBestCombo(i)
	return sluo
}

// SetNillableBestCombo sets the "best_combo" field if the given value is not nil.
func (sluo *SessionLogUpdateOne) SetNillableBestCombo(i *int) *SessionLogUpdateOne {
	if i != nil {
		sluo.SetBestCombo(*i)
	}
	return sluo
}

// AddBestCombo adds i to the "best_combo" field.
func (sluo *SessionLogUpdateOne) AddBestCombo(i int) *SessionLogUpdateOne {
	sluo.mutation.AddBestCombo(i)
	return sluo
}

// SetStartedAt sets the "started_at" field.
func (sluo *SessionLogUpdateOne) SetStartedAt(t time.Time) *SessionLogUpdateOne {
	sluo.mutation.SetStartedAt(t)
	return sluo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (sluo *SessionLogUpdateOne) SetNillableStartedAt(t *time.Time) *SessionLogUpdateOne {
	if t != nil {
		sluo.SetStartedAt(*t)
	}
	return sluo
}

// SetFinishedAt sets the "finished_at" field.
func (sluo *SessionLogUpdateOne) SetFinishedAt(t time.Time) *SessionLogUpdateOne {
	sluo.mutation.SetFinishedAt(t)
	return sluo
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (sluo *SessionLogUpdateOne) SetNillableFinishedAt(t *time.Time) *SessionLogUpdateOne {
	if t != nil {
		sluo.SetFinishedAt(*t)
	}
	return sluo
}

// Mutation returns the SessionLogMutation object of the builder.
func (sluo *SessionLogUpdateOne) Mutation() *SessionLogMutation {
	return sluo.mutation
}

// Where appends a list predicates to the SessionLogUpdate builder.
func (sluo *SessionLogUpdateOne) Where(ps ...predicate.SessionLog) *SessionLogUpdateOne {
	sluo.mutation.Where(ps...)
	return sluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sluo *SessionLogUpdateOne) Select(field string, fields ...string) *SessionLogUpdateOne {
	sluo.fields = append([]string{field}, fields...)
	return sluo
}

// Save executes the query and returns the updated SessionLog entity.
func (sluo *SessionLogUpdateOne) Save(ctx context.Context) (*SessionLog, error) {
	return withHooks(ctx, sluo.sqlSave, sluo.mutation, sluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sluo *SessionLogUpdateOne) SaveX(ctx context.Context) *SessionLog {
	node, err := sluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sluo *SessionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := sluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sluo *SessionLogUpdateOne) ExecX(ctx context.Context) {
	if err := sluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sluo *SessionLogUpdateOne) check() error {
	if v, ok := sluo.mutation.SessionID(); ok {
		if err := sessionlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionLog.session_id": %w`, err)}
		}
	}
	if v, ok := sluo.mutation.Mode(); ok {
		if err := sessionlog.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "SessionLog.mode": %w`, err)}
		}
	}
	return nil
}

func (sluo *SessionLogUpdateOne) sqlSave(ctx context.Context) (_node *SessionLog, err error) {
	if err := sluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionlog.Table, sessionlog.Columns, sqlgraph.NewFieldSpec(sessionlog.FieldID, field.TypeInt))
	id, ok := sluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionlog.FieldID)
		for _, f := range fields {
			if !sessionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sluo.mutation.SessionID(); ok {
		_spec.SetField(sessionlog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := sluo.mutation.Mode(); ok {
		_spec.SetField(sessionlog.FieldMode, field.TypeString, value)
	}
	if value, ok := sluo.mutation.Score(); ok {
		_spec.SetField(sessionlog.FieldScore, field.TypeInt, value)
	}
	if value, ok := sluo.mutation.AddedScore(); ok {
		_spec.AddField(sessionlog.FieldScore, field.TypeInt, value)
	}
	if value, ok := sluo.mutation.Questions(); ok {
		_spec.SetField(sessionlog.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := sluo.mutation.AddedQuestions(); ok {
		_spec.AddField(sessionlog.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := sluo.mutation.Correct(); ok {
		_spec.SetField(sessionlog.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := sluo.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionlog.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := sluo.mutation.BestCombo(); ok {
		_spec.SetField(sessionlog.FieldBestCombo, field.TypeInt, value)
	}
	if value, ok := sluo.mutation.AddedBestCombo(); ok {
		_spec.AddField(sessionlog.FieldBestCombo, field.TypeInt, value)
	}
	if value, ok := sluo.mutation.StartedAt(); ok {
		_spec.SetField(sessionlog.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := sluo.mutation.FinishedAt(); ok {
		_spec.SetField(sessionlog.FieldFinishedAt, field.TypeTime, value)
	}
	_node = &SessionLog{config: sluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sluo.mutation.done = true
	return _node, nil
}
