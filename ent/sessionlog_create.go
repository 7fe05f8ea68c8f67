// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/medquiz/ent/sessionlog"
)

// SessionLogCreate is the builder for creating a SessionLog entity.
type SessionLogCreate struct {
	config
	mutation *SessionLogMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (slc *SessionLogCreate) SetSessionID(s string) *SessionLogCreate {
	slc.mutation.SetSessionID(s)
	return slc
}

// SetMode sets the "mode" field.
func (slc *SessionLogCreate) SetMode(s string) *SessionLogCreate {
	slc.mutation.SetMode(s)
	return slc
}

// SetScore sets the "score" field.
func (slc *SessionLogCreate) SetScore(i int) *SessionLogCreate {
	slc.mutation.SetScore(i)
	return slc
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (slc *SessionLogCreate) SetNillableScore(i *int) *SessionLogCreate {
	if i != nil {
		slc.SetScore(*i)
	}
	return slc
}

// SetQuestions sets the "questions" field.
func (slc *SessionLogCreate) SetQuestions(i int) *SessionLogCreate {
	slc.mutation.SetQuestions(i)
	return slc
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (slc *SessionLogCreate) SetNillableQuestions(i *int) *SessionLogCreate {
	if i != nil {
		slc.SetQuestions(*i)
	}
	return slc
}

// SetCorrect sets the "correct" field.
func (slc *SessionLogCreate) SetCorrect(i int) *SessionLogCreate {
	slc.mutation.SetCorrect(i)
	return slc
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (slc *SessionLogCreate) SetNillableCorrect(i *int) *SessionLogCreate {
	if i != nil {
		slc.SetCorrect(*i)
	}
	return slc
}

// SetBestCombo sets the "best_combo" field.
func (slc *SessionLogCreate) SetBestCombo(i int) *SessionLogCreate {
	slc.mutation.SetBestCombo(i)
	return slc
}

// SetNillableBestCombo sets the "best_combo" field if the given value is not nil.
func (slc *SessionLogCreate) SetNillableBestCombo(i *int) *SessionLogCreate {
	if i != nil {
		slc.SetBestCombo(*i)
	}
	return slc
}

// SetStartedAt sets the "started_at" field.
func (slc *SessionLogCreate) SetStartedAt(t time.Time) *SessionLogCreate {
	slc.mutation.SetStartedAt(t)
	return slc
}

// SetFinishedAt sets the "finished_at" field.
func (slc *SessionLogCreate) SetFinishedAt(t time.Time) *SessionLogCreate {
	slc.mutation.SetFinishedAt(t)
	return slc
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (slc *SessionLogCreate) SetNillableFinishedAt(t *time.Time) *SessionLogCreate {
	if t != nil {
		slc.SetFinishedAt(*t)
	}
	return slc
}

// Mutation returns the SessionLogMutation object of the builder.
func (slc *SessionLogCreate) Mutation() *SessionLogMutation {
	return slc.mutation
}

// Save creates the SessionLog in the database.
func (slc *SessionLogCreate) Save(ctx context.Context) (*SessionLog, error) {
	slc.defaults()
	return withHooks(ctx, slc.sqlSave, slc.mutation, slc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (slc *SessionLogCreate) SaveX(ctx context.Context) *SessionLog {
	v, err := slc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (slc *SessionLogCreate) Exec(ctx context.Context) error {
	_, err := slc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (slc *SessionLogCreate) ExecX(ctx context.Context) {
	if err := slc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (slc *SessionLogCreate) defaults() {
	if _, ok := slc.mutation.Score(); !ok {
		v := sessionlog.DefaultScore
		slc.mutation.SetScore(v)
	}
	if _, ok := slc.mutation.Questions(); !ok {
		v := sessionlog.DefaultQuestions
		slc.mutation.SetQuestions(v)
	}
	if _, ok := slc.mutation.Correct(); !ok {
		v := sessionlog.DefaultCorrect
		slc.mutation.SetCorrect(v)
	}
	if _, ok := slc.mutation.BestCombo(); !ok {
		v := sessionlog.DefaultBestCombo
		slc.mutation.SetBestCombo(v)
	}
	if _, ok := slc.mutation.FinishedAt(); !ok {
		v := sessionlog.DefaultFinishedAt()
		slc.mutation.SetFinishedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (slc *SessionLogCreate) check() error {
	if _, ok := slc.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionLog.session_id"`)}
	}
	if v, ok := slc.mutation.SessionID(); ok {
		if err := sessionlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionLog.session_id": %w`, err)}
		}
	}
	if _, ok := slc.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "SessionLog.mode"`)}
	}
	if v, ok := slc.mutation.Mode(); ok {
		if err := sessionlog.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "SessionLog.mode": %w`, err)}
		}
	}
	if _, ok := slc.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "SessionLog.score"`)}
	}
	if _, ok := slc.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "SessionLog.questions"`)}
	}
	if _, ok := slc.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "SessionLog.correct"`)}
	}
	if _, ok := slc.mutation.BestCombo(); !ok {
		return &ValidationError{Name: "best_combo", err: errors.New(`ent: missing required field "SessionLog.best_combo"`)}
	}
	if _, ok := slc.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SessionLog.started_at"`)}
	}
	if _, ok := slc.mutation.FinishedAt(); !ok {
		return &ValidationError{Name: "finished_at", err: errors.New(`ent: missing required field "SessionLog.finished_at"`)}
	}
	return nil
}

func (slc *SessionLogCreate) sqlSave(ctx context.Context) (*SessionLog, error) {
	if err := slc.check(); err != nil {
		return nil, err
	}
	_node, _spec := slc.createSpec()
	if err := sqlgraph.CreateNode(ctx, slc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	slc.mutation.id = &_node.ID
	slc.mutation.done = true
	return _node, nil
}

func (slc *SessionLogCreate) createSpec() (*SessionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionLog{config: slc.config}
		_spec = sqlgraph.NewCreateSpec(sessionlog.Table, sqlgraph.NewFieldSpec(sessionlog.FieldID, field.TypeInt))
	)
	if value, ok := slc.mutation.SessionID(); ok {
		_spec.SetField(sessionlog.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := slc.mutation.Mode(); ok {
		_spec.SetField(sessionlog.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := slc.mutation.Score(); ok {
		_spec.SetField(sessionlog.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := slc.mutation.Questions(); ok {
		_spec.SetField(sessionlog.FieldQuestions, field.TypeInt, value)
		_node.Questions = value
	}
	if value, ok := slc.mutation.Correct(); ok {
		_spec.SetField(sessionlog.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := slc.mutation.BestCombo(); ok {
		_spec.SetField(sessionlog.FieldBestCombo, field.TypeInt, value)
		_node.BestCombo = value
	}
	if value, ok := slc.mutation.StartedAt(); ok {
		_spec.SetField(sessionlog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := slc.mutation.FinishedAt(); ok {
		_spec.SetField(sessionlog.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	return _node, _spec
}

// SessionLogCreateBulk is the builder for creating many SessionLog entities in bulk.
type SessionLogCreateBulk struct {
	config
	err      error
	builders []*SessionLogCreate
}

// Save creates the SessionLog entities in the database.
func (slcb *SessionLogCreateBulk) Save(ctx context.Context) ([]*SessionLog, error) {
	if slcb.err != nil {
		return nil, slcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(slcb.builders))
	nodes := make([]*SessionLog, len(slcb.builders))
	mutators := make([]Mutator, len(slcb.builders))
	for i := range slcb.builders {
		func(i int, root context.Context) {
			builder := slcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, slcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, slcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, slcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (slcb *SessionLogCreateBulk) SaveX(ctx context.Context) []*SessionLog {
	v, err := slcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (slcb *SessionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := slcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (slcb *SessionLogCreateBulk) ExecX(ctx context.Context) {
	if err := slcb.Exec(ctx); err != nil {
		panic(err)
	}
}
