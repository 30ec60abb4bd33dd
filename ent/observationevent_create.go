// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/matuskalis/speaksharp-engine/ent/observationevent"
)

// ObservationEventCreate is the builder for creating a ObservationEvent entity.
type ObservationEventCreate struct {
	config
	mutation *ObservationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ObservationEventCreate) SetSequence(v int64) *ObservationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ObservationEventCreate) SetTimestamp(v time.Time) *ObservationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ObservationEventCreate) SetNillableTimestamp(v *time.Time) *ObservationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ObservationEventCreate) SetLearnerID(v string) *ObservationEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetSkillKey sets the "skill_key" field.
func (_c *ObservationEventCreate) SetSkillKey(v string) *ObservationEventCreate {
	_c.mutation.SetSkillKey(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ObservationEventCreate) SetCorrect(v bool) *ObservationEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetPPrior sets the "p_prior" field.
func (_c *ObservationEventCreate) SetPPrior(v float64) *ObservationEventCreate {
	_c.mutation.SetPPrior(v)
	return _c
}

// SetPPosterior sets the "p_posterior" field.
func (_c *ObservationEventCreate) SetPPosterior(v float64) *ObservationEventCreate {
	_c.mutation.SetPPosterior(v)
	return _c
}

// SetMasteryScore sets the "mastery_score" field.
func (_c *ObservationEventCreate) SetMasteryScore(v float64) *ObservationEventCreate {
	_c.mutation.SetMasteryScore(v)
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *ObservationEventCreate) SetAttemptID(v string) *ObservationEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_c *ObservationEventCreate) SetNillableAttemptID(v *string) *ObservationEventCreate {
	if v != nil {
		_c.SetAttemptID(*v)
	}
	return _c
}

// Mutation returns the ObservationEventMutation object of the builder.
func (_c *ObservationEventCreate) Mutation() *ObservationEventMutation {
	return _c.mutation
}

// Save creates the ObservationEvent in the database.
func (_c *ObservationEventCreate) Save(ctx context.Context) (*ObservationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ObservationEventCreate) SaveX(ctx context.Context) *ObservationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ObservationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := observationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ObservationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ObservationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ObservationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ObservationEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := observationevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillKey(); !ok {
		return &ValidationError{Name: "skill_key", err: errors.New(`ent: missing required field "ObservationEvent.skill_key"`)}
	}
	if v, ok := _c.mutation.SkillKey(); ok {
		if err := observationevent.SkillKeyValidator(v); err != nil {
			return &ValidationError{Name: "skill_key", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.skill_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ObservationEvent.correct"`)}
	}
	if _, ok := _c.mutation.PPrior(); !ok {
		return &ValidationError{Name: "p_prior", err: errors.New(`ent: missing required field "ObservationEvent.p_prior"`)}
	}
	if _, ok := _c.mutation.PPosterior(); !ok {
		return &ValidationError{Name: "p_posterior", err: errors.New(`ent: missing required field "ObservationEvent.p_posterior"`)}
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		return &ValidationError{Name: "mastery_score", err: errors.New(`ent: missing required field "ObservationEvent.mastery_score"`)}
	}
	return nil
}

func (_c *ObservationEventCreate) sqlSave(ctx context.Context) (*ObservationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ObservationEventCreate) createSpec() (*ObservationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ObservationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(observationevent.Table, sqlgraph.NewFieldSpec(observationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(observationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(observationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(observationevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.SkillKey(); ok {
		_spec.SetField(observationevent.FieldSkillKey, field.TypeString, value)
		_node.SkillKey = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(observationevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.PPrior(); ok {
		_spec.SetField(observationevent.FieldPPrior, field.TypeFloat64, value)
		_node.PPrior = value
	}
	if value, ok := _c.mutation.PPosterior(); ok {
		_spec.SetField(observationevent.FieldPPosterior, field.TypeFloat64, value)
		_node.PPosterior = value
	}
	if value, ok := _c.mutation.MasteryScore(); ok {
		_spec.SetField(observationevent.FieldMasteryScore, field.TypeFloat64, value)
		_node.MasteryScore = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(observationevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	return _node, _spec
}

// ObservationEventCreateBulk is the builder for creating many ObservationEvent entities in bulk.
type ObservationEventCreateBulk struct {
	config
	err      error
	builders []*ObservationEventCreate
}

// Save creates the ObservationEvent entities in the database.
func (_c *ObservationEventCreateBulk) Save(ctx context.Context) ([]*ObservationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ObservationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ObservationEventMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ObservationEventCreateBulk) SaveX(ctx context.Context) []*ObservationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
