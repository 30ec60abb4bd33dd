// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/matuskalis/speaksharp-engine/ent/skillnode"
)

// SkillNodeCreate is the builder for creating a SkillNode entity.
type SkillNodeCreate struct {
	config
	mutation *SkillNodeMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *SkillNodeCreate) SetLearnerID(v string) *SkillNodeCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetSkillKey sets the "skill_key" field.
func (_c *SkillNodeCreate) SetSkillKey(v string) *SkillNodeCreate {
	_c.mutation.SetSkillKey(v)
	return _c
}

// SetPLearned sets the "p_learned" field.
func (_c *SkillNodeCreate) SetPLearned(v float64) *SkillNodeCreate {
	_c.mutation.SetPLearned(v)
	return _c
}

// SetPTransit sets the "p_transit" field.
func (_c *SkillNodeCreate) SetPTransit(v float64) *SkillNodeCreate {
	_c.mutation.SetPTransit(v)
	return _c
}

// SetMasteryScore sets the "mastery_score" field.
func (_c *SkillNodeCreate) SetMasteryScore(v float64) *SkillNodeCreate {
	_c.mutation.SetMasteryScore(v)
	return _c
}

// SetPracticeCount sets the "practice_count" field.
func (_c *SkillNodeCreate) SetPracticeCount(v int) *SkillNodeCreate {
	_c.mutation.SetPracticeCount(v)
	return _c
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_c *SkillNodeCreate) SetNillablePracticeCount(v *int) *SkillNodeCreate {
	if v != nil {
		_c.SetPracticeCount(*v)
	}
	return _c
}

// SetSuccessCount sets the "success_count" field.
func (_c *SkillNodeCreate) SetSuccessCount(v int) *SkillNodeCreate {
	_c.mutation.SetSuccessCount(v)
	return _c
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_c *SkillNodeCreate) SetNillableSuccessCount(v *int) *SkillNodeCreate {
	if v != nil {
		_c.SetSuccessCount(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *SkillNodeCreate) SetErrorCount(v int) *SkillNodeCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *SkillNodeCreate) SetNillableErrorCount(v *int) *SkillNodeCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *SkillNodeCreate) SetLastPracticedAt(v time.Time) *SkillNodeCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// Mutation returns the SkillNodeMutation object of the builder.
func (_c *SkillNodeCreate) Mutation() *SkillNodeMutation {
	return _c.mutation
}

// Save creates the SkillNode in the database.
func (_c *SkillNodeCreate) Save(ctx context.Context) (*SkillNode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillNodeCreate) SaveX(ctx context.Context) *SkillNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillNodeCreate) defaults() {
	if _, ok := _c.mutation.PracticeCount(); !ok {
		v := skillnode.DefaultPracticeCount
		_c.mutation.SetPracticeCount(v)
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		v := skillnode.DefaultSuccessCount
		_c.mutation.SetSuccessCount(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := skillnode.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillNodeCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "SkillNode.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := skillnode.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SkillNode.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillKey(); !ok {
		return &ValidationError{Name: "skill_key", err: errors.New(`ent: missing required field "SkillNode.skill_key"`)}
	}
	if v, ok := _c.mutation.SkillKey(); ok {
		if err := skillnode.SkillKeyValidator(v); err != nil {
			return &ValidationError{Name: "skill_key", err: fmt.Errorf(`ent: validator failed for field "SkillNode.skill_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PLearned(); !ok {
		return &ValidationError{Name: "p_learned", err: errors.New(`ent: missing required field "SkillNode.p_learned"`)}
	}
	if v, ok := _c.mutation.PLearned(); ok {
		if err := skillnode.PLearnedValidator(v); err != nil {
			return &ValidationError{Name: "p_learned", err: fmt.Errorf(`ent: validator failed for field "SkillNode.p_learned": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PTransit(); !ok {
		return &ValidationError{Name: "p_transit", err: errors.New(`ent: missing required field "SkillNode.p_transit"`)}
	}
	if v, ok := _c.mutation.PTransit(); ok {
		if err := skillnode.PTransitValidator(v); err != nil {
			return &ValidationError{Name: "p_transit", err: fmt.Errorf(`ent: validator failed for field "SkillNode.p_transit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		return &ValidationError{Name: "mastery_score", err: errors.New(`ent: missing required field "SkillNode.mastery_score"`)}
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		return &ValidationError{Name: "practice_count", err: errors.New(`ent: missing required field "SkillNode.practice_count"`)}
	}
	if v, ok := _c.mutation.PracticeCount(); ok {
		if err := skillnode.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "SkillNode.practice_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		return &ValidationError{Name: "success_count", err: errors.New(`ent: missing required field "SkillNode.success_count"`)}
	}
	if v, ok := _c.mutation.SuccessCount(); ok {
		if err := skillnode.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "SkillNode.success_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "SkillNode.error_count"`)}
	}
	if v, ok := _c.mutation.ErrorCount(); ok {
		if err := skillnode.ErrorCountValidator(v); err != nil {
			return &ValidationError{Name: "error_count", err: fmt.Errorf(`ent: validator failed for field "SkillNode.error_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastPracticedAt(); !ok {
		return &ValidationError{Name: "last_practiced_at", err: errors.New(`ent: missing required field "SkillNode.last_practiced_at"`)}
	}
	return nil
}

func (_c *SkillNodeCreate) sqlSave(ctx context.Context) (*SkillNode, error) {
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

func (_c *SkillNodeCreate) createSpec() (*SkillNode, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillnode.Table, sqlgraph.NewFieldSpec(skillnode.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(skillnode.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.SkillKey(); ok {
		_spec.SetField(skillnode.FieldSkillKey, field.TypeString, value)
		_node.SkillKey = value
	}
	if value, ok := _c.mutation.PLearned(); ok {
		_spec.SetField(skillnode.FieldPLearned, field.TypeFloat64, value)
		_node.PLearned = value
	}
	if value, ok := _c.mutation.PTransit(); ok {
		_spec.SetField(skillnode.FieldPTransit, field.TypeFloat64, value)
		_node.PTransit = value
	}
	if value, ok := _c.mutation.MasteryScore(); ok {
		_spec.SetField(skillnode.FieldMasteryScore, field.TypeFloat64, value)
		_node.MasteryScore = value
	}
	if value, ok := _c.mutation.PracticeCount(); ok {
		_spec.SetField(skillnode.FieldPracticeCount, field.TypeInt, value)
		_node.PracticeCount = value
	}
	if value, ok := _c.mutation.SuccessCount(); ok {
		_spec.SetField(skillnode.FieldSuccessCount, field.TypeInt, value)
		_node.SuccessCount = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(skillnode.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(skillnode.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = value
	}
	return _node, _spec
}

// SkillNodeCreateBulk is the builder for creating many SkillNode entities in bulk.
type SkillNodeCreateBulk struct {
	config
	err      error
	builders []*SkillNodeCreate
}

// Save creates the SkillNode entities in the database.
func (_c *SkillNodeCreateBulk) Save(ctx context.Context) ([]*SkillNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillNodeMutation)
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
func (_c *SkillNodeCreateBulk) SaveX(ctx context.Context) []*SkillNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
