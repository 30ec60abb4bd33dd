// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/matuskalis/speaksharp-engine/ent/errorrecord"
)

// ErrorRecordCreate is the builder for creating a ErrorRecord entity.
type ErrorRecordCreate struct {
	config
	mutation *ErrorRecordMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ErrorRecordCreate) SetLearnerID(v string) *ErrorRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *ErrorRecordCreate) SetErrorType(v string) *ErrorRecordCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetUserSentence sets the "user_sentence" field.
func (_c *ErrorRecordCreate) SetUserSentence(v string) *ErrorRecordCreate {
	_c.mutation.SetUserSentence(v)
	return _c
}

// SetCorrectedSentence sets the "corrected_sentence" field.
func (_c *ErrorRecordCreate) SetCorrectedSentence(v string) *ErrorRecordCreate {
	_c.mutation.SetCorrectedSentence(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *ErrorRecordCreate) SetExplanation(v string) *ErrorRecordCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetRecycled sets the "recycled" field.
func (_c *ErrorRecordCreate) SetRecycled(v bool) *ErrorRecordCreate {
	_c.mutation.SetRecycled(v)
	return _c
}

// SetNillableRecycled sets the "recycled" field if the given value is not nil.
func (_c *ErrorRecordCreate) SetNillableRecycled(v *bool) *ErrorRecordCreate {
	if v != nil {
		_c.SetRecycled(*v)
	}
	return _c
}

// SetRecycledCount sets the "recycled_count" field.
func (_c *ErrorRecordCreate) SetRecycledCount(v int) *ErrorRecordCreate {
	_c.mutation.SetRecycledCount(v)
	return _c
}

// SetNillableRecycledCount sets the "recycled_count" field if the given value is not nil.
func (_c *ErrorRecordCreate) SetNillableRecycledCount(v *int) *ErrorRecordCreate {
	if v != nil {
		_c.SetRecycledCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ErrorRecordCreate) SetCreatedAt(v time.Time) *ErrorRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ErrorRecordCreate) SetNillableCreatedAt(v *time.Time) *ErrorRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ErrorRecordCreate) SetID(v uuid.UUID) *ErrorRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ErrorRecordCreate) SetNillableID(v *uuid.UUID) *ErrorRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ErrorRecordMutation object of the builder.
func (_c *ErrorRecordCreate) Mutation() *ErrorRecordMutation {
	return _c.mutation
}

// Save creates the ErrorRecord in the database.
func (_c *ErrorRecordCreate) Save(ctx context.Context) (*ErrorRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ErrorRecordCreate) SaveX(ctx context.Context) *ErrorRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ErrorRecordCreate) defaults() {
	if _, ok := _c.mutation.Recycled(); !ok {
		v := errorrecord.DefaultRecycled
		_c.mutation.SetRecycled(v)
	}
	if _, ok := _c.mutation.RecycledCount(); !ok {
		v := errorrecord.DefaultRecycledCount
		_c.mutation.SetRecycledCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := errorrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := errorrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ErrorRecordCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ErrorRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := errorrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorType(); !ok {
		return &ValidationError{Name: "error_type", err: errors.New(`ent: missing required field "ErrorRecord.error_type"`)}
	}
	if v, ok := _c.mutation.ErrorType(); ok {
		if err := errorrecord.ErrorTypeValidator(v); err != nil {
			return &ValidationError{Name: "error_type", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.error_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserSentence(); !ok {
		return &ValidationError{Name: "user_sentence", err: errors.New(`ent: missing required field "ErrorRecord.user_sentence"`)}
	}
	if v, ok := _c.mutation.UserSentence(); ok {
		if err := errorrecord.UserSentenceValidator(v); err != nil {
			return &ValidationError{Name: "user_sentence", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.user_sentence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectedSentence(); !ok {
		return &ValidationError{Name: "corrected_sentence", err: errors.New(`ent: missing required field "ErrorRecord.corrected_sentence"`)}
	}
	if v, ok := _c.mutation.CorrectedSentence(); ok {
		if err := errorrecord.CorrectedSentenceValidator(v); err != nil {
			return &ValidationError{Name: "corrected_sentence", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.corrected_sentence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "ErrorRecord.explanation"`)}
	}
	if v, ok := _c.mutation.Explanation(); ok {
		if err := errorrecord.ExplanationValidator(v); err != nil {
			return &ValidationError{Name: "explanation", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.explanation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Recycled(); !ok {
		return &ValidationError{Name: "recycled", err: errors.New(`ent: missing required field "ErrorRecord.recycled"`)}
	}
	if _, ok := _c.mutation.RecycledCount(); !ok {
		return &ValidationError{Name: "recycled_count", err: errors.New(`ent: missing required field "ErrorRecord.recycled_count"`)}
	}
	if v, ok := _c.mutation.RecycledCount(); ok {
		if err := errorrecord.RecycledCountValidator(v); err != nil {
			return &ValidationError{Name: "recycled_count", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.recycled_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ErrorRecord.created_at"`)}
	}
	return nil
}

func (_c *ErrorRecordCreate) sqlSave(ctx context.Context) (*ErrorRecord, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ErrorRecordCreate) createSpec() (*ErrorRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ErrorRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(errorrecord.Table, sqlgraph.NewFieldSpec(errorrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(errorrecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(errorrecord.FieldErrorType, field.TypeString, value)
		_node.ErrorType = value
	}
	if value, ok := _c.mutation.UserSentence(); ok {
		_spec.SetField(errorrecord.FieldUserSentence, field.TypeString, value)
		_node.UserSentence = value
	}
	if value, ok := _c.mutation.CorrectedSentence(); ok {
		_spec.SetField(errorrecord.FieldCorrectedSentence, field.TypeString, value)
		_node.CorrectedSentence = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(errorrecord.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Recycled(); ok {
		_spec.SetField(errorrecord.FieldRecycled, field.TypeBool, value)
		_node.Recycled = value
	}
	if value, ok := _c.mutation.RecycledCount(); ok {
		_spec.SetField(errorrecord.FieldRecycledCount, field.TypeInt, value)
		_node.RecycledCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(errorrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ErrorRecordCreateBulk is the builder for creating many ErrorRecord entities in bulk.
type ErrorRecordCreateBulk struct {
	config
	err      error
	builders []*ErrorRecordCreate
}

// Save creates the ErrorRecord entities in the database.
func (_c *ErrorRecordCreateBulk) Save(ctx context.Context) ([]*ErrorRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ErrorRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ErrorRecordMutation)
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
func (_c *ErrorRecordCreateBulk) SaveX(ctx context.Context) []*ErrorRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
