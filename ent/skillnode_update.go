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
	"github.com/matuskalis/speaksharp-engine/ent/predicate"
	"github.com/matuskalis/speaksharp-engine/ent/skillnode"
)

// SkillNodeUpdate is the builder for updating SkillNode entities.
type SkillNodeUpdate struct {
	config
	hooks    []Hook
	mutation *SkillNodeMutation
}

// Where appends a list predicates to the SkillNodeUpdate builder.
func (_u *SkillNodeUpdate) Where(ps ...predicate.SkillNode) *SkillNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPLearned sets the "p_learned" field.
func (_u *SkillNodeUpdate) SetPLearned(v float64) *SkillNodeUpdate {
	_u.mutation.ResetPLearned()
	_u.mutation.SetPLearned(v)
	return _u
}

// SetNillablePLearned sets the "p_learned" field if the given value is not nil.
func (_u *SkillNodeUpdate) SetNillablePLearned(v *float64) *SkillNodeUpdate {
	if v != nil {
		_u.SetPLearned(*v)
	}
	return _u
}

// AddPLearned adds value to the "p_learned" field.
func (_u *SkillNodeUpdate) AddPLearned(v float64) *SkillNodeUpdate {
	_u.mutation.AddPLearned(v)
	return _u
}

// SetPTransit sets the "p_transit" field.
func (_u *SkillNodeUpdate) SetPTransit(v float64) *SkillNodeUpdate {
	_u.mutation.ResetPTransit()
	_u.mutation.SetPTransit(v)
	return _u
}

// SetNillablePTransit sets the "p_transit" field if the given value is not nil.
func (_u *SkillNodeUpdate) SetNillablePTransit(v *float64) *SkillNodeUpdate {
	if v != nil {
		_u.SetPTransit(*v)
	}
	return _u
}

// AddPTransit adds value to the "p_transit" field.
func (_u *SkillNodeUpdate) AddPTransit(v float64) *SkillNodeUpdate {
	_u.mutation.AddPTransit(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *SkillNodeUpdate) SetMasteryScore(v float64) *SkillNodeUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *SkillNodeUpdate) SetNillableMasteryScore(v *float64) *SkillNodeUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *SkillNodeUpdate) AddMasteryScore(v float64) *SkillNodeUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *SkillNodeUpdate) SetPracticeCount(v int) *SkillNodeUpdate {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *SkillNodeUpdate) SetNillablePracticeCount(v *int) *SkillNodeUpdate {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *SkillNodeUpdate) AddPracticeCount(v int) *SkillNodeUpdate {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *SkillNodeUpdate) SetSuccessCount(v int) *SkillNodeUpdate {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *SkillNodeUpdate) SetNillableSuccessCount(v *int) *SkillNodeUpdate {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *SkillNodeUpdate) AddSuccessCount(v int) *SkillNodeUpdate {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *SkillNodeUpdate) SetErrorCount(v int) *SkillNodeUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *SkillNodeUpdate) SetNillableErrorCount(v *int) *SkillNodeUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *SkillNodeUpdate) AddErrorCount(v int) *SkillNodeUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *SkillNodeUpdate) SetLastPracticedAt(v time.Time) *SkillNodeUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *SkillNodeUpdate) SetNillableLastPracticedAt(v *time.Time) *SkillNodeUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// Mutation returns the SkillNodeMutation object of the builder.
func (_u *SkillNodeUpdate) Mutation() *SkillNodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillNodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillNodeUpdate) check() error {
	if v, ok := _u.mutation.PLearned(); ok {
		if err := skillnode.PLearnedValidator(v); err != nil {
			return &ValidationError{Name: "p_learned", err: fmt.Errorf(`ent: validator failed for field "SkillNode.p_learned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PTransit(); ok {
		if err := skillnode.PTransitValidator(v); err != nil {
			return &ValidationError{Name: "p_transit", err: fmt.Errorf(`ent: validator failed for field "SkillNode.p_transit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PracticeCount(); ok {
		if err := skillnode.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "SkillNode.practice_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessCount(); ok {
		if err := skillnode.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "SkillNode.success_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorCount(); ok {
		if err := skillnode.ErrorCountValidator(v); err != nil {
			return &ValidationError{Name: "error_count", err: fmt.Errorf(`ent: validator failed for field "SkillNode.error_count": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillnode.Table, skillnode.Columns, sqlgraph.NewFieldSpec(skillnode.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PLearned(); ok {
		_spec.SetField(skillnode.FieldPLearned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPLearned(); ok {
		_spec.AddField(skillnode.FieldPLearned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PTransit(); ok {
		_spec.SetField(skillnode.FieldPTransit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPTransit(); ok {
		_spec.AddField(skillnode.FieldPTransit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(skillnode.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(skillnode.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(skillnode.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(skillnode.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(skillnode.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(skillnode.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(skillnode.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(skillnode.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(skillnode.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillnode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillNodeUpdateOne is the builder for updating a single SkillNode entity.
type SkillNodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillNodeMutation
}

// SetPLearned sets the "p_learned" field.
func (_u *SkillNodeUpdateOne) SetPLearned(v float64) *SkillNodeUpdateOne {
	_u.mutation.ResetPLearned()
	_u.mutation.SetPLearned(v)
	return _u
}

// SetNillablePLearned sets the "p_learned" field if the given value is not nil.
func (_u *SkillNodeUpdateOne) SetNillablePLearned(v *float64) *SkillNodeUpdateOne {
	if v != nil {
		_u.SetPLearned(*v)
	}
	return _u
}

// AddPLearned adds value to the "p_learned" field.
func (_u *SkillNodeUpdateOne) AddPLearned(v float64) *SkillNodeUpdateOne {
	_u.mutation.AddPLearned(v)
	return _u
}

// SetPTransit sets the "p_transit" field.
func (_u *SkillNodeUpdateOne) SetPTransit(v float64) *SkillNodeUpdateOne {
	_u.mutation.ResetPTransit()
	_u.mutation.SetPTransit(v)
	return _u
}

// SetNillablePTransit sets the "p_transit" field if the given value is not nil.
func (_u *SkillNodeUpdateOne) SetNillablePTransit(v *float64) *SkillNodeUpdateOne {
	if v != nil {
		_u.SetPTransit(*v)
	}
	return _u
}

// AddPTransit adds value to the "p_transit" field.
func (_u *SkillNodeUpdateOne) AddPTransit(v float64) *SkillNodeUpdateOne {
	_u.mutation.AddPTransit(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *SkillNodeUpdateOne) SetMasteryScore(v float64) *SkillNodeUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *SkillNodeUpdateOne) SetNillableMasteryScore(v *float64) *SkillNodeUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *SkillNodeUpdateOne) AddMasteryScore(v float64) *SkillNodeUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *SkillNodeUpdateOne) SetPracticeCount(v int) *SkillNodeUpdateOne {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *SkillNodeUpdateOne) SetNillablePracticeCount(v *int) *SkillNodeUpdateOne {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *SkillNodeUpdateOne) AddPracticeCount(v int) *SkillNodeUpdateOne {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *SkillNodeUpdateOne) SetSuccessCount(v int) *SkillNodeUpdateOne {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *SkillNodeUpdateOne) SetNillableSuccessCount(v *int) *SkillNodeUpdateOne {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *SkillNodeUpdateOne) AddSuccessCount(v int) *SkillNodeUpdateOne {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *SkillNodeUpdateOne) SetErrorCount(v int) *SkillNodeUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *SkillNodeUpdateOne) SetNillableErrorCount(v *int) *SkillNodeUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *SkillNodeUpdateOne) AddErrorCount(v int) *SkillNodeUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *SkillNodeUpdateOne) SetLastPracticedAt(v time.Time) *SkillNodeUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *SkillNodeUpdateOne) SetNillableLastPracticedAt(v *time.Time) *SkillNodeUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// Mutation returns the SkillNodeMutation object of the builder.
func (_u *SkillNodeUpdateOne) Mutation() *SkillNodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillNodeUpdate builder.
func (_u *SkillNodeUpdateOne) Where(ps ...predicate.SkillNode) *SkillNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillNodeUpdateOne) Select(field string, fields ...string) *SkillNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillNode entity.
func (_u *SkillNodeUpdateOne) Save(ctx context.Context) (*SkillNode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillNodeUpdateOne) SaveX(ctx context.Context) *SkillNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillNodeUpdateOne) check() error {
	if v, ok := _u.mutation.PLearned(); ok {
		if err := skillnode.PLearnedValidator(v); err != nil {
			return &ValidationError{Name: "p_learned", err: fmt.Errorf(`ent: validator failed for field "SkillNode.p_learned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PTransit(); ok {
		if err := skillnode.PTransitValidator(v); err != nil {
			return &ValidationError{Name: "p_transit", err: fmt.Errorf(`ent: validator failed for field "SkillNode.p_transit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PracticeCount(); ok {
		if err := skillnode.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "SkillNode.practice_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessCount(); ok {
		if err := skillnode.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "SkillNode.success_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorCount(); ok {
		if err := skillnode.ErrorCountValidator(v); err != nil {
			return &ValidationError{Name: "error_count", err: fmt.Errorf(`ent: validator failed for field "SkillNode.error_count": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillNodeUpdateOne) sqlSave(ctx context.Context) (_node *SkillNode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillnode.Table, skillnode.Columns, sqlgraph.NewFieldSpec(skillnode.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillnode.FieldID)
		for _, f := range fields {
			if !skillnode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillnode.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PLearned(); ok {
		_spec.SetField(skillnode.FieldPLearned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPLearned(); ok {
		_spec.AddField(skillnode.FieldPLearned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PTransit(); ok {
		_spec.SetField(skillnode.FieldPTransit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPTransit(); ok {
		_spec.AddField(skillnode.FieldPTransit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(skillnode.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(skillnode.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(skillnode.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(skillnode.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(skillnode.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(skillnode.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(skillnode.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(skillnode.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(skillnode.FieldLastPracticedAt, field.TypeTime, value)
	}
	_node = &SkillNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillnode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
