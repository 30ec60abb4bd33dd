// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/matuskalis/speaksharp-engine/ent/observationevent"
	"github.com/matuskalis/speaksharp-engine/ent/predicate"
)

// ObservationEventUpdate is the builder for updating ObservationEvent entities.
type ObservationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ObservationEventMutation
}

// Where appends a list predicates to the ObservationEventUpdate builder.
func (_u *ObservationEventUpdate) Where(ps ...predicate.ObservationEvent) *ObservationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ObservationEventUpdate) SetLearnerID(v string) *ObservationEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillableLearnerID(v *string) *ObservationEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSkillKey sets the "skill_key" field.
func (_u *ObservationEventUpdate) SetSkillKey(v string) *ObservationEventUpdate {
	_u.mutation.SetSkillKey(v)
	return _u
}

// SetNillableSkillKey sets the "skill_key" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillableSkillKey(v *string) *ObservationEventUpdate {
	if v != nil {
		_u.SetSkillKey(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ObservationEventUpdate) SetCorrect(v bool) *ObservationEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillableCorrect(v *bool) *ObservationEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetPPrior sets the "p_prior" field.
func (_u *ObservationEventUpdate) SetPPrior(v float64) *ObservationEventUpdate {
	_u.mutation.ResetPPrior()
	_u.mutation.SetPPrior(v)
	return _u
}

// SetNillablePPrior sets the "p_prior" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillablePPrior(v *float64) *ObservationEventUpdate {
	if v != nil {
		_u.SetPPrior(*v)
	}
	return _u
}

// AddPPrior adds value to the "p_prior" field.
func (_u *ObservationEventUpdate) AddPPrior(v float64) *ObservationEventUpdate {
	_u.mutation.AddPPrior(v)
	return _u
}

// SetPPosterior sets the "p_posterior" field.
func (_u *ObservationEventUpdate) SetPPosterior(v float64) *ObservationEventUpdate {
	_u.mutation.ResetPPosterior()
	_u.mutation.SetPPosterior(v)
	return _u
}

// SetNillablePPosterior sets the "p_posterior" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillablePPosterior(v *float64) *ObservationEventUpdate {
	if v != nil {
		_u.SetPPosterior(*v)
	}
	return _u
}

// AddPPosterior adds value to the "p_posterior" field.
func (_u *ObservationEventUpdate) AddPPosterior(v float64) *ObservationEventUpdate {
	_u.mutation.AddPPosterior(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *ObservationEventUpdate) SetMasteryScore(v float64) *ObservationEventUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillableMasteryScore(v *float64) *ObservationEventUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *ObservationEventUpdate) AddMasteryScore(v float64) *ObservationEventUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ObservationEventUpdate) SetAttemptID(v string) *ObservationEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillableAttemptID(v *string) *ObservationEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// ClearAttemptID clears the value of the "attempt_id" field.
func (_u *ObservationEventUpdate) ClearAttemptID() *ObservationEventUpdate {
	_u.mutation.ClearAttemptID()
	return _u
}

// Mutation returns the ObservationEventMutation object of the builder.
func (_u *ObservationEventUpdate) Mutation() *ObservationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ObservationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ObservationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObservationEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := observationevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillKey(); ok {
		if err := observationevent.SkillKeyValidator(v); err != nil {
			return &ValidationError{Name: "skill_key", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.skill_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ObservationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(observationevent.Table, observationevent.Columns, sqlgraph.NewFieldSpec(observationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(observationevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillKey(); ok {
		_spec.SetField(observationevent.FieldSkillKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(observationevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PPrior(); ok {
		_spec.SetField(observationevent.FieldPPrior, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPPrior(); ok {
		_spec.AddField(observationevent.FieldPPrior, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PPosterior(); ok {
		_spec.SetField(observationevent.FieldPPosterior, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPPosterior(); ok {
		_spec.AddField(observationevent.FieldPPosterior, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(observationevent.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(observationevent.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(observationevent.FieldAttemptID, field.TypeString, value)
	}
	if _u.mutation.AttemptIDCleared() {
		_spec.ClearField(observationevent.FieldAttemptID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ObservationEventUpdateOne is the builder for updating a single ObservationEvent entity.
type ObservationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ObservationEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ObservationEventUpdateOne) SetLearnerID(v string) *ObservationEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillableLearnerID(v *string) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSkillKey sets the "skill_key" field.
func (_u *ObservationEventUpdateOne) SetSkillKey(v string) *ObservationEventUpdateOne {
	_u.mutation.SetSkillKey(v)
	return _u
}

// SetNillableSkillKey sets the "skill_key" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillableSkillKey(v *string) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetSkillKey(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ObservationEventUpdateOne) SetCorrect(v bool) *ObservationEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillableCorrect(v *bool) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetPPrior sets the "p_prior" field.
func (_u *ObservationEventUpdateOne) SetPPrior(v float64) *ObservationEventUpdateOne {
	_u.mutation.ResetPPrior()
	_u.mutation.SetPPrior(v)
	return _u
}

// SetNillablePPrior sets the "p_prior" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillablePPrior(v *float64) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetPPrior(*v)
	}
	return _u
}

// AddPPrior adds value to the "p_prior" field.
func (_u *ObservationEventUpdateOne) AddPPrior(v float64) *ObservationEventUpdateOne {
	_u.mutation.AddPPrior(v)
	return _u
}

// SetPPosterior sets the "p_posterior" field.
func (_u *ObservationEventUpdateOne) SetPPosterior(v float64) *ObservationEventUpdateOne {
	_u.mutation.ResetPPosterior()
	_u.mutation.SetPPosterior(v)
	return _u
}

// SetNillablePPosterior sets the "p_posterior" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillablePPosterior(v *float64) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetPPosterior(*v)
	}
	return _u
}

// AddPPosterior adds value to the "p_posterior" field.
func (_u *ObservationEventUpdateOne) AddPPosterior(v float64) *ObservationEventUpdateOne {
	_u.mutation.AddPPosterior(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *ObservationEventUpdateOne) SetMasteryScore(v float64) *ObservationEventUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillableMasteryScore(v *float64) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *ObservationEventUpdateOne) AddMasteryScore(v float64) *ObservationEventUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ObservationEventUpdateOne) SetAttemptID(v string) *ObservationEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillableAttemptID(v *string) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// ClearAttemptID clears the value of the "attempt_id" field.
func (_u *ObservationEventUpdateOne) ClearAttemptID() *ObservationEventUpdateOne {
	_u.mutation.ClearAttemptID()
	return _u
}

// Mutation returns the ObservationEventMutation object of the builder.
func (_u *ObservationEventUpdateOne) Mutation() *ObservationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ObservationEventUpdate builder.
func (_u *ObservationEventUpdateOne) Where(ps ...predicate.ObservationEvent) *ObservationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ObservationEventUpdateOne) Select(field string, fields ...string) *ObservationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ObservationEvent entity.
func (_u *ObservationEventUpdateOne) Save(ctx context.Context) (*ObservationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservationEventUpdateOne) SaveX(ctx context.Context) *ObservationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ObservationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObservationEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := observationevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillKey(); ok {
		if err := observationevent.SkillKeyValidator(v); err != nil {
			return &ValidationError{Name: "skill_key", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.skill_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ObservationEventUpdateOne) sqlSave(ctx context.Context) (_node *ObservationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(observationevent.Table, observationevent.Columns, sqlgraph.NewFieldSpec(observationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ObservationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, observationevent.FieldID)
		for _, f := range fields {
			if !observationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != observationevent.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(observationevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillKey(); ok {
		_spec.SetField(observationevent.FieldSkillKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(observationevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PPrior(); ok {
		_spec.SetField(observationevent.FieldPPrior, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPPrior(); ok {
		_spec.AddField(observationevent.FieldPPrior, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PPosterior(); ok {
		_spec.SetField(observationevent.FieldPPosterior, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPPosterior(); ok {
		_spec.AddField(observationevent.FieldPPosterior, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(observationevent.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(observationevent.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(observationevent.FieldAttemptID, field.TypeString, value)
	}
	if _u.mutation.AttemptIDCleared() {
		_spec.ClearField(observationevent.FieldAttemptID, field.TypeString)
	}
	_node = &ObservationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
