// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/matuskalis/speaksharp-engine/ent/errorrecord"
	"github.com/matuskalis/speaksharp-engine/ent/predicate"
)

// ErrorRecordUpdate is the builder for updating ErrorRecord entities.
type ErrorRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ErrorRecordMutation
}

// Where appends a list predicates to the ErrorRecordUpdate builder.
func (_u *ErrorRecordUpdate) Where(ps ...predicate.ErrorRecord) *ErrorRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *ErrorRecordUpdate) SetErrorType(v string) *ErrorRecordUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *ErrorRecordUpdate) SetNillableErrorType(v *string) *ErrorRecordUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// SetUserSentence sets the "user_sentence" field.
func (_u *ErrorRecordUpdate) SetUserSentence(v string) *ErrorRecordUpdate {
	_u.mutation.SetUserSentence(v)
	return _u
}

// SetNillableUserSentence sets the "user_sentence" field if the given value is not nil.
func (_u *ErrorRecordUpdate) SetNillableUserSentence(v *string) *ErrorRecordUpdate {
	if v != nil {
		_u.SetUserSentence(*v)
	}
	return _u
}

// SetCorrectedSentence sets the "corrected_sentence" field.
func (_u *ErrorRecordUpdate) SetCorrectedSentence(v string) *ErrorRecordUpdate {
	_u.mutation.SetCorrectedSentence(v)
	return _u
}

// SetNillableCorrectedSentence sets the "corrected_sentence" field if the given value is not nil.
func (_u *ErrorRecordUpdate) SetNillableCorrectedSentence(v *string) *ErrorRecordUpdate {
	if v != nil {
		_u.SetCorrectedSentence(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ErrorRecordUpdate) SetExplanation(v string) *ErrorRecordUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ErrorRecordUpdate) SetNillableExplanation(v *string) *ErrorRecordUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetRecycled sets the "recycled" field.
func (_u *ErrorRecordUpdate) SetRecycled(v bool) *ErrorRecordUpdate {
	_u.mutation.SetRecycled(v)
	return _u
}

// SetNillableRecycled sets the "recycled" field if the given value is not nil.
func (_u *ErrorRecordUpdate) SetNillableRecycled(v *bool) *ErrorRecordUpdate {
	if v != nil {
		_u.SetRecycled(*v)
	}
	return _u
}

// SetRecycledCount sets the "recycled_count" field.
func (_u *ErrorRecordUpdate) SetRecycledCount(v int) *ErrorRecordUpdate {
	_u.mutation.ResetRecycledCount()
	_u.mutation.SetRecycledCount(v)
	return _u
}

// SetNillableRecycledCount sets the "recycled_count" field if the given value is not nil.
func (_u *ErrorRecordUpdate) SetNillableRecycledCount(v *int) *ErrorRecordUpdate {
	if v != nil {
		_u.SetRecycledCount(*v)
	}
	return _u
}

// AddRecycledCount adds value to the "recycled_count" field.
func (_u *ErrorRecordUpdate) AddRecycledCount(v int) *ErrorRecordUpdate {
	_u.mutation.AddRecycledCount(v)
	return _u
}

// Mutation returns the ErrorRecordMutation object of the builder.
func (_u *ErrorRecordUpdate) Mutation() *ErrorRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ErrorRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ErrorRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ErrorRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ErrorRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ErrorRecordUpdate) check() error {
	if v, ok := _u.mutation.ErrorType(); ok {
		if err := errorrecord.ErrorTypeValidator(v); err != nil {
			return &ValidationError{Name: "error_type", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.error_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserSentence(); ok {
		if err := errorrecord.UserSentenceValidator(v); err != nil {
			return &ValidationError{Name: "user_sentence", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.user_sentence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectedSentence(); ok {
		if err := errorrecord.CorrectedSentenceValidator(v); err != nil {
			return &ValidationError{Name: "corrected_sentence", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.corrected_sentence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Explanation(); ok {
		if err := errorrecord.ExplanationValidator(v); err != nil {
			return &ValidationError{Name: "explanation", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.explanation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecycledCount(); ok {
		if err := errorrecord.RecycledCountValidator(v); err != nil {
			return &ValidationError{Name: "recycled_count", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.recycled_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ErrorRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(errorrecord.Table, errorrecord.Columns, sqlgraph.NewFieldSpec(errorrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(errorrecord.FieldErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserSentence(); ok {
		_spec.SetField(errorrecord.FieldUserSentence, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedSentence(); ok {
		_spec.SetField(errorrecord.FieldCorrectedSentence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(errorrecord.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recycled(); ok {
		_spec.SetField(errorrecord.FieldRecycled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RecycledCount(); ok {
		_spec.SetField(errorrecord.FieldRecycledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecycledCount(); ok {
		_spec.AddField(errorrecord.FieldRecycledCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{errorrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ErrorRecordUpdateOne is the builder for updating a single ErrorRecord entity.
type ErrorRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ErrorRecordMutation
}

// SetErrorType sets the "error_type" field.
func (_u *ErrorRecordUpdateOne) SetErrorType(v string) *ErrorRecordUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *ErrorRecordUpdateOne) SetNillableErrorType(v *string) *ErrorRecordUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// SetUserSentence sets the "user_sentence" field.
func (_u *ErrorRecordUpdateOne) SetUserSentence(v string) *ErrorRecordUpdateOne {
	_u.mutation.SetUserSentence(v)
	return _u
}

// SetNillableUserSentence sets the "user_sentence" field if the given value is not nil.
func (_u *ErrorRecordUpdateOne) SetNillableUserSentence(v *string) *ErrorRecordUpdateOne {
	if v != nil {
		_u.SetUserSentence(*v)
	}
	return _u
}

// SetCorrectedSentence sets the "corrected_sentence" field.
func (_u *ErrorRecordUpdateOne) SetCorrectedSentence(v string) *ErrorRecordUpdateOne {
	_u.mutation.SetCorrectedSentence(v)
	return _u
}

// SetNillableCorrectedSentence sets the "corrected_sentence" field if the given value is not nil.
func (_u *ErrorRecordUpdateOne) SetNillableCorrectedSentence(v *string) *ErrorRecordUpdateOne {
	if v != nil {
		_u.SetCorrectedSentence(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ErrorRecordUpdateOne) SetExplanation(v string) *ErrorRecordUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ErrorRecordUpdateOne) SetNillableExplanation(v *string) *ErrorRecordUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetRecycled sets the "recycled" field.
func (_u *ErrorRecordUpdateOne) SetRecycled(v bool) *ErrorRecordUpdateOne {
	_u.mutation.SetRecycled(v)
	return _u
}

// SetNillableRecycled sets the "recycled" field if the given value is not nil.
func (_u *ErrorRecordUpdateOne) SetNillableRecycled(v *bool) *ErrorRecordUpdateOne {
	if v != nil {
		_u.SetRecycled(*v)
	}
	return _u
}

// SetRecycledCount sets the "recycled_count" field.
func (_u *ErrorRecordUpdateOne) SetRecycledCount(v int) *ErrorRecordUpdateOne {
	_u.mutation.ResetRecycledCount()
	_u.mutation.SetRecycledCount(v)
	return _u
}

// SetNillableRecycledCount sets the "recycled_count" field if the given value is not nil.
func (_u *ErrorRecordUpdateOne) SetNillableRecycledCount(v *int) *ErrorRecordUpdateOne {
	if v != nil {
		_u.SetRecycledCount(*v)
	}
	return _u
}

// AddRecycledCount adds value to the "recycled_count" field.
func (_u *ErrorRecordUpdateOne) AddRecycledCount(v int) *ErrorRecordUpdateOne {
	_u.mutation.AddRecycledCount(v)
	return _u
}

// Mutation returns the ErrorRecordMutation object of the builder.
func (_u *ErrorRecordUpdateOne) Mutation() *ErrorRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ErrorRecordUpdate builder.
func (_u *ErrorRecordUpdateOne) Where(ps ...predicate.ErrorRecord) *ErrorRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ErrorRecordUpdateOne) Select(field string, fields ...string) *ErrorRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ErrorRecord entity.
func (_u *ErrorRecordUpdateOne) Save(ctx context.Context) (*ErrorRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ErrorRecordUpdateOne) SaveX(ctx context.Context) *ErrorRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ErrorRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ErrorRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ErrorRecordUpdateOne) check() error {
	if v, ok := _u.mutation.ErrorType(); ok {
		if err := errorrecord.ErrorTypeValidator(v); err != nil {
			return &ValidationError{Name: "error_type", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.error_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserSentence(); ok {
		if err := errorrecord.UserSentenceValidator(v); err != nil {
			return &ValidationError{Name: "user_sentence", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.user_sentence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectedSentence(); ok {
		if err := errorrecord.CorrectedSentenceValidator(v); err != nil {
			return &ValidationError{Name: "corrected_sentence", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.corrected_sentence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Explanation(); ok {
		if err := errorrecord.ExplanationValidator(v); err != nil {
			return &ValidationError{Name: "explanation", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.explanation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecycledCount(); ok {
		if err := errorrecord.RecycledCountValidator(v); err != nil {
			return &ValidationError{Name: "recycled_count", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.recycled_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ErrorRecordUpdateOne) sqlSave(ctx context.Context) (_node *ErrorRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(errorrecord.Table, errorrecord.Columns, sqlgraph.NewFieldSpec(errorrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ErrorRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, errorrecord.FieldID)
		for _, f := range fields {
			if !errorrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != errorrecord.FieldID {
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
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(errorrecord.FieldErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserSentence(); ok {
		_spec.SetField(errorrecord.FieldUserSentence, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedSentence(); ok {
		_spec.SetField(errorrecord.FieldCorrectedSentence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(errorrecord.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recycled(); ok {
		_spec.SetField(errorrecord.FieldRecycled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RecycledCount(); ok {
		_spec.SetField(errorrecord.FieldRecycledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecycledCount(); ok {
		_spec.AddField(errorrecord.FieldRecycledCount, field.TypeInt, value)
	}
	_node = &ErrorRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{errorrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
