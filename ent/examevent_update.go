// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/asmit/mentis/ent/examevent"
	"github.com/asmit/mentis/ent/predicate"
)

// ExamEventUpdate is the builder for updating ExamEvent entities.
type ExamEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExamEventMutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdate) Where(ps ...predicate.ExamEvent) *ExamEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExamID sets the "exam_id" field.
func (_u *ExamEventUpdate) SetExamID(v string) *ExamEventUpdate {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableExamID(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ExamEventUpdate) SetAction(v string) *ExamEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableAction(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *ExamEventUpdate) SetPatientName(v string) *ExamEventUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillablePatientName(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientAge sets the "patient_age" field.
func (_u *ExamEventUpdate) SetPatientAge(v string) *ExamEventUpdate {
	_u.mutation.SetPatientAge(v)
	return _u
}

// SetNillablePatientAge sets the "patient_age" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillablePatientAge(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetPatientAge(*v)
	}
	return _u
}

// SetPatientGender sets the "patient_gender" field.
func (_u *ExamEventUpdate) SetPatientGender(v string) *ExamEventUpdate {
	_u.mutation.SetPatientGender(v)
	return _u
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillablePatientGender(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetPatientGender(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *ExamEventUpdate) SetTotalScore(v int) *ExamEventUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableTotalScore(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *ExamEventUpdate) AddTotalScore(v int) *ExamEventUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *ExamEventUpdate) SetMaxScore(v int) *ExamEventUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableMaxScore(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *ExamEventUpdate) AddMaxScore(v int) *ExamEventUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *ExamEventUpdate) SetPercentage(v float64) *ExamEventUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillablePercentage(v *float64) *ExamEventUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *ExamEventUpdate) AddPercentage(v float64) *ExamEventUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ExamEventUpdate) SetSeverity(v string) *ExamEventUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableSeverity(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ExamEventUpdate) SetDurationSecs(v int64) *ExamEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableDurationSecs(v *int64) *ExamEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ExamEventUpdate) AddDurationSecs(v int64) *ExamEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdate) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdate) check() error {
	if v, ok := _u.mutation.ExamID(); ok {
		if err := examevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.exam_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := examevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(examevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(examevent.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientAge(); ok {
		_spec.SetField(examevent.FieldPatientAge, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientGender(); ok {
		_spec.SetField(examevent.FieldPatientGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(examevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(examevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(examevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(examevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(examevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(examevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(examevent.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(examevent.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(examevent.FieldDurationSecs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamEventUpdateOne is the builder for updating a single ExamEvent entity.
type ExamEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamEventMutation
}

// SetExamID sets the "exam_id" field.
func (_u *ExamEventUpdateOne) SetExamID(v string) *ExamEventUpdateOne {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableExamID(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ExamEventUpdateOne) SetAction(v string) *ExamEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableAction(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *ExamEventUpdateOne) SetPatientName(v string) *ExamEventUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillablePatientName(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientAge sets the "patient_age" field.
func (_u *ExamEventUpdateOne) SetPatientAge(v string) *ExamEventUpdateOne {
	_u.mutation.SetPatientAge(v)
	return _u
}

// SetNillablePatientAge sets the "patient_age" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillablePatientAge(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetPatientAge(*v)
	}
	return _u
}

// SetPatientGender sets the "patient_gender" field.
func (_u *ExamEventUpdateOne) SetPatientGender(v string) *ExamEventUpdateOne {
	_u.mutation.SetPatientGender(v)
	return _u
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillablePatientGender(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetPatientGender(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *ExamEventUpdateOne) SetTotalScore(v int) *ExamEventUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableTotalScore(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *ExamEventUpdateOne) AddTotalScore(v int) *ExamEventUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *ExamEventUpdateOne) SetMaxScore(v int) *ExamEventUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableMaxScore(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *ExamEventUpdateOne) AddMaxScore(v int) *ExamEventUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *ExamEventUpdateOne) SetPercentage(v float64) *ExamEventUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillablePercentage(v *float64) *ExamEventUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *ExamEventUpdateOne) AddPercentage(v float64) *ExamEventUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ExamEventUpdateOne) SetSeverity(v string) *ExamEventUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableSeverity(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ExamEventUpdateOne) SetDurationSecs(v int64) *ExamEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableDurationSecs(v *int64) *ExamEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ExamEventUpdateOne) AddDurationSecs(v int64) *ExamEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdateOne) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdateOne) Where(ps ...predicate.ExamEvent) *ExamEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamEventUpdateOne) Select(field string, fields ...string) *ExamEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamEvent entity.
func (_u *ExamEventUpdateOne) Save(ctx context.Context) (*ExamEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdateOne) SaveX(ctx context.Context) *ExamEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdateOne) check() error {
	if v, ok := _u.mutation.ExamID(); ok {
		if err := examevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.exam_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := examevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdateOne) sqlSave(ctx context.Context) (_node *ExamEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examevent.FieldID)
		for _, f := range fields {
			if !examevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examevent.FieldID {
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
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(examevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(examevent.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientAge(); ok {
		_spec.SetField(examevent.FieldPatientAge, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientGender(); ok {
		_spec.SetField(examevent.FieldPatientGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(examevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(examevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(examevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(examevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(examevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(examevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(examevent.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(examevent.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(examevent.FieldDurationSecs, field.TypeInt64, value)
	}
	_node = &ExamEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
