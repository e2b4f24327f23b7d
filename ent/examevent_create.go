// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/asmit/mentis/ent/examevent"
)

// ExamEventCreate is the builder for creating a ExamEvent entity.
type ExamEventCreate struct {
	config
	mutation *ExamEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ExamEventCreate) SetSequence(v int64) *ExamEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExamEventCreate) SetTimestamp(v time.Time) *ExamEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableTimestamp(v *time.Time) *ExamEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetExamID sets the "exam_id" field.
func (_c *ExamEventCreate) SetExamID(v string) *ExamEventCreate {
	_c.mutation.SetExamID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *ExamEventCreate) SetAction(v string) *ExamEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *ExamEventCreate) SetPatientName(v string) *ExamEventCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillablePatientName(v *string) *ExamEventCreate {
	if v != nil {
		_c.SetPatientName(*v)
	}
	return _c
}

// SetPatientAge sets the "patient_age" field.
func (_c *ExamEventCreate) SetPatientAge(v string) *ExamEventCreate {
	_c.mutation.SetPatientAge(v)
	return _c
}

// SetNillablePatientAge sets the "patient_age" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillablePatientAge(v *string) *ExamEventCreate {
	if v != nil {
		_c.SetPatientAge(*v)
	}
	return _c
}

// SetPatientGender sets the "patient_gender" field.
func (_c *ExamEventCreate) SetPatientGender(v string) *ExamEventCreate {
	_c.mutation.SetPatientGender(v)
	return _c
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillablePatientGender(v *string) *ExamEventCreate {
	if v != nil {
		_c.SetPatientGender(*v)
	}
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *ExamEventCreate) SetTotalScore(v int) *ExamEventCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableTotalScore(v *int) *ExamEventCreate {
	if v != nil {
		_c.SetTotalScore(*v)
	}
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *ExamEventCreate) SetMaxScore(v int) *ExamEventCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableMaxScore(v *int) *ExamEventCreate {
	if v != nil {
		_c.SetMaxScore(*v)
	}
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *ExamEventCreate) SetPercentage(v float64) *ExamEventCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillablePercentage(v *float64) *ExamEventCreate {
	if v != nil {
		_c.SetPercentage(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ExamEventCreate) SetSeverity(v string) *ExamEventCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableSeverity(v *string) *ExamEventCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *ExamEventCreate) SetDurationSecs(v int64) *ExamEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableDurationSecs(v *int64) *ExamEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the ExamEventMutation object of the builder.
func (_c *ExamEventCreate) Mutation() *ExamEventMutation {
	return _c.mutation
}

// Save creates the ExamEvent in the database.
func (_c *ExamEventCreate) Save(ctx context.Context) (*ExamEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamEventCreate) SaveX(ctx context.Context) *ExamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := examevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		v := examevent.DefaultPatientName
		_c.mutation.SetPatientName(v)
	}
	if _, ok := _c.mutation.PatientAge(); !ok {
		v := examevent.DefaultPatientAge
		_c.mutation.SetPatientAge(v)
	}
	if _, ok := _c.mutation.PatientGender(); !ok {
		v := examevent.DefaultPatientGender
		_c.mutation.SetPatientGender(v)
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		v := examevent.DefaultTotalScore
		_c.mutation.SetTotalScore(v)
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		v := examevent.DefaultMaxScore
		_c.mutation.SetMaxScore(v)
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		v := examevent.DefaultPercentage
		_c.mutation.SetPercentage(v)
	}
	if _, ok := _c.mutation.Severity(); !ok {
		v := examevent.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := examevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExamEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExamEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`ent: missing required field "ExamEvent.exam_id"`)}
	}
	if v, ok := _c.mutation.ExamID(); ok {
		if err := examevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.exam_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ExamEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := examevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`ent: missing required field "ExamEvent.patient_name"`)}
	}
	if _, ok := _c.mutation.PatientAge(); !ok {
		return &ValidationError{Name: "patient_age", err: errors.New(`ent: missing required field "ExamEvent.patient_age"`)}
	}
	if _, ok := _c.mutation.PatientGender(); !ok {
		return &ValidationError{Name: "patient_gender", err: errors.New(`ent: missing required field "ExamEvent.patient_gender"`)}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "ExamEvent.total_score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "ExamEvent.max_score"`)}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "ExamEvent.percentage"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "ExamEvent.severity"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "ExamEvent.duration_secs"`)}
	}
	return nil
}

func (_c *ExamEventCreate) sqlSave(ctx context.Context) (*ExamEvent, error) {
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

func (_c *ExamEventCreate) createSpec() (*ExamEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examevent.Table, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(examevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(examevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeString, value)
		_node.ExamID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(examevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(examevent.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.PatientAge(); ok {
		_spec.SetField(examevent.FieldPatientAge, field.TypeString, value)
		_node.PatientAge = value
	}
	if value, ok := _c.mutation.PatientGender(); ok {
		_spec.SetField(examevent.FieldPatientGender, field.TypeString, value)
		_node.PatientGender = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(examevent.FieldTotalScore, field.TypeInt, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(examevent.FieldMaxScore, field.TypeInt, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(examevent.FieldPercentage, field.TypeFloat64, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(examevent.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(examevent.FieldDurationSecs, field.TypeInt64, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// ExamEventCreateBulk is the builder for creating many ExamEvent entities in bulk.
type ExamEventCreateBulk struct {
	config
	err      error
	builders []*ExamEventCreate
}

// Save creates the ExamEvent entities in the database.
func (_c *ExamEventCreateBulk) Save(ctx context.Context) ([]*ExamEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamEventMutation)
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
func (_c *ExamEventCreateBulk) SaveX(ctx context.Context) []*ExamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
