// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/generationlog"
	"github.com/abhisek/coursegen/ent/predicate"
)

// GenerationLogUpdate is the builder for updating GenerationLog entities.
type GenerationLogUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationLogMutation
}

// Where appends a list predicates to the GenerationLogUpdate builder.
func (_u *GenerationLogUpdate) Where(ps ...predicate.GenerationLog) *GenerationLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the GenerationLogMutation object of the builder.
func (_u *GenerationLogUpdate) Mutation() *GenerationLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationLogUpdate) check() error {
	if _u.mutation.CourseGenerationCleared() && len(_u.mutation.CourseGenerationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GenerationLog.course_generation"`)
	}
	return nil
}

func (_u *GenerationLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationlog.Table, generationlog.Columns, sqlgraph.NewFieldSpec(generationlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(generationlog.FieldData, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationLogUpdateOne is the builder for updating a single GenerationLog entity.
type GenerationLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationLogMutation
}

// Mutation returns the GenerationLogMutation object of the builder.
func (_u *GenerationLogUpdateOne) Mutation() *GenerationLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationLogUpdate builder.
func (_u *GenerationLogUpdateOne) Where(ps ...predicate.GenerationLog) *GenerationLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationLogUpdateOne) Select(field string, fields ...string) *GenerationLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationLog entity.
func (_u *GenerationLogUpdateOne) Save(ctx context.Context) (*GenerationLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationLogUpdateOne) SaveX(ctx context.Context) *GenerationLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationLogUpdateOne) check() error {
	if _u.mutation.CourseGenerationCleared() && len(_u.mutation.CourseGenerationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GenerationLog.course_generation"`)
	}
	return nil
}

func (_u *GenerationLogUpdateOne) sqlSave(ctx context.Context) (_node *GenerationLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationlog.Table, generationlog.Columns, sqlgraph.NewFieldSpec(generationlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationlog.FieldID)
		for _, f := range fields {
			if !generationlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationlog.FieldID {
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
	if _u.mutation.DataCleared() {
		_spec.ClearField(generationlog.FieldData, field.TypeJSON)
	}
	_node = &GenerationLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
