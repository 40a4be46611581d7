// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/predicate"
	"github.com/abhisek/coursegen/ent/textresponsesubmission"
)

// TextResponseSubmissionUpdate is the builder for updating TextResponseSubmission entities.
type TextResponseSubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *TextResponseSubmissionMutation
}

// Where appends a list predicates to the TextResponseSubmissionUpdate builder.
func (_u *TextResponseSubmissionUpdate) Where(ps ...predicate.TextResponseSubmission) *TextResponseSubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the TextResponseSubmissionMutation object of the builder.
func (_u *TextResponseSubmissionUpdate) Mutation() *TextResponseSubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TextResponseSubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TextResponseSubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TextResponseSubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TextResponseSubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TextResponseSubmissionUpdate) check() error {
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TextResponseSubmission.lesson"`)
	}
	return nil
}

func (_u *TextResponseSubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(textresponsesubmission.Table, textresponsesubmission.Columns, sqlgraph.NewFieldSpec(textresponsesubmission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{textresponsesubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TextResponseSubmissionUpdateOne is the builder for updating a single TextResponseSubmission entity.
type TextResponseSubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TextResponseSubmissionMutation
}

// Mutation returns the TextResponseSubmissionMutation object of the builder.
func (_u *TextResponseSubmissionUpdateOne) Mutation() *TextResponseSubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TextResponseSubmissionUpdate builder.
func (_u *TextResponseSubmissionUpdateOne) Where(ps ...predicate.TextResponseSubmission) *TextResponseSubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TextResponseSubmissionUpdateOne) Select(field string, fields ...string) *TextResponseSubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TextResponseSubmission entity.
func (_u *TextResponseSubmissionUpdateOne) Save(ctx context.Context) (*TextResponseSubmission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TextResponseSubmissionUpdateOne) SaveX(ctx context.Context) *TextResponseSubmission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TextResponseSubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TextResponseSubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TextResponseSubmissionUpdateOne) check() error {
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TextResponseSubmission.lesson"`)
	}
	return nil
}

func (_u *TextResponseSubmissionUpdateOne) sqlSave(ctx context.Context) (_node *TextResponseSubmission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(textresponsesubmission.Table, textresponsesubmission.Columns, sqlgraph.NewFieldSpec(textresponsesubmission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TextResponseSubmission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, textresponsesubmission.FieldID)
		for _, f := range fields {
			if !textresponsesubmission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != textresponsesubmission.FieldID {
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
	_node = &TextResponseSubmission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{textresponsesubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
