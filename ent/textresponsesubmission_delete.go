// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/predicate"
	"github.com/abhisek/coursegen/ent/textresponsesubmission"
)

// TextResponseSubmissionDelete is the builder for deleting a TextResponseSubmission entity.
type TextResponseSubmissionDelete struct {
	config
	hooks    []Hook
	mutation *TextResponseSubmissionMutation
}

// Where appends a list predicates to the TextResponseSubmissionDelete builder.
func (_d *TextResponseSubmissionDelete) Where(ps ...predicate.TextResponseSubmission) *TextResponseSubmissionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TextResponseSubmissionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TextResponseSubmissionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TextResponseSubmissionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(textresponsesubmission.Table, sqlgraph.NewFieldSpec(textresponsesubmission.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// TextResponseSubmissionDeleteOne is the builder for deleting a single TextResponseSubmission entity.
type TextResponseSubmissionDeleteOne struct {
	_d *TextResponseSubmissionDelete
}

// Where appends a list predicates to the TextResponseSubmissionDelete builder.
func (_d *TextResponseSubmissionDeleteOne) Where(ps ...predicate.TextResponseSubmission) *TextResponseSubmissionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TextResponseSubmissionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{textresponsesubmission.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TextResponseSubmissionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
