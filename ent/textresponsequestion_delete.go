// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/predicate"
	"github.com/abhisek/coursegen/ent/textresponsequestion"
)

// TextResponseQuestionDelete is the builder for deleting a TextResponseQuestion entity.
type TextResponseQuestionDelete struct {
	config
	hooks    []Hook
	mutation *TextResponseQuestionMutation
}

// Where appends a list predicates to the TextResponseQuestionDelete builder.
func (_d *TextResponseQuestionDelete) Where(ps ...predicate.TextResponseQuestion) *TextResponseQuestionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TextResponseQuestionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TextResponseQuestionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TextResponseQuestionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(textresponsequestion.Table, sqlgraph.NewFieldSpec(textresponsequestion.FieldID, field.TypeInt))
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

// TextResponseQuestionDeleteOne is the builder for deleting a single TextResponseQuestion entity.
type TextResponseQuestionDeleteOne struct {
	_d *TextResponseQuestionDelete
}

// Where appends a list predicates to the TextResponseQuestionDelete builder.
func (_d *TextResponseQuestionDeleteOne) Where(ps ...predicate.TextResponseQuestion) *TextResponseQuestionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TextResponseQuestionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{textresponsequestion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TextResponseQuestionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
