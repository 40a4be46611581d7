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
	"github.com/abhisek/coursegen/ent/quizattempt"
)

// QuizAttemptUpdate is the builder for updating QuizAttempt entities.
type QuizAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdate) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdate) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdate) check() error {
	if _u.mutation.QuizCleared() && len(_u.mutation.QuizIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizAttempt.quiz"`)
	}
	return nil
}

func (_u *QuizAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAttemptUpdateOne is the builder for updating a single QuizAttempt entity.
type QuizAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdateOne) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdateOne) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAttemptUpdateOne) Select(field string, fields ...string) *QuizAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAttempt entity.
func (_u *QuizAttemptUpdateOne) Save(ctx context.Context) (*QuizAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) SaveX(ctx context.Context) *QuizAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdateOne) check() error {
	if _u.mutation.QuizCleared() && len(_u.mutation.QuizIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizAttempt.quiz"`)
	}
	return nil
}

func (_u *QuizAttemptUpdateOne) sqlSave(ctx context.Context) (_node *QuizAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizattempt.FieldID)
		for _, f := range fields {
			if !quizattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizattempt.FieldID {
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
	_node = &QuizAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
