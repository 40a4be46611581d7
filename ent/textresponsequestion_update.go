// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/predicate"
	"github.com/abhisek/coursegen/ent/textresponsequestion"
)

// TextResponseQuestionUpdate is the builder for updating TextResponseQuestion entities.
type TextResponseQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *TextResponseQuestionMutation
}

// Where appends a list predicates to the TextResponseQuestionUpdate builder.
func (_u *TextResponseQuestionUpdate) Where(ps ...predicate.TextResponseQuestion) *TextResponseQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *TextResponseQuestionUpdate) SetLessonID(v int) *TextResponseQuestionUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *TextResponseQuestionUpdate) SetNillableLessonID(v *int) *TextResponseQuestionUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *TextResponseQuestionUpdate) SetNumber(v int) *TextResponseQuestionUpdate {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *TextResponseQuestionUpdate) SetNillableNumber(v *int) *TextResponseQuestionUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *TextResponseQuestionUpdate) AddNumber(v int) *TextResponseQuestionUpdate {
	_u.mutation.AddNumber(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *TextResponseQuestionUpdate) SetQuestion(v string) *TextResponseQuestionUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *TextResponseQuestionUpdate) SetNillableQuestion(v *string) *TextResponseQuestionUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetReferenceAnswer sets the "reference_answer" field.
func (_u *TextResponseQuestionUpdate) SetReferenceAnswer(v string) *TextResponseQuestionUpdate {
	_u.mutation.SetReferenceAnswer(v)
	return _u
}

// SetNillableReferenceAnswer sets the "reference_answer" field if the given value is not nil.
func (_u *TextResponseQuestionUpdate) SetNillableReferenceAnswer(v *string) *TextResponseQuestionUpdate {
	if v != nil {
		_u.SetReferenceAnswer(*v)
	}
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *TextResponseQuestionUpdate) SetLesson(v *Lesson) *TextResponseQuestionUpdate {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the TextResponseQuestionMutation object of the builder.
func (_u *TextResponseQuestionUpdate) Mutation() *TextResponseQuestionMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *TextResponseQuestionUpdate) ClearLesson() *TextResponseQuestionUpdate {
	_u.mutation.ClearLesson()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TextResponseQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TextResponseQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TextResponseQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TextResponseQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TextResponseQuestionUpdate) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := textresponsequestion.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "TextResponseQuestion.number": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TextResponseQuestion.lesson"`)
	}
	return nil
}

func (_u *TextResponseQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(textresponsequestion.Table, textresponsequestion.Columns, sqlgraph.NewFieldSpec(textresponsequestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(textresponsequestion.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(textresponsequestion.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(textresponsequestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferenceAnswer(); ok {
		_spec.SetField(textresponsequestion.FieldReferenceAnswer, field.TypeString, value)
	}
	if _u.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   textresponsequestion.LessonTable,
			Columns: []string{textresponsequestion.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   textresponsequestion.LessonTable,
			Columns: []string{textresponsequestion.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{textresponsequestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TextResponseQuestionUpdateOne is the builder for updating a single TextResponseQuestion entity.
type TextResponseQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TextResponseQuestionMutation
}

// SetLessonID sets the "lesson_id" field.
func (_u *TextResponseQuestionUpdateOne) SetLessonID(v int) *TextResponseQuestionUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *TextResponseQuestionUpdateOne) SetNillableLessonID(v *int) *TextResponseQuestionUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *TextResponseQuestionUpdateOne) SetNumber(v int) *TextResponseQuestionUpdateOne {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *TextResponseQuestionUpdateOne) SetNillableNumber(v *int) *TextResponseQuestionUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *TextResponseQuestionUpdateOne) AddNumber(v int) *TextResponseQuestionUpdateOne {
	_u.mutation.AddNumber(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *TextResponseQuestionUpdateOne) SetQuestion(v string) *TextResponseQuestionUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *TextResponseQuestionUpdateOne) SetNillableQuestion(v *string) *TextResponseQuestionUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetReferenceAnswer sets the "reference_answer" field.
func (_u *TextResponseQuestionUpdateOne) SetReferenceAnswer(v string) *TextResponseQuestionUpdateOne {
	_u.mutation.SetReferenceAnswer(v)
	return _u
}

// SetNillableReferenceAnswer sets the "reference_answer" field if the given value is not nil.
func (_u *TextResponseQuestionUpdateOne) SetNillableReferenceAnswer(v *string) *TextResponseQuestionUpdateOne {
	if v != nil {
		_u.SetReferenceAnswer(*v)
	}
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *TextResponseQuestionUpdateOne) SetLesson(v *Lesson) *TextResponseQuestionUpdateOne {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the TextResponseQuestionMutation object of the builder.
func (_u *TextResponseQuestionUpdateOne) Mutation() *TextResponseQuestionMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *TextResponseQuestionUpdateOne) ClearLesson() *TextResponseQuestionUpdateOne {
	_u.mutation.ClearLesson()
	return _u
}

// Where appends a list predicates to the TextResponseQuestionUpdate builder.
func (_u *TextResponseQuestionUpdateOne) Where(ps ...predicate.TextResponseQuestion) *TextResponseQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TextResponseQuestionUpdateOne) Select(field string, fields ...string) *TextResponseQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TextResponseQuestion entity.
func (_u *TextResponseQuestionUpdateOne) Save(ctx context.Context) (*TextResponseQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TextResponseQuestionUpdateOne) SaveX(ctx context.Context) *TextResponseQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TextResponseQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TextResponseQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TextResponseQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := textresponsequestion.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "TextResponseQuestion.number": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TextResponseQuestion.lesson"`)
	}
	return nil
}

func (_u *TextResponseQuestionUpdateOne) sqlSave(ctx context.Context) (_node *TextResponseQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(textresponsequestion.Table, textresponsequestion.Columns, sqlgraph.NewFieldSpec(textresponsequestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TextResponseQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, textresponsequestion.FieldID)
		for _, f := range fields {
			if !textresponsequestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != textresponsequestion.FieldID {
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
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(textresponsequestion.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(textresponsequestion.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(textresponsequestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferenceAnswer(); ok {
		_spec.SetField(textresponsequestion.FieldReferenceAnswer, field.TypeString, value)
	}
	if _u.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   textresponsequestion.LessonTable,
			Columns: []string{textresponsequestion.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   textresponsequestion.LessonTable,
			Columns: []string{textresponsequestion.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TextResponseQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{textresponsequestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
