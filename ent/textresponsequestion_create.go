// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/textresponsequestion"
)

// TextResponseQuestionCreate is the builder for creating a TextResponseQuestion entity.
type TextResponseQuestionCreate struct {
	config
	mutation *TextResponseQuestionMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *TextResponseQuestionCreate) SetCreateTime(v time.Time) *TextResponseQuestionCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *TextResponseQuestionCreate) SetNillableCreateTime(v *time.Time) *TextResponseQuestionCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *TextResponseQuestionCreate) SetLessonID(v int) *TextResponseQuestionCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetNumber sets the "number" field.
func (_c *TextResponseQuestionCreate) SetNumber(v int) *TextResponseQuestionCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *TextResponseQuestionCreate) SetQuestion(v string) *TextResponseQuestionCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetReferenceAnswer sets the "reference_answer" field.
func (_c *TextResponseQuestionCreate) SetReferenceAnswer(v string) *TextResponseQuestionCreate {
	_c.mutation.SetReferenceAnswer(v)
	return _c
}

// SetNillableReferenceAnswer sets the "reference_answer" field if the given value is not nil.
func (_c *TextResponseQuestionCreate) SetNillableReferenceAnswer(v *string) *TextResponseQuestionCreate {
	if v != nil {
		_c.SetReferenceAnswer(*v)
	}
	return _c
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_c *TextResponseQuestionCreate) SetLesson(v *Lesson) *TextResponseQuestionCreate {
	return _c.SetLessonID(v.ID)
}

// Mutation returns the TextResponseQuestionMutation object of the builder.
func (_c *TextResponseQuestionCreate) Mutation() *TextResponseQuestionMutation {
	return _c.mutation
}

// Save creates the TextResponseQuestion in the database.
func (_c *TextResponseQuestionCreate) Save(ctx context.Context) (*TextResponseQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TextResponseQuestionCreate) SaveX(ctx context.Context) *TextResponseQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TextResponseQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TextResponseQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TextResponseQuestionCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := textresponsequestion.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.ReferenceAnswer(); !ok {
		v := textresponsequestion.DefaultReferenceAnswer
		_c.mutation.SetReferenceAnswer(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TextResponseQuestionCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "TextResponseQuestion.create_time"`)}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "TextResponseQuestion.lesson_id"`)}
	}
	if _, ok := _c.mutation.Number(); !ok {
		return &ValidationError{Name: "number", err: errors.New(`ent: missing required field "TextResponseQuestion.number"`)}
	}
	if v, ok := _c.mutation.Number(); ok {
		if err := textresponsequestion.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "TextResponseQuestion.number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "TextResponseQuestion.question"`)}
	}
	if _, ok := _c.mutation.ReferenceAnswer(); !ok {
		return &ValidationError{Name: "reference_answer", err: errors.New(`ent: missing required field "TextResponseQuestion.reference_answer"`)}
	}
	if len(_c.mutation.LessonIDs()) == 0 {
		return &ValidationError{Name: "lesson", err: errors.New(`ent: missing required edge "TextResponseQuestion.lesson"`)}
	}
	return nil
}

func (_c *TextResponseQuestionCreate) sqlSave(ctx context.Context) (*TextResponseQuestion, error) {
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

func (_c *TextResponseQuestionCreate) createSpec() (*TextResponseQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &TextResponseQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(textresponsequestion.Table, sqlgraph.NewFieldSpec(textresponsequestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(textresponsequestion.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(textresponsequestion.FieldNumber, field.TypeInt, value)
		_node.Number = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(textresponsequestion.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.ReferenceAnswer(); ok {
		_spec.SetField(textresponsequestion.FieldReferenceAnswer, field.TypeString, value)
		_node.ReferenceAnswer = value
	}
	if nodes := _c.mutation.LessonIDs(); len(nodes) > 0 {
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
		_node.LessonID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TextResponseQuestionCreateBulk is the builder for creating many TextResponseQuestion entities in bulk.
type TextResponseQuestionCreateBulk struct {
	config
	err      error
	builders []*TextResponseQuestionCreate
}

// Save creates the TextResponseQuestion entities in the database.
func (_c *TextResponseQuestionCreateBulk) Save(ctx context.Context) ([]*TextResponseQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TextResponseQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TextResponseQuestionMutation)
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
func (_c *TextResponseQuestionCreateBulk) SaveX(ctx context.Context) []*TextResponseQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TextResponseQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TextResponseQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
