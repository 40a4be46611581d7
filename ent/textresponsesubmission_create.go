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
	"github.com/abhisek/coursegen/ent/textresponsesubmission"
	"github.com/abhisek/coursegen/internal/course"
)

// TextResponseSubmissionCreate is the builder for creating a TextResponseSubmission entity.
type TextResponseSubmissionCreate struct {
	config
	mutation *TextResponseSubmissionMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *TextResponseSubmissionCreate) SetCreateTime(v time.Time) *TextResponseSubmissionCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *TextResponseSubmissionCreate) SetNillableCreateTime(v *time.Time) *TextResponseSubmissionCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *TextResponseSubmissionCreate) SetLessonID(v int) *TextResponseSubmissionCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *TextResponseSubmissionCreate) SetAnswers(v map[int]string) *TextResponseSubmissionCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetGrades sets the "grades" field.
func (_c *TextResponseSubmissionCreate) SetGrades(v map[int]course.TextGrade) *TextResponseSubmissionCreate {
	_c.mutation.SetGrades(v)
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *TextResponseSubmissionCreate) SetTotalScore(v float64) *TextResponseSubmissionCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *TextResponseSubmissionCreate) SetTotalQuestions(v int) *TextResponseSubmissionCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetFallback sets the "fallback" field.
func (_c *TextResponseSubmissionCreate) SetFallback(v bool) *TextResponseSubmissionCreate {
	_c.mutation.SetFallback(v)
	return _c
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_c *TextResponseSubmissionCreate) SetNillableFallback(v *bool) *TextResponseSubmissionCreate {
	if v != nil {
		_c.SetFallback(*v)
	}
	return _c
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_c *TextResponseSubmissionCreate) SetLesson(v *Lesson) *TextResponseSubmissionCreate {
	return _c.SetLessonID(v.ID)
}

// Mutation returns the TextResponseSubmissionMutation object of the builder.
func (_c *TextResponseSubmissionCreate) Mutation() *TextResponseSubmissionMutation {
	return _c.mutation
}

// Save creates the TextResponseSubmission in the database.
func (_c *TextResponseSubmissionCreate) Save(ctx context.Context) (*TextResponseSubmission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TextResponseSubmissionCreate) SaveX(ctx context.Context) *TextResponseSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TextResponseSubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TextResponseSubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TextResponseSubmissionCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := textresponsesubmission.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		v := textresponsesubmission.DefaultFallback
		_c.mutation.SetFallback(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TextResponseSubmissionCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "TextResponseSubmission.create_time"`)}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "TextResponseSubmission.lesson_id"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "TextResponseSubmission.answers"`)}
	}
	if _, ok := _c.mutation.Grades(); !ok {
		return &ValidationError{Name: "grades", err: errors.New(`ent: missing required field "TextResponseSubmission.grades"`)}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "TextResponseSubmission.total_score"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "TextResponseSubmission.total_questions"`)}
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		return &ValidationError{Name: "fallback", err: errors.New(`ent: missing required field "TextResponseSubmission.fallback"`)}
	}
	if len(_c.mutation.LessonIDs()) == 0 {
		return &ValidationError{Name: "lesson", err: errors.New(`ent: missing required edge "TextResponseSubmission.lesson"`)}
	}
	return nil
}

func (_c *TextResponseSubmissionCreate) sqlSave(ctx context.Context) (*TextResponseSubmission, error) {
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

func (_c *TextResponseSubmissionCreate) createSpec() (*TextResponseSubmission, *sqlgraph.CreateSpec) {
	var (
		_node = &TextResponseSubmission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(textresponsesubmission.Table, sqlgraph.NewFieldSpec(textresponsesubmission.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(textresponsesubmission.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(textresponsesubmission.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Grades(); ok {
		_spec.SetField(textresponsesubmission.FieldGrades, field.TypeJSON, value)
		_node.Grades = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(textresponsesubmission.FieldTotalScore, field.TypeFloat64, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(textresponsesubmission.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.Fallback(); ok {
		_spec.SetField(textresponsesubmission.FieldFallback, field.TypeBool, value)
		_node.Fallback = value
	}
	if nodes := _c.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   textresponsesubmission.LessonTable,
			Columns: []string{textresponsesubmission.LessonColumn},
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

// TextResponseSubmissionCreateBulk is the builder for creating many TextResponseSubmission entities in bulk.
type TextResponseSubmissionCreateBulk struct {
	config
	err      error
	builders []*TextResponseSubmissionCreate
}

// Save creates the TextResponseSubmission entities in the database.
func (_c *TextResponseSubmissionCreateBulk) Save(ctx context.Context) ([]*TextResponseSubmission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TextResponseSubmission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TextResponseSubmissionMutation)
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
func (_c *TextResponseSubmissionCreateBulk) SaveX(ctx context.Context) []*TextResponseSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TextResponseSubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TextResponseSubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
