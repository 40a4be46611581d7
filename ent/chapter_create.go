// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/chapter"
	"github.com/abhisek/coursegen/ent/coursegeneration"
	"github.com/abhisek/coursegen/ent/lesson"
)

// ChapterCreate is the builder for creating a Chapter entity.
type ChapterCreate struct {
	config
	mutation *ChapterMutation
	hooks    []Hook
}

// SetCourseGenerationID sets the "course_generation_id" field.
func (_c *ChapterCreate) SetCourseGenerationID(v int) *ChapterCreate {
	_c.mutation.SetCourseGenerationID(v)
	return _c
}

// SetNumber sets the "number" field.
func (_c *ChapterCreate) SetNumber(v int) *ChapterCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ChapterCreate) SetName(v string) *ChapterCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ChapterCreate) SetDescription(v string) *ChapterCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ChapterCreate) SetNillableDescription(v *string) *ChapterCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ChapterCreate) SetDifficulty(v int) *ChapterCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ChapterCreate) SetNillableDifficulty(v *int) *ChapterCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetCourseGeneration sets the "course_generation" edge to the CourseGeneration entity.
func (_c *ChapterCreate) SetCourseGeneration(v *CourseGeneration) *ChapterCreate {
	return _c.SetCourseGenerationID(v.ID)
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_c *ChapterCreate) AddLessonIDs(ids ...int) *ChapterCreate {
	_c.mutation.AddLessonIDs(ids...)
	return _c
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_c *ChapterCreate) AddLessons(v ...*Lesson) *ChapterCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLessonIDs(ids...)
}

// Mutation returns the ChapterMutation object of the builder.
func (_c *ChapterCreate) Mutation() *ChapterMutation {
	return _c.mutation
}

// Save creates the Chapter in the database.
func (_c *ChapterCreate) Save(ctx context.Context) (*Chapter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChapterCreate) SaveX(ctx context.Context) *Chapter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChapterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChapterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChapterCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := chapter.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := chapter.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChapterCreate) check() error {
	if _, ok := _c.mutation.CourseGenerationID(); !ok {
		return &ValidationError{Name: "course_generation_id", err: errors.New(`ent: missing required field "Chapter.course_generation_id"`)}
	}
	if _, ok := _c.mutation.Number(); !ok {
		return &ValidationError{Name: "number", err: errors.New(`ent: missing required field "Chapter.number"`)}
	}
	if v, ok := _c.mutation.Number(); ok {
		if err := chapter.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Chapter.number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Chapter.name"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Chapter.description"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Chapter.difficulty"`)}
	}
	if len(_c.mutation.CourseGenerationIDs()) == 0 {
		return &ValidationError{Name: "course_generation", err: errors.New(`ent: missing required edge "Chapter.course_generation"`)}
	}
	return nil
}

func (_c *ChapterCreate) sqlSave(ctx context.Context) (*Chapter, error) {
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

func (_c *ChapterCreate) createSpec() (*Chapter, *sqlgraph.CreateSpec) {
	var (
		_node = &Chapter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chapter.Table, sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(chapter.FieldNumber, field.TypeInt, value)
		_node.Number = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(chapter.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(chapter.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(chapter.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if nodes := _c.mutation.CourseGenerationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chapter.CourseGenerationTable,
			Columns: []string{chapter.CourseGenerationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coursegeneration.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CourseGenerationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.LessonsTable,
			Columns: []string{chapter.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChapterCreateBulk is the builder for creating many Chapter entities in bulk.
type ChapterCreateBulk struct {
	config
	err      error
	builders []*ChapterCreate
}

// Save creates the Chapter entities in the database.
func (_c *ChapterCreateBulk) Save(ctx context.Context) ([]*Chapter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Chapter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChapterMutation)
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
func (_c *ChapterCreateBulk) SaveX(ctx context.Context) []*Chapter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChapterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChapterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
