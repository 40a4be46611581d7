// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/chapter"
	"github.com/abhisek/coursegen/ent/coursegeneration"
	"github.com/abhisek/coursegen/ent/generationlog"
)

// CourseGenerationCreate is the builder for creating a CourseGeneration entity.
type CourseGenerationCreate struct {
	config
	mutation *CourseGenerationMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *CourseGenerationCreate) SetCreateTime(v time.Time) *CourseGenerationCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *CourseGenerationCreate) SetNillableCreateTime(v *time.Time) *CourseGenerationCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *CourseGenerationCreate) SetUpdateTime(v time.Time) *CourseGenerationCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *CourseGenerationCreate) SetNillableUpdateTime(v *time.Time) *CourseGenerationCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *CourseGenerationCreate) SetPrompt(v string) *CourseGenerationCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetExperienceLevel sets the "experience_level" field.
func (_c *CourseGenerationCreate) SetExperienceLevel(v string) *CourseGenerationCreate {
	_c.mutation.SetExperienceLevel(v)
	return _c
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_c *CourseGenerationCreate) SetNillableExperienceLevel(v *string) *CourseGenerationCreate {
	if v != nil {
		_c.SetExperienceLevel(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CourseGenerationCreate) SetStatus(v coursegeneration.Status) *CourseGenerationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CourseGenerationCreate) SetNillableStatus(v *coursegeneration.Status) *CourseGenerationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalChapters sets the "total_chapters" field.
func (_c *CourseGenerationCreate) SetTotalChapters(v int) *CourseGenerationCreate {
	_c.mutation.SetTotalChapters(v)
	return _c
}

// SetNillableTotalChapters sets the "total_chapters" field if the given value is not nil.
func (_c *CourseGenerationCreate) SetNillableTotalChapters(v *int) *CourseGenerationCreate {
	if v != nil {
		_c.SetTotalChapters(*v)
	}
	return _c
}

// SetTotalLessons sets the "total_lessons" field.
func (_c *CourseGenerationCreate) SetTotalLessons(v int) *CourseGenerationCreate {
	_c.mutation.SetTotalLessons(v)
	return _c
}

// SetNillableTotalLessons sets the "total_lessons" field if the given value is not nil.
func (_c *CourseGenerationCreate) SetNillableTotalLessons(v *int) *CourseGenerationCreate {
	if v != nil {
		_c.SetTotalLessons(*v)
	}
	return _c
}

// SetCourseData sets the "course_data" field.
func (_c *CourseGenerationCreate) SetCourseData(v map[string]interface{}) *CourseGenerationCreate {
	_c.mutation.SetCourseData(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CourseGenerationCreate) SetCompletedAt(v time.Time) *CourseGenerationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CourseGenerationCreate) SetNillableCompletedAt(v *time.Time) *CourseGenerationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by IDs.
func (_c *CourseGenerationCreate) AddChapterIDs(ids ...int) *CourseGenerationCreate {
	_c.mutation.AddChapterIDs(ids...)
	return _c
}

// AddChapters adds the "chapters" edges to the Chapter entity.
func (_c *CourseGenerationCreate) AddChapters(v ...*Chapter) *CourseGenerationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChapterIDs(ids...)
}

// AddLogIDs adds the "logs" edge to the GenerationLog entity by IDs.
func (_c *CourseGenerationCreate) AddLogIDs(ids ...int) *CourseGenerationCreate {
	_c.mutation.AddLogIDs(ids...)
	return _c
}

// AddLogs adds the "logs" edges to the GenerationLog entity.
func (_c *CourseGenerationCreate) AddLogs(v ...*GenerationLog) *CourseGenerationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogIDs(ids...)
}

// Mutation returns the CourseGenerationMutation object of the builder.
func (_c *CourseGenerationCreate) Mutation() *CourseGenerationMutation {
	return _c.mutation
}

// Save creates the CourseGeneration in the database.
func (_c *CourseGenerationCreate) Save(ctx context.Context) (*CourseGeneration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseGenerationCreate) SaveX(ctx context.Context) *CourseGeneration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseGenerationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseGenerationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseGenerationCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := coursegeneration.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := coursegeneration.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.ExperienceLevel(); !ok {
		v := coursegeneration.DefaultExperienceLevel
		_c.mutation.SetExperienceLevel(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := coursegeneration.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalChapters(); !ok {
		v := coursegeneration.DefaultTotalChapters
		_c.mutation.SetTotalChapters(v)
	}
	if _, ok := _c.mutation.TotalLessons(); !ok {
		v := coursegeneration.DefaultTotalLessons
		_c.mutation.SetTotalLessons(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseGenerationCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "CourseGeneration.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "CourseGeneration.update_time"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "CourseGeneration.prompt"`)}
	}
	if _, ok := _c.mutation.ExperienceLevel(); !ok {
		return &ValidationError{Name: "experience_level", err: errors.New(`ent: missing required field "CourseGeneration.experience_level"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CourseGeneration.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := coursegeneration.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CourseGeneration.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalChapters(); !ok {
		return &ValidationError{Name: "total_chapters", err: errors.New(`ent: missing required field "CourseGeneration.total_chapters"`)}
	}
	if _, ok := _c.mutation.TotalLessons(); !ok {
		return &ValidationError{Name: "total_lessons", err: errors.New(`ent: missing required field "CourseGeneration.total_lessons"`)}
	}
	return nil
}

func (_c *CourseGenerationCreate) sqlSave(ctx context.Context) (*CourseGeneration, error) {
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

func (_c *CourseGenerationCreate) createSpec() (*CourseGeneration, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseGeneration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(coursegeneration.Table, sqlgraph.NewFieldSpec(coursegeneration.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(coursegeneration.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(coursegeneration.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(coursegeneration.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.ExperienceLevel(); ok {
		_spec.SetField(coursegeneration.FieldExperienceLevel, field.TypeString, value)
		_node.ExperienceLevel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(coursegeneration.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalChapters(); ok {
		_spec.SetField(coursegeneration.FieldTotalChapters, field.TypeInt, value)
		_node.TotalChapters = value
	}
	if value, ok := _c.mutation.TotalLessons(); ok {
		_spec.SetField(coursegeneration.FieldTotalLessons, field.TypeInt, value)
		_node.TotalLessons = value
	}
	if value, ok := _c.mutation.CourseData(); ok {
		_spec.SetField(coursegeneration.FieldCourseData, field.TypeJSON, value)
		_node.CourseData = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(coursegeneration.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ChaptersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   coursegeneration.ChaptersTable,
			Columns: []string{coursegeneration.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   coursegeneration.LogsTable,
			Columns: []string{coursegeneration.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generationlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CourseGenerationCreateBulk is the builder for creating many CourseGeneration entities in bulk.
type CourseGenerationCreateBulk struct {
	config
	err      error
	builders []*CourseGenerationCreate
}

// Save creates the CourseGeneration entities in the database.
func (_c *CourseGenerationCreateBulk) Save(ctx context.Context) ([]*CourseGeneration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourseGeneration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseGenerationMutation)
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
func (_c *CourseGenerationCreateBulk) SaveX(ctx context.Context) []*CourseGeneration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseGenerationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseGenerationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
