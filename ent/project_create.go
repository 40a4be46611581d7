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
	"github.com/abhisek/coursegen/ent/project"
	"github.com/abhisek/coursegen/ent/projectfile"
)

// ProjectCreate is the builder for creating a Project entity.
type ProjectCreate struct {
	config
	mutation *ProjectMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *ProjectCreate) SetCreateTime(v time.Time) *ProjectCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCreateTime(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *ProjectCreate) SetUpdateTime(v time.Time) *ProjectCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableUpdateTime(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *ProjectCreate) SetLessonID(v int) *ProjectCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ProjectCreate) SetName(v string) *ProjectCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ProjectCreate) SetDescription(v string) *ProjectCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableDescription(v *string) *ProjectCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetGradingMethod sets the "grading_method" field.
func (_c *ProjectCreate) SetGradingMethod(v project.GradingMethod) *ProjectCreate {
	_c.mutation.SetGradingMethod(v)
	return _c
}

// SetNillableGradingMethod sets the "grading_method" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableGradingMethod(v *project.GradingMethod) *ProjectCreate {
	if v != nil {
		_c.SetGradingMethod(*v)
	}
	return _c
}

// SetExpectedOutput sets the "expected_output" field.
func (_c *ProjectCreate) SetExpectedOutput(v string) *ProjectCreate {
	_c.mutation.SetExpectedOutput(v)
	return _c
}

// SetNillableExpectedOutput sets the "expected_output" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableExpectedOutput(v *string) *ProjectCreate {
	if v != nil {
		_c.SetExpectedOutput(*v)
	}
	return _c
}

// SetIsFinalProject sets the "is_final_project" field.
func (_c *ProjectCreate) SetIsFinalProject(v bool) *ProjectCreate {
	_c.mutation.SetIsFinalProject(v)
	return _c
}

// SetNillableIsFinalProject sets the "is_final_project" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableIsFinalProject(v *bool) *ProjectCreate {
	if v != nil {
		_c.SetIsFinalProject(*v)
	}
	return _c
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_c *ProjectCreate) SetLesson(v *Lesson) *ProjectCreate {
	return _c.SetLessonID(v.ID)
}

// AddFileIDs adds the "files" edge to the ProjectFile entity by IDs.
func (_c *ProjectCreate) AddFileIDs(ids ...int) *ProjectCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the ProjectFile entity.
func (_c *ProjectCreate) AddFiles(v ...*ProjectFile) *ProjectCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_c *ProjectCreate) Mutation() *ProjectMutation {
	return _c.mutation
}

// Save creates the Project in the database.
func (_c *ProjectCreate) Save(ctx context.Context) (*Project, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectCreate) SaveX(ctx context.Context) *Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := project.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := project.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := project.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.GradingMethod(); !ok {
		v := project.DefaultGradingMethod
		_c.mutation.SetGradingMethod(v)
	}
	if _, ok := _c.mutation.ExpectedOutput(); !ok {
		v := project.DefaultExpectedOutput
		_c.mutation.SetExpectedOutput(v)
	}
	if _, ok := _c.mutation.IsFinalProject(); !ok {
		v := project.DefaultIsFinalProject
		_c.mutation.SetIsFinalProject(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "Project.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "Project.update_time"`)}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "Project.lesson_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Project.name"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Project.description"`)}
	}
	if _, ok := _c.mutation.GradingMethod(); !ok {
		return &ValidationError{Name: "grading_method", err: errors.New(`ent: missing required field "Project.grading_method"`)}
	}
	if v, ok := _c.mutation.GradingMethod(); ok {
		if err := project.GradingMethodValidator(v); err != nil {
			return &ValidationError{Name: "grading_method", err: fmt.Errorf(`ent: validator failed for field "Project.grading_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpectedOutput(); !ok {
		return &ValidationError{Name: "expected_output", err: errors.New(`ent: missing required field "Project.expected_output"`)}
	}
	if _, ok := _c.mutation.IsFinalProject(); !ok {
		return &ValidationError{Name: "is_final_project", err: errors.New(`ent: missing required field "Project.is_final_project"`)}
	}
	if len(_c.mutation.LessonIDs()) == 0 {
		return &ValidationError{Name: "lesson", err: errors.New(`ent: missing required edge "Project.lesson"`)}
	}
	return nil
}

func (_c *ProjectCreate) sqlSave(ctx context.Context) (*Project, error) {
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

func (_c *ProjectCreate) createSpec() (*Project, *sqlgraph.CreateSpec) {
	var (
		_node = &Project{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(project.Table, sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(project.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(project.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(project.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.GradingMethod(); ok {
		_spec.SetField(project.FieldGradingMethod, field.TypeEnum, value)
		_node.GradingMethod = value
	}
	if value, ok := _c.mutation.ExpectedOutput(); ok {
		_spec.SetField(project.FieldExpectedOutput, field.TypeString, value)
		_node.ExpectedOutput = value
	}
	if value, ok := _c.mutation.IsFinalProject(); ok {
		_spec.SetField(project.FieldIsFinalProject, field.TypeBool, value)
		_node.IsFinalProject = value
	}
	if nodes := _c.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   project.LessonTable,
			Columns: []string{project.LessonColumn},
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
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.FilesTable,
			Columns: []string{project.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectfile.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProjectCreateBulk is the builder for creating many Project entities in bulk.
type ProjectCreateBulk struct {
	config
	err      error
	builders []*ProjectCreate
}

// Save creates the Project entities in the database.
func (_c *ProjectCreateBulk) Save(ctx context.Context) ([]*Project, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Project, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectMutation)
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
func (_c *ProjectCreateBulk) SaveX(ctx context.Context) []*Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
