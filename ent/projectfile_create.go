// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/project"
	"github.com/abhisek/coursegen/ent/projectfile"
)

// ProjectFileCreate is the builder for creating a ProjectFile entity.
type ProjectFileCreate struct {
	config
	mutation *ProjectFileMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *ProjectFileCreate) SetProjectID(v int) *ProjectFileCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *ProjectFileCreate) SetPath(v string) *ProjectFileCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ProjectFileCreate) SetContent(v string) *ProjectFileCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *ProjectFileCreate) SetNillableContent(v *string) *ProjectFileCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ProjectFileCreate) SetProject(v *Project) *ProjectFileCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ProjectFileMutation object of the builder.
func (_c *ProjectFileCreate) Mutation() *ProjectFileMutation {
	return _c.mutation
}

// Save creates the ProjectFile in the database.
func (_c *ProjectFileCreate) Save(ctx context.Context) (*ProjectFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectFileCreate) SaveX(ctx context.Context) *ProjectFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectFileCreate) defaults() {
	if _, ok := _c.mutation.Content(); !ok {
		v := projectfile.DefaultContent
		_c.mutation.SetContent(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectFileCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ProjectFile.project_id"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "ProjectFile.path"`)}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := projectfile.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "ProjectFile.path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ProjectFile.content"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "ProjectFile.project"`)}
	}
	return nil
}

func (_c *ProjectFileCreate) sqlSave(ctx context.Context) (*ProjectFile, error) {
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

func (_c *ProjectFileCreate) createSpec() (*ProjectFile, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projectfile.Table, sqlgraph.NewFieldSpec(projectfile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(projectfile.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(projectfile.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   projectfile.ProjectTable,
			Columns: []string{projectfile.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProjectFileCreateBulk is the builder for creating many ProjectFile entities in bulk.
type ProjectFileCreateBulk struct {
	config
	err      error
	builders []*ProjectFileCreate
}

// Save creates the ProjectFile entities in the database.
func (_c *ProjectFileCreateBulk) Save(ctx context.Context) ([]*ProjectFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectFileMutation)
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
func (_c *ProjectFileCreateBulk) SaveX(ctx context.Context) []*ProjectFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
