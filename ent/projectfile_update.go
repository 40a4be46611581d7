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
	"github.com/abhisek/coursegen/ent/project"
	"github.com/abhisek/coursegen/ent/projectfile"
)

// ProjectFileUpdate is the builder for updating ProjectFile entities.
type ProjectFileUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectFileMutation
}

// Where appends a list predicates to the ProjectFileUpdate builder.
func (_u *ProjectFileUpdate) Where(ps ...predicate.ProjectFile) *ProjectFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ProjectFileUpdate) SetProjectID(v int) *ProjectFileUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ProjectFileUpdate) SetNillableProjectID(v *int) *ProjectFileUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *ProjectFileUpdate) SetPath(v string) *ProjectFileUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *ProjectFileUpdate) SetNillablePath(v *string) *ProjectFileUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ProjectFileUpdate) SetContent(v string) *ProjectFileUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ProjectFileUpdate) SetNillableContent(v *string) *ProjectFileUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ProjectFileUpdate) SetProject(v *Project) *ProjectFileUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ProjectFileMutation object of the builder.
func (_u *ProjectFileUpdate) Mutation() *ProjectFileMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ProjectFileUpdate) ClearProject() *ProjectFileUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectFileUpdate) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := projectfile.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "ProjectFile.path": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProjectFile.project"`)
	}
	return nil
}

func (_u *ProjectFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projectfile.Table, projectfile.Columns, sqlgraph.NewFieldSpec(projectfile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(projectfile.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(projectfile.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectFileUpdateOne is the builder for updating a single ProjectFile entity.
type ProjectFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectFileMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ProjectFileUpdateOne) SetProjectID(v int) *ProjectFileUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ProjectFileUpdateOne) SetNillableProjectID(v *int) *ProjectFileUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *ProjectFileUpdateOne) SetPath(v string) *ProjectFileUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *ProjectFileUpdateOne) SetNillablePath(v *string) *ProjectFileUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ProjectFileUpdateOne) SetContent(v string) *ProjectFileUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ProjectFileUpdateOne) SetNillableContent(v *string) *ProjectFileUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ProjectFileUpdateOne) SetProject(v *Project) *ProjectFileUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ProjectFileMutation object of the builder.
func (_u *ProjectFileUpdateOne) Mutation() *ProjectFileMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ProjectFileUpdateOne) ClearProject() *ProjectFileUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the ProjectFileUpdate builder.
func (_u *ProjectFileUpdateOne) Where(ps ...predicate.ProjectFile) *ProjectFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectFileUpdateOne) Select(field string, fields ...string) *ProjectFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProjectFile entity.
func (_u *ProjectFileUpdateOne) Save(ctx context.Context) (*ProjectFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectFileUpdateOne) SaveX(ctx context.Context) *ProjectFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectFileUpdateOne) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := projectfile.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "ProjectFile.path": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProjectFile.project"`)
	}
	return nil
}

func (_u *ProjectFileUpdateOne) sqlSave(ctx context.Context) (_node *ProjectFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projectfile.Table, projectfile.Columns, sqlgraph.NewFieldSpec(projectfile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProjectFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projectfile.FieldID)
		for _, f := range fields {
			if !projectfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != projectfile.FieldID {
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
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(projectfile.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(projectfile.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProjectFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
