// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/predicate"
	"github.com/abhisek/coursegen/ent/project"
	"github.com/abhisek/coursegen/ent/projectfile"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *ProjectUpdate) SetUpdateTime(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ProjectUpdate) SetLessonID(v int) *ProjectUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableLessonID(v *int) *ProjectUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdate) SetName(v string) *ProjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProjectUpdate) SetDescription(v string) *ProjectUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableDescription(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetGradingMethod sets the "grading_method" field.
func (_u *ProjectUpdate) SetGradingMethod(v project.GradingMethod) *ProjectUpdate {
	_u.mutation.SetGradingMethod(v)
	return _u
}

// SetNillableGradingMethod sets the "grading_method" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableGradingMethod(v *project.GradingMethod) *ProjectUpdate {
	if v != nil {
		_u.SetGradingMethod(*v)
	}
	return _u
}

// SetExpectedOutput sets the "expected_output" field.
func (_u *ProjectUpdate) SetExpectedOutput(v string) *ProjectUpdate {
	_u.mutation.SetExpectedOutput(v)
	return _u
}

// SetNillableExpectedOutput sets the "expected_output" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableExpectedOutput(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetExpectedOutput(*v)
	}
	return _u
}

// SetIsFinalProject sets the "is_final_project" field.
func (_u *ProjectUpdate) SetIsFinalProject(v bool) *ProjectUpdate {
	_u.mutation.SetIsFinalProject(v)
	return _u
}

// SetNillableIsFinalProject sets the "is_final_project" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableIsFinalProject(v *bool) *ProjectUpdate {
	if v != nil {
		_u.SetIsFinalProject(*v)
	}
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *ProjectUpdate) SetLesson(v *Lesson) *ProjectUpdate {
	return _u.SetLessonID(v.ID)
}

// AddFileIDs adds the "files" edge to the ProjectFile entity by IDs.
func (_u *ProjectUpdate) AddFileIDs(ids ...int) *ProjectUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the ProjectFile entity.
func (_u *ProjectUpdate) AddFiles(v ...*ProjectFile) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *ProjectUpdate) ClearLesson() *ProjectUpdate {
	_u.mutation.ClearLesson()
	return _u
}

// ClearFiles clears all "files" edges to the ProjectFile entity.
func (_u *ProjectUpdate) ClearFiles() *ProjectUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to ProjectFile entities by IDs.
func (_u *ProjectUpdate) RemoveFileIDs(ids ...int) *ProjectUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to ProjectFile entities.
func (_u *ProjectUpdate) RemoveFiles(v ...*ProjectFile) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := project.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.GradingMethod(); ok {
		if err := project.GradingMethodValidator(v); err != nil {
			return &ValidationError{Name: "grading_method", err: fmt.Errorf(`ent: validator failed for field "Project.grading_method": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.lesson"`)
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(project.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(project.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradingMethod(); ok {
		_spec.SetField(project.FieldGradingMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpectedOutput(); ok {
		_spec.SetField(project.FieldExpectedOutput, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsFinalProject(); ok {
		_spec.SetField(project.FieldIsFinalProject, field.TypeBool, value)
	}
	if _u.mutation.LessonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *ProjectUpdateOne) SetUpdateTime(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ProjectUpdateOne) SetLessonID(v int) *ProjectUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableLessonID(v *int) *ProjectUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdateOne) SetName(v string) *ProjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProjectUpdateOne) SetDescription(v string) *ProjectUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableDescription(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetGradingMethod sets the "grading_method" field.
func (_u *ProjectUpdateOne) SetGradingMethod(v project.GradingMethod) *ProjectUpdateOne {
	_u.mutation.SetGradingMethod(v)
	return _u
}

// SetNillableGradingMethod sets the "grading_method" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableGradingMethod(v *project.GradingMethod) *ProjectUpdateOne {
	if v != nil {
		_u.SetGradingMethod(*v)
	}
	return _u
}

// SetExpectedOutput sets the "expected_output" field.
func (_u *ProjectUpdateOne) SetExpectedOutput(v string) *ProjectUpdateOne {
	_u.mutation.SetExpectedOutput(v)
	return _u
}

// SetNillableExpectedOutput sets the "expected_output" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableExpectedOutput(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetExpectedOutput(*v)
	}
	return _u
}

// SetIsFinalProject sets the "is_final_project" field.
func (_u *ProjectUpdateOne) SetIsFinalProject(v bool) *ProjectUpdateOne {
	_u.mutation.SetIsFinalProject(v)
	return _u
}

// SetNillableIsFinalProject sets the "is_final_project" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableIsFinalProject(v *bool) *ProjectUpdateOne {
	if v != nil {
		_u.SetIsFinalProject(*v)
	}
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *ProjectUpdateOne) SetLesson(v *Lesson) *ProjectUpdateOne {
	return _u.SetLessonID(v.ID)
}

// AddFileIDs adds the "files" edge to the ProjectFile entity by IDs.
func (_u *ProjectUpdateOne) AddFileIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the ProjectFile entity.
func (_u *ProjectUpdateOne) AddFiles(v ...*ProjectFile) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *ProjectUpdateOne) ClearLesson() *ProjectUpdateOne {
	_u.mutation.ClearLesson()
	return _u
}

// ClearFiles clears all "files" edges to the ProjectFile entity.
func (_u *ProjectUpdateOne) ClearFiles() *ProjectUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to ProjectFile entities by IDs.
func (_u *ProjectUpdateOne) RemoveFileIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to ProjectFile entities.
func (_u *ProjectUpdateOne) RemoveFiles(v ...*ProjectFile) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := project.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.GradingMethod(); ok {
		if err := project.GradingMethodValidator(v); err != nil {
			return &ValidationError{Name: "grading_method", err: fmt.Errorf(`ent: validator failed for field "Project.grading_method": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.lesson"`)
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(project.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(project.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradingMethod(); ok {
		_spec.SetField(project.FieldGradingMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpectedOutput(); ok {
		_spec.SetField(project.FieldExpectedOutput, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsFinalProject(); ok {
		_spec.SetField(project.FieldIsFinalProject, field.TypeBool, value)
	}
	if _u.mutation.LessonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
