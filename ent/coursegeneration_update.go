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
	"github.com/abhisek/coursegen/ent/chapter"
	"github.com/abhisek/coursegen/ent/coursegeneration"
	"github.com/abhisek/coursegen/ent/generationlog"
	"github.com/abhisek/coursegen/ent/predicate"
)

// CourseGenerationUpdate is the builder for updating CourseGeneration entities.
type CourseGenerationUpdate struct {
	config
	hooks    []Hook
	mutation *CourseGenerationMutation
}

// Where appends a list predicates to the CourseGenerationUpdate builder.
func (_u *CourseGenerationUpdate) Where(ps ...predicate.CourseGeneration) *CourseGenerationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *CourseGenerationUpdate) SetUpdateTime(v time.Time) *CourseGenerationUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *CourseGenerationUpdate) SetPrompt(v string) *CourseGenerationUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *CourseGenerationUpdate) SetNillablePrompt(v *string) *CourseGenerationUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetExperienceLevel sets the "experience_level" field.
func (_u *CourseGenerationUpdate) SetExperienceLevel(v string) *CourseGenerationUpdate {
	_u.mutation.SetExperienceLevel(v)
	return _u
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_u *CourseGenerationUpdate) SetNillableExperienceLevel(v *string) *CourseGenerationUpdate {
	if v != nil {
		_u.SetExperienceLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CourseGenerationUpdate) SetStatus(v coursegeneration.Status) *CourseGenerationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CourseGenerationUpdate) SetNillableStatus(v *coursegeneration.Status) *CourseGenerationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalChapters sets the "total_chapters" field.
func (_u *CourseGenerationUpdate) SetTotalChapters(v int) *CourseGenerationUpdate {
	_u.mutation.ResetTotalChapters()
	_u.mutation.SetTotalChapters(v)
	return _u
}

// SetNillableTotalChapters sets the "total_chapters" field if the given value is not nil.
func (_u *CourseGenerationUpdate) SetNillableTotalChapters(v *int) *CourseGenerationUpdate {
	if v != nil {
		_u.SetTotalChapters(*v)
	}
	return _u
}

// AddTotalChapters adds value to the "total_chapters" field.
func (_u *CourseGenerationUpdate) AddTotalChapters(v int) *CourseGenerationUpdate {
	_u.mutation.AddTotalChapters(v)
	return _u
}

// SetTotalLessons sets the "total_lessons" field.
func (_u *CourseGenerationUpdate) SetTotalLessons(v int) *CourseGenerationUpdate {
	_u.mutation.ResetTotalLessons()
	_u.mutation.SetTotalLessons(v)
	return _u
}

// SetNillableTotalLessons sets the "total_lessons" field if the given value is not nil.
func (_u *CourseGenerationUpdate) SetNillableTotalLessons(v *int) *CourseGenerationUpdate {
	if v != nil {
		_u.SetTotalLessons(*v)
	}
	return _u
}

// AddTotalLessons adds value to the "total_lessons" field.
func (_u *CourseGenerationUpdate) AddTotalLessons(v int) *CourseGenerationUpdate {
	_u.mutation.AddTotalLessons(v)
	return _u
}

// SetCourseData sets the "course_data" field.
func (_u *CourseGenerationUpdate) SetCourseData(v map[string]interface{}) *CourseGenerationUpdate {
	_u.mutation.SetCourseData(v)
	return _u
}

// ClearCourseData clears the value of the "course_data" field.
func (_u *CourseGenerationUpdate) ClearCourseData() *CourseGenerationUpdate {
	_u.mutation.ClearCourseData()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CourseGenerationUpdate) SetCompletedAt(v time.Time) *CourseGenerationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CourseGenerationUpdate) SetNillableCompletedAt(v *time.Time) *CourseGenerationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CourseGenerationUpdate) ClearCompletedAt() *CourseGenerationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by IDs.
func (_u *CourseGenerationUpdate) AddChapterIDs(ids ...int) *CourseGenerationUpdate {
	_u.mutation.AddChapterIDs(ids...)
	return _u
}

// AddChapters adds the "chapters" edges to the Chapter entity.
func (_u *CourseGenerationUpdate) AddChapters(v ...*Chapter) *CourseGenerationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChapterIDs(ids...)
}

// AddLogIDs adds the "logs" edge to the GenerationLog entity by IDs.
func (_u *CourseGenerationUpdate) AddLogIDs(ids ...int) *CourseGenerationUpdate {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the GenerationLog entity.
func (_u *CourseGenerationUpdate) AddLogs(v ...*GenerationLog) *CourseGenerationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the CourseGenerationMutation object of the builder.
func (_u *CourseGenerationUpdate) Mutation() *CourseGenerationMutation {
	return _u.mutation
}

// ClearChapters clears all "chapters" edges to the Chapter entity.
func (_u *CourseGenerationUpdate) ClearChapters() *CourseGenerationUpdate {
	_u.mutation.ClearChapters()
	return _u
}

// RemoveChapterIDs removes the "chapters" edge to Chapter entities by IDs.
func (_u *CourseGenerationUpdate) RemoveChapterIDs(ids ...int) *CourseGenerationUpdate {
	_u.mutation.RemoveChapterIDs(ids...)
	return _u
}

// RemoveChapters removes "chapters" edges to Chapter entities.
func (_u *CourseGenerationUpdate) RemoveChapters(v ...*Chapter) *CourseGenerationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChapterIDs(ids...)
}

// ClearLogs clears all "logs" edges to the GenerationLog entity.
func (_u *CourseGenerationUpdate) ClearLogs() *CourseGenerationUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to GenerationLog entities by IDs.
func (_u *CourseGenerationUpdate) RemoveLogIDs(ids ...int) *CourseGenerationUpdate {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to GenerationLog entities.
func (_u *CourseGenerationUpdate) RemoveLogs(v ...*GenerationLog) *CourseGenerationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseGenerationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseGenerationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseGenerationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseGenerationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseGenerationUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := coursegeneration.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseGenerationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := coursegeneration.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CourseGeneration.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseGenerationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coursegeneration.Table, coursegeneration.Columns, sqlgraph.NewFieldSpec(coursegeneration.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(coursegeneration.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(coursegeneration.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceLevel(); ok {
		_spec.SetField(coursegeneration.FieldExperienceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(coursegeneration.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalChapters(); ok {
		_spec.SetField(coursegeneration.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChapters(); ok {
		_spec.AddField(coursegeneration.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalLessons(); ok {
		_spec.SetField(coursegeneration.FieldTotalLessons, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLessons(); ok {
		_spec.AddField(coursegeneration.FieldTotalLessons, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CourseData(); ok {
		_spec.SetField(coursegeneration.FieldCourseData, field.TypeJSON, value)
	}
	if _u.mutation.CourseDataCleared() {
		_spec.ClearField(coursegeneration.FieldCourseData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(coursegeneration.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(coursegeneration.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ChaptersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChaptersIDs(); len(nodes) > 0 && !_u.mutation.ChaptersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChaptersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coursegeneration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseGenerationUpdateOne is the builder for updating a single CourseGeneration entity.
type CourseGenerationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseGenerationMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *CourseGenerationUpdateOne) SetUpdateTime(v time.Time) *CourseGenerationUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *CourseGenerationUpdateOne) SetPrompt(v string) *CourseGenerationUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *CourseGenerationUpdateOne) SetNillablePrompt(v *string) *CourseGenerationUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetExperienceLevel sets the "experience_level" field.
func (_u *CourseGenerationUpdateOne) SetExperienceLevel(v string) *CourseGenerationUpdateOne {
	_u.mutation.SetExperienceLevel(v)
	return _u
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_u *CourseGenerationUpdateOne) SetNillableExperienceLevel(v *string) *CourseGenerationUpdateOne {
	if v != nil {
		_u.SetExperienceLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CourseGenerationUpdateOne) SetStatus(v coursegeneration.Status) *CourseGenerationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CourseGenerationUpdateOne) SetNillableStatus(v *coursegeneration.Status) *CourseGenerationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalChapters sets the "total_chapters" field.
func (_u *CourseGenerationUpdateOne) SetTotalChapters(v int) *CourseGenerationUpdateOne {
	_u.mutation.ResetTotalChapters()
	_u.mutation.SetTotalChapters(v)
	return _u
}

// SetNillableTotalChapters sets the "total_chapters" field if the given value is not nil.
func (_u *CourseGenerationUpdateOne) SetNillableTotalChapters(v *int) *CourseGenerationUpdateOne {
	if v != nil {
		_u.SetTotalChapters(*v)
	}
	return _u
}

// AddTotalChapters adds value to the "total_chapters" field.
func (_u *CourseGenerationUpdateOne) AddTotalChapters(v int) *CourseGenerationUpdateOne {
	_u.mutation.AddTotalChapters(v)
	return _u
}

// SetTotalLessons sets the "total_lessons" field.
func (_u *CourseGenerationUpdateOne) SetTotalLessons(v int) *CourseGenerationUpdateOne {
	_u.mutation.ResetTotalLessons()
	_u.mutation.SetTotalLessons(v)
	return _u
}

// SetNillableTotalLessons sets the "total_lessons" field if the given value is not nil.
func (_u *CourseGenerationUpdateOne) SetNillableTotalLessons(v *int) *CourseGenerationUpdateOne {
	if v != nil {
		_u.SetTotalLessons(*v)
	}
	return _u
}

// AddTotalLessons adds value to the "total_lessons" field.
func (_u *CourseGenerationUpdateOne) AddTotalLessons(v int) *CourseGenerationUpdateOne {
	_u.mutation.AddTotalLessons(v)
	return _u
}

// SetCourseData sets the "course_data" field.
func (_u *CourseGenerationUpdateOne) SetCourseData(v map[string]interface{}) *CourseGenerationUpdateOne {
	_u.mutation.SetCourseData(v)
	return _u
}

// ClearCourseData clears the value of the "course_data" field.
func (_u *CourseGenerationUpdateOne) ClearCourseData() *CourseGenerationUpdateOne {
	_u.mutation.ClearCourseData()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CourseGenerationUpdateOne) SetCompletedAt(v time.Time) *CourseGenerationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CourseGenerationUpdateOne) SetNillableCompletedAt(v *time.Time) *CourseGenerationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CourseGenerationUpdateOne) ClearCompletedAt() *CourseGenerationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by IDs.
func (_u *CourseGenerationUpdateOne) AddChapterIDs(ids ...int) *CourseGenerationUpdateOne {
	_u.mutation.AddChapterIDs(ids...)
	return _u
}

// AddChapters adds the "chapters" edges to the Chapter entity.
func (_u *CourseGenerationUpdateOne) AddChapters(v ...*Chapter) *CourseGenerationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChapterIDs(ids...)
}

// AddLogIDs adds the "logs" edge to the GenerationLog entity by IDs.
func (_u *CourseGenerationUpdateOne) AddLogIDs(ids ...int) *CourseGenerationUpdateOne {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the GenerationLog entity.
func (_u *CourseGenerationUpdateOne) AddLogs(v ...*GenerationLog) *CourseGenerationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the CourseGenerationMutation object of the builder.
func (_u *CourseGenerationUpdateOne) Mutation() *CourseGenerationMutation {
	return _u.mutation
}

// ClearChapters clears all "chapters" edges to the Chapter entity.
func (_u *CourseGenerationUpdateOne) ClearChapters() *CourseGenerationUpdateOne {
	_u.mutation.ClearChapters()
	return _u
}

// RemoveChapterIDs removes the "chapters" edge to Chapter entities by IDs.
func (_u *CourseGenerationUpdateOne) RemoveChapterIDs(ids ...int) *CourseGenerationUpdateOne {
	_u.mutation.RemoveChapterIDs(ids...)
	return _u
}

// RemoveChapters removes "chapters" edges to Chapter entities.
func (_u *CourseGenerationUpdateOne) RemoveChapters(v ...*Chapter) *CourseGenerationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChapterIDs(ids...)
}

// ClearLogs clears all "logs" edges to the GenerationLog entity.
func (_u *CourseGenerationUpdateOne) ClearLogs() *CourseGenerationUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to GenerationLog entities by IDs.
func (_u *CourseGenerationUpdateOne) RemoveLogIDs(ids ...int) *CourseGenerationUpdateOne {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to GenerationLog entities.
func (_u *CourseGenerationUpdateOne) RemoveLogs(v ...*GenerationLog) *CourseGenerationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Where appends a list predicates to the CourseGenerationUpdate builder.
func (_u *CourseGenerationUpdateOne) Where(ps ...predicate.CourseGeneration) *CourseGenerationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseGenerationUpdateOne) Select(field string, fields ...string) *CourseGenerationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseGeneration entity.
func (_u *CourseGenerationUpdateOne) Save(ctx context.Context) (*CourseGeneration, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseGenerationUpdateOne) SaveX(ctx context.Context) *CourseGeneration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseGenerationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseGenerationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseGenerationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := coursegeneration.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseGenerationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := coursegeneration.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CourseGeneration.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseGenerationUpdateOne) sqlSave(ctx context.Context) (_node *CourseGeneration, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coursegeneration.Table, coursegeneration.Columns, sqlgraph.NewFieldSpec(coursegeneration.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseGeneration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coursegeneration.FieldID)
		for _, f := range fields {
			if !coursegeneration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coursegeneration.FieldID {
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
		_spec.SetField(coursegeneration.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(coursegeneration.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceLevel(); ok {
		_spec.SetField(coursegeneration.FieldExperienceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(coursegeneration.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalChapters(); ok {
		_spec.SetField(coursegeneration.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChapters(); ok {
		_spec.AddField(coursegeneration.FieldTotalChapters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalLessons(); ok {
		_spec.SetField(coursegeneration.FieldTotalLessons, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLessons(); ok {
		_spec.AddField(coursegeneration.FieldTotalLessons, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CourseData(); ok {
		_spec.SetField(coursegeneration.FieldCourseData, field.TypeJSON, value)
	}
	if _u.mutation.CourseDataCleared() {
		_spec.ClearField(coursegeneration.FieldCourseData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(coursegeneration.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(coursegeneration.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ChaptersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChaptersIDs(); len(nodes) > 0 && !_u.mutation.ChaptersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChaptersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CourseGeneration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coursegeneration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
