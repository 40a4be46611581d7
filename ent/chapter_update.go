// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/chapter"
	"github.com/abhisek/coursegen/ent/coursegeneration"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/predicate"
)

// ChapterUpdate is the builder for updating Chapter entities.
type ChapterUpdate struct {
	config
	hooks    []Hook
	mutation *ChapterMutation
}

// Where appends a list predicates to the ChapterUpdate builder.
func (_u *ChapterUpdate) Where(ps ...predicate.Chapter) *ChapterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseGenerationID sets the "course_generation_id" field.
func (_u *ChapterUpdate) SetCourseGenerationID(v int) *ChapterUpdate {
	_u.mutation.SetCourseGenerationID(v)
	return _u
}

// SetNillableCourseGenerationID sets the "course_generation_id" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableCourseGenerationID(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetCourseGenerationID(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *ChapterUpdate) SetNumber(v int) *ChapterUpdate {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableNumber(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *ChapterUpdate) AddNumber(v int) *ChapterUpdate {
	_u.mutation.AddNumber(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ChapterUpdate) SetName(v string) *ChapterUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableName(v *string) *ChapterUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChapterUpdate) SetDescription(v string) *ChapterUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableDescription(v *string) *ChapterUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ChapterUpdate) SetDifficulty(v int) *ChapterUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableDifficulty(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ChapterUpdate) AddDifficulty(v int) *ChapterUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetCourseGeneration sets the "course_generation" edge to the CourseGeneration entity.
func (_u *ChapterUpdate) SetCourseGeneration(v *CourseGeneration) *ChapterUpdate {
	return _u.SetCourseGenerationID(v.ID)
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_u *ChapterUpdate) AddLessonIDs(ids ...int) *ChapterUpdate {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_u *ChapterUpdate) AddLessons(v ...*Lesson) *ChapterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// Mutation returns the ChapterMutation object of the builder.
func (_u *ChapterUpdate) Mutation() *ChapterMutation {
	return _u.mutation
}

// ClearCourseGeneration clears the "course_generation" edge to the CourseGeneration entity.
func (_u *ChapterUpdate) ClearCourseGeneration() *ChapterUpdate {
	_u.mutation.ClearCourseGeneration()
	return _u
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (_u *ChapterUpdate) ClearLessons() *ChapterUpdate {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (_u *ChapterUpdate) RemoveLessonIDs(ids ...int) *ChapterUpdate {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (_u *ChapterUpdate) RemoveLessons(v ...*Lesson) *ChapterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChapterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChapterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChapterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChapterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChapterUpdate) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := chapter.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Chapter.number": %w`, err)}
		}
	}
	if _u.mutation.CourseGenerationCleared() && len(_u.mutation.CourseGenerationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chapter.course_generation"`)
	}
	return nil
}

func (_u *ChapterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chapter.Table, chapter.Columns, sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(chapter.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(chapter.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(chapter.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(chapter.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(chapter.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(chapter.FieldDifficulty, field.TypeInt, value)
	}
	if _u.mutation.CourseGenerationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseGenerationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chapter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChapterUpdateOne is the builder for updating a single Chapter entity.
type ChapterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChapterMutation
}

// SetCourseGenerationID sets the "course_generation_id" field.
func (_u *ChapterUpdateOne) SetCourseGenerationID(v int) *ChapterUpdateOne {
	_u.mutation.SetCourseGenerationID(v)
	return _u
}

// SetNillableCourseGenerationID sets the "course_generation_id" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableCourseGenerationID(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetCourseGenerationID(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *ChapterUpdateOne) SetNumber(v int) *ChapterUpdateOne {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableNumber(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *ChapterUpdateOne) AddNumber(v int) *ChapterUpdateOne {
	_u.mutation.AddNumber(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ChapterUpdateOne) SetName(v string) *ChapterUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableName(v *string) *ChapterUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChapterUpdateOne) SetDescription(v string) *ChapterUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableDescription(v *string) *ChapterUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ChapterUpdateOne) SetDifficulty(v int) *ChapterUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableDifficulty(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ChapterUpdateOne) AddDifficulty(v int) *ChapterUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetCourseGeneration sets the "course_generation" edge to the CourseGeneration entity.
func (_u *ChapterUpdateOne) SetCourseGeneration(v *CourseGeneration) *ChapterUpdateOne {
	return _u.SetCourseGenerationID(v.ID)
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_u *ChapterUpdateOne) AddLessonIDs(ids ...int) *ChapterUpdateOne {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_u *ChapterUpdateOne) AddLessons(v ...*Lesson) *ChapterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// Mutation returns the ChapterMutation object of the builder.
func (_u *ChapterUpdateOne) Mutation() *ChapterMutation {
	return _u.mutation
}

// ClearCourseGeneration clears the "course_generation" edge to the CourseGeneration entity.
func (_u *ChapterUpdateOne) ClearCourseGeneration() *ChapterUpdateOne {
	_u.mutation.ClearCourseGeneration()
	return _u
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (_u *ChapterUpdateOne) ClearLessons() *ChapterUpdateOne {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (_u *ChapterUpdateOne) RemoveLessonIDs(ids ...int) *ChapterUpdateOne {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (_u *ChapterUpdateOne) RemoveLessons(v ...*Lesson) *ChapterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// Where appends a list predicates to the ChapterUpdate builder.
func (_u *ChapterUpdateOne) Where(ps ...predicate.Chapter) *ChapterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChapterUpdateOne) Select(field string, fields ...string) *ChapterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Chapter entity.
func (_u *ChapterUpdateOne) Save(ctx context.Context) (*Chapter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChapterUpdateOne) SaveX(ctx context.Context) *Chapter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChapterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChapterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChapterUpdateOne) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := chapter.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Chapter.number": %w`, err)}
		}
	}
	if _u.mutation.CourseGenerationCleared() && len(_u.mutation.CourseGenerationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chapter.course_generation"`)
	}
	return nil
}

func (_u *ChapterUpdateOne) sqlSave(ctx context.Context) (_node *Chapter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chapter.Table, chapter.Columns, sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Chapter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chapter.FieldID)
		for _, f := range fields {
			if !chapter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chapter.FieldID {
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
		_spec.SetField(chapter.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(chapter.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(chapter.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(chapter.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(chapter.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(chapter.FieldDifficulty, field.TypeInt, value)
	}
	if _u.mutation.CourseGenerationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseGenerationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Chapter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chapter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
