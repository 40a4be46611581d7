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
	"github.com/abhisek/coursegen/ent/externalarticle"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/predicate"
)

// ExternalArticleUpdate is the builder for updating ExternalArticle entities.
type ExternalArticleUpdate struct {
	config
	hooks    []Hook
	mutation *ExternalArticleMutation
}

// Where appends a list predicates to the ExternalArticleUpdate builder.
func (_u *ExternalArticleUpdate) Where(ps ...predicate.ExternalArticle) *ExternalArticleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *ExternalArticleUpdate) SetUpdateTime(v time.Time) *ExternalArticleUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ExternalArticleUpdate) SetLessonID(v int) *ExternalArticleUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ExternalArticleUpdate) SetNillableLessonID(v *int) *ExternalArticleUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ExternalArticleUpdate) SetURL(v string) *ExternalArticleUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ExternalArticleUpdate) SetNillableURL(v *string) *ExternalArticleUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ExternalArticleUpdate) SetTitle(v string) *ExternalArticleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExternalArticleUpdate) SetNillableTitle(v *string) *ExternalArticleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ExternalArticleUpdate) SetScore(v float64) *ExternalArticleUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExternalArticleUpdate) SetNillableScore(v *float64) *ExternalArticleUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExternalArticleUpdate) AddScore(v float64) *ExternalArticleUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *ExternalArticleUpdate) SetLesson(v *Lesson) *ExternalArticleUpdate {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the ExternalArticleMutation object of the builder.
func (_u *ExternalArticleUpdate) Mutation() *ExternalArticleMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *ExternalArticleUpdate) ClearLesson() *ExternalArticleUpdate {
	_u.mutation.ClearLesson()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExternalArticleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExternalArticleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExternalArticleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExternalArticleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExternalArticleUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := externalarticle.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExternalArticleUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := externalarticle.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ExternalArticle.url": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExternalArticle.lesson"`)
	}
	return nil
}

func (_u *ExternalArticleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(externalarticle.Table, externalarticle.Columns, sqlgraph.NewFieldSpec(externalarticle.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(externalarticle.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(externalarticle.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(externalarticle.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(externalarticle.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(externalarticle.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   externalarticle.LessonTable,
			Columns: []string{externalarticle.LessonColumn},
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
			Table:   externalarticle.LessonTable,
			Columns: []string{externalarticle.LessonColumn},
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
			err = &NotFoundError{externalarticle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExternalArticleUpdateOne is the builder for updating a single ExternalArticle entity.
type ExternalArticleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExternalArticleMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *ExternalArticleUpdateOne) SetUpdateTime(v time.Time) *ExternalArticleUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ExternalArticleUpdateOne) SetLessonID(v int) *ExternalArticleUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ExternalArticleUpdateOne) SetNillableLessonID(v *int) *ExternalArticleUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ExternalArticleUpdateOne) SetURL(v string) *ExternalArticleUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ExternalArticleUpdateOne) SetNillableURL(v *string) *ExternalArticleUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ExternalArticleUpdateOne) SetTitle(v string) *ExternalArticleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExternalArticleUpdateOne) SetNillableTitle(v *string) *ExternalArticleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ExternalArticleUpdateOne) SetScore(v float64) *ExternalArticleUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExternalArticleUpdateOne) SetNillableScore(v *float64) *ExternalArticleUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExternalArticleUpdateOne) AddScore(v float64) *ExternalArticleUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *ExternalArticleUpdateOne) SetLesson(v *Lesson) *ExternalArticleUpdateOne {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the ExternalArticleMutation object of the builder.
func (_u *ExternalArticleUpdateOne) Mutation() *ExternalArticleMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *ExternalArticleUpdateOne) ClearLesson() *ExternalArticleUpdateOne {
	_u.mutation.ClearLesson()
	return _u
}

// Where appends a list predicates to the ExternalArticleUpdate builder.
func (_u *ExternalArticleUpdateOne) Where(ps ...predicate.ExternalArticle) *ExternalArticleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExternalArticleUpdateOne) Select(field string, fields ...string) *ExternalArticleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExternalArticle entity.
func (_u *ExternalArticleUpdateOne) Save(ctx context.Context) (*ExternalArticle, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExternalArticleUpdateOne) SaveX(ctx context.Context) *ExternalArticle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExternalArticleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExternalArticleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExternalArticleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := externalarticle.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExternalArticleUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := externalarticle.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ExternalArticle.url": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExternalArticle.lesson"`)
	}
	return nil
}

func (_u *ExternalArticleUpdateOne) sqlSave(ctx context.Context) (_node *ExternalArticle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(externalarticle.Table, externalarticle.Columns, sqlgraph.NewFieldSpec(externalarticle.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExternalArticle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, externalarticle.FieldID)
		for _, f := range fields {
			if !externalarticle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != externalarticle.FieldID {
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
		_spec.SetField(externalarticle.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(externalarticle.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(externalarticle.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(externalarticle.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(externalarticle.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   externalarticle.LessonTable,
			Columns: []string{externalarticle.LessonColumn},
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
			Table:   externalarticle.LessonTable,
			Columns: []string{externalarticle.LessonColumn},
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
	_node = &ExternalArticle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{externalarticle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
