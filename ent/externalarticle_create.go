// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/externalarticle"
	"github.com/abhisek/coursegen/ent/lesson"
)

// ExternalArticleCreate is the builder for creating a ExternalArticle entity.
type ExternalArticleCreate struct {
	config
	mutation *ExternalArticleMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *ExternalArticleCreate) SetCreateTime(v time.Time) *ExternalArticleCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *ExternalArticleCreate) SetNillableCreateTime(v *time.Time) *ExternalArticleCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *ExternalArticleCreate) SetUpdateTime(v time.Time) *ExternalArticleCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *ExternalArticleCreate) SetNillableUpdateTime(v *time.Time) *ExternalArticleCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *ExternalArticleCreate) SetLessonID(v int) *ExternalArticleCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *ExternalArticleCreate) SetURL(v string) *ExternalArticleCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ExternalArticleCreate) SetTitle(v string) *ExternalArticleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ExternalArticleCreate) SetNillableTitle(v *string) *ExternalArticleCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ExternalArticleCreate) SetScore(v float64) *ExternalArticleCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ExternalArticleCreate) SetNillableScore(v *float64) *ExternalArticleCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_c *ExternalArticleCreate) SetLesson(v *Lesson) *ExternalArticleCreate {
	return _c.SetLessonID(v.ID)
}

// Mutation returns the ExternalArticleMutation object of the builder.
func (_c *ExternalArticleCreate) Mutation() *ExternalArticleMutation {
	return _c.mutation
}

// Save creates the ExternalArticle in the database.
func (_c *ExternalArticleCreate) Save(ctx context.Context) (*ExternalArticle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExternalArticleCreate) SaveX(ctx context.Context) *ExternalArticle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExternalArticleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExternalArticleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExternalArticleCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := externalarticle.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := externalarticle.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.Title(); !ok {
		v := externalarticle.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := externalarticle.DefaultScore
		_c.mutation.SetScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExternalArticleCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "ExternalArticle.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "ExternalArticle.update_time"`)}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "ExternalArticle.lesson_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "ExternalArticle.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := externalarticle.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ExternalArticle.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ExternalArticle.title"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ExternalArticle.score"`)}
	}
	if len(_c.mutation.LessonIDs()) == 0 {
		return &ValidationError{Name: "lesson", err: errors.New(`ent: missing required edge "ExternalArticle.lesson"`)}
	}
	return nil
}

func (_c *ExternalArticleCreate) sqlSave(ctx context.Context) (*ExternalArticle, error) {
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

func (_c *ExternalArticleCreate) createSpec() (*ExternalArticle, *sqlgraph.CreateSpec) {
	var (
		_node = &ExternalArticle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(externalarticle.Table, sqlgraph.NewFieldSpec(externalarticle.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(externalarticle.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(externalarticle.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(externalarticle.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(externalarticle.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(externalarticle.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if nodes := _c.mutation.LessonIDs(); len(nodes) > 0 {
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
		_node.LessonID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExternalArticleCreateBulk is the builder for creating many ExternalArticle entities in bulk.
type ExternalArticleCreateBulk struct {
	config
	err      error
	builders []*ExternalArticleCreate
}

// Save creates the ExternalArticle entities in the database.
func (_c *ExternalArticleCreateBulk) Save(ctx context.Context) ([]*ExternalArticle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExternalArticle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExternalArticleMutation)
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
func (_c *ExternalArticleCreateBulk) SaveX(ctx context.Context) []*ExternalArticle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExternalArticleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExternalArticleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
