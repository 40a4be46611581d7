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
	"github.com/abhisek/coursegen/ent/video"
)

// VideoCreate is the builder for creating a Video entity.
type VideoCreate struct {
	config
	mutation *VideoMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *VideoCreate) SetCreateTime(v time.Time) *VideoCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *VideoCreate) SetNillableCreateTime(v *time.Time) *VideoCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *VideoCreate) SetUpdateTime(v time.Time) *VideoCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *VideoCreate) SetNillableUpdateTime(v *time.Time) *VideoCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *VideoCreate) SetLessonID(v int) *VideoCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetVideoID sets the "video_id" field.
func (_c *VideoCreate) SetVideoID(v string) *VideoCreate {
	_c.mutation.SetVideoID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *VideoCreate) SetTitle(v string) *VideoCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *VideoCreate) SetDescription(v string) *VideoCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *VideoCreate) SetNillableDescription(v *string) *VideoCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_c *VideoCreate) SetThumbnailURL(v string) *VideoCreate {
	_c.mutation.SetThumbnailURL(v)
	return _c
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_c *VideoCreate) SetNillableThumbnailURL(v *string) *VideoCreate {
	if v != nil {
		_c.SetThumbnailURL(*v)
	}
	return _c
}

// SetChannelTitle sets the "channel_title" field.
func (_c *VideoCreate) SetChannelTitle(v string) *VideoCreate {
	_c.mutation.SetChannelTitle(v)
	return _c
}

// SetNillableChannelTitle sets the "channel_title" field if the given value is not nil.
func (_c *VideoCreate) SetNillableChannelTitle(v *string) *VideoCreate {
	if v != nil {
		_c.SetChannelTitle(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *VideoCreate) SetPublishedAt(v time.Time) *VideoCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *VideoCreate) SetNillablePublishedAt(v *time.Time) *VideoCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetVideoURL sets the "video_url" field.
func (_c *VideoCreate) SetVideoURL(v string) *VideoCreate {
	_c.mutation.SetVideoURL(v)
	return _c
}

// SetLikeCount sets the "like_count" field.
func (_c *VideoCreate) SetLikeCount(v uint64) *VideoCreate {
	_c.mutation.SetLikeCount(v)
	return _c
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_c *VideoCreate) SetNillableLikeCount(v *uint64) *VideoCreate {
	if v != nil {
		_c.SetLikeCount(*v)
	}
	return _c
}

// SetViewCount sets the "view_count" field.
func (_c *VideoCreate) SetViewCount(v uint64) *VideoCreate {
	_c.mutation.SetViewCount(v)
	return _c
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (_c *VideoCreate) SetNillableViewCount(v *uint64) *VideoCreate {
	if v != nil {
		_c.SetViewCount(*v)
	}
	return _c
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_c *VideoCreate) SetLesson(v *Lesson) *VideoCreate {
	return _c.SetLessonID(v.ID)
}

// Mutation returns the VideoMutation object of the builder.
func (_c *VideoCreate) Mutation() *VideoMutation {
	return _c.mutation
}

// Save creates the Video in the database.
func (_c *VideoCreate) Save(ctx context.Context) (*Video, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VideoCreate) SaveX(ctx context.Context) *Video {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VideoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VideoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VideoCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := video.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := video.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := video.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.ThumbnailURL(); !ok {
		v := video.DefaultThumbnailURL
		_c.mutation.SetThumbnailURL(v)
	}
	if _, ok := _c.mutation.ChannelTitle(); !ok {
		v := video.DefaultChannelTitle
		_c.mutation.SetChannelTitle(v)
	}
	if _, ok := _c.mutation.LikeCount(); !ok {
		v := video.DefaultLikeCount
		_c.mutation.SetLikeCount(v)
	}
	if _, ok := _c.mutation.ViewCount(); !ok {
		v := video.DefaultViewCount
		_c.mutation.SetViewCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VideoCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "Video.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "Video.update_time"`)}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "Video.lesson_id"`)}
	}
	if _, ok := _c.mutation.VideoID(); !ok {
		return &ValidationError{Name: "video_id", err: errors.New(`ent: missing required field "Video.video_id"`)}
	}
	if v, ok := _c.mutation.VideoID(); ok {
		if err := video.VideoIDValidator(v); err != nil {
			return &ValidationError{Name: "video_id", err: fmt.Errorf(`ent: validator failed for field "Video.video_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Video.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Video.description"`)}
	}
	if _, ok := _c.mutation.ThumbnailURL(); !ok {
		return &ValidationError{Name: "thumbnail_url", err: errors.New(`ent: missing required field "Video.thumbnail_url"`)}
	}
	if _, ok := _c.mutation.ChannelTitle(); !ok {
		return &ValidationError{Name: "channel_title", err: errors.New(`ent: missing required field "Video.channel_title"`)}
	}
	if _, ok := _c.mutation.VideoURL(); !ok {
		return &ValidationError{Name: "video_url", err: errors.New(`ent: missing required field "Video.video_url"`)}
	}
	if _, ok := _c.mutation.LikeCount(); !ok {
		return &ValidationError{Name: "like_count", err: errors.New(`ent: missing required field "Video.like_count"`)}
	}
	if _, ok := _c.mutation.ViewCount(); !ok {
		return &ValidationError{Name: "view_count", err: errors.New(`ent: missing required field "Video.view_count"`)}
	}
	if len(_c.mutation.LessonIDs()) == 0 {
		return &ValidationError{Name: "lesson", err: errors.New(`ent: missing required edge "Video.lesson"`)}
	}
	return nil
}

func (_c *VideoCreate) sqlSave(ctx context.Context) (*Video, error) {
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

func (_c *VideoCreate) createSpec() (*Video, *sqlgraph.CreateSpec) {
	var (
		_node = &Video{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(video.Table, sqlgraph.NewFieldSpec(video.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(video.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(video.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.VideoID(); ok {
		_spec.SetField(video.FieldVideoID, field.TypeString, value)
		_node.VideoID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(video.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(video.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ThumbnailURL(); ok {
		_spec.SetField(video.FieldThumbnailURL, field.TypeString, value)
		_node.ThumbnailURL = value
	}
	if value, ok := _c.mutation.ChannelTitle(); ok {
		_spec.SetField(video.FieldChannelTitle, field.TypeString, value)
		_node.ChannelTitle = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(video.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.VideoURL(); ok {
		_spec.SetField(video.FieldVideoURL, field.TypeString, value)
		_node.VideoURL = value
	}
	if value, ok := _c.mutation.LikeCount(); ok {
		_spec.SetField(video.FieldLikeCount, field.TypeUint64, value)
		_node.LikeCount = value
	}
	if value, ok := _c.mutation.ViewCount(); ok {
		_spec.SetField(video.FieldViewCount, field.TypeUint64, value)
		_node.ViewCount = value
	}
	if nodes := _c.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   video.LessonTable,
			Columns: []string{video.LessonColumn},
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

// VideoCreateBulk is the builder for creating many Video entities in bulk.
type VideoCreateBulk struct {
	config
	err      error
	builders []*VideoCreate
}

// Save creates the Video entities in the database.
func (_c *VideoCreateBulk) Save(ctx context.Context) ([]*Video, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Video, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VideoMutation)
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
func (_c *VideoCreateBulk) SaveX(ctx context.Context) []*Video {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VideoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VideoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
