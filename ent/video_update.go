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
	"github.com/abhisek/coursegen/ent/video"
)

// VideoUpdate is the builder for updating Video entities.
type VideoUpdate struct {
	config
	hooks    []Hook
	mutation *VideoMutation
}

// Where appends a list predicates to the VideoUpdate builder.
func (_u *VideoUpdate) Where(ps ...predicate.Video) *VideoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *VideoUpdate) SetUpdateTime(v time.Time) *VideoUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *VideoUpdate) SetLessonID(v int) *VideoUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableLessonID(v *int) *VideoUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetVideoID sets the "video_id" field.
func (_u *VideoUpdate) SetVideoID(v string) *VideoUpdate {
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableVideoID(v *string) *VideoUpdate {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *VideoUpdate) SetTitle(v string) *VideoUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableTitle(v *string) *VideoUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *VideoUpdate) SetDescription(v string) *VideoUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableDescription(v *string) *VideoUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_u *VideoUpdate) SetThumbnailURL(v string) *VideoUpdate {
	_u.mutation.SetThumbnailURL(v)
	return _u
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableThumbnailURL(v *string) *VideoUpdate {
	if v != nil {
		_u.SetThumbnailURL(*v)
	}
	return _u
}

// SetChannelTitle sets the "channel_title" field.
func (_u *VideoUpdate) SetChannelTitle(v string) *VideoUpdate {
	_u.mutation.SetChannelTitle(v)
	return _u
}

// SetNillableChannelTitle sets the "channel_title" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableChannelTitle(v *string) *VideoUpdate {
	if v != nil {
		_u.SetChannelTitle(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *VideoUpdate) SetPublishedAt(v time.Time) *VideoUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *VideoUpdate) SetNillablePublishedAt(v *time.Time) *VideoUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *VideoUpdate) ClearPublishedAt() *VideoUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *VideoUpdate) SetVideoURL(v string) *VideoUpdate {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableVideoURL(v *string) *VideoUpdate {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// SetLikeCount sets the "like_count" field.
func (_u *VideoUpdate) SetLikeCount(v uint64) *VideoUpdate {
	_u.mutation.ResetLikeCount()
	_u.mutation.SetLikeCount(v)
	return _u
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableLikeCount(v *uint64) *VideoUpdate {
	if v != nil {
		_u.SetLikeCount(*v)
	}
	return _u
}

// AddLikeCount adds value to the "like_count" field.
func (_u *VideoUpdate) AddLikeCount(v int64) *VideoUpdate {
	_u.mutation.AddLikeCount(v)
	return _u
}

// SetViewCount sets the "view_count" field.
func (_u *VideoUpdate) SetViewCount(v uint64) *VideoUpdate {
	_u.mutation.ResetViewCount()
	_u.mutation.SetViewCount(v)
	return _u
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableViewCount(v *uint64) *VideoUpdate {
	if v != nil {
		_u.SetViewCount(*v)
	}
	return _u
}

// AddViewCount adds value to the "view_count" field.
func (_u *VideoUpdate) AddViewCount(v int64) *VideoUpdate {
	_u.mutation.AddViewCount(v)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *VideoUpdate) SetLesson(v *Lesson) *VideoUpdate {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the VideoMutation object of the builder.
func (_u *VideoUpdate) Mutation() *VideoMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *VideoUpdate) ClearLesson() *VideoUpdate {
	_u.mutation.ClearLesson()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VideoUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VideoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VideoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VideoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VideoUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := video.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VideoUpdate) check() error {
	if v, ok := _u.mutation.VideoID(); ok {
		if err := video.VideoIDValidator(v); err != nil {
			return &ValidationError{Name: "video_id", err: fmt.Errorf(`ent: validator failed for field "Video.video_id": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Video.lesson"`)
	}
	return nil
}

func (_u *VideoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(video.Table, video.Columns, sqlgraph.NewFieldSpec(video.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(video.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(video.FieldVideoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(video.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(video.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThumbnailURL(); ok {
		_spec.SetField(video.FieldThumbnailURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelTitle(); ok {
		_spec.SetField(video.FieldChannelTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(video.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(video.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(video.FieldVideoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.LikeCount(); ok {
		_spec.SetField(video.FieldLikeCount, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedLikeCount(); ok {
		_spec.AddField(video.FieldLikeCount, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.ViewCount(); ok {
		_spec.SetField(video.FieldViewCount, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedViewCount(); ok {
		_spec.AddField(video.FieldViewCount, field.TypeUint64, value)
	}
	if _u.mutation.LessonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{video.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VideoUpdateOne is the builder for updating a single Video entity.
type VideoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VideoMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *VideoUpdateOne) SetUpdateTime(v time.Time) *VideoUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *VideoUpdateOne) SetLessonID(v int) *VideoUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableLessonID(v *int) *VideoUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetVideoID sets the "video_id" field.
func (_u *VideoUpdateOne) SetVideoID(v string) *VideoUpdateOne {
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableVideoID(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *VideoUpdateOne) SetTitle(v string) *VideoUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableTitle(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *VideoUpdateOne) SetDescription(v string) *VideoUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableDescription(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_u *VideoUpdateOne) SetThumbnailURL(v string) *VideoUpdateOne {
	_u.mutation.SetThumbnailURL(v)
	return _u
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableThumbnailURL(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetThumbnailURL(*v)
	}
	return _u
}

// SetChannelTitle sets the "channel_title" field.
func (_u *VideoUpdateOne) SetChannelTitle(v string) *VideoUpdateOne {
	_u.mutation.SetChannelTitle(v)
	return _u
}

// SetNillableChannelTitle sets the "channel_title" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableChannelTitle(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetChannelTitle(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *VideoUpdateOne) SetPublishedAt(v time.Time) *VideoUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillablePublishedAt(v *time.Time) *VideoUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *VideoUpdateOne) ClearPublishedAt() *VideoUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *VideoUpdateOne) SetVideoURL(v string) *VideoUpdateOne {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableVideoURL(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// SetLikeCount sets the "like_count" field.
func (_u *VideoUpdateOne) SetLikeCount(v uint64) *VideoUpdateOne {
	_u.mutation.ResetLikeCount()
	_u.mutation.SetLikeCount(v)
	return _u
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableLikeCount(v *uint64) *VideoUpdateOne {
	if v != nil {
		_u.SetLikeCount(*v)
	}
	return _u
}

// AddLikeCount adds value to the "like_count" field.
func (_u *VideoUpdateOne) AddLikeCount(v int64) *VideoUpdateOne {
	_u.mutation.AddLikeCount(v)
	return _u
}

// SetViewCount sets the "view_count" field.
func (_u *VideoUpdateOne) SetViewCount(v uint64) *VideoUpdateOne {
	_u.mutation.ResetViewCount()
	_u.mutation.SetViewCount(v)
	return _u
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableViewCount(v *uint64) *VideoUpdateOne {
	if v != nil {
		_u.SetViewCount(*v)
	}
	return _u
}

// AddViewCount adds value to the "view_count" field.
func (_u *VideoUpdateOne) AddViewCount(v int64) *VideoUpdateOne {
	_u.mutation.AddViewCount(v)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *VideoUpdateOne) SetLesson(v *Lesson) *VideoUpdateOne {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the VideoMutation object of the builder.
func (_u *VideoUpdateOne) Mutation() *VideoMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *VideoUpdateOne) ClearLesson() *VideoUpdateOne {
	_u.mutation.ClearLesson()
	return _u
}

// Where appends a list predicates to the VideoUpdate builder.
func (_u *VideoUpdateOne) Where(ps ...predicate.Video) *VideoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VideoUpdateOne) Select(field string, fields ...string) *VideoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Video entity.
func (_u *VideoUpdateOne) Save(ctx context.Context) (*Video, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VideoUpdateOne) SaveX(ctx context.Context) *Video {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VideoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VideoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VideoUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := video.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VideoUpdateOne) check() error {
	if v, ok := _u.mutation.VideoID(); ok {
		if err := video.VideoIDValidator(v); err != nil {
			return &ValidationError{Name: "video_id", err: fmt.Errorf(`ent: validator failed for field "Video.video_id": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Video.lesson"`)
	}
	return nil
}

func (_u *VideoUpdateOne) sqlSave(ctx context.Context) (_node *Video, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(video.Table, video.Columns, sqlgraph.NewFieldSpec(video.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Video.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, video.FieldID)
		for _, f := range fields {
			if !video.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != video.FieldID {
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
		_spec.SetField(video.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(video.FieldVideoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(video.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(video.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThumbnailURL(); ok {
		_spec.SetField(video.FieldThumbnailURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelTitle(); ok {
		_spec.SetField(video.FieldChannelTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(video.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(video.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(video.FieldVideoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.LikeCount(); ok {
		_spec.SetField(video.FieldLikeCount, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedLikeCount(); ok {
		_spec.AddField(video.FieldLikeCount, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.ViewCount(); ok {
		_spec.SetField(video.FieldViewCount, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedViewCount(); ok {
		_spec.AddField(video.FieldViewCount, field.TypeUint64, value)
	}
	if _u.mutation.LessonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Video{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{video.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
