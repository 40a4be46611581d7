// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/coursegeneration"
	"github.com/abhisek/coursegen/ent/generationlog"
)

// GenerationLogCreate is the builder for creating a GenerationLog entity.
type GenerationLogCreate struct {
	config
	mutation *GenerationLogMutation
	hooks    []Hook
}

// SetTimestamp sets the "timestamp" field.
func (_c *GenerationLogCreate) SetTimestamp(v time.Time) *GenerationLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GenerationLogCreate) SetNillableTimestamp(v *time.Time) *GenerationLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCourseGenerationID sets the "course_generation_id" field.
func (_c *GenerationLogCreate) SetCourseGenerationID(v int) *GenerationLogCreate {
	_c.mutation.SetCourseGenerationID(v)
	return _c
}

// SetStep sets the "step" field.
func (_c *GenerationLogCreate) SetStep(v string) *GenerationLogCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GenerationLogCreate) SetStatus(v generationlog.Status) *GenerationLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *GenerationLogCreate) SetLevel(v generationlog.Level) *GenerationLogCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *GenerationLogCreate) SetNillableLevel(v *generationlog.Level) *GenerationLogCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *GenerationLogCreate) SetMessage(v string) *GenerationLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *GenerationLogCreate) SetNillableMessage(v *string) *GenerationLogCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *GenerationLogCreate) SetData(v map[string]interface{}) *GenerationLogCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetCourseGeneration sets the "course_generation" edge to the CourseGeneration entity.
func (_c *GenerationLogCreate) SetCourseGeneration(v *CourseGeneration) *GenerationLogCreate {
	return _c.SetCourseGenerationID(v.ID)
}

// Mutation returns the GenerationLogMutation object of the builder.
func (_c *GenerationLogCreate) Mutation() *GenerationLogMutation {
	return _c.mutation
}

// Save creates the GenerationLog in the database.
func (_c *GenerationLogCreate) Save(ctx context.Context) (*GenerationLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationLogCreate) SaveX(ctx context.Context) *GenerationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationLogCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := generationlog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := generationlog.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Message(); !ok {
		v := generationlog.DefaultMessage
		_c.mutation.SetMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationLogCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GenerationLog.timestamp"`)}
	}
	if _, ok := _c.mutation.CourseGenerationID(); !ok {
		return &ValidationError{Name: "course_generation_id", err: errors.New(`ent: missing required field "GenerationLog.course_generation_id"`)}
	}
	if _, ok := _c.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "GenerationLog.step"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GenerationLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := generationlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "GenerationLog.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := generationlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "GenerationLog.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "GenerationLog.message"`)}
	}
	if len(_c.mutation.CourseGenerationIDs()) == 0 {
		return &ValidationError{Name: "course_generation", err: errors.New(`ent: missing required edge "GenerationLog.course_generation"`)}
	}
	return nil
}

func (_c *GenerationLogCreate) sqlSave(ctx context.Context) (*GenerationLog, error) {
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

func (_c *GenerationLogCreate) createSpec() (*GenerationLog, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationlog.Table, sqlgraph.NewFieldSpec(generationlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(generationlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(generationlog.FieldStep, field.TypeString, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(generationlog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(generationlog.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(generationlog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(generationlog.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if nodes := _c.mutation.CourseGenerationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generationlog.CourseGenerationTable,
			Columns: []string{generationlog.CourseGenerationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coursegeneration.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CourseGenerationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GenerationLogCreateBulk is the builder for creating many GenerationLog entities in bulk.
type GenerationLogCreateBulk struct {
	config
	err      error
	builders []*GenerationLogCreate
}

// Save creates the GenerationLog entities in the database.
func (_c *GenerationLogCreateBulk) Save(ctx context.Context) ([]*GenerationLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationLogMutation)
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
func (_c *GenerationLogCreateBulk) SaveX(ctx context.Context) []*GenerationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
