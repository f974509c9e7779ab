package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageTask is the durable unit of the work broker: an enqueued stage
// execution addressable by task id. Workers claim pending tasks with
// FOR UPDATE SKIP LOCKED and mark them terminal when the stage run ends.
type StageTask struct {
	ent.Schema
}

// Fields of the StageTask.
func (StageTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.Enum("queue").
			Values("discovery", "preparation", "generation", "posting", "timeouts", "scheduler", "sessions").
			Immutable(),
		field.String("process_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "started", "retry", "success", "failure", "revoked").
			Default("pending"),
		field.Time("enqueued_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("worker_id").
			Optional().
			Nillable(),
	}
}

// Edges of the StageTask.
func (StageTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("process", MonitoringProcess.Type).
			Ref("stage_tasks").
			Field("process_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StageTask.
func (StageTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue", "status", "enqueued_at"),
		index.Fields("process_id"),
		index.Fields("status"),
	}
}
