package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MonitoringProcess holds the schema definition for the MonitoringProcess
// entity — one continuously running monitoring pipeline instance.
type MonitoringProcess struct {
	ent.Schema
}

// Fields of the MonitoringProcess.
func (MonitoringProcess) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("process_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("name"),
		field.String("description").
			Optional(),
		field.String("llm_provider_id"),

		// Discovery filters
		field.Strings("tab_filters").
			Optional().
			Comment("myMoment tabs to scan, empty means default tab"),
		field.String("category_filter").
			Optional().
			Nillable(),
		field.Strings("keyword_filters").
			Optional(),

		field.Bool("generate_only").
			Default(false),
		field.Int("max_duration_minutes").
			Positive(),

		// Lifecycle
		field.Enum("status").
			Values("created", "running", "stopped", "completed", "failed").
			Default("created"),
		field.String("stop_reason").
			Optional().
			Nillable().
			Comment("'timeout' or 'manual'"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("started_at + max_duration_minutes while running"),
		field.Time("stopped_at").
			Optional().
			Nillable(),

		// Broker coordination: stage name -> in-flight task id.
		field.JSON("stage_task_ids", map[string]string{}).
			Optional(),

		// Pipeline counters (atomic Add* arithmetic, never read-modify-write)
		field.Int("articles_discovered").
			Default(0),
		field.Int("articles_prepared").
			Default(0),
		field.Int("comments_generated").
			Default(0),
		field.Int("comments_posted").
			Default(0),
		field.Int("errors_discovery").
			Default(0),
		field.Int("errors_preparation").
			Default(0),
		field.Int("errors_generation").
			Default(0),
		field.Int("errors_posting").
			Default(0),

		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the MonitoringProcess.
func (MonitoringProcess) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("processes").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("credentials", UpstreamCredential.Type),
		edge.To("templates", PromptTemplate.Type),
		edge.To("work_records", WorkRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("stage_tasks", StageTask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the MonitoringProcess.
func (MonitoringProcess) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),
		index.Fields("user_id", "status"),
		index.Fields("status", "expires_at"),
	}
}
