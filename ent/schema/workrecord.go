package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkRecord is the coordination primitive of the pipeline: one row per
// (article × template × credential) carrying the article snapshot, the
// generated comment and the stage status. Workers communicate only
// through these rows.
type WorkRecord struct {
	ent.Schema
}

// Fields of the WorkRecord.
func (WorkRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("record_id").
			Unique().
			Immutable(),
		field.String("process_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("credential_id").
			Immutable(),
		field.String("template_id").
			Immutable(),
		field.String("llm_provider_id").
			Immutable(),

		// Article snapshot (metadata at discovery, content at preparation)
		field.String("upstream_article_id").
			Immutable(),
		field.String("article_title"),
		field.String("article_author").
			Optional(),
		field.String("article_category").
			Optional(),
		field.String("article_url").
			Optional(),
		field.Time("article_edited_at").
			Optional().
			Nillable(),
		field.Text("article_content").
			Optional().
			Nillable(),
		field.Text("article_raw_html").
			Optional().
			Nillable(),
		field.Time("article_published_at").
			Optional().
			Nillable(),
		field.Time("article_scraped_at").
			Optional().
			Nillable(),

		// Generated comment
		field.Text("comment_content").
			Optional().
			Nillable(),
		field.String("upstream_comment_id").
			Optional().
			Nillable().
			Comment("Deterministic idempotency marker; upstream returns no id"),
		field.String("ai_model_name").
			Optional().
			Nillable(),
		field.String("ai_vendor_tag").
			Optional().
			Nillable(),
		field.Int("generation_tokens").
			Optional().
			Nillable(),
		field.Int("generation_time_ms").
			Optional().
			Nillable(),

		// Lifecycle
		field.Enum("status").
			Values("discovered", "prepared", "generated", "posted", "failed").
			Default("discovered"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.Time("posted_at").
			Optional().
			Nillable(),
		field.Time("failed_at").
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

// Edges of the WorkRecord.
func (WorkRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("process", MonitoringProcess.Type).
			Ref("work_records").
			Field("process_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkRecord.
func (WorkRecord) Indexes() []ent.Index {
	return []ent.Index{
		// Re-discovery of a known article is a no-op.
		index.Fields("process_id", "credential_id", "template_id", "upstream_article_id").
			Unique(),
		index.Fields("process_id", "status"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
