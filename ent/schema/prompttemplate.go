package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptTemplate holds the schema definition for the PromptTemplate entity.
// System templates have no owner and are visible to every user.
type PromptTemplate struct {
	ent.Schema
}

// Fields of the PromptTemplate.
func (PromptTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("template_id").
			Unique().
			Immutable(),
		field.String("owner_user_id").
			Optional().
			Nillable().
			Comment("nil for system templates"),
		field.String("name"),
		field.Text("system_prompt"),
		field.Text("user_prompt_template").
			Comment("Supports {article_title|article_author|article_content|article_raw_html|article_excerpt|article_category|current_date|user_nickname}"),
		field.Bool("is_system").
			Default(false),
	}
}

// Edges of the PromptTemplate.
func (PromptTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("templates").
			Field("owner_user_id").
			Unique(),
		edge.From("processes", MonitoringProcess.Type).
			Ref("templates"),
	}
}

// Indexes of the PromptTemplate.
func (PromptTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_user_id"),
		index.Fields("is_system"),
	}
}
