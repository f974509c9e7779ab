package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Users are the scope boundary for credentials, providers, templates
// and monitoring processes.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("email").
			Unique(),
		field.String("password_hash").
			Sensitive(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("credentials", UpstreamCredential.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_providers", LLMProviderConfig.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("templates", PromptTemplate.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("processes", MonitoringProcess.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
