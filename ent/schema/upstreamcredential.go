package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UpstreamCredential holds a myMoment login owned by a user.
// The platform password is stored encrypted; plaintext exists only
// transiently inside the crypto service boundary.
type UpstreamCredential struct {
	ent.Schema
}

// Fields of the UpstreamCredential.
func (UpstreamCredential) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("credential_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("display_name"),
		field.String("username"),
		field.String("password_encrypted").
			Sensitive().
			Comment("AES-GCM token, never plaintext"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_used_at").
			Optional().
			Nillable(),
	}
}

// Edges of the UpstreamCredential.
func (UpstreamCredential) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("credentials").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.From("processes", MonitoringProcess.Type).
			Ref("credentials"),
	}
}

// Indexes of the UpstreamCredential.
func (UpstreamCredential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "is_active"),
	}
}
