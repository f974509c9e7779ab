package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMProviderConfig holds per-user language-model backend configuration.
type LLMProviderConfig struct {
	ent.Schema
}

// Fields of the LLMProviderConfig.
func (LLMProviderConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("provider_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("vendor_tag").
			Values("openai", "mistral"),
		field.String("model_name"),
		field.String("api_key_encrypted").
			Sensitive().
			Comment("AES-GCM token, never plaintext"),
		field.Float("temperature").
			Default(0.7).
			Range(0, 2),
		field.Int("max_tokens").
			Default(512).
			Positive(),
		field.Bool("json_mode").
			Default(false),
		field.Bool("is_active").
			Default(true),
	}
}

// Edges of the LLMProviderConfig.
func (LLMProviderConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("llm_providers").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LLMProviderConfig.
func (LLMProviderConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
