package models

import "github.com/yourmoment/yourmoment/ent"

// CreateLLMProviderRequest contains fields for configuring an LLM backend.
type CreateLLMProviderRequest struct {
	UserID      string  `json:"user_id"`
	VendorTag   string  `json:"vendor_tag"` // "openai" or "mistral"
	ModelName   string  `json:"model_name"`
	APIKey      string  `json:"api_key"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	JSONMode    bool    `json:"json_mode"`
}

// UpdateLLMProviderRequest contains updatable provider fields.
type UpdateLLMProviderRequest struct {
	ModelName   *string  `json:"model_name,omitempty"`
	APIKey      *string  `json:"api_key,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
	JSONMode    *bool    `json:"json_mode,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// LLMProviderResponse wraps an LLMProviderConfig. The encrypted API
// key is schema-sensitive and never serialized.
type LLMProviderResponse struct {
	*ent.LLMProviderConfig
}
