package models

import "github.com/yourmoment/yourmoment/ent"

// CreatePromptTemplateRequest contains fields for creating a prompt
// template. User prompt templates may reference article placeholders
// like {article_title} and {article_content}.
type CreatePromptTemplateRequest struct {
	OwnerUserID        *string `json:"owner_user_id,omitempty"` // nil = system template
	Name               string  `json:"name"`
	SystemPrompt       string  `json:"system_prompt"`
	UserPromptTemplate string  `json:"user_prompt_template"`
}

// UpdatePromptTemplateRequest contains updatable template fields.
type UpdatePromptTemplateRequest struct {
	Name               *string `json:"name,omitempty"`
	SystemPrompt       *string `json:"system_prompt,omitempty"`
	UserPromptTemplate *string `json:"user_prompt_template,omitempty"`
}

// PromptTemplateResponse wraps a PromptTemplate
type PromptTemplateResponse struct {
	*ent.PromptTemplate
}
