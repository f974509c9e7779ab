package models

import "github.com/yourmoment/yourmoment/ent"

// CreateCredentialRequest contains fields for storing a myMoment login.
// The password is encrypted before it touches the database.
type CreateCredentialRequest struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

// UpdateCredentialRequest contains updatable credential fields.
// Nil pointers leave the field unchanged.
type UpdateCredentialRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Username    *string `json:"username,omitempty"`
	Password    *string `json:"password,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// CredentialResponse wraps an UpstreamCredential. The encrypted
// password is schema-sensitive and never serialized.
type CredentialResponse struct {
	*ent.UpstreamCredential
}
