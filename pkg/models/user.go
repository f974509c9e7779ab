// Package models contains request/response models and business domain types.
package models

import "github.com/yourmoment/yourmoment/ent"

// RegisterUserRequest contains fields for creating a user account
type RegisterUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse wraps a User. The password hash is schema-sensitive and
// never serialized.
type UserResponse struct {
	*ent.User
}
