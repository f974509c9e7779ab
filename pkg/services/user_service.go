package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/user"
	"github.com/yourmoment/yourmoment/pkg/models"
)

// UserService handles account registration and authentication.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client) *UserService {
	if client == nil {
		panic("NewUserService: client must not be nil")
	}
	return &UserService{client: client}
}

// Register creates a new user account with a bcrypt password hash.
func (s *UserService) Register(ctx context.Context, req models.RegisterUserRequest) (*ent.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, NewValidationError("email", "a valid email address is required")
	}
	if len(req.Password) < 8 {
		return nil, NewValidationError("password", "password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetPasswordHash(string(hash)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: email %s", ErrAlreadyExists, email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// Authenticate verifies an email/password pair and returns the user.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(user.EmailEQ(strings.ToLower(strings.TrimSpace(email)))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Get loads a user by ID.
func (s *UserService) Get(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return u, nil
}
