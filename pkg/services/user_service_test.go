package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/pkg/models"
	testdb "github.com/yourmoment/yourmoment/test/database"
)

func TestUserService_Register(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		u, err := svc.users.Register(ctx, models.RegisterUserRequest{
			Email:    "Teacher@Example.CH",
			Password: "super-secret-pw",
		})
		require.NoError(t, err)

		assert.Equal(t, "teacher@example.ch", u.Email, "email is normalized")
		assert.NotEqual(t, "super-secret-pw", u.PasswordHash)
		assert.NotEmpty(t, u.ID)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.users.Register(ctx, models.RegisterUserRequest{
			Email:    "teacher@example.ch",
			Password: "another-pw-123",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := svc.users.Register(ctx, models.RegisterUserRequest{
			Email:    "short@example.ch",
			Password: "short",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := svc.users.Register(ctx, models.RegisterUserRequest{
			Email:    "not-an-email",
			Password: "super-secret-pw",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestUserService_Authenticate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	u := createTestUser(t, svc, "login@example.ch")

	t.Run("accepts correct password", func(t *testing.T) {
		got, err := svc.users.Authenticate(ctx, "login@example.ch", "super-secret-pw")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := svc.users.Authenticate(ctx, "login@example.ch", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		_, err := svc.users.Authenticate(ctx, "nobody@example.ch", "super-secret-pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	u := createTestUser(t, svc, "get@example.ch")

	got, err := svc.users.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	_, err = svc.users.Get(ctx, "missing-id")
	assert.True(t, errors.Is(err, ErrNotFound))
}
