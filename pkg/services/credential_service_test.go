package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/pkg/models"
	testdb "github.com/yourmoment/yourmoment/test/database"
)

func TestCredentialService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	user := createTestUser(t, svc, "cred@example.ch")

	t.Run("encrypts the password at rest", func(t *testing.T) {
		cred, err := svc.credentials.Create(ctx, models.CreateCredentialRequest{
			UserID:   user.ID,
			Username: "klasse4a",
			Password: "mymoment-pw",
		})
		require.NoError(t, err)

		// The stored token must not contain the plaintext.
		stored, err := client.UpstreamCredential.Get(ctx, cred.ID)
		require.NoError(t, err)
		assert.NotContains(t, stored.PasswordEncrypted, "mymoment-pw")
		assert.True(t, stored.IsActive)
		assert.Equal(t, "klasse4a", stored.DisplayName, "display name defaults to username")
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := svc.credentials.Create(ctx, models.CreateCredentialRequest{
			UserID:   user.ID,
			Password: "pw",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects empty password", func(t *testing.T) {
		_, err := svc.credentials.Create(ctx, models.CreateCredentialRequest{
			UserID:   user.ID,
			Username: "klasse4b",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestCredentialService_Ownership(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	owner := createTestUser(t, svc, "owner@example.ch")
	other := createTestUser(t, svc, "other@example.ch")
	cred := createTestCredential(t, svc, owner.ID)

	_, err := svc.credentials.Get(ctx, other.ID, cred.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.credentials.Delete(ctx, other.ID, cred.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.credentials.Get(ctx, owner.ID, cred.ID)
	assert.NoError(t, err)
}

func TestCredentialService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	user := createTestUser(t, svc, "update@example.ch")
	cred := createTestCredential(t, svc, user.ID)
	originalToken := cred.PasswordEncrypted

	newName := "Klasse 4b"
	inactive := false
	newPassword := "new-pw"
	updated, err := svc.credentials.Update(ctx, user.ID, cred.ID, models.UpdateCredentialRequest{
		DisplayName: &newName,
		Password:    &newPassword,
		IsActive:    &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "Klasse 4b", updated.DisplayName)
	assert.False(t, updated.IsActive)

	stored, err := client.UpstreamCredential.Get(ctx, cred.ID)
	require.NoError(t, err)
	assert.NotEqual(t, originalToken, stored.PasswordEncrypted, "password re-encrypted")
}

func TestCredentialService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	user := createTestUser(t, svc, "list@example.ch")
	createTestCredential(t, svc, user.ID)

	other := createTestUser(t, svc, "listother@example.ch")

	creds, err := svc.credentials.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, creds, 1)

	none, err := svc.credentials.List(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}
