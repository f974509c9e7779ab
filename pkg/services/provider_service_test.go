package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/pkg/models"
	testdb "github.com/yourmoment/yourmoment/test/database"
)

func TestProviderService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	user := createTestUser(t, svc, "provider@example.ch")

	t.Run("encrypts the API key at rest", func(t *testing.T) {
		provider, err := svc.providers.Create(ctx, models.CreateLLMProviderRequest{
			UserID:      user.ID,
			VendorTag:   "OpenAI",
			ModelName:   "gpt-4o-mini",
			APIKey:      "sk-live-abc",
			Temperature: 0.5,
			MaxTokens:   512,
			JSONMode:    true,
		})
		require.NoError(t, err)

		stored, err := client.LLMProviderConfig.Get(ctx, provider.ID)
		require.NoError(t, err)
		assert.Equal(t, "openai", string(stored.VendorTag), "vendor tag is normalized")
		assert.NotContains(t, stored.APIKeyEncrypted, "sk-live-abc")
		assert.True(t, stored.JSONMode)
	})

	tests := []struct {
		name string
		req  models.CreateLLMProviderRequest
	}{
		{"unknown vendor", models.CreateLLMProviderRequest{VendorTag: "anthropic", ModelName: "m", APIKey: "k", Temperature: 0.5, MaxTokens: 10}},
		{"missing model", models.CreateLLMProviderRequest{VendorTag: "openai", APIKey: "k", Temperature: 0.5, MaxTokens: 10}},
		{"missing key", models.CreateLLMProviderRequest{VendorTag: "openai", ModelName: "m", Temperature: 0.5, MaxTokens: 10}},
		{"temperature out of range", models.CreateLLMProviderRequest{VendorTag: "openai", ModelName: "m", APIKey: "k", Temperature: 3, MaxTokens: 10}},
		{"non-positive max tokens", models.CreateLLMProviderRequest{VendorTag: "openai", ModelName: "m", APIKey: "k", Temperature: 0.5}},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			tt.req.UserID = user.ID
			_, err := svc.providers.Create(ctx, tt.req)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestProviderService_UpdateAndOwnership(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	owner := createTestUser(t, svc, "powner@example.ch")
	other := createTestUser(t, svc, "pother@example.ch")
	provider := createTestProvider(t, svc, owner.ID)

	_, err := svc.providers.Get(ctx, other.ID, provider.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	newKey := "sk-rotated"
	inactive := false
	updated, err := svc.providers.Update(ctx, owner.ID, provider.ID, models.UpdateLLMProviderRequest{
		APIKey:   &newKey,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.NotEqual(t, provider.APIKeyEncrypted, updated.APIKeyEncrypted, "key re-encrypted")
}
