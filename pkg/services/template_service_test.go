package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/pkg/models"
	testdb "github.com/yourmoment/yourmoment/test/database"
)

func TestTemplateService_SystemTemplates(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	user := createTestUser(t, svc, "tmpl@example.ch")

	// A template without an owner is a system template.
	system, err := svc.templates.Create(ctx, models.CreatePromptTemplateRequest{
		Name:               "Standard",
		SystemPrompt:       "Du bist ein freundlicher Leser.",
		UserPromptTemplate: "Kommentiere: {article_title}",
	})
	require.NoError(t, err)
	assert.True(t, system.IsSystem)

	t.Run("visible to every user", func(t *testing.T) {
		got, err := svc.templates.Get(ctx, user.ID, system.ID)
		require.NoError(t, err)
		assert.Equal(t, system.ID, got.ID)
	})

	t.Run("read-only through the service", func(t *testing.T) {
		name := "Umbenannt"
		_, err := svc.templates.Update(ctx, user.ID, system.ID, models.UpdatePromptTemplateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrForbidden)

		err = svc.templates.Delete(ctx, user.ID, system.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestTemplateService_OwnTemplates(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	owner := createTestUser(t, svc, "towner@example.ch")
	other := createTestUser(t, svc, "tother@example.ch")
	tmpl := createTestTemplate(t, svc, owner.ID)

	t.Run("hidden from other users", func(t *testing.T) {
		_, err := svc.templates.Get(ctx, other.ID, tmpl.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("list includes own and system templates", func(t *testing.T) {
		_, err := svc.templates.Create(ctx, models.CreatePromptTemplateRequest{
			Name:               "System",
			UserPromptTemplate: "{article_content}",
		})
		require.NoError(t, err)

		mine, err := svc.templates.List(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		others, err := svc.templates.List(ctx, other.ID)
		require.NoError(t, err)
		assert.Len(t, others, 1, "only the system template")
	})

	t.Run("update and delete", func(t *testing.T) {
		prompt := "Neuer Prompt: {article_excerpt}"
		updated, err := svc.templates.Update(ctx, owner.ID, tmpl.ID, models.UpdatePromptTemplateRequest{
			UserPromptTemplate: &prompt,
		})
		require.NoError(t, err)
		assert.Equal(t, prompt, updated.UserPromptTemplate)

		require.NoError(t, svc.templates.Delete(ctx, owner.ID, tmpl.ID))
		_, err = svc.templates.Get(ctx, owner.ID, tmpl.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
