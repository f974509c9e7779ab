package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/pkg/broker"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/crypto"
	"github.com/yourmoment/yourmoment/pkg/models"
)

// testEncryptor creates an encryptor with a throwaway key.
func testEncryptor(t *testing.T) *crypto.Encryptor {
	t.Helper()

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	enc, err := crypto.NewEncryptor(key)
	require.NoError(t, err)
	return enc
}

// testServices wires the full service layer against one test database.
type testServices struct {
	users       *UserService
	credentials *CredentialService
	providers   *ProviderService
	templates   *TemplateService
	processes   *ProcessService
	records     *RecordService
}

func setupTestServices(t *testing.T, client *ent.Client) *testServices {
	t.Helper()

	enc := testEncryptor(t)
	cfg := config.DefaultPipelineConfig()

	users := NewUserService(client)
	credentials := NewCredentialService(client, enc)
	providers := NewProviderService(client, enc)
	templates := NewTemplateService(client)
	processes := NewProcessService(client, broker.New(client), cfg, credentials, templates, providers)
	records := NewRecordService(client)

	return &testServices{
		users:       users,
		credentials: credentials,
		providers:   providers,
		templates:   templates,
		processes:   processes,
		records:     records,
	}
}

func createTestUser(t *testing.T, svc *testServices, email string) *ent.User {
	t.Helper()

	u, err := svc.users.Register(context.Background(), models.RegisterUserRequest{
		Email:    email,
		Password: "super-secret-pw",
	})
	require.NoError(t, err)
	return u
}

func createTestCredential(t *testing.T, svc *testServices, userID string) *ent.UpstreamCredential {
	t.Helper()

	cred, err := svc.credentials.Create(context.Background(), models.CreateCredentialRequest{
		UserID:      userID,
		DisplayName: "Klasse 4a",
		Username:    "klasse4a",
		Password:    "mymoment-pw",
	})
	require.NoError(t, err)
	return cred
}

func createTestProvider(t *testing.T, svc *testServices, userID string) *ent.LLMProviderConfig {
	t.Helper()

	provider, err := svc.providers.Create(context.Background(), models.CreateLLMProviderRequest{
		UserID:      userID,
		VendorTag:   "mistral",
		ModelName:   "mistral-small-latest",
		APIKey:      "sk-test",
		Temperature: 0.7,
		MaxTokens:   256,
	})
	require.NoError(t, err)
	return provider
}

func createTestTemplate(t *testing.T, svc *testServices, userID string) *ent.PromptTemplate {
	t.Helper()

	tmpl, err := svc.templates.Create(context.Background(), models.CreatePromptTemplateRequest{
		OwnerUserID:        &userID,
		Name:               "Freundlicher Kommentar",
		SystemPrompt:       "Du bist ein freundlicher Leser.",
		UserPromptTemplate: "Kommentiere: {article_title}",
	})
	require.NoError(t, err)
	return tmpl
}

// createTestProcess creates a process with fresh dependent entities.
func createTestProcess(t *testing.T, svc *testServices, userID string) *ent.MonitoringProcess {
	t.Helper()

	cred := createTestCredential(t, svc, userID)
	tmpl := createTestTemplate(t, svc, userID)
	provider := createTestProvider(t, svc, userID)

	process, err := svc.processes.Create(context.Background(), models.CreateProcessRequest{
		UserID:             userID,
		Name:               "Tiere beobachten",
		CredentialIDs:      []string{cred.ID},
		TemplateIDs:        []string{tmpl.ID},
		LLMProviderID:      provider.ID,
		MaxDurationMinutes: 60,
	})
	require.NoError(t, err)
	return process
}
