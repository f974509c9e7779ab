package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/pkg/broker"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/crypto"
	"github.com/yourmoment/yourmoment/pkg/services"
	testdb "github.com/yourmoment/yourmoment/test/database"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	client := testdb.NewTestClient(t)

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	enc, err := crypto.NewEncryptor(key)
	require.NoError(t, err)

	b := broker.New(client.Client)
	credentials := services.NewCredentialService(client.Client, enc)
	providers := services.NewProviderService(client.Client, enc)
	templates := services.NewTemplateService(client.Client)
	processes := services.NewProcessService(client.Client, b, config.DefaultPipelineConfig(), credentials, templates, providers)

	return NewServer(
		config.DefaultHTTPConfig(),
		client,
		b,
		nil, // no worker pool in handler tests
		services.NewUserService(client.Client),
		credentials,
		providers,
		templates,
		processes,
		services.NewRecordService(client.Client),
	)
}

// doJSON performs a request with an optional JSON body and user header.
func doJSON(t *testing.T, s *Server, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func registerUser(t *testing.T, s *Server, email string) string {
	t.Helper()

	rec := doJSON(t, s, http.MethodPost, "/api/v1/users", "", map[string]string{
		"email":    email,
		"password": "super-secret-pw",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody(t, rec)["id"].(string)
}

func TestUserRegistrationAndLogin(t *testing.T) {
	s := setupTestServer(t)

	userID := registerUser(t, s, "api@example.ch")
	assert.NotEmpty(t, userID)

	t.Run("login with correct password", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/users/login", "", map[string]string{
			"email":    "api@example.ch",
			"password": "super-secret-pw",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, decodeBody(t, rec)["id"])
	})

	t.Run("login with wrong password", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/users/login", "", map[string]string{
			"email":    "api@example.ch",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("password hash never serialized", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/users/login", "", map[string]string{
			"email":    "api@example.ch",
			"password": "super-secret-pw",
		})
		assert.NotContains(t, rec.Body.String(), "password_hash")
	})
}

func TestRequireUserHeader(t *testing.T) {
	s := setupTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/credentials", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCredentialEndpoints(t *testing.T) {
	s := setupTestServer(t)
	userID := registerUser(t, s, "cred-api@example.ch")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/credentials", userID, map[string]string{
		"display_name": "Klasse 4a",
		"username":     "klasse4a",
		"password":     "mymoment-pw",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	credID := decodeBody(t, rec)["id"].(string)

	t.Run("encrypted password never serialized", func(t *testing.T) {
		assert.NotContains(t, rec.Body.String(), "mymoment-pw")
		assert.NotContains(t, rec.Body.String(), "password_encrypted")
	})

	t.Run("list", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/credentials", userID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var out []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Len(t, out, 1)
	})

	t.Run("foreign user gets 403", func(t *testing.T) {
		otherID := registerUser(t, s, "cred-other@example.ch")
		rec := doJSON(t, s, http.MethodGet, "/api/v1/credentials/"+credID, otherID, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodDelete, "/api/v1/credentials/"+credID, userID, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, s, http.MethodGet, "/api/v1/credentials/"+credID, userID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProcessLifecycleEndpoints(t *testing.T) {
	s := setupTestServer(t)
	userID := registerUser(t, s, "proc-api@example.ch")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/credentials", userID, map[string]string{
		"username": "klasse4a", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	credID := decodeBody(t, rec)["id"].(string)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/templates", userID, map[string]string{
		"name":                 "Standard",
		"system_prompt":        "Du bist ein freundlicher Leser.",
		"user_prompt_template": "Kommentiere: {article_title}",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	tmplID := decodeBody(t, rec)["id"].(string)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/providers", userID, map[string]any{
		"vendor_tag": "mistral", "model_name": "mistral-small-latest",
		"api_key": "sk-test", "temperature": 0.7, "max_tokens": 256,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	providerID := decodeBody(t, rec)["id"].(string)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/processes", userID, map[string]any{
		"name":                 "Tiere beobachten",
		"credential_ids":       []string{credID},
		"template_ids":         []string{tmplID},
		"llm_provider_id":      providerID,
		"max_duration_minutes": 60,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	processID := decodeBody(t, rec)["id"].(string)

	t.Run("start", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/processes/"+processID+"/start", userID, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "running", decodeBody(t, rec)["status"])
	})

	t.Run("status", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/processes/"+processID+"/status", userID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "running", body["status"])
		assert.NotNil(t, body["counters"])
	})

	t.Run("delete while running conflicts", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodDelete, "/api/v1/processes/"+processID, userID, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("stop", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/processes/"+processID+"/stop", userID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "stopped", body["status"])
		assert.Equal(t, "manual", body["stop_reason"])
	})

	t.Run("pipeline counts", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/processes/"+processID+"/pipeline-counts", userID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, processID, body["process_id"])
		assert.Equal(t, float64(0), body["total"])
	})
}

func TestHealthEndpoint(t *testing.T) {
	s := setupTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	checks := body["checks"].(map[string]any)
	assert.Contains(t, checks, "database")
}
