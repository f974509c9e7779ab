package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIClientVendors(t *testing.T) {
	_, err := newAPIClient(ProviderSettings{VendorTag: "openai", APIKey: "sk-test"})
	require.NoError(t, err)

	_, err = newAPIClient(ProviderSettings{VendorTag: "mistral", APIKey: "key"})
	require.NoError(t, err)

	_, err = newAPIClient(ProviderSettings{VendorTag: "anthropic", APIKey: "key"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedVendor)
}

func TestUnwrapJSONComment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain comment field", `{"comment": "Hoi! Mega cool."}`, "Hoi! Mega cool.", false},
		{"surrounding whitespace", `{"comment": "  Sali!  "}`, "Sali!", false},
		{"extra fields ignored", `{"comment": "Tschau", "confidence": 0.9}`, "Tschau", false},
		{"not json", `Hoi! Mega cool.`, "", true},
		{"missing comment field", `{"text": "Hoi"}`, "", true},
		{"empty comment", `{"comment": ""}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unwrapJSONComment(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantTransient bool
	}{
		{"rate limited", &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}, true},
		{"server error", &openai.APIError{HTTPStatusCode: http.StatusBadGateway}, true},
		{"invalid key", &openai.APIError{HTTPStatusCode: http.StatusUnauthorized}, false},
		{"bad request", &openai.APIError{HTTPStatusCode: http.StatusBadRequest}, false},
		{"network error", errors.New("connection reset"), true},
		{"context canceled", context.Canceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			require.Error(t, got)
			assert.Equal(t, tt.wantTransient, IsTransient(got))
		})
	}
}
