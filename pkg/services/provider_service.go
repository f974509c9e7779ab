package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/pkg/crypto"
	"github.com/yourmoment/yourmoment/pkg/models"
)

// ProviderService manages per-user LLM backend configurations. API keys
// are encrypted at rest the same way credential passwords are.
type ProviderService struct {
	client    *ent.Client
	encryptor *crypto.Encryptor
}

// NewProviderService creates a new ProviderService.
func NewProviderService(client *ent.Client, encryptor *crypto.Encryptor) *ProviderService {
	if client == nil {
		panic("NewProviderService: client must not be nil")
	}
	if encryptor == nil {
		panic("NewProviderService: encryptor must not be nil")
	}
	return &ProviderService{client: client, encryptor: encryptor}
}

// Create stores a new provider configuration.
func (s *ProviderService) Create(ctx context.Context, req models.CreateLLMProviderRequest) (*ent.LLMProviderConfig, error) {
	vendor := llmproviderconfig.VendorTag(strings.ToLower(strings.TrimSpace(req.VendorTag)))
	if err := llmproviderconfig.VendorTagValidator(vendor); err != nil {
		return nil, NewValidationError("vendor_tag", "vendor must be one of: openai, mistral")
	}
	if strings.TrimSpace(req.ModelName) == "" {
		return nil, NewValidationError("model_name", "model name is required")
	}
	if req.APIKey == "" {
		return nil, NewValidationError("api_key", "API key is required")
	}
	if req.Temperature < 0 || req.Temperature > 2 {
		return nil, NewValidationError("temperature", "temperature must be between 0 and 2")
	}
	if req.MaxTokens <= 0 {
		return nil, NewValidationError("max_tokens", "max tokens must be positive")
	}

	encrypted, err := s.encryptor.Encrypt(req.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt API key: %w", err)
	}

	provider, err := s.client.LLMProviderConfig.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetVendorTag(vendor).
		SetModelName(req.ModelName).
		SetAPIKeyEncrypted(encrypted).
		SetTemperature(req.Temperature).
		SetMaxTokens(req.MaxTokens).
		SetJSONMode(req.JSONMode).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider config: %w", err)
	}
	return provider, nil
}

// Get loads a provider configuration, enforcing ownership.
func (s *ProviderService) Get(ctx context.Context, userID, providerID string) (*ent.LLMProviderConfig, error) {
	provider, err := s.client.LLMProviderConfig.Get(ctx, providerID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: provider %s", ErrNotFound, providerID)
		}
		return nil, fmt.Errorf("failed to load provider config: %w", err)
	}
	if provider.UserID != userID {
		return nil, fmt.Errorf("%w: provider %s", ErrForbidden, providerID)
	}
	return provider, nil
}

// List returns all provider configurations owned by the user.
func (s *ProviderService) List(ctx context.Context, userID string) ([]*ent.LLMProviderConfig, error) {
	providers, err := s.client.LLMProviderConfig.Query().
		Where(llmproviderconfig.UserIDEQ(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider configs: %w", err)
	}
	return providers, nil
}

// Update applies the non-nil fields of the request.
func (s *ProviderService) Update(ctx context.Context, userID, providerID string, req models.UpdateLLMProviderRequest) (*ent.LLMProviderConfig, error) {
	provider, err := s.Get(ctx, userID, providerID)
	if err != nil {
		return nil, err
	}

	update := provider.Update()
	if req.ModelName != nil {
		if strings.TrimSpace(*req.ModelName) == "" {
			return nil, NewValidationError("model_name", "model name must not be empty")
		}
		update.SetModelName(*req.ModelName)
	}
	if req.APIKey != nil {
		if *req.APIKey == "" {
			return nil, NewValidationError("api_key", "API key must not be empty")
		}
		encrypted, err := s.encryptor.Encrypt(*req.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt API key: %w", err)
		}
		update.SetAPIKeyEncrypted(encrypted)
	}
	if req.Temperature != nil {
		if *req.Temperature < 0 || *req.Temperature > 2 {
			return nil, NewValidationError("temperature", "temperature must be between 0 and 2")
		}
		update.SetTemperature(*req.Temperature)
	}
	if req.MaxTokens != nil {
		if *req.MaxTokens <= 0 {
			return nil, NewValidationError("max_tokens", "max tokens must be positive")
		}
		update.SetMaxTokens(*req.MaxTokens)
	}
	if req.JSONMode != nil {
		update.SetJSONMode(*req.JSONMode)
	}
	if req.IsActive != nil {
		update.SetIsActive(*req.IsActive)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update provider config: %w", err)
	}
	return updated, nil
}

// Delete removes a provider configuration owned by the user.
func (s *ProviderService) Delete(ctx context.Context, userID, providerID string) error {
	if _, err := s.Get(ctx, userID, providerID); err != nil {
		return err
	}
	if err := s.client.LLMProviderConfig.DeleteOneID(providerID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete provider config: %w", err)
	}
	return nil
}
