package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/upstreamcredential"
	"github.com/yourmoment/yourmoment/pkg/crypto"
	"github.com/yourmoment/yourmoment/pkg/models"
)

// CredentialService manages myMoment logins. Plaintext passwords exist
// only inside Create and Update; everything past this boundary sees the
// AES-GCM token.
type CredentialService struct {
	client    *ent.Client
	encryptor *crypto.Encryptor
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(client *ent.Client, encryptor *crypto.Encryptor) *CredentialService {
	if client == nil {
		panic("NewCredentialService: client must not be nil")
	}
	if encryptor == nil {
		panic("NewCredentialService: encryptor must not be nil")
	}
	return &CredentialService{client: client, encryptor: encryptor}
}

// Create stores a new credential with the password encrypted at rest.
func (s *CredentialService) Create(ctx context.Context, req models.CreateCredentialRequest) (*ent.UpstreamCredential, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, NewValidationError("username", "username is required")
	}
	if req.Password == "" {
		return nil, NewValidationError("password", "password is required")
	}
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = req.Username
	}

	encrypted, err := s.encryptor.Encrypt(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt password: %w", err)
	}

	cred, err := s.client.UpstreamCredential.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetDisplayName(displayName).
		SetUsername(req.Username).
		SetPasswordEncrypted(encrypted).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}
	return cred, nil
}

// Get loads a credential, enforcing ownership.
func (s *CredentialService) Get(ctx context.Context, userID, credentialID string) (*ent.UpstreamCredential, error) {
	cred, err := s.client.UpstreamCredential.Get(ctx, credentialID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: credential %s", ErrNotFound, credentialID)
		}
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}
	if cred.UserID != userID {
		return nil, fmt.Errorf("%w: credential %s", ErrForbidden, credentialID)
	}
	return cred, nil
}

// List returns all credentials owned by the user, newest first.
func (s *CredentialService) List(ctx context.Context, userID string) ([]*ent.UpstreamCredential, error) {
	creds, err := s.client.UpstreamCredential.Query().
		Where(upstreamcredential.UserIDEQ(userID)).
		Order(ent.Desc(upstreamcredential.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	return creds, nil
}

// Update applies the non-nil fields of the request. A new password is
// re-encrypted before it is stored.
func (s *CredentialService) Update(ctx context.Context, userID, credentialID string, req models.UpdateCredentialRequest) (*ent.UpstreamCredential, error) {
	cred, err := s.Get(ctx, userID, credentialID)
	if err != nil {
		return nil, err
	}

	update := cred.Update()
	if req.DisplayName != nil {
		update.SetDisplayName(*req.DisplayName)
	}
	if req.Username != nil {
		if strings.TrimSpace(*req.Username) == "" {
			return nil, NewValidationError("username", "username must not be empty")
		}
		update.SetUsername(*req.Username)
	}
	if req.Password != nil {
		if *req.Password == "" {
			return nil, NewValidationError("password", "password must not be empty")
		}
		encrypted, err := s.encryptor.Encrypt(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt password: %w", err)
		}
		update.SetPasswordEncrypted(encrypted)
	}
	if req.IsActive != nil {
		update.SetIsActive(*req.IsActive)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update credential: %w", err)
	}
	return updated, nil
}

// Delete removes a credential owned by the user.
func (s *CredentialService) Delete(ctx context.Context, userID, credentialID string) error {
	if _, err := s.Get(ctx, userID, credentialID); err != nil {
		return err
	}
	if err := s.client.UpstreamCredential.DeleteOneID(credentialID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
