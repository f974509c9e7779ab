package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/pkg/models"
)

// TemplateService manages prompt templates. System templates (no owner)
// are visible to everyone but mutable by no one through this service.
type TemplateService struct {
	client *ent.Client
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(client *ent.Client) *TemplateService {
	if client == nil {
		panic("NewTemplateService: client must not be nil")
	}
	return &TemplateService{client: client}
}

// Create stores a new prompt template. A nil OwnerUserID creates a
// system template; the API layer never exposes that path.
func (s *TemplateService) Create(ctx context.Context, req models.CreatePromptTemplateRequest) (*ent.PromptTemplate, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewValidationError("name", "name is required")
	}
	if strings.TrimSpace(req.UserPromptTemplate) == "" {
		return nil, NewValidationError("user_prompt_template", "user prompt template is required")
	}

	create := s.client.PromptTemplate.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetSystemPrompt(req.SystemPrompt).
		SetUserPromptTemplate(req.UserPromptTemplate).
		SetIsSystem(req.OwnerUserID == nil)
	if req.OwnerUserID != nil {
		create.SetOwnerUserID(*req.OwnerUserID)
	}

	tmpl, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return tmpl, nil
}

// Get loads a template the user is allowed to see: their own or any
// system template.
func (s *TemplateService) Get(ctx context.Context, userID, templateID string) (*ent.PromptTemplate, error) {
	tmpl, err := s.client.PromptTemplate.Get(ctx, templateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: template %s", ErrNotFound, templateID)
		}
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	if !tmpl.IsSystem && (tmpl.OwnerUserID == nil || *tmpl.OwnerUserID != userID) {
		return nil, fmt.Errorf("%w: template %s", ErrForbidden, templateID)
	}
	return tmpl, nil
}

// List returns the user's templates plus the system templates.
func (s *TemplateService) List(ctx context.Context, userID string) ([]*ent.PromptTemplate, error) {
	templates, err := s.client.PromptTemplate.Query().
		Where(prompttemplate.Or(
			prompttemplate.OwnerUserIDEQ(userID),
			prompttemplate.IsSystemEQ(true),
		)).
		Order(ent.Asc(prompttemplate.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// Update applies the non-nil fields of the request. System templates
// are read-only.
func (s *TemplateService) Update(ctx context.Context, userID, templateID string, req models.UpdatePromptTemplateRequest) (*ent.PromptTemplate, error) {
	tmpl, err := s.Get(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}
	if tmpl.IsSystem {
		return nil, fmt.Errorf("%w: system templates are read-only", ErrForbidden)
	}

	update := tmpl.Update()
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, NewValidationError("name", "name must not be empty")
		}
		update.SetName(*req.Name)
	}
	if req.SystemPrompt != nil {
		update.SetSystemPrompt(*req.SystemPrompt)
	}
	if req.UserPromptTemplate != nil {
		if strings.TrimSpace(*req.UserPromptTemplate) == "" {
			return nil, NewValidationError("user_prompt_template", "user prompt template must not be empty")
		}
		update.SetUserPromptTemplate(*req.UserPromptTemplate)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return updated, nil
}

// Delete removes one of the user's own templates.
func (s *TemplateService) Delete(ctx context.Context, userID, templateID string) error {
	tmpl, err := s.Get(ctx, userID, templateID)
	if err != nil {
		return err
	}
	if tmpl.IsSystem {
		return fmt.Errorf("%w: system templates are read-only", ErrForbidden)
	}
	if err := s.client.PromptTemplate.DeleteOneID(templateID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}
