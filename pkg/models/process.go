package models

import "github.com/yourmoment/yourmoment/ent"

// CreateProcessRequest contains fields for creating a monitoring process.
type CreateProcessRequest struct {
	UserID             string   `json:"user_id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	CredentialIDs      []string `json:"credential_ids"`
	TemplateIDs        []string `json:"template_ids"`
	LLMProviderID      string   `json:"llm_provider_id"`
	TabFilters         []string `json:"tab_filters,omitempty"`
	CategoryFilter     string   `json:"category_filter,omitempty"`
	KeywordFilters     []string `json:"keyword_filters,omitempty"`
	GenerateOnly       bool     `json:"generate_only"`
	MaxDurationMinutes int      `json:"max_duration_minutes"`
}

// UpdateProcessRequest contains updatable process fields. Only
// processes in the CREATED state may be updated.
type UpdateProcessRequest struct {
	Name               *string   `json:"name,omitempty"`
	Description        *string   `json:"description,omitempty"`
	CredentialIDs      *[]string `json:"credential_ids,omitempty"`
	TemplateIDs        *[]string `json:"template_ids,omitempty"`
	LLMProviderID      *string   `json:"llm_provider_id,omitempty"`
	TabFilters         *[]string `json:"tab_filters,omitempty"`
	CategoryFilter     *string   `json:"category_filter,omitempty"`
	KeywordFilters     *[]string `json:"keyword_filters,omitempty"`
	GenerateOnly       *bool     `json:"generate_only,omitempty"`
	MaxDurationMinutes *int      `json:"max_duration_minutes,omitempty"`
}

// ProcessResponse wraps a MonitoringProcess with optional loaded edges
type ProcessResponse struct {
	*ent.MonitoringProcess
}

// ProcessStatusResponse is the live view of one monitoring process.
type ProcessStatusResponse struct {
	ProcessID  string            `json:"process_id"`
	Status     string            `json:"status"`
	StopReason *string           `json:"stop_reason,omitempty"`
	StartedAt  *string           `json:"started_at,omitempty"`
	ExpiresAt  *string           `json:"expires_at,omitempty"`
	StoppedAt  *string           `json:"stopped_at,omitempty"`
	Counters   PipelineCounters  `json:"counters"`
	StageTasks map[string]string `json:"stage_tasks,omitempty"` // queue -> task state
}

// PipelineCounters aggregates per-process progress and error counts.
type PipelineCounters struct {
	ArticlesDiscovered int `json:"articles_discovered"`
	ArticlesPrepared   int `json:"articles_prepared"`
	CommentsGenerated  int `json:"comments_generated"`
	CommentsPosted     int `json:"comments_posted"`
	ErrorsDiscovery    int `json:"errors_discovery"`
	ErrorsPreparation  int `json:"errors_preparation"`
	ErrorsGeneration   int `json:"errors_generation"`
	ErrorsPosting      int `json:"errors_posting"`
}

// PipelineCountsResponse is the per-status breakdown of work records
// for one process.
type PipelineCountsResponse struct {
	ProcessID string         `json:"process_id"`
	ByStatus  map[string]int `json:"by_status"`
	Total     int            `json:"total"`
}
