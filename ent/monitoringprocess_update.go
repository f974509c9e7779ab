// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/predicate"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/stagetask"
	"github.com/yourmoment/yourmoment/ent/upstreamcredential"
	"github.com/yourmoment/yourmoment/ent/workrecord"
)

// MonitoringProcessUpdate is the builder for updating MonitoringProcess entities.
type MonitoringProcessUpdate struct {
	config
	hooks    []Hook
	mutation *MonitoringProcessMutation
}

// Where appends a list predicates to the MonitoringProcessUpdate builder.
func (_u *MonitoringProcessUpdate) Where(ps ...predicate.MonitoringProcess) *MonitoringProcessUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *MonitoringProcessUpdate) SetName(v string) *MonitoringProcessUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableName(v *string) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MonitoringProcessUpdate) SetDescription(v string) *MonitoringProcessUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableDescription(v *string) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MonitoringProcessUpdate) ClearDescription() *MonitoringProcessUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetLlmProviderID sets the "llm_provider_id" field.
func (_u *MonitoringProcessUpdate) SetLlmProviderID(v string) *MonitoringProcessUpdate {
	_u.mutation.SetLlmProviderID(v)
	return _u
}

// SetNillableLlmProviderID sets the "llm_provider_id" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableLlmProviderID(v *string) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetLlmProviderID(*v)
	}
	return _u
}

// SetTabFilters sets the "tab_filters" field.
func (_u *MonitoringProcessUpdate) SetTabFilters(v []string) *MonitoringProcessUpdate {
	_u.mutation.SetTabFilters(v)
	return _u
}

// AppendTabFilters appends value to the "tab_filters" field.
func (_u *MonitoringProcessUpdate) AppendTabFilters(v []string) *MonitoringProcessUpdate {
	_u.mutation.AppendTabFilters(v)
	return _u
}

// ClearTabFilters clears the value of the "tab_filters" field.
func (_u *MonitoringProcessUpdate) ClearTabFilters() *MonitoringProcessUpdate {
	_u.mutation.ClearTabFilters()
	return _u
}

// SetCategoryFilter sets the "category_filter" field.
func (_u *MonitoringProcessUpdate) SetCategoryFilter(v string) *MonitoringProcessUpdate {
	_u.mutation.SetCategoryFilter(v)
	return _u
}

// SetNillableCategoryFilter sets the "category_filter" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableCategoryFilter(v *string) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetCategoryFilter(*v)
	}
	return _u
}

// ClearCategoryFilter clears the value of the "category_filter" field.
func (_u *MonitoringProcessUpdate) ClearCategoryFilter() *MonitoringProcessUpdate {
	_u.mutation.ClearCategoryFilter()
	return _u
}

// SetKeywordFilters sets the "keyword_filters" field.
func (_u *MonitoringProcessUpdate) SetKeywordFilters(v []string) *MonitoringProcessUpdate {
	_u.mutation.SetKeywordFilters(v)
	return _u
}

// AppendKeywordFilters appends value to the "keyword_filters" field.
func (_u *MonitoringProcessUpdate) AppendKeywordFilters(v []string) *MonitoringProcessUpdate {
	_u.mutation.AppendKeywordFilters(v)
	return _u
}

// ClearKeywordFilters clears the value of the "keyword_filters" field.
func (_u *MonitoringProcessUpdate) ClearKeywordFilters() *MonitoringProcessUpdate {
	_u.mutation.ClearKeywordFilters()
	return _u
}

// SetGenerateOnly sets the "generate_only" field.
func (_u *MonitoringProcessUpdate) SetGenerateOnly(v bool) *MonitoringProcessUpdate {
	_u.mutation.SetGenerateOnly(v)
	return _u
}

// SetNillableGenerateOnly sets the "generate_only" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableGenerateOnly(v *bool) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetGenerateOnly(*v)
	}
	return _u
}

// SetMaxDurationMinutes sets the "max_duration_minutes" field.
func (_u *MonitoringProcessUpdate) SetMaxDurationMinutes(v int) *MonitoringProcessUpdate {
	_u.mutation.ResetMaxDurationMinutes()
	_u.mutation.SetMaxDurationMinutes(v)
	return _u
}

// SetNillableMaxDurationMinutes sets the "max_duration_minutes" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableMaxDurationMinutes(v *int) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetMaxDurationMinutes(*v)
	}
	return _u
}

// AddMaxDurationMinutes adds value to the "max_duration_minutes" field.
func (_u *MonitoringProcessUpdate) AddMaxDurationMinutes(v int) *MonitoringProcessUpdate {
	_u.mutation.AddMaxDurationMinutes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MonitoringProcessUpdate) SetStatus(v monitoringprocess.Status) *MonitoringProcessUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableStatus(v *monitoringprocess.Status) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStopReason sets the "stop_reason" field.
func (_u *MonitoringProcessUpdate) SetStopReason(v string) *MonitoringProcessUpdate {
	_u.mutation.SetStopReason(v)
	return _u
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableStopReason(v *string) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetStopReason(*v)
	}
	return _u
}

// ClearStopReason clears the value of the "stop_reason" field.
func (_u *MonitoringProcessUpdate) ClearStopReason() *MonitoringProcessUpdate {
	_u.mutation.ClearStopReason()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MonitoringProcessUpdate) SetStartedAt(v time.Time) *MonitoringProcessUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableStartedAt(v *time.Time) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *MonitoringProcessUpdate) ClearStartedAt() *MonitoringProcessUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *MonitoringProcessUpdate) SetExpiresAt(v time.Time) *MonitoringProcessUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableExpiresAt(v *time.Time) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *MonitoringProcessUpdate) ClearExpiresAt() *MonitoringProcessUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetStoppedAt sets the "stopped_at" field.
func (_u *MonitoringProcessUpdate) SetStoppedAt(v time.Time) *MonitoringProcessUpdate {
	_u.mutation.SetStoppedAt(v)
	return _u
}

// SetNillableStoppedAt sets the "stopped_at" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableStoppedAt(v *time.Time) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetStoppedAt(*v)
	}
	return _u
}

// ClearStoppedAt clears the value of the "stopped_at" field.
func (_u *MonitoringProcessUpdate) ClearStoppedAt() *MonitoringProcessUpdate {
	_u.mutation.ClearStoppedAt()
	return _u
}

// SetStageTaskIds sets the "stage_task_ids" field.
func (_u *MonitoringProcessUpdate) SetStageTaskIds(v map[string]string) *MonitoringProcessUpdate {
	_u.mutation.SetStageTaskIds(v)
	return _u
}

// ClearStageTaskIds clears the value of the "stage_task_ids" field.
func (_u *MonitoringProcessUpdate) ClearStageTaskIds() *MonitoringProcessUpdate {
	_u.mutation.ClearStageTaskIds()
	return _u
}

// SetArticlesDiscovered sets the "articles_discovered" field.
func (_u *MonitoringProcessUpdate) SetArticlesDiscovered(v int) *MonitoringProcessUpdate {
	_u.mutation.ResetArticlesDiscovered()
	_u.mutation.SetArticlesDiscovered(v)
	return _u
}

// SetNillableArticlesDiscovered sets the "articles_discovered" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableArticlesDiscovered(v *int) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetArticlesDiscovered(*v)
	}
	return _u
}

// AddArticlesDiscovered adds value to the "articles_discovered" field.
func (_u *MonitoringProcessUpdate) AddArticlesDiscovered(v int) *MonitoringProcessUpdate {
	_u.mutation.AddArticlesDiscovered(v)
	return _u
}

// SetArticlesPrepared sets the "articles_prepared" field.
func (_u *MonitoringProcessUpdate) SetArticlesPrepared(v int) *MonitoringProcessUpdate {
	_u.mutation.ResetArticlesPrepared()
	_u.mutation.SetArticlesPrepared(v)
	return _u
}

// SetNillableArticlesPrepared sets the "articles_prepared" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableArticlesPrepared(v *int) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetArticlesPrepared(*v)
	}
	return _u
}

// AddArticlesPrepared adds value to the "articles_prepared" field.
func (_u *MonitoringProcessUpdate) AddArticlesPrepared(v int) *MonitoringProcessUpdate {
	_u.mutation.AddArticlesPrepared(v)
	return _u
}

// SetCommentsGenerated sets the "comments_generated" field.
func (_u *MonitoringProcessUpdate) SetCommentsGenerated(v int) *MonitoringProcessUpdate {
	_u.mutation.ResetCommentsGenerated()
	_u.mutation.SetCommentsGenerated(v)
	return _u
}

// SetNillableCommentsGenerated sets the "comments_generated" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableCommentsGenerated(v *int) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetCommentsGenerated(*v)
	}
	return _u
}

// AddCommentsGenerated adds value to the "comments_generated" field.
func (_u *MonitoringProcessUpdate) AddCommentsGenerated(v int) *MonitoringProcessUpdate {
	_u.mutation.AddCommentsGenerated(v)
	return _u
}

// SetCommentsPosted sets the "comments_posted" field.
func (_u *MonitoringProcessUpdate) SetCommentsPosted(v int) *MonitoringProcessUpdate {
	_u.mutation.ResetCommentsPosted()
	_u.mutation.SetCommentsPosted(v)
	return _u
}

// SetNillableCommentsPosted sets the "comments_posted" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableCommentsPosted(v *int) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetCommentsPosted(*v)
	}
	return _u
}

// AddCommentsPosted adds value to the "comments_posted" field.
func (_u *MonitoringProcessUpdate) AddCommentsPosted(v int) *MonitoringProcessUpdate {
	_u.mutation.AddCommentsPosted(v)
	return _u
}

// SetErrorsDiscovery sets the "errors_discovery" field.
func (_u *MonitoringProcessUpdate) SetErrorsDiscovery(v int) *MonitoringProcessUpdate {
	_u.mutation.ResetErrorsDiscovery()
	_u.mutation.SetErrorsDiscovery(v)
	return _u
}

// SetNillableErrorsDiscovery sets the "errors_discovery" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableErrorsDiscovery(v *int) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetErrorsDiscovery(*v)
	}
	return _u
}

// AddErrorsDiscovery adds value to the "errors_discovery" field.
func (_u *MonitoringProcessUpdate) AddErrorsDiscovery(v int) *MonitoringProcessUpdate {
	_u.mutation.AddErrorsDiscovery(v)
	return _u
}

// SetErrorsPreparation sets the "errors_preparation" field.
func (_u *MonitoringProcessUpdate) SetErrorsPreparation(v int) *MonitoringProcessUpdate {
	_u.mutation.ResetErrorsPreparation()
	_u.mutation.SetErrorsPreparation(v)
	return _u
}

// SetNillableErrorsPreparation sets the "errors_preparation" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableErrorsPreparation(v *int) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetErrorsPreparation(*v)
	}
	return _u
}

// AddErrorsPreparation adds value to the "errors_preparation" field.
func (_u *MonitoringProcessUpdate) AddErrorsPreparation(v int) *MonitoringProcessUpdate {
	_u.mutation.AddErrorsPreparation(v)
	return _u
}

// SetErrorsGeneration sets the "errors_generation" field.
func (_u *MonitoringProcessUpdate) SetErrorsGeneration(v int) *MonitoringProcessUpdate {
	_u.mutation.ResetErrorsGeneration()
	_u.mutation.SetErrorsGeneration(v)
	return _u
}

// SetNillableErrorsGeneration sets the "errors_generation" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableErrorsGeneration(v *int) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetErrorsGeneration(*v)
	}
	return _u
}

// AddErrorsGeneration adds value to the "errors_generation" field.
func (_u *MonitoringProcessUpdate) AddErrorsGeneration(v int) *MonitoringProcessUpdate {
	_u.mutation.AddErrorsGeneration(v)
	return _u
}

// SetErrorsPosting sets the "errors_posting" field.
func (_u *MonitoringProcessUpdate) SetErrorsPosting(v int) *MonitoringProcessUpdate {
	_u.mutation.ResetErrorsPosting()
	_u.mutation.SetErrorsPosting(v)
	return _u
}

// SetNillableErrorsPosting sets the "errors_posting" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableErrorsPosting(v *int) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetErrorsPosting(*v)
	}
	return _u
}

// AddErrorsPosting adds value to the "errors_posting" field.
func (_u *MonitoringProcessUpdate) AddErrorsPosting(v int) *MonitoringProcessUpdate {
	_u.mutation.AddErrorsPosting(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MonitoringProcessUpdate) SetErrorMessage(v string) *MonitoringProcessUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MonitoringProcessUpdate) SetNillableErrorMessage(v *string) *MonitoringProcessUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MonitoringProcessUpdate) ClearErrorMessage() *MonitoringProcessUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MonitoringProcessUpdate) SetUpdatedAt(v time.Time) *MonitoringProcessUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCredentialIDs adds the "credentials" edge to the UpstreamCredential entity by IDs.
func (_u *MonitoringProcessUpdate) AddCredentialIDs(ids ...string) *MonitoringProcessUpdate {
	_u.mutation.AddCredentialIDs(ids...)
	return _u
}

// AddCredentials adds the "credentials" edges to the UpstreamCredential entity.
func (_u *MonitoringProcessUpdate) AddCredentials(v ...*UpstreamCredential) *MonitoringProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCredentialIDs(ids...)
}

// AddTemplateIDs adds the "templates" edge to the PromptTemplate entity by IDs.
func (_u *MonitoringProcessUpdate) AddTemplateIDs(ids ...string) *MonitoringProcessUpdate {
	_u.mutation.AddTemplateIDs(ids...)
	return _u
}

// AddTemplates adds the "templates" edges to the PromptTemplate entity.
func (_u *MonitoringProcessUpdate) AddTemplates(v ...*PromptTemplate) *MonitoringProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTemplateIDs(ids...)
}

// AddWorkRecordIDs adds the "work_records" edge to the WorkRecord entity by IDs.
func (_u *MonitoringProcessUpdate) AddWorkRecordIDs(ids ...string) *MonitoringProcessUpdate {
	_u.mutation.AddWorkRecordIDs(ids...)
	return _u
}

// AddWorkRecords adds the "work_records" edges to the WorkRecord entity.
func (_u *MonitoringProcessUpdate) AddWorkRecords(v ...*WorkRecord) *MonitoringProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkRecordIDs(ids...)
}

// AddStageTaskIDs adds the "stage_tasks" edge to the StageTask entity by IDs.
func (_u *MonitoringProcessUpdate) AddStageTaskIDs(ids ...string) *MonitoringProcessUpdate {
	_u.mutation.AddStageTaskIDs(ids...)
	return _u
}

// AddStageTasks adds the "stage_tasks" edges to the StageTask entity.
func (_u *MonitoringProcessUpdate) AddStageTasks(v ...*StageTask) *MonitoringProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageTaskIDs(ids...)
}

// Mutation returns the MonitoringProcessMutation object of the builder.
func (_u *MonitoringProcessUpdate) Mutation() *MonitoringProcessMutation {
	return _u.mutation
}

// ClearCredentials clears all "credentials" edges to the UpstreamCredential entity.
func (_u *MonitoringProcessUpdate) ClearCredentials() *MonitoringProcessUpdate {
	_u.mutation.ClearCredentials()
	return _u
}

// RemoveCredentialIDs removes the "credentials" edge to UpstreamCredential entities by IDs.
func (_u *MonitoringProcessUpdate) RemoveCredentialIDs(ids ...string) *MonitoringProcessUpdate {
	_u.mutation.RemoveCredentialIDs(ids...)
	return _u
}

// RemoveCredentials removes "credentials" edges to UpstreamCredential entities.
func (_u *MonitoringProcessUpdate) RemoveCredentials(v ...*UpstreamCredential) *MonitoringProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCredentialIDs(ids...)
}

// ClearTemplates clears all "templates" edges to the PromptTemplate entity.
func (_u *MonitoringProcessUpdate) ClearTemplates() *MonitoringProcessUpdate {
	_u.mutation.ClearTemplates()
	return _u
}

// RemoveTemplateIDs removes the "templates" edge to PromptTemplate entities by IDs.
func (_u *MonitoringProcessUpdate) RemoveTemplateIDs(ids ...string) *MonitoringProcessUpdate {
	_u.mutation.RemoveTemplateIDs(ids...)
	return _u
}

// RemoveTemplates removes "templates" edges to PromptTemplate entities.
func (_u *MonitoringProcessUpdate) RemoveTemplates(v ...*PromptTemplate) *MonitoringProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTemplateIDs(ids...)
}

// ClearWorkRecords clears all "work_records" edges to the WorkRecord entity.
func (_u *MonitoringProcessUpdate) ClearWorkRecords() *MonitoringProcessUpdate {
	_u.mutation.ClearWorkRecords()
	return _u
}

// RemoveWorkRecordIDs removes the "work_records" edge to WorkRecord entities by IDs.
func (_u *MonitoringProcessUpdate) RemoveWorkRecordIDs(ids ...string) *MonitoringProcessUpdate {
	_u.mutation.RemoveWorkRecordIDs(ids...)
	return _u
}

// RemoveWorkRecords removes "work_records" edges to WorkRecord entities.
func (_u *MonitoringProcessUpdate) RemoveWorkRecords(v ...*WorkRecord) *MonitoringProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkRecordIDs(ids...)
}

// ClearStageTasks clears all "stage_tasks" edges to the StageTask entity.
func (_u *MonitoringProcessUpdate) ClearStageTasks() *MonitoringProcessUpdate {
	_u.mutation.ClearStageTasks()
	return _u
}

// RemoveStageTaskIDs removes the "stage_tasks" edge to StageTask entities by IDs.
func (_u *MonitoringProcessUpdate) RemoveStageTaskIDs(ids ...string) *MonitoringProcessUpdate {
	_u.mutation.RemoveStageTaskIDs(ids...)
	return _u
}

// RemoveStageTasks removes "stage_tasks" edges to StageTask entities.
func (_u *MonitoringProcessUpdate) RemoveStageTasks(v ...*StageTask) *MonitoringProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MonitoringProcessUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitoringProcessUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MonitoringProcessUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitoringProcessUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MonitoringProcessUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := monitoringprocess.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonitoringProcessUpdate) check() error {
	if v, ok := _u.mutation.MaxDurationMinutes(); ok {
		if err := monitoringprocess.MaxDurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "max_duration_minutes", err: fmt.Errorf(`ent: validator failed for field "MonitoringProcess.max_duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := monitoringprocess.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MonitoringProcess.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MonitoringProcess.owner"`)
	}
	return nil
}

func (_u *MonitoringProcessUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monitoringprocess.Table, monitoringprocess.Columns, sqlgraph.NewFieldSpec(monitoringprocess.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(monitoringprocess.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(monitoringprocess.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(monitoringprocess.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LlmProviderID(); ok {
		_spec.SetField(monitoringprocess.FieldLlmProviderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TabFilters(); ok {
		_spec.SetField(monitoringprocess.FieldTabFilters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTabFilters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, monitoringprocess.FieldTabFilters, value)
		})
	}
	if _u.mutation.TabFiltersCleared() {
		_spec.ClearField(monitoringprocess.FieldTabFilters, field.TypeJSON)
	}
	if value, ok := _u.mutation.CategoryFilter(); ok {
		_spec.SetField(monitoringprocess.FieldCategoryFilter, field.TypeString, value)
	}
	if _u.mutation.CategoryFilterCleared() {
		_spec.ClearField(monitoringprocess.FieldCategoryFilter, field.TypeString)
	}
	if value, ok := _u.mutation.KeywordFilters(); ok {
		_spec.SetField(monitoringprocess.FieldKeywordFilters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywordFilters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, monitoringprocess.FieldKeywordFilters, value)
		})
	}
	if _u.mutation.KeywordFiltersCleared() {
		_spec.ClearField(monitoringprocess.FieldKeywordFilters, field.TypeJSON)
	}
	if value, ok := _u.mutation.GenerateOnly(); ok {
		_spec.SetField(monitoringprocess.FieldGenerateOnly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxDurationMinutes(); ok {
		_spec.SetField(monitoringprocess.FieldMaxDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDurationMinutes(); ok {
		_spec.AddField(monitoringprocess.FieldMaxDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(monitoringprocess.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StopReason(); ok {
		_spec.SetField(monitoringprocess.FieldStopReason, field.TypeString, value)
	}
	if _u.mutation.StopReasonCleared() {
		_spec.ClearField(monitoringprocess.FieldStopReason, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(monitoringprocess.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(monitoringprocess.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(monitoringprocess.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(monitoringprocess.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StoppedAt(); ok {
		_spec.SetField(monitoringprocess.FieldStoppedAt, field.TypeTime, value)
	}
	if _u.mutation.StoppedAtCleared() {
		_spec.ClearField(monitoringprocess.FieldStoppedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StageTaskIds(); ok {
		_spec.SetField(monitoringprocess.FieldStageTaskIds, field.TypeJSON, value)
	}
	if _u.mutation.StageTaskIdsCleared() {
		_spec.ClearField(monitoringprocess.FieldStageTaskIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ArticlesDiscovered(); ok {
		_spec.SetField(monitoringprocess.FieldArticlesDiscovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticlesDiscovered(); ok {
		_spec.AddField(monitoringprocess.FieldArticlesDiscovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ArticlesPrepared(); ok {
		_spec.SetField(monitoringprocess.FieldArticlesPrepared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticlesPrepared(); ok {
		_spec.AddField(monitoringprocess.FieldArticlesPrepared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommentsGenerated(); ok {
		_spec.SetField(monitoringprocess.FieldCommentsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentsGenerated(); ok {
		_spec.AddField(monitoringprocess.FieldCommentsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommentsPosted(); ok {
		_spec.SetField(monitoringprocess.FieldCommentsPosted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentsPosted(); ok {
		_spec.AddField(monitoringprocess.FieldCommentsPosted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorsDiscovery(); ok {
		_spec.SetField(monitoringprocess.FieldErrorsDiscovery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorsDiscovery(); ok {
		_spec.AddField(monitoringprocess.FieldErrorsDiscovery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorsPreparation(); ok {
		_spec.SetField(monitoringprocess.FieldErrorsPreparation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorsPreparation(); ok {
		_spec.AddField(monitoringprocess.FieldErrorsPreparation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorsGeneration(); ok {
		_spec.SetField(monitoringprocess.FieldErrorsGeneration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorsGeneration(); ok {
		_spec.AddField(monitoringprocess.FieldErrorsGeneration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorsPosting(); ok {
		_spec.SetField(monitoringprocess.FieldErrorsPosting, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorsPosting(); ok {
		_spec.AddField(monitoringprocess.FieldErrorsPosting, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(monitoringprocess.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(monitoringprocess.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(monitoringprocess.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CredentialsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   monitoringprocess.CredentialsTable,
			Columns: monitoringprocess.CredentialsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamcredential.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCredentialsIDs(); len(nodes) > 0 && !_u.mutation.CredentialsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   monitoringprocess.CredentialsTable,
			Columns: monitoringprocess.CredentialsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamcredential.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CredentialsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   monitoringprocess.CredentialsTable,
			Columns: monitoringprocess.CredentialsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamcredential.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   monitoringprocess.TemplatesTable,
			Columns: monitoringprocess.TemplatesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTemplatesIDs(); len(nodes) > 0 && !_u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   monitoringprocess.TemplatesTable,
			Columns: monitoringprocess.TemplatesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   monitoringprocess.TemplatesTable,
			Columns: monitoringprocess.TemplatesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monitoringprocess.WorkRecordsTable,
			Columns: []string{monitoringprocess.WorkRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkRecordsIDs(); len(nodes) > 0 && !_u.mutation.WorkRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monitoringprocess.WorkRecordsTable,
			Columns: []string{monitoringprocess.WorkRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monitoringprocess.WorkRecordsTable,
			Columns: []string{monitoringprocess.WorkRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monitoringprocess.StageTasksTable,
			Columns: []string{monitoringprocess.StageTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagetask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageTasksIDs(); len(nodes) > 0 && !_u.mutation.StageTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monitoringprocess.StageTasksTable,
			Columns: []string{monitoringprocess.StageTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagetask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monitoringprocess.StageTasksTable,
			Columns: []string{monitoringprocess.StageTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagetask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoringprocess.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MonitoringProcessUpdateOne is the builder for updating a single MonitoringProcess entity.
type MonitoringProcessUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MonitoringProcessMutation
}

// SetName sets the "name" field.
func (_u *MonitoringProcessUpdateOne) SetName(v string) *MonitoringProcessUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableName(v *string) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MonitoringProcessUpdateOne) SetDescription(v string) *MonitoringProcessUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableDescription(v *string) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MonitoringProcessUpdateOne) ClearDescription() *MonitoringProcessUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetLlmProviderID sets the "llm_provider_id" field.
func (_u *MonitoringProcessUpdateOne) SetLlmProviderID(v string) *MonitoringProcessUpdateOne {
	_u.mutation.SetLlmProviderID(v)
	return _u
}

// SetNillableLlmProviderID sets the "llm_provider_id" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableLlmProviderID(v *string) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetLlmProviderID(*v)
	}
	return _u
}

// SetTabFilters sets the "tab_filters" field.
func (_u *MonitoringProcessUpdateOne) SetTabFilters(v []string) *MonitoringProcessUpdateOne {
	_u.mutation.SetTabFilters(v)
	return _u
}

// AppendTabFilters appends value to the "tab_filters" field.
func (_u *MonitoringProcessUpdateOne) AppendTabFilters(v []string) *MonitoringProcessUpdateOne {
	_u.mutation.AppendTabFilters(v)
	return _u
}

// ClearTabFilters clears the value of the "tab_filters" field.
func (_u *MonitoringProcessUpdateOne) ClearTabFilters() *MonitoringProcessUpdateOne {
	_u.mutation.ClearTabFilters()
	return _u
}

// SetCategoryFilter sets the "category_filter" field.
func (_u *MonitoringProcessUpdateOne) SetCategoryFilter(v string) *MonitoringProcessUpdateOne {
	_u.mutation.SetCategoryFilter(v)
	return _u
}

// SetNillableCategoryFilter sets the "category_filter" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableCategoryFilter(v *string) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetCategoryFilter(*v)
	}
	return _u
}

// ClearCategoryFilter clears the value of the "category_filter" field.
func (_u *MonitoringProcessUpdateOne) ClearCategoryFilter() *MonitoringProcessUpdateOne {
	_u.mutation.ClearCategoryFilter()
	return _u
}

// SetKeywordFilters sets the "keyword_filters" field.
func (_u *MonitoringProcessUpdateOne) SetKeywordFilters(v []string) *MonitoringProcessUpdateOne {
	_u.mutation.SetKeywordFilters(v)
	return _u
}

// AppendKeywordFilters appends value to the "keyword_filters" field.
func (_u *MonitoringProcessUpdateOne) AppendKeywordFilters(v []string) *MonitoringProcessUpdateOne {
	_u.mutation.AppendKeywordFilters(v)
	return _u
}

// ClearKeywordFilters clears the value of the "keyword_filters" field.
func (_u *MonitoringProcessUpdateOne) ClearKeywordFilters() *MonitoringProcessUpdateOne {
	_u.mutation.ClearKeywordFilters()
	return _u
}

// SetGenerateOnly sets the "generate_only" field.
func (_u *MonitoringProcessUpdateOne) SetGenerateOnly(v bool) *MonitoringProcessUpdateOne {
	_u.mutation.SetGenerateOnly(v)
	return _u
}

// SetNillableGenerateOnly sets the "generate_only" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableGenerateOnly(v *bool) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetGenerateOnly(*v)
	}
	return _u
}

// SetMaxDurationMinutes sets the "max_duration_minutes" field.
func (_u *MonitoringProcessUpdateOne) SetMaxDurationMinutes(v int) *MonitoringProcessUpdateOne {
	_u.mutation.ResetMaxDurationMinutes()
	_u.mutation.SetMaxDurationMinutes(v)
	return _u
}

// SetNillableMaxDurationMinutes sets the "max_duration_minutes" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableMaxDurationMinutes(v *int) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetMaxDurationMinutes(*v)
	}
	return _u
}

// AddMaxDurationMinutes adds value to the "max_duration_minutes" field.
func (_u *MonitoringProcessUpdateOne) AddMaxDurationMinutes(v int) *MonitoringProcessUpdateOne {
	_u.mutation.AddMaxDurationMinutes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MonitoringProcessUpdateOne) SetStatus(v monitoringprocess.Status) *MonitoringProcessUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableStatus(v *monitoringprocess.Status) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStopReason sets the "stop_reason" field.
func (_u *MonitoringProcessUpdateOne) SetStopReason(v string) *MonitoringProcessUpdateOne {
	_u.mutation.SetStopReason(v)
	return _u
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableStopReason(v *string) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetStopReason(*v)
	}
	return _u
}

// ClearStopReason clears the value of the "stop_reason" field.
func (_u *MonitoringProcessUpdateOne) ClearStopReason() *MonitoringProcessUpdateOne {
	_u.mutation.ClearStopReason()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MonitoringProcessUpdateOne) SetStartedAt(v time.Time) *MonitoringProcessUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableStartedAt(v *time.Time) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *MonitoringProcessUpdateOne) ClearStartedAt() *MonitoringProcessUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *MonitoringProcessUpdateOne) SetExpiresAt(v time.Time) *MonitoringProcessUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableExpiresAt(v *time.Time) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *MonitoringProcessUpdateOne) ClearExpiresAt() *MonitoringProcessUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetStoppedAt sets the "stopped_at" field.
func (_u *MonitoringProcessUpdateOne) SetStoppedAt(v time.Time) *MonitoringProcessUpdateOne {
	_u.mutation.SetStoppedAt(v)
	return _u
}

// SetNillableStoppedAt sets the "stopped_at" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableStoppedAt(v *time.Time) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetStoppedAt(*v)
	}
	return _u
}

// ClearStoppedAt clears the value of the "stopped_at" field.
func (_u *MonitoringProcessUpdateOne) ClearStoppedAt() *MonitoringProcessUpdateOne {
	_u.mutation.ClearStoppedAt()
	return _u
}

// SetStageTaskIds sets the "stage_task_ids" field.
func (_u *MonitoringProcessUpdateOne) SetStageTaskIds(v map[string]string) *MonitoringProcessUpdateOne {
	_u.mutation.SetStageTaskIds(v)
	return _u
}

// ClearStageTaskIds clears the value of the "stage_task_ids" field.
func (_u *MonitoringProcessUpdateOne) ClearStageTaskIds() *MonitoringProcessUpdateOne {
	_u.mutation.ClearStageTaskIds()
	return _u
}

// SetArticlesDiscovered sets the "articles_discovered" field.
func (_u *MonitoringProcessUpdateOne) SetArticlesDiscovered(v int) *MonitoringProcessUpdateOne {
	_u.mutation.ResetArticlesDiscovered()
	_u.mutation.SetArticlesDiscovered(v)
	return _u
}

// SetNillableArticlesDiscovered sets the "articles_discovered" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableArticlesDiscovered(v *int) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetArticlesDiscovered(*v)
	}
	return _u
}

// AddArticlesDiscovered adds value to the "articles_discovered" field.
func (_u *MonitoringProcessUpdateOne) AddArticlesDiscovered(v int) *MonitoringProcessUpdateOne {
	_u.mutation.AddArticlesDiscovered(v)
	return _u
}

// SetArticlesPrepared sets the "articles_prepared" field.
func (_u *MonitoringProcessUpdateOne) SetArticlesPrepared(v int) *MonitoringProcessUpdateOne {
	_u.mutation.ResetArticlesPrepared()
	_u.mutation.SetArticlesPrepared(v)
	return _u
}

// SetNillableArticlesPrepared sets the "articles_prepared" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableArticlesPrepared(v *int) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetArticlesPrepared(*v)
	}
	return _u
}

// AddArticlesPrepared adds value to the "articles_prepared" field.
func (_u *MonitoringProcessUpdateOne) AddArticlesPrepared(v int) *MonitoringProcessUpdateOne {
	_u.mutation.AddArticlesPrepared(v)
	return _u
}

// SetCommentsGenerated sets the "comments_generated" field.
func (_u *MonitoringProcessUpdateOne) SetCommentsGenerated(v int) *MonitoringProcessUpdateOne {
	_u.mutation.ResetCommentsGenerated()
	_u.mutation.SetCommentsGenerated(v)
	return _u
}

// SetNillableCommentsGenerated sets the "comments_generated" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableCommentsGenerated(v *int) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetCommentsGenerated(*v)
	}
	return _u
}

// AddCommentsGenerated adds value to the "comments_generated" field.
func (_u *MonitoringProcessUpdateOne) AddCommentsGenerated(v int) *MonitoringProcessUpdateOne {
	_u.mutation.AddCommentsGenerated(v)
	return _u
}

// SetCommentsPosted sets the "comments_posted" field.
func (_u *MonitoringProcessUpdateOne) SetCommentsPosted(v int) *MonitoringProcessUpdateOne {
	_u.mutation.ResetCommentsPosted()
	_u.mutation.SetCommentsPosted(v)
	return _u
}

// SetNillableCommentsPosted sets the "comments_posted" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableCommentsPosted(v *int) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetCommentsPosted(*v)
	}
	return _u
}

// AddCommentsPosted adds value to the "comments_posted" field.
func (_u *MonitoringProcessUpdateOne) AddCommentsPosted(v int) *MonitoringProcessUpdateOne {
	_u.mutation.AddCommentsPosted(v)
	return _u
}

// SetErrorsDiscovery sets the "errors_discovery" field.
func (_u *MonitoringProcessUpdateOne) SetErrorsDiscovery(v int) *MonitoringProcessUpdateOne {
	_u.mutation.ResetErrorsDiscovery()
	_u.mutation.SetErrorsDiscovery(v)
	return _u
}

// SetNillableErrorsDiscovery sets the "errors_discovery" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableErrorsDiscovery(v *int) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetErrorsDiscovery(*v)
	}
	return _u
}

// AddErrorsDiscovery adds value to the "errors_discovery" field.
func (_u *MonitoringProcessUpdateOne) AddErrorsDiscovery(v int) *MonitoringProcessUpdateOne {
	_u.mutation.AddErrorsDiscovery(v)
	return _u
}

// SetErrorsPreparation sets the "errors_preparation" field.
func (_u *MonitoringProcessUpdateOne) SetErrorsPreparation(v int) *MonitoringProcessUpdateOne {
	_u.mutation.ResetErrorsPreparation()
	_u.mutation.SetErrorsPreparation(v)
	return _u
}

// SetNillableErrorsPreparation sets the "errors_preparation" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableErrorsPreparation(v *int) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetErrorsPreparation(*v)
	}
	return _u
}

// AddErrorsPreparation adds value to the "errors_preparation" field.
func (_u *MonitoringProcessUpdateOne) AddErrorsPreparation(v int) *MonitoringProcessUpdateOne {
	_u.mutation.AddErrorsPreparation(v)
	return _u
}

// SetErrorsGeneration sets the "errors_generation" field.
func (_u *MonitoringProcessUpdateOne) SetErrorsGeneration(v int) *MonitoringProcessUpdateOne {
	_u.mutation.ResetErrorsGeneration()
	_u.mutation.SetErrorsGeneration(v)
	return _u
}

// SetNillableErrorsGeneration sets the "errors_generation" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableErrorsGeneration(v *int) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetErrorsGeneration(*v)
	}
	return _u
}

// AddErrorsGeneration adds value to the "errors_generation" field.
func (_u *MonitoringProcessUpdateOne) AddErrorsGeneration(v int) *MonitoringProcessUpdateOne {
	_u.mutation.AddErrorsGeneration(v)
	return _u
}

// SetErrorsPosting sets the "errors_posting" field.
func (_u *MonitoringProcessUpdateOne) SetErrorsPosting(v int) *MonitoringProcessUpdateOne {
	_u.mutation.ResetErrorsPosting()
	_u.mutation.SetErrorsPosting(v)
	return _u
}

// SetNillableErrorsPosting sets the "errors_posting" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableErrorsPosting(v *int) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetErrorsPosting(*v)
	}
	return _u
}

// AddErrorsPosting adds value to the "errors_posting" field.
func (_u *MonitoringProcessUpdateOne) AddErrorsPosting(v int) *MonitoringProcessUpdateOne {
	_u.mutation.AddErrorsPosting(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MonitoringProcessUpdateOne) SetErrorMessage(v string) *MonitoringProcessUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MonitoringProcessUpdateOne) SetNillableErrorMessage(v *string) *MonitoringProcessUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MonitoringProcessUpdateOne) ClearErrorMessage() *MonitoringProcessUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MonitoringProcessUpdateOne) SetUpdatedAt(v time.Time) *MonitoringProcessUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCredentialIDs adds the "credentials" edge to the UpstreamCredential entity by IDs.
func (_u *MonitoringProcessUpdateOne) AddCredentialIDs(ids ...string) *MonitoringProcessUpdateOne {
	_u.mutation.AddCredentialIDs(ids...)
	return _u
}

// AddCredentials adds the "credentials" edges to the UpstreamCredential entity.
func (_u *MonitoringProcessUpdateOne) AddCredentials(v ...*UpstreamCredential) *MonitoringProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCredentialIDs(ids...)
}

// AddTemplateIDs adds the "templates" edge to the PromptTemplate entity by IDs.
func (_u *MonitoringProcessUpdateOne) AddTemplateIDs(ids ...string) *MonitoringProcessUpdateOne {
	_u.mutation.AddTemplateIDs(ids...)
	return _u
}

// AddTemplates adds the "templates" edges to the PromptTemplate entity.
func (_u *MonitoringProcessUpdateOne) AddTemplates(v ...*PromptTemplate) *MonitoringProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTemplateIDs(ids...)
}

// AddWorkRecordIDs adds the "work_records" edge to the WorkRecord entity by IDs.
func (_u *MonitoringProcessUpdateOne) AddWorkRecordIDs(ids ...string) *MonitoringProcessUpdateOne {
	_u.mutation.AddWorkRecordIDs(ids...)
	return _u
}

// AddWorkRecords adds the "work_records" edges to the WorkRecord entity.
func (_u *MonitoringProcessUpdateOne) AddWorkRecords(v ...*WorkRecord) *MonitoringProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkRecordIDs(ids...)
}

// AddStageTaskIDs adds the "stage_tasks" edge to the StageTask entity by IDs.
func (_u *MonitoringProcessUpdateOne) AddStageTaskIDs(ids ...string) *MonitoringProcessUpdateOne {
	_u.mutation.AddStageTaskIDs(ids...)
	return _u
}

// AddStageTasks adds the "stage_tasks" edges to the StageTask entity.
func (_u *MonitoringProcessUpdateOne) AddStageTasks(v ...*StageTask) *MonitoringProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageTaskIDs(ids...)
}

// Mutation returns the MonitoringProcessMutation object of the builder.
func (_u *MonitoringProcessUpdateOne) Mutation() *MonitoringProcessMutation {
	return _u.mutation
}

// ClearCredentials clears all "credentials" edges to the UpstreamCredential entity.
func (_u *MonitoringProcessUpdateOne) ClearCredentials() *MonitoringProcessUpdateOne {
	_u.mutation.ClearCredentials()
	return _u
}

// RemoveCredentialIDs removes the "credentials" edge to UpstreamCredential entities by IDs.
func (_u *MonitoringProcessUpdateOne) RemoveCredentialIDs(ids ...string) *MonitoringProcessUpdateOne {
	_u.mutation.RemoveCredentialIDs(ids...)
	return _u
}

// RemoveCredentials removes "credentials" edges to UpstreamCredential entities.
func (_u *MonitoringProcessUpdateOne) RemoveCredentials(v ...*UpstreamCredential) *MonitoringProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCredentialIDs(ids...)
}

// ClearTemplates clears all "templates" edges to the PromptTemplate entity.
func (_u *MonitoringProcessUpdateOne) ClearTemplates() *MonitoringProcessUpdateOne {
	_u.mutation.ClearTemplates()
	return _u
}

// RemoveTemplateIDs removes the "templates" edge to PromptTemplate entities by IDs.
func (_u *MonitoringProcessUpdateOne) RemoveTemplateIDs(ids ...string) *MonitoringProcessUpdateOne {
	_u.mutation.RemoveTemplateIDs(ids...)
	return _u
}

// RemoveTemplates removes "templates" edges to PromptTemplate entities.
func (_u *MonitoringProcessUpdateOne) RemoveTemplates(v ...*PromptTemplate) *MonitoringProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTemplateIDs(ids...)
}

// ClearWorkRecords clears all "work_records" edges to the WorkRecord entity.
func (_u *MonitoringProcessUpdateOne) ClearWorkRecords() *MonitoringProcessUpdateOne {
	_u.mutation.ClearWorkRecords()
	return _u
}

// RemoveWorkRecordIDs removes the "work_records" edge to WorkRecord entities by IDs.
func (_u *MonitoringProcessUpdateOne) RemoveWorkRecordIDs(ids ...string) *MonitoringProcessUpdateOne {
	_u.mutation.RemoveWorkRecordIDs(ids...)
	return _u
}

// RemoveWorkRecords removes "work_records" edges to WorkRecord entities.
func (_u *MonitoringProcessUpdateOne) RemoveWorkRecords(v ...*WorkRecord) *MonitoringProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkRecordIDs(ids...)
}

// ClearStageTasks clears all "stage_tasks" edges to the StageTask entity.
func (_u *MonitoringProcessUpdateOne) ClearStageTasks() *MonitoringProcessUpdateOne {
	_u.mutation.ClearStageTasks()
	return _u
}

// RemoveStageTaskIDs removes the "stage_tasks" edge to StageTask entities by IDs.
func (_u *MonitoringProcessUpdateOne) RemoveStageTaskIDs(ids ...string) *MonitoringProcessUpdateOne {
	_u.mutation.RemoveStageTaskIDs(ids...)
	return _u
}

// RemoveStageTasks removes "stage_tasks" edges to StageTask entities.
func (_u *MonitoringProcessUpdateOne) RemoveStageTasks(v ...*StageTask) *MonitoringProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageTaskIDs(ids...)
}

// Where appends a list predicates to the MonitoringProcessUpdate builder.
func (_u *MonitoringProcessUpdateOne) Where(ps ...predicate.MonitoringProcess) *MonitoringProcessUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MonitoringProcessUpdateOne) Select(field string, fields ...string) *MonitoringProcessUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MonitoringProcess entity.
func (_u *MonitoringProcessUpdateOne) Save(ctx context.Context) (*MonitoringProcess, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitoringProcessUpdateOne) SaveX(ctx context.Context) *MonitoringProcess {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MonitoringProcessUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitoringProcessUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MonitoringProcessUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := monitoringprocess.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonitoringProcessUpdateOne) check() error {
	if v, ok := _u.mutation.MaxDurationMinutes(); ok {
		if err := monitoringprocess.MaxDurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "max_duration_minutes", err: fmt.Errorf(`ent: validator failed for field "MonitoringProcess.max_duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := monitoringprocess.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MonitoringProcess.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MonitoringProcess.owner"`)
	}
	return nil
}

func (_u *MonitoringProcessUpdateOne) sqlSave(ctx context.Context) (_node *MonitoringProcess, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monitoringprocess.Table, monitoringprocess.Columns, sqlgraph.NewFieldSpec(monitoringprocess.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MonitoringProcess.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, monitoringprocess.FieldID)
		for _, f := range fields {
			if !monitoringprocess.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != monitoringprocess.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(monitoringprocess.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(monitoringprocess.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(monitoringprocess.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LlmProviderID(); ok {
		_spec.SetField(monitoringprocess.FieldLlmProviderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TabFilters(); ok {
		_spec.SetField(monitoringprocess.FieldTabFilters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTabFilters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, monitoringprocess.FieldTabFilters, value)
		})
	}
	if _u.mutation.TabFiltersCleared() {
		_spec.ClearField(monitoringprocess.FieldTabFilters, field.TypeJSON)
	}
	if value, ok := _u.mutation.CategoryFilter(); ok {
		_spec.SetField(monitoringprocess.FieldCategoryFilter, field.TypeString, value)
	}
	if _u.mutation.CategoryFilterCleared() {
		_spec.ClearField(monitoringprocess.FieldCategoryFilter, field.TypeString)
	}
	if value, ok := _u.mutation.KeywordFilters(); ok {
		_spec.SetField(monitoringprocess.FieldKeywordFilters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywordFilters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, monitoringprocess.FieldKeywordFilters, value)
		})
	}
	if _u.mutation.KeywordFiltersCleared() {
		_spec.ClearField(monitoringprocess.FieldKeywordFilters, field.TypeJSON)
	}
	if value, ok := _u.mutation.GenerateOnly(); ok {
		_spec.SetField(monitoringprocess.FieldGenerateOnly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxDurationMinutes(); ok {
		_spec.SetField(monitoringprocess.FieldMaxDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDurationMinutes(); ok {
		_spec.AddField(monitoringprocess.FieldMaxDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(monitoringprocess.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StopReason(); ok {
		_spec.SetField(monitoringprocess.FieldStopReason, field.TypeString, value)
	}
	if _u.mutation.StopReasonCleared() {
		_spec.ClearField(monitoringprocess.FieldStopReason, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(monitoringprocess.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(monitoringprocess.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(monitoringprocess.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(monitoringprocess.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StoppedAt(); ok {
		_spec.SetField(monitoringprocess.FieldStoppedAt, field.TypeTime, value)
	}
	if _u.mutation.StoppedAtCleared() {
		_spec.ClearField(monitoringprocess.FieldStoppedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StageTaskIds(); ok {
		_spec.SetField(monitoringprocess.FieldStageTaskIds, field.TypeJSON, value)
	}
	if _u.mutation.StageTaskIdsCleared() {
		_spec.ClearField(monitoringprocess.FieldStageTaskIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ArticlesDiscovered(); ok {
		_spec.SetField(monitoringprocess.FieldArticlesDiscovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticlesDiscovered(); ok {
		_spec.AddField(monitoringprocess.FieldArticlesDiscovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ArticlesPrepared(); ok {
		_spec.SetField(monitoringprocess.FieldArticlesPrepared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticlesPrepared(); ok {
		_spec.AddField(monitoringprocess.FieldArticlesPrepared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommentsGenerated(); ok {
		_spec.SetField(monitoringprocess.FieldCommentsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentsGenerated(); ok {
		_spec.AddField(monitoringprocess.FieldCommentsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommentsPosted(); ok {
		_spec.SetField(monitoringprocess.FieldCommentsPosted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentsPosted(); ok {
		_spec.AddField(monitoringprocess.FieldCommentsPosted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorsDiscovery(); ok {
		_spec.SetField(monitoringprocess.FieldErrorsDiscovery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorsDiscovery(); ok {
		_spec.AddField(monitoringprocess.FieldErrorsDiscovery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorsPreparation(); ok {
		_spec.SetField(monitoringprocess.FieldErrorsPreparation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorsPreparation(); ok {
		_spec.AddField(monitoringprocess.FieldErrorsPreparation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorsGeneration(); ok {
		_spec.SetField(monitoringprocess.FieldErrorsGeneration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorsGeneration(); ok {
		_spec.AddField(monitoringprocess.FieldErrorsGeneration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorsPosting(); ok {
		_spec.SetField(monitoringprocess.FieldErrorsPosting, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorsPosting(); ok {
		_spec.AddField(monitoringprocess.FieldErrorsPosting, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(monitoringprocess.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(monitoringprocess.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(monitoringprocess.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CredentialsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   monitoringprocess.CredentialsTable,
			Columns: monitoringprocess.CredentialsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamcredential.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCredentialsIDs(); len(nodes) > 0 && !_u.mutation.CredentialsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   monitoringprocess.CredentialsTable,
			Columns: monitoringprocess.CredentialsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamcredential.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CredentialsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   monitoringprocess.CredentialsTable,
			Columns: monitoringprocess.CredentialsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamcredential.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   monitoringprocess.TemplatesTable,
			Columns: monitoringprocess.TemplatesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTemplatesIDs(); len(nodes) > 0 && !_u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   monitoringprocess.TemplatesTable,
			Columns: monitoringprocess.TemplatesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   monitoringprocess.TemplatesTable,
			Columns: monitoringprocess.TemplatesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monitoringprocess.WorkRecordsTable,
			Columns: []string{monitoringprocess.WorkRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkRecordsIDs(); len(nodes) > 0 && !_u.mutation.WorkRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monitoringprocess.WorkRecordsTable,
			Columns: []string{monitoringprocess.WorkRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monitoringprocess.WorkRecordsTable,
			Columns: []string{monitoringprocess.WorkRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monitoringprocess.StageTasksTable,
			Columns: []string{monitoringprocess.StageTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagetask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageTasksIDs(); len(nodes) > 0 && !_u.mutation.StageTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monitoringprocess.StageTasksTable,
			Columns: []string{monitoringprocess.StageTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagetask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monitoringprocess.StageTasksTable,
			Columns: []string{monitoringprocess.StageTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagetask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MonitoringProcess{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoringprocess.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
