// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/stagetask"
	"github.com/yourmoment/yourmoment/ent/upstreamcredential"
	"github.com/yourmoment/yourmoment/ent/user"
	"github.com/yourmoment/yourmoment/ent/workrecord"
)

// MonitoringProcessCreate is the builder for creating a MonitoringProcess entity.
type MonitoringProcessCreate struct {
	config
	mutation *MonitoringProcessMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *MonitoringProcessCreate) SetUserID(v string) *MonitoringProcessCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MonitoringProcessCreate) SetName(v string) *MonitoringProcessCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MonitoringProcessCreate) SetDescription(v string) *MonitoringProcessCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableDescription(v *string) *MonitoringProcessCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetLlmProviderID sets the "llm_provider_id" field.
func (_c *MonitoringProcessCreate) SetLlmProviderID(v string) *MonitoringProcessCreate {
	_c.mutation.SetLlmProviderID(v)
	return _c
}

// SetTabFilters sets the "tab_filters" field.
func (_c *MonitoringProcessCreate) SetTabFilters(v []string) *MonitoringProcessCreate {
	_c.mutation.SetTabFilters(v)
	return _c
}

// SetCategoryFilter sets the "category_filter" field.
func (_c *MonitoringProcessCreate) SetCategoryFilter(v string) *MonitoringProcessCreate {
	_c.mutation.SetCategoryFilter(v)
	return _c
}

// SetNillableCategoryFilter sets the "category_filter" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableCategoryFilter(v *string) *MonitoringProcessCreate {
	if v != nil {
		_c.SetCategoryFilter(*v)
	}
	return _c
}

// SetKeywordFilters sets the "keyword_filters" field.
func (_c *MonitoringProcessCreate) SetKeywordFilters(v []string) *MonitoringProcessCreate {
	_c.mutation.SetKeywordFilters(v)
	return _c
}

// SetGenerateOnly sets the "generate_only" field.
func (_c *MonitoringProcessCreate) SetGenerateOnly(v bool) *MonitoringProcessCreate {
	_c.mutation.SetGenerateOnly(v)
	return _c
}

// SetNillableGenerateOnly sets the "generate_only" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableGenerateOnly(v *bool) *MonitoringProcessCreate {
	if v != nil {
		_c.SetGenerateOnly(*v)
	}
	return _c
}

// SetMaxDurationMinutes sets the "max_duration_minutes" field.
func (_c *MonitoringProcessCreate) SetMaxDurationMinutes(v int) *MonitoringProcessCreate {
	_c.mutation.SetMaxDurationMinutes(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MonitoringProcessCreate) SetStatus(v monitoringprocess.Status) *MonitoringProcessCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableStatus(v *monitoringprocess.Status) *MonitoringProcessCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStopReason sets the "stop_reason" field.
func (_c *MonitoringProcessCreate) SetStopReason(v string) *MonitoringProcessCreate {
	_c.mutation.SetStopReason(v)
	return _c
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableStopReason(v *string) *MonitoringProcessCreate {
	if v != nil {
		_c.SetStopReason(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *MonitoringProcessCreate) SetStartedAt(v time.Time) *MonitoringProcessCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableStartedAt(v *time.Time) *MonitoringProcessCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *MonitoringProcessCreate) SetExpiresAt(v time.Time) *MonitoringProcessCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableExpiresAt(v *time.Time) *MonitoringProcessCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetStoppedAt sets the "stopped_at" field.
func (_c *MonitoringProcessCreate) SetStoppedAt(v time.Time) *MonitoringProcessCreate {
	_c.mutation.SetStoppedAt(v)
	return _c
}

// SetNillableStoppedAt sets the "stopped_at" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableStoppedAt(v *time.Time) *MonitoringProcessCreate {
	if v != nil {
		_c.SetStoppedAt(*v)
	}
	return _c
}

// SetStageTaskIds sets the "stage_task_ids" field.
func (_c *MonitoringProcessCreate) SetStageTaskIds(v map[string]string) *MonitoringProcessCreate {
	_c.mutation.SetStageTaskIds(v)
	return _c
}

// SetArticlesDiscovered sets the "articles_discovered" field.
func (_c *MonitoringProcessCreate) SetArticlesDiscovered(v int) *MonitoringProcessCreate {
	_c.mutation.SetArticlesDiscovered(v)
	return _c
}

// SetNillableArticlesDiscovered sets the "articles_discovered" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableArticlesDiscovered(v *int) *MonitoringProcessCreate {
	if v != nil {
		_c.SetArticlesDiscovered(*v)
	}
	return _c
}

// SetArticlesPrepared sets the "articles_prepared" field.
func (_c *MonitoringProcessCreate) SetArticlesPrepared(v int) *MonitoringProcessCreate {
	_c.mutation.SetArticlesPrepared(v)
	return _c
}

// SetNillableArticlesPrepared sets the "articles_prepared" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableArticlesPrepared(v *int) *MonitoringProcessCreate {
	if v != nil {
		_c.SetArticlesPrepared(*v)
	}
	return _c
}

// SetCommentsGenerated sets the "comments_generated" field.
func (_c *MonitoringProcessCreate) SetCommentsGenerated(v int) *MonitoringProcessCreate {
	_c.mutation.SetCommentsGenerated(v)
	return _c
}

// SetNillableCommentsGenerated sets the "comments_generated" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableCommentsGenerated(v *int) *MonitoringProcessCreate {
	if v != nil {
		_c.SetCommentsGenerated(*v)
	}
	return _c
}

// SetCommentsPosted sets the "comments_posted" field.
func (_c *MonitoringProcessCreate) SetCommentsPosted(v int) *MonitoringProcessCreate {
	_c.mutation.SetCommentsPosted(v)
	return _c
}

// SetNillableCommentsPosted sets the "comments_posted" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableCommentsPosted(v *int) *MonitoringProcessCreate {
	if v != nil {
		_c.SetCommentsPosted(*v)
	}
	return _c
}

// SetErrorsDiscovery sets the "errors_discovery" field.
func (_c *MonitoringProcessCreate) SetErrorsDiscovery(v int) *MonitoringProcessCreate {
	_c.mutation.SetErrorsDiscovery(v)
	return _c
}

// SetNillableErrorsDiscovery sets the "errors_discovery" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableErrorsDiscovery(v *int) *MonitoringProcessCreate {
	if v != nil {
		_c.SetErrorsDiscovery(*v)
	}
	return _c
}

// SetErrorsPreparation sets the "errors_preparation" field.
func (_c *MonitoringProcessCreate) SetErrorsPreparation(v int) *MonitoringProcessCreate {
	_c.mutation.SetErrorsPreparation(v)
	return _c
}

// SetNillableErrorsPreparation sets the "errors_preparation" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableErrorsPreparation(v *int) *MonitoringProcessCreate {
	if v != nil {
		_c.SetErrorsPreparation(*v)
	}
	return _c
}

// SetErrorsGeneration sets the "errors_generation" field.
func (_c *MonitoringProcessCreate) SetErrorsGeneration(v int) *MonitoringProcessCreate {
	_c.mutation.SetErrorsGeneration(v)
	return _c
}

// SetNillableErrorsGeneration sets the "errors_generation" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableErrorsGeneration(v *int) *MonitoringProcessCreate {
	if v != nil {
		_c.SetErrorsGeneration(*v)
	}
	return _c
}

// SetErrorsPosting sets the "errors_posting" field.
func (_c *MonitoringProcessCreate) SetErrorsPosting(v int) *MonitoringProcessCreate {
	_c.mutation.SetErrorsPosting(v)
	return _c
}

// SetNillableErrorsPosting sets the "errors_posting" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableErrorsPosting(v *int) *MonitoringProcessCreate {
	if v != nil {
		_c.SetErrorsPosting(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *MonitoringProcessCreate) SetErrorMessage(v string) *MonitoringProcessCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableErrorMessage(v *string) *MonitoringProcessCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MonitoringProcessCreate) SetCreatedAt(v time.Time) *MonitoringProcessCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableCreatedAt(v *time.Time) *MonitoringProcessCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MonitoringProcessCreate) SetUpdatedAt(v time.Time) *MonitoringProcessCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MonitoringProcessCreate) SetNillableUpdatedAt(v *time.Time) *MonitoringProcessCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MonitoringProcessCreate) SetID(v string) *MonitoringProcessCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *MonitoringProcessCreate) SetOwnerID(id string) *MonitoringProcessCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *MonitoringProcessCreate) SetOwner(v *User) *MonitoringProcessCreate {
	return _c.SetOwnerID(v.ID)
}

// AddCredentialIDs adds the "credentials" edge to the UpstreamCredential entity by IDs.
func (_c *MonitoringProcessCreate) AddCredentialIDs(ids ...string) *MonitoringProcessCreate {
	_c.mutation.AddCredentialIDs(ids...)
	return _c
}

// AddCredentials adds the "credentials" edges to the UpstreamCredential entity.
func (_c *MonitoringProcessCreate) AddCredentials(v ...*UpstreamCredential) *MonitoringProcessCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCredentialIDs(ids...)
}

// AddTemplateIDs adds the "templates" edge to the PromptTemplate entity by IDs.
func (_c *MonitoringProcessCreate) AddTemplateIDs(ids ...string) *MonitoringProcessCreate {
	_c.mutation.AddTemplateIDs(ids...)
	return _c
}

// AddTemplates adds the "templates" edges to the PromptTemplate entity.
func (_c *MonitoringProcessCreate) AddTemplates(v ...*PromptTemplate) *MonitoringProcessCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTemplateIDs(ids...)
}

// AddWorkRecordIDs adds the "work_records" edge to the WorkRecord entity by IDs.
func (_c *MonitoringProcessCreate) AddWorkRecordIDs(ids ...string) *MonitoringProcessCreate {
	_c.mutation.AddWorkRecordIDs(ids...)
	return _c
}

// AddWorkRecords adds the "work_records" edges to the WorkRecord entity.
func (_c *MonitoringProcessCreate) AddWorkRecords(v ...*WorkRecord) *MonitoringProcessCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWorkRecordIDs(ids...)
}

// AddStageTaskIDs adds the "stage_tasks" edge to the StageTask entity by IDs.
func (_c *MonitoringProcessCreate) AddStageTaskIDs(ids ...string) *MonitoringProcessCreate {
	_c.mutation.AddStageTaskIDs(ids...)
	return _c
}

// AddStageTasks adds the "stage_tasks" edges to the StageTask entity.
func (_c *MonitoringProcessCreate) AddStageTasks(v ...*StageTask) *MonitoringProcessCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageTaskIDs(ids...)
}

// Mutation returns the MonitoringProcessMutation object of the builder.
func (_c *MonitoringProcessCreate) Mutation() *MonitoringProcessMutation {
	return _c.mutation
}

// Save creates the MonitoringProcess in the database.
func (_c *MonitoringProcessCreate) Save(ctx context.Context) (*MonitoringProcess, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MonitoringProcessCreate) SaveX(ctx context.Context) *MonitoringProcess {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitoringProcessCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitoringProcessCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MonitoringProcessCreate) defaults() {
	if _, ok := _c.mutation.GenerateOnly(); !ok {
		v := monitoringprocess.DefaultGenerateOnly
		_c.mutation.SetGenerateOnly(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := monitoringprocess.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ArticlesDiscovered(); !ok {
		v := monitoringprocess.DefaultArticlesDiscovered
		_c.mutation.SetArticlesDiscovered(v)
	}
	if _, ok := _c.mutation.ArticlesPrepared(); !ok {
		v := monitoringprocess.DefaultArticlesPrepared
		_c.mutation.SetArticlesPrepared(v)
	}
	if _, ok := _c.mutation.CommentsGenerated(); !ok {
		v := monitoringprocess.DefaultCommentsGenerated
		_c.mutation.SetCommentsGenerated(v)
	}
	if _, ok := _c.mutation.CommentsPosted(); !ok {
		v := monitoringprocess.DefaultCommentsPosted
		_c.mutation.SetCommentsPosted(v)
	}
	if _, ok := _c.mutation.ErrorsDiscovery(); !ok {
		v := monitoringprocess.DefaultErrorsDiscovery
		_c.mutation.SetErrorsDiscovery(v)
	}
	if _, ok := _c.mutation.ErrorsPreparation(); !ok {
		v := monitoringprocess.DefaultErrorsPreparation
		_c.mutation.SetErrorsPreparation(v)
	}
	if _, ok := _c.mutation.ErrorsGeneration(); !ok {
		v := monitoringprocess.DefaultErrorsGeneration
		_c.mutation.SetErrorsGeneration(v)
	}
	if _, ok := _c.mutation.ErrorsPosting(); !ok {
		v := monitoringprocess.DefaultErrorsPosting
		_c.mutation.SetErrorsPosting(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := monitoringprocess.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := monitoringprocess.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MonitoringProcessCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MonitoringProcess.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "MonitoringProcess.name"`)}
	}
	if _, ok := _c.mutation.LlmProviderID(); !ok {
		return &ValidationError{Name: "llm_provider_id", err: errors.New(`ent: missing required field "MonitoringProcess.llm_provider_id"`)}
	}
	if _, ok := _c.mutation.GenerateOnly(); !ok {
		return &ValidationError{Name: "generate_only", err: errors.New(`ent: missing required field "MonitoringProcess.generate_only"`)}
	}
	if _, ok := _c.mutation.MaxDurationMinutes(); !ok {
		return &ValidationError{Name: "max_duration_minutes", err: errors.New(`ent: missing required field "MonitoringProcess.max_duration_minutes"`)}
	}
	if v, ok := _c.mutation.MaxDurationMinutes(); ok {
		if err := monitoringprocess.MaxDurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "max_duration_minutes", err: fmt.Errorf(`ent: validator failed for field "MonitoringProcess.max_duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MonitoringProcess.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := monitoringprocess.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MonitoringProcess.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ArticlesDiscovered(); !ok {
		return &ValidationError{Name: "articles_discovered", err: errors.New(`ent: missing required field "MonitoringProcess.articles_discovered"`)}
	}
	if _, ok := _c.mutation.ArticlesPrepared(); !ok {
		return &ValidationError{Name: "articles_prepared", err: errors.New(`ent: missing required field "MonitoringProcess.articles_prepared"`)}
	}
	if _, ok := _c.mutation.CommentsGenerated(); !ok {
		return &ValidationError{Name: "comments_generated", err: errors.New(`ent: missing required field "MonitoringProcess.comments_generated"`)}
	}
	if _, ok := _c.mutation.CommentsPosted(); !ok {
		return &ValidationError{Name: "comments_posted", err: errors.New(`ent: missing required field "MonitoringProcess.comments_posted"`)}
	}
	if _, ok := _c.mutation.ErrorsDiscovery(); !ok {
		return &ValidationError{Name: "errors_discovery", err: errors.New(`ent: missing required field "MonitoringProcess.errors_discovery"`)}
	}
	if _, ok := _c.mutation.ErrorsPreparation(); !ok {
		return &ValidationError{Name: "errors_preparation", err: errors.New(`ent: missing required field "MonitoringProcess.errors_preparation"`)}
	}
	if _, ok := _c.mutation.ErrorsGeneration(); !ok {
		return &ValidationError{Name: "errors_generation", err: errors.New(`ent: missing required field "MonitoringProcess.errors_generation"`)}
	}
	if _, ok := _c.mutation.ErrorsPosting(); !ok {
		return &ValidationError{Name: "errors_posting", err: errors.New(`ent: missing required field "MonitoringProcess.errors_posting"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MonitoringProcess.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MonitoringProcess.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "MonitoringProcess.owner"`)}
	}
	return nil
}

func (_c *MonitoringProcessCreate) sqlSave(ctx context.Context) (*MonitoringProcess, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected MonitoringProcess.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MonitoringProcessCreate) createSpec() (*MonitoringProcess, *sqlgraph.CreateSpec) {
	var (
		_node = &MonitoringProcess{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(monitoringprocess.Table, sqlgraph.NewFieldSpec(monitoringprocess.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(monitoringprocess.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(monitoringprocess.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.LlmProviderID(); ok {
		_spec.SetField(monitoringprocess.FieldLlmProviderID, field.TypeString, value)
		_node.LlmProviderID = value
	}
	if value, ok := _c.mutation.TabFilters(); ok {
		_spec.SetField(monitoringprocess.FieldTabFilters, field.TypeJSON, value)
		_node.TabFilters = value
	}
	if value, ok := _c.mutation.CategoryFilter(); ok {
		_spec.SetField(monitoringprocess.FieldCategoryFilter, field.TypeString, value)
		_node.CategoryFilter = &value
	}
	if value, ok := _c.mutation.KeywordFilters(); ok {
		_spec.SetField(monitoringprocess.FieldKeywordFilters, field.TypeJSON, value)
		_node.KeywordFilters = value
	}
	if value, ok := _c.mutation.GenerateOnly(); ok {
		_spec.SetField(monitoringprocess.FieldGenerateOnly, field.TypeBool, value)
		_node.GenerateOnly = value
	}
	if value, ok := _c.mutation.MaxDurationMinutes(); ok {
		_spec.SetField(monitoringprocess.FieldMaxDurationMinutes, field.TypeInt, value)
		_node.MaxDurationMinutes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(monitoringprocess.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StopReason(); ok {
		_spec.SetField(monitoringprocess.FieldStopReason, field.TypeString, value)
		_node.StopReason = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(monitoringprocess.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(monitoringprocess.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.StoppedAt(); ok {
		_spec.SetField(monitoringprocess.FieldStoppedAt, field.TypeTime, value)
		_node.StoppedAt = &value
	}
	if value, ok := _c.mutation.StageTaskIds(); ok {
		_spec.SetField(monitoringprocess.FieldStageTaskIds, field.TypeJSON, value)
		_node.StageTaskIds = value
	}
	if value, ok := _c.mutation.ArticlesDiscovered(); ok {
		_spec.SetField(monitoringprocess.FieldArticlesDiscovered, field.TypeInt, value)
		_node.ArticlesDiscovered = value
	}
	if value, ok := _c.mutation.ArticlesPrepared(); ok {
		_spec.SetField(monitoringprocess.FieldArticlesPrepared, field.TypeInt, value)
		_node.ArticlesPrepared = value
	}
	if value, ok := _c.mutation.CommentsGenerated(); ok {
		_spec.SetField(monitoringprocess.FieldCommentsGenerated, field.TypeInt, value)
		_node.CommentsGenerated = value
	}
	if value, ok := _c.mutation.CommentsPosted(); ok {
		_spec.SetField(monitoringprocess.FieldCommentsPosted, field.TypeInt, value)
		_node.CommentsPosted = value
	}
	if value, ok := _c.mutation.ErrorsDiscovery(); ok {
		_spec.SetField(monitoringprocess.FieldErrorsDiscovery, field.TypeInt, value)
		_node.ErrorsDiscovery = value
	}
	if value, ok := _c.mutation.ErrorsPreparation(); ok {
		_spec.SetField(monitoringprocess.FieldErrorsPreparation, field.TypeInt, value)
		_node.ErrorsPreparation = value
	}
	if value, ok := _c.mutation.ErrorsGeneration(); ok {
		_spec.SetField(monitoringprocess.FieldErrorsGeneration, field.TypeInt, value)
		_node.ErrorsGeneration = value
	}
	if value, ok := _c.mutation.ErrorsPosting(); ok {
		_spec.SetField(monitoringprocess.FieldErrorsPosting, field.TypeInt, value)
		_node.ErrorsPosting = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(monitoringprocess.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(monitoringprocess.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(monitoringprocess.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   monitoringprocess.OwnerTable,
			Columns: []string{monitoringprocess.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CredentialsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TemplatesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WorkRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StageTasksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MonitoringProcess.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MonitoringProcessUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *MonitoringProcessCreate) OnConflict(opts ...sql.ConflictOption) *MonitoringProcessUpsertOne {
	_c.conflict = opts
	return &MonitoringProcessUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MonitoringProcess.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MonitoringProcessCreate) OnConflictColumns(columns ...string) *MonitoringProcessUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MonitoringProcessUpsertOne{
		create: _c,
	}
}

type (
	// MonitoringProcessUpsertOne is the builder for "upsert"-ing
	//  one MonitoringProcess node.
	MonitoringProcessUpsertOne struct {
		create *MonitoringProcessCreate
	}

	// MonitoringProcessUpsert is the "OnConflict" setter.
	MonitoringProcessUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *MonitoringProcessUpsert) SetName(v string) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateName() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *MonitoringProcessUpsert) SetDescription(v string) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateDescription() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *MonitoringProcessUpsert) ClearDescription() *MonitoringProcessUpsert {
	u.SetNull(monitoringprocess.FieldDescription)
	return u
}

// SetLlmProviderID sets the "llm_provider_id" field.
func (u *MonitoringProcessUpsert) SetLlmProviderID(v string) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldLlmProviderID, v)
	return u
}

// UpdateLlmProviderID sets the "llm_provider_id" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateLlmProviderID() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldLlmProviderID)
	return u
}

// SetTabFilters sets the "tab_filters" field.
func (u *MonitoringProcessUpsert) SetTabFilters(v []string) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldTabFilters, v)
	return u
}

// UpdateTabFilters sets the "tab_filters" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateTabFilters() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldTabFilters)
	return u
}

// ClearTabFilters clears the value of the "tab_filters" field.
func (u *MonitoringProcessUpsert) ClearTabFilters() *MonitoringProcessUpsert {
	u.SetNull(monitoringprocess.FieldTabFilters)
	return u
}

// SetCategoryFilter sets the "category_filter" field.
func (u *MonitoringProcessUpsert) SetCategoryFilter(v string) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldCategoryFilter, v)
	return u
}

// UpdateCategoryFilter sets the "category_filter" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateCategoryFilter() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldCategoryFilter)
	return u
}

// ClearCategoryFilter clears the value of the "category_filter" field.
func (u *MonitoringProcessUpsert) ClearCategoryFilter() *MonitoringProcessUpsert {
	u.SetNull(monitoringprocess.FieldCategoryFilter)
	return u
}

// SetKeywordFilters sets the "keyword_filters" field.
func (u *MonitoringProcessUpsert) SetKeywordFilters(v []string) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldKeywordFilters, v)
	return u
}

// UpdateKeywordFilters sets the "keyword_filters" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateKeywordFilters() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldKeywordFilters)
	return u
}

// ClearKeywordFilters clears the value of the "keyword_filters" field.
func (u *MonitoringProcessUpsert) ClearKeywordFilters() *MonitoringProcessUpsert {
	u.SetNull(monitoringprocess.FieldKeywordFilters)
	return u
}

// SetGenerateOnly sets the "generate_only" field.
func (u *MonitoringProcessUpsert) SetGenerateOnly(v bool) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldGenerateOnly, v)
	return u
}

// UpdateGenerateOnly sets the "generate_only" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateGenerateOnly() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldGenerateOnly)
	return u
}

// SetMaxDurationMinutes sets the "max_duration_minutes" field.
func (u *MonitoringProcessUpsert) SetMaxDurationMinutes(v int) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldMaxDurationMinutes, v)
	return u
}

// UpdateMaxDurationMinutes sets the "max_duration_minutes" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateMaxDurationMinutes() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldMaxDurationMinutes)
	return u
}

// AddMaxDurationMinutes adds v to the "max_duration_minutes" field.
func (u *MonitoringProcessUpsert) AddMaxDurationMinutes(v int) *MonitoringProcessUpsert {
	u.Add(monitoringprocess.FieldMaxDurationMinutes, v)
	return u
}

// SetStatus sets the "status" field.
func (u *MonitoringProcessUpsert) SetStatus(v monitoringprocess.Status) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateStatus() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldStatus)
	return u
}

// SetStopReason sets the "stop_reason" field.
func (u *MonitoringProcessUpsert) SetStopReason(v string) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldStopReason, v)
	return u
}

// UpdateStopReason sets the "stop_reason" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateStopReason() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldStopReason)
	return u
}

// ClearStopReason clears the value of the "stop_reason" field.
func (u *MonitoringProcessUpsert) ClearStopReason() *MonitoringProcessUpsert {
	u.SetNull(monitoringprocess.FieldStopReason)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *MonitoringProcessUpsert) SetStartedAt(v time.Time) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateStartedAt() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *MonitoringProcessUpsert) ClearStartedAt() *MonitoringProcessUpsert {
	u.SetNull(monitoringprocess.FieldStartedAt)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *MonitoringProcessUpsert) SetExpiresAt(v time.Time) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateExpiresAt() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *MonitoringProcessUpsert) ClearExpiresAt() *MonitoringProcessUpsert {
	u.SetNull(monitoringprocess.FieldExpiresAt)
	return u
}

// SetStoppedAt sets the "stopped_at" field.
func (u *MonitoringProcessUpsert) SetStoppedAt(v time.Time) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldStoppedAt, v)
	return u
}

// UpdateStoppedAt sets the "stopped_at" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateStoppedAt() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldStoppedAt)
	return u
}

// ClearStoppedAt clears the value of the "stopped_at" field.
func (u *MonitoringProcessUpsert) ClearStoppedAt() *MonitoringProcessUpsert {
	u.SetNull(monitoringprocess.FieldStoppedAt)
	return u
}

// SetStageTaskIds sets the "stage_task_ids" field.
func (u *MonitoringProcessUpsert) SetStageTaskIds(v map[string]string) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldStageTaskIds, v)
	return u
}

// UpdateStageTaskIds sets the "stage_task_ids" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateStageTaskIds() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldStageTaskIds)
	return u
}

// ClearStageTaskIds clears the value of the "stage_task_ids" field.
func (u *MonitoringProcessUpsert) ClearStageTaskIds() *MonitoringProcessUpsert {
	u.SetNull(monitoringprocess.FieldStageTaskIds)
	return u
}

// SetArticlesDiscovered sets the "articles_discovered" field.
func (u *MonitoringProcessUpsert) SetArticlesDiscovered(v int) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldArticlesDiscovered, v)
	return u
}

// UpdateArticlesDiscovered sets the "articles_discovered" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateArticlesDiscovered() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldArticlesDiscovered)
	return u
}

// AddArticlesDiscovered adds v to the "articles_discovered" field.
func (u *MonitoringProcessUpsert) AddArticlesDiscovered(v int) *MonitoringProcessUpsert {
	u.Add(monitoringprocess.FieldArticlesDiscovered, v)
	return u
}

// SetArticlesPrepared sets the "articles_prepared" field.
func (u *MonitoringProcessUpsert) SetArticlesPrepared(v int) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldArticlesPrepared, v)
	return u
}

// UpdateArticlesPrepared sets the "articles_prepared" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateArticlesPrepared() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldArticlesPrepared)
	return u
}

// AddArticlesPrepared adds v to the "articles_prepared" field.
func (u *MonitoringProcessUpsert) AddArticlesPrepared(v int) *MonitoringProcessUpsert {
	u.Add(monitoringprocess.FieldArticlesPrepared, v)
	return u
}

// SetCommentsGenerated sets the "comments_generated" field.
func (u *MonitoringProcessUpsert) SetCommentsGenerated(v int) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldCommentsGenerated, v)
	return u
}

// UpdateCommentsGenerated sets the "comments_generated" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateCommentsGenerated() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldCommentsGenerated)
	return u
}

// AddCommentsGenerated adds v to the "comments_generated" field.
func (u *MonitoringProcessUpsert) AddCommentsGenerated(v int) *MonitoringProcessUpsert {
	u.Add(monitoringprocess.FieldCommentsGenerated, v)
	return u
}

// SetCommentsPosted sets the "comments_posted" field.
func (u *MonitoringProcessUpsert) SetCommentsPosted(v int) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldCommentsPosted, v)
	return u
}

// UpdateCommentsPosted sets the "comments_posted" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateCommentsPosted() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldCommentsPosted)
	return u
}

// AddCommentsPosted adds v to the "comments_posted" field.
func (u *MonitoringProcessUpsert) AddCommentsPosted(v int) *MonitoringProcessUpsert {
	u.Add(monitoringprocess.FieldCommentsPosted, v)
	return u
}

// SetErrorsDiscovery sets the "errors_discovery" field.
func (u *MonitoringProcessUpsert) SetErrorsDiscovery(v int) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldErrorsDiscovery, v)
	return u
}

// UpdateErrorsDiscovery sets the "errors_discovery" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateErrorsDiscovery() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldErrorsDiscovery)
	return u
}

// AddErrorsDiscovery adds v to the "errors_discovery" field.
func (u *MonitoringProcessUpsert) AddErrorsDiscovery(v int) *MonitoringProcessUpsert {
	u.Add(monitoringprocess.FieldErrorsDiscovery, v)
	return u
}

// SetErrorsPreparation sets the "errors_preparation" field.
func (u *MonitoringProcessUpsert) SetErrorsPreparation(v int) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldErrorsPreparation, v)
	return u
}

// UpdateErrorsPreparation sets the "errors_preparation" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateErrorsPreparation() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldErrorsPreparation)
	return u
}

// AddErrorsPreparation adds v to the "errors_preparation" field.
func (u *MonitoringProcessUpsert) AddErrorsPreparation(v int) *MonitoringProcessUpsert {
	u.Add(monitoringprocess.FieldErrorsPreparation, v)
	return u
}

// SetErrorsGeneration sets the "errors_generation" field.
func (u *MonitoringProcessUpsert) SetErrorsGeneration(v int) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldErrorsGeneration, v)
	return u
}

// UpdateErrorsGeneration sets the "errors_generation" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateErrorsGeneration() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldErrorsGeneration)
	return u
}

// AddErrorsGeneration adds v to the "errors_generation" field.
func (u *MonitoringProcessUpsert) AddErrorsGeneration(v int) *MonitoringProcessUpsert {
	u.Add(monitoringprocess.FieldErrorsGeneration, v)
	return u
}

// SetErrorsPosting sets the "errors_posting" field.
func (u *MonitoringProcessUpsert) SetErrorsPosting(v int) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldErrorsPosting, v)
	return u
}

// UpdateErrorsPosting sets the "errors_posting" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateErrorsPosting() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldErrorsPosting)
	return u
}

// AddErrorsPosting adds v to the "errors_posting" field.
func (u *MonitoringProcessUpsert) AddErrorsPosting(v int) *MonitoringProcessUpsert {
	u.Add(monitoringprocess.FieldErrorsPosting, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *MonitoringProcessUpsert) SetErrorMessage(v string) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateErrorMessage() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MonitoringProcessUpsert) ClearErrorMessage() *MonitoringProcessUpsert {
	u.SetNull(monitoringprocess.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MonitoringProcessUpsert) SetUpdatedAt(v time.Time) *MonitoringProcessUpsert {
	u.Set(monitoringprocess.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MonitoringProcessUpsert) UpdateUpdatedAt() *MonitoringProcessUpsert {
	u.SetExcluded(monitoringprocess.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MonitoringProcess.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(monitoringprocess.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MonitoringProcessUpsertOne) UpdateNewValues() *MonitoringProcessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(monitoringprocess.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(monitoringprocess.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(monitoringprocess.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MonitoringProcess.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MonitoringProcessUpsertOne) Ignore() *MonitoringProcessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MonitoringProcessUpsertOne) DoNothing() *MonitoringProcessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MonitoringProcessCreate.OnConflict
// documentation for more info.
func (u *MonitoringProcessUpsertOne) Update(set func(*MonitoringProcessUpsert)) *MonitoringProcessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MonitoringProcessUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *MonitoringProcessUpsertOne) SetName(v string) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateName() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *MonitoringProcessUpsertOne) SetDescription(v string) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateDescription() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *MonitoringProcessUpsertOne) ClearDescription() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearDescription()
	})
}

// SetLlmProviderID sets the "llm_provider_id" field.
func (u *MonitoringProcessUpsertOne) SetLlmProviderID(v string) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetLlmProviderID(v)
	})
}

// UpdateLlmProviderID sets the "llm_provider_id" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateLlmProviderID() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateLlmProviderID()
	})
}

// SetTabFilters sets the "tab_filters" field.
func (u *MonitoringProcessUpsertOne) SetTabFilters(v []string) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetTabFilters(v)
	})
}

// UpdateTabFilters sets the "tab_filters" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateTabFilters() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateTabFilters()
	})
}

// ClearTabFilters clears the value of the "tab_filters" field.
func (u *MonitoringProcessUpsertOne) ClearTabFilters() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearTabFilters()
	})
}

// SetCategoryFilter sets the "category_filter" field.
func (u *MonitoringProcessUpsertOne) SetCategoryFilter(v string) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetCategoryFilter(v)
	})
}

// UpdateCategoryFilter sets the "category_filter" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateCategoryFilter() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateCategoryFilter()
	})
}

// ClearCategoryFilter clears the value of the "category_filter" field.
func (u *MonitoringProcessUpsertOne) ClearCategoryFilter() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearCategoryFilter()
	})
}

// SetKeywordFilters sets the "keyword_filters" field.
func (u *MonitoringProcessUpsertOne) SetKeywordFilters(v []string) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetKeywordFilters(v)
	})
}

// UpdateKeywordFilters sets the "keyword_filters" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateKeywordFilters() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateKeywordFilters()
	})
}

// ClearKeywordFilters clears the value of the "keyword_filters" field.
func (u *MonitoringProcessUpsertOne) ClearKeywordFilters() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearKeywordFilters()
	})
}

// SetGenerateOnly sets the "generate_only" field.
func (u *MonitoringProcessUpsertOne) SetGenerateOnly(v bool) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetGenerateOnly(v)
	})
}

// UpdateGenerateOnly sets the "generate_only" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateGenerateOnly() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateGenerateOnly()
	})
}

// SetMaxDurationMinutes sets the "max_duration_minutes" field.
func (u *MonitoringProcessUpsertOne) SetMaxDurationMinutes(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetMaxDurationMinutes(v)
	})
}

// AddMaxDurationMinutes adds v to the "max_duration_minutes" field.
func (u *MonitoringProcessUpsertOne) AddMaxDurationMinutes(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddMaxDurationMinutes(v)
	})
}

// UpdateMaxDurationMinutes sets the "max_duration_minutes" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateMaxDurationMinutes() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateMaxDurationMinutes()
	})
}

// SetStatus sets the "status" field.
func (u *MonitoringProcessUpsertOne) SetStatus(v monitoringprocess.Status) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateStatus() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateStatus()
	})
}

// SetStopReason sets the "stop_reason" field.
func (u *MonitoringProcessUpsertOne) SetStopReason(v string) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetStopReason(v)
	})
}

// UpdateStopReason sets the "stop_reason" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateStopReason() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateStopReason()
	})
}

// ClearStopReason clears the value of the "stop_reason" field.
func (u *MonitoringProcessUpsertOne) ClearStopReason() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearStopReason()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *MonitoringProcessUpsertOne) SetStartedAt(v time.Time) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateStartedAt() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *MonitoringProcessUpsertOne) ClearStartedAt() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearStartedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *MonitoringProcessUpsertOne) SetExpiresAt(v time.Time) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateExpiresAt() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *MonitoringProcessUpsertOne) ClearExpiresAt() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearExpiresAt()
	})
}

// SetStoppedAt sets the "stopped_at" field.
func (u *MonitoringProcessUpsertOne) SetStoppedAt(v time.Time) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetStoppedAt(v)
	})
}

// UpdateStoppedAt sets the "stopped_at" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateStoppedAt() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateStoppedAt()
	})
}

// ClearStoppedAt clears the value of the "stopped_at" field.
func (u *MonitoringProcessUpsertOne) ClearStoppedAt() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearStoppedAt()
	})
}

// SetStageTaskIds sets the "stage_task_ids" field.
func (u *MonitoringProcessUpsertOne) SetStageTaskIds(v map[string]string) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetStageTaskIds(v)
	})
}

// UpdateStageTaskIds sets the "stage_task_ids" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateStageTaskIds() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateStageTaskIds()
	})
}

// ClearStageTaskIds clears the value of the "stage_task_ids" field.
func (u *MonitoringProcessUpsertOne) ClearStageTaskIds() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearStageTaskIds()
	})
}

// SetArticlesDiscovered sets the "articles_discovered" field.
func (u *MonitoringProcessUpsertOne) SetArticlesDiscovered(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetArticlesDiscovered(v)
	})
}

// AddArticlesDiscovered adds v to the "articles_discovered" field.
func (u *MonitoringProcessUpsertOne) AddArticlesDiscovered(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddArticlesDiscovered(v)
	})
}

// UpdateArticlesDiscovered sets the "articles_discovered" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateArticlesDiscovered() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateArticlesDiscovered()
	})
}

// SetArticlesPrepared sets the "articles_prepared" field.
func (u *MonitoringProcessUpsertOne) SetArticlesPrepared(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetArticlesPrepared(v)
	})
}

// AddArticlesPrepared adds v to the "articles_prepared" field.
func (u *MonitoringProcessUpsertOne) AddArticlesPrepared(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddArticlesPrepared(v)
	})
}

// UpdateArticlesPrepared sets the "articles_prepared" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateArticlesPrepared() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateArticlesPrepared()
	})
}

// SetCommentsGenerated sets the "comments_generated" field.
func (u *MonitoringProcessUpsertOne) SetCommentsGenerated(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetCommentsGenerated(v)
	})
}

// AddCommentsGenerated adds v to the "comments_generated" field.
func (u *MonitoringProcessUpsertOne) AddCommentsGenerated(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddCommentsGenerated(v)
	})
}

// UpdateCommentsGenerated sets the "comments_generated" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateCommentsGenerated() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateCommentsGenerated()
	})
}

// SetCommentsPosted sets the "comments_posted" field.
func (u *MonitoringProcessUpsertOne) SetCommentsPosted(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetCommentsPosted(v)
	})
}

// AddCommentsPosted adds v to the "comments_posted" field.
func (u *MonitoringProcessUpsertOne) AddCommentsPosted(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddCommentsPosted(v)
	})
}

// UpdateCommentsPosted sets the "comments_posted" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateCommentsPosted() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateCommentsPosted()
	})
}

// SetErrorsDiscovery sets the "errors_discovery" field.
func (u *MonitoringProcessUpsertOne) SetErrorsDiscovery(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetErrorsDiscovery(v)
	})
}

// AddErrorsDiscovery adds v to the "errors_discovery" field.
func (u *MonitoringProcessUpsertOne) AddErrorsDiscovery(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddErrorsDiscovery(v)
	})
}

// UpdateErrorsDiscovery sets the "errors_discovery" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateErrorsDiscovery() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateErrorsDiscovery()
	})
}

// SetErrorsPreparation sets the "errors_preparation" field.
func (u *MonitoringProcessUpsertOne) SetErrorsPreparation(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetErrorsPreparation(v)
	})
}

// AddErrorsPreparation adds v to the "errors_preparation" field.
func (u *MonitoringProcessUpsertOne) AddErrorsPreparation(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddErrorsPreparation(v)
	})
}

// UpdateErrorsPreparation sets the "errors_preparation" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateErrorsPreparation() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateErrorsPreparation()
	})
}

// SetErrorsGeneration sets the "errors_generation" field.
func (u *MonitoringProcessUpsertOne) SetErrorsGeneration(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetErrorsGeneration(v)
	})
}

// AddErrorsGeneration adds v to the "errors_generation" field.
func (u *MonitoringProcessUpsertOne) AddErrorsGeneration(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddErrorsGeneration(v)
	})
}

// UpdateErrorsGeneration sets the "errors_generation" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateErrorsGeneration() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateErrorsGeneration()
	})
}

// SetErrorsPosting sets the "errors_posting" field.
func (u *MonitoringProcessUpsertOne) SetErrorsPosting(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetErrorsPosting(v)
	})
}

// AddErrorsPosting adds v to the "errors_posting" field.
func (u *MonitoringProcessUpsertOne) AddErrorsPosting(v int) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddErrorsPosting(v)
	})
}

// UpdateErrorsPosting sets the "errors_posting" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateErrorsPosting() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateErrorsPosting()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *MonitoringProcessUpsertOne) SetErrorMessage(v string) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateErrorMessage() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MonitoringProcessUpsertOne) ClearErrorMessage() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MonitoringProcessUpsertOne) SetUpdatedAt(v time.Time) *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MonitoringProcessUpsertOne) UpdateUpdatedAt() *MonitoringProcessUpsertOne {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MonitoringProcessUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MonitoringProcessCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MonitoringProcessUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MonitoringProcessUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MonitoringProcessUpsertOne.ID is not supported by MySQL driver. Use MonitoringProcessUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MonitoringProcessUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MonitoringProcessCreateBulk is the builder for creating many MonitoringProcess entities in bulk.
type MonitoringProcessCreateBulk struct {
	config
	err      error
	builders []*MonitoringProcessCreate
	conflict []sql.ConflictOption
}

// Save creates the MonitoringProcess entities in the database.
func (_c *MonitoringProcessCreateBulk) Save(ctx context.Context) ([]*MonitoringProcess, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MonitoringProcess, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MonitoringProcessMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MonitoringProcessCreateBulk) SaveX(ctx context.Context) []*MonitoringProcess {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitoringProcessCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitoringProcessCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MonitoringProcess.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MonitoringProcessUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *MonitoringProcessCreateBulk) OnConflict(opts ...sql.ConflictOption) *MonitoringProcessUpsertBulk {
	_c.conflict = opts
	return &MonitoringProcessUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MonitoringProcess.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MonitoringProcessCreateBulk) OnConflictColumns(columns ...string) *MonitoringProcessUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MonitoringProcessUpsertBulk{
		create: _c,
	}
}

// MonitoringProcessUpsertBulk is the builder for "upsert"-ing
// a bulk of MonitoringProcess nodes.
type MonitoringProcessUpsertBulk struct {
	create *MonitoringProcessCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MonitoringProcess.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(monitoringprocess.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MonitoringProcessUpsertBulk) UpdateNewValues() *MonitoringProcessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(monitoringprocess.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(monitoringprocess.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(monitoringprocess.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MonitoringProcess.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MonitoringProcessUpsertBulk) Ignore() *MonitoringProcessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MonitoringProcessUpsertBulk) DoNothing() *MonitoringProcessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MonitoringProcessCreateBulk.OnConflict
// documentation for more info.
func (u *MonitoringProcessUpsertBulk) Update(set func(*MonitoringProcessUpsert)) *MonitoringProcessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MonitoringProcessUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *MonitoringProcessUpsertBulk) SetName(v string) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateName() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *MonitoringProcessUpsertBulk) SetDescription(v string) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateDescription() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *MonitoringProcessUpsertBulk) ClearDescription() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearDescription()
	})
}

// SetLlmProviderID sets the "llm_provider_id" field.
func (u *MonitoringProcessUpsertBulk) SetLlmProviderID(v string) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetLlmProviderID(v)
	})
}

// UpdateLlmProviderID sets the "llm_provider_id" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateLlmProviderID() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateLlmProviderID()
	})
}

// SetTabFilters sets the "tab_filters" field.
func (u *MonitoringProcessUpsertBulk) SetTabFilters(v []string) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetTabFilters(v)
	})
}

// UpdateTabFilters sets the "tab_filters" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateTabFilters() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateTabFilters()
	})
}

// ClearTabFilters clears the value of the "tab_filters" field.
func (u *MonitoringProcessUpsertBulk) ClearTabFilters() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearTabFilters()
	})
}

// SetCategoryFilter sets the "category_filter" field.
func (u *MonitoringProcessUpsertBulk) SetCategoryFilter(v string) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetCategoryFilter(v)
	})
}

// UpdateCategoryFilter sets the "category_filter" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateCategoryFilter() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateCategoryFilter()
	})
}

// ClearCategoryFilter clears the value of the "category_filter" field.
func (u *MonitoringProcessUpsertBulk) ClearCategoryFilter() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearCategoryFilter()
	})
}

// SetKeywordFilters sets the "keyword_filters" field.
func (u *MonitoringProcessUpsertBulk) SetKeywordFilters(v []string) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetKeywordFilters(v)
	})
}

// UpdateKeywordFilters sets the "keyword_filters" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateKeywordFilters() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateKeywordFilters()
	})
}

// ClearKeywordFilters clears the value of the "keyword_filters" field.
func (u *MonitoringProcessUpsertBulk) ClearKeywordFilters() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearKeywordFilters()
	})
}

// SetGenerateOnly sets the "generate_only" field.
func (u *MonitoringProcessUpsertBulk) SetGenerateOnly(v bool) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetGenerateOnly(v)
	})
}

// UpdateGenerateOnly sets the "generate_only" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateGenerateOnly() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateGenerateOnly()
	})
}

// SetMaxDurationMinutes sets the "max_duration_minutes" field.
func (u *MonitoringProcessUpsertBulk) SetMaxDurationMinutes(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetMaxDurationMinutes(v)
	})
}

// AddMaxDurationMinutes adds v to the "max_duration_minutes" field.
func (u *MonitoringProcessUpsertBulk) AddMaxDurationMinutes(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddMaxDurationMinutes(v)
	})
}

// UpdateMaxDurationMinutes sets the "max_duration_minutes" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateMaxDurationMinutes() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateMaxDurationMinutes()
	})
}

// SetStatus sets the "status" field.
func (u *MonitoringProcessUpsertBulk) SetStatus(v monitoringprocess.Status) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateStatus() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateStatus()
	})
}

// SetStopReason sets the "stop_reason" field.
func (u *MonitoringProcessUpsertBulk) SetStopReason(v string) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetStopReason(v)
	})
}

// UpdateStopReason sets the "stop_reason" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateStopReason() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateStopReason()
	})
}

// ClearStopReason clears the value of the "stop_reason" field.
func (u *MonitoringProcessUpsertBulk) ClearStopReason() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearStopReason()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *MonitoringProcessUpsertBulk) SetStartedAt(v time.Time) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateStartedAt() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *MonitoringProcessUpsertBulk) ClearStartedAt() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearStartedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *MonitoringProcessUpsertBulk) SetExpiresAt(v time.Time) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateExpiresAt() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *MonitoringProcessUpsertBulk) ClearExpiresAt() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearExpiresAt()
	})
}

// SetStoppedAt sets the "stopped_at" field.
func (u *MonitoringProcessUpsertBulk) SetStoppedAt(v time.Time) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetStoppedAt(v)
	})
}

// UpdateStoppedAt sets the "stopped_at" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateStoppedAt() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateStoppedAt()
	})
}

// ClearStoppedAt clears the value of the "stopped_at" field.
func (u *MonitoringProcessUpsertBulk) ClearStoppedAt() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearStoppedAt()
	})
}

// SetStageTaskIds sets the "stage_task_ids" field.
func (u *MonitoringProcessUpsertBulk) SetStageTaskIds(v map[string]string) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetStageTaskIds(v)
	})
}

// UpdateStageTaskIds sets the "stage_task_ids" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateStageTaskIds() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateStageTaskIds()
	})
}

// ClearStageTaskIds clears the value of the "stage_task_ids" field.
func (u *MonitoringProcessUpsertBulk) ClearStageTaskIds() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearStageTaskIds()
	})
}

// SetArticlesDiscovered sets the "articles_discovered" field.
func (u *MonitoringProcessUpsertBulk) SetArticlesDiscovered(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetArticlesDiscovered(v)
	})
}

// AddArticlesDiscovered adds v to the "articles_discovered" field.
func (u *MonitoringProcessUpsertBulk) AddArticlesDiscovered(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddArticlesDiscovered(v)
	})
}

// UpdateArticlesDiscovered sets the "articles_discovered" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateArticlesDiscovered() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateArticlesDiscovered()
	})
}

// SetArticlesPrepared sets the "articles_prepared" field.
func (u *MonitoringProcessUpsertBulk) SetArticlesPrepared(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetArticlesPrepared(v)
	})
}

// AddArticlesPrepared adds v to the "articles_prepared" field.
func (u *MonitoringProcessUpsertBulk) AddArticlesPrepared(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddArticlesPrepared(v)
	})
}

// UpdateArticlesPrepared sets the "articles_prepared" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateArticlesPrepared() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateArticlesPrepared()
	})
}

// SetCommentsGenerated sets the "comments_generated" field.
func (u *MonitoringProcessUpsertBulk) SetCommentsGenerated(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetCommentsGenerated(v)
	})
}

// AddCommentsGenerated adds v to the "comments_generated" field.
func (u *MonitoringProcessUpsertBulk) AddCommentsGenerated(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddCommentsGenerated(v)
	})
}

// UpdateCommentsGenerated sets the "comments_generated" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateCommentsGenerated() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateCommentsGenerated()
	})
}

// SetCommentsPosted sets the "comments_posted" field.
func (u *MonitoringProcessUpsertBulk) SetCommentsPosted(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetCommentsPosted(v)
	})
}

// AddCommentsPosted adds v to the "comments_posted" field.
func (u *MonitoringProcessUpsertBulk) AddCommentsPosted(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddCommentsPosted(v)
	})
}

// UpdateCommentsPosted sets the "comments_posted" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateCommentsPosted() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateCommentsPosted()
	})
}

// SetErrorsDiscovery sets the "errors_discovery" field.
func (u *MonitoringProcessUpsertBulk) SetErrorsDiscovery(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetErrorsDiscovery(v)
	})
}

// AddErrorsDiscovery adds v to the "errors_discovery" field.
func (u *MonitoringProcessUpsertBulk) AddErrorsDiscovery(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddErrorsDiscovery(v)
	})
}

// UpdateErrorsDiscovery sets the "errors_discovery" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateErrorsDiscovery() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateErrorsDiscovery()
	})
}

// SetErrorsPreparation sets the "errors_preparation" field.
func (u *MonitoringProcessUpsertBulk) SetErrorsPreparation(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetErrorsPreparation(v)
	})
}

// AddErrorsPreparation adds v to the "errors_preparation" field.
func (u *MonitoringProcessUpsertBulk) AddErrorsPreparation(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddErrorsPreparation(v)
	})
}

// UpdateErrorsPreparation sets the "errors_preparation" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateErrorsPreparation() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateErrorsPreparation()
	})
}

// SetErrorsGeneration sets the "errors_generation" field.
func (u *MonitoringProcessUpsertBulk) SetErrorsGeneration(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetErrorsGeneration(v)
	})
}

// AddErrorsGeneration adds v to the "errors_generation" field.
func (u *MonitoringProcessUpsertBulk) AddErrorsGeneration(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddErrorsGeneration(v)
	})
}

// UpdateErrorsGeneration sets the "errors_generation" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateErrorsGeneration() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateErrorsGeneration()
	})
}

// SetErrorsPosting sets the "errors_posting" field.
func (u *MonitoringProcessUpsertBulk) SetErrorsPosting(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetErrorsPosting(v)
	})
}

// AddErrorsPosting adds v to the "errors_posting" field.
func (u *MonitoringProcessUpsertBulk) AddErrorsPosting(v int) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.AddErrorsPosting(v)
	})
}

// UpdateErrorsPosting sets the "errors_posting" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateErrorsPosting() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateErrorsPosting()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *MonitoringProcessUpsertBulk) SetErrorMessage(v string) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateErrorMessage() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MonitoringProcessUpsertBulk) ClearErrorMessage() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MonitoringProcessUpsertBulk) SetUpdatedAt(v time.Time) *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MonitoringProcessUpsertBulk) UpdateUpdatedAt() *MonitoringProcessUpsertBulk {
	return u.Update(func(s *MonitoringProcessUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MonitoringProcessUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MonitoringProcessCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MonitoringProcessCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MonitoringProcessUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
