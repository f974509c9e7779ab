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
	"github.com/yourmoment/yourmoment/ent/workrecord"
)

// WorkRecordCreate is the builder for creating a WorkRecord entity.
type WorkRecordCreate struct {
	config
	mutation *WorkRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProcessID sets the "process_id" field.
func (_c *WorkRecordCreate) SetProcessID(v string) *WorkRecordCreate {
	_c.mutation.SetProcessID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *WorkRecordCreate) SetUserID(v string) *WorkRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCredentialID sets the "credential_id" field.
func (_c *WorkRecordCreate) SetCredentialID(v string) *WorkRecordCreate {
	_c.mutation.SetCredentialID(v)
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *WorkRecordCreate) SetTemplateID(v string) *WorkRecordCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetLlmProviderID sets the "llm_provider_id" field.
func (_c *WorkRecordCreate) SetLlmProviderID(v string) *WorkRecordCreate {
	_c.mutation.SetLlmProviderID(v)
	return _c
}

// SetUpstreamArticleID sets the "upstream_article_id" field.
func (_c *WorkRecordCreate) SetUpstreamArticleID(v string) *WorkRecordCreate {
	_c.mutation.SetUpstreamArticleID(v)
	return _c
}

// SetArticleTitle sets the "article_title" field.
func (_c *WorkRecordCreate) SetArticleTitle(v string) *WorkRecordCreate {
	_c.mutation.SetArticleTitle(v)
	return _c
}

// SetArticleAuthor sets the "article_author" field.
func (_c *WorkRecordCreate) SetArticleAuthor(v string) *WorkRecordCreate {
	_c.mutation.SetArticleAuthor(v)
	return _c
}

// SetNillableArticleAuthor sets the "article_author" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableArticleAuthor(v *string) *WorkRecordCreate {
	if v != nil {
		_c.SetArticleAuthor(*v)
	}
	return _c
}

// SetArticleCategory sets the "article_category" field.
func (_c *WorkRecordCreate) SetArticleCategory(v string) *WorkRecordCreate {
	_c.mutation.SetArticleCategory(v)
	return _c
}

// SetNillableArticleCategory sets the "article_category" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableArticleCategory(v *string) *WorkRecordCreate {
	if v != nil {
		_c.SetArticleCategory(*v)
	}
	return _c
}

// SetArticleURL sets the "article_url" field.
func (_c *WorkRecordCreate) SetArticleURL(v string) *WorkRecordCreate {
	_c.mutation.SetArticleURL(v)
	return _c
}

// SetNillableArticleURL sets the "article_url" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableArticleURL(v *string) *WorkRecordCreate {
	if v != nil {
		_c.SetArticleURL(*v)
	}
	return _c
}

// SetArticleEditedAt sets the "article_edited_at" field.
func (_c *WorkRecordCreate) SetArticleEditedAt(v time.Time) *WorkRecordCreate {
	_c.mutation.SetArticleEditedAt(v)
	return _c
}

// SetNillableArticleEditedAt sets the "article_edited_at" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableArticleEditedAt(v *time.Time) *WorkRecordCreate {
	if v != nil {
		_c.SetArticleEditedAt(*v)
	}
	return _c
}

// SetArticleContent sets the "article_content" field.
func (_c *WorkRecordCreate) SetArticleContent(v string) *WorkRecordCreate {
	_c.mutation.SetArticleContent(v)
	return _c
}

// SetNillableArticleContent sets the "article_content" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableArticleContent(v *string) *WorkRecordCreate {
	if v != nil {
		_c.SetArticleContent(*v)
	}
	return _c
}

// SetArticleRawHTML sets the "article_raw_html" field.
func (_c *WorkRecordCreate) SetArticleRawHTML(v string) *WorkRecordCreate {
	_c.mutation.SetArticleRawHTML(v)
	return _c
}

// SetNillableArticleRawHTML sets the "article_raw_html" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableArticleRawHTML(v *string) *WorkRecordCreate {
	if v != nil {
		_c.SetArticleRawHTML(*v)
	}
	return _c
}

// SetArticlePublishedAt sets the "article_published_at" field.
func (_c *WorkRecordCreate) SetArticlePublishedAt(v time.Time) *WorkRecordCreate {
	_c.mutation.SetArticlePublishedAt(v)
	return _c
}

// SetNillableArticlePublishedAt sets the "article_published_at" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableArticlePublishedAt(v *time.Time) *WorkRecordCreate {
	if v != nil {
		_c.SetArticlePublishedAt(*v)
	}
	return _c
}

// SetArticleScrapedAt sets the "article_scraped_at" field.
func (_c *WorkRecordCreate) SetArticleScrapedAt(v time.Time) *WorkRecordCreate {
	_c.mutation.SetArticleScrapedAt(v)
	return _c
}

// SetNillableArticleScrapedAt sets the "article_scraped_at" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableArticleScrapedAt(v *time.Time) *WorkRecordCreate {
	if v != nil {
		_c.SetArticleScrapedAt(*v)
	}
	return _c
}

// SetCommentContent sets the "comment_content" field.
func (_c *WorkRecordCreate) SetCommentContent(v string) *WorkRecordCreate {
	_c.mutation.SetCommentContent(v)
	return _c
}

// SetNillableCommentContent sets the "comment_content" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableCommentContent(v *string) *WorkRecordCreate {
	if v != nil {
		_c.SetCommentContent(*v)
	}
	return _c
}

// SetUpstreamCommentID sets the "upstream_comment_id" field.
func (_c *WorkRecordCreate) SetUpstreamCommentID(v string) *WorkRecordCreate {
	_c.mutation.SetUpstreamCommentID(v)
	return _c
}

// SetNillableUpstreamCommentID sets the "upstream_comment_id" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableUpstreamCommentID(v *string) *WorkRecordCreate {
	if v != nil {
		_c.SetUpstreamCommentID(*v)
	}
	return _c
}

// SetAiModelName sets the "ai_model_name" field.
func (_c *WorkRecordCreate) SetAiModelName(v string) *WorkRecordCreate {
	_c.mutation.SetAiModelName(v)
	return _c
}

// SetNillableAiModelName sets the "ai_model_name" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableAiModelName(v *string) *WorkRecordCreate {
	if v != nil {
		_c.SetAiModelName(*v)
	}
	return _c
}

// SetAiVendorTag sets the "ai_vendor_tag" field.
func (_c *WorkRecordCreate) SetAiVendorTag(v string) *WorkRecordCreate {
	_c.mutation.SetAiVendorTag(v)
	return _c
}

// SetNillableAiVendorTag sets the "ai_vendor_tag" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableAiVendorTag(v *string) *WorkRecordCreate {
	if v != nil {
		_c.SetAiVendorTag(*v)
	}
	return _c
}

// SetGenerationTokens sets the "generation_tokens" field.
func (_c *WorkRecordCreate) SetGenerationTokens(v int) *WorkRecordCreate {
	_c.mutation.SetGenerationTokens(v)
	return _c
}

// SetNillableGenerationTokens sets the "generation_tokens" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableGenerationTokens(v *int) *WorkRecordCreate {
	if v != nil {
		_c.SetGenerationTokens(*v)
	}
	return _c
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_c *WorkRecordCreate) SetGenerationTimeMs(v int) *WorkRecordCreate {
	_c.mutation.SetGenerationTimeMs(v)
	return _c
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableGenerationTimeMs(v *int) *WorkRecordCreate {
	if v != nil {
		_c.SetGenerationTimeMs(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkRecordCreate) SetStatus(v workrecord.Status) *WorkRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableStatus(v *workrecord.Status) *WorkRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkRecordCreate) SetErrorMessage(v string) *WorkRecordCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableErrorMessage(v *string) *WorkRecordCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *WorkRecordCreate) SetRetryCount(v int) *WorkRecordCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableRetryCount(v *int) *WorkRecordCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetPostedAt sets the "posted_at" field.
func (_c *WorkRecordCreate) SetPostedAt(v time.Time) *WorkRecordCreate {
	_c.mutation.SetPostedAt(v)
	return _c
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillablePostedAt(v *time.Time) *WorkRecordCreate {
	if v != nil {
		_c.SetPostedAt(*v)
	}
	return _c
}

// SetFailedAt sets the "failed_at" field.
func (_c *WorkRecordCreate) SetFailedAt(v time.Time) *WorkRecordCreate {
	_c.mutation.SetFailedAt(v)
	return _c
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableFailedAt(v *time.Time) *WorkRecordCreate {
	if v != nil {
		_c.SetFailedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkRecordCreate) SetCreatedAt(v time.Time) *WorkRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableCreatedAt(v *time.Time) *WorkRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkRecordCreate) SetUpdatedAt(v time.Time) *WorkRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkRecordCreate) SetNillableUpdatedAt(v *time.Time) *WorkRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkRecordCreate) SetID(v string) *WorkRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProcess sets the "process" edge to the MonitoringProcess entity.
func (_c *WorkRecordCreate) SetProcess(v *MonitoringProcess) *WorkRecordCreate {
	return _c.SetProcessID(v.ID)
}

// Mutation returns the WorkRecordMutation object of the builder.
func (_c *WorkRecordCreate) Mutation() *WorkRecordMutation {
	return _c.mutation
}

// Save creates the WorkRecord in the database.
func (_c *WorkRecordCreate) Save(ctx context.Context) (*WorkRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkRecordCreate) SaveX(ctx context.Context) *WorkRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := workrecord.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkRecordCreate) check() error {
	if _, ok := _c.mutation.ProcessID(); !ok {
		return &ValidationError{Name: "process_id", err: errors.New(`ent: missing required field "WorkRecord.process_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WorkRecord.user_id"`)}
	}
	if _, ok := _c.mutation.CredentialID(); !ok {
		return &ValidationError{Name: "credential_id", err: errors.New(`ent: missing required field "WorkRecord.credential_id"`)}
	}
	if _, ok := _c.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`ent: missing required field "WorkRecord.template_id"`)}
	}
	if _, ok := _c.mutation.LlmProviderID(); !ok {
		return &ValidationError{Name: "llm_provider_id", err: errors.New(`ent: missing required field "WorkRecord.llm_provider_id"`)}
	}
	if _, ok := _c.mutation.UpstreamArticleID(); !ok {
		return &ValidationError{Name: "upstream_article_id", err: errors.New(`ent: missing required field "WorkRecord.upstream_article_id"`)}
	}
	if _, ok := _c.mutation.ArticleTitle(); !ok {
		return &ValidationError{Name: "article_title", err: errors.New(`ent: missing required field "WorkRecord.article_title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "WorkRecord.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkRecord.updated_at"`)}
	}
	if len(_c.mutation.ProcessIDs()) == 0 {
		return &ValidationError{Name: "process", err: errors.New(`ent: missing required edge "WorkRecord.process"`)}
	}
	return nil
}

func (_c *WorkRecordCreate) sqlSave(ctx context.Context) (*WorkRecord, error) {
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
			return nil, fmt.Errorf("unexpected WorkRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkRecordCreate) createSpec() (*WorkRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workrecord.Table, sqlgraph.NewFieldSpec(workrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(workrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CredentialID(); ok {
		_spec.SetField(workrecord.FieldCredentialID, field.TypeString, value)
		_node.CredentialID = value
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(workrecord.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = value
	}
	if value, ok := _c.mutation.LlmProviderID(); ok {
		_spec.SetField(workrecord.FieldLlmProviderID, field.TypeString, value)
		_node.LlmProviderID = value
	}
	if value, ok := _c.mutation.UpstreamArticleID(); ok {
		_spec.SetField(workrecord.FieldUpstreamArticleID, field.TypeString, value)
		_node.UpstreamArticleID = value
	}
	if value, ok := _c.mutation.ArticleTitle(); ok {
		_spec.SetField(workrecord.FieldArticleTitle, field.TypeString, value)
		_node.ArticleTitle = value
	}
	if value, ok := _c.mutation.ArticleAuthor(); ok {
		_spec.SetField(workrecord.FieldArticleAuthor, field.TypeString, value)
		_node.ArticleAuthor = value
	}
	if value, ok := _c.mutation.ArticleCategory(); ok {
		_spec.SetField(workrecord.FieldArticleCategory, field.TypeString, value)
		_node.ArticleCategory = value
	}
	if value, ok := _c.mutation.ArticleURL(); ok {
		_spec.SetField(workrecord.FieldArticleURL, field.TypeString, value)
		_node.ArticleURL = value
	}
	if value, ok := _c.mutation.ArticleEditedAt(); ok {
		_spec.SetField(workrecord.FieldArticleEditedAt, field.TypeTime, value)
		_node.ArticleEditedAt = &value
	}
	if value, ok := _c.mutation.ArticleContent(); ok {
		_spec.SetField(workrecord.FieldArticleContent, field.TypeString, value)
		_node.ArticleContent = &value
	}
	if value, ok := _c.mutation.ArticleRawHTML(); ok {
		_spec.SetField(workrecord.FieldArticleRawHTML, field.TypeString, value)
		_node.ArticleRawHTML = &value
	}
	if value, ok := _c.mutation.ArticlePublishedAt(); ok {
		_spec.SetField(workrecord.FieldArticlePublishedAt, field.TypeTime, value)
		_node.ArticlePublishedAt = &value
	}
	if value, ok := _c.mutation.ArticleScrapedAt(); ok {
		_spec.SetField(workrecord.FieldArticleScrapedAt, field.TypeTime, value)
		_node.ArticleScrapedAt = &value
	}
	if value, ok := _c.mutation.CommentContent(); ok {
		_spec.SetField(workrecord.FieldCommentContent, field.TypeString, value)
		_node.CommentContent = &value
	}
	if value, ok := _c.mutation.UpstreamCommentID(); ok {
		_spec.SetField(workrecord.FieldUpstreamCommentID, field.TypeString, value)
		_node.UpstreamCommentID = &value
	}
	if value, ok := _c.mutation.AiModelName(); ok {
		_spec.SetField(workrecord.FieldAiModelName, field.TypeString, value)
		_node.AiModelName = &value
	}
	if value, ok := _c.mutation.AiVendorTag(); ok {
		_spec.SetField(workrecord.FieldAiVendorTag, field.TypeString, value)
		_node.AiVendorTag = &value
	}
	if value, ok := _c.mutation.GenerationTokens(); ok {
		_spec.SetField(workrecord.FieldGenerationTokens, field.TypeInt, value)
		_node.GenerationTokens = &value
	}
	if value, ok := _c.mutation.GenerationTimeMs(); ok {
		_spec.SetField(workrecord.FieldGenerationTimeMs, field.TypeInt, value)
		_node.GenerationTimeMs = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workrecord.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(workrecord.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.PostedAt(); ok {
		_spec.SetField(workrecord.FieldPostedAt, field.TypeTime, value)
		_node.PostedAt = &value
	}
	if value, ok := _c.mutation.FailedAt(); ok {
		_spec.SetField(workrecord.FieldFailedAt, field.TypeTime, value)
		_node.FailedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProcessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workrecord.ProcessTable,
			Columns: []string{workrecord.ProcessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoringprocess.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProcessID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkRecord.Create().
//		SetProcessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkRecordUpsert) {
//			SetProcessID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkRecordCreate) OnConflict(opts ...sql.ConflictOption) *WorkRecordUpsertOne {
	_c.conflict = opts
	return &WorkRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkRecordCreate) OnConflictColumns(columns ...string) *WorkRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkRecordUpsertOne{
		create: _c,
	}
}

type (
	// WorkRecordUpsertOne is the builder for "upsert"-ing
	//  one WorkRecord node.
	WorkRecordUpsertOne struct {
		create *WorkRecordCreate
	}

	// WorkRecordUpsert is the "OnConflict" setter.
	WorkRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetArticleTitle sets the "article_title" field.
func (u *WorkRecordUpsert) SetArticleTitle(v string) *WorkRecordUpsert {
	u.Set(workrecord.FieldArticleTitle, v)
	return u
}

// UpdateArticleTitle sets the "article_title" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateArticleTitle() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldArticleTitle)
	return u
}

// SetArticleAuthor sets the "article_author" field.
func (u *WorkRecordUpsert) SetArticleAuthor(v string) *WorkRecordUpsert {
	u.Set(workrecord.FieldArticleAuthor, v)
	return u
}

// UpdateArticleAuthor sets the "article_author" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateArticleAuthor() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldArticleAuthor)
	return u
}

// ClearArticleAuthor clears the value of the "article_author" field.
func (u *WorkRecordUpsert) ClearArticleAuthor() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldArticleAuthor)
	return u
}

// SetArticleCategory sets the "article_category" field.
func (u *WorkRecordUpsert) SetArticleCategory(v string) *WorkRecordUpsert {
	u.Set(workrecord.FieldArticleCategory, v)
	return u
}

// UpdateArticleCategory sets the "article_category" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateArticleCategory() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldArticleCategory)
	return u
}

// ClearArticleCategory clears the value of the "article_category" field.
func (u *WorkRecordUpsert) ClearArticleCategory() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldArticleCategory)
	return u
}

// SetArticleURL sets the "article_url" field.
func (u *WorkRecordUpsert) SetArticleURL(v string) *WorkRecordUpsert {
	u.Set(workrecord.FieldArticleURL, v)
	return u
}

// UpdateArticleURL sets the "article_url" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateArticleURL() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldArticleURL)
	return u
}

// ClearArticleURL clears the value of the "article_url" field.
func (u *WorkRecordUpsert) ClearArticleURL() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldArticleURL)
	return u
}

// SetArticleEditedAt sets the "article_edited_at" field.
func (u *WorkRecordUpsert) SetArticleEditedAt(v time.Time) *WorkRecordUpsert {
	u.Set(workrecord.FieldArticleEditedAt, v)
	return u
}

// UpdateArticleEditedAt sets the "article_edited_at" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateArticleEditedAt() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldArticleEditedAt)
	return u
}

// ClearArticleEditedAt clears the value of the "article_edited_at" field.
func (u *WorkRecordUpsert) ClearArticleEditedAt() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldArticleEditedAt)
	return u
}

// SetArticleContent sets the "article_content" field.
func (u *WorkRecordUpsert) SetArticleContent(v string) *WorkRecordUpsert {
	u.Set(workrecord.FieldArticleContent, v)
	return u
}

// UpdateArticleContent sets the "article_content" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateArticleContent() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldArticleContent)
	return u
}

// ClearArticleContent clears the value of the "article_content" field.
func (u *WorkRecordUpsert) ClearArticleContent() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldArticleContent)
	return u
}

// SetArticleRawHTML sets the "article_raw_html" field.
func (u *WorkRecordUpsert) SetArticleRawHTML(v string) *WorkRecordUpsert {
	u.Set(workrecord.FieldArticleRawHTML, v)
	return u
}

// UpdateArticleRawHTML sets the "article_raw_html" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateArticleRawHTML() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldArticleRawHTML)
	return u
}

// ClearArticleRawHTML clears the value of the "article_raw_html" field.
func (u *WorkRecordUpsert) ClearArticleRawHTML() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldArticleRawHTML)
	return u
}

// SetArticlePublishedAt sets the "article_published_at" field.
func (u *WorkRecordUpsert) SetArticlePublishedAt(v time.Time) *WorkRecordUpsert {
	u.Set(workrecord.FieldArticlePublishedAt, v)
	return u
}

// UpdateArticlePublishedAt sets the "article_published_at" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateArticlePublishedAt() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldArticlePublishedAt)
	return u
}

// ClearArticlePublishedAt clears the value of the "article_published_at" field.
func (u *WorkRecordUpsert) ClearArticlePublishedAt() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldArticlePublishedAt)
	return u
}

// SetArticleScrapedAt sets the "article_scraped_at" field.
func (u *WorkRecordUpsert) SetArticleScrapedAt(v time.Time) *WorkRecordUpsert {
	u.Set(workrecord.FieldArticleScrapedAt, v)
	return u
}

// UpdateArticleScrapedAt sets the "article_scraped_at" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateArticleScrapedAt() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldArticleScrapedAt)
	return u
}

// ClearArticleScrapedAt clears the value of the "article_scraped_at" field.
func (u *WorkRecordUpsert) ClearArticleScrapedAt() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldArticleScrapedAt)
	return u
}

// SetCommentContent sets the "comment_content" field.
func (u *WorkRecordUpsert) SetCommentContent(v string) *WorkRecordUpsert {
	u.Set(workrecord.FieldCommentContent, v)
	return u
}

// UpdateCommentContent sets the "comment_content" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateCommentContent() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldCommentContent)
	return u
}

// ClearCommentContent clears the value of the "comment_content" field.
func (u *WorkRecordUpsert) ClearCommentContent() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldCommentContent)
	return u
}

// SetUpstreamCommentID sets the "upstream_comment_id" field.
func (u *WorkRecordUpsert) SetUpstreamCommentID(v string) *WorkRecordUpsert {
	u.Set(workrecord.FieldUpstreamCommentID, v)
	return u
}

// UpdateUpstreamCommentID sets the "upstream_comment_id" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateUpstreamCommentID() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldUpstreamCommentID)
	return u
}

// ClearUpstreamCommentID clears the value of the "upstream_comment_id" field.
func (u *WorkRecordUpsert) ClearUpstreamCommentID() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldUpstreamCommentID)
	return u
}

// SetAiModelName sets the "ai_model_name" field.
func (u *WorkRecordUpsert) SetAiModelName(v string) *WorkRecordUpsert {
	u.Set(workrecord.FieldAiModelName, v)
	return u
}

// UpdateAiModelName sets the "ai_model_name" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateAiModelName() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldAiModelName)
	return u
}

// ClearAiModelName clears the value of the "ai_model_name" field.
func (u *WorkRecordUpsert) ClearAiModelName() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldAiModelName)
	return u
}

// SetAiVendorTag sets the "ai_vendor_tag" field.
func (u *WorkRecordUpsert) SetAiVendorTag(v string) *WorkRecordUpsert {
	u.Set(workrecord.FieldAiVendorTag, v)
	return u
}

// UpdateAiVendorTag sets the "ai_vendor_tag" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateAiVendorTag() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldAiVendorTag)
	return u
}

// ClearAiVendorTag clears the value of the "ai_vendor_tag" field.
func (u *WorkRecordUpsert) ClearAiVendorTag() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldAiVendorTag)
	return u
}

// SetGenerationTokens sets the "generation_tokens" field.
func (u *WorkRecordUpsert) SetGenerationTokens(v int) *WorkRecordUpsert {
	u.Set(workrecord.FieldGenerationTokens, v)
	return u
}

// UpdateGenerationTokens sets the "generation_tokens" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateGenerationTokens() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldGenerationTokens)
	return u
}

// AddGenerationTokens adds v to the "generation_tokens" field.
func (u *WorkRecordUpsert) AddGenerationTokens(v int) *WorkRecordUpsert {
	u.Add(workrecord.FieldGenerationTokens, v)
	return u
}

// ClearGenerationTokens clears the value of the "generation_tokens" field.
func (u *WorkRecordUpsert) ClearGenerationTokens() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldGenerationTokens)
	return u
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (u *WorkRecordUpsert) SetGenerationTimeMs(v int) *WorkRecordUpsert {
	u.Set(workrecord.FieldGenerationTimeMs, v)
	return u
}

// UpdateGenerationTimeMs sets the "generation_time_ms" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateGenerationTimeMs() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldGenerationTimeMs)
	return u
}

// AddGenerationTimeMs adds v to the "generation_time_ms" field.
func (u *WorkRecordUpsert) AddGenerationTimeMs(v int) *WorkRecordUpsert {
	u.Add(workrecord.FieldGenerationTimeMs, v)
	return u
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (u *WorkRecordUpsert) ClearGenerationTimeMs() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldGenerationTimeMs)
	return u
}

// SetStatus sets the "status" field.
func (u *WorkRecordUpsert) SetStatus(v workrecord.Status) *WorkRecordUpsert {
	u.Set(workrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateStatus() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkRecordUpsert) SetErrorMessage(v string) *WorkRecordUpsert {
	u.Set(workrecord.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateErrorMessage() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkRecordUpsert) ClearErrorMessage() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldErrorMessage)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *WorkRecordUpsert) SetRetryCount(v int) *WorkRecordUpsert {
	u.Set(workrecord.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateRetryCount() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *WorkRecordUpsert) AddRetryCount(v int) *WorkRecordUpsert {
	u.Add(workrecord.FieldRetryCount, v)
	return u
}

// SetPostedAt sets the "posted_at" field.
func (u *WorkRecordUpsert) SetPostedAt(v time.Time) *WorkRecordUpsert {
	u.Set(workrecord.FieldPostedAt, v)
	return u
}

// UpdatePostedAt sets the "posted_at" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdatePostedAt() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldPostedAt)
	return u
}

// ClearPostedAt clears the value of the "posted_at" field.
func (u *WorkRecordUpsert) ClearPostedAt() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldPostedAt)
	return u
}

// SetFailedAt sets the "failed_at" field.
func (u *WorkRecordUpsert) SetFailedAt(v time.Time) *WorkRecordUpsert {
	u.Set(workrecord.FieldFailedAt, v)
	return u
}

// UpdateFailedAt sets the "failed_at" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateFailedAt() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldFailedAt)
	return u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (u *WorkRecordUpsert) ClearFailedAt() *WorkRecordUpsert {
	u.SetNull(workrecord.FieldFailedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkRecordUpsert) SetUpdatedAt(v time.Time) *WorkRecordUpsert {
	u.Set(workrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkRecordUpsert) UpdateUpdatedAt() *WorkRecordUpsert {
	u.SetExcluded(workrecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkRecordUpsertOne) UpdateNewValues() *WorkRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workrecord.FieldID)
		}
		if _, exists := u.create.mutation.ProcessID(); exists {
			s.SetIgnore(workrecord.FieldProcessID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(workrecord.FieldUserID)
		}
		if _, exists := u.create.mutation.CredentialID(); exists {
			s.SetIgnore(workrecord.FieldCredentialID)
		}
		if _, exists := u.create.mutation.TemplateID(); exists {
			s.SetIgnore(workrecord.FieldTemplateID)
		}
		if _, exists := u.create.mutation.LlmProviderID(); exists {
			s.SetIgnore(workrecord.FieldLlmProviderID)
		}
		if _, exists := u.create.mutation.UpstreamArticleID(); exists {
			s.SetIgnore(workrecord.FieldUpstreamArticleID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkRecordUpsertOne) Ignore() *WorkRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkRecordUpsertOne) DoNothing() *WorkRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkRecordCreate.OnConflict
// documentation for more info.
func (u *WorkRecordUpsertOne) Update(set func(*WorkRecordUpsert)) *WorkRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetArticleTitle sets the "article_title" field.
func (u *WorkRecordUpsertOne) SetArticleTitle(v string) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleTitle(v)
	})
}

// UpdateArticleTitle sets the "article_title" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateArticleTitle() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleTitle()
	})
}

// SetArticleAuthor sets the "article_author" field.
func (u *WorkRecordUpsertOne) SetArticleAuthor(v string) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleAuthor(v)
	})
}

// UpdateArticleAuthor sets the "article_author" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateArticleAuthor() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleAuthor()
	})
}

// ClearArticleAuthor clears the value of the "article_author" field.
func (u *WorkRecordUpsertOne) ClearArticleAuthor() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleAuthor()
	})
}

// SetArticleCategory sets the "article_category" field.
func (u *WorkRecordUpsertOne) SetArticleCategory(v string) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleCategory(v)
	})
}

// UpdateArticleCategory sets the "article_category" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateArticleCategory() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleCategory()
	})
}

// ClearArticleCategory clears the value of the "article_category" field.
func (u *WorkRecordUpsertOne) ClearArticleCategory() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleCategory()
	})
}

// SetArticleURL sets the "article_url" field.
func (u *WorkRecordUpsertOne) SetArticleURL(v string) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleURL(v)
	})
}

// UpdateArticleURL sets the "article_url" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateArticleURL() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleURL()
	})
}

// ClearArticleURL clears the value of the "article_url" field.
func (u *WorkRecordUpsertOne) ClearArticleURL() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleURL()
	})
}

// SetArticleEditedAt sets the "article_edited_at" field.
func (u *WorkRecordUpsertOne) SetArticleEditedAt(v time.Time) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleEditedAt(v)
	})
}

// UpdateArticleEditedAt sets the "article_edited_at" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateArticleEditedAt() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleEditedAt()
	})
}

// ClearArticleEditedAt clears the value of the "article_edited_at" field.
func (u *WorkRecordUpsertOne) ClearArticleEditedAt() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleEditedAt()
	})
}

// SetArticleContent sets the "article_content" field.
func (u *WorkRecordUpsertOne) SetArticleContent(v string) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleContent(v)
	})
}

// UpdateArticleContent sets the "article_content" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateArticleContent() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleContent()
	})
}

// ClearArticleContent clears the value of the "article_content" field.
func (u *WorkRecordUpsertOne) ClearArticleContent() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleContent()
	})
}

// SetArticleRawHTML sets the "article_raw_html" field.
func (u *WorkRecordUpsertOne) SetArticleRawHTML(v string) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleRawHTML(v)
	})
}

// UpdateArticleRawHTML sets the "article_raw_html" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateArticleRawHTML() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleRawHTML()
	})
}

// ClearArticleRawHTML clears the value of the "article_raw_html" field.
func (u *WorkRecordUpsertOne) ClearArticleRawHTML() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleRawHTML()
	})
}

// SetArticlePublishedAt sets the "article_published_at" field.
func (u *WorkRecordUpsertOne) SetArticlePublishedAt(v time.Time) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticlePublishedAt(v)
	})
}

// UpdateArticlePublishedAt sets the "article_published_at" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateArticlePublishedAt() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticlePublishedAt()
	})
}

// ClearArticlePublishedAt clears the value of the "article_published_at" field.
func (u *WorkRecordUpsertOne) ClearArticlePublishedAt() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticlePublishedAt()
	})
}

// SetArticleScrapedAt sets the "article_scraped_at" field.
func (u *WorkRecordUpsertOne) SetArticleScrapedAt(v time.Time) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleScrapedAt(v)
	})
}

// UpdateArticleScrapedAt sets the "article_scraped_at" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateArticleScrapedAt() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleScrapedAt()
	})
}

// ClearArticleScrapedAt clears the value of the "article_scraped_at" field.
func (u *WorkRecordUpsertOne) ClearArticleScrapedAt() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleScrapedAt()
	})
}

// SetCommentContent sets the "comment_content" field.
func (u *WorkRecordUpsertOne) SetCommentContent(v string) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetCommentContent(v)
	})
}

// UpdateCommentContent sets the "comment_content" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateCommentContent() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateCommentContent()
	})
}

// ClearCommentContent clears the value of the "comment_content" field.
func (u *WorkRecordUpsertOne) ClearCommentContent() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearCommentContent()
	})
}

// SetUpstreamCommentID sets the "upstream_comment_id" field.
func (u *WorkRecordUpsertOne) SetUpstreamCommentID(v string) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetUpstreamCommentID(v)
	})
}

// UpdateUpstreamCommentID sets the "upstream_comment_id" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateUpstreamCommentID() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateUpstreamCommentID()
	})
}

// ClearUpstreamCommentID clears the value of the "upstream_comment_id" field.
func (u *WorkRecordUpsertOne) ClearUpstreamCommentID() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearUpstreamCommentID()
	})
}

// SetAiModelName sets the "ai_model_name" field.
func (u *WorkRecordUpsertOne) SetAiModelName(v string) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetAiModelName(v)
	})
}

// UpdateAiModelName sets the "ai_model_name" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateAiModelName() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateAiModelName()
	})
}

// ClearAiModelName clears the value of the "ai_model_name" field.
func (u *WorkRecordUpsertOne) ClearAiModelName() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearAiModelName()
	})
}

// SetAiVendorTag sets the "ai_vendor_tag" field.
func (u *WorkRecordUpsertOne) SetAiVendorTag(v string) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetAiVendorTag(v)
	})
}

// UpdateAiVendorTag sets the "ai_vendor_tag" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateAiVendorTag() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateAiVendorTag()
	})
}

// ClearAiVendorTag clears the value of the "ai_vendor_tag" field.
func (u *WorkRecordUpsertOne) ClearAiVendorTag() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearAiVendorTag()
	})
}

// SetGenerationTokens sets the "generation_tokens" field.
func (u *WorkRecordUpsertOne) SetGenerationTokens(v int) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetGenerationTokens(v)
	})
}

// AddGenerationTokens adds v to the "generation_tokens" field.
func (u *WorkRecordUpsertOne) AddGenerationTokens(v int) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.AddGenerationTokens(v)
	})
}

// UpdateGenerationTokens sets the "generation_tokens" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateGenerationTokens() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateGenerationTokens()
	})
}

// ClearGenerationTokens clears the value of the "generation_tokens" field.
func (u *WorkRecordUpsertOne) ClearGenerationTokens() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearGenerationTokens()
	})
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (u *WorkRecordUpsertOne) SetGenerationTimeMs(v int) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetGenerationTimeMs(v)
	})
}

// AddGenerationTimeMs adds v to the "generation_time_ms" field.
func (u *WorkRecordUpsertOne) AddGenerationTimeMs(v int) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.AddGenerationTimeMs(v)
	})
}

// UpdateGenerationTimeMs sets the "generation_time_ms" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateGenerationTimeMs() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateGenerationTimeMs()
	})
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (u *WorkRecordUpsertOne) ClearGenerationTimeMs() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearGenerationTimeMs()
	})
}

// SetStatus sets the "status" field.
func (u *WorkRecordUpsertOne) SetStatus(v workrecord.Status) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateStatus() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkRecordUpsertOne) SetErrorMessage(v string) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateErrorMessage() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkRecordUpsertOne) ClearErrorMessage() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearErrorMessage()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *WorkRecordUpsertOne) SetRetryCount(v int) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *WorkRecordUpsertOne) AddRetryCount(v int) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateRetryCount() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateRetryCount()
	})
}

// SetPostedAt sets the "posted_at" field.
func (u *WorkRecordUpsertOne) SetPostedAt(v time.Time) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetPostedAt(v)
	})
}

// UpdatePostedAt sets the "posted_at" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdatePostedAt() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdatePostedAt()
	})
}

// ClearPostedAt clears the value of the "posted_at" field.
func (u *WorkRecordUpsertOne) ClearPostedAt() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearPostedAt()
	})
}

// SetFailedAt sets the "failed_at" field.
func (u *WorkRecordUpsertOne) SetFailedAt(v time.Time) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetFailedAt(v)
	})
}

// UpdateFailedAt sets the "failed_at" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateFailedAt() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateFailedAt()
	})
}

// ClearFailedAt clears the value of the "failed_at" field.
func (u *WorkRecordUpsertOne) ClearFailedAt() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearFailedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkRecordUpsertOne) SetUpdatedAt(v time.Time) *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkRecordUpsertOne) UpdateUpdatedAt() *WorkRecordUpsertOne {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkRecordUpsertOne.ID is not supported by MySQL driver. Use WorkRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkRecordCreateBulk is the builder for creating many WorkRecord entities in bulk.
type WorkRecordCreateBulk struct {
	config
	err      error
	builders []*WorkRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkRecord entities in the database.
func (_c *WorkRecordCreateBulk) Save(ctx context.Context) ([]*WorkRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkRecordMutation)
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
func (_c *WorkRecordCreateBulk) SaveX(ctx context.Context) []*WorkRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkRecordUpsert) {
//			SetProcessID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkRecordUpsertBulk {
	_c.conflict = opts
	return &WorkRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkRecordCreateBulk) OnConflictColumns(columns ...string) *WorkRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkRecordUpsertBulk{
		create: _c,
	}
}

// WorkRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkRecord nodes.
type WorkRecordUpsertBulk struct {
	create *WorkRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkRecordUpsertBulk) UpdateNewValues() *WorkRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workrecord.FieldID)
			}
			if _, exists := b.mutation.ProcessID(); exists {
				s.SetIgnore(workrecord.FieldProcessID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(workrecord.FieldUserID)
			}
			if _, exists := b.mutation.CredentialID(); exists {
				s.SetIgnore(workrecord.FieldCredentialID)
			}
			if _, exists := b.mutation.TemplateID(); exists {
				s.SetIgnore(workrecord.FieldTemplateID)
			}
			if _, exists := b.mutation.LlmProviderID(); exists {
				s.SetIgnore(workrecord.FieldLlmProviderID)
			}
			if _, exists := b.mutation.UpstreamArticleID(); exists {
				s.SetIgnore(workrecord.FieldUpstreamArticleID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkRecordUpsertBulk) Ignore() *WorkRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkRecordUpsertBulk) DoNothing() *WorkRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkRecordCreateBulk.OnConflict
// documentation for more info.
func (u *WorkRecordUpsertBulk) Update(set func(*WorkRecordUpsert)) *WorkRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetArticleTitle sets the "article_title" field.
func (u *WorkRecordUpsertBulk) SetArticleTitle(v string) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleTitle(v)
	})
}

// UpdateArticleTitle sets the "article_title" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateArticleTitle() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleTitle()
	})
}

// SetArticleAuthor sets the "article_author" field.
func (u *WorkRecordUpsertBulk) SetArticleAuthor(v string) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleAuthor(v)
	})
}

// UpdateArticleAuthor sets the "article_author" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateArticleAuthor() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleAuthor()
	})
}

// ClearArticleAuthor clears the value of the "article_author" field.
func (u *WorkRecordUpsertBulk) ClearArticleAuthor() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleAuthor()
	})
}

// SetArticleCategory sets the "article_category" field.
func (u *WorkRecordUpsertBulk) SetArticleCategory(v string) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleCategory(v)
	})
}

// UpdateArticleCategory sets the "article_category" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateArticleCategory() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleCategory()
	})
}

// ClearArticleCategory clears the value of the "article_category" field.
func (u *WorkRecordUpsertBulk) ClearArticleCategory() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleCategory()
	})
}

// SetArticleURL sets the "article_url" field.
func (u *WorkRecordUpsertBulk) SetArticleURL(v string) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleURL(v)
	})
}

// UpdateArticleURL sets the "article_url" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateArticleURL() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleURL()
	})
}

// ClearArticleURL clears the value of the "article_url" field.
func (u *WorkRecordUpsertBulk) ClearArticleURL() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleURL()
	})
}

// SetArticleEditedAt sets the "article_edited_at" field.
func (u *WorkRecordUpsertBulk) SetArticleEditedAt(v time.Time) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleEditedAt(v)
	})
}

// UpdateArticleEditedAt sets the "article_edited_at" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateArticleEditedAt() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleEditedAt()
	})
}

// ClearArticleEditedAt clears the value of the "article_edited_at" field.
func (u *WorkRecordUpsertBulk) ClearArticleEditedAt() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleEditedAt()
	})
}

// SetArticleContent sets the "article_content" field.
func (u *WorkRecordUpsertBulk) SetArticleContent(v string) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleContent(v)
	})
}

// UpdateArticleContent sets the "article_content" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateArticleContent() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleContent()
	})
}

// ClearArticleContent clears the value of the "article_content" field.
func (u *WorkRecordUpsertBulk) ClearArticleContent() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleContent()
	})
}

// SetArticleRawHTML sets the "article_raw_html" field.
func (u *WorkRecordUpsertBulk) SetArticleRawHTML(v string) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleRawHTML(v)
	})
}

// UpdateArticleRawHTML sets the "article_raw_html" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateArticleRawHTML() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleRawHTML()
	})
}

// ClearArticleRawHTML clears the value of the "article_raw_html" field.
func (u *WorkRecordUpsertBulk) ClearArticleRawHTML() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleRawHTML()
	})
}

// SetArticlePublishedAt sets the "article_published_at" field.
func (u *WorkRecordUpsertBulk) SetArticlePublishedAt(v time.Time) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticlePublishedAt(v)
	})
}

// UpdateArticlePublishedAt sets the "article_published_at" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateArticlePublishedAt() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticlePublishedAt()
	})
}

// ClearArticlePublishedAt clears the value of the "article_published_at" field.
func (u *WorkRecordUpsertBulk) ClearArticlePublishedAt() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticlePublishedAt()
	})
}

// SetArticleScrapedAt sets the "article_scraped_at" field.
func (u *WorkRecordUpsertBulk) SetArticleScrapedAt(v time.Time) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetArticleScrapedAt(v)
	})
}

// UpdateArticleScrapedAt sets the "article_scraped_at" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateArticleScrapedAt() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateArticleScrapedAt()
	})
}

// ClearArticleScrapedAt clears the value of the "article_scraped_at" field.
func (u *WorkRecordUpsertBulk) ClearArticleScrapedAt() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearArticleScrapedAt()
	})
}

// SetCommentContent sets the "comment_content" field.
func (u *WorkRecordUpsertBulk) SetCommentContent(v string) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetCommentContent(v)
	})
}

// UpdateCommentContent sets the "comment_content" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateCommentContent() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateCommentContent()
	})
}

// ClearCommentContent clears the value of the "comment_content" field.
func (u *WorkRecordUpsertBulk) ClearCommentContent() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearCommentContent()
	})
}

// SetUpstreamCommentID sets the "upstream_comment_id" field.
func (u *WorkRecordUpsertBulk) SetUpstreamCommentID(v string) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetUpstreamCommentID(v)
	})
}

// UpdateUpstreamCommentID sets the "upstream_comment_id" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateUpstreamCommentID() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateUpstreamCommentID()
	})
}

// ClearUpstreamCommentID clears the value of the "upstream_comment_id" field.
func (u *WorkRecordUpsertBulk) ClearUpstreamCommentID() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearUpstreamCommentID()
	})
}

// SetAiModelName sets the "ai_model_name" field.
func (u *WorkRecordUpsertBulk) SetAiModelName(v string) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetAiModelName(v)
	})
}

// UpdateAiModelName sets the "ai_model_name" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateAiModelName() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateAiModelName()
	})
}

// ClearAiModelName clears the value of the "ai_model_name" field.
func (u *WorkRecordUpsertBulk) ClearAiModelName() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearAiModelName()
	})
}

// SetAiVendorTag sets the "ai_vendor_tag" field.
func (u *WorkRecordUpsertBulk) SetAiVendorTag(v string) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetAiVendorTag(v)
	})
}

// UpdateAiVendorTag sets the "ai_vendor_tag" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateAiVendorTag() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateAiVendorTag()
	})
}

// ClearAiVendorTag clears the value of the "ai_vendor_tag" field.
func (u *WorkRecordUpsertBulk) ClearAiVendorTag() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearAiVendorTag()
	})
}

// SetGenerationTokens sets the "generation_tokens" field.
func (u *WorkRecordUpsertBulk) SetGenerationTokens(v int) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetGenerationTokens(v)
	})
}

// AddGenerationTokens adds v to the "generation_tokens" field.
func (u *WorkRecordUpsertBulk) AddGenerationTokens(v int) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.AddGenerationTokens(v)
	})
}

// UpdateGenerationTokens sets the "generation_tokens" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateGenerationTokens() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateGenerationTokens()
	})
}

// ClearGenerationTokens clears the value of the "generation_tokens" field.
func (u *WorkRecordUpsertBulk) ClearGenerationTokens() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearGenerationTokens()
	})
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (u *WorkRecordUpsertBulk) SetGenerationTimeMs(v int) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetGenerationTimeMs(v)
	})
}

// AddGenerationTimeMs adds v to the "generation_time_ms" field.
func (u *WorkRecordUpsertBulk) AddGenerationTimeMs(v int) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.AddGenerationTimeMs(v)
	})
}

// UpdateGenerationTimeMs sets the "generation_time_ms" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateGenerationTimeMs() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateGenerationTimeMs()
	})
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (u *WorkRecordUpsertBulk) ClearGenerationTimeMs() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearGenerationTimeMs()
	})
}

// SetStatus sets the "status" field.
func (u *WorkRecordUpsertBulk) SetStatus(v workrecord.Status) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateStatus() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkRecordUpsertBulk) SetErrorMessage(v string) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateErrorMessage() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkRecordUpsertBulk) ClearErrorMessage() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearErrorMessage()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *WorkRecordUpsertBulk) SetRetryCount(v int) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *WorkRecordUpsertBulk) AddRetryCount(v int) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateRetryCount() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateRetryCount()
	})
}

// SetPostedAt sets the "posted_at" field.
func (u *WorkRecordUpsertBulk) SetPostedAt(v time.Time) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetPostedAt(v)
	})
}

// UpdatePostedAt sets the "posted_at" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdatePostedAt() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdatePostedAt()
	})
}

// ClearPostedAt clears the value of the "posted_at" field.
func (u *WorkRecordUpsertBulk) ClearPostedAt() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearPostedAt()
	})
}

// SetFailedAt sets the "failed_at" field.
func (u *WorkRecordUpsertBulk) SetFailedAt(v time.Time) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetFailedAt(v)
	})
}

// UpdateFailedAt sets the "failed_at" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateFailedAt() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateFailedAt()
	})
}

// ClearFailedAt clears the value of the "failed_at" field.
func (u *WorkRecordUpsertBulk) ClearFailedAt() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.ClearFailedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkRecordUpsertBulk) SetUpdatedAt(v time.Time) *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkRecordUpsertBulk) UpdateUpdatedAt() *WorkRecordUpsertBulk {
	return u.Update(func(s *WorkRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
