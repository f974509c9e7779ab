// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/predicate"
	"github.com/yourmoment/yourmoment/ent/workrecord"
)

// WorkRecordUpdate is the builder for updating WorkRecord entities.
type WorkRecordUpdate struct {
	config
	hooks    []Hook
	mutation *WorkRecordMutation
}

// Where appends a list predicates to the WorkRecordUpdate builder.
func (_u *WorkRecordUpdate) Where(ps ...predicate.WorkRecord) *WorkRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArticleTitle sets the "article_title" field.
func (_u *WorkRecordUpdate) SetArticleTitle(v string) *WorkRecordUpdate {
	_u.mutation.SetArticleTitle(v)
	return _u
}

// SetNillableArticleTitle sets the "article_title" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableArticleTitle(v *string) *WorkRecordUpdate {
	if v != nil {
		_u.SetArticleTitle(*v)
	}
	return _u
}

// SetArticleAuthor sets the "article_author" field.
func (_u *WorkRecordUpdate) SetArticleAuthor(v string) *WorkRecordUpdate {
	_u.mutation.SetArticleAuthor(v)
	return _u
}

// SetNillableArticleAuthor sets the "article_author" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableArticleAuthor(v *string) *WorkRecordUpdate {
	if v != nil {
		_u.SetArticleAuthor(*v)
	}
	return _u
}

// ClearArticleAuthor clears the value of the "article_author" field.
func (_u *WorkRecordUpdate) ClearArticleAuthor() *WorkRecordUpdate {
	_u.mutation.ClearArticleAuthor()
	return _u
}

// SetArticleCategory sets the "article_category" field.
func (_u *WorkRecordUpdate) SetArticleCategory(v string) *WorkRecordUpdate {
	_u.mutation.SetArticleCategory(v)
	return _u
}

// SetNillableArticleCategory sets the "article_category" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableArticleCategory(v *string) *WorkRecordUpdate {
	if v != nil {
		_u.SetArticleCategory(*v)
	}
	return _u
}

// ClearArticleCategory clears the value of the "article_category" field.
func (_u *WorkRecordUpdate) ClearArticleCategory() *WorkRecordUpdate {
	_u.mutation.ClearArticleCategory()
	return _u
}

// SetArticleURL sets the "article_url" field.
func (_u *WorkRecordUpdate) SetArticleURL(v string) *WorkRecordUpdate {
	_u.mutation.SetArticleURL(v)
	return _u
}

// SetNillableArticleURL sets the "article_url" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableArticleURL(v *string) *WorkRecordUpdate {
	if v != nil {
		_u.SetArticleURL(*v)
	}
	return _u
}

// ClearArticleURL clears the value of the "article_url" field.
func (_u *WorkRecordUpdate) ClearArticleURL() *WorkRecordUpdate {
	_u.mutation.ClearArticleURL()
	return _u
}

// SetArticleEditedAt sets the "article_edited_at" field.
func (_u *WorkRecordUpdate) SetArticleEditedAt(v time.Time) *WorkRecordUpdate {
	_u.mutation.SetArticleEditedAt(v)
	return _u
}

// SetNillableArticleEditedAt sets the "article_edited_at" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableArticleEditedAt(v *time.Time) *WorkRecordUpdate {
	if v != nil {
		_u.SetArticleEditedAt(*v)
	}
	return _u
}

// ClearArticleEditedAt clears the value of the "article_edited_at" field.
func (_u *WorkRecordUpdate) ClearArticleEditedAt() *WorkRecordUpdate {
	_u.mutation.ClearArticleEditedAt()
	return _u
}

// SetArticleContent sets the "article_content" field.
func (_u *WorkRecordUpdate) SetArticleContent(v string) *WorkRecordUpdate {
	_u.mutation.SetArticleContent(v)
	return _u
}

// SetNillableArticleContent sets the "article_content" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableArticleContent(v *string) *WorkRecordUpdate {
	if v != nil {
		_u.SetArticleContent(*v)
	}
	return _u
}

// ClearArticleContent clears the value of the "article_content" field.
func (_u *WorkRecordUpdate) ClearArticleContent() *WorkRecordUpdate {
	_u.mutation.ClearArticleContent()
	return _u
}

// SetArticleRawHTML sets the "article_raw_html" field.
func (_u *WorkRecordUpdate) SetArticleRawHTML(v string) *WorkRecordUpdate {
	_u.mutation.SetArticleRawHTML(v)
	return _u
}

// SetNillableArticleRawHTML sets the "article_raw_html" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableArticleRawHTML(v *string) *WorkRecordUpdate {
	if v != nil {
		_u.SetArticleRawHTML(*v)
	}
	return _u
}

// ClearArticleRawHTML clears the value of the "article_raw_html" field.
func (_u *WorkRecordUpdate) ClearArticleRawHTML() *WorkRecordUpdate {
	_u.mutation.ClearArticleRawHTML()
	return _u
}

// SetArticlePublishedAt sets the "article_published_at" field.
func (_u *WorkRecordUpdate) SetArticlePublishedAt(v time.Time) *WorkRecordUpdate {
	_u.mutation.SetArticlePublishedAt(v)
	return _u
}

// SetNillableArticlePublishedAt sets the "article_published_at" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableArticlePublishedAt(v *time.Time) *WorkRecordUpdate {
	if v != nil {
		_u.SetArticlePublishedAt(*v)
	}
	return _u
}

// ClearArticlePublishedAt clears the value of the "article_published_at" field.
func (_u *WorkRecordUpdate) ClearArticlePublishedAt() *WorkRecordUpdate {
	_u.mutation.ClearArticlePublishedAt()
	return _u
}

// SetArticleScrapedAt sets the "article_scraped_at" field.
func (_u *WorkRecordUpdate) SetArticleScrapedAt(v time.Time) *WorkRecordUpdate {
	_u.mutation.SetArticleScrapedAt(v)
	return _u
}

// SetNillableArticleScrapedAt sets the "article_scraped_at" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableArticleScrapedAt(v *time.Time) *WorkRecordUpdate {
	if v != nil {
		_u.SetArticleScrapedAt(*v)
	}
	return _u
}

// ClearArticleScrapedAt clears the value of the "article_scraped_at" field.
func (_u *WorkRecordUpdate) ClearArticleScrapedAt() *WorkRecordUpdate {
	_u.mutation.ClearArticleScrapedAt()
	return _u
}

// SetCommentContent sets the "comment_content" field.
func (_u *WorkRecordUpdate) SetCommentContent(v string) *WorkRecordUpdate {
	_u.mutation.SetCommentContent(v)
	return _u
}

// SetNillableCommentContent sets the "comment_content" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableCommentContent(v *string) *WorkRecordUpdate {
	if v != nil {
		_u.SetCommentContent(*v)
	}
	return _u
}

// ClearCommentContent clears the value of the "comment_content" field.
func (_u *WorkRecordUpdate) ClearCommentContent() *WorkRecordUpdate {
	_u.mutation.ClearCommentContent()
	return _u
}

// SetUpstreamCommentID sets the "upstream_comment_id" field.
func (_u *WorkRecordUpdate) SetUpstreamCommentID(v string) *WorkRecordUpdate {
	_u.mutation.SetUpstreamCommentID(v)
	return _u
}

// SetNillableUpstreamCommentID sets the "upstream_comment_id" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableUpstreamCommentID(v *string) *WorkRecordUpdate {
	if v != nil {
		_u.SetUpstreamCommentID(*v)
	}
	return _u
}

// ClearUpstreamCommentID clears the value of the "upstream_comment_id" field.
func (_u *WorkRecordUpdate) ClearUpstreamCommentID() *WorkRecordUpdate {
	_u.mutation.ClearUpstreamCommentID()
	return _u
}

// SetAiModelName sets the "ai_model_name" field.
func (_u *WorkRecordUpdate) SetAiModelName(v string) *WorkRecordUpdate {
	_u.mutation.SetAiModelName(v)
	return _u
}

// SetNillableAiModelName sets the "ai_model_name" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableAiModelName(v *string) *WorkRecordUpdate {
	if v != nil {
		_u.SetAiModelName(*v)
	}
	return _u
}

// ClearAiModelName clears the value of the "ai_model_name" field.
func (_u *WorkRecordUpdate) ClearAiModelName() *WorkRecordUpdate {
	_u.mutation.ClearAiModelName()
	return _u
}

// SetAiVendorTag sets the "ai_vendor_tag" field.
func (_u *WorkRecordUpdate) SetAiVendorTag(v string) *WorkRecordUpdate {
	_u.mutation.SetAiVendorTag(v)
	return _u
}

// SetNillableAiVendorTag sets the "ai_vendor_tag" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableAiVendorTag(v *string) *WorkRecordUpdate {
	if v != nil {
		_u.SetAiVendorTag(*v)
	}
	return _u
}

// ClearAiVendorTag clears the value of the "ai_vendor_tag" field.
func (_u *WorkRecordUpdate) ClearAiVendorTag() *WorkRecordUpdate {
	_u.mutation.ClearAiVendorTag()
	return _u
}

// SetGenerationTokens sets the "generation_tokens" field.
func (_u *WorkRecordUpdate) SetGenerationTokens(v int) *WorkRecordUpdate {
	_u.mutation.ResetGenerationTokens()
	_u.mutation.SetGenerationTokens(v)
	return _u
}

// SetNillableGenerationTokens sets the "generation_tokens" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableGenerationTokens(v *int) *WorkRecordUpdate {
	if v != nil {
		_u.SetGenerationTokens(*v)
	}
	return _u
}

// AddGenerationTokens adds value to the "generation_tokens" field.
func (_u *WorkRecordUpdate) AddGenerationTokens(v int) *WorkRecordUpdate {
	_u.mutation.AddGenerationTokens(v)
	return _u
}

// ClearGenerationTokens clears the value of the "generation_tokens" field.
func (_u *WorkRecordUpdate) ClearGenerationTokens() *WorkRecordUpdate {
	_u.mutation.ClearGenerationTokens()
	return _u
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_u *WorkRecordUpdate) SetGenerationTimeMs(v int) *WorkRecordUpdate {
	_u.mutation.ResetGenerationTimeMs()
	_u.mutation.SetGenerationTimeMs(v)
	return _u
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableGenerationTimeMs(v *int) *WorkRecordUpdate {
	if v != nil {
		_u.SetGenerationTimeMs(*v)
	}
	return _u
}

// AddGenerationTimeMs adds value to the "generation_time_ms" field.
func (_u *WorkRecordUpdate) AddGenerationTimeMs(v int) *WorkRecordUpdate {
	_u.mutation.AddGenerationTimeMs(v)
	return _u
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (_u *WorkRecordUpdate) ClearGenerationTimeMs() *WorkRecordUpdate {
	_u.mutation.ClearGenerationTimeMs()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkRecordUpdate) SetStatus(v workrecord.Status) *WorkRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableStatus(v *workrecord.Status) *WorkRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkRecordUpdate) SetErrorMessage(v string) *WorkRecordUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableErrorMessage(v *string) *WorkRecordUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkRecordUpdate) ClearErrorMessage() *WorkRecordUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *WorkRecordUpdate) SetRetryCount(v int) *WorkRecordUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableRetryCount(v *int) *WorkRecordUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *WorkRecordUpdate) AddRetryCount(v int) *WorkRecordUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetPostedAt sets the "posted_at" field.
func (_u *WorkRecordUpdate) SetPostedAt(v time.Time) *WorkRecordUpdate {
	_u.mutation.SetPostedAt(v)
	return _u
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillablePostedAt(v *time.Time) *WorkRecordUpdate {
	if v != nil {
		_u.SetPostedAt(*v)
	}
	return _u
}

// ClearPostedAt clears the value of the "posted_at" field.
func (_u *WorkRecordUpdate) ClearPostedAt() *WorkRecordUpdate {
	_u.mutation.ClearPostedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *WorkRecordUpdate) SetFailedAt(v time.Time) *WorkRecordUpdate {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *WorkRecordUpdate) SetNillableFailedAt(v *time.Time) *WorkRecordUpdate {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *WorkRecordUpdate) ClearFailedAt() *WorkRecordUpdate {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkRecordUpdate) SetUpdatedAt(v time.Time) *WorkRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkRecordMutation object of the builder.
func (_u *WorkRecordUpdate) Mutation() *WorkRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkRecord.status": %w`, err)}
		}
	}
	if _u.mutation.ProcessCleared() && len(_u.mutation.ProcessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkRecord.process"`)
	}
	return nil
}

func (_u *WorkRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workrecord.Table, workrecord.Columns, sqlgraph.NewFieldSpec(workrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ArticleTitle(); ok {
		_spec.SetField(workrecord.FieldArticleTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArticleAuthor(); ok {
		_spec.SetField(workrecord.FieldArticleAuthor, field.TypeString, value)
	}
	if _u.mutation.ArticleAuthorCleared() {
		_spec.ClearField(workrecord.FieldArticleAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleCategory(); ok {
		_spec.SetField(workrecord.FieldArticleCategory, field.TypeString, value)
	}
	if _u.mutation.ArticleCategoryCleared() {
		_spec.ClearField(workrecord.FieldArticleCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleURL(); ok {
		_spec.SetField(workrecord.FieldArticleURL, field.TypeString, value)
	}
	if _u.mutation.ArticleURLCleared() {
		_spec.ClearField(workrecord.FieldArticleURL, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleEditedAt(); ok {
		_spec.SetField(workrecord.FieldArticleEditedAt, field.TypeTime, value)
	}
	if _u.mutation.ArticleEditedAtCleared() {
		_spec.ClearField(workrecord.FieldArticleEditedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArticleContent(); ok {
		_spec.SetField(workrecord.FieldArticleContent, field.TypeString, value)
	}
	if _u.mutation.ArticleContentCleared() {
		_spec.ClearField(workrecord.FieldArticleContent, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleRawHTML(); ok {
		_spec.SetField(workrecord.FieldArticleRawHTML, field.TypeString, value)
	}
	if _u.mutation.ArticleRawHTMLCleared() {
		_spec.ClearField(workrecord.FieldArticleRawHTML, field.TypeString)
	}
	if value, ok := _u.mutation.ArticlePublishedAt(); ok {
		_spec.SetField(workrecord.FieldArticlePublishedAt, field.TypeTime, value)
	}
	if _u.mutation.ArticlePublishedAtCleared() {
		_spec.ClearField(workrecord.FieldArticlePublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArticleScrapedAt(); ok {
		_spec.SetField(workrecord.FieldArticleScrapedAt, field.TypeTime, value)
	}
	if _u.mutation.ArticleScrapedAtCleared() {
		_spec.ClearField(workrecord.FieldArticleScrapedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CommentContent(); ok {
		_spec.SetField(workrecord.FieldCommentContent, field.TypeString, value)
	}
	if _u.mutation.CommentContentCleared() {
		_spec.ClearField(workrecord.FieldCommentContent, field.TypeString)
	}
	if value, ok := _u.mutation.UpstreamCommentID(); ok {
		_spec.SetField(workrecord.FieldUpstreamCommentID, field.TypeString, value)
	}
	if _u.mutation.UpstreamCommentIDCleared() {
		_spec.ClearField(workrecord.FieldUpstreamCommentID, field.TypeString)
	}
	if value, ok := _u.mutation.AiModelName(); ok {
		_spec.SetField(workrecord.FieldAiModelName, field.TypeString, value)
	}
	if _u.mutation.AiModelNameCleared() {
		_spec.ClearField(workrecord.FieldAiModelName, field.TypeString)
	}
	if value, ok := _u.mutation.AiVendorTag(); ok {
		_spec.SetField(workrecord.FieldAiVendorTag, field.TypeString, value)
	}
	if _u.mutation.AiVendorTagCleared() {
		_spec.ClearField(workrecord.FieldAiVendorTag, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationTokens(); ok {
		_spec.SetField(workrecord.FieldGenerationTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationTokens(); ok {
		_spec.AddField(workrecord.FieldGenerationTokens, field.TypeInt, value)
	}
	if _u.mutation.GenerationTokensCleared() {
		_spec.ClearField(workrecord.FieldGenerationTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.GenerationTimeMs(); ok {
		_spec.SetField(workrecord.FieldGenerationTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationTimeMs(); ok {
		_spec.AddField(workrecord.FieldGenerationTimeMs, field.TypeInt, value)
	}
	if _u.mutation.GenerationTimeMsCleared() {
		_spec.ClearField(workrecord.FieldGenerationTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workrecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workrecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(workrecord.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(workrecord.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PostedAt(); ok {
		_spec.SetField(workrecord.FieldPostedAt, field.TypeTime, value)
	}
	if _u.mutation.PostedAtCleared() {
		_spec.ClearField(workrecord.FieldPostedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(workrecord.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(workrecord.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkRecordUpdateOne is the builder for updating a single WorkRecord entity.
type WorkRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkRecordMutation
}

// SetArticleTitle sets the "article_title" field.
func (_u *WorkRecordUpdateOne) SetArticleTitle(v string) *WorkRecordUpdateOne {
	_u.mutation.SetArticleTitle(v)
	return _u
}

// SetNillableArticleTitle sets the "article_title" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableArticleTitle(v *string) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetArticleTitle(*v)
	}
	return _u
}

// SetArticleAuthor sets the "article_author" field.
func (_u *WorkRecordUpdateOne) SetArticleAuthor(v string) *WorkRecordUpdateOne {
	_u.mutation.SetArticleAuthor(v)
	return _u
}

// SetNillableArticleAuthor sets the "article_author" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableArticleAuthor(v *string) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetArticleAuthor(*v)
	}
	return _u
}

// ClearArticleAuthor clears the value of the "article_author" field.
func (_u *WorkRecordUpdateOne) ClearArticleAuthor() *WorkRecordUpdateOne {
	_u.mutation.ClearArticleAuthor()
	return _u
}

// SetArticleCategory sets the "article_category" field.
func (_u *WorkRecordUpdateOne) SetArticleCategory(v string) *WorkRecordUpdateOne {
	_u.mutation.SetArticleCategory(v)
	return _u
}

// SetNillableArticleCategory sets the "article_category" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableArticleCategory(v *string) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetArticleCategory(*v)
	}
	return _u
}

// ClearArticleCategory clears the value of the "article_category" field.
func (_u *WorkRecordUpdateOne) ClearArticleCategory() *WorkRecordUpdateOne {
	_u.mutation.ClearArticleCategory()
	return _u
}

// SetArticleURL sets the "article_url" field.
func (_u *WorkRecordUpdateOne) SetArticleURL(v string) *WorkRecordUpdateOne {
	_u.mutation.SetArticleURL(v)
	return _u
}

// SetNillableArticleURL sets the "article_url" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableArticleURL(v *string) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetArticleURL(*v)
	}
	return _u
}

// ClearArticleURL clears the value of the "article_url" field.
func (_u *WorkRecordUpdateOne) ClearArticleURL() *WorkRecordUpdateOne {
	_u.mutation.ClearArticleURL()
	return _u
}

// SetArticleEditedAt sets the "article_edited_at" field.
func (_u *WorkRecordUpdateOne) SetArticleEditedAt(v time.Time) *WorkRecordUpdateOne {
	_u.mutation.SetArticleEditedAt(v)
	return _u
}

// SetNillableArticleEditedAt sets the "article_edited_at" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableArticleEditedAt(v *time.Time) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetArticleEditedAt(*v)
	}
	return _u
}

// ClearArticleEditedAt clears the value of the "article_edited_at" field.
func (_u *WorkRecordUpdateOne) ClearArticleEditedAt() *WorkRecordUpdateOne {
	_u.mutation.ClearArticleEditedAt()
	return _u
}

// SetArticleContent sets the "article_content" field.
func (_u *WorkRecordUpdateOne) SetArticleContent(v string) *WorkRecordUpdateOne {
	_u.mutation.SetArticleContent(v)
	return _u
}

// SetNillableArticleContent sets the "article_content" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableArticleContent(v *string) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetArticleContent(*v)
	}
	return _u
}

// ClearArticleContent clears the value of the "article_content" field.
func (_u *WorkRecordUpdateOne) ClearArticleContent() *WorkRecordUpdateOne {
	_u.mutation.ClearArticleContent()
	return _u
}

// SetArticleRawHTML sets the "article_raw_html" field.
func (_u *WorkRecordUpdateOne) SetArticleRawHTML(v string) *WorkRecordUpdateOne {
	_u.mutation.SetArticleRawHTML(v)
	return _u
}

// SetNillableArticleRawHTML sets the "article_raw_html" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableArticleRawHTML(v *string) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetArticleRawHTML(*v)
	}
	return _u
}

// ClearArticleRawHTML clears the value of the "article_raw_html" field.
func (_u *WorkRecordUpdateOne) ClearArticleRawHTML() *WorkRecordUpdateOne {
	_u.mutation.ClearArticleRawHTML()
	return _u
}

// SetArticlePublishedAt sets the "article_published_at" field.
func (_u *WorkRecordUpdateOne) SetArticlePublishedAt(v time.Time) *WorkRecordUpdateOne {
	_u.mutation.SetArticlePublishedAt(v)
	return _u
}

// SetNillableArticlePublishedAt sets the "article_published_at" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableArticlePublishedAt(v *time.Time) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetArticlePublishedAt(*v)
	}
	return _u
}

// ClearArticlePublishedAt clears the value of the "article_published_at" field.
func (_u *WorkRecordUpdateOne) ClearArticlePublishedAt() *WorkRecordUpdateOne {
	_u.mutation.ClearArticlePublishedAt()
	return _u
}

// SetArticleScrapedAt sets the "article_scraped_at" field.
func (_u *WorkRecordUpdateOne) SetArticleScrapedAt(v time.Time) *WorkRecordUpdateOne {
	_u.mutation.SetArticleScrapedAt(v)
	return _u
}

// SetNillableArticleScrapedAt sets the "article_scraped_at" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableArticleScrapedAt(v *time.Time) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetArticleScrapedAt(*v)
	}
	return _u
}

// ClearArticleScrapedAt clears the value of the "article_scraped_at" field.
func (_u *WorkRecordUpdateOne) ClearArticleScrapedAt() *WorkRecordUpdateOne {
	_u.mutation.ClearArticleScrapedAt()
	return _u
}

// SetCommentContent sets the "comment_content" field.
func (_u *WorkRecordUpdateOne) SetCommentContent(v string) *WorkRecordUpdateOne {
	_u.mutation.SetCommentContent(v)
	return _u
}

// SetNillableCommentContent sets the "comment_content" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableCommentContent(v *string) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetCommentContent(*v)
	}
	return _u
}

// ClearCommentContent clears the value of the "comment_content" field.
func (_u *WorkRecordUpdateOne) ClearCommentContent() *WorkRecordUpdateOne {
	_u.mutation.ClearCommentContent()
	return _u
}

// SetUpstreamCommentID sets the "upstream_comment_id" field.
func (_u *WorkRecordUpdateOne) SetUpstreamCommentID(v string) *WorkRecordUpdateOne {
	_u.mutation.SetUpstreamCommentID(v)
	return _u
}

// SetNillableUpstreamCommentID sets the "upstream_comment_id" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableUpstreamCommentID(v *string) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetUpstreamCommentID(*v)
	}
	return _u
}

// ClearUpstreamCommentID clears the value of the "upstream_comment_id" field.
func (_u *WorkRecordUpdateOne) ClearUpstreamCommentID() *WorkRecordUpdateOne {
	_u.mutation.ClearUpstreamCommentID()
	return _u
}

// SetAiModelName sets the "ai_model_name" field.
func (_u *WorkRecordUpdateOne) SetAiModelName(v string) *WorkRecordUpdateOne {
	_u.mutation.SetAiModelName(v)
	return _u
}

// SetNillableAiModelName sets the "ai_model_name" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableAiModelName(v *string) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetAiModelName(*v)
	}
	return _u
}

// ClearAiModelName clears the value of the "ai_model_name" field.
func (_u *WorkRecordUpdateOne) ClearAiModelName() *WorkRecordUpdateOne {
	_u.mutation.ClearAiModelName()
	return _u
}

// SetAiVendorTag sets the "ai_vendor_tag" field.
func (_u *WorkRecordUpdateOne) SetAiVendorTag(v string) *WorkRecordUpdateOne {
	_u.mutation.SetAiVendorTag(v)
	return _u
}

// SetNillableAiVendorTag sets the "ai_vendor_tag" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableAiVendorTag(v *string) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetAiVendorTag(*v)
	}
	return _u
}

// ClearAiVendorTag clears the value of the "ai_vendor_tag" field.
func (_u *WorkRecordUpdateOne) ClearAiVendorTag() *WorkRecordUpdateOne {
	_u.mutation.ClearAiVendorTag()
	return _u
}

// SetGenerationTokens sets the "generation_tokens" field.
func (_u *WorkRecordUpdateOne) SetGenerationTokens(v int) *WorkRecordUpdateOne {
	_u.mutation.ResetGenerationTokens()
	_u.mutation.SetGenerationTokens(v)
	return _u
}

// SetNillableGenerationTokens sets the "generation_tokens" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableGenerationTokens(v *int) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetGenerationTokens(*v)
	}
	return _u
}

// AddGenerationTokens adds value to the "generation_tokens" field.
func (_u *WorkRecordUpdateOne) AddGenerationTokens(v int) *WorkRecordUpdateOne {
	_u.mutation.AddGenerationTokens(v)
	return _u
}

// ClearGenerationTokens clears the value of the "generation_tokens" field.
func (_u *WorkRecordUpdateOne) ClearGenerationTokens() *WorkRecordUpdateOne {
	_u.mutation.ClearGenerationTokens()
	return _u
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_u *WorkRecordUpdateOne) SetGenerationTimeMs(v int) *WorkRecordUpdateOne {
	_u.mutation.ResetGenerationTimeMs()
	_u.mutation.SetGenerationTimeMs(v)
	return _u
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableGenerationTimeMs(v *int) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetGenerationTimeMs(*v)
	}
	return _u
}

// AddGenerationTimeMs adds value to the "generation_time_ms" field.
func (_u *WorkRecordUpdateOne) AddGenerationTimeMs(v int) *WorkRecordUpdateOne {
	_u.mutation.AddGenerationTimeMs(v)
	return _u
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (_u *WorkRecordUpdateOne) ClearGenerationTimeMs() *WorkRecordUpdateOne {
	_u.mutation.ClearGenerationTimeMs()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkRecordUpdateOne) SetStatus(v workrecord.Status) *WorkRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableStatus(v *workrecord.Status) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkRecordUpdateOne) SetErrorMessage(v string) *WorkRecordUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableErrorMessage(v *string) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkRecordUpdateOne) ClearErrorMessage() *WorkRecordUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *WorkRecordUpdateOne) SetRetryCount(v int) *WorkRecordUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableRetryCount(v *int) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *WorkRecordUpdateOne) AddRetryCount(v int) *WorkRecordUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetPostedAt sets the "posted_at" field.
func (_u *WorkRecordUpdateOne) SetPostedAt(v time.Time) *WorkRecordUpdateOne {
	_u.mutation.SetPostedAt(v)
	return _u
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillablePostedAt(v *time.Time) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetPostedAt(*v)
	}
	return _u
}

// ClearPostedAt clears the value of the "posted_at" field.
func (_u *WorkRecordUpdateOne) ClearPostedAt() *WorkRecordUpdateOne {
	_u.mutation.ClearPostedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *WorkRecordUpdateOne) SetFailedAt(v time.Time) *WorkRecordUpdateOne {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *WorkRecordUpdateOne) SetNillableFailedAt(v *time.Time) *WorkRecordUpdateOne {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *WorkRecordUpdateOne) ClearFailedAt() *WorkRecordUpdateOne {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkRecordUpdateOne) SetUpdatedAt(v time.Time) *WorkRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkRecordMutation object of the builder.
func (_u *WorkRecordUpdateOne) Mutation() *WorkRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkRecordUpdate builder.
func (_u *WorkRecordUpdateOne) Where(ps ...predicate.WorkRecord) *WorkRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkRecordUpdateOne) Select(field string, fields ...string) *WorkRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkRecord entity.
func (_u *WorkRecordUpdateOne) Save(ctx context.Context) (*WorkRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkRecordUpdateOne) SaveX(ctx context.Context) *WorkRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkRecord.status": %w`, err)}
		}
	}
	if _u.mutation.ProcessCleared() && len(_u.mutation.ProcessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkRecord.process"`)
	}
	return nil
}

func (_u *WorkRecordUpdateOne) sqlSave(ctx context.Context) (_node *WorkRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workrecord.Table, workrecord.Columns, sqlgraph.NewFieldSpec(workrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workrecord.FieldID)
		for _, f := range fields {
			if !workrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workrecord.FieldID {
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
	if value, ok := _u.mutation.ArticleTitle(); ok {
		_spec.SetField(workrecord.FieldArticleTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArticleAuthor(); ok {
		_spec.SetField(workrecord.FieldArticleAuthor, field.TypeString, value)
	}
	if _u.mutation.ArticleAuthorCleared() {
		_spec.ClearField(workrecord.FieldArticleAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleCategory(); ok {
		_spec.SetField(workrecord.FieldArticleCategory, field.TypeString, value)
	}
	if _u.mutation.ArticleCategoryCleared() {
		_spec.ClearField(workrecord.FieldArticleCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleURL(); ok {
		_spec.SetField(workrecord.FieldArticleURL, field.TypeString, value)
	}
	if _u.mutation.ArticleURLCleared() {
		_spec.ClearField(workrecord.FieldArticleURL, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleEditedAt(); ok {
		_spec.SetField(workrecord.FieldArticleEditedAt, field.TypeTime, value)
	}
	if _u.mutation.ArticleEditedAtCleared() {
		_spec.ClearField(workrecord.FieldArticleEditedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArticleContent(); ok {
		_spec.SetField(workrecord.FieldArticleContent, field.TypeString, value)
	}
	if _u.mutation.ArticleContentCleared() {
		_spec.ClearField(workrecord.FieldArticleContent, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleRawHTML(); ok {
		_spec.SetField(workrecord.FieldArticleRawHTML, field.TypeString, value)
	}
	if _u.mutation.ArticleRawHTMLCleared() {
		_spec.ClearField(workrecord.FieldArticleRawHTML, field.TypeString)
	}
	if value, ok := _u.mutation.ArticlePublishedAt(); ok {
		_spec.SetField(workrecord.FieldArticlePublishedAt, field.TypeTime, value)
	}
	if _u.mutation.ArticlePublishedAtCleared() {
		_spec.ClearField(workrecord.FieldArticlePublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArticleScrapedAt(); ok {
		_spec.SetField(workrecord.FieldArticleScrapedAt, field.TypeTime, value)
	}
	if _u.mutation.ArticleScrapedAtCleared() {
		_spec.ClearField(workrecord.FieldArticleScrapedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CommentContent(); ok {
		_spec.SetField(workrecord.FieldCommentContent, field.TypeString, value)
	}
	if _u.mutation.CommentContentCleared() {
		_spec.ClearField(workrecord.FieldCommentContent, field.TypeString)
	}
	if value, ok := _u.mutation.UpstreamCommentID(); ok {
		_spec.SetField(workrecord.FieldUpstreamCommentID, field.TypeString, value)
	}
	if _u.mutation.UpstreamCommentIDCleared() {
		_spec.ClearField(workrecord.FieldUpstreamCommentID, field.TypeString)
	}
	if value, ok := _u.mutation.AiModelName(); ok {
		_spec.SetField(workrecord.FieldAiModelName, field.TypeString, value)
	}
	if _u.mutation.AiModelNameCleared() {
		_spec.ClearField(workrecord.FieldAiModelName, field.TypeString)
	}
	if value, ok := _u.mutation.AiVendorTag(); ok {
		_spec.SetField(workrecord.FieldAiVendorTag, field.TypeString, value)
	}
	if _u.mutation.AiVendorTagCleared() {
		_spec.ClearField(workrecord.FieldAiVendorTag, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationTokens(); ok {
		_spec.SetField(workrecord.FieldGenerationTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationTokens(); ok {
		_spec.AddField(workrecord.FieldGenerationTokens, field.TypeInt, value)
	}
	if _u.mutation.GenerationTokensCleared() {
		_spec.ClearField(workrecord.FieldGenerationTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.GenerationTimeMs(); ok {
		_spec.SetField(workrecord.FieldGenerationTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationTimeMs(); ok {
		_spec.AddField(workrecord.FieldGenerationTimeMs, field.TypeInt, value)
	}
	if _u.mutation.GenerationTimeMsCleared() {
		_spec.ClearField(workrecord.FieldGenerationTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workrecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workrecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(workrecord.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(workrecord.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PostedAt(); ok {
		_spec.SetField(workrecord.FieldPostedAt, field.TypeTime, value)
	}
	if _u.mutation.PostedAtCleared() {
		_spec.ClearField(workrecord.FieldPostedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(workrecord.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(workrecord.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
