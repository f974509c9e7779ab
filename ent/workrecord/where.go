// Code generated by ent, DO NOT EDIT.

package workrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/yourmoment/yourmoment/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldID, id))
}

// ProcessID applies equality check predicate on the "process_id" field. It's identical to ProcessIDEQ.
func ProcessID(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldProcessID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldUserID, v))
}

// CredentialID applies equality check predicate on the "credential_id" field. It's identical to CredentialIDEQ.
func CredentialID(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldCredentialID, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldTemplateID, v))
}

// LlmProviderID applies equality check predicate on the "llm_provider_id" field. It's identical to LlmProviderIDEQ.
func LlmProviderID(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldLlmProviderID, v))
}

// UpstreamArticleID applies equality check predicate on the "upstream_article_id" field. It's identical to UpstreamArticleIDEQ.
func UpstreamArticleID(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldUpstreamArticleID, v))
}

// ArticleTitle applies equality check predicate on the "article_title" field. It's identical to ArticleTitleEQ.
func ArticleTitle(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleTitle, v))
}

// ArticleAuthor applies equality check predicate on the "article_author" field. It's identical to ArticleAuthorEQ.
func ArticleAuthor(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleAuthor, v))
}

// ArticleCategory applies equality check predicate on the "article_category" field. It's identical to ArticleCategoryEQ.
func ArticleCategory(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleCategory, v))
}

// ArticleURL applies equality check predicate on the "article_url" field. It's identical to ArticleURLEQ.
func ArticleURL(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleURL, v))
}

// ArticleEditedAt applies equality check predicate on the "article_edited_at" field. It's identical to ArticleEditedAtEQ.
func ArticleEditedAt(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleEditedAt, v))
}

// ArticleContent applies equality check predicate on the "article_content" field. It's identical to ArticleContentEQ.
func ArticleContent(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleContent, v))
}

// ArticleRawHTML applies equality check predicate on the "article_raw_html" field. It's identical to ArticleRawHTMLEQ.
func ArticleRawHTML(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleRawHTML, v))
}

// ArticlePublishedAt applies equality check predicate on the "article_published_at" field. It's identical to ArticlePublishedAtEQ.
func ArticlePublishedAt(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticlePublishedAt, v))
}

// ArticleScrapedAt applies equality check predicate on the "article_scraped_at" field. It's identical to ArticleScrapedAtEQ.
func ArticleScrapedAt(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleScrapedAt, v))
}

// CommentContent applies equality check predicate on the "comment_content" field. It's identical to CommentContentEQ.
func CommentContent(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldCommentContent, v))
}

// UpstreamCommentID applies equality check predicate on the "upstream_comment_id" field. It's identical to UpstreamCommentIDEQ.
func UpstreamCommentID(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldUpstreamCommentID, v))
}

// AiModelName applies equality check predicate on the "ai_model_name" field. It's identical to AiModelNameEQ.
func AiModelName(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldAiModelName, v))
}

// AiVendorTag applies equality check predicate on the "ai_vendor_tag" field. It's identical to AiVendorTagEQ.
func AiVendorTag(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldAiVendorTag, v))
}

// GenerationTokens applies equality check predicate on the "generation_tokens" field. It's identical to GenerationTokensEQ.
func GenerationTokens(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldGenerationTokens, v))
}

// GenerationTimeMs applies equality check predicate on the "generation_time_ms" field. It's identical to GenerationTimeMsEQ.
func GenerationTimeMs(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldGenerationTimeMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldRetryCount, v))
}

// PostedAt applies equality check predicate on the "posted_at" field. It's identical to PostedAtEQ.
func PostedAt(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldPostedAt, v))
}

// FailedAt applies equality check predicate on the "failed_at" field. It's identical to FailedAtEQ.
func FailedAt(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldFailedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProcessIDEQ applies the EQ predicate on the "process_id" field.
func ProcessIDEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldProcessID, v))
}

// ProcessIDNEQ applies the NEQ predicate on the "process_id" field.
func ProcessIDNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldProcessID, v))
}

// ProcessIDIn applies the In predicate on the "process_id" field.
func ProcessIDIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldProcessID, vs...))
}

// ProcessIDNotIn applies the NotIn predicate on the "process_id" field.
func ProcessIDNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldProcessID, vs...))
}

// ProcessIDGT applies the GT predicate on the "process_id" field.
func ProcessIDGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldProcessID, v))
}

// ProcessIDGTE applies the GTE predicate on the "process_id" field.
func ProcessIDGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldProcessID, v))
}

// ProcessIDLT applies the LT predicate on the "process_id" field.
func ProcessIDLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldProcessID, v))
}

// ProcessIDLTE applies the LTE predicate on the "process_id" field.
func ProcessIDLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldProcessID, v))
}

// ProcessIDContains applies the Contains predicate on the "process_id" field.
func ProcessIDContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldProcessID, v))
}

// ProcessIDHasPrefix applies the HasPrefix predicate on the "process_id" field.
func ProcessIDHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldProcessID, v))
}

// ProcessIDHasSuffix applies the HasSuffix predicate on the "process_id" field.
func ProcessIDHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldProcessID, v))
}

// ProcessIDEqualFold applies the EqualFold predicate on the "process_id" field.
func ProcessIDEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldProcessID, v))
}

// ProcessIDContainsFold applies the ContainsFold predicate on the "process_id" field.
func ProcessIDContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldProcessID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldUserID, v))
}

// CredentialIDEQ applies the EQ predicate on the "credential_id" field.
func CredentialIDEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldCredentialID, v))
}

// CredentialIDNEQ applies the NEQ predicate on the "credential_id" field.
func CredentialIDNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldCredentialID, v))
}

// CredentialIDIn applies the In predicate on the "credential_id" field.
func CredentialIDIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldCredentialID, vs...))
}

// CredentialIDNotIn applies the NotIn predicate on the "credential_id" field.
func CredentialIDNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldCredentialID, vs...))
}

// CredentialIDGT applies the GT predicate on the "credential_id" field.
func CredentialIDGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldCredentialID, v))
}

// CredentialIDGTE applies the GTE predicate on the "credential_id" field.
func CredentialIDGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldCredentialID, v))
}

// CredentialIDLT applies the LT predicate on the "credential_id" field.
func CredentialIDLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldCredentialID, v))
}

// CredentialIDLTE applies the LTE predicate on the "credential_id" field.
func CredentialIDLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldCredentialID, v))
}

// CredentialIDContains applies the Contains predicate on the "credential_id" field.
func CredentialIDContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldCredentialID, v))
}

// CredentialIDHasPrefix applies the HasPrefix predicate on the "credential_id" field.
func CredentialIDHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldCredentialID, v))
}

// CredentialIDHasSuffix applies the HasSuffix predicate on the "credential_id" field.
func CredentialIDHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldCredentialID, v))
}

// CredentialIDEqualFold applies the EqualFold predicate on the "credential_id" field.
func CredentialIDEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldCredentialID, v))
}

// CredentialIDContainsFold applies the ContainsFold predicate on the "credential_id" field.
func CredentialIDContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldCredentialID, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDContains applies the Contains predicate on the "template_id" field.
func TemplateIDContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldTemplateID, v))
}

// TemplateIDHasPrefix applies the HasPrefix predicate on the "template_id" field.
func TemplateIDHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldTemplateID, v))
}

// TemplateIDHasSuffix applies the HasSuffix predicate on the "template_id" field.
func TemplateIDHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldTemplateID, v))
}

// TemplateIDEqualFold applies the EqualFold predicate on the "template_id" field.
func TemplateIDEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldTemplateID, v))
}

// TemplateIDContainsFold applies the ContainsFold predicate on the "template_id" field.
func TemplateIDContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldTemplateID, v))
}

// LlmProviderIDEQ applies the EQ predicate on the "llm_provider_id" field.
func LlmProviderIDEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldLlmProviderID, v))
}

// LlmProviderIDNEQ applies the NEQ predicate on the "llm_provider_id" field.
func LlmProviderIDNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldLlmProviderID, v))
}

// LlmProviderIDIn applies the In predicate on the "llm_provider_id" field.
func LlmProviderIDIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldLlmProviderID, vs...))
}

// LlmProviderIDNotIn applies the NotIn predicate on the "llm_provider_id" field.
func LlmProviderIDNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldLlmProviderID, vs...))
}

// LlmProviderIDGT applies the GT predicate on the "llm_provider_id" field.
func LlmProviderIDGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldLlmProviderID, v))
}

// LlmProviderIDGTE applies the GTE predicate on the "llm_provider_id" field.
func LlmProviderIDGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldLlmProviderID, v))
}

// LlmProviderIDLT applies the LT predicate on the "llm_provider_id" field.
func LlmProviderIDLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldLlmProviderID, v))
}

// LlmProviderIDLTE applies the LTE predicate on the "llm_provider_id" field.
func LlmProviderIDLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldLlmProviderID, v))
}

// LlmProviderIDContains applies the Contains predicate on the "llm_provider_id" field.
func LlmProviderIDContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldLlmProviderID, v))
}

// LlmProviderIDHasPrefix applies the HasPrefix predicate on the "llm_provider_id" field.
func LlmProviderIDHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldLlmProviderID, v))
}

// LlmProviderIDHasSuffix applies the HasSuffix predicate on the "llm_provider_id" field.
func LlmProviderIDHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldLlmProviderID, v))
}

// LlmProviderIDEqualFold applies the EqualFold predicate on the "llm_provider_id" field.
func LlmProviderIDEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldLlmProviderID, v))
}

// LlmProviderIDContainsFold applies the ContainsFold predicate on the "llm_provider_id" field.
func LlmProviderIDContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldLlmProviderID, v))
}

// UpstreamArticleIDEQ applies the EQ predicate on the "upstream_article_id" field.
func UpstreamArticleIDEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldUpstreamArticleID, v))
}

// UpstreamArticleIDNEQ applies the NEQ predicate on the "upstream_article_id" field.
func UpstreamArticleIDNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldUpstreamArticleID, v))
}

// UpstreamArticleIDIn applies the In predicate on the "upstream_article_id" field.
func UpstreamArticleIDIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldUpstreamArticleID, vs...))
}

// UpstreamArticleIDNotIn applies the NotIn predicate on the "upstream_article_id" field.
func UpstreamArticleIDNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldUpstreamArticleID, vs...))
}

// UpstreamArticleIDGT applies the GT predicate on the "upstream_article_id" field.
func UpstreamArticleIDGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldUpstreamArticleID, v))
}

// UpstreamArticleIDGTE applies the GTE predicate on the "upstream_article_id" field.
func UpstreamArticleIDGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldUpstreamArticleID, v))
}

// UpstreamArticleIDLT applies the LT predicate on the "upstream_article_id" field.
func UpstreamArticleIDLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldUpstreamArticleID, v))
}

// UpstreamArticleIDLTE applies the LTE predicate on the "upstream_article_id" field.
func UpstreamArticleIDLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldUpstreamArticleID, v))
}

// UpstreamArticleIDContains applies the Contains predicate on the "upstream_article_id" field.
func UpstreamArticleIDContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldUpstreamArticleID, v))
}

// UpstreamArticleIDHasPrefix applies the HasPrefix predicate on the "upstream_article_id" field.
func UpstreamArticleIDHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldUpstreamArticleID, v))
}

// UpstreamArticleIDHasSuffix applies the HasSuffix predicate on the "upstream_article_id" field.
func UpstreamArticleIDHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldUpstreamArticleID, v))
}

// UpstreamArticleIDEqualFold applies the EqualFold predicate on the "upstream_article_id" field.
func UpstreamArticleIDEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldUpstreamArticleID, v))
}

// UpstreamArticleIDContainsFold applies the ContainsFold predicate on the "upstream_article_id" field.
func UpstreamArticleIDContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldUpstreamArticleID, v))
}

// ArticleTitleEQ applies the EQ predicate on the "article_title" field.
func ArticleTitleEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleTitle, v))
}

// ArticleTitleNEQ applies the NEQ predicate on the "article_title" field.
func ArticleTitleNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldArticleTitle, v))
}

// ArticleTitleIn applies the In predicate on the "article_title" field.
func ArticleTitleIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldArticleTitle, vs...))
}

// ArticleTitleNotIn applies the NotIn predicate on the "article_title" field.
func ArticleTitleNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldArticleTitle, vs...))
}

// ArticleTitleGT applies the GT predicate on the "article_title" field.
func ArticleTitleGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldArticleTitle, v))
}

// ArticleTitleGTE applies the GTE predicate on the "article_title" field.
func ArticleTitleGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldArticleTitle, v))
}

// ArticleTitleLT applies the LT predicate on the "article_title" field.
func ArticleTitleLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldArticleTitle, v))
}

// ArticleTitleLTE applies the LTE predicate on the "article_title" field.
func ArticleTitleLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldArticleTitle, v))
}

// ArticleTitleContains applies the Contains predicate on the "article_title" field.
func ArticleTitleContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldArticleTitle, v))
}

// ArticleTitleHasPrefix applies the HasPrefix predicate on the "article_title" field.
func ArticleTitleHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldArticleTitle, v))
}

// ArticleTitleHasSuffix applies the HasSuffix predicate on the "article_title" field.
func ArticleTitleHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldArticleTitle, v))
}

// ArticleTitleEqualFold applies the EqualFold predicate on the "article_title" field.
func ArticleTitleEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldArticleTitle, v))
}

// ArticleTitleContainsFold applies the ContainsFold predicate on the "article_title" field.
func ArticleTitleContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldArticleTitle, v))
}

// ArticleAuthorEQ applies the EQ predicate on the "article_author" field.
func ArticleAuthorEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleAuthor, v))
}

// ArticleAuthorNEQ applies the NEQ predicate on the "article_author" field.
func ArticleAuthorNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldArticleAuthor, v))
}

// ArticleAuthorIn applies the In predicate on the "article_author" field.
func ArticleAuthorIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldArticleAuthor, vs...))
}

// ArticleAuthorNotIn applies the NotIn predicate on the "article_author" field.
func ArticleAuthorNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldArticleAuthor, vs...))
}

// ArticleAuthorGT applies the GT predicate on the "article_author" field.
func ArticleAuthorGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldArticleAuthor, v))
}

// ArticleAuthorGTE applies the GTE predicate on the "article_author" field.
func ArticleAuthorGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldArticleAuthor, v))
}

// ArticleAuthorLT applies the LT predicate on the "article_author" field.
func ArticleAuthorLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldArticleAuthor, v))
}

// ArticleAuthorLTE applies the LTE predicate on the "article_author" field.
func ArticleAuthorLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldArticleAuthor, v))
}

// ArticleAuthorContains applies the Contains predicate on the "article_author" field.
func ArticleAuthorContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldArticleAuthor, v))
}

// ArticleAuthorHasPrefix applies the HasPrefix predicate on the "article_author" field.
func ArticleAuthorHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldArticleAuthor, v))
}

// ArticleAuthorHasSuffix applies the HasSuffix predicate on the "article_author" field.
func ArticleAuthorHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldArticleAuthor, v))
}

// ArticleAuthorIsNil applies the IsNil predicate on the "article_author" field.
func ArticleAuthorIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldArticleAuthor))
}

// ArticleAuthorNotNil applies the NotNil predicate on the "article_author" field.
func ArticleAuthorNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldArticleAuthor))
}

// ArticleAuthorEqualFold applies the EqualFold predicate on the "article_author" field.
func ArticleAuthorEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldArticleAuthor, v))
}

// ArticleAuthorContainsFold applies the ContainsFold predicate on the "article_author" field.
func ArticleAuthorContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldArticleAuthor, v))
}

// ArticleCategoryEQ applies the EQ predicate on the "article_category" field.
func ArticleCategoryEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleCategory, v))
}

// ArticleCategoryNEQ applies the NEQ predicate on the "article_category" field.
func ArticleCategoryNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldArticleCategory, v))
}

// ArticleCategoryIn applies the In predicate on the "article_category" field.
func ArticleCategoryIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldArticleCategory, vs...))
}

// ArticleCategoryNotIn applies the NotIn predicate on the "article_category" field.
func ArticleCategoryNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldArticleCategory, vs...))
}

// ArticleCategoryGT applies the GT predicate on the "article_category" field.
func ArticleCategoryGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldArticleCategory, v))
}

// ArticleCategoryGTE applies the GTE predicate on the "article_category" field.
func ArticleCategoryGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldArticleCategory, v))
}

// ArticleCategoryLT applies the LT predicate on the "article_category" field.
func ArticleCategoryLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldArticleCategory, v))
}

// ArticleCategoryLTE applies the LTE predicate on the "article_category" field.
func ArticleCategoryLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldArticleCategory, v))
}

// ArticleCategoryContains applies the Contains predicate on the "article_category" field.
func ArticleCategoryContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldArticleCategory, v))
}

// ArticleCategoryHasPrefix applies the HasPrefix predicate on the "article_category" field.
func ArticleCategoryHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldArticleCategory, v))
}

// ArticleCategoryHasSuffix applies the HasSuffix predicate on the "article_category" field.
func ArticleCategoryHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldArticleCategory, v))
}

// ArticleCategoryIsNil applies the IsNil predicate on the "article_category" field.
func ArticleCategoryIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldArticleCategory))
}

// ArticleCategoryNotNil applies the NotNil predicate on the "article_category" field.
func ArticleCategoryNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldArticleCategory))
}

// ArticleCategoryEqualFold applies the EqualFold predicate on the "article_category" field.
func ArticleCategoryEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldArticleCategory, v))
}

// ArticleCategoryContainsFold applies the ContainsFold predicate on the "article_category" field.
func ArticleCategoryContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldArticleCategory, v))
}

// ArticleURLEQ applies the EQ predicate on the "article_url" field.
func ArticleURLEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleURL, v))
}

// ArticleURLNEQ applies the NEQ predicate on the "article_url" field.
func ArticleURLNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldArticleURL, v))
}

// ArticleURLIn applies the In predicate on the "article_url" field.
func ArticleURLIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldArticleURL, vs...))
}

// ArticleURLNotIn applies the NotIn predicate on the "article_url" field.
func ArticleURLNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldArticleURL, vs...))
}

// ArticleURLGT applies the GT predicate on the "article_url" field.
func ArticleURLGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldArticleURL, v))
}

// ArticleURLGTE applies the GTE predicate on the "article_url" field.
func ArticleURLGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldArticleURL, v))
}

// ArticleURLLT applies the LT predicate on the "article_url" field.
func ArticleURLLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldArticleURL, v))
}

// ArticleURLLTE applies the LTE predicate on the "article_url" field.
func ArticleURLLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldArticleURL, v))
}

// ArticleURLContains applies the Contains predicate on the "article_url" field.
func ArticleURLContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldArticleURL, v))
}

// ArticleURLHasPrefix applies the HasPrefix predicate on the "article_url" field.
func ArticleURLHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldArticleURL, v))
}

// ArticleURLHasSuffix applies the HasSuffix predicate on the "article_url" field.
func ArticleURLHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldArticleURL, v))
}

// ArticleURLIsNil applies the IsNil predicate on the "article_url" field.
func ArticleURLIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldArticleURL))
}

// ArticleURLNotNil applies the NotNil predicate on the "article_url" field.
func ArticleURLNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldArticleURL))
}

// ArticleURLEqualFold applies the EqualFold predicate on the "article_url" field.
func ArticleURLEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldArticleURL, v))
}

// ArticleURLContainsFold applies the ContainsFold predicate on the "article_url" field.
func ArticleURLContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldArticleURL, v))
}

// ArticleEditedAtEQ applies the EQ predicate on the "article_edited_at" field.
func ArticleEditedAtEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleEditedAt, v))
}

// ArticleEditedAtNEQ applies the NEQ predicate on the "article_edited_at" field.
func ArticleEditedAtNEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldArticleEditedAt, v))
}

// ArticleEditedAtIn applies the In predicate on the "article_edited_at" field.
func ArticleEditedAtIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldArticleEditedAt, vs...))
}

// ArticleEditedAtNotIn applies the NotIn predicate on the "article_edited_at" field.
func ArticleEditedAtNotIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldArticleEditedAt, vs...))
}

// ArticleEditedAtGT applies the GT predicate on the "article_edited_at" field.
func ArticleEditedAtGT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldArticleEditedAt, v))
}

// ArticleEditedAtGTE applies the GTE predicate on the "article_edited_at" field.
func ArticleEditedAtGTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldArticleEditedAt, v))
}

// ArticleEditedAtLT applies the LT predicate on the "article_edited_at" field.
func ArticleEditedAtLT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldArticleEditedAt, v))
}

// ArticleEditedAtLTE applies the LTE predicate on the "article_edited_at" field.
func ArticleEditedAtLTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldArticleEditedAt, v))
}

// ArticleEditedAtIsNil applies the IsNil predicate on the "article_edited_at" field.
func ArticleEditedAtIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldArticleEditedAt))
}

// ArticleEditedAtNotNil applies the NotNil predicate on the "article_edited_at" field.
func ArticleEditedAtNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldArticleEditedAt))
}

// ArticleContentEQ applies the EQ predicate on the "article_content" field.
func ArticleContentEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleContent, v))
}

// ArticleContentNEQ applies the NEQ predicate on the "article_content" field.
func ArticleContentNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldArticleContent, v))
}

// ArticleContentIn applies the In predicate on the "article_content" field.
func ArticleContentIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldArticleContent, vs...))
}

// ArticleContentNotIn applies the NotIn predicate on the "article_content" field.
func ArticleContentNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldArticleContent, vs...))
}

// ArticleContentGT applies the GT predicate on the "article_content" field.
func ArticleContentGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldArticleContent, v))
}

// ArticleContentGTE applies the GTE predicate on the "article_content" field.
func ArticleContentGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldArticleContent, v))
}

// ArticleContentLT applies the LT predicate on the "article_content" field.
func ArticleContentLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldArticleContent, v))
}

// ArticleContentLTE applies the LTE predicate on the "article_content" field.
func ArticleContentLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldArticleContent, v))
}

// ArticleContentContains applies the Contains predicate on the "article_content" field.
func ArticleContentContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldArticleContent, v))
}

// ArticleContentHasPrefix applies the HasPrefix predicate on the "article_content" field.
func ArticleContentHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldArticleContent, v))
}

// ArticleContentHasSuffix applies the HasSuffix predicate on the "article_content" field.
func ArticleContentHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldArticleContent, v))
}

// ArticleContentIsNil applies the IsNil predicate on the "article_content" field.
func ArticleContentIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldArticleContent))
}

// ArticleContentNotNil applies the NotNil predicate on the "article_content" field.
func ArticleContentNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldArticleContent))
}

// ArticleContentEqualFold applies the EqualFold predicate on the "article_content" field.
func ArticleContentEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldArticleContent, v))
}

// ArticleContentContainsFold applies the ContainsFold predicate on the "article_content" field.
func ArticleContentContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldArticleContent, v))
}

// ArticleRawHTMLEQ applies the EQ predicate on the "article_raw_html" field.
func ArticleRawHTMLEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleRawHTML, v))
}

// ArticleRawHTMLNEQ applies the NEQ predicate on the "article_raw_html" field.
func ArticleRawHTMLNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldArticleRawHTML, v))
}

// ArticleRawHTMLIn applies the In predicate on the "article_raw_html" field.
func ArticleRawHTMLIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldArticleRawHTML, vs...))
}

// ArticleRawHTMLNotIn applies the NotIn predicate on the "article_raw_html" field.
func ArticleRawHTMLNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldArticleRawHTML, vs...))
}

// ArticleRawHTMLGT applies the GT predicate on the "article_raw_html" field.
func ArticleRawHTMLGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldArticleRawHTML, v))
}

// ArticleRawHTMLGTE applies the GTE predicate on the "article_raw_html" field.
func ArticleRawHTMLGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldArticleRawHTML, v))
}

// ArticleRawHTMLLT applies the LT predicate on the "article_raw_html" field.
func ArticleRawHTMLLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldArticleRawHTML, v))
}

// ArticleRawHTMLLTE applies the LTE predicate on the "article_raw_html" field.
func ArticleRawHTMLLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldArticleRawHTML, v))
}

// ArticleRawHTMLContains applies the Contains predicate on the "article_raw_html" field.
func ArticleRawHTMLContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldArticleRawHTML, v))
}

// ArticleRawHTMLHasPrefix applies the HasPrefix predicate on the "article_raw_html" field.
func ArticleRawHTMLHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldArticleRawHTML, v))
}

// ArticleRawHTMLHasSuffix applies the HasSuffix predicate on the "article_raw_html" field.
func ArticleRawHTMLHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldArticleRawHTML, v))
}

// ArticleRawHTMLIsNil applies the IsNil predicate on the "article_raw_html" field.
func ArticleRawHTMLIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldArticleRawHTML))
}

// ArticleRawHTMLNotNil applies the NotNil predicate on the "article_raw_html" field.
func ArticleRawHTMLNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldArticleRawHTML))
}

// ArticleRawHTMLEqualFold applies the EqualFold predicate on the "article_raw_html" field.
func ArticleRawHTMLEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldArticleRawHTML, v))
}

// ArticleRawHTMLContainsFold applies the ContainsFold predicate on the "article_raw_html" field.
func ArticleRawHTMLContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldArticleRawHTML, v))
}

// ArticlePublishedAtEQ applies the EQ predicate on the "article_published_at" field.
func ArticlePublishedAtEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticlePublishedAt, v))
}

// ArticlePublishedAtNEQ applies the NEQ predicate on the "article_published_at" field.
func ArticlePublishedAtNEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldArticlePublishedAt, v))
}

// ArticlePublishedAtIn applies the In predicate on the "article_published_at" field.
func ArticlePublishedAtIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldArticlePublishedAt, vs...))
}

// ArticlePublishedAtNotIn applies the NotIn predicate on the "article_published_at" field.
func ArticlePublishedAtNotIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldArticlePublishedAt, vs...))
}

// ArticlePublishedAtGT applies the GT predicate on the "article_published_at" field.
func ArticlePublishedAtGT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldArticlePublishedAt, v))
}

// ArticlePublishedAtGTE applies the GTE predicate on the "article_published_at" field.
func ArticlePublishedAtGTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldArticlePublishedAt, v))
}

// ArticlePublishedAtLT applies the LT predicate on the "article_published_at" field.
func ArticlePublishedAtLT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldArticlePublishedAt, v))
}

// ArticlePublishedAtLTE applies the LTE predicate on the "article_published_at" field.
func ArticlePublishedAtLTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldArticlePublishedAt, v))
}

// ArticlePublishedAtIsNil applies the IsNil predicate on the "article_published_at" field.
func ArticlePublishedAtIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldArticlePublishedAt))
}

// ArticlePublishedAtNotNil applies the NotNil predicate on the "article_published_at" field.
func ArticlePublishedAtNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldArticlePublishedAt))
}

// ArticleScrapedAtEQ applies the EQ predicate on the "article_scraped_at" field.
func ArticleScrapedAtEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldArticleScrapedAt, v))
}

// ArticleScrapedAtNEQ applies the NEQ predicate on the "article_scraped_at" field.
func ArticleScrapedAtNEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldArticleScrapedAt, v))
}

// ArticleScrapedAtIn applies the In predicate on the "article_scraped_at" field.
func ArticleScrapedAtIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldArticleScrapedAt, vs...))
}

// ArticleScrapedAtNotIn applies the NotIn predicate on the "article_scraped_at" field.
func ArticleScrapedAtNotIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldArticleScrapedAt, vs...))
}

// ArticleScrapedAtGT applies the GT predicate on the "article_scraped_at" field.
func ArticleScrapedAtGT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldArticleScrapedAt, v))
}

// ArticleScrapedAtGTE applies the GTE predicate on the "article_scraped_at" field.
func ArticleScrapedAtGTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldArticleScrapedAt, v))
}

// ArticleScrapedAtLT applies the LT predicate on the "article_scraped_at" field.
func ArticleScrapedAtLT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldArticleScrapedAt, v))
}

// ArticleScrapedAtLTE applies the LTE predicate on the "article_scraped_at" field.
func ArticleScrapedAtLTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldArticleScrapedAt, v))
}

// ArticleScrapedAtIsNil applies the IsNil predicate on the "article_scraped_at" field.
func ArticleScrapedAtIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldArticleScrapedAt))
}

// ArticleScrapedAtNotNil applies the NotNil predicate on the "article_scraped_at" field.
func ArticleScrapedAtNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldArticleScrapedAt))
}

// CommentContentEQ applies the EQ predicate on the "comment_content" field.
func CommentContentEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldCommentContent, v))
}

// CommentContentNEQ applies the NEQ predicate on the "comment_content" field.
func CommentContentNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldCommentContent, v))
}

// CommentContentIn applies the In predicate on the "comment_content" field.
func CommentContentIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldCommentContent, vs...))
}

// CommentContentNotIn applies the NotIn predicate on the "comment_content" field.
func CommentContentNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldCommentContent, vs...))
}

// CommentContentGT applies the GT predicate on the "comment_content" field.
func CommentContentGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldCommentContent, v))
}

// CommentContentGTE applies the GTE predicate on the "comment_content" field.
func CommentContentGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldCommentContent, v))
}

// CommentContentLT applies the LT predicate on the "comment_content" field.
func CommentContentLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldCommentContent, v))
}

// CommentContentLTE applies the LTE predicate on the "comment_content" field.
func CommentContentLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldCommentContent, v))
}

// CommentContentContains applies the Contains predicate on the "comment_content" field.
func CommentContentContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldCommentContent, v))
}

// CommentContentHasPrefix applies the HasPrefix predicate on the "comment_content" field.
func CommentContentHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldCommentContent, v))
}

// CommentContentHasSuffix applies the HasSuffix predicate on the "comment_content" field.
func CommentContentHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldCommentContent, v))
}

// CommentContentIsNil applies the IsNil predicate on the "comment_content" field.
func CommentContentIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldCommentContent))
}

// CommentContentNotNil applies the NotNil predicate on the "comment_content" field.
func CommentContentNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldCommentContent))
}

// CommentContentEqualFold applies the EqualFold predicate on the "comment_content" field.
func CommentContentEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldCommentContent, v))
}

// CommentContentContainsFold applies the ContainsFold predicate on the "comment_content" field.
func CommentContentContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldCommentContent, v))
}

// UpstreamCommentIDEQ applies the EQ predicate on the "upstream_comment_id" field.
func UpstreamCommentIDEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDNEQ applies the NEQ predicate on the "upstream_comment_id" field.
func UpstreamCommentIDNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDIn applies the In predicate on the "upstream_comment_id" field.
func UpstreamCommentIDIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldUpstreamCommentID, vs...))
}

// UpstreamCommentIDNotIn applies the NotIn predicate on the "upstream_comment_id" field.
func UpstreamCommentIDNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldUpstreamCommentID, vs...))
}

// UpstreamCommentIDGT applies the GT predicate on the "upstream_comment_id" field.
func UpstreamCommentIDGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDGTE applies the GTE predicate on the "upstream_comment_id" field.
func UpstreamCommentIDGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDLT applies the LT predicate on the "upstream_comment_id" field.
func UpstreamCommentIDLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDLTE applies the LTE predicate on the "upstream_comment_id" field.
func UpstreamCommentIDLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDContains applies the Contains predicate on the "upstream_comment_id" field.
func UpstreamCommentIDContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDHasPrefix applies the HasPrefix predicate on the "upstream_comment_id" field.
func UpstreamCommentIDHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDHasSuffix applies the HasSuffix predicate on the "upstream_comment_id" field.
func UpstreamCommentIDHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDIsNil applies the IsNil predicate on the "upstream_comment_id" field.
func UpstreamCommentIDIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldUpstreamCommentID))
}

// UpstreamCommentIDNotNil applies the NotNil predicate on the "upstream_comment_id" field.
func UpstreamCommentIDNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldUpstreamCommentID))
}

// UpstreamCommentIDEqualFold applies the EqualFold predicate on the "upstream_comment_id" field.
func UpstreamCommentIDEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDContainsFold applies the ContainsFold predicate on the "upstream_comment_id" field.
func UpstreamCommentIDContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldUpstreamCommentID, v))
}

// AiModelNameEQ applies the EQ predicate on the "ai_model_name" field.
func AiModelNameEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldAiModelName, v))
}

// AiModelNameNEQ applies the NEQ predicate on the "ai_model_name" field.
func AiModelNameNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldAiModelName, v))
}

// AiModelNameIn applies the In predicate on the "ai_model_name" field.
func AiModelNameIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldAiModelName, vs...))
}

// AiModelNameNotIn applies the NotIn predicate on the "ai_model_name" field.
func AiModelNameNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldAiModelName, vs...))
}

// AiModelNameGT applies the GT predicate on the "ai_model_name" field.
func AiModelNameGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldAiModelName, v))
}

// AiModelNameGTE applies the GTE predicate on the "ai_model_name" field.
func AiModelNameGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldAiModelName, v))
}

// AiModelNameLT applies the LT predicate on the "ai_model_name" field.
func AiModelNameLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldAiModelName, v))
}

// AiModelNameLTE applies the LTE predicate on the "ai_model_name" field.
func AiModelNameLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldAiModelName, v))
}

// AiModelNameContains applies the Contains predicate on the "ai_model_name" field.
func AiModelNameContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldAiModelName, v))
}

// AiModelNameHasPrefix applies the HasPrefix predicate on the "ai_model_name" field.
func AiModelNameHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldAiModelName, v))
}

// AiModelNameHasSuffix applies the HasSuffix predicate on the "ai_model_name" field.
func AiModelNameHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldAiModelName, v))
}

// AiModelNameIsNil applies the IsNil predicate on the "ai_model_name" field.
func AiModelNameIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldAiModelName))
}

// AiModelNameNotNil applies the NotNil predicate on the "ai_model_name" field.
func AiModelNameNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldAiModelName))
}

// AiModelNameEqualFold applies the EqualFold predicate on the "ai_model_name" field.
func AiModelNameEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldAiModelName, v))
}

// AiModelNameContainsFold applies the ContainsFold predicate on the "ai_model_name" field.
func AiModelNameContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldAiModelName, v))
}

// AiVendorTagEQ applies the EQ predicate on the "ai_vendor_tag" field.
func AiVendorTagEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldAiVendorTag, v))
}

// AiVendorTagNEQ applies the NEQ predicate on the "ai_vendor_tag" field.
func AiVendorTagNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldAiVendorTag, v))
}

// AiVendorTagIn applies the In predicate on the "ai_vendor_tag" field.
func AiVendorTagIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldAiVendorTag, vs...))
}

// AiVendorTagNotIn applies the NotIn predicate on the "ai_vendor_tag" field.
func AiVendorTagNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldAiVendorTag, vs...))
}

// AiVendorTagGT applies the GT predicate on the "ai_vendor_tag" field.
func AiVendorTagGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldAiVendorTag, v))
}

// AiVendorTagGTE applies the GTE predicate on the "ai_vendor_tag" field.
func AiVendorTagGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldAiVendorTag, v))
}

// AiVendorTagLT applies the LT predicate on the "ai_vendor_tag" field.
func AiVendorTagLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldAiVendorTag, v))
}

// AiVendorTagLTE applies the LTE predicate on the "ai_vendor_tag" field.
func AiVendorTagLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldAiVendorTag, v))
}

// AiVendorTagContains applies the Contains predicate on the "ai_vendor_tag" field.
func AiVendorTagContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldAiVendorTag, v))
}

// AiVendorTagHasPrefix applies the HasPrefix predicate on the "ai_vendor_tag" field.
func AiVendorTagHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldAiVendorTag, v))
}

// AiVendorTagHasSuffix applies the HasSuffix predicate on the "ai_vendor_tag" field.
func AiVendorTagHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldAiVendorTag, v))
}

// AiVendorTagIsNil applies the IsNil predicate on the "ai_vendor_tag" field.
func AiVendorTagIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldAiVendorTag))
}

// AiVendorTagNotNil applies the NotNil predicate on the "ai_vendor_tag" field.
func AiVendorTagNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldAiVendorTag))
}

// AiVendorTagEqualFold applies the EqualFold predicate on the "ai_vendor_tag" field.
func AiVendorTagEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldAiVendorTag, v))
}

// AiVendorTagContainsFold applies the ContainsFold predicate on the "ai_vendor_tag" field.
func AiVendorTagContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldAiVendorTag, v))
}

// GenerationTokensEQ applies the EQ predicate on the "generation_tokens" field.
func GenerationTokensEQ(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldGenerationTokens, v))
}

// GenerationTokensNEQ applies the NEQ predicate on the "generation_tokens" field.
func GenerationTokensNEQ(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldGenerationTokens, v))
}

// GenerationTokensIn applies the In predicate on the "generation_tokens" field.
func GenerationTokensIn(vs ...int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldGenerationTokens, vs...))
}

// GenerationTokensNotIn applies the NotIn predicate on the "generation_tokens" field.
func GenerationTokensNotIn(vs ...int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldGenerationTokens, vs...))
}

// GenerationTokensGT applies the GT predicate on the "generation_tokens" field.
func GenerationTokensGT(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldGenerationTokens, v))
}

// GenerationTokensGTE applies the GTE predicate on the "generation_tokens" field.
func GenerationTokensGTE(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldGenerationTokens, v))
}

// GenerationTokensLT applies the LT predicate on the "generation_tokens" field.
func GenerationTokensLT(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldGenerationTokens, v))
}

// GenerationTokensLTE applies the LTE predicate on the "generation_tokens" field.
func GenerationTokensLTE(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldGenerationTokens, v))
}

// GenerationTokensIsNil applies the IsNil predicate on the "generation_tokens" field.
func GenerationTokensIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldGenerationTokens))
}

// GenerationTokensNotNil applies the NotNil predicate on the "generation_tokens" field.
func GenerationTokensNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldGenerationTokens))
}

// GenerationTimeMsEQ applies the EQ predicate on the "generation_time_ms" field.
func GenerationTimeMsEQ(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldGenerationTimeMs, v))
}

// GenerationTimeMsNEQ applies the NEQ predicate on the "generation_time_ms" field.
func GenerationTimeMsNEQ(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldGenerationTimeMs, v))
}

// GenerationTimeMsIn applies the In predicate on the "generation_time_ms" field.
func GenerationTimeMsIn(vs ...int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldGenerationTimeMs, vs...))
}

// GenerationTimeMsNotIn applies the NotIn predicate on the "generation_time_ms" field.
func GenerationTimeMsNotIn(vs ...int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldGenerationTimeMs, vs...))
}

// GenerationTimeMsGT applies the GT predicate on the "generation_time_ms" field.
func GenerationTimeMsGT(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldGenerationTimeMs, v))
}

// GenerationTimeMsGTE applies the GTE predicate on the "generation_time_ms" field.
func GenerationTimeMsGTE(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldGenerationTimeMs, v))
}

// GenerationTimeMsLT applies the LT predicate on the "generation_time_ms" field.
func GenerationTimeMsLT(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldGenerationTimeMs, v))
}

// GenerationTimeMsLTE applies the LTE predicate on the "generation_time_ms" field.
func GenerationTimeMsLTE(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldGenerationTimeMs, v))
}

// GenerationTimeMsIsNil applies the IsNil predicate on the "generation_time_ms" field.
func GenerationTimeMsIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldGenerationTimeMs))
}

// GenerationTimeMsNotNil applies the NotNil predicate on the "generation_time_ms" field.
func GenerationTimeMsNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldGenerationTimeMs))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldRetryCount, v))
}

// PostedAtEQ applies the EQ predicate on the "posted_at" field.
func PostedAtEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldPostedAt, v))
}

// PostedAtNEQ applies the NEQ predicate on the "posted_at" field.
func PostedAtNEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldPostedAt, v))
}

// PostedAtIn applies the In predicate on the "posted_at" field.
func PostedAtIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldPostedAt, vs...))
}

// PostedAtNotIn applies the NotIn predicate on the "posted_at" field.
func PostedAtNotIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldPostedAt, vs...))
}

// PostedAtGT applies the GT predicate on the "posted_at" field.
func PostedAtGT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldPostedAt, v))
}

// PostedAtGTE applies the GTE predicate on the "posted_at" field.
func PostedAtGTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldPostedAt, v))
}

// PostedAtLT applies the LT predicate on the "posted_at" field.
func PostedAtLT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldPostedAt, v))
}

// PostedAtLTE applies the LTE predicate on the "posted_at" field.
func PostedAtLTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldPostedAt, v))
}

// PostedAtIsNil applies the IsNil predicate on the "posted_at" field.
func PostedAtIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldPostedAt))
}

// PostedAtNotNil applies the NotNil predicate on the "posted_at" field.
func PostedAtNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldPostedAt))
}

// FailedAtEQ applies the EQ predicate on the "failed_at" field.
func FailedAtEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldFailedAt, v))
}

// FailedAtNEQ applies the NEQ predicate on the "failed_at" field.
func FailedAtNEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldFailedAt, v))
}

// FailedAtIn applies the In predicate on the "failed_at" field.
func FailedAtIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldFailedAt, vs...))
}

// FailedAtNotIn applies the NotIn predicate on the "failed_at" field.
func FailedAtNotIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldFailedAt, vs...))
}

// FailedAtGT applies the GT predicate on the "failed_at" field.
func FailedAtGT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldFailedAt, v))
}

// FailedAtGTE applies the GTE predicate on the "failed_at" field.
func FailedAtGTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldFailedAt, v))
}

// FailedAtLT applies the LT predicate on the "failed_at" field.
func FailedAtLT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldFailedAt, v))
}

// FailedAtLTE applies the LTE predicate on the "failed_at" field.
func FailedAtLTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldFailedAt, v))
}

// FailedAtIsNil applies the IsNil predicate on the "failed_at" field.
func FailedAtIsNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIsNull(FieldFailedAt))
}

// FailedAtNotNil applies the NotNil predicate on the "failed_at" field.
func FailedAtNotNil() predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotNull(FieldFailedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkRecord {
	return predicate.WorkRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProcess applies the HasEdge predicate on the "process" edge.
func HasProcess() predicate.WorkRecord {
	return predicate.WorkRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProcessTable, ProcessColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProcessWith applies the HasEdge predicate on the "process" edge with a given conditions (other predicates).
func HasProcessWith(preds ...predicate.MonitoringProcess) predicate.WorkRecord {
	return predicate.WorkRecord(func(s *sql.Selector) {
		step := newProcessStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkRecord) predicate.WorkRecord {
	return predicate.WorkRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkRecord) predicate.WorkRecord {
	return predicate.WorkRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkRecord) predicate.WorkRecord {
	return predicate.WorkRecord(sql.NotPredicates(p))
}
