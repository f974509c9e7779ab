// Code generated by ent, DO NOT EDIT.

package monitoringprocess

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/yourmoment/yourmoment/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldDescription, v))
}

// LlmProviderID applies equality check predicate on the "llm_provider_id" field. It's identical to LlmProviderIDEQ.
func LlmProviderID(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldLlmProviderID, v))
}

// CategoryFilter applies equality check predicate on the "category_filter" field. It's identical to CategoryFilterEQ.
func CategoryFilter(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldCategoryFilter, v))
}

// GenerateOnly applies equality check predicate on the "generate_only" field. It's identical to GenerateOnlyEQ.
func GenerateOnly(v bool) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldGenerateOnly, v))
}

// MaxDurationMinutes applies equality check predicate on the "max_duration_minutes" field. It's identical to MaxDurationMinutesEQ.
func MaxDurationMinutes(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldMaxDurationMinutes, v))
}

// StopReason applies equality check predicate on the "stop_reason" field. It's identical to StopReasonEQ.
func StopReason(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldStopReason, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldStartedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldExpiresAt, v))
}

// StoppedAt applies equality check predicate on the "stopped_at" field. It's identical to StoppedAtEQ.
func StoppedAt(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldStoppedAt, v))
}

// ArticlesDiscovered applies equality check predicate on the "articles_discovered" field. It's identical to ArticlesDiscoveredEQ.
func ArticlesDiscovered(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldArticlesDiscovered, v))
}

// ArticlesPrepared applies equality check predicate on the "articles_prepared" field. It's identical to ArticlesPreparedEQ.
func ArticlesPrepared(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldArticlesPrepared, v))
}

// CommentsGenerated applies equality check predicate on the "comments_generated" field. It's identical to CommentsGeneratedEQ.
func CommentsGenerated(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldCommentsGenerated, v))
}

// CommentsPosted applies equality check predicate on the "comments_posted" field. It's identical to CommentsPostedEQ.
func CommentsPosted(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldCommentsPosted, v))
}

// ErrorsDiscovery applies equality check predicate on the "errors_discovery" field. It's identical to ErrorsDiscoveryEQ.
func ErrorsDiscovery(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldErrorsDiscovery, v))
}

// ErrorsPreparation applies equality check predicate on the "errors_preparation" field. It's identical to ErrorsPreparationEQ.
func ErrorsPreparation(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldErrorsPreparation, v))
}

// ErrorsGeneration applies equality check predicate on the "errors_generation" field. It's identical to ErrorsGenerationEQ.
func ErrorsGeneration(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldErrorsGeneration, v))
}

// ErrorsPosting applies equality check predicate on the "errors_posting" field. It's identical to ErrorsPostingEQ.
func ErrorsPosting(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldErrorsPosting, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContainsFold(FieldDescription, v))
}

// LlmProviderIDEQ applies the EQ predicate on the "llm_provider_id" field.
func LlmProviderIDEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldLlmProviderID, v))
}

// LlmProviderIDNEQ applies the NEQ predicate on the "llm_provider_id" field.
func LlmProviderIDNEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldLlmProviderID, v))
}

// LlmProviderIDIn applies the In predicate on the "llm_provider_id" field.
func LlmProviderIDIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldLlmProviderID, vs...))
}

// LlmProviderIDNotIn applies the NotIn predicate on the "llm_provider_id" field.
func LlmProviderIDNotIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldLlmProviderID, vs...))
}

// LlmProviderIDGT applies the GT predicate on the "llm_provider_id" field.
func LlmProviderIDGT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldLlmProviderID, v))
}

// LlmProviderIDGTE applies the GTE predicate on the "llm_provider_id" field.
func LlmProviderIDGTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldLlmProviderID, v))
}

// LlmProviderIDLT applies the LT predicate on the "llm_provider_id" field.
func LlmProviderIDLT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldLlmProviderID, v))
}

// LlmProviderIDLTE applies the LTE predicate on the "llm_provider_id" field.
func LlmProviderIDLTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldLlmProviderID, v))
}

// LlmProviderIDContains applies the Contains predicate on the "llm_provider_id" field.
func LlmProviderIDContains(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContains(FieldLlmProviderID, v))
}

// LlmProviderIDHasPrefix applies the HasPrefix predicate on the "llm_provider_id" field.
func LlmProviderIDHasPrefix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasPrefix(FieldLlmProviderID, v))
}

// LlmProviderIDHasSuffix applies the HasSuffix predicate on the "llm_provider_id" field.
func LlmProviderIDHasSuffix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasSuffix(FieldLlmProviderID, v))
}

// LlmProviderIDEqualFold applies the EqualFold predicate on the "llm_provider_id" field.
func LlmProviderIDEqualFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEqualFold(FieldLlmProviderID, v))
}

// LlmProviderIDContainsFold applies the ContainsFold predicate on the "llm_provider_id" field.
func LlmProviderIDContainsFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContainsFold(FieldLlmProviderID, v))
}

// TabFiltersIsNil applies the IsNil predicate on the "tab_filters" field.
func TabFiltersIsNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIsNull(FieldTabFilters))
}

// TabFiltersNotNil applies the NotNil predicate on the "tab_filters" field.
func TabFiltersNotNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotNull(FieldTabFilters))
}

// CategoryFilterEQ applies the EQ predicate on the "category_filter" field.
func CategoryFilterEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldCategoryFilter, v))
}

// CategoryFilterNEQ applies the NEQ predicate on the "category_filter" field.
func CategoryFilterNEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldCategoryFilter, v))
}

// CategoryFilterIn applies the In predicate on the "category_filter" field.
func CategoryFilterIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldCategoryFilter, vs...))
}

// CategoryFilterNotIn applies the NotIn predicate on the "category_filter" field.
func CategoryFilterNotIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldCategoryFilter, vs...))
}

// CategoryFilterGT applies the GT predicate on the "category_filter" field.
func CategoryFilterGT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldCategoryFilter, v))
}

// CategoryFilterGTE applies the GTE predicate on the "category_filter" field.
func CategoryFilterGTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldCategoryFilter, v))
}

// CategoryFilterLT applies the LT predicate on the "category_filter" field.
func CategoryFilterLT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldCategoryFilter, v))
}

// CategoryFilterLTE applies the LTE predicate on the "category_filter" field.
func CategoryFilterLTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldCategoryFilter, v))
}

// CategoryFilterContains applies the Contains predicate on the "category_filter" field.
func CategoryFilterContains(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContains(FieldCategoryFilter, v))
}

// CategoryFilterHasPrefix applies the HasPrefix predicate on the "category_filter" field.
func CategoryFilterHasPrefix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasPrefix(FieldCategoryFilter, v))
}

// CategoryFilterHasSuffix applies the HasSuffix predicate on the "category_filter" field.
func CategoryFilterHasSuffix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasSuffix(FieldCategoryFilter, v))
}

// CategoryFilterIsNil applies the IsNil predicate on the "category_filter" field.
func CategoryFilterIsNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIsNull(FieldCategoryFilter))
}

// CategoryFilterNotNil applies the NotNil predicate on the "category_filter" field.
func CategoryFilterNotNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotNull(FieldCategoryFilter))
}

// CategoryFilterEqualFold applies the EqualFold predicate on the "category_filter" field.
func CategoryFilterEqualFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEqualFold(FieldCategoryFilter, v))
}

// CategoryFilterContainsFold applies the ContainsFold predicate on the "category_filter" field.
func CategoryFilterContainsFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContainsFold(FieldCategoryFilter, v))
}

// KeywordFiltersIsNil applies the IsNil predicate on the "keyword_filters" field.
func KeywordFiltersIsNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIsNull(FieldKeywordFilters))
}

// KeywordFiltersNotNil applies the NotNil predicate on the "keyword_filters" field.
func KeywordFiltersNotNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotNull(FieldKeywordFilters))
}

// GenerateOnlyEQ applies the EQ predicate on the "generate_only" field.
func GenerateOnlyEQ(v bool) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldGenerateOnly, v))
}

// GenerateOnlyNEQ applies the NEQ predicate on the "generate_only" field.
func GenerateOnlyNEQ(v bool) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldGenerateOnly, v))
}

// MaxDurationMinutesEQ applies the EQ predicate on the "max_duration_minutes" field.
func MaxDurationMinutesEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldMaxDurationMinutes, v))
}

// MaxDurationMinutesNEQ applies the NEQ predicate on the "max_duration_minutes" field.
func MaxDurationMinutesNEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldMaxDurationMinutes, v))
}

// MaxDurationMinutesIn applies the In predicate on the "max_duration_minutes" field.
func MaxDurationMinutesIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldMaxDurationMinutes, vs...))
}

// MaxDurationMinutesNotIn applies the NotIn predicate on the "max_duration_minutes" field.
func MaxDurationMinutesNotIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldMaxDurationMinutes, vs...))
}

// MaxDurationMinutesGT applies the GT predicate on the "max_duration_minutes" field.
func MaxDurationMinutesGT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldMaxDurationMinutes, v))
}

// MaxDurationMinutesGTE applies the GTE predicate on the "max_duration_minutes" field.
func MaxDurationMinutesGTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldMaxDurationMinutes, v))
}

// MaxDurationMinutesLT applies the LT predicate on the "max_duration_minutes" field.
func MaxDurationMinutesLT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldMaxDurationMinutes, v))
}

// MaxDurationMinutesLTE applies the LTE predicate on the "max_duration_minutes" field.
func MaxDurationMinutesLTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldMaxDurationMinutes, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldStatus, vs...))
}

// StopReasonEQ applies the EQ predicate on the "stop_reason" field.
func StopReasonEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldStopReason, v))
}

// StopReasonNEQ applies the NEQ predicate on the "stop_reason" field.
func StopReasonNEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldStopReason, v))
}

// StopReasonIn applies the In predicate on the "stop_reason" field.
func StopReasonIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldStopReason, vs...))
}

// StopReasonNotIn applies the NotIn predicate on the "stop_reason" field.
func StopReasonNotIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldStopReason, vs...))
}

// StopReasonGT applies the GT predicate on the "stop_reason" field.
func StopReasonGT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldStopReason, v))
}

// StopReasonGTE applies the GTE predicate on the "stop_reason" field.
func StopReasonGTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldStopReason, v))
}

// StopReasonLT applies the LT predicate on the "stop_reason" field.
func StopReasonLT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldStopReason, v))
}

// StopReasonLTE applies the LTE predicate on the "stop_reason" field.
func StopReasonLTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldStopReason, v))
}

// StopReasonContains applies the Contains predicate on the "stop_reason" field.
func StopReasonContains(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContains(FieldStopReason, v))
}

// StopReasonHasPrefix applies the HasPrefix predicate on the "stop_reason" field.
func StopReasonHasPrefix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasPrefix(FieldStopReason, v))
}

// StopReasonHasSuffix applies the HasSuffix predicate on the "stop_reason" field.
func StopReasonHasSuffix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasSuffix(FieldStopReason, v))
}

// StopReasonIsNil applies the IsNil predicate on the "stop_reason" field.
func StopReasonIsNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIsNull(FieldStopReason))
}

// StopReasonNotNil applies the NotNil predicate on the "stop_reason" field.
func StopReasonNotNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotNull(FieldStopReason))
}

// StopReasonEqualFold applies the EqualFold predicate on the "stop_reason" field.
func StopReasonEqualFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEqualFold(FieldStopReason, v))
}

// StopReasonContainsFold applies the ContainsFold predicate on the "stop_reason" field.
func StopReasonContainsFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContainsFold(FieldStopReason, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotNull(FieldStartedAt))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotNull(FieldExpiresAt))
}

// StoppedAtEQ applies the EQ predicate on the "stopped_at" field.
func StoppedAtEQ(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldStoppedAt, v))
}

// StoppedAtNEQ applies the NEQ predicate on the "stopped_at" field.
func StoppedAtNEQ(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldStoppedAt, v))
}

// StoppedAtIn applies the In predicate on the "stopped_at" field.
func StoppedAtIn(vs ...time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldStoppedAt, vs...))
}

// StoppedAtNotIn applies the NotIn predicate on the "stopped_at" field.
func StoppedAtNotIn(vs ...time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldStoppedAt, vs...))
}

// StoppedAtGT applies the GT predicate on the "stopped_at" field.
func StoppedAtGT(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldStoppedAt, v))
}

// StoppedAtGTE applies the GTE predicate on the "stopped_at" field.
func StoppedAtGTE(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldStoppedAt, v))
}

// StoppedAtLT applies the LT predicate on the "stopped_at" field.
func StoppedAtLT(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldStoppedAt, v))
}

// StoppedAtLTE applies the LTE predicate on the "stopped_at" field.
func StoppedAtLTE(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldStoppedAt, v))
}

// StoppedAtIsNil applies the IsNil predicate on the "stopped_at" field.
func StoppedAtIsNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIsNull(FieldStoppedAt))
}

// StoppedAtNotNil applies the NotNil predicate on the "stopped_at" field.
func StoppedAtNotNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotNull(FieldStoppedAt))
}

// StageTaskIdsIsNil applies the IsNil predicate on the "stage_task_ids" field.
func StageTaskIdsIsNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIsNull(FieldStageTaskIds))
}

// StageTaskIdsNotNil applies the NotNil predicate on the "stage_task_ids" field.
func StageTaskIdsNotNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotNull(FieldStageTaskIds))
}

// ArticlesDiscoveredEQ applies the EQ predicate on the "articles_discovered" field.
func ArticlesDiscoveredEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldArticlesDiscovered, v))
}

// ArticlesDiscoveredNEQ applies the NEQ predicate on the "articles_discovered" field.
func ArticlesDiscoveredNEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldArticlesDiscovered, v))
}

// ArticlesDiscoveredIn applies the In predicate on the "articles_discovered" field.
func ArticlesDiscoveredIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldArticlesDiscovered, vs...))
}

// ArticlesDiscoveredNotIn applies the NotIn predicate on the "articles_discovered" field.
func ArticlesDiscoveredNotIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldArticlesDiscovered, vs...))
}

// ArticlesDiscoveredGT applies the GT predicate on the "articles_discovered" field.
func ArticlesDiscoveredGT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldArticlesDiscovered, v))
}

// ArticlesDiscoveredGTE applies the GTE predicate on the "articles_discovered" field.
func ArticlesDiscoveredGTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldArticlesDiscovered, v))
}

// ArticlesDiscoveredLT applies the LT predicate on the "articles_discovered" field.
func ArticlesDiscoveredLT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldArticlesDiscovered, v))
}

// ArticlesDiscoveredLTE applies the LTE predicate on the "articles_discovered" field.
func ArticlesDiscoveredLTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldArticlesDiscovered, v))
}

// ArticlesPreparedEQ applies the EQ predicate on the "articles_prepared" field.
func ArticlesPreparedEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldArticlesPrepared, v))
}

// ArticlesPreparedNEQ applies the NEQ predicate on the "articles_prepared" field.
func ArticlesPreparedNEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldArticlesPrepared, v))
}

// ArticlesPreparedIn applies the In predicate on the "articles_prepared" field.
func ArticlesPreparedIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldArticlesPrepared, vs...))
}

// ArticlesPreparedNotIn applies the NotIn predicate on the "articles_prepared" field.
func ArticlesPreparedNotIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldArticlesPrepared, vs...))
}

// ArticlesPreparedGT applies the GT predicate on the "articles_prepared" field.
func ArticlesPreparedGT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldArticlesPrepared, v))
}

// ArticlesPreparedGTE applies the GTE predicate on the "articles_prepared" field.
func ArticlesPreparedGTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldArticlesPrepared, v))
}

// ArticlesPreparedLT applies the LT predicate on the "articles_prepared" field.
func ArticlesPreparedLT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldArticlesPrepared, v))
}

// ArticlesPreparedLTE applies the LTE predicate on the "articles_prepared" field.
func ArticlesPreparedLTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldArticlesPrepared, v))
}

// CommentsGeneratedEQ applies the EQ predicate on the "comments_generated" field.
func CommentsGeneratedEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldCommentsGenerated, v))
}

// CommentsGeneratedNEQ applies the NEQ predicate on the "comments_generated" field.
func CommentsGeneratedNEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldCommentsGenerated, v))
}

// CommentsGeneratedIn applies the In predicate on the "comments_generated" field.
func CommentsGeneratedIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldCommentsGenerated, vs...))
}

// CommentsGeneratedNotIn applies the NotIn predicate on the "comments_generated" field.
func CommentsGeneratedNotIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldCommentsGenerated, vs...))
}

// CommentsGeneratedGT applies the GT predicate on the "comments_generated" field.
func CommentsGeneratedGT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldCommentsGenerated, v))
}

// CommentsGeneratedGTE applies the GTE predicate on the "comments_generated" field.
func CommentsGeneratedGTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldCommentsGenerated, v))
}

// CommentsGeneratedLT applies the LT predicate on the "comments_generated" field.
func CommentsGeneratedLT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldCommentsGenerated, v))
}

// CommentsGeneratedLTE applies the LTE predicate on the "comments_generated" field.
func CommentsGeneratedLTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldCommentsGenerated, v))
}

// CommentsPostedEQ applies the EQ predicate on the "comments_posted" field.
func CommentsPostedEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldCommentsPosted, v))
}

// CommentsPostedNEQ applies the NEQ predicate on the "comments_posted" field.
func CommentsPostedNEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldCommentsPosted, v))
}

// CommentsPostedIn applies the In predicate on the "comments_posted" field.
func CommentsPostedIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldCommentsPosted, vs...))
}

// CommentsPostedNotIn applies the NotIn predicate on the "comments_posted" field.
func CommentsPostedNotIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldCommentsPosted, vs...))
}

// CommentsPostedGT applies the GT predicate on the "comments_posted" field.
func CommentsPostedGT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldCommentsPosted, v))
}

// CommentsPostedGTE applies the GTE predicate on the "comments_posted" field.
func CommentsPostedGTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldCommentsPosted, v))
}

// CommentsPostedLT applies the LT predicate on the "comments_posted" field.
func CommentsPostedLT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldCommentsPosted, v))
}

// CommentsPostedLTE applies the LTE predicate on the "comments_posted" field.
func CommentsPostedLTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldCommentsPosted, v))
}

// ErrorsDiscoveryEQ applies the EQ predicate on the "errors_discovery" field.
func ErrorsDiscoveryEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldErrorsDiscovery, v))
}

// ErrorsDiscoveryNEQ applies the NEQ predicate on the "errors_discovery" field.
func ErrorsDiscoveryNEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldErrorsDiscovery, v))
}

// ErrorsDiscoveryIn applies the In predicate on the "errors_discovery" field.
func ErrorsDiscoveryIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldErrorsDiscovery, vs...))
}

// ErrorsDiscoveryNotIn applies the NotIn predicate on the "errors_discovery" field.
func ErrorsDiscoveryNotIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldErrorsDiscovery, vs...))
}

// ErrorsDiscoveryGT applies the GT predicate on the "errors_discovery" field.
func ErrorsDiscoveryGT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldErrorsDiscovery, v))
}

// ErrorsDiscoveryGTE applies the GTE predicate on the "errors_discovery" field.
func ErrorsDiscoveryGTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldErrorsDiscovery, v))
}

// ErrorsDiscoveryLT applies the LT predicate on the "errors_discovery" field.
func ErrorsDiscoveryLT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldErrorsDiscovery, v))
}

// ErrorsDiscoveryLTE applies the LTE predicate on the "errors_discovery" field.
func ErrorsDiscoveryLTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldErrorsDiscovery, v))
}

// ErrorsPreparationEQ applies the EQ predicate on the "errors_preparation" field.
func ErrorsPreparationEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldErrorsPreparation, v))
}

// ErrorsPreparationNEQ applies the NEQ predicate on the "errors_preparation" field.
func ErrorsPreparationNEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldErrorsPreparation, v))
}

// ErrorsPreparationIn applies the In predicate on the "errors_preparation" field.
func ErrorsPreparationIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldErrorsPreparation, vs...))
}

// ErrorsPreparationNotIn applies the NotIn predicate on the "errors_preparation" field.
func ErrorsPreparationNotIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldErrorsPreparation, vs...))
}

// ErrorsPreparationGT applies the GT predicate on the "errors_preparation" field.
func ErrorsPreparationGT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldErrorsPreparation, v))
}

// ErrorsPreparationGTE applies the GTE predicate on the "errors_preparation" field.
func ErrorsPreparationGTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldErrorsPreparation, v))
}

// ErrorsPreparationLT applies the LT predicate on the "errors_preparation" field.
func ErrorsPreparationLT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldErrorsPreparation, v))
}

// ErrorsPreparationLTE applies the LTE predicate on the "errors_preparation" field.
func ErrorsPreparationLTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldErrorsPreparation, v))
}

// ErrorsGenerationEQ applies the EQ predicate on the "errors_generation" field.
func ErrorsGenerationEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldErrorsGeneration, v))
}

// ErrorsGenerationNEQ applies the NEQ predicate on the "errors_generation" field.
func ErrorsGenerationNEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldErrorsGeneration, v))
}

// ErrorsGenerationIn applies the In predicate on the "errors_generation" field.
func ErrorsGenerationIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldErrorsGeneration, vs...))
}

// ErrorsGenerationNotIn applies the NotIn predicate on the "errors_generation" field.
func ErrorsGenerationNotIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldErrorsGeneration, vs...))
}

// ErrorsGenerationGT applies the GT predicate on the "errors_generation" field.
func ErrorsGenerationGT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldErrorsGeneration, v))
}

// ErrorsGenerationGTE applies the GTE predicate on the "errors_generation" field.
func ErrorsGenerationGTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldErrorsGeneration, v))
}

// ErrorsGenerationLT applies the LT predicate on the "errors_generation" field.
func ErrorsGenerationLT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldErrorsGeneration, v))
}

// ErrorsGenerationLTE applies the LTE predicate on the "errors_generation" field.
func ErrorsGenerationLTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldErrorsGeneration, v))
}

// ErrorsPostingEQ applies the EQ predicate on the "errors_posting" field.
func ErrorsPostingEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldErrorsPosting, v))
}

// ErrorsPostingNEQ applies the NEQ predicate on the "errors_posting" field.
func ErrorsPostingNEQ(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldErrorsPosting, v))
}

// ErrorsPostingIn applies the In predicate on the "errors_posting" field.
func ErrorsPostingIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldErrorsPosting, vs...))
}

// ErrorsPostingNotIn applies the NotIn predicate on the "errors_posting" field.
func ErrorsPostingNotIn(vs ...int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldErrorsPosting, vs...))
}

// ErrorsPostingGT applies the GT predicate on the "errors_posting" field.
func ErrorsPostingGT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldErrorsPosting, v))
}

// ErrorsPostingGTE applies the GTE predicate on the "errors_posting" field.
func ErrorsPostingGTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldErrorsPosting, v))
}

// ErrorsPostingLT applies the LT predicate on the "errors_posting" field.
func ErrorsPostingLT(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldErrorsPosting, v))
}

// ErrorsPostingLTE applies the LTE predicate on the "errors_posting" field.
func ErrorsPostingLTE(v int) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldErrorsPosting, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCredentials applies the HasEdge predicate on the "credentials" edge.
func HasCredentials() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, CredentialsTable, CredentialsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCredentialsWith applies the HasEdge predicate on the "credentials" edge with a given conditions (other predicates).
func HasCredentialsWith(preds ...predicate.UpstreamCredential) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(func(s *sql.Selector) {
		step := newCredentialsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTemplates applies the HasEdge predicate on the "templates" edge.
func HasTemplates() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, TemplatesTable, TemplatesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTemplatesWith applies the HasEdge predicate on the "templates" edge with a given conditions (other predicates).
func HasTemplatesWith(preds ...predicate.PromptTemplate) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(func(s *sql.Selector) {
		step := newTemplatesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWorkRecords applies the HasEdge predicate on the "work_records" edge.
func HasWorkRecords() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WorkRecordsTable, WorkRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkRecordsWith applies the HasEdge predicate on the "work_records" edge with a given conditions (other predicates).
func HasWorkRecordsWith(preds ...predicate.WorkRecord) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(func(s *sql.Selector) {
		step := newWorkRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStageTasks applies the HasEdge predicate on the "stage_tasks" edge.
func HasStageTasks() predicate.MonitoringProcess {
	return predicate.MonitoringProcess(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StageTasksTable, StageTasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageTasksWith applies the HasEdge predicate on the "stage_tasks" edge with a given conditions (other predicates).
func HasStageTasksWith(preds ...predicate.StageTask) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(func(s *sql.Selector) {
		step := newStageTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MonitoringProcess) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MonitoringProcess) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MonitoringProcess) predicate.MonitoringProcess {
	return predicate.MonitoringProcess(sql.NotPredicates(p))
}
