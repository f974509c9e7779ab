// Code generated by ent, DO NOT EDIT.

package workrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workrecord type in the database.
	Label = "work_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "record_id"
	// FieldProcessID holds the string denoting the process_id field in the database.
	FieldProcessID = "process_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCredentialID holds the string denoting the credential_id field in the database.
	FieldCredentialID = "credential_id"
	// FieldTemplateID holds the string denoting the template_id field in the database.
	FieldTemplateID = "template_id"
	// FieldLlmProviderID holds the string denoting the llm_provider_id field in the database.
	FieldLlmProviderID = "llm_provider_id"
	// FieldUpstreamArticleID holds the string denoting the upstream_article_id field in the database.
	FieldUpstreamArticleID = "upstream_article_id"
	// FieldArticleTitle holds the string denoting the article_title field in the database.
	FieldArticleTitle = "article_title"
	// FieldArticleAuthor holds the string denoting the article_author field in the database.
	FieldArticleAuthor = "article_author"
	// FieldArticleCategory holds the string denoting the article_category field in the database.
	FieldArticleCategory = "article_category"
	// FieldArticleURL holds the string denoting the article_url field in the database.
	FieldArticleURL = "article_url"
	// FieldArticleEditedAt holds the string denoting the article_edited_at field in the database.
	FieldArticleEditedAt = "article_edited_at"
	// FieldArticleContent holds the string denoting the article_content field in the database.
	FieldArticleContent = "article_content"
	// FieldArticleRawHTML holds the string denoting the article_raw_html field in the database.
	FieldArticleRawHTML = "article_raw_html"
	// FieldArticlePublishedAt holds the string denoting the article_published_at field in the database.
	FieldArticlePublishedAt = "article_published_at"
	// FieldArticleScrapedAt holds the string denoting the article_scraped_at field in the database.
	FieldArticleScrapedAt = "article_scraped_at"
	// FieldCommentContent holds the string denoting the comment_content field in the database.
	FieldCommentContent = "comment_content"
	// FieldUpstreamCommentID holds the string denoting the upstream_comment_id field in the database.
	FieldUpstreamCommentID = "upstream_comment_id"
	// FieldAiModelName holds the string denoting the ai_model_name field in the database.
	FieldAiModelName = "ai_model_name"
	// FieldAiVendorTag holds the string denoting the ai_vendor_tag field in the database.
	FieldAiVendorTag = "ai_vendor_tag"
	// FieldGenerationTokens holds the string denoting the generation_tokens field in the database.
	FieldGenerationTokens = "generation_tokens"
	// FieldGenerationTimeMs holds the string denoting the generation_time_ms field in the database.
	FieldGenerationTimeMs = "generation_time_ms"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldPostedAt holds the string denoting the posted_at field in the database.
	FieldPostedAt = "posted_at"
	// FieldFailedAt holds the string denoting the failed_at field in the database.
	FieldFailedAt = "failed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProcess holds the string denoting the process edge name in mutations.
	EdgeProcess = "process"
	// MonitoringProcessFieldID holds the string denoting the ID field of the MonitoringProcess.
	MonitoringProcessFieldID = "process_id"
	// Table holds the table name of the workrecord in the database.
	Table = "work_records"
	// ProcessTable is the table that holds the process relation/edge.
	ProcessTable = "work_records"
	// ProcessInverseTable is the table name for the MonitoringProcess entity.
	// It exists in this package in order to avoid circular dependency with the "monitoringprocess" package.
	ProcessInverseTable = "monitoring_processes"
	// ProcessColumn is the table column denoting the process relation/edge.
	ProcessColumn = "process_id"
)

// Columns holds all SQL columns for workrecord fields.
var Columns = []string{
	FieldID,
	FieldProcessID,
	FieldUserID,
	FieldCredentialID,
	FieldTemplateID,
	FieldLlmProviderID,
	FieldUpstreamArticleID,
	FieldArticleTitle,
	FieldArticleAuthor,
	FieldArticleCategory,
	FieldArticleURL,
	FieldArticleEditedAt,
	FieldArticleContent,
	FieldArticleRawHTML,
	FieldArticlePublishedAt,
	FieldArticleScrapedAt,
	FieldCommentContent,
	FieldUpstreamCommentID,
	FieldAiModelName,
	FieldAiVendorTag,
	FieldGenerationTokens,
	FieldGenerationTimeMs,
	FieldStatus,
	FieldErrorMessage,
	FieldRetryCount,
	FieldPostedAt,
	FieldFailedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDiscovered is the default value of the Status enum.
const DefaultStatus = StatusDiscovered

// Status values.
const (
	StatusDiscovered Status = "discovered"
	StatusPrepared   Status = "prepared"
	StatusGenerated  Status = "generated"
	StatusPosted     Status = "posted"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDiscovered, StatusPrepared, StatusGenerated, StatusPosted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("workrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the WorkRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProcessID orders the results by the process_id field.
func ByProcessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCredentialID orders the results by the credential_id field.
func ByCredentialID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCredentialID, opts...).ToFunc()
}

// ByTemplateID orders the results by the template_id field.
func ByTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateID, opts...).ToFunc()
}

// ByLlmProviderID orders the results by the llm_provider_id field.
func ByLlmProviderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmProviderID, opts...).ToFunc()
}

// ByUpstreamArticleID orders the results by the upstream_article_id field.
func ByUpstreamArticleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpstreamArticleID, opts...).ToFunc()
}

// ByArticleTitle orders the results by the article_title field.
func ByArticleTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleTitle, opts...).ToFunc()
}

// ByArticleAuthor orders the results by the article_author field.
func ByArticleAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleAuthor, opts...).ToFunc()
}

// ByArticleCategory orders the results by the article_category field.
func ByArticleCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleCategory, opts...).ToFunc()
}

// ByArticleURL orders the results by the article_url field.
func ByArticleURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleURL, opts...).ToFunc()
}

// ByArticleEditedAt orders the results by the article_edited_at field.
func ByArticleEditedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleEditedAt, opts...).ToFunc()
}

// ByArticleContent orders the results by the article_content field.
func ByArticleContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleContent, opts...).ToFunc()
}

// ByArticleRawHTML orders the results by the article_raw_html field.
func ByArticleRawHTML(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleRawHTML, opts...).ToFunc()
}

// ByArticlePublishedAt orders the results by the article_published_at field.
func ByArticlePublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticlePublishedAt, opts...).ToFunc()
}

// ByArticleScrapedAt orders the results by the article_scraped_at field.
func ByArticleScrapedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleScrapedAt, opts...).ToFunc()
}

// ByCommentContent orders the results by the comment_content field.
func ByCommentContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommentContent, opts...).ToFunc()
}

// ByUpstreamCommentID orders the results by the upstream_comment_id field.
func ByUpstreamCommentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpstreamCommentID, opts...).ToFunc()
}

// ByAiModelName orders the results by the ai_model_name field.
func ByAiModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiModelName, opts...).ToFunc()
}

// ByAiVendorTag orders the results by the ai_vendor_tag field.
func ByAiVendorTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiVendorTag, opts...).ToFunc()
}

// ByGenerationTokens orders the results by the generation_tokens field.
func ByGenerationTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationTokens, opts...).ToFunc()
}

// ByGenerationTimeMs orders the results by the generation_time_ms field.
func ByGenerationTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationTimeMs, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByPostedAt orders the results by the posted_at field.
func ByPostedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostedAt, opts...).ToFunc()
}

// ByFailedAt orders the results by the failed_at field.
func ByFailedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProcessField orders the results by process field.
func ByProcessField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProcessStep(), sql.OrderByField(field, opts...))
	}
}
func newProcessStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProcessInverseTable, MonitoringProcessFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProcessTable, ProcessColumn),
	)
}
