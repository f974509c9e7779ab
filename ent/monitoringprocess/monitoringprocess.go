// Code generated by ent, DO NOT EDIT.

package monitoringprocess

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the monitoringprocess type in the database.
	Label = "monitoring_process"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "process_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldLlmProviderID holds the string denoting the llm_provider_id field in the database.
	FieldLlmProviderID = "llm_provider_id"
	// FieldTabFilters holds the string denoting the tab_filters field in the database.
	FieldTabFilters = "tab_filters"
	// FieldCategoryFilter holds the string denoting the category_filter field in the database.
	FieldCategoryFilter = "category_filter"
	// FieldKeywordFilters holds the string denoting the keyword_filters field in the database.
	FieldKeywordFilters = "keyword_filters"
	// FieldGenerateOnly holds the string denoting the generate_only field in the database.
	FieldGenerateOnly = "generate_only"
	// FieldMaxDurationMinutes holds the string denoting the max_duration_minutes field in the database.
	FieldMaxDurationMinutes = "max_duration_minutes"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStopReason holds the string denoting the stop_reason field in the database.
	FieldStopReason = "stop_reason"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldStoppedAt holds the string denoting the stopped_at field in the database.
	FieldStoppedAt = "stopped_at"
	// FieldStageTaskIds holds the string denoting the stage_task_ids field in the database.
	FieldStageTaskIds = "stage_task_ids"
	// FieldArticlesDiscovered holds the string denoting the articles_discovered field in the database.
	FieldArticlesDiscovered = "articles_discovered"
	// FieldArticlesPrepared holds the string denoting the articles_prepared field in the database.
	FieldArticlesPrepared = "articles_prepared"
	// FieldCommentsGenerated holds the string denoting the comments_generated field in the database.
	FieldCommentsGenerated = "comments_generated"
	// FieldCommentsPosted holds the string denoting the comments_posted field in the database.
	FieldCommentsPosted = "comments_posted"
	// FieldErrorsDiscovery holds the string denoting the errors_discovery field in the database.
	FieldErrorsDiscovery = "errors_discovery"
	// FieldErrorsPreparation holds the string denoting the errors_preparation field in the database.
	FieldErrorsPreparation = "errors_preparation"
	// FieldErrorsGeneration holds the string denoting the errors_generation field in the database.
	FieldErrorsGeneration = "errors_generation"
	// FieldErrorsPosting holds the string denoting the errors_posting field in the database.
	FieldErrorsPosting = "errors_posting"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// EdgeCredentials holds the string denoting the credentials edge name in mutations.
	EdgeCredentials = "credentials"
	// EdgeTemplates holds the string denoting the templates edge name in mutations.
	EdgeTemplates = "templates"
	// EdgeWorkRecords holds the string denoting the work_records edge name in mutations.
	EdgeWorkRecords = "work_records"
	// EdgeStageTasks holds the string denoting the stage_tasks edge name in mutations.
	EdgeStageTasks = "stage_tasks"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// UpstreamCredentialFieldID holds the string denoting the ID field of the UpstreamCredential.
	UpstreamCredentialFieldID = "credential_id"
	// PromptTemplateFieldID holds the string denoting the ID field of the PromptTemplate.
	PromptTemplateFieldID = "template_id"
	// WorkRecordFieldID holds the string denoting the ID field of the WorkRecord.
	WorkRecordFieldID = "record_id"
	// StageTaskFieldID holds the string denoting the ID field of the StageTask.
	StageTaskFieldID = "task_id"
	// Table holds the table name of the monitoringprocess in the database.
	Table = "monitoring_processes"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "monitoring_processes"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "user_id"
	// CredentialsTable is the table that holds the credentials relation/edge. The primary key declared below.
	CredentialsTable = "monitoring_process_credentials"
	// CredentialsInverseTable is the table name for the UpstreamCredential entity.
	// It exists in this package in order to avoid circular dependency with the "upstreamcredential" package.
	CredentialsInverseTable = "upstream_credentials"
	// TemplatesTable is the table that holds the templates relation/edge. The primary key declared below.
	TemplatesTable = "monitoring_process_templates"
	// TemplatesInverseTable is the table name for the PromptTemplate entity.
	// It exists in this package in order to avoid circular dependency with the "prompttemplate" package.
	TemplatesInverseTable = "prompt_templates"
	// WorkRecordsTable is the table that holds the work_records relation/edge.
	WorkRecordsTable = "work_records"
	// WorkRecordsInverseTable is the table name for the WorkRecord entity.
	// It exists in this package in order to avoid circular dependency with the "workrecord" package.
	WorkRecordsInverseTable = "work_records"
	// WorkRecordsColumn is the table column denoting the work_records relation/edge.
	WorkRecordsColumn = "process_id"
	// StageTasksTable is the table that holds the stage_tasks relation/edge.
	StageTasksTable = "stage_tasks"
	// StageTasksInverseTable is the table name for the StageTask entity.
	// It exists in this package in order to avoid circular dependency with the "stagetask" package.
	StageTasksInverseTable = "stage_tasks"
	// StageTasksColumn is the table column denoting the stage_tasks relation/edge.
	StageTasksColumn = "process_id"
)

// Columns holds all SQL columns for monitoringprocess fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldName,
	FieldDescription,
	FieldLlmProviderID,
	FieldTabFilters,
	FieldCategoryFilter,
	FieldKeywordFilters,
	FieldGenerateOnly,
	FieldMaxDurationMinutes,
	FieldStatus,
	FieldStopReason,
	FieldStartedAt,
	FieldExpiresAt,
	FieldStoppedAt,
	FieldStageTaskIds,
	FieldArticlesDiscovered,
	FieldArticlesPrepared,
	FieldCommentsGenerated,
	FieldCommentsPosted,
	FieldErrorsDiscovery,
	FieldErrorsPreparation,
	FieldErrorsGeneration,
	FieldErrorsPosting,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
}

var (
	// CredentialsPrimaryKey and CredentialsColumn2 are the table columns denoting the
	// primary key for the credentials relation (M2M).
	CredentialsPrimaryKey = []string{"monitoring_process_id", "upstream_credential_id"}
	// TemplatesPrimaryKey and TemplatesColumn2 are the table columns denoting the
	// primary key for the templates relation (M2M).
	TemplatesPrimaryKey = []string{"monitoring_process_id", "prompt_template_id"}
)

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
	// DefaultGenerateOnly holds the default value on creation for the "generate_only" field.
	DefaultGenerateOnly bool
	// MaxDurationMinutesValidator is a validator for the "max_duration_minutes" field. It is called by the builders before save.
	MaxDurationMinutesValidator func(int) error
	// DefaultArticlesDiscovered holds the default value on creation for the "articles_discovered" field.
	DefaultArticlesDiscovered int
	// DefaultArticlesPrepared holds the default value on creation for the "articles_prepared" field.
	DefaultArticlesPrepared int
	// DefaultCommentsGenerated holds the default value on creation for the "comments_generated" field.
	DefaultCommentsGenerated int
	// DefaultCommentsPosted holds the default value on creation for the "comments_posted" field.
	DefaultCommentsPosted int
	// DefaultErrorsDiscovery holds the default value on creation for the "errors_discovery" field.
	DefaultErrorsDiscovery int
	// DefaultErrorsPreparation holds the default value on creation for the "errors_preparation" field.
	DefaultErrorsPreparation int
	// DefaultErrorsGeneration holds the default value on creation for the "errors_generation" field.
	DefaultErrorsGeneration int
	// DefaultErrorsPosting holds the default value on creation for the "errors_posting" field.
	DefaultErrorsPosting int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusCreated is the default value of the Status enum.
const DefaultStatus = StatusCreated

// Status values.
const (
	StatusCreated   Status = "created"
	StatusRunning   Status = "running"
	StatusStopped   Status = "stopped"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCreated, StatusRunning, StatusStopped, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("monitoringprocess: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the MonitoringProcess queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByLlmProviderID orders the results by the llm_provider_id field.
func ByLlmProviderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmProviderID, opts...).ToFunc()
}

// ByCategoryFilter orders the results by the category_filter field.
func ByCategoryFilter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryFilter, opts...).ToFunc()
}

// ByGenerateOnly orders the results by the generate_only field.
func ByGenerateOnly(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerateOnly, opts...).ToFunc()
}

// ByMaxDurationMinutes orders the results by the max_duration_minutes field.
func ByMaxDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDurationMinutes, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStopReason orders the results by the stop_reason field.
func ByStopReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStopReason, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByStoppedAt orders the results by the stopped_at field.
func ByStoppedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoppedAt, opts...).ToFunc()
}

// ByArticlesDiscovered orders the results by the articles_discovered field.
func ByArticlesDiscovered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticlesDiscovered, opts...).ToFunc()
}

// ByArticlesPrepared orders the results by the articles_prepared field.
func ByArticlesPrepared(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticlesPrepared, opts...).ToFunc()
}

// ByCommentsGenerated orders the results by the comments_generated field.
func ByCommentsGenerated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommentsGenerated, opts...).ToFunc()
}

// ByCommentsPosted orders the results by the comments_posted field.
func ByCommentsPosted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommentsPosted, opts...).ToFunc()
}

// ByErrorsDiscovery orders the results by the errors_discovery field.
func ByErrorsDiscovery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorsDiscovery, opts...).ToFunc()
}

// ByErrorsPreparation orders the results by the errors_preparation field.
func ByErrorsPreparation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorsPreparation, opts...).ToFunc()
}

// ByErrorsGeneration orders the results by the errors_generation field.
func ByErrorsGeneration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorsGeneration, opts...).ToFunc()
}

// ByErrorsPosting orders the results by the errors_posting field.
func ByErrorsPosting(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorsPosting, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}

// ByCredentialsCount orders the results by credentials count.
func ByCredentialsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCredentialsStep(), opts...)
	}
}

// ByCredentials orders the results by credentials terms.
func ByCredentials(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCredentialsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTemplatesCount orders the results by templates count.
func ByTemplatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTemplatesStep(), opts...)
	}
}

// ByTemplates orders the results by templates terms.
func ByTemplates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTemplatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWorkRecordsCount orders the results by work_records count.
func ByWorkRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWorkRecordsStep(), opts...)
	}
}

// ByWorkRecords orders the results by work_records terms.
func ByWorkRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStageTasksCount orders the results by stage_tasks count.
func ByStageTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStageTasksStep(), opts...)
	}
}

// ByStageTasks orders the results by stage_tasks terms.
func ByStageTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStageTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
func newCredentialsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CredentialsInverseTable, UpstreamCredentialFieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, CredentialsTable, CredentialsPrimaryKey...),
	)
}
func newTemplatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TemplatesInverseTable, PromptTemplateFieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, TemplatesTable, TemplatesPrimaryKey...),
	)
}
func newWorkRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkRecordsInverseTable, WorkRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WorkRecordsTable, WorkRecordsColumn),
	)
}
func newStageTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StageTasksInverseTable, StageTaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StageTasksTable, StageTasksColumn),
	)
}
