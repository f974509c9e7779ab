// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCredentials holds the string denoting the credentials edge name in mutations.
	EdgeCredentials = "credentials"
	// EdgeLlmProviders holds the string denoting the llm_providers edge name in mutations.
	EdgeLlmProviders = "llm_providers"
	// EdgeTemplates holds the string denoting the templates edge name in mutations.
	EdgeTemplates = "templates"
	// EdgeProcesses holds the string denoting the processes edge name in mutations.
	EdgeProcesses = "processes"
	// UpstreamCredentialFieldID holds the string denoting the ID field of the UpstreamCredential.
	UpstreamCredentialFieldID = "credential_id"
	// LLMProviderConfigFieldID holds the string denoting the ID field of the LLMProviderConfig.
	LLMProviderConfigFieldID = "provider_id"
	// PromptTemplateFieldID holds the string denoting the ID field of the PromptTemplate.
	PromptTemplateFieldID = "template_id"
	// MonitoringProcessFieldID holds the string denoting the ID field of the MonitoringProcess.
	MonitoringProcessFieldID = "process_id"
	// Table holds the table name of the user in the database.
	Table = "users"
	// CredentialsTable is the table that holds the credentials relation/edge.
	CredentialsTable = "upstream_credentials"
	// CredentialsInverseTable is the table name for the UpstreamCredential entity.
	// It exists in this package in order to avoid circular dependency with the "upstreamcredential" package.
	CredentialsInverseTable = "upstream_credentials"
	// CredentialsColumn is the table column denoting the credentials relation/edge.
	CredentialsColumn = "user_id"
	// LlmProvidersTable is the table that holds the llm_providers relation/edge.
	LlmProvidersTable = "llm_provider_configs"
	// LlmProvidersInverseTable is the table name for the LLMProviderConfig entity.
	// It exists in this package in order to avoid circular dependency with the "llmproviderconfig" package.
	LlmProvidersInverseTable = "llm_provider_configs"
	// LlmProvidersColumn is the table column denoting the llm_providers relation/edge.
	LlmProvidersColumn = "user_id"
	// TemplatesTable is the table that holds the templates relation/edge.
	TemplatesTable = "prompt_templates"
	// TemplatesInverseTable is the table name for the PromptTemplate entity.
	// It exists in this package in order to avoid circular dependency with the "prompttemplate" package.
	TemplatesInverseTable = "prompt_templates"
	// TemplatesColumn is the table column denoting the templates relation/edge.
	TemplatesColumn = "owner_user_id"
	// ProcessesTable is the table that holds the processes relation/edge.
	ProcessesTable = "monitoring_processes"
	// ProcessesInverseTable is the table name for the MonitoringProcess entity.
	// It exists in this package in order to avoid circular dependency with the "monitoringprocess" package.
	ProcessesInverseTable = "monitoring_processes"
	// ProcessesColumn is the table column denoting the processes relation/edge.
	ProcessesColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldPasswordHash,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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

// ByLlmProvidersCount orders the results by llm_providers count.
func ByLlmProvidersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLlmProvidersStep(), opts...)
	}
}

// ByLlmProviders orders the results by llm_providers terms.
func ByLlmProviders(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLlmProvidersStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByProcessesCount orders the results by processes count.
func ByProcessesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProcessesStep(), opts...)
	}
}

// ByProcesses orders the results by processes terms.
func ByProcesses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProcessesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCredentialsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CredentialsInverseTable, UpstreamCredentialFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CredentialsTable, CredentialsColumn),
	)
}
func newLlmProvidersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LlmProvidersInverseTable, LLMProviderConfigFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LlmProvidersTable, LlmProvidersColumn),
	)
}
func newTemplatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TemplatesInverseTable, PromptTemplateFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TemplatesTable, TemplatesColumn),
	)
}
func newProcessesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProcessesInverseTable, MonitoringProcessFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProcessesTable, ProcessesColumn),
	)
}
