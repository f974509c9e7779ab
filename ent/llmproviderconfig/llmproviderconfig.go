// Code generated by ent, DO NOT EDIT.

package llmproviderconfig

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the llmproviderconfig type in the database.
	Label = "llm_provider_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "provider_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldVendorTag holds the string denoting the vendor_tag field in the database.
	FieldVendorTag = "vendor_tag"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldAPIKeyEncrypted holds the string denoting the api_key_encrypted field in the database.
	FieldAPIKeyEncrypted = "api_key_encrypted"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldMaxTokens holds the string denoting the max_tokens field in the database.
	FieldMaxTokens = "max_tokens"
	// FieldJSONMode holds the string denoting the json_mode field in the database.
	FieldJSONMode = "json_mode"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// Table holds the table name of the llmproviderconfig in the database.
	Table = "llm_provider_configs"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "llm_provider_configs"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "user_id"
)

// Columns holds all SQL columns for llmproviderconfig fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldVendorTag,
	FieldModelName,
	FieldAPIKeyEncrypted,
	FieldTemperature,
	FieldMaxTokens,
	FieldJSONMode,
	FieldIsActive,
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
	// DefaultTemperature holds the default value on creation for the "temperature" field.
	DefaultTemperature float64
	// TemperatureValidator is a validator for the "temperature" field. It is called by the builders before save.
	TemperatureValidator func(float64) error
	// DefaultMaxTokens holds the default value on creation for the "max_tokens" field.
	DefaultMaxTokens int
	// MaxTokensValidator is a validator for the "max_tokens" field. It is called by the builders before save.
	MaxTokensValidator func(int) error
	// DefaultJSONMode holds the default value on creation for the "json_mode" field.
	DefaultJSONMode bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
)

// VendorTag defines the type for the "vendor_tag" enum field.
type VendorTag string

// VendorTag values.
const (
	VendorTagOpenai  VendorTag = "openai"
	VendorTagMistral VendorTag = "mistral"
)

func (vt VendorTag) String() string {
	return string(vt)
}

// VendorTagValidator is a validator for the "vendor_tag" field enum values. It is called by the builders before save.
func VendorTagValidator(vt VendorTag) error {
	switch vt {
	case VendorTagOpenai, VendorTagMistral:
		return nil
	default:
		return fmt.Errorf("llmproviderconfig: invalid enum value for vendor_tag field: %q", vt)
	}
}

// OrderOption defines the ordering options for the LLMProviderConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByVendorTag orders the results by the vendor_tag field.
func ByVendorTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorTag, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByAPIKeyEncrypted orders the results by the api_key_encrypted field.
func ByAPIKeyEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIKeyEncrypted, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// ByMaxTokens orders the results by the max_tokens field.
func ByMaxTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTokens, opts...).ToFunc()
}

// ByJSONMode orders the results by the json_mode field.
func ByJSONMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJSONMode, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
