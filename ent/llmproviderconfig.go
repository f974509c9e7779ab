// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/ent/user"
)

// LLMProviderConfig is the model entity for the LLMProviderConfig schema.
type LLMProviderConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// VendorTag holds the value of the "vendor_tag" field.
	VendorTag llmproviderconfig.VendorTag `json:"vendor_tag,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// AES-GCM token, never plaintext
	APIKeyEncrypted string `json:"-"`
	// Temperature holds the value of the "temperature" field.
	Temperature float64 `json:"temperature,omitempty"`
	// MaxTokens holds the value of the "max_tokens" field.
	MaxTokens int `json:"max_tokens,omitempty"`
	// JSONMode holds the value of the "json_mode" field.
	JSONMode bool `json:"json_mode,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LLMProviderConfigQuery when eager-loading is set.
	Edges        LLMProviderConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LLMProviderConfigEdges holds the relations/edges for other nodes in the graph.
type LLMProviderConfigEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LLMProviderConfigEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMProviderConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmproviderconfig.FieldJSONMode, llmproviderconfig.FieldIsActive:
			values[i] = new(sql.NullBool)
		case llmproviderconfig.FieldTemperature:
			values[i] = new(sql.NullFloat64)
		case llmproviderconfig.FieldMaxTokens:
			values[i] = new(sql.NullInt64)
		case llmproviderconfig.FieldID, llmproviderconfig.FieldUserID, llmproviderconfig.FieldVendorTag, llmproviderconfig.FieldModelName, llmproviderconfig.FieldAPIKeyEncrypted:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMProviderConfig fields.
func (_m *LLMProviderConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmproviderconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case llmproviderconfig.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case llmproviderconfig.FieldVendorTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_tag", values[i])
			} else if value.Valid {
				_m.VendorTag = llmproviderconfig.VendorTag(value.String)
			}
		case llmproviderconfig.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case llmproviderconfig.FieldAPIKeyEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key_encrypted", values[i])
			} else if value.Valid {
				_m.APIKeyEncrypted = value.String
			}
		case llmproviderconfig.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = value.Float64
			}
		case llmproviderconfig.FieldMaxTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_tokens", values[i])
			} else if value.Valid {
				_m.MaxTokens = int(value.Int64)
			}
		case llmproviderconfig.FieldJSONMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field json_mode", values[i])
			} else if value.Valid {
				_m.JSONMode = value.Bool
			}
		case llmproviderconfig.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LLMProviderConfig.
// This includes values selected through modifiers, order, etc.
func (_m *LLMProviderConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the LLMProviderConfig entity.
func (_m *LLMProviderConfig) QueryOwner() *UserQuery {
	return NewLLMProviderConfigClient(_m.config).QueryOwner(_m)
}

// Update returns a builder for updating this LLMProviderConfig.
// Note that you need to call LLMProviderConfig.Unwrap() before calling this method if this LLMProviderConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMProviderConfig) Update() *LLMProviderConfigUpdateOne {
	return NewLLMProviderConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMProviderConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMProviderConfig) Unwrap() *LLMProviderConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMProviderConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMProviderConfig) String() string {
	var builder strings.Builder
	builder.WriteString("LLMProviderConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("vendor_tag=")
	builder.WriteString(fmt.Sprintf("%v", _m.VendorTag))
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("api_key_encrypted=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("temperature=")
	builder.WriteString(fmt.Sprintf("%v", _m.Temperature))
	builder.WriteString(", ")
	builder.WriteString("max_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxTokens))
	builder.WriteString(", ")
	builder.WriteString("json_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.JSONMode))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// LLMProviderConfigs is a parsable slice of LLMProviderConfig.
type LLMProviderConfigs []*LLMProviderConfig
