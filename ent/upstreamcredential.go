// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yourmoment/yourmoment/ent/upstreamcredential"
	"github.com/yourmoment/yourmoment/ent/user"
)

// UpstreamCredential is the model entity for the UpstreamCredential schema.
type UpstreamCredential struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// AES-GCM token, never plaintext
	PasswordEncrypted string `json:"-"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastUsedAt holds the value of the "last_used_at" field.
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UpstreamCredentialQuery when eager-loading is set.
	Edges        UpstreamCredentialEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UpstreamCredentialEdges holds the relations/edges for other nodes in the graph.
type UpstreamCredentialEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// Processes holds the value of the processes edge.
	Processes []*MonitoringProcess `json:"processes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UpstreamCredentialEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// ProcessesOrErr returns the Processes value or an error if the edge
// was not loaded in eager-loading.
func (e UpstreamCredentialEdges) ProcessesOrErr() ([]*MonitoringProcess, error) {
	if e.loadedTypes[1] {
		return e.Processes, nil
	}
	return nil, &NotLoadedError{edge: "processes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UpstreamCredential) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case upstreamcredential.FieldIsActive:
			values[i] = new(sql.NullBool)
		case upstreamcredential.FieldID, upstreamcredential.FieldUserID, upstreamcredential.FieldDisplayName, upstreamcredential.FieldUsername, upstreamcredential.FieldPasswordEncrypted:
			values[i] = new(sql.NullString)
		case upstreamcredential.FieldCreatedAt, upstreamcredential.FieldLastUsedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UpstreamCredential fields.
func (_m *UpstreamCredential) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case upstreamcredential.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case upstreamcredential.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case upstreamcredential.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case upstreamcredential.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case upstreamcredential.FieldPasswordEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_encrypted", values[i])
			} else if value.Valid {
				_m.PasswordEncrypted = value.String
			}
		case upstreamcredential.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case upstreamcredential.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case upstreamcredential.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				_m.LastUsedAt = new(time.Time)
				*_m.LastUsedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UpstreamCredential.
// This includes values selected through modifiers, order, etc.
func (_m *UpstreamCredential) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the UpstreamCredential entity.
func (_m *UpstreamCredential) QueryOwner() *UserQuery {
	return NewUpstreamCredentialClient(_m.config).QueryOwner(_m)
}

// QueryProcesses queries the "processes" edge of the UpstreamCredential entity.
func (_m *UpstreamCredential) QueryProcesses() *MonitoringProcessQuery {
	return NewUpstreamCredentialClient(_m.config).QueryProcesses(_m)
}

// Update returns a builder for updating this UpstreamCredential.
// Note that you need to call UpstreamCredential.Unwrap() before calling this method if this UpstreamCredential
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UpstreamCredential) Update() *UpstreamCredentialUpdateOne {
	return NewUpstreamCredentialClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UpstreamCredential entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UpstreamCredential) Unwrap() *UpstreamCredential {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UpstreamCredential is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UpstreamCredential) String() string {
	var builder strings.Builder
	builder.WriteString("UpstreamCredential(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("password_encrypted=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastUsedAt; v != nil {
		builder.WriteString("last_used_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// UpstreamCredentials is a parsable slice of UpstreamCredential.
type UpstreamCredentials []*UpstreamCredential
