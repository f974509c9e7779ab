// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/user"
)

// MonitoringProcess is the model entity for the MonitoringProcess schema.
type MonitoringProcess struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// LlmProviderID holds the value of the "llm_provider_id" field.
	LlmProviderID string `json:"llm_provider_id,omitempty"`
	// myMoment tabs to scan, empty means default tab
	TabFilters []string `json:"tab_filters,omitempty"`
	// CategoryFilter holds the value of the "category_filter" field.
	CategoryFilter *string `json:"category_filter,omitempty"`
	// KeywordFilters holds the value of the "keyword_filters" field.
	KeywordFilters []string `json:"keyword_filters,omitempty"`
	// GenerateOnly holds the value of the "generate_only" field.
	GenerateOnly bool `json:"generate_only,omitempty"`
	// MaxDurationMinutes holds the value of the "max_duration_minutes" field.
	MaxDurationMinutes int `json:"max_duration_minutes,omitempty"`
	// Status holds the value of the "status" field.
	Status monitoringprocess.Status `json:"status,omitempty"`
	// 'timeout' or 'manual'
	StopReason *string `json:"stop_reason,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// started_at + max_duration_minutes while running
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// StoppedAt holds the value of the "stopped_at" field.
	StoppedAt *time.Time `json:"stopped_at,omitempty"`
	// StageTaskIds holds the value of the "stage_task_ids" field.
	StageTaskIds map[string]string `json:"stage_task_ids,omitempty"`
	// ArticlesDiscovered holds the value of the "articles_discovered" field.
	ArticlesDiscovered int `json:"articles_discovered,omitempty"`
	// ArticlesPrepared holds the value of the "articles_prepared" field.
	ArticlesPrepared int `json:"articles_prepared,omitempty"`
	// CommentsGenerated holds the value of the "comments_generated" field.
	CommentsGenerated int `json:"comments_generated,omitempty"`
	// CommentsPosted holds the value of the "comments_posted" field.
	CommentsPosted int `json:"comments_posted,omitempty"`
	// ErrorsDiscovery holds the value of the "errors_discovery" field.
	ErrorsDiscovery int `json:"errors_discovery,omitempty"`
	// ErrorsPreparation holds the value of the "errors_preparation" field.
	ErrorsPreparation int `json:"errors_preparation,omitempty"`
	// ErrorsGeneration holds the value of the "errors_generation" field.
	ErrorsGeneration int `json:"errors_generation,omitempty"`
	// ErrorsPosting holds the value of the "errors_posting" field.
	ErrorsPosting int `json:"errors_posting,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MonitoringProcessQuery when eager-loading is set.
	Edges        MonitoringProcessEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MonitoringProcessEdges holds the relations/edges for other nodes in the graph.
type MonitoringProcessEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// Credentials holds the value of the credentials edge.
	Credentials []*UpstreamCredential `json:"credentials,omitempty"`
	// Templates holds the value of the templates edge.
	Templates []*PromptTemplate `json:"templates,omitempty"`
	// WorkRecords holds the value of the work_records edge.
	WorkRecords []*WorkRecord `json:"work_records,omitempty"`
	// StageTasks holds the value of the stage_tasks edge.
	StageTasks []*StageTask `json:"stage_tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MonitoringProcessEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// CredentialsOrErr returns the Credentials value or an error if the edge
// was not loaded in eager-loading.
func (e MonitoringProcessEdges) CredentialsOrErr() ([]*UpstreamCredential, error) {
	if e.loadedTypes[1] {
		return e.Credentials, nil
	}
	return nil, &NotLoadedError{edge: "credentials"}
}

// TemplatesOrErr returns the Templates value or an error if the edge
// was not loaded in eager-loading.
func (e MonitoringProcessEdges) TemplatesOrErr() ([]*PromptTemplate, error) {
	if e.loadedTypes[2] {
		return e.Templates, nil
	}
	return nil, &NotLoadedError{edge: "templates"}
}

// WorkRecordsOrErr returns the WorkRecords value or an error if the edge
// was not loaded in eager-loading.
func (e MonitoringProcessEdges) WorkRecordsOrErr() ([]*WorkRecord, error) {
	if e.loadedTypes[3] {
		return e.WorkRecords, nil
	}
	return nil, &NotLoadedError{edge: "work_records"}
}

// StageTasksOrErr returns the StageTasks value or an error if the edge
// was not loaded in eager-loading.
func (e MonitoringProcessEdges) StageTasksOrErr() ([]*StageTask, error) {
	if e.loadedTypes[4] {
		return e.StageTasks, nil
	}
	return nil, &NotLoadedError{edge: "stage_tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MonitoringProcess) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case monitoringprocess.FieldTabFilters, monitoringprocess.FieldKeywordFilters, monitoringprocess.FieldStageTaskIds:
			values[i] = new([]byte)
		case monitoringprocess.FieldGenerateOnly:
			values[i] = new(sql.NullBool)
		case monitoringprocess.FieldMaxDurationMinutes, monitoringprocess.FieldArticlesDiscovered, monitoringprocess.FieldArticlesPrepared, monitoringprocess.FieldCommentsGenerated, monitoringprocess.FieldCommentsPosted, monitoringprocess.FieldErrorsDiscovery, monitoringprocess.FieldErrorsPreparation, monitoringprocess.FieldErrorsGeneration, monitoringprocess.FieldErrorsPosting:
			values[i] = new(sql.NullInt64)
		case monitoringprocess.FieldID, monitoringprocess.FieldUserID, monitoringprocess.FieldName, monitoringprocess.FieldDescription, monitoringprocess.FieldLlmProviderID, monitoringprocess.FieldCategoryFilter, monitoringprocess.FieldStatus, monitoringprocess.FieldStopReason, monitoringprocess.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case monitoringprocess.FieldStartedAt, monitoringprocess.FieldExpiresAt, monitoringprocess.FieldStoppedAt, monitoringprocess.FieldCreatedAt, monitoringprocess.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MonitoringProcess fields.
func (_m *MonitoringProcess) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case monitoringprocess.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case monitoringprocess.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case monitoringprocess.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case monitoringprocess.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case monitoringprocess.FieldLlmProviderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_provider_id", values[i])
			} else if value.Valid {
				_m.LlmProviderID = value.String
			}
		case monitoringprocess.FieldTabFilters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tab_filters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TabFilters); err != nil {
					return fmt.Errorf("unmarshal field tab_filters: %w", err)
				}
			}
		case monitoringprocess.FieldCategoryFilter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_filter", values[i])
			} else if value.Valid {
				_m.CategoryFilter = new(string)
				*_m.CategoryFilter = value.String
			}
		case monitoringprocess.FieldKeywordFilters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field keyword_filters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeywordFilters); err != nil {
					return fmt.Errorf("unmarshal field keyword_filters: %w", err)
				}
			}
		case monitoringprocess.FieldGenerateOnly:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field generate_only", values[i])
			} else if value.Valid {
				_m.GenerateOnly = value.Bool
			}
		case monitoringprocess.FieldMaxDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_duration_minutes", values[i])
			} else if value.Valid {
				_m.MaxDurationMinutes = int(value.Int64)
			}
		case monitoringprocess.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = monitoringprocess.Status(value.String)
			}
		case monitoringprocess.FieldStopReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stop_reason", values[i])
			} else if value.Valid {
				_m.StopReason = new(string)
				*_m.StopReason = value.String
			}
		case monitoringprocess.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case monitoringprocess.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case monitoringprocess.FieldStoppedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field stopped_at", values[i])
			} else if value.Valid {
				_m.StoppedAt = new(time.Time)
				*_m.StoppedAt = value.Time
			}
		case monitoringprocess.FieldStageTaskIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stage_task_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StageTaskIds); err != nil {
					return fmt.Errorf("unmarshal field stage_task_ids: %w", err)
				}
			}
		case monitoringprocess.FieldArticlesDiscovered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field articles_discovered", values[i])
			} else if value.Valid {
				_m.ArticlesDiscovered = int(value.Int64)
			}
		case monitoringprocess.FieldArticlesPrepared:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field articles_prepared", values[i])
			} else if value.Valid {
				_m.ArticlesPrepared = int(value.Int64)
			}
		case monitoringprocess.FieldCommentsGenerated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field comments_generated", values[i])
			} else if value.Valid {
				_m.CommentsGenerated = int(value.Int64)
			}
		case monitoringprocess.FieldCommentsPosted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field comments_posted", values[i])
			} else if value.Valid {
				_m.CommentsPosted = int(value.Int64)
			}
		case monitoringprocess.FieldErrorsDiscovery:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field errors_discovery", values[i])
			} else if value.Valid {
				_m.ErrorsDiscovery = int(value.Int64)
			}
		case monitoringprocess.FieldErrorsPreparation:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field errors_preparation", values[i])
			} else if value.Valid {
				_m.ErrorsPreparation = int(value.Int64)
			}
		case monitoringprocess.FieldErrorsGeneration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field errors_generation", values[i])
			} else if value.Valid {
				_m.ErrorsGeneration = int(value.Int64)
			}
		case monitoringprocess.FieldErrorsPosting:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field errors_posting", values[i])
			} else if value.Valid {
				_m.ErrorsPosting = int(value.Int64)
			}
		case monitoringprocess.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case monitoringprocess.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case monitoringprocess.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MonitoringProcess.
// This includes values selected through modifiers, order, etc.
func (_m *MonitoringProcess) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the MonitoringProcess entity.
func (_m *MonitoringProcess) QueryOwner() *UserQuery {
	return NewMonitoringProcessClient(_m.config).QueryOwner(_m)
}

// QueryCredentials queries the "credentials" edge of the MonitoringProcess entity.
func (_m *MonitoringProcess) QueryCredentials() *UpstreamCredentialQuery {
	return NewMonitoringProcessClient(_m.config).QueryCredentials(_m)
}

// QueryTemplates queries the "templates" edge of the MonitoringProcess entity.
func (_m *MonitoringProcess) QueryTemplates() *PromptTemplateQuery {
	return NewMonitoringProcessClient(_m.config).QueryTemplates(_m)
}

// QueryWorkRecords queries the "work_records" edge of the MonitoringProcess entity.
func (_m *MonitoringProcess) QueryWorkRecords() *WorkRecordQuery {
	return NewMonitoringProcessClient(_m.config).QueryWorkRecords(_m)
}

// QueryStageTasks queries the "stage_tasks" edge of the MonitoringProcess entity.
func (_m *MonitoringProcess) QueryStageTasks() *StageTaskQuery {
	return NewMonitoringProcessClient(_m.config).QueryStageTasks(_m)
}

// Update returns a builder for updating this MonitoringProcess.
// Note that you need to call MonitoringProcess.Unwrap() before calling this method if this MonitoringProcess
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MonitoringProcess) Update() *MonitoringProcessUpdateOne {
	return NewMonitoringProcessClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MonitoringProcess entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MonitoringProcess) Unwrap() *MonitoringProcess {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MonitoringProcess is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MonitoringProcess) String() string {
	var builder strings.Builder
	builder.WriteString("MonitoringProcess(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("llm_provider_id=")
	builder.WriteString(_m.LlmProviderID)
	builder.WriteString(", ")
	builder.WriteString("tab_filters=")
	builder.WriteString(fmt.Sprintf("%v", _m.TabFilters))
	builder.WriteString(", ")
	if v := _m.CategoryFilter; v != nil {
		builder.WriteString("category_filter=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("keyword_filters=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeywordFilters))
	builder.WriteString(", ")
	builder.WriteString("generate_only=")
	builder.WriteString(fmt.Sprintf("%v", _m.GenerateOnly))
	builder.WriteString(", ")
	builder.WriteString("max_duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxDurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StopReason; v != nil {
		builder.WriteString("stop_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StoppedAt; v != nil {
		builder.WriteString("stopped_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("stage_task_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageTaskIds))
	builder.WriteString(", ")
	builder.WriteString("articles_discovered=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArticlesDiscovered))
	builder.WriteString(", ")
	builder.WriteString("articles_prepared=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArticlesPrepared))
	builder.WriteString(", ")
	builder.WriteString("comments_generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommentsGenerated))
	builder.WriteString(", ")
	builder.WriteString("comments_posted=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommentsPosted))
	builder.WriteString(", ")
	builder.WriteString("errors_discovery=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorsDiscovery))
	builder.WriteString(", ")
	builder.WriteString("errors_preparation=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorsPreparation))
	builder.WriteString(", ")
	builder.WriteString("errors_generation=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorsGeneration))
	builder.WriteString(", ")
	builder.WriteString("errors_posting=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorsPosting))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MonitoringProcesses is a parsable slice of MonitoringProcess.
type MonitoringProcesses []*MonitoringProcess
