// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/workrecord"
)

// WorkRecord is the model entity for the WorkRecord schema.
type WorkRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProcessID holds the value of the "process_id" field.
	ProcessID string `json:"process_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// CredentialID holds the value of the "credential_id" field.
	CredentialID string `json:"credential_id,omitempty"`
	// TemplateID holds the value of the "template_id" field.
	TemplateID string `json:"template_id,omitempty"`
	// LlmProviderID holds the value of the "llm_provider_id" field.
	LlmProviderID string `json:"llm_provider_id,omitempty"`
	// UpstreamArticleID holds the value of the "upstream_article_id" field.
	UpstreamArticleID string `json:"upstream_article_id,omitempty"`
	// ArticleTitle holds the value of the "article_title" field.
	ArticleTitle string `json:"article_title,omitempty"`
	// ArticleAuthor holds the value of the "article_author" field.
	ArticleAuthor string `json:"article_author,omitempty"`
	// ArticleCategory holds the value of the "article_category" field.
	ArticleCategory string `json:"article_category,omitempty"`
	// ArticleURL holds the value of the "article_url" field.
	ArticleURL string `json:"article_url,omitempty"`
	// ArticleEditedAt holds the value of the "article_edited_at" field.
	ArticleEditedAt *time.Time `json:"article_edited_at,omitempty"`
	// ArticleContent holds the value of the "article_content" field.
	ArticleContent *string `json:"article_content,omitempty"`
	// ArticleRawHTML holds the value of the "article_raw_html" field.
	ArticleRawHTML *string `json:"article_raw_html,omitempty"`
	// ArticlePublishedAt holds the value of the "article_published_at" field.
	ArticlePublishedAt *time.Time `json:"article_published_at,omitempty"`
	// ArticleScrapedAt holds the value of the "article_scraped_at" field.
	ArticleScrapedAt *time.Time `json:"article_scraped_at,omitempty"`
	// CommentContent holds the value of the "comment_content" field.
	CommentContent *string `json:"comment_content,omitempty"`
	// Deterministic idempotency marker; upstream returns no id
	UpstreamCommentID *string `json:"upstream_comment_id,omitempty"`
	// AiModelName holds the value of the "ai_model_name" field.
	AiModelName *string `json:"ai_model_name,omitempty"`
	// AiVendorTag holds the value of the "ai_vendor_tag" field.
	AiVendorTag *string `json:"ai_vendor_tag,omitempty"`
	// GenerationTokens holds the value of the "generation_tokens" field.
	GenerationTokens *int `json:"generation_tokens,omitempty"`
	// GenerationTimeMs holds the value of the "generation_time_ms" field.
	GenerationTimeMs *int `json:"generation_time_ms,omitempty"`
	// Status holds the value of the "status" field.
	Status workrecord.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// PostedAt holds the value of the "posted_at" field.
	PostedAt *time.Time `json:"posted_at,omitempty"`
	// FailedAt holds the value of the "failed_at" field.
	FailedAt *time.Time `json:"failed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkRecordQuery when eager-loading is set.
	Edges        WorkRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkRecordEdges holds the relations/edges for other nodes in the graph.
type WorkRecordEdges struct {
	// Process holds the value of the process edge.
	Process *MonitoringProcess `json:"process,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProcessOrErr returns the Process value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkRecordEdges) ProcessOrErr() (*MonitoringProcess, error) {
	if e.Process != nil {
		return e.Process, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: monitoringprocess.Label}
	}
	return nil, &NotLoadedError{edge: "process"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workrecord.FieldGenerationTokens, workrecord.FieldGenerationTimeMs, workrecord.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case workrecord.FieldID, workrecord.FieldProcessID, workrecord.FieldUserID, workrecord.FieldCredentialID, workrecord.FieldTemplateID, workrecord.FieldLlmProviderID, workrecord.FieldUpstreamArticleID, workrecord.FieldArticleTitle, workrecord.FieldArticleAuthor, workrecord.FieldArticleCategory, workrecord.FieldArticleURL, workrecord.FieldArticleContent, workrecord.FieldArticleRawHTML, workrecord.FieldCommentContent, workrecord.FieldUpstreamCommentID, workrecord.FieldAiModelName, workrecord.FieldAiVendorTag, workrecord.FieldStatus, workrecord.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case workrecord.FieldArticleEditedAt, workrecord.FieldArticlePublishedAt, workrecord.FieldArticleScrapedAt, workrecord.FieldPostedAt, workrecord.FieldFailedAt, workrecord.FieldCreatedAt, workrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkRecord fields.
func (_m *WorkRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workrecord.FieldProcessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field process_id", values[i])
			} else if value.Valid {
				_m.ProcessID = value.String
			}
		case workrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case workrecord.FieldCredentialID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credential_id", values[i])
			} else if value.Valid {
				_m.CredentialID = value.String
			}
		case workrecord.FieldTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = value.String
			}
		case workrecord.FieldLlmProviderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_provider_id", values[i])
			} else if value.Valid {
				_m.LlmProviderID = value.String
			}
		case workrecord.FieldUpstreamArticleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field upstream_article_id", values[i])
			} else if value.Valid {
				_m.UpstreamArticleID = value.String
			}
		case workrecord.FieldArticleTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_title", values[i])
			} else if value.Valid {
				_m.ArticleTitle = value.String
			}
		case workrecord.FieldArticleAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_author", values[i])
			} else if value.Valid {
				_m.ArticleAuthor = value.String
			}
		case workrecord.FieldArticleCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_category", values[i])
			} else if value.Valid {
				_m.ArticleCategory = value.String
			}
		case workrecord.FieldArticleURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_url", values[i])
			} else if value.Valid {
				_m.ArticleURL = value.String
			}
		case workrecord.FieldArticleEditedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field article_edited_at", values[i])
			} else if value.Valid {
				_m.ArticleEditedAt = new(time.Time)
				*_m.ArticleEditedAt = value.Time
			}
		case workrecord.FieldArticleContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_content", values[i])
			} else if value.Valid {
				_m.ArticleContent = new(string)
				*_m.ArticleContent = value.String
			}
		case workrecord.FieldArticleRawHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_raw_html", values[i])
			} else if value.Valid {
				_m.ArticleRawHTML = new(string)
				*_m.ArticleRawHTML = value.String
			}
		case workrecord.FieldArticlePublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field article_published_at", values[i])
			} else if value.Valid {
				_m.ArticlePublishedAt = new(time.Time)
				*_m.ArticlePublishedAt = value.Time
			}
		case workrecord.FieldArticleScrapedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field article_scraped_at", values[i])
			} else if value.Valid {
				_m.ArticleScrapedAt = new(time.Time)
				*_m.ArticleScrapedAt = value.Time
			}
		case workrecord.FieldCommentContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment_content", values[i])
			} else if value.Valid {
				_m.CommentContent = new(string)
				*_m.CommentContent = value.String
			}
		case workrecord.FieldUpstreamCommentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field upstream_comment_id", values[i])
			} else if value.Valid {
				_m.UpstreamCommentID = new(string)
				*_m.UpstreamCommentID = value.String
			}
		case workrecord.FieldAiModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_model_name", values[i])
			} else if value.Valid {
				_m.AiModelName = new(string)
				*_m.AiModelName = value.String
			}
		case workrecord.FieldAiVendorTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_vendor_tag", values[i])
			} else if value.Valid {
				_m.AiVendorTag = new(string)
				*_m.AiVendorTag = value.String
			}
		case workrecord.FieldGenerationTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generation_tokens", values[i])
			} else if value.Valid {
				_m.GenerationTokens = new(int)
				*_m.GenerationTokens = int(value.Int64)
			}
		case workrecord.FieldGenerationTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generation_time_ms", values[i])
			} else if value.Valid {
				_m.GenerationTimeMs = new(int)
				*_m.GenerationTimeMs = int(value.Int64)
			}
		case workrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workrecord.Status(value.String)
			}
		case workrecord.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case workrecord.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case workrecord.FieldPostedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field posted_at", values[i])
			} else if value.Valid {
				_m.PostedAt = new(time.Time)
				*_m.PostedAt = value.Time
			}
		case workrecord.FieldFailedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field failed_at", values[i])
			} else if value.Valid {
				_m.FailedAt = new(time.Time)
				*_m.FailedAt = value.Time
			}
		case workrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WorkRecord.
// This includes values selected through modifiers, order, etc.
func (_m *WorkRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProcess queries the "process" edge of the WorkRecord entity.
func (_m *WorkRecord) QueryProcess() *MonitoringProcessQuery {
	return NewWorkRecordClient(_m.config).QueryProcess(_m)
}

// Update returns a builder for updating this WorkRecord.
// Note that you need to call WorkRecord.Unwrap() before calling this method if this WorkRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkRecord) Update() *WorkRecordUpdateOne {
	return NewWorkRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkRecord) Unwrap() *WorkRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkRecord) String() string {
	var builder strings.Builder
	builder.WriteString("WorkRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("process_id=")
	builder.WriteString(_m.ProcessID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("credential_id=")
	builder.WriteString(_m.CredentialID)
	builder.WriteString(", ")
	builder.WriteString("template_id=")
	builder.WriteString(_m.TemplateID)
	builder.WriteString(", ")
	builder.WriteString("llm_provider_id=")
	builder.WriteString(_m.LlmProviderID)
	builder.WriteString(", ")
	builder.WriteString("upstream_article_id=")
	builder.WriteString(_m.UpstreamArticleID)
	builder.WriteString(", ")
	builder.WriteString("article_title=")
	builder.WriteString(_m.ArticleTitle)
	builder.WriteString(", ")
	builder.WriteString("article_author=")
	builder.WriteString(_m.ArticleAuthor)
	builder.WriteString(", ")
	builder.WriteString("article_category=")
	builder.WriteString(_m.ArticleCategory)
	builder.WriteString(", ")
	builder.WriteString("article_url=")
	builder.WriteString(_m.ArticleURL)
	builder.WriteString(", ")
	if v := _m.ArticleEditedAt; v != nil {
		builder.WriteString("article_edited_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ArticleContent; v != nil {
		builder.WriteString("article_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ArticleRawHTML; v != nil {
		builder.WriteString("article_raw_html=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ArticlePublishedAt; v != nil {
		builder.WriteString("article_published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ArticleScrapedAt; v != nil {
		builder.WriteString("article_scraped_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CommentContent; v != nil {
		builder.WriteString("comment_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UpstreamCommentID; v != nil {
		builder.WriteString("upstream_comment_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AiModelName; v != nil {
		builder.WriteString("ai_model_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AiVendorTag; v != nil {
		builder.WriteString("ai_vendor_tag=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GenerationTokens; v != nil {
		builder.WriteString("generation_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GenerationTimeMs; v != nil {
		builder.WriteString("generation_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.PostedAt; v != nil {
		builder.WriteString("posted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FailedAt; v != nil {
		builder.WriteString("failed_at=")
		builder.WriteString(v.Format(time.ANSIC))
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

// WorkRecords is a parsable slice of WorkRecord.
type WorkRecords []*WorkRecord
