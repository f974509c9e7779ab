// Code generated by ent, DO NOT EDIT.

package stagetask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stagetask type in the database.
	Label = "stage_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldQueue holds the string denoting the queue field in the database.
	FieldQueue = "queue"
	// FieldProcessID holds the string denoting the process_id field in the database.
	FieldProcessID = "process_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEnqueuedAt holds the string denoting the enqueued_at field in the database.
	FieldEnqueuedAt = "enqueued_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldWorkerID holds the string denoting the worker_id field in the database.
	FieldWorkerID = "worker_id"
	// EdgeProcess holds the string denoting the process edge name in mutations.
	EdgeProcess = "process"
	// MonitoringProcessFieldID holds the string denoting the ID field of the MonitoringProcess.
	MonitoringProcessFieldID = "process_id"
	// Table holds the table name of the stagetask in the database.
	Table = "stage_tasks"
	// ProcessTable is the table that holds the process relation/edge.
	ProcessTable = "stage_tasks"
	// ProcessInverseTable is the table name for the MonitoringProcess entity.
	// It exists in this package in order to avoid circular dependency with the "monitoringprocess" package.
	ProcessInverseTable = "monitoring_processes"
	// ProcessColumn is the table column denoting the process relation/edge.
	ProcessColumn = "process_id"
)

// Columns holds all SQL columns for stagetask fields.
var Columns = []string{
	FieldID,
	FieldQueue,
	FieldProcessID,
	FieldStatus,
	FieldEnqueuedAt,
	FieldStartedAt,
	FieldFinishedAt,
	FieldErrorMessage,
	FieldWorkerID,
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
	// DefaultEnqueuedAt holds the default value on creation for the "enqueued_at" field.
	DefaultEnqueuedAt func() time.Time
)

// Queue defines the type for the "queue" enum field.
type Queue string

// Queue values.
const (
	QueueDiscovery   Queue = "discovery"
	QueuePreparation Queue = "preparation"
	QueueGeneration  Queue = "generation"
	QueuePosting     Queue = "posting"
	QueueTimeouts    Queue = "timeouts"
	QueueScheduler   Queue = "scheduler"
	QueueSessions    Queue = "sessions"
)

func (q Queue) String() string {
	return string(q)
}

// QueueValidator is a validator for the "queue" field enum values. It is called by the builders before save.
func QueueValidator(q Queue) error {
	switch q {
	case QueueDiscovery, QueuePreparation, QueueGeneration, QueuePosting, QueueTimeouts, QueueScheduler, QueueSessions:
		return nil
	default:
		return fmt.Errorf("stagetask: invalid enum value for queue field: %q", q)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending Status = "pending"
	StatusStarted Status = "started"
	StatusRetry   Status = "retry"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusRevoked Status = "revoked"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusStarted, StatusRetry, StatusSuccess, StatusFailure, StatusRevoked:
		return nil
	default:
		return fmt.Errorf("stagetask: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the StageTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQueue orders the results by the queue field.
func ByQueue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueue, opts...).ToFunc()
}

// ByProcessID orders the results by the process_id field.
func ByProcessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEnqueuedAt orders the results by the enqueued_at field.
func ByEnqueuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnqueuedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByWorkerID orders the results by the worker_id field.
func ByWorkerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerID, opts...).ToFunc()
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
