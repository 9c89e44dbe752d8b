// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_uuid"
	// FieldTeamID holds the string denoting the team_id field in the database.
	FieldTeamID = "team_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldRequiredCapability holds the string denoting the required_capability field in the database.
	FieldRequiredCapability = "required_capability"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldAssignedAgent holds the string denoting the assigned_agent field in the database.
	FieldAssignedAgent = "assigned_agent"
	// FieldCreatedByAgent holds the string denoting the created_by_agent field in the database.
	FieldCreatedByAgent = "created_by_agent"
	// FieldCreatedByUser holds the string denoting the created_by_user field in the database.
	FieldCreatedByUser = "created_by_user"
	// FieldDependsOn holds the string denoting the depends_on field in the database.
	FieldDependsOn = "depends_on"
	// FieldInputMapping holds the string denoting the input_mapping field in the database.
	FieldInputMapping = "input_mapping"
	// FieldTimeoutMs holds the string denoting the timeout_ms field in the database.
	FieldTimeoutMs = "timeout_ms"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldMaxRetries holds the string denoting the max_retries field in the database.
	FieldMaxRetries = "max_retries"
	// FieldProgressCurrent holds the string denoting the progress_current field in the database.
	FieldProgressCurrent = "progress_current"
	// FieldProgressTotal holds the string denoting the progress_total field in the database.
	FieldProgressTotal = "progress_total"
	// FieldProgressMessage holds the string denoting the progress_message field in the database.
	FieldProgressMessage = "progress_message"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the task in the database.
	Table = "tasks"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldTeamID,
	FieldTitle,
	FieldDescription,
	FieldStatus,
	FieldPriority,
	FieldRequiredCapability,
	FieldTags,
	FieldAssignedAgent,
	FieldCreatedByAgent,
	FieldCreatedByUser,
	FieldDependsOn,
	FieldInputMapping,
	FieldTimeoutMs,
	FieldRetryCount,
	FieldMaxRetries,
	FieldProgressCurrent,
	FieldProgressTotal,
	FieldProgressMessage,
	FieldOutput,
	FieldResult,
	FieldLastError,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
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
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultTags holds the default value on creation for the "tags" field.
	DefaultTags []string
	// DefaultDependsOn holds the default value on creation for the "depends_on" field.
	DefaultDependsOn []string
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultMaxRetries holds the default value on creation for the "max_retries" field.
	DefaultMaxRetries int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusTodo is the default value of the Status enum.
const DefaultStatus = StatusTodo

// Status values.
const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTeamID orders the results by the team_id field.
func ByTeamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByRequiredCapability orders the results by the required_capability field.
func ByRequiredCapability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredCapability, opts...).ToFunc()
}

// ByAssignedAgent orders the results by the assigned_agent field.
func ByAssignedAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAgent, opts...).ToFunc()
}

// ByCreatedByAgent orders the results by the created_by_agent field.
func ByCreatedByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedByAgent, opts...).ToFunc()
}

// ByCreatedByUser orders the results by the created_by_user field.
func ByCreatedByUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedByUser, opts...).ToFunc()
}

// ByTimeoutMs orders the results by the timeout_ms field.
func ByTimeoutMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutMs, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByMaxRetries orders the results by the max_retries field.
func ByMaxRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetries, opts...).ToFunc()
}

// ByProgressCurrent orders the results by the progress_current field.
func ByProgressCurrent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressCurrent, opts...).ToFunc()
}

// ByProgressTotal orders the results by the progress_total field.
func ByProgressTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressTotal, opts...).ToFunc()
}

// ByProgressMessage orders the results by the progress_message field.
func ByProgressMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressMessage, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
