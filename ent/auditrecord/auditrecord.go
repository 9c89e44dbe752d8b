// Code generated by ent, DO NOT EDIT.

package auditrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the auditrecord type in the database.
	Label = "audit_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldStageID holds the string denoting the stage_id field in the database.
	FieldStageID = "stage_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInputHash holds the string denoting the input_hash field in the database.
	FieldInputHash = "input_hash"
	// FieldOutputHash holds the string denoting the output_hash field in the database.
	FieldOutputHash = "output_hash"
	// FieldLoggedAt holds the string denoting the logged_at field in the database.
	FieldLoggedAt = "logged_at"
	// FieldSignature holds the string denoting the signature field in the database.
	FieldSignature = "signature"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// WorkflowRunFieldID holds the string denoting the ID field of the WorkflowRun.
	WorkflowRunFieldID = "run_id"
	// Table holds the table name of the auditrecord in the database.
	Table = "audit_records"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "audit_records"
	// RunInverseTable is the table name for the WorkflowRun entity.
	// It exists in this package in order to avoid circular dependency with the "workflowrun" package.
	RunInverseTable = "workflow_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for auditrecord fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldStageID,
	FieldAgentID,
	FieldAction,
	FieldStatus,
	FieldInputHash,
	FieldOutputHash,
	FieldLoggedAt,
	FieldSignature,
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
	// DefaultLoggedAt holds the default value on creation for the "logged_at" field.
	DefaultLoggedAt func() time.Time
)

// Action defines the type for the "action" enum field.
type Action string

// Action values.
const (
	ActionExecute Action = "execute"
	ActionRetry   Action = "retry"
	ActionFail    Action = "fail"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionExecute, ActionRetry, ActionFail:
		return nil
	default:
		return fmt.Errorf("auditrecord: invalid enum value for action field: %q", a)
	}
}

// OrderOption defines the ordering options for the AuditRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByStageID orders the results by the stage_id field.
func ByStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByInputHash orders the results by the input_hash field.
func ByInputHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputHash, opts...).ToFunc()
}

// ByOutputHash orders the results by the output_hash field.
func ByOutputHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputHash, opts...).ToFunc()
}

// ByLoggedAt orders the results by the logged_at field.
func ByLoggedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoggedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, WorkflowRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
