// Code generated by ent, DO NOT EDIT.

package approvalgate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the approvalgate type in the database.
	Label = "approval_gate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "gate_uuid"
	// FieldTeamID holds the string denoting the team_id field in the database.
	FieldTeamID = "team_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldApprovers holds the string denoting the approvers field in the database.
	FieldApprovers = "approvers"
	// FieldRequestedByAgent holds the string denoting the requested_by_agent field in the database.
	FieldRequestedByAgent = "requested_by_agent"
	// FieldRequestedByUser holds the string denoting the requested_by_user field in the database.
	FieldRequestedByUser = "requested_by_user"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldRespondedBy holds the string denoting the responded_by field in the database.
	FieldRespondedBy = "responded_by"
	// FieldResponseNote holds the string denoting the response_note field in the database.
	FieldResponseNote = "response_note"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldRespondedAt holds the string denoting the responded_at field in the database.
	FieldRespondedAt = "responded_at"
	// Table holds the table name of the approvalgate in the database.
	Table = "approval_gates"
)

// Columns holds all SQL columns for approvalgate fields.
var Columns = []string{
	FieldID,
	FieldTeamID,
	FieldTitle,
	FieldDescription,
	FieldStatus,
	FieldApprovers,
	FieldRequestedByAgent,
	FieldRequestedByUser,
	FieldTaskID,
	FieldExpiresAt,
	FieldRespondedBy,
	FieldResponseNote,
	FieldCreatedAt,
	FieldRespondedAt,
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
	// DefaultApprovers holds the default value on creation for the "approvers" field.
	DefaultApprovers []string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusExpired:
		return nil
	default:
		return fmt.Errorf("approvalgate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ApprovalGate queries.
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

// ByRequestedByAgent orders the results by the requested_by_agent field.
func ByRequestedByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedByAgent, opts...).ToFunc()
}

// ByRequestedByUser orders the results by the requested_by_user field.
func ByRequestedByUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedByUser, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByRespondedBy orders the results by the responded_by field.
func ByRespondedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondedBy, opts...).ToFunc()
}

// ByResponseNote orders the results by the response_note field.
func ByResponseNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseNote, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRespondedAt orders the results by the responded_at field.
func ByRespondedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondedAt, opts...).ToFunc()
}
