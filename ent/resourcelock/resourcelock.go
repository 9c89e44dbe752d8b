// Code generated by ent, DO NOT EDIT.

package resourcelock

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the resourcelock type in the database.
	Label = "resource_lock"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "lock_uuid"
	// FieldResourceType holds the string denoting the resource_type field in the database.
	FieldResourceType = "resource_type"
	// FieldResourceID holds the string denoting the resource_id field in the database.
	FieldResourceID = "resource_id"
	// FieldOwnerAgent holds the string denoting the owner_agent field in the database.
	FieldOwnerAgent = "owner_agent"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldConflictStrategy holds the string denoting the conflict_strategy field in the database.
	FieldConflictStrategy = "conflict_strategy"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldAcquiredAt holds the string denoting the acquired_at field in the database.
	FieldAcquiredAt = "acquired_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldReleasedAt holds the string denoting the released_at field in the database.
	FieldReleasedAt = "released_at"
	// Table holds the table name of the resourcelock in the database.
	Table = "resource_locks"
)

// Columns holds all SQL columns for resourcelock fields.
var Columns = []string{
	FieldID,
	FieldResourceType,
	FieldResourceID,
	FieldOwnerAgent,
	FieldStatus,
	FieldConflictStrategy,
	FieldContentHash,
	FieldVersion,
	FieldAcquiredAt,
	FieldExpiresAt,
	FieldReleasedAt,
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
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultAcquiredAt holds the default value on creation for the "acquired_at" field.
	DefaultAcquiredAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusReleased Status = "released"
	StatusExpired  Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusReleased, StatusExpired:
		return nil
	default:
		return fmt.Errorf("resourcelock: invalid enum value for status field: %q", s)
	}
}

// ConflictStrategy defines the type for the "conflict_strategy" enum field.
type ConflictStrategy string

// ConflictStrategyFail is the default value of the ConflictStrategy enum.
const DefaultConflictStrategy = ConflictStrategyFail

// ConflictStrategy values.
const (
	ConflictStrategyFail     ConflictStrategy = "fail"
	ConflictStrategyQueue    ConflictStrategy = "queue"
	ConflictStrategyMerge    ConflictStrategy = "merge"
	ConflictStrategyEscalate ConflictStrategy = "escalate"
)

func (cs ConflictStrategy) String() string {
	return string(cs)
}

// ConflictStrategyValidator is a validator for the "conflict_strategy" field enum values. It is called by the builders before save.
func ConflictStrategyValidator(cs ConflictStrategy) error {
	switch cs {
	case ConflictStrategyFail, ConflictStrategyQueue, ConflictStrategyMerge, ConflictStrategyEscalate:
		return nil
	default:
		return fmt.Errorf("resourcelock: invalid enum value for conflict_strategy field: %q", cs)
	}
}

// OrderOption defines the ordering options for the ResourceLock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResourceType orders the results by the resource_type field.
func ByResourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceType, opts...).ToFunc()
}

// ByResourceID orders the results by the resource_id field.
func ByResourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceID, opts...).ToFunc()
}

// ByOwnerAgent orders the results by the owner_agent field.
func ByOwnerAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerAgent, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByConflictStrategy orders the results by the conflict_strategy field.
func ByConflictStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConflictStrategy, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByAcquiredAt orders the results by the acquired_at field.
func ByAcquiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcquiredAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByReleasedAt orders the results by the released_at field.
func ByReleasedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReleasedAt, opts...).ToFunc()
}
