// Code generated by ent, DO NOT EDIT.

package agentversion

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentversion type in the database.
	Label = "agent_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "version_uuid"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldEndpoint holds the string denoting the endpoint field in the database.
	FieldEndpoint = "endpoint"
	// FieldCapabilities holds the string denoting the capabilities field in the database.
	FieldCapabilities = "capabilities"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTrafficPercent holds the string denoting the traffic_percent field in the database.
	FieldTrafficPercent = "traffic_percent"
	// FieldErrorRatePer1000 holds the string denoting the error_rate_per_1000 field in the database.
	FieldErrorRatePer1000 = "error_rate_per_1000"
	// FieldErrorThreshold holds the string denoting the error_threshold field in the database.
	FieldErrorThreshold = "error_threshold"
	// FieldIsRollbackTarget holds the string denoting the is_rollback_target field in the database.
	FieldIsRollbackTarget = "is_rollback_target"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// AgentFieldID holds the string denoting the ID field of the Agent.
	AgentFieldID = "agent_uuid"
	// Table holds the table name of the agentversion in the database.
	Table = "agent_versions"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "agent_versions"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
)

// Columns holds all SQL columns for agentversion fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldVersion,
	FieldEndpoint,
	FieldCapabilities,
	FieldStatus,
	FieldTrafficPercent,
	FieldErrorRatePer1000,
	FieldErrorThreshold,
	FieldIsRollbackTarget,
	FieldCreatedAt,
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
	// DefaultCapabilities holds the default value on creation for the "capabilities" field.
	DefaultCapabilities []string
	// DefaultTrafficPercent holds the default value on creation for the "traffic_percent" field.
	DefaultTrafficPercent int
	// TrafficPercentValidator is a validator for the "traffic_percent" field. It is called by the builders before save.
	TrafficPercentValidator func(int) error
	// DefaultErrorRatePer1000 holds the default value on creation for the "error_rate_per_1000" field.
	DefaultErrorRatePer1000 float64
	// DefaultErrorThreshold holds the default value on creation for the "error_threshold" field.
	DefaultErrorThreshold float64
	// DefaultIsRollbackTarget holds the default value on creation for the "is_rollback_target" field.
	DefaultIsRollbackTarget bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft      Status = "draft"
	StatusActive     Status = "active"
	StatusCanary     Status = "canary"
	StatusInactive   Status = "inactive"
	StatusRolledBack Status = "rolled_back"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusActive, StatusCanary, StatusInactive, StatusRolledBack:
		return nil
	default:
		return fmt.Errorf("agentversion: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByEndpoint orders the results by the endpoint field.
func ByEndpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpoint, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTrafficPercent orders the results by the traffic_percent field.
func ByTrafficPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrafficPercent, opts...).ToFunc()
}

// ByErrorRatePer1000 orders the results by the error_rate_per_1000 field.
func ByErrorRatePer1000(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorRatePer1000, opts...).ToFunc()
}

// ByErrorThreshold orders the results by the error_threshold field.
func ByErrorThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorThreshold, opts...).ToFunc()
}

// ByIsRollbackTarget orders the results by the is_rollback_target field.
func ByIsRollbackTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRollbackTarget, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, AgentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
