// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_uuid"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldEndpointURL holds the string denoting the endpoint_url field in the database.
	FieldEndpointURL = "endpoint_url"
	// FieldCapabilities holds the string denoting the capabilities field in the database.
	FieldCapabilities = "capabilities"
	// FieldMaxConcurrent holds the string denoting the max_concurrent field in the database.
	FieldMaxConcurrent = "max_concurrent"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldWsConnected holds the string denoting the ws_connected field in the database.
	FieldWsConnected = "ws_connected"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldTeamID holds the string denoting the team_id field in the database.
	FieldTeamID = "team_id"
	// FieldRegisteredBy holds the string denoting the registered_by field in the database.
	FieldRegisteredBy = "registered_by"
	// FieldAuthSecretHash holds the string denoting the auth_secret_hash field in the database.
	FieldAuthSecretHash = "auth_secret_hash"
	// FieldAuthSecretCiphertext holds the string denoting the auth_secret_ciphertext field in the database.
	FieldAuthSecretCiphertext = "auth_secret_ciphertext"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeVersions holds the string denoting the versions edge name in mutations.
	EdgeVersions = "versions"
	// AgentVersionFieldID holds the string denoting the ID field of the AgentVersion.
	AgentVersionFieldID = "version_uuid"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// VersionsTable is the table that holds the versions relation/edge.
	VersionsTable = "agent_versions"
	// VersionsInverseTable is the table name for the AgentVersion entity.
	// It exists in this package in order to avoid circular dependency with the "agentversion" package.
	VersionsInverseTable = "agent_versions"
	// VersionsColumn is the table column denoting the versions relation/edge.
	VersionsColumn = "agent_id"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldExternalID,
	FieldDisplayName,
	FieldEndpointURL,
	FieldCapabilities,
	FieldMaxConcurrent,
	FieldStatus,
	FieldWsConnected,
	FieldLastHeartbeat,
	FieldTeamID,
	FieldRegisteredBy,
	FieldAuthSecretHash,
	FieldAuthSecretCiphertext,
	FieldCreatedAt,
	FieldDeletedAt,
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
	// DefaultMaxConcurrent holds the default value on creation for the "max_concurrent" field.
	DefaultMaxConcurrent int
	// DefaultWsConnected holds the default value on creation for the "ws_connected" field.
	DefaultWsConnected bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOffline is the default value of the Status enum.
const DefaultStatus = StatusOffline

// Status values.
const (
	StatusOnline   Status = "online"
	StatusDegraded Status = "degraded"
	StatusOffline  Status = "offline"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOnline, StatusDegraded, StatusOffline:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByEndpointURL orders the results by the endpoint_url field.
func ByEndpointURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpointURL, opts...).ToFunc()
}

// ByMaxConcurrent orders the results by the max_concurrent field.
func ByMaxConcurrent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxConcurrent, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByWsConnected orders the results by the ws_connected field.
func ByWsConnected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWsConnected, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}

// ByTeamID orders the results by the team_id field.
func ByTeamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamID, opts...).ToFunc()
}

// ByRegisteredBy orders the results by the registered_by field.
func ByRegisteredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegisteredBy, opts...).ToFunc()
}

// ByAuthSecretHash orders the results by the auth_secret_hash field.
func ByAuthSecretHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthSecretHash, opts...).ToFunc()
}

// ByAuthSecretCiphertext orders the results by the auth_secret_ciphertext field.
func ByAuthSecretCiphertext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthSecretCiphertext, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByVersionsCount orders the results by versions count.
func ByVersionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVersionsStep(), opts...)
	}
}

// ByVersions orders the results by versions terms.
func ByVersions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVersionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newVersionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VersionsInverseTable, AgentVersionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
	)
}
