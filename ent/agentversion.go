// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductor-hq/conductor/ent/agent"
	"github.com/conductor-hq/conductor/ent/agentversion"
)

// AgentVersion is the model entity for the AgentVersion schema.
type AgentVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Version holds the value of the "version" field.
	Version string `json:"version,omitempty"`
	// Endpoint holds the value of the "endpoint" field.
	Endpoint string `json:"endpoint,omitempty"`
	// Capabilities holds the value of the "capabilities" field.
	Capabilities []string `json:"capabilities,omitempty"`
	// Status holds the value of the "status" field.
	Status agentversion.Status `json:"status,omitempty"`
	// TrafficPercent holds the value of the "traffic_percent" field.
	TrafficPercent int `json:"traffic_percent,omitempty"`
	// ErrorRatePer1000 holds the value of the "error_rate_per_1000" field.
	ErrorRatePer1000 float64 `json:"error_rate_per_1000,omitempty"`
	// ErrorThreshold holds the value of the "error_threshold" field.
	ErrorThreshold float64 `json:"error_threshold,omitempty"`
	// IsRollbackTarget holds the value of the "is_rollback_target" field.
	IsRollbackTarget bool `json:"is_rollback_target,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentVersionQuery when eager-loading is set.
	Edges        AgentVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentVersionEdges holds the relations/edges for other nodes in the graph.
type AgentVersionEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentVersionEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentversion.FieldCapabilities:
			values[i] = new([]byte)
		case agentversion.FieldIsRollbackTarget:
			values[i] = new(sql.NullBool)
		case agentversion.FieldErrorRatePer1000, agentversion.FieldErrorThreshold:
			values[i] = new(sql.NullFloat64)
		case agentversion.FieldTrafficPercent:
			values[i] = new(sql.NullInt64)
		case agentversion.FieldID, agentversion.FieldAgentID, agentversion.FieldVersion, agentversion.FieldEndpoint, agentversion.FieldStatus:
			values[i] = new(sql.NullString)
		case agentversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentVersion fields.
func (_m *AgentVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentversion.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case agentversion.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.String
			}
		case agentversion.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				_m.Endpoint = value.String
			}
		case agentversion.FieldCapabilities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field capabilities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Capabilities); err != nil {
					return fmt.Errorf("unmarshal field capabilities: %w", err)
				}
			}
		case agentversion.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentversion.Status(value.String)
			}
		case agentversion.FieldTrafficPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field traffic_percent", values[i])
			} else if value.Valid {
				_m.TrafficPercent = int(value.Int64)
			}
		case agentversion.FieldErrorRatePer1000:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field error_rate_per_1000", values[i])
			} else if value.Valid {
				_m.ErrorRatePer1000 = value.Float64
			}
		case agentversion.FieldErrorThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field error_threshold", values[i])
			} else if value.Valid {
				_m.ErrorThreshold = value.Float64
			}
		case agentversion.FieldIsRollbackTarget:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_rollback_target", values[i])
			} else if value.Valid {
				_m.IsRollbackTarget = value.Bool
			}
		case agentversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentVersion.
// This includes values selected through modifiers, order, etc.
func (_m *AgentVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the AgentVersion entity.
func (_m *AgentVersion) QueryAgent() *AgentQuery {
	return NewAgentVersionClient(_m.config).QueryAgent(_m)
}

// Update returns a builder for updating this AgentVersion.
// Note that you need to call AgentVersion.Unwrap() before calling this method if this AgentVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentVersion) Update() *AgentVersionUpdateOne {
	return NewAgentVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentVersion) Unwrap() *AgentVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentVersion) String() string {
	var builder strings.Builder
	builder.WriteString("AgentVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(_m.Version)
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(_m.Endpoint)
	builder.WriteString(", ")
	builder.WriteString("capabilities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capabilities))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("traffic_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrafficPercent))
	builder.WriteString(", ")
	builder.WriteString("error_rate_per_1000=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorRatePer1000))
	builder.WriteString(", ")
	builder.WriteString("error_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorThreshold))
	builder.WriteString(", ")
	builder.WriteString("is_rollback_target=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRollbackTarget))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentVersions is a parsable slice of AgentVersion.
type AgentVersions []*AgentVersion
