// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductor-hq/conductor/ent/auditrecord"
	"github.com/conductor-hq/conductor/ent/workflowrun"
	"github.com/conductor-hq/conductor/pkg/models"
)

// AuditRecord is the model entity for the AuditRecord schema.
type AuditRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// StageID holds the value of the "stage_id" field.
	StageID string `json:"stage_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Action holds the value of the "action" field.
	Action auditrecord.Action `json:"action,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// InputHash holds the value of the "input_hash" field.
	InputHash string `json:"input_hash,omitempty"`
	// OutputHash holds the value of the "output_hash" field.
	OutputHash *string `json:"output_hash,omitempty"`
	// LoggedAt holds the value of the "logged_at" field.
	LoggedAt time.Time `json:"logged_at,omitempty"`
	// Signature holds the value of the "signature" field.
	Signature *models.AuditSignature `json:"signature,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditRecordQuery when eager-loading is set.
	Edges        AuditRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditRecordEdges holds the relations/edges for other nodes in the graph.
type AuditRecordEdges struct {
	// Run holds the value of the run edge.
	Run *WorkflowRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditRecordEdges) RunOrErr() (*WorkflowRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditrecord.FieldSignature:
			values[i] = new([]byte)
		case auditrecord.FieldID, auditrecord.FieldRunID, auditrecord.FieldStageID, auditrecord.FieldAgentID, auditrecord.FieldAction, auditrecord.FieldStatus, auditrecord.FieldInputHash, auditrecord.FieldOutputHash:
			values[i] = new(sql.NullString)
		case auditrecord.FieldLoggedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditRecord fields.
func (_m *AuditRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case auditrecord.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case auditrecord.FieldStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = value.String
			}
		case auditrecord.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case auditrecord.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = auditrecord.Action(value.String)
			}
		case auditrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case auditrecord.FieldInputHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_hash", values[i])
			} else if value.Valid {
				_m.InputHash = value.String
			}
		case auditrecord.FieldOutputHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_hash", values[i])
			} else if value.Valid {
				_m.OutputHash = new(string)
				*_m.OutputHash = value.String
			}
		case auditrecord.FieldLoggedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field logged_at", values[i])
			} else if value.Valid {
				_m.LoggedAt = value.Time
			}
		case auditrecord.FieldSignature:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field signature", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Signature); err != nil {
					return fmt.Errorf("unmarshal field signature: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AuditRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AuditRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the AuditRecord entity.
func (_m *AuditRecord) QueryRun() *WorkflowRunQuery {
	return NewAuditRecordClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this AuditRecord.
// Note that you need to call AuditRecord.Unwrap() before calling this method if this AuditRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditRecord) Update() *AuditRecordUpdateOne {
	return NewAuditRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditRecord) Unwrap() *AuditRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AuditRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("stage_id=")
	builder.WriteString(_m.StageID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("input_hash=")
	builder.WriteString(_m.InputHash)
	builder.WriteString(", ")
	if v := _m.OutputHash; v != nil {
		builder.WriteString("output_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("logged_at=")
	builder.WriteString(_m.LoggedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("signature=")
	builder.WriteString(fmt.Sprintf("%v", _m.Signature))
	builder.WriteByte(')')
	return builder.String()
}

// AuditRecords is a parsable slice of AuditRecord.
type AuditRecords []*AuditRecord
