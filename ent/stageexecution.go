// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductor-hq/conductor/ent/stageexecution"
	"github.com/conductor-hq/conductor/ent/workflowrun"
)

// StageExecution is the model entity for the StageExecution schema.
type StageExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Stage id within the workflow definition
	StageID string `json:"stage_id,omitempty"`
	// Status holds the value of the "status" field.
	Status stageexecution.Status `json:"status,omitempty"`
	// Agent that ultimately produced the result
	AgentID *string `json:"agent_id,omitempty"`
	// InputResolved holds the value of the "input_resolved" field.
	InputResolved map[string]interface{} `json:"input_resolved,omitempty"`
	// Output holds the value of the "output" field.
	Output map[string]interface{} `json:"output,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ExecutionTimeMs holds the value of the "execution_time_ms" field.
	ExecutionTimeMs *int64 `json:"execution_time_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StageExecutionQuery when eager-loading is set.
	Edges        StageExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StageExecutionEdges holds the relations/edges for other nodes in the graph.
type StageExecutionEdges struct {
	// Run holds the value of the run edge.
	Run *WorkflowRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StageExecutionEdges) RunOrErr() (*WorkflowRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StageExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stageexecution.FieldInputResolved, stageexecution.FieldOutput:
			values[i] = new([]byte)
		case stageexecution.FieldExecutionTimeMs:
			values[i] = new(sql.NullInt64)
		case stageexecution.FieldID, stageexecution.FieldRunID, stageexecution.FieldStageID, stageexecution.FieldStatus, stageexecution.FieldAgentID, stageexecution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case stageexecution.FieldStartedAt, stageexecution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StageExecution fields.
func (_m *StageExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stageexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stageexecution.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case stageexecution.FieldStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = value.String
			}
		case stageexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = stageexecution.Status(value.String)
			}
		case stageexecution.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(string)
				*_m.AgentID = value.String
			}
		case stageexecution.FieldInputResolved:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_resolved", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputResolved); err != nil {
					return fmt.Errorf("unmarshal field input_resolved: %w", err)
				}
			}
		case stageexecution.FieldOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Output); err != nil {
					return fmt.Errorf("unmarshal field output: %w", err)
				}
			}
		case stageexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case stageexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case stageexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case stageexecution.FieldExecutionTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_time_ms", values[i])
			} else if value.Valid {
				_m.ExecutionTimeMs = new(int64)
				*_m.ExecutionTimeMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StageExecution.
// This includes values selected through modifiers, order, etc.
func (_m *StageExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the StageExecution entity.
func (_m *StageExecution) QueryRun() *WorkflowRunQuery {
	return NewStageExecutionClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this StageExecution.
// Note that you need to call StageExecution.Unwrap() before calling this method if this StageExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StageExecution) Update() *StageExecutionUpdateOne {
	return NewStageExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StageExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StageExecution) Unwrap() *StageExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StageExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StageExecution) String() string {
	var builder strings.Builder
	builder.WriteString("StageExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("stage_id=")
	builder.WriteString(_m.StageID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("input_resolved=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputResolved))
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(fmt.Sprintf("%v", _m.Output))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExecutionTimeMs; v != nil {
		builder.WriteString("execution_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// StageExecutions is a parsable slice of StageExecution.
type StageExecutions []*StageExecution
