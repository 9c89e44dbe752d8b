// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductor-hq/conductor/ent/approvalgate"
)

// ApprovalGate is the model entity for the ApprovalGate schema.
type ApprovalGate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TeamID holds the value of the "team_id" field.
	TeamID string `json:"team_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status approvalgate.Status `json:"status,omitempty"`
	// Approvers holds the value of the "approvers" field.
	Approvers []string `json:"approvers,omitempty"`
	// RequestedByAgent holds the value of the "requested_by_agent" field.
	RequestedByAgent *string `json:"requested_by_agent,omitempty"`
	// RequestedByUser holds the value of the "requested_by_user" field.
	RequestedByUser *string `json:"requested_by_user,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID *string `json:"task_id,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// RespondedBy holds the value of the "responded_by" field.
	RespondedBy *string `json:"responded_by,omitempty"`
	// ResponseNote holds the value of the "response_note" field.
	ResponseNote *string `json:"response_note,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// RespondedAt holds the value of the "responded_at" field.
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalGate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvalgate.FieldApprovers:
			values[i] = new([]byte)
		case approvalgate.FieldID, approvalgate.FieldTeamID, approvalgate.FieldTitle, approvalgate.FieldDescription, approvalgate.FieldStatus, approvalgate.FieldRequestedByAgent, approvalgate.FieldRequestedByUser, approvalgate.FieldTaskID, approvalgate.FieldRespondedBy, approvalgate.FieldResponseNote:
			values[i] = new(sql.NullString)
		case approvalgate.FieldExpiresAt, approvalgate.FieldCreatedAt, approvalgate.FieldRespondedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalGate fields.
func (_m *ApprovalGate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvalgate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approvalgate.FieldTeamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team_id", values[i])
			} else if value.Valid {
				_m.TeamID = value.String
			}
		case approvalgate.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case approvalgate.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case approvalgate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = approvalgate.Status(value.String)
			}
		case approvalgate.FieldApprovers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field approvers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Approvers); err != nil {
					return fmt.Errorf("unmarshal field approvers: %w", err)
				}
			}
		case approvalgate.FieldRequestedByAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requested_by_agent", values[i])
			} else if value.Valid {
				_m.RequestedByAgent = new(string)
				*_m.RequestedByAgent = value.String
			}
		case approvalgate.FieldRequestedByUser:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requested_by_user", values[i])
			} else if value.Valid {
				_m.RequestedByUser = new(string)
				*_m.RequestedByUser = value.String
			}
		case approvalgate.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = new(string)
				*_m.TaskID = value.String
			}
		case approvalgate.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case approvalgate.FieldRespondedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field responded_by", values[i])
			} else if value.Valid {
				_m.RespondedBy = new(string)
				*_m.RespondedBy = value.String
			}
		case approvalgate.FieldResponseNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_note", values[i])
			} else if value.Valid {
				_m.ResponseNote = new(string)
				*_m.ResponseNote = value.String
			}
		case approvalgate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case approvalgate.FieldRespondedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field responded_at", values[i])
			} else if value.Valid {
				_m.RespondedAt = new(time.Time)
				*_m.RespondedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalGate.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalGate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ApprovalGate.
// Note that you need to call ApprovalGate.Unwrap() before calling this method if this ApprovalGate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalGate) Update() *ApprovalGateUpdateOne {
	return NewApprovalGateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalGate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalGate) Unwrap() *ApprovalGate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalGate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalGate) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalGate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("team_id=")
	builder.WriteString(_m.TeamID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("approvers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Approvers))
	builder.WriteString(", ")
	if v := _m.RequestedByAgent; v != nil {
		builder.WriteString("requested_by_agent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RequestedByUser; v != nil {
		builder.WriteString("requested_by_user=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TaskID; v != nil {
		builder.WriteString("task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RespondedBy; v != nil {
		builder.WriteString("responded_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResponseNote; v != nil {
		builder.WriteString("response_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RespondedAt; v != nil {
		builder.WriteString("responded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ApprovalGates is a parsable slice of ApprovalGate.
type ApprovalGates []*ApprovalGate
