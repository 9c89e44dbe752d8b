// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductor-hq/conductor/ent/resourcelock"
)

// ResourceLock is the model entity for the ResourceLock schema.
type ResourceLock struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ResourceType holds the value of the "resource_type" field.
	ResourceType string `json:"resource_type,omitempty"`
	// ResourceID holds the value of the "resource_id" field.
	ResourceID string `json:"resource_id,omitempty"`
	// OwnerAgent holds the value of the "owner_agent" field.
	OwnerAgent string `json:"owner_agent,omitempty"`
	// Status holds the value of the "status" field.
	Status resourcelock.Status `json:"status,omitempty"`
	// ConflictStrategy holds the value of the "conflict_strategy" field.
	ConflictStrategy resourcelock.ConflictStrategy `json:"conflict_strategy,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash *string `json:"content_hash,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// AcquiredAt holds the value of the "acquired_at" field.
	AcquiredAt time.Time `json:"acquired_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// ReleasedAt holds the value of the "released_at" field.
	ReleasedAt   *time.Time `json:"released_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResourceLock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resourcelock.FieldVersion:
			values[i] = new(sql.NullInt64)
		case resourcelock.FieldID, resourcelock.FieldResourceType, resourcelock.FieldResourceID, resourcelock.FieldOwnerAgent, resourcelock.FieldStatus, resourcelock.FieldConflictStrategy, resourcelock.FieldContentHash:
			values[i] = new(sql.NullString)
		case resourcelock.FieldAcquiredAt, resourcelock.FieldExpiresAt, resourcelock.FieldReleasedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResourceLock fields.
func (_m *ResourceLock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resourcelock.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case resourcelock.FieldResourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_type", values[i])
			} else if value.Valid {
				_m.ResourceType = value.String
			}
		case resourcelock.FieldResourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_id", values[i])
			} else if value.Valid {
				_m.ResourceID = value.String
			}
		case resourcelock.FieldOwnerAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_agent", values[i])
			} else if value.Valid {
				_m.OwnerAgent = value.String
			}
		case resourcelock.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = resourcelock.Status(value.String)
			}
		case resourcelock.FieldConflictStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_strategy", values[i])
			} else if value.Valid {
				_m.ConflictStrategy = resourcelock.ConflictStrategy(value.String)
			}
		case resourcelock.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = new(string)
				*_m.ContentHash = value.String
			}
		case resourcelock.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case resourcelock.FieldAcquiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acquired_at", values[i])
			} else if value.Valid {
				_m.AcquiredAt = value.Time
			}
		case resourcelock.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case resourcelock.FieldReleasedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field released_at", values[i])
			} else if value.Valid {
				_m.ReleasedAt = new(time.Time)
				*_m.ReleasedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResourceLock.
// This includes values selected through modifiers, order, etc.
func (_m *ResourceLock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResourceLock.
// Note that you need to call ResourceLock.Unwrap() before calling this method if this ResourceLock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResourceLock) Update() *ResourceLockUpdateOne {
	return NewResourceLockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResourceLock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResourceLock) Unwrap() *ResourceLock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResourceLock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResourceLock) String() string {
	var builder strings.Builder
	builder.WriteString("ResourceLock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("resource_type=")
	builder.WriteString(_m.ResourceType)
	builder.WriteString(", ")
	builder.WriteString("resource_id=")
	builder.WriteString(_m.ResourceID)
	builder.WriteString(", ")
	builder.WriteString("owner_agent=")
	builder.WriteString(_m.OwnerAgent)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("conflict_strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConflictStrategy))
	builder.WriteString(", ")
	if v := _m.ContentHash; v != nil {
		builder.WriteString("content_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("acquired_at=")
	builder.WriteString(_m.AcquiredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReleasedAt; v != nil {
		builder.WriteString("released_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ResourceLocks is a parsable slice of ResourceLock.
type ResourceLocks []*ResourceLock
