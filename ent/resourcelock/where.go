// Code generated by ent, DO NOT EDIT.

package resourcelock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/conductor-hq/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContainsFold(FieldID, id))
}

// ResourceType applies equality check predicate on the "resource_type" field. It's identical to ResourceTypeEQ.
func ResourceType(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldResourceType, v))
}

// ResourceID applies equality check predicate on the "resource_id" field. It's identical to ResourceIDEQ.
func ResourceID(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldResourceID, v))
}

// OwnerAgent applies equality check predicate on the "owner_agent" field. It's identical to OwnerAgentEQ.
func OwnerAgent(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldOwnerAgent, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldContentHash, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldVersion, v))
}

// AcquiredAt applies equality check predicate on the "acquired_at" field. It's identical to AcquiredAtEQ.
func AcquiredAt(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldExpiresAt, v))
}

// ReleasedAt applies equality check predicate on the "released_at" field. It's identical to ReleasedAtEQ.
func ReleasedAt(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldReleasedAt, v))
}

// ResourceTypeEQ applies the EQ predicate on the "resource_type" field.
func ResourceTypeEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldResourceType, v))
}

// ResourceTypeNEQ applies the NEQ predicate on the "resource_type" field.
func ResourceTypeNEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldResourceType, v))
}

// ResourceTypeIn applies the In predicate on the "resource_type" field.
func ResourceTypeIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldResourceType, vs...))
}

// ResourceTypeNotIn applies the NotIn predicate on the "resource_type" field.
func ResourceTypeNotIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldResourceType, vs...))
}

// ResourceTypeGT applies the GT predicate on the "resource_type" field.
func ResourceTypeGT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldResourceType, v))
}

// ResourceTypeGTE applies the GTE predicate on the "resource_type" field.
func ResourceTypeGTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldResourceType, v))
}

// ResourceTypeLT applies the LT predicate on the "resource_type" field.
func ResourceTypeLT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldResourceType, v))
}

// ResourceTypeLTE applies the LTE predicate on the "resource_type" field.
func ResourceTypeLTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldResourceType, v))
}

// ResourceTypeContains applies the Contains predicate on the "resource_type" field.
func ResourceTypeContains(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContains(FieldResourceType, v))
}

// ResourceTypeHasPrefix applies the HasPrefix predicate on the "resource_type" field.
func ResourceTypeHasPrefix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasPrefix(FieldResourceType, v))
}

// ResourceTypeHasSuffix applies the HasSuffix predicate on the "resource_type" field.
func ResourceTypeHasSuffix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasSuffix(FieldResourceType, v))
}

// ResourceTypeEqualFold applies the EqualFold predicate on the "resource_type" field.
func ResourceTypeEqualFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEqualFold(FieldResourceType, v))
}

// ResourceTypeContainsFold applies the ContainsFold predicate on the "resource_type" field.
func ResourceTypeContainsFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContainsFold(FieldResourceType, v))
}

// ResourceIDEQ applies the EQ predicate on the "resource_id" field.
func ResourceIDEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldResourceID, v))
}

// ResourceIDNEQ applies the NEQ predicate on the "resource_id" field.
func ResourceIDNEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldResourceID, v))
}

// ResourceIDIn applies the In predicate on the "resource_id" field.
func ResourceIDIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldResourceID, vs...))
}

// ResourceIDNotIn applies the NotIn predicate on the "resource_id" field.
func ResourceIDNotIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldResourceID, vs...))
}

// ResourceIDGT applies the GT predicate on the "resource_id" field.
func ResourceIDGT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldResourceID, v))
}

// ResourceIDGTE applies the GTE predicate on the "resource_id" field.
func ResourceIDGTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldResourceID, v))
}

// ResourceIDLT applies the LT predicate on the "resource_id" field.
func ResourceIDLT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldResourceID, v))
}

// ResourceIDLTE applies the LTE predicate on the "resource_id" field.
func ResourceIDLTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldResourceID, v))
}

// ResourceIDContains applies the Contains predicate on the "resource_id" field.
func ResourceIDContains(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContains(FieldResourceID, v))
}

// ResourceIDHasPrefix applies the HasPrefix predicate on the "resource_id" field.
func ResourceIDHasPrefix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasPrefix(FieldResourceID, v))
}

// ResourceIDHasSuffix applies the HasSuffix predicate on the "resource_id" field.
func ResourceIDHasSuffix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasSuffix(FieldResourceID, v))
}

// ResourceIDEqualFold applies the EqualFold predicate on the "resource_id" field.
func ResourceIDEqualFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEqualFold(FieldResourceID, v))
}

// ResourceIDContainsFold applies the ContainsFold predicate on the "resource_id" field.
func ResourceIDContainsFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContainsFold(FieldResourceID, v))
}

// OwnerAgentEQ applies the EQ predicate on the "owner_agent" field.
func OwnerAgentEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldOwnerAgent, v))
}

// OwnerAgentNEQ applies the NEQ predicate on the "owner_agent" field.
func OwnerAgentNEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldOwnerAgent, v))
}

// OwnerAgentIn applies the In predicate on the "owner_agent" field.
func OwnerAgentIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldOwnerAgent, vs...))
}

// OwnerAgentNotIn applies the NotIn predicate on the "owner_agent" field.
func OwnerAgentNotIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldOwnerAgent, vs...))
}

// OwnerAgentGT applies the GT predicate on the "owner_agent" field.
func OwnerAgentGT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldOwnerAgent, v))
}

// OwnerAgentGTE applies the GTE predicate on the "owner_agent" field.
func OwnerAgentGTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldOwnerAgent, v))
}

// OwnerAgentLT applies the LT predicate on the "owner_agent" field.
func OwnerAgentLT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldOwnerAgent, v))
}

// OwnerAgentLTE applies the LTE predicate on the "owner_agent" field.
func OwnerAgentLTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldOwnerAgent, v))
}

// OwnerAgentContains applies the Contains predicate on the "owner_agent" field.
func OwnerAgentContains(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContains(FieldOwnerAgent, v))
}

// OwnerAgentHasPrefix applies the HasPrefix predicate on the "owner_agent" field.
func OwnerAgentHasPrefix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasPrefix(FieldOwnerAgent, v))
}

// OwnerAgentHasSuffix applies the HasSuffix predicate on the "owner_agent" field.
func OwnerAgentHasSuffix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasSuffix(FieldOwnerAgent, v))
}

// OwnerAgentEqualFold applies the EqualFold predicate on the "owner_agent" field.
func OwnerAgentEqualFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEqualFold(FieldOwnerAgent, v))
}

// OwnerAgentContainsFold applies the ContainsFold predicate on the "owner_agent" field.
func OwnerAgentContainsFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContainsFold(FieldOwnerAgent, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldStatus, vs...))
}

// ConflictStrategyEQ applies the EQ predicate on the "conflict_strategy" field.
func ConflictStrategyEQ(v ConflictStrategy) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldConflictStrategy, v))
}

// ConflictStrategyNEQ applies the NEQ predicate on the "conflict_strategy" field.
func ConflictStrategyNEQ(v ConflictStrategy) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldConflictStrategy, v))
}

// ConflictStrategyIn applies the In predicate on the "conflict_strategy" field.
func ConflictStrategyIn(vs ...ConflictStrategy) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldConflictStrategy, vs...))
}

// ConflictStrategyNotIn applies the NotIn predicate on the "conflict_strategy" field.
func ConflictStrategyNotIn(vs ...ConflictStrategy) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldConflictStrategy, vs...))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotNull(FieldContentHash))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContainsFold(FieldContentHash, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldVersion, v))
}

// AcquiredAtEQ applies the EQ predicate on the "acquired_at" field.
func AcquiredAtEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// AcquiredAtNEQ applies the NEQ predicate on the "acquired_at" field.
func AcquiredAtNEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldAcquiredAt, v))
}

// AcquiredAtIn applies the In predicate on the "acquired_at" field.
func AcquiredAtIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldAcquiredAt, vs...))
}

// AcquiredAtNotIn applies the NotIn predicate on the "acquired_at" field.
func AcquiredAtNotIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldAcquiredAt, vs...))
}

// AcquiredAtGT applies the GT predicate on the "acquired_at" field.
func AcquiredAtGT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldAcquiredAt, v))
}

// AcquiredAtGTE applies the GTE predicate on the "acquired_at" field.
func AcquiredAtGTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldAcquiredAt, v))
}

// AcquiredAtLT applies the LT predicate on the "acquired_at" field.
func AcquiredAtLT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldAcquiredAt, v))
}

// AcquiredAtLTE applies the LTE predicate on the "acquired_at" field.
func AcquiredAtLTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldAcquiredAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldExpiresAt, v))
}

// ReleasedAtEQ applies the EQ predicate on the "released_at" field.
func ReleasedAtEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldReleasedAt, v))
}

// ReleasedAtNEQ applies the NEQ predicate on the "released_at" field.
func ReleasedAtNEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldReleasedAt, v))
}

// ReleasedAtIn applies the In predicate on the "released_at" field.
func ReleasedAtIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldReleasedAt, vs...))
}

// ReleasedAtNotIn applies the NotIn predicate on the "released_at" field.
func ReleasedAtNotIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldReleasedAt, vs...))
}

// ReleasedAtGT applies the GT predicate on the "released_at" field.
func ReleasedAtGT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldReleasedAt, v))
}

// ReleasedAtGTE applies the GTE predicate on the "released_at" field.
func ReleasedAtGTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldReleasedAt, v))
}

// ReleasedAtLT applies the LT predicate on the "released_at" field.
func ReleasedAtLT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldReleasedAt, v))
}

// ReleasedAtLTE applies the LTE predicate on the "released_at" field.
func ReleasedAtLTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldReleasedAt, v))
}

// ReleasedAtIsNil applies the IsNil predicate on the "released_at" field.
func ReleasedAtIsNil() predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIsNull(FieldReleasedAt))
}

// ReleasedAtNotNil applies the NotNil predicate on the "released_at" field.
func ReleasedAtNotNil() predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotNull(FieldReleasedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResourceLock) predicate.ResourceLock {
	return predicate.ResourceLock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResourceLock) predicate.ResourceLock {
	return predicate.ResourceLock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResourceLock) predicate.ResourceLock {
	return predicate.ResourceLock(sql.NotPredicates(p))
}
