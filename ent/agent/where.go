// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conductor-hq/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldExternalID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDisplayName, v))
}

// EndpointURL applies equality check predicate on the "endpoint_url" field. It's identical to EndpointURLEQ.
func EndpointURL(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldEndpointURL, v))
}

// MaxConcurrent applies equality check predicate on the "max_concurrent" field. It's identical to MaxConcurrentEQ.
func MaxConcurrent(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldMaxConcurrent, v))
}

// WsConnected applies equality check predicate on the "ws_connected" field. It's identical to WsConnectedEQ.
func WsConnected(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldWsConnected, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastHeartbeat, v))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTeamID, v))
}

// RegisteredBy applies equality check predicate on the "registered_by" field. It's identical to RegisteredByEQ.
func RegisteredBy(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRegisteredBy, v))
}

// AuthSecretHash applies equality check predicate on the "auth_secret_hash" field. It's identical to AuthSecretHashEQ.
func AuthSecretHash(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAuthSecretHash, v))
}

// AuthSecretCiphertext applies equality check predicate on the "auth_secret_ciphertext" field. It's identical to AuthSecretCiphertextEQ.
func AuthSecretCiphertext(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAuthSecretCiphertext, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDeletedAt, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldExternalID, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldDisplayName, v))
}

// EndpointURLEQ applies the EQ predicate on the "endpoint_url" field.
func EndpointURLEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldEndpointURL, v))
}

// EndpointURLNEQ applies the NEQ predicate on the "endpoint_url" field.
func EndpointURLNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldEndpointURL, v))
}

// EndpointURLIn applies the In predicate on the "endpoint_url" field.
func EndpointURLIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldEndpointURL, vs...))
}

// EndpointURLNotIn applies the NotIn predicate on the "endpoint_url" field.
func EndpointURLNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldEndpointURL, vs...))
}

// EndpointURLGT applies the GT predicate on the "endpoint_url" field.
func EndpointURLGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldEndpointURL, v))
}

// EndpointURLGTE applies the GTE predicate on the "endpoint_url" field.
func EndpointURLGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldEndpointURL, v))
}

// EndpointURLLT applies the LT predicate on the "endpoint_url" field.
func EndpointURLLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldEndpointURL, v))
}

// EndpointURLLTE applies the LTE predicate on the "endpoint_url" field.
func EndpointURLLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldEndpointURL, v))
}

// EndpointURLContains applies the Contains predicate on the "endpoint_url" field.
func EndpointURLContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldEndpointURL, v))
}

// EndpointURLHasPrefix applies the HasPrefix predicate on the "endpoint_url" field.
func EndpointURLHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldEndpointURL, v))
}

// EndpointURLHasSuffix applies the HasSuffix predicate on the "endpoint_url" field.
func EndpointURLHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldEndpointURL, v))
}

// EndpointURLEqualFold applies the EqualFold predicate on the "endpoint_url" field.
func EndpointURLEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldEndpointURL, v))
}

// EndpointURLContainsFold applies the ContainsFold predicate on the "endpoint_url" field.
func EndpointURLContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldEndpointURL, v))
}

// MaxConcurrentEQ applies the EQ predicate on the "max_concurrent" field.
func MaxConcurrentEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldMaxConcurrent, v))
}

// MaxConcurrentNEQ applies the NEQ predicate on the "max_concurrent" field.
func MaxConcurrentNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldMaxConcurrent, v))
}

// MaxConcurrentIn applies the In predicate on the "max_concurrent" field.
func MaxConcurrentIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldMaxConcurrent, vs...))
}

// MaxConcurrentNotIn applies the NotIn predicate on the "max_concurrent" field.
func MaxConcurrentNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldMaxConcurrent, vs...))
}

// MaxConcurrentGT applies the GT predicate on the "max_concurrent" field.
func MaxConcurrentGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldMaxConcurrent, v))
}

// MaxConcurrentGTE applies the GTE predicate on the "max_concurrent" field.
func MaxConcurrentGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldMaxConcurrent, v))
}

// MaxConcurrentLT applies the LT predicate on the "max_concurrent" field.
func MaxConcurrentLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldMaxConcurrent, v))
}

// MaxConcurrentLTE applies the LTE predicate on the "max_concurrent" field.
func MaxConcurrentLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldMaxConcurrent, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStatus, vs...))
}

// WsConnectedEQ applies the EQ predicate on the "ws_connected" field.
func WsConnectedEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldWsConnected, v))
}

// WsConnectedNEQ applies the NEQ predicate on the "ws_connected" field.
func WsConnectedNEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldWsConnected, v))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastHeartbeat, v))
}

// LastHeartbeatIsNil applies the IsNil predicate on the "last_heartbeat" field.
func LastHeartbeatIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLastHeartbeat))
}

// LastHeartbeatNotNil applies the NotNil predicate on the "last_heartbeat" field.
func LastHeartbeatNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLastHeartbeat))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDIsNil applies the IsNil predicate on the "team_id" field.
func TeamIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldTeamID))
}

// TeamIDNotNil applies the NotNil predicate on the "team_id" field.
func TeamIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldTeamID))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldTeamID, v))
}

// RegisteredByEQ applies the EQ predicate on the "registered_by" field.
func RegisteredByEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRegisteredBy, v))
}

// RegisteredByNEQ applies the NEQ predicate on the "registered_by" field.
func RegisteredByNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldRegisteredBy, v))
}

// RegisteredByIn applies the In predicate on the "registered_by" field.
func RegisteredByIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldRegisteredBy, vs...))
}

// RegisteredByNotIn applies the NotIn predicate on the "registered_by" field.
func RegisteredByNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldRegisteredBy, vs...))
}

// RegisteredByGT applies the GT predicate on the "registered_by" field.
func RegisteredByGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldRegisteredBy, v))
}

// RegisteredByGTE applies the GTE predicate on the "registered_by" field.
func RegisteredByGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldRegisteredBy, v))
}

// RegisteredByLT applies the LT predicate on the "registered_by" field.
func RegisteredByLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldRegisteredBy, v))
}

// RegisteredByLTE applies the LTE predicate on the "registered_by" field.
func RegisteredByLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldRegisteredBy, v))
}

// RegisteredByContains applies the Contains predicate on the "registered_by" field.
func RegisteredByContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldRegisteredBy, v))
}

// RegisteredByHasPrefix applies the HasPrefix predicate on the "registered_by" field.
func RegisteredByHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldRegisteredBy, v))
}

// RegisteredByHasSuffix applies the HasSuffix predicate on the "registered_by" field.
func RegisteredByHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldRegisteredBy, v))
}

// RegisteredByEqualFold applies the EqualFold predicate on the "registered_by" field.
func RegisteredByEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldRegisteredBy, v))
}

// RegisteredByContainsFold applies the ContainsFold predicate on the "registered_by" field.
func RegisteredByContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldRegisteredBy, v))
}

// AuthSecretHashEQ applies the EQ predicate on the "auth_secret_hash" field.
func AuthSecretHashEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAuthSecretHash, v))
}

// AuthSecretHashNEQ applies the NEQ predicate on the "auth_secret_hash" field.
func AuthSecretHashNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAuthSecretHash, v))
}

// AuthSecretHashIn applies the In predicate on the "auth_secret_hash" field.
func AuthSecretHashIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAuthSecretHash, vs...))
}

// AuthSecretHashNotIn applies the NotIn predicate on the "auth_secret_hash" field.
func AuthSecretHashNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAuthSecretHash, vs...))
}

// AuthSecretHashGT applies the GT predicate on the "auth_secret_hash" field.
func AuthSecretHashGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldAuthSecretHash, v))
}

// AuthSecretHashGTE applies the GTE predicate on the "auth_secret_hash" field.
func AuthSecretHashGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldAuthSecretHash, v))
}

// AuthSecretHashLT applies the LT predicate on the "auth_secret_hash" field.
func AuthSecretHashLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldAuthSecretHash, v))
}

// AuthSecretHashLTE applies the LTE predicate on the "auth_secret_hash" field.
func AuthSecretHashLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldAuthSecretHash, v))
}

// AuthSecretHashContains applies the Contains predicate on the "auth_secret_hash" field.
func AuthSecretHashContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldAuthSecretHash, v))
}

// AuthSecretHashHasPrefix applies the HasPrefix predicate on the "auth_secret_hash" field.
func AuthSecretHashHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldAuthSecretHash, v))
}

// AuthSecretHashHasSuffix applies the HasSuffix predicate on the "auth_secret_hash" field.
func AuthSecretHashHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldAuthSecretHash, v))
}

// AuthSecretHashEqualFold applies the EqualFold predicate on the "auth_secret_hash" field.
func AuthSecretHashEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldAuthSecretHash, v))
}

// AuthSecretHashContainsFold applies the ContainsFold predicate on the "auth_secret_hash" field.
func AuthSecretHashContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldAuthSecretHash, v))
}

// AuthSecretCiphertextEQ applies the EQ predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAuthSecretCiphertext, v))
}

// AuthSecretCiphertextNEQ applies the NEQ predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAuthSecretCiphertext, v))
}

// AuthSecretCiphertextIn applies the In predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAuthSecretCiphertext, vs...))
}

// AuthSecretCiphertextNotIn applies the NotIn predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAuthSecretCiphertext, vs...))
}

// AuthSecretCiphertextGT applies the GT predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldAuthSecretCiphertext, v))
}

// AuthSecretCiphertextGTE applies the GTE predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldAuthSecretCiphertext, v))
}

// AuthSecretCiphertextLT applies the LT predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldAuthSecretCiphertext, v))
}

// AuthSecretCiphertextLTE applies the LTE predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldAuthSecretCiphertext, v))
}

// AuthSecretCiphertextContains applies the Contains predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldAuthSecretCiphertext, v))
}

// AuthSecretCiphertextHasPrefix applies the HasPrefix predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldAuthSecretCiphertext, v))
}

// AuthSecretCiphertextHasSuffix applies the HasSuffix predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldAuthSecretCiphertext, v))
}

// AuthSecretCiphertextIsNil applies the IsNil predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldAuthSecretCiphertext))
}

// AuthSecretCiphertextNotNil applies the NotNil predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldAuthSecretCiphertext))
}

// AuthSecretCiphertextEqualFold applies the EqualFold predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldAuthSecretCiphertext, v))
}

// AuthSecretCiphertextContainsFold applies the ContainsFold predicate on the "auth_secret_ciphertext" field.
func AuthSecretCiphertextContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldAuthSecretCiphertext, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldDeletedAt))
}

// HasVersions applies the HasEdge predicate on the "versions" edge.
func HasVersions() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVersionsWith applies the HasEdge predicate on the "versions" edge with a given conditions (other predicates).
func HasVersionsWith(preds ...predicate.AgentVersion) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
