// Code generated by ent, DO NOT EDIT.

package agentversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conductor-hq/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldAgentID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldVersion, v))
}

// Endpoint applies equality check predicate on the "endpoint" field. It's identical to EndpointEQ.
func Endpoint(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldEndpoint, v))
}

// TrafficPercent applies equality check predicate on the "traffic_percent" field. It's identical to TrafficPercentEQ.
func TrafficPercent(v int) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldTrafficPercent, v))
}

// ErrorRatePer1000 applies equality check predicate on the "error_rate_per_1000" field. It's identical to ErrorRatePer1000EQ.
func ErrorRatePer1000(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldErrorRatePer1000, v))
}

// ErrorThreshold applies equality check predicate on the "error_threshold" field. It's identical to ErrorThresholdEQ.
func ErrorThreshold(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldErrorThreshold, v))
}

// IsRollbackTarget applies equality check predicate on the "is_rollback_target" field. It's identical to IsRollbackTargetEQ.
func IsRollbackTarget(v bool) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldIsRollbackTarget, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldContainsFold(FieldAgentID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldContainsFold(FieldVersion, v))
}

// EndpointEQ applies the EQ predicate on the "endpoint" field.
func EndpointEQ(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldEndpoint, v))
}

// EndpointNEQ applies the NEQ predicate on the "endpoint" field.
func EndpointNEQ(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNEQ(FieldEndpoint, v))
}

// EndpointIn applies the In predicate on the "endpoint" field.
func EndpointIn(vs ...string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldIn(FieldEndpoint, vs...))
}

// EndpointNotIn applies the NotIn predicate on the "endpoint" field.
func EndpointNotIn(vs ...string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNotIn(FieldEndpoint, vs...))
}

// EndpointGT applies the GT predicate on the "endpoint" field.
func EndpointGT(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGT(FieldEndpoint, v))
}

// EndpointGTE applies the GTE predicate on the "endpoint" field.
func EndpointGTE(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGTE(FieldEndpoint, v))
}

// EndpointLT applies the LT predicate on the "endpoint" field.
func EndpointLT(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLT(FieldEndpoint, v))
}

// EndpointLTE applies the LTE predicate on the "endpoint" field.
func EndpointLTE(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLTE(FieldEndpoint, v))
}

// EndpointContains applies the Contains predicate on the "endpoint" field.
func EndpointContains(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldContains(FieldEndpoint, v))
}

// EndpointHasPrefix applies the HasPrefix predicate on the "endpoint" field.
func EndpointHasPrefix(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldHasPrefix(FieldEndpoint, v))
}

// EndpointHasSuffix applies the HasSuffix predicate on the "endpoint" field.
func EndpointHasSuffix(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldHasSuffix(FieldEndpoint, v))
}

// EndpointEqualFold applies the EqualFold predicate on the "endpoint" field.
func EndpointEqualFold(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEqualFold(FieldEndpoint, v))
}

// EndpointContainsFold applies the ContainsFold predicate on the "endpoint" field.
func EndpointContainsFold(v string) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldContainsFold(FieldEndpoint, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNotIn(FieldStatus, vs...))
}

// TrafficPercentEQ applies the EQ predicate on the "traffic_percent" field.
func TrafficPercentEQ(v int) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldTrafficPercent, v))
}

// TrafficPercentNEQ applies the NEQ predicate on the "traffic_percent" field.
func TrafficPercentNEQ(v int) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNEQ(FieldTrafficPercent, v))
}

// TrafficPercentIn applies the In predicate on the "traffic_percent" field.
func TrafficPercentIn(vs ...int) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldIn(FieldTrafficPercent, vs...))
}

// TrafficPercentNotIn applies the NotIn predicate on the "traffic_percent" field.
func TrafficPercentNotIn(vs ...int) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNotIn(FieldTrafficPercent, vs...))
}

// TrafficPercentGT applies the GT predicate on the "traffic_percent" field.
func TrafficPercentGT(v int) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGT(FieldTrafficPercent, v))
}

// TrafficPercentGTE applies the GTE predicate on the "traffic_percent" field.
func TrafficPercentGTE(v int) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGTE(FieldTrafficPercent, v))
}

// TrafficPercentLT applies the LT predicate on the "traffic_percent" field.
func TrafficPercentLT(v int) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLT(FieldTrafficPercent, v))
}

// TrafficPercentLTE applies the LTE predicate on the "traffic_percent" field.
func TrafficPercentLTE(v int) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLTE(FieldTrafficPercent, v))
}

// ErrorRatePer1000EQ applies the EQ predicate on the "error_rate_per_1000" field.
func ErrorRatePer1000EQ(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldErrorRatePer1000, v))
}

// ErrorRatePer1000NEQ applies the NEQ predicate on the "error_rate_per_1000" field.
func ErrorRatePer1000NEQ(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNEQ(FieldErrorRatePer1000, v))
}

// ErrorRatePer1000In applies the In predicate on the "error_rate_per_1000" field.
func ErrorRatePer1000In(vs ...float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldIn(FieldErrorRatePer1000, vs...))
}

// ErrorRatePer1000NotIn applies the NotIn predicate on the "error_rate_per_1000" field.
func ErrorRatePer1000NotIn(vs ...float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNotIn(FieldErrorRatePer1000, vs...))
}

// ErrorRatePer1000GT applies the GT predicate on the "error_rate_per_1000" field.
func ErrorRatePer1000GT(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGT(FieldErrorRatePer1000, v))
}

// ErrorRatePer1000GTE applies the GTE predicate on the "error_rate_per_1000" field.
func ErrorRatePer1000GTE(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGTE(FieldErrorRatePer1000, v))
}

// ErrorRatePer1000LT applies the LT predicate on the "error_rate_per_1000" field.
func ErrorRatePer1000LT(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLT(FieldErrorRatePer1000, v))
}

// ErrorRatePer1000LTE applies the LTE predicate on the "error_rate_per_1000" field.
func ErrorRatePer1000LTE(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLTE(FieldErrorRatePer1000, v))
}

// ErrorThresholdEQ applies the EQ predicate on the "error_threshold" field.
func ErrorThresholdEQ(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldErrorThreshold, v))
}

// ErrorThresholdNEQ applies the NEQ predicate on the "error_threshold" field.
func ErrorThresholdNEQ(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNEQ(FieldErrorThreshold, v))
}

// ErrorThresholdIn applies the In predicate on the "error_threshold" field.
func ErrorThresholdIn(vs ...float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldIn(FieldErrorThreshold, vs...))
}

// ErrorThresholdNotIn applies the NotIn predicate on the "error_threshold" field.
func ErrorThresholdNotIn(vs ...float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNotIn(FieldErrorThreshold, vs...))
}

// ErrorThresholdGT applies the GT predicate on the "error_threshold" field.
func ErrorThresholdGT(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGT(FieldErrorThreshold, v))
}

// ErrorThresholdGTE applies the GTE predicate on the "error_threshold" field.
func ErrorThresholdGTE(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGTE(FieldErrorThreshold, v))
}

// ErrorThresholdLT applies the LT predicate on the "error_threshold" field.
func ErrorThresholdLT(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLT(FieldErrorThreshold, v))
}

// ErrorThresholdLTE applies the LTE predicate on the "error_threshold" field.
func ErrorThresholdLTE(v float64) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLTE(FieldErrorThreshold, v))
}

// IsRollbackTargetEQ applies the EQ predicate on the "is_rollback_target" field.
func IsRollbackTargetEQ(v bool) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldIsRollbackTarget, v))
}

// IsRollbackTargetNEQ applies the NEQ predicate on the "is_rollback_target" field.
func IsRollbackTargetNEQ(v bool) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNEQ(FieldIsRollbackTarget, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentVersion {
	return predicate.AgentVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.AgentVersion {
	return predicate.AgentVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.AgentVersion {
	return predicate.AgentVersion(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentVersion) predicate.AgentVersion {
	return predicate.AgentVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentVersion) predicate.AgentVersion {
	return predicate.AgentVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentVersion) predicate.AgentVersion {
	return predicate.AgentVersion(sql.NotPredicates(p))
}
