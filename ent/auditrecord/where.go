// Code generated by ent, DO NOT EDIT.

package auditrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conductor-hq/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldRunID, v))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldStageID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldAgentID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldStatus, v))
}

// InputHash applies equality check predicate on the "input_hash" field. It's identical to InputHashEQ.
func InputHash(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldInputHash, v))
}

// OutputHash applies equality check predicate on the "output_hash" field. It's identical to OutputHashEQ.
func OutputHash(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldOutputHash, v))
}

// LoggedAt applies equality check predicate on the "logged_at" field. It's identical to LoggedAtEQ.
func LoggedAt(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldLoggedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContainsFold(FieldRunID, v))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldStageID, vs...))
}

// StageIDGT applies the GT predicate on the "stage_id" field.
func StageIDGT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldStageID, v))
}

// StageIDGTE applies the GTE predicate on the "stage_id" field.
func StageIDGTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldStageID, v))
}

// StageIDLT applies the LT predicate on the "stage_id" field.
func StageIDLT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldStageID, v))
}

// StageIDLTE applies the LTE predicate on the "stage_id" field.
func StageIDLTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldStageID, v))
}

// StageIDContains applies the Contains predicate on the "stage_id" field.
func StageIDContains(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContains(FieldStageID, v))
}

// StageIDHasPrefix applies the HasPrefix predicate on the "stage_id" field.
func StageIDHasPrefix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasPrefix(FieldStageID, v))
}

// StageIDHasSuffix applies the HasSuffix predicate on the "stage_id" field.
func StageIDHasSuffix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasSuffix(FieldStageID, v))
}

// StageIDEqualFold applies the EqualFold predicate on the "stage_id" field.
func StageIDEqualFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEqualFold(FieldStageID, v))
}

// StageIDContainsFold applies the ContainsFold predicate on the "stage_id" field.
func StageIDContainsFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContainsFold(FieldStageID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContainsFold(FieldAgentID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v Action) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v Action) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...Action) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...Action) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldAction, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContainsFold(FieldStatus, v))
}

// InputHashEQ applies the EQ predicate on the "input_hash" field.
func InputHashEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldInputHash, v))
}

// InputHashNEQ applies the NEQ predicate on the "input_hash" field.
func InputHashNEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldInputHash, v))
}

// InputHashIn applies the In predicate on the "input_hash" field.
func InputHashIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldInputHash, vs...))
}

// InputHashNotIn applies the NotIn predicate on the "input_hash" field.
func InputHashNotIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldInputHash, vs...))
}

// InputHashGT applies the GT predicate on the "input_hash" field.
func InputHashGT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldInputHash, v))
}

// InputHashGTE applies the GTE predicate on the "input_hash" field.
func InputHashGTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldInputHash, v))
}

// InputHashLT applies the LT predicate on the "input_hash" field.
func InputHashLT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldInputHash, v))
}

// InputHashLTE applies the LTE predicate on the "input_hash" field.
func InputHashLTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldInputHash, v))
}

// InputHashContains applies the Contains predicate on the "input_hash" field.
func InputHashContains(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContains(FieldInputHash, v))
}

// InputHashHasPrefix applies the HasPrefix predicate on the "input_hash" field.
func InputHashHasPrefix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasPrefix(FieldInputHash, v))
}

// InputHashHasSuffix applies the HasSuffix predicate on the "input_hash" field.
func InputHashHasSuffix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasSuffix(FieldInputHash, v))
}

// InputHashEqualFold applies the EqualFold predicate on the "input_hash" field.
func InputHashEqualFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEqualFold(FieldInputHash, v))
}

// InputHashContainsFold applies the ContainsFold predicate on the "input_hash" field.
func InputHashContainsFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContainsFold(FieldInputHash, v))
}

// OutputHashEQ applies the EQ predicate on the "output_hash" field.
func OutputHashEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldOutputHash, v))
}

// OutputHashNEQ applies the NEQ predicate on the "output_hash" field.
func OutputHashNEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldOutputHash, v))
}

// OutputHashIn applies the In predicate on the "output_hash" field.
func OutputHashIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldOutputHash, vs...))
}

// OutputHashNotIn applies the NotIn predicate on the "output_hash" field.
func OutputHashNotIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldOutputHash, vs...))
}

// OutputHashGT applies the GT predicate on the "output_hash" field.
func OutputHashGT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldOutputHash, v))
}

// OutputHashGTE applies the GTE predicate on the "output_hash" field.
func OutputHashGTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldOutputHash, v))
}

// OutputHashLT applies the LT predicate on the "output_hash" field.
func OutputHashLT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldOutputHash, v))
}

// OutputHashLTE applies the LTE predicate on the "output_hash" field.
func OutputHashLTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldOutputHash, v))
}

// OutputHashContains applies the Contains predicate on the "output_hash" field.
func OutputHashContains(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContains(FieldOutputHash, v))
}

// OutputHashHasPrefix applies the HasPrefix predicate on the "output_hash" field.
func OutputHashHasPrefix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasPrefix(FieldOutputHash, v))
}

// OutputHashHasSuffix applies the HasSuffix predicate on the "output_hash" field.
func OutputHashHasSuffix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasSuffix(FieldOutputHash, v))
}

// OutputHashIsNil applies the IsNil predicate on the "output_hash" field.
func OutputHashIsNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIsNull(FieldOutputHash))
}

// OutputHashNotNil applies the NotNil predicate on the "output_hash" field.
func OutputHashNotNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotNull(FieldOutputHash))
}

// OutputHashEqualFold applies the EqualFold predicate on the "output_hash" field.
func OutputHashEqualFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEqualFold(FieldOutputHash, v))
}

// OutputHashContainsFold applies the ContainsFold predicate on the "output_hash" field.
func OutputHashContainsFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContainsFold(FieldOutputHash, v))
}

// LoggedAtEQ applies the EQ predicate on the "logged_at" field.
func LoggedAtEQ(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldLoggedAt, v))
}

// LoggedAtNEQ applies the NEQ predicate on the "logged_at" field.
func LoggedAtNEQ(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldLoggedAt, v))
}

// LoggedAtIn applies the In predicate on the "logged_at" field.
func LoggedAtIn(vs ...time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldLoggedAt, vs...))
}

// LoggedAtNotIn applies the NotIn predicate on the "logged_at" field.
func LoggedAtNotIn(vs ...time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldLoggedAt, vs...))
}

// LoggedAtGT applies the GT predicate on the "logged_at" field.
func LoggedAtGT(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldLoggedAt, v))
}

// LoggedAtGTE applies the GTE predicate on the "logged_at" field.
func LoggedAtGTE(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldLoggedAt, v))
}

// LoggedAtLT applies the LT predicate on the "logged_at" field.
func LoggedAtLT(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldLoggedAt, v))
}

// LoggedAtLTE applies the LTE predicate on the "logged_at" field.
func LoggedAtLTE(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldLoggedAt, v))
}

// SignatureIsNil applies the IsNil predicate on the "signature" field.
func SignatureIsNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIsNull(FieldSignature))
}

// SignatureNotNil applies the NotNil predicate on the "signature" field.
func SignatureNotNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotNull(FieldSignature))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.AuditRecord {
	return predicate.AuditRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.WorkflowRun) predicate.AuditRecord {
	return predicate.AuditRecord(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditRecord) predicate.AuditRecord {
	return predicate.AuditRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditRecord) predicate.AuditRecord {
	return predicate.AuditRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditRecord) predicate.AuditRecord {
	return predicate.AuditRecord(sql.NotPredicates(p))
}
