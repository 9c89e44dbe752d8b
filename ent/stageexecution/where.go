// Code generated by ent, DO NOT EDIT.

package stageexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conductor-hq/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldRunID, v))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldAgentID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// ExecutionTimeMs applies equality check predicate on the "execution_time_ms" field. It's identical to ExecutionTimeMsEQ.
func ExecutionTimeMs(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldRunID, v))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStageID, vs...))
}

// StageIDGT applies the GT predicate on the "stage_id" field.
func StageIDGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldStageID, v))
}

// StageIDGTE applies the GTE predicate on the "stage_id" field.
func StageIDGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldStageID, v))
}

// StageIDLT applies the LT predicate on the "stage_id" field.
func StageIDLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldStageID, v))
}

// StageIDLTE applies the LTE predicate on the "stage_id" field.
func StageIDLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldStageID, v))
}

// StageIDContains applies the Contains predicate on the "stage_id" field.
func StageIDContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldStageID, v))
}

// StageIDHasPrefix applies the HasPrefix predicate on the "stage_id" field.
func StageIDHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldStageID, v))
}

// StageIDHasSuffix applies the HasSuffix predicate on the "stage_id" field.
func StageIDHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldStageID, v))
}

// StageIDEqualFold applies the EqualFold predicate on the "stage_id" field.
func StageIDEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldStageID, v))
}

// StageIDContainsFold applies the ContainsFold predicate on the "stage_id" field.
func StageIDContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldStageID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldAgentID, v))
}

// InputResolvedIsNil applies the IsNil predicate on the "input_resolved" field.
func InputResolvedIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldInputResolved))
}

// InputResolvedNotNil applies the NotNil predicate on the "input_resolved" field.
func InputResolvedNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldInputResolved))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldOutput))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldCompletedAt))
}

// ExecutionTimeMsEQ applies the EQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsEQ(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsNEQ applies the NEQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsNEQ(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIn applies the In predicate on the "execution_time_ms" field.
func ExecutionTimeMsIn(vs ...int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsNotIn applies the NotIn predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotIn(vs ...int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsGT applies the GT predicate on the "execution_time_ms" field.
func ExecutionTimeMsGT(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsGTE applies the GTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsGTE(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLT applies the LT predicate on the "execution_time_ms" field.
func ExecutionTimeMsLT(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLTE applies the LTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsLTE(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIsNil applies the IsNil predicate on the "execution_time_ms" field.
func ExecutionTimeMsIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldExecutionTimeMs))
}

// ExecutionTimeMsNotNil applies the NotNil predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldExecutionTimeMs))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.WorkflowRun) predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StageExecution) predicate.StageExecution {
	return predicate.StageExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StageExecution) predicate.StageExecution {
	return predicate.StageExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StageExecution) predicate.StageExecution {
	return predicate.StageExecution(sql.NotPredicates(p))
}
