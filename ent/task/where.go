// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/conductor-hq/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTeamID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// RequiredCapability applies equality check predicate on the "required_capability" field. It's identical to RequiredCapabilityEQ.
func RequiredCapability(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRequiredCapability, v))
}

// AssignedAgent applies equality check predicate on the "assigned_agent" field. It's identical to AssignedAgentEQ.
func AssignedAgent(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedAgent, v))
}

// CreatedByAgent applies equality check predicate on the "created_by_agent" field. It's identical to CreatedByAgentEQ.
func CreatedByAgent(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedByAgent, v))
}

// CreatedByUser applies equality check predicate on the "created_by_user" field. It's identical to CreatedByUserEQ.
func CreatedByUser(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedByUser, v))
}

// TimeoutMs applies equality check predicate on the "timeout_ms" field. It's identical to TimeoutMsEQ.
func TimeoutMs(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTimeoutMs, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRetryCount, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxRetries, v))
}

// ProgressCurrent applies equality check predicate on the "progress_current" field. It's identical to ProgressCurrentEQ.
func ProgressCurrent(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProgressCurrent, v))
}

// ProgressTotal applies equality check predicate on the "progress_total" field. It's identical to ProgressTotalEQ.
func ProgressTotal(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProgressTotal, v))
}

// ProgressMessage applies equality check predicate on the "progress_message" field. It's identical to ProgressMessageEQ.
func ProgressMessage(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProgressMessage, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldResult, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTeamID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriority, vs...))
}

// RequiredCapabilityEQ applies the EQ predicate on the "required_capability" field.
func RequiredCapabilityEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRequiredCapability, v))
}

// RequiredCapabilityNEQ applies the NEQ predicate on the "required_capability" field.
func RequiredCapabilityNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRequiredCapability, v))
}

// RequiredCapabilityIn applies the In predicate on the "required_capability" field.
func RequiredCapabilityIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRequiredCapability, vs...))
}

// RequiredCapabilityNotIn applies the NotIn predicate on the "required_capability" field.
func RequiredCapabilityNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRequiredCapability, vs...))
}

// RequiredCapabilityGT applies the GT predicate on the "required_capability" field.
func RequiredCapabilityGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRequiredCapability, v))
}

// RequiredCapabilityGTE applies the GTE predicate on the "required_capability" field.
func RequiredCapabilityGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRequiredCapability, v))
}

// RequiredCapabilityLT applies the LT predicate on the "required_capability" field.
func RequiredCapabilityLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRequiredCapability, v))
}

// RequiredCapabilityLTE applies the LTE predicate on the "required_capability" field.
func RequiredCapabilityLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRequiredCapability, v))
}

// RequiredCapabilityContains applies the Contains predicate on the "required_capability" field.
func RequiredCapabilityContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldRequiredCapability, v))
}

// RequiredCapabilityHasPrefix applies the HasPrefix predicate on the "required_capability" field.
func RequiredCapabilityHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldRequiredCapability, v))
}

// RequiredCapabilityHasSuffix applies the HasSuffix predicate on the "required_capability" field.
func RequiredCapabilityHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldRequiredCapability, v))
}

// RequiredCapabilityIsNil applies the IsNil predicate on the "required_capability" field.
func RequiredCapabilityIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldRequiredCapability))
}

// RequiredCapabilityNotNil applies the NotNil predicate on the "required_capability" field.
func RequiredCapabilityNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldRequiredCapability))
}

// RequiredCapabilityEqualFold applies the EqualFold predicate on the "required_capability" field.
func RequiredCapabilityEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldRequiredCapability, v))
}

// RequiredCapabilityContainsFold applies the ContainsFold predicate on the "required_capability" field.
func RequiredCapabilityContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldRequiredCapability, v))
}

// AssignedAgentEQ applies the EQ predicate on the "assigned_agent" field.
func AssignedAgentEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedAgent, v))
}

// AssignedAgentNEQ applies the NEQ predicate on the "assigned_agent" field.
func AssignedAgentNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAssignedAgent, v))
}

// AssignedAgentIn applies the In predicate on the "assigned_agent" field.
func AssignedAgentIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAssignedAgent, vs...))
}

// AssignedAgentNotIn applies the NotIn predicate on the "assigned_agent" field.
func AssignedAgentNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAssignedAgent, vs...))
}

// AssignedAgentGT applies the GT predicate on the "assigned_agent" field.
func AssignedAgentGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAssignedAgent, v))
}

// AssignedAgentGTE applies the GTE predicate on the "assigned_agent" field.
func AssignedAgentGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAssignedAgent, v))
}

// AssignedAgentLT applies the LT predicate on the "assigned_agent" field.
func AssignedAgentLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAssignedAgent, v))
}

// AssignedAgentLTE applies the LTE predicate on the "assigned_agent" field.
func AssignedAgentLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAssignedAgent, v))
}

// AssignedAgentContains applies the Contains predicate on the "assigned_agent" field.
func AssignedAgentContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldAssignedAgent, v))
}

// AssignedAgentHasPrefix applies the HasPrefix predicate on the "assigned_agent" field.
func AssignedAgentHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldAssignedAgent, v))
}

// AssignedAgentHasSuffix applies the HasSuffix predicate on the "assigned_agent" field.
func AssignedAgentHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldAssignedAgent, v))
}

// AssignedAgentIsNil applies the IsNil predicate on the "assigned_agent" field.
func AssignedAgentIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAssignedAgent))
}

// AssignedAgentNotNil applies the NotNil predicate on the "assigned_agent" field.
func AssignedAgentNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAssignedAgent))
}

// AssignedAgentEqualFold applies the EqualFold predicate on the "assigned_agent" field.
func AssignedAgentEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldAssignedAgent, v))
}

// AssignedAgentContainsFold applies the ContainsFold predicate on the "assigned_agent" field.
func AssignedAgentContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldAssignedAgent, v))
}

// CreatedByAgentEQ applies the EQ predicate on the "created_by_agent" field.
func CreatedByAgentEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedByAgent, v))
}

// CreatedByAgentNEQ applies the NEQ predicate on the "created_by_agent" field.
func CreatedByAgentNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedByAgent, v))
}

// CreatedByAgentIn applies the In predicate on the "created_by_agent" field.
func CreatedByAgentIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedByAgent, vs...))
}

// CreatedByAgentNotIn applies the NotIn predicate on the "created_by_agent" field.
func CreatedByAgentNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedByAgent, vs...))
}

// CreatedByAgentGT applies the GT predicate on the "created_by_agent" field.
func CreatedByAgentGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedByAgent, v))
}

// CreatedByAgentGTE applies the GTE predicate on the "created_by_agent" field.
func CreatedByAgentGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedByAgent, v))
}

// CreatedByAgentLT applies the LT predicate on the "created_by_agent" field.
func CreatedByAgentLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedByAgent, v))
}

// CreatedByAgentLTE applies the LTE predicate on the "created_by_agent" field.
func CreatedByAgentLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedByAgent, v))
}

// CreatedByAgentContains applies the Contains predicate on the "created_by_agent" field.
func CreatedByAgentContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCreatedByAgent, v))
}

// CreatedByAgentHasPrefix applies the HasPrefix predicate on the "created_by_agent" field.
func CreatedByAgentHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCreatedByAgent, v))
}

// CreatedByAgentHasSuffix applies the HasSuffix predicate on the "created_by_agent" field.
func CreatedByAgentHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCreatedByAgent, v))
}

// CreatedByAgentIsNil applies the IsNil predicate on the "created_by_agent" field.
func CreatedByAgentIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCreatedByAgent))
}

// CreatedByAgentNotNil applies the NotNil predicate on the "created_by_agent" field.
func CreatedByAgentNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCreatedByAgent))
}

// CreatedByAgentEqualFold applies the EqualFold predicate on the "created_by_agent" field.
func CreatedByAgentEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCreatedByAgent, v))
}

// CreatedByAgentContainsFold applies the ContainsFold predicate on the "created_by_agent" field.
func CreatedByAgentContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCreatedByAgent, v))
}

// CreatedByUserEQ applies the EQ predicate on the "created_by_user" field.
func CreatedByUserEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedByUser, v))
}

// CreatedByUserNEQ applies the NEQ predicate on the "created_by_user" field.
func CreatedByUserNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedByUser, v))
}

// CreatedByUserIn applies the In predicate on the "created_by_user" field.
func CreatedByUserIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedByUser, vs...))
}

// CreatedByUserNotIn applies the NotIn predicate on the "created_by_user" field.
func CreatedByUserNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedByUser, vs...))
}

// CreatedByUserGT applies the GT predicate on the "created_by_user" field.
func CreatedByUserGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedByUser, v))
}

// CreatedByUserGTE applies the GTE predicate on the "created_by_user" field.
func CreatedByUserGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedByUser, v))
}

// CreatedByUserLT applies the LT predicate on the "created_by_user" field.
func CreatedByUserLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedByUser, v))
}

// CreatedByUserLTE applies the LTE predicate on the "created_by_user" field.
func CreatedByUserLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedByUser, v))
}

// CreatedByUserContains applies the Contains predicate on the "created_by_user" field.
func CreatedByUserContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCreatedByUser, v))
}

// CreatedByUserHasPrefix applies the HasPrefix predicate on the "created_by_user" field.
func CreatedByUserHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCreatedByUser, v))
}

// CreatedByUserHasSuffix applies the HasSuffix predicate on the "created_by_user" field.
func CreatedByUserHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCreatedByUser, v))
}

// CreatedByUserIsNil applies the IsNil predicate on the "created_by_user" field.
func CreatedByUserIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCreatedByUser))
}

// CreatedByUserNotNil applies the NotNil predicate on the "created_by_user" field.
func CreatedByUserNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCreatedByUser))
}

// CreatedByUserEqualFold applies the EqualFold predicate on the "created_by_user" field.
func CreatedByUserEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCreatedByUser, v))
}

// CreatedByUserContainsFold applies the ContainsFold predicate on the "created_by_user" field.
func CreatedByUserContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCreatedByUser, v))
}

// InputMappingIsNil applies the IsNil predicate on the "input_mapping" field.
func InputMappingIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldInputMapping))
}

// InputMappingNotNil applies the NotNil predicate on the "input_mapping" field.
func InputMappingNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldInputMapping))
}

// TimeoutMsEQ applies the EQ predicate on the "timeout_ms" field.
func TimeoutMsEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTimeoutMs, v))
}

// TimeoutMsNEQ applies the NEQ predicate on the "timeout_ms" field.
func TimeoutMsNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTimeoutMs, v))
}

// TimeoutMsIn applies the In predicate on the "timeout_ms" field.
func TimeoutMsIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTimeoutMs, vs...))
}

// TimeoutMsNotIn applies the NotIn predicate on the "timeout_ms" field.
func TimeoutMsNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTimeoutMs, vs...))
}

// TimeoutMsGT applies the GT predicate on the "timeout_ms" field.
func TimeoutMsGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTimeoutMs, v))
}

// TimeoutMsGTE applies the GTE predicate on the "timeout_ms" field.
func TimeoutMsGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTimeoutMs, v))
}

// TimeoutMsLT applies the LT predicate on the "timeout_ms" field.
func TimeoutMsLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTimeoutMs, v))
}

// TimeoutMsLTE applies the LTE predicate on the "timeout_ms" field.
func TimeoutMsLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTimeoutMs, v))
}

// TimeoutMsIsNil applies the IsNil predicate on the "timeout_ms" field.
func TimeoutMsIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldTimeoutMs))
}

// TimeoutMsNotNil applies the NotNil predicate on the "timeout_ms" field.
func TimeoutMsNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldTimeoutMs))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRetryCount, v))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldMaxRetries, v))
}

// ProgressCurrentEQ applies the EQ predicate on the "progress_current" field.
func ProgressCurrentEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProgressCurrent, v))
}

// ProgressCurrentNEQ applies the NEQ predicate on the "progress_current" field.
func ProgressCurrentNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldProgressCurrent, v))
}

// ProgressCurrentIn applies the In predicate on the "progress_current" field.
func ProgressCurrentIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldProgressCurrent, vs...))
}

// ProgressCurrentNotIn applies the NotIn predicate on the "progress_current" field.
func ProgressCurrentNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldProgressCurrent, vs...))
}

// ProgressCurrentGT applies the GT predicate on the "progress_current" field.
func ProgressCurrentGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldProgressCurrent, v))
}

// ProgressCurrentGTE applies the GTE predicate on the "progress_current" field.
func ProgressCurrentGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldProgressCurrent, v))
}

// ProgressCurrentLT applies the LT predicate on the "progress_current" field.
func ProgressCurrentLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldProgressCurrent, v))
}

// ProgressCurrentLTE applies the LTE predicate on the "progress_current" field.
func ProgressCurrentLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldProgressCurrent, v))
}

// ProgressCurrentIsNil applies the IsNil predicate on the "progress_current" field.
func ProgressCurrentIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldProgressCurrent))
}

// ProgressCurrentNotNil applies the NotNil predicate on the "progress_current" field.
func ProgressCurrentNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldProgressCurrent))
}

// ProgressTotalEQ applies the EQ predicate on the "progress_total" field.
func ProgressTotalEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProgressTotal, v))
}

// ProgressTotalNEQ applies the NEQ predicate on the "progress_total" field.
func ProgressTotalNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldProgressTotal, v))
}

// ProgressTotalIn applies the In predicate on the "progress_total" field.
func ProgressTotalIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldProgressTotal, vs...))
}

// ProgressTotalNotIn applies the NotIn predicate on the "progress_total" field.
func ProgressTotalNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldProgressTotal, vs...))
}

// ProgressTotalGT applies the GT predicate on the "progress_total" field.
func ProgressTotalGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldProgressTotal, v))
}

// ProgressTotalGTE applies the GTE predicate on the "progress_total" field.
func ProgressTotalGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldProgressTotal, v))
}

// ProgressTotalLT applies the LT predicate on the "progress_total" field.
func ProgressTotalLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldProgressTotal, v))
}

// ProgressTotalLTE applies the LTE predicate on the "progress_total" field.
func ProgressTotalLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldProgressTotal, v))
}

// ProgressTotalIsNil applies the IsNil predicate on the "progress_total" field.
func ProgressTotalIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldProgressTotal))
}

// ProgressTotalNotNil applies the NotNil predicate on the "progress_total" field.
func ProgressTotalNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldProgressTotal))
}

// ProgressMessageEQ applies the EQ predicate on the "progress_message" field.
func ProgressMessageEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProgressMessage, v))
}

// ProgressMessageNEQ applies the NEQ predicate on the "progress_message" field.
func ProgressMessageNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldProgressMessage, v))
}

// ProgressMessageIn applies the In predicate on the "progress_message" field.
func ProgressMessageIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldProgressMessage, vs...))
}

// ProgressMessageNotIn applies the NotIn predicate on the "progress_message" field.
func ProgressMessageNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldProgressMessage, vs...))
}

// ProgressMessageGT applies the GT predicate on the "progress_message" field.
func ProgressMessageGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldProgressMessage, v))
}

// ProgressMessageGTE applies the GTE predicate on the "progress_message" field.
func ProgressMessageGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldProgressMessage, v))
}

// ProgressMessageLT applies the LT predicate on the "progress_message" field.
func ProgressMessageLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldProgressMessage, v))
}

// ProgressMessageLTE applies the LTE predicate on the "progress_message" field.
func ProgressMessageLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldProgressMessage, v))
}

// ProgressMessageContains applies the Contains predicate on the "progress_message" field.
func ProgressMessageContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldProgressMessage, v))
}

// ProgressMessageHasPrefix applies the HasPrefix predicate on the "progress_message" field.
func ProgressMessageHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldProgressMessage, v))
}

// ProgressMessageHasSuffix applies the HasSuffix predicate on the "progress_message" field.
func ProgressMessageHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldProgressMessage, v))
}

// ProgressMessageIsNil applies the IsNil predicate on the "progress_message" field.
func ProgressMessageIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldProgressMessage))
}

// ProgressMessageNotNil applies the NotNil predicate on the "progress_message" field.
func ProgressMessageNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldProgressMessage))
}

// ProgressMessageEqualFold applies the EqualFold predicate on the "progress_message" field.
func ProgressMessageEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldProgressMessage, v))
}

// ProgressMessageContainsFold applies the ContainsFold predicate on the "progress_message" field.
func ProgressMessageContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldProgressMessage, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldOutput))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldResult, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldResult))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldResult, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
