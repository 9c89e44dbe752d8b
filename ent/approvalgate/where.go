// Code generated by ent, DO NOT EDIT.

package approvalgate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/conductor-hq/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldID, id))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldTeamID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldDescription, v))
}

// RequestedByAgent applies equality check predicate on the "requested_by_agent" field. It's identical to RequestedByAgentEQ.
func RequestedByAgent(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldRequestedByAgent, v))
}

// RequestedByUser applies equality check predicate on the "requested_by_user" field. It's identical to RequestedByUserEQ.
func RequestedByUser(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldRequestedByUser, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldTaskID, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldExpiresAt, v))
}

// RespondedBy applies equality check predicate on the "responded_by" field. It's identical to RespondedByEQ.
func RespondedBy(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldRespondedBy, v))
}

// ResponseNote applies equality check predicate on the "response_note" field. It's identical to ResponseNoteEQ.
func ResponseNote(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldResponseNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldCreatedAt, v))
}

// RespondedAt applies equality check predicate on the "responded_at" field. It's identical to RespondedAtEQ.
func RespondedAt(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldRespondedAt, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldTeamID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldStatus, vs...))
}

// RequestedByAgentEQ applies the EQ predicate on the "requested_by_agent" field.
func RequestedByAgentEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldRequestedByAgent, v))
}

// RequestedByAgentNEQ applies the NEQ predicate on the "requested_by_agent" field.
func RequestedByAgentNEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldRequestedByAgent, v))
}

// RequestedByAgentIn applies the In predicate on the "requested_by_agent" field.
func RequestedByAgentIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldRequestedByAgent, vs...))
}

// RequestedByAgentNotIn applies the NotIn predicate on the "requested_by_agent" field.
func RequestedByAgentNotIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldRequestedByAgent, vs...))
}

// RequestedByAgentGT applies the GT predicate on the "requested_by_agent" field.
func RequestedByAgentGT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldRequestedByAgent, v))
}

// RequestedByAgentGTE applies the GTE predicate on the "requested_by_agent" field.
func RequestedByAgentGTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldRequestedByAgent, v))
}

// RequestedByAgentLT applies the LT predicate on the "requested_by_agent" field.
func RequestedByAgentLT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldRequestedByAgent, v))
}

// RequestedByAgentLTE applies the LTE predicate on the "requested_by_agent" field.
func RequestedByAgentLTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldRequestedByAgent, v))
}

// RequestedByAgentContains applies the Contains predicate on the "requested_by_agent" field.
func RequestedByAgentContains(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContains(FieldRequestedByAgent, v))
}

// RequestedByAgentHasPrefix applies the HasPrefix predicate on the "requested_by_agent" field.
func RequestedByAgentHasPrefix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasPrefix(FieldRequestedByAgent, v))
}

// RequestedByAgentHasSuffix applies the HasSuffix predicate on the "requested_by_agent" field.
func RequestedByAgentHasSuffix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasSuffix(FieldRequestedByAgent, v))
}

// RequestedByAgentIsNil applies the IsNil predicate on the "requested_by_agent" field.
func RequestedByAgentIsNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIsNull(FieldRequestedByAgent))
}

// RequestedByAgentNotNil applies the NotNil predicate on the "requested_by_agent" field.
func RequestedByAgentNotNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotNull(FieldRequestedByAgent))
}

// RequestedByAgentEqualFold applies the EqualFold predicate on the "requested_by_agent" field.
func RequestedByAgentEqualFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldRequestedByAgent, v))
}

// RequestedByAgentContainsFold applies the ContainsFold predicate on the "requested_by_agent" field.
func RequestedByAgentContainsFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldRequestedByAgent, v))
}

// RequestedByUserEQ applies the EQ predicate on the "requested_by_user" field.
func RequestedByUserEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldRequestedByUser, v))
}

// RequestedByUserNEQ applies the NEQ predicate on the "requested_by_user" field.
func RequestedByUserNEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldRequestedByUser, v))
}

// RequestedByUserIn applies the In predicate on the "requested_by_user" field.
func RequestedByUserIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldRequestedByUser, vs...))
}

// RequestedByUserNotIn applies the NotIn predicate on the "requested_by_user" field.
func RequestedByUserNotIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldRequestedByUser, vs...))
}

// RequestedByUserGT applies the GT predicate on the "requested_by_user" field.
func RequestedByUserGT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldRequestedByUser, v))
}

// RequestedByUserGTE applies the GTE predicate on the "requested_by_user" field.
func RequestedByUserGTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldRequestedByUser, v))
}

// RequestedByUserLT applies the LT predicate on the "requested_by_user" field.
func RequestedByUserLT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldRequestedByUser, v))
}

// RequestedByUserLTE applies the LTE predicate on the "requested_by_user" field.
func RequestedByUserLTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldRequestedByUser, v))
}

// RequestedByUserContains applies the Contains predicate on the "requested_by_user" field.
func RequestedByUserContains(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContains(FieldRequestedByUser, v))
}

// RequestedByUserHasPrefix applies the HasPrefix predicate on the "requested_by_user" field.
func RequestedByUserHasPrefix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasPrefix(FieldRequestedByUser, v))
}

// RequestedByUserHasSuffix applies the HasSuffix predicate on the "requested_by_user" field.
func RequestedByUserHasSuffix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasSuffix(FieldRequestedByUser, v))
}

// RequestedByUserIsNil applies the IsNil predicate on the "requested_by_user" field.
func RequestedByUserIsNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIsNull(FieldRequestedByUser))
}

// RequestedByUserNotNil applies the NotNil predicate on the "requested_by_user" field.
func RequestedByUserNotNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotNull(FieldRequestedByUser))
}

// RequestedByUserEqualFold applies the EqualFold predicate on the "requested_by_user" field.
func RequestedByUserEqualFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldRequestedByUser, v))
}

// RequestedByUserContainsFold applies the ContainsFold predicate on the "requested_by_user" field.
func RequestedByUserContainsFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldRequestedByUser, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldTaskID, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotNull(FieldExpiresAt))
}

// RespondedByEQ applies the EQ predicate on the "responded_by" field.
func RespondedByEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldRespondedBy, v))
}

// RespondedByNEQ applies the NEQ predicate on the "responded_by" field.
func RespondedByNEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldRespondedBy, v))
}

// RespondedByIn applies the In predicate on the "responded_by" field.
func RespondedByIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldRespondedBy, vs...))
}

// RespondedByNotIn applies the NotIn predicate on the "responded_by" field.
func RespondedByNotIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldRespondedBy, vs...))
}

// RespondedByGT applies the GT predicate on the "responded_by" field.
func RespondedByGT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldRespondedBy, v))
}

// RespondedByGTE applies the GTE predicate on the "responded_by" field.
func RespondedByGTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldRespondedBy, v))
}

// RespondedByLT applies the LT predicate on the "responded_by" field.
func RespondedByLT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldRespondedBy, v))
}

// RespondedByLTE applies the LTE predicate on the "responded_by" field.
func RespondedByLTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldRespondedBy, v))
}

// RespondedByContains applies the Contains predicate on the "responded_by" field.
func RespondedByContains(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContains(FieldRespondedBy, v))
}

// RespondedByHasPrefix applies the HasPrefix predicate on the "responded_by" field.
func RespondedByHasPrefix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasPrefix(FieldRespondedBy, v))
}

// RespondedByHasSuffix applies the HasSuffix predicate on the "responded_by" field.
func RespondedByHasSuffix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasSuffix(FieldRespondedBy, v))
}

// RespondedByIsNil applies the IsNil predicate on the "responded_by" field.
func RespondedByIsNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIsNull(FieldRespondedBy))
}

// RespondedByNotNil applies the NotNil predicate on the "responded_by" field.
func RespondedByNotNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotNull(FieldRespondedBy))
}

// RespondedByEqualFold applies the EqualFold predicate on the "responded_by" field.
func RespondedByEqualFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldRespondedBy, v))
}

// RespondedByContainsFold applies the ContainsFold predicate on the "responded_by" field.
func RespondedByContainsFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldRespondedBy, v))
}

// ResponseNoteEQ applies the EQ predicate on the "response_note" field.
func ResponseNoteEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldResponseNote, v))
}

// ResponseNoteNEQ applies the NEQ predicate on the "response_note" field.
func ResponseNoteNEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldResponseNote, v))
}

// ResponseNoteIn applies the In predicate on the "response_note" field.
func ResponseNoteIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldResponseNote, vs...))
}

// ResponseNoteNotIn applies the NotIn predicate on the "response_note" field.
func ResponseNoteNotIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldResponseNote, vs...))
}

// ResponseNoteGT applies the GT predicate on the "response_note" field.
func ResponseNoteGT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldResponseNote, v))
}

// ResponseNoteGTE applies the GTE predicate on the "response_note" field.
func ResponseNoteGTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldResponseNote, v))
}

// ResponseNoteLT applies the LT predicate on the "response_note" field.
func ResponseNoteLT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldResponseNote, v))
}

// ResponseNoteLTE applies the LTE predicate on the "response_note" field.
func ResponseNoteLTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldResponseNote, v))
}

// ResponseNoteContains applies the Contains predicate on the "response_note" field.
func ResponseNoteContains(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContains(FieldResponseNote, v))
}

// ResponseNoteHasPrefix applies the HasPrefix predicate on the "response_note" field.
func ResponseNoteHasPrefix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasPrefix(FieldResponseNote, v))
}

// ResponseNoteHasSuffix applies the HasSuffix predicate on the "response_note" field.
func ResponseNoteHasSuffix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasSuffix(FieldResponseNote, v))
}

// ResponseNoteIsNil applies the IsNil predicate on the "response_note" field.
func ResponseNoteIsNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIsNull(FieldResponseNote))
}

// ResponseNoteNotNil applies the NotNil predicate on the "response_note" field.
func ResponseNoteNotNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotNull(FieldResponseNote))
}

// ResponseNoteEqualFold applies the EqualFold predicate on the "response_note" field.
func ResponseNoteEqualFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldResponseNote, v))
}

// ResponseNoteContainsFold applies the ContainsFold predicate on the "response_note" field.
func ResponseNoteContainsFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldResponseNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldCreatedAt, v))
}

// RespondedAtEQ applies the EQ predicate on the "responded_at" field.
func RespondedAtEQ(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldRespondedAt, v))
}

// RespondedAtNEQ applies the NEQ predicate on the "responded_at" field.
func RespondedAtNEQ(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldRespondedAt, v))
}

// RespondedAtIn applies the In predicate on the "responded_at" field.
func RespondedAtIn(vs ...time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldRespondedAt, vs...))
}

// RespondedAtNotIn applies the NotIn predicate on the "responded_at" field.
func RespondedAtNotIn(vs ...time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldRespondedAt, vs...))
}

// RespondedAtGT applies the GT predicate on the "responded_at" field.
func RespondedAtGT(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldRespondedAt, v))
}

// RespondedAtGTE applies the GTE predicate on the "responded_at" field.
func RespondedAtGTE(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldRespondedAt, v))
}

// RespondedAtLT applies the LT predicate on the "responded_at" field.
func RespondedAtLT(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldRespondedAt, v))
}

// RespondedAtLTE applies the LTE predicate on the "responded_at" field.
func RespondedAtLTE(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldRespondedAt, v))
}

// RespondedAtIsNil applies the IsNil predicate on the "responded_at" field.
func RespondedAtIsNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIsNull(FieldRespondedAt))
}

// RespondedAtNotNil applies the NotNil predicate on the "responded_at" field.
func RespondedAtNotNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotNull(FieldRespondedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalGate) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalGate) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalGate) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.NotPredicates(p))
}
