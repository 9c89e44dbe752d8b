// Code generated by ent, DO NOT EDIT.

package team

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conductor-hq/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Team {
	return predicate.Team(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Team {
	return predicate.Team(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldName, v))
}

// OwnerUser applies equality check predicate on the "owner_user" field. It's identical to OwnerUserEQ.
func OwnerUser(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldOwnerUser, v))
}

// MaxAgents applies equality check predicate on the "max_agents" field. It's identical to MaxAgentsEQ.
func MaxAgents(v int) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldMaxAgents, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldCreatedAt, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldArchivedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Team {
	return predicate.Team(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Team {
	return predicate.Team(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Team {
	return predicate.Team(sql.FieldContainsFold(FieldName, v))
}

// OwnerUserEQ applies the EQ predicate on the "owner_user" field.
func OwnerUserEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldOwnerUser, v))
}

// OwnerUserNEQ applies the NEQ predicate on the "owner_user" field.
func OwnerUserNEQ(v string) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldOwnerUser, v))
}

// OwnerUserIn applies the In predicate on the "owner_user" field.
func OwnerUserIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldOwnerUser, vs...))
}

// OwnerUserNotIn applies the NotIn predicate on the "owner_user" field.
func OwnerUserNotIn(vs ...string) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldOwnerUser, vs...))
}

// OwnerUserGT applies the GT predicate on the "owner_user" field.
func OwnerUserGT(v string) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldOwnerUser, v))
}

// OwnerUserGTE applies the GTE predicate on the "owner_user" field.
func OwnerUserGTE(v string) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldOwnerUser, v))
}

// OwnerUserLT applies the LT predicate on the "owner_user" field.
func OwnerUserLT(v string) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldOwnerUser, v))
}

// OwnerUserLTE applies the LTE predicate on the "owner_user" field.
func OwnerUserLTE(v string) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldOwnerUser, v))
}

// OwnerUserContains applies the Contains predicate on the "owner_user" field.
func OwnerUserContains(v string) predicate.Team {
	return predicate.Team(sql.FieldContains(FieldOwnerUser, v))
}

// OwnerUserHasPrefix applies the HasPrefix predicate on the "owner_user" field.
func OwnerUserHasPrefix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasPrefix(FieldOwnerUser, v))
}

// OwnerUserHasSuffix applies the HasSuffix predicate on the "owner_user" field.
func OwnerUserHasSuffix(v string) predicate.Team {
	return predicate.Team(sql.FieldHasSuffix(FieldOwnerUser, v))
}

// OwnerUserEqualFold applies the EqualFold predicate on the "owner_user" field.
func OwnerUserEqualFold(v string) predicate.Team {
	return predicate.Team(sql.FieldEqualFold(FieldOwnerUser, v))
}

// OwnerUserContainsFold applies the ContainsFold predicate on the "owner_user" field.
func OwnerUserContainsFold(v string) predicate.Team {
	return predicate.Team(sql.FieldContainsFold(FieldOwnerUser, v))
}

// MaxAgentsEQ applies the EQ predicate on the "max_agents" field.
func MaxAgentsEQ(v int) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldMaxAgents, v))
}

// MaxAgentsNEQ applies the NEQ predicate on the "max_agents" field.
func MaxAgentsNEQ(v int) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldMaxAgents, v))
}

// MaxAgentsIn applies the In predicate on the "max_agents" field.
func MaxAgentsIn(vs ...int) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldMaxAgents, vs...))
}

// MaxAgentsNotIn applies the NotIn predicate on the "max_agents" field.
func MaxAgentsNotIn(vs ...int) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldMaxAgents, vs...))
}

// MaxAgentsGT applies the GT predicate on the "max_agents" field.
func MaxAgentsGT(v int) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldMaxAgents, v))
}

// MaxAgentsGTE applies the GTE predicate on the "max_agents" field.
func MaxAgentsGTE(v int) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldMaxAgents, v))
}

// MaxAgentsLT applies the LT predicate on the "max_agents" field.
func MaxAgentsLT(v int) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldMaxAgents, v))
}

// MaxAgentsLTE applies the LTE predicate on the "max_agents" field.
func MaxAgentsLTE(v int) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldMaxAgents, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldCreatedAt, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.Team {
	return predicate.Team(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.Team {
	return predicate.Team(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.Team {
	return predicate.Team(sql.FieldLTE(FieldArchivedAt, v))
}

// ArchivedAtIsNil applies the IsNil predicate on the "archived_at" field.
func ArchivedAtIsNil() predicate.Team {
	return predicate.Team(sql.FieldIsNull(FieldArchivedAt))
}

// ArchivedAtNotNil applies the NotNil predicate on the "archived_at" field.
func ArchivedAtNotNil() predicate.Team {
	return predicate.Team(sql.FieldNotNull(FieldArchivedAt))
}

// HasMembers applies the HasEdge predicate on the "members" edge.
func HasMembers() predicate.Team {
	return predicate.Team(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MembersTable, MembersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMembersWith applies the HasEdge predicate on the "members" edge with a given conditions (other predicates).
func HasMembersWith(preds ...predicate.TeamMember) predicate.Team {
	return predicate.Team(func(s *sql.Selector) {
		step := newMembersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Team) predicate.Team {
	return predicate.Team(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Team) predicate.Team {
	return predicate.Team(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Team) predicate.Team {
	return predicate.Team(sql.NotPredicates(p))
}
