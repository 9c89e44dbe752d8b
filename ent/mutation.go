// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductor-hq/conductor/ent/agent"
	"github.com/conductor-hq/conductor/ent/agentversion"
	"github.com/conductor-hq/conductor/ent/approvalgate"
	"github.com/conductor-hq/conductor/ent/auditrecord"
	"github.com/conductor-hq/conductor/ent/predicate"
	"github.com/conductor-hq/conductor/ent/resourcelock"
	"github.com/conductor-hq/conductor/ent/stageexecution"
	"github.com/conductor-hq/conductor/ent/task"
	"github.com/conductor-hq/conductor/ent/team"
	"github.com/conductor-hq/conductor/ent/teammember"
	"github.com/conductor-hq/conductor/ent/webhook"
	"github.com/conductor-hq/conductor/ent/webhookdelivery"
	"github.com/conductor-hq/conductor/ent/workflowrun"
	"github.com/conductor-hq/conductor/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent           = "Agent"
	TypeAgentVersion    = "AgentVersion"
	TypeApprovalGate    = "ApprovalGate"
	TypeAuditRecord     = "AuditRecord"
	TypeResourceLock    = "ResourceLock"
	TypeStageExecution  = "StageExecution"
	TypeTask            = "Task"
	TypeTeam            = "Team"
	TypeTeamMember      = "TeamMember"
	TypeWebhook         = "Webhook"
	TypeWebhookDelivery = "WebhookDelivery"
	TypeWorkflowRun     = "WorkflowRun"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	external_id            *string
	display_name           *string
	endpoint_url           *string
	capabilities           *[]string
	appendcapabilities     []string
	max_concurrent         *int
	addmax_concurrent      *int
	status                 *agent.Status
	ws_connected           *bool
	last_heartbeat         *time.Time
	team_id                *string
	registered_by          *string
	auth_secret_hash       *string
	auth_secret_ciphertext *string
	created_at             *time.Time
	deleted_at             *time.Time
	clearedFields          map[string]struct{}
	versions               map[string]struct{}
	removedversions        map[string]struct{}
	clearedversions        bool
	done                   bool
	oldValue               func(context.Context) (*Agent, error)
	predicates             []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalID sets the "external_id" field.
func (m *AgentMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *AgentMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *AgentMutation) ResetExternalID() {
	m.external_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *AgentMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *AgentMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *AgentMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetEndpointURL sets the "endpoint_url" field.
func (m *AgentMutation) SetEndpointURL(s string) {
	m.endpoint_url = &s
}

// EndpointURL returns the value of the "endpoint_url" field in the mutation.
func (m *AgentMutation) EndpointURL() (r string, exists bool) {
	v := m.endpoint_url
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpointURL returns the old "endpoint_url" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldEndpointURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpointURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpointURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpointURL: %w", err)
	}
	return oldValue.EndpointURL, nil
}

// ResetEndpointURL resets all changes to the "endpoint_url" field.
func (m *AgentMutation) ResetEndpointURL() {
	m.endpoint_url = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *AgentMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *AgentMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *AgentMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *AgentMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *AgentMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (m *AgentMutation) SetMaxConcurrent(i int) {
	m.max_concurrent = &i
	m.addmax_concurrent = nil
}

// MaxConcurrent returns the value of the "max_concurrent" field in the mutation.
func (m *AgentMutation) MaxConcurrent() (r int, exists bool) {
	v := m.max_concurrent
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxConcurrent returns the old "max_concurrent" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMaxConcurrent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxConcurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxConcurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxConcurrent: %w", err)
	}
	return oldValue.MaxConcurrent, nil
}

// AddMaxConcurrent adds i to the "max_concurrent" field.
func (m *AgentMutation) AddMaxConcurrent(i int) {
	if m.addmax_concurrent != nil {
		*m.addmax_concurrent += i
	} else {
		m.addmax_concurrent = &i
	}
}

// AddedMaxConcurrent returns the value that was added to the "max_concurrent" field in this mutation.
func (m *AgentMutation) AddedMaxConcurrent() (r int, exists bool) {
	v := m.addmax_concurrent
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxConcurrent resets all changes to the "max_concurrent" field.
func (m *AgentMutation) ResetMaxConcurrent() {
	m.max_concurrent = nil
	m.addmax_concurrent = nil
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetWsConnected sets the "ws_connected" field.
func (m *AgentMutation) SetWsConnected(b bool) {
	m.ws_connected = &b
}

// WsConnected returns the value of the "ws_connected" field in the mutation.
func (m *AgentMutation) WsConnected() (r bool, exists bool) {
	v := m.ws_connected
	if v == nil {
		return
	}
	return *v, true
}

// OldWsConnected returns the old "ws_connected" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldWsConnected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWsConnected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWsConnected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWsConnected: %w", err)
	}
	return oldValue.WsConnected, nil
}

// ResetWsConnected resets all changes to the "ws_connected" field.
func (m *AgentMutation) ResetWsConnected() {
	m.ws_connected = nil
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *AgentMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *AgentMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *AgentMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[agent.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *AgentMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *AgentMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, agent.FieldLastHeartbeat)
}

// SetTeamID sets the "team_id" field.
func (m *AgentMutation) SetTeamID(s string) {
	m.team_id = &s
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *AgentMutation) TeamID() (r string, exists bool) {
	v := m.team_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTeamID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ClearTeamID clears the value of the "team_id" field.
func (m *AgentMutation) ClearTeamID() {
	m.team_id = nil
	m.clearedFields[agent.FieldTeamID] = struct{}{}
}

// TeamIDCleared returns if the "team_id" field was cleared in this mutation.
func (m *AgentMutation) TeamIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldTeamID]
	return ok
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *AgentMutation) ResetTeamID() {
	m.team_id = nil
	delete(m.clearedFields, agent.FieldTeamID)
}

// SetRegisteredBy sets the "registered_by" field.
func (m *AgentMutation) SetRegisteredBy(s string) {
	m.registered_by = &s
}

// RegisteredBy returns the value of the "registered_by" field in the mutation.
func (m *AgentMutation) RegisteredBy() (r string, exists bool) {
	v := m.registered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRegisteredBy returns the old "registered_by" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRegisteredBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegisteredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegisteredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegisteredBy: %w", err)
	}
	return oldValue.RegisteredBy, nil
}

// ResetRegisteredBy resets all changes to the "registered_by" field.
func (m *AgentMutation) ResetRegisteredBy() {
	m.registered_by = nil
}

// SetAuthSecretHash sets the "auth_secret_hash" field.
func (m *AgentMutation) SetAuthSecretHash(s string) {
	m.auth_secret_hash = &s
}

// AuthSecretHash returns the value of the "auth_secret_hash" field in the mutation.
func (m *AgentMutation) AuthSecretHash() (r string, exists bool) {
	v := m.auth_secret_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthSecretHash returns the old "auth_secret_hash" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAuthSecretHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthSecretHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthSecretHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthSecretHash: %w", err)
	}
	return oldValue.AuthSecretHash, nil
}

// ResetAuthSecretHash resets all changes to the "auth_secret_hash" field.
func (m *AgentMutation) ResetAuthSecretHash() {
	m.auth_secret_hash = nil
}

// SetAuthSecretCiphertext sets the "auth_secret_ciphertext" field.
func (m *AgentMutation) SetAuthSecretCiphertext(s string) {
	m.auth_secret_ciphertext = &s
}

// AuthSecretCiphertext returns the value of the "auth_secret_ciphertext" field in the mutation.
func (m *AgentMutation) AuthSecretCiphertext() (r string, exists bool) {
	v := m.auth_secret_ciphertext
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthSecretCiphertext returns the old "auth_secret_ciphertext" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAuthSecretCiphertext(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthSecretCiphertext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthSecretCiphertext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthSecretCiphertext: %w", err)
	}
	return oldValue.AuthSecretCiphertext, nil
}

// ClearAuthSecretCiphertext clears the value of the "auth_secret_ciphertext" field.
func (m *AgentMutation) ClearAuthSecretCiphertext() {
	m.auth_secret_ciphertext = nil
	m.clearedFields[agent.FieldAuthSecretCiphertext] = struct{}{}
}

// AuthSecretCiphertextCleared returns if the "auth_secret_ciphertext" field was cleared in this mutation.
func (m *AgentMutation) AuthSecretCiphertextCleared() bool {
	_, ok := m.clearedFields[agent.FieldAuthSecretCiphertext]
	return ok
}

// ResetAuthSecretCiphertext resets all changes to the "auth_secret_ciphertext" field.
func (m *AgentMutation) ResetAuthSecretCiphertext() {
	m.auth_secret_ciphertext = nil
	delete(m.clearedFields, agent.FieldAuthSecretCiphertext)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *AgentMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *AgentMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *AgentMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[agent.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *AgentMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *AgentMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, agent.FieldDeletedAt)
}

// AddVersionIDs adds the "versions" edge to the AgentVersion entity by ids.
func (m *AgentMutation) AddVersionIDs(ids ...string) {
	if m.versions == nil {
		m.versions = make(map[string]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the AgentVersion entity.
func (m *AgentMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the AgentVersion entity was cleared.
func (m *AgentMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the AgentVersion entity by IDs.
func (m *AgentMutation) RemoveVersionIDs(ids ...string) {
	if m.removedversions == nil {
		m.removedversions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the AgentVersion entity.
func (m *AgentMutation) RemovedVersionsIDs() (ids []string) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *AgentMutation) VersionsIDs() (ids []string) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *AgentMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.external_id != nil {
		fields = append(fields, agent.FieldExternalID)
	}
	if m.display_name != nil {
		fields = append(fields, agent.FieldDisplayName)
	}
	if m.endpoint_url != nil {
		fields = append(fields, agent.FieldEndpointURL)
	}
	if m.capabilities != nil {
		fields = append(fields, agent.FieldCapabilities)
	}
	if m.max_concurrent != nil {
		fields = append(fields, agent.FieldMaxConcurrent)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.ws_connected != nil {
		fields = append(fields, agent.FieldWsConnected)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, agent.FieldLastHeartbeat)
	}
	if m.team_id != nil {
		fields = append(fields, agent.FieldTeamID)
	}
	if m.registered_by != nil {
		fields = append(fields, agent.FieldRegisteredBy)
	}
	if m.auth_secret_hash != nil {
		fields = append(fields, agent.FieldAuthSecretHash)
	}
	if m.auth_secret_ciphertext != nil {
		fields = append(fields, agent.FieldAuthSecretCiphertext)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, agent.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldExternalID:
		return m.ExternalID()
	case agent.FieldDisplayName:
		return m.DisplayName()
	case agent.FieldEndpointURL:
		return m.EndpointURL()
	case agent.FieldCapabilities:
		return m.Capabilities()
	case agent.FieldMaxConcurrent:
		return m.MaxConcurrent()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldWsConnected:
		return m.WsConnected()
	case agent.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case agent.FieldTeamID:
		return m.TeamID()
	case agent.FieldRegisteredBy:
		return m.RegisteredBy()
	case agent.FieldAuthSecretHash:
		return m.AuthSecretHash()
	case agent.FieldAuthSecretCiphertext:
		return m.AuthSecretCiphertext()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldExternalID:
		return m.OldExternalID(ctx)
	case agent.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case agent.FieldEndpointURL:
		return m.OldEndpointURL(ctx)
	case agent.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case agent.FieldMaxConcurrent:
		return m.OldMaxConcurrent(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldWsConnected:
		return m.OldWsConnected(ctx)
	case agent.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case agent.FieldTeamID:
		return m.OldTeamID(ctx)
	case agent.FieldRegisteredBy:
		return m.OldRegisteredBy(ctx)
	case agent.FieldAuthSecretHash:
		return m.OldAuthSecretHash(ctx)
	case agent.FieldAuthSecretCiphertext:
		return m.OldAuthSecretCiphertext(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case agent.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case agent.FieldEndpointURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpointURL(v)
		return nil
	case agent.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case agent.FieldMaxConcurrent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxConcurrent(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldWsConnected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWsConnected(v)
		return nil
	case agent.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case agent.FieldTeamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case agent.FieldRegisteredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegisteredBy(v)
		return nil
	case agent.FieldAuthSecretHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthSecretHash(v)
		return nil
	case agent.FieldAuthSecretCiphertext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthSecretCiphertext(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addmax_concurrent != nil {
		fields = append(fields, agent.FieldMaxConcurrent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldMaxConcurrent:
		return m.AddedMaxConcurrent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldMaxConcurrent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxConcurrent(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldLastHeartbeat) {
		fields = append(fields, agent.FieldLastHeartbeat)
	}
	if m.FieldCleared(agent.FieldTeamID) {
		fields = append(fields, agent.FieldTeamID)
	}
	if m.FieldCleared(agent.FieldAuthSecretCiphertext) {
		fields = append(fields, agent.FieldAuthSecretCiphertext)
	}
	if m.FieldCleared(agent.FieldDeletedAt) {
		fields = append(fields, agent.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	case agent.FieldTeamID:
		m.ClearTeamID()
		return nil
	case agent.FieldAuthSecretCiphertext:
		m.ClearAuthSecretCiphertext()
		return nil
	case agent.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldExternalID:
		m.ResetExternalID()
		return nil
	case agent.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case agent.FieldEndpointURL:
		m.ResetEndpointURL()
		return nil
	case agent.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case agent.FieldMaxConcurrent:
		m.ResetMaxConcurrent()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldWsConnected:
		m.ResetWsConnected()
		return nil
	case agent.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case agent.FieldTeamID:
		m.ResetTeamID()
		return nil
	case agent.FieldRegisteredBy:
		m.ResetRegisteredBy()
		return nil
	case agent.FieldAuthSecretHash:
		m.ResetAuthSecretHash()
		return nil
	case agent.FieldAuthSecretCiphertext:
		m.ResetAuthSecretCiphertext()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.versions != nil {
		edges = append(edges, agent.EdgeVersions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedversions != nil {
		edges = append(edges, agent.EdgeVersions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedversions {
		edges = append(edges, agent.EdgeVersions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeVersions:
		return m.clearedversions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeVersions:
		m.ResetVersions()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentVersionMutation represents an operation that mutates the AgentVersion nodes in the graph.
type AgentVersionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	version                *string
	endpoint               *string
	capabilities           *[]string
	appendcapabilities     []string
	status                 *agentversion.Status
	traffic_percent        *int
	addtraffic_percent     *int
	error_rate_per_1000    *float64
	adderror_rate_per_1000 *float64
	error_threshold        *float64
	adderror_threshold     *float64
	is_rollback_target     *bool
	created_at             *time.Time
	clearedFields          map[string]struct{}
	agent                  *string
	clearedagent           bool
	done                   bool
	oldValue               func(context.Context) (*AgentVersion, error)
	predicates             []predicate.AgentVersion
}

var _ ent.Mutation = (*AgentVersionMutation)(nil)

// agentversionOption allows management of the mutation configuration using functional options.
type agentversionOption func(*AgentVersionMutation)

// newAgentVersionMutation creates new mutation for the AgentVersion entity.
func newAgentVersionMutation(c config, op Op, opts ...agentversionOption) *AgentVersionMutation {
	m := &AgentVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentVersionID sets the ID field of the mutation.
func withAgentVersionID(id string) agentversionOption {
	return func(m *AgentVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentVersion
		)
		m.oldValue = func(ctx context.Context) (*AgentVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentVersion sets the old AgentVersion of the mutation.
func withAgentVersion(node *AgentVersion) agentversionOption {
	return func(m *AgentVersionMutation) {
		m.oldValue = func(context.Context) (*AgentVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentVersion entities.
func (m *AgentVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentVersionMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentVersionMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentVersion entity.
// If the AgentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentVersionMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentVersionMutation) ResetAgentID() {
	m.agent = nil
}

// SetVersion sets the "version" field.
func (m *AgentVersionMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *AgentVersionMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the AgentVersion entity.
// If the AgentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentVersionMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ResetVersion resets all changes to the "version" field.
func (m *AgentVersionMutation) ResetVersion() {
	m.version = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *AgentVersionMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *AgentVersionMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the AgentVersion entity.
// If the AgentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentVersionMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *AgentVersionMutation) ResetEndpoint() {
	m.endpoint = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *AgentVersionMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *AgentVersionMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the AgentVersion entity.
// If the AgentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentVersionMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *AgentVersionMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *AgentVersionMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *AgentVersionMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
}

// SetStatus sets the "status" field.
func (m *AgentVersionMutation) SetStatus(a agentversion.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentVersionMutation) Status() (r agentversion.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentVersion entity.
// If the AgentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentVersionMutation) OldStatus(ctx context.Context) (v agentversion.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentVersionMutation) ResetStatus() {
	m.status = nil
}

// SetTrafficPercent sets the "traffic_percent" field.
func (m *AgentVersionMutation) SetTrafficPercent(i int) {
	m.traffic_percent = &i
	m.addtraffic_percent = nil
}

// TrafficPercent returns the value of the "traffic_percent" field in the mutation.
func (m *AgentVersionMutation) TrafficPercent() (r int, exists bool) {
	v := m.traffic_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldTrafficPercent returns the old "traffic_percent" field's value of the AgentVersion entity.
// If the AgentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentVersionMutation) OldTrafficPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrafficPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrafficPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrafficPercent: %w", err)
	}
	return oldValue.TrafficPercent, nil
}

// AddTrafficPercent adds i to the "traffic_percent" field.
func (m *AgentVersionMutation) AddTrafficPercent(i int) {
	if m.addtraffic_percent != nil {
		*m.addtraffic_percent += i
	} else {
		m.addtraffic_percent = &i
	}
}

// AddedTrafficPercent returns the value that was added to the "traffic_percent" field in this mutation.
func (m *AgentVersionMutation) AddedTrafficPercent() (r int, exists bool) {
	v := m.addtraffic_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrafficPercent resets all changes to the "traffic_percent" field.
func (m *AgentVersionMutation) ResetTrafficPercent() {
	m.traffic_percent = nil
	m.addtraffic_percent = nil
}

// SetErrorRatePer1000 sets the "error_rate_per_1000" field.
func (m *AgentVersionMutation) SetErrorRatePer1000(f float64) {
	m.error_rate_per_1000 = &f
	m.adderror_rate_per_1000 = nil
}

// ErrorRatePer1000 returns the value of the "error_rate_per_1000" field in the mutation.
func (m *AgentVersionMutation) ErrorRatePer1000() (r float64, exists bool) {
	v := m.error_rate_per_1000
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorRatePer1000 returns the old "error_rate_per_1000" field's value of the AgentVersion entity.
// If the AgentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentVersionMutation) OldErrorRatePer1000(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorRatePer1000 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorRatePer1000 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorRatePer1000: %w", err)
	}
	return oldValue.ErrorRatePer1000, nil
}

// AddErrorRatePer1000 adds f to the "error_rate_per_1000" field.
func (m *AgentVersionMutation) AddErrorRatePer1000(f float64) {
	if m.adderror_rate_per_1000 != nil {
		*m.adderror_rate_per_1000 += f
	} else {
		m.adderror_rate_per_1000 = &f
	}
}

// AddedErrorRatePer1000 returns the value that was added to the "error_rate_per_1000" field in this mutation.
func (m *AgentVersionMutation) AddedErrorRatePer1000() (r float64, exists bool) {
	v := m.adderror_rate_per_1000
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorRatePer1000 resets all changes to the "error_rate_per_1000" field.
func (m *AgentVersionMutation) ResetErrorRatePer1000() {
	m.error_rate_per_1000 = nil
	m.adderror_rate_per_1000 = nil
}

// SetErrorThreshold sets the "error_threshold" field.
func (m *AgentVersionMutation) SetErrorThreshold(f float64) {
	m.error_threshold = &f
	m.adderror_threshold = nil
}

// ErrorThreshold returns the value of the "error_threshold" field in the mutation.
func (m *AgentVersionMutation) ErrorThreshold() (r float64, exists bool) {
	v := m.error_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorThreshold returns the old "error_threshold" field's value of the AgentVersion entity.
// If the AgentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentVersionMutation) OldErrorThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorThreshold: %w", err)
	}
	return oldValue.ErrorThreshold, nil
}

// AddErrorThreshold adds f to the "error_threshold" field.
func (m *AgentVersionMutation) AddErrorThreshold(f float64) {
	if m.adderror_threshold != nil {
		*m.adderror_threshold += f
	} else {
		m.adderror_threshold = &f
	}
}

// AddedErrorThreshold returns the value that was added to the "error_threshold" field in this mutation.
func (m *AgentVersionMutation) AddedErrorThreshold() (r float64, exists bool) {
	v := m.adderror_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorThreshold resets all changes to the "error_threshold" field.
func (m *AgentVersionMutation) ResetErrorThreshold() {
	m.error_threshold = nil
	m.adderror_threshold = nil
}

// SetIsRollbackTarget sets the "is_rollback_target" field.
func (m *AgentVersionMutation) SetIsRollbackTarget(b bool) {
	m.is_rollback_target = &b
}

// IsRollbackTarget returns the value of the "is_rollback_target" field in the mutation.
func (m *AgentVersionMutation) IsRollbackTarget() (r bool, exists bool) {
	v := m.is_rollback_target
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRollbackTarget returns the old "is_rollback_target" field's value of the AgentVersion entity.
// If the AgentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentVersionMutation) OldIsRollbackTarget(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRollbackTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRollbackTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRollbackTarget: %w", err)
	}
	return oldValue.IsRollbackTarget, nil
}

// ResetIsRollbackTarget resets all changes to the "is_rollback_target" field.
func (m *AgentVersionMutation) ResetIsRollbackTarget() {
	m.is_rollback_target = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentVersion entity.
// If the AgentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *AgentVersionMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[agentversion.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *AgentVersionMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AgentVersionMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AgentVersionMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the AgentVersionMutation builder.
func (m *AgentVersionMutation) Where(ps ...predicate.AgentVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentVersion).
func (m *AgentVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentVersionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.agent != nil {
		fields = append(fields, agentversion.FieldAgentID)
	}
	if m.version != nil {
		fields = append(fields, agentversion.FieldVersion)
	}
	if m.endpoint != nil {
		fields = append(fields, agentversion.FieldEndpoint)
	}
	if m.capabilities != nil {
		fields = append(fields, agentversion.FieldCapabilities)
	}
	if m.status != nil {
		fields = append(fields, agentversion.FieldStatus)
	}
	if m.traffic_percent != nil {
		fields = append(fields, agentversion.FieldTrafficPercent)
	}
	if m.error_rate_per_1000 != nil {
		fields = append(fields, agentversion.FieldErrorRatePer1000)
	}
	if m.error_threshold != nil {
		fields = append(fields, agentversion.FieldErrorThreshold)
	}
	if m.is_rollback_target != nil {
		fields = append(fields, agentversion.FieldIsRollbackTarget)
	}
	if m.created_at != nil {
		fields = append(fields, agentversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentversion.FieldAgentID:
		return m.AgentID()
	case agentversion.FieldVersion:
		return m.Version()
	case agentversion.FieldEndpoint:
		return m.Endpoint()
	case agentversion.FieldCapabilities:
		return m.Capabilities()
	case agentversion.FieldStatus:
		return m.Status()
	case agentversion.FieldTrafficPercent:
		return m.TrafficPercent()
	case agentversion.FieldErrorRatePer1000:
		return m.ErrorRatePer1000()
	case agentversion.FieldErrorThreshold:
		return m.ErrorThreshold()
	case agentversion.FieldIsRollbackTarget:
		return m.IsRollbackTarget()
	case agentversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentversion.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentversion.FieldVersion:
		return m.OldVersion(ctx)
	case agentversion.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case agentversion.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case agentversion.FieldStatus:
		return m.OldStatus(ctx)
	case agentversion.FieldTrafficPercent:
		return m.OldTrafficPercent(ctx)
	case agentversion.FieldErrorRatePer1000:
		return m.OldErrorRatePer1000(ctx)
	case agentversion.FieldErrorThreshold:
		return m.OldErrorThreshold(ctx)
	case agentversion.FieldIsRollbackTarget:
		return m.OldIsRollbackTarget(ctx)
	case agentversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentversion.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentversion.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case agentversion.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case agentversion.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case agentversion.FieldStatus:
		v, ok := value.(agentversion.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentversion.FieldTrafficPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrafficPercent(v)
		return nil
	case agentversion.FieldErrorRatePer1000:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorRatePer1000(v)
		return nil
	case agentversion.FieldErrorThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorThreshold(v)
		return nil
	case agentversion.FieldIsRollbackTarget:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRollbackTarget(v)
		return nil
	case agentversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentVersionMutation) AddedFields() []string {
	var fields []string
	if m.addtraffic_percent != nil {
		fields = append(fields, agentversion.FieldTrafficPercent)
	}
	if m.adderror_rate_per_1000 != nil {
		fields = append(fields, agentversion.FieldErrorRatePer1000)
	}
	if m.adderror_threshold != nil {
		fields = append(fields, agentversion.FieldErrorThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentversion.FieldTrafficPercent:
		return m.AddedTrafficPercent()
	case agentversion.FieldErrorRatePer1000:
		return m.AddedErrorRatePer1000()
	case agentversion.FieldErrorThreshold:
		return m.AddedErrorThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentversion.FieldTrafficPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrafficPercent(v)
		return nil
	case agentversion.FieldErrorRatePer1000:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorRatePer1000(v)
		return nil
	case agentversion.FieldErrorThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown AgentVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentVersionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentVersionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AgentVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentVersionMutation) ResetField(name string) error {
	switch name {
	case agentversion.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentversion.FieldVersion:
		m.ResetVersion()
		return nil
	case agentversion.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case agentversion.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case agentversion.FieldStatus:
		m.ResetStatus()
		return nil
	case agentversion.FieldTrafficPercent:
		m.ResetTrafficPercent()
		return nil
	case agentversion.FieldErrorRatePer1000:
		m.ResetErrorRatePer1000()
		return nil
	case agentversion.FieldErrorThreshold:
		m.ResetErrorThreshold()
		return nil
	case agentversion.FieldIsRollbackTarget:
		m.ResetIsRollbackTarget()
		return nil
	case agentversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, agentversion.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentversion.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, agentversion.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentversion.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentVersionMutation) ClearEdge(name string) error {
	switch name {
	case agentversion.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown AgentVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentVersionMutation) ResetEdge(name string) error {
	switch name {
	case agentversion.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown AgentVersion edge %s", name)
}

// ApprovalGateMutation represents an operation that mutates the ApprovalGate nodes in the graph.
type ApprovalGateMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	team_id            *string
	title              *string
	description        *string
	status             *approvalgate.Status
	approvers          *[]string
	appendapprovers    []string
	requested_by_agent *string
	requested_by_user  *string
	task_id            *string
	expires_at         *time.Time
	responded_by       *string
	response_note      *string
	created_at         *time.Time
	responded_at       *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ApprovalGate, error)
	predicates         []predicate.ApprovalGate
}

var _ ent.Mutation = (*ApprovalGateMutation)(nil)

// approvalgateOption allows management of the mutation configuration using functional options.
type approvalgateOption func(*ApprovalGateMutation)

// newApprovalGateMutation creates new mutation for the ApprovalGate entity.
func newApprovalGateMutation(c config, op Op, opts ...approvalgateOption) *ApprovalGateMutation {
	m := &ApprovalGateMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalGate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalGateID sets the ID field of the mutation.
func withApprovalGateID(id string) approvalgateOption {
	return func(m *ApprovalGateMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalGate
		)
		m.oldValue = func(ctx context.Context) (*ApprovalGate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalGate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalGate sets the old ApprovalGate of the mutation.
func withApprovalGate(node *ApprovalGate) approvalgateOption {
	return func(m *ApprovalGateMutation) {
		m.oldValue = func(context.Context) (*ApprovalGate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalGateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalGateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalGate entities.
func (m *ApprovalGateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalGateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalGateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalGate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTeamID sets the "team_id" field.
func (m *ApprovalGateMutation) SetTeamID(s string) {
	m.team_id = &s
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *ApprovalGateMutation) TeamID() (r string, exists bool) {
	v := m.team_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldTeamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *ApprovalGateMutation) ResetTeamID() {
	m.team_id = nil
}

// SetTitle sets the "title" field.
func (m *ApprovalGateMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ApprovalGateMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ApprovalGateMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ApprovalGateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ApprovalGateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ApprovalGateMutation) ResetDescription() {
	m.description = nil
}

// SetStatus sets the "status" field.
func (m *ApprovalGateMutation) SetStatus(a approvalgate.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApprovalGateMutation) Status() (r approvalgate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldStatus(ctx context.Context) (v approvalgate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApprovalGateMutation) ResetStatus() {
	m.status = nil
}

// SetApprovers sets the "approvers" field.
func (m *ApprovalGateMutation) SetApprovers(s []string) {
	m.approvers = &s
	m.appendapprovers = nil
}

// Approvers returns the value of the "approvers" field in the mutation.
func (m *ApprovalGateMutation) Approvers() (r []string, exists bool) {
	v := m.approvers
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovers returns the old "approvers" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldApprovers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovers: %w", err)
	}
	return oldValue.Approvers, nil
}

// AppendApprovers adds s to the "approvers" field.
func (m *ApprovalGateMutation) AppendApprovers(s []string) {
	m.appendapprovers = append(m.appendapprovers, s...)
}

// AppendedApprovers returns the list of values that were appended to the "approvers" field in this mutation.
func (m *ApprovalGateMutation) AppendedApprovers() ([]string, bool) {
	if len(m.appendapprovers) == 0 {
		return nil, false
	}
	return m.appendapprovers, true
}

// ResetApprovers resets all changes to the "approvers" field.
func (m *ApprovalGateMutation) ResetApprovers() {
	m.approvers = nil
	m.appendapprovers = nil
}

// SetRequestedByAgent sets the "requested_by_agent" field.
func (m *ApprovalGateMutation) SetRequestedByAgent(s string) {
	m.requested_by_agent = &s
}

// RequestedByAgent returns the value of the "requested_by_agent" field in the mutation.
func (m *ApprovalGateMutation) RequestedByAgent() (r string, exists bool) {
	v := m.requested_by_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedByAgent returns the old "requested_by_agent" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldRequestedByAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedByAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedByAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedByAgent: %w", err)
	}
	return oldValue.RequestedByAgent, nil
}

// ClearRequestedByAgent clears the value of the "requested_by_agent" field.
func (m *ApprovalGateMutation) ClearRequestedByAgent() {
	m.requested_by_agent = nil
	m.clearedFields[approvalgate.FieldRequestedByAgent] = struct{}{}
}

// RequestedByAgentCleared returns if the "requested_by_agent" field was cleared in this mutation.
func (m *ApprovalGateMutation) RequestedByAgentCleared() bool {
	_, ok := m.clearedFields[approvalgate.FieldRequestedByAgent]
	return ok
}

// ResetRequestedByAgent resets all changes to the "requested_by_agent" field.
func (m *ApprovalGateMutation) ResetRequestedByAgent() {
	m.requested_by_agent = nil
	delete(m.clearedFields, approvalgate.FieldRequestedByAgent)
}

// SetRequestedByUser sets the "requested_by_user" field.
func (m *ApprovalGateMutation) SetRequestedByUser(s string) {
	m.requested_by_user = &s
}

// RequestedByUser returns the value of the "requested_by_user" field in the mutation.
func (m *ApprovalGateMutation) RequestedByUser() (r string, exists bool) {
	v := m.requested_by_user
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedByUser returns the old "requested_by_user" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldRequestedByUser(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedByUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedByUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedByUser: %w", err)
	}
	return oldValue.RequestedByUser, nil
}

// ClearRequestedByUser clears the value of the "requested_by_user" field.
func (m *ApprovalGateMutation) ClearRequestedByUser() {
	m.requested_by_user = nil
	m.clearedFields[approvalgate.FieldRequestedByUser] = struct{}{}
}

// RequestedByUserCleared returns if the "requested_by_user" field was cleared in this mutation.
func (m *ApprovalGateMutation) RequestedByUserCleared() bool {
	_, ok := m.clearedFields[approvalgate.FieldRequestedByUser]
	return ok
}

// ResetRequestedByUser resets all changes to the "requested_by_user" field.
func (m *ApprovalGateMutation) ResetRequestedByUser() {
	m.requested_by_user = nil
	delete(m.clearedFields, approvalgate.FieldRequestedByUser)
}

// SetTaskID sets the "task_id" field.
func (m *ApprovalGateMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ApprovalGateMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *ApprovalGateMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[approvalgate.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *ApprovalGateMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[approvalgate.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ApprovalGateMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, approvalgate.FieldTaskID)
}

// SetExpiresAt sets the "expires_at" field.
func (m *ApprovalGateMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ApprovalGateMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *ApprovalGateMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[approvalgate.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *ApprovalGateMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[approvalgate.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ApprovalGateMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, approvalgate.FieldExpiresAt)
}

// SetRespondedBy sets the "responded_by" field.
func (m *ApprovalGateMutation) SetRespondedBy(s string) {
	m.responded_by = &s
}

// RespondedBy returns the value of the "responded_by" field in the mutation.
func (m *ApprovalGateMutation) RespondedBy() (r string, exists bool) {
	v := m.responded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedBy returns the old "responded_by" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldRespondedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedBy: %w", err)
	}
	return oldValue.RespondedBy, nil
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (m *ApprovalGateMutation) ClearRespondedBy() {
	m.responded_by = nil
	m.clearedFields[approvalgate.FieldRespondedBy] = struct{}{}
}

// RespondedByCleared returns if the "responded_by" field was cleared in this mutation.
func (m *ApprovalGateMutation) RespondedByCleared() bool {
	_, ok := m.clearedFields[approvalgate.FieldRespondedBy]
	return ok
}

// ResetRespondedBy resets all changes to the "responded_by" field.
func (m *ApprovalGateMutation) ResetRespondedBy() {
	m.responded_by = nil
	delete(m.clearedFields, approvalgate.FieldRespondedBy)
}

// SetResponseNote sets the "response_note" field.
func (m *ApprovalGateMutation) SetResponseNote(s string) {
	m.response_note = &s
}

// ResponseNote returns the value of the "response_note" field in the mutation.
func (m *ApprovalGateMutation) ResponseNote() (r string, exists bool) {
	v := m.response_note
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseNote returns the old "response_note" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldResponseNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseNote: %w", err)
	}
	return oldValue.ResponseNote, nil
}

// ClearResponseNote clears the value of the "response_note" field.
func (m *ApprovalGateMutation) ClearResponseNote() {
	m.response_note = nil
	m.clearedFields[approvalgate.FieldResponseNote] = struct{}{}
}

// ResponseNoteCleared returns if the "response_note" field was cleared in this mutation.
func (m *ApprovalGateMutation) ResponseNoteCleared() bool {
	_, ok := m.clearedFields[approvalgate.FieldResponseNote]
	return ok
}

// ResetResponseNote resets all changes to the "response_note" field.
func (m *ApprovalGateMutation) ResetResponseNote() {
	m.response_note = nil
	delete(m.clearedFields, approvalgate.FieldResponseNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalGateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalGateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalGateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRespondedAt sets the "responded_at" field.
func (m *ApprovalGateMutation) SetRespondedAt(t time.Time) {
	m.responded_at = &t
}

// RespondedAt returns the value of the "responded_at" field in the mutation.
func (m *ApprovalGateMutation) RespondedAt() (r time.Time, exists bool) {
	v := m.responded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedAt returns the old "responded_at" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldRespondedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedAt: %w", err)
	}
	return oldValue.RespondedAt, nil
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (m *ApprovalGateMutation) ClearRespondedAt() {
	m.responded_at = nil
	m.clearedFields[approvalgate.FieldRespondedAt] = struct{}{}
}

// RespondedAtCleared returns if the "responded_at" field was cleared in this mutation.
func (m *ApprovalGateMutation) RespondedAtCleared() bool {
	_, ok := m.clearedFields[approvalgate.FieldRespondedAt]
	return ok
}

// ResetRespondedAt resets all changes to the "responded_at" field.
func (m *ApprovalGateMutation) ResetRespondedAt() {
	m.responded_at = nil
	delete(m.clearedFields, approvalgate.FieldRespondedAt)
}

// Where appends a list predicates to the ApprovalGateMutation builder.
func (m *ApprovalGateMutation) Where(ps ...predicate.ApprovalGate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalGateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalGateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalGate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalGateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalGateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalGate).
func (m *ApprovalGateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalGateMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.team_id != nil {
		fields = append(fields, approvalgate.FieldTeamID)
	}
	if m.title != nil {
		fields = append(fields, approvalgate.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, approvalgate.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, approvalgate.FieldStatus)
	}
	if m.approvers != nil {
		fields = append(fields, approvalgate.FieldApprovers)
	}
	if m.requested_by_agent != nil {
		fields = append(fields, approvalgate.FieldRequestedByAgent)
	}
	if m.requested_by_user != nil {
		fields = append(fields, approvalgate.FieldRequestedByUser)
	}
	if m.task_id != nil {
		fields = append(fields, approvalgate.FieldTaskID)
	}
	if m.expires_at != nil {
		fields = append(fields, approvalgate.FieldExpiresAt)
	}
	if m.responded_by != nil {
		fields = append(fields, approvalgate.FieldRespondedBy)
	}
	if m.response_note != nil {
		fields = append(fields, approvalgate.FieldResponseNote)
	}
	if m.created_at != nil {
		fields = append(fields, approvalgate.FieldCreatedAt)
	}
	if m.responded_at != nil {
		fields = append(fields, approvalgate.FieldRespondedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalGateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalgate.FieldTeamID:
		return m.TeamID()
	case approvalgate.FieldTitle:
		return m.Title()
	case approvalgate.FieldDescription:
		return m.Description()
	case approvalgate.FieldStatus:
		return m.Status()
	case approvalgate.FieldApprovers:
		return m.Approvers()
	case approvalgate.FieldRequestedByAgent:
		return m.RequestedByAgent()
	case approvalgate.FieldRequestedByUser:
		return m.RequestedByUser()
	case approvalgate.FieldTaskID:
		return m.TaskID()
	case approvalgate.FieldExpiresAt:
		return m.ExpiresAt()
	case approvalgate.FieldRespondedBy:
		return m.RespondedBy()
	case approvalgate.FieldResponseNote:
		return m.ResponseNote()
	case approvalgate.FieldCreatedAt:
		return m.CreatedAt()
	case approvalgate.FieldRespondedAt:
		return m.RespondedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalGateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalgate.FieldTeamID:
		return m.OldTeamID(ctx)
	case approvalgate.FieldTitle:
		return m.OldTitle(ctx)
	case approvalgate.FieldDescription:
		return m.OldDescription(ctx)
	case approvalgate.FieldStatus:
		return m.OldStatus(ctx)
	case approvalgate.FieldApprovers:
		return m.OldApprovers(ctx)
	case approvalgate.FieldRequestedByAgent:
		return m.OldRequestedByAgent(ctx)
	case approvalgate.FieldRequestedByUser:
		return m.OldRequestedByUser(ctx)
	case approvalgate.FieldTaskID:
		return m.OldTaskID(ctx)
	case approvalgate.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case approvalgate.FieldRespondedBy:
		return m.OldRespondedBy(ctx)
	case approvalgate.FieldResponseNote:
		return m.OldResponseNote(ctx)
	case approvalgate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case approvalgate.FieldRespondedAt:
		return m.OldRespondedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalGate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalGateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalgate.FieldTeamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case approvalgate.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case approvalgate.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case approvalgate.FieldStatus:
		v, ok := value.(approvalgate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case approvalgate.FieldApprovers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovers(v)
		return nil
	case approvalgate.FieldRequestedByAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedByAgent(v)
		return nil
	case approvalgate.FieldRequestedByUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedByUser(v)
		return nil
	case approvalgate.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case approvalgate.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case approvalgate.FieldRespondedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedBy(v)
		return nil
	case approvalgate.FieldResponseNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseNote(v)
		return nil
	case approvalgate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case approvalgate.FieldRespondedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalGate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalGateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalGateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalGateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovalGate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalGateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalgate.FieldRequestedByAgent) {
		fields = append(fields, approvalgate.FieldRequestedByAgent)
	}
	if m.FieldCleared(approvalgate.FieldRequestedByUser) {
		fields = append(fields, approvalgate.FieldRequestedByUser)
	}
	if m.FieldCleared(approvalgate.FieldTaskID) {
		fields = append(fields, approvalgate.FieldTaskID)
	}
	if m.FieldCleared(approvalgate.FieldExpiresAt) {
		fields = append(fields, approvalgate.FieldExpiresAt)
	}
	if m.FieldCleared(approvalgate.FieldRespondedBy) {
		fields = append(fields, approvalgate.FieldRespondedBy)
	}
	if m.FieldCleared(approvalgate.FieldResponseNote) {
		fields = append(fields, approvalgate.FieldResponseNote)
	}
	if m.FieldCleared(approvalgate.FieldRespondedAt) {
		fields = append(fields, approvalgate.FieldRespondedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalGateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalGateMutation) ClearField(name string) error {
	switch name {
	case approvalgate.FieldRequestedByAgent:
		m.ClearRequestedByAgent()
		return nil
	case approvalgate.FieldRequestedByUser:
		m.ClearRequestedByUser()
		return nil
	case approvalgate.FieldTaskID:
		m.ClearTaskID()
		return nil
	case approvalgate.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case approvalgate.FieldRespondedBy:
		m.ClearRespondedBy()
		return nil
	case approvalgate.FieldResponseNote:
		m.ClearResponseNote()
		return nil
	case approvalgate.FieldRespondedAt:
		m.ClearRespondedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalGate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalGateMutation) ResetField(name string) error {
	switch name {
	case approvalgate.FieldTeamID:
		m.ResetTeamID()
		return nil
	case approvalgate.FieldTitle:
		m.ResetTitle()
		return nil
	case approvalgate.FieldDescription:
		m.ResetDescription()
		return nil
	case approvalgate.FieldStatus:
		m.ResetStatus()
		return nil
	case approvalgate.FieldApprovers:
		m.ResetApprovers()
		return nil
	case approvalgate.FieldRequestedByAgent:
		m.ResetRequestedByAgent()
		return nil
	case approvalgate.FieldRequestedByUser:
		m.ResetRequestedByUser()
		return nil
	case approvalgate.FieldTaskID:
		m.ResetTaskID()
		return nil
	case approvalgate.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case approvalgate.FieldRespondedBy:
		m.ResetRespondedBy()
		return nil
	case approvalgate.FieldResponseNote:
		m.ResetResponseNote()
		return nil
	case approvalgate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case approvalgate.FieldRespondedAt:
		m.ResetRespondedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalGate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalGateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalGateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalGateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalGateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalGateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalGateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalGateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApprovalGate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalGateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApprovalGate edge %s", name)
}

// AuditRecordMutation represents an operation that mutates the AuditRecord nodes in the graph.
type AuditRecordMutation struct {
	config
	op            Op
	typ           string
	id            *string
	stage_id      *string
	agent_id      *string
	action        *auditrecord.Action
	status        *string
	input_hash    *string
	output_hash   *string
	logged_at     *time.Time
	signature     **models.AuditSignature
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*AuditRecord, error)
	predicates    []predicate.AuditRecord
}

var _ ent.Mutation = (*AuditRecordMutation)(nil)

// auditrecordOption allows management of the mutation configuration using functional options.
type auditrecordOption func(*AuditRecordMutation)

// newAuditRecordMutation creates new mutation for the AuditRecord entity.
func newAuditRecordMutation(c config, op Op, opts ...auditrecordOption) *AuditRecordMutation {
	m := &AuditRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditRecordID sets the ID field of the mutation.
func withAuditRecordID(id string) auditrecordOption {
	return func(m *AuditRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditRecord
		)
		m.oldValue = func(ctx context.Context) (*AuditRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditRecord sets the old AuditRecord of the mutation.
func withAuditRecord(node *AuditRecord) auditrecordOption {
	return func(m *AuditRecordMutation) {
		m.oldValue = func(context.Context) (*AuditRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditRecord entities.
func (m *AuditRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *AuditRecordMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AuditRecordMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AuditRecordMutation) ResetRunID() {
	m.run = nil
}

// SetStageID sets the "stage_id" field.
func (m *AuditRecordMutation) SetStageID(s string) {
	m.stage_id = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *AuditRecordMutation) StageID() (r string, exists bool) {
	v := m.stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *AuditRecordMutation) ResetStageID() {
	m.stage_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *AuditRecordMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AuditRecordMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AuditRecordMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetAction sets the "action" field.
func (m *AuditRecordMutation) SetAction(a auditrecord.Action) {
	m.action = &a
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditRecordMutation) Action() (r auditrecord.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldAction(ctx context.Context) (v auditrecord.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditRecordMutation) ResetAction() {
	m.action = nil
}

// SetStatus sets the "status" field.
func (m *AuditRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditRecordMutation) ResetStatus() {
	m.status = nil
}

// SetInputHash sets the "input_hash" field.
func (m *AuditRecordMutation) SetInputHash(s string) {
	m.input_hash = &s
}

// InputHash returns the value of the "input_hash" field in the mutation.
func (m *AuditRecordMutation) InputHash() (r string, exists bool) {
	v := m.input_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldInputHash returns the old "input_hash" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldInputHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputHash: %w", err)
	}
	return oldValue.InputHash, nil
}

// ResetInputHash resets all changes to the "input_hash" field.
func (m *AuditRecordMutation) ResetInputHash() {
	m.input_hash = nil
}

// SetOutputHash sets the "output_hash" field.
func (m *AuditRecordMutation) SetOutputHash(s string) {
	m.output_hash = &s
}

// OutputHash returns the value of the "output_hash" field in the mutation.
func (m *AuditRecordMutation) OutputHash() (r string, exists bool) {
	v := m.output_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputHash returns the old "output_hash" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldOutputHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputHash: %w", err)
	}
	return oldValue.OutputHash, nil
}

// ClearOutputHash clears the value of the "output_hash" field.
func (m *AuditRecordMutation) ClearOutputHash() {
	m.output_hash = nil
	m.clearedFields[auditrecord.FieldOutputHash] = struct{}{}
}

// OutputHashCleared returns if the "output_hash" field was cleared in this mutation.
func (m *AuditRecordMutation) OutputHashCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldOutputHash]
	return ok
}

// ResetOutputHash resets all changes to the "output_hash" field.
func (m *AuditRecordMutation) ResetOutputHash() {
	m.output_hash = nil
	delete(m.clearedFields, auditrecord.FieldOutputHash)
}

// SetLoggedAt sets the "logged_at" field.
func (m *AuditRecordMutation) SetLoggedAt(t time.Time) {
	m.logged_at = &t
}

// LoggedAt returns the value of the "logged_at" field in the mutation.
func (m *AuditRecordMutation) LoggedAt() (r time.Time, exists bool) {
	v := m.logged_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLoggedAt returns the old "logged_at" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldLoggedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoggedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoggedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoggedAt: %w", err)
	}
	return oldValue.LoggedAt, nil
}

// ResetLoggedAt resets all changes to the "logged_at" field.
func (m *AuditRecordMutation) ResetLoggedAt() {
	m.logged_at = nil
}

// SetSignature sets the "signature" field.
func (m *AuditRecordMutation) SetSignature(ms *models.AuditSignature) {
	m.signature = &ms
}

// Signature returns the value of the "signature" field in the mutation.
func (m *AuditRecordMutation) Signature() (r *models.AuditSignature, exists bool) {
	v := m.signature
	if v == nil {
		return
	}
	return *v, true
}

// OldSignature returns the old "signature" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldSignature(ctx context.Context) (v *models.AuditSignature, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignature: %w", err)
	}
	return oldValue.Signature, nil
}

// ClearSignature clears the value of the "signature" field.
func (m *AuditRecordMutation) ClearSignature() {
	m.signature = nil
	m.clearedFields[auditrecord.FieldSignature] = struct{}{}
}

// SignatureCleared returns if the "signature" field was cleared in this mutation.
func (m *AuditRecordMutation) SignatureCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldSignature]
	return ok
}

// ResetSignature resets all changes to the "signature" field.
func (m *AuditRecordMutation) ResetSignature() {
	m.signature = nil
	delete(m.clearedFields, auditrecord.FieldSignature)
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (m *AuditRecordMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[auditrecord.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the WorkflowRun entity was cleared.
func (m *AuditRecordMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *AuditRecordMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *AuditRecordMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the AuditRecordMutation builder.
func (m *AuditRecordMutation) Where(ps ...predicate.AuditRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditRecord).
func (m *AuditRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.run != nil {
		fields = append(fields, auditrecord.FieldRunID)
	}
	if m.stage_id != nil {
		fields = append(fields, auditrecord.FieldStageID)
	}
	if m.agent_id != nil {
		fields = append(fields, auditrecord.FieldAgentID)
	}
	if m.action != nil {
		fields = append(fields, auditrecord.FieldAction)
	}
	if m.status != nil {
		fields = append(fields, auditrecord.FieldStatus)
	}
	if m.input_hash != nil {
		fields = append(fields, auditrecord.FieldInputHash)
	}
	if m.output_hash != nil {
		fields = append(fields, auditrecord.FieldOutputHash)
	}
	if m.logged_at != nil {
		fields = append(fields, auditrecord.FieldLoggedAt)
	}
	if m.signature != nil {
		fields = append(fields, auditrecord.FieldSignature)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditrecord.FieldRunID:
		return m.RunID()
	case auditrecord.FieldStageID:
		return m.StageID()
	case auditrecord.FieldAgentID:
		return m.AgentID()
	case auditrecord.FieldAction:
		return m.Action()
	case auditrecord.FieldStatus:
		return m.Status()
	case auditrecord.FieldInputHash:
		return m.InputHash()
	case auditrecord.FieldOutputHash:
		return m.OutputHash()
	case auditrecord.FieldLoggedAt:
		return m.LoggedAt()
	case auditrecord.FieldSignature:
		return m.Signature()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditrecord.FieldRunID:
		return m.OldRunID(ctx)
	case auditrecord.FieldStageID:
		return m.OldStageID(ctx)
	case auditrecord.FieldAgentID:
		return m.OldAgentID(ctx)
	case auditrecord.FieldAction:
		return m.OldAction(ctx)
	case auditrecord.FieldStatus:
		return m.OldStatus(ctx)
	case auditrecord.FieldInputHash:
		return m.OldInputHash(ctx)
	case auditrecord.FieldOutputHash:
		return m.OldOutputHash(ctx)
	case auditrecord.FieldLoggedAt:
		return m.OldLoggedAt(ctx)
	case auditrecord.FieldSignature:
		return m.OldSignature(ctx)
	}
	return nil, fmt.Errorf("unknown AuditRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditrecord.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case auditrecord.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case auditrecord.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case auditrecord.FieldAction:
		v, ok := value.(auditrecord.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case auditrecord.FieldInputHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputHash(v)
		return nil
	case auditrecord.FieldOutputHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputHash(v)
		return nil
	case auditrecord.FieldLoggedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoggedAt(v)
		return nil
	case auditrecord.FieldSignature:
		v, ok := value.(*models.AuditSignature)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignature(v)
		return nil
	}
	return fmt.Errorf("unknown AuditRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditrecord.FieldOutputHash) {
		fields = append(fields, auditrecord.FieldOutputHash)
	}
	if m.FieldCleared(auditrecord.FieldSignature) {
		fields = append(fields, auditrecord.FieldSignature)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditRecordMutation) ClearField(name string) error {
	switch name {
	case auditrecord.FieldOutputHash:
		m.ClearOutputHash()
		return nil
	case auditrecord.FieldSignature:
		m.ClearSignature()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditRecordMutation) ResetField(name string) error {
	switch name {
	case auditrecord.FieldRunID:
		m.ResetRunID()
		return nil
	case auditrecord.FieldStageID:
		m.ResetStageID()
		return nil
	case auditrecord.FieldAgentID:
		m.ResetAgentID()
		return nil
	case auditrecord.FieldAction:
		m.ResetAction()
		return nil
	case auditrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case auditrecord.FieldInputHash:
		m.ResetInputHash()
		return nil
	case auditrecord.FieldOutputHash:
		m.ResetOutputHash()
		return nil
	case auditrecord.FieldLoggedAt:
		m.ResetLoggedAt()
		return nil
	case auditrecord.FieldSignature:
		m.ResetSignature()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, auditrecord.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditrecord.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, auditrecord.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case auditrecord.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditRecordMutation) ClearEdge(name string) error {
	switch name {
	case auditrecord.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditRecordMutation) ResetEdge(name string) error {
	switch name {
	case auditrecord.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord edge %s", name)
}

// ResourceLockMutation represents an operation that mutates the ResourceLock nodes in the graph.
type ResourceLockMutation struct {
	config
	op                Op
	typ               string
	id                *string
	resource_type     *string
	resource_id       *string
	owner_agent       *string
	status            *resourcelock.Status
	conflict_strategy *resourcelock.ConflictStrategy
	content_hash      *string
	version           *int
	addversion        *int
	acquired_at       *time.Time
	expires_at        *time.Time
	released_at       *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ResourceLock, error)
	predicates        []predicate.ResourceLock
}

var _ ent.Mutation = (*ResourceLockMutation)(nil)

// resourcelockOption allows management of the mutation configuration using functional options.
type resourcelockOption func(*ResourceLockMutation)

// newResourceLockMutation creates new mutation for the ResourceLock entity.
func newResourceLockMutation(c config, op Op, opts ...resourcelockOption) *ResourceLockMutation {
	m := &ResourceLockMutation{
		config:        c,
		op:            op,
		typ:           TypeResourceLock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResourceLockID sets the ID field of the mutation.
func withResourceLockID(id string) resourcelockOption {
	return func(m *ResourceLockMutation) {
		var (
			err   error
			once  sync.Once
			value *ResourceLock
		)
		m.oldValue = func(ctx context.Context) (*ResourceLock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResourceLock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResourceLock sets the old ResourceLock of the mutation.
func withResourceLock(node *ResourceLock) resourcelockOption {
	return func(m *ResourceLockMutation) {
		m.oldValue = func(context.Context) (*ResourceLock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResourceLockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResourceLockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResourceLock entities.
func (m *ResourceLockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResourceLockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResourceLockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResourceLock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResourceType sets the "resource_type" field.
func (m *ResourceLockMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *ResourceLockMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *ResourceLockMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetResourceID sets the "resource_id" field.
func (m *ResourceLockMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *ResourceLockMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *ResourceLockMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetOwnerAgent sets the "owner_agent" field.
func (m *ResourceLockMutation) SetOwnerAgent(s string) {
	m.owner_agent = &s
}

// OwnerAgent returns the value of the "owner_agent" field in the mutation.
func (m *ResourceLockMutation) OwnerAgent() (r string, exists bool) {
	v := m.owner_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerAgent returns the old "owner_agent" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldOwnerAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerAgent: %w", err)
	}
	return oldValue.OwnerAgent, nil
}

// ResetOwnerAgent resets all changes to the "owner_agent" field.
func (m *ResourceLockMutation) ResetOwnerAgent() {
	m.owner_agent = nil
}

// SetStatus sets the "status" field.
func (m *ResourceLockMutation) SetStatus(r resourcelock.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ResourceLockMutation) Status() (r resourcelock.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldStatus(ctx context.Context) (v resourcelock.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ResourceLockMutation) ResetStatus() {
	m.status = nil
}

// SetConflictStrategy sets the "conflict_strategy" field.
func (m *ResourceLockMutation) SetConflictStrategy(rs resourcelock.ConflictStrategy) {
	m.conflict_strategy = &rs
}

// ConflictStrategy returns the value of the "conflict_strategy" field in the mutation.
func (m *ResourceLockMutation) ConflictStrategy() (r resourcelock.ConflictStrategy, exists bool) {
	v := m.conflict_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictStrategy returns the old "conflict_strategy" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldConflictStrategy(ctx context.Context) (v resourcelock.ConflictStrategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictStrategy: %w", err)
	}
	return oldValue.ConflictStrategy, nil
}

// ResetConflictStrategy resets all changes to the "conflict_strategy" field.
func (m *ResourceLockMutation) ResetConflictStrategy() {
	m.conflict_strategy = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ResourceLockMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ResourceLockMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldContentHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *ResourceLockMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[resourcelock.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *ResourceLockMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[resourcelock.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ResourceLockMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, resourcelock.FieldContentHash)
}

// SetVersion sets the "version" field.
func (m *ResourceLockMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ResourceLockMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ResourceLockMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ResourceLockMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ResourceLockMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *ResourceLockMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *ResourceLockMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *ResourceLockMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ResourceLockMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ResourceLockMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ResourceLockMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetReleasedAt sets the "released_at" field.
func (m *ResourceLockMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *ResourceLockMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *ResourceLockMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[resourcelock.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *ResourceLockMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[resourcelock.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *ResourceLockMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, resourcelock.FieldReleasedAt)
}

// Where appends a list predicates to the ResourceLockMutation builder.
func (m *ResourceLockMutation) Where(ps ...predicate.ResourceLock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResourceLockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResourceLockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResourceLock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResourceLockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResourceLockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResourceLock).
func (m *ResourceLockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResourceLockMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.resource_type != nil {
		fields = append(fields, resourcelock.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, resourcelock.FieldResourceID)
	}
	if m.owner_agent != nil {
		fields = append(fields, resourcelock.FieldOwnerAgent)
	}
	if m.status != nil {
		fields = append(fields, resourcelock.FieldStatus)
	}
	if m.conflict_strategy != nil {
		fields = append(fields, resourcelock.FieldConflictStrategy)
	}
	if m.content_hash != nil {
		fields = append(fields, resourcelock.FieldContentHash)
	}
	if m.version != nil {
		fields = append(fields, resourcelock.FieldVersion)
	}
	if m.acquired_at != nil {
		fields = append(fields, resourcelock.FieldAcquiredAt)
	}
	if m.expires_at != nil {
		fields = append(fields, resourcelock.FieldExpiresAt)
	}
	if m.released_at != nil {
		fields = append(fields, resourcelock.FieldReleasedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResourceLockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resourcelock.FieldResourceType:
		return m.ResourceType()
	case resourcelock.FieldResourceID:
		return m.ResourceID()
	case resourcelock.FieldOwnerAgent:
		return m.OwnerAgent()
	case resourcelock.FieldStatus:
		return m.Status()
	case resourcelock.FieldConflictStrategy:
		return m.ConflictStrategy()
	case resourcelock.FieldContentHash:
		return m.ContentHash()
	case resourcelock.FieldVersion:
		return m.Version()
	case resourcelock.FieldAcquiredAt:
		return m.AcquiredAt()
	case resourcelock.FieldExpiresAt:
		return m.ExpiresAt()
	case resourcelock.FieldReleasedAt:
		return m.ReleasedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResourceLockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resourcelock.FieldResourceType:
		return m.OldResourceType(ctx)
	case resourcelock.FieldResourceID:
		return m.OldResourceID(ctx)
	case resourcelock.FieldOwnerAgent:
		return m.OldOwnerAgent(ctx)
	case resourcelock.FieldStatus:
		return m.OldStatus(ctx)
	case resourcelock.FieldConflictStrategy:
		return m.OldConflictStrategy(ctx)
	case resourcelock.FieldContentHash:
		return m.OldContentHash(ctx)
	case resourcelock.FieldVersion:
		return m.OldVersion(ctx)
	case resourcelock.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case resourcelock.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case resourcelock.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResourceLock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceLockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resourcelock.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case resourcelock.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case resourcelock.FieldOwnerAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerAgent(v)
		return nil
	case resourcelock.FieldStatus:
		v, ok := value.(resourcelock.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case resourcelock.FieldConflictStrategy:
		v, ok := value.(resourcelock.ConflictStrategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictStrategy(v)
		return nil
	case resourcelock.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case resourcelock.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case resourcelock.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case resourcelock.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case resourcelock.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResourceLock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResourceLockMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, resourcelock.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResourceLockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case resourcelock.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceLockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case resourcelock.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ResourceLock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResourceLockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(resourcelock.FieldContentHash) {
		fields = append(fields, resourcelock.FieldContentHash)
	}
	if m.FieldCleared(resourcelock.FieldReleasedAt) {
		fields = append(fields, resourcelock.FieldReleasedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResourceLockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResourceLockMutation) ClearField(name string) error {
	switch name {
	case resourcelock.FieldContentHash:
		m.ClearContentHash()
		return nil
	case resourcelock.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	}
	return fmt.Errorf("unknown ResourceLock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResourceLockMutation) ResetField(name string) error {
	switch name {
	case resourcelock.FieldResourceType:
		m.ResetResourceType()
		return nil
	case resourcelock.FieldResourceID:
		m.ResetResourceID()
		return nil
	case resourcelock.FieldOwnerAgent:
		m.ResetOwnerAgent()
		return nil
	case resourcelock.FieldStatus:
		m.ResetStatus()
		return nil
	case resourcelock.FieldConflictStrategy:
		m.ResetConflictStrategy()
		return nil
	case resourcelock.FieldContentHash:
		m.ResetContentHash()
		return nil
	case resourcelock.FieldVersion:
		m.ResetVersion()
		return nil
	case resourcelock.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case resourcelock.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case resourcelock.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	}
	return fmt.Errorf("unknown ResourceLock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResourceLockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResourceLockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResourceLockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResourceLockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResourceLockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResourceLockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResourceLockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ResourceLock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResourceLockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ResourceLock edge %s", name)
}

// StageExecutionMutation represents an operation that mutates the StageExecution nodes in the graph.
type StageExecutionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	stage_id             *string
	status               *stageexecution.Status
	agent_id             *string
	input_resolved       *map[string]interface{}
	output               *map[string]interface{}
	error_message        *string
	started_at           *time.Time
	completed_at         *time.Time
	execution_time_ms    *int64
	addexecution_time_ms *int64
	clearedFields        map[string]struct{}
	run                  *string
	clearedrun           bool
	done                 bool
	oldValue             func(context.Context) (*StageExecution, error)
	predicates           []predicate.StageExecution
}

var _ ent.Mutation = (*StageExecutionMutation)(nil)

// stageexecutionOption allows management of the mutation configuration using functional options.
type stageexecutionOption func(*StageExecutionMutation)

// newStageExecutionMutation creates new mutation for the StageExecution entity.
func newStageExecutionMutation(c config, op Op, opts ...stageexecutionOption) *StageExecutionMutation {
	m := &StageExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeStageExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageExecutionID sets the ID field of the mutation.
func withStageExecutionID(id string) stageexecutionOption {
	return func(m *StageExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *StageExecution
		)
		m.oldValue = func(ctx context.Context) (*StageExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageExecution sets the old StageExecution of the mutation.
func withStageExecution(node *StageExecution) stageexecutionOption {
	return func(m *StageExecutionMutation) {
		m.oldValue = func(context.Context) (*StageExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageExecution entities.
func (m *StageExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *StageExecutionMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *StageExecutionMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *StageExecutionMutation) ResetRunID() {
	m.run = nil
}

// SetStageID sets the "stage_id" field.
func (m *StageExecutionMutation) SetStageID(s string) {
	m.stage_id = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *StageExecutionMutation) StageID() (r string, exists bool) {
	v := m.stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *StageExecutionMutation) ResetStageID() {
	m.stage_id = nil
}

// SetStatus sets the "status" field.
func (m *StageExecutionMutation) SetStatus(s stageexecution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StageExecutionMutation) Status() (r stageexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStatus(ctx context.Context) (v stageexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StageExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetAgentID sets the "agent_id" field.
func (m *StageExecutionMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *StageExecutionMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *StageExecutionMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[stageexecution.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *StageExecutionMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *StageExecutionMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, stageexecution.FieldAgentID)
}

// SetInputResolved sets the "input_resolved" field.
func (m *StageExecutionMutation) SetInputResolved(value map[string]interface{}) {
	m.input_resolved = &value
}

// InputResolved returns the value of the "input_resolved" field in the mutation.
func (m *StageExecutionMutation) InputResolved() (r map[string]interface{}, exists bool) {
	v := m.input_resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldInputResolved returns the old "input_resolved" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldInputResolved(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputResolved: %w", err)
	}
	return oldValue.InputResolved, nil
}

// ClearInputResolved clears the value of the "input_resolved" field.
func (m *StageExecutionMutation) ClearInputResolved() {
	m.input_resolved = nil
	m.clearedFields[stageexecution.FieldInputResolved] = struct{}{}
}

// InputResolvedCleared returns if the "input_resolved" field was cleared in this mutation.
func (m *StageExecutionMutation) InputResolvedCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldInputResolved]
	return ok
}

// ResetInputResolved resets all changes to the "input_resolved" field.
func (m *StageExecutionMutation) ResetInputResolved() {
	m.input_resolved = nil
	delete(m.clearedFields, stageexecution.FieldInputResolved)
}

// SetOutput sets the "output" field.
func (m *StageExecutionMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *StageExecutionMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *StageExecutionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[stageexecution.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *StageExecutionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *StageExecutionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, stageexecution.FieldOutput)
}

// SetErrorMessage sets the "error_message" field.
func (m *StageExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StageExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StageExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[stageexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StageExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StageExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, stageexecution.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *StageExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StageExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StageExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *StageExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StageExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StageExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[stageexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StageExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StageExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, stageexecution.FieldCompletedAt)
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (m *StageExecutionMutation) SetExecutionTimeMs(i int64) {
	m.execution_time_ms = &i
	m.addexecution_time_ms = nil
}

// ExecutionTimeMs returns the value of the "execution_time_ms" field in the mutation.
func (m *StageExecutionMutation) ExecutionTimeMs() (r int64, exists bool) {
	v := m.execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTimeMs returns the old "execution_time_ms" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldExecutionTimeMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTimeMs: %w", err)
	}
	return oldValue.ExecutionTimeMs, nil
}

// AddExecutionTimeMs adds i to the "execution_time_ms" field.
func (m *StageExecutionMutation) AddExecutionTimeMs(i int64) {
	if m.addexecution_time_ms != nil {
		*m.addexecution_time_ms += i
	} else {
		m.addexecution_time_ms = &i
	}
}

// AddedExecutionTimeMs returns the value that was added to the "execution_time_ms" field in this mutation.
func (m *StageExecutionMutation) AddedExecutionTimeMs() (r int64, exists bool) {
	v := m.addexecution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (m *StageExecutionMutation) ClearExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
	m.clearedFields[stageexecution.FieldExecutionTimeMs] = struct{}{}
}

// ExecutionTimeMsCleared returns if the "execution_time_ms" field was cleared in this mutation.
func (m *StageExecutionMutation) ExecutionTimeMsCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldExecutionTimeMs]
	return ok
}

// ResetExecutionTimeMs resets all changes to the "execution_time_ms" field.
func (m *StageExecutionMutation) ResetExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
	delete(m.clearedFields, stageexecution.FieldExecutionTimeMs)
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (m *StageExecutionMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[stageexecution.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the WorkflowRun entity was cleared.
func (m *StageExecutionMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *StageExecutionMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *StageExecutionMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the StageExecutionMutation builder.
func (m *StageExecutionMutation) Where(ps ...predicate.StageExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageExecution).
func (m *StageExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageExecutionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.run != nil {
		fields = append(fields, stageexecution.FieldRunID)
	}
	if m.stage_id != nil {
		fields = append(fields, stageexecution.FieldStageID)
	}
	if m.status != nil {
		fields = append(fields, stageexecution.FieldStatus)
	}
	if m.agent_id != nil {
		fields = append(fields, stageexecution.FieldAgentID)
	}
	if m.input_resolved != nil {
		fields = append(fields, stageexecution.FieldInputResolved)
	}
	if m.output != nil {
		fields = append(fields, stageexecution.FieldOutput)
	}
	if m.error_message != nil {
		fields = append(fields, stageexecution.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, stageexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, stageexecution.FieldCompletedAt)
	}
	if m.execution_time_ms != nil {
		fields = append(fields, stageexecution.FieldExecutionTimeMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stageexecution.FieldRunID:
		return m.RunID()
	case stageexecution.FieldStageID:
		return m.StageID()
	case stageexecution.FieldStatus:
		return m.Status()
	case stageexecution.FieldAgentID:
		return m.AgentID()
	case stageexecution.FieldInputResolved:
		return m.InputResolved()
	case stageexecution.FieldOutput:
		return m.Output()
	case stageexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case stageexecution.FieldStartedAt:
		return m.StartedAt()
	case stageexecution.FieldCompletedAt:
		return m.CompletedAt()
	case stageexecution.FieldExecutionTimeMs:
		return m.ExecutionTimeMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stageexecution.FieldRunID:
		return m.OldRunID(ctx)
	case stageexecution.FieldStageID:
		return m.OldStageID(ctx)
	case stageexecution.FieldStatus:
		return m.OldStatus(ctx)
	case stageexecution.FieldAgentID:
		return m.OldAgentID(ctx)
	case stageexecution.FieldInputResolved:
		return m.OldInputResolved(ctx)
	case stageexecution.FieldOutput:
		return m.OldOutput(ctx)
	case stageexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case stageexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stageexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case stageexecution.FieldExecutionTimeMs:
		return m.OldExecutionTimeMs(ctx)
	}
	return nil, fmt.Errorf("unknown StageExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stageexecution.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case stageexecution.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case stageexecution.FieldStatus:
		v, ok := value.(stageexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stageexecution.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case stageexecution.FieldInputResolved:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputResolved(v)
		return nil
	case stageexecution.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case stageexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case stageexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stageexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case stageexecution.FieldExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown StageExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addexecution_time_ms != nil {
		fields = append(fields, stageexecution.FieldExecutionTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stageexecution.FieldExecutionTimeMs:
		return m.AddedExecutionTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stageexecution.FieldExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown StageExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stageexecution.FieldAgentID) {
		fields = append(fields, stageexecution.FieldAgentID)
	}
	if m.FieldCleared(stageexecution.FieldInputResolved) {
		fields = append(fields, stageexecution.FieldInputResolved)
	}
	if m.FieldCleared(stageexecution.FieldOutput) {
		fields = append(fields, stageexecution.FieldOutput)
	}
	if m.FieldCleared(stageexecution.FieldErrorMessage) {
		fields = append(fields, stageexecution.FieldErrorMessage)
	}
	if m.FieldCleared(stageexecution.FieldCompletedAt) {
		fields = append(fields, stageexecution.FieldCompletedAt)
	}
	if m.FieldCleared(stageexecution.FieldExecutionTimeMs) {
		fields = append(fields, stageexecution.FieldExecutionTimeMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageExecutionMutation) ClearField(name string) error {
	switch name {
	case stageexecution.FieldAgentID:
		m.ClearAgentID()
		return nil
	case stageexecution.FieldInputResolved:
		m.ClearInputResolved()
		return nil
	case stageexecution.FieldOutput:
		m.ClearOutput()
		return nil
	case stageexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case stageexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case stageexecution.FieldExecutionTimeMs:
		m.ClearExecutionTimeMs()
		return nil
	}
	return fmt.Errorf("unknown StageExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageExecutionMutation) ResetField(name string) error {
	switch name {
	case stageexecution.FieldRunID:
		m.ResetRunID()
		return nil
	case stageexecution.FieldStageID:
		m.ResetStageID()
		return nil
	case stageexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case stageexecution.FieldAgentID:
		m.ResetAgentID()
		return nil
	case stageexecution.FieldInputResolved:
		m.ResetInputResolved()
		return nil
	case stageexecution.FieldOutput:
		m.ResetOutput()
		return nil
	case stageexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case stageexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stageexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case stageexecution.FieldExecutionTimeMs:
		m.ResetExecutionTimeMs()
		return nil
	}
	return fmt.Errorf("unknown StageExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, stageexecution.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stageexecution.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, stageexecution.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case stageexecution.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageExecutionMutation) ClearEdge(name string) error {
	switch name {
	case stageexecution.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown StageExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageExecutionMutation) ResetEdge(name string) error {
	switch name {
	case stageexecution.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown StageExecution edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	team_id             *string
	title               *string
	description         *string
	status              *task.Status
	priority            *task.Priority
	required_capability *string
	tags                *[]string
	appendtags          []string
	assigned_agent      *string
	created_by_agent    *string
	created_by_user     *string
	depends_on          *[]string
	appenddepends_on    []string
	input_mapping       *map[string]string
	timeout_ms          *int64
	addtimeout_ms       *int64
	retry_count         *int
	addretry_count      *int
	max_retries         *int
	addmax_retries      *int
	progress_current    *int
	addprogress_current *int
	progress_total      *int
	addprogress_total   *int
	progress_message    *string
	output              *map[string]interface{}
	result              *string
	last_error          *string
	created_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Task, error)
	predicates          []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTeamID sets the "team_id" field.
func (m *TaskMutation) SetTeamID(s string) {
	m.team_id = &s
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *TaskMutation) TeamID() (r string, exists bool) {
	v := m.team_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTeamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *TaskMutation) ResetTeamID() {
	m.team_id = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(t task.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r task.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v task.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
}

// SetRequiredCapability sets the "required_capability" field.
func (m *TaskMutation) SetRequiredCapability(s string) {
	m.required_capability = &s
}

// RequiredCapability returns the value of the "required_capability" field in the mutation.
func (m *TaskMutation) RequiredCapability() (r string, exists bool) {
	v := m.required_capability
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredCapability returns the old "required_capability" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRequiredCapability(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredCapability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredCapability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredCapability: %w", err)
	}
	return oldValue.RequiredCapability, nil
}

// ClearRequiredCapability clears the value of the "required_capability" field.
func (m *TaskMutation) ClearRequiredCapability() {
	m.required_capability = nil
	m.clearedFields[task.FieldRequiredCapability] = struct{}{}
}

// RequiredCapabilityCleared returns if the "required_capability" field was cleared in this mutation.
func (m *TaskMutation) RequiredCapabilityCleared() bool {
	_, ok := m.clearedFields[task.FieldRequiredCapability]
	return ok
}

// ResetRequiredCapability resets all changes to the "required_capability" field.
func (m *TaskMutation) ResetRequiredCapability() {
	m.required_capability = nil
	delete(m.clearedFields, task.FieldRequiredCapability)
}

// SetTags sets the "tags" field.
func (m *TaskMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *TaskMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *TaskMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *TaskMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ResetTags resets all changes to the "tags" field.
func (m *TaskMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
}

// SetAssignedAgent sets the "assigned_agent" field.
func (m *TaskMutation) SetAssignedAgent(s string) {
	m.assigned_agent = &s
}

// AssignedAgent returns the value of the "assigned_agent" field in the mutation.
func (m *TaskMutation) AssignedAgent() (r string, exists bool) {
	v := m.assigned_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgent returns the old "assigned_agent" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignedAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgent: %w", err)
	}
	return oldValue.AssignedAgent, nil
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (m *TaskMutation) ClearAssignedAgent() {
	m.assigned_agent = nil
	m.clearedFields[task.FieldAssignedAgent] = struct{}{}
}

// AssignedAgentCleared returns if the "assigned_agent" field was cleared in this mutation.
func (m *TaskMutation) AssignedAgentCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignedAgent]
	return ok
}

// ResetAssignedAgent resets all changes to the "assigned_agent" field.
func (m *TaskMutation) ResetAssignedAgent() {
	m.assigned_agent = nil
	delete(m.clearedFields, task.FieldAssignedAgent)
}

// SetCreatedByAgent sets the "created_by_agent" field.
func (m *TaskMutation) SetCreatedByAgent(s string) {
	m.created_by_agent = &s
}

// CreatedByAgent returns the value of the "created_by_agent" field in the mutation.
func (m *TaskMutation) CreatedByAgent() (r string, exists bool) {
	v := m.created_by_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByAgent returns the old "created_by_agent" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedByAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByAgent: %w", err)
	}
	return oldValue.CreatedByAgent, nil
}

// ClearCreatedByAgent clears the value of the "created_by_agent" field.
func (m *TaskMutation) ClearCreatedByAgent() {
	m.created_by_agent = nil
	m.clearedFields[task.FieldCreatedByAgent] = struct{}{}
}

// CreatedByAgentCleared returns if the "created_by_agent" field was cleared in this mutation.
func (m *TaskMutation) CreatedByAgentCleared() bool {
	_, ok := m.clearedFields[task.FieldCreatedByAgent]
	return ok
}

// ResetCreatedByAgent resets all changes to the "created_by_agent" field.
func (m *TaskMutation) ResetCreatedByAgent() {
	m.created_by_agent = nil
	delete(m.clearedFields, task.FieldCreatedByAgent)
}

// SetCreatedByUser sets the "created_by_user" field.
func (m *TaskMutation) SetCreatedByUser(s string) {
	m.created_by_user = &s
}

// CreatedByUser returns the value of the "created_by_user" field in the mutation.
func (m *TaskMutation) CreatedByUser() (r string, exists bool) {
	v := m.created_by_user
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByUser returns the old "created_by_user" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedByUser(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByUser: %w", err)
	}
	return oldValue.CreatedByUser, nil
}

// ClearCreatedByUser clears the value of the "created_by_user" field.
func (m *TaskMutation) ClearCreatedByUser() {
	m.created_by_user = nil
	m.clearedFields[task.FieldCreatedByUser] = struct{}{}
}

// CreatedByUserCleared returns if the "created_by_user" field was cleared in this mutation.
func (m *TaskMutation) CreatedByUserCleared() bool {
	_, ok := m.clearedFields[task.FieldCreatedByUser]
	return ok
}

// ResetCreatedByUser resets all changes to the "created_by_user" field.
func (m *TaskMutation) ResetCreatedByUser() {
	m.created_by_user = nil
	delete(m.clearedFields, task.FieldCreatedByUser)
}

// SetDependsOn sets the "depends_on" field.
func (m *TaskMutation) SetDependsOn(s []string) {
	m.depends_on = &s
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *TaskMutation) DependsOn() (r []string, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDependsOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds s to the "depends_on" field.
func (m *TaskMutation) AppendDependsOn(s []string) {
	m.appenddepends_on = append(m.appenddepends_on, s...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *TaskMutation) AppendedDependsOn() ([]string, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *TaskMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
}

// SetInputMapping sets the "input_mapping" field.
func (m *TaskMutation) SetInputMapping(value map[string]string) {
	m.input_mapping = &value
}

// InputMapping returns the value of the "input_mapping" field in the mutation.
func (m *TaskMutation) InputMapping() (r map[string]string, exists bool) {
	v := m.input_mapping
	if v == nil {
		return
	}
	return *v, true
}

// OldInputMapping returns the old "input_mapping" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldInputMapping(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputMapping is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputMapping requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputMapping: %w", err)
	}
	return oldValue.InputMapping, nil
}

// ClearInputMapping clears the value of the "input_mapping" field.
func (m *TaskMutation) ClearInputMapping() {
	m.input_mapping = nil
	m.clearedFields[task.FieldInputMapping] = struct{}{}
}

// InputMappingCleared returns if the "input_mapping" field was cleared in this mutation.
func (m *TaskMutation) InputMappingCleared() bool {
	_, ok := m.clearedFields[task.FieldInputMapping]
	return ok
}

// ResetInputMapping resets all changes to the "input_mapping" field.
func (m *TaskMutation) ResetInputMapping() {
	m.input_mapping = nil
	delete(m.clearedFields, task.FieldInputMapping)
}

// SetTimeoutMs sets the "timeout_ms" field.
func (m *TaskMutation) SetTimeoutMs(i int64) {
	m.timeout_ms = &i
	m.addtimeout_ms = nil
}

// TimeoutMs returns the value of the "timeout_ms" field in the mutation.
func (m *TaskMutation) TimeoutMs() (r int64, exists bool) {
	v := m.timeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutMs returns the old "timeout_ms" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTimeoutMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutMs: %w", err)
	}
	return oldValue.TimeoutMs, nil
}

// AddTimeoutMs adds i to the "timeout_ms" field.
func (m *TaskMutation) AddTimeoutMs(i int64) {
	if m.addtimeout_ms != nil {
		*m.addtimeout_ms += i
	} else {
		m.addtimeout_ms = &i
	}
}

// AddedTimeoutMs returns the value that was added to the "timeout_ms" field in this mutation.
func (m *TaskMutation) AddedTimeoutMs() (r int64, exists bool) {
	v := m.addtimeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearTimeoutMs clears the value of the "timeout_ms" field.
func (m *TaskMutation) ClearTimeoutMs() {
	m.timeout_ms = nil
	m.addtimeout_ms = nil
	m.clearedFields[task.FieldTimeoutMs] = struct{}{}
}

// TimeoutMsCleared returns if the "timeout_ms" field was cleared in this mutation.
func (m *TaskMutation) TimeoutMsCleared() bool {
	_, ok := m.clearedFields[task.FieldTimeoutMs]
	return ok
}

// ResetTimeoutMs resets all changes to the "timeout_ms" field.
func (m *TaskMutation) ResetTimeoutMs() {
	m.timeout_ms = nil
	m.addtimeout_ms = nil
	delete(m.clearedFields, task.FieldTimeoutMs)
}

// SetRetryCount sets the "retry_count" field.
func (m *TaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *TaskMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *TaskMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *TaskMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *TaskMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *TaskMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetProgressCurrent sets the "progress_current" field.
func (m *TaskMutation) SetProgressCurrent(i int) {
	m.progress_current = &i
	m.addprogress_current = nil
}

// ProgressCurrent returns the value of the "progress_current" field in the mutation.
func (m *TaskMutation) ProgressCurrent() (r int, exists bool) {
	v := m.progress_current
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressCurrent returns the old "progress_current" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProgressCurrent(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressCurrent: %w", err)
	}
	return oldValue.ProgressCurrent, nil
}

// AddProgressCurrent adds i to the "progress_current" field.
func (m *TaskMutation) AddProgressCurrent(i int) {
	if m.addprogress_current != nil {
		*m.addprogress_current += i
	} else {
		m.addprogress_current = &i
	}
}

// AddedProgressCurrent returns the value that was added to the "progress_current" field in this mutation.
func (m *TaskMutation) AddedProgressCurrent() (r int, exists bool) {
	v := m.addprogress_current
	if v == nil {
		return
	}
	return *v, true
}

// ClearProgressCurrent clears the value of the "progress_current" field.
func (m *TaskMutation) ClearProgressCurrent() {
	m.progress_current = nil
	m.addprogress_current = nil
	m.clearedFields[task.FieldProgressCurrent] = struct{}{}
}

// ProgressCurrentCleared returns if the "progress_current" field was cleared in this mutation.
func (m *TaskMutation) ProgressCurrentCleared() bool {
	_, ok := m.clearedFields[task.FieldProgressCurrent]
	return ok
}

// ResetProgressCurrent resets all changes to the "progress_current" field.
func (m *TaskMutation) ResetProgressCurrent() {
	m.progress_current = nil
	m.addprogress_current = nil
	delete(m.clearedFields, task.FieldProgressCurrent)
}

// SetProgressTotal sets the "progress_total" field.
func (m *TaskMutation) SetProgressTotal(i int) {
	m.progress_total = &i
	m.addprogress_total = nil
}

// ProgressTotal returns the value of the "progress_total" field in the mutation.
func (m *TaskMutation) ProgressTotal() (r int, exists bool) {
	v := m.progress_total
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressTotal returns the old "progress_total" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProgressTotal(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressTotal: %w", err)
	}
	return oldValue.ProgressTotal, nil
}

// AddProgressTotal adds i to the "progress_total" field.
func (m *TaskMutation) AddProgressTotal(i int) {
	if m.addprogress_total != nil {
		*m.addprogress_total += i
	} else {
		m.addprogress_total = &i
	}
}

// AddedProgressTotal returns the value that was added to the "progress_total" field in this mutation.
func (m *TaskMutation) AddedProgressTotal() (r int, exists bool) {
	v := m.addprogress_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearProgressTotal clears the value of the "progress_total" field.
func (m *TaskMutation) ClearProgressTotal() {
	m.progress_total = nil
	m.addprogress_total = nil
	m.clearedFields[task.FieldProgressTotal] = struct{}{}
}

// ProgressTotalCleared returns if the "progress_total" field was cleared in this mutation.
func (m *TaskMutation) ProgressTotalCleared() bool {
	_, ok := m.clearedFields[task.FieldProgressTotal]
	return ok
}

// ResetProgressTotal resets all changes to the "progress_total" field.
func (m *TaskMutation) ResetProgressTotal() {
	m.progress_total = nil
	m.addprogress_total = nil
	delete(m.clearedFields, task.FieldProgressTotal)
}

// SetProgressMessage sets the "progress_message" field.
func (m *TaskMutation) SetProgressMessage(s string) {
	m.progress_message = &s
}

// ProgressMessage returns the value of the "progress_message" field in the mutation.
func (m *TaskMutation) ProgressMessage() (r string, exists bool) {
	v := m.progress_message
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressMessage returns the old "progress_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProgressMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressMessage: %w", err)
	}
	return oldValue.ProgressMessage, nil
}

// ClearProgressMessage clears the value of the "progress_message" field.
func (m *TaskMutation) ClearProgressMessage() {
	m.progress_message = nil
	m.clearedFields[task.FieldProgressMessage] = struct{}{}
}

// ProgressMessageCleared returns if the "progress_message" field was cleared in this mutation.
func (m *TaskMutation) ProgressMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldProgressMessage]
	return ok
}

// ResetProgressMessage resets all changes to the "progress_message" field.
func (m *TaskMutation) ResetProgressMessage() {
	m.progress_message = nil
	delete(m.clearedFields, task.FieldProgressMessage)
}

// SetOutput sets the "output" field.
func (m *TaskMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *TaskMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *TaskMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[task.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *TaskMutation) OutputCleared() bool {
	_, ok := m.clearedFields[task.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *TaskMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, task.FieldOutput)
}

// SetResult sets the "result" field.
func (m *TaskMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *TaskMutation) ClearResult() {
	m.result = nil
	m.clearedFields[task.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[task.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TaskMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, task.FieldResult)
}

// SetLastError sets the "last_error" field.
func (m *TaskMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *TaskMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *TaskMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[task.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *TaskMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *TaskMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, task.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.team_id != nil {
		fields = append(fields, task.FieldTeamID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.required_capability != nil {
		fields = append(fields, task.FieldRequiredCapability)
	}
	if m.tags != nil {
		fields = append(fields, task.FieldTags)
	}
	if m.assigned_agent != nil {
		fields = append(fields, task.FieldAssignedAgent)
	}
	if m.created_by_agent != nil {
		fields = append(fields, task.FieldCreatedByAgent)
	}
	if m.created_by_user != nil {
		fields = append(fields, task.FieldCreatedByUser)
	}
	if m.depends_on != nil {
		fields = append(fields, task.FieldDependsOn)
	}
	if m.input_mapping != nil {
		fields = append(fields, task.FieldInputMapping)
	}
	if m.timeout_ms != nil {
		fields = append(fields, task.FieldTimeoutMs)
	}
	if m.retry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, task.FieldMaxRetries)
	}
	if m.progress_current != nil {
		fields = append(fields, task.FieldProgressCurrent)
	}
	if m.progress_total != nil {
		fields = append(fields, task.FieldProgressTotal)
	}
	if m.progress_message != nil {
		fields = append(fields, task.FieldProgressMessage)
	}
	if m.output != nil {
		fields = append(fields, task.FieldOutput)
	}
	if m.result != nil {
		fields = append(fields, task.FieldResult)
	}
	if m.last_error != nil {
		fields = append(fields, task.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTeamID:
		return m.TeamID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldStatus:
		return m.Status()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldRequiredCapability:
		return m.RequiredCapability()
	case task.FieldTags:
		return m.Tags()
	case task.FieldAssignedAgent:
		return m.AssignedAgent()
	case task.FieldCreatedByAgent:
		return m.CreatedByAgent()
	case task.FieldCreatedByUser:
		return m.CreatedByUser()
	case task.FieldDependsOn:
		return m.DependsOn()
	case task.FieldInputMapping:
		return m.InputMapping()
	case task.FieldTimeoutMs:
		return m.TimeoutMs()
	case task.FieldRetryCount:
		return m.RetryCount()
	case task.FieldMaxRetries:
		return m.MaxRetries()
	case task.FieldProgressCurrent:
		return m.ProgressCurrent()
	case task.FieldProgressTotal:
		return m.ProgressTotal()
	case task.FieldProgressMessage:
		return m.ProgressMessage()
	case task.FieldOutput:
		return m.Output()
	case task.FieldResult:
		return m.Result()
	case task.FieldLastError:
		return m.LastError()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTeamID:
		return m.OldTeamID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldRequiredCapability:
		return m.OldRequiredCapability(ctx)
	case task.FieldTags:
		return m.OldTags(ctx)
	case task.FieldAssignedAgent:
		return m.OldAssignedAgent(ctx)
	case task.FieldCreatedByAgent:
		return m.OldCreatedByAgent(ctx)
	case task.FieldCreatedByUser:
		return m.OldCreatedByUser(ctx)
	case task.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case task.FieldInputMapping:
		return m.OldInputMapping(ctx)
	case task.FieldTimeoutMs:
		return m.OldTimeoutMs(ctx)
	case task.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case task.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case task.FieldProgressCurrent:
		return m.OldProgressCurrent(ctx)
	case task.FieldProgressTotal:
		return m.OldProgressTotal(ctx)
	case task.FieldProgressMessage:
		return m.OldProgressMessage(ctx)
	case task.FieldOutput:
		return m.OldOutput(ctx)
	case task.FieldResult:
		return m.OldResult(ctx)
	case task.FieldLastError:
		return m.OldLastError(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTeamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(task.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldRequiredCapability:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredCapability(v)
		return nil
	case task.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case task.FieldAssignedAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgent(v)
		return nil
	case task.FieldCreatedByAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByAgent(v)
		return nil
	case task.FieldCreatedByUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByUser(v)
		return nil
	case task.FieldDependsOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case task.FieldInputMapping:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputMapping(v)
		return nil
	case task.FieldTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutMs(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case task.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case task.FieldProgressCurrent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressCurrent(v)
		return nil
	case task.FieldProgressTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressTotal(v)
		return nil
	case task.FieldProgressMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressMessage(v)
		return nil
	case task.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case task.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case task.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addtimeout_ms != nil {
		fields = append(fields, task.FieldTimeoutMs)
	}
	if m.addretry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, task.FieldMaxRetries)
	}
	if m.addprogress_current != nil {
		fields = append(fields, task.FieldProgressCurrent)
	}
	if m.addprogress_total != nil {
		fields = append(fields, task.FieldProgressTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTimeoutMs:
		return m.AddedTimeoutMs()
	case task.FieldRetryCount:
		return m.AddedRetryCount()
	case task.FieldMaxRetries:
		return m.AddedMaxRetries()
	case task.FieldProgressCurrent:
		return m.AddedProgressCurrent()
	case task.FieldProgressTotal:
		return m.AddedProgressTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutMs(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case task.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case task.FieldProgressCurrent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressCurrent(v)
		return nil
	case task.FieldProgressTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressTotal(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldRequiredCapability) {
		fields = append(fields, task.FieldRequiredCapability)
	}
	if m.FieldCleared(task.FieldAssignedAgent) {
		fields = append(fields, task.FieldAssignedAgent)
	}
	if m.FieldCleared(task.FieldCreatedByAgent) {
		fields = append(fields, task.FieldCreatedByAgent)
	}
	if m.FieldCleared(task.FieldCreatedByUser) {
		fields = append(fields, task.FieldCreatedByUser)
	}
	if m.FieldCleared(task.FieldInputMapping) {
		fields = append(fields, task.FieldInputMapping)
	}
	if m.FieldCleared(task.FieldTimeoutMs) {
		fields = append(fields, task.FieldTimeoutMs)
	}
	if m.FieldCleared(task.FieldProgressCurrent) {
		fields = append(fields, task.FieldProgressCurrent)
	}
	if m.FieldCleared(task.FieldProgressTotal) {
		fields = append(fields, task.FieldProgressTotal)
	}
	if m.FieldCleared(task.FieldProgressMessage) {
		fields = append(fields, task.FieldProgressMessage)
	}
	if m.FieldCleared(task.FieldOutput) {
		fields = append(fields, task.FieldOutput)
	}
	if m.FieldCleared(task.FieldResult) {
		fields = append(fields, task.FieldResult)
	}
	if m.FieldCleared(task.FieldLastError) {
		fields = append(fields, task.FieldLastError)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldRequiredCapability:
		m.ClearRequiredCapability()
		return nil
	case task.FieldAssignedAgent:
		m.ClearAssignedAgent()
		return nil
	case task.FieldCreatedByAgent:
		m.ClearCreatedByAgent()
		return nil
	case task.FieldCreatedByUser:
		m.ClearCreatedByUser()
		return nil
	case task.FieldInputMapping:
		m.ClearInputMapping()
		return nil
	case task.FieldTimeoutMs:
		m.ClearTimeoutMs()
		return nil
	case task.FieldProgressCurrent:
		m.ClearProgressCurrent()
		return nil
	case task.FieldProgressTotal:
		m.ClearProgressTotal()
		return nil
	case task.FieldProgressMessage:
		m.ClearProgressMessage()
		return nil
	case task.FieldOutput:
		m.ClearOutput()
		return nil
	case task.FieldResult:
		m.ClearResult()
		return nil
	case task.FieldLastError:
		m.ClearLastError()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTeamID:
		m.ResetTeamID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldRequiredCapability:
		m.ResetRequiredCapability()
		return nil
	case task.FieldTags:
		m.ResetTags()
		return nil
	case task.FieldAssignedAgent:
		m.ResetAssignedAgent()
		return nil
	case task.FieldCreatedByAgent:
		m.ResetCreatedByAgent()
		return nil
	case task.FieldCreatedByUser:
		m.ResetCreatedByUser()
		return nil
	case task.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case task.FieldInputMapping:
		m.ResetInputMapping()
		return nil
	case task.FieldTimeoutMs:
		m.ResetTimeoutMs()
		return nil
	case task.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case task.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case task.FieldProgressCurrent:
		m.ResetProgressCurrent()
		return nil
	case task.FieldProgressTotal:
		m.ResetProgressTotal()
		return nil
	case task.FieldProgressMessage:
		m.ResetProgressMessage()
		return nil
	case task.FieldOutput:
		m.ResetOutput()
		return nil
	case task.FieldResult:
		m.ResetResult()
		return nil
	case task.FieldLastError:
		m.ResetLastError()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

// TeamMutation represents an operation that mutates the Team nodes in the graph.
type TeamMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	owner_user     *string
	max_agents     *int
	addmax_agents  *int
	created_at     *time.Time
	archived_at    *time.Time
	clearedFields  map[string]struct{}
	members        map[string]struct{}
	removedmembers map[string]struct{}
	clearedmembers bool
	done           bool
	oldValue       func(context.Context) (*Team, error)
	predicates     []predicate.Team
}

var _ ent.Mutation = (*TeamMutation)(nil)

// teamOption allows management of the mutation configuration using functional options.
type teamOption func(*TeamMutation)

// newTeamMutation creates new mutation for the Team entity.
func newTeamMutation(c config, op Op, opts ...teamOption) *TeamMutation {
	m := &TeamMutation{
		config:        c,
		op:            op,
		typ:           TypeTeam,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeamID sets the ID field of the mutation.
func withTeamID(id string) teamOption {
	return func(m *TeamMutation) {
		var (
			err   error
			once  sync.Once
			value *Team
		)
		m.oldValue = func(ctx context.Context) (*Team, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Team.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeam sets the old Team of the mutation.
func withTeam(node *Team) teamOption {
	return func(m *TeamMutation) {
		m.oldValue = func(context.Context) (*Team, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Team entities.
func (m *TeamMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeamMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeamMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Team.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TeamMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TeamMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TeamMutation) ResetName() {
	m.name = nil
}

// SetOwnerUser sets the "owner_user" field.
func (m *TeamMutation) SetOwnerUser(s string) {
	m.owner_user = &s
}

// OwnerUser returns the value of the "owner_user" field in the mutation.
func (m *TeamMutation) OwnerUser() (r string, exists bool) {
	v := m.owner_user
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUser returns the old "owner_user" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldOwnerUser(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUser: %w", err)
	}
	return oldValue.OwnerUser, nil
}

// ResetOwnerUser resets all changes to the "owner_user" field.
func (m *TeamMutation) ResetOwnerUser() {
	m.owner_user = nil
}

// SetMaxAgents sets the "max_agents" field.
func (m *TeamMutation) SetMaxAgents(i int) {
	m.max_agents = &i
	m.addmax_agents = nil
}

// MaxAgents returns the value of the "max_agents" field in the mutation.
func (m *TeamMutation) MaxAgents() (r int, exists bool) {
	v := m.max_agents
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAgents returns the old "max_agents" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldMaxAgents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAgents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAgents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAgents: %w", err)
	}
	return oldValue.MaxAgents, nil
}

// AddMaxAgents adds i to the "max_agents" field.
func (m *TeamMutation) AddMaxAgents(i int) {
	if m.addmax_agents != nil {
		*m.addmax_agents += i
	} else {
		m.addmax_agents = &i
	}
}

// AddedMaxAgents returns the value that was added to the "max_agents" field in this mutation.
func (m *TeamMutation) AddedMaxAgents() (r int, exists bool) {
	v := m.addmax_agents
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAgents resets all changes to the "max_agents" field.
func (m *TeamMutation) ResetMaxAgents() {
	m.max_agents = nil
	m.addmax_agents = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TeamMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TeamMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TeamMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *TeamMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *TeamMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *TeamMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[team.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *TeamMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[team.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *TeamMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, team.FieldArchivedAt)
}

// AddMemberIDs adds the "members" edge to the TeamMember entity by ids.
func (m *TeamMutation) AddMemberIDs(ids ...string) {
	if m.members == nil {
		m.members = make(map[string]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the TeamMember entity.
func (m *TeamMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the TeamMember entity was cleared.
func (m *TeamMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the TeamMember entity by IDs.
func (m *TeamMutation) RemoveMemberIDs(ids ...string) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the TeamMember entity.
func (m *TeamMutation) RemovedMembersIDs() (ids []string) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *TeamMutation) MembersIDs() (ids []string) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *TeamMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// Where appends a list predicates to the TeamMutation builder.
func (m *TeamMutation) Where(ps ...predicate.Team) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Team, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Team).
func (m *TeamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeamMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, team.FieldName)
	}
	if m.owner_user != nil {
		fields = append(fields, team.FieldOwnerUser)
	}
	if m.max_agents != nil {
		fields = append(fields, team.FieldMaxAgents)
	}
	if m.created_at != nil {
		fields = append(fields, team.FieldCreatedAt)
	}
	if m.archived_at != nil {
		fields = append(fields, team.FieldArchivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case team.FieldName:
		return m.Name()
	case team.FieldOwnerUser:
		return m.OwnerUser()
	case team.FieldMaxAgents:
		return m.MaxAgents()
	case team.FieldCreatedAt:
		return m.CreatedAt()
	case team.FieldArchivedAt:
		return m.ArchivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case team.FieldName:
		return m.OldName(ctx)
	case team.FieldOwnerUser:
		return m.OldOwnerUser(ctx)
	case team.FieldMaxAgents:
		return m.OldMaxAgents(ctx)
	case team.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case team.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Team field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case team.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case team.FieldOwnerUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUser(v)
		return nil
	case team.FieldMaxAgents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAgents(v)
		return nil
	case team.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case team.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeamMutation) AddedFields() []string {
	var fields []string
	if m.addmax_agents != nil {
		fields = append(fields, team.FieldMaxAgents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeamMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case team.FieldMaxAgents:
		return m.AddedMaxAgents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) AddField(name string, value ent.Value) error {
	switch name {
	case team.FieldMaxAgents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAgents(v)
		return nil
	}
	return fmt.Errorf("unknown Team numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeamMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(team.FieldArchivedAt) {
		fields = append(fields, team.FieldArchivedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeamMutation) ClearField(name string) error {
	switch name {
	case team.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Team nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeamMutation) ResetField(name string) error {
	switch name {
	case team.FieldName:
		m.ResetName()
		return nil
	case team.FieldOwnerUser:
		m.ResetOwnerUser()
		return nil
	case team.FieldMaxAgents:
		m.ResetMaxAgents()
		return nil
	case team.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case team.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeamMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.members != nil {
		edges = append(edges, team.EdgeMembers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeamMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case team.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmembers != nil {
		edges = append(edges, team.EdgeMembers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeamMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case team.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmembers {
		edges = append(edges, team.EdgeMembers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeamMutation) EdgeCleared(name string) bool {
	switch name {
	case team.EdgeMembers:
		return m.clearedmembers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeamMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Team unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeamMutation) ResetEdge(name string) error {
	switch name {
	case team.EdgeMembers:
		m.ResetMembers()
		return nil
	}
	return fmt.Errorf("unknown Team edge %s", name)
}

// TeamMemberMutation represents an operation that mutates the TeamMember nodes in the graph.
type TeamMemberMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	role          *teammember.Role
	created_at    *time.Time
	clearedFields map[string]struct{}
	team          *string
	clearedteam   bool
	done          bool
	oldValue      func(context.Context) (*TeamMember, error)
	predicates    []predicate.TeamMember
}

var _ ent.Mutation = (*TeamMemberMutation)(nil)

// teammemberOption allows management of the mutation configuration using functional options.
type teammemberOption func(*TeamMemberMutation)

// newTeamMemberMutation creates new mutation for the TeamMember entity.
func newTeamMemberMutation(c config, op Op, opts ...teammemberOption) *TeamMemberMutation {
	m := &TeamMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeTeamMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeamMemberID sets the ID field of the mutation.
func withTeamMemberID(id string) teammemberOption {
	return func(m *TeamMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *TeamMember
		)
		m.oldValue = func(ctx context.Context) (*TeamMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TeamMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeamMember sets the old TeamMember of the mutation.
func withTeamMember(node *TeamMember) teammemberOption {
	return func(m *TeamMemberMutation) {
		m.oldValue = func(context.Context) (*TeamMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeamMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeamMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TeamMember entities.
func (m *TeamMemberMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeamMemberMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeamMemberMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TeamMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTeamID sets the "team_id" field.
func (m *TeamMemberMutation) SetTeamID(s string) {
	m.team = &s
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *TeamMemberMutation) TeamID() (r string, exists bool) {
	v := m.team
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the TeamMember entity.
// If the TeamMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMemberMutation) OldTeamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *TeamMemberMutation) ResetTeamID() {
	m.team = nil
}

// SetUserID sets the "user_id" field.
func (m *TeamMemberMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TeamMemberMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TeamMember entity.
// If the TeamMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMemberMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TeamMemberMutation) ResetUserID() {
	m.user_id = nil
}

// SetRole sets the "role" field.
func (m *TeamMemberMutation) SetRole(t teammember.Role) {
	m.role = &t
}

// Role returns the value of the "role" field in the mutation.
func (m *TeamMemberMutation) Role() (r teammember.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the TeamMember entity.
// If the TeamMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMemberMutation) OldRole(ctx context.Context) (v teammember.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *TeamMemberMutation) ResetRole() {
	m.role = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TeamMemberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TeamMemberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TeamMember entity.
// If the TeamMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMemberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TeamMemberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTeam clears the "team" edge to the Team entity.
func (m *TeamMemberMutation) ClearTeam() {
	m.clearedteam = true
	m.clearedFields[teammember.FieldTeamID] = struct{}{}
}

// TeamCleared reports if the "team" edge to the Team entity was cleared.
func (m *TeamMemberMutation) TeamCleared() bool {
	return m.clearedteam
}

// TeamIDs returns the "team" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TeamID instead. It exists only for internal usage by the builders.
func (m *TeamMemberMutation) TeamIDs() (ids []string) {
	if id := m.team; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTeam resets all changes to the "team" edge.
func (m *TeamMemberMutation) ResetTeam() {
	m.team = nil
	m.clearedteam = false
}

// Where appends a list predicates to the TeamMemberMutation builder.
func (m *TeamMemberMutation) Where(ps ...predicate.TeamMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeamMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeamMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TeamMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeamMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeamMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TeamMember).
func (m *TeamMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeamMemberMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.team != nil {
		fields = append(fields, teammember.FieldTeamID)
	}
	if m.user_id != nil {
		fields = append(fields, teammember.FieldUserID)
	}
	if m.role != nil {
		fields = append(fields, teammember.FieldRole)
	}
	if m.created_at != nil {
		fields = append(fields, teammember.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeamMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case teammember.FieldTeamID:
		return m.TeamID()
	case teammember.FieldUserID:
		return m.UserID()
	case teammember.FieldRole:
		return m.Role()
	case teammember.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeamMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case teammember.FieldTeamID:
		return m.OldTeamID(ctx)
	case teammember.FieldUserID:
		return m.OldUserID(ctx)
	case teammember.FieldRole:
		return m.OldRole(ctx)
	case teammember.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TeamMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case teammember.FieldTeamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case teammember.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case teammember.FieldRole:
		v, ok := value.(teammember.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case teammember.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TeamMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeamMemberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeamMemberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TeamMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeamMemberMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeamMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeamMemberMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TeamMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeamMemberMutation) ResetField(name string) error {
	switch name {
	case teammember.FieldTeamID:
		m.ResetTeamID()
		return nil
	case teammember.FieldUserID:
		m.ResetUserID()
		return nil
	case teammember.FieldRole:
		m.ResetRole()
		return nil
	case teammember.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TeamMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeamMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.team != nil {
		edges = append(edges, teammember.EdgeTeam)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeamMemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case teammember.EdgeTeam:
		if id := m.team; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeamMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeamMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeamMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedteam {
		edges = append(edges, teammember.EdgeTeam)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeamMemberMutation) EdgeCleared(name string) bool {
	switch name {
	case teammember.EdgeTeam:
		return m.clearedteam
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeamMemberMutation) ClearEdge(name string) error {
	switch name {
	case teammember.EdgeTeam:
		m.ClearTeam()
		return nil
	}
	return fmt.Errorf("unknown TeamMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeamMemberMutation) ResetEdge(name string) error {
	switch name {
	case teammember.EdgeTeam:
		m.ResetTeam()
		return nil
	}
	return fmt.Errorf("unknown TeamMember edge %s", name)
}

// WebhookMutation represents an operation that mutates the Webhook nodes in the graph.
type WebhookMutation struct {
	config
	op                Op
	typ               string
	id                *string
	team_id           *string
	url               *string
	secret            *string
	events            *[]string
	appendevents      []string
	active            *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	deliveries        map[string]struct{}
	removeddeliveries map[string]struct{}
	cleareddeliveries bool
	done              bool
	oldValue          func(context.Context) (*Webhook, error)
	predicates        []predicate.Webhook
}

var _ ent.Mutation = (*WebhookMutation)(nil)

// webhookOption allows management of the mutation configuration using functional options.
type webhookOption func(*WebhookMutation)

// newWebhookMutation creates new mutation for the Webhook entity.
func newWebhookMutation(c config, op Op, opts ...webhookOption) *WebhookMutation {
	m := &WebhookMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhook,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookID sets the ID field of the mutation.
func withWebhookID(id string) webhookOption {
	return func(m *WebhookMutation) {
		var (
			err   error
			once  sync.Once
			value *Webhook
		)
		m.oldValue = func(ctx context.Context) (*Webhook, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Webhook.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhook sets the old Webhook of the mutation.
func withWebhook(node *Webhook) webhookOption {
	return func(m *WebhookMutation) {
		m.oldValue = func(context.Context) (*Webhook, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Webhook entities.
func (m *WebhookMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Webhook.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTeamID sets the "team_id" field.
func (m *WebhookMutation) SetTeamID(s string) {
	m.team_id = &s
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *WebhookMutation) TeamID() (r string, exists bool) {
	v := m.team_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldTeamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *WebhookMutation) ResetTeamID() {
	m.team_id = nil
}

// SetURL sets the "url" field.
func (m *WebhookMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *WebhookMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *WebhookMutation) ResetURL() {
	m.url = nil
}

// SetSecret sets the "secret" field.
func (m *WebhookMutation) SetSecret(s string) {
	m.secret = &s
}

// Secret returns the value of the "secret" field in the mutation.
func (m *WebhookMutation) Secret() (r string, exists bool) {
	v := m.secret
	if v == nil {
		return
	}
	return *v, true
}

// OldSecret returns the old "secret" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecret: %w", err)
	}
	return oldValue.Secret, nil
}

// ResetSecret resets all changes to the "secret" field.
func (m *WebhookMutation) ResetSecret() {
	m.secret = nil
}

// SetEvents sets the "events" field.
func (m *WebhookMutation) SetEvents(s []string) {
	m.events = &s
	m.appendevents = nil
}

// Events returns the value of the "events" field in the mutation.
func (m *WebhookMutation) Events() (r []string, exists bool) {
	v := m.events
	if v == nil {
		return
	}
	return *v, true
}

// OldEvents returns the old "events" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldEvents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvents: %w", err)
	}
	return oldValue.Events, nil
}

// AppendEvents adds s to the "events" field.
func (m *WebhookMutation) AppendEvents(s []string) {
	m.appendevents = append(m.appendevents, s...)
}

// AppendedEvents returns the list of values that were appended to the "events" field in this mutation.
func (m *WebhookMutation) AppendedEvents() ([]string, bool) {
	if len(m.appendevents) == 0 {
		return nil, false
	}
	return m.appendevents, true
}

// ResetEvents resets all changes to the "events" field.
func (m *WebhookMutation) ResetEvents() {
	m.events = nil
	m.appendevents = nil
}

// SetActive sets the "active" field.
func (m *WebhookMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *WebhookMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *WebhookMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by ids.
func (m *WebhookMutation) AddDeliveryIDs(ids ...string) {
	if m.deliveries == nil {
		m.deliveries = make(map[string]struct{})
	}
	for i := range ids {
		m.deliveries[ids[i]] = struct{}{}
	}
}

// ClearDeliveries clears the "deliveries" edge to the WebhookDelivery entity.
func (m *WebhookMutation) ClearDeliveries() {
	m.cleareddeliveries = true
}

// DeliveriesCleared reports if the "deliveries" edge to the WebhookDelivery entity was cleared.
func (m *WebhookMutation) DeliveriesCleared() bool {
	return m.cleareddeliveries
}

// RemoveDeliveryIDs removes the "deliveries" edge to the WebhookDelivery entity by IDs.
func (m *WebhookMutation) RemoveDeliveryIDs(ids ...string) {
	if m.removeddeliveries == nil {
		m.removeddeliveries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.deliveries, ids[i])
		m.removeddeliveries[ids[i]] = struct{}{}
	}
}

// RemovedDeliveries returns the removed IDs of the "deliveries" edge to the WebhookDelivery entity.
func (m *WebhookMutation) RemovedDeliveriesIDs() (ids []string) {
	for id := range m.removeddeliveries {
		ids = append(ids, id)
	}
	return
}

// DeliveriesIDs returns the "deliveries" edge IDs in the mutation.
func (m *WebhookMutation) DeliveriesIDs() (ids []string) {
	for id := range m.deliveries {
		ids = append(ids, id)
	}
	return
}

// ResetDeliveries resets all changes to the "deliveries" edge.
func (m *WebhookMutation) ResetDeliveries() {
	m.deliveries = nil
	m.cleareddeliveries = false
	m.removeddeliveries = nil
}

// Where appends a list predicates to the WebhookMutation builder.
func (m *WebhookMutation) Where(ps ...predicate.Webhook) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Webhook, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Webhook).
func (m *WebhookMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.team_id != nil {
		fields = append(fields, webhook.FieldTeamID)
	}
	if m.url != nil {
		fields = append(fields, webhook.FieldURL)
	}
	if m.secret != nil {
		fields = append(fields, webhook.FieldSecret)
	}
	if m.events != nil {
		fields = append(fields, webhook.FieldEvents)
	}
	if m.active != nil {
		fields = append(fields, webhook.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, webhook.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhook.FieldTeamID:
		return m.TeamID()
	case webhook.FieldURL:
		return m.URL()
	case webhook.FieldSecret:
		return m.Secret()
	case webhook.FieldEvents:
		return m.Events()
	case webhook.FieldActive:
		return m.Active()
	case webhook.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhook.FieldTeamID:
		return m.OldTeamID(ctx)
	case webhook.FieldURL:
		return m.OldURL(ctx)
	case webhook.FieldSecret:
		return m.OldSecret(ctx)
	case webhook.FieldEvents:
		return m.OldEvents(ctx)
	case webhook.FieldActive:
		return m.OldActive(ctx)
	case webhook.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Webhook field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhook.FieldTeamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case webhook.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case webhook.FieldSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecret(v)
		return nil
	case webhook.FieldEvents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvents(v)
		return nil
	case webhook.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case webhook.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Webhook field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Webhook numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Webhook nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookMutation) ResetField(name string) error {
	switch name {
	case webhook.FieldTeamID:
		m.ResetTeamID()
		return nil
	case webhook.FieldURL:
		m.ResetURL()
		return nil
	case webhook.FieldSecret:
		m.ResetSecret()
		return nil
	case webhook.FieldEvents:
		m.ResetEvents()
		return nil
	case webhook.FieldActive:
		m.ResetActive()
		return nil
	case webhook.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Webhook field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deliveries != nil {
		edges = append(edges, webhook.EdgeDeliveries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case webhook.EdgeDeliveries:
		ids := make([]ent.Value, 0, len(m.deliveries))
		for id := range m.deliveries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddeliveries != nil {
		edges = append(edges, webhook.EdgeDeliveries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case webhook.EdgeDeliveries:
		ids := make([]ent.Value, 0, len(m.removeddeliveries))
		for id := range m.removeddeliveries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeliveries {
		edges = append(edges, webhook.EdgeDeliveries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookMutation) EdgeCleared(name string) bool {
	switch name {
	case webhook.EdgeDeliveries:
		return m.cleareddeliveries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Webhook unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookMutation) ResetEdge(name string) error {
	switch name {
	case webhook.EdgeDeliveries:
		m.ResetDeliveries()
		return nil
	}
	return fmt.Errorf("unknown Webhook edge %s", name)
}

// WebhookDeliveryMutation represents an operation that mutates the WebhookDelivery nodes in the graph.
type WebhookDeliveryMutation struct {
	config
	op               Op
	typ              string
	id               *string
	event            *string
	status           *webhookdelivery.Status
	attempts         *int
	addattempts      *int
	max_attempts     *int
	addmax_attempts  *int
	next_retry_at    *time.Time
	response_code    *int
	addresponse_code *int
	payload          *map[string]interface{}
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	webhook          *string
	clearedwebhook   bool
	done             bool
	oldValue         func(context.Context) (*WebhookDelivery, error)
	predicates       []predicate.WebhookDelivery
}

var _ ent.Mutation = (*WebhookDeliveryMutation)(nil)

// webhookdeliveryOption allows management of the mutation configuration using functional options.
type webhookdeliveryOption func(*WebhookDeliveryMutation)

// newWebhookDeliveryMutation creates new mutation for the WebhookDelivery entity.
func newWebhookDeliveryMutation(c config, op Op, opts ...webhookdeliveryOption) *WebhookDeliveryMutation {
	m := &WebhookDeliveryMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookDelivery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookDeliveryID sets the ID field of the mutation.
func withWebhookDeliveryID(id string) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookDelivery
		)
		m.oldValue = func(ctx context.Context) (*WebhookDelivery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookDelivery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookDelivery sets the old WebhookDelivery of the mutation.
func withWebhookDelivery(node *WebhookDelivery) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		m.oldValue = func(context.Context) (*WebhookDelivery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookDeliveryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookDeliveryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookDelivery entities.
func (m *WebhookDeliveryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookDeliveryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookDeliveryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookDelivery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWebhookID sets the "webhook_id" field.
func (m *WebhookDeliveryMutation) SetWebhookID(s string) {
	m.webhook = &s
}

// WebhookID returns the value of the "webhook_id" field in the mutation.
func (m *WebhookDeliveryMutation) WebhookID() (r string, exists bool) {
	v := m.webhook
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookID returns the old "webhook_id" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldWebhookID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookID: %w", err)
	}
	return oldValue.WebhookID, nil
}

// ResetWebhookID resets all changes to the "webhook_id" field.
func (m *WebhookDeliveryMutation) ResetWebhookID() {
	m.webhook = nil
}

// SetEvent sets the "event" field.
func (m *WebhookDeliveryMutation) SetEvent(s string) {
	m.event = &s
}

// Event returns the value of the "event" field in the mutation.
func (m *WebhookDeliveryMutation) Event() (r string, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEvent returns the old "event" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldEvent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvent: %w", err)
	}
	return oldValue.Event, nil
}

// ResetEvent resets all changes to the "event" field.
func (m *WebhookDeliveryMutation) ResetEvent() {
	m.event = nil
}

// SetStatus sets the "status" field.
func (m *WebhookDeliveryMutation) SetStatus(w webhookdelivery.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WebhookDeliveryMutation) Status() (r webhookdelivery.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldStatus(ctx context.Context) (v webhookdelivery.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WebhookDeliveryMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *WebhookDeliveryMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *WebhookDeliveryMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *WebhookDeliveryMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *WebhookDeliveryMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *WebhookDeliveryMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *WebhookDeliveryMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *WebhookDeliveryMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *WebhookDeliveryMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *WebhookDeliveryMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *WebhookDeliveryMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *WebhookDeliveryMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *WebhookDeliveryMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *WebhookDeliveryMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[webhookdelivery.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *WebhookDeliveryMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, webhookdelivery.FieldNextRetryAt)
}

// SetResponseCode sets the "response_code" field.
func (m *WebhookDeliveryMutation) SetResponseCode(i int) {
	m.response_code = &i
	m.addresponse_code = nil
}

// ResponseCode returns the value of the "response_code" field in the mutation.
func (m *WebhookDeliveryMutation) ResponseCode() (r int, exists bool) {
	v := m.response_code
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseCode returns the old "response_code" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldResponseCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseCode: %w", err)
	}
	return oldValue.ResponseCode, nil
}

// AddResponseCode adds i to the "response_code" field.
func (m *WebhookDeliveryMutation) AddResponseCode(i int) {
	if m.addresponse_code != nil {
		*m.addresponse_code += i
	} else {
		m.addresponse_code = &i
	}
}

// AddedResponseCode returns the value that was added to the "response_code" field in this mutation.
func (m *WebhookDeliveryMutation) AddedResponseCode() (r int, exists bool) {
	v := m.addresponse_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearResponseCode clears the value of the "response_code" field.
func (m *WebhookDeliveryMutation) ClearResponseCode() {
	m.response_code = nil
	m.addresponse_code = nil
	m.clearedFields[webhookdelivery.FieldResponseCode] = struct{}{}
}

// ResponseCodeCleared returns if the "response_code" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) ResponseCodeCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldResponseCode]
	return ok
}

// ResetResponseCode resets all changes to the "response_code" field.
func (m *WebhookDeliveryMutation) ResetResponseCode() {
	m.response_code = nil
	m.addresponse_code = nil
	delete(m.clearedFields, webhookdelivery.FieldResponseCode)
}

// SetPayload sets the "payload" field.
func (m *WebhookDeliveryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WebhookDeliveryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *WebhookDeliveryMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookDeliveryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookDeliveryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookDeliveryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WebhookDeliveryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WebhookDeliveryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WebhookDeliveryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWebhook clears the "webhook" edge to the Webhook entity.
func (m *WebhookDeliveryMutation) ClearWebhook() {
	m.clearedwebhook = true
	m.clearedFields[webhookdelivery.FieldWebhookID] = struct{}{}
}

// WebhookCleared reports if the "webhook" edge to the Webhook entity was cleared.
func (m *WebhookDeliveryMutation) WebhookCleared() bool {
	return m.clearedwebhook
}

// WebhookIDs returns the "webhook" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WebhookID instead. It exists only for internal usage by the builders.
func (m *WebhookDeliveryMutation) WebhookIDs() (ids []string) {
	if id := m.webhook; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWebhook resets all changes to the "webhook" edge.
func (m *WebhookDeliveryMutation) ResetWebhook() {
	m.webhook = nil
	m.clearedwebhook = false
}

// Where appends a list predicates to the WebhookDeliveryMutation builder.
func (m *WebhookDeliveryMutation) Where(ps ...predicate.WebhookDelivery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookDeliveryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookDeliveryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookDelivery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookDeliveryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookDeliveryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookDelivery).
func (m *WebhookDeliveryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookDeliveryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.webhook != nil {
		fields = append(fields, webhookdelivery.FieldWebhookID)
	}
	if m.event != nil {
		fields = append(fields, webhookdelivery.FieldEvent)
	}
	if m.status != nil {
		fields = append(fields, webhookdelivery.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, webhookdelivery.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, webhookdelivery.FieldMaxAttempts)
	}
	if m.next_retry_at != nil {
		fields = append(fields, webhookdelivery.FieldNextRetryAt)
	}
	if m.response_code != nil {
		fields = append(fields, webhookdelivery.FieldResponseCode)
	}
	if m.payload != nil {
		fields = append(fields, webhookdelivery.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, webhookdelivery.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, webhookdelivery.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookDeliveryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookdelivery.FieldWebhookID:
		return m.WebhookID()
	case webhookdelivery.FieldEvent:
		return m.Event()
	case webhookdelivery.FieldStatus:
		return m.Status()
	case webhookdelivery.FieldAttempts:
		return m.Attempts()
	case webhookdelivery.FieldMaxAttempts:
		return m.MaxAttempts()
	case webhookdelivery.FieldNextRetryAt:
		return m.NextRetryAt()
	case webhookdelivery.FieldResponseCode:
		return m.ResponseCode()
	case webhookdelivery.FieldPayload:
		return m.Payload()
	case webhookdelivery.FieldCreatedAt:
		return m.CreatedAt()
	case webhookdelivery.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookDeliveryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookdelivery.FieldWebhookID:
		return m.OldWebhookID(ctx)
	case webhookdelivery.FieldEvent:
		return m.OldEvent(ctx)
	case webhookdelivery.FieldStatus:
		return m.OldStatus(ctx)
	case webhookdelivery.FieldAttempts:
		return m.OldAttempts(ctx)
	case webhookdelivery.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case webhookdelivery.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case webhookdelivery.FieldResponseCode:
		return m.OldResponseCode(ctx)
	case webhookdelivery.FieldPayload:
		return m.OldPayload(ctx)
	case webhookdelivery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case webhookdelivery.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookdelivery.FieldWebhookID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookID(v)
		return nil
	case webhookdelivery.FieldEvent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvent(v)
		return nil
	case webhookdelivery.FieldStatus:
		v, ok := value.(webhookdelivery.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case webhookdelivery.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case webhookdelivery.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case webhookdelivery.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case webhookdelivery.FieldResponseCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseCode(v)
		return nil
	case webhookdelivery.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case webhookdelivery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case webhookdelivery.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookDeliveryMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, webhookdelivery.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, webhookdelivery.FieldMaxAttempts)
	}
	if m.addresponse_code != nil {
		fields = append(fields, webhookdelivery.FieldResponseCode)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookDeliveryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case webhookdelivery.FieldAttempts:
		return m.AddedAttempts()
	case webhookdelivery.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case webhookdelivery.FieldResponseCode:
		return m.AddedResponseCode()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case webhookdelivery.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case webhookdelivery.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case webhookdelivery.FieldResponseCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseCode(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookDeliveryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookdelivery.FieldNextRetryAt) {
		fields = append(fields, webhookdelivery.FieldNextRetryAt)
	}
	if m.FieldCleared(webhookdelivery.FieldResponseCode) {
		fields = append(fields, webhookdelivery.FieldResponseCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookDeliveryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearField(name string) error {
	switch name {
	case webhookdelivery.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	case webhookdelivery.FieldResponseCode:
		m.ClearResponseCode()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetField(name string) error {
	switch name {
	case webhookdelivery.FieldWebhookID:
		m.ResetWebhookID()
		return nil
	case webhookdelivery.FieldEvent:
		m.ResetEvent()
		return nil
	case webhookdelivery.FieldStatus:
		m.ResetStatus()
		return nil
	case webhookdelivery.FieldAttempts:
		m.ResetAttempts()
		return nil
	case webhookdelivery.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case webhookdelivery.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case webhookdelivery.FieldResponseCode:
		m.ResetResponseCode()
		return nil
	case webhookdelivery.FieldPayload:
		m.ResetPayload()
		return nil
	case webhookdelivery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case webhookdelivery.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookDeliveryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.webhook != nil {
		edges = append(edges, webhookdelivery.EdgeWebhook)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookDeliveryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case webhookdelivery.EdgeWebhook:
		if id := m.webhook; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookDeliveryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookDeliveryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookDeliveryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwebhook {
		edges = append(edges, webhookdelivery.EdgeWebhook)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookDeliveryMutation) EdgeCleared(name string) bool {
	switch name {
	case webhookdelivery.EdgeWebhook:
		return m.clearedwebhook
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearEdge(name string) error {
	switch name {
	case webhookdelivery.EdgeWebhook:
		m.ClearWebhook()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetEdge(name string) error {
	switch name {
	case webhookdelivery.EdgeWebhook:
		m.ResetWebhook()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery edge %s", name)
}

// WorkflowRunMutation represents an operation that mutates the WorkflowRun nodes in the graph.
type WorkflowRunMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	user_id                 *string
	team_id                 *string
	workflow_name           *string
	definition              *models.WorkflowDefinition
	input                   *map[string]interface{}
	status                  *workflowrun.Status
	completed_stages        *[]string
	appendcompleted_stages  []string
	output                  *map[string]interface{}
	error_message           *string
	pod_id                  *string
	last_heartbeat_at       *time.Time
	created_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	clearedFields           map[string]struct{}
	stage_executions        map[string]struct{}
	removedstage_executions map[string]struct{}
	clearedstage_executions bool
	audit_records           map[string]struct{}
	removedaudit_records    map[string]struct{}
	clearedaudit_records    bool
	done                    bool
	oldValue                func(context.Context) (*WorkflowRun, error)
	predicates              []predicate.WorkflowRun
}

var _ ent.Mutation = (*WorkflowRunMutation)(nil)

// workflowrunOption allows management of the mutation configuration using functional options.
type workflowrunOption func(*WorkflowRunMutation)

// newWorkflowRunMutation creates new mutation for the WorkflowRun entity.
func newWorkflowRunMutation(c config, op Op, opts ...workflowrunOption) *WorkflowRunMutation {
	m := &WorkflowRunMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowRunID sets the ID field of the mutation.
func withWorkflowRunID(id string) workflowrunOption {
	return func(m *WorkflowRunMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowRun
		)
		m.oldValue = func(ctx context.Context) (*WorkflowRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowRun sets the old WorkflowRun of the mutation.
func withWorkflowRun(node *WorkflowRun) workflowrunOption {
	return func(m *WorkflowRunMutation) {
		m.oldValue = func(context.Context) (*WorkflowRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowRun entities.
func (m *WorkflowRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *WorkflowRunMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WorkflowRunMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WorkflowRunMutation) ResetUserID() {
	m.user_id = nil
}

// SetTeamID sets the "team_id" field.
func (m *WorkflowRunMutation) SetTeamID(s string) {
	m.team_id = &s
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *WorkflowRunMutation) TeamID() (r string, exists bool) {
	v := m.team_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldTeamID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ClearTeamID clears the value of the "team_id" field.
func (m *WorkflowRunMutation) ClearTeamID() {
	m.team_id = nil
	m.clearedFields[workflowrun.FieldTeamID] = struct{}{}
}

// TeamIDCleared returns if the "team_id" field was cleared in this mutation.
func (m *WorkflowRunMutation) TeamIDCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldTeamID]
	return ok
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *WorkflowRunMutation) ResetTeamID() {
	m.team_id = nil
	delete(m.clearedFields, workflowrun.FieldTeamID)
}

// SetWorkflowName sets the "workflow_name" field.
func (m *WorkflowRunMutation) SetWorkflowName(s string) {
	m.workflow_name = &s
}

// WorkflowName returns the value of the "workflow_name" field in the mutation.
func (m *WorkflowRunMutation) WorkflowName() (r string, exists bool) {
	v := m.workflow_name
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowName returns the old "workflow_name" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldWorkflowName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowName: %w", err)
	}
	return oldValue.WorkflowName, nil
}

// ResetWorkflowName resets all changes to the "workflow_name" field.
func (m *WorkflowRunMutation) ResetWorkflowName() {
	m.workflow_name = nil
}

// SetDefinition sets the "definition" field.
func (m *WorkflowRunMutation) SetDefinition(md models.WorkflowDefinition) {
	m.definition = &md
}

// Definition returns the value of the "definition" field in the mutation.
func (m *WorkflowRunMutation) Definition() (r models.WorkflowDefinition, exists bool) {
	v := m.definition
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinition returns the old "definition" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldDefinition(ctx context.Context) (v models.WorkflowDefinition, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinition: %w", err)
	}
	return oldValue.Definition, nil
}

// ResetDefinition resets all changes to the "definition" field.
func (m *WorkflowRunMutation) ResetDefinition() {
	m.definition = nil
}

// SetInput sets the "input" field.
func (m *WorkflowRunMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *WorkflowRunMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *WorkflowRunMutation) ClearInput() {
	m.input = nil
	m.clearedFields[workflowrun.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *WorkflowRunMutation) InputCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *WorkflowRunMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, workflowrun.FieldInput)
}

// SetStatus sets the "status" field.
func (m *WorkflowRunMutation) SetStatus(w workflowrun.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowRunMutation) Status() (r workflowrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldStatus(ctx context.Context) (v workflowrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowRunMutation) ResetStatus() {
	m.status = nil
}

// SetCompletedStages sets the "completed_stages" field.
func (m *WorkflowRunMutation) SetCompletedStages(s []string) {
	m.completed_stages = &s
	m.appendcompleted_stages = nil
}

// CompletedStages returns the value of the "completed_stages" field in the mutation.
func (m *WorkflowRunMutation) CompletedStages() (r []string, exists bool) {
	v := m.completed_stages
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedStages returns the old "completed_stages" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCompletedStages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedStages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedStages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedStages: %w", err)
	}
	return oldValue.CompletedStages, nil
}

// AppendCompletedStages adds s to the "completed_stages" field.
func (m *WorkflowRunMutation) AppendCompletedStages(s []string) {
	m.appendcompleted_stages = append(m.appendcompleted_stages, s...)
}

// AppendedCompletedStages returns the list of values that were appended to the "completed_stages" field in this mutation.
func (m *WorkflowRunMutation) AppendedCompletedStages() ([]string, bool) {
	if len(m.appendcompleted_stages) == 0 {
		return nil, false
	}
	return m.appendcompleted_stages, true
}

// ResetCompletedStages resets all changes to the "completed_stages" field.
func (m *WorkflowRunMutation) ResetCompletedStages() {
	m.completed_stages = nil
	m.appendcompleted_stages = nil
}

// SetOutput sets the "output" field.
func (m *WorkflowRunMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *WorkflowRunMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *WorkflowRunMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[workflowrun.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *WorkflowRunMutation) OutputCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *WorkflowRunMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, workflowrun.FieldOutput)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowrun.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *WorkflowRunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *WorkflowRunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *WorkflowRunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[workflowrun.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *WorkflowRunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *WorkflowRunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, workflowrun.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *WorkflowRunMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *WorkflowRunMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *WorkflowRunMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[workflowrun.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *WorkflowRunMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *WorkflowRunMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, workflowrun.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkflowRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workflowrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkflowRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workflowrun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflowrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflowrun.FieldCompletedAt)
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by ids.
func (m *WorkflowRunMutation) AddStageExecutionIDs(ids ...string) {
	if m.stage_executions == nil {
		m.stage_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.stage_executions[ids[i]] = struct{}{}
	}
}

// ClearStageExecutions clears the "stage_executions" edge to the StageExecution entity.
func (m *WorkflowRunMutation) ClearStageExecutions() {
	m.clearedstage_executions = true
}

// StageExecutionsCleared reports if the "stage_executions" edge to the StageExecution entity was cleared.
func (m *WorkflowRunMutation) StageExecutionsCleared() bool {
	return m.clearedstage_executions
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to the StageExecution entity by IDs.
func (m *WorkflowRunMutation) RemoveStageExecutionIDs(ids ...string) {
	if m.removedstage_executions == nil {
		m.removedstage_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stage_executions, ids[i])
		m.removedstage_executions[ids[i]] = struct{}{}
	}
}

// RemovedStageExecutions returns the removed IDs of the "stage_executions" edge to the StageExecution entity.
func (m *WorkflowRunMutation) RemovedStageExecutionsIDs() (ids []string) {
	for id := range m.removedstage_executions {
		ids = append(ids, id)
	}
	return
}

// StageExecutionsIDs returns the "stage_executions" edge IDs in the mutation.
func (m *WorkflowRunMutation) StageExecutionsIDs() (ids []string) {
	for id := range m.stage_executions {
		ids = append(ids, id)
	}
	return
}

// ResetStageExecutions resets all changes to the "stage_executions" edge.
func (m *WorkflowRunMutation) ResetStageExecutions() {
	m.stage_executions = nil
	m.clearedstage_executions = false
	m.removedstage_executions = nil
}

// AddAuditRecordIDs adds the "audit_records" edge to the AuditRecord entity by ids.
func (m *WorkflowRunMutation) AddAuditRecordIDs(ids ...string) {
	if m.audit_records == nil {
		m.audit_records = make(map[string]struct{})
	}
	for i := range ids {
		m.audit_records[ids[i]] = struct{}{}
	}
}

// ClearAuditRecords clears the "audit_records" edge to the AuditRecord entity.
func (m *WorkflowRunMutation) ClearAuditRecords() {
	m.clearedaudit_records = true
}

// AuditRecordsCleared reports if the "audit_records" edge to the AuditRecord entity was cleared.
func (m *WorkflowRunMutation) AuditRecordsCleared() bool {
	return m.clearedaudit_records
}

// RemoveAuditRecordIDs removes the "audit_records" edge to the AuditRecord entity by IDs.
func (m *WorkflowRunMutation) RemoveAuditRecordIDs(ids ...string) {
	if m.removedaudit_records == nil {
		m.removedaudit_records = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.audit_records, ids[i])
		m.removedaudit_records[ids[i]] = struct{}{}
	}
}

// RemovedAuditRecords returns the removed IDs of the "audit_records" edge to the AuditRecord entity.
func (m *WorkflowRunMutation) RemovedAuditRecordsIDs() (ids []string) {
	for id := range m.removedaudit_records {
		ids = append(ids, id)
	}
	return
}

// AuditRecordsIDs returns the "audit_records" edge IDs in the mutation.
func (m *WorkflowRunMutation) AuditRecordsIDs() (ids []string) {
	for id := range m.audit_records {
		ids = append(ids, id)
	}
	return
}

// ResetAuditRecords resets all changes to the "audit_records" edge.
func (m *WorkflowRunMutation) ResetAuditRecords() {
	m.audit_records = nil
	m.clearedaudit_records = false
	m.removedaudit_records = nil
}

// Where appends a list predicates to the WorkflowRunMutation builder.
func (m *WorkflowRunMutation) Where(ps ...predicate.WorkflowRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowRun).
func (m *WorkflowRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowRunMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.user_id != nil {
		fields = append(fields, workflowrun.FieldUserID)
	}
	if m.team_id != nil {
		fields = append(fields, workflowrun.FieldTeamID)
	}
	if m.workflow_name != nil {
		fields = append(fields, workflowrun.FieldWorkflowName)
	}
	if m.definition != nil {
		fields = append(fields, workflowrun.FieldDefinition)
	}
	if m.input != nil {
		fields = append(fields, workflowrun.FieldInput)
	}
	if m.status != nil {
		fields = append(fields, workflowrun.FieldStatus)
	}
	if m.completed_stages != nil {
		fields = append(fields, workflowrun.FieldCompletedStages)
	}
	if m.output != nil {
		fields = append(fields, workflowrun.FieldOutput)
	}
	if m.error_message != nil {
		fields = append(fields, workflowrun.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, workflowrun.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, workflowrun.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, workflowrun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, workflowrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflowrun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowrun.FieldUserID:
		return m.UserID()
	case workflowrun.FieldTeamID:
		return m.TeamID()
	case workflowrun.FieldWorkflowName:
		return m.WorkflowName()
	case workflowrun.FieldDefinition:
		return m.Definition()
	case workflowrun.FieldInput:
		return m.Input()
	case workflowrun.FieldStatus:
		return m.Status()
	case workflowrun.FieldCompletedStages:
		return m.CompletedStages()
	case workflowrun.FieldOutput:
		return m.Output()
	case workflowrun.FieldErrorMessage:
		return m.ErrorMessage()
	case workflowrun.FieldPodID:
		return m.PodID()
	case workflowrun.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case workflowrun.FieldCreatedAt:
		return m.CreatedAt()
	case workflowrun.FieldStartedAt:
		return m.StartedAt()
	case workflowrun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowrun.FieldUserID:
		return m.OldUserID(ctx)
	case workflowrun.FieldTeamID:
		return m.OldTeamID(ctx)
	case workflowrun.FieldWorkflowName:
		return m.OldWorkflowName(ctx)
	case workflowrun.FieldDefinition:
		return m.OldDefinition(ctx)
	case workflowrun.FieldInput:
		return m.OldInput(ctx)
	case workflowrun.FieldStatus:
		return m.OldStatus(ctx)
	case workflowrun.FieldCompletedStages:
		return m.OldCompletedStages(ctx)
	case workflowrun.FieldOutput:
		return m.OldOutput(ctx)
	case workflowrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflowrun.FieldPodID:
		return m.OldPodID(ctx)
	case workflowrun.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case workflowrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflowrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowrun.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case workflowrun.FieldTeamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case workflowrun.FieldWorkflowName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowName(v)
		return nil
	case workflowrun.FieldDefinition:
		v, ok := value.(models.WorkflowDefinition)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinition(v)
		return nil
	case workflowrun.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case workflowrun.FieldStatus:
		v, ok := value.(workflowrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowrun.FieldCompletedStages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedStages(v)
		return nil
	case workflowrun.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case workflowrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflowrun.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case workflowrun.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case workflowrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflowrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowrun.FieldTeamID) {
		fields = append(fields, workflowrun.FieldTeamID)
	}
	if m.FieldCleared(workflowrun.FieldInput) {
		fields = append(fields, workflowrun.FieldInput)
	}
	if m.FieldCleared(workflowrun.FieldOutput) {
		fields = append(fields, workflowrun.FieldOutput)
	}
	if m.FieldCleared(workflowrun.FieldErrorMessage) {
		fields = append(fields, workflowrun.FieldErrorMessage)
	}
	if m.FieldCleared(workflowrun.FieldPodID) {
		fields = append(fields, workflowrun.FieldPodID)
	}
	if m.FieldCleared(workflowrun.FieldLastHeartbeatAt) {
		fields = append(fields, workflowrun.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(workflowrun.FieldStartedAt) {
		fields = append(fields, workflowrun.FieldStartedAt)
	}
	if m.FieldCleared(workflowrun.FieldCompletedAt) {
		fields = append(fields, workflowrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowRunMutation) ClearField(name string) error {
	switch name {
	case workflowrun.FieldTeamID:
		m.ClearTeamID()
		return nil
	case workflowrun.FieldInput:
		m.ClearInput()
		return nil
	case workflowrun.FieldOutput:
		m.ClearOutput()
		return nil
	case workflowrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflowrun.FieldPodID:
		m.ClearPodID()
		return nil
	case workflowrun.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case workflowrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workflowrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowRunMutation) ResetField(name string) error {
	switch name {
	case workflowrun.FieldUserID:
		m.ResetUserID()
		return nil
	case workflowrun.FieldTeamID:
		m.ResetTeamID()
		return nil
	case workflowrun.FieldWorkflowName:
		m.ResetWorkflowName()
		return nil
	case workflowrun.FieldDefinition:
		m.ResetDefinition()
		return nil
	case workflowrun.FieldInput:
		m.ResetInput()
		return nil
	case workflowrun.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowrun.FieldCompletedStages:
		m.ResetCompletedStages()
		return nil
	case workflowrun.FieldOutput:
		m.ResetOutput()
		return nil
	case workflowrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflowrun.FieldPodID:
		m.ResetPodID()
		return nil
	case workflowrun.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case workflowrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflowrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.stage_executions != nil {
		edges = append(edges, workflowrun.EdgeStageExecutions)
	}
	if m.audit_records != nil {
		edges = append(edges, workflowrun.EdgeAuditRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowrun.EdgeStageExecutions:
		ids := make([]ent.Value, 0, len(m.stage_executions))
		for id := range m.stage_executions {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeAuditRecords:
		ids := make([]ent.Value, 0, len(m.audit_records))
		for id := range m.audit_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedstage_executions != nil {
		edges = append(edges, workflowrun.EdgeStageExecutions)
	}
	if m.removedaudit_records != nil {
		edges = append(edges, workflowrun.EdgeAuditRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowrun.EdgeStageExecutions:
		ids := make([]ent.Value, 0, len(m.removedstage_executions))
		for id := range m.removedstage_executions {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeAuditRecords:
		ids := make([]ent.Value, 0, len(m.removedaudit_records))
		for id := range m.removedaudit_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstage_executions {
		edges = append(edges, workflowrun.EdgeStageExecutions)
	}
	if m.clearedaudit_records {
		edges = append(edges, workflowrun.EdgeAuditRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowRunMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowrun.EdgeStageExecutions:
		return m.clearedstage_executions
	case workflowrun.EdgeAuditRecords:
		return m.clearedaudit_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowRunMutation) ResetEdge(name string) error {
	switch name {
	case workflowrun.EdgeStageExecutions:
		m.ResetStageExecutions()
		return nil
	case workflowrun.EdgeAuditRecords:
		m.ResetAuditRecords()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun edge %s", name)
}
