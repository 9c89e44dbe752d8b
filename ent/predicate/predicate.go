// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentVersion is the predicate function for agentversion builders.
type AgentVersion func(*sql.Selector)

// ApprovalGate is the predicate function for approvalgate builders.
type ApprovalGate func(*sql.Selector)

// AuditRecord is the predicate function for auditrecord builders.
type AuditRecord func(*sql.Selector)

// ResourceLock is the predicate function for resourcelock builders.
type ResourceLock func(*sql.Selector)

// StageExecution is the predicate function for stageexecution builders.
type StageExecution func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// Team is the predicate function for team builders.
type Team func(*sql.Selector)

// TeamMember is the predicate function for teammember builders.
type TeamMember func(*sql.Selector)

// Webhook is the predicate function for webhook builders.
type Webhook func(*sql.Selector)

// WebhookDelivery is the predicate function for webhookdelivery builders.
type WebhookDelivery func(*sql.Selector)

// WorkflowRun is the predicate function for workflowrun builders.
type WorkflowRun func(*sql.Selector)
