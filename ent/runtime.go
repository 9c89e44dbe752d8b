// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/conductor-hq/conductor/ent/agent"
	"github.com/conductor-hq/conductor/ent/agentversion"
	"github.com/conductor-hq/conductor/ent/approvalgate"
	"github.com/conductor-hq/conductor/ent/auditrecord"
	"github.com/conductor-hq/conductor/ent/resourcelock"
	"github.com/conductor-hq/conductor/ent/schema"
	"github.com/conductor-hq/conductor/ent/stageexecution"
	"github.com/conductor-hq/conductor/ent/task"
	"github.com/conductor-hq/conductor/ent/team"
	"github.com/conductor-hq/conductor/ent/teammember"
	"github.com/conductor-hq/conductor/ent/webhook"
	"github.com/conductor-hq/conductor/ent/webhookdelivery"
	"github.com/conductor-hq/conductor/ent/workflowrun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescCapabilities is the schema descriptor for capabilities field.
	agentDescCapabilities := agentFields[4].Descriptor()
	// agent.DefaultCapabilities holds the default value on creation for the capabilities field.
	agent.DefaultCapabilities = agentDescCapabilities.Default.([]string)
	// agentDescMaxConcurrent is the schema descriptor for max_concurrent field.
	agentDescMaxConcurrent := agentFields[5].Descriptor()
	// agent.DefaultMaxConcurrent holds the default value on creation for the max_concurrent field.
	agent.DefaultMaxConcurrent = agentDescMaxConcurrent.Default.(int)
	// agentDescWsConnected is the schema descriptor for ws_connected field.
	agentDescWsConnected := agentFields[7].Descriptor()
	// agent.DefaultWsConnected holds the default value on creation for the ws_connected field.
	agent.DefaultWsConnected = agentDescWsConnected.Default.(bool)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[13].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	agentversionFields := schema.AgentVersion{}.Fields()
	_ = agentversionFields
	// agentversionDescCapabilities is the schema descriptor for capabilities field.
	agentversionDescCapabilities := agentversionFields[4].Descriptor()
	// agentversion.DefaultCapabilities holds the default value on creation for the capabilities field.
	agentversion.DefaultCapabilities = agentversionDescCapabilities.Default.([]string)
	// agentversionDescTrafficPercent is the schema descriptor for traffic_percent field.
	agentversionDescTrafficPercent := agentversionFields[6].Descriptor()
	// agentversion.DefaultTrafficPercent holds the default value on creation for the traffic_percent field.
	agentversion.DefaultTrafficPercent = agentversionDescTrafficPercent.Default.(int)
	// agentversion.TrafficPercentValidator is a validator for the "traffic_percent" field. It is called by the builders before save.
	agentversion.TrafficPercentValidator = func() func(int) error {
		validators := agentversionDescTrafficPercent.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(traffic_percent int) error {
			for _, fn := range fns {
				if err := fn(traffic_percent); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// agentversionDescErrorRatePer1000 is the schema descriptor for error_rate_per_1000 field.
	agentversionDescErrorRatePer1000 := agentversionFields[7].Descriptor()
	// agentversion.DefaultErrorRatePer1000 holds the default value on creation for the error_rate_per_1000 field.
	agentversion.DefaultErrorRatePer1000 = agentversionDescErrorRatePer1000.Default.(float64)
	// agentversionDescErrorThreshold is the schema descriptor for error_threshold field.
	agentversionDescErrorThreshold := agentversionFields[8].Descriptor()
	// agentversion.DefaultErrorThreshold holds the default value on creation for the error_threshold field.
	agentversion.DefaultErrorThreshold = agentversionDescErrorThreshold.Default.(float64)
	// agentversionDescIsRollbackTarget is the schema descriptor for is_rollback_target field.
	agentversionDescIsRollbackTarget := agentversionFields[9].Descriptor()
	// agentversion.DefaultIsRollbackTarget holds the default value on creation for the is_rollback_target field.
	agentversion.DefaultIsRollbackTarget = agentversionDescIsRollbackTarget.Default.(bool)
	// agentversionDescCreatedAt is the schema descriptor for created_at field.
	agentversionDescCreatedAt := agentversionFields[10].Descriptor()
	// agentversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentversion.DefaultCreatedAt = agentversionDescCreatedAt.Default.(func() time.Time)
	approvalgateFields := schema.ApprovalGate{}.Fields()
	_ = approvalgateFields
	// approvalgateDescDescription is the schema descriptor for description field.
	approvalgateDescDescription := approvalgateFields[3].Descriptor()
	// approvalgate.DefaultDescription holds the default value on creation for the description field.
	approvalgate.DefaultDescription = approvalgateDescDescription.Default.(string)
	// approvalgateDescApprovers is the schema descriptor for approvers field.
	approvalgateDescApprovers := approvalgateFields[5].Descriptor()
	// approvalgate.DefaultApprovers holds the default value on creation for the approvers field.
	approvalgate.DefaultApprovers = approvalgateDescApprovers.Default.([]string)
	// approvalgateDescCreatedAt is the schema descriptor for created_at field.
	approvalgateDescCreatedAt := approvalgateFields[12].Descriptor()
	// approvalgate.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalgate.DefaultCreatedAt = approvalgateDescCreatedAt.Default.(func() time.Time)
	auditrecordFields := schema.AuditRecord{}.Fields()
	_ = auditrecordFields
	// auditrecordDescLoggedAt is the schema descriptor for logged_at field.
	auditrecordDescLoggedAt := auditrecordFields[8].Descriptor()
	// auditrecord.DefaultLoggedAt holds the default value on creation for the logged_at field.
	auditrecord.DefaultLoggedAt = auditrecordDescLoggedAt.Default.(func() time.Time)
	resourcelockFields := schema.ResourceLock{}.Fields()
	_ = resourcelockFields
	// resourcelockDescVersion is the schema descriptor for version field.
	resourcelockDescVersion := resourcelockFields[7].Descriptor()
	// resourcelock.DefaultVersion holds the default value on creation for the version field.
	resourcelock.DefaultVersion = resourcelockDescVersion.Default.(int)
	// resourcelockDescAcquiredAt is the schema descriptor for acquired_at field.
	resourcelockDescAcquiredAt := resourcelockFields[8].Descriptor()
	// resourcelock.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	resourcelock.DefaultAcquiredAt = resourcelockDescAcquiredAt.Default.(func() time.Time)
	stageexecutionFields := schema.StageExecution{}.Fields()
	_ = stageexecutionFields
	// stageexecutionDescStartedAt is the schema descriptor for started_at field.
	stageexecutionDescStartedAt := stageexecutionFields[8].Descriptor()
	// stageexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	stageexecution.DefaultStartedAt = stageexecutionDescStartedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescDescription is the schema descriptor for description field.
	taskDescDescription := taskFields[3].Descriptor()
	// task.DefaultDescription holds the default value on creation for the description field.
	task.DefaultDescription = taskDescDescription.Default.(string)
	// taskDescTags is the schema descriptor for tags field.
	taskDescTags := taskFields[7].Descriptor()
	// task.DefaultTags holds the default value on creation for the tags field.
	task.DefaultTags = taskDescTags.Default.([]string)
	// taskDescDependsOn is the schema descriptor for depends_on field.
	taskDescDependsOn := taskFields[11].Descriptor()
	// task.DefaultDependsOn holds the default value on creation for the depends_on field.
	task.DefaultDependsOn = taskDescDependsOn.Default.([]string)
	// taskDescRetryCount is the schema descriptor for retry_count field.
	taskDescRetryCount := taskFields[14].Descriptor()
	// task.DefaultRetryCount holds the default value on creation for the retry_count field.
	task.DefaultRetryCount = taskDescRetryCount.Default.(int)
	// taskDescMaxRetries is the schema descriptor for max_retries field.
	taskDescMaxRetries := taskFields[15].Descriptor()
	// task.DefaultMaxRetries holds the default value on creation for the max_retries field.
	task.DefaultMaxRetries = taskDescMaxRetries.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[22].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	teamFields := schema.Team{}.Fields()
	_ = teamFields
	// teamDescMaxAgents is the schema descriptor for max_agents field.
	teamDescMaxAgents := teamFields[3].Descriptor()
	// team.DefaultMaxAgents holds the default value on creation for the max_agents field.
	team.DefaultMaxAgents = teamDescMaxAgents.Default.(int)
	// teamDescCreatedAt is the schema descriptor for created_at field.
	teamDescCreatedAt := teamFields[4].Descriptor()
	// team.DefaultCreatedAt holds the default value on creation for the created_at field.
	team.DefaultCreatedAt = teamDescCreatedAt.Default.(func() time.Time)
	teammemberFields := schema.TeamMember{}.Fields()
	_ = teammemberFields
	// teammemberDescCreatedAt is the schema descriptor for created_at field.
	teammemberDescCreatedAt := teammemberFields[4].Descriptor()
	// teammember.DefaultCreatedAt holds the default value on creation for the created_at field.
	teammember.DefaultCreatedAt = teammemberDescCreatedAt.Default.(func() time.Time)
	webhookFields := schema.Webhook{}.Fields()
	_ = webhookFields
	// webhookDescEvents is the schema descriptor for events field.
	webhookDescEvents := webhookFields[4].Descriptor()
	// webhook.DefaultEvents holds the default value on creation for the events field.
	webhook.DefaultEvents = webhookDescEvents.Default.([]string)
	// webhookDescActive is the schema descriptor for active field.
	webhookDescActive := webhookFields[5].Descriptor()
	// webhook.DefaultActive holds the default value on creation for the active field.
	webhook.DefaultActive = webhookDescActive.Default.(bool)
	// webhookDescCreatedAt is the schema descriptor for created_at field.
	webhookDescCreatedAt := webhookFields[6].Descriptor()
	// webhook.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhook.DefaultCreatedAt = webhookDescCreatedAt.Default.(func() time.Time)
	webhookdeliveryFields := schema.WebhookDelivery{}.Fields()
	_ = webhookdeliveryFields
	// webhookdeliveryDescAttempts is the schema descriptor for attempts field.
	webhookdeliveryDescAttempts := webhookdeliveryFields[4].Descriptor()
	// webhookdelivery.DefaultAttempts holds the default value on creation for the attempts field.
	webhookdelivery.DefaultAttempts = webhookdeliveryDescAttempts.Default.(int)
	// webhookdeliveryDescMaxAttempts is the schema descriptor for max_attempts field.
	webhookdeliveryDescMaxAttempts := webhookdeliveryFields[5].Descriptor()
	// webhookdelivery.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	webhookdelivery.DefaultMaxAttempts = webhookdeliveryDescMaxAttempts.Default.(int)
	// webhookdeliveryDescCreatedAt is the schema descriptor for created_at field.
	webhookdeliveryDescCreatedAt := webhookdeliveryFields[9].Descriptor()
	// webhookdelivery.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookdelivery.DefaultCreatedAt = webhookdeliveryDescCreatedAt.Default.(func() time.Time)
	// webhookdeliveryDescUpdatedAt is the schema descriptor for updated_at field.
	webhookdeliveryDescUpdatedAt := webhookdeliveryFields[10].Descriptor()
	// webhookdelivery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhookdelivery.DefaultUpdatedAt = webhookdeliveryDescUpdatedAt.Default.(func() time.Time)
	// webhookdelivery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhookdelivery.UpdateDefaultUpdatedAt = webhookdeliveryDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowrunFields := schema.WorkflowRun{}.Fields()
	_ = workflowrunFields
	// workflowrunDescCompletedStages is the schema descriptor for completed_stages field.
	workflowrunDescCompletedStages := workflowrunFields[7].Descriptor()
	// workflowrun.DefaultCompletedStages holds the default value on creation for the completed_stages field.
	workflowrun.DefaultCompletedStages = workflowrunDescCompletedStages.Default.([]string)
	// workflowrunDescCreatedAt is the schema descriptor for created_at field.
	workflowrunDescCreatedAt := workflowrunFields[12].Descriptor()
	// workflowrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowrun.DefaultCreatedAt = workflowrunDescCreatedAt.Default.(func() time.Time)
}
