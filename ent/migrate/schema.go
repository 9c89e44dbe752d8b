// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_uuid", Type: field.TypeString, Unique: true},
		{Name: "external_id", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "endpoint_url", Type: field.TypeString},
		{Name: "capabilities", Type: field.TypeJSON},
		{Name: "max_concurrent", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"online", "degraded", "offline"}, Default: "offline"},
		{Name: "ws_connected", Type: field.TypeBool, Default: false},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "team_id", Type: field.TypeString, Nullable: true},
		{Name: "registered_by", Type: field.TypeString},
		{Name: "auth_secret_hash", Type: field.TypeString},
		{Name: "auth_secret_ciphertext", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[6]},
			},
			{
				Name:    "agent_team_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[9]},
			},
			{
				Name:    "agent_external_id",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NULL",
				},
			},
		},
	}
	// AgentVersionsColumns holds the columns for the "agent_versions" table.
	AgentVersionsColumns = []*schema.Column{
		{Name: "version_uuid", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeString},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "capabilities", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "canary", "inactive", "rolled_back"}, Default: "draft"},
		{Name: "traffic_percent", Type: field.TypeInt, Default: 0},
		{Name: "error_rate_per_1000", Type: field.TypeFloat64, Default: 0},
		{Name: "error_threshold", Type: field.TypeFloat64, Default: 50},
		{Name: "is_rollback_target", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// AgentVersionsTable holds the schema information for the "agent_versions" table.
	AgentVersionsTable = &schema.Table{
		Name:       "agent_versions",
		Columns:    AgentVersionsColumns,
		PrimaryKey: []*schema.Column{AgentVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_versions_agents_versions",
				Columns:    []*schema.Column{AgentVersionsColumns[10]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentversion_agent_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentVersionsColumns[10], AgentVersionsColumns[4]},
			},
		},
	}
	// ApprovalGatesColumns holds the columns for the "approval_gates" table.
	ApprovalGatesColumns = []*schema.Column{
		{Name: "gate_uuid", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "expired"}, Default: "pending"},
		{Name: "approvers", Type: field.TypeJSON},
		{Name: "requested_by_agent", Type: field.TypeString, Nullable: true},
		{Name: "requested_by_user", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "responded_by", Type: field.TypeString, Nullable: true},
		{Name: "response_note", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
	}
	// ApprovalGatesTable holds the schema information for the "approval_gates" table.
	ApprovalGatesTable = &schema.Table{
		Name:       "approval_gates",
		Columns:    ApprovalGatesColumns,
		PrimaryKey: []*schema.Column{ApprovalGatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approvalgate_team_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalGatesColumns[1], ApprovalGatesColumns[4]},
			},
			{
				Name:    "approvalgate_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalGatesColumns[4], ApprovalGatesColumns[9]},
			},
		},
	}
	// AuditRecordsColumns holds the columns for the "audit_records" table.
	AuditRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"execute", "retry", "fail"}},
		{Name: "status", Type: field.TypeString},
		{Name: "input_hash", Type: field.TypeString},
		{Name: "output_hash", Type: field.TypeString, Nullable: true},
		{Name: "logged_at", Type: field.TypeTime},
		{Name: "signature", Type: field.TypeJSON, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// AuditRecordsTable holds the schema information for the "audit_records" table.
	AuditRecordsTable = &schema.Table{
		Name:       "audit_records",
		Columns:    AuditRecordsColumns,
		PrimaryKey: []*schema.Column{AuditRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_records_workflow_runs_audit_records",
				Columns:    []*schema.Column{AuditRecordsColumns[9]},
				RefColumns: []*schema.Column{WorkflowRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditrecord_run_id_logged_at",
				Unique:  false,
				Columns: []*schema.Column{AuditRecordsColumns[9], AuditRecordsColumns[7]},
			},
		},
	}
	// ResourceLocksColumns holds the columns for the "resource_locks" table.
	ResourceLocksColumns = []*schema.Column{
		{Name: "lock_uuid", Type: field.TypeString, Unique: true},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "owner_agent", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "released", "expired"}, Default: "active"},
		{Name: "conflict_strategy", Type: field.TypeEnum, Enums: []string{"fail", "queue", "merge", "escalate"}, Default: "fail"},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "acquired_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
	}
	// ResourceLocksTable holds the schema information for the "resource_locks" table.
	ResourceLocksTable = &schema.Table{
		Name:       "resource_locks",
		Columns:    ResourceLocksColumns,
		PrimaryKey: []*schema.Column{ResourceLocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resourcelock_resource_type_resource_id",
				Unique:  true,
				Columns: []*schema.Column{ResourceLocksColumns[1], ResourceLocksColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'active'",
				},
			},
			{
				Name:    "resourcelock_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ResourceLocksColumns[4], ResourceLocksColumns[9]},
			},
		},
	}
	// StageExecutionsColumns holds the columns for the "stage_executions" table.
	StageExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed", "failed"}, Default: "in_progress"},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "input_resolved", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "execution_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// StageExecutionsTable holds the schema information for the "stage_executions" table.
	StageExecutionsTable = &schema.Table{
		Name:       "stage_executions",
		Columns:    StageExecutionsColumns,
		PrimaryKey: []*schema.Column{StageExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_executions_workflow_runs_stage_executions",
				Columns:    []*schema.Column{StageExecutionsColumns[10]},
				RefColumns: []*schema.Column{WorkflowRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stageexecution_run_id_stage_id",
				Unique:  true,
				Columns: []*schema.Column{StageExecutionsColumns[10], StageExecutionsColumns[1]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_uuid", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"backlog", "todo", "in_progress", "review", "done"}, Default: "todo"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "required_capability", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON},
		{Name: "assigned_agent", Type: field.TypeString, Nullable: true},
		{Name: "created_by_agent", Type: field.TypeString, Nullable: true},
		{Name: "created_by_user", Type: field.TypeString, Nullable: true},
		{Name: "depends_on", Type: field.TypeJSON},
		{Name: "input_mapping", Type: field.TypeJSON, Nullable: true},
		{Name: "timeout_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "progress_current", Type: field.TypeInt, Nullable: true},
		{Name: "progress_total", Type: field.TypeInt, Nullable: true},
		{Name: "progress_message", Type: field.TypeString, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_team_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[4]},
			},
			{
				Name:    "task_assigned_agent",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8]},
			},
			{
				Name:    "task_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[23]},
			},
		},
	}
	// TeamsColumns holds the columns for the "teams" table.
	TeamsColumns = []*schema.Column{
		{Name: "team_uuid", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "owner_user", Type: field.TypeString},
		{Name: "max_agents", Type: field.TypeInt, Default: 10},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
	}
	// TeamsTable holds the schema information for the "teams" table.
	TeamsTable = &schema.Table{
		Name:       "teams",
		Columns:    TeamsColumns,
		PrimaryKey: []*schema.Column{TeamsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "team_owner_user",
				Unique:  false,
				Columns: []*schema.Column{TeamsColumns[2]},
			},
		},
	}
	// TeamMembersColumns holds the columns for the "team_members" table.
	TeamMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "admin", "member"}, Default: "member"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "team_id", Type: field.TypeString},
	}
	// TeamMembersTable holds the schema information for the "team_members" table.
	TeamMembersTable = &schema.Table{
		Name:       "team_members",
		Columns:    TeamMembersColumns,
		PrimaryKey: []*schema.Column{TeamMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "team_members_teams_members",
				Columns:    []*schema.Column{TeamMembersColumns[4]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "teammember_team_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{TeamMembersColumns[4], TeamMembersColumns[1]},
			},
		},
	}
	// WebhooksColumns holds the columns for the "webhooks" table.
	WebhooksColumns = []*schema.Column{
		{Name: "webhook_uuid", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "secret", Type: field.TypeString},
		{Name: "events", Type: field.TypeJSON},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WebhooksTable holds the schema information for the "webhooks" table.
	WebhooksTable = &schema.Table{
		Name:       "webhooks",
		Columns:    WebhooksColumns,
		PrimaryKey: []*schema.Column{WebhooksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhook_team_id_active",
				Unique:  false,
				Columns: []*schema.Column{WebhooksColumns[1], WebhooksColumns[5]},
			},
		},
	}
	// WebhookDeliveriesColumns holds the columns for the "webhook_deliveries" table.
	WebhookDeliveriesColumns = []*schema.Column{
		{Name: "delivery_uuid", Type: field.TypeString, Unique: true},
		{Name: "event", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "success", "failed", "dead_letter"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 5},
		{Name: "next_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "response_code", Type: field.TypeInt, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "webhook_id", Type: field.TypeString},
	}
	// WebhookDeliveriesTable holds the schema information for the "webhook_deliveries" table.
	WebhookDeliveriesTable = &schema.Table{
		Name:       "webhook_deliveries",
		Columns:    WebhookDeliveriesColumns,
		PrimaryKey: []*schema.Column{WebhookDeliveriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "webhook_deliveries_webhooks_deliveries",
				Columns:    []*schema.Column{WebhookDeliveriesColumns[10]},
				RefColumns: []*schema.Column{WebhooksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "webhookdelivery_status_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[2], WebhookDeliveriesColumns[5]},
			},
			{
				Name:    "webhookdelivery_webhook_id_status",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[10], WebhookDeliveriesColumns[2]},
			},
		},
	}
	// WorkflowRunsColumns holds the columns for the "workflow_runs" table.
	WorkflowRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "team_id", Type: field.TypeString, Nullable: true},
		{Name: "workflow_name", Type: field.TypeString},
		{Name: "definition", Type: field.TypeJSON},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "in_progress", "completed", "failed"}, Default: "queued"},
		{Name: "completed_stages", Type: field.TypeJSON},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// WorkflowRunsTable holds the schema information for the "workflow_runs" table.
	WorkflowRunsTable = &schema.Table{
		Name:       "workflow_runs",
		Columns:    WorkflowRunsColumns,
		PrimaryKey: []*schema.Column{WorkflowRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[6], WorkflowRunsColumns[12]},
			},
			{
				Name:    "workflowrun_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[6], WorkflowRunsColumns[11]},
			},
			{
				Name:    "workflowrun_user_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentVersionsTable,
		ApprovalGatesTable,
		AuditRecordsTable,
		ResourceLocksTable,
		StageExecutionsTable,
		TasksTable,
		TeamsTable,
		TeamMembersTable,
		WebhooksTable,
		WebhookDeliveriesTable,
		WorkflowRunsTable,
	}
)

func init() {
	AgentVersionsTable.ForeignKeys[0].RefTable = AgentsTable
	AuditRecordsTable.ForeignKeys[0].RefTable = WorkflowRunsTable
	StageExecutionsTable.ForeignKeys[0].RefTable = WorkflowRunsTable
	TeamMembersTable.ForeignKeys[0].RefTable = TeamsTable
	WebhookDeliveriesTable.ForeignKeys[0].RefTable = WebhooksTable
}
