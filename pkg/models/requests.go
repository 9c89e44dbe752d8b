package models

// CreateRunRequest enqueues a workflow run.
type CreateRunRequest struct {
	RunID        string                 `json:"run_id,omitempty"`
	WorkflowName string                 `json:"workflow_name"`
	Definition   WorkflowDefinition     `json:"definition"`
	Input        map[string]interface{} `json:"input,omitempty"`
	TeamID       string                 `json:"team_id,omitempty"`
}

// RegisterAgentRequest registers a remote agent.
type RegisterAgentRequest struct {
	ExternalID    string   `json:"external_id"`
	DisplayName   string   `json:"display_name"`
	EndpointURL   string   `json:"endpoint_url"`
	Capabilities  []string `json:"capabilities"`
	MaxConcurrent int      `json:"max_concurrent"`
	TeamID        string   `json:"team_id,omitempty"`
	AuthSecret    string   `json:"auth_secret"`
}

// CreateAgentVersionRequest deploys an agent version for canary routing.
type CreateAgentVersionRequest struct {
	Version        string   `json:"version"`
	Endpoint       string   `json:"endpoint"`
	Capabilities   []string `json:"capabilities,omitempty"`
	TrafficPercent int      `json:"traffic_percent"`
	Canary         bool     `json:"canary,omitempty"`
}

// CreateTeamRequest creates a team owned by the calling user.
type CreateTeamRequest struct {
	Name      string `json:"name"`
	MaxAgents int    `json:"max_agents,omitempty"`
}

// AddTeamMemberRequest adds a user to a team.
type AddTeamMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role,omitempty"`
}

// CreateTaskRequest creates a kanban task.
type CreateTaskRequest struct {
	TeamID             string                 `json:"team_id"`
	Title              string                 `json:"title"`
	Description        string                 `json:"description,omitempty"`
	Priority           string                 `json:"priority,omitempty"`
	RequiredCapability string                 `json:"required_capability,omitempty"`
	Tags               []string               `json:"tags,omitempty"`
	DependsOn          []string               `json:"depends_on,omitempty"`
	InputMapping       map[string]string      `json:"input_mapping,omitempty"`
	TimeoutMs          *int64                 `json:"timeout_ms,omitempty"`
	MaxRetries         *int                   `json:"max_retries,omitempty"`
	CreatedByAgent     string                 `json:"created_by_agent,omitempty"`
	CreatedByUser      string                 `json:"created_by_user,omitempty"`
	Metadata           map[string]interface{} `json:"metadata,omitempty"`
}

// TaskProgressRequest updates task progress counters.
type TaskProgressRequest struct {
	AgentID string `json:"agent_id"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

// CompleteTaskRequest records a task result.
type CompleteTaskRequest struct {
	AgentID      string                 `json:"agent_id"`
	Result       string                 `json:"result,omitempty"`
	Output       map[string]interface{} `json:"output,omitempty"`
	MoveToReview bool                   `json:"move_to_review,omitempty"`
}

// RejectTaskRequest sends a reviewed task back for more work.
type RejectTaskRequest struct {
	Reason   string `json:"reason,omitempty"`
	Reassign bool   `json:"reassign,omitempty"`
}

// FailTaskRequest records a task failure.
type FailTaskRequest struct {
	AgentID string `json:"agent_id"`
	Error   string `json:"error"`
}

// CreateApprovalRequest opens a human-in-the-loop gate.
type CreateApprovalRequest struct {
	TeamID           string   `json:"team_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	Approvers        []string `json:"approvers,omitempty"`
	RequestedByAgent string   `json:"requested_by_agent,omitempty"`
	RequestedByUser  string   `json:"requested_by_user,omitempty"`
	TaskID           string   `json:"task_id,omitempty"`
	ExpiresInSeconds *int64   `json:"expires_in_seconds,omitempty"`
}

// RespondApprovalRequest approves or rejects a pending gate.
type RespondApprovalRequest struct {
	UserID  string `json:"user_id"`
	Approve bool   `json:"approve"`
	Note    string `json:"note,omitempty"`
}

// AcquireLockRequest acquires or extends a resource lock.
type AcquireLockRequest struct {
	ResourceType     string `json:"resource_type"`
	ResourceID       string `json:"resource_id"`
	OwnerAgent       string `json:"owner_agent"`
	ConflictStrategy string `json:"conflict_strategy,omitempty"`
	ContentHash      string `json:"content_hash,omitempty"`
	TimeoutSeconds   int64  `json:"timeout_seconds"`
}

// RegisterWebhookRequest registers an external delivery endpoint.
type RegisterWebhookRequest struct {
	TeamID string   `json:"team_id"`
	URL    string   `json:"url"`
	Secret string   `json:"secret"`
	Events []string `json:"events"`
}
