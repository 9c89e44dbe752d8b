package kanban

import "errors"

// Sentinel errors mapped to HTTP statuses by the API layer.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrAgentNotFound = errors.New("agent not found")
	ErrNotTeamMember = errors.New("agent is not a member of the task's team")
	ErrNotAssignee   = errors.New("agent is not assigned to this task")
	ErrAlreadyTaken  = errors.New("task is already assigned to another agent")
	ErrNotClaimable  = errors.New("task is not in a claimable state")
	ErrNotInReview   = errors.New("task is not in review")
	ErrBadDependency = errors.New("depends_on must reference distinct existing tasks in the same team")
)
