// Package agentcall is the HTTP client for remote agent execution
// endpoints. It owns error classification: every failure mode maps to a
// typed Error whose Retryable flag drives the workflow retry ladder.
package agentcall

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Error codes produced by the client or passed through from agents.
const (
	CodeTimeout          = "TIMEOUT"
	CodeNetworkError     = "NETWORK_ERROR"
	CodeAgentServerError = "AGENT_SERVER_ERROR"
	CodeAgentClientError = "AGENT_CLIENT_ERROR"
)

// Error is a classified agent call failure.
type Error struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
	// AgentID is the agent's external id, for audit correlation.
	AgentID string `json:"agent_id,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsError extracts a classified *Error from err, or wraps err as a
// retryable NETWORK_ERROR when it is not one.
func AsError(err error, agentID string) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return &Error{Code: CodeNetworkError, Message: err.Error(), Retryable: true, AgentID: agentID}
}

// Request is the body POSTed to an agent's execute endpoint.
type Request struct {
	WorkflowRunID      string                 `json:"workflow_run_id"`
	StageID            string                 `json:"stage_id"`
	CapabilityRequired string                 `json:"capability_required"`
	Input              map[string]interface{} `json:"input"`
	Context            RequestContext         `json:"context"`
}

// RequestContext carries run-scoped context to the agent.
type RequestContext struct {
	PreviousStages []string `json:"previous_stages"`
	UserID         string   `json:"user_id"`
	DeadlineMs     int64    `json:"deadline_ms"`
}

// Response is an agent's reply. Status is "success" or "error".
type Response struct {
	Status          string                 `json:"status"`
	Output          map[string]interface{} `json:"output,omitempty"`
	ExecutionTimeMs int64                  `json:"execution_time_ms,omitempty"`
	MemoryWrites    map[string]interface{} `json:"memory_writes,omitempty"`
	Code            string                 `json:"code,omitempty"`
	Message         string                 `json:"message,omitempty"`
	Retryable       bool                   `json:"retryable"`
}

// Target identifies where and how to reach one agent.
type Target struct {
	// ExternalID is the agent's stable caller-facing id, attached to errors.
	ExternalID string
	// Endpoint is the base URL (registered or canary-resolved).
	Endpoint string
	// Secret is the decrypted bearer secret.
	Secret string
}

// Client invokes agent execution endpoints with a bounded deadline.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient creates a Client with the given per-call timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
	}
}

// Execute POSTs a stage execution request to the agent and returns its
// output. All failures return a classified *Error.
func (c *Client) Execute(ctx context.Context, target Target, req Request) (*Response, error) {
	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	req.Context.DeadlineMs = time.Until(deadline).Milliseconds()

	callCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &Error{Code: CodeAgentClientError, Message: fmt.Sprintf("marshal request: %v", err), AgentID: target.ExternalID}
	}

	url := strings.TrimSuffix(target.Endpoint, "/") + "/orchestration/execute"
	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Code: CodeAgentClientError, Message: fmt.Sprintf("build request: %v", err), AgentID: target.ExternalID}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+target.Secret)
	httpReq.Header.Set("X-Workflow-Run-Id", req.WorkflowRunID)
	httpReq.Header.Set("X-Stage-Id", req.StageID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(err, target.ExternalID)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, &Error{Code: CodeNetworkError, Message: fmt.Sprintf("read response: %v", err), Retryable: true, AgentID: target.ExternalID}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyStatus(resp.StatusCode, respBody, target.ExternalID)
	}

	var agentResp Response
	if err := json.Unmarshal(respBody, &agentResp); err != nil {
		return nil, &Error{Code: CodeAgentServerError, Message: fmt.Sprintf("malformed agent response: %v", err), Retryable: true, AgentID: target.ExternalID}
	}

	if agentResp.Status == "error" {
		code := agentResp.Code
		if code == "" {
			code = CodeAgentServerError
		}
		return nil, &Error{Code: code, Message: agentResp.Message, Retryable: agentResp.Retryable, AgentID: target.ExternalID}
	}
	return &agentResp, nil
}

// classifyTransport maps transport failures. Deadline breaches are TIMEOUT,
// everything else NETWORK_ERROR; both are retryable.
func classifyTransport(err error, agentID string) *Error {
	if errors.Is(err, context.DeadlineExceeded) || isClientTimeout(err) {
		return &Error{Code: CodeTimeout, Message: err.Error(), Retryable: true, AgentID: agentID}
	}
	return &Error{Code: CodeNetworkError, Message: err.Error(), Retryable: true, AgentID: agentID}
}

func isClientTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

// classifyStatus maps non-2xx HTTP statuses. Server-side failures are
// retryable, client-side ones are not.
func classifyStatus(status int, body []byte, agentID string) *Error {
	msg := strings.TrimSpace(string(body))
	if len(msg) > 500 {
		msg = msg[:500]
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	if status >= 500 {
		return &Error{
			Code:      CodeAgentServerError,
			Message:   fmt.Sprintf("HTTP %d: %s", status, msg),
			Retryable: true,
			AgentID:   agentID,
		}
	}
	return &Error{
		Code:      CodeAgentClientError,
		Message:   fmt.Sprintf("HTTP %d: %s", status, msg),
		Retryable: false,
		AgentID:   agentID,
	}
}
