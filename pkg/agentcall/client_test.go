package agentcall

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() Request {
	return Request{
		WorkflowRunID:      "run-1",
		StageID:            "stage-1",
		CapabilityRequired: "summarize",
		Input:              map[string]interface{}{"text": "hello"},
		Context:            RequestContext{PreviousStages: []string{}, UserID: "user-1"},
	}
}

func TestExecute_Success(t *testing.T) {
	var gotAuth, gotRunHeader, gotStageHeader string
	var gotBody Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRunHeader = r.Header.Get("X-Workflow-Run-Id")
		gotStageHeader = r.Header.Get("X-Stage-Id")
		assert.Equal(t, "/orchestration/execute", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(Response{
			Status:          "success",
			Output:          map[string]interface{}{"summary": "hi"},
			ExecutionTimeMs: 42,
		})
	}))
	defer srv.Close()

	client := NewClient(2 * time.Second)
	resp, err := client.Execute(context.Background(), Target{
		ExternalID: "agent-ext",
		Endpoint:   srv.URL,
		Secret:     "s3cret",
	}, testRequest())

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "hi", resp.Output["summary"])
	assert.Equal(t, "Bearer s3cret", gotAuth)
	assert.Equal(t, "run-1", gotRunHeader)
	assert.Equal(t, "stage-1", gotStageHeader)
	assert.Equal(t, "user-1", gotBody.Context.UserID)
	assert.Positive(t, gotBody.Context.DeadlineMs)
}

func TestExecute_AgentReportedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{
			Status:    "error",
			Code:      "TIMEOUT",
			Message:   "model backend slow",
			Retryable: true,
		})
	}))
	defer srv.Close()

	client := NewClient(2 * time.Second)
	_, err := client.Execute(context.Background(), Target{ExternalID: "a1", Endpoint: srv.URL}, testRequest())

	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "TIMEOUT", ce.Code)
	assert.True(t, ce.Retryable)
	assert.Equal(t, "a1", ce.AgentID)
}

func TestExecute_ServerErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(2 * time.Second)
	_, err := client.Execute(context.Background(), Target{ExternalID: "a1", Endpoint: srv.URL}, testRequest())

	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, CodeAgentServerError, ce.Code)
	assert.True(t, ce.Retryable)
}

func TestExecute_ClientErrorIsNotRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad input", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewClient(2 * time.Second)
	_, err := client.Execute(context.Background(), Target{ExternalID: "a1", Endpoint: srv.URL}, testRequest())

	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, CodeAgentClientError, ce.Code)
	assert.False(t, ce.Retryable)
}

func TestExecute_TimeoutClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(50 * time.Millisecond)
	_, err := client.Execute(context.Background(), Target{ExternalID: "a1", Endpoint: srv.URL}, testRequest())

	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, CodeTimeout, ce.Code)
	assert.True(t, ce.Retryable)
}

func TestExecute_ConnectionRefusedIsNetworkError(t *testing.T) {
	client := NewClient(time.Second)
	_, err := client.Execute(context.Background(), Target{ExternalID: "a1", Endpoint: "http://127.0.0.1:1"}, testRequest())

	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, CodeNetworkError, ce.Code)
	assert.True(t, ce.Retryable)
}

func TestAsError_WrapsPlainErrors(t *testing.T) {
	ce := AsError(errors.New("dial tcp: refused"), "a1")
	assert.Equal(t, CodeNetworkError, ce.Code)
	assert.True(t, ce.Retryable)
	assert.Equal(t, "a1", ce.AgentID)

	typed := &Error{Code: CodeAgentClientError, Retryable: false}
	assert.Same(t, typed, AsError(typed, "other"))
}
