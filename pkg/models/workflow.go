// Package models defines the shared request/response and definition types
// used across the API, services, and engine packages.
package models

import "fmt"

// RetryConfig controls per-stage retry behavior.
type RetryConfig struct {
	// MaxRetries is the number of retries after the first attempt on the
	// same agent. Zero means exactly one attempt per agent.
	MaxRetries *int `json:"max_retries,omitempty"`

	// BackoffMs is the base backoff; attempt n sleeps BackoffMs * 2^n.
	BackoffMs *int64 `json:"backoff_ms,omitempty"`

	// TimeoutMs bounds a single agent call. Falls back to the global agent
	// call timeout when unset.
	TimeoutMs *int64 `json:"timeout_ms,omitempty"`
}

// StageDefinition is one node of a workflow DAG.
type StageDefinition struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name,omitempty"`
	Capability    string                 `json:"capability"`
	InputTemplate map[string]interface{} `json:"input_template,omitempty"`
	Dependencies  []string               `json:"dependencies,omitempty"`
	RetryConfig   *RetryConfig           `json:"retry_config,omitempty"`
}

// WorkflowDefinition is a named DAG of stages.
type WorkflowDefinition struct {
	Name   string            `json:"name,omitempty"`
	Stages []StageDefinition `json:"stages"`
}

// Validate checks structural invariants: non-empty stage set, unique ids,
// dependency references to existing ids, no self-dependencies, and an
// acyclic graph.
func (d WorkflowDefinition) Validate() error {
	if len(d.Stages) == 0 {
		return fmt.Errorf("workflow has no stages")
	}

	ids := make(map[string]bool, len(d.Stages))
	for _, s := range d.Stages {
		if s.ID == "" {
			return fmt.Errorf("stage with empty id")
		}
		if s.Capability == "" {
			return fmt.Errorf("stage %q has no capability", s.ID)
		}
		if ids[s.ID] {
			return fmt.Errorf("duplicate stage id %q", s.ID)
		}
		ids[s.ID] = true
	}

	for _, s := range d.Stages {
		for _, dep := range s.Dependencies {
			if dep == s.ID {
				return fmt.Errorf("stage %q depends on itself", s.ID)
			}
			if !ids[dep] {
				return fmt.Errorf("stage %q depends on unknown stage %q", s.ID, dep)
			}
		}
	}

	// Kahn's algorithm: if some stage never reaches in-degree zero, the
	// remaining subgraph contains a cycle.
	inDegree := make(map[string]int, len(d.Stages))
	downstream := make(map[string][]string, len(d.Stages))
	for _, s := range d.Stages {
		inDegree[s.ID] += 0
		for _, dep := range s.Dependencies {
			downstream[dep] = append(downstream[dep], s.ID)
			inDegree[s.ID]++
		}
	}
	ready := make([]string, 0, len(d.Stages))
	for id, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}
	visited := 0
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		visited++
		for _, next := range downstream[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				ready = append(ready, next)
			}
		}
	}
	if visited != len(d.Stages) {
		return fmt.Errorf("workflow contains a dependency cycle")
	}
	return nil
}

// Stage returns the stage definition with the given id.
func (d WorkflowDefinition) Stage(id string) (StageDefinition, bool) {
	for _, s := range d.Stages {
		if s.ID == id {
			return s, true
		}
	}
	return StageDefinition{}, false
}

// AuditSignature is the detached signature stored alongside an audit record.
type AuditSignature struct {
	Algorithm string `json:"algorithm"`
	Signer    string `json:"signer"`
	Value     string `json:"value"`
	Timestamp string `json:"timestamp"`
}
