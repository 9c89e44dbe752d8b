package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/auditrecord"
	"github.com/conductor-hq/conductor/pkg/models"
)

// Action values for audit records.
const (
	ActionExecute = "execute"
	ActionRetry   = "retry"
	ActionFail    = "fail"
)

// Entry is one audit event emitted by the workflow worker.
type Entry struct {
	RunID      string
	StageID    string
	AgentID    string
	Action     string
	Status     string
	InputHash  string
	OutputHash string
}

// Recorder persists append-only audit records, signing each over its
// canonical JSON form when a signer is configured.
type Recorder struct {
	client *ent.Client
	signer *Signer
}

// NewRecorder creates a Recorder. signer may be nil (records are written
// unsigned).
func NewRecorder(client *ent.Client, signer *Signer) *Recorder {
	return &Recorder{client: client, signer: signer}
}

// signedFields returns the canonical payload covered by the signature.
// logged_at participates so a record cannot be silently re-dated.
func signedFields(e Entry, loggedAt time.Time) map[string]interface{} {
	fields := map[string]interface{}{
		"run_id":     e.RunID,
		"stage_id":   e.StageID,
		"agent_id":   e.AgentID,
		"action":     e.Action,
		"status":     e.Status,
		"input_hash": e.InputHash,
		"logged_at":  loggedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.OutputHash != "" {
		fields["output_hash"] = e.OutputHash
	}
	return fields
}

// Record persists one audit entry. Returns the stored record so callers can
// correlate; persistence failures are the caller's to log; audit writes are
// best-effort from the worker's perspective.
func (r *Recorder) Record(ctx context.Context, e Entry) (*ent.AuditRecord, error) {
	// Truncate to microseconds so the timestamp that comes back from
	// Postgres re-serializes to the exact string that was signed.
	loggedAt := time.Now().UTC().Truncate(time.Microsecond)

	create := r.client.AuditRecord.Create().
		SetID(uuid.New().String()).
		SetRunID(e.RunID).
		SetStageID(e.StageID).
		SetAgentID(e.AgentID).
		SetAction(auditrecord.Action(e.Action)).
		SetStatus(e.Status).
		SetInputHash(e.InputHash).
		SetLoggedAt(loggedAt)
	if e.OutputHash != "" {
		create = create.SetOutputHash(e.OutputHash)
	}

	if r.signer != nil {
		value, err := r.signer.Sign(signedFields(e, loggedAt))
		if err != nil {
			return nil, fmt.Errorf("sign audit record: %w", err)
		}
		create = create.SetSignature(&models.AuditSignature{
			Algorithm: Algorithm,
			Signer:    r.signer.Name(),
			Value:     value,
			Timestamp: loggedAt.Format(time.RFC3339Nano),
		})
	}

	rec, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("persist audit record: %w", err)
	}
	return rec, nil
}

// RecordBestEffort persists an entry and only logs on failure. Audit
// emission must never abort the enclosing stage.
func (r *Recorder) RecordBestEffort(ctx context.Context, e Entry) {
	if _, err := r.Record(ctx, e); err != nil {
		slog.Warn("Failed to write audit record",
			"run_id", e.RunID, "stage_id", e.StageID, "action", e.Action, "error", err)
	}
}

// Verification outcome for one record.
const (
	OutcomeValid    = "valid"
	OutcomeInvalid  = "invalid"
	OutcomeUnsigned = "unsigned"
)

// RecordVerification is the verification result for one audit record.
type RecordVerification struct {
	RecordID string `json:"record_id"`
	StageID  string `json:"stage_id"`
	Action   string `json:"action"`
	Outcome  string `json:"outcome"`
	Error    string `json:"error,omitempty"`
}

// VerifyRun re-serializes every audit record of a run and verifies its
// signature. Unsigned records report as unsigned, not invalid.
func (r *Recorder) VerifyRun(ctx context.Context, runID string) ([]RecordVerification, error) {
	records, err := r.client.AuditRecord.Query().
		Where(auditrecord.RunIDEQ(runID)).
		Order(ent.Asc(auditrecord.FieldLoggedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query audit records: %w", err)
	}

	results := make([]RecordVerification, 0, len(records))
	for _, rec := range records {
		rv := RecordVerification{
			RecordID: rec.ID,
			StageID:  rec.StageID,
			Action:   string(rec.Action),
		}
		switch {
		case rec.Signature == nil || rec.Signature.Value == "":
			rv.Outcome = OutcomeUnsigned
		case r.signer == nil:
			// Signed record but no key configured to check it with.
			rv.Outcome = OutcomeUnsigned
			rv.Error = "no verification key configured"
		default:
			entry := Entry{
				RunID:     rec.RunID,
				StageID:   rec.StageID,
				AgentID:   rec.AgentID,
				Action:    string(rec.Action),
				Status:    rec.Status,
				InputHash: rec.InputHash,
			}
			if rec.OutputHash != nil {
				entry.OutputHash = *rec.OutputHash
			}
			if err := r.signer.Verify(signedFields(entry, rec.LoggedAt), rec.Signature.Value); err != nil {
				rv.Outcome = OutcomeInvalid
				rv.Error = err.Error()
			} else {
				rv.Outcome = OutcomeValid
			}
		}
		results = append(results, rv)
	}
	return results, nil
}
