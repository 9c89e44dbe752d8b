package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/resourcelock"
	"github.com/conductor-hq/conductor/pkg/models"
)

// ConflictResult reports whether the current lock holder's content hash
// diverges from the caller's.
type ConflictResult struct {
	Conflict         bool   `json:"conflict"`
	HolderAgent      string `json:"holder_agent,omitempty"`
	HolderHash       string `json:"holder_hash,omitempty"`
	ConflictStrategy string `json:"conflict_strategy,omitempty"`
}

// LockService manages advisory resource locks. Locks expire by wall
// clock; a stale active lock is expired on the next acquisition attempt.
type LockService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewLockService creates a new LockService.
func NewLockService(client *ent.Client, logger *slog.Logger) *LockService {
	if client == nil {
		panic("NewLockService: client must not be nil")
	}
	return &LockService{client: client, logger: logger}
}

// Acquire takes or extends a lock on (resource_type, resource_id).
// Re-acquisition by the current owner extends expires_at and bumps the
// version. A live lock held by another agent returns LockHeldError.
func (s *LockService) Acquire(ctx context.Context, req models.AcquireLockRequest) (*ent.ResourceLock, error) {
	if req.ResourceType == "" {
		return nil, NewValidationError("resource_type", "resource type is required")
	}
	if req.ResourceID == "" {
		return nil, NewValidationError("resource_id", "resource id is required")
	}
	if req.OwnerAgent == "" {
		return nil, NewValidationError("owner_agent", "owner agent is required")
	}
	if req.TimeoutSeconds <= 0 {
		return nil, NewValidationError("timeout_seconds", "timeout must be positive")
	}

	now := time.Now().UTC()
	expiresAt := now.Add(time.Duration(req.TimeoutSeconds) * time.Second)

	current, err := s.activeLock(ctx, req.ResourceType, req.ResourceID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		if current.ExpiresAt.Before(now) {
			// Stale holder. Expire it and fall through to a fresh acquire.
			if err := s.expireLock(ctx, current.ID); err != nil {
				return nil, err
			}
		} else if current.OwnerAgent == req.OwnerAgent {
			return s.extendLock(ctx, current, req.ContentHash, expiresAt)
		} else {
			return nil, &LockHeldError{
				HolderAgent: current.OwnerAgent,
				LockID:      current.ID,
				ExpiresAt:   current.ExpiresAt.Format(time.RFC3339),
			}
		}
	}

	strategy := resourcelock.ConflictStrategyFail
	if req.ConflictStrategy != "" {
		strategy = resourcelock.ConflictStrategy(req.ConflictStrategy)
	}
	create := s.client.ResourceLock.Create().
		SetID(uuid.New().String()).
		SetResourceType(req.ResourceType).
		SetResourceID(req.ResourceID).
		SetOwnerAgent(req.OwnerAgent).
		SetConflictStrategy(strategy).
		SetAcquiredAt(now).
		SetExpiresAt(expiresAt)
	if req.ContentHash != "" {
		create = create.SetContentHash(req.ContentHash)
	}

	lock, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the race for the partial unique index. Report the winner.
			winner, lerr := s.activeLock(ctx, req.ResourceType, req.ResourceID)
			if lerr == nil && winner != nil {
				return nil, &LockHeldError{
					HolderAgent: winner.OwnerAgent,
					LockID:      winner.ID,
					ExpiresAt:   winner.ExpiresAt.Format(time.RFC3339),
				}
			}
			return nil, ErrResourceLocked
		}
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	s.logger.Info("Lock acquired",
		"lock_id", lock.ID, "resource", req.ResourceType+"/"+req.ResourceID, "owner", req.OwnerAgent)
	return lock, nil
}

// Release releases a lock. Only the owning agent may release it.
func (s *LockService) Release(ctx context.Context, lockID, ownerAgent string) error {
	lock, err := s.client.ResourceLock.Get(ctx, lockID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get lock: %w", err)
	}
	if lock.OwnerAgent != ownerAgent {
		return fmt.Errorf("%w: lock is held by agent %s", ErrForbidden, lock.OwnerAgent)
	}

	n, err := s.client.ResourceLock.Update().
		Where(
			resourcelock.IDEQ(lockID),
			resourcelock.StatusEQ(resourcelock.StatusActive),
		).
		SetStatus(resourcelock.StatusReleased).
		SetReleasedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: lock is not active", ErrConflict)
	}
	return nil
}

// DetectConflict compares the caller's content hash with the live
// holder's. No live lock, no hash on either side, or matching hashes all
// mean no conflict.
func (s *LockService) DetectConflict(ctx context.Context, resourceType, resourceID, contentHash string) (*ConflictResult, error) {
	current, err := s.activeLock(ctx, resourceType, resourceID)
	if err != nil {
		return nil, err
	}
	if current == nil || current.ExpiresAt.Before(time.Now().UTC()) {
		return &ConflictResult{Conflict: false}, nil
	}
	if current.ContentHash == nil || contentHash == "" || *current.ContentHash == contentHash {
		return &ConflictResult{
			Conflict:    false,
			HolderAgent: current.OwnerAgent,
		}, nil
	}
	return &ConflictResult{
		Conflict:         true,
		HolderAgent:      current.OwnerAgent,
		HolderHash:       *current.ContentHash,
		ConflictStrategy: string(current.ConflictStrategy),
	}, nil
}

// ExpireDue transitions overdue active locks to expired. Scheduled on
// the shared cron runner.
func (s *LockService) ExpireDue(ctx context.Context) {
	n, err := s.client.ResourceLock.Update().
		Where(
			resourcelock.StatusEQ(resourcelock.StatusActive),
			resourcelock.ExpiresAtLTE(time.Now().UTC()),
		).
		SetStatus(resourcelock.StatusExpired).
		SetReleasedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		s.logger.Error("Lock expiry sweep failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("Expired stale locks", "count", n)
	}
}

func (s *LockService) activeLock(ctx context.Context, resourceType, resourceID string) (*ent.ResourceLock, error) {
	lock, err := s.client.ResourceLock.Query().
		Where(
			resourcelock.ResourceTypeEQ(resourceType),
			resourcelock.ResourceIDEQ(resourceID),
			resourcelock.StatusEQ(resourcelock.StatusActive),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query active lock: %w", err)
	}
	return lock, nil
}

func (s *LockService) extendLock(ctx context.Context, lock *ent.ResourceLock, contentHash string, expiresAt time.Time) (*ent.ResourceLock, error) {
	update := s.client.ResourceLock.UpdateOneID(lock.ID).
		SetExpiresAt(expiresAt).
		SetVersion(lock.Version + 1)
	if contentHash != "" {
		update = update.SetContentHash(contentHash)
	}
	extended, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("extend lock: %w", err)
	}
	return extended, nil
}

func (s *LockService) expireLock(ctx context.Context, lockID string) error {
	_, err := s.client.ResourceLock.Update().
		Where(
			resourcelock.IDEQ(lockID),
			resourcelock.StatusEQ(resourcelock.StatusActive),
		).
		SetStatus(resourcelock.StatusExpired).
		SetReleasedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("expire stale lock: %w", err)
	}
	return nil
}
