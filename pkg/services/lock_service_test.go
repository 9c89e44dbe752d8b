package services_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/ent/resourcelock"
	"github.com/conductor-hq/conductor/pkg/models"
	"github.com/conductor-hq/conductor/pkg/services"
	"github.com/conductor-hq/conductor/test/util"
)

func acquireReq(owner string) models.AcquireLockRequest {
	return models.AcquireLockRequest{
		ResourceType:   "file",
		ResourceID:     "src/main.go",
		OwnerAgent:     owner,
		ContentHash:    "hash-a",
		TimeoutSeconds: 300,
	}
}

func TestLockService_AcquireAndRelease(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewLockService(client, slog.Default())
	ctx := context.Background()

	lock, err := svc.Acquire(ctx, acquireReq("agent-1"))
	require.NoError(t, err)
	assert.Equal(t, "agent-1", lock.OwnerAgent)
	assert.Equal(t, resourcelock.StatusActive, lock.Status)
	assert.Equal(t, 1, lock.Version)

	// Another agent is blocked with the holder in the error.
	_, err = svc.Acquire(ctx, acquireReq("agent-2"))
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrResourceLocked)
	var held *services.LockHeldError
	require.ErrorAs(t, err, &held)
	assert.Equal(t, "agent-1", held.HolderAgent)

	// Non-owner cannot release.
	err = svc.Release(ctx, lock.ID, "agent-2")
	assert.ErrorIs(t, err, services.ErrForbidden)

	require.NoError(t, svc.Release(ctx, lock.ID, "agent-1"))

	// Released lock frees the resource.
	lock2, err := svc.Acquire(ctx, acquireReq("agent-2"))
	require.NoError(t, err)
	assert.Equal(t, "agent-2", lock2.OwnerAgent)
}

func TestLockService_ReacquireExtends(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewLockService(client, slog.Default())
	ctx := context.Background()

	first, err := svc.Acquire(ctx, acquireReq("agent-1"))
	require.NoError(t, err)

	req := acquireReq("agent-1")
	req.ContentHash = "hash-b"
	second, err := svc.Acquire(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Version)
	require.NotNil(t, second.ContentHash)
	assert.Equal(t, "hash-b", *second.ContentHash)
	assert.True(t, second.ExpiresAt.After(first.ExpiresAt) || second.ExpiresAt.Equal(first.ExpiresAt))
}

func TestLockService_StaleLockExpiredOnAcquire(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewLockService(client, slog.Default())
	ctx := context.Background()

	stale, err := svc.Acquire(ctx, acquireReq("agent-1"))
	require.NoError(t, err)
	require.NoError(t, client.ResourceLock.UpdateOneID(stale.ID).
		SetExpiresAt(time.Now().UTC().Add(-time.Minute)).
		Exec(ctx))

	lock, err := svc.Acquire(ctx, acquireReq("agent-2"))
	require.NoError(t, err)
	assert.Equal(t, "agent-2", lock.OwnerAgent)

	old, err := client.ResourceLock.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, resourcelock.StatusExpired, old.Status)
}

func TestLockService_DetectConflict(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewLockService(client, slog.Default())
	ctx := context.Background()

	// No lock at all: no conflict.
	result, err := svc.DetectConflict(ctx, "file", "src/main.go", "hash-x")
	require.NoError(t, err)
	assert.False(t, result.Conflict)

	_, err = svc.Acquire(ctx, acquireReq("agent-1"))
	require.NoError(t, err)

	// Matching hash: no conflict.
	result, err = svc.DetectConflict(ctx, "file", "src/main.go", "hash-a")
	require.NoError(t, err)
	assert.False(t, result.Conflict)

	// Diverging hash: conflict with holder details.
	result, err = svc.DetectConflict(ctx, "file", "src/main.go", "hash-z")
	require.NoError(t, err)
	assert.True(t, result.Conflict)
	assert.Equal(t, "agent-1", result.HolderAgent)
	assert.Equal(t, "hash-a", result.HolderHash)
	assert.Equal(t, "fail", result.ConflictStrategy)
}

func TestLockService_ExpireDue(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewLockService(client, slog.Default())
	ctx := context.Background()

	lock, err := svc.Acquire(ctx, acquireReq("agent-1"))
	require.NoError(t, err)
	require.NoError(t, client.ResourceLock.UpdateOneID(lock.ID).
		SetExpiresAt(time.Now().UTC().Add(-time.Second)).
		Exec(ctx))

	svc.ExpireDue(ctx)

	got, err := client.ResourceLock.Get(ctx, lock.ID)
	require.NoError(t, err)
	assert.Equal(t, resourcelock.StatusExpired, got.Status)
	assert.NotNil(t, got.ReleasedAt)
}
