package sync_lock_port

//go:generate mockgen -source=sync_lock_port.go -destination=../../mocks/mock_sync_lock_port.go -package=mocks

import "context"

// SyncLockPort serializes sync runs across processes.
type SyncLockPort interface {
	// Acquire returns false without error when another holder owns the lock.
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}
