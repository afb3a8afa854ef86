package sync_lock_gateway

import (
	"context"
)

type lockDriver interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// SyncLockGateway serializes sync runs. Without a driver every Acquire
// succeeds and storage uniqueness alone keeps overlapping runs correct.
type SyncLockGateway struct {
	driver lockDriver
}

func NewSyncLockGateway(driver lockDriver) *SyncLockGateway {
	return &SyncLockGateway{driver: driver}
}

func (g *SyncLockGateway) Acquire(ctx context.Context) (bool, error) {
	if g.driver == nil {
		return true, nil
	}
	return g.driver.Acquire(ctx)
}

func (g *SyncLockGateway) Release(ctx context.Context) error {
	if g.driver == nil {
		return nil
	}
	return g.driver.Release(ctx)
}
