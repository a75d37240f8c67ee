package repositories

import "context"

// LockRepository regenerates the lockfile derived from the manifest.
type LockRepository interface {
	Sync(ctx context.Context) error
}
