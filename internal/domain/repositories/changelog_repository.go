package repositories

import (
	"context"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// ChangelogRepository records updates in the project's own changelog file.
type ChangelogRepository interface {
	// Record adds the updates to the changelog. It returns false when the
	// changelog has no place for them (missing file or Unreleased section).
	Record(ctx context.Context, updated []entities.UpdatedPackage) (bool, error)
}
