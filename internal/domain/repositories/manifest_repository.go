package repositories

import (
	"context"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// ManifestRepository reads, serializes and persists the dependency manifest.
type ManifestRepository interface {
	// Read loads and decodes the manifest. The returned error wraps
	// entities.ErrManifestRead when the file is missing or malformed.
	Read(ctx context.Context) (*entities.Manifest, error)

	// Render serializes the original and the updated manifest with one shared
	// strategy, so that their texts only differ in the rewritten requirements.
	Render(original, updated *entities.Manifest) (before, after string, err error)

	// Write persists the manifest atomically. The returned error wraps
	// entities.ErrManifestWrite.
	Write(ctx context.Context, manifest *entities.Manifest) error
}
