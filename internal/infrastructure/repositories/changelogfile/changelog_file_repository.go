package changelogfile

import (
	"context"
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
)

// ChangelogFileRepository implements repositories.ChangelogRepository for a
// Keep-a-Changelog formatted markdown file.
type ChangelogFileRepository struct {
	path string
}

// NewChangelogFileRepository creates a repository for the changelog at path.
func NewChangelogFileRepository(path string) repositories.ChangelogRepository {
	return &ChangelogFileRepository{path: path}
}

// Record inserts one bullet per update under "## [Unreleased]" / "### Changed".
func (r *ChangelogFileRepository) Record(_ context.Context, updated []entities.UpdatedPackage) (bool, error) {
	content, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debugf("[changelog] %s not found, skipping", r.path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", r.path, err)
	}

	modified := entities.InsertChangelogEntry(string(content), entities.KeepAChangelogEntries(updated))
	if modified == string(content) {
		logger.Debugf("[changelog] %s has no Unreleased section, skipping", r.path)
		return false, nil
	}

	info, err := os.Stat(r.path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %q: %w", r.path, err)
	}
	if writeErr := os.WriteFile(r.path, []byte(modified), info.Mode().Perm()); writeErr != nil {
		return false, fmt.Errorf("failed to write %q: %w", r.path, writeErr)
	}

	return true, nil
}
