package proposal

import (
	"context"
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
)

// FileProposalRepository implements repositories.ProposalRepository by
// writing the proposal as a markdown document.
type FileProposalRepository struct {
	path string
}

// NewFileProposalRepository creates a repository writing to path.
func NewFileProposalRepository(path string) repositories.ProposalRepository {
	return &FileProposalRepository{path: path}
}

func (r *FileProposalRepository) Name() string { return entities.OutputFile }

// Publish writes the title as a heading followed by the body.
func (r *FileProposalRepository) Publish(_ context.Context, proposal entities.Proposal) error {
	content := "# " + proposal.Title + "\n\n" + proposal.Body
	if err := os.WriteFile(r.path, []byte(content), outputFileMode); err != nil {
		return fmt.Errorf("failed to write %q: %w", r.path, err)
	}
	logger.Infof("[proposal] Wrote %s", r.path)
	return nil
}

// Skip removes a proposal left over from an earlier run.
func (r *FileProposalRepository) Skip(_ context.Context) error {
	err := os.Remove(r.path)
	if err == nil {
		logger.Infof("[proposal] Removed stale %s", r.path)
		return nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to remove %q: %w", r.path, err)
}
