package proposal

import (
	"context"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
)

// StdoutProposalRepository implements repositories.ProposalRepository by
// printing the proposal, for use outside CI.
type StdoutProposalRepository struct {
	out io.Writer
}

// NewStdoutProposalRepository creates a repository printing to standard output.
func NewStdoutProposalRepository() repositories.ProposalRepository {
	return &StdoutProposalRepository{out: os.Stdout}
}

func (r *StdoutProposalRepository) Name() string { return entities.OutputStdout }

func (r *StdoutProposalRepository) Publish(_ context.Context, proposal entities.Proposal) error {
	if _, err := fmt.Fprintf(r.out, "%s\n\n%s", proposal.Title, proposal.Body); err != nil {
		return fmt.Errorf("failed to print proposal: %w", err)
	}
	return nil
}

func (r *StdoutProposalRepository) Skip(_ context.Context) error {
	logger.Info("[proposal] No changes, nothing to propose")
	return nil
}
