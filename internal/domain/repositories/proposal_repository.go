package repositories

import (
	"context"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// ProposalRepository hands the proposal triple over to whatever opens the
// pull request. Branches, authentication and labels are its concern.
type ProposalRepository interface {
	// Name returns the output identifier (e.g. "github", "file").
	Name() string

	// Publish emits a proposal for a run that changed the manifest.
	Publish(ctx context.Context, proposal entities.Proposal) error

	// Skip signals a run that changed nothing.
	Skip(ctx context.Context) error
}
