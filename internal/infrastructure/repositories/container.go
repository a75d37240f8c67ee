package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	domainRepos "github.com/rios0rios0/reqsync/internal/domain/repositories"
	"github.com/rios0rios0/reqsync/internal/infrastructure/repositories/proposal"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register proposal registry with all output factories
	if err := container.Provide(func() *ProposalRegistry {
		reg := NewProposalRegistry()
		reg.Register(entities.OutputGitHub, func(settings entities.ProposalSettings) domainRepos.ProposalRepository {
			return proposal.NewGitHubOutputProposalRepository(settings.Path)
		})
		reg.Register(entities.OutputFile, func(settings entities.ProposalSettings) domainRepos.ProposalRepository {
			return proposal.NewFileProposalRepository(settings.Path)
		})
		reg.Register(entities.OutputStdout, func(_ entities.ProposalSettings) domainRepos.ProposalRepository {
			return proposal.NewStdoutProposalRepository()
		})
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(NewBackendFactory); err != nil {
		return err
	}

	// Bind the domain factory interface to the backend implementation
	if err := container.Provide(func(impl *BackendFactory) domainRepos.Factory {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
