package repositories

import (
	"github.com/rios0rios0/reqsync/internal/domain/entities"
	domainRepos "github.com/rios0rios0/reqsync/internal/domain/repositories"
	"github.com/rios0rios0/reqsync/internal/infrastructure/repositories/changelogfile"
	"github.com/rios0rios0/reqsync/internal/infrastructure/repositories/lockfile"
	"github.com/rios0rios0/reqsync/internal/infrastructure/repositories/pip"
	"github.com/rios0rios0/reqsync/internal/infrastructure/repositories/pyproject"
)

// BackendFactory implements domainRepos.Factory with the pip, pyproject,
// lock-command and changelog-file backends.
type BackendFactory struct {
	proposals *ProposalRegistry
}

var _ domainRepos.Factory = (*BackendFactory)(nil)

// NewBackendFactory creates a factory resolving proposal outputs through proposals.
func NewBackendFactory(proposals *ProposalRegistry) *BackendFactory {
	return &BackendFactory{proposals: proposals}
}

func (f *BackendFactory) Inventory(settings *entities.Settings) domainRepos.InventoryRepository {
	return pip.NewPipInventoryRepository(settings.Inventory.Command, settings.ProjectDir())
}

func (f *BackendFactory) Manifest(settings *entities.Settings) domainRepos.ManifestRepository {
	return pyproject.NewPyProjectManifestRepository(settings.Manifest.Path)
}

func (f *BackendFactory) Lock(settings *entities.Settings) domainRepos.LockRepository {
	return lockfile.NewCommandLockRepository(settings.Lock.Command, settings.ProjectDir())
}

func (f *BackendFactory) Proposal(settings *entities.Settings) (domainRepos.ProposalRepository, error) {
	return f.proposals.Get(settings.Proposal)
}

func (f *BackendFactory) Changelog(settings *entities.Settings) domainRepos.ChangelogRepository {
	return changelogfile.NewChangelogFileRepository(settings.Changelog.Path)
}
