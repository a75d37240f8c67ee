//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
)

// StubFactory implements repositories.Factory by handing out the configured spies.
type StubFactory struct {
	InventoryRepo *SpyInventoryRepository
	ManifestRepo  *SpyManifestRepository
	LockRepo      *SpyLockRepository
	ProposalRepo  *SpyProposalRepository
	ChangelogRepo *SpyChangelogRepository
	ProposalErr   error
}

var _ repositories.Factory = (*StubFactory)(nil)

// NewStubFactory creates a factory whose spies share one EventLog.
func NewStubFactory(log *EventLog) *StubFactory {
	return &StubFactory{
		InventoryRepo: &SpyInventoryRepository{Log: log},
		ManifestRepo:  &SpyManifestRepository{Log: log},
		LockRepo:      &SpyLockRepository{Log: log},
		ProposalRepo:  &SpyProposalRepository{Log: log},
		ChangelogRepo: &SpyChangelogRepository{Log: log},
	}
}

func (f *StubFactory) Inventory(_ *entities.Settings) repositories.InventoryRepository {
	return f.InventoryRepo
}

func (f *StubFactory) Manifest(_ *entities.Settings) repositories.ManifestRepository {
	return f.ManifestRepo
}

func (f *StubFactory) Lock(_ *entities.Settings) repositories.LockRepository {
	return f.LockRepo
}

func (f *StubFactory) Proposal(_ *entities.Settings) (repositories.ProposalRepository, error) {
	if f.ProposalErr != nil {
		return nil, f.ProposalErr
	}
	return f.ProposalRepo, nil
}

func (f *StubFactory) Changelog(_ *entities.Settings) repositories.ChangelogRepository {
	return f.ChangelogRepo
}
