package repositories

import "github.com/rios0rios0/reqsync/internal/domain/entities"

// Factory builds the repositories of a run from its settings.
type Factory interface {
	Inventory(settings *entities.Settings) InventoryRepository
	Manifest(settings *entities.Settings) ManifestRepository
	Lock(settings *entities.Settings) LockRepository
	Proposal(settings *entities.Settings) (ProposalRepository, error)
	Changelog(settings *entities.Settings) ChangelogRepository
}
