package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
)

// Sync is the interface for the sync command.
type Sync interface {
	Execute(ctx context.Context, settings *entities.Settings, opts SyncOptions) (*entities.SyncResult, error)
}

// SyncOptions holds runtime options for a single run.
type SyncOptions struct {
	DryRun  bool
	Verbose bool
}

// SyncCommand runs the synchronization pipeline:
// collect inventory -> update requirements -> diff -> publish.
type SyncCommand struct {
	factory repositories.Factory
}

// NewSyncCommand creates a new SyncCommand building its repositories with factory.
func NewSyncCommand(factory repositories.Factory) *SyncCommand {
	return &SyncCommand{factory: factory}
}

// Execute runs one synchronization. The returned result reflects the state the
// run reached, also when an error interrupted it.
func (it *SyncCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts SyncOptions,
) (*entities.SyncResult, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	result := &entities.SyncResult{State: entities.StateCollecting, DryRun: opts.DryRun}

	proposalRepo, err := it.factory.Proposal(settings)
	if err != nil {
		return result, fmt.Errorf("failed to initialize proposal output: %w", err)
	}
	manifestRepo := it.factory.Manifest(settings)

	inventory, err := collectInventory(ctx, it.factory.Inventory(settings))
	if err != nil {
		return result, err
	}
	logger.Infof("Collected versions for %d packages", len(inventory))

	result.State = entities.StateUpdating
	manifest, err := manifestRepo.Read(ctx)
	if err != nil {
		return result, err
	}
	logger.Infof("Checking %d requirements in %s", manifest.RequirementCount(), manifest.Path)

	updated, changes := entities.UpdateManifest(manifest, inventory)
	result.Updated = changes

	if len(changes) == 0 {
		result.State = entities.StateNoChanges
		logger.Info("All dependency constraints are up to date, nothing to do.")
		if opts.DryRun {
			return result, nil
		}
		if skipErr := proposalRepo.Skip(ctx); skipErr != nil {
			return result, fmt.Errorf("%w: %w", entities.ErrPublish, skipErr)
		}
		return result, nil
	}

	result.State = entities.StateChangesFound
	result.Changed = true
	for _, change := range changes {
		logger.Infof("  %s", change)
	}

	result.State = entities.StateDiffing
	diff, err := diffManifests(manifestRepo, manifest, updated)
	if err != nil {
		return result, err
	}
	result.Diff = diff
	result.Changelog = entities.NewChangelog(changes)
	proposal := entities.NewProposal(result.Changelog, diff, changes)
	result.Proposal = &proposal

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would update %d packages in %s", len(changes), manifest.Path)
		return result, nil
	}

	result.State = entities.StatePublishing
	if writeErr := manifestRepo.Write(ctx, updated); writeErr != nil {
		return result, writeErr
	}
	logger.Infof("Wrote %s", manifest.Path)

	result.LockErr = it.syncLock(ctx, settings)
	it.recordChangelog(ctx, settings, changes)

	if publishErr := proposalRepo.Publish(ctx, proposal); publishErr != nil {
		return result, fmt.Errorf("%w: %w", entities.ErrPublish, publishErr)
	}
	logger.Infof("Published proposal %q via %s", proposal.Title, proposalRepo.Name())

	return result, nil
}

func collectInventory(
	ctx context.Context,
	inventoryRepo repositories.InventoryRepository,
) (entities.Inventory, error) {
	installed, err := inventoryRepo.Installed(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrInventory, err)
	}

	outdated, err := inventoryRepo.Outdated(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrInventory, err)
	}

	logger.Debugf("%d installed packages, %d outdated", len(installed), len(outdated))
	return entities.NewInventory(installed, outdated), nil
}

func diffManifests(
	manifestRepo repositories.ManifestRepository,
	before, after *entities.Manifest,
) ([]string, error) {
	beforeText, afterText, err := manifestRepo.Render(before, after)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrDiff, err)
	}

	return entities.LineDiff(beforeText, afterText), nil
}

// syncLock regenerates the lockfile. Its failure is reported, never fatal.
func (it *SyncCommand) syncLock(ctx context.Context, settings *entities.Settings) error {
	if !settings.Lock.Enabled {
		logger.Debug("Lockfile synchronization is disabled")
		return nil
	}

	if err := it.factory.Lock(settings).Sync(ctx); err != nil {
		if !errors.Is(err, entities.ErrLockSync) {
			err = fmt.Errorf("%w: %w", entities.ErrLockSync, err)
		}
		logger.Warnf("Lockfile is out of sync with the manifest until the next run: %v", err)
		return err
	}

	return nil
}

func (it *SyncCommand) recordChangelog(
	ctx context.Context,
	settings *entities.Settings,
	changes []entities.UpdatedPackage,
) {
	if !settings.Changelog.Enabled {
		return
	}

	recorded, err := it.factory.Changelog(settings).Record(ctx, changes)
	if err != nil {
		logger.Warnf("Failed to update %s: %v", settings.Changelog.Path, err)
		return
	}
	if recorded {
		logger.Infof("Recorded %d entries in %s", len(changes), settings.Changelog.Path)
	}
}
