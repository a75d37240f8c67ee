//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/reqsync/internal/domain/commands"
	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// StubSyncCommand is a stub implementation of commands.Sync.
type StubSyncCommand struct {
	ExecuteCallCount int
	Result           *entities.SyncResult
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.SyncOptions
}

var _ commands.Sync = (*StubSyncCommand)(nil)

func (s *StubSyncCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.SyncOptions,
) (*entities.SyncResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	result := s.Result
	if result == nil {
		result = &entities.SyncResult{State: entities.StateNoChanges}
	}
	return result, s.ExecuteErr
}

// StubInventoryCommand is a stub implementation of commands.Inventory.
type StubInventoryCommand struct {
	ExecuteCallCount int
	Inventory        entities.Inventory
	ExecuteErr       error
	LastSettings     *entities.Settings
}

var _ commands.Inventory = (*StubInventoryCommand)(nil)

func (s *StubInventoryCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) (entities.Inventory, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Inventory, s.ExecuteErr
}
