package commands

import (
	"context"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
)

// Inventory is the interface for the inventory command.
type Inventory interface {
	Execute(ctx context.Context, settings *entities.Settings) (entities.Inventory, error)
}

// InventoryCommand collects the merged package inventory without touching the manifest.
type InventoryCommand struct {
	factory repositories.Factory
}

// NewInventoryCommand creates a new InventoryCommand.
func NewInventoryCommand(factory repositories.Factory) *InventoryCommand {
	return &InventoryCommand{factory: factory}
}

// Execute lists the installed and outdated packages and merges them.
func (it *InventoryCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) (entities.Inventory, error) {
	return collectInventory(ctx, it.factory.Inventory(settings))
}
