package repositories

import (
	"context"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// InventoryRepository observes the package state of the project environment.
type InventoryRepository interface {
	// Installed lists every installed package with its installed version.
	Installed(ctx context.Context) ([]entities.InstalledPackage, error)

	// Outdated lists the installed packages that have a newer release available.
	Outdated(ctx context.Context) ([]entities.OutdatedPackage, error)
}
