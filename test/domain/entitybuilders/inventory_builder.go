//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"sort"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// InventoryBuilder helps create the two package listings an inventory is merged from.
type InventoryBuilder struct {
	*testkit.BaseBuilder
	installed []entities.InstalledPackage
	outdated  []entities.OutdatedPackage
}

// NewInventoryBuilder creates a new builder with empty listings.
func NewInventoryBuilder() *InventoryBuilder {
	return &InventoryBuilder{BaseBuilder: testkit.NewBaseBuilder()}
}

// WithInstalled adds an up-to-date installed package.
func (b *InventoryBuilder) WithInstalled(name, version string) *InventoryBuilder {
	b.installed = append(b.installed, entities.InstalledPackage{Name: name, Version: version})
	return b
}

// WithOutdated adds an installed package that has a newer release.
func (b *InventoryBuilder) WithOutdated(name, version, latest string) *InventoryBuilder {
	b.installed = append(b.installed, entities.InstalledPackage{Name: name, Version: version})
	b.outdated = append(b.outdated, entities.OutdatedPackage{Name: name, Version: version, LatestVersion: latest})
	return b
}

// Installed returns the installed listing.
func (b *InventoryBuilder) Installed() []entities.InstalledPackage {
	return append([]entities.InstalledPackage(nil), b.installed...)
}

// Outdated returns the outdated listing.
func (b *InventoryBuilder) Outdated() []entities.OutdatedPackage {
	return append([]entities.OutdatedPackage(nil), b.outdated...)
}

// Build creates the inventory (satisfies testkit.Builder interface).
func (b *InventoryBuilder) Build() interface{} {
	return b.BuildInventory()
}

// BuildInventory merges the listings into an entities.Inventory.
func (b *InventoryBuilder) BuildInventory() entities.Inventory {
	return entities.NewInventory(b.installed, b.outdated)
}

// Reset clears the builder state, allowing it to be reused.
func (b *InventoryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.installed = nil
	b.outdated = nil
	return b
}

// Clone creates a deep copy of the InventoryBuilder.
func (b *InventoryBuilder) Clone() testkit.Builder {
	return &InventoryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		installed:   b.Installed(),
		outdated:    b.Outdated(),
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
