//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

func TestNewInventory(t *testing.T) {
	t.Parallel()

	t.Run("should prefer the latest version for outdated packages", func(t *testing.T) {
		t.Parallel()

		// given
		installed := []entities.InstalledPackage{
			{Name: "Flask", Version: "1.0.0"},
			{Name: "requests", Version: "2.0.0"},
		}
		outdated := []entities.OutdatedPackage{
			{Name: "flask", Version: "1.0.0", LatestVersion: "3.0.1"},
		}

		// when
		inventory := entities.NewInventory(installed, outdated)

		// then
		require.Len(t, inventory, 2)
		assert.Equal(t, "1.0.0", inventory["flask"].CurrentVersion)
		assert.Equal(t, "3.0.1", inventory["flask"].LatestVersion)
		assert.Equal(t, "3.0.1", inventory["flask"].TargetVersion())
		assert.Equal(t, "2.0.0", inventory["requests"].TargetVersion())
	})

	t.Run("should not depend on the order of the listings", func(t *testing.T) {
		t.Parallel()

		// given
		installed := []entities.InstalledPackage{
			{Name: "a", Version: "1.0"},
			{Name: "b", Version: "2.0"},
			{Name: "c", Version: "3.0"},
		}
		outdated := []entities.OutdatedPackage{
			{Name: "c", Version: "3.0", LatestVersion: "3.1"},
			{Name: "a", Version: "1.0", LatestVersion: "1.5"},
		}
		reversedInstalled := []entities.InstalledPackage{installed[2], installed[1], installed[0]}
		reversedOutdated := []entities.OutdatedPackage{outdated[1], outdated[0]}

		// when
		forward := entities.NewInventory(installed, outdated)
		backward := entities.NewInventory(reversedInstalled, reversedOutdated)

		// then
		assert.Equal(t, forward, backward)
	})

	t.Run("should keep the highest version of a package listed twice in either order", func(t *testing.T) {
		t.Parallel()

		// given
		installed := []entities.InstalledPackage{
			{Name: "Flask", Version: "2.10.0"},
			{Name: "flask", Version: "2.9.0"},
		}
		outdated := []entities.OutdatedPackage{
			{Name: "httpx", Version: "0.2", LatestVersion: "0.28.1"},
			{Name: "HTTPX", Version: "0.10", LatestVersion: "0.27.0"},
		}
		reversedInstalled := []entities.InstalledPackage{installed[1], installed[0]}
		reversedOutdated := []entities.OutdatedPackage{outdated[1], outdated[0]}

		// when
		forward := entities.NewInventory(installed, outdated)
		backward := entities.NewInventory(reversedInstalled, reversedOutdated)

		// then
		assert.Equal(t, forward, backward)
		assert.Equal(t, "2.10.0", forward["flask"].CurrentVersion)
		assert.Equal(t, "0.10", forward["httpx"].CurrentVersion)
		assert.Equal(t, "0.28.1", forward["httpx"].LatestVersion)
	})

	t.Run("should rank plain versions above pre-releases among duplicates", func(t *testing.T) {
		t.Parallel()

		// given
		installed := []entities.InstalledPackage{
			{Name: "rich", Version: "14.0.0rc1"},
			{Name: "rich", Version: "13.7.1"},
		}

		// when
		forward := entities.NewInventory(installed, nil)
		backward := entities.NewInventory([]entities.InstalledPackage{installed[1], installed[0]}, nil)

		// then
		assert.Equal(t, "13.7.1", forward["rich"].CurrentVersion)
		assert.Equal(t, forward, backward)
	})

	t.Run("should take the current version from the installed listing over the outdated one", func(t *testing.T) {
		t.Parallel()

		// given
		installed := []entities.InstalledPackage{{Name: "click", Version: "8.0.0"}}
		outdated := []entities.OutdatedPackage{{Name: "click", Version: "8.1.0", LatestVersion: "8.1.7"}}

		// when
		inventory := entities.NewInventory(installed, outdated)

		// then
		assert.Equal(t, "8.0.0", inventory["click"].CurrentVersion)
		assert.Equal(t, "8.1.7", inventory["click"].LatestVersion)
	})

	t.Run("should keep packages that only appear in the outdated listing", func(t *testing.T) {
		t.Parallel()

		// given
		outdated := []entities.OutdatedPackage{{Name: "httpx", Version: "0.1", LatestVersion: "0.2"}}

		// when
		inventory := entities.NewInventory(nil, outdated)

		// then
		entry, ok := inventory.Lookup("httpx")
		require.True(t, ok)
		assert.Equal(t, "0.1", entry.CurrentVersion)
		assert.Equal(t, "0.2", entry.TargetVersion())
	})

	t.Run("should return an empty inventory when both listings are empty", func(t *testing.T) {
		t.Parallel()

		// given / when
		inventory := entities.NewInventory(nil, nil)

		// then
		assert.NotNil(t, inventory)
		assert.Empty(t, inventory)
	})

	t.Run("should drop entries without any version", func(t *testing.T) {
		t.Parallel()

		// given
		installed := []entities.InstalledPackage{{Name: "ghost", Version: ""}, {Name: "", Version: "1.0"}}

		// when
		inventory := entities.NewInventory(installed, nil)

		// then
		assert.Empty(t, inventory)
	})

	t.Run("should fall back to the installed version when latest is blank", func(t *testing.T) {
		t.Parallel()

		// given
		installed := []entities.InstalledPackage{{Name: "rich", Version: "13.0.0"}}
		outdated := []entities.OutdatedPackage{{Name: "rich", Version: "13.0.0", LatestVersion: ""}}

		// when
		inventory := entities.NewInventory(installed, outdated)

		// then
		assert.Equal(t, "13.0.0", inventory["rich"].TargetVersion())
	})
}

func TestInventoryLookup(t *testing.T) {
	t.Parallel()

	t.Run("should find packages regardless of case", func(t *testing.T) {
		t.Parallel()

		// given
		inventory := entities.NewInventory([]entities.InstalledPackage{{Name: "PyYAML", Version: "6.0"}}, nil)

		// when
		entry, ok := inventory.Lookup("pyyaml")

		// then
		require.True(t, ok)
		assert.Equal(t, "6.0", entry.TargetVersion())
	})

	t.Run("should report missing packages", func(t *testing.T) {
		t.Parallel()

		// given
		inventory := entities.NewInventory(nil, nil)

		// when
		_, ok := inventory.Lookup("missing")

		// then
		assert.False(t, ok)
	})
}
