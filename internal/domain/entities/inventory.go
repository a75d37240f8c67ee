package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// InstalledPackage is one entry of the installed-package listing.
type InstalledPackage struct {
	Name    string
	Version string
}

// OutdatedPackage is one entry of the outdated-package listing.
type OutdatedPackage struct {
	Name          string
	Version       string
	LatestVersion string
}

// VersionEntry is the merged view of a single package across both listings.
type VersionEntry struct {
	Name           string
	CurrentVersion string // Installed version, empty when unknown
	LatestVersion  string // Latest available version, empty when not outdated
}

// TargetVersion returns the version a requirement should be moved to:
// the latest available one when the package is outdated, the installed one otherwise.
func (e VersionEntry) TargetVersion() string {
	if e.LatestVersion != "" {
		return e.LatestVersion
	}
	return e.CurrentVersion
}

// Inventory maps lowercase package names to their merged version entry.
type Inventory map[string]VersionEntry

// NewInventory merges the installed and outdated listings into one Inventory.
// The result does not depend on the order of either listing, and entries that
// carry no version at all are dropped.
//
// A name listed more than once keeps its highest version (see higherVersion).
// The current version comes from the installed listing, and from the outdated
// listing only for packages the installed listing does not know.
func NewInventory(installed []InstalledPackage, outdated []OutdatedPackage) Inventory {
	inventory := make(Inventory, len(installed))
	listed := make(map[string]bool, len(installed))

	for _, pkg := range installed {
		key := normalizeName(pkg.Name)
		if key == "" {
			continue
		}
		entry := inventory[key]
		entry.Name = key
		entry.CurrentVersion = higherVersion(entry.CurrentVersion, pkg.Version)
		inventory[key] = entry
		listed[key] = true
	}

	for _, pkg := range outdated {
		key := normalizeName(pkg.Name)
		if key == "" {
			continue
		}
		entry := inventory[key]
		entry.Name = key
		if !listed[key] {
			entry.CurrentVersion = higherVersion(entry.CurrentVersion, pkg.Version)
		}
		entry.LatestVersion = higherVersion(entry.LatestVersion, pkg.LatestVersion)
		inventory[key] = entry
	}

	for key, entry := range inventory {
		if entry.CurrentVersion == "" && entry.LatestVersion == "" {
			delete(inventory, key)
		}
	}

	return inventory
}

// Lookup returns the entry registered for name, ignoring case.
func (i Inventory) Lookup(name string) (VersionEntry, bool) {
	entry, ok := i[normalizeName(name)]
	return entry, ok
}

// higherVersion picks the greater of two versions under a total order: any
// version beats an empty one, MAJOR[.MINOR[.PATCH]] versions beat the rest and
// compare numerically, and remaining ties compare as strings.
func higherVersion(a, b string) string {
	if compareVersions(a, b) >= 0 {
		return a
	}
	return b
}

func compareVersions(a, b string) int {
	if a == "" || b == "" {
		return strings.Compare(a, b)
	}

	validA, validB := semver.IsValid("v"+a), semver.IsValid("v"+b)
	switch {
	case validA && !validB:
		return 1
	case !validA && validB:
		return -1
	case validA:
		if cmp := semver.Compare("v"+a, "v"+b); cmp != 0 {
			return cmp
		}
	}
	return strings.Compare(a, b)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
