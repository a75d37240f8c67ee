package entities

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// BumpKind classifies how far a version moved.
type BumpKind string

const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
	BumpOther BumpKind = "other"
)

// UpdatedPackage records a requirement whose version was rewritten.
type UpdatedPackage struct {
	Name       string
	OldVersion string
	NewVersion string
}

// String renders the update as `name old → new`.
func (p UpdatedPackage) String() string {
	return fmt.Sprintf("%s %s → %s", p.Name, p.OldVersion, p.NewVersion)
}

// Bump compares the two versions as semantic versions. Versions that are not
// plain MAJOR[.MINOR[.PATCH]] strings, such as pre-releases in PEP 440 form,
// are reported as BumpOther.
func (p UpdatedPackage) Bump() BumpKind {
	oldVer, newVer := "v"+p.OldVersion, "v"+p.NewVersion
	if !semver.IsValid(oldVer) || !semver.IsValid(newVer) {
		return BumpOther
	}
	switch {
	case semver.Major(oldVer) != semver.Major(newVer):
		return BumpMajor
	case semver.MajorMinor(oldVer) != semver.MajorMinor(newVer):
		return BumpMinor
	case semver.Compare(oldVer, newVer) != 0:
		return BumpPatch
	default:
		return BumpOther
	}
}
