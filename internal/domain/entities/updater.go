package entities

import (
	"errors"

	logger "github.com/sirupsen/logrus"
)

// UpdateManifest rewrites every stale versioned requirement of the manifest to
// the target version of its package in the inventory. The input manifest is
// left untouched; the returned copy carries the rewritten requirements and the
// list of updates, in group and requirement order.
func UpdateManifest(manifest *Manifest, inventory Inventory) (*Manifest, []UpdatedPackage) {
	updated := manifest.Clone()
	var changes []UpdatedPackage

	for gi := range updated.Groups {
		group := &updated.Groups[gi]
		for ri, source := range group.Requirements {
			rewritten, change, ok := UpdateRequirement(source, inventory)
			if !ok {
				continue
			}
			group.Requirements[ri] = rewritten
			changes = append(changes, change)
		}
	}

	return updated, changes
}

// UpdateRequirement rewrites a single requirement string. It returns false
// when the requirement is left as it is: unparsable, unknown to the inventory,
// unversioned, or already at the target version.
func UpdateRequirement(source string, inventory Inventory) (string, UpdatedPackage, bool) {
	req, err := ParseRequirement(source)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			logger.Warnf("Skipping requirement %q: %v", parseErr.Source, parseErr.Reason)
		}
		return source, UpdatedPackage{}, false
	}

	entry, found := inventory.Lookup(req.Name)
	if !found || entry.TargetVersion() == "" {
		logger.Debugf("No version data for %q, leaving it untouched", req.Name)
		return source, UpdatedPackage{}, false
	}

	if !req.HasVersion() {
		return source, UpdatedPackage{}, false
	}

	target := entry.TargetVersion()
	if req.Version == target {
		return source, UpdatedPackage{}, false
	}

	oldVersion := req.Version
	if oldVersion == "" {
		oldVersion = MissingVersion
	}

	return req.WithVersion(target).String(), UpdatedPackage{
		Name:       req.Name,
		OldVersion: oldVersion,
		NewVersion: target,
	}, true
}
