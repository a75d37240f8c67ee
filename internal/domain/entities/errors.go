package entities

import "errors"

var (
	ErrInventory     = errors.New("failed to collect the package inventory")
	ErrManifestRead  = errors.New("failed to read the manifest")
	ErrManifestWrite = errors.New("failed to write the manifest")
	ErrDiff          = errors.New("failed to diff the manifest")
	ErrLockSync      = errors.New("failed to synchronize the lockfile")
	ErrPublish       = errors.New("failed to publish the proposal")
)
