package entities

// RunState is a stage of the synchronization pipeline.
type RunState string

const (
	StateCollecting   RunState = "COLLECTING"
	StateUpdating     RunState = "UPDATING"
	StateNoChanges    RunState = "NO_CHANGES"
	StateChangesFound RunState = "CHANGES_FOUND"
	StateDiffing      RunState = "DIFFING"
	StatePublishing   RunState = "PUBLISHING"
)

// SyncResult is the outcome of one synchronization run.
type SyncResult struct {
	State     RunState
	Changed   bool
	DryRun    bool
	Updated   []UpdatedPackage
	Diff      []string
	Changelog Changelog
	Proposal  *Proposal

	// LockErr is set when the lockfile could not be regenerated. The manifest
	// change and the proposal stand regardless.
	LockErr error
}
