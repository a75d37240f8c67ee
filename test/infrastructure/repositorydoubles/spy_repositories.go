//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
)

// EventLog records the order in which spies were called, shared across spies.
type EventLog struct {
	Events []string
}

func (l *EventLog) record(event string) {
	if l != nil {
		l.Events = append(l.Events, event)
	}
}

// SpyInventoryRepository implements repositories.InventoryRepository as a configurable spy.
type SpyInventoryRepository struct {
	Log *EventLog

	InstalledPackages []entities.InstalledPackage
	InstalledErr      error
	OutdatedPackages  []entities.OutdatedPackage
	OutdatedErr       error
}

var _ repositories.InventoryRepository = (*SpyInventoryRepository)(nil)

func (s *SpyInventoryRepository) Installed(_ context.Context) ([]entities.InstalledPackage, error) {
	s.Log.record("inventory.installed")
	return s.InstalledPackages, s.InstalledErr
}

func (s *SpyInventoryRepository) Outdated(_ context.Context) ([]entities.OutdatedPackage, error) {
	s.Log.record("inventory.outdated")
	return s.OutdatedPackages, s.OutdatedErr
}

// SpyManifestRepository implements repositories.ManifestRepository as a configurable spy.
// Render prints each group as a header line followed by one requirement per line.
type SpyManifestRepository struct {
	Log *EventLog

	Manifest  *entities.Manifest
	ReadErr   error
	RenderErr error
	WriteErr  error

	RenderCalls int
	Written     []*entities.Manifest
}

var _ repositories.ManifestRepository = (*SpyManifestRepository)(nil)

func (s *SpyManifestRepository) Read(_ context.Context) (*entities.Manifest, error) {
	s.Log.record("manifest.read")
	return s.Manifest, s.ReadErr
}

func (s *SpyManifestRepository) Render(original, updated *entities.Manifest) (string, string, error) {
	s.RenderCalls++
	if s.RenderErr != nil {
		return "", "", s.RenderErr
	}
	return renderGroups(original), renderGroups(updated), nil
}

func renderGroups(manifest *entities.Manifest) string {
	var sb strings.Builder
	for _, group := range manifest.Groups {
		sb.WriteString("[" + group.Name + "]\n")
		for _, requirement := range group.Requirements {
			sb.WriteString(requirement + "\n")
		}
	}
	return sb.String()
}

func (s *SpyManifestRepository) Write(_ context.Context, manifest *entities.Manifest) error {
	s.Log.record("manifest.write")
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Written = append(s.Written, manifest)
	return nil
}

// SpyLockRepository implements repositories.LockRepository as a configurable spy.
type SpyLockRepository struct {
	Log *EventLog

	SyncErr   error
	SyncCalls int
}

var _ repositories.LockRepository = (*SpyLockRepository)(nil)

func (s *SpyLockRepository) Sync(_ context.Context) error {
	s.Log.record("lock.sync")
	s.SyncCalls++
	return s.SyncErr
}

// SpyProposalRepository implements repositories.ProposalRepository as a configurable spy.
type SpyProposalRepository struct {
	Log *EventLog

	PublishErr error
	SkipErr    error

	Published []entities.Proposal
	SkipCalls int
}

var _ repositories.ProposalRepository = (*SpyProposalRepository)(nil)

func (s *SpyProposalRepository) Name() string { return "spy" }

func (s *SpyProposalRepository) Publish(_ context.Context, proposal entities.Proposal) error {
	s.Log.record("proposal.publish")
	s.Published = append(s.Published, proposal)
	return s.PublishErr
}

func (s *SpyProposalRepository) Skip(_ context.Context) error {
	s.Log.record("proposal.skip")
	s.SkipCalls++
	return s.SkipErr
}

// SpyChangelogRepository implements repositories.ChangelogRepository as a configurable spy.
type SpyChangelogRepository struct {
	Log *EventLog

	RecordResult bool
	RecordErr    error
	Recorded     [][]entities.UpdatedPackage
}

var _ repositories.ChangelogRepository = (*SpyChangelogRepository)(nil)

func (s *SpyChangelogRepository) Record(_ context.Context, updated []entities.UpdatedPackage) (bool, error) {
	s.Log.record("changelog.record")
	s.Recorded = append(s.Recorded, updated)
	return s.RecordResult, s.RecordErr
}
