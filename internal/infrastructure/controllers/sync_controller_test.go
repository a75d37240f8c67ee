//go:build unit

package controllers //nolint:testpackage // tests unexported functions

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/test/domain/commanddoubles"
)

// newTestCommand builds a cobra command carrying the global flags and the
// controller flags, pointed at a config file in a temporary directory.
func newTestCommand(t *testing.T, controller entities.Controller, config string) *cobra.Command {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".reqsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o600))

	cmd := &cobra.Command{Use: controller.GetBind().Use}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	controller.AddFlags(cmd)
	require.NoError(t, cmd.Flags().Set("config", path))
	return cmd
}

const stdoutConfig = "proposal:\n  output: stdout\n"

func TestSyncController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the dry-run flag and the flag overrides to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSyncCommand{}
		controller := &SyncController{command: stub, out: &bytes.Buffer{}}
		cmd := newTestCommand(t, controller, stdoutConfig)
		require.NoError(t, cmd.Flags().Set("dry-run", "true"))
		require.NoError(t, cmd.Flags().Set("manifest", "app/pyproject.toml"))
		require.NoError(t, cmd.Flags().Set("no-lock", "true"))
		require.NoError(t, cmd.Flags().Set("output", "file"))

		// when
		controller.Execute(cmd, nil)

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.True(t, stub.LastOpts.DryRun)
		assert.Equal(t, "app/pyproject.toml", stub.LastSettings.Manifest.Path)
		assert.False(t, stub.LastSettings.Lock.Enabled)
		assert.Equal(t, entities.OutputFile, stub.LastSettings.Proposal.Output)
		assert.Equal(t, "proposal.md", stub.LastSettings.Proposal.Path)
	})

	t.Run("should keep the configured proposal path when --output repeats the configured output", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSyncCommand{}
		controller := &SyncController{command: stub, out: &bytes.Buffer{}}
		cmd := newTestCommand(t, controller, "proposal:\n  output: file\n  path: custom.md\n")
		require.NoError(t, cmd.Flags().Set("output", "file"))

		// when
		controller.Execute(cmd, nil)

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, entities.OutputFile, stub.LastSettings.Proposal.Output)
		assert.Equal(t, "custom.md", stub.LastSettings.Proposal.Path)
	})

	t.Run("should drop the configured proposal path when --output switches the output", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSyncCommand{}
		controller := &SyncController{command: stub, out: &bytes.Buffer{}}
		cmd := newTestCommand(t, controller, "proposal:\n  output: stdout\n  path: custom.md\n")
		require.NoError(t, cmd.Flags().Set("output", "file"))

		// when
		controller.Execute(cmd, nil)

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, entities.OutputFile, stub.LastSettings.Proposal.Output)
		assert.Equal(t, "proposal.md", stub.LastSettings.Proposal.Path)
	})

	t.Run("should print the changelog and the diff of a dry run", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		stub := &commanddoubles.StubSyncCommand{Result: &entities.SyncResult{
			State:     entities.StateDiffing,
			Changed:   true,
			DryRun:    true,
			Diff:      []string{"-flask>=1.0.0", "+flask>=3.0.1"},
			Changelog: entities.Changelog{Count: 1, Entries: []string{"flask 1.0.0 → 3.0.1"}},
		}}
		controller := &SyncController{command: stub, out: &out}
		cmd := newTestCommand(t, controller, stdoutConfig)
		require.NoError(t, cmd.Flags().Set("dry-run", "true"))

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Contains(t, out.String(), "flask 1.0.0 → 3.0.1")
		assert.Contains(t, out.String(), "-flask>=1.0.0\n+flask>=3.0.1\n")
	})

	t.Run("should not print a diff outside a dry run", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		stub := &commanddoubles.StubSyncCommand{Result: &entities.SyncResult{
			State:   entities.StatePublishing,
			Changed: true,
			Diff:    []string{"-a", "+b"},
		}}
		controller := &SyncController{command: stub, out: &out}
		cmd := newTestCommand(t, controller, stdoutConfig)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Empty(t, out.String())
	})

	t.Run("should not run the command with an invalid config", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSyncCommand{}
		controller := &SyncController{command: stub, out: &bytes.Buffer{}}
		cmd := newTestCommand(t, controller, "proposal:\n  output: email\n")

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should return after a recoverable failure", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSyncCommand{
			Result:     &entities.SyncResult{State: entities.StatePublishing},
			ExecuteErr: errors.Join(entities.ErrPublish, errors.New("disk full")),
		}
		controller := &SyncController{command: stub, out: &bytes.Buffer{}}
		cmd := newTestCommand(t, controller, stdoutConfig)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
	})
}
