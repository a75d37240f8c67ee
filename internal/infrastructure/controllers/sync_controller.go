package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqsync/internal/domain/commands"
	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// SyncController handles the "sync" subcommand.
type SyncController struct {
	command commands.Sync
	out     io.Writer
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync) *SyncController {
	return &SyncController{command: command, out: os.Stdout}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync",
		Short: "Rewrite stale dependency constraints and emit a change proposal",
		Long: `Collect the installed and latest versions of every package, rewrite the
stale constraints of pyproject.toml keeping their operators, regenerate the
lockfile and hand a title, body and diff over to the pull request step.

This is the command intended to run on a schedule.`,
	}
}

// Execute runs one synchronization.
func (it *SyncController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("%v", err)
		return
	}

	result, runErr := it.command.Execute(ctx, settings, commands.SyncOptions{
		DryRun:  dryRun,
		Verbose: verbose,
	})
	if runErr != nil {
		if errors.Is(runErr, entities.ErrManifestRead) {
			logger.Fatalf("Sync aborted in state %s: %v", result.State, runErr)
		}
		logger.Errorf("Sync failed in state %s: %v", result.State, runErr)
		return
	}

	if result.LockErr != nil {
		logger.Warnf("Manifest updated but the lockfile was not: %v", result.LockErr)
	}
	if result.DryRun && result.Changed {
		it.printDiff(result)
	}
	logger.Infof("Sync finished in state %s (changes: %v)", result.State, result.Changed)
}

// AddFlags adds the sync-specific flags to the given Cobra command.
func (it *SyncController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("manifest", "", "Path to the pyproject.toml manifest (default: pyproject.toml)")
	cmd.Flags().String("output", "",
		fmt.Sprintf("Where to emit the proposal (%s, %s, %s)",
			entities.OutputGitHub, entities.OutputFile, entities.OutputStdout),
	)
	cmd.Flags().Bool("no-lock", false, "Skip the lockfile regeneration")
}

// printDiff shows the changelog and the colored diff of a dry run.
func (it *SyncController) printDiff(result *entities.SyncResult) {
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	heading := color.New(color.Bold)

	_, _ = heading.Fprintf(it.out, "%d packages would be updated:\n", result.Changelog.Count)
	for _, entry := range result.Changelog.Entries {
		_, _ = fmt.Fprintf(it.out, "  %s\n", entry)
	}
	_, _ = fmt.Fprintln(it.out)

	for _, line := range result.Diff {
		switch {
		case len(line) > 0 && line[0] == '+':
			_, _ = added.Fprintln(it.out, line)
		case len(line) > 0 && line[0] == '-':
			_, _ = removed.Fprintln(it.out, line)
		default:
			_, _ = fmt.Fprintln(it.out, line)
		}
	}
}
