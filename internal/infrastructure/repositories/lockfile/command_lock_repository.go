package lockfile

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
)

// commandRunner executes a program in dir and returns its combined output.
type commandRunner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// CommandLockRepository implements repositories.LockRepository by running the
// package manager's lock command (e.g. `uv lock`) in the project directory.
type CommandLockRepository struct {
	command []string
	dir     string
	run     commandRunner
}

// NewCommandLockRepository creates a lock repository running command inside dir.
func NewCommandLockRepository(command []string, dir string) repositories.LockRepository {
	return &CommandLockRepository{command: command, dir: dir, run: runCombined}
}

// Sync regenerates the lockfile. The returned error wraps entities.ErrLockSync.
func (r *CommandLockRepository) Sync(ctx context.Context) error {
	if len(r.command) == 0 {
		return fmt.Errorf("%w: %w", entities.ErrLockSync, errors.New("lock command is not configured"))
	}

	commandLine := strings.Join(r.command, " ")
	logger.Infof("[lock] Running %s", commandLine)

	output, err := r.run(ctx, r.dir, r.command[0], r.command[1:]...)
	if err != nil {
		return fmt.Errorf(
			"%w: %s failed: %w\nOutput:\n%s",
			entities.ErrLockSync, commandLine, err, strings.TrimSpace(string(output)),
		)
	}

	logger.Debugf("[lock] Output:\n%s", output)
	return nil
}

func runCombined(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}
