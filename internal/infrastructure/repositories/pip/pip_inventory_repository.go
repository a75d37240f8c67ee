package pip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
)

// commandRunner executes a program in dir and returns its standard output.
type commandRunner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// PipInventoryRepository implements repositories.InventoryRepository by
// querying `pip list` in JSON format.
type PipInventoryRepository struct {
	command []string
	dir     string
	run     commandRunner
}

// NewPipInventoryRepository creates a repository that invokes pip through
// command (e.g. ["python3", "-m", "pip"]) inside dir.
func NewPipInventoryRepository(command []string, dir string) repositories.InventoryRepository {
	return &PipInventoryRepository{command: command, dir: dir, run: runCommand}
}

// pipPackage is the shape of one `pip list --format=json` entry.
type pipPackage struct {
	Name          string `json:"name"`
	Version       string `json:"version"`
	LatestVersion string `json:"latest_version"`
}

// Installed lists every installed package.
func (r *PipInventoryRepository) Installed(ctx context.Context) ([]entities.InstalledPackage, error) {
	packages, err := r.list(ctx)
	if err != nil {
		return nil, err
	}

	installed := make([]entities.InstalledPackage, 0, len(packages))
	for _, pkg := range packages {
		installed = append(installed, entities.InstalledPackage{Name: pkg.Name, Version: pkg.Version})
	}
	logger.Debugf("[pip] %d installed packages", len(installed))
	return installed, nil
}

// Outdated lists the packages with a newer release available.
func (r *PipInventoryRepository) Outdated(ctx context.Context) ([]entities.OutdatedPackage, error) {
	packages, err := r.list(ctx, "--outdated")
	if err != nil {
		return nil, err
	}

	outdated := make([]entities.OutdatedPackage, 0, len(packages))
	for _, pkg := range packages {
		outdated = append(outdated, entities.OutdatedPackage{
			Name:          pkg.Name,
			Version:       pkg.Version,
			LatestVersion: pkg.LatestVersion,
		})
	}
	logger.Debugf("[pip] %d outdated packages", len(outdated))
	return outdated, nil
}

func (r *PipInventoryRepository) list(ctx context.Context, extra ...string) ([]pipPackage, error) {
	if len(r.command) == 0 {
		return nil, errors.New("pip command is not configured")
	}

	args := append([]string{}, r.command[1:]...)
	args = append(args, "list", "--format=json", "--disable-pip-version-check")
	args = append(args, extra...)

	logger.Debugf("[pip] Running %s %s", r.command[0], strings.Join(args, " "))
	output, err := r.run(ctx, r.dir, r.command[0], args...)
	if err != nil {
		return nil, fmt.Errorf("pip list failed: %w", err)
	}

	return parsePackageList(output)
}

// parsePackageList decodes pip's JSON listing. Empty output is an empty list.
func parsePackageList(output []byte) ([]pipPackage, error) {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return []pipPackage{}, nil
	}

	var packages []pipPackage
	if err := json.Unmarshal([]byte(trimmed), &packages); err != nil {
		return nil, fmt.Errorf("failed to parse pip output: %w", err)
	}
	return packages, nil
}

func runCommand(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w\nOutput:\n%s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return output, nil
}
