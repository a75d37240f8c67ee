package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	OutputGitHub = "github"
	OutputFile   = "file"
	OutputStdout = "stdout"
)

// Settings is the reqsync configuration. Every field has a default, so a
// missing configuration file is not an error.
type Settings struct {
	Manifest  ManifestSettings  `yaml:"manifest"`
	Inventory InventorySettings `yaml:"inventory"`
	Lock      LockSettings      `yaml:"lock"`
	Proposal  ProposalSettings  `yaml:"proposal"`
	Changelog ChangelogSettings `yaml:"changelog"`
}

// ManifestSettings points at the dependency manifest.
type ManifestSettings struct {
	Path string `yaml:"path"`
}

// InventorySettings holds the pip invocation used to list packages.
type InventorySettings struct {
	Command []string `yaml:"command"` // e.g. ["python3", "-m", "pip"]
}

// LockSettings controls the lockfile regeneration step.
type LockSettings struct {
	Enabled bool     `yaml:"enabled"`
	Command []string `yaml:"command"` // e.g. ["uv", "lock"]
}

// ProposalSettings selects where the proposal triple is handed off.
type ProposalSettings struct {
	Output string `yaml:"output"` // "github", "file" or "stdout"
	Path   string `yaml:"path"`   // target file for "github" and "file"
}

// ChangelogSettings controls the CHANGELOG.md entry insertion.
type ChangelogSettings struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no configuration file exists.
// Inside GitHub Actions the proposal goes to $GITHUB_OUTPUT, elsewhere to stdout.
func DefaultSettings() *Settings {
	settings := baseSettings()
	settings.ApplyDefaults()
	return settings
}

func baseSettings() *Settings {
	output := OutputStdout
	if os.Getenv("GITHUB_OUTPUT") != "" {
		output = OutputGitHub
	}

	return &Settings{
		Manifest:  ManifestSettings{Path: "pyproject.toml"},
		Inventory: InventorySettings{Command: []string{"python3", "-m", "pip"}},
		Lock:      LockSettings{Enabled: true, Command: []string{"uv", "lock"}},
		Proposal:  ProposalSettings{Output: output},
		Changelog: ChangelogSettings{Enabled: true, Path: "CHANGELOG.md"},
	}
}

// NewSettings reads a configuration file on top of the defaults, expanding
// ${ENV_VAR} references in every string value.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := baseSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.expandEnv()
	settings.ApplyDefaults()

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
func FindConfigFile() (string, error) {
	locations := []string{".", ".config", "configs"}
	patterns := []string{
		".reqsync.yaml",
		".reqsync.yml",
		"reqsync.yaml",
		"reqsync.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ProjectDir returns the directory holding the manifest.
func (s *Settings) ProjectDir() string {
	return filepath.Dir(s.Manifest.Path)
}

// Validate checks that the settings can drive a run.
func (s *Settings) Validate() error {
	if s.Manifest.Path == "" {
		return errors.New("manifest.path is required")
	}
	if len(s.Inventory.Command) == 0 {
		return errors.New("inventory.command must have at least one entry")
	}
	if s.Lock.Enabled && len(s.Lock.Command) == 0 {
		return errors.New("lock.command must have at least one entry when lock.enabled is true")
	}

	switch s.Proposal.Output {
	case OutputStdout:
	case OutputGitHub, OutputFile:
		if s.Proposal.Path == "" {
			return fmt.Errorf("proposal.path is required for output %q", s.Proposal.Output)
		}
	default:
		return fmt.Errorf("unknown proposal.output %q (expected github, file or stdout)", s.Proposal.Output)
	}

	if s.Changelog.Enabled && s.Changelog.Path == "" {
		return errors.New("changelog.path is required when changelog.enabled is true")
	}

	return nil
}

// ApplyDefaults fills the proposal path for outputs that need one. It runs
// again after CLI flags override the output.
func (s *Settings) ApplyDefaults() {
	if s.Proposal.Output == OutputFile && s.Proposal.Path == "" {
		s.Proposal.Path = "proposal.md"
	}
	if s.Proposal.Output == OutputGitHub && s.Proposal.Path == "" {
		s.Proposal.Path = os.Getenv("GITHUB_OUTPUT")
	}
}

func (s *Settings) expandEnv() {
	s.Manifest.Path = ExpandEnv(s.Manifest.Path)
	s.Proposal.Path = ExpandEnv(s.Proposal.Path)
	s.Changelog.Path = ExpandEnv(s.Changelog.Path)
	for i := range s.Inventory.Command {
		s.Inventory.Command[i] = ExpandEnv(s.Inventory.Command[i])
	}
	for i := range s.Lock.Command {
		s.Lock.Command[i] = ExpandEnv(s.Lock.Command[i])
	}
}

// ExpandEnv replaces ${VAR} references with the value of the environment variable.
func ExpandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
