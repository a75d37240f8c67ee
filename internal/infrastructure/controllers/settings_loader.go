package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// loadSettings resolves the settings for a run: the --config file, an
// auto-detected file, or the defaults, with flag overrides applied last.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
		}
		configPath = found
	}

	settings := entities.DefaultSettings()
	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	}

	if flag := cmd.Flags().Lookup("manifest"); flag != nil && flag.Changed {
		settings.Manifest.Path = flag.Value.String()
	}
	// a configured proposal path only belongs to the output it was written for
	if flag := cmd.Flags().Lookup("output"); flag != nil && flag.Changed &&
		flag.Value.String() != settings.Proposal.Output {
		settings.Proposal.Output = flag.Value.String()
		settings.Proposal.Path = ""
		settings.ApplyDefaults()
	}
	if flag := cmd.Flags().Lookup("no-lock"); flag != nil && flag.Changed {
		settings.Lock.Enabled = false
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
