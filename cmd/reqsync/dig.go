package main

import (
	"errors"
	"fmt"

	"go.uber.org/dig"

	"github.com/rios0rios0/reqsync/internal"
)

// injectAppContext resolves the controllers behind the sync and inventory subcommands.
func injectAppContext() (*internal.AppInternal, error) {
	container := dig.New()
	if err := internal.RegisterProviders(container); err != nil {
		return nil, err
	}

	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		return nil, fmt.Errorf("failed to resolve the controllers: %w", err)
	}

	if len(appInternal.GetControllers()) == 0 {
		return nil, errors.New("no subcommand controllers were registered")
	}
	return appInternal, nil
}
