package internal

import (
	"fmt"

	"go.uber.org/dig"

	"github.com/rios0rios0/reqsync/internal/domain/commands"
	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/infrastructure/controllers"
	"github.com/rios0rios0/reqsync/internal/infrastructure/repositories"
)

// layer is one package that contributes providers to the container.
type layer struct {
	name     string
	register func(*dig.Container) error
}

// layers lists the packages bottom-up: each one only depends on the ones before it.
func layers() []layer {
	return []layer{
		{name: "manifest, inventory and proposal backend", register: repositories.RegisterProviders},
		{name: "entity", register: entities.RegisterProviders},
		{name: "sync and inventory command", register: commands.RegisterProviders},
		{name: "controller", register: controllers.RegisterProviders},
	}
}

// RegisterProviders registers every reqsync layer and the AppInternal with the DIG container.
func RegisterProviders(container *dig.Container) error {
	for _, l := range layers() {
		if err := l.register(container); err != nil {
			return fmt.Errorf("failed to register %s providers: %w", l.name, err)
		}
	}

	if err := container.Provide(NewAppInternal); err != nil {
		return fmt.Errorf("failed to register the application: %w", err)
	}
	return nil
}
