package controllers

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqsync/internal/domain/commands"
	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// InventoryController handles the "inventory" subcommand.
type InventoryController struct {
	command commands.Inventory
	out     io.Writer
}

// NewInventoryController creates a new InventoryController.
func NewInventoryController(command commands.Inventory) *InventoryController {
	return &InventoryController{command: command, out: os.Stdout}
}

// GetBind returns the Cobra command metadata for the inventory controller.
func (it *InventoryController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "inventory",
		Short: "Show the installed and latest version of every package",
		Long: `List every installed package with its installed version, its latest
available version and the version sync would pin it to.`,
	}
}

// Execute prints the merged inventory.
func (it *InventoryController) Execute(cmd *cobra.Command, _ []string) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("%v", err)
		return
	}

	inventory, err := it.command.Execute(context.Background(), settings)
	if err != nil {
		logger.Errorf("Inventory failed: %v", err)
		return
	}

	it.printInventory(inventory)
}

// AddFlags adds no flags; the inventory only needs the global ones.
func (it *InventoryController) AddFlags(_ *cobra.Command) {}

func (it *InventoryController) printInventory(inventory entities.Inventory) {
	names := make([]string, 0, len(inventory))
	for name := range inventory {
		names = append(names, name)
	}
	sort.Strings(names)

	outdated := color.New(color.FgYellow)
	writer := tabwriter.NewWriter(it.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(writer, "PACKAGE\tINSTALLED\tLATEST\tTARGET")
	for _, name := range names {
		entry := inventory[name]
		latest := entry.LatestVersion
		if latest == "" {
			latest = "-"
		} else {
			latest = outdated.Sprint(latest)
		}
		_, _ = fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", name, entry.CurrentVersion, latest, entry.TargetVersion())
	}
	_ = writer.Flush()
}
