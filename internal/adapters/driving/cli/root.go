// Package cli implements the docsort command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsort-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docsort-cli/internal/adapters/driven/journal/sqlite"
	"github.com/custodia-labs/docsort-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsort-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsort-cli/internal/core/services"
	"github.com/custodia-labs/docsort-cli/internal/extractors"
	"github.com/custodia-labs/docsort-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services used by the commands. Wired by Execute, swapped in tests.
var (
	plannerService driving.PlannerService
	applyService   driving.ApplyService
	moveJournal    driven.MoveJournal
	configStore    driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docsort",
	Short: "Match unsorted documents to destination folders",
	Long: `Docsort scans a directory of unsorted documents, matches each one to
the destination folder whose contents it most resembles, and proposes a
filename consistent with that folder's naming convention.

Run 'docsort scan' to preview proposals and 'docsort apply' to move files.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if !verbose && configStore != nil {
			verbose = configStore.GetBool("verbose")
		}
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print diagnostic output to stderr")
}

// Execute wires the default services and runs the root command.
func Execute(v string) error {
	version = v

	if err := initServices(); err != nil {
		return err
	}
	defer func() {
		if moveJournal != nil {
			moveJournal.Close() //nolint:errcheck // Best-effort on shutdown
		}
	}()

	return rootCmd.Execute()
}

// initServices builds the production service graph. A journal that fails
// to open disables the audit trail but never blocks scanning.
func initServices() error {
	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	configStore = store

	profiler := services.NewProfiler(extractors.DefaultRegistry())
	plannerService = services.NewPlanner(profiler)

	journal, err := sqlite.New("")
	if err != nil {
		logger.Warn("move journal unavailable: %v", err)
	} else {
		moveJournal = journal
	}
	applyService = services.NewApplyRunner(moveJournal)

	return nil
}
