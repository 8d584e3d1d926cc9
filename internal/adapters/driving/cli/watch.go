package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsort-cli/internal/logger"
)

var watchApply bool

// watchDebounce batches the event bursts editors and downloaders produce
// into a single rescan.
const watchDebounce = 2 * time.Second

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rescan whenever new documents arrive",
	Long: `Watches the source directory and reruns the scan each time documents
are added or changed. With --apply, matched documents are moved
immediately. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	addScanFlags(watchCmd)
	watchCmd.Flags().BoolVar(&watchApply, "apply", false, "move matched documents automatically")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if plannerService == nil {
		return errors.New("planner service not configured")
	}
	if watchApply && applyService == nil {
		return errors.New("apply service not configured")
	}

	settings := scanSettings()
	if err := settings.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(settings.SourceDir); err != nil {
		return fmt.Errorf("watching %s: %w", settings.SourceDir, err)
	}

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", settings.SourceDir)

	// Run once up front so existing documents are handled.
	if err := watchScan(ctx, cmd); err != nil {
		return err
	}

	// A nil channel blocks forever; the timer only runs while a rescan is
	// pending.
	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			logger.Debug("fs event: %s", event)
			debounce.Reset(watchDebounce)
			pending = debounce.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)

		case <-pending:
			pending = nil
			if err := watchScan(ctx, cmd); err != nil {
				return err
			}
		}
	}
}

// relevantEvent reports whether the event can introduce or change a
// document worth rescanning for. Hidden files and removals are ignored.
func relevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return false
	}
	return !strings.HasPrefix(filepath.Base(event.Name), ".")
}

// watchScan runs one scan pass, applying the proposals when --apply is
// set. Scan errors stop the watch; individual move failures do not.
func watchScan(ctx context.Context, cmd *cobra.Command) error {
	plan, err := plannerService.Scan(ctx, scanSettings())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	outputPlanTable(cmd, plan)

	if watchApply && plan.MatchedCount() > 0 {
		results := applyService.Apply(ctx, plan.ID, plan.Candidates)
		outputMoveResults(cmd, results)
	}
	cmd.Println()
	return nil
}
