package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Scan and execute the proposed moves",
	Long: `Runs a scan and moves every matched document into its proposed
destination under its proposed name. Unmatched documents are left in
place. Applied moves are recorded in the journal.`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	addScanFlags(applyCmd)
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, _ []string) error {
	if plannerService == nil {
		return errors.New("planner service not configured")
	}
	if applyService == nil {
		return errors.New("apply service not configured")
	}

	ctx := cmd.Context()
	plan, err := plannerService.Scan(ctx, scanSettings())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	matched := plan.MatchedCount()
	if matched == 0 {
		cmd.Printf("No documents matched (threshold %.2f). Nothing to do.\n", plan.Threshold)
		return nil
	}

	cmd.Println(titleStyle.Render(fmt.Sprintf("Applying %d moves", matched)))
	results := applyService.Apply(ctx, plan.ID, plan.Candidates)

	failed := outputMoveResults(cmd, results)
	cmd.Println()
	if failed > 0 {
		return fmt.Errorf("%d of %d moves failed", failed, len(results))
	}
	cmd.Printf("Moved %d documents.\n", len(results))
	return nil
}
