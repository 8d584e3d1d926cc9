package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsort-cli/internal/core/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// outputPlanTable prints one line per candidate, matched first (the plan
// arrives sorted by descending score).
func outputPlanTable(cmd *cobra.Command, plan *domain.MatchPlan) {
	matched := plan.MatchedCount()
	cmd.Println(titleStyle.Render(fmt.Sprintf(
		"Scan %s: %d of %d documents matched (threshold %.2f)",
		shortID(plan.ID), matched, len(plan.Candidates), plan.Threshold)))
	cmd.Println()

	if len(plan.Candidates) == 0 {
		cmd.Println("No documents found.")
		return
	}

	for _, c := range plan.Candidates {
		name := filepath.Base(c.Source.Path)
		if c.Matched() {
			cmd.Printf("  %s %s\n", matchStyle.Render(fmt.Sprintf("%.3f", c.Score)), name)
			cmd.Printf("        -> %s\n", filepath.Join(c.Destination.Path, c.ProposedName))
		} else {
			cmd.Printf("  %s %s\n", mutedStyle.Render(fmt.Sprintf("%.3f", c.Score)), name)
			cmd.Printf("        %s\n", mutedStyle.Render("no destination above threshold"))
		}
	}

	if matched > 0 {
		cmd.Println()
		cmd.Println("Run 'docsort apply' to execute these moves.")
	}
}

// outputMoveResults prints the per-move outcomes and returns the failure
// count.
func outputMoveResults(cmd *cobra.Command, results []domain.MoveResult) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			cmd.Printf("  %s %s: %v\n", errorStyle.Render("FAIL"), filepath.Base(r.SourcePath), r.Err)
		} else {
			cmd.Printf("  %s %s -> %s\n", successStyle.Render("ok"),
				filepath.Base(r.SourcePath), r.TargetPath)
		}
	}
	return failed
}

// shortID trims a UUID to its first block for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
