package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var journalLimit int

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recently applied moves",
	Long:  `Lists applied moves from the journal, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runJournal,
}

func init() {
	journalCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "maximum number of entries")
	rootCmd.AddCommand(journalCmd)
}

func runJournal(cmd *cobra.Command, _ []string) error {
	if moveJournal == nil {
		return errors.New("move journal not configured")
	}

	records, err := moveJournal.List(cmd.Context(), journalLimit)
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No moves recorded.")
		return nil
	}

	cmd.Println(titleStyle.Render("Applied moves"))
	cmd.Println()
	for _, rec := range records {
		cmd.Printf("  %s  %s\n", rec.AppliedAt.Local().Format("2006-01-02 15:04"),
			filepath.Base(rec.SourcePath))
		cmd.Printf("      -> %s  %s\n", rec.TargetPath,
			mutedStyle.Render(fmt.Sprintf("(%.3f, scan %s)", rec.Score, shortID(rec.ScanID))))
	}
	return nil
}
