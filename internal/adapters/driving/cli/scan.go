package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsort-cli/internal/core/domain"
)

var (
	scanSource    string
	scanDest      string
	scanThreshold float64
	scanMaxPages  int
	scanExts      []string
	scanJSON      bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Preview where documents would be filed",
	Long: `Scans the source directory, matches each document against the
destination folders and prints the proposed moves. Nothing is modified;
use 'docsort apply' to execute the proposals.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	addScanFlags(scanCmd)
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output proposals as JSON")
	rootCmd.AddCommand(scanCmd)
}

// addScanFlags registers the flags shared by every command that runs a
// scan. The bound variables are shared too; only one of these commands
// runs per invocation.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&scanSource, "source", "s", "", "directory of unsorted documents")
	cmd.Flags().StringVarP(&scanDest, "dest", "d", "", "root of the destination folder tree")
	cmd.Flags().Float64VarP(&scanThreshold, "threshold", "t", -1,
		"minimum score for a match (0 to 1.3)")
	cmd.Flags().IntVar(&scanMaxPages, "max-pages", 0, "pages of content to read per document")
	cmd.Flags().StringSliceVar(&scanExts, "ext", nil, "tracked file extensions")
}

// scanSettings resolves settings from flags first, then the config store,
// then the built-in defaults.
func scanSettings() domain.Settings {
	settings := domain.Settings{
		SourceDir:       scanSource,
		DestinationRoot: scanDest,
		Threshold:       scanThreshold,
		MaxPages:        scanMaxPages,
		Extensions:      scanExts,
	}

	if configStore != nil {
		if settings.SourceDir == "" {
			settings.SourceDir = configStore.GetString("scan.source_dir")
		}
		if settings.DestinationRoot == "" {
			settings.DestinationRoot = configStore.GetString("scan.destination_root")
		}
		if settings.Threshold < 0 {
			if _, ok := configStore.Get("scan.threshold"); ok {
				settings.Threshold = configStore.GetFloat("scan.threshold")
			}
		}
		if settings.MaxPages == 0 {
			settings.MaxPages = configStore.GetInt("scan.max_pages")
		}
		if len(settings.Extensions) == 0 {
			settings.Extensions = configStore.GetStringSlice("scan.extensions")
		}
	}

	if settings.Threshold < 0 {
		settings.Threshold = domain.DefaultThreshold
	}
	return settings
}

func runScan(cmd *cobra.Command, _ []string) error {
	if plannerService == nil {
		return errors.New("planner service not configured")
	}

	plan, err := plannerService.Scan(cmd.Context(), scanSettings())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if scanJSON {
		return outputPlanJSON(cmd, plan)
	}
	outputPlanTable(cmd, plan)
	return nil
}

// proposalJSON is the stable JSON shape for one candidate. Document text
// stays internal.
type proposalJSON struct {
	Source       string  `json:"source"`
	Score        float64 `json:"score"`
	Matched      bool    `json:"matched"`
	Destination  string  `json:"destination,omitempty"`
	ProposedName string  `json:"proposed_name,omitempty"`
}

func outputPlanJSON(cmd *cobra.Command, plan *domain.MatchPlan) error {
	proposals := make([]proposalJSON, 0, len(plan.Candidates))
	for _, c := range plan.Candidates {
		p := proposalJSON{
			Source:  c.Source.Path,
			Score:   c.Score,
			Matched: c.Matched(),
		}
		if c.Matched() {
			p.Destination = c.Destination.Path
			p.ProposedName = c.ProposedName
		}
		proposals = append(proposals, p)
	}

	data, err := json.MarshalIndent(proposals, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal proposals: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
