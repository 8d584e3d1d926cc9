package domain

// Score bonus terms. Content similarity dominates (continuous, up to 1.0);
// extension match is a coarse binary corroborating signal; the folder-name
// anchor boost rewards exact institution-name echoes even when overall
// vocabulary overlap is thin. The terms are summed, not normalised, so the
// nominal score scale is roughly [0, 1.3].
const (
	// ExtensionBonus is added when the source extension was observed in
	// the destination folder.
	ExtensionBonus = 0.2

	// AnchorBonus is added when source tokens overlap the destination
	// folder's own name tokens.
	AnchorBonus = 0.1

	// MaxScore is the nominal upper bound of the additive score.
	MaxScore = 1.0 + ExtensionBonus + AnchorBonus
)

// DefaultThreshold is the minimum score a destination must clear before a
// move is proposed, when the caller does not configure one.
const DefaultThreshold = 0.35

// DefaultMaxPages bounds text extraction to the leading pages of a
// document. Statements carry their identifying vocabulary up front;
// reading further adds cost, not signal.
const DefaultMaxPages = 3

// DefaultExtensions are the tracked document types when none are configured.
var DefaultExtensions = []string{"pdf", "docx", "txt", "md"}

// Settings holds the scan configuration resolved from config file and flags.
type Settings struct {
	// SourceDir is the directory of unsorted documents.
	SourceDir string

	// DestinationRoot is the root under which candidate folders live.
	DestinationRoot string

	// Threshold is the minimum match score; range [0, MaxScore].
	Threshold float64

	// Extensions are the tracked file extensions, lowercase without dots.
	Extensions []string

	// MaxPages bounds how many leading pages of text are extracted.
	MaxPages int
}

// Validate checks the settings are usable for a scan.
func (s Settings) Validate() error {
	if s.SourceDir == "" || s.DestinationRoot == "" {
		return ErrInvalidInput
	}
	if s.Threshold < 0 || s.Threshold > MaxScore {
		return ErrInvalidThreshold
	}
	return nil
}

// TracksExtension reports whether ext (lowercase, no leading dot) is a
// tracked document type.
func (s Settings) TracksExtension(ext string) bool {
	for _, e := range s.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
