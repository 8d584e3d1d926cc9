package domain

import "time"

// SourceDocument represents one unsorted document awaiting filing.
// It is immutable once built for a scan.
type SourceDocument struct {
	// Path is the absolute location of the document on disk.
	Path string

	// Tokens is the document's vocabulary: content tokens from up to the
	// first pages of extractable text, or filename tokens when extraction
	// yields nothing.
	Tokens TokenSet

	// Extension is the lowercased file extension without the leading dot.
	Extension string

	// Text is the extracted content (bounded to the leading pages), kept
	// for date extraction. Empty when extraction was unavailable.
	Text string

	// CreatedAt and ModifiedAt are filesystem timestamps, used as date
	// fallbacks when no date appears in the text.
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// DestinationProfile is the aggregated vocabulary and extension set of one
// candidate target folder. One profile exists per leaf folder containing at
// least one tracked document; a folder with none is never a match target.
type DestinationProfile struct {
	// Path is the absolute location of the folder.
	Path string

	// Name is the folder's own name (base of Path).
	Name string

	// Tokens aggregates every tracked document under the folder (content
	// tokens where extractable, filename tokens otherwise) unioned with
	// tokens of the folder's own name.
	Tokens TokenSet

	// Extensions is the set of lowercased file extensions observed in the
	// folder, keyed without the leading dot.
	Extensions map[string]struct{}

	// FileCount is the number of tracked documents that contributed.
	FileCount int
}

// HasExtension reports whether ext (lowercase, no leading dot) was observed
// in the folder.
func (p *DestinationProfile) HasExtension(ext string) bool {
	_, ok := p.Extensions[ext]
	return ok
}
