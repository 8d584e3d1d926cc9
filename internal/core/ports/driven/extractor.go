package driven

import "context"

// TextExtractor pulls plain text out of one document format.
// Extraction is bounded: at most maxPages leading pages (formats without a
// page concept return what they have). A document the extractor cannot read
// yields an error; callers treat that as "no text" and fall back to
// filename tokens, never as a scan failure.
type TextExtractor interface {
	// Extensions returns the lowercase file extensions (without dots)
	// this extractor handles.
	Extensions() []string

	// Extract returns the leading-page text of the file at path.
	Extract(ctx context.Context, path string, maxPages int) (string, error)
}

// ExtractorRegistry selects the extractor responsible for a file extension.
type ExtractorRegistry interface {
	// ForExtension returns the extractor for ext (lowercase, no dot),
	// or false when no registered extractor handles it.
	ForExtension(ext string) (TextExtractor, bool)
}
