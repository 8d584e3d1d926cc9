// Package extractors provides implementations of the TextExtractor
// interface for various document formats. Each extractor knows how to pull
// plain text out of a specific file type, bounded to the leading pages
// where the format has pages.
//
// Extractors are registered with the Registry at startup.
package extractors
