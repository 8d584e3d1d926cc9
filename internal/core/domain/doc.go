// Package domain defines the core business entities for docsort.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TokenSet: Normalised vocabulary of a document or folder
//   - SourceDocument: An unsorted document awaiting filing
//   - DestinationProfile: Aggregated vocabulary of a candidate target folder
//   - NamingPattern: Inferred filename template for a folder
//   - MatchCandidate: A scored filing proposal for one source document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
