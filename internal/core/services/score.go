package services

import "github.com/custodia-labs/docsort-cli/internal/core/domain"

// Score computes the match confidence between one source document and one
// destination profile:
//
//	jaccard(source tokens, profile tokens)
//	+ 0.2 when the source extension was observed in the folder
//	+ 0.1 when source tokens overlap the folder's own name tokens
//
// The terms are summed, not normalised; the result is a relative ranking
// signal in roughly [0, 1.3], not a probability. Scores are monotonically
// non-decreasing in shared-token count with other factors held fixed.
func Score(doc domain.SourceDocument, profile *domain.DestinationProfile) float64 {
	score := doc.Tokens.Jaccard(profile.Tokens)

	if profile.HasExtension(doc.Extension) {
		score += domain.ExtensionBonus
	}

	if doc.Tokens.Overlaps(domain.TokenizeFilename(profile.Name)) {
		score += domain.AnchorBonus
	}

	return score
}
