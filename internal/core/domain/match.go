package domain

import "time"

// MatchCandidate is one filing proposal: a source document, the best-scoring
// destination (absent when no profile cleared the threshold), the score that
// destination achieved, and the proposed filename (present only when a
// destination was selected).
type MatchCandidate struct {
	Source SourceDocument

	// Destination is nil when no confident match was found. The candidate
	// still carries the best score seen, for display and sorting.
	Destination *DestinationProfile

	// Score is additive: Jaccard similarity plus extension and anchor
	// bonuses. It is a relative ranking signal in roughly [0, 1.3], not a
	// probability.
	Score float64

	// ProposedName is the collision-resolved filename in the destination
	// folder. Empty when Destination is nil.
	ProposedName string
}

// Matched reports whether a destination was selected for this candidate.
func (c MatchCandidate) Matched() bool {
	return c.Destination != nil
}

// MatchPlan is the immutable result of one scan: every source document as a
// candidate, sorted by descending score. It is a snapshot of filesystem
// state at scan time and is discarded after the proposals are consumed.
type MatchPlan struct {
	// ID identifies the scan, for journalling and diagnostics.
	ID string

	// Threshold is the minimum score a destination had to clear.
	Threshold float64

	// Candidates holds one entry per source document, sorted by
	// descending score.
	Candidates []MatchCandidate

	// StartedAt is when the scan began.
	StartedAt time.Time
}

// MatchedCount returns the number of candidates with a selected destination.
func (p *MatchPlan) MatchedCount() int {
	n := 0
	for _, c := range p.Candidates {
		if c.Matched() {
			n++
		}
	}
	return n
}

// MoveResult reports the outcome of applying one proposal. A failed move
// never aborts the rest of the apply phase; failures are collected here.
type MoveResult struct {
	// SourcePath is the document that was moved (or attempted).
	SourcePath string

	// TargetPath is the full destination path, including the final
	// (possibly re-resolved) filename.
	TargetPath string

	// Err is non-nil when the move failed.
	Err error
}

// MoveRecord is one journalled, successfully applied move.
type MoveRecord struct {
	ID         string
	ScanID     string
	SourcePath string
	TargetPath string
	Score      float64
	AppliedAt  time.Time
}
