package driving

import (
	"context"

	"github.com/custodia-labs/docsort-cli/internal/core/domain"
)

// PlannerService runs the matching engine: scan source and destination
// directories, score every pairing and produce a sorted proposal list.
// A scan is read-only over the filesystem; abandoning one via context
// cancellation is always side-effect free.
type PlannerService interface {
	// Scan builds the full match plan for the given settings.
	// The returned plan is an immutable snapshot.
	Scan(ctx context.Context, settings domain.Settings) (*domain.MatchPlan, error)
}

// ApplyService executes selected proposals by moving files into their
// destinations. Each move is attempted independently; one failure never
// aborts the rest.
type ApplyService interface {
	// Apply moves every matched candidate and returns one result per
	// attempted move, in execution order.
	Apply(ctx context.Context, scanID string, candidates []domain.MatchCandidate) []domain.MoveResult
}
