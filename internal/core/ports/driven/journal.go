package driven

import (
	"context"

	"github.com/custodia-labs/docsort-cli/internal/core/domain"
)

// MoveJournal persists an audit trail of applied moves.
type MoveJournal interface {
	// Record stores one applied move.
	Record(ctx context.Context, rec domain.MoveRecord) error

	// List returns the most recent records, newest first.
	// limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]domain.MoveRecord, error)

	// Close releases resources.
	Close() error
}
