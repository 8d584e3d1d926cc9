package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docsort-cli/internal/core/domain"
	"github.com/custodia-labs/docsort-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsort-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsort-cli/internal/logger"
)

// Ensure ApplyRunner implements the interface.
var _ driving.ApplyService = (*ApplyRunner)(nil)

// ApplyRunner executes accepted proposals. Moves are grouped and executed
// per destination folder in sequence, so filename-uniqueness checks always
// observe the effects of earlier moves into the same folder. Every move is
// attempted independently; failures are collected, never fatal.
type ApplyRunner struct {
	journal driven.MoveJournal
}

// NewApplyRunner creates an apply runner. journal may be nil; moves then
// leave no audit trail.
func NewApplyRunner(journal driven.MoveJournal) *ApplyRunner {
	return &ApplyRunner{journal: journal}
}

// Apply moves every matched candidate and returns one result per attempted
// move. Unmatched candidates are skipped. The proposed name is re-checked
// against the destination folder's contents at move time and re-resolved if
// something claimed it since the scan.
func (a *ApplyRunner) Apply(ctx context.Context, scanID string, candidates []domain.MatchCandidate) []domain.MoveResult {
	selected := make([]domain.MatchCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Matched() {
			selected = append(selected, c)
		}
	}

	// Serialize per destination folder: sorting by folder groups all moves
	// into one folder together, and execution is strictly sequential.
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Destination.Path < selected[j].Destination.Path
	})

	logger.Section("apply")
	results := make([]domain.MoveResult, 0, len(selected))
	for _, c := range selected {
		if ctx.Err() != nil {
			results = append(results, domain.MoveResult{
				SourcePath: c.Source.Path,
				Err:        ctx.Err(),
			})
			continue
		}

		result := a.applyOne(ctx, scanID, c)
		if result.Err != nil {
			logger.Warn("move %s: %v", c.Source.Path, result.Err)
		} else {
			logger.Info("moved %s -> %s", c.Source.Path, result.TargetPath)
		}
		results = append(results, result)
	}
	return results
}

func (a *ApplyRunner) applyOne(ctx context.Context, scanID string, c domain.MatchCandidate) domain.MoveResult {
	target := filepath.Join(c.Destination.Path, c.ProposedName)

	// The folder may have changed since the scan; never overwrite.
	if _, err := os.Stat(target); err == nil {
		target = filepath.Join(c.Destination.Path, reresolveName(c))
	}

	result := domain.MoveResult{SourcePath: c.Source.Path, TargetPath: target}
	if err := moveFile(c.Source.Path, target); err != nil {
		result.Err = fmt.Errorf("moving %s: %w", c.Source.Path, err)
		return result
	}

	if a.journal != nil {
		rec := domain.MoveRecord{
			ID:         uuid.New().String(),
			ScanID:     scanID,
			SourcePath: c.Source.Path,
			TargetPath: target,
			Score:      c.Score,
			AppliedAt:  time.Now(),
		}
		if err := a.journal.Record(ctx, rec); err != nil {
			// The move itself succeeded; a journal failure is reported
			// but does not fail the result.
			logger.Warn("journal %s: %v", target, err)
		}
	}
	return result
}

// reresolveName re-runs collision resolution against the folder's current
// contents, keeping the proposal's pattern-derived shape by splitting the
// stale name on its date substring.
func reresolveName(c domain.MatchCandidate) string {
	stem := filepath.Base(c.ProposedName)
	stem = stem[:len(stem)-len(filepath.Ext(stem))]

	pattern, ok := splitOnDate(stem)
	if !ok {
		pattern = domain.DefaultPattern(c.Destination.Name)
	}

	date := ResolveDate(
		ContentDate(c.Source.Text),
		TimestampDate(c.Source.CreatedAt),
		TimestampDate(c.Source.ModifiedAt),
	)

	return GenerateFilename(pattern, date, c.Source.Extension, func(name string) bool {
		_, err := os.Stat(filepath.Join(c.Destination.Path, name))
		return err == nil
	})
}

// moveFile renames src to dst, falling back to copy-and-remove when the
// rename crosses filesystems.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return err
	}

	if copyErr := copyFile(src, dst); copyErr != nil {
		return copyErr
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
