package services

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docsort-cli/internal/core/domain"
	"github.com/custodia-labs/docsort-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsort-cli/internal/logger"
)

// Ensure Planner implements the interface.
var _ driving.PlannerService = (*Planner)(nil)

// Planner orchestrates one scan: profile the destination tree, tokenize
// every source document, score each pairing, and emit the sorted proposal
// list. A plan is a read-only snapshot; cancelling mid-scan has no side
// effects.
type Planner struct {
	profiler *Profiler
}

// NewPlanner creates a planner backed by the given profiler.
func NewPlanner(profiler *Profiler) *Planner {
	return &Planner{profiler: profiler}
}

// Scan builds the full match plan for the given settings. Every source
// document appears in the result, matched or not, sorted by descending
// score.
func (p *Planner) Scan(ctx context.Context, settings domain.Settings) (*domain.MatchPlan, error) {
	if len(settings.Extensions) == 0 {
		settings.Extensions = domain.DefaultExtensions
	}
	if settings.MaxPages <= 0 {
		settings.MaxPages = domain.DefaultMaxPages
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	logger.Section("scan")

	profiles, err := p.profiler.BuildProfiles(ctx, settings)
	if err != nil {
		return nil, err
	}
	logger.Info("destination root %s: %d profiles", settings.DestinationRoot, len(profiles))

	sources, err := p.profiler.LoadSources(ctx, settings)
	if err != nil {
		return nil, err
	}
	logger.Info("source dir %s: %d documents", settings.SourceDir, len(sources))

	// Names claimed by earlier proposals this scan, per destination folder,
	// so two documents proposed into the same folder never share a name.
	claimed := make(map[string]map[string]struct{})

	candidates := make([]domain.MatchCandidate, 0, len(sources))
	for _, doc := range sources {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		best, bestScore := bestMatch(doc, profiles)
		candidate := domain.MatchCandidate{Source: doc, Score: bestScore}

		if best != nil && bestScore >= settings.Threshold {
			candidate.Destination = best
			candidate.ProposedName = p.proposeName(doc, best, settings, claimed)
			logger.Debug("match %s -> %s (%.3f) as %s",
				doc.Path, best.Path, bestScore, candidate.ProposedName)
		} else {
			logger.Debug("no match for %s (best %.3f, threshold %.2f)",
				doc.Path, bestScore, settings.Threshold)
		}

		candidates = append(candidates, candidate)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return &domain.MatchPlan{
		ID:         uuid.New().String(),
		Threshold:  settings.Threshold,
		Candidates: candidates,
		StartedAt:  started,
	}, nil
}

// bestMatch scores doc against every profile and returns the maximum.
// Profiles arrive sorted by folder path and the comparison is strictly
// greater, so ties resolve to the lexicographically smallest path.
func bestMatch(doc domain.SourceDocument, profiles []domain.DestinationProfile) (*domain.DestinationProfile, float64) {
	var best *domain.DestinationProfile
	bestScore := 0.0

	for i := range profiles {
		score := Score(doc, &profiles[i])
		if best == nil || score > bestScore {
			best = &profiles[i]
			bestScore = score
		}
	}
	return best, bestScore
}

// proposeName infers the destination folder's naming pattern, resolves the
// document's date and generates a collision-free filename. The existence
// check covers both the folder's current contents and names already claimed
// by earlier proposals in this scan.
func (p *Planner) proposeName(
	doc domain.SourceDocument,
	dest *domain.DestinationProfile,
	settings domain.Settings,
	claimed map[string]map[string]struct{},
) string {
	pattern := InferPattern(dest.Name, folderStems(dest.Path, settings))

	date := ResolveDate(
		ContentDate(doc.Text),
		TimestampDate(doc.CreatedAt),
		TimestampDate(doc.ModifiedAt),
	)

	taken := claimed[dest.Path]
	exists := func(name string) bool {
		if _, ok := taken[name]; ok {
			return true
		}
		_, err := os.Stat(filepath.Join(dest.Path, name))
		return err == nil
	}

	name := GenerateFilename(pattern, date, doc.Extension, exists)

	if taken == nil {
		taken = make(map[string]struct{})
		claimed[dest.Path] = taken
	}
	taken[name] = struct{}{}
	return name
}

// folderStems lists the folder's tracked filenames with extensions
// stripped, in directory order, for pattern inference. Read failures yield
// no stems; inference then falls back to the default pattern.
func folderStems(folder string, settings domain.Settings) []string {
	entries, err := os.ReadDir(folder)
	if err != nil {
		logger.Warn("read %s: %v", folder, err)
		return nil
	}

	stems := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || isHidden(entry.Name()) {
			continue
		}
		ext := normaliseExt(entry.Name())
		if !settings.TracksExtension(ext) {
			continue
		}
		stems = append(stems, strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
	}
	return stems
}
