package services

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/docsort-cli/internal/core/domain"
	"github.com/custodia-labs/docsort-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsort-cli/internal/logger"
)

// Profiler builds destination profiles and source documents from the
// filesystem. It reads only; nothing is mutated during a scan.
type Profiler struct {
	extractors driven.ExtractorRegistry
}

// NewProfiler creates a profiler backed by the given extractor registry.
func NewProfiler(extractors driven.ExtractorRegistry) *Profiler {
	return &Profiler{extractors: extractors}
}

// BuildProfiles walks the destination root and returns one profile per leaf
// folder containing at least one tracked document, sorted by folder path.
// Folders with zero tracked documents produce no profile and are therefore
// never match targets. Hidden entries are skipped.
func (p *Profiler) BuildProfiles(ctx context.Context, settings domain.Settings) ([]domain.DestinationProfile, error) {
	byFolder := make(map[string]*domain.DestinationProfile)

	err := filepath.WalkDir(settings.DestinationRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			if isHidden(d.Name()) && path != settings.DestinationRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if isHidden(d.Name()) {
			return nil
		}

		ext := normaliseExt(path)
		if !settings.TracksExtension(ext) {
			return nil
		}

		folder := filepath.Dir(path)
		profile, ok := byFolder[folder]
		if !ok {
			name := filepath.Base(folder)
			profile = &domain.DestinationProfile{
				Path:       folder,
				Name:       name,
				Tokens:     domain.TokenizeFilename(name),
				Extensions: make(map[string]struct{}),
			}
			byFolder[folder] = profile
		}

		profile.Tokens = profile.Tokens.Union(p.documentTokens(ctx, path, ext, settings.MaxPages))
		profile.Extensions[ext] = struct{}{}
		profile.FileCount++
		return nil
	})
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.DestinationProfile, 0, len(byFolder))
	for _, profile := range byFolder {
		profiles = append(profiles, *profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Path < profiles[j].Path
	})

	for i := range profiles {
		logger.Debug("profile %s: %d files, %d tokens, extensions %v",
			profiles[i].Path, profiles[i].FileCount, profiles[i].Tokens.Len(),
			extensionList(profiles[i].Extensions))
	}

	return profiles, nil
}

// LoadSources enumerates the unsorted documents sitting in the source
// directory (non-recursive) and builds one SourceDocument per tracked file.
func (p *Profiler) LoadSources(ctx context.Context, settings domain.Settings) ([]domain.SourceDocument, error) {
	entries, err := os.ReadDir(settings.SourceDir)
	if err != nil {
		return nil, err
	}

	docs := make([]domain.SourceDocument, 0, len(entries))
	for _, entry := range entries {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if entry.IsDir() || isHidden(entry.Name()) {
			continue
		}

		path := filepath.Join(settings.SourceDir, entry.Name())
		ext := normaliseExt(path)
		if !settings.TracksExtension(ext) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			logger.Warn("stat %s: %v", path, err)
			continue
		}

		text := p.extractText(ctx, path, ext, settings.MaxPages)
		tokens := domain.TokenizeContent(text)
		if tokens.Len() == 0 {
			tokens = domain.TokenizeFilename(entry.Name())
		}

		docs = append(docs, domain.SourceDocument{
			Path:      path,
			Tokens:    tokens,
			Extension: ext,
			Text:      text,
			// Birth time is not portably available; modification time
			// stands in for both fallback steps.
			CreatedAt:  info.ModTime(),
			ModifiedAt: info.ModTime(),
		})
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Path < docs[j].Path
	})
	return docs, nil
}

// documentTokens returns the vocabulary of one file: content tokens when
// text extraction yields anything, filename tokens otherwise.
func (p *Profiler) documentTokens(ctx context.Context, path, ext string, maxPages int) domain.TokenSet {
	text := p.extractText(ctx, path, ext, maxPages)
	tokens := domain.TokenizeContent(text)
	if tokens.Len() == 0 {
		return domain.TokenizeFilename(filepath.Base(path))
	}
	return tokens
}

// extractText pulls bounded leading-page text from a file. Extraction
// failure is not an error: corrupt, unsupported or scanned-image documents
// silently degrade to the filename fallback in the caller.
func (p *Profiler) extractText(ctx context.Context, path, ext string, maxPages int) string {
	if p.extractors == nil {
		return ""
	}
	extractor, ok := p.extractors.ForExtension(ext)
	if !ok {
		return ""
	}
	if maxPages <= 0 {
		maxPages = domain.DefaultMaxPages
	}

	text, err := extractor.Extract(ctx, path, maxPages)
	if err != nil {
		logger.Debug("extract %s: %v (falling back to filename tokens)", path, err)
		return ""
	}
	return text
}

// isHidden reports whether a file or folder name is a hidden entry.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// normaliseExt returns the lowercased extension of path without the dot.
func normaliseExt(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func extensionList(exts map[string]struct{}) []string {
	out := make([]string, 0, len(exts))
	for ext := range exts {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
