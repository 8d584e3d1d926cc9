package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsort-cli/internal/core/domain"
	"github.com/custodia-labs/docsort-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockExtractor implements driven.TextExtractor for testing. Text is keyed
// by base filename; unknown files fail extraction, exercising the
// filename-token fallback.
type mockExtractor struct {
	texts map[string]string
}

func (m *mockExtractor) Extensions() []string {
	return []string{"pdf", "txt"}
}

func (m *mockExtractor) Extract(_ context.Context, path string, _ int) (string, error) {
	if text, ok := m.texts[filepath.Base(path)]; ok {
		return text, nil
	}
	return "", errors.New("unreadable")
}

// mockRegistry implements driven.ExtractorRegistry around one extractor.
type mockRegistry struct {
	extractor driven.TextExtractor
}

func (m *mockRegistry) ForExtension(_ string) (driven.TextExtractor, bool) {
	if m.extractor == nil {
		return nil, false
	}
	return m.extractor, true
}

// --- Fixtures ---

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func testSettings(src, dest string) domain.Settings {
	return domain.Settings{
		SourceDir:       src,
		DestinationRoot: dest,
		Threshold:       domain.DefaultThreshold,
		Extensions:      []string{"pdf", "txt"},
		MaxPages:        domain.DefaultMaxPages,
	}
}

func TestProfiler_BuildProfiles(t *testing.T) {
	dest := t.TempDir()
	writeFile(t, filepath.Join(dest, "Chase", "Chase_2023-01.pdf"))
	writeFile(t, filepath.Join(dest, "Chase", "Chase_2023-02.pdf"))
	writeFile(t, filepath.Join(dest, "Fidelity", "Fidelity_2022-12.txt"))
	writeFile(t, filepath.Join(dest, "Photos", "holiday.jpg"))
	writeFile(t, filepath.Join(dest, ".stash", "secret.pdf"))
	writeFile(t, filepath.Join(dest, "Chase", ".hidden.pdf"))

	profiler := NewProfiler(&mockRegistry{extractor: &mockExtractor{}})
	profiles, err := profiler.BuildProfiles(context.Background(), testSettings(t.TempDir(), dest))
	require.NoError(t, err)

	t.Run("one profile per folder with tracked documents", func(t *testing.T) {
		require.Len(t, profiles, 2)
		assert.Equal(t, "Chase", profiles[0].Name)
		assert.Equal(t, "Fidelity", profiles[1].Name)
	})

	t.Run("profiles are sorted by path", func(t *testing.T) {
		assert.Less(t, profiles[0].Path, profiles[1].Path)
	})

	t.Run("filename tokens back fill when extraction fails", func(t *testing.T) {
		chase := profiles[0]
		assert.True(t, chase.Tokens.Has("chase"))
		assert.True(t, chase.Tokens.Has("2023"))
		assert.True(t, chase.Tokens.Has("01"))
	})

	t.Run("folder name tokens are always included", func(t *testing.T) {
		assert.True(t, profiles[1].Tokens.Has("fidelity"))
	})

	t.Run("extensions are collected lowercased", func(t *testing.T) {
		assert.True(t, profiles[0].HasExtension("pdf"))
		assert.False(t, profiles[0].HasExtension("txt"))
		assert.True(t, profiles[1].HasExtension("txt"))
	})

	t.Run("hidden entries are skipped", func(t *testing.T) {
		assert.Equal(t, 2, profiles[0].FileCount)
		for _, p := range profiles {
			assert.NotContains(t, p.Path, ".stash")
		}
	})

	t.Run("untracked folders produce no profile", func(t *testing.T) {
		for _, p := range profiles {
			assert.NotEqual(t, "Photos", p.Name)
		}
	})
}

func TestProfiler_BuildProfiles_ContentTokens(t *testing.T) {
	dest := t.TempDir()
	writeFile(t, filepath.Join(dest, "Chase", "a.pdf"))

	extractor := &mockExtractor{texts: map[string]string{
		"a.pdf": "Chase Bank statement period ending balance",
	}}
	profiler := NewProfiler(&mockRegistry{extractor: extractor})

	profiles, err := profiler.BuildProfiles(context.Background(), testSettings(t.TempDir(), dest))
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	assert.True(t, profiles[0].Tokens.Has("statement"))
	assert.True(t, profiles[0].Tokens.Has("balance"))
	// Folder name still contributes.
	assert.True(t, profiles[0].Tokens.Has("chase"))
}

func TestProfiler_BuildProfiles_EmptyRoot(t *testing.T) {
	profiler := NewProfiler(&mockRegistry{})

	profiles, err := profiler.BuildProfiles(context.Background(), testSettings(t.TempDir(), t.TempDir()))

	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestProfiler_BuildProfiles_Cancelled(t *testing.T) {
	dest := t.TempDir()
	writeFile(t, filepath.Join(dest, "Chase", "a.pdf"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	profiler := NewProfiler(&mockRegistry{})
	_, err := profiler.BuildProfiles(ctx, testSettings(t.TempDir(), dest))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestProfiler_LoadSources(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "statement.pdf"))
	writeFile(t, filepath.Join(src, "scan.txt"))
	writeFile(t, filepath.Join(src, "photo.jpg"))
	writeFile(t, filepath.Join(src, ".DS_Store"))
	require.NoError(t, os.MkdirAll(filepath.Join(src, "subdir"), 0o755))

	extractor := &mockExtractor{texts: map[string]string{
		"statement.pdf": "Chase statement for March 2023",
	}}
	profiler := NewProfiler(&mockRegistry{extractor: extractor})

	docs, err := profiler.LoadSources(context.Background(), testSettings(src, t.TempDir()))
	require.NoError(t, err)

	t.Run("only tracked top-level files load", func(t *testing.T) {
		require.Len(t, docs, 2)
		assert.Equal(t, "scan.txt", filepath.Base(docs[0].Path))
		assert.Equal(t, "statement.pdf", filepath.Base(docs[1].Path))
	})

	t.Run("content tokens when extraction succeeds", func(t *testing.T) {
		stmt := docs[1]
		assert.True(t, stmt.Tokens.Has("chase"))
		assert.True(t, stmt.Tokens.Has("statement"))
		assert.Equal(t, "Chase statement for March 2023", stmt.Text)
	})

	t.Run("filename tokens when extraction fails", func(t *testing.T) {
		scan := docs[0]
		assert.True(t, scan.Tokens.Has("scan"))
		assert.True(t, scan.Tokens.Has("txt"))
		assert.Empty(t, scan.Text)
	})

	t.Run("timestamps are populated", func(t *testing.T) {
		for _, doc := range docs {
			assert.False(t, doc.ModifiedAt.IsZero())
		}
	})

	t.Run("extension is lowercased without dot", func(t *testing.T) {
		assert.Equal(t, "txt", docs[0].Extension)
		assert.Equal(t, "pdf", docs[1].Extension)
	})
}
