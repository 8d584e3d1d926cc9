// Package pdf extracts text from PDF documents by shelling out to the
// pdftotext utility (poppler-utils). PDFs with no text layer (scanned
// images) yield empty output; callers treat that as "no text" and fall
// back to filename tokens.
package pdf

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/custodia-labs/docsort-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// CommandRunner executes an external command and returns its stdout.
// Abstracted for testing without a pdftotext installation.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands via os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Extractor handles PDF documents via pdftotext.
type Extractor struct {
	runner CommandRunner
}

// New creates a PDF extractor using the system pdftotext binary.
func New() *Extractor {
	return &Extractor{runner: execRunner{}}
}

// NewWithRunner creates a PDF extractor with a custom command runner.
func NewWithRunner(runner CommandRunner) *Extractor {
	return &Extractor{runner: runner}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{"pdf"}
}

// Extract returns the text of the first maxPages pages.
// The "-" argument sends output to stdout.
func (e *Extractor) Extract(ctx context.Context, path string, maxPages int) (string, error) {
	if maxPages <= 0 {
		maxPages = 1
	}

	out, err := e.runner.Run(ctx, "pdftotext",
		"-f", "1",
		"-l", strconv.Itoa(maxPages),
		path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext %s: %w", path, err)
	}
	return string(out), nil
}
