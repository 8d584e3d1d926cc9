// Package plaintext extracts text from plain text documents.
package plaintext

import (
	"context"
	"os"

	"github.com/custodia-labs/docsort-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor handles plain text documents. Text files have no page concept,
// so the page bound is ignored and the whole file is returned.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{"txt", "md", "csv", "log"}
}

// Extract returns the file's content as text.
func (e *Extractor) Extract(_ context.Context, path string, _ int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
