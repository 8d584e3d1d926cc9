package extractors

import (
	"github.com/custodia-labs/docsort-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsort-cli/internal/extractors/docx"
	"github.com/custodia-labs/docsort-cli/internal/extractors/pdf"
	"github.com/custodia-labs/docsort-cli/internal/extractors/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps file extensions to their extractors.
type Registry struct {
	byExtension map[string]driven.TextExtractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExtension: make(map[string]driven.TextExtractor)}
}

// DefaultRegistry creates a registry with all built-in extractors.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(pdf.New())
	r.Register(docx.New())
	r.Register(plaintext.New())
	return r
}

// Register adds an extractor for every extension it claims.
// Later registrations win on conflicts.
func (r *Registry) Register(e driven.TextExtractor) {
	for _, ext := range e.Extensions() {
		r.byExtension[ext] = e
	}
}

// ForExtension returns the extractor for ext (lowercase, no dot).
func (r *Registry) ForExtension(ext string) (driven.TextExtractor, bool) {
	e, ok := r.byExtension[ext]
	return e, ok
}
