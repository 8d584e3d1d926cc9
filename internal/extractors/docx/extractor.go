// Package docx extracts text from DOCX documents by reading the
// word/document.xml entry of the zip container.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/custodia-labs/docsort-cli/internal/core/domain"
	"github.com/custodia-labs/docsort-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor handles DOCX documents. DOCX has no fixed page boundaries
// before layout, so the page bound caps paragraphs instead: roughly
// paragraphsPerPage paragraphs stand in for one page.
type Extractor struct{}

// paragraphsPerPage approximates a printed page for the page bound.
const paragraphsPerPage = 25

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{"docx"}
}

// Extract returns the leading text of the document.
func (e *Extractor) Extract(_ context.Context, path string, maxPages int) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", domain.ErrInvalidInput
	}
	defer reader.Close()

	content, err := documentXMLBytes(&reader.Reader)
	if err != nil {
		return "", err
	}
	if content == nil {
		return "", nil
	}

	maxParagraphs := maxPages * paragraphsPerPage
	if maxPages <= 0 {
		maxParagraphs = paragraphsPerPage
	}
	return parseDocumentXML(content, maxParagraphs), nil
}

// documentXMLBytes reads word/document.xml out of the container.
func documentXMLBytes(reader *zip.Reader) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, domain.ErrInvalidInput
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		return content, nil
	}
	return nil, nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts text content from the document XML, bounded to
// the first maxParagraphs paragraphs.
func parseDocumentXML(content []byte, maxParagraphs int) string {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return ""
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i >= maxParagraphs {
			break
		}
		if i > 0 {
			result.WriteString("\n")
		}
		for _, r := range para.Runs {
			for _, text := range r.Text {
				result.WriteString(text.Content)
			}
		}
	}

	return strings.TrimSpace(result.String())
}
