package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/docsort-cli/internal/core/domain"
)

// ExistsFunc reports whether a filename is already taken in the destination
// folder at the moment of generation.
type ExistsFunc func(name string) bool

// GenerateFilename builds a filename from an inferred pattern, a document
// date and an extension: prefix + formatted date + suffix + "." + ext.
// Collisions are resolved deterministically by appending "_NN" to the date
// string (counter from 1, zero-padded to two digits) until a free name is
// found. The counter is unbounded but in practice bounded by folder size.
// The function only decides a name; it never touches the filesystem.
func GenerateFilename(pattern domain.NamingPattern, date time.Time, ext string, exists ExistsFunc) string {
	formatted := pattern.DateFormat.Format(date)

	name := pattern.Prefix + formatted + pattern.Suffix + "." + ext
	if exists == nil || !exists(name) {
		return name
	}

	for counter := 1; ; counter++ {
		name = fmt.Sprintf("%s%s_%02d%s.%s", pattern.Prefix, formatted, counter, pattern.Suffix, ext)
		if !exists(name) {
			return name
		}
	}
}
