package domain

import (
	"sort"
	"strings"
	"unicode"
)

// minTokenLength is the shortest token worth keeping. Single characters
// (initials, list markers, page numbers) carry no matching signal.
const minTokenLength = 2

// TokenSet is the normalised vocabulary of a document or folder: lowercase
// word tokens of length >= 2. Order and duplicates are irrelevant by
// construction. A TokenSet is never mutated after it is built; set
// operations return new sets.
type TokenSet map[string]struct{}

// NewTokenSet builds a TokenSet from pre-normalised tokens.
// Tokens shorter than the minimum length are dropped.
func NewTokenSet(tokens ...string) TokenSet {
	set := make(TokenSet, len(tokens))
	for _, tok := range tokens {
		if len(tok) >= minTokenLength {
			set[tok] = struct{}{}
		}
	}
	return set
}

// TokenizeFilename normalises a filename (or folder name) into a TokenSet.
// Separator characters common in filenames (".", "_", "-") are treated as
// word boundaries, as is any other non-alphanumeric rune.
func TokenizeFilename(name string) TokenSet {
	lower := strings.ToLower(name)

	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	return NewTokenSet(fields...)
}

// TokenizeContent normalises extracted document text into a TokenSet.
// Unlike filenames, content is split on whitespace only, with leading and
// trailing punctuation trimmed per token: "Chase," becomes "chase" while
// "$1,234.56" keeps its interior punctuation as "1,234.56".
func TokenizeContent(text string) TokenSet {
	fields := strings.Fields(text)

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		tok := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if tok == "" {
			continue
		}
		tokens = append(tokens, strings.ToLower(tok))
	}

	return NewTokenSet(tokens...)
}

// Has reports whether tok is in the set.
func (s TokenSet) Has(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Len returns the number of tokens.
func (s TokenSet) Len() int {
	return len(s)
}

// Union returns a new set containing every token from s and other.
// Neither input is modified.
func (s TokenSet) Union(other TokenSet) TokenSet {
	out := make(TokenSet, len(s)+len(other))
	for tok := range s {
		out[tok] = struct{}{}
	}
	for tok := range other {
		out[tok] = struct{}{}
	}
	return out
}

// IntersectCount returns the number of tokens present in both sets.
func (s TokenSet) IntersectCount(other TokenSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	count := 0
	for tok := range small {
		if _, ok := large[tok]; ok {
			count++
		}
	}
	return count
}

// Overlaps reports whether the two sets share at least one token.
func (s TokenSet) Overlaps(other TokenSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	for tok := range small {
		if _, ok := large[tok]; ok {
			return true
		}
	}
	return false
}

// Jaccard returns the Jaccard similarity between the two sets:
// |intersection| / |union|, or 0 when the union is empty.
// It is symmetric, 1.0 for identical non-empty sets and 0.0 for
// disjoint sets.
func (s TokenSet) Jaccard(other TokenSet) float64 {
	intersection := s.IntersectCount(other)
	union := len(s) + len(other) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Tokens returns the tokens in sorted order, for deterministic display
// and diagnostics.
func (s TokenSet) Tokens() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
