package services

import (
	"regexp"
	"strings"
	"time"
)

// datePattern pairs a compiled regex with the layout used to parse its
// matches. Patterns are evaluated in order by [ExtractDate]; the first
// pattern that matches anywhere in the text wins, with the leftmost match
// taken within that pattern. Order is a priority policy, not exhaustive
// disambiguation.
type datePattern struct {
	name   string
	re     *regexp.Regexp
	layout string
}

// contentDatePatterns recognise dates inside document text. Separators may
// be "-" or "/"; matches are normalised to "-" before parsing.
var contentDatePatterns = []datePattern{
	{
		name:   "year-month-day",
		re:     regexp.MustCompile(`\b(\d{4})[-/](\d{1,2})[-/](\d{1,2})\b`),
		layout: "2006-1-2",
	},
	{
		name:   "month-day-year",
		re:     regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})[-/](\d{4})\b`),
		layout: "1-2-2006",
	},
	{
		name:   "month-year",
		re:     regexp.MustCompile(`\b(\d{1,2})[-/](\d{4})\b`),
		layout: "1-2006",
	},
	{
		name:   "month-name-year",
		re:     regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{4})\b`),
		layout: "January 2006",
	},
}

// ExtractDate finds a calendar date in document text. It returns the date
// of the first pattern (in priority order) matching anywhere in the text,
// and false when no pattern matches or the match does not parse as a real
// date. It never errors; absence is the only failure mode.
func ExtractDate(text string) (time.Time, bool) {
	for _, pattern := range contentDatePatterns {
		for _, match := range pattern.re.FindAllString(text, -1) {
			parsed, err := time.Parse(pattern.layout, canonicalDateText(match))
			if err != nil {
				// Matched shape but not a real date (e.g. 13-45-2023).
				// Try the next occurrence of the same pattern.
				continue
			}
			return parsed, true
		}
	}
	return time.Time{}, false
}

// canonicalDateText normalises a regex match for parsing: separators become
// "-" and month names get canonical casing, since time.Parse is
// case-sensitive about them.
func canonicalDateText(match string) string {
	match = strings.ReplaceAll(match, "/", "-")
	if len(match) > 1 && isLetter(match[0]) {
		match = strings.ToUpper(match[:1]) + strings.ToLower(match[1:])
	}
	return match
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// DateProvider yields a candidate date, or reports it has none.
type DateProvider func() (time.Time, bool)

// ResolveDate evaluates providers in priority order and returns the first
// date one of them yields. When every provider comes up empty it returns
// the current instant; resolution never fails.
func ResolveDate(providers ...DateProvider) time.Time {
	for _, provide := range providers {
		if date, ok := provide(); ok {
			return date
		}
	}
	return time.Now()
}

// ContentDate adapts ExtractDate over fixed text into a DateProvider.
func ContentDate(text string) DateProvider {
	return func() (time.Time, bool) {
		return ExtractDate(text)
	}
}

// TimestampDate turns a filesystem timestamp into a DateProvider that
// yields only when the timestamp is set.
func TimestampDate(t time.Time) DateProvider {
	return func() (time.Time, bool) {
		return t, !t.IsZero()
	}
}
