package services

import (
	"regexp"

	"github.com/custodia-labs/docsort-cli/internal/core/domain"
)

// namingFormat pairs a date format with the regex that locates it inside a
// filename stem. Formats are tried in order per filename; first match wins,
// so the more specific day-level forms come before their month-level
// prefixes (YYYY-MM-DD before YYYY-MM).
type namingFormat struct {
	format domain.DateFormat
	re     *regexp.Regexp
}

var namingFormats = []namingFormat{
	{domain.FormatYearMonthDay, regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)},
	{domain.FormatMonthDayYear, regexp.MustCompile(`\d{2}-\d{2}-\d{4}`)},
	{domain.FormatYearMonthDayUnder, regexp.MustCompile(`\d{4}_\d{2}_\d{2}`)},
	{domain.FormatYearMonth, regexp.MustCompile(`\d{4}-\d{2}`)},
	{domain.FormatMonthYear, regexp.MustCompile(`\d{2}-\d{4}`)},
	{domain.FormatYearMonthDayCompact, regexp.MustCompile(`\d{8}`)},
}

// patternTally counts naming patterns in insertion order, so ties resolve
// to the first-encountered pattern deterministically.
type patternTally struct {
	keys     []string
	counts   map[string]int
	patterns map[string]domain.NamingPattern
}

func newPatternTally() *patternTally {
	return &patternTally{
		counts:   make(map[string]int),
		patterns: make(map[string]domain.NamingPattern),
	}
}

func (t *patternTally) add(p domain.NamingPattern) {
	key := p.Prefix + "\x00" + string(p.DateFormat) + "\x00" + p.Suffix
	if _, seen := t.counts[key]; !seen {
		t.keys = append(t.keys, key)
		t.patterns[key] = p
	}
	t.counts[key]++
}

// best returns the highest-count pattern, first-seen winning ties.
func (t *patternTally) best() (domain.NamingPattern, bool) {
	bestKey := ""
	bestCount := 0
	for _, key := range t.keys {
		if t.counts[key] > bestCount {
			bestKey = key
			bestCount = t.counts[key]
		}
	}
	if bestCount == 0 {
		return domain.NamingPattern{}, false
	}
	return t.patterns[bestKey], true
}

// splitOnDate locates the first date-like substring in a filename stem and
// returns the resulting pattern. Returns false when no supported format
// appears in the stem.
func splitOnDate(stem string) (domain.NamingPattern, bool) {
	for _, nf := range namingFormats {
		loc := nf.re.FindStringIndex(stem)
		if loc == nil {
			continue
		}
		return domain.NamingPattern{
			Prefix:     stem[:loc[0]],
			DateFormat: nf.format,
			Suffix:     stem[loc[1]:],
		}, true
	}
	return domain.NamingPattern{}, false
}

// InferPattern mines existing filename stems (extensions already stripped)
// for the dominant prefix + date + suffix template. This is frequency-based
// structural inference: the most common convention in a folder is assumed a
// reliable template for new arrivals. Folders with no date-like filenames
// fall back to "<folderName>_YYYY-MM".
func InferPattern(folderName string, stems []string) domain.NamingPattern {
	tally := newPatternTally()
	for _, stem := range stems {
		if p, ok := splitOnDate(stem); ok {
			tally.add(p)
		}
	}

	if best, ok := tally.best(); ok {
		return best
	}
	return domain.DefaultPattern(folderName)
}
