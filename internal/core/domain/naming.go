package domain

import "time"

// DateFormat identifies one of the supported date layouts embedded in
// filenames. The values are the human-readable specifications used in
// configuration and diagnostics, not Go reference layouts.
type DateFormat string

// Supported date formats.
const (
	FormatYearMonthDay        DateFormat = "YYYY-MM-DD"
	FormatMonthDayYear        DateFormat = "MM-DD-YYYY"
	FormatYearMonthDayUnder   DateFormat = "YYYY_MM_DD"
	FormatYearMonth           DateFormat = "YYYY-MM"
	FormatMonthYear           DateFormat = "MM-YYYY"
	FormatYearMonthDayCompact DateFormat = "YYYYMMDD"
)

// Layout returns the Go reference-time layout for the format.
// Unknown formats fall back to the year-month layout.
func (f DateFormat) Layout() string {
	switch f {
	case FormatYearMonthDay:
		return "2006-01-02"
	case FormatMonthDayYear:
		return "01-02-2006"
	case FormatYearMonthDayUnder:
		return "2006_01_02"
	case FormatYearMonth:
		return "2006-01"
	case FormatMonthYear:
		return "01-2006"
	case FormatYearMonthDayCompact:
		return "20060102"
	default:
		return "2006-01"
	}
}

// Format renders t using the format's layout.
func (f DateFormat) Format(t time.Time) string {
	return t.Format(f.Layout())
}

// String returns the specification string.
func (f DateFormat) String() string {
	return string(f)
}

// NamingPattern describes how filenames in a folder are constructed around
// an embedded date: prefix + formatted date + suffix. Prefix and suffix may
// be empty; DateFormat is always a valid format. Patterns are inferred per
// folder and never persisted, so they always reflect current folder contents.
type NamingPattern struct {
	Prefix     string
	DateFormat DateFormat
	Suffix     string
}

// DefaultPattern is the fallback used when a folder contains no date-like
// filenames to infer from: "<folderName>_YYYY-MM".
func DefaultPattern(folderName string) NamingPattern {
	return NamingPattern{
		Prefix:     folderName + "_",
		DateFormat: FormatYearMonth,
	}
}
