package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateFormat_Format(t *testing.T) {
	date := time.Date(2023, time.April, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		format DateFormat
		want   string
	}{
		{FormatYearMonthDay, "2023-04-05"},
		{FormatMonthDayYear, "04-05-2023"},
		{FormatYearMonthDayUnder, "2023_04_05"},
		{FormatYearMonth, "2023-04"},
		{FormatMonthYear, "04-2023"},
		{FormatYearMonthDayCompact, "20230405"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.Format(date))
		})
	}
}

func TestDateFormat_Layout_Unknown(t *testing.T) {
	assert.Equal(t, "2006-01", DateFormat("bogus").Layout())
}

func TestDefaultPattern(t *testing.T) {
	pattern := DefaultPattern("Chase")

	assert.Equal(t, "Chase_", pattern.Prefix)
	assert.Equal(t, FormatYearMonth, pattern.DateFormat)
	assert.Equal(t, "", pattern.Suffix)
}
