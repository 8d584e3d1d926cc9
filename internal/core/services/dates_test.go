package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDate(t *testing.T) {
	t.Run("finds ISO-like dates", func(t *testing.T) {
		date, ok := ExtractDate("Period ending 2023-03-15 for account")

		require.True(t, ok)
		assert.Equal(t, time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("finds US-style dates with slashes", func(t *testing.T) {
		date, ok := ExtractDate("Statement Date: 03/15/2023")

		require.True(t, ok)
		assert.Equal(t, time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("finds month-year", func(t *testing.T) {
		date, ok := ExtractDate("Billing period 04/2023")

		require.True(t, ok)
		assert.Equal(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("finds month names case-insensitively", func(t *testing.T) {
		date, ok := ExtractDate("statement for MARCH 2023")

		require.True(t, ok)
		assert.Equal(t, time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("pattern order is a priority policy", func(t *testing.T) {
		// Both an ISO date and a month name appear; the ISO pattern is
		// earlier in the list and wins regardless of text position.
		date, ok := ExtractDate("January 2020 summary, issued 2023-06-01")

		require.True(t, ok)
		assert.Equal(t, time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("leftmost match wins within a pattern", func(t *testing.T) {
		date, ok := ExtractDate("from 2023-01-01 to 2023-02-01")

		require.True(t, ok)
		assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("skips date-shaped non-dates", func(t *testing.T) {
		// 13-45-2023 matches the month-day-year shape but is not a real
		// date; the later real date should still be found.
		date, ok := ExtractDate("ref 13-45-2023, due 06-15-2023")

		require.True(t, ok)
		assert.Equal(t, time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("returns absent for text with no date", func(t *testing.T) {
		_, ok := ExtractDate("no recognisable pattern here")

		assert.False(t, ok)
	})

	t.Run("returns absent for empty text", func(t *testing.T) {
		_, ok := ExtractDate("")

		assert.False(t, ok)
	})
}

func TestResolveDate(t *testing.T) {
	stamp := time.Date(2022, time.July, 9, 12, 0, 0, 0, time.UTC)

	t.Run("content date wins over timestamps", func(t *testing.T) {
		got := ResolveDate(
			ContentDate("Statement Date: 03/15/2023"),
			TimestampDate(stamp),
		)

		assert.Equal(t, time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("falls through empty providers in order", func(t *testing.T) {
		got := ResolveDate(
			ContentDate("nothing here"),
			TimestampDate(time.Time{}),
			TimestampDate(stamp),
		)

		assert.Equal(t, stamp, got)
	})

	t.Run("uses the current instant as last resort", func(t *testing.T) {
		before := time.Now()
		got := ResolveDate(ContentDate(""), TimestampDate(time.Time{}))
		after := time.Now()

		assert.False(t, got.Before(before))
		assert.False(t, got.After(after))
	})
}
