package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigSetCmd_RoundTrip(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "scan.threshold", "0.5"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Set scan.threshold = 0.5")
	assert.Equal(t, 0.5, configStore.GetFloat("scan.threshold"))
}

func TestConfigSetCmd_UnknownKey(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", "scan.bogus", "1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestConfigShowCmd_ShowsValuesAndGaps(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	require.NoError(t, configStore.Set("scan.source_dir", "/inbox"))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "/inbox")
	assert.Contains(t, buf.String(), "(not set)")
}

func TestParseConfigValue(t *testing.T) {
	t.Run("threshold parses as float", func(t *testing.T) {
		assert.Equal(t, 0.4, parseConfigValue("scan.threshold", "0.4"))
	})

	t.Run("max pages parses as int", func(t *testing.T) {
		assert.Equal(t, 5, parseConfigValue("scan.max_pages", "5"))
	})

	t.Run("verbose parses as bool", func(t *testing.T) {
		assert.Equal(t, true, parseConfigValue("verbose", "true"))
	})

	t.Run("extensions split and lowercase", func(t *testing.T) {
		got := parseConfigValue("scan.extensions", "PDF, docx,,txt")
		assert.Equal(t, []string{"pdf", "docx", "txt"}, got)
	})

	t.Run("unparseable falls back to string", func(t *testing.T) {
		assert.Equal(t, "abc", parseConfigValue("scan.threshold", "abc"))
	})

	t.Run("paths stay strings", func(t *testing.T) {
		assert.Equal(t, "/inbox", parseConfigValue("scan.source_dir", "/inbox"))
	})
}
