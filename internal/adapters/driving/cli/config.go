package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persistent settings",
	Long: `View and change settings stored in ~/.docsort/config.toml.

Keys:
  scan.source_dir        directory of unsorted documents
  scan.destination_root  root of the destination folder tree
  scan.threshold         minimum score for a match
  scan.max_pages         pages of content to read per document
  scan.extensions        tracked file extensions (comma-separated)
  verbose                diagnostic output by default`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// configKeys are the settings the commands read, in display order.
var configKeys = []string{
	"scan.source_dir",
	"scan.destination_root",
	"scan.threshold",
	"scan.max_pages",
	"scan.extensions",
	"verbose",
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	for _, key := range configKeys {
		val, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("  %-22s %s\n", key, mutedStyle.Render("(not set)"))
			continue
		}
		cmd.Printf("  %-22s %v\n", key, val)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	if !knownConfigKey(key) {
		keys := strings.Join(configKeys, ", ")
		return fmt.Errorf("unknown key %q (valid keys: %s)", key, keys)
	}

	if err := configStore.Set(key, parseConfigValue(key, raw)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	cmd.Printf("Set %s = %s\n", key, raw)
	return nil
}

func knownConfigKey(key string) bool {
	for _, k := range configKeys {
		if k == key {
			return true
		}
	}
	return false
}

// parseConfigValue converts the raw CLI string into the type the key's
// readers expect.
func parseConfigValue(key, raw string) any {
	switch key {
	case "scan.extensions":
		parts := strings.Split(raw, ",")
		exts := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				exts = append(exts, strings.ToLower(p))
			}
		}
		return exts
	case "scan.threshold":
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case "scan.max_pages":
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	case "verbose":
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	}
	return raw
}
