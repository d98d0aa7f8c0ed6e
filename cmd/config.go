// Package cmd implements the command-line interface for winfx.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winfx/internal/profile"
)

// Config holds all application configuration
type Config struct {
	Verbose  bool
	ShowLogs bool
	Elevate  bool

	// Hwnd selects a window by handle. It takes precedence over Title.
	Hwnd uintptr
	// Title selects every visible window whose title contains it
	Title string

	Profile string
}

// NewConfigFromFlags creates a Config from parsed command flags
func NewConfigFromFlags(cmd *cobra.Command) (*Config, error) {
	hwnd, err := parseHwnd(getStringFlag(cmd, "hwnd"))
	if err != nil {
		return nil, err
	}

	path := getStringFlag(cmd, "profile")
	if path == "" {
		path = profile.DefaultPath()
	}

	return &Config{
		Verbose:  getBoolFlag(cmd, "verbose"),
		ShowLogs: getBoolFlag(cmd, "logs"),
		Elevate:  getBoolFlag(cmd, "elevate"),
		Hwnd:     hwnd,
		Title:    getStringFlag(cmd, "title"),
		Profile:  path,
	}, nil
}

// parseHwnd accepts decimal or 0x-prefixed hexadecimal handles
func parseHwnd(s string) (uintptr, error) {
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q", s)
	}

	return uintptr(v), nil
}

// getBoolFlag retrieves a boolean flag, checking both local and persistent flags
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		// Try persistent flags if not found in local flags
		val, _ = cmd.PersistentFlags().GetBool(name)
	}

	return val
}

func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		val, _ = cmd.PersistentFlags().GetString(name)
	}

	return val
}
