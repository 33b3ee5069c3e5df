// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName names the per-user configuration and state directories.
const AppName = "soundmatch"

// GetXDGConfigHome returns XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// GetXDGStateHome returns XDG state directory, where log files live.
func GetXDGStateHome() string {
	return GetXDGStateHomeWithEnv(os.Getenv("XDG_STATE_HOME"))
}

// GetXDGStateHomeWithEnv returns XDG state directory with custom environment override for testing.
func GetXDGStateHomeWithEnv(xdgStateHome string) string {
	if xdgStateHome != "" {
		return xdgStateHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}

	return ""
}

// DefaultPath returns the config file location. SOUNDMATCH_CONFIG wins over
// the XDG default.
func DefaultPath() string {
	return DefaultPathWithEnv(os.Getenv("SOUNDMATCH_CONFIG"), GetXDGConfigHome())
}

// DefaultPathWithEnv returns the config file location for the given overrides.
func DefaultPathWithEnv(override, configHome string) string {
	if override != "" {
		return ExpandPath(override)
	}

	return filepath.Join(configHome, AppName, "config.toml")
}

// DefaultLogPath returns the log file used by the TUI when none is configured.
func DefaultLogPath() string {
	return filepath.Join(GetXDGStateHome(), AppName, AppName+".log")
}

// ExpandPath expands a leading ~ and $XDG_CONFIG_HOME / $XDG_STATE_HOME.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	if after, found := strings.CutPrefix(path, "$XDG_CONFIG_HOME"); found {
		return GetXDGConfigHome() + after
	}

	if after, found := strings.CutPrefix(path, "$XDG_STATE_HOME"); found {
		return GetXDGStateHome() + after
	}

	return path
}
