// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads and writes the TOML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"github.com/giovanamalaia/soundmatch/internal/adapters/network"
	"github.com/giovanamalaia/soundmatch/internal/domain"
)

// ErrConfigExists is returned by Init when a config file is already present.
var ErrConfigExists = errors.New("config file already exists")

// Config is the on-disk configuration.
type Config struct {
	Service ServiceConfig `toml:"service"`
	Player  PlayerConfig  `toml:"player"`
	Log     LogConfig     `toml:"log"`
}

// ServiceConfig locates the recommendation service.
type ServiceConfig struct {
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
}

// PlayerConfig controls the playback links rendered next to results.
type PlayerConfig struct {
	TrackURL string `toml:"track_url"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"` // Empty means the default state-dir file for the TUI
}

// Duration is a time.Duration written as a Go duration string ("15s").
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}

	*d = Duration(parsed)

	return nil
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Service: ServiceConfig{
			BaseURL: network.DefaultBaseURL,
			Timeout: Duration(network.DefaultTimeout),
		},
		Player: PlayerConfig{
			TrackURL: domain.DefaultTrackURL,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the config at path. A missing file yields Defaults.
// Keys absent from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Defaults()

	// #nosec G304 -- path is the user's own config file
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.normalize()

	return cfg, nil
}

// Save writes cfg to path while holding an exclusive lock on path+".lock".
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := flock.New(path + ".lock")

	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock config: %w", err)
	}

	if !locked {
		return fmt.Errorf("config %s is being written by another process", path)
	}

	defer func() {
		_ = lock.Unlock()
	}()

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace config: %w", err)
	}

	return nil
}

// Init writes the default config to path unless a file is already there.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	return Save(path, Defaults())
}

// Marshal encodes cfg as TOML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer

	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)

	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return buf.Bytes(), nil
}

// Timeout returns the service timeout as a time.Duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Service.Timeout)
}

// LogPath returns the configured log file, or the default one.
func (c Config) LogPath() string {
	if c.Log.File == "" {
		return DefaultLogPath()
	}

	return ExpandPath(c.Log.File)
}

func (c *Config) normalize() {
	defaults := Defaults()

	c.Service.BaseURL = strings.TrimSpace(c.Service.BaseURL)
	if c.Service.BaseURL == "" {
		c.Service.BaseURL = defaults.Service.BaseURL
	}

	if c.Service.Timeout < 0 {
		c.Service.Timeout = defaults.Service.Timeout
	}

	if c.Player.TrackURL == "" {
		c.Player.TrackURL = defaults.Player.TrackURL
	}
}
