// SPDX-License-Identifier: MIT
// Package: linecode/internal/config
//
// config.go — runtime configuration for the linecode binary.
//
// Resolution order (later wins):
//  1. Default(): package constants from coder, log level "info".
//  2. Environment: LINECODE_DATA_DIR and LINECODE_LOG.
//  3. Command-line flags, applied by cmd/linecode on top of Load().
//
// The data directory holds the log file. Without LINECODE_DATA_DIR it is
// $XDG_DATA_HOME/linecode, then ~/.local/share/linecode, then ".".

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/linecode/coder"
	"go.uber.org/zap/zapcore"
)

// Environment variables read by Load.
const (
	EnvDataDir = "LINECODE_DATA_DIR"
	EnvLog     = "LINECODE_LOG"
	envXDGData = "XDG_DATA_HOME"
)

// Defaults.
const (
	AppName         = "linecode"
	DefaultLogFile  = "log"
	DefaultLogLevel = "info"
	DefaultCoder    = "nrzl"
)

// ErrBadLogLevel indicates a level zap cannot parse.
var ErrBadLogLevel = errors.New("config: unknown log level")

// Config is the resolved runtime configuration.
type Config struct {
	DataDir  string `json:"data_dir"`
	LogFile  string `json:"log_file"`
	LogLevel string `json:"log_level"`

	Coder     string  `json:"coder"`
	BitPeriod float64 `json:"bit_period"`
	Amplitude float64 `json:"amplitude"`
	Duty      float64 `json:"duty"`
}

// Default returns the built-in configuration with an empty DataDir.
func Default() Config {
	return Config{
		LogFile:   DefaultLogFile,
		LogLevel:  DefaultLogLevel,
		Coder:     DefaultCoder,
		BitPeriod: coder.DefaultBitPeriod,
		Amplitude: coder.DefaultAmplitude,
		Duty:      coder.DefaultDuty,
	}
}

// Load returns Default() with environment overrides applied.
func Load() Config {
	cfg := Default()
	cfg.DataDir = dataDir()
	if lvl := os.Getenv(EnvLog); lvl != "" {
		cfg.LogLevel = lvl
	}

	return cfg
}

func dataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	if xdg := os.Getenv(envXDGData); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", AppName)
	}

	return "."
}

// LogPath joins DataDir and LogFile. An absolute LogFile is used as is.
func (c Config) LogPath() string {
	if filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}

	return filepath.Join(c.DataDir, c.LogFile)
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("Level(%q): %w", c.LogLevel, ErrBadLogLevel)
	}

	return lvl, nil
}

// Scheme resolves the Coder name.
func (c Config) Scheme() (coder.Scheme, error) {
	return coder.ParseScheme(c.Coder)
}

// CoderOptions converts the numeric parameters into factory options.
func (c Config) CoderOptions() []coder.Option {
	return []coder.Option{
		coder.WithBitPeriod(c.BitPeriod),
		coder.WithAmplitude(c.Amplitude),
		coder.WithDuty(c.Duty),
	}
}

// Validate checks every field with the same rules the coders enforce, so a
// bad flag is reported before anything runs. The amplitude rule depends on
// the selected scheme; duty is only checked for schemes that use it.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	s, err := c.Scheme()
	if err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if _, err := coder.CheckBitPeriod(c.BitPeriod); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if _, err := s.AmplitudeRule().Check(c.Amplitude); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if s.UsesDuty() {
		if _, err := coder.CheckDuty(c.Duty); err != nil {
			return fmt.Errorf("Validate: %w", err)
		}
	}

	return nil
}

// NewCoder validates c and builds the configured coder.
func (c Config) NewCoder() (coder.LineCoder, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, _ := c.Scheme()

	return coder.New(s, c.CoderOptions()...)
}
