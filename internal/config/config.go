// Package config loads and validates YAML configuration for latex2svg.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vlarroque/latex2svg/internal/fileutil"
	"github.com/vlarroque/latex2svg/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrInvalidFontSize  = errors.New("fontSize must be positive")
	ErrInvalidScale     = errors.New("scale must be positive")
	ErrInvalidOptimizer = errors.New("invalid optimizer")
	ErrEmptyCommand     = errors.New("command override cannot contain empty entries")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
)

// Field length limits. Generous bounds that still reject pathological input.
const (
	MaxFontSize       = 200.0
	MaxPreambleLength = 10_000
	MaxPathLength     = 4096
)

// Config holds all configuration for equation conversion.
// Zero values mean "unset": the CLI falls back to library defaults, so a
// partial config file only overrides the fields it names.
type Config struct {
	FontSize    float64  `yaml:"fontSize"`    // TeX pt (0 = default 12)
	Scale       float64  `yaml:"scale"`       // dvisvgm scale (0 = fontSize/10)
	Preamble    string   `yaml:"preamble"`    // extra LaTeX preamble
	LatexCmd    []string `yaml:"latexCmd"`    // compiler argv override
	DvisvgmCmd  []string `yaml:"dvisvgmCmd"`  // converter argv override
	ScourCmd    []string `yaml:"scourCmd"`    // optimizer argv override
	Optimizer   string   `yaml:"optimizer"`   // "scour" (default) or "none"
	NoClipboard bool     `yaml:"noClipboard"` // skip the clipboard stage
	Libgs       string   `yaml:"libgs"`       // Ghostscript library path for dvisvgm
}

// DefaultConfig returns a configuration with every field unset.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks value ranges and field lengths.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if c.FontSize < 0 || c.FontSize > MaxFontSize {
		return fmt.Errorf("%w: got %.2f (max %.0f)", ErrInvalidFontSize, c.FontSize, MaxFontSize)
	}
	if c.Scale < 0 {
		return fmt.Errorf("%w: got %.2f", ErrInvalidScale, c.Scale)
	}
	switch c.Optimizer {
	case "", "scour", "none":
		// valid
	default:
		return fmt.Errorf("%w: %q (must be scour or none)", ErrInvalidOptimizer, c.Optimizer)
	}
	if len(c.Preamble) > MaxPreambleLength {
		return fmt.Errorf("%w: preamble (%d chars, max %d)", ErrFieldTooLong, len(c.Preamble), MaxPreambleLength)
	}
	if len(c.Libgs) > MaxPathLength {
		return fmt.Errorf("%w: libgs (%d chars, max %d)", ErrFieldTooLong, len(c.Libgs), MaxPathLength)
	}
	for name, argv := range map[string][]string{
		"latexCmd":   c.LatexCmd,
		"dvisvgmCmd": c.DvisvgmCmd,
		"scourCmd":   c.ScourCmd,
	} {
		for _, entry := range argv {
			if entry == "" {
				return fmt.Errorf("%w: %s", ErrEmptyCommand, name)
			}
		}
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/latex2svg/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "latex2svg", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
