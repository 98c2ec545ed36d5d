package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-guidepdf/internal/fileutil"
	"github.com/alnah/go-guidepdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidGuide    = errors.New("invalid guide entry")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // Typical PATH_MAX
	MaxFileNameLength = 255  // Typical NAME_MAX
	MaxAuthorLength   = 100
	MaxCreatorLength  = 100
	MaxGuides         = 256
)

// Default directories, relative to the project root.
const (
	DefaultSourceDir = "resources/guides"
	DefaultOutputDir = "public/resources"
)

// Config holds all configuration for a conversion run.
type Config struct {
	SourceDir string         `yaml:"sourceDir"` // Relative to root unless absolute
	OutputDir string         `yaml:"outputDir"` // Relative to root unless absolute
	Document  DocumentConfig `yaml:"document"`
	Guides    []GuideConfig  `yaml:"guides"` // Empty = built-in guide table
}

// DocumentConfig defines PDF document properties.
type DocumentConfig struct {
	Author  string `yaml:"author"`  // Fallback when front matter has no author
	Creator string `yaml:"creator"` // Producing application, e.g. "go-guidepdf"
}

// GuideConfig maps one source file to one output file.
type GuideConfig struct {
	Source string `yaml:"source"` // File name inside SourceDir
	Output string `yaml:"output"` // File name inside OutputDir
}

// Validate checks directory and guide entries.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("sourceDir", c.SourceDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("outputDir", c.OutputDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.author", c.Document.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.creator", c.Document.Creator, MaxCreatorLength); err != nil {
		return err
	}

	if len(c.Guides) > MaxGuides {
		return fmt.Errorf("%w: %d guides (max %d)", ErrInvalidGuide, len(c.Guides), MaxGuides)
	}

	seenOutputs := make(map[string]int, len(c.Guides))
	for i, g := range c.Guides {
		field := fmt.Sprintf("guides[%d]", i)
		if err := validateGuideName(field+".source", g.Source, ".md", ".markdown"); err != nil {
			return err
		}
		if err := validateGuideName(field+".output", g.Output, ".pdf"); err != nil {
			return err
		}
		key := strings.ToLower(g.Output)
		if prev, ok := seenOutputs[key]; ok {
			return fmt.Errorf("%w: %s.output %q duplicates guides[%d].output", ErrInvalidGuide, field, g.Output, prev)
		}
		seenOutputs[key] = i
	}

	return nil
}

// validateGuideName checks that name is a plain file name with an allowed extension.
// Subdirectories are allowed, but the name may not escape its base directory.
func validateGuideName(field, name string, exts ...string) error {
	if name == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidGuide, field)
	}
	if err := validateFieldLength(field, name, MaxFileNameLength); err != nil {
		return err
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\") {
		return fmt.Errorf("%w: %s %q must be relative", ErrInvalidGuide, field, name)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %s contains a null byte", ErrInvalidGuide, field)
	}
	cleaned := filepath.ToSlash(filepath.Clean(name))
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("%w: %s %q escapes its directory", ErrInvalidGuide, field, name)
	}

	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range exts {
		if ext == want {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q must end with %s", ErrInvalidGuide, field, name, strings.Join(exts, " or "))
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// standard directories and the built-in guide table.
func DefaultConfig() *Config {
	return &Config{
		SourceDir: DefaultSourceDir,
		OutputDir: DefaultOutputDir,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Directory fields left empty in the file get their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
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

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, configPath, yamlutil.FormatError(err))
	}
	if cfg.SourceDir == "" {
		cfg.SourceDir = DefaultSourceDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order.
// Tries extensions .yaml then .yml, in the current directory, then in
// the user config directory (~/.config/go-guidepdf/ on Linux).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-guidepdf", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
