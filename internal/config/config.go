package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2page/internal/fileutil"
	"github.com/alnah/go-md2page/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrTooManyAssets   = errors.New("too many asset references")
)

// Field length limits for multi-tenant safety.
const (
	MaxTitleLength          = 200  // Page title
	MaxLanguageLength       = 35   // BCP 47 language tag
	MaxDescriptionLength    = 500  // Meta description
	MaxAssetRefLength       = 2048 // Stylesheet/script reference (browser URL limit)
	MaxAssetRefs            = 20   // Linked stylesheets or scripts per page
	MaxStyleRefLength       = 2048 // Style name or CSS file path
	MaxHighlightStyleLength = 50   // Highlight style name
)

// Config holds all configuration for page generation.
type Config struct {
	Document  DocumentConfig  `yaml:"document"`
	Style     StyleConfig     `yaml:"style"`
	Highlight HighlightConfig `yaml:"highlight"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
	Assets    AssetsConfig    `yaml:"assets"`
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
}

// DocumentConfig defines head metadata defaults for generated pages.
// Front matter and CLI flags take precedence over these values.
type DocumentConfig struct {
	Title       string   `yaml:"title"`       // Page title (empty = "Document")
	Language    string   `yaml:"language"`    // html lang attribute (empty = "en")
	Description string   `yaml:"description"` // Optional meta description
	Stylesheets []string `yaml:"stylesheets"` // Linked stylesheet hrefs (empty = ["style.css"])
	Scripts     []string `yaml:"scripts"`     // Linked script srcs (empty = ["index.js"])
}

// StyleConfig defines inline CSS options.
type StyleConfig struct {
	Name string `yaml:"name"` // Style name or CSS file path to inline (empty = links only)
}

// HighlightConfig defines syntax highlighting options.
type HighlightConfig struct {
	Style    string `yaml:"style"`    // Token color style name (default: "github")
	Disabled bool   `yaml:"disabled"` // Skip code block highlighting entirely
}

// MarkdownConfig defines Markdown parsing options.
type MarkdownConfig struct {
	RawHTML bool `yaml:"rawHTML"` // Pass sanitized raw HTML blocks through to output
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// Validate checks field lengths to prevent abuse in multi-tenant scenarios.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., API adapters, library users).
func (c *Config) Validate() error {
	// Validate document fields
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.language", c.Document.Language, MaxLanguageLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.description", c.Document.Description, MaxDescriptionLength); err != nil {
		return err
	}

	// Validate asset references
	if len(c.Document.Stylesheets) > MaxAssetRefs {
		return fmt.Errorf("%w: document.stylesheets (%d entries, max %d)",
			ErrTooManyAssets, len(c.Document.Stylesheets), MaxAssetRefs)
	}
	for i, ref := range c.Document.Stylesheets {
		if err := validateFieldLength(fmt.Sprintf("document.stylesheets[%d]", i), ref, MaxAssetRefLength); err != nil {
			return err
		}
	}
	if len(c.Document.Scripts) > MaxAssetRefs {
		return fmt.Errorf("%w: document.scripts (%d entries, max %d)",
			ErrTooManyAssets, len(c.Document.Scripts), MaxAssetRefs)
	}
	for i, ref := range c.Document.Scripts {
		if err := validateFieldLength(fmt.Sprintf("document.scripts[%d]", i), ref, MaxAssetRefLength); err != nil {
			return err
		}
	}

	// Validate style fields
	if err := validateFieldLength("style.name", c.Style.Name, MaxStyleRefLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxHighlightStyleLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration. Document defaults
// (title, language, asset links) are applied at render time so that
// front matter and flags can take precedence over them.
func DefaultConfig() *Config {
	return &Config{
		Document:  DocumentConfig{},
		Style:     StyleConfig{Name: ""},
		Highlight: HighlightConfig{Style: "", Disabled: false},
		Markdown:  MarkdownConfig{RawHTML: false},
		Assets:    AssetsConfig{BasePath: ""},
		Input:     InputConfig{DefaultDir: ""},
		Output:    OutputConfig{DefaultDir: ""},
	}
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

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate locations LoadConfig tries for a
// config name, in resolution order. Returns nil when nameOrPath is a
// file path rather than a bare name.
func SearchPaths(nameOrPath string) []string {
	if nameOrPath == "" || fileutil.IsFilePath(nameOrPath) {
		return nil
	}

	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	// Current directory first (both extensions)
	for _, ext := range extensions {
		paths = append(paths, nameOrPath+ext)
	}

	// Then the user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2page", nameOrPath+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2page/
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
