package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2page/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath     string // MD2PAGE_CONFIG: config file name or path
	Style          string // MD2PAGE_STYLE: style name or CSS path to inline
	HighlightStyle string // MD2PAGE_HIGHLIGHT_STYLE: token color style

	// Tier 2 - I/O and assets
	InputDir  string // MD2PAGE_INPUT_DIR: default input directory
	OutputDir string // MD2PAGE_OUTPUT_DIR: default output directory
	AssetPath string // MD2PAGE_ASSET_PATH: custom asset directory

	// Tier 3 - Extended
	Language string // MD2PAGE_LANGUAGE: html lang attribute
	Workers  int    // MD2PAGE_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2PAGE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"MD2PAGE_CONFIG":          true,
	"MD2PAGE_STYLE":           true,
	"MD2PAGE_HIGHLIGHT_STYLE": true,
	// Tier 2 - I/O and assets
	"MD2PAGE_INPUT_DIR":  true,
	"MD2PAGE_OUTPUT_DIR": true,
	"MD2PAGE_ASSET_PATH": true,
	// Tier 3 - Extended
	"MD2PAGE_LANGUAGE": true,
	"MD2PAGE_WORKERS":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized MD2PAGE_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		// Tier 1
		ConfigPath:     os.Getenv("MD2PAGE_CONFIG"),
		Style:          os.Getenv("MD2PAGE_STYLE"),
		HighlightStyle: os.Getenv("MD2PAGE_HIGHLIGHT_STYLE"),
		// Tier 2
		InputDir:  os.Getenv("MD2PAGE_INPUT_DIR"),
		OutputDir: os.Getenv("MD2PAGE_OUTPUT_DIR"),
		AssetPath: os.Getenv("MD2PAGE_ASSET_PATH"),
		// Tier 3
		Language: os.Getenv("MD2PAGE_LANGUAGE"),
	}

	// Parse int for workers
	if workers := os.Getenv("MD2PAGE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2PAGE_* variables.
// Helps catch typos like MD2PAGE_STYL instead of MD2PAGE_STYLE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2PAGE_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A variable only fills a setting the config file leaves empty, and CLI
// flags are merged afterwards, so flags override files and files override
// the environment.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1 - Styling
	if env.Style != "" && cfg.Style.Name == "" {
		cfg.Style.Name = env.Style
	}
	if env.HighlightStyle != "" && cfg.Highlight.Style == "" {
		cfg.Highlight.Style = env.HighlightStyle
	}

	// Tier 2 - I/O and assets
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}

	// Tier 3 - Document metadata
	if env.Language != "" && cfg.Document.Language == "" {
		cfg.Document.Language = env.Language
	}
}
