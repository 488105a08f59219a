package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	md2page "github.com/alnah/go-md2page"
	"github.com/alnah/go-md2page/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput          = errors.New("failed to read input")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrReadCSS            = errors.New("failed to read CSS file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Renderer is the interface for the rendering service.
type Renderer interface {
	Render(ctx context.Context, input md2page.Input) (string, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*md2page.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() *md2page.Service
	Release(*md2page.Service)
	Size() int
}

// Compile-time interface implementation check.
var _ Pool = (*md2page.ServicePool)(nil)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// run resolves configuration and dispatches to stdin or batch mode.
func run(ctx context.Context, flags *convertFlags, args []string, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	// Load configuration: explicit flag, MD2PAGE_CONFIG, or the baseline
	cfg := env.Config
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Environment variables fill settings the config file leaves empty
	applyEnvConfig(envCfg, cfg)

	// CLI flags override config and environment
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Utility modes exit before any input is read
	if flags.highlight.listStyles {
		for _, name := range md2page.HighlightStyles() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}
	if flags.highlight.printCSS {
		return printHighlightCSS(cfg, env.Stdout)
	}

	// Custom asset directory overrides embedded styles and templates
	loader := env.AssetLoader
	if cfg.Assets.BasePath != "" {
		custom, err := md2page.NewAssetLoader(cfg.Assets.BasePath)
		if err != nil {
			return err
		}
		loader = custom
	}

	opts, err := buildServiceOptions(flags, cfg, loader)
	if err != nil {
		return err
	}

	// Stdin mode: no inputs given and none configured
	if len(args) == 0 && cfg.Input.DefaultDir == "" {
		return renderStdin(ctx, flags, opts, env)
	}

	return runBatch(ctx, flags, args, cfg, opts, envCfg, env)
}

// renderStdin renders stdin Markdown to stdout or the --output file.
// The page is written only after a fully successful render, so the
// destination never carries a partial document.
func renderStdin(ctx context.Context, flags *convertFlags, opts []md2page.Option, env *Environment) error {
	if env.StdinIsTerminal() {
		fmt.Fprintln(env.Stderr, "Reading Markdown from stdin until EOF (Ctrl-D to finish)...")
	}

	data, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	start := time.Now()
	svc := md2page.New(opts...)
	page, err := svc.Render(ctx, md2page.Input{Markdown: string(data)})
	if err != nil {
		return err
	}

	if flags.output != "" {
		// #nosec G306 -- generated pages are meant to be readable
		if err := os.WriteFile(flags.output, []byte(page), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !flags.common.quiet {
			if flags.common.verbose {
				fmt.Fprintf(env.Stdout, "stdin -> %s (%v)\n", flags.output, time.Since(start).Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
			}
		}
		return nil
	}

	if _, err := io.WriteString(env.Stdout, page); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Rendered in %v\n", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// printHighlightCSS writes the token stylesheet for the configured style.
func printHighlightCSS(cfg *config.Config, w io.Writer) error {
	name := cfg.Highlight.Style
	if name == "" {
		name = md2page.DefaultHighlightStyle
	}

	css, err := md2page.HighlightStylesheet(name)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, css); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Document flags
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.language != "" {
		cfg.Document.Language = flags.document.language
	}
	if flags.document.description != "" {
		cfg.Document.Description = flags.document.description
	}
	if flags.document.stylesheets != nil {
		cfg.Document.Stylesheets = flags.document.stylesheets
	}
	if flags.document.scripts != nil {
		cfg.Document.Scripts = flags.document.scripts
	}

	// Styling flags
	if flags.style.name != "" {
		cfg.Style.Name = flags.style.name
	}
	if flags.style.disabled {
		cfg.Style.Name = ""
	}
	if flags.style.assetPath != "" {
		cfg.Assets.BasePath = flags.style.assetPath
	}

	// Highlight flags
	if flags.highlight.style != "" {
		cfg.Highlight.Style = flags.highlight.style
	}
	if flags.highlight.disabled {
		cfg.Highlight.Disabled = true
	}

	// Markdown flags
	if flags.rawHTML {
		cfg.Markdown.RawHTML = true
	}
}

// resolveInputPaths determines the inputs from args or config.
func resolveInputPaths(args []string, cfg *config.Config) []string {
	if len(args) > 0 {
		return args
	}
	return []string{cfg.Input.DefaultDir}
}

// resolveOutputDir determines the output destination from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
// Zero means automatic sizing; explicit counts may exceed the automatic cap.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	return nil
}
