package main

import (
	"fmt"
	"os"
	"strings"

	md2page "github.com/alnah/go-md2page"
	"github.com/alnah/go-md2page/internal/config"
	"github.com/alnah/go-md2page/internal/fileutil"
)

// buildServiceOptions maps the resolved configuration onto service options.
func buildServiceOptions(flags *convertFlags, cfg *config.Config, loader md2page.AssetLoader) ([]md2page.Option, error) {
	opts := []md2page.Option{
		md2page.WithDocument(md2page.Document{
			Title:       cfg.Document.Title,
			Language:    cfg.Document.Language,
			Description: cfg.Document.Description,
			Stylesheets: cfg.Document.Stylesheets,
			Scripts:     cfg.Document.Scripts,
		}),
	}

	// Inline page CSS: a named asset style or a CSS file path
	css, err := resolveInlineCSS(cfg.Style.Name, loader)
	if err != nil {
		return nil, err
	}
	if css != "" {
		opts = append(opts, md2page.WithInlineStyle(css))
	}

	// Custom page template by name (custom asset dirs may override it)
	if flags.style.template != "" {
		tmpl, err := loader.LoadTemplate(flags.style.template)
		if err != nil {
			return nil, err
		}
		opts = append(opts, md2page.WithTemplate(tmpl))
	}

	if cfg.Highlight.Disabled {
		opts = append(opts, md2page.WithoutHighlight())
	} else if cfg.Highlight.Style != "" {
		opts = append(opts, md2page.WithHighlightStyle(cfg.Highlight.Style))
	}

	if cfg.Markdown.RawHTML {
		opts = append(opts, md2page.WithRawHTML())
	}

	return opts, nil
}

// resolveInlineCSS loads the CSS to inline from a style name or file path.
// Anything containing a path separator or a .css suffix is read as a file;
// everything else is resolved through the asset loader.
func resolveInlineCSS(nameOrPath string, loader md2page.AssetLoader) (string, error) {
	if nameOrPath == "" {
		return "", nil
	}

	if fileutil.IsFilePath(nameOrPath) || strings.HasSuffix(nameOrPath, ".css") {
		content, err := os.ReadFile(nameOrPath) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		return string(content), nil
	}

	return loader.LoadStyle(nameOrPath)
}
