// Package md2page converts Markdown documents to complete, styled HTML pages.
//
// # Quick Start
//
// Create a service and render markdown:
//
//	svc := md2page.New()
//
//	page, err := svc.Render(ctx, md2page.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(page), 0644)
//
// The result is a full HTML document: head metadata, linked assets, and the
// rendered body, pretty-printed with stable indentation. Rendering the
// empty string yields a complete page with an empty body.
//
// # Rendering Pipeline
//
// Rendering follows these stages:
//
//  1. Markdown preprocessing (BOM removal, line ending normalization)
//  2. YAML front matter extraction (title, language, stylesheets, scripts)
//  3. Markdown to HTML conversion via Goldmark (GFM, footnotes, syntax highlighting)
//  4. Raw HTML sanitization via bluemonday (only with WithRawHTML)
//  5. Page assembly from the HTML template (head metadata, inline CSS)
//  6. Pretty-printing into a stable, human-readable serialization
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2page.New(
//	    md2page.WithDocument(md2page.Document{Title: "Guide"}),
//	    md2page.WithInlineStyle(css),
//	    md2page.WithHighlightStyle("monokai"),
//	)
//
// Per-render metadata is passed via Input:
//
//	page, err := svc.Render(ctx, md2page.Input{
//	    Markdown: content,
//	    Document: &md2page.Document{
//	        Title:       "IndexedDB Tutorial",
//	        Stylesheets: []string{"tutorial.css"},
//	        Scripts:     []string{"demo.js"},
//	    },
//	})
//
// # Front Matter
//
// A document may carry its own metadata in a leading YAML block:
//
//	---
//	title: IndexedDB Tutorial
//	stylesheets: [style.css]
//	scripts: [index.js]
//	---
//
//	# Getting Started
//
// Front matter fields override both Input.Document and service-level
// metadata. Unset fields fall back to the built-in defaults ("Document",
// "en", style.css, index.js).
//
// # Parallel Processing
//
// For batch conversion, use ServicePool to reuse services across workers:
//
//	pool := md2page.NewServicePool(4)
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	page, err := svc.Render(ctx, input)
//
// # Custom Assets
//
// Load styles and page templates from a directory, with fallback to the
// embedded defaults:
//
//	loader, err := md2page.NewAssetLoader("/path/to/assets")
//	css, err := loader.LoadStyle("custom")
//	svc := md2page.New(md2page.WithInlineStyle(css))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom.html
package md2page
