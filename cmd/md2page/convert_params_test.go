package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2page "github.com/alnah/go-md2page"
	"github.com/alnah/go-md2page/internal/config"
)

// buildAndRender resolves service options the way run does and renders
// one markdown input through a fresh service.
func buildAndRender(t *testing.T, flags *convertFlags, cfg *config.Config, markdown string) (string, error) {
	t.Helper()

	loader, err := md2page.NewAssetLoader(cfg.Assets.BasePath)
	if err != nil {
		t.Fatalf("NewAssetLoader: %v", err)
	}
	opts, err := buildServiceOptions(flags, cfg, loader)
	if err != nil {
		t.Fatalf("buildServiceOptions: %v", err)
	}
	return md2page.New(opts...).Render(context.Background(), md2page.Input{Markdown: markdown})
}

func TestResolveInlineCSS(t *testing.T) {
	t.Parallel()

	loader, err := md2page.NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader: %v", err)
	}

	t.Run("empty name resolves to no CSS", func(t *testing.T) {
		t.Parallel()

		css, err := resolveInlineCSS("", loader)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if css != "" {
			t.Errorf("expected empty CSS, got %d bytes", len(css))
		}
	})

	t.Run("named style loads from assets", func(t *testing.T) {
		t.Parallel()

		css, err := resolveInlineCSS("default", loader)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(css, "body") {
			t.Error("embedded default style should contain body rules")
		}
	})

	t.Run("css file path reads the file", func(t *testing.T) {
		t.Parallel()

		content := "body { color: rebeccapurple; }"
		path := filepath.Join(t.TempDir(), "custom.css")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		css, err := resolveInlineCSS(path, loader)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if css != content {
			t.Errorf("got %q, want %q", css, content)
		}
	})

	t.Run("missing css file returns read error", func(t *testing.T) {
		t.Parallel()

		_, err := resolveInlineCSS(filepath.Join(t.TempDir(), "missing.css"), loader)
		if !errors.Is(err, ErrReadCSS) {
			t.Errorf("expected ErrReadCSS, got %v", err)
		}
	})

	t.Run("unknown style name returns not found", func(t *testing.T) {
		t.Parallel()

		_, err := resolveInlineCSS("no-such-style", loader)
		if !errors.Is(err, md2page.ErrStyleNotFound) {
			t.Errorf("expected ErrStyleNotFound, got %v", err)
		}
	})
}

func TestBuildServiceOptions(t *testing.T) {
	t.Parallel()

	t.Run("document config flows through", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Document.Title = "Build Options"
		cfg.Document.Language = "fr"

		out, err := buildAndRender(t, &convertFlags{}, cfg, "# Hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "<title>Build Options</title>") {
			t.Error("configured title should appear in the page")
		}
		if !strings.Contains(out, `lang="fr"`) {
			t.Error("configured language should appear on the html element")
		}
	})

	t.Run("named style is inlined", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Style.Name = "default"

		out, err := buildAndRender(t, &convertFlags{}, cfg, "# Hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "<style>") {
			t.Error("named style should produce an inline style block")
		}
	})

	t.Run("css file path is inlined", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.css")
		if err := os.WriteFile(path, []byte("body { color: rebeccapurple; }"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		cfg := config.DefaultConfig()
		cfg.Style.Name = path

		out, err := buildAndRender(t, &convertFlags{}, cfg, "# Hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "rebeccapurple") {
			t.Error("CSS file content should be inlined into the page")
		}
	})

	t.Run("unknown style name fails", func(t *testing.T) {
		t.Parallel()

		loader, err := md2page.NewAssetLoader("")
		if err != nil {
			t.Fatalf("NewAssetLoader: %v", err)
		}

		cfg := config.DefaultConfig()
		cfg.Style.Name = "no-such-style"

		_, err = buildServiceOptions(&convertFlags{}, cfg, loader)
		if !errors.Is(err, md2page.ErrStyleNotFound) {
			t.Errorf("expected ErrStyleNotFound, got %v", err)
		}
	})

	t.Run("highlight style inlines token CSS", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Highlight.Style = "github"

		out, err := buildAndRender(t, &convertFlags{}, cfg, "```js\nconst x = 1;\n```")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, ".chroma") {
			t.Error("explicit highlight style should inline token CSS")
		}
	})

	t.Run("unknown highlight style fails on render", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Highlight.Style = "no-such-style"

		_, err := buildAndRender(t, &convertFlags{}, cfg, "# Hello")
		if !errors.Is(err, md2page.ErrUnknownHighlightStyle) {
			t.Errorf("expected ErrUnknownHighlightStyle, got %v", err)
		}
	})

	t.Run("highlight disabled skips token markup", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Highlight.Disabled = true

		out, err := buildAndRender(t, &convertFlags{}, cfg, "```js\nconst x = 1;\n```")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(out, "chroma") {
			t.Error("disabled highlighting should not emit chroma markup")
		}
		if !strings.Contains(out, "const x = 1;") {
			t.Error("code content should survive without highlighting")
		}
	})

	t.Run("raw HTML passes through when enabled", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Markdown.RawHTML = true

		out, err := buildAndRender(t, &convertFlags{}, cfg, "before <b>bold</b> after")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "<b>bold</b>") {
			t.Error("inline raw HTML should pass through when enabled")
		}
	})

	t.Run("raw HTML omitted by default", func(t *testing.T) {
		t.Parallel()

		out, err := buildAndRender(t, &convertFlags{}, config.DefaultConfig(), "before <b>bold</b> after")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(out, "<b>bold</b>") {
			t.Error("inline raw HTML should be omitted by default")
		}
	})

	t.Run("template flag loads custom template", func(t *testing.T) {
		t.Parallel()

		assetDir := t.TempDir()
		tmplDir := filepath.Join(assetDir, "templates")
		if err := os.MkdirAll(tmplDir, 0750); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		tmpl := `<html><head><title>{{.Title}}</title></head><body class="custom-tmpl">{{.Content}}</body></html>`
		if err := os.WriteFile(filepath.Join(tmplDir, "page.html"), []byte(tmpl), 0644); err != nil {
			t.Fatalf("failed to write template: %v", err)
		}

		cfg := config.DefaultConfig()
		cfg.Assets.BasePath = assetDir
		flags := &convertFlags{}
		flags.style.template = "page"

		out, err := buildAndRender(t, flags, cfg, "# Hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, `class="custom-tmpl"`) {
			t.Error("custom template markup should appear in the page")
		}
	})
}
