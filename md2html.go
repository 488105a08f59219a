package md2page

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// fragmentConverter abstracts Markdown to HTML fragment conversion.
type fragmentConverter interface {
	ToFragment(ctx context.Context, content string) (string, error)
}

// goldmarkConverter converts Markdown to an HTML fragment using goldmark.
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a goldmarkConverter with GFM extensions.
// With highlight enabled, fenced code blocks carrying a known language tag
// are tokenized and wrapped in classed spans; unknown or missing tags pass
// through as escaped verbatim text. With rawHTML enabled, HTML in the
// Markdown is emitted rather than omitted; callers sanitize downstream.
func newGoldmarkConverter(rawHTML, highlight bool) *goldmarkConverter {
	extenders := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if highlight {
		extenders = append(extenders, highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // classed spans; colors come from CSS
			),
		))
	}

	rendererOpts := []renderer.Option{
		html.WithXHTML(), // Self-closing tags
	}
	if rawHTML {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(extenders...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Stable anchors for heading links
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &goldmarkConverter{md: md}
}

// ToFragment converts Markdown content to an HTML fragment.
// Malformed Markdown degrades to literal text rather than failing.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (c *goldmarkConverter) ToFragment(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		fragment string
		err      error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrFragmentRender, err)}
			return
		}
		done <- result{fragment: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.fragment, r.err
	}
}

// Compile-time interface check.
var _ fragmentConverter = (*goldmarkConverter)(nil)
