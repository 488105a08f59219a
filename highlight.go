package md2page

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the token color style used when none is configured.
const DefaultHighlightStyle = "github"

// HighlightStylesheet returns the CSS rules for the named token color style.
// The rules target the classed spans emitted for fenced code blocks, so the
// stylesheet pairs with any page rendered by this package.
// Returns ErrUnknownHighlightStyle if the name is not a registered style.
func HighlightStylesheet(name string) (string, error) {
	style, ok := styles.Registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, name)
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("writing highlight stylesheet: %w", err)
	}
	return buf.String(), nil
}

// HighlightStyles returns the names of all registered token color styles,
// sorted alphabetically.
func HighlightStyles() []string {
	return styles.Names()
}
