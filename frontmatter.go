package md2page

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2page/internal/yamlutil"
)

// frontMatterDelimiter opens and closes a YAML front matter block.
const frontMatterDelimiter = "---"

// frontMatter holds document metadata parsed from a leading YAML block.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Language    string   `yaml:"language"`
	Description string   `yaml:"description"`
	Stylesheets []string `yaml:"stylesheets"`
	Scripts     []string `yaml:"scripts"`
}

// extractFrontMatter splits a leading YAML front matter block from content.
// The block must open with "---" on the first line and close with a "---"
// line. Returns nil metadata and the unchanged content when no block is
// present. A delimited block without a "key:" mapping line is treated as
// content, so a document opening with a thematic break still renders.
// Returns ErrFrontMatter when the block looks like metadata but is not
// valid YAML.
func extractFrontMatter(content string) (*frontMatter, string, error) {
	rest, ok := strings.CutPrefix(content, frontMatterDelimiter+"\n")
	if !ok {
		return nil, content, nil
	}

	block, body, closed := splitAtClosingDelimiter(rest)
	if !closed || !looksLikeMetadata(block) {
		return nil, content, nil
	}

	var meta frontMatter
	if err := yamlutil.Unmarshal([]byte(block), &meta); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	return &meta, body, nil
}

// splitAtClosingDelimiter cuts rest at the first "---" line.
func splitAtClosingDelimiter(rest string) (block, body string, closed bool) {
	if strings.HasPrefix(rest, frontMatterDelimiter+"\n") {
		return "", rest[len(frontMatterDelimiter)+1:], true
	}
	if rest == frontMatterDelimiter {
		return "", "", true
	}
	if idx := strings.Index(rest, "\n"+frontMatterDelimiter+"\n"); idx != -1 {
		return rest[:idx], rest[idx+len(frontMatterDelimiter)+2:], true
	}
	if strings.HasSuffix(rest, "\n"+frontMatterDelimiter) {
		return rest[:len(rest)-len(frontMatterDelimiter)-1], "", true
	}
	return "", "", false
}

// looksLikeMetadata reports whether a candidate block reads as a YAML
// mapping. The first substantive line must carry a colon; anything else is
// ordinary Markdown between two thematic breaks.
func looksLikeMetadata(block string) bool {
	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return strings.Contains(trimmed, ":")
	}
	return false
}

// applyFrontMatter overlays front matter values onto document metadata.
// Scalar fields override when non-empty; list fields override when present.
func applyFrontMatter(doc Document, meta *frontMatter) Document {
	if meta == nil {
		return doc
	}
	if meta.Title != "" {
		doc.Title = meta.Title
	}
	if meta.Language != "" {
		doc.Language = meta.Language
	}
	if meta.Description != "" {
		doc.Description = meta.Description
	}
	if meta.Stylesheets != nil {
		doc.Stylesheets = meta.Stylesheets
	}
	if meta.Scripts != nil {
		doc.Scripts = meta.Scripts
	}
	return doc
}
