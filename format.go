package md2page

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// indentUnit is the indentation added per nesting level.
const indentUnit = "  "

// htmlWhitespace is the set of characters the HTML specification treats as
// inter-element whitespace. Unicode spaces such as U+00A0 are content and
// must survive formatting.
const htmlWhitespace = " \t\n\r\f"

// preserveContent lists elements whose raw text content is significant.
// The formatter never rewrites whitespace inside them.
var preserveContent = map[atom.Atom]bool{
	atom.Pre:      true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Textarea: true,
}

// structuralContainer lists the elements that frame every document. They are
// always padded: the HTML parser moves stray whitespace from around the
// document into them, and padding drops it again, keeping repeated formatting
// runs stable.
var structuralContainer = map[atom.Atom]bool{
	atom.Html: true,
	atom.Head: true,
	atom.Body: true,
}

// blockLevel lists elements rendered on their own line. Children of an
// element are padded only when all of them are block-level, so inline runs
// such as "a<em>b</em>" keep their exact spacing.
var blockLevel = map[atom.Atom]bool{
	atom.Address:    true,
	atom.Article:    true,
	atom.Aside:      true,
	atom.Base:       true,
	atom.Blockquote: true,
	atom.Body:       true,
	atom.Caption:    true,
	atom.Col:        true,
	atom.Colgroup:   true,
	atom.Dd:         true,
	atom.Details:    true,
	atom.Dialog:     true,
	atom.Div:        true,
	atom.Dl:         true,
	atom.Dt:         true,
	atom.Fieldset:   true,
	atom.Figcaption: true,
	atom.Figure:     true,
	atom.Footer:     true,
	atom.Form:       true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Head:       true,
	atom.Header:     true,
	atom.Hr:         true,
	atom.Html:       true,
	atom.Iframe:     true,
	atom.Legend:     true,
	atom.Li:         true,
	atom.Link:       true,
	atom.Main:       true,
	atom.Meta:       true,
	atom.Nav:        true,
	atom.Noscript:   true,
	atom.Ol:         true,
	atom.P:          true,
	atom.Pre:        true,
	atom.Script:     true,
	atom.Section:    true,
	atom.Style:      true,
	atom.Summary:    true,
	atom.Table:      true,
	atom.Tbody:      true,
	atom.Td:         true,
	atom.Template:   true,
	atom.Textarea:   true,
	atom.Tfoot:      true,
	atom.Th:         true,
	atom.Thead:      true,
	atom.Title:      true,
	atom.Tr:         true,
	atom.Ul:         true,
}

// documentFormatter pretty-prints a complete HTML document into a stable,
// human-readable form. Formatting an already formatted document returns it
// unchanged.
type documentFormatter interface {
	// Format parses htmlContent, re-indents the tree, and returns the
	// serialized document terminated by a newline.
	Format(ctx context.Context, htmlContent string) (string, error)
}

// treeFormatter formats documents by rewriting inter-element whitespace on
// the parsed tree before serializing it back out.
type treeFormatter struct{}

// newTreeFormatter creates a documentFormatter.
func newTreeFormatter() *treeFormatter {
	return &treeFormatter{}
}

// Format implements documentFormatter.
func (f *treeFormatter) Format(ctx context.Context, htmlContent string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	f.indent(doc, 0)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

// indent walks the tree, padding the children of each paddable node. depth
// is the nesting level of n's children.
func (f *treeFormatter) indent(n *html.Node, depth int) {
	if n.Type == html.ElementNode && preserveContent[n.DataAtom] {
		return
	}
	if f.shouldPad(n) {
		f.padChildren(n, depth)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			f.indent(c, depth+1)
		}
	}
}

// shouldPad reports whether n's children may be separated onto their own
// lines. Any non-blank text or inline element among the children keeps the
// node untouched, since inserted whitespace would change its rendering.
func (f *treeFormatter) shouldPad(n *html.Node) bool {
	if n.Type == html.DocumentNode {
		return true
	}
	if n.Type != html.ElementNode {
		return false
	}

	hasBlock := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if !isBlankText(c.Data) {
				return false
			}
		case html.ElementNode:
			if !blockLevel[c.DataAtom] {
				return false
			}
			hasBlock = true
		}
	}

	if structuralContainer[n.DataAtom] {
		return true
	}
	return hasBlock
}

// padChildren rebuilds n's child list with canonical whitespace: existing
// blank text nodes are dropped and each remaining child is placed on its own
// indented line.
func (f *treeFormatter) padChildren(n *html.Node, depth int) {
	var kept []*html.Node
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		if c.Type != html.TextNode || !isBlankText(c.Data) {
			kept = append(kept, c)
		}
		c = next
	}

	if n.Type == html.DocumentNode {
		for i, c := range kept {
			if i > 0 {
				n.AppendChild(newTextNode("\n"))
			}
			n.AppendChild(c)
		}
		return
	}

	if len(kept) == 0 {
		return
	}
	childPad := "\n" + strings.Repeat(indentUnit, depth)
	for _, c := range kept {
		n.AppendChild(newTextNode(childPad))
		n.AppendChild(c)
	}
	n.AppendChild(newTextNode("\n" + strings.Repeat(indentUnit, depth-1)))
}

// isBlankText reports whether s contains only HTML inter-element whitespace.
func isBlankText(s string) bool {
	return strings.Trim(s, htmlWhitespace) == ""
}

func newTextNode(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

// Compile-time check that implementation satisfies the interface.
var _ documentFormatter = (*treeFormatter)(nil)
