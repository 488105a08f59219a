package md2page

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-md2page/internal/assets"
)

// pageData feeds the page template.
type pageData struct {
	Language    string
	Title       string
	Description string
	Stylesheets []string
	Scripts     []string
	InlineCSS   template.CSS
	Content     template.HTML
}

// documentWrapper defines the contract for wrapping a fragment in a full
// document skeleton.
type documentWrapper interface {
	WrapDocument(ctx context.Context, fragment string, doc Document, inlineCSS string) (string, error)
}

// templateWrapper renders the document skeleton with html/template.
type templateWrapper struct {
	tmpl     *template.Template
	parseErr error
}

// newTemplateWrapper creates a templateWrapper. With an empty custom
// template the embedded page template is used; a failure to load or parse
// it panics (programmer error). Parse errors in a caller-provided template
// are deferred to the first WrapDocument call.
func newTemplateWrapper(custom string) *templateWrapper {
	content := custom
	embedded := content == ""
	if embedded {
		loaded, err := assets.LoadTemplate(assets.DefaultTemplateName)
		if err != nil {
			panic("failed to load page template: " + err.Error())
		}
		content = loaded
	}

	tmpl, err := template.New("page").Parse(content)
	if err != nil {
		if embedded {
			panic("failed to parse page template: " + err.Error())
		}
		return &templateWrapper{parseErr: fmt.Errorf("%w: %v", ErrTemplateRender, err)}
	}

	return &templateWrapper{tmpl: tmpl}
}

// WrapDocument renders the document skeleton around the fragment.
// Head metadata comes from doc; inlineCSS, when non-empty, becomes a
// <style> block after the stylesheet links.
func (w *templateWrapper) WrapDocument(ctx context.Context, fragment string, doc Document, inlineCSS string) (string, error) {
	if w.parseErr != nil {
		return "", w.parseErr
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := pageData{
		Language:    doc.Language,
		Title:       doc.Title,
		Description: doc.Description,
		Stylesheets: doc.Stylesheets,
		Scripts:     doc.Scripts,
		InlineCSS:   template.CSS(sanitizeCSS(inlineCSS)), // #nosec G203 -- CSS from embedded or operator-chosen files
		Content:     template.HTML(fragment),              // #nosec G203 -- fragment produced by the rendering stages
	}

	var buf bytes.Buffer
	if err := w.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Compile-time interface check.
var _ documentWrapper = (*templateWrapper)(nil)
