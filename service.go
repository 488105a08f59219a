package md2page

import (
	"context"
	"fmt"
)

// Service orchestrates the markdown-to-HTML-page pipeline.
type Service struct {
	cfg          serviceConfig
	initErr      error
	preprocessor markdownPreprocessor
	converter    fragmentConverter
	sanitizer    htmlSanitizer
	wrapper      documentWrapper
	formatter    documentFormatter
	tokenCSS     string
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithDocument, WithHighlightStyle).
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}

	s.preprocessor = &commonMarkPreprocessor{}
	s.converter = newGoldmarkConverter(s.cfg.rawHTML, !s.cfg.noHighlight)
	s.sanitizer = newUGCSanitizer()
	s.wrapper = newTemplateWrapper(s.cfg.templateHTML)
	s.formatter = newTreeFormatter()

	// Token colors are inlined only for an explicitly requested style; the
	// default leaves coloring to the linked stylesheet. Unknown names are
	// reported on the first Render call.
	if s.cfg.highlightStyle != "" && !s.cfg.noHighlight {
		css, err := HighlightStylesheet(s.cfg.highlightStyle)
		if err != nil {
			s.initErr = err
		}
		s.tokenCSS = css
	}

	return s
}

// Render runs the full pipeline and returns the HTML page as a string.
// The context is used for cancellation and timeout. Empty Markdown is
// valid and produces a page with an empty body.
func (s *Service) Render(ctx context.Context, input Input) (string, error) {
	if s.initErr != nil {
		return "", s.initErr
	}

	// Preprocess markdown
	mdContent := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	// Split off YAML front matter
	meta, body, err := extractFrontMatter(mdContent)
	if err != nil {
		return "", err
	}

	// Resolve document metadata: front matter overrides the input document,
	// which overrides the service-level document.
	doc := s.cfg.doc
	if input.Document != nil {
		doc = *input.Document
	}
	doc = applyFrontMatter(doc, meta).withDefaults()
	if err := doc.Validate(); err != nil {
		return "", err
	}

	// Convert to an HTML fragment
	fragment, err := s.converter.ToFragment(ctx, body)
	if err != nil {
		return "", fmt.Errorf("rendering fragment: %w", err)
	}

	// Sanitize raw HTML passed through from the markdown
	if s.cfg.rawHTML {
		fragment, err = s.sanitizer.Sanitize(ctx, fragment)
		if err != nil {
			return "", fmt.Errorf("sanitizing fragment: %w", err)
		}
	}

	// Wrap in the page skeleton
	page, err := s.wrapper.WrapDocument(ctx, fragment, doc, s.inlineCSS())
	if err != nil {
		return "", fmt.Errorf("wrapping document: %w", err)
	}

	// Pretty-print the final document
	page, err = s.formatter.Format(ctx, page)
	if err != nil {
		return "", fmt.Errorf("formatting document: %w", err)
	}

	return page, nil
}

// inlineCSS combines user CSS and highlight token CSS for the <style> block.
// Page styles come first so token colors are not overridden by resets.
func (s *Service) inlineCSS() string {
	switch {
	case s.cfg.inlineCSS == "":
		return s.tokenCSS
	case s.tokenCSS == "":
		return s.cfg.inlineCSS
	default:
		return s.cfg.inlineCSS + "\n" + s.tokenCSS
	}
}
