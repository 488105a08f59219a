package md2page

import (
	"fmt"
	"regexp"
)

// Default document metadata applied when fields are unset.
const (
	DefaultTitle      = "Document"
	DefaultLanguage   = "en"
	DefaultStylesheet = "style.css"
	DefaultScript     = "index.js"
)

// Field limits for document metadata.
const (
	MaxTitleLength       = 200  // <title> text
	MaxLanguageLength    = 35   // BCP 47 language tag
	MaxDescriptionLength = 500  // meta description
	MaxAssetRefLength    = 2048 // stylesheet/script reference (browser URL limit)
	MaxAssetRefs         = 20   // linked stylesheets or scripts per page
)

// languageTag matches hyphen-separated alphanumeric subtags (BCP 47 shape).
var languageTag = regexp.MustCompile(`^[A-Za-z0-9]+(-[A-Za-z0-9]+)*$`)

// Document describes the head metadata of a generated page.
//
// A nil Stylesheets or Scripts slice means "unset" and picks up the default
// reference; an empty non-nil slice means "explicitly none" and suppresses
// the links entirely.
type Document struct {
	Title       string   // <title> text (default: "Document")
	Language    string   // html lang attribute (default: "en")
	Description string   // meta description (optional)
	Stylesheets []string // linked stylesheet hrefs (default: ["style.css"])
	Scripts     []string // linked script srcs (default: ["index.js"])
}

// DefaultDocument returns document metadata with default values.
func DefaultDocument() Document {
	return Document{
		Title:       DefaultTitle,
		Language:    DefaultLanguage,
		Stylesheets: []string{DefaultStylesheet},
		Scripts:     []string{DefaultScript},
	}
}

// Validate checks document metadata against field limits.
// Returns nil if d is nil (nil means use defaults).
func (d *Document) Validate() error {
	if d == nil {
		return nil
	}

	if len(d.Title) > MaxTitleLength {
		return fmt.Errorf("%w: title (%d chars, max %d)", ErrFieldTooLong, len(d.Title), MaxTitleLength)
	}
	if len(d.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description (%d chars, max %d)", ErrFieldTooLong, len(d.Description), MaxDescriptionLength)
	}
	if len(d.Language) > MaxLanguageLength {
		return fmt.Errorf("%w: language (%d chars, max %d)", ErrFieldTooLong, len(d.Language), MaxLanguageLength)
	}
	if d.Language != "" && !languageTag.MatchString(d.Language) {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, d.Language)
	}

	if err := validateAssetRefs("stylesheets", d.Stylesheets); err != nil {
		return err
	}
	return validateAssetRefs("scripts", d.Scripts)
}

// validateAssetRefs checks the count and length of asset references.
func validateAssetRefs(field string, refs []string) error {
	if len(refs) > MaxAssetRefs {
		return fmt.Errorf("%w: %s (%d entries, max %d)", ErrTooManyAssets, field, len(refs), MaxAssetRefs)
	}
	for i, ref := range refs {
		if len(ref) > MaxAssetRefLength {
			return fmt.Errorf("%w: %s[%d] (%d chars, max %d)", ErrFieldTooLong, field, i, len(ref), MaxAssetRefLength)
		}
	}
	return nil
}

// withDefaults returns a copy with unset fields replaced by defaults.
func (d Document) withDefaults() Document {
	if d.Title == "" {
		d.Title = DefaultTitle
	}
	if d.Language == "" {
		d.Language = DefaultLanguage
	}
	if d.Stylesheets == nil {
		d.Stylesheets = []string{DefaultStylesheet}
	}
	if d.Scripts == nil {
		d.Scripts = []string{DefaultScript}
	}
	return d
}

// Input contains rendering parameters.
type Input struct {
	Markdown string    // Markdown content (may be empty; an empty body still yields a full page)
	Document *Document // Head metadata (optional, nil = service document + front matter)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	doc            Document
	inlineCSS      string
	highlightStyle string
	templateHTML   string
	rawHTML        bool
	noHighlight    bool
}

// WithDocument sets the service-level document metadata used when a render
// input carries none of its own.
func WithDocument(doc Document) Option {
	return func(s *Service) {
		s.cfg.doc = doc
	}
}

// WithInlineStyle inlines the given CSS into a <style> block in the head.
func WithInlineStyle(css string) Option {
	return func(s *Service) {
		s.cfg.inlineCSS = css
	}
}

// WithHighlightStyle inlines the token color stylesheet for the named style
// into the generated page. Unknown names surface as ErrUnknownHighlightStyle
// on the first Render call.
func WithHighlightStyle(name string) Option {
	return func(s *Service) {
		s.cfg.highlightStyle = name
	}
}

// WithTemplate replaces the embedded page template. The template receives
// Language, Title, Description, Stylesheets, Scripts, InlineCSS, and Content
// fields. Parse errors surface on the first Render call.
func WithTemplate(tmpl string) Option {
	return func(s *Service) {
		s.cfg.templateHTML = tmpl
	}
}

// WithRawHTML passes raw HTML blocks in the Markdown through to the output
// after sanitization. Without this option raw HTML is omitted.
func WithRawHTML() Option {
	return func(s *Service) {
		s.cfg.rawHTML = true
	}
}

// WithoutHighlight disables syntax highlighting of fenced code blocks.
// Code blocks still render as escaped verbatim text.
func WithoutHighlight() Option {
	return func(s *Service) {
		s.cfg.noHighlight = true
	}
}
