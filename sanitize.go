package md2page

import (
	"context"

	"github.com/microcosm-cc/bluemonday"
)

// htmlSanitizer defines the contract for sanitizing rendered fragments.
type htmlSanitizer interface {
	Sanitize(ctx context.Context, htmlContent string) (string, error)
}

// ugcSanitizer strips dangerous markup from fragments rendered with raw
// HTML passthrough enabled.
type ugcSanitizer struct {
	policy *bluemonday.Policy
}

// newUGCSanitizer builds a user-generated-content policy extended with the
// attributes the rendering stages emit: token span classes, heading anchors,
// footnote ids, and task list checkboxes.
func newUGCSanitizer() *ugcSanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("a", "code", "div", "li", "pre", "span")
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6", "sup", "li", "div")
	policy.AllowAttrs("type", "checked", "disabled").OnElements("input")
	// The content is the author's own document, not third-party comments;
	// links keep their rel attributes as written.
	policy.RequireNoFollowOnLinks(false)
	return &ugcSanitizer{policy: policy}
}

// Sanitize filters the fragment through the policy.
func (s *ugcSanitizer) Sanitize(ctx context.Context, htmlContent string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.policy.Sanitize(htmlContent), nil
}

// Compile-time interface check.
var _ htmlSanitizer = (*ugcSanitizer)(nil)
