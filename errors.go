package md2page

import "errors"

// Sentinel errors for library operations.
var (
	ErrFragmentRender        = errors.New("markdown rendering failed")
	ErrTemplateRender        = errors.New("page template rendering failed")
	ErrSerialize             = errors.New("HTML serialization failed")
	ErrFrontMatter           = errors.New("invalid front matter")
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")

	// Document validation errors.
	ErrFieldTooLong    = errors.New("document field exceeds maximum length")
	ErrInvalidLanguage = errors.New("invalid language tag")
	ErrTooManyAssets   = errors.New("too many asset references")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
