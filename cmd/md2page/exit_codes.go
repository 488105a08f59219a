package main

import (
	"errors"
	"os"

	md2page "github.com/alnah/go-md2page"
	"github.com/alnah/go-md2page/internal/config"
)

// Exit codes for the md2page CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrReadCSS) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrTooManyAssets) ||
		errors.Is(err, md2page.ErrFrontMatter) ||
		errors.Is(err, md2page.ErrFieldTooLong) ||
		errors.Is(err, md2page.ErrInvalidLanguage) ||
		errors.Is(err, md2page.ErrTooManyAssets) ||
		errors.Is(err, md2page.ErrUnknownHighlightStyle) ||
		errors.Is(err, md2page.ErrStyleNotFound) ||
		errors.Is(err, md2page.ErrTemplateNotFound) ||
		errors.Is(err, md2page.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}
