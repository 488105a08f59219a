package main

import (
	"errors"

	md2page "github.com/alnah/go-md2page"
	"github.com/alnah/go-md2page/internal/config"
	"github.com/alnah/go-md2page/internal/hints"
)

// hintFor returns an actionable hint for err, or "" when none applies.
// configName is the --config value used to reconstruct searched paths.
func hintFor(err error, configName string) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, md2page.ErrStyleNotFound):
		return hints.ForStyleNotFound([]string{md2page.DefaultStyle, md2page.TutorialStyle})
	case errors.Is(err, md2page.ErrUnknownHighlightStyle):
		return hints.ForUnknownHighlightStyle()
	case errors.Is(err, ErrInvalidExtension):
		return hints.ForMarkdownExtension()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
