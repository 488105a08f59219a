package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across modes.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds page head metadata flags.
type documentFlags struct {
	title       string
	language    string
	description string
	stylesheets []string
	scripts     []string
}

// styleFlags holds inline styling and asset flags.
type styleFlags struct {
	name      string // style name or CSS file path to inline
	disabled  bool   // skip inline styling
	assetPath string // custom asset directory
	template  string // page template name
}

// highlightFlags holds syntax highlighting flags.
type highlightFlags struct {
	style      string // token color style for inlined CSS
	disabled   bool   // skip code block highlighting
	printCSS   bool   // print the token stylesheet and exit
	listStyles bool   // list token style names and exit
}

// convertFlags holds all flags for an invocation.
type convertFlags struct {
	common    commonFlags
	output    string
	workers   int
	document  documentFlags
	style     styleFlags
	highlight highlightFlags
	rawHTML   bool
	version   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addDocumentFlags adds head metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "page title (\"\" = \"Document\")")
	fs.StringVar(&f.language, "language", "", "html lang attribute (\"\" = \"en\")")
	fs.StringVar(&f.description, "description", "", "meta description")
	fs.StringArrayVar(&f.stylesheets, "stylesheet", nil, "stylesheet href to link (repeatable)")
	fs.StringArrayVar(&f.scripts, "script", nil, "script src to link (repeatable)")
}

// addStyleFlags adds styling and asset flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.name, "style", "", "style name or CSS file path to inline")
	fs.BoolVar(&f.disabled, "no-style", false, "disable inline styling")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.template, "template", "", "page template name")
}

// addHighlightFlags adds syntax highlighting flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.StringVar(&f.style, "highlight-style", "", "token color style for inlined CSS")
	fs.BoolVar(&f.disabled, "no-highlight", false, "disable code block highlighting")
	fs.BoolVar(&f.printCSS, "print-highlight-css", false, "print the token stylesheet and exit")
	fs.BoolVar(&f.listStyles, "list-highlight-styles", false, "list token style names and exit")
}

// parseFlags parses command line flags and returns positional args.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("md2page", flag.ContinueOnError)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addStyleFlags(fs, &f.style)
	addHighlightFlags(fs, &f.highlight)

	// Mode flags
	fs.BoolVar(&f.rawHTML, "raw-html", false, "render sanitized raw HTML blocks")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
