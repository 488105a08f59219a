package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2page [flags] [input ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render Markdown into complete, styled, highlighted HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With no input arguments, reads Markdown from stdin and writes the page")
	fmt.Fprintln(w, "to stdout. Input arguments name Markdown files or directories to render")
	fmt.Fprintln(w, "to .html files next to the sources or under --output.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>             Page title (default: \"Document\")")
	fmt.Fprintln(w, "      --language <s>          html lang attribute (default: \"en\")")
	fmt.Fprintln(w, "      --description <s>       Meta description")
	fmt.Fprintln(w, "      --stylesheet <href>     Stylesheet link, repeatable (default: style.css)")
	fmt.Fprintln(w, "      --script <src>          Deferred script, repeatable (default: index.js)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>     Style name or CSS file to inline")
	fmt.Fprintln(w, "      --no-style              Disable inline styling")
	fmt.Fprintln(w, "      --template <name>       Page template name")
	fmt.Fprintln(w, "      --asset-path <dir>      Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "      --highlight-style <s>   Token color style to inline (e.g., github)")
	fmt.Fprintln(w, "      --no-highlight          Disable code block highlighting")
	fmt.Fprintln(w, "      --print-highlight-css   Print the token stylesheet and exit")
	fmt.Fprintln(w, "      --list-highlight-styles List token style names and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --raw-html              Render sanitized raw HTML blocks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed timing")
	fmt.Fprintln(w, "      --version               Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit Codes:")
	fmt.Fprintln(w, "  0  Success")
	fmt.Fprintln(w, "  1  General error")
	fmt.Fprintln(w, "  2  Usage error (invalid flags, config, validation)")
	fmt.Fprintln(w, "  3  I/O error (file not found, permission denied)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  md2page < tutorial.md > tutorial.html")
	fmt.Fprintln(w, "  md2page tutorial.md")
	fmt.Fprintln(w, "  md2page ./docs/ -o ./public/")
	fmt.Fprintln(w, "  md2page --style tutorial --highlight-style github tutorial.md")
	fmt.Fprintln(w, "  md2page -c work ./docs/")
}
