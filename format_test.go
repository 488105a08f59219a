package md2page

import (
	"context"
	"strings"
	"testing"
)

func TestTreeFormatter_Format(t *testing.T) {
	t.Parallel()

	formatter := newTreeFormatter()
	ctx := context.Background()

	t.Run("condensed document gets indented", func(t *testing.T) {
		t.Parallel()

		input := `<!DOCTYPE html><html><head><title>T</title></head><body><h1>H</h1><p>x</p></body></html>`
		want := `<!DOCTYPE html>
<html>
  <head>
    <title>T</title>
  </head>
  <body>
    <h1>H</h1>
    <p>x</p>
  </body>
</html>
`

		got, err := formatter.Format(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("Format():\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("fragment is completed to a document", func(t *testing.T) {
		t.Parallel()

		want := `<html>
  <head></head>
  <body>
    <p>x</p>
  </body>
</html>
`

		got, err := formatter.Format(ctx, "<p>x</p>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("Format():\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("empty body stays empty", func(t *testing.T) {
		t.Parallel()

		input := `<!DOCTYPE html><html><head><title>x</title></head><body></body></html>`

		got, err := formatter.Format(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(got, "<body></body>") {
			t.Errorf("empty body should not gain whitespace\nGot:\n%s", got)
		}
	})

	t.Run("pre content untouched", func(t *testing.T) {
		t.Parallel()

		input := "<body><div><pre>line1\n  line2\n\nline4</pre></div></body>"

		got, err := formatter.Format(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(got, "<pre>line1\n  line2\n\nline4</pre>") {
			t.Errorf("pre content changed\nGot:\n%s", got)
		}
	})

	t.Run("inline runs keep exact spacing", func(t *testing.T) {
		t.Parallel()

		input := "<body><p>keep  <em>exact</em>spacing</p></body>"

		got, err := formatter.Format(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(got, "<p>keep  <em>exact</em>spacing</p>") {
			t.Errorf("inline spacing changed\nGot:\n%s", got)
		}
	})

	t.Run("tight and loose list items", func(t *testing.T) {
		t.Parallel()

		input := "<body><ul><li>tight</li><li><p>loose</p></li></ul></body>"

		got, err := formatter.Format(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(got, "<li>tight</li>") {
			t.Errorf("tight item should stay inline\nGot:\n%s", got)
		}
		if !strings.Contains(got, "<li>\n        <p>loose</p>\n      </li>") {
			t.Errorf("loose item should be padded\nGot:\n%s", got)
		}
	})

	t.Run("style content untouched", func(t *testing.T) {
		t.Parallel()

		input := "<head><style>\nbody { margin: 0; }\n</style></head>"

		got, err := formatter.Format(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(got, "<style>\nbody { margin: 0; }\n</style>") {
			t.Errorf("style content changed\nGot:\n%s", got)
		}
	})

	t.Run("output ends with newline", func(t *testing.T) {
		t.Parallel()

		got, err := formatter.Format(ctx, "<p>x</p>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(got, "</html>\n") {
			t.Errorf("missing trailing newline\nGot: %q", got)
		}
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := formatter.Format(cancelled, "<p>x</p>")
		if err != context.Canceled {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestTreeFormatter_Format_Idempotent(t *testing.T) {
	t.Parallel()

	formatter := newTreeFormatter()
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "full page",
			input: `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/><title>T</title></head><body><h1 id="t">T</h1><p>para</p></body></html>`,
		},
		{
			name:  "empty body",
			input: `<!DOCTYPE html><html><head><title>x</title></head><body></body></html>`,
		},
		{
			name:  "code block with trailing newlines",
			input: "<body><pre><code>const x = 1;\n\nconst y = 2;\n</code></pre></body>",
		},
		{
			name:  "nested lists",
			input: "<body><ul><li>a</li><li><ul><li>b</li></ul></li></ul></body>",
		},
		{
			name:  "table",
			input: "<body><table><thead><tr><th>A</th></tr></thead><tbody><tr><td>1</td></tr></tbody></table></body>",
		},
		{
			name:  "comment in body",
			input: "<body><!-- raw HTML omitted --><p>x</p></body>",
		},
		{
			name:  "mixed inline content",
			input: "<body><p>a <em>b</em> c</p><blockquote><p>quoted</p></blockquote></body>",
		},
		{
			name:  "already formatted",
			input: "<!DOCTYPE html>\n<html>\n  <head>\n    <title>T</title>\n  </head>\n  <body>\n    <p>x</p>\n  </body>\n</html>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			once, err := formatter.Format(ctx, tt.input)
			if err != nil {
				t.Fatalf("first Format() error: %v", err)
			}

			twice, err := formatter.Format(ctx, once)
			if err != nil {
				t.Fatalf("second Format() error: %v", err)
			}

			if once != twice {
				t.Errorf("Format() not idempotent:\nfirst:\n%q\nsecond:\n%q", once, twice)
			}
		})
	}
}

func TestIsBlankText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "empty", input: "", expected: true},
		{name: "spaces and tabs", input: "  \t ", expected: true},
		{name: "newlines", input: "\n\r\n", expected: true},
		{name: "form feed", input: "\f", expected: true},
		{name: "word", input: "x", expected: false},
		{name: "padded word", input: "  x  ", expected: false},
		{name: "non-breaking space is content", input: " ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isBlankText(tt.input); got != tt.expected {
				t.Errorf("isBlankText(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
