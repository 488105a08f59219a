package md2page

import (
	"errors"
	"reflect"
	"testing"
)

func TestExtractFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantMeta *frontMatter
		wantBody string
		wantErr  error
	}{
		{
			name:     "no front matter",
			input:    "# Title\n\nBody text.\n",
			wantMeta: nil,
			wantBody: "# Title\n\nBody text.\n",
		},
		{
			name:     "empty input",
			input:    "",
			wantMeta: nil,
			wantBody: "",
		},
		{
			name:     "title only",
			input:    "---\ntitle: IndexedDB Tutorial\n---\n# Intro\n",
			wantMeta: &frontMatter{Title: "IndexedDB Tutorial"},
			wantBody: "# Intro\n",
		},
		{
			name: "all fields",
			input: "---\n" +
				"title: Storage Guide\n" +
				"language: en-US\n" +
				"description: Browser-side persistence.\n" +
				"stylesheets:\n  - style.css\n  - print.css\n" +
				"scripts:\n  - index.js\n" +
				"---\nBody.\n",
			wantMeta: &frontMatter{
				Title:       "Storage Guide",
				Language:    "en-US",
				Description: "Browser-side persistence.",
				Stylesheets: []string{"style.css", "print.css"},
				Scripts:     []string{"index.js"},
			},
			wantBody: "Body.\n",
		},
		{
			name:     "flow sequence lists",
			input:    "---\ntitle: X\nstylesheets: [a.css, b.css]\n---\n",
			wantMeta: &frontMatter{Title: "X", Stylesheets: []string{"a.css", "b.css"}},
			wantBody: "",
		},
		{
			name:     "closing delimiter at EOF without newline",
			input:    "---\ntitle: X\n---",
			wantMeta: &frontMatter{Title: "X"},
			wantBody: "",
		},
		{
			name:     "unclosed block is content",
			input:    "---\ntitle: X\n",
			wantMeta: nil,
			wantBody: "---\ntitle: X\n",
		},
		{
			name:     "empty block is two thematic breaks",
			input:    "---\n---\nBody.\n",
			wantMeta: nil,
			wantBody: "---\n---\nBody.\n",
		},
		{
			name:     "block without mapping line is content",
			input:    "---\njust text\n---\nBody.\n",
			wantMeta: nil,
			wantBody: "---\njust text\n---\nBody.\n",
		},
		{
			name:     "document opening with thematic break",
			input:    "---\n\n# After a horizontal rule\n",
			wantMeta: nil,
			wantBody: "---\n\n# After a horizontal rule\n",
		},
		{
			name:     "yaml comment before first key",
			input:    "---\n# page metadata\ntitle: X\n---\nBody.\n",
			wantMeta: &frontMatter{Title: "X"},
			wantBody: "Body.\n",
		},
		{
			name:    "metadata-like block with invalid yaml",
			input:   "---\ntitle: [unclosed\n---\nBody.\n",
			wantErr: ErrFrontMatter,
		},
		{
			name:     "unknown keys tolerated",
			input:    "---\ntitle: X\ndate: 2024-01-01\n---\nBody.\n",
			wantMeta: &frontMatter{Title: "X"},
			wantBody: "Body.\n",
		},
		{
			name:     "later thematic breaks untouched",
			input:    "---\ntitle: X\n---\nabove\n\n---\n\nbelow\n",
			wantMeta: &frontMatter{Title: "X"},
			wantBody: "above\n\n---\n\nbelow\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta, body, err := extractFrontMatter(tt.input)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(meta, tt.wantMeta) {
				t.Errorf("meta = %+v, want %+v", meta, tt.wantMeta)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestLooksLikeMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		block    string
		expected bool
	}{
		{name: "mapping line", block: "title: X", expected: true},
		{name: "empty block", block: "", expected: false},
		{name: "blank lines only", block: "\n\n", expected: false},
		{name: "plain text", block: "just words", expected: false},
		{name: "comment then mapping", block: "# meta\ntitle: X", expected: true},
		{name: "comment only", block: "# meta", expected: false},
		{name: "leading blank then mapping", block: "\ntitle: X", expected: true},
		{name: "colon later in block only", block: "text\ntitle: X", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := looksLikeMetadata(tt.block); got != tt.expected {
				t.Errorf("looksLikeMetadata(%q) = %v, want %v", tt.block, got, tt.expected)
			}
		})
	}
}

func TestApplyFrontMatter(t *testing.T) {
	t.Parallel()

	base := Document{
		Title:       "Base",
		Language:    "en",
		Stylesheets: []string{"base.css"},
		Scripts:     []string{"base.js"},
	}

	t.Run("nil meta leaves document unchanged", func(t *testing.T) {
		t.Parallel()

		got := applyFrontMatter(base, nil)
		if !reflect.DeepEqual(got, base) {
			t.Errorf("document changed: %+v", got)
		}
	})

	t.Run("non-empty scalars override", func(t *testing.T) {
		t.Parallel()

		got := applyFrontMatter(base, &frontMatter{Title: "Over", Language: "fr"})
		if got.Title != "Over" || got.Language != "fr" {
			t.Errorf("got %+v", got)
		}
		if !reflect.DeepEqual(got.Stylesheets, base.Stylesheets) {
			t.Errorf("Stylesheets changed: %v", got.Stylesheets)
		}
	})

	t.Run("empty scalars keep base values", func(t *testing.T) {
		t.Parallel()

		got := applyFrontMatter(base, &frontMatter{Description: "d"})
		if got.Title != "Base" || got.Language != "en" {
			t.Errorf("base scalars lost: %+v", got)
		}
		if got.Description != "d" {
			t.Errorf("Description = %q, want d", got.Description)
		}
	})

	t.Run("present lists override including empty", func(t *testing.T) {
		t.Parallel()

		got := applyFrontMatter(base, &frontMatter{Stylesheets: []string{}})
		if got.Stylesheets == nil || len(got.Stylesheets) != 0 {
			t.Errorf("Stylesheets = %v, want empty non-nil", got.Stylesheets)
		}
		if !reflect.DeepEqual(got.Scripts, base.Scripts) {
			t.Errorf("Scripts changed: %v", got.Scripts)
		}
	})
}
