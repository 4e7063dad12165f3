package msoffice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestParseInline - Span tree construction from a line of text
// ---------------------------------------------------------------------------

func TestParseInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []Span
	}{
		{
			name: "plain text",
			in:   "hello world",
			want: []Span{{Kind: SpanText, Text: "hello world"}},
		},
		{
			name: "bold",
			in:   "a **b** c",
			want: []Span{
				{Kind: SpanText, Text: "a "},
				{Kind: SpanBold, Children: []Span{{Kind: SpanText, Text: "b"}}},
				{Kind: SpanText, Text: " c"},
			},
		},
		{
			name: "italic inside bold",
			in:   "**bold *it* end**",
			want: []Span{
				{Kind: SpanBold, Children: []Span{
					{Kind: SpanText, Text: "bold "},
					{Kind: SpanItalic, Children: []Span{{Kind: SpanText, Text: "it"}}},
					{Kind: SpanText, Text: " end"},
				}},
			},
		},
		{
			name: "bold inside italic",
			in:   "*it **bold** end*",
			want: []Span{
				{Kind: SpanItalic, Children: []Span{
					{Kind: SpanText, Text: "it "},
					{Kind: SpanBold, Children: []Span{{Kind: SpanText, Text: "bold"}}},
					{Kind: SpanText, Text: " end"},
				}},
			},
		},
		{
			name: "inline code is a leaf",
			in:   "run `go **test**` now",
			want: []Span{
				{Kind: SpanText, Text: "run "},
				{Kind: SpanCode, Text: "go **test**"},
				{Kind: SpanText, Text: " now"},
			},
		},
		{
			name: "link",
			in:   "see [docs](https://example.com)",
			want: []Span{
				{Kind: SpanText, Text: "see "},
				{Kind: SpanLink, Text: "docs", URL: "https://example.com"},
			},
		},
		{
			name: "soft break splits segments",
			in:   "line one  \nline two",
			want: []Span{
				{Kind: SpanText, Text: "line one"},
				{Kind: SpanBreak},
				{Kind: SpanText, Text: "line two"},
			},
		},
		{
			name: "trailing soft break keeps the break span",
			in:   "only line  \n",
			want: []Span{
				{Kind: SpanText, Text: "only line"},
				{Kind: SpanBreak},
			},
		},
		{
			name: "escaped markers are literal",
			in:   `\*not italic\*`,
			want: []Span{{Kind: SpanText, Text: "*not italic*"}},
		},
		{
			name: "escape inside bold survives",
			in:   `**a\*b**`,
			want: []Span{
				{Kind: SpanBold, Children: []Span{{Kind: SpanText, Text: "a*b"}}},
			},
		},
		{
			name: "unterminated code marker stays literal",
			in:   "`dangling",
			want: []Span{{Kind: SpanText, Text: "`dangling"}},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseInline(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseInline(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseInlineNoDoubleNesting - A style never nests inside itself
// ---------------------------------------------------------------------------

func TestParseInlineNoDoubleNesting(t *testing.T) {
	t.Parallel()

	spans := parseInline("*outer *inner* end*")
	var walk func(spans []Span, italicDepth int)
	walk = func(spans []Span, italicDepth int) {
		for _, s := range spans {
			d := italicDepth
			if s.Kind == SpanItalic {
				d++
				if d > 1 {
					t.Fatalf("italic nested inside italic: %+v", spans)
				}
			}
			walk(s.Children, d)
		}
	}
	walk(spans, 0)
}

// ---------------------------------------------------------------------------
// TestFlattenText - Formatting stripped, breaks become newlines
// ---------------------------------------------------------------------------

func TestFlattenText(t *testing.T) {
	t.Parallel()

	in := "a **b** `c`  \n[d](http://e)"
	got := flattenText(parseInline(in))
	want := "a b c\nd"
	if got != want {
		t.Errorf("flattenText = %q, want %q", got, want)
	}
}
