package msoffice

import (
	"regexp"
	"strconv"
	"strings"
)

// softBreak is the dialect's explicit line-break marker: two trailing
// spaces before a newline.
const (
	softBreak       = "  \n"
	softBreakSuffix = "  "
)

// Precompiled inline patterns.
var (
	// Backslash-escaped character.
	escapedChar = regexp.MustCompile(`\\(.)`)

	// Internal placeholder protecting an escaped character from marker
	// interpretation. NUL framing cannot collide with document text.
	escapeToken = regexp.MustCompile("\x00e([0-9]+)\x00")

	// The four inline markers, tried left to right at each position:
	// bold, italic, inline code, link. All non-greedy.
	inlineMarker = regexp.MustCompile("\\*\\*.*?\\*\\*|\\*.*?\\*|`.*?`|\\[.*?]\\(.*?\\)")

	// Link body: [text](url).
	linkParts = regexp.MustCompile(`\[(.*?)]\((.*?)\)`)
)

// SpanKind discriminates span tree nodes.
type SpanKind int

const (
	SpanText SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
	SpanBreak
)

// Span is a node of the inline formatting tree. Text is set for SpanText,
// SpanCode and SpanLink (the link label); URL only for SpanLink; Children
// only for SpanBold and SpanItalic. Code and link nodes are always leaves.
type Span struct {
	Kind     SpanKind
	Text     string
	URL      string
	Children []Span
}

// inlineContext tracks which styles are already open. The parser is
// invoked recursively on marker interiors with the matched style set, so a
// bold span may contain an italic child and vice versa, but never a second
// level of the same style: a marker whose style is already open falls back
// to literal text.
type inlineContext struct {
	bold   bool
	italic bool
}

// parseInline turns a line of text into a span tree. This stage is total:
// unterminated or malformed markers degrade to literal text.
func parseInline(text string) []Span {
	protected, saved := protectEscapes(text)
	spans := parseSegments(protected, inlineContext{})
	restoreEscapes(spans, saved)
	return spans
}

// parseSegments splits on soft line breaks and scans each segment
// independently. A segment ending in a soft break is followed by an
// explicit break span.
func parseSegments(text string, ctx inlineContext) []Span {
	segments := strings.Split(text, softBreak)
	var spans []Span
	for i, seg := range segments {
		if seg == "" && i == len(segments)-1 {
			// Trailing soft break: the break span is already emitted.
			continue
		}
		spans = append(spans, scanSegment(seg, ctx)...)
		if i < len(segments)-1 {
			spans = append(spans, Span{Kind: SpanBreak})
		}
	}
	return spans
}

// scanSegment repeatedly matches the first inline marker left to right;
// text between markers is plain.
func scanSegment(text string, ctx inlineContext) []Span {
	var spans []Span
	for text != "" {
		loc := inlineMarker.FindStringIndex(text)
		if loc == nil {
			spans = append(spans, Span{Kind: SpanText, Text: text})
			break
		}
		if loc[0] > 0 {
			spans = append(spans, Span{Kind: SpanText, Text: text[:loc[0]]})
		}
		spans = append(spans, classifyMarker(text[loc[0]:loc[1]], ctx))
		text = text[loc[1]:]
	}
	return spans
}

// classifyMarker builds the span for a single marker match.
func classifyMarker(m string, ctx inlineContext) Span {
	switch {
	case strings.HasPrefix(m, "**") && strings.HasSuffix(m, "**") && len(m) >= 4:
		if ctx.bold {
			return Span{Kind: SpanText, Text: m}
		}
		inner := m[2 : len(m)-2]
		return Span{Kind: SpanBold, Children: scanSegment(inner, inlineContext{bold: true, italic: ctx.italic})}
	case strings.HasPrefix(m, "*"):
		if ctx.italic {
			return Span{Kind: SpanText, Text: m}
		}
		inner := m[1 : len(m)-1]
		return Span{Kind: SpanItalic, Children: scanSegment(inner, inlineContext{bold: ctx.bold, italic: true})}
	case strings.HasPrefix(m, "`"):
		return Span{Kind: SpanCode, Text: m[1 : len(m)-1]}
	default:
		parts := linkParts.FindStringSubmatch(m)
		if parts == nil {
			return Span{Kind: SpanText, Text: m}
		}
		return Span{Kind: SpanLink, Text: parts[1], URL: parts[2]}
	}
}

// protectEscapes replaces every backslash-escaped character with an
// internal placeholder so marker matching never sees it, recording the
// original characters for restoration.
func protectEscapes(text string) (string, []string) {
	if !strings.Contains(text, `\`) {
		return text, nil
	}
	var saved []string
	out := escapedChar.ReplaceAllStringFunc(text, func(m string) string {
		saved = append(saved, m[1:])
		return "\x00e" + strconv.Itoa(len(saved)-1) + "\x00"
	})
	return out, saved
}

// restoreEscapes puts escaped characters back into every text-bearing
// leaf. Structure is already fixed at this point, so a restored marker
// character is literal text.
func restoreEscapes(spans []Span, saved []string) {
	if len(saved) == 0 {
		return
	}
	for i := range spans {
		spans[i].Text = restoreEscapeTokens(spans[i].Text, saved)
		spans[i].URL = restoreEscapeTokens(spans[i].URL, saved)
		restoreEscapes(spans[i].Children, saved)
	}
}

func restoreEscapeTokens(s string, saved []string) string {
	if !strings.Contains(s, "\x00") {
		return s
	}
	return escapeToken.ReplaceAllStringFunc(s, func(m string) string {
		sub := escapeToken.FindStringSubmatch(m)
		idx, err := strconv.Atoi(sub[1])
		if err != nil || idx >= len(saved) {
			return m
		}
		return saved[idx]
	})
}

// flattenText strips all formatting from a span tree, rendering breaks as
// newlines. Used by tests and error messages.
func flattenText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case SpanBreak:
			b.WriteString("\n")
		case SpanBold, SpanItalic:
			b.WriteString(flattenText(s.Children))
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
