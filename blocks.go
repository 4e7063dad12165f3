package msoffice

import (
	"regexp"
	"strings"
)

// Precompiled block-level patterns.
var (
	// Line ending normalization.
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// List item markers (ordered and unordered).
	orderedItemMarker   = regexp.MustCompile(`^\d+\.\s+`)
	unorderedItemMarker = regexp.MustCompile(`^[-*+]\s+`)

	// List item markers with the item text captured.
	orderedItemText   = regexp.MustCompile(`^\d+\.\s+(.+)`)
	unorderedItemText = regexp.MustCompile(`^[-*+]\s+(.+)`)

	// Heading marker (ATX style) for block-content detection.
	headingMarker = regexp.MustCompile(`^#{1,6}\s`)
)

// BlockKind discriminates block nodes.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockQuote
	BlockListItem
	BlockTable
)

// Block is a structural markdown unit in document order.
//
// Level holds the heading level (1-6) for BlockHeading and the nesting
// level for BlockListItem. Children is the nested block list of a list
// item; Rows the cell grid of a table, one span tree per cell. A
// BlockParagraph with nil Inline renders as an empty spacing paragraph.
type Block struct {
	Kind     BlockKind
	Level    int
	Ordered  bool
	Soft     bool // assembled from soft-break-joined lines
	Inline   []Span
	Children []Block
	Rows     [][][]Span
}

// parseBlocks consumes the whole document in a single forward pass and
// returns its block sequence. Like the inline stage, this never fails:
// anything unrecognized is a plain paragraph.
func parseBlocks(content string, indentUnit int) []Block {
	if indentUnit <= 0 {
		indentUnit = DefaultListIndent
	}
	p := &blockParser{
		lines:  strings.Split(crlfOrCR.ReplaceAllString(content, "\n"), "\n"),
		indent: indentUnit,
	}
	return p.parse()
}

type blockParser struct {
	lines  []string
	indent int
}

func (p *blockParser) parse() []Block {
	var blocks []Block
	i := 0
	for i < len(p.lines) {
		line := p.lines[i]
		trimmed := strings.TrimSpace(line)

		// Runs of blank lines: one blank separates paragraphs, n >= 2
		// blanks keep n-1 empty paragraphs of vertical spacing.
		if trimmed == "" {
			blanks := 0
			for i < len(p.lines) && strings.TrimSpace(p.lines[i]) == "" {
				blanks++
				i++
			}
			for b := 1; b < blanks; b++ {
				blocks = append(blocks, Block{Kind: BlockParagraph})
			}
			continue
		}

		// A line ending in two spaces starts a soft-break paragraph:
		// consume non-blank lines until one does not itself end in the
		// marker (that line is included). The first physical line
		// decides the node kind.
		if strings.HasSuffix(line, softBreakSuffix) {
			var run []string
			for i < len(p.lines) {
				cur := p.lines[i]
				if strings.TrimSpace(cur) == "" {
					break
				}
				run = append(run, cur)
				i++
				if !strings.HasSuffix(cur, softBreakSuffix) {
					break
				}
			}
			full := strings.Join(run, softBreak)
			first := strings.TrimSpace(run[0])
			switch {
			case strings.HasPrefix(first, "#"):
				blocks = append(blocks, headingBlock(first))
			case strings.HasPrefix(first, ">"):
				blocks = append(blocks, Block{
					Kind:   BlockQuote,
					Soft:   true,
					Inline: parseInline(strings.TrimSpace(full[1:])),
				})
			default:
				blocks = append(blocks, Block{
					Kind:   BlockParagraph,
					Soft:   true,
					Inline: parseInline(full),
				})
			}
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "#"):
			blocks = append(blocks, headingBlock(trimmed))
			i++

		case strings.HasPrefix(trimmed, "|"):
			tbl, next := p.parseTable(i)
			if tbl != nil {
				blocks = append(blocks, *tbl)
			}
			i = next

		case orderedItemMarker.MatchString(trimmed):
			items, next := p.parseList(i, true, 0)
			if next == i {
				// Indented first item with no parent list: literal text.
				blocks = append(blocks, Block{Kind: BlockParagraph, Inline: parseInline(trimmed)})
				i++
				continue
			}
			blocks = append(blocks, items...)
			i = next

		case unorderedItemMarker.MatchString(trimmed):
			items, next := p.parseList(i, false, 0)
			if next == i {
				blocks = append(blocks, Block{Kind: BlockParagraph, Inline: parseInline(trimmed)})
				i++
				continue
			}
			blocks = append(blocks, items...)
			i = next

		case strings.HasPrefix(trimmed, "---") || strings.HasPrefix(trimmed, "***"):
			// Visual divider: renders as an empty paragraph.
			blocks = append(blocks, Block{Kind: BlockParagraph})
			i++

		case strings.HasPrefix(trimmed, ">"):
			blocks = append(blocks, Block{
				Kind:   BlockQuote,
				Inline: parseInline(strings.TrimSpace(trimmed[1:])),
			})
			i++

		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Inline: parseInline(trimmed)})
			i++
		}
	}
	return blocks
}

// headingBlock builds a heading from a single line, clamping the level
// into [1, 6] regardless of how many markers the line carries.
func headingBlock(line string) Block {
	level := len(line) - len(strings.TrimLeft(line, "#"))
	if level > 6 {
		level = 6
	}
	return Block{
		Kind:   BlockHeading,
		Level:  level,
		Inline: parseInline(strings.TrimSpace(strings.TrimLeft(line, "#"))),
	}
}

// parseTable consumes contiguous pipe-delimited lines starting at i. A
// table needs at least a header and a separator row; the separator row is
// decoration and never becomes a cell row. Anything shorter is dropped.
func (p *blockParser) parseTable(i int) (*Block, int) {
	var tableLines []string
	j := i
	for j < len(p.lines) {
		t := strings.TrimSpace(p.lines[j])
		if strings.HasPrefix(t, "|") && strings.HasSuffix(t, "|") {
			tableLines = append(tableLines, t)
			j++
			continue
		}
		break
	}
	if len(tableLines) < 2 {
		return nil, i + 1
	}

	var rows [][][]Span
	for _, line := range tableLines {
		if isTableSeparator(line) {
			continue
		}
		parts := strings.Split(line, "|")
		cells := parts[1 : len(parts)-1]
		row := make([][]Span, 0, len(cells))
		for _, c := range cells {
			row = append(row, parseInline(strings.TrimSpace(c)))
		}
		rows = append(rows, row)
	}
	return &Block{Kind: BlockTable, Rows: rows}, j
}

func isTableSeparator(line string) bool {
	return strings.Contains(line, "---") ||
		strings.Contains(line, ":-:") ||
		strings.Contains(line, ":--") ||
		strings.Contains(line, "--:")
}

// parseList consumes list items at the given nesting level, recursing for
// deeper lines. An item whose indent-derived level differs from the
// expected one belongs to an ancestor and returns control to the caller.
func (p *blockParser) parseList(i int, ordered bool, level int) ([]Block, int) {
	var items []Block
	for i < len(p.lines) {
		line := p.lines[i]
		trimmed := strings.TrimSpace(line)

		if indentLevel(line, p.indent) != level {
			break
		}

		pattern := unorderedItemText
		if ordered {
			pattern = orderedItemText
		}
		m := pattern.FindStringSubmatch(trimmed)
		if m == nil {
			break
		}

		item := Block{
			Kind:    BlockListItem,
			Ordered: ordered,
			Level:   level,
			Inline:  parseInline(m[1]),
		}
		i++

		// Look ahead: blank lines are skipped, deeper lines recurse as a
		// nested list (ordered or unordered independent of this list's
		// kind), anything else returns to the loop or the caller.
	lookahead:
		for i < len(p.lines) {
			next := p.lines[i]
			nextTrimmed := strings.TrimSpace(next)
			if nextTrimmed == "" {
				i++
				continue
			}
			nextLevel := indentLevel(next, p.indent)
			switch {
			case nextLevel > level && orderedItemMarker.MatchString(nextTrimmed):
				var kids []Block
				kids, i = p.parseList(i, true, nextLevel)
				item.Children = append(item.Children, kids...)
			case nextLevel > level && unorderedItemMarker.MatchString(nextTrimmed):
				var kids []Block
				kids, i = p.parseList(i, false, nextLevel)
				item.Children = append(item.Children, kids...)
			default:
				break lookahead
			}
		}

		items = append(items, item)
	}
	return items, i
}

// indentLevel derives a list nesting level from leading whitespace width.
func indentLevel(line string, unit int) int {
	return (len(line) - len(strings.TrimLeft(line, " \t"))) / unit
}
