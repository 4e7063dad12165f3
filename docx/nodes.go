package docx

import "strings"

// Run is the smallest unit of styled text inside a paragraph.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Font   string // empty = inherit from style
	Size   int    // half-points, 0 = inherit from style
	Link   string // hyperlink target URL; non-empty renders as a hyperlink run
	Break  bool   // explicit line break; Text is ignored when set
}

// Paragraph is a body node holding a flat list of runs.
type Paragraph struct {
	Style string
	Runs  []*Run
}

func (p *Paragraph) node() {}

// NewParagraph creates a detached paragraph with the given style. Attach it
// with Document.InsertAt.
func NewParagraph(style string) *Paragraph {
	return &Paragraph{Style: style}
}

// AddRun appends a text run and returns it for further property setting.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{Text: text}
	p.Runs = append(p.Runs, r)
	return r
}

// AddBreak appends an explicit line break run.
func (p *Paragraph) AddBreak() *Run {
	r := &Run{Break: true}
	p.Runs = append(p.Runs, r)
	return r
}

// ClearRuns removes all runs, keeping the paragraph and its style in place.
func (p *Paragraph) ClearRuns() {
	p.Runs = nil
}

// Text returns the concatenated visible text of all runs. Break runs
// contribute nothing; callers that need run boundaries must walk Runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		if r.Break {
			continue
		}
		b.WriteString(r.Text)
	}
	return b.String()
}

func (p *Paragraph) clone() *Paragraph {
	c := &Paragraph{Style: p.Style, Runs: make([]*Run, len(p.Runs))}
	for i, r := range p.Runs {
		rc := *r
		c.Runs[i] = &rc
	}
	return c
}

// Cell is a single table cell holding one or more paragraphs.
type Cell struct {
	Paragraphs []*Paragraph
}

// Paragraph returns the cell's first paragraph, creating it if the cell is
// empty.
func (c *Cell) Paragraph() *Paragraph {
	if len(c.Paragraphs) == 0 {
		c.Paragraphs = append(c.Paragraphs, &Paragraph{})
	}
	return c.Paragraphs[0]
}

func (c *Cell) clone() *Cell {
	cc := &Cell{Paragraphs: make([]*Paragraph, len(c.Paragraphs))}
	for i, p := range c.Paragraphs {
		cc.Paragraphs[i] = p.clone()
	}
	return cc
}

// Table is a body node holding a grid of cells.
type Table struct {
	Style string
	Rows  [][]*Cell
}

func (t *Table) node() {}

// NewTable creates a rows×cols table with empty cells and the default grid
// style.
func NewTable(rows, cols int) *Table {
	t := &Table{Style: StyleTableGrid}
	for r := 0; r < rows; r++ {
		row := make([]*Cell, cols)
		for c := 0; c < cols; c++ {
			row[c] = &Cell{}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Cell returns the cell at (row, col), or nil if out of range.
func (t *Table) Cell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return t.Rows[row][col]
}

func (t *Table) clone() *Table {
	c := &Table{Style: t.Style, Rows: make([][]*Cell, len(t.Rows))}
	for i, row := range t.Rows {
		c.Rows[i] = make([]*Cell, len(row))
		for j, cell := range row {
			c.Rows[i][j] = cell.clone()
		}
	}
	return c
}

// HeaderFooter is the content of a header or footer part of a loaded
// document.
type HeaderFooter struct {
	path string // archive part name, e.g. "word/header1.xml"
	kind string // root element: "hdr" or "ftr"
	Body []Node
}

// Paragraphs returns the body-level paragraphs of the header or footer.
func (h *HeaderFooter) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, n := range h.Body {
		if p, ok := n.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the tables of the header or footer.
func (h *HeaderFooter) Tables() []*Table {
	var out []*Table
	for _, n := range h.Body {
		if t, ok := n.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

func (h *HeaderFooter) clone() *HeaderFooter {
	return &HeaderFooter{path: h.path, kind: h.kind, Body: cloneNodes(h.Body)}
}
