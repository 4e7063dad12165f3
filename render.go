package msoffice

import "github.com/dvejsada/mcp-ms-office-documents/docx"

// monospaceFont is applied to inline code runs.
const monospaceFont = "Courier New"

// renderer materializes parsed blocks onto a docx document, either
// appending to the body or inserting at a fixed position (used when
// splicing blocks into an existing template).
type renderer struct {
	doc *docx.Document
	at  int // next insertion index, or -1 to append
}

func newRenderer(doc *docx.Document) *renderer {
	return &renderer{doc: doc, at: -1}
}

func newInsertRenderer(doc *docx.Document, at int) *renderer {
	return &renderer{doc: doc, at: at}
}

// addNode places a node at the renderer's position and advances it.
func (r *renderer) addNode(n docx.Node) {
	if r.at < 0 {
		r.doc.InsertAt(len(r.doc.Body), n)
		return
	}
	r.doc.InsertAt(r.at, n)
	r.at++
}

func (r *renderer) renderBlocks(blocks []Block) {
	for _, b := range blocks {
		r.renderBlock(b)
	}
}

func (r *renderer) renderBlock(b Block) {
	switch b.Kind {
	case BlockHeading:
		p := docx.NewParagraph(docx.HeadingStyle(b.Level))
		renderSpans(p, b.Inline, false, false)
		r.addNode(p)

	case BlockQuote:
		p := docx.NewParagraph(docx.StyleQuote)
		renderSpans(p, b.Inline, false, false)
		r.addNode(p)

	case BlockListItem:
		p := docx.NewParagraph(docx.ListStyle(b.Ordered, b.Level))
		renderSpans(p, b.Inline, false, false)
		r.addNode(p)
		// Children follow their parent item depth-first.
		r.renderBlocks(b.Children)

	case BlockTable:
		r.renderTable(b)

	default:
		p := docx.NewParagraph(docx.StyleNormal)
		renderSpans(p, b.Inline, false, false)
		r.addNode(p)
	}
}

// renderTable sizes the grid to the widest row; short rows leave their
// trailing cells empty.
func (r *renderer) renderTable(b Block) {
	if len(b.Rows) == 0 {
		return
	}
	cols := 0
	for _, row := range b.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	tbl := docx.NewTable(len(b.Rows), cols)
	for ri, row := range b.Rows {
		for ci, cell := range row {
			renderSpans(tbl.Cell(ri, ci).Paragraph(), cell, false, false)
		}
	}
	r.addNode(tbl)
}

// renderSpans appends one run per formatted fragment of the span tree to
// the paragraph. Bold and italic flags accumulate down the tree.
func renderSpans(p *docx.Paragraph, spans []Span, bold, italic bool) {
	for _, s := range spans {
		switch s.Kind {
		case SpanBreak:
			p.AddBreak()
		case SpanBold:
			renderSpans(p, s.Children, true, italic)
		case SpanItalic:
			renderSpans(p, s.Children, bold, true)
		case SpanCode:
			run := p.AddRun(s.Text)
			run.Bold = bold
			run.Italic = italic
			run.Font = monospaceFont
		case SpanLink:
			run := p.AddRun(s.Text)
			run.Bold = bold
			run.Italic = italic
			run.Link = s.URL
		default:
			if s.Text == "" {
				continue
			}
			run := p.AddRun(s.Text)
			run.Bold = bold
			run.Italic = italic
		}
	}
}
