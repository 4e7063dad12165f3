package docx

// Node is a top-level element of a document body: a *Paragraph or a *Table.
type Node interface {
	node()
}

// Document is an in-memory Word document.
//
// Body is an indexable, ordered sequence. Code that splices generated
// content into a live document relies on this: InsertAt shifts subsequent
// nodes without invalidating anything, so "insert N nodes after position P"
// is a plain index computation.
type Document struct {
	Body    []Node
	Headers []*HeaderFooter
	Footers []*HeaderFooter

	// template holds the raw package parts of a loaded .docx so that
	// everything the model does not understand survives a save untouched.
	// Nil for documents created with New.
	template *templateParts
}

// templateParts preserves the source archive of a loaded document.
type templateParts struct {
	parts  map[string][]byte // every part of the source archive, by name
	order  []string          // original part order
	sectPr []byte            // raw w:sectPr of the body, re-emitted verbatim
}

// New creates an empty document with no template backing.
func New() *Document {
	return &Document{}
}

// AddParagraph appends a paragraph with the given style to the body.
func (d *Document) AddParagraph(style string) *Paragraph {
	p := &Paragraph{Style: style}
	d.Body = append(d.Body, p)
	return p
}

// AddTable appends an empty rows×cols table to the body.
func (d *Document) AddTable(rows, cols int) *Table {
	t := NewTable(rows, cols)
	d.Body = append(d.Body, t)
	return t
}

// InsertAt inserts a node at index i, shifting subsequent nodes.
// An index at or beyond the current length appends.
func (d *Document) InsertAt(i int, n Node) {
	if i < 0 {
		i = 0
	}
	if i >= len(d.Body) {
		d.Body = append(d.Body, n)
		return
	}
	d.Body = append(d.Body, nil)
	copy(d.Body[i+1:], d.Body[i:])
	d.Body[i] = n
}

// IndexOf returns the body index of n, or -1 if n is not a body node.
func (d *Document) IndexOf(n Node) int {
	for i, b := range d.Body {
		if b == n {
			return i
		}
	}
	return -1
}

// Paragraphs returns the body-level paragraphs in document order.
// Paragraphs inside table cells are not included.
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, n := range d.Body {
		if p, ok := n.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the body-level tables in document order.
func (d *Document) Tables() []*Table {
	var out []*Table
	for _, n := range d.Body {
		if t, ok := n.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a deep copy of the document. The copy shares no mutable
// state with the original; raw template parts are treated as immutable and
// carried over by reference.
func (d *Document) Clone() *Document {
	c := &Document{
		Body: cloneNodes(d.Body),
	}
	for _, h := range d.Headers {
		c.Headers = append(c.Headers, h.clone())
	}
	for _, f := range d.Footers {
		c.Footers = append(c.Footers, f.clone())
	}
	if d.template != nil {
		parts := make(map[string][]byte, len(d.template.parts))
		for name, data := range d.template.parts {
			parts[name] = data
		}
		c.template = &templateParts{
			parts:  parts,
			order:  append([]string(nil), d.template.order...),
			sectPr: d.template.sectPr,
		}
	}
	return c
}

func cloneNodes(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *Paragraph:
			out = append(out, n.clone())
		case *Table:
			out = append(out, n.clone())
		}
	}
	return out
}
