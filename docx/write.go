package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const hyperlinkRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"

// SaveFile writes the document as a .docx file.
func (d *Document) SaveFile(path string) error {
	f, err := os.Create(path) // #nosec G304 -- output path is caller-provided
	if err != nil {
		return fmt.Errorf("creating document file: %w", err)
	}
	if err := d.Save(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing document file: %w", err)
	}
	return nil
}

// Save writes the document as a .docx package to w.
//
// Template-backed documents rewrite the parts the model owns (document
// body, headers, footers, their relationships) and copy every other part of
// the source archive verbatim. Fresh documents emit a minimal package with
// a built-in stylesheet.
func (d *Document) Save(w io.Writer) error {
	zw := zip.NewWriter(w)
	var err error
	if d.template != nil {
		err = d.saveTemplate(zw)
	} else {
		err = d.saveFresh(zw)
	}
	if err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing document package: %w", err)
	}
	return nil
}

func (d *Document) saveFresh(zw *zip.Writer) error {
	links := &linkTable{prefix: "rIdHL"}
	docXML := marshalDocument(d.Body, nil, links)

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{documentPart, docXML},
		{relsPartFor(documentPart), buildDocumentRels(links)},
		{"word/styles.xml", []byte(stylesXML)},
		{"word/numbering.xml", []byte(numberingXML)},
	}
	for _, p := range parts {
		if err := writeZipPart(zw, p.name, p.data); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) saveTemplate(zw *zip.Writer) error {
	rewritten := make(map[string][]byte)
	addedRels := make(map[string][]relationship)

	docLinks := &linkTable{prefix: "rIdHL"}
	rewritten[documentPart] = marshalDocument(d.Body, d.template.sectPr, docLinks)
	addedRels[relsPartFor(documentPart)] = docLinks.relationships()

	for _, hf := range append(append([]*HeaderFooter(nil), d.Headers...), d.Footers...) {
		links := &linkTable{prefix: "rIdHL"}
		rewritten[hf.path] = marshalHeaderFooter(hf, links)
		addedRels[relsPartFor(hf.path)] = links.relationships()
	}

	written := make(map[string]bool)
	for _, name := range d.template.order {
		data, ok := rewritten[name]
		if !ok {
			data = d.template.parts[name]
		}
		if add := addedRels[name]; len(add) > 0 {
			data = appendRelationships(data, add)
			delete(addedRels, name)
		}
		if err := writeZipPart(zw, name, data); err != nil {
			return err
		}
		written[name] = true
	}

	// Relationship parts that did not exist in the source archive but are
	// now needed for new hyperlinks.
	for name, add := range addedRels {
		if len(add) == 0 || written[name] {
			continue
		}
		if err := writeZipPart(zw, name, appendRelationships(nil, add)); err != nil {
			return err
		}
	}
	return nil
}

func writeZipPart(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating part %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing part %s: %w", name, err)
	}
	return nil
}

// linkTable assigns relationship ids to hyperlink targets while a part is
// being marshaled.
type linkTable struct {
	prefix  string
	targets []string
}

func (lt *linkTable) add(target string) string {
	lt.targets = append(lt.targets, target)
	return lt.prefix + strconv.Itoa(len(lt.targets))
}

func (lt *linkTable) relationships() []relationship {
	rels := make([]relationship, len(lt.targets))
	for i, t := range lt.targets {
		rels[i] = relationship{
			ID:     lt.prefix + strconv.Itoa(i+1),
			Type:   hyperlinkRelType,
			Target: t,
		}
	}
	return rels
}

// appendRelationships inserts entries into an existing relationships part,
// or builds a fresh part when orig is nil.
func appendRelationships(orig []byte, add []relationship) []byte {
	var entries strings.Builder
	for _, r := range add {
		entries.WriteString(`<Relationship Id="`)
		entries.WriteString(r.ID)
		entries.WriteString(`" Type="`)
		entries.WriteString(r.Type)
		entries.WriteString(`" Target="`)
		xmlEscapeTo(&entries, r.Target)
		entries.WriteString(`" TargetMode="External"/>`)
	}

	if len(orig) == 0 {
		return []byte(xmlHeader +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			entries.String() + `</Relationships>`)
	}
	closing := []byte("</Relationships>")
	i := bytes.LastIndex(orig, closing)
	if i < 0 {
		return orig
	}
	var out bytes.Buffer
	out.Write(orig[:i])
	out.WriteString(entries.String())
	out.Write(orig[i:])
	return out.Bytes()
}

func buildDocumentRels(links *linkTable) []byte {
	base := []relationship{
		{ID: "rId1", Type: "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles", Target: "styles.xml"},
		{ID: "rId2", Type: "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering", Target: "numbering.xml"},
	}
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, r := range base {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s"/>`, r.ID, r.Type, r.Target)
	}
	for _, r := range links.relationships() {
		b.WriteString(`<Relationship Id="`)
		b.WriteString(r.ID)
		b.WriteString(`" Type="`)
		b.WriteString(r.Type)
		b.WriteString(`" Target="`)
		xmlEscapeTo(&b, r.Target)
		b.WriteString(`" TargetMode="External"/>`)
	}
	b.WriteString(`</Relationships>`)
	return []byte(b.String())
}

func marshalDocument(body []Node, sectPr []byte, links *linkTable) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:document ` + wordprocessingNS + `><w:body>`)
	for _, n := range body {
		writeNode(&b, n, links)
	}
	b.Write(sectPr)
	b.WriteString(`</w:body></w:document>`)
	return []byte(b.String())
}

func marshalHeaderFooter(hf *HeaderFooter, links *linkTable) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:` + hf.kind + ` ` + wordprocessingNS + `>`)
	for _, n := range hf.Body {
		writeNode(&b, n, links)
	}
	b.WriteString(`</w:` + hf.kind + `>`)
	return []byte(b.String())
}

func writeNode(b *strings.Builder, n Node, links *linkTable) {
	switch n := n.(type) {
	case *Paragraph:
		writeParagraph(b, n, links)
	case *Table:
		writeTable(b, n, links)
	}
}

func writeParagraph(b *strings.Builder, p *Paragraph, links *linkTable) {
	b.WriteString(`<w:p>`)
	if p.Style != "" {
		b.WriteString(`<w:pPr><w:pStyle w:val="`)
		xmlEscapeTo(b, p.Style)
		b.WriteString(`"/></w:pPr>`)
	}
	for _, r := range p.Runs {
		writeRun(b, r, links)
	}
	b.WriteString(`</w:p>`)
}

func writeRun(b *strings.Builder, r *Run, links *linkTable) {
	if r.Break {
		b.WriteString(`<w:r><w:br/></w:r>`)
		return
	}

	if r.Link != "" {
		id := links.add(r.Link)
		b.WriteString(`<w:hyperlink r:id="` + id + `">`)
	}

	b.WriteString(`<w:r>`)
	writeRunProperties(b, r)
	b.WriteString(`<w:t xml:space="preserve">`)
	xmlEscapeTo(b, r.Text)
	b.WriteString(`</w:t></w:r>`)

	if r.Link != "" {
		b.WriteString(`</w:hyperlink>`)
	}
}

func writeRunProperties(b *strings.Builder, r *Run) {
	link := r.Link != ""
	if !r.Bold && !r.Italic && r.Font == "" && r.Size == 0 && !link {
		return
	}
	b.WriteString(`<w:rPr>`)
	if r.Bold {
		b.WriteString(`<w:b/>`)
	}
	if r.Italic {
		b.WriteString(`<w:i/>`)
	}
	if r.Font != "" {
		b.WriteString(`<w:rFonts w:ascii="`)
		xmlEscapeTo(b, r.Font)
		b.WriteString(`" w:hAnsi="`)
		xmlEscapeTo(b, r.Font)
		b.WriteString(`"/>`)
	}
	if link {
		// Hyperlink runs render underlined and blue, matching the
		// conversion engine's output convention.
		b.WriteString(`<w:u w:val="single"/><w:color w:val="0000FF"/>`)
	}
	if r.Size > 0 {
		b.WriteString(`<w:sz w:val="` + strconv.Itoa(r.Size) + `"/>`)
	}
	b.WriteString(`</w:rPr>`)
}

func writeTable(b *strings.Builder, t *Table, links *linkTable) {
	b.WriteString(`<w:tbl><w:tblPr>`)
	if t.Style != "" {
		b.WriteString(`<w:tblStyle w:val="`)
		xmlEscapeTo(b, t.Style)
		b.WriteString(`"/>`)
	}
	b.WriteString(`<w:tblW w:w="0" w:type="auto"/></w:tblPr>`)
	for _, row := range t.Rows {
		b.WriteString(`<w:tr>`)
		for _, cell := range row {
			b.WriteString(`<w:tc><w:tcPr/>`)
			if len(cell.Paragraphs) == 0 {
				b.WriteString(`<w:p/>`)
			}
			for _, p := range cell.Paragraphs {
				writeParagraph(b, p, links)
			}
			b.WriteString(`</w:tc>`)
		}
		b.WriteString(`</w:tr>`)
	}
	b.WriteString(`</w:tbl>`)
}

// xmlEscapeTo writes s with XML special characters escaped.
func xmlEscapeTo(w io.Writer, s string) {
	_ = xml.EscapeText(w, []byte(s))
}
