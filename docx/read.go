package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

const documentPart = "word/document.xml"

// OpenFile loads a .docx file from disk.
func OpenFile(path string) (*Document, error) {
	f, err := os.Open(path) // #nosec G304 -- template path is caller-provided
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	return Open(f, info.Size())
}

// Open loads a .docx package from r.
func Open(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotWordDocument, err)
	}

	tpl := &templateParts{parts: make(map[string][]byte, len(zr.File))}
	for _, zf := range zr.File {
		data, err := readZipFile(zf)
		if err != nil {
			return nil, fmt.Errorf("reading part %s: %w", zf.Name, err)
		}
		tpl.parts[zf.Name] = data
		tpl.order = append(tpl.order, zf.Name)
	}

	docXML, ok := tpl.parts[documentPart]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, documentPart)
	}

	doc := &Document{template: tpl}

	rels := parseRelationships(tpl.parts[relsPartFor(documentPart)])
	body, sectPr, err := parseBodyPart(docXML, rels)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", documentPart, err)
	}
	doc.Body = body
	tpl.sectPr = sectPr

	for _, name := range headerFooterParts(tpl.order) {
		hfRels := parseRelationships(tpl.parts[relsPartFor(name)])
		hfBody, _, err := parseBodyPart(tpl.parts[name], hfRels)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		hf := &HeaderFooter{path: name, Body: hfBody}
		if strings.Contains(name, "header") {
			hf.kind = "hdr"
			doc.Headers = append(doc.Headers, hf)
		} else {
			hf.kind = "ftr"
			doc.Footers = append(doc.Footers, hf)
		}
	}

	return doc, nil
}

func readZipFile(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}

// relsPartFor returns the relationships part name for a given part,
// e.g. word/document.xml -> word/_rels/document.xml.rels.
func relsPartFor(part string) string {
	dir, base := "", part
	if i := strings.LastIndex(part, "/"); i >= 0 {
		dir, base = part[:i+1], part[i+1:]
	}
	return dir + "_rels/" + base + ".rels"
}

// headerFooterParts filters and orders the header/footer parts of a package.
func headerFooterParts(names []string) []string {
	var out []string
	for _, name := range names {
		if !strings.HasPrefix(name, "word/") || !strings.HasSuffix(name, ".xml") {
			continue
		}
		base := strings.TrimPrefix(name, "word/")
		if strings.HasPrefix(base, "header") || strings.HasPrefix(base, "footer") {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// relationship mirrors a single entry of an OPC relationships part.
type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type relationshipList struct {
	XMLName xml.Name       `xml:"Relationships"`
	Rels    []relationship `xml:"Relationship"`
}

// parseRelationships maps relationship ids to targets. A missing or
// malformed part yields an empty map; hyperlinks then resolve to "".
func parseRelationships(data []byte) map[string]string {
	out := make(map[string]string)
	if len(data) == 0 {
		return out
	}
	var list relationshipList
	if err := xml.Unmarshal(data, &list); err != nil {
		return out
	}
	for _, r := range list.Rels {
		out[r.ID] = r.Target
	}
	return out
}

// parseBodyPart parses a document, header or footer part into body nodes.
// For the main document it also captures the raw w:sectPr element so page
// geometry and header/footer references survive a save.
func parseBodyPart(data []byte, rels map[string]string) ([]Node, []byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var body []Node
	var sectPr []byte

	for {
		off := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			return body, sectPr, nil
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedPart, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "document", "body", "hdr", "ftr":
			// Containers: descend.
		case "p":
			p, err := parseParagraph(dec, rels)
			if err != nil {
				return nil, nil, err
			}
			body = append(body, p)
		case "tbl":
			t, err := parseTable(dec, rels)
			if err != nil {
				return nil, nil, err
			}
			body = append(body, t)
		case "sectPr":
			if err := dec.Skip(); err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrMalformedPart, err)
			}
			sectPr = data[off:dec.InputOffset()]
		default:
			if err := dec.Skip(); err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrMalformedPart, err)
			}
		}
	}
}

// parseParagraph consumes a w:p element. Hyperlink wrappers are flattened:
// their runs get the resolved target URL on Run.Link.
func parseParagraph(dec *xml.Decoder, rels map[string]string) (*Paragraph, error) {
	p := &Paragraph{}
	link := ""

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPart, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr", "hyperlink":
				if t.Name.Local == "hyperlink" {
					link = rels[attrValue(t, "id")]
				}
			case "pStyle":
				p.Style = attrValue(t, "val")
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrMalformedPart, err)
				}
			case "r":
				if err := parseRun(dec, p, link); err != nil {
					return nil, err
				}
			default:
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrMalformedPart, err)
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "hyperlink":
				link = ""
			case "p":
				return p, nil
			}
		}
	}
}

// parseRun consumes a w:r element and appends one run per w:t and one break
// run per w:br, all carrying the run properties seen in w:rPr.
func parseRun(dec *xml.Decoder, p *Paragraph, link string) error {
	var bold, italic bool
	var font string
	var size int

	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedPart, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				// Descend into run properties.
			case "b":
				bold = onOffValue(t)
				if err := dec.Skip(); err != nil {
					return fmt.Errorf("%w: %v", ErrMalformedPart, err)
				}
			case "i":
				italic = onOffValue(t)
				if err := dec.Skip(); err != nil {
					return fmt.Errorf("%w: %v", ErrMalformedPart, err)
				}
			case "rFonts":
				font = attrValue(t, "ascii")
				if err := dec.Skip(); err != nil {
					return fmt.Errorf("%w: %v", ErrMalformedPart, err)
				}
			case "sz":
				size, _ = strconv.Atoi(attrValue(t, "val"))
				if err := dec.Skip(); err != nil {
					return fmt.Errorf("%w: %v", ErrMalformedPart, err)
				}
			case "br":
				p.AddBreak()
				if err := dec.Skip(); err != nil {
					return fmt.Errorf("%w: %v", ErrMalformedPart, err)
				}
			case "t":
				text, err := readCharData(dec)
				if err != nil {
					return err
				}
				p.Runs = append(p.Runs, &Run{
					Text:   text,
					Bold:   bold,
					Italic: italic,
					Font:   font,
					Size:   size,
					Link:   link,
				})
			default:
				if err := dec.Skip(); err != nil {
					return fmt.Errorf("%w: %v", ErrMalformedPart, err)
				}
			}
		case xml.EndElement:
			if t.Name.Local == "r" {
				return nil
			}
		}
	}
}

// parseTable consumes a w:tbl element. Nested tables are not modeled and
// are skipped.
func parseTable(dec *xml.Decoder, rels map[string]string) (*Table, error) {
	t := &Table{Style: StyleTableGrid}
	var curRow []*Cell
	var curCell *Cell

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPart, err)
		}
		switch tk := tok.(type) {
		case xml.StartElement:
			switch tk.Name.Local {
			case "tblPr", "tr", "tc":
				if tk.Name.Local == "tr" {
					curRow = nil
				}
				if tk.Name.Local == "tc" {
					curCell = &Cell{}
				}
			case "tblStyle":
				t.Style = attrValue(tk, "val")
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrMalformedPart, err)
				}
			case "p":
				p, err := parseParagraph(dec, rels)
				if err != nil {
					return nil, err
				}
				if curCell != nil {
					curCell.Paragraphs = append(curCell.Paragraphs, p)
				}
			default:
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrMalformedPart, err)
				}
			}
		case xml.EndElement:
			switch tk.Name.Local {
			case "tc":
				if curCell != nil {
					curRow = append(curRow, curCell)
					curCell = nil
				}
			case "tr":
				t.Rows = append(t.Rows, curRow)
				curRow = nil
			case "tbl":
				return t, nil
			}
		}
	}
}

// readCharData collects character data until the current element closes.
func readCharData(dec *xml.Decoder) (string, error) {
	var b strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedPart, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.EndElement:
			return b.String(), nil
		}
	}
}

// attrValue returns the value of the named attribute regardless of its
// namespace prefix.
func attrValue(e xml.StartElement, local string) string {
	for _, a := range e.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// onOffValue interprets OOXML on/off properties, where a bare element means
// "on" and only explicit false/0/off turn it off.
func onOffValue(e xml.StartElement) bool {
	switch attrValue(e, "val") {
	case "false", "0", "off":
		return false
	}
	return true
}
