package msoffice

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dvejsada/mcp-ms-office-documents/docx"
)

// placeholderPattern matches {{name}} and {{{name}}} tokens. Names follow
// identifier rules; anything else is left alone.
var placeholderPattern = regexp.MustCompile(`\{\{\{?([a-zA-Z_][a-zA-Z0-9_]*)\}?\}\}`)

// substituteDocument walks every text region of the document and replaces
// placeholders whose name appears in context. Only body paragraphs accept
// block-level replacement values; table cells, headers and footers degrade
// block markdown to inline rendering.
func (s *Service) substituteDocument(doc *docx.Document, context map[string]string) error {
	// Snapshot the body paragraphs up front so content spliced during
	// replacement is never rescanned.
	for _, p := range doc.Paragraphs() {
		if err := s.substituteParagraph(doc, p, context, true); err != nil {
			return err
		}
	}
	for _, t := range doc.Tables() {
		if err := s.substituteTable(t, context); err != nil {
			return err
		}
	}
	for _, h := range doc.Headers {
		if err := s.substituteHeaderFooter(h, context); err != nil {
			return err
		}
	}
	for _, f := range doc.Footers {
		if err := s.substituteHeaderFooter(f, context); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) substituteTable(t *docx.Table, context map[string]string) error {
	for _, row := range t.Rows {
		for _, cell := range row {
			for _, p := range cell.Paragraphs {
				if err := s.substituteParagraph(nil, p, context, false); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *Service) substituteHeaderFooter(h *docx.HeaderFooter, context map[string]string) error {
	for _, p := range h.Paragraphs() {
		if err := s.substituteParagraph(nil, p, context, false); err != nil {
			return err
		}
	}
	for _, t := range h.Tables() {
		if err := s.substituteTable(t, context); err != nil {
			return err
		}
	}
	return nil
}

// substituteParagraph replaces placeholders in one paragraph until none
// with a known name remain. The paragraph is rescanned after every
// replacement because replacement text may itself contain placeholders;
// the iteration cap turns a self-sustaining expansion into an error
// instead of a hang. A block-mode replacement moves the text after the
// token into a fresh paragraph; scanning continues there, on the same
// iteration budget, so placeholders following a block value are still
// consumed.
func (s *Service) substituteParagraph(doc *docx.Document, p *docx.Paragraph, context map[string]string, allowBlocks bool) error {
	for iter := 0; ; iter++ {
		if iter >= s.cfg.iterationLimit {
			return fmt.Errorf("%w: paragraph %q", ErrIterationLimit, clip(p.Text(), 60))
		}
		replaced, next := s.replaceNext(doc, p, context, allowBlocks)
		if next != nil {
			p = next
			continue
		}
		if !replaced {
			return nil
		}
	}
}

// replaceNext finds the first placeholder whose name is in the context and
// replaces one occurrence of it. The triple-brace form is tried before the
// double-brace form so that {{{name}}} never leaves a stray brace pair.
// A non-nil paragraph return is the spliced suffix paragraph of a
// block-mode replacement; the caller resumes scanning there.
func (s *Service) replaceNext(doc *docx.Document, p *docx.Paragraph, context map[string]string, allowBlocks bool) (bool, *docx.Paragraph) {
	text := p.Text()
	if !strings.Contains(text, "{{") {
		return false, nil
	}
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		value, ok := context[name]
		if !ok {
			continue
		}
		token := "{{{" + name + "}}}"
		if !strings.Contains(text, token) {
			token = "{{" + name + "}}"
		}
		return true, s.replaceToken(doc, p, token, value, allowBlocks)
	}
	return false, nil
}

// replaceToken rewrites the paragraph so that one occurrence of token
// becomes the rendered form of value. The token may be fragmented across
// any number of runs; formatting hints (font, size) are taken from the run
// holding the token's first character. In block mode the suffix text moves
// into a new paragraph after the spliced blocks, which is returned for
// further scanning.
func (s *Service) replaceToken(doc *docx.Document, p *docx.Paragraph, token, value string, allowBlocks bool) *docx.Paragraph {
	// Map the concatenated text back to runs. Break runs occupy no
	// characters and are dropped by the rewrite.
	type runAt struct {
		run   *docx.Run
		start int
	}
	var offsets []runAt
	var b strings.Builder
	for _, r := range p.Runs {
		if r.Break {
			continue
		}
		offsets = append(offsets, runAt{run: r, start: b.Len()})
		b.WriteString(r.Text)
	}
	text := b.String()
	at := strings.Index(text, token)
	if at < 0 {
		return nil
	}

	// The anchor run carries the formatting new runs inherit.
	var hintFont string
	var hintSize int
	for _, ra := range offsets {
		if ra.start <= at && at < ra.start+len(ra.run.Text) {
			hintFont = ra.run.Font
			hintSize = ra.run.Size
			break
		}
	}
	prefix := text[:at]
	suffix := text[at+len(token):]
	style := p.Style
	p.ClearRuns()
	if prefix != "" {
		run := p.AddRun(prefix)
		run.Font = hintFont
		run.Size = hintSize
	}

	if allowBlocks && doc != nil && containsBlockMarkdown(value) {
		// Block mode: the value becomes full document nodes spliced right
		// after this paragraph; any suffix text becomes a fresh paragraph
		// after them so document order is preserved.
		r := newInsertRenderer(doc, doc.IndexOf(p)+1)
		r.renderBlocks(parseBlocks(value, s.cfg.listIndent))
		if suffix == "" {
			return nil
		}
		after := docx.NewParagraph(style)
		run := after.AddRun(suffix)
		run.Font = hintFont
		run.Size = hintSize
		r.addNode(after)
		return after
	}

	// Inline mode: render the value's spans into this paragraph and pass
	// the anchor formatting on to runs that do not set their own.
	before := len(p.Runs)
	renderSpans(p, parseInline(value), false, false)
	for _, run := range p.Runs[before:] {
		if run.Font == "" {
			run.Font = hintFont
		}
		if run.Size == 0 {
			run.Size = hintSize
		}
	}
	if suffix != "" {
		run := p.AddRun(suffix)
		run.Font = hintFont
		run.Size = hintSize
	}
	return nil
}

// containsBlockMarkdown reports whether the value needs block-level
// rendering: any line that is a heading or a list item.
func containsBlockMarkdown(value string) bool {
	for _, line := range strings.Split(value, "\n") {
		t := strings.TrimSpace(line)
		if headingMarker.MatchString(t) ||
			orderedItemMarker.MatchString(t) ||
			unorderedItemMarker.MatchString(t) {
			return true
		}
	}
	return false
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
