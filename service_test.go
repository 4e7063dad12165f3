package msoffice

import (
	"errors"
	"testing"

	"github.com/dvejsada/mcp-ms-office-documents/docx"
)

// stubResolver resolves a fixed set of in-memory templates.
type stubResolver struct {
	docs map[string]*docx.Document
	err  error
}

func (r *stubResolver) Resolve(name string) (*docx.Document, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.docs[name], nil
}

// ---------------------------------------------------------------------------
// TestConvert - Markdown to document conversion
// ---------------------------------------------------------------------------

func TestConvert(t *testing.T) {
	t.Parallel()

	t.Run("renders onto a blank document", func(t *testing.T) {
		t.Parallel()

		doc, err := New().Convert(Input{Markdown: "# Title\n\nbody"})
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		paras := doc.Paragraphs()
		if len(paras) != 2 {
			t.Fatalf("paragraphs = %d, want 2", len(paras))
		}
		if paras[0].Style != "Heading1" || paras[0].Text() != "Title" {
			t.Errorf("heading = %q/%q", paras[0].Style, paras[0].Text())
		}
	})

	t.Run("empty markdown fails", func(t *testing.T) {
		t.Parallel()

		_, err := New().Convert(Input{Markdown: "   \n  "})
		if !errors.Is(err, ErrEmptyMarkdown) {
			t.Fatalf("err = %v, want ErrEmptyMarkdown", err)
		}
	})

	t.Run("renders after existing template content", func(t *testing.T) {
		t.Parallel()

		tpl := docx.New()
		tpl.AddParagraph(docx.StyleNormal).AddRun("letterhead")
		svc := New(WithTemplateResolver(&stubResolver{docs: map[string]*docx.Document{"letter": tpl}}))

		doc, err := svc.Convert(Input{Markdown: "content", Template: "letter"})
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		paras := doc.Paragraphs()
		if len(paras) != 2 || paras[0].Text() != "letterhead" || paras[1].Text() != "content" {
			t.Fatalf("paragraphs = %+v, want letterhead then content", paras)
		}
	})

	t.Run("unknown template fails by default", func(t *testing.T) {
		t.Parallel()

		svc := New(WithTemplateResolver(&stubResolver{}))
		_, err := svc.Convert(Input{Markdown: "x", Template: "missing"})
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Fatalf("err = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("unknown template falls back to blank when enabled", func(t *testing.T) {
		t.Parallel()

		svc := New(WithTemplateResolver(&stubResolver{}), WithBlankFallback(true))
		doc, err := svc.Convert(Input{Markdown: "x", Template: "missing"})
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		if len(doc.Paragraphs()) != 1 {
			t.Errorf("paragraphs = %d, want 1", len(doc.Paragraphs()))
		}
	})

	t.Run("resolver errors are wrapped", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("disk gone")
		svc := New(WithTemplateResolver(&stubResolver{err: boom}))
		_, err := svc.Convert(Input{Markdown: "x", Template: "any"})
		if !errors.Is(err, boom) {
			t.Fatalf("err = %v, want wrapped %v", err, boom)
		}
	})
}

// ---------------------------------------------------------------------------
// TestFillTemplate - Template filling never mutates the input
// ---------------------------------------------------------------------------

func TestFillTemplate(t *testing.T) {
	t.Parallel()

	t.Run("nil template fails", func(t *testing.T) {
		t.Parallel()

		_, err := New().FillTemplate(nil, map[string]string{})
		if !errors.Is(err, ErrNilTemplate) {
			t.Fatalf("err = %v, want ErrNilTemplate", err)
		}
	})

	t.Run("input document stays untouched", func(t *testing.T) {
		t.Parallel()

		tpl := docx.New()
		tpl.AddParagraph(docx.StyleNormal).AddRun("Hello {{name}}")

		out, err := New().FillTemplate(tpl, map[string]string{"name": "Ada"})
		if err != nil {
			t.Fatalf("FillTemplate failed: %v", err)
		}
		if got := tpl.Paragraphs()[0].Text(); got != "Hello {{name}}" {
			t.Errorf("template mutated: %q", got)
		}
		if got := out.Paragraphs()[0].Text(); got != "Hello Ada" {
			t.Errorf("output = %q, want %q", got, "Hello Ada")
		}
	})
}

// ---------------------------------------------------------------------------
// TestOptions - Functional option validation
// ---------------------------------------------------------------------------

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("WithListIndent rejects non-positive values", func(t *testing.T) {
		t.Parallel()

		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		WithListIndent(0)
	})

	t.Run("WithIterationLimit rejects non-positive values", func(t *testing.T) {
		t.Parallel()

		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		WithIterationLimit(-1)
	})

	t.Run("WithListIndent changes nesting detection", func(t *testing.T) {
		t.Parallel()

		doc, err := New(WithListIndent(2)).Convert(Input{Markdown: "- a\n  - b"})
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		paras := doc.Paragraphs()
		if len(paras) != 2 || paras[1].Style != "ListBullet2" {
			t.Fatalf("paragraphs = %+v, want nested item with ListBullet2", paras)
		}
	})
}
