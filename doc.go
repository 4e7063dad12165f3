// Package msoffice converts a constrained Markdown dialect into Word
// documents and fills .docx templates from placeholder contexts.
//
// # Quick Start
//
// Create a service and convert markdown:
//
//	svc := msoffice.New()
//	doc, err := svc.Convert(msoffice.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = doc.SaveFile("hello.docx")
//
// Or fill a template containing {{name}} placeholders:
//
//	tpl, err := docx.OpenFile("letter.docx")
//	doc, err := svc.FillTemplate(tpl, map[string]string{
//	    "recipient": "Dr. Novak",
//	    "body":      "Dear **colleague**, ...",
//	})
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Block parsing: raw text becomes an ordered sequence of block nodes
//     (headings, paragraphs, quotes, tables, nested lists).
//  2. Inline parsing: each block's text becomes a span tree (plain, bold,
//     italic, code, link) with one level of mutual bold/italic nesting and
//     backslash-escape handling.
//  3. Rendering: blocks and spans are materialized into the docx document
//     model as styled paragraphs, runs, tables and hyperlinks.
//
// Template filling scans an existing document for {{name}} and {{{name}}}
// tokens (even when a token is fragmented across several runs) and
// replaces each with inline-formatted runs, or splices whole block
// sequences into the body when the value contains block-level markdown.
//
// # Dialect
//
// The dialect is deliberately not CommonMark. Parsing is total: malformed
// input never fails, it degrades to literal text. Lines ending in two
// spaces join into a single paragraph with explicit line breaks, runs of
// blank lines are preserved as vertical spacing, and list nesting is
// derived from a fixed indent unit (three spaces per level by default, see
// WithListIndent).
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := msoffice.New(
//	    msoffice.WithListIndent(2),
//	    msoffice.WithTemplateResolver(msoffice.NewDirResolver("/srv/templates")),
//	    msoffice.WithBlankFallback(true),
//	)
package msoffice
