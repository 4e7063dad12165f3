// Package docx provides an in-memory model of a Word document and reads and
// writes the OOXML (.docx) package format.
//
// The model is deliberately small: a Document owns an ordered body of nodes,
// where each node is a *Paragraph or a *Table. Paragraphs hold flat run
// lists; runs carry text plus the handful of properties the conversion
// engine produces (bold, italic, font, size, hyperlink target, explicit
// break). There is no lazy loading and no shared state: every Document is
// exclusively owned by its caller, and Clone produces a fully independent
// copy.
//
// # Creating documents
//
//	doc := docx.New()
//	p := doc.AddParagraph(docx.HeadingStyle(1))
//	p.AddRun("Quarterly Report")
//	err := doc.SaveFile("report.docx")
//
// # Templates
//
// OpenFile loads an existing .docx. The parts the model understands
// (document body, headers, footers, their relationships) are parsed into
// nodes; every other part of the package is retained as raw bytes and
// written back verbatim on Save, so styles, themes, images and settings of
// a template survive a load/mutate/save cycle untouched.
package docx
