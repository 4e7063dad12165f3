package docx

import "errors"

// Sentinel errors for document backend operations.
var (
	ErrNotWordDocument = errors.New("docx: not a Word document")
	ErrMissingPart     = errors.New("docx: required package part missing")
	ErrMalformedPart   = errors.New("docx: malformed package part")
)
