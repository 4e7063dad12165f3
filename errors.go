package msoffice

import "errors"

// Sentinel errors for conversion and template filling.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrNilTemplate      = errors.New("template document cannot be nil")
	ErrTemplateNotFound = errors.New("template not found")
	ErrIterationLimit   = errors.New("placeholder substitution exceeded iteration limit")
)
