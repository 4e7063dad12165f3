package msoffice

import (
	"fmt"

	"github.com/dvejsada/mcp-ms-office-documents/docx"
	"github.com/dvejsada/mcp-ms-office-documents/internal/templates"
)

// TemplateResolver loads a template document by name. A nil document with
// a nil error means the name is unknown; Convert then applies its
// not-found policy (fail or blank fallback).
type TemplateResolver interface {
	Resolve(name string) (*docx.Document, error)
}

// DirResolver resolves template names against a list of directories,
// trying each in order. Names are bare file names; ".docx" is appended
// when the name has no extension.
type DirResolver struct {
	Dirs []string
}

// NewDirResolver creates a resolver over the given directories, or the
// default search path when none are given.
func NewDirResolver(dirs ...string) *DirResolver {
	if len(dirs) == 0 {
		dirs = templates.DefaultDirs()
	}
	return &DirResolver{Dirs: dirs}
}

// Resolve implements TemplateResolver.
func (r *DirResolver) Resolve(name string) (*docx.Document, error) {
	path, err := templates.Find(r.Dirs, name)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}
	doc, err := docx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening template %s: %w", path, err)
	}
	return doc, nil
}
