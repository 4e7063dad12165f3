package msoffice

import (
	"fmt"
	"strings"

	"github.com/dvejsada/mcp-ms-office-documents/docx"
)

// Service converts markdown to Word documents and fills document
// templates. A Service is immutable after construction and safe for
// concurrent use.
type Service struct {
	cfg      serviceConfig
	resolver TemplateResolver
}

// New creates a Service with the given options.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			listIndent:     DefaultListIndent,
			iterationLimit: DefaultIterationLimit,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert parses the markdown in input and renders it onto a new document,
// optionally based on a named template.
func (s *Service) Convert(input Input) (*docx.Document, error) {
	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}
	doc, err := s.baseDocument(input.Template)
	if err != nil {
		return nil, err
	}
	newRenderer(doc).renderBlocks(parseBlocks(input.Markdown, s.cfg.listIndent))
	return doc, nil
}

// FillTemplate returns a copy of template with every placeholder whose
// name appears in context replaced by its rendered value. The template
// itself is never modified. Placeholders with names absent from context
// are left in place.
func (s *Service) FillTemplate(template *docx.Document, context map[string]string) (*docx.Document, error) {
	if template == nil {
		return nil, ErrNilTemplate
	}
	doc := template.Clone()
	if err := s.substituteDocument(doc, context); err != nil {
		return nil, err
	}
	return doc, nil
}

// baseDocument loads the named template or creates a blank document when
// no name is given.
func (s *Service) baseDocument(name string) (*docx.Document, error) {
	if name == "" {
		return docx.New(), nil
	}
	if s.resolver == nil {
		if s.cfg.blankFallback {
			return docx.New(), nil
		}
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	doc, err := s.resolver.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("resolving template %q: %w", name, err)
	}
	if doc == nil {
		if s.cfg.blankFallback {
			return docx.New(), nil
		}
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return doc, nil
}
