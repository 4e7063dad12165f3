package msoffice

// Dialect defaults.
const (
	// DefaultListIndent is the number of leading spaces that advance a
	// list item by one nesting level. Three matches the dialect this
	// engine accepts; most markdown flavors use two or four.
	DefaultListIndent = 3

	// DefaultIterationLimit caps the substitution rescan loop per
	// paragraph. Replacement values that keep re-introducing
	// placeholder-shaped text would otherwise loop forever.
	DefaultIterationLimit = 100
)

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Template string // Template name resolved via the TemplateResolver (optional)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	listIndent     int
	iterationLimit int
	blankFallback  bool
}

// WithListIndent sets the spaces-per-level list indent unit.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithListIndent(n int) Option {
	if n <= 0 {
		panic("msoffice: WithListIndent unit must be positive")
	}
	return func(s *Service) {
		s.cfg.listIndent = n
	}
}

// WithIterationLimit sets the per-paragraph substitution cap.
// Panics if n <= 0.
func WithIterationLimit(n int) Option {
	if n <= 0 {
		panic("msoffice: WithIterationLimit must be positive")
	}
	return func(s *Service) {
		s.cfg.iterationLimit = n
	}
}

// WithBlankFallback controls what Convert does when a named template
// cannot be resolved: fall back to a blank document (true) or fail with
// ErrTemplateNotFound (false, the default).
func WithBlankFallback(enabled bool) Option {
	return func(s *Service) {
		s.cfg.blankFallback = enabled
	}
}

// WithTemplateResolver sets the resolver used to load named templates.
func WithTemplateResolver(r TemplateResolver) Option {
	return func(s *Service) {
		s.resolver = r
	}
}
