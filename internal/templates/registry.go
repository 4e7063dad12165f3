package templates

import (
	"fmt"
	"os"

	"github.com/dvejsada/mcp-ms-office-documents/internal/yamlutil"
)

// Registry is the parsed template registry file. Each entry declares a
// template, the .docx file backing it and the arguments it accepts.
type Registry struct {
	Templates []Template `yaml:"templates"`
}

// Template is one registry entry.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	DocxPath    string `yaml:"docx_path"`
	Args        []Arg  `yaml:"args"`
}

// Arg declares a single template argument. Required defaults to true when
// omitted in the registry file.
type Arg struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
	Required    *bool    `yaml:"required"`
	Default     string   `yaml:"default"`
	Enum        []string `yaml:"enum"`
}

func (a Arg) required() bool {
	return a.Required == nil || *a.Required
}

// LoadRegistry reads and validates a registry YAML file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("templates: reading registry: %w", err)
	}
	var reg Registry
	if err := yamlutil.UnmarshalStrict(data, &reg); err != nil {
		return nil, fmt.Errorf("templates: parsing registry %s: %w", path, err)
	}
	for i, tpl := range reg.Templates {
		if tpl.Name == "" {
			return nil, fmt.Errorf("templates: registry entry %d has no name", i)
		}
		if _, err := Find(nil, tpl.DocxPath); err != nil {
			return nil, fmt.Errorf("templates: entry %q: docx_path must be a bare file name: %w", tpl.Name, err)
		}
	}
	return &reg, nil
}

// Lookup returns the registry entry with the given name, or nil.
func (r *Registry) Lookup(name string) *Template {
	for i := range r.Templates {
		if r.Templates[i].Name == name {
			return &r.Templates[i]
		}
	}
	return nil
}

// BuildContext validates the given values against the template's declared
// arguments and fills in defaults. Unknown keys pass through untouched so
// registries can under-declare.
func (t *Template) BuildContext(values map[string]string) (map[string]string, error) {
	ctx := make(map[string]string, len(values))
	for k, v := range values {
		ctx[k] = v
	}
	for _, arg := range t.Args {
		v, ok := ctx[arg.Name]
		if !ok {
			if arg.Default != "" {
				ctx[arg.Name] = arg.Default
				continue
			}
			if arg.required() {
				return nil, fmt.Errorf("templates: %q: missing required argument %q", t.Name, arg.Name)
			}
			continue
		}
		if len(arg.Enum) > 0 && !contains(arg.Enum, v) {
			return nil, fmt.Errorf("templates: %q: argument %q must be one of %v, got %q", t.Name, arg.Name, arg.Enum, v)
		}
	}
	return ctx, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
