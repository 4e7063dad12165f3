package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	msoffice "github.com/dvejsada/mcp-ms-office-documents"
	"github.com/dvejsada/mcp-ms-office-documents/docx"
	"github.com/dvejsada/mcp-ms-office-documents/internal/templates"
	"github.com/dvejsada/mcp-ms-office-documents/internal/yamlutil"
)

var errNoInput = errors.New("no input file given (or use --fill / --registry)")

// run dispatches between convert mode and the two fill modes.
func run(flags *cliFlags, args []string) error {
	switch {
	case flags.registry != "":
		return runRegistryFill(flags)
	case flags.fill != "":
		return runFill(flags)
	default:
		return runConvert(flags, args)
	}
}

// runConvert turns a markdown file into a .docx document.
func runConvert(flags *cliFlags, args []string) error {
	if len(args) == 0 {
		return errNoInput
	}
	input := args[0]
	md, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	svc := msoffice.New(serviceOptions(flags)...)
	doc, err := svc.Convert(msoffice.Input{
		Markdown: string(md),
		Template: flags.template,
	})
	if err != nil {
		return err
	}

	out := flags.output
	if out == "" {
		out = strings.TrimSuffix(input, ".md") + ".docx"
	}
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Writing %s\n", out)
	}
	return doc.SaveFile(out)
}

// runFill fills a single template file with a placeholder context.
func runFill(flags *cliFlags) error {
	if flags.output == "" {
		return errors.New("--fill requires --output")
	}
	tpl, err := docx.OpenFile(flags.fill)
	if err != nil {
		return fmt.Errorf("opening template %s: %w", flags.fill, err)
	}
	ctx, err := loadContext(flags)
	if err != nil {
		return err
	}

	svc := msoffice.New(serviceOptions(flags)...)
	doc, err := svc.FillTemplate(tpl, ctx)
	if err != nil {
		return err
	}
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Writing %s\n", flags.output)
	}
	return doc.SaveFile(flags.output)
}

// runRegistryFill fills a template declared in a registry file, validating
// the context against the declared arguments.
func runRegistryFill(flags *cliFlags) error {
	if flags.name == "" {
		return errors.New("--registry requires --name")
	}
	if flags.output == "" {
		return errors.New("--registry requires --output")
	}
	reg, err := templates.LoadRegistry(flags.registry)
	if err != nil {
		return err
	}
	entry := reg.Lookup(flags.name)
	if entry == nil {
		return fmt.Errorf("registry has no template %q", flags.name)
	}

	dirs := flags.templateDirs
	if len(dirs) == 0 {
		dirs = templates.DefaultDirs()
	}
	path, err := templates.Find(dirs, entry.DocxPath)
	if err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("template file %q not found in %v", entry.DocxPath, dirs)
	}
	tpl, err := docx.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening template %s: %w", path, err)
	}

	values, err := loadContext(flags)
	if err != nil {
		return err
	}
	ctx, err := entry.BuildContext(values)
	if err != nil {
		return err
	}

	svc := msoffice.New(serviceOptions(flags)...)
	doc, err := svc.FillTemplate(tpl, ctx)
	if err != nil {
		return err
	}
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Writing %s\n", flags.output)
	}
	return doc.SaveFile(flags.output)
}

// serviceOptions maps CLI flags onto service options.
func serviceOptions(flags *cliFlags) []msoffice.Option {
	var opts []msoffice.Option
	if flags.indent > 0 {
		opts = append(opts, msoffice.WithListIndent(flags.indent))
	}
	if flags.blankFallback {
		opts = append(opts, msoffice.WithBlankFallback(true))
	}
	if len(flags.templateDirs) > 0 {
		opts = append(opts, msoffice.WithTemplateResolver(msoffice.NewDirResolver(flags.templateDirs...)))
	} else {
		opts = append(opts, msoffice.WithTemplateResolver(msoffice.NewDirResolver()))
	}
	return opts
}

// loadContext merges the --context YAML file with --set overrides, the
// latter winning.
func loadContext(flags *cliFlags) (map[string]string, error) {
	ctx := map[string]string{}
	if flags.contextFile != "" {
		data, err := os.ReadFile(flags.contextFile)
		if err != nil {
			return nil, fmt.Errorf("reading context %s: %w", flags.contextFile, err)
		}
		if err := yamlutil.Unmarshal(data, &ctx); err != nil {
			return nil, err
		}
	}
	for _, kv := range flags.setValues {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set value %q, want key=value", kv)
		}
		ctx[k] = v
	}
	return ctx, nil
}
