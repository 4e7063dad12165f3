package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	output        string
	template      string
	templateDirs  []string
	fill          string
	contextFile   string
	setValues     []string
	registry      string
	name          string
	indent        int
	blankFallback bool
	verbose       bool
	version       bool
}

// parseFlags parses os.Args-style arguments and returns the flags plus
// positional arguments (the input markdown file in convert mode).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2docx", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output .docx file (default: input name with .docx)")
	fs.StringVarP(&f.template, "template", "t", "", "template name for conversion")
	fs.StringSliceVar(&f.templateDirs, "template-dir", nil, "template search directory (repeatable)")
	fs.StringVar(&f.fill, "fill", "", "fill mode: path of the .docx template to fill")
	fs.StringVar(&f.contextFile, "context", "", "YAML file with placeholder values")
	fs.StringArrayVar(&f.setValues, "set", nil, "placeholder value as key=value (repeatable)")
	fs.StringVar(&f.registry, "registry", "", "template registry YAML file")
	fs.StringVar(&f.name, "name", "", "registry template name to fill")
	fs.IntVar(&f.indent, "indent", 0, "list indent unit in spaces (0 = default)")
	fs.BoolVar(&f.blankFallback, "blank-fallback", false, "fall back to a blank document when the template is missing")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: md2docx [flags] input.md\n")
		fmt.Fprintf(os.Stderr, "       md2docx --fill template.docx --context values.yaml -o out.docx\n")
		fmt.Fprintf(os.Stderr, "       md2docx --registry registry.yaml --name letter --set recipient=... -o out.docx\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
