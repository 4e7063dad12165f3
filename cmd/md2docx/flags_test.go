package main

import (
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing and positional arguments
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, f *cliFlags, rest []string)
	}{
		{
			name: "convert mode with output",
			args: []string{"md2docx", "-o", "out.docx", "input.md"},
			check: func(t *testing.T, f *cliFlags, rest []string) {
				if f.output != "out.docx" {
					t.Errorf("output = %q", f.output)
				}
				if len(rest) != 1 || rest[0] != "input.md" {
					t.Errorf("positional args = %v", rest)
				}
			},
		},
		{
			name: "fill mode with repeated set",
			args: []string{"md2docx", "--fill", "t.docx", "--set", "a=1", "--set", "b=x=y", "-o", "out.docx"},
			check: func(t *testing.T, f *cliFlags, rest []string) {
				if f.fill != "t.docx" {
					t.Errorf("fill = %q", f.fill)
				}
				if len(f.setValues) != 2 {
					t.Errorf("setValues = %v", f.setValues)
				}
			},
		},
		{
			name: "registry mode",
			args: []string{"md2docx", "--registry", "reg.yaml", "--name", "letter", "-o", "out.docx"},
			check: func(t *testing.T, f *cliFlags, rest []string) {
				if f.registry != "reg.yaml" || f.name != "letter" {
					t.Errorf("registry = %q, name = %q", f.registry, f.name)
				}
			},
		},
		{
			name:    "unknown flag fails",
			args:    []string{"md2docx", "--nope"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, rest, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, f, rest)
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadContext - YAML file merged with --set overrides
// ---------------------------------------------------------------------------

func TestLoadContext(t *testing.T) {
	t.Parallel()

	t.Run("set overrides file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "ctx.yaml")
		if err := os.WriteFile(path, []byte("a: file\nb: keep"), 0o600); err != nil {
			t.Fatal(err)
		}
		ctx, err := loadContext(&cliFlags{contextFile: path, setValues: []string{"a=cli"}})
		if err != nil {
			t.Fatalf("loadContext failed: %v", err)
		}
		if ctx["a"] != "cli" || ctx["b"] != "keep" {
			t.Errorf("ctx = %v", ctx)
		}
	})

	t.Run("value may contain equals", func(t *testing.T) {
		t.Parallel()

		ctx, err := loadContext(&cliFlags{setValues: []string{"q=a=b"}})
		if err != nil {
			t.Fatalf("loadContext failed: %v", err)
		}
		if ctx["q"] != "a=b" {
			t.Errorf("q = %q, want %q", ctx["q"], "a=b")
		}
	})

	t.Run("malformed set fails", func(t *testing.T) {
		t.Parallel()

		if _, err := loadContext(&cliFlags{setValues: []string{"novalue"}}); err == nil {
			t.Fatal("expected error for malformed --set")
		}
	})

	t.Run("missing context file fails", func(t *testing.T) {
		t.Parallel()

		if _, err := loadContext(&cliFlags{contextFile: "/does/not/exist.yaml"}); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}
