// Package templates locates .docx template files on disk and loads the
// optional YAML registry describing them.
package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidName = errors.New("templates: invalid template name")
)

// DefaultDirs returns the directories searched when the caller does not
// provide any: ./templates and ../templates relative to the working
// directory.
func DefaultDirs() []string {
	return []string{"templates", filepath.Join("..", "templates")}
}

// Find searches dirs in order for a template file. Name must be a bare
// file name; the .docx extension is appended when name has none. Returns
// the full path of the first match, or "" when no directory has the file.
func Find(dirs []string, name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if filepath.Ext(name) == "" {
		name += ".docx"
	}
	for _, dir := range dirs {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return path, nil
	}
	return "", nil
}
