package md2html

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
)

// MarkdownExt is the only extension collected by the walker. The match is
// case-sensitive, so ".MD" and ".markdown" are left alone.
const MarkdownExt = ".md"

// IsMarkdownFile reports whether name carries the markdown extension.
func IsMarkdownFile(name string) bool {
	return filepath.Ext(name) == MarkdownExt
}

// FindMarkdownFiles walks root and returns the paths, relative to root, of
// every regular markdown file at any depth. Entries are inspected without
// following symbolic links, so links are neither descended nor collected.
func FindMarkdownFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return NewIOError(fmt.Sprintf("failed to read %s", path), err)
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to build relative path: %w", err)
		}
		if rel == "." {
			return nil
		}

		switch {
		case d.IsDir():
			return nil
		case d.Type().IsRegular() && IsMarkdownFile(d.Name()):
			files = append(files, rel)
		default:
			slog.Debug("Skipping entry", "path", rel, "mode", d.Type().String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
