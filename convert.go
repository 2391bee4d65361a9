package md2html

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Converter turns markdown files under one source directory into sibling
// HTML pages.
type Converter struct {
	srcDir   string
	renderer Renderer
}

// NewConverter creates a converter rooted at srcDir. A nil renderer falls
// back to goldmark.
func NewConverter(srcDir string, renderer Renderer) *Converter {
	if renderer == nil {
		renderer = NewGoldmarkRenderer()
	}
	return &Converter{
		srcDir:   srcDir,
		renderer: renderer,
	}
}

// SourceDir returns the directory the converter resolves relative paths against.
func (c *Converter) SourceDir() string {
	return c.srcDir
}

// ConvertFile renders the markdown file at rel and writes the page next to it,
// replacing any existing file.
func (c *Converter) ConvertFile(ctx context.Context, rel string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := &Document{
		RelPath:    rel,
		RootPrefix: RootPrefix(rel),
		DestPath:   DestinationPath(c.srcDir, rel),
	}

	srcPath := filepath.Join(c.srcDir, rel)
	source, err := os.ReadFile(srcPath)
	if err != nil {
		return nil, NewIOError(fmt.Sprintf("failed to read %s", srcPath), err)
	}
	doc.Source = source

	body, err := c.renderer.Render(source)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", rel, err)
	}
	doc.Body = body

	if err := os.WriteFile(doc.DestPath, RenderPage(doc.RootPrefix, body), 0644); err != nil {
		return nil, NewIOError(fmt.Sprintf("failed to write %s", doc.DestPath), err)
	}

	slog.Info("Page generated", "path", doc.DestPath)
	return doc, nil
}
