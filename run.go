package md2html

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
)

// Run resolves src, collects every markdown file beneath it and converts them
// one by one in walk order. The first failure stops the run; pages written
// before it stay on disk.
func Run(ctx context.Context, src string, renderer Renderer) (*Result, error) {
	srcDir, err := ResolveSourceDir(src)
	if err != nil {
		return nil, err
	}

	files, err := FindMarkdownFiles(srcDir)
	if err != nil {
		return nil, err
	}

	converter := NewConverter(srcDir, renderer)
	slog.Debug("Markdown files collected", "dir", converter.SourceDir(), "count", len(files))

	result := &Result{
		SourceDir: converter.SourceDir(),
		Files:     files,
	}

	docs := make([]*Document, 0, len(files))
	for _, rel := range files {
		doc, err := converter.ConvertFile(ctx, rel)
		if err != nil {
			result.Generated = destinations(docs)
			return result, err
		}
		docs = append(docs, doc)
	}

	result.Generated = destinations(docs)
	return result, nil
}

func destinations(docs []*Document) []string {
	return lo.Map(docs, func(doc *Document, _ int) string {
		return doc.DestPath
	})
}
