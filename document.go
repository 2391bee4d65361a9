package md2html

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

const (
	// StylesheetName is the shared stylesheet expected at the source root.
	StylesheetName = "index.css"

	htmlExt = ".html"
)

// RootPrefix returns the "../" sequence that leads from the directory of rel
// back to the source root: one per directory component of rel.
func RootPrefix(rel string) string {
	segments := lo.Compact(strings.Split(filepath.ToSlash(rel), "/"))
	if len(segments) < 2 {
		return ""
	}
	return strings.Repeat("../", len(segments)-1)
}

// DestinationPath returns the sibling .html path for a relative markdown path.
func DestinationPath(srcDir, rel string) string {
	return filepath.Join(srcDir, strings.TrimSuffix(rel, MarkdownExt)+htmlExt)
}

// RenderPage wraps an HTML fragment in the fixed page shell.
func RenderPage(prefix string, body []byte) []byte {
	var page strings.Builder
	page.Grow(len(body) + 160)

	page.WriteString(`<!DOCTYPE html><html><head><meta charset="UTF-8">`)
	page.WriteString(`<link type="text/css" rel="stylesheet" href="`)
	page.WriteString(prefix)
	page.WriteString(StylesheetName)
	page.WriteString(`"></head><body>`)
	page.Write(body)
	page.WriteString(`</body></html>`)

	return []byte(page.String())
}
