package md2html

// Document 表示一次转换中的单个Markdown文件
type Document struct {
	RelPath    string // path relative to the source directory
	RootPrefix string // "../" segments leading back to the source directory
	Source     []byte // raw markdown
	Body       []byte // rendered HTML fragment
	DestPath   string // absolute path of the generated page
}

// Result lists what one run produced.
type Result struct {
	SourceDir string
	Files     []string // relative markdown paths, in walk order
	Generated []string // destination paths, in conversion order
}
