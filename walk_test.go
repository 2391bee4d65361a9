package md2html

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/r3labs/diff/v3"
)

func writeTreeForTest(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

func assertSameFiles(t *testing.T, got, want []string) {
	t.Helper()

	changes, err := diff.Diff(want, got)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if len(got) != len(want) || len(changes) > 0 {
		for _, change := range changes {
			t.Logf("%s at %v: want %v, got %v", change.Type, change.Path, change.From, change.To)
		}
		t.Fatalf("unexpected files: got %v, want %v", got, want)
	}
}

func TestIsMarkdownFile(t *testing.T) {
	cases := map[string]bool{
		"index.md":       true,
		"a.b.md":         true,
		".md":            true,
		"README.MD":      false,
		"notes.Md":       false,
		"notes.markdown": false,
		"md":             false,
		"index.md.bak":   false,
		"index.html":     false,
	}

	for name, want := range cases {
		if got := IsMarkdownFile(name); got != want {
			t.Errorf("IsMarkdownFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestFindMarkdownFilesCollectsNestedMarkdown(t *testing.T) {
	root := t.TempDir()
	writeTreeForTest(t, root, map[string]string{
		"index.md":             "# index",
		"README.MD":            "# upper",
		"notes.markdown":       "# long ext",
		"a.txt":                "text",
		"guide/intro.md":       "# intro",
		"guide/deep/leaf.md":   "# leaf",
		"guide/deep/style.css": "body{}",
		"dir.md/inner.md":      "# inner",
	})

	files, err := FindMarkdownFiles(root)
	if err != nil {
		t.Fatalf("FindMarkdownFiles returned error: %v", err)
	}

	assertSameFiles(t, files, []string{
		filepath.Join("dir.md", "inner.md"),
		filepath.Join("guide", "deep", "leaf.md"),
		filepath.Join("guide", "intro.md"),
		"index.md",
	})
}

func TestFindMarkdownFilesSkipsSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeTreeForTest(t, root, map[string]string{
		"index.md": "# index",
	})
	writeTreeForTest(t, outside, map[string]string{
		"other.md":     "# other",
		"sub/again.md": "# again",
	})

	if err := os.Symlink(filepath.Join(root, "index.md"), filepath.Join(root, "alias.md")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := os.Symlink(outside, filepath.Join(root, "linked")); err != nil {
		t.Fatalf("symlink dir: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "gone.md"), filepath.Join(root, "broken.md")); err != nil {
		t.Fatalf("symlink broken: %v", err)
	}

	files, err := FindMarkdownFiles(root)
	if err != nil {
		t.Fatalf("FindMarkdownFiles returned error: %v", err)
	}

	assertSameFiles(t, files, []string{"index.md"})
}

func TestFindMarkdownFilesEmptyTree(t *testing.T) {
	root := t.TempDir()
	writeTreeForTest(t, root, map[string]string{
		"index.css":       "body{}",
		"assets/logo.md5": "x",
	})

	files, err := FindMarkdownFiles(root)
	if err != nil {
		t.Fatalf("FindMarkdownFiles returned error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no markdown files, got %v", files)
	}
}

func TestFindMarkdownFilesMissingRoot(t *testing.T) {
	_, err := FindMarkdownFiles(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !IsErrorType(err, IOError) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFindMarkdownFilesUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	writeTreeForTest(t, root, map[string]string{
		"index.md":         "# index",
		"locked/hidden.md": "# hidden",
	})
	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod locked: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	_, err := FindMarkdownFiles(root)
	if err == nil {
		t.Fatal("expected error for unreadable directory")
	}
	if !IsErrorType(err, IOError) {
		t.Fatalf("unexpected error: %v", err)
	}
}
