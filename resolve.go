package md2html

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveSourceDir validates the --src value and returns the canonical source
// directory: absolute, symlinks evaluated, and terminated by exactly one
// os.PathSeparator. A path naming a regular file resolves to its directory.
func ResolveSourceDir(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", NewValidationError("invalid or missing --src parameter", nil)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", NewValidationError(fmt.Sprintf("invalid path for the --src parameter %s", path), err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", NewValidationError(fmt.Sprintf("invalid path for the --src parameter %s", path), err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", NewValidationError(fmt.Sprintf("invalid path for the --src parameter %s", resolved), err)
	}
	if !info.IsDir() {
		resolved = filepath.Dir(resolved)
	}

	return withTrailingSeparator(resolved), nil
}

func withTrailingSeparator(dir string) string {
	sep := string(os.PathSeparator)
	if strings.HasSuffix(dir, sep) {
		return dir
	}
	return dir + sep
}
