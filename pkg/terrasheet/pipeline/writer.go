package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	terrasheet "github.com/wabcloud/terrasheet/pkg/terrasheet"
	"github.com/wabcloud/terrasheet/pkg/terrasheet/models"
)

// writeDocuments writes the rendered documents under dir, creating the
// directory tree as needed. Partial writes from an aborted package are
// not rolled back.
func writeDocuments(dir string, docs []models.OutputDocument) ([]string, error) {
	var written []string
	for _, doc := range docs {
		path := filepath.Join(dir, filepath.FromSlash(doc.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, &terrasheet.WriteError{Path: path, Err: err}
		}
		mode := os.FileMode(0o644)
		if doc.Executable {
			mode = 0o755
		}
		if err := os.WriteFile(path, []byte(doc.Content), mode); err != nil {
			return written, &terrasheet.WriteError{Path: path, Err: err}
		}
		written = append(written, path)
	}
	return written, nil
}

// copyTree copies a directory recursively, preserving file modes.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
		if err != nil {
			return err
		}
		defer out.Close()

		_, err = io.Copy(out, in)
		return err
	})
}

var dirNameSanitizer = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// sanitizeDirName makes a discovered value safe as a directory name.
func sanitizeDirName(name string) string {
	cleaned := dirNameSanitizer.ReplaceAllString(strings.TrimSpace(name), "_")
	cleaned = strings.Trim(cleaned, "._")
	if cleaned == "" {
		return "package"
	}
	return cleaned
}
