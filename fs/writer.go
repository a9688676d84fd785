// Package fs provides file-based output for converted Markdown.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// MarkdownPath converts an input HTML file path to its output path.
// Example: docs/api/users.html → docs/api/users.md
func MarkdownPath(inputPath string) string {
	ext := strings.ToLower(filepath.Ext(inputPath))
	switch ext {
	case ".html", ".htm", ".xhtml":
		return inputPath[:len(inputPath)-len(ext)] + ".md"
	}
	return inputPath + ".md"
}

// Writer writes converted documents as Markdown files under a base
// directory, mirroring the relative layout of their sources.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes markdown to the output path derived from relPath,
// creating parent directories as needed. A file whose existing content
// hashes equal to the new content is left untouched, preserving its
// modification time for downstream tooling.
func (w *Writer) WriteDocument(relPath string, markdown string) error {
	fullPath := filepath.Join(w.baseDir, MarkdownPath(relPath))

	if existing, err := os.ReadFile(fullPath); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64String(markdown) {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(markdown), 0644)
}
