// Package parser extracts analyzable prose from input files. Markdown is
// flattened so that markup and code blocks do not pollute the readability
// metrics; everything else is treated as plain UTF-8 text.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileType represents the type of input file.
type FileType int

const (
	FileTypePlain FileType = iota
	FileTypeMarkdown
)

// GetFileType determines the file type from the path extension.
func GetFileType(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FileTypeMarkdown
	default:
		return FileTypePlain
	}
}

// ExtractText returns the prose contained in content.
func ExtractText(path string, content []byte) string {
	if GetFileType(path) == FileTypeMarkdown {
		return FlattenMarkdown(content)
	}
	return string(content)
}

// ReadText reads a file and extracts its prose.
func ReadText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return ExtractText(path, content), nil
}
