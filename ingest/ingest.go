// Package ingest flattens résumé files of several formats into the plain
// text shape the parser works on. Structural headings in marked-up
// formats (Markdown, HTML, DOCX heading styles) are normalized into
// underlined heading lines so section detection behaves the same
// regardless of the source format.
package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Document is one ingested résumé, ready for parsing.
type Document struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Format   string `json:"format"`
	Text     string `json:"text"`
}

// Reader converts raw document bytes into plain résumé text.
type Reader interface {
	Read(r io.Reader, filename string) (string, error)
}

// SupportedExtensions lists the file extensions this package can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// ForFile returns the appropriate reader for a filename.
func ForFile(filename string) (Reader, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".txt", "":
		return &TextReader{}, nil
	case ".md", ".markdown":
		return &MarkdownReader{}, nil
	case ".html", ".htm":
		return &HTMLReader{}, nil
	case ".pdf":
		return &PDFReader{FallbackPdftotext: true}, nil
	case ".docx":
		return &DOCXReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// FromReader ingests a document from a stream, picking the reader by
// file extension.
func FromReader(r io.Reader, filename string) (*Document, error) {
	reader, err := ForFile(filename)
	if err != nil {
		return nil, err
	}
	text, err := reader.Read(r, filename)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", filename, err)
	}
	return &Document{
		ID:       uuid.NewString(),
		Filename: filepath.Base(filename),
		Format:   strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), "."),
		Text:     text,
	}, nil
}

// File ingests a document from disk.
func File(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return FromReader(f, path)
}

// heading renders a title as an underlined heading line pair.
func heading(title string) string {
	title = strings.TrimSpace(title)
	underline := len(title)
	if underline < 3 {
		underline = 3
	}
	return title + "\n" + strings.Repeat("-", underline)
}
