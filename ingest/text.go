package ingest

import (
	"bufio"
	"io"
	"strings"
)

// TextReader handles plain text files. The text passes through as-is
// apart from line-ending normalization; plain résumés already carry
// their headings in detectable form.
type TextReader struct{}

func (p *TextReader) Read(r io.Reader, filename string) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out strings.Builder
	first := true
	for scanner.Scan() {
		if !first {
			out.WriteString("\n")
		}
		out.WriteString(scanner.Text())
		first = false
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return out.String(), nil
}
