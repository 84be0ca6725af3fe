// Package segment splits raw résumé text into ordered heading segments.
package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/careerforge/resumeparse/resume"
)

// Reserved headers for segments that have no source heading line.
const (
	ImplicitHeader     = "header"       // leading lines before the first heading
	UnstructuredHeader = "UNSTRUCTURED" // document with no detected headings
)

// Config controls heading detection.
type Config struct {
	// MaxHeadingLength is the rune-count ceiling for a heading line.
	// Longer lines are always treated as body text.
	MaxHeadingLength int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{MaxHeadingLength: 60}
}

// Segmenter detects heading lines and groups the lines between them.
//
// A heading is a short non-bullet line that is either underlined by a run
// of dashes/underscores or written in ALL CAPS. The heuristic trades
// recall for precision: a capitalized bullet keeps its bullet reading, and
// a long shouted line stays body text. Genuinely ambiguous lines (a short
// ALL-CAPS body line) will be misread as headings; callers see those as
// unrecognized segments rather than lost text.
type Segmenter struct {
	cfg Config
}

// New returns a Segmenter, applying defaults for zero config values.
func New(cfg Config) *Segmenter {
	if cfg.MaxHeadingLength <= 0 {
		cfg.MaxHeadingLength = DefaultConfig().MaxHeadingLength
	}
	return &Segmenter{cfg: cfg}
}

// Split divides text into ordered segments. Every input line lands in
// exactly one segment: recognized headings become segment headers (with
// their underline, if any), everything else becomes body. A document with
// no headings at all yields a single UNSTRUCTURED segment.
func (s *Segmenter) Split(text string) []resume.Segment {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	// Drop the trailing empty element a final newline produces, so
	// reconstruction matches the source line sequence.
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var segments []resume.Segment
	var current *resume.Segment

	flush := func() {
		if current != nil {
			current.OrderIndex = len(segments)
			segments = append(segments, *current)
			current = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if s.isHeading(lines, i) {
			flush()
			current = &resume.Segment{
				Header:     strings.TrimSpace(line),
				HeaderLine: line,
			}
			if i+1 < len(lines) && isSeparator(lines[i+1]) {
				current.Separator = lines[i+1]
				i++
			}
			continue
		}
		if current == nil {
			// Leading lines before the first heading form the
			// implicit name/contact block.
			current = &resume.Segment{Header: ImplicitHeader}
		}
		current.Body = append(current.Body, line)
	}
	flush()

	if len(segments) == 1 && segments[0].Header == ImplicitHeader {
		// Degenerate case: nothing looked like a heading.
		segments[0].Header = UnstructuredHeader
	}
	if len(segments) == 0 {
		segments = []resume.Segment{{Header: UnstructuredHeader}}
	}
	return segments
}

// isHeading decides whether lines[i] opens a new segment.
func (s *Segmenter) isHeading(lines []string, i int) bool {
	trimmed := strings.TrimSpace(lines[i])
	if trimmed == "" || IsBullet(trimmed) {
		return false
	}
	if utf8.RuneCountInString(trimmed) > s.cfg.MaxHeadingLength {
		return false
	}
	if i+1 < len(lines) && isSeparator(lines[i+1]) {
		return true
	}
	return isAllCaps(trimmed)
}

// IsBullet reports whether a trimmed line carries a leading bullet marker.
func IsBullet(trimmed string) bool {
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	// A bare marker with no text still reads as a bullet.
	return trimmed == "-" || trimmed == "*" || trimmed == "•"
}

// isSeparator matches underline rows such as "-----" or "_____".
func isSeparator(line string) bool {
	trimmed := strings.TrimSpace(line)
	if utf8.RuneCountInString(trimmed) < 3 {
		return false
	}
	for _, r := range trimmed {
		if r != '-' && r != '_' {
			return false
		}
	}
	return true
}

// isAllCaps reports whether the line contains letters and none lowercase.
func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
