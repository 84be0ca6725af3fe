// Package resumeparse turns free-form résumé text into a normalized,
// machine-readable record.
//
// The pipeline is a pure function of its input: raw text is split into
// heading segments, each segment is run through the extraction rule for
// its section type, and the per-segment results are merged into one
// Record. Segments whose header matches no known section type are
// returned verbatim instead of being dropped.
package resumeparse

import (
	"io"
	"log/slog"

	"github.com/careerforge/resumeparse/ingest"
	"github.com/careerforge/resumeparse/internal/assemble"
	"github.com/careerforge/resumeparse/internal/extract"
	"github.com/careerforge/resumeparse/internal/segment"
	"github.com/careerforge/resumeparse/resume"
)

// Config controls parsing behavior.
type Config struct {
	// MaxHeadingLength is the rune-count ceiling for a section heading
	// line. Longer lines are always body text.
	MaxHeadingLength int

	// Logger receives debug-level parse events. Nil means silent.
	Logger *slog.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{MaxHeadingLength: segment.DefaultConfig().MaxHeadingLength}
}

// Parser runs the segment → extract → assemble pipeline. It holds no
// mutable state across invocations; one Parser may be shared freely.
type Parser struct {
	segmenter *segment.Segmenter
	log       *slog.Logger
}

// New returns a Parser, applying defaults for zero config values.
func New(cfg Config) *Parser {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{
		segmenter: segment.New(segment.Config{MaxHeadingLength: cfg.MaxHeadingLength}),
		log:       log,
	}
}

// Parse converts résumé text into a Record plus the segments it could
// not classify. It always produces output: malformed sections degrade
// into free-text fields or the unrecognized list, never errors.
func (p *Parser) Parse(text string) (*resume.Record, []resume.UnrecognizedSegment) {
	segments := p.segmenter.Split(text)
	p.log.Debug("segmented document", "segments", len(segments))

	extractions := make([]extract.Extraction, len(segments))
	for i, seg := range segments {
		extractions[i] = extract.Section(seg)
		if extractions[i].Kind == extract.KindUnknown {
			p.log.Debug("unrecognized section", "header", seg.Header, "lines", len(seg.Body))
		}
	}

	return assemble.Merge(segments, extractions)
}

// ParseReader ingests a document from a stream (format chosen by file
// extension) and parses it.
func (p *Parser) ParseReader(r io.Reader, filename string) (*resume.Record, []resume.UnrecognizedSegment, error) {
	doc, err := ingest.FromReader(r, filename)
	if err != nil {
		return nil, nil, err
	}
	p.log.Debug("ingested document", "id", doc.ID, "format", doc.Format)
	record, unrecognized := p.Parse(doc.Text)
	return record, unrecognized, nil
}

// ParseFile ingests a résumé file from disk and parses it.
func (p *Parser) ParseFile(path string) (*resume.Record, []resume.UnrecognizedSegment, error) {
	doc, err := ingest.File(path)
	if err != nil {
		return nil, nil, err
	}
	p.log.Debug("ingested document", "id", doc.ID, "file", doc.Filename, "format", doc.Format)
	record, unrecognized := p.Parse(doc.Text)
	return record, unrecognized, nil
}

// Parse runs the pipeline with default configuration.
func Parse(text string) (*resume.Record, []resume.UnrecognizedSegment) {
	return New(DefaultConfig()).Parse(text)
}
