package tabular

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidSpec       = errors.New("invalid table spec")
	ErrMissingField      = errors.New("missing field")
	ErrFormatMismatch    = errors.New("format mismatch")
	ErrRender            = errors.New("render failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Format represents an output format.
type Format string

const (
	Text     Format = "text"
	HTML     Format = "html"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	JSON     Format = "json"
	PDF      Format = "pdf"
	XLSX     Format = "xlsx"
)

var formats = []Format{Text, HTML, CSV, TSV, Markdown, JSON, PDF, XLSX}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Renderer turns a Table into a complete, self-contained byte buffer for one
// output format. Render never mutates its input, ignores style hints the
// target format cannot express, and returns no partial output on failure.
// A Table may be rendered any number of times, by any number of renderers,
// concurrently.
type Renderer interface {
	Render(t *Table) ([]byte, error)
}

// NewRenderer returns a renderer for f with default options. Callers needing
// backend options construct the concrete renderer directly.
func NewRenderer(f Format) (Renderer, error) {
	switch f {
	case Text:
		return &TextRenderer{}, nil
	case HTML:
		return &HTMLRenderer{}, nil
	case CSV:
		return &CSVRenderer{}, nil
	case TSV:
		return &CSVRenderer{Delimiter: '\t'}, nil
	case Markdown:
		return &MarkdownRenderer{}, nil
	case JSON:
		return &JSONRenderer{}, nil
	case PDF:
		return &PDFRenderer{}, nil
	case XLSX:
		return &XLSXRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t in format f using default renderer options.
func Marshal(f Format, t *Table) ([]byte, error) {
	r, err := NewRenderer(f)
	if err != nil {
		return nil, err
	}
	return r.Render(t)
}
