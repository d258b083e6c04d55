package tabular

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// PDF layout constants, in millimeters unless noted.
const (
	pdfMargin       = 12.7 // half inch
	pdfTitleSize    = 16
	pdfExplSize     = 12
	pdfHeaderSize   = 9
	pdfBodySize     = 8
	pdfHeaderHeight = 7
	pdfRowHeight    = 6
	mmPerInch       = 25.4
)

// pdfEpoch is the creation date stamped into documents when the caller does
// not set one, keeping repeated renders byte-identical.
var pdfEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFRenderer renders a Table as a print-ready PDF: bold title, explanation
// paragraph, a white-on-navy header band, and zebra-striped body rows with
// grid lines. Column width hints are taken in inches; columns without a
// hint share the remaining page width evenly.
type PDFRenderer struct {
	// Orientation is "P" (portrait, default) or "L" (landscape).
	Orientation string

	// Paper is the page size name ("A4" default, "Letter", ...).
	Paper string

	// Created overrides the document creation date. Zero means a fixed
	// epoch so that rendering stays idempotent.
	Created time.Time
}

// Render implements the [Renderer] contract.
func (r *PDFRenderer) Render(t *Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	orientation := r.Orientation
	if orientation == "" {
		orientation = "P"
	}
	paper := r.Paper
	if paper == "" {
		paper = "A4"
	}
	created := r.Created
	if created.IsZero() {
		created = pdfEpoch
	}

	pdf := fpdf.New(orientation, "mm", paper, "")
	pdf.SetCreationDate(created)
	pdf.SetTitle(t.Title, true)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if t.Title != "" {
		pdf.SetFont("Helvetica", "B", pdfTitleSize)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 9, tr(t.Title), "", 1, "L", false, 0, "")
	}
	if t.Explanation != "" {
		pdf.SetFont("Helvetica", "", pdfExplSize)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 6, tr(t.Explanation), "", "L", false)
	}
	if t.Title != "" || t.Explanation != "" {
		pdf.Ln(4)
	}

	widths := r.columnWidths(pdf, t)

	// Header band: white bold text on navy.
	pdf.SetFont("Helvetica", "B", pdfHeaderSize)
	pdf.SetFillColor(1, 0, 128)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(0, 0, 0)
	for i, cell := range t.Header.Cells {
		pdf.CellFormat(widths[i], pdfHeaderHeight, tr(cell.Display), "1", 0, pdfAlign(cell.Style), true, 0, "")
	}
	pdf.Ln(-1)

	// Body rows with alternating grey fills.
	pdf.SetTextColor(0, 0, 0)
	for i, row := range t.Body {
		if i%2 == 0 {
			pdf.SetFillColor(235, 235, 235)
		} else {
			pdf.SetFillColor(250, 250, 250)
		}
		for j, cell := range row.Cells {
			font := ""
			if cell.Style.Bold {
				font = "B"
			}
			pdf.SetFont("Helvetica", font, pdfBodySize)
			pdf.CellFormat(widths[j], pdfRowHeight, tr(cell.Display), "1", 0, pdfAlign(cell.Style), true, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: pdf: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// columnWidths converts width hints from inches to mm and divides the rest
// of the usable page width among the unhinted columns.
func (r *PDFRenderer) columnWidths(pdf *fpdf.Fpdf, t *Table) []float64 {
	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 2*pdfMargin

	n := len(t.Header.Cells)
	widths := make([]float64, n)
	fixed := 0.0
	open := 0
	for i := range n {
		if w := t.columnStyle(i).Width; w > 0 {
			widths[i] = w * mmPerInch
			fixed += widths[i]
		} else {
			open++
		}
	}
	if open > 0 {
		share := (usable - fixed) / float64(open)
		if share < 0 {
			share = 0
		}
		for i := range n {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

func pdfAlign(s Style) string {
	switch s.alignOr() {
	case AlignRight:
		return "R"
	case AlignCenter:
		return "C"
	default:
		return "L"
	}
}
