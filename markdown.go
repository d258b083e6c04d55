package tabular

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// MarkdownRenderer renders a Table as a GitHub-flavored Markdown table.
// Alignment hints become alignment markers in the separator row; bold cells
// are wrapped in ** markers. A title renders as a "## " heading and the
// explanation as a paragraph between the heading and the table.
type MarkdownRenderer struct{}

// Render implements the [Renderer] contract.
func (r *MarkdownRenderer) Render(t *Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.write(&buf, t); err != nil {
		return nil, fmt.Errorf("%w: markdown: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func (r *MarkdownRenderer) write(w io.Writer, t *Table) error {
	if t.Title != "" {
		if _, err := fmt.Fprintf(w, "## %s\n\n", t.Title); err != nil {
			return err
		}
	}
	if t.Explanation != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", t.Explanation); err != nil {
			return err
		}
	}

	header := t.Header.Displays()
	numCols := len(header)
	rows := make([][]string, len(t.Body))
	for i, row := range t.Body {
		rows[i] = markdownCells(row)
	}

	// Column widths, minimum 3 for the alignment markers.
	widths := make([]int, numCols)
	for i, col := range header {
		if w := runewidth.StringWidth(col); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	aligns := make([]Alignment, numCols)
	for i := range aligns {
		aligns[i] = t.columnStyle(i).alignOr()
	}

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

// markdownCells applies the bold hint, the only style Markdown can express
// inline.
func markdownCells(row TableRow) []string {
	out := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		if cell.Style.Bold && cell.Display != "" {
			out[i] = "**" + cell.Display + "**"
		} else {
			out[i] = cell.Display
		}
	}
	return out
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
