package tabular

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"
)

// HTMLRenderer renders a Table as an HTML fragment: an optional <h2> title,
// an optional <p> explanation, and a <table class="reporttable">. Bold and
// money cells carry the cell_bold and cell_money classes; body rows
// alternate tr_odd and tr_even so a stylesheet can stripe them. The caller
// embeds the fragment in a page and supplies the CSS.
type HTMLRenderer struct{}

// Render implements the [Renderer] contract.
func (r *HTMLRenderer) Render(t *Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.write(&buf, t); err != nil {
		return nil, fmt.Errorf("%w: html: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func (r *HTMLRenderer) write(w io.Writer, t *Table) error {
	if t.Title != "" {
		if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n", html.EscapeString(t.Title)); err != nil {
			return err
		}
	}
	if t.Explanation != "" {
		if _, err := fmt.Fprintf(w, "<p>%s</p>\n", html.EscapeString(t.Explanation)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, `<table class="reporttable">`); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for _, cell := range t.Header.Cells {
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", alignStyle(cell.Style), html.EscapeString(cell.Display)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	zebra := [2]string{"tr_odd", "tr_even"}
	for i, row := range t.Body {
		if _, err := fmt.Fprintf(w, "    <tr class=%q>\n", zebra[i%2]); err != nil {
			return err
		}
		for _, cell := range row.Cells {
			if err := writeHTMLCell(w, cell); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLCell(w io.Writer, cell Cell) error {
	var classes []string
	if cell.Style.Bold {
		classes = append(classes, "cell_bold")
	}
	if cell.Style.Number == NumberCurrency {
		classes = append(classes, "cell_money")
	}
	attrs := ""
	if len(classes) > 0 {
		attrs = ` class="` + strings.Join(classes, " ") + `"`
	}
	attrs += alignStyle(cell.Style)
	_, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", attrs, html.EscapeString(cell.Display))
	return err
}

func alignStyle(s Style) string {
	switch s.alignOr() {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
