package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVRenderer renders a Table as delimiter-separated values: one header
// record followed by one record per body row. Style hints have no CSV
// primitive and are ignored; the title and explanation are likewise
// outside the format and skipped.
type CSVRenderer struct {
	// Delimiter is the field separator. Zero means comma; '\t' yields TSV.
	Delimiter rune
}

// Render implements the [Renderer] contract.
func (r *CSVRenderer) Render(t *Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if r.Delimiter != 0 {
		cw.Comma = r.Delimiter
	}
	if err := cw.Write(t.Header.Displays()); err != nil {
		return nil, fmt.Errorf("%w: csv: %v", ErrRender, err)
	}
	for _, row := range t.Body {
		if err := cw.Write(row.Displays()); err != nil {
			return nil, fmt.Errorf("%w: csv: %v", ErrRender, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("%w: csv: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
