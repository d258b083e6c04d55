package tabular

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONRenderer renders a Table as a JSON document holding the title,
// explanation, header labels, and the display form of every body row.
// Style hints carry no JSON meaning and are ignored.
type JSONRenderer struct {
	// Indent sets the indentation string. Empty means compact output.
	Indent string
}

type jsonTable struct {
	Title       string     `json:"title,omitempty"`
	Explanation string     `json:"explanation,omitempty"`
	Headers     []string   `json:"headers"`
	Rows        [][]string `json:"rows"`
}

// Render implements the [Renderer] contract.
func (r *JSONRenderer) Render(t *Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	doc := jsonTable{
		Title:       t.Title,
		Explanation: t.Explanation,
		Headers:     t.Header.Displays(),
		Rows:        make([][]string, len(t.Body)),
	}
	for i, row := range t.Body {
		doc.Rows[i] = row.Displays()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.Indent != "" {
		enc.SetIndent("", r.Indent)
	}
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
