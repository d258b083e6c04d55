package tabular

import "fmt"

// Cell is a single table cell: the original typed value, the string form
// after format-hint application, and the resolved style. Cells are built by
// [RowSpec.Project] and never mutated afterwards.
type Cell struct {
	Raw     any
	Display string
	Style   Style
}

// String returns a human-readable Cell representation.
func (c Cell) String() string { return fmt.Sprintf("Cell(%s)", c.Display) }

// TableRow is an ordered list of cells, one per column of the RowSpec that
// produced it. IsHeader distinguishes the single header row from body rows.
type TableRow struct {
	Cells    []Cell
	IsHeader bool
}

// Displays returns the display value of every cell in order.
func (r TableRow) Displays() []string {
	out := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Display
	}
	return out
}

// Table is a complete render request: a title, an optional explanation shown
// below it, one header row, and the body rows. Rendering reads the Table but
// never changes it, so one Table can feed any number of backends.
type Table struct {
	Title       string
	Explanation string
	Header      TableRow
	Body        []TableRow
}

// NewTable builds a Table whose header comes from spec.
func NewTable(title string, spec *RowSpec) *Table {
	return &Table{Title: title, Header: spec.MakeHeaderRow()}
}

// Append adds body rows in order.
func (t *Table) Append(rows ...TableRow) {
	t.Body = append(t.Body, rows...)
}

// AppendAll drains a row sequence, as produced by [RowSpec.MakeAll], into
// the body. The first projection error stops the drain and is returned; rows
// consumed before the failure stay appended.
func (t *Table) AppendAll(seq RowSeq) error {
	for row, err := range seq {
		if err != nil {
			return err
		}
		t.Body = append(t.Body, row)
	}
	return nil
}

// validate checks the render-request invariant shared by every backend:
// each body row must match the header's column count.
func (t *Table) validate() error {
	want := len(t.Header.Cells)
	if want == 0 {
		return fmt.Errorf("%w: table has no header row", ErrInvalidSpec)
	}
	for i, row := range t.Body {
		if len(row.Cells) != want {
			return fmt.Errorf("%w: body row %d has %d cells, header has %d",
				ErrInvalidSpec, i, len(row.Cells), want)
		}
	}
	return nil
}

// columnStyle returns the style governing column i, taken from the header
// row a RowSpec attaches.
func (t *Table) columnStyle(i int) Style {
	if i < len(t.Header.Cells) {
		return t.Header.Cells[i].Style
	}
	return Style{}
}
