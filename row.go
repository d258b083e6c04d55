package tabular

import (
	"fmt"
	"iter"
)

// RowSeq is a lazy sequence of projected rows. Iteration stops at the first
// non-nil error; the sequence is restartable whenever its source is.
type RowSeq = iter.Seq2[TableRow, error]

// RowSpec is an ordered list of ColumnSpecs. It doubles as the table's
// header definition and as a factory that projects source records into
// TableRows, which guarantees the header labels always match their columns.
// A RowSpec holds no mutable state; all of its methods are pure.
type RowSpec struct {
	columns []ColumnSpec
}

// NewRowSpec validates the given columns and builds a RowSpec. Duplicate
// source keys are allowed (a field may appear under two labels); an empty
// column list or a malformed column is rejected.
func NewRowSpec(columns ...ColumnSpec) (*RowSpec, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: row spec has no columns", ErrInvalidSpec)
	}
	for _, c := range columns {
		if err := c.validate(); err != nil {
			return nil, err
		}
	}
	cols := make([]ColumnSpec, len(columns))
	copy(cols, columns)
	return &RowSpec{columns: cols}, nil
}

// Columns returns a copy of the spec's columns in display order.
func (r *RowSpec) Columns() []ColumnSpec {
	out := make([]ColumnSpec, len(r.columns))
	copy(out, r.columns)
	return out
}

// Len returns the number of columns.
func (r *RowSpec) Len() int { return len(r.columns) }

// MakeHeaderRow builds the header row: one cell per column whose display
// value is the column label, carrying the column's style so backends can
// propagate hints to headers.
func (r *RowSpec) MakeHeaderRow() TableRow {
	cells := make([]Cell, len(r.columns))
	for i, c := range r.columns {
		cells[i] = Cell{Raw: c.Label, Display: c.Label, Style: c.Style}
	}
	return TableRow{Cells: cells, IsHeader: true}
}

// Project extracts one value per column from record, in column order,
// applies each column's format hint, and returns the resulting row. The
// returned row always has exactly one cell per column. Extraction failures
// wrap [ErrMissingField]; format failures wrap [ErrFormatMismatch].
func (r *RowSpec) Project(record any) (TableRow, error) {
	cells := make([]Cell, len(r.columns))
	for i, col := range r.columns {
		value, err := extract(record, col.Key)
		if err != nil {
			return TableRow{}, err
		}
		display, err := displayValue(value, col.Style)
		if err != nil {
			return TableRow{}, fmt.Errorf("column %q: %w", col.Key, err)
		}
		cells[i] = Cell{Raw: value, Display: display, Style: col.Style}
	}
	return TableRow{Cells: cells}, nil
}

// MakeAll lazily projects each record in order. Records are projected
// independently, so mixed record shapes are fine as long as every record
// can satisfy every column; the first failure ends the sequence with its
// error and no further records are touched.
func (r *RowSpec) MakeAll(records ...any) RowSeq {
	return func(yield func(TableRow, error) bool) {
		for _, record := range records {
			row, err := r.Project(record)
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}

// MakeAllIter is MakeAll over an arbitrary record sequence, for callers
// streaming large result sets without materializing them first.
func (r *RowSpec) MakeAllIter(records iter.Seq[any]) RowSeq {
	return func(yield func(TableRow, error) bool) {
		for record := range records {
			row, err := r.Project(record)
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}

// MakeAllChan is MakeAll over a channel of records.
// It is a thin wrapper around [RowSpec.MakeAllIter].
func (r *RowSpec) MakeAllChan(records <-chan any) RowSeq {
	return r.MakeAllIter(chanToIter(records))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
