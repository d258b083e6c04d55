package tabular

import "fmt"

// ColumnSpec describes the source of values for one output column and the
// style applied to each of its cells. Construct with [Column] and validate
// by building a [RowSpec]; a ColumnSpec is never mutated afterwards.
type ColumnSpec struct {
	// Key names the field pulled from a source record. It may be a struct
	// field or method name, a map key, or a decimal slice index, and may
	// contain dots to reach into nested values ("customer.name").
	Key string

	// Label is the header text. Empty means no header text for the column;
	// Column defaults it to Key.
	Label string

	// Style holds the column's presentation hints.
	Style Style
}

// Column builds a ColumnSpec. The label defaults to the key when empty.
func Column(key, label string, hints ...Hint) ColumnSpec {
	if label == "" {
		label = key
	}
	var s Style
	for _, h := range hints {
		h(&s)
	}
	return ColumnSpec{Key: key, Label: label, Style: s}
}

// validate rejects malformed column definitions at construction time so a
// bad report definition never reaches a render call.
func (c ColumnSpec) validate() error {
	if c.Key == "" {
		return fmt.Errorf("%w: column %q has no source key", ErrInvalidSpec, c.Label)
	}
	if err := c.Style.validate(); err != nil {
		return fmt.Errorf("column %q: %w", c.Key, err)
	}
	return nil
}
