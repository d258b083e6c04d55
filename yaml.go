package tabular

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlSpec is the on-disk shape of a declarative report definition:
//
//	title: Invoices by Customer
//	explanation: Amount of each invoice
//	columns:
//	  - key: invoiceid
//	    label: "Invoice #"
//	  - key: amount
//	    label: Total
//	    format: currency
//	    bold: true
type yamlSpec struct {
	Title       string       `yaml:"title"`
	Explanation string       `yaml:"explanation"`
	Columns     []yamlColumn `yaml:"columns"`
}

type yamlColumn struct {
	Key    string  `yaml:"key"`
	Label  string  `yaml:"label"`
	Bold   bool    `yaml:"bold"`
	Money  bool    `yaml:"money"`
	Format string  `yaml:"format"`
	Align  string  `yaml:"align"`
	Width  float64 `yaml:"width"`
}

// LoadSpec reads a YAML report definition into a RowSpec plus a Table
// seeded with the definition's title and explanation. Unknown field names
// anywhere in the document fail with [ErrInvalidSpec], so a typoed style
// hint is caught here rather than at render time.
func LoadSpec(r io.Reader) (*RowSpec, *Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc yamlSpec
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	columns := make([]ColumnSpec, 0, len(doc.Columns))
	for _, c := range doc.Columns {
		var hints []Hint
		if c.Bold {
			hints = append(hints, Bold())
		}
		if c.Money {
			hints = append(hints, Money())
		}
		if c.Format != "" {
			f, err := ParseNumberFormat(c.Format)
			if err != nil {
				return nil, nil, fmt.Errorf("column %q: %w", c.Key, err)
			}
			hints = append(hints, Number(f))
		}
		if c.Align != "" {
			a, err := ParseAlignment(c.Align)
			if err != nil {
				return nil, nil, fmt.Errorf("column %q: %w", c.Key, err)
			}
			hints = append(hints, Align(a))
		}
		if c.Width != 0 {
			hints = append(hints, Width(c.Width))
		}
		columns = append(columns, Column(c.Key, c.Label, hints...))
	}

	spec, err := NewRowSpec(columns...)
	if err != nil {
		return nil, nil, err
	}
	table := NewTable(doc.Title, spec)
	table.Explanation = doc.Explanation
	return spec, table, nil
}

// ParseSpec is [LoadSpec] over a byte slice.
func ParseSpec(data []byte) (*RowSpec, *Table, error) {
	return LoadSpec(bytes.NewReader(data))
}
