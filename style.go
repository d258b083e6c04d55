package tabular

import "fmt"

// NumberFormat selects how numeric cell values are displayed.
type NumberFormat int

const (
	NumberNone     NumberFormat = iota // natural string form
	NumberPlain                        // 1,234.50
	NumberInteger                      // 1,234
	NumberCurrency                     // $1,234.50
	NumberPercent                      // 15.50% (raw value is a ratio)
)

var numberNames = map[string]NumberFormat{
	"plain":    NumberPlain,
	"integer":  NumberInteger,
	"currency": NumberCurrency,
	"percent":  NumberPercent,
}

// ParseNumberFormat parses a number format name as used in YAML definitions.
func ParseNumberFormat(s string) (NumberFormat, error) {
	if f, ok := numberNames[s]; ok {
		return f, nil
	}
	return NumberNone, fmt.Errorf("%w: unknown number format %q", ErrInvalidSpec, s)
}

// Alignment controls column text alignment. AlignDefault lets the renderer
// choose: left, or right for columns carrying a numeric format hint.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

var alignNames = map[string]Alignment{
	"left":   AlignLeft,
	"center": AlignCenter,
	"right":  AlignRight,
}

// ParseAlignment parses an alignment name as used in YAML definitions.
func ParseAlignment(s string) (Alignment, error) {
	if a, ok := alignNames[s]; ok {
		return a, nil
	}
	return AlignDefault, fmt.Errorf("%w: unknown alignment %q", ErrInvalidSpec, s)
}

// Style is the fixed set of presentation hints a column or cell may carry.
// Backends apply each hint with whatever native primitive they have and
// silently ignore the rest. The zero value means no special styling.
type Style struct {
	Bold   bool
	Number NumberFormat
	Align  Alignment
	Width  float64 // column width in inches; 0 lets the backend decide
}

// validate rejects hint values outside the recognized set.
func (s Style) validate() error {
	if s.Number < NumberNone || s.Number > NumberPercent {
		return fmt.Errorf("%w: number format out of range: %d", ErrInvalidSpec, s.Number)
	}
	if s.Align < AlignDefault || s.Align > AlignRight {
		return fmt.Errorf("%w: alignment out of range: %d", ErrInvalidSpec, s.Align)
	}
	if s.Width < 0 {
		return fmt.Errorf("%w: negative column width: %v", ErrInvalidSpec, s.Width)
	}
	return nil
}

// numeric reports whether the style carries a numeric format hint.
func (s Style) numeric() bool { return s.Number != NumberNone }

// alignOr resolves AlignDefault: numeric columns read best right-aligned.
func (s Style) alignOr() Alignment {
	if s.Align != AlignDefault {
		return s.Align
	}
	if s.numeric() {
		return AlignRight
	}
	return AlignLeft
}

// Hint mutates a Style during column construction.
type Hint func(*Style)

// Bold displays the column's cells in bold.
func Bold() Hint { return func(s *Style) { s.Bold = true } }

// Money marks a column as currency: right-aligned, $#,##0.00.
func Money() Hint {
	return func(s *Style) {
		s.Number = NumberCurrency
		if s.Align == AlignDefault {
			s.Align = AlignRight
		}
	}
}

// Number sets the column's numeric display format.
func Number(f NumberFormat) Hint { return func(s *Style) { s.Number = f } }

// Align sets the column's text alignment.
func Align(a Alignment) Hint { return func(s *Style) { s.Align = a } }

// Width sets the column width in inches for backends that size columns.
func Width(inches float64) Hint { return func(s *Style) { s.Width = inches } }
