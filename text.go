package tabular

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls text-table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// TextRenderer renders a Table as a fixed-width text table. Alignment hints
// are honored (numeric columns default right); bold has no text primitive
// and is ignored. The explanation, when present, prints as a caption line
// below the table.
type TextRenderer struct {
	// Border selects the border character set.
	Border BorderStyle

	// MaxWidths caps column widths; wider cells are truncated with "...".
	// A zero entry means no limit for that column.
	MaxWidths []int

	// WrapWidths wraps cell text onto multiple visual lines per row.
	// A zero entry means no wrapping for that column.
	WrapWidths []int

	// PageSize re-prints the header row every PageSize body rows.
	PageSize int

	// NumberHeader, when non-empty, prepends a right-aligned row number
	// column captioned with its value.
	NumberHeader string

	// Styles holds optional per-column decorators applied to each fully
	// formatted cell string as the last step before writing, so ANSI codes
	// never affect width calculations. Nil entries mean no decoration.
	Styles []func(string) string
}

// Render implements the [Renderer] contract.
func (r *TextRenderer) Render(t *Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.write(&buf, t); err != nil {
		return nil, fmt.Errorf("%w: text: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func (r *TextRenderer) write(w io.Writer, t *Table) error {
	header := t.Header.Displays()
	rows := make([][]string, len(t.Body))
	for i, row := range t.Body {
		rows[i] = row.Displays()
	}

	numCols := len(header)
	aligns := make([]Alignment, numCols)
	for i := range aligns {
		aligns[i] = t.columnStyle(i).alignOr()
	}
	styles := extendStyles(r.Styles, numCols)
	wrapWidths := r.WrapWidths

	// Row numbering prepends a column.
	if r.NumberHeader != "" {
		header = append([]string{r.NumberHeader}, header...)
		for i, row := range rows {
			rows[i] = append([]string{fmt.Sprintf("%d", i+1)}, row...)
		}
		aligns = append([]Alignment{AlignRight}, aligns...)
		styles = append([]func(string) string{nil}, styles...)
		if len(wrapWidths) > 0 {
			wrapWidths = append([]int{0}, wrapWidths...)
		}
		numCols++
	}

	widths := computeWidths(numCols, header, rows)
	for i, max := range r.MaxWidths {
		if i < numCols && max > 0 && widths[i] > max {
			widths[i] = max
		}
	}

	if r.Border == BorderNone {
		if err := r.renderPlain(w, t, header, rows, widths, aligns, styles, wrapWidths); err != nil {
			return err
		}
	} else {
		if err := r.renderBordered(w, t, header, rows, widths, aligns, styles, wrapWidths); err != nil {
			return err
		}
	}

	if t.Explanation != "" {
		if _, err := fmt.Fprintln(w, t.Explanation); err != nil {
			return err
		}
	}
	return nil
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
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
	return widths
}

func extendStyles(styles []func(string) string, numCols int) []func(string) string {
	if len(styles) >= numCols {
		return styles[:numCols]
	}
	extended := make([]func(string) string, numCols)
	copy(extended, styles)
	return extended
}

// --- Cell wrapping ---

func wrapCell(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		line := runewidth.Truncate(s, width, "")
		lineWidth := runewidth.StringWidth(line)
		if lineWidth == 0 && len(s) > 0 {
			// Safety: advance at least one rune to avoid an infinite loop.
			r := []rune(s)
			line = string(r[0])
		}
		lines = append(lines, line)
		s = s[len(line):]
	}
	return lines
}

func wrapRow(cells []string, widths []int, wrapWidths []int) [][]string {
	wrapped := make([][]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		ww := 0
		if i < len(wrapWidths) {
			ww = wrapWidths[i]
		}
		if ww > 0 && ww < width {
			wrapped[i] = wrapCell(cell, ww)
		} else {
			wrapped[i] = []string{cell}
		}
	}
	return wrapped
}

func maxLines(wrapped [][]string) int {
	n := 1
	for _, lines := range wrapped {
		if len(lines) > n {
			n = len(lines)
		}
	}
	return n
}

// --- Plain table (BorderNone) ---

func (r *TextRenderer) renderPlain(w io.Writer, t *Table, header []string, rows [][]string, widths []int, aligns []Alignment, styles []func(string) string, wrapWidths []int) error {
	if t.Title != "" {
		if _, err := fmt.Fprintln(w, t.Title); err != nil {
			return err
		}
	}
	if err := writeTextRow(w, header, widths, aligns, styles, wrapWidths); err != nil {
		return err
	}
	if err := writeTextSep(w, widths); err != nil {
		return err
	}
	for i, row := range rows {
		if r.PageSize > 0 && i > 0 && i%r.PageSize == 0 {
			if err := writeTextSep(w, widths); err != nil {
				return err
			}
			if err := writeTextRow(w, header, widths, aligns, styles, wrapWidths); err != nil {
				return err
			}
			if err := writeTextSep(w, widths); err != nil {
				return err
			}
		}
		if err := writeTextRow(w, row, widths, aligns, styles, wrapWidths); err != nil {
			return err
		}
	}
	return nil
}

func writeTextSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writeTextRow(w io.Writer, cells []string, widths []int, aligns []Alignment, styles []func(string) string, wrapWidths []int) error {
	wrapped := wrapRow(cells, widths, wrapWidths)
	nLines := maxLines(wrapped)
	for line := range nLines {
		parts := make([]string, len(widths))
		for i, width := range widths {
			cell := ""
			if line < len(wrapped[i]) {
				cell = wrapped[i][line]
			}
			formatted := formatTextCell(cell, width, aligns[i])
			if styles[i] != nil {
				formatted = styles[i](formatted)
			}
			parts[i] = formatted
		}
		text := strings.TrimRight(strings.Join(parts, "  "), " ")
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}

// --- Bordered table ---

func (r *TextRenderer) renderBordered(w io.Writer, t *Table, header []string, rows [][]string, widths []int, aligns []Alignment, styles []func(string) string, wrapWidths []int) error {
	bc := borderSets[r.Border]

	if t.Title != "" {
		// Full-width top border (no column separators).
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(widths) - 2 // subtract 1-space padding on each side
		padded := alignCell(t.Title, inner, AlignCenter)
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, padded, bc.vertical); err != nil {
			return err
		}
		// Transition to columns.
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else {
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
			return err
		}
	}

	if err := drawBorderedRow(w, header, widths, aligns, bc.vertical, styles, wrapWidths); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}

	for i, row := range rows {
		if r.PageSize > 0 && i > 0 && i%r.PageSize == 0 {
			if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
				return err
			}
			if err := drawBorderedRow(w, header, widths, aligns, bc.vertical, styles, wrapWidths); err != nil {
				return err
			}
			if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
				return err
			}
		}
		if err := drawBorderedRow(w, row, widths, aligns, bc.vertical, styles, wrapWidths); err != nil {
			return err
		}
	}

	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth returns the total character width between the outer
// vertical borders. Each cell contributes its width plus 2 (one space of
// padding on each side), and cells are separated by a single border rune.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string, styles []func(string) string, wrapWidths []int) error {
	wrapped := wrapRow(cells, widths, wrapWidths)
	nLines := maxLines(wrapped)
	for line := range nLines {
		var sb strings.Builder
		sb.WriteString(vert)
		for i, width := range widths {
			cell := ""
			if line < len(wrapped[i]) {
				cell = wrapped[i][line]
			}
			sb.WriteString(" ")
			formatted := formatTextCell(cell, width, aligns[i])
			if styles[i] != nil {
				formatted = styles[i](formatted)
			}
			sb.WriteString(formatted)
			sb.WriteString(" ")
			if i < len(widths)-1 {
				sb.WriteString(vert)
			}
		}
		sb.WriteString(vert)
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func formatTextCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
