package tabular

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// xlsxEpoch pins document properties so repeated renders of the same Table
// agree.
const xlsxEpoch = "2000-01-01T00:00:00Z"

// xlsxNumFmts maps numeric format hints to Excel number format codes, so
// spreadsheet cells keep their typed raw values and format natively.
var xlsxNumFmts = map[NumberFormat]string{
	NumberPlain:    "#,##0.00",
	NumberInteger:  "#,##0",
	NumberCurrency: "$#,##0.00",
	NumberPercent:  "0.00%",
}

// XLSXRenderer renders a Table as a single-sheet Excel workbook. Cells hold
// raw typed values with native number formats; the header row is bold white
// on navy; width hints size columns. The explanation, when present, sits in
// a bold cell two rows above the header.
type XLSXRenderer struct {
	// Sheet names the worksheet. Empty falls back to the table title,
	// then to "Sheet1".
	Sheet string
}

// Render implements the [Renderer] contract.
func (r *XLSXRenderer) Render(t *Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := r.Sheet
	if sheet == "" {
		sheet = t.Title
	}
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return nil, fmt.Errorf("%w: xlsx: %v", ErrRender, err)
		}
	}
	if err := f.SetDocProps(&excelize.DocProperties{Created: xlsxEpoch, Modified: xlsxEpoch}); err != nil {
		return nil, fmt.Errorf("%w: xlsx: %v", ErrRender, err)
	}

	// Style IDs are cached per hint combination; a sheet reuses a handful
	// of styles across thousands of cells.
	cache := map[Style]int{}
	styleID := func(s Style) (int, error) {
		key := Style{Bold: s.Bold, Number: s.Number, Align: s.Align}
		if id, ok := cache[key]; ok {
			return id, nil
		}
		id, err := f.NewStyle(cellStyle(key))
		if err != nil {
			return 0, err
		}
		cache[key] = id
		return id, nil
	}

	row := 1
	if t.Explanation != "" {
		boldID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("%w: xlsx: %v", ErrRender, err)
		}
		if err := setXLSXCell(f, sheet, 1, row, t.Explanation, boldID); err != nil {
			return nil, err
		}
		row += 2
	}

	headerID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"000080"}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx: %v", ErrRender, err)
	}
	for i, cell := range t.Header.Cells {
		if err := setXLSXCell(f, sheet, i+1, row, cell.Display, headerID); err != nil {
			return nil, err
		}
		if w := cell.Style.Width; w > 0 {
			name, _ := excelize.ColumnNumberToName(i + 1)
			// Excel column width units are roughly 13 per inch.
			if err := f.SetColWidth(sheet, name, name, w*13); err != nil {
				return nil, fmt.Errorf("%w: xlsx: %v", ErrRender, err)
			}
		}
	}
	row++

	for _, body := range t.Body {
		for i, cell := range body.Cells {
			id, err := styleID(cell.Style)
			if err != nil {
				return nil, fmt.Errorf("%w: xlsx: %v", ErrRender, err)
			}
			if err := setXLSXCell(f, sheet, i+1, row, xlsxValue(cell), id); err != nil {
				return nil, err
			}
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func setXLSXCell(f *excelize.File, sheet string, col, row int, value any, style int) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("%w: xlsx: %v", ErrRender, err)
	}
	if value != nil {
		if err := f.SetCellValue(sheet, name, value); err != nil {
			return fmt.Errorf("%w: xlsx: %v", ErrRender, err)
		}
	}
	if style != 0 {
		if err := f.SetCellStyle(sheet, name, name, style); err != nil {
			return fmt.Errorf("%w: xlsx: %v", ErrRender, err)
		}
	}
	return nil
}

func cellStyle(s Style) *excelize.Style {
	style := &excelize.Style{}
	if s.Bold {
		style.Font = &excelize.Font{Bold: true}
	}
	if code, ok := xlsxNumFmts[s.Number]; ok {
		style.CustomNumFmt = &code
	}
	switch s.alignOr() {
	case AlignRight:
		style.Alignment = &excelize.Alignment{Horizontal: "right"}
	case AlignCenter:
		style.Alignment = &excelize.Alignment{Horizontal: "center"}
	}
	return style
}

// xlsxValue picks what lands in the spreadsheet cell: native values for
// types Excel stores directly, the display string for everything else.
func xlsxValue(cell Cell) any {
	switch cell.Raw.(type) {
	case nil:
		return nil
	case string, bool, time.Time,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return cell.Raw
	default:
		return cell.Display
	}
}
