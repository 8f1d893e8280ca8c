package excel

import (
	"fmt"
	"unicode/utf8"

	"invmerge/internal/inventory"

	"github.com/xuri/excelize/v2"
)

// reportFont is the typeface applied to the whole report.
const reportFont = "Calibri"

// codigoWMSColumn must hold text so item codes keep leading zeros when the
// report is reopened.
const codigoWMSColumn = "CODIGO WMS"

// bodegaFills keys the provenance cell fill on the cell's literal value.
var bodegaFills = map[string]string{
	"Bodega OPL":   "ADD8E6",
	"Bodega E":     "90EE90",
	"Bodegas MOBU": "FFA07A",
}

// FormatReport restyles the just-written report in place: bold centered
// header, content-fitted column widths, report typeface everywhere, a fill on
// each Bodega cell keyed by warehouse, and the CODIGO WMS column coerced to
// text. Widths are measured before any restyling, and the header is the last
// font touched so the bold survives the body pass.
func FormatReport(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open report %s: %v", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read report rows: %v", err)
	}
	if len(rows) == 0 {
		return nil
	}

	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}
	lastRow := len(rows)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: reportFont},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %v", err)
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: reportFont},
	})
	if err != nil {
		return fmt.Errorf("failed to create body style: %v", err)
	}

	// Fit every column to its longest cell text, header included.
	for j := 0; j < colCount; j++ {
		maxLen := 0
		for _, row := range rows {
			if j >= len(row) || row[j] == "" {
				continue
			}
			if n := utf8.RuneCountInString(row[j]); n > maxLen {
				maxLen = n
			}
		}
		colName, _ := excelize.ColumnNumberToName(j + 1)
		if err := f.SetColWidth(sheet, colName, colName, float64(maxLen+2)); err != nil {
			return fmt.Errorf("failed to set width of column %s: %v", colName, err)
		}
	}

	// Body typeface over everything, then the header style back on row 1.
	if err := f.SetCellStyle(sheet, "A1", cellRef(colCount, lastRow), bodyStyle); err != nil {
		return fmt.Errorf("failed to apply body style: %v", err)
	}
	if err := f.SetCellStyle(sheet, "A1", cellRef(colCount, 1), headerStyle); err != nil {
		return fmt.Errorf("failed to apply header style: %v", err)
	}

	bodegaCol, codigoCol := -1, -1
	for j, header := range rows[0] {
		switch header {
		case inventory.BodegaColumn:
			bodegaCol = j
		case codigoWMSColumn:
			codigoCol = j
		}
	}

	if bodegaCol >= 0 {
		fillStyles := make(map[string]int, len(bodegaFills))
		for label, color := range bodegaFills {
			style, err := f.NewStyle(&excelize.Style{
				Font: &excelize.Font{Family: reportFont},
				Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			})
			if err != nil {
				return fmt.Errorf("failed to create fill style: %v", err)
			}
			fillStyles[label] = style
		}
		for i := 1; i < len(rows); i++ {
			if bodegaCol >= len(rows[i]) {
				continue
			}
			style, ok := fillStyles[rows[i][bodegaCol]]
			if !ok {
				continue
			}
			cell := cellRef(bodegaCol+1, i+1)
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return fmt.Errorf("failed to fill cell %s: %v", cell, err)
			}
		}
	}

	if codigoCol >= 0 {
		for row := 2; row <= lastRow; row++ {
			cell := cellRef(codigoCol+1, row)
			cellType, err := f.GetCellType(sheet, cell)
			if err != nil {
				continue
			}
			if cellType == excelize.CellTypeSharedString || cellType == excelize.CellTypeInlineString {
				continue
			}
			value, err := f.GetCellValue(sheet, cell)
			if err != nil || value == "" {
				continue
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to coerce cell %s: %v", cell, err)
			}
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save report %s: %v", path, err)
	}
	return nil
}
