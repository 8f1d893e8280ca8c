package excel

import (
	"fmt"

	"invmerge/internal/inventory"

	"github.com/xuri/excelize/v2"
)

// WriteTable writes the table to a new workbook at path, header on row 1.
// Cell text that parses as a number is written as a numeric cell so the
// report behaves like any hand-made sheet when reopened.
func WriteTable(t *inventory.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for j, col := range t.Columns {
		if err := f.SetCellValue(ReportSheet, cellRef(j+1, 1), col); err != nil {
			return fmt.Errorf("failed to write header cell: %v", err)
		}
	}

	for i := range t.Rows {
		for j := range t.Columns {
			value := ""
			if j < len(t.Rows[i]) {
				value = t.Rows[i][j]
			}
			if value == "" {
				continue
			}
			if err := f.SetCellValue(ReportSheet, cellRef(j+1, i+2), parseNumericValue(value)); err != nil {
				return fmt.Errorf("failed to write cell: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %v", path, err)
	}
	return nil
}
