package excel

import (
	"fmt"
	"os"

	"invmerge/internal/inventory"
	"invmerge/internal/logger"

	"github.com/xuri/excelize/v2"
)

// LoadTable reads the first sheet of the spreadsheet at path into a table,
// treating the first row as the header. A missing file and a file that fails
// to parse are both reported and returned as absence; the caller only ever
// sees an optional result.
func LoadTable(path string) (*inventory.Table, bool) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("File not found: %s\n", path)
		logger.Warn("Inventory file not found", "path", path)
		return nil, false
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", path, err)
		logger.Error("Failed to parse inventory file", "path", path, "error", err)
		return nil, false
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", path, err)
		logger.Error("Failed to read inventory rows", "path", path, "error", err)
		return nil, false
	}

	table := &inventory.Table{}
	if len(rows) > 0 {
		table.Columns = rows[0]
		table.Rows = rows[1:]
	}

	fmt.Printf("Successfully loaded: %s\n", path)
	logger.Info("Loaded inventory file", "path", path, "rows", len(table.Rows))
	return table, true
}
