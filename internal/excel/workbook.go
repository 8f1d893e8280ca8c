package excel

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReportSheet is the sheet name used for written reports; it is also the
// excelize default for new workbooks.
const ReportSheet = "Sheet1"

// cellRef converts 1-based column/row coordinates to an A1-style reference.
func cellRef(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// parseNumericValue attempts to parse a string as a number and returns the
// appropriate type. Returns the original string if it's not a valid number.
func parseNumericValue(value string) interface{} {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return value
	}

	// Try to parse as integer first
	if intVal, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return intVal
	}

	// Try to parse as float
	if floatVal, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return floatVal
	}

	// Not a number, return as string
	return value
}
