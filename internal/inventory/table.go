package inventory

// BodegaColumn is the provenance column added during merge.
const BodegaColumn = "Bodega"

// Table is one loaded spreadsheet: a header row of column names and the data
// rows below it, cell values kept as their display text.
type Table struct {
	Columns []string
	Rows    [][]string
}

// cell returns the value at row index i for column position j, tolerating
// ragged rows.
func (t *Table) cell(i, j int) string {
	if j < len(t.Rows[i]) {
		return t.Rows[i][j]
	}
	return ""
}

// WithLabel returns a copy of the table with the Bodega column set to label
// on every row. An existing Bodega column is overwritten in place of being
// duplicated. The receiver is not modified.
func (t *Table) WithLabel(label string) *Table {
	labelIdx := -1
	for j, col := range t.Columns {
		if col == BodegaColumn {
			labelIdx = j
			break
		}
	}

	columns := append([]string(nil), t.Columns...)
	if labelIdx == -1 {
		columns = append(columns, BodegaColumn)
		labelIdx = len(columns) - 1
	}

	rows := make([][]string, len(t.Rows))
	for i := range t.Rows {
		row := make([]string, len(columns))
		for j := range t.Columns {
			row[j] = t.cell(i, j)
		}
		row[labelIdx] = label
		rows[i] = row
	}

	return &Table{Columns: columns, Rows: rows}
}

// Merge tags every collected table with its warehouse label and concatenates
// them into one. Warehouses are appended in the fixed processing order; any
// key outside the known set is appended afterwards with its raw identifier as
// the label. Columns are the union of all input columns in first-seen order,
// rows keep their input order, and missing cells are blank. Returns nil when
// there is nothing to merge.
func Merge(tables map[Warehouse]*Table) *Table {
	if len(tables) == 0 {
		return nil
	}

	order := make([]Warehouse, 0, len(tables))
	for _, w := range Warehouses {
		if _, ok := tables[w]; ok {
			order = append(order, w)
		}
	}
	for w := range tables {
		known := false
		for _, k := range Warehouses {
			if w == k {
				known = true
				break
			}
		}
		if !known {
			order = append(order, w)
		}
	}

	labeled := make([]*Table, 0, len(order))
	for _, w := range order {
		labeled = append(labeled, tables[w].WithLabel(w.Label()))
	}

	var columns []string
	seen := make(map[string]int)
	for _, t := range labeled {
		for _, col := range t.Columns {
			if _, ok := seen[col]; !ok {
				seen[col] = len(columns)
				columns = append(columns, col)
			}
		}
	}

	merged := &Table{Columns: columns}
	for _, t := range labeled {
		for i := range t.Rows {
			row := make([]string, len(columns))
			for j, col := range t.Columns {
				row[seen[col]] = t.cell(i, j)
			}
			merged.Rows = append(merged.Rows, row)
		}
	}
	return merged
}
