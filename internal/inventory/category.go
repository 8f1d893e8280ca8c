package inventory

import "strings"

// Warehouse identifies one of the three physical storage locations.
type Warehouse string

const (
	WarehouseOPL  Warehouse = "OPL"
	WarehouseE    Warehouse = "E"
	WarehouseMOBU Warehouse = "MOBU"
)

// Warehouses is the fixed processing order for a run.
var Warehouses = []Warehouse{WarehouseOPL, WarehouseE, WarehouseMOBU}

// Label returns the provenance value written to the Bodega column. Unknown
// warehouses fall back to their raw identifier.
func (w Warehouse) Label() string {
	switch w {
	case WarehouseOPL:
		return "Bodega OPL"
	case WarehouseE:
		return "Bodega E"
	case WarehouseMOBU:
		return "Bodegas MOBU"
	}
	return string(w)
}

// Category is the kind of stocked item being reported.
type Category string

const (
	CategoryLata     Category = "LATA"
	CategoryPreforma Category = "PREFORMA"
	CategoryPT       Category = "PT"
)

// Categories in menu order; the 1-based position is the menu number.
var Categories = []Category{CategoryLata, CategoryPreforma, CategoryPT}

// fileNames maps each category to its fixed per-warehouse file name. PT uses
// the same name in all three warehouse directories.
var fileNames = map[Category]map[Warehouse]string{
	CategoryLata: {
		WarehouseOPL:  "INVENTARIO LATA VACIA 2025 BODOPL.xlsx",
		WarehouseE:    "INVENTARIO LATA VACIA 2025 BODE.xlsx",
		WarehouseMOBU: "INVENTARIO LATA VACIA 2025 MOBU.xlsx",
	},
	CategoryPreforma: {
		WarehouseOPL:  "INVENTARIO DE PREFORMA 2025 BODOPL.xlsx",
		WarehouseE:    "INVENTARIO DE PREFORMA 2025 BODE.xlsx",
		WarehouseMOBU: "INVENTARIO DE PREFORMA 2025 BODMOBU.xlsx",
	},
	CategoryPT: {
		WarehouseOPL:  "INVENTARIO DE PT.XLSX",
		WarehouseE:    "INVENTARIO DE PT.XLSX",
		WarehouseMOBU: "INVENTARIO DE PT.XLSX",
	},
}

// Known reports whether c is one of the three supported categories.
func (c Category) Known() bool {
	_, ok := fileNames[c]
	return ok
}

// FileName returns the fixed inventory file name for this category in the
// given warehouse, or false if no name is defined for the pair.
func (c Category) FileName(w Warehouse) (string, bool) {
	byWarehouse, ok := fileNames[c]
	if !ok {
		return "", false
	}
	name, ok := byWarehouse[w]
	return name, ok
}

// ParseChoice converts a menu answer into a category. It accepts the numeric
// choices 1/2/3 as well as a category name, case-insensitively.
func ParseChoice(choice string) (Category, bool) {
	switch strings.ToUpper(strings.TrimSpace(choice)) {
	case "1", "LATA":
		return CategoryLata, true
	case "2", "PREFORMA":
		return CategoryPreforma, true
	case "3", "PT":
		return CategoryPT, true
	}
	return "", false
}
