package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		ok       bool
	}{
		{"1", CategoryLata, true},
		{"2", CategoryPreforma, true},
		{"3", CategoryPT, true},
		{" 2 ", CategoryPreforma, true},
		{"lata", CategoryLata, true},
		{"PT", CategoryPT, true},
		{"9", "", false},
		{"0", "", false},
		{"", "", false},
		{"nope", "", false},
	}

	for _, tt := range tests {
		category, ok := ParseChoice(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.expected, category, "input %q", tt.input)
	}
}

func TestWarehouseLabels(t *testing.T) {
	assert.Equal(t, "Bodega OPL", WarehouseOPL.Label())
	assert.Equal(t, "Bodega E", WarehouseE.Label())
	assert.Equal(t, "Bodegas MOBU", WarehouseMOBU.Label())

	// Unknown warehouses keep their raw identifier
	assert.Equal(t, "NORTE", Warehouse("NORTE").Label())
}

func TestFileNames(t *testing.T) {
	name, ok := CategoryLata.FileName(WarehouseOPL)
	require.True(t, ok)
	assert.Equal(t, "INVENTARIO LATA VACIA 2025 BODOPL.xlsx", name)

	name, ok = CategoryPreforma.FileName(WarehouseMOBU)
	require.True(t, ok)
	assert.Equal(t, "INVENTARIO DE PREFORMA 2025 BODMOBU.xlsx", name)

	// PT shares one file name across all three warehouse directories
	for _, warehouse := range Warehouses {
		name, ok := CategoryPT.FileName(warehouse)
		require.True(t, ok)
		assert.Equal(t, "INVENTARIO DE PT.XLSX", name)
	}

	_, ok = Category("BOTELLA").FileName(WarehouseOPL)
	assert.False(t, ok)
	assert.False(t, Category("BOTELLA").Known())
}
