package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLabelDoesNotMutateInput(t *testing.T) {
	src := &Table{
		Columns: []string{"CODIGO WMS", "CAJAS"},
		Rows:    [][]string{{"100", "5"}, {"200", "7"}},
	}

	labeled := src.WithLabel("Bodega OPL")

	assert.Equal(t, []string{"CODIGO WMS", "CAJAS", "Bodega"}, labeled.Columns)
	require.Len(t, labeled.Rows, 2)
	assert.Equal(t, []string{"100", "5", "Bodega OPL"}, labeled.Rows[0])

	// Input untouched
	assert.Equal(t, []string{"CODIGO WMS", "CAJAS"}, src.Columns)
	assert.Equal(t, []string{"100", "5"}, src.Rows[0])
}

func TestWithLabelOverwritesExistingColumn(t *testing.T) {
	src := &Table{
		Columns: []string{"CODIGO WMS", "Bodega"},
		Rows:    [][]string{{"100", "stale"}},
	}

	labeled := src.WithLabel("Bodega E")

	assert.Equal(t, []string{"CODIGO WMS", "Bodega"}, labeled.Columns)
	assert.Equal(t, "Bodega E", labeled.Rows[0][1])
}

func TestWithLabelPadsRaggedRows(t *testing.T) {
	src := &Table{
		Columns: []string{"A", "B", "C"},
		Rows:    [][]string{{"1"}},
	}

	labeled := src.WithLabel("Bodega OPL")
	assert.Equal(t, []string{"1", "", "", "Bodega OPL"}, labeled.Rows[0])
}

func TestMergeTwoWarehouses(t *testing.T) {
	tables := map[Warehouse]*Table{
		WarehouseOPL: {
			Columns: []string{"CODIGO WMS", "CAJAS"},
			Rows:    [][]string{{"100", "5"}, {"101", "6"}},
		},
		WarehouseMOBU: {
			Columns: []string{"CODIGO WMS", "CAJAS"},
			Rows:    [][]string{{"200", "1"}, {"201", "2"}, {"202", "3"}},
		},
	}

	merged := Merge(tables)
	require.NotNil(t, merged)
	assert.Equal(t, []string{"CODIGO WMS", "CAJAS", "Bodega"}, merged.Columns)
	require.Len(t, merged.Rows, 5)

	// OPL block first, then MOBU, in warehouse order
	for i := 0; i < 2; i++ {
		assert.Equal(t, "Bodega OPL", merged.Rows[i][2], "row %d", i)
	}
	for i := 2; i < 5; i++ {
		assert.Equal(t, "Bodegas MOBU", merged.Rows[i][2], "row %d", i)
	}
	assert.Equal(t, "100", merged.Rows[0][0])
	assert.Equal(t, "202", merged.Rows[4][0])
}

func TestMergeColumnUnion(t *testing.T) {
	tables := map[Warehouse]*Table{
		WarehouseOPL: {
			Columns: []string{"CODIGO WMS", "CAJAS"},
			Rows:    [][]string{{"100", "5"}},
		},
		WarehouseE: {
			Columns: []string{"CODIGO WMS", "LOTE"},
			Rows:    [][]string{{"300", "L9"}},
		},
	}

	merged := Merge(tables)
	require.NotNil(t, merged)
	assert.Equal(t, []string{"CODIGO WMS", "CAJAS", "Bodega", "LOTE"}, merged.Columns)
	require.Len(t, merged.Rows, 2)

	// Cells missing from a source table stay blank
	assert.Equal(t, []string{"100", "5", "Bodega OPL", ""}, merged.Rows[0])
	assert.Equal(t, []string{"300", "", "Bodega E", "L9"}, merged.Rows[1])
}

func TestMergeUnknownWarehouseFallback(t *testing.T) {
	tables := map[Warehouse]*Table{
		Warehouse("NORTE"): {
			Columns: []string{"CODIGO WMS"},
			Rows:    [][]string{{"900"}},
		},
	}

	merged := Merge(tables)
	require.NotNil(t, merged)
	assert.Equal(t, "NORTE", merged.Rows[0][1])
}

func TestMergeEmpty(t *testing.T) {
	assert.Nil(t, Merge(nil))
	assert.Nil(t, Merge(map[Warehouse]*Table{}))
}
