package matern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGridLayout(t *testing.T) {
	grid := UnitGrid(4, 2)

	require.Equal(t, 8, grid.Count)
	require.Len(t, grid.Coordinates, 8)

	// North-up raster order: the first stored row is the top one, x
	// ascending within it.
	require.Equal(t, 0.0, grid.Coordinates[0][0])
	require.Equal(t, 0.5, grid.Coordinates[0][1])
	require.Equal(t, 0.25, grid.Coordinates[1][0])
	require.Equal(t, 0.5, grid.Coordinates[1][1])
	require.Equal(t, 0.0, grid.Coordinates[4][0])
	require.Equal(t, 0.0, grid.Coordinates[4][1])
	require.Equal(t, 0.75, grid.Coordinates[7][0])
	require.Equal(t, 0.0, grid.Coordinates[7][1])
}

func TestGridFillAndValue(t *testing.T) {
	grid := UnitGrid(3, 2)
	result := &Result{Data: []float64{1, 2, 3, 4, 5, 6}, Width: 3, Height: 2}
	grid.Fill(result)

	require.Equal(t, 1.0, grid.Value(0, 0))
	require.Equal(t, 3.0, grid.Value(0, 2))
	require.Equal(t, 4.0, grid.Value(1, 0))
	require.Equal(t, 6.0, grid.Value(1, 2))
}

func TestGridTileData(t *testing.T) {
	grid := UnitGrid(3, 2)
	result := &Result{Data: []float64{1, 2, 3, 4, 5, 6}, Width: 3, Height: 2}
	grid.Fill(result)

	tiledata, si, rect, _ := grid.GetTileData()
	require.Equal(t, result.Data, tiledata)
	require.Equal(t, [2]uint32{3, 2}, si)
	require.Equal(t, 0.0, rect.Min[0])
	require.InDelta(t, 2.0/3.0, rect.Max[0], 1e-15)
	require.Equal(t, 0.5, rect.Max[1])
}
