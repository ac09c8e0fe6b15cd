package external

import (
	"path/filepath"
	"testing"

	"github.com/DataDog/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDVFox/gotabulator/expression/recognizer"
	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/util"
)

func newTestGrid(t *testing.T, mode, expression string, b tabulator.Bounds) *tabulator.EncodedGrid {
	tab := tabulator.NewTabulator(tabulator.NewRegistry(), recognizer.DefaultIdentifiers(),
		tabulator.NewConfig(), util.NewNopLogger())
	g, err := tab.Tabulate(mode, expression, b)
	require.NoError(t, err)
	return g.Encode()
}

func TestResultCache(t *testing.T) {
	cache, err := OpenResultCache(filepath.Join(t.TempDir(), "cache"), zstd.DefaultCompression)
	require.NoError(t, err)
	defer cache.Close()

	b := tabulator.Bounds{X1: -1, X2: 1, Y1: 0, Y2: 0, Z1: 0, Z2: 2}
	grid := newTestGrid(t, "i", "z/x", b)

	_, ok, err := cache.Load("i", "z/x", b)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Store(grid))

	cached, ok, err := cache.Load("i", "z/x", b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, grid, cached)
	assert.Equal(t, 3, cached.Failed)

	_, ok, err = cache.Load("u", "z/x", b)
	require.NoError(t, err)
	assert.False(t, ok)

	b.Z2 = 3
	_, ok, err = cache.Load("i", "z/x", b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResultCacheDisabled(t *testing.T) {
	var cache *ResultCache

	grid := newTestGrid(t, "d", "x", tabulator.Bounds{})
	assert.NoError(t, cache.Store(grid))

	_, ok, err := cache.Load("d", "x", tabulator.Bounds{})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, cache.Close())
}

func TestExportedCells(t *testing.T) {
	grid := newTestGrid(t, "i", "10/x", tabulator.Bounds{X1: -1, X2: 1, Y1: 5, Y2: 5, Z1: 7, Z2: 7})

	cells := ExportedCells(grid)
	require.Len(t, cells, 3)
	for i, cell := range cells {
		assert.EqualValuesf(t, i-1, cell.X, "Failed #%d:", i)
		assert.EqualValuesf(t, 5, cell.Y, "Failed #%d:", i)
		assert.EqualValuesf(t, 7, cell.Z, "Failed #%d:", i)
		assert.Equalf(t, "10/x", cell.Expression, "Failed #%d:", i)
	}
	assert.Equal(t, "-10", cells[0].Value)
	assert.EqualValues(t, 1, cells[1].Failed)
	assert.Equal(t, "", cells[1].Value)
	assert.Equal(t, "10", cells[2].Value)

	var sink *ResultSink
	assert.False(t, sink.Enabled())
}
