package tabulator

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDVFox/gotabulator/expression/operations"
	"github.com/GDVFox/gotabulator/expression/recognizer"
	"github.com/GDVFox/gotabulator/util"
)

var errStop = errors.New("stop")

func newTestTabulator() *Tabulator {
	return NewTabulator(NewRegistry(), recognizer.DefaultIdentifiers(), NewConfig(), util.NewNopLogger())
}

func TestTabulateShape(t *testing.T) {
	tab := newTestTabulator()

	g, err := tab.Tabulate("i", "x+y+z", Bounds{0, 1, 0, 1, 0, 1})
	require.NoError(t, err)
	require.Len(t, g.Cells, 2)

	for i := 0; i < 2; i++ {
		require.Len(t, g.Cells[i], 2)
		for j := 0; j < 2; j++ {
			require.Len(t, g.Cells[i][j], 2)
			for k := 0; k < 2; k++ {
				cell := g.At(i, j, k)
				assert.False(t, cell.Failed())
				assert.EqualValues(t, int32(i+j+k), cell.Value)
			}
		}
	}
	assert.Equal(t, 0, g.FailedCount())
}

func TestTabulateCellIsolation(t *testing.T) {
	tab := newTestTabulator()

	g, err := tab.Tabulate("i", "10/x", Bounds{-1, 1, 0, 0, 0, 0})
	require.NoError(t, err)
	require.Len(t, g.Cells, 3)

	assert.EqualValues(t, int32(-10), g.At(0, 0, 0).Value)
	assert.True(t, g.At(1, 0, 0).Failed())
	assert.Equal(t, operations.ErrDivisionByZero, errors.Cause(g.At(1, 0, 0).Err))
	assert.EqualValues(t, int32(10), g.At(2, 0, 0).Value)
	assert.Equal(t, 1, g.FailedCount())
}

func TestTabulateModes(t *testing.T) {
	cases := []struct {
		mode   string
		expr   string
		x      int
		text   string
		failed bool
	}{
		{"i", "x*1000000000", 3, "", true},
		{"u", "x*1000000000", 3, "-1294967296", false},
		{"bi", "x*1000000000", 3, "3000000000", false},
		{"bi", "x mod -3", 7, "", true},
		{"bi", "x mod 3", -7, "2", false},
		{"d", "1/x", 0, "+Inf", false},
		{"f", "x/2", 3, "1.5", false},
		{"b", "x*100", 3, "44", false},
		{"b", "x mod 0", 3, "", true},
		{"d", "x mod 0", 3, "NaN", false},
	}

	tab := newTestTabulator()
	for i, c := range cases {
		g, err := tab.Tabulate(c.mode, c.expr, Bounds{c.x, c.x, 0, 0, 0, 0})
		require.NoErrorf(t, err, "Failed #%d:", i)

		cell := g.At(0, 0, 0)
		assert.Equalf(t, c.failed, cell.Failed(), "Failed #%d:", i)
		assert.Equalf(t, c.text, cell.Text, "Failed #%d:", i)
	}
}

func TestTabulateErrors(t *testing.T) {
	tab := newTestTabulator()

	_, err := tab.Tabulate("q", "x", Bounds{})
	assert.Equal(t, ErrUnknownMode, errors.Cause(err))

	_, err = tab.Tabulate("i", "x", Bounds{1, 0, 0, 0, 0, 0})
	assert.Equal(t, ErrBadBounds, errors.Cause(err))

	_, err = tab.Tabulate("i", "(x+1", Bounds{})
	perr, ok := recognizer.AsParsingError(err)
	require.True(t, ok)
	assert.Equal(t, recognizer.UnpairedBracketsReason, perr.Reason)

	_, err = tab.Tabulate("i", "1.5 + x", Bounds{})
	perr, ok = recognizer.AsParsingError(err)
	require.True(t, ok)
	assert.Equal(t, recognizer.IncorrectConstantReason, perr.Reason)

	limited := NewTabulator(NewRegistry(), recognizer.DefaultIdentifiers(), &Config{MaxCells: 8}, util.NewNopLogger())
	_, err = limited.Tabulate("i", "x", Bounds{0, 1, 0, 1, 0, 2})
	assert.Equal(t, ErrBadBounds, errors.Cause(err))
}

func TestTabulateFunc(t *testing.T) {
	tab := newTestTabulator()

	xs := []int{}
	g, err := tab.TabulateFunc("i", "x*y", Bounds{-1, 1, 2, 3, 0, 0}, func(i, x int, plane Plane) error {
		assert.Equal(t, -1+i, x)
		assert.Len(t, plane, 2)
		assert.EqualValues(t, int32(x*2), plane[0][0].Value)
		xs = append(xs, x)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 1}, xs)
	assert.Len(t, g.Cells, 3)

	calls := 0
	_, err = tab.TabulateFunc("i", "x", Bounds{0, 5, 0, 0, 0, 0}, func(i, x int, plane Plane) error {
		calls++
		return errStop
	})
	assert.Equal(t, errStop, err)
	assert.Equal(t, 1, calls)
}

func TestTabulateRecoversPanic(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewDomain[*big.Int]("ubi", operations.NewBigIntegerOperations(false)))
	tab := NewTabulator(registry, recognizer.DefaultIdentifiers(), NewConfig(), util.NewNopLogger())

	g, err := tab.Tabulate("ubi", "1/x", Bounds{0, 1, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, ErrPanic, errors.Cause(g.At(0, 0, 0).Err))
	assert.Equal(t, "1", g.At(1, 0, 0).Text)
}

func TestCompile(t *testing.T) {
	tab := newTestTabulator()

	expr, err := tab.Compile("d", "2+3*x")
	require.NoError(t, err)
	assert.Equal(t, "d", expr.Mode())
	assert.Equal(t, "2+3*x", expr.Source())
	assert.Equal(t, "(2 + (3 * x))", expr.String())
	assert.Equal(t, "+", expr.Describe().Label)

	v, err := expr.Evaluate(4, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "14", expr.Format(v))
}

func TestGridEncodeDecode(t *testing.T) {
	tab := newTestTabulator()

	g, err := tab.Tabulate("bi", "100/x", Bounds{-1, 1, 0, 1, 0, 0})
	require.NoError(t, err)

	data, err := json.Marshal(g)
	require.NoError(t, err)

	enc := &EncodedGrid{}
	require.NoError(t, json.Unmarshal(data, enc))
	assert.Equal(t, "bi", enc.Mode)
	assert.Equal(t, "100/x", enc.Expression)
	assert.Equal(t, 2, enc.Failed)
	assert.Nil(t, enc.Cells[1][0][0])
	require.NotNil(t, enc.Cells[0][1][0])
	assert.Equal(t, "-100", *enc.Cells[0][1][0])

	d, err := tab.Domain("bi")
	require.NoError(t, err)
	decoded, err := Decode(d, enc)
	require.NoError(t, err)
	assert.Equal(t, 2, decoded.FailedCount())
	assert.Equal(t, ErrFailedCell, decoded.At(1, 1, 0).Err)
	assert.Equal(t, 0, big.NewInt(100).Cmp(decoded.At(2, 0, 0).Value.(*big.Int)))

	enc.Cells = enc.Cells[:2]
	_, err = Decode(d, enc)
	assert.Equal(t, ErrBadBounds, errors.Cause(err))
}

func TestBoundsValidate(t *testing.T) {
	cases := []struct {
		b        Bounds
		maxCells int64
		size     int
		valid    bool
	}{
		{Bounds{0, 0, 0, 0, 0, 0}, 1, 1, true},
		{Bounds{-2, 2, 0, 1, 5, 7}, 0, 30, true},
		{Bounds{-2, 2, 0, 1, 5, 7}, 30, 30, true},
		{Bounds{-2, 2, 0, 1, 5, 7}, 29, 30, false},
		{Bounds{0, 0, 1, 0, 0, 0}, 0, 0, false},
		{Bounds{0, 0, 0, 0, 0, -1}, 0, 0, false},
	}

	for i, c := range cases {
		err := c.b.Validate(c.maxCells)
		if !c.valid {
			assert.Equalf(t, ErrBadBounds, errors.Cause(err), "Failed #%d:", i)
			continue
		}
		assert.NoErrorf(t, err, "Failed #%d:", i)
		assert.Equalf(t, c.size, c.b.Size(), "Failed #%d:", i)
	}
}

func TestRegistryModes(t *testing.T) {
	assert.Equal(t, []string{"b", "bi", "d", "f", "i", "u"}, NewRegistry().Modes())
}
