package parser

import (
	"math"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDVFox/gotabulator/expression/operations"
)

func TestEvaluateInteger(t *testing.T) {
	cases := []struct {
		text string
		vars Bindings[int32]
		res  int32
		err  error
	}{
		{"x+y+z", Bindings[int32]{1, 2, 3}, 6, nil},
		{"x mod y", Bindings[int32]{-7, 3, 0}, -1, nil},
		{"abs x - square y", Bindings[int32]{-4, 3, 0}, -5, nil},
		{"10/x", Bindings[int32]{0, 0, 0}, 0, operations.ErrDivisionByZero},
		{"x mod z", Bindings[int32]{1, 0, 0}, 0, operations.ErrModuloByZero},
		{"x+1", Bindings[int32]{math.MaxInt32, 0, 0}, 0, operations.ErrOverflow},
		{"-x", Bindings[int32]{math.MinInt32, 0, 0}, 0, operations.ErrOverflow},
		{"square x", Bindings[int32]{100000, 0, 0}, 0, operations.ErrOverflow},
		{"x / -1", Bindings[int32]{math.MinInt32, 0, 0}, 0, operations.ErrOverflow},
	}

	ops := operations.NewIntegerOperations(true)
	for i, c := range cases {
		root, err := Parse[int32](c.text, ops)
		require.NoErrorf(t, err, "Failed #%d:", i)

		res, err := Evaluate[int32](root, ops, c.vars)
		if c.err != nil {
			assert.Equalf(t, c.err, errors.Cause(err), "Failed #%d:", i)
			continue
		}
		assert.NoErrorf(t, err, "Failed #%d:", i)
		assert.EqualValuesf(t, c.res, res, "Failed #%d:", i)
	}
}

func TestEvaluateUncheckedWraps(t *testing.T) {
	ops := operations.NewIntegerOperations(false)
	root, err := Parse[int32]("x + 1", ops)
	require.NoError(t, err)

	res, err := Evaluate[int32](root, ops, Bindings[int32]{X: math.MaxInt32})
	assert.NoError(t, err)
	assert.EqualValues(t, math.MinInt32, res)
}

func TestEvaluateBigInteger(t *testing.T) {
	ops := operations.NewBigIntegerOperations(true)
	root, err := Parse[*big.Int]("square square square x - 1", ops)
	require.NoError(t, err)

	res, err := Evaluate[*big.Int](root, ops, Bindings[*big.Int]{X: big.NewInt(1000), Y: big.NewInt(0), Z: big.NewInt(0)})
	assert.NoError(t, err)
	assert.Equal(t, "999999999999999999999999", res.String())
}

func TestEvaluateDouble(t *testing.T) {
	ops := operations.NewDoubleOperations()
	root, err := Parse[float64]("x / y + 0.5", ops)
	require.NoError(t, err)

	res, err := Evaluate[float64](root, ops, Bindings[float64]{X: 1, Y: 4})
	assert.NoError(t, err)
	assert.EqualValues(t, 0.75, res)

	res, err = Evaluate[float64](root, ops, Bindings[float64]{X: 1, Y: 0})
	assert.NoError(t, err)
	assert.True(t, math.IsInf(res, 1))
}

func TestEvaluateUnknownVariable(t *testing.T) {
	ops := operations.NewIntegerOperations(true)
	_, err := Evaluate[int32](&Variable[int32]{Name: "w"}, ops, Bindings[int32]{})
	assert.Equal(t, ErrUnknownVariable, errors.Cause(err))
}

func TestDescribeWalk(t *testing.T) {
	root, err := Parse[int32]("abs(x) * 2", operations.NewIntegerOperations(true))
	require.NoError(t, err)

	labels := make([]string, 0)
	parents := make([]string, 0)
	err = Describe(root).Walk(func(node, parent *Description) error {
		labels = append(labels, node.Label)
		if parent != nil {
			parents = append(parents, parent.Label)
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"*", "abs", "x", "2"}, labels)
	assert.Equal(t, []string{"*", "abs", "*"}, parents)
}
