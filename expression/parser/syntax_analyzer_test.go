package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDVFox/gotabulator/expression/operations"
	"github.com/GDVFox/gotabulator/expression/recognizer"
)

func TestParseStructure(t *testing.T) {
	cases := []struct {
		text string
		tree string
	}{
		{"2+3*4", "(2 + (3 * 4))"},
		{"1-2-3", "((1 - 2) - 3)"},
		{"x*y/z mod 3", "(((x * y) / z) mod 3)"},
		{"(1+2)*3", "((1 + 2) * 3)"},
		{"-x", "-(x)"},
		{"--3", "-((-3))"},
		{"abs -5 + square x", "(abs((-5)) + square(x))"},
		{"square square 2", "square(square(2))"},
		{"abs(x - y) * 2", "(abs((x - y)) * 2)"},
		{"x - -3", "(x - (-3))"},
		{" ( ( z ) ) ", "z"},
		{"-(x+1)", "-((x + 1))"},
	}

	ops := operations.NewIntegerOperations(true)
	for i, c := range cases {
		root, err := Parse[int32](c.text, ops)
		require.NoErrorf(t, err, "Failed #%d:", i)
		assert.Equalf(t, c.tree, root.String(), "Failed #%d:", i)
	}
}

func TestParsePrecedence(t *testing.T) {
	ops := operations.NewIntegerOperations(true)
	root, err := Parse[int32]("2+3*4", ops)
	require.NoError(t, err)

	for i, vars := range []Bindings[int32]{{0, 0, 0}, {1, 2, 3}, {-5, 100, 7}} {
		res, err := Evaluate[int32](root, ops, vars)
		assert.NoErrorf(t, err, "Failed #%d:", i)
		assert.EqualValuesf(t, 14, res, "Failed #%d:", i)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		text   string
		reason recognizer.Reason
		index  int
	}{
		{"(1+2", recognizer.UnpairedBracketsReason, 4},
		{"((x)", recognizer.UnpairedBracketsReason, 4},
		{"1+2)", recognizer.UnpairedBracketsReason, 3},
		{"2 3", recognizer.MissingOperationReason, 2},
		{"+2", recognizer.MissingOperandReason, 0},
		{"x*", recognizer.MissingOperandReason, 2},
		{"x + w", recognizer.UnknownOperationReason, 4},
		{"10000000000", recognizer.IncorrectConstantReason, 0},
	}

	ops := operations.NewIntegerOperations(true)
	for i, c := range cases {
		_, err := Parse[int32](c.text, ops)
		require.Errorf(t, err, "Failed #%d:", i)

		parsingErr, ok := recognizer.AsParsingError(err)
		require.Truef(t, ok, "Failed #%d:", i)
		assert.Equalf(t, c.reason, parsingErr.Reason, "Failed #%d (%q):", i, c.text)
		assert.Equalf(t, c.index, parsingErr.Index, "Failed #%d (%q):", i, c.text)
	}
}

func TestAnalyzerIsReusable(t *testing.T) {
	analyzer := NewSyntaxAnalyzer[int32](operations.NewIntegerOperations(true), recognizer.DefaultIdentifiers())

	_, err := analyzer.Parse("(1")
	require.Error(t, err)

	root, err := analyzer.Parse("x + 1")
	require.NoError(t, err)
	assert.Equal(t, "(x + 1)", root.String())
}

func TestCustomIdentifiers(t *testing.T) {
	idents := recognizer.Identifiers{
		"x":  recognizer.VariableKind,
		"sq": recognizer.SquareKind,
	}
	root, err := NewSyntaxAnalyzer[int32](operations.NewIntegerOperations(true), idents).Parse("sq x")
	require.NoError(t, err)
	assert.Equal(t, "square(x)", root.String())

	_, err = NewSyntaxAnalyzer[int32](operations.NewIntegerOperations(true), idents).Parse("abs x")
	parsingErr, ok := recognizer.AsParsingError(err)
	require.True(t, ok)
	assert.Equal(t, recognizer.UnknownOperationReason, parsingErr.Reason)
}
