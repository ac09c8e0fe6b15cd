package local

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeNode(t *testing.T) {
	expr, err := NewTabulator().Compile("i", "abs x * 2")
	require.NoError(t, err)

	assert.Equal(t, pterm.TreeNode{
		Text: "*",
		Children: []pterm.TreeNode{
			{Text: "abs", Children: []pterm.TreeNode{{Text: "x"}}},
			{Text: "2"},
		},
	}, TreeNode(expr.Describe()))
}

func TestCommandInit(t *testing.T) {
	tab := NewTabulateCommandHelper()
	require.NoError(t, tab.Init([]string{"-m", "d", "-e", "x/y", "--x1", "-2", "--x2", "2", "-f", "json"}))
	assert.Equal(t, "d", tab.flags.Mode)
	assert.Equal(t, "x/y", tab.flags.Expression)
	assert.Equal(t, -2, tab.flags.Bounds.X1)
	assert.Equal(t, 2, tab.flags.Bounds.X2)
	assert.Equal(t, "json", tab.flags.Format)

	assert.Error(t, NewTabulateCommandHelper().Init([]string{"-m", "i"}))
	assert.Error(t, NewParseCommandHelper().Init([]string{}))
	assert.NoError(t, NewParseCommandHelper().Init([]string{"-e", "x+1", "-t"}))
}
