package local

import (
	"errors"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gotabulator/expression/parser"
)

// ParseCommandHelper разбор выражения.
type ParseCommandHelper struct {
	fs *flag.FlagSet

	help       bool
	tree       bool
	mode       string
	expression string
}

// NewParseCommandHelper создает новый ParseCommandHelper
func NewParseCommandHelper() *ParseCommandHelper {
	c := &ParseCommandHelper{
		fs: flag.NewFlagSet("parse", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.mode, "mode", "m", "i", "Numeric mode: i, u, bi, d, f, b")
	c.fs.StringVarP(&c.expression, "expression", "e", "", "Expression over x, y, z")
	c.fs.BoolVarP(&c.tree, "tree", "t", false, "Prints expression tree")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *ParseCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Println("Command 'gotabulator parse' prints expression with explicit brackets or parsing error.")
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *ParseCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}

	if c.expression == "" {
		return errors.New("expression can not be empty")
	}
	return nil
}

// Run запускает команду
func (c *ParseCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	expr, err := NewTabulator().Compile(c.mode, c.expression)
	if err != nil {
		PrintTabulationError(err)
		return
	}

	pterm.Success.Println(expr.String())
	if c.tree {
		PrintTree(expr.Describe())
	}
}

// PrintTree выводит дерево выражения.
func PrintTree(root *parser.Description) {
	pterm.DefaultTree.WithRoot(TreeNode(root)).Render()
}

// TreeNode переводит описание дерева в дерево pterm.
func TreeNode(d *parser.Description) pterm.TreeNode {
	node := pterm.TreeNode{Text: d.Label}
	for _, child := range d.Children {
		node.Children = append(node.Children, TreeNode(child))
	}
	return node
}
