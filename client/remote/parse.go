package remote

import (
	"errors"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gotabulator/client/local"
	"github.com/GDVFox/gotabulator/util/message"
)

// ParseCommandHelper разбор выражения на стороне tabulator_node.
type ParseCommandHelper struct {
	fs *flag.FlagSet
	nodeFlags

	help bool
	tree bool
	req  message.ParseRequest
}

// NewParseCommandHelper создает новый ParseCommandHelper
func NewParseCommandHelper() *ParseCommandHelper {
	c := &ParseCommandHelper{
		fs: flag.NewFlagSet("parse", flag.ContinueOnError),
	}

	c.register(c.fs)
	c.fs.StringVarP(&c.req.Mode, "mode", "m", "i", "Numeric mode: i, u, bi, d, f, b")
	c.fs.StringVarP(&c.req.Expression, "expression", "e", "", "Expression over x, y, z")
	c.fs.BoolVarP(&c.tree, "tree", "t", false, "Prints expression tree")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *ParseCommandHelper) PrintHelp() {
	printHelp(c.fs, "Command 'gotabulator remote parse' parses expression on tabulator_node.")
}

// Init инициализирует состояние команды.
func (c *ParseCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}
	if c.req.Expression == "" {
		return errors.New("expression can not be empty")
	}
	return c.validate()
}

// Run запускает команду
func (c *ParseCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	ctx, cancel := signalContext()
	defer cancel()

	resp, err := c.client().Parse(ctx, &c.req)
	if err != nil {
		printError("Can not parse expression", err)
		return
	}

	pterm.Success.Println(resp.Expression)
	if c.tree {
		local.PrintTree(resp.Tree)
	}
}
