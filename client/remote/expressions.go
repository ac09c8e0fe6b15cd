package remote

import (
	"errors"
	"os"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gotabulator/client/common"
	"github.com/GDVFox/gotabulator/util/message"
)

// ListCommandHelper получение списка выражений.
type ListCommandHelper struct {
	fs *flag.FlagSet
	nodeFlags

	help bool
}

// NewListCommandHelper возвращает новый ListCommandHelper.
func NewListCommandHelper() *ListCommandHelper {
	c := &ListCommandHelper{
		fs: flag.NewFlagSet("list", flag.ContinueOnError),
	}

	c.register(c.fs)
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// Init инициализирует состояние команды.
func (c *ListCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}
	return c.validate()
}

// PrintHelp печатает сообщение с помощью по команде
func (c *ListCommandHelper) PrintHelp() {
	printHelp(c.fs, "Command 'gotabulator remote list' returns list of stored expressions.")
}

// Run запускает комнаду.
func (c *ListCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	ctx, cancel := signalContext()
	defer cancel()

	loadSpinner, _ := pterm.DefaultSpinner.Start("Loading expressions list...")
	list, err := c.client().GetExpressionsList(ctx)
	if err != nil {
		printFailure(loadSpinner, "Can not load expressions list", err)
		return
	}
	loadSpinner.Success("Expressions loaded:")
	pterm.Println()

	items := make([]pterm.BulletListItem, 0, len(list.Expressions))
	for _, name := range list.Expressions {
		items = append(items, pterm.BulletListItem{
			Level:       0,
			Text:        name,
			Bullet:      ">",
			BulletStyle: pterm.NewStyle(pterm.FgYellow),
		})
	}
	pterm.DefaultBulletList.WithItems(items).Render()
}

// GetCommandHelper получение выражения по имени.
type GetCommandHelper struct {
	fs *flag.FlagSet
	nodeFlags

	help bool
	name string
}

// NewGetCommandHelper возвращает новый GetCommandHelper.
func NewGetCommandHelper() *GetCommandHelper {
	c := &GetCommandHelper{
		fs: flag.NewFlagSet("get", flag.ContinueOnError),
	}

	c.register(c.fs)
	c.fs.StringVarP(&c.name, "name", "n", "", "Name of the expression")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// Init инициализирует состояние команды.
func (c *GetCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}
	if c.name == "" {
		return errors.New("name can not be empty")
	}
	return c.validate()
}

// PrintHelp печатает сообщение с помощью по команде
func (c *GetCommandHelper) PrintHelp() {
	printHelp(c.fs, "Command 'gotabulator remote get' returns stored expression.")
}

// Run запускает комнаду.
func (c *GetCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	ctx, cancel := signalContext()
	defer cancel()

	expr, err := c.client().GetExpression(ctx, c.name)
	if err != nil {
		printError("Can not load expression", err)
		return
	}

	pterm.DefaultTable.WithData(pterm.TableData{
		{"Name", expr.Name},
		{"Mode", expr.Mode},
		{"Expression", expr.Expression},
		{"Description", expr.Description},
	}).Render()
}

// CreateCommandHelper сохранение выражения.
type CreateCommandHelper struct {
	fs *flag.FlagSet
	nodeFlags

	help bool
	expr message.Expression
}

// NewCreateCommandHelper создает новый CreateCommandHelper
func NewCreateCommandHelper() *CreateCommandHelper {
	c := &CreateCommandHelper{
		fs: flag.NewFlagSet("new", flag.ContinueOnError),
	}

	c.register(c.fs)
	c.fs.StringVarP(&c.expr.Name, "name", "n", "", "Name of a new expression")
	c.fs.StringVarP(&c.expr.Mode, "mode", "m", "i", "Numeric mode: i, u, bi, d, f, b")
	c.fs.StringVarP(&c.expr.Expression, "expression", "e", "", "Expression over x, y, z")
	c.fs.StringVarP(&c.expr.Description, "description", "d", "", "Human readable description")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *CreateCommandHelper) PrintHelp() {
	printHelp(c.fs, "Command 'gotabulator remote new' stores expression under given name.")
}

// Init инициализирует состояние команды.
func (c *CreateCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}
	if c.expr.Name == "" {
		return errors.New("name can not be empty")
	}
	if c.expr.Expression == "" {
		return errors.New("expression can not be empty")
	}
	return c.validate()
}

// Run запускает команду
func (c *CreateCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	ctx, cancel := signalContext()
	defer cancel()

	loadSpinner, _ := pterm.DefaultSpinner.Start("Creating expression...")
	if err := c.client().CreateExpression(ctx, &c.expr); err != nil {
		printFailure(loadSpinner, "Can not create expression", err)
		return
	}
	loadSpinner.Success("Expression created!")
}

// DeleteCommandHelper удаление выражения.
type DeleteCommandHelper struct {
	fs *flag.FlagSet
	nodeFlags

	help bool
	name string
}

// NewDeleteCommandHelper создает новый DeleteCommandHelper
func NewDeleteCommandHelper() *DeleteCommandHelper {
	c := &DeleteCommandHelper{
		fs: flag.NewFlagSet("rm", flag.ContinueOnError),
	}

	c.register(c.fs)
	c.fs.StringVarP(&c.name, "name", "n", "", "Name of the expression to remove")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *DeleteCommandHelper) PrintHelp() {
	printHelp(c.fs, "Command 'gotabulator remote rm' removes stored expression.")
}

// Init инициализирует состояние команды.
func (c *DeleteCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}
	if c.name == "" {
		return errors.New("name can not be empty")
	}
	return c.validate()
}

// Run запускает команду
func (c *DeleteCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	ctx, cancel := signalContext()
	defer cancel()

	loadSpinner, _ := pterm.DefaultSpinner.Start("Removing expression...")
	if err := c.client().DeleteExpression(ctx, c.name); err != nil {
		printFailure(loadSpinner, "Can not remove expression", err)
		return
	}
	loadSpinner.Success("Expression removed!")
}

// RunCommandHelper табулирование сохраненного выражения.
type RunCommandHelper struct {
	fs *flag.FlagSet
	nodeFlags

	help  bool
	name  string
	flags common.TabulationFlags
}

// NewRunCommandHelper создает новый RunCommandHelper
func NewRunCommandHelper() *RunCommandHelper {
	c := &RunCommandHelper{
		fs: flag.NewFlagSet("run", flag.ContinueOnError),
	}

	c.register(c.fs)
	c.fs.StringVarP(&c.name, "name", "n", "", "Name of the expression to tabulate")
	c.flags.RegisterBounds(c.fs)
	c.flags.RegisterFormat(c.fs)
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *RunCommandHelper) PrintHelp() {
	printHelp(c.fs, "Command 'gotabulator remote run' tabulates stored expression.")
}

// Init инициализирует состояние команды.
func (c *RunCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}
	if c.name == "" {
		return errors.New("name can not be empty")
	}
	if err := common.ValidateFormat(c.flags.Format); err != nil {
		return err
	}
	return c.validate()
}

// Run запускает команду
func (c *RunCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	ctx, cancel := signalContext()
	defer cancel()

	spinner, _ := pterm.DefaultSpinner.Start("Tabulating...")
	resp, err := c.client().TabulateExpression(ctx, c.name, c.flags.Bounds)
	if err != nil {
		printFailure(spinner, "Can not tabulate", err)
		return
	}
	spinner.Success("Tabulated")

	if err := common.PrintGrid(resp.EncodedGrid, c.flags.Format); err != nil {
		pterm.Error.Printfln("Can not print result: %s", err)
	}
}

// GraphCommandHelper сохранение дерева выражения в SVG.
type GraphCommandHelper struct {
	fs *flag.FlagSet
	nodeFlags

	help   bool
	name   string
	output string
}

// NewGraphCommandHelper создает новый GraphCommandHelper
func NewGraphCommandHelper() *GraphCommandHelper {
	c := &GraphCommandHelper{
		fs: flag.NewFlagSet("graph", flag.ContinueOnError),
	}

	c.register(c.fs)
	c.fs.StringVarP(&c.name, "name", "n", "", "Name of the expression")
	c.fs.StringVarP(&c.output, "output", "o", "", "Output SVG file, default is <name>.svg")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *GraphCommandHelper) PrintHelp() {
	printHelp(c.fs, "Command 'gotabulator remote graph' renders expression tree into SVG file.")
}

// Init инициализирует состояние команды.
func (c *GraphCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}
	if c.name == "" {
		return errors.New("name can not be empty")
	}
	if c.output == "" {
		c.output = c.name + ".svg"
	}
	return c.validate()
}

// Run запускает команду
func (c *GraphCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	ctx, cancel := signalContext()
	defer cancel()

	img, err := c.client().GetGraph(ctx, c.name)
	if err != nil {
		printError("Can not render graph", err)
		return
	}
	if err := os.WriteFile(c.output, img, 0644); err != nil {
		pterm.Error.Printfln("Can not write %s: %s", c.output, err)
		return
	}
	pterm.Success.Printfln("Graph saved to %s", c.output)
}
