package local

import (
	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gotabulator/client/common"
)

// TabulateCommandHelper локальное табулирование выражения.
type TabulateCommandHelper struct {
	fs *flag.FlagSet

	help  bool
	flags common.TabulationFlags
}

// NewTabulateCommandHelper создает новый TabulateCommandHelper
func NewTabulateCommandHelper() *TabulateCommandHelper {
	c := &TabulateCommandHelper{
		fs: flag.NewFlagSet("tabulate", flag.ContinueOnError),
	}

	c.flags.Register(c.fs)
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *TabulateCommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Println("Command 'gotabulator tabulate' evaluates expression in every point of the grid.")
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *TabulateCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}
	return c.flags.Validate()
}

// Run запускает команду
func (c *TabulateCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	grid, err := NewTabulator().Tabulate(c.flags.Mode, c.flags.Expression, c.flags.Bounds)
	if err != nil {
		PrintTabulationError(err)
		return
	}

	if err := common.PrintGrid(grid.Encode(), c.flags.Format); err != nil {
		pterm.Error.Printfln("Can not print result: %s", err)
	}
}
