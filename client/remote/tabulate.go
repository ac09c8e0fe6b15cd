package remote

import (
	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gotabulator/client/common"
	"github.com/GDVFox/gotabulator/util/message"
)

// TabulateCommandHelper табулирование на стороне tabulator_node.
type TabulateCommandHelper struct {
	fs *flag.FlagSet
	nodeFlags

	help   bool
	stream bool
	export bool
	flags  common.TabulationFlags
}

// NewTabulateCommandHelper создает новый TabulateCommandHelper
func NewTabulateCommandHelper() *TabulateCommandHelper {
	c := &TabulateCommandHelper{
		fs: flag.NewFlagSet("tabulate", flag.ContinueOnError),
	}

	c.register(c.fs)
	c.flags.Register(c.fs)
	c.fs.BoolVarP(&c.stream, "stream", "s", false, "Receive result plane by plane via websocket")
	c.fs.BoolVar(&c.export, "export", false, "Export result to clickhouse on tabulator_node side")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *TabulateCommandHelper) PrintHelp() {
	printHelp(c.fs, "Command 'gotabulator remote tabulate' evaluates expression on tabulator_node.")
}

// Init инициализирует состояние команды.
func (c *TabulateCommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}
	if err := c.validate(); err != nil {
		return err
	}
	return c.flags.Validate()
}

// Run запускает команду
func (c *TabulateCommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	ctx, cancel := signalContext()
	defer cancel()

	req := &message.TabulateRequest{
		Mode:       c.flags.Mode,
		Expression: c.flags.Expression,
		Bounds:     c.flags.Bounds,
		Export:     c.export,
	}

	if c.stream {
		err := c.client().Stream(ctx, req, func(msg *message.StreamMessage) error {
			if msg.Code == message.StreamDoneCode {
				pterm.Success.Printfln("Done, %d cells failed", msg.Failed)
				return nil
			}
			return common.PrintPlane(req.Bounds, msg.X, msg.Cells)
		})
		if err != nil {
			printError("Can not tabulate", err)
		}
		return
	}

	spinner, _ := pterm.DefaultSpinner.Start("Tabulating...")
	resp, err := c.client().Tabulate(ctx, req)
	if err != nil {
		printFailure(spinner, "Can not tabulate", err)
		return
	}
	if resp.Cached {
		spinner.Success("Tabulated (from cache)")
	} else {
		spinner.Success("Tabulated")
	}

	if err := common.PrintGrid(resp.EncodedGrid, c.flags.Format); err != nil {
		pterm.Error.Printfln("Can not print result: %s", err)
	}
}
