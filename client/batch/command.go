package batch

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gotabulator/client/common"
	"github.com/GDVFox/gotabulator/client/local"
	"github.com/GDVFox/gotabulator/client/nodeclient"
	"github.com/GDVFox/gotabulator/tabulator"
)

// CommandHelper выполнение пакета заданий.
type CommandHelper struct {
	fs *flag.FlagSet

	help    bool
	input   string
	workers int
	format  string
	address string
	timeout time.Duration
}

// NewCommandHelper создает новый CommandHelper
func NewCommandHelper() *CommandHelper {
	c := &CommandHelper{
		fs: flag.NewFlagSet("batch", flag.ContinueOnError),
	}

	c.fs.StringVarP(&c.input, "input", "i", "", "Batch file in yaml format")
	c.fs.IntVarP(&c.workers, "workers", "w", 4, "Number of concurrently executed jobs")
	c.fs.StringVarP(&c.format, "format", "f", common.TableFormat, "Output format: table, json, yaml")
	c.fs.StringVarP(&c.address, "address", "a", "", "Address of tabulator_node, jobs are executed locally if empty")
	c.fs.DurationVar(&c.timeout, "timeout", time.Minute, "Request timeout for remote execution")
	c.fs.BoolVarP(&c.help, "help", "h", false, "Prints help message")
	return c
}

// PrintHelp печатает сообщение с помощью по команде
func (c *CommandHelper) PrintHelp() {
	pterm.DefaultBasicText.Println("Command 'gotabulator batch' executes every job from batch file.")
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	c.fs.PrintDefaults()
}

// Init инициализирует состояние команды.
func (c *CommandHelper) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.help {
		return nil
	}

	if c.input == "" {
		return errors.New("input can not be empty")
	}
	if c.workers <= 0 {
		return errors.New("workers must be positive")
	}
	return common.ValidateFormat(c.format)
}

// Run запускает команду
func (c *CommandHelper) Run() {
	if c.help {
		c.PrintHelp()
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	jobs, err := LoadFile(ctx, c.input)
	if err != nil {
		pterm.Error.Printfln("Can not load batch: %s", err)
		return
	}

	spinner, _ := pterm.DefaultSpinner.Start("Running jobs...")
	results, err := Run(ctx, jobs, c.workers, c.executor())
	if err != nil {
		spinner.Fail("Batch aborted: ", err)
		return
	}
	spinner.Success("Batch done")

	for _, r := range results {
		pterm.DefaultHeader.Println(r.Job.Name)
		if r.Err != nil {
			if body, ok := nodeclient.AsErrorBody(r.Err); ok {
				common.PrintErrorBody(body)
				continue
			}
			local.PrintTabulationError(r.Err)
			continue
		}
		if err := common.PrintGrid(r.Grid, c.format); err != nil {
			pterm.Error.Printfln("Can not print result: %s", err)
		}
	}
}

func (c *CommandHelper) executor() ExecuteFunc {
	if c.address != "" {
		client := nodeclient.NewTabulatorNodeClient(&nodeclient.TabulatorNodeClientConfig{
			Address: c.address,
			Timeout: c.timeout,
		})
		return func(ctx context.Context, job *Job) (*tabulator.EncodedGrid, error) {
			resp, err := client.Tabulate(ctx, &job.TabulateRequest)
			if err != nil {
				return nil, err
			}
			return resp.EncodedGrid, nil
		}
	}

	tab := local.NewTabulator()
	return func(ctx context.Context, job *Job) (*tabulator.EncodedGrid, error) {
		grid, err := tab.Tabulate(job.Mode, job.Expression, job.Bounds)
		if err != nil {
			return nil, err
		}
		return grid.Encode(), nil
	}
}
