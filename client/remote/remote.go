package remote

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
	"github.com/GDVFox/gotabulator/client/nodeclient"
)

// Список возможных команд.
const (
	TabulateCommand common.Command = "tabulate"
	ParseCommand    common.Command = "parse"
	ListCommand     common.Command = "list"
	GetCommand      common.Command = "get"
	CreateCommand   common.Command = "new"
	DeleteCommand   common.Command = "rm"
	RunCommand      common.Command = "run"
	GraphCommand    common.Command = "graph"
)

// HandleRemote обрабатывает вызов remote.
func HandleRemote(rawArgs []string) {
	if len(rawArgs) < 2 {
		pterm.Error.Println("Expected COMMAND, run 'gotabulator help' for more information")
		return
	}
	args := rawArgs[1:]

	var commandHelper common.CommandHelper
	switch common.Command(args[0]) {
	case TabulateCommand:
		commandHelper = NewTabulateCommandHelper()
	case ParseCommand:
		commandHelper = NewParseCommandHelper()
	case ListCommand:
		commandHelper = NewListCommandHelper()
	case GetCommand:
		commandHelper = NewGetCommandHelper()
	case CreateCommand:
		commandHelper = NewCreateCommandHelper()
	case DeleteCommand:
		commandHelper = NewDeleteCommandHelper()
	case RunCommand:
		commandHelper = NewRunCommandHelper()
	case GraphCommand:
		commandHelper = NewGraphCommandHelper()
	default:
		pterm.Error.Printfln("Unknown command '%s', run 'gotabulator help' for more information", args[0])
		return
	}
	common.RunCommand(commandHelper, args)
}

// nodeFlags флаги подключения к tabulator_node, общие для всех команд.
type nodeFlags struct {
	address string
	timeout time.Duration
}

func (f *nodeFlags) register(fs *flag.FlagSet) {
	fs.StringVarP(&f.address, "address", "a", "", "Address of tabulator_node in format <host>[:port]")
	fs.DurationVar(&f.timeout, "timeout", time.Minute, "Request timeout")
}

func (f *nodeFlags) validate() error {
	if f.address == "" {
		return errors.New("address can not be empty")
	}
	return nil
}

func (f *nodeFlags) client() *nodeclient.TabulatorNodeClient {
	return nodeclient.NewTabulatorNodeClient(&nodeclient.TabulatorNodeClientConfig{
		Address: f.address,
		Timeout: f.timeout,
	})
}

// signalContext возвращает контекст, отменяемый по SIGINT и SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func printFailure(spinner *pterm.SpinnerPrinter, msg string, err error) {
	if body, ok := nodeclient.AsErrorBody(err); ok {
		spinner.Fail(msg)
		common.PrintErrorBody(body)
		return
	}
	spinner.Fail(msg+": ", err)
}

func printError(msg string, err error) {
	if body, ok := nodeclient.AsErrorBody(err); ok {
		pterm.Error.Println(msg)
		common.PrintErrorBody(body)
		return
	}
	pterm.Error.Printfln("%s: %s", msg, err)
}

func printHelp(fs *flag.FlagSet, format string, args ...interface{}) {
	pterm.DefaultBasicText.Printfln(format, args...)
	pterm.Println()
	pterm.DefaultBasicText.Println("Flags:")
	fs.PrintDefaults()
}
