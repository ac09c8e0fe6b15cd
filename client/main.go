package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/GDVFox/gotabulator/client/about"
	"github.com/GDVFox/gotabulator/client/batch"
	"github.com/GDVFox/gotabulator/client/common"
	"github.com/GDVFox/gotabulator/client/help"
	"github.com/GDVFox/gotabulator/client/local"
	"github.com/GDVFox/gotabulator/client/remote"
)

// Category категория команд
type Category string

// Список возможных категорий.
const (
	TabulateCategory Category = "tabulate"
	ParseCategory    Category = "parse"
	BatchCategory    Category = "batch"
	RemoteCategory   Category = "remote"
	HelpCategory     Category = "help"
	AboutCategory    Category = "about"
)

func main() {
	pterm.DisableDebugMessages()
	pterm.Error.ShowLineNumber = false

	if len(os.Args) < 2 {
		help.HandleHelp()
		return
	}

	args := os.Args[1:]
	switch Category(args[0]) {
	case TabulateCategory:
		common.RunCommand(local.NewTabulateCommandHelper(), args)
	case ParseCategory:
		common.RunCommand(local.NewParseCommandHelper(), args)
	case BatchCategory:
		common.RunCommand(batch.NewCommandHelper(), args)
	case RemoteCategory:
		remote.HandleRemote(args)
	case HelpCategory:
		help.HandleHelp()
	case AboutCategory:
		about.HandleAbout()
	default:
		pterm.Error.Printfln("Unknown category '%s', run 'gotabulator help' for more information", args[0])
	}
}
