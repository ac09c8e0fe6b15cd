package local

import (
	"github.com/pterm/pterm"

	"github.com/GDVFox/gotabulator/expression/recognizer"
	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/util"
)

// NewTabulator создает табулятор для локальных вычислений без ограничения размера.
func NewTabulator() *tabulator.Tabulator {
	return tabulator.NewTabulator(tabulator.NewRegistry(), recognizer.DefaultIdentifiers(),
		&tabulator.Config{}, util.NewNopLogger())
}

// PrintTabulationError печатает ошибку табулирования, для ошибок разбора
// вместе с фрагментом выражения и указателем на место ошибки.
func PrintTabulationError(err error) {
	if perr, ok := recognizer.AsParsingError(err); ok {
		pterm.Error.Printfln("%s: %s", perr.Reason, perr.Message)
		pterm.Println(perr.Render())
		return
	}
	pterm.Error.Printfln("Can not tabulate: %s", err)
}
