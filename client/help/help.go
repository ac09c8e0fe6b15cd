package help

import "github.com/pterm/pterm"

// HandleHelp выводит сообщение с помощью.
func HandleHelp() {
	pterm.DisableColor()
	pterm.DefaultBasicText.Printfln("Usage: gotabulator CATEGORY [COMMAND] [OPTIONS]")
	pterm.Println()
	pterm.DefaultBasicText.Printfln("Evaluates arithmetic expressions over x, y, z on an integer grid")
	pterm.Println()
	pterm.Println("MODE is one of: i (checked int32), u (unchecked int32), bi (big integer),")
	pterm.Println("d (float64), f (float32), b (int8)")

	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"CATEGORY", "COMMAND", "Description"},
		{"tabulate", "", "Tabulates expression locally"},
		{"parse", "", "Prints expression with explicit brackets or parsing error"},
		{"batch", "", "Executes jobs from yaml batch file locally or on tabulator_node"},
		{"remote", "", "Works with tabulator_node, requires --address"},
		{"", "tabulate", "Tabulates expression, --stream receives result plane by plane"},
		{"", "parse", "Parses expression"},
		{"", "list", "Returns list of stored expressions"},
		{"", "get", "Returns stored expression"},
		{"", "new", "Stores new expression"},
		{"", "rm", "Removes stored expression"},
		{"", "run", "Tabulates stored expression"},
		{"", "graph", "Saves tree of stored expression as SVG"},
		{"help", "", "Prints help message"},
		{"about", "", "Prints information about gotabulator"},
	}).Render()
	pterm.Println()
	pterm.DefaultBasicText.Printfln("Use 'gotabulator CATEGORY [COMMAND] --help' to see [OPTIONS]")

	pterm.EnableColor()
}
