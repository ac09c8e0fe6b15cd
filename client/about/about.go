package about

import "github.com/pterm/pterm"

// HandleAbout выводит информацию о программе.
func HandleAbout() {
	title, _ := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("Go", pterm.NewStyle(pterm.FgLightMagenta)),
		pterm.NewLettersFromStringWithStyle("Tabulator", pterm.NewStyle(pterm.FgCyan))).
		Srender()

	pterm.DefaultCenter.Println(title)
	pterm.DefaultCenter.WithCenterEachLineSeparately().Println(
		"Expression tabulation tool\n" +
			"with checked integer, big integer and floating point modes.\n" +
			"GitHub repo: 'https://github.com/GDVFox/gotabulator'")
}
