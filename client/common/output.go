package common

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/util/httplib"
)

// Форматы вывода результата.
const (
	TableFormat = "table"
	JSONFormat  = "json"
	YAMLFormat  = "yaml"
)

// FailedCellText отображение неудачно вычисленной ячейки в таблице.
const FailedCellText = "-"

// ValidateFormat проверяет формат вывода.
func ValidateFormat(format string) error {
	switch format {
	case TableFormat, JSONFormat, YAMLFormat:
		return nil
	default:
		return fmt.Errorf("possible output formats is: table, json, yaml: got %s", format)
	}
}

// PrintError печатает ошибку.
func PrintError(format string, args ...interface{}) {
	pterm.Error.Printfln(format, args...)
}

// PrintErrorBody печатает ошибку, полученную от tabulator_node,
// вместе с диагностикой, если она есть.
func PrintErrorBody(body *httplib.ErrorBody) {
	pterm.Error.Printfln("%s: %s", body.Code, body.Message)
	if body.Diagnostic != "" {
		pterm.Println(body.Diagnostic)
	}
}

// PrintGrid выводит таблицу в заданном формате.
func PrintGrid(grid *tabulator.EncodedGrid, format string) error {
	switch format {
	case JSONFormat:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(grid)
	case YAMLFormat:
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(grid)
	}

	pterm.DefaultSection.Printfln("%s (mode %s), %d cells failed", grid.Expression, grid.Mode, grid.Failed)
	for i, plane := range grid.Cells {
		if err := PrintPlane(grid.Bounds, grid.Bounds.X1+i, plane); err != nil {
			return err
		}
	}
	return nil
}

// PrintPlane выводит плоскость x в виде таблицы: строки y, столбцы z.
func PrintPlane(b tabulator.Bounds, x int, plane [][]*string) error {
	pterm.DefaultBasicText.Printfln("x = %d", x)
	return pterm.DefaultTable.WithHasHeader().WithData(PlaneTableData(b, plane)).Render()
}

// PlaneTableData строит данные таблицы для плоскости.
func PlaneTableData(b tabulator.Bounds, plane [][]*string) pterm.TableData {
	header := []string{"y \\ z"}
	for z := b.Z1; z <= b.Z2; z++ {
		header = append(header, strconv.Itoa(z))
	}

	data := pterm.TableData{header}
	for j, row := range plane {
		line := []string{strconv.Itoa(b.Y1 + j)}
		for _, text := range row {
			if text == nil {
				line = append(line, FailedCellText)
				continue
			}
			line = append(line, *text)
		}
		data = append(data, line)
	}
	return data
}
