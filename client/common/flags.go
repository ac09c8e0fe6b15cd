package common

import (
	"errors"

	flag "github.com/spf13/pflag"

	"github.com/GDVFox/gotabulator/tabulator"
)

// TabulationFlags флаги, общие для команд табулирования.
type TabulationFlags struct {
	Mode       string
	Expression string
	Bounds     tabulator.Bounds
	Format     string
}

// Register добавляет флаги в fs.
func (f *TabulationFlags) Register(fs *flag.FlagSet) {
	fs.StringVarP(&f.Mode, "mode", "m", "i", "Numeric mode: i, u, bi, d, f, b")
	f.RegisterExpression(fs)
	f.RegisterBounds(fs)
	f.RegisterFormat(fs)
}

// RegisterExpression добавляет флаг выражения.
func (f *TabulationFlags) RegisterExpression(fs *flag.FlagSet) {
	fs.StringVarP(&f.Expression, "expression", "e", "", "Expression over x, y, z")
}

// RegisterBounds добавляет флаги границ.
func (f *TabulationFlags) RegisterBounds(fs *flag.FlagSet) {
	fs.IntVar(&f.Bounds.X1, "x1", 0, "Lower bound of x")
	fs.IntVar(&f.Bounds.X2, "x2", 0, "Upper bound of x")
	fs.IntVar(&f.Bounds.Y1, "y1", 0, "Lower bound of y")
	fs.IntVar(&f.Bounds.Y2, "y2", 0, "Upper bound of y")
	fs.IntVar(&f.Bounds.Z1, "z1", 0, "Lower bound of z")
	fs.IntVar(&f.Bounds.Z2, "z2", 0, "Upper bound of z")
}

// RegisterFormat добавляет флаг формата вывода.
func (f *TabulationFlags) RegisterFormat(fs *flag.FlagSet) {
	fs.StringVarP(&f.Format, "format", "f", TableFormat, "Output format: table, json, yaml")
}

// Validate проверяет значения флагов.
func (f *TabulationFlags) Validate() error {
	if f.Expression == "" {
		return errors.New("expression can not be empty")
	}
	return ValidateFormat(f.Format)
}
