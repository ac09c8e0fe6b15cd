package tabulator

import (
	"github.com/GDVFox/gotabulator/expression/recognizer"
	"github.com/GDVFox/gotabulator/util"
)

// Config ограничения табулятора.
type Config struct {
	// MaxCells максимальное число ячеек в одной таблице, 0 - без ограничений.
	MaxCells int64 `yaml:"max-cells" toml:"max-cells" split_words:"true"`
}

// NewConfig создает Config с настройками по-умолчанию.
func NewConfig() *Config {
	return &Config{
		MaxCells: 1 << 20,
	}
}

// PlaneFunc получает очередную вычисленную плоскость с индексом i и координатой x.
// Ошибка прерывает табулирование.
type PlaneFunc func(i, x int, plane Plane) error

// Tabulator вычисляет выражения на целочисленной сетке.
type Tabulator struct {
	registry Registry
	idents   recognizer.Identifiers
	cfg      *Config
	logger   *util.Logger
}

// NewTabulator создает новый Tabulator.
func NewTabulator(registry Registry, idents recognizer.Identifiers, cfg *Config, l *util.Logger) *Tabulator {
	return &Tabulator{
		registry: registry,
		idents:   idents,
		cfg:      cfg,
		logger:   l,
	}
}

// Modes возвращает поддерживаемые домены.
func (t *Tabulator) Modes() []string {
	return t.registry.Modes()
}

// Domain возвращает домен по идентификатору.
func (t *Tabulator) Domain(mode string) (Domain, error) {
	return t.registry.Lookup(mode)
}

// Compile разбирает expression в домене mode.
// Ошибка разбора возвращается как *recognizer.ParsingError.
func (t *Tabulator) Compile(mode, expression string) (Expression, error) {
	d, err := t.registry.Lookup(mode)
	if err != nil {
		return nil, err
	}
	return d.Compile(expression, t.idents)
}

// Tabulate разбирает expression и вычисляет его во всех точках b.
// Ошибки вычисления отдельных ячеек не прерывают табулирование.
func (t *Tabulator) Tabulate(mode, expression string, b Bounds) (*Grid, error) {
	return t.TabulateFunc(mode, expression, b, nil)
}

// TabulateFunc аналогичен Tabulate, но передает в onPlane каждую плоскость по мере готовности.
func (t *Tabulator) TabulateFunc(mode, expression string, b Bounds, onPlane PlaneFunc) (*Grid, error) {
	d, err := t.registry.Lookup(mode)
	if err != nil {
		return nil, err
	}
	if err := b.Validate(t.cfg.MaxCells); err != nil {
		return nil, err
	}

	expr, err := d.Compile(expression, t.idents)
	if err != nil {
		return nil, err
	}
	return t.Run(expr, b, onPlane)
}

// Run вычисляет уже разобранное выражение во всех точках b.
// Порядок обхода: x внешний, затем y, затем z.
func (t *Tabulator) Run(expr Expression, b Bounds, onPlane PlaneFunc) (*Grid, error) {
	if err := b.Validate(t.cfg.MaxCells); err != nil {
		return nil, err
	}
	t.logger.Infof("tabulating %s in mode %s over %s", expr, expr.Mode(), b)

	g := NewGrid(expr.Mode(), expr.Source(), b)
	for i, plane := range g.Cells {
		x := b.X1 + i
		for j, row := range plane {
			y := b.Y1 + j
			for k := range row {
				value, err := expr.Evaluate(x, y, b.Z1+k)
				if err != nil {
					row[k] = Cell{Err: err}
					continue
				}
				row[k] = Cell{Value: value, Text: expr.Format(value)}
			}
		}

		if onPlane != nil {
			if err := onPlane(i, x, plane); err != nil {
				return nil, err
			}
		}
	}

	t.logger.Debugf("tabulated %d cells, %d failed", b.Size(), g.FailedCount())
	return g, nil
}
