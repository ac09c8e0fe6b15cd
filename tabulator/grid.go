package tabulator

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrFailedCell ошибка ячейки, восстановленной из закодированной таблицы.
// Исходная причина при кодировании не сохраняется.
var ErrFailedCell = errors.New("cell evaluation failed")

// Cell значение ячейки таблицы. Err != nil означает, что вычисление не удалось.
type Cell struct {
	Value interface{}
	Text  string
	Err   error
}

// Failed признак неудачного вычисления.
func (c Cell) Failed() bool {
	return c.Err != nil
}

// Plane срез таблицы при фиксированном x: индексы [j][k].
type Plane [][]Cell

// Grid результат табулирования. Ячейка (i, j, k) соответствует точке
// (X1+i, Y1+j, Z1+k).
type Grid struct {
	Mode       string
	Expression string
	Bounds     Bounds
	Cells      []Plane
}

// NewGrid создает пустую таблицу нужного размера.
func NewGrid(mode, expression string, b Bounds) *Grid {
	n, m, p := b.Dims()
	cells := make([]Plane, n)
	for i := range cells {
		cells[i] = newPlane(m, p)
	}
	return &Grid{
		Mode:       mode,
		Expression: expression,
		Bounds:     b,
		Cells:      cells,
	}
}

func newPlane(m, p int) Plane {
	plane := make(Plane, m)
	for j := range plane {
		plane[j] = make([]Cell, p)
	}
	return plane
}

// At возвращает ячейку (i, j, k).
func (g *Grid) At(i, j, k int) Cell {
	return g.Cells[i][j][k]
}

// FailedCount количество неудачно вычисленных ячеек.
func (g *Grid) FailedCount() int {
	count := 0
	for _, plane := range g.Cells {
		count += plane.FailedCount()
	}
	return count
}

// FailedCount количество неудачно вычисленных ячеек среди плоскости.
func (p Plane) FailedCount() int {
	count := 0
	for _, row := range p {
		for _, cell := range row {
			if cell.Failed() {
				count++
			}
		}
	}
	return count
}

// Texts текстовые значения плоскости, nil для неудачных ячеек.
func (p Plane) Texts() [][]*string {
	texts := make([][]*string, len(p))
	for j, row := range p {
		texts[j] = make([]*string, len(row))
		for k := range row {
			if !row[k].Failed() {
				texts[j][k] = &row[k].Text
			}
		}
	}
	return texts
}

// EncodedGrid представление Grid для передачи и хранения.
// Значения хранятся в текстовом виде домена, неудачные ячейки как null.
type EncodedGrid struct {
	Mode       string        `json:"mode" yaml:"mode"`
	Expression string        `json:"expression" yaml:"expression"`
	Bounds     Bounds        `json:"bounds" yaml:"bounds"`
	Failed     int           `json:"failed" yaml:"failed"`
	Cells      [][][]*string `json:"cells" yaml:"cells"`
}

// Encode переводит таблицу в EncodedGrid.
func (g *Grid) Encode() *EncodedGrid {
	cells := make([][][]*string, len(g.Cells))
	for i, plane := range g.Cells {
		cells[i] = plane.Texts()
	}
	return &EncodedGrid{
		Mode:       g.Mode,
		Expression: g.Expression,
		Bounds:     g.Bounds,
		Failed:     g.FailedCount(),
		Cells:      cells,
	}
}

// MarshalJSON кодирует таблицу через EncodedGrid.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Encode())
}

// Decode восстанавливает таблицу из EncodedGrid, значения разбираются доменом d.
func Decode(d Domain, enc *EncodedGrid) (*Grid, error) {
	if err := enc.Bounds.Validate(0); err != nil {
		return nil, err
	}

	g := NewGrid(enc.Mode, enc.Expression, enc.Bounds)
	if len(enc.Cells) != len(g.Cells) {
		return nil, errors.Wrapf(ErrBadBounds, "expected %d planes, got %d", len(g.Cells), len(enc.Cells))
	}
	for i, plane := range g.Cells {
		if len(enc.Cells[i]) != len(plane) {
			return nil, errors.Wrapf(ErrBadBounds, "plane %d: expected %d rows, got %d", i, len(plane), len(enc.Cells[i]))
		}
		for j, row := range plane {
			if len(enc.Cells[i][j]) != len(row) {
				return nil, errors.Wrapf(ErrBadBounds, "row %d/%d: expected %d cells, got %d", i, j, len(row), len(enc.Cells[i][j]))
			}
			for k := range row {
				text := enc.Cells[i][j][k]
				if text == nil {
					row[k] = Cell{Err: ErrFailedCell}
					continue
				}

				value, err := d.ParseValue(*text)
				if err != nil {
					return nil, errors.Wrapf(err, "cell (%d, %d, %d)", i, j, k)
				}
				row[k] = Cell{Value: value, Text: *text}
			}
		}
	}
	return g, nil
}
