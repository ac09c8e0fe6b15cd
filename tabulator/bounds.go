package tabulator

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrBadBounds некорректные границы таблицы.
var ErrBadBounds = errors.New("bad bounds")

// Bounds границы таблицы по каждой оси, включительно.
type Bounds struct {
	X1 int `json:"x1" yaml:"x1"`
	X2 int `json:"x2" yaml:"x2"`
	Y1 int `json:"y1" yaml:"y1"`
	Y2 int `json:"y2" yaml:"y2"`
	Z1 int `json:"z1" yaml:"z1"`
	Z2 int `json:"z2" yaml:"z2"`
}

// Dims возвращает размеры таблицы по осям x, y, z.
func (b Bounds) Dims() (n, m, p int) {
	return b.X2 - b.X1 + 1, b.Y2 - b.Y1 + 1, b.Z2 - b.Z1 + 1
}

// Size количество ячеек таблицы.
func (b Bounds) Size() int {
	n, m, p := b.Dims()
	return n * m * p
}

// Validate проверяет, что у каждой оси начало не больше конца,
// и что таблица содержит не более maxCells ячеек. maxCells <= 0 снимает ограничение.
func (b Bounds) Validate(maxCells int64) error {
	axes := []struct {
		name     string
		from, to int
	}{{"x", b.X1, b.X2}, {"y", b.Y1, b.Y2}, {"z", b.Z1, b.Z2}}

	size := int64(1)
	for _, a := range axes {
		if a.from > a.to {
			return errors.Wrapf(ErrBadBounds, "%s1=%d is greater than %s2=%d", a.name, a.from, a.name, a.to)
		}

		dim := int64(a.to) - int64(a.from) + 1
		if dim <= 0 || maxCells > 0 && dim > maxCells/size {
			return errors.Wrapf(ErrBadBounds, "grid has more than %d cells", maxCells)
		}
		size *= dim
	}
	return nil
}

func (b Bounds) String() string {
	return fmt.Sprintf("x[%d..%d] y[%d..%d] z[%d..%d]", b.X1, b.X2, b.Y1, b.Y2, b.Z1, b.Z2)
}
