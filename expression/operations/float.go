package operations

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Вещественные домены следуют IEEE 754: переполнение дает бесконечность,
// деление и остаток по нулю дают Inf или NaN и не считаются ошибкой.

func parseFloat(s string, bitSize int) (float64, error) {
	v, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		// слишком большие литералы превращаются в бесконечность.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return v, nil
		}
		return 0, incorrectConstantError(s)
	}
	return v, nil
}

// DoubleOperations операции над float64.
type DoubleOperations struct{}

// NewDoubleOperations создает DoubleOperations.
func NewDoubleOperations() *DoubleOperations {
	return &DoubleOperations{}
}

// ParseNumber разбирает вещественный литерал.
func (o *DoubleOperations) ParseNumber(s string) (float64, error) {
	return parseFloat(s, 64)
}

// Format возвращает кратчайшую запись, однозначно задающую x.
func (o *DoubleOperations) Format(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func (o *DoubleOperations) Add(x, y float64) (float64, error)      { return x + y, nil }
func (o *DoubleOperations) Subtract(x, y float64) (float64, error) { return x - y, nil }
func (o *DoubleOperations) Multiply(x, y float64) (float64, error) { return x * y, nil }
func (o *DoubleOperations) Divide(x, y float64) (float64, error)   { return x / y, nil }
func (o *DoubleOperations) Mod(x, y float64) (float64, error)      { return math.Mod(x, y), nil }
func (o *DoubleOperations) Negate(x float64) (float64, error)      { return -x, nil }
func (o *DoubleOperations) Abs(x float64) (float64, error)         { return math.Abs(x), nil }
func (o *DoubleOperations) Square(x float64) (float64, error)      { return x * x, nil }

// FloatOperations операции над float32.
type FloatOperations struct{}

// NewFloatOperations создает FloatOperations.
func NewFloatOperations() *FloatOperations {
	return &FloatOperations{}
}

// ParseNumber разбирает вещественный литерал с точностью float32.
func (o *FloatOperations) ParseNumber(s string) (float32, error) {
	v, err := parseFloat(s, 32)
	return float32(v), err
}

// Format возвращает кратчайшую запись, однозначно задающую x как float32.
func (o *FloatOperations) Format(x float32) string {
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}

func (o *FloatOperations) Add(x, y float32) (float32, error)      { return x + y, nil }
func (o *FloatOperations) Subtract(x, y float32) (float32, error) { return x - y, nil }
func (o *FloatOperations) Multiply(x, y float32) (float32, error) { return x * y, nil }
func (o *FloatOperations) Divide(x, y float32) (float32, error)   { return x / y, nil }
func (o *FloatOperations) Negate(x float32) (float32, error)      { return -x, nil }
func (o *FloatOperations) Square(x float32) (float32, error)      { return x * x, nil }

func (o *FloatOperations) Mod(x, y float32) (float32, error) {
	return float32(math.Mod(float64(x), float64(y))), nil
}

func (o *FloatOperations) Abs(x float32) (float32, error) {
	return float32(math.Abs(float64(x))), nil
}
