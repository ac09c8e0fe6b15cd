package operations

import "strconv"

// ByteOperations операции над 8-битными целыми без проверки переполнения.
type ByteOperations struct{}

// NewByteOperations создает ByteOperations.
func NewByteOperations() *ByteOperations {
	return &ByteOperations{}
}

// ParseNumber разбирает 32-битный литерал и обрезает его до младшего байта.
func (o *ByteOperations) ParseNumber(s string) (int8, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, incorrectConstantError(s)
	}
	return int8(v), nil
}

// Format возвращает десятичную запись x.
func (o *ByteOperations) Format(x int8) string {
	return strconv.FormatInt(int64(x), 10)
}

// Add возвращает x + y.
func (o *ByteOperations) Add(x, y int8) (int8, error) {
	return x + y, nil
}

// Subtract возвращает x - y.
func (o *ByteOperations) Subtract(x, y int8) (int8, error) {
	return x - y, nil
}

// Multiply возвращает x * y.
func (o *ByteOperations) Multiply(x, y int8) (int8, error) {
	return x * y, nil
}

// Divide возвращает x / y.
func (o *ByteOperations) Divide(x, y int8) (int8, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}

// Mod возвращает x % y.
func (o *ByteOperations) Mod(x, y int8) (int8, error) {
	if y == 0 {
		return 0, ErrModuloByZero
	}
	return x % y, nil
}

// Negate возвращает -x.
func (o *ByteOperations) Negate(x int8) (int8, error) {
	return -x, nil
}

// Abs возвращает |x|.
func (o *ByteOperations) Abs(x int8) (int8, error) {
	if x < 0 {
		return -x, nil
	}
	return x, nil
}

// Square возвращает x * x.
func (o *ByteOperations) Square(x int8) (int8, error) {
	return x * x, nil
}
