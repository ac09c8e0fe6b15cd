package operations

import "github.com/pkg/errors"

// Возможные ошибки вычисления.
var (
	ErrIncorrectConstant = errors.New("incorrect constant")
	ErrOverflow          = errors.New("overflow")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrModuloByZero      = errors.New("taking modulo by zero")
	ErrNegativeModulus   = errors.New("negative modulus")
)

// Operations набор арифметических операций над представлением T.
// Каждая операция может завершиться ошибкой вычисления.
type Operations[T any] interface {
	// ParseNumber преобразует текст литерала в значение T.
	ParseNumber(s string) (T, error)
	// Format возвращает текстовое представление x, которое ParseNumber принимает обратно.
	Format(x T) string

	Add(x, y T) (T, error)
	Subtract(x, y T) (T, error)
	Multiply(x, y T) (T, error)
	Divide(x, y T) (T, error)
	Mod(x, y T) (T, error)

	Negate(x T) (T, error)
	Abs(x T) (T, error)
	Square(x T) (T, error)
}

func overflowError(op string) error {
	return errors.Wrapf(ErrOverflow, "when %s", op)
}

func incorrectConstantError(s string) error {
	return errors.Wrapf(ErrIncorrectConstant, "%q", s)
}
