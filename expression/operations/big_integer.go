package operations

import "math/big"

// BigIntegerOperations операции над целыми произвольной точности.
// Переполнения не бывает; при checked = true деление и остаток по нулю
// возвращают ошибку, иначе math/big паникует.
type BigIntegerOperations struct {
	checked bool
}

// NewBigIntegerOperations создает BigIntegerOperations.
func NewBigIntegerOperations(checked bool) *BigIntegerOperations {
	return &BigIntegerOperations{checked: checked}
}

// ParseNumber разбирает десятичный литерал.
func (o *BigIntegerOperations) ParseNumber(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, incorrectConstantError(s)
	}
	return v, nil
}

// Format возвращает десятичную запись x.
func (o *BigIntegerOperations) Format(x *big.Int) string {
	return x.String()
}

// Add возвращает x + y.
func (o *BigIntegerOperations) Add(x, y *big.Int) (*big.Int, error) {
	return new(big.Int).Add(x, y), nil
}

// Subtract возвращает x - y.
func (o *BigIntegerOperations) Subtract(x, y *big.Int) (*big.Int, error) {
	return new(big.Int).Sub(x, y), nil
}

// Multiply возвращает x * y.
func (o *BigIntegerOperations) Multiply(x, y *big.Int) (*big.Int, error) {
	return new(big.Int).Mul(x, y), nil
}

// Divide возвращает x / y с округлением к нулю.
func (o *BigIntegerOperations) Divide(x, y *big.Int) (*big.Int, error) {
	if o.checked && y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Int).Quo(x, y), nil
}

// Mod возвращает неотрицательный остаток x по модулю y.
// Модуль должен быть положительным.
func (o *BigIntegerOperations) Mod(x, y *big.Int) (*big.Int, error) {
	if o.checked && y.Sign() == 0 {
		return nil, ErrModuloByZero
	}
	if y.Sign() < 0 {
		return nil, ErrNegativeModulus
	}
	return new(big.Int).Mod(x, y), nil
}

// Negate возвращает -x.
func (o *BigIntegerOperations) Negate(x *big.Int) (*big.Int, error) {
	return new(big.Int).Neg(x), nil
}

// Abs возвращает |x|.
func (o *BigIntegerOperations) Abs(x *big.Int) (*big.Int, error) {
	return new(big.Int).Abs(x), nil
}

// Square возвращает x * x.
func (o *BigIntegerOperations) Square(x *big.Int) (*big.Int, error) {
	return new(big.Int).Mul(x, x), nil
}
