package operations

import (
	"math"
	"strconv"
)

// IntegerOperations операции над 32-битными знаковыми целыми.
// При checked = false переполнение не проверяется и значения оборачиваются.
type IntegerOperations struct {
	checked bool
}

// NewIntegerOperations создает IntegerOperations.
func NewIntegerOperations(checked bool) *IntegerOperations {
	return &IntegerOperations{checked: checked}
}

// ParseNumber разбирает десятичный литерал.
func (o *IntegerOperations) ParseNumber(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, incorrectConstantError(s)
	}
	return int32(v), nil
}

// Format возвращает десятичную запись x.
func (o *IntegerOperations) Format(x int32) string {
	return strconv.FormatInt(int64(x), 10)
}

func checkAdd(x, y int32) error {
	if y < 0 {
		if x < math.MinInt32-y {
			return overflowError("adding")
		}
	} else if x > math.MaxInt32-y {
		return overflowError("adding")
	}
	return nil
}

// Add возвращает x + y.
func (o *IntegerOperations) Add(x, y int32) (int32, error) {
	if o.checked {
		if err := checkAdd(x, y); err != nil {
			return 0, err
		}
	}
	return x + y, nil
}

func checkSubtract(x, y int32) error {
	if y < 0 {
		if x > math.MaxInt32+y {
			return overflowError("subtracting")
		}
	} else if x < math.MinInt32+y {
		return overflowError("subtracting")
	}
	return nil
}

// Subtract возвращает x - y.
func (o *IntegerOperations) Subtract(x, y int32) (int32, error) {
	if o.checked {
		if err := checkSubtract(x, y); err != nil {
			return 0, err
		}
	}
	return x - y, nil
}

// multiplyFits сравнивает множитель с границей MAX/y или MIN/y в зависимости от знаков,
// не вычисляя произведение.
func multiplyFits(x, y int32) bool {
	switch {
	case x < 0 && y < 0:
		return x >= math.MaxInt32/y
	case x < 0 && y > 0:
		return x >= math.MinInt32/y
	case x > 0 && y < 0:
		return y >= math.MinInt32/x
	case x > 0 && y > 0:
		return x <= math.MaxInt32/y
	}
	return true
}

// Multiply возвращает x * y.
func (o *IntegerOperations) Multiply(x, y int32) (int32, error) {
	if o.checked && !multiplyFits(x, y) {
		return 0, overflowError("multiplying")
	}
	return x * y, nil
}

// Divide возвращает x / y с округлением к нулю.
func (o *IntegerOperations) Divide(x, y int32) (int32, error) {
	// деление на ноль проверяется и в unchecked режиме, иначе будет паника.
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	if o.checked && x == math.MinInt32 && y == -1 {
		return 0, overflowError("dividing")
	}
	return x / y, nil
}

// Mod возвращает остаток x % y со знаком делимого.
func (o *IntegerOperations) Mod(x, y int32) (int32, error) {
	if y == 0 {
		return 0, ErrModuloByZero
	}
	return x % y, nil
}

// Negate возвращает -x.
func (o *IntegerOperations) Negate(x int32) (int32, error) {
	if o.checked && x == math.MinInt32 {
		return 0, overflowError("negating")
	}
	return -x, nil
}

// Abs возвращает |x|. В unchecked режиме |MIN| = MIN.
func (o *IntegerOperations) Abs(x int32) (int32, error) {
	if o.checked && x == math.MinInt32 {
		return 0, overflowError("calculating absolute value")
	}
	if x < 0 {
		return -x, nil
	}
	return x, nil
}

// Square возвращает x * x.
func (o *IntegerOperations) Square(x int32) (int32, error) {
	if o.checked && !multiplyFits(x, x) {
		return 0, overflowError("calculating square")
	}
	return x * x, nil
}
