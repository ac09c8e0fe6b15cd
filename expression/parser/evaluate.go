package parser

import (
	"github.com/pkg/errors"

	"github.com/GDVFox/gotabulator/expression/operations"
)

// Возможные ошибки вычисления дерева.
var (
	ErrUnknownVariable = errors.New("unknown variable")
	ErrUnknownNode     = errors.New("unknown node")
)

// Bindings значения переменных x, y, z.
type Bindings[T any] struct {
	X, Y, Z T
}

// Lookup возвращает значение переменной name.
func (b Bindings[T]) Lookup(name string) (T, bool) {
	switch name {
	case "x":
		return b.X, true
	case "y":
		return b.Y, true
	case "z":
		return b.Z, true
	}
	var zero T
	return zero, false
}

// Evaluate вычисляет значение дерева n. Ошибки домена возвращаются без изменений,
// их причину можно получить через errors.Cause.
func Evaluate[T any](n Node[T], ops operations.Operations[T], vars Bindings[T]) (T, error) {
	var zero T
	switch n := n.(type) {
	case *Const[T]:
		return n.Value, nil
	case *Variable[T]:
		v, ok := vars.Lookup(n.Name)
		if !ok {
			return zero, errors.Wrapf(ErrUnknownVariable, "%q", n.Name)
		}
		return v, nil
	case *UnaryOperation[T]:
		operand, err := Evaluate(n.Operand, ops, vars)
		if err != nil {
			return zero, err
		}
		switch n.Op {
		case NegateOperation:
			return ops.Negate(operand)
		case AbsOperation:
			return ops.Abs(operand)
		case SquareOperation:
			return ops.Square(operand)
		}
	case *BinaryOperation[T]:
		left, err := Evaluate(n.Left, ops, vars)
		if err != nil {
			return zero, err
		}
		right, err := Evaluate(n.Right, ops, vars)
		if err != nil {
			return zero, err
		}
		switch n.Op {
		case AddOperation:
			return ops.Add(left, right)
		case SubtractOperation:
			return ops.Subtract(left, right)
		case MultiplyOperation:
			return ops.Multiply(left, right)
		case DivideOperation:
			return ops.Divide(left, right)
		case ModOperation:
			return ops.Mod(left, right)
		}
	}
	return zero, errors.Wrapf(ErrUnknownNode, "%T", n)
}
