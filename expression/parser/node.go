package parser

import (
	"fmt"
	"strings"
)

// Node вершина дерева разбора над представлением T.
// Набор вершин закрыт: Const, Variable, UnaryOperation, BinaryOperation.
type Node[T any] interface {
	fmt.Stringer
	node()
}

// UnaryKind вид унарной операции.
type UnaryKind int

// Доступные унарные операции.
const (
	NegateOperation UnaryKind = iota
	AbsOperation
	SquareOperation
)

func (k UnaryKind) String() string {
	switch k {
	case NegateOperation:
		return "-"
	case AbsOperation:
		return "abs"
	case SquareOperation:
		return "square"
	default:
		return "UNK"
	}
}

// BinaryKind вид бинарной операции.
type BinaryKind int

// Доступные бинарные операции.
const (
	AddOperation BinaryKind = iota
	SubtractOperation
	MultiplyOperation
	DivideOperation
	ModOperation
)

func (k BinaryKind) String() string {
	switch k {
	case AddOperation:
		return "+"
	case SubtractOperation:
		return "-"
	case MultiplyOperation:
		return "*"
	case DivideOperation:
		return "/"
	case ModOperation:
		return "mod"
	default:
		return "UNK"
	}
}

// Const вершина-константа.
type Const[T any] struct {
	Value T
}

// Variable вершина-переменная.
type Variable[T any] struct {
	Name string
}

// UnaryOperation вершина унарной операции.
type UnaryOperation[T any] struct {
	Op      UnaryKind
	Operand Node[T]
}

// BinaryOperation вершина бинарной операции.
type BinaryOperation[T any] struct {
	Op    BinaryKind
	Left  Node[T]
	Right Node[T]
}

func (*Const[T]) node()           {}
func (*Variable[T]) node()        {}
func (*UnaryOperation[T]) node()  {}
func (*BinaryOperation[T]) node() {}

func (n *Const[T]) String() string           { return Describe[T](n).String() }
func (n *Variable[T]) String() string        { return Describe[T](n).String() }
func (n *UnaryOperation[T]) String() string  { return Describe[T](n).String() }
func (n *BinaryOperation[T]) String() string { return Describe[T](n).String() }

// Description описание вершины без привязки к представлению,
// используется для вывода и отрисовки дерева.
type Description struct {
	Label    string         `json:"label" yaml:"label"`
	Children []*Description `json:"children,omitempty" yaml:"children,omitempty"`
}

// Describe строит Description для дерева с корнем n.
func Describe[T any](n Node[T]) *Description {
	switch n := n.(type) {
	case *Const[T]:
		return &Description{Label: fmt.Sprint(n.Value)}
	case *Variable[T]:
		return &Description{Label: n.Name}
	case *UnaryOperation[T]:
		return &Description{
			Label:    n.Op.String(),
			Children: []*Description{Describe(n.Operand)},
		}
	case *BinaryOperation[T]:
		return &Description{
			Label:    n.Op.String(),
			Children: []*Description{Describe(n.Left), Describe(n.Right)},
		}
	default:
		return &Description{Label: "?"}
	}
}

// String возвращает выражение в инфиксной записи с полной расстановкой скобок.
func (d *Description) String() string {
	b := &strings.Builder{}
	d.writeTo(b)
	return b.String()
}

func (d *Description) writeTo(b *strings.Builder) {
	switch len(d.Children) {
	case 0:
		if strings.HasPrefix(d.Label, "-") {
			b.WriteString("(" + d.Label + ")")
			return
		}
		b.WriteString(d.Label)
	case 1:
		b.WriteString(d.Label)
		b.WriteByte('(')
		d.Children[0].writeTo(b)
		b.WriteByte(')')
	default:
		b.WriteByte('(')
		d.Children[0].writeTo(b)
		b.WriteString(" " + d.Label + " ")
		d.Children[1].writeTo(b)
		b.WriteByte(')')
	}
}

// Walk обходит описание в глубину, передавая в visit вершину и ее родителя.
func (d *Description) Walk(visit func(node, parent *Description) error) error {
	return d.walk(nil, visit)
}

func (d *Description) walk(parent *Description, visit func(node, parent *Description) error) error {
	if err := visit(d, parent); err != nil {
		return err
	}
	for _, child := range d.Children {
		if err := child.walk(d, visit); err != nil {
			return err
		}
	}
	return nil
}
