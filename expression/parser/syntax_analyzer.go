package parser

import (
	"github.com/GDVFox/gotabulator/expression/operations"
	"github.com/GDVFox/gotabulator/expression/recognizer"
)

var unaryKinds = map[recognizer.Kind]UnaryKind{
	recognizer.SubKind:    NegateOperation,
	recognizer.AbsKind:    AbsOperation,
	recognizer.SquareKind: SquareOperation,
}

var additiveKinds = map[recognizer.Kind]BinaryKind{
	recognizer.AddKind: AddOperation,
	recognizer.SubKind: SubtractOperation,
}

var multiplicativeKinds = map[recognizer.Kind]BinaryKind{
	recognizer.MulKind: MultiplyOperation,
	recognizer.DivKind: DivideOperation,
	recognizer.ModKind: ModOperation,
}

// SyntaxAnalyzer синтаксический анализатор выражений над представлением T.
// Разбор выполняется рекурсивным спуском за один проход без возвратов.
// Не предназначен для одновременного использования из нескольких горутин.
type SyntaxAnalyzer[T any] struct {
	ops    operations.Operations[T]
	idents recognizer.Identifiers
	cursor recognizer.Cursor[T]
}

// NewSyntaxAnalyzer создает синтаксический анализатор для домена ops.
func NewSyntaxAnalyzer[T any](ops operations.Operations[T], idents recognizer.Identifiers) *SyntaxAnalyzer[T] {
	return &SyntaxAnalyzer[T]{
		ops:    ops,
		idents: idents,
	}
}

// Parse выполняет построение дерева разбора выражения.
// Ошибки имеют тип *recognizer.ParsingError.
func (a *SyntaxAnalyzer[T]) Parse(expression string) (Node[T], error) {
	a.cursor = recognizer.NewCursor(expression, a.ops, a.idents)

	root, err := a.parseAddAndSub()
	if err != nil {
		return nil, err
	}

	if a.sym().Kind != recognizer.EndKind {
		return nil, a.buildTokenError(recognizer.SyntaxReason, "unexpected token in expression")
	}
	return root, nil
}

// Parse разбирает выражение с таблицей идентификаторов по умолчанию.
func Parse[T any](expression string, ops operations.Operations[T]) (Node[T], error) {
	return NewSyntaxAnalyzer(ops, recognizer.DefaultIdentifiers()).Parse(expression)
}

func (a *SyntaxAnalyzer[T]) parseAddAndSub() (Node[T], error) {
	left, err := a.parseMulAndDiv()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := additiveKinds[a.sym().Kind]
		if !ok {
			return left, nil
		}

		right, err := a.parseMulAndDiv()
		if err != nil {
			return nil, err
		}
		left = &BinaryOperation[T]{Op: op, Left: left, Right: right}
	}
}

func (a *SyntaxAnalyzer[T]) parseMulAndDiv() (Node[T], error) {
	left, err := a.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := multiplicativeKinds[a.sym().Kind]
		if !ok {
			return left, nil
		}

		right, err := a.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOperation[T]{Op: op, Left: left, Right: right}
	}
}

// parseUnary сам продвигает курсор к своей первой лексеме,
// поэтому вызывающие циклы не пропускают оператор явно.
func (a *SyntaxAnalyzer[T]) parseUnary() (Node[T], error) {
	if err := a.nextToken(); err != nil {
		return nil, err
	}

	token := a.sym()
	switch token.Kind {
	case recognizer.NumberKind:
		if err := a.nextToken(); err != nil {
			return nil, err
		}
		return &Const[T]{Value: token.Value}, nil
	case recognizer.VariableKind:
		if err := a.nextToken(); err != nil {
			return nil, err
		}
		return &Variable[T]{Name: token.Name}, nil
	case recognizer.SubKind, recognizer.AbsKind, recognizer.SquareKind:
		operand, err := a.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryOperation[T]{Op: unaryKinds[token.Kind], Operand: operand}, nil
	case recognizer.OpenBracketKind:
		inner, err := a.parseAddAndSub()
		if err != nil {
			return nil, err
		}
		if a.sym().Kind != recognizer.CloseBracketKind {
			return nil, a.buildTokenError(recognizer.UnpairedBracketsReason, "unpaired open bracket in expression")
		}
		if err := a.nextToken(); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, a.buildTokenError(recognizer.SyntaxReason, "incorrect expression")
	}
}

func (a *SyntaxAnalyzer[T]) sym() recognizer.Token[T] {
	return a.cursor.Token()
}

func (a *SyntaxAnalyzer[T]) nextToken() error {
	next, err := a.cursor.Next()
	if err != nil {
		return err
	}
	a.cursor = next
	return nil
}

func (a *SyntaxAnalyzer[T]) buildTokenError(reason recognizer.Reason, msg string) error {
	return recognizer.NewParsingError(reason, msg, a.cursor.Text(), a.sym().Index)
}
