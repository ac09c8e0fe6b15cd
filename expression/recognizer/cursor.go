package recognizer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/GDVFox/gotabulator/expression/operations"
)

var operatorKinds = map[byte]Kind{
	'+': AddKind,
	'*': MulKind,
	'/': DivKind,
}

// Cursor состояние лексического распознавателя: позиция в тексте, баланс скобок
// и последняя выделенная лексема. Cursor передается по значению, Next возвращает
// новое состояние и не меняет исходное.
type Cursor[T any] struct {
	text    string
	index   int
	balance int
	token   Token[T]

	ops    operations.Operations[T]
	idents Identifiers
}

// NewCursor создает курсор в начале выражения text.
func NewCursor[T any](text string, ops operations.Operations[T], idents Identifiers) Cursor[T] {
	return Cursor[T]{
		text:   text,
		token:  Token[T]{Kind: BeginKind},
		ops:    ops,
		idents: idents,
	}
}

// Token возвращает текущую лексему.
func (c Cursor[T]) Token() Token[T] {
	return c.token
}

// Text возвращает исходное выражение.
func (c Cursor[T]) Text() string {
	return c.text
}

// Index возвращает смещение, с которого начнется разбор следующей лексемы.
func (c Cursor[T]) Index() int {
	return c.index
}

// Balance возвращает число незакрытых скобок.
func (c Cursor[T]) Balance() int {
	return c.balance
}

// Next выделяет следующую лексему. Проверки соседства операндов и операторов
// и баланса закрывающих скобок выполняются здесь же, а не в синтаксическом анализаторе.
func (c Cursor[T]) Next() (Cursor[T], error) {
	c.skipWhitespaces()
	if c.index >= len(c.text) {
		if c.token.Kind.expectsOperand() {
			return c, c.missingOperand(c.index)
		}
		c.token = Token[T]{Kind: EndKind, Index: c.index}
		return c, nil
	}

	start := c.index
	switch ch := c.text[start]; ch {
	case '+', '*', '/':
		if c.token.Kind.expectsOperand() {
			return c, c.missingOperand(start)
		}
		c.index++
		c.token = Token[T]{Kind: operatorKinds[ch], Index: start}
	case '-':
		return c.scanMinus()
	case '(':
		if c.token.Kind.endsOperand() {
			return c, c.missingOperation(start)
		}
		c.index++
		c.balance++
		c.token = Token[T]{Kind: OpenBracketKind, Index: start}
	case ')':
		if c.token.Kind != BeginKind && c.token.Kind.expectsOperand() {
			return c, c.missingOperand(start)
		}
		if c.balance == 0 {
			return c, NewParsingError(UnpairedBracketsReason, "unpaired close bracket in expression", c.text, start)
		}
		c.index++
		c.balance--
		c.token = Token[T]{Kind: CloseBracketKind, Index: start}
	default:
		if isDigit(ch) {
			if c.token.Kind.endsOperand() {
				return c, c.missingOperation(start)
			}
			return c.scanNumber(start, start)
		}
		return c.scanIdentifier()
	}
	return c, nil
}

// scanMinus различает бинарный минус, отрицательный литерал и унарное отрицание.
func (c Cursor[T]) scanMinus() (Cursor[T], error) {
	start := c.index
	if c.token.Kind.endsOperand() {
		c.index++
		c.token = Token[T]{Kind: SubKind, Index: start}
		return c, nil
	}
	if start+1 >= len(c.text) {
		return c, c.missingOperand(start)
	}
	if isPartOfNumber(c.text[start+1]) {
		return c.scanNumber(start, start+1)
	}
	c.index++
	c.token = Token[T]{Kind: SubKind, Index: start}
	return c, nil
}

// scanNumber читает литерал с позиции from, start включает знак, если он есть.
func (c Cursor[T]) scanNumber(start, from int) (Cursor[T], error) {
	c.index = from
	for c.index < len(c.text) && isPartOfNumber(c.text[c.index]) {
		c.index++
	}

	literal := c.text[start:c.index]
	value, err := c.ops.ParseNumber(literal)
	if err != nil {
		parsingErr := NewParsingError(IncorrectConstantReason, "incorrect constant in expression", c.text, start)
		parsingErr.cause = err
		return c, parsingErr
	}

	c.token = Token[T]{Kind: NumberKind, Value: value, Index: start}
	return c, nil
}

func (c Cursor[T]) scanIdentifier() (Cursor[T], error) {
	start := c.index
	for c.index < len(c.text) {
		r, size := utf8.DecodeRuneInString(c.text[c.index:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		c.index += size
	}
	// посторонний символ считается идентификатором из одного символа.
	if c.index == start {
		_, size := utf8.DecodeRuneInString(c.text[start:])
		c.index += size
	}

	name := c.text[start:c.index]
	kind, ok := c.idents[name]
	if !ok {
		return c, NewParsingError(UnknownOperationReason, fmt.Sprintf("unknown operation %q in expression", name), c.text, start)
	}

	if kind.IsBinary() {
		if c.token.Kind.expectsOperand() {
			return c, c.missingOperand(start)
		}
	} else if c.token.Kind.endsOperand() {
		return c, c.missingOperation(start)
	}

	c.token = Token[T]{Kind: kind, Index: start}
	if kind == VariableKind {
		c.token.Name = name
	}
	return c, nil
}

func (c *Cursor[T]) skipWhitespaces() {
	for c.index < len(c.text) {
		r, size := utf8.DecodeRuneInString(c.text[c.index:])
		if !unicode.IsSpace(r) {
			return
		}
		c.index += size
	}
}

func (c *Cursor[T]) missingOperand(index int) error {
	return NewParsingError(MissingOperandReason, "missing operand in expression", c.text, index)
}

func (c *Cursor[T]) missingOperation(index int) error {
	return NewParsingError(MissingOperationReason, "missing operation in expression", c.text, index)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isPartOfNumber(ch byte) bool {
	return isDigit(ch) || ch == '.' || ch == 'e'
}

// Tokenize выделяет все лексемы выражения до EndKind включительно.
func Tokenize[T any](text string, ops operations.Operations[T], idents Identifiers) ([]Token[T], error) {
	tokens := make([]Token[T], 0)
	cursor := NewCursor(text, ops, idents)
	for {
		var err error
		cursor, err = cursor.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, cursor.Token())
		if cursor.Token().Kind == EndKind {
			return tokens, nil
		}
	}
}
