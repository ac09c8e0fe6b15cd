package recognizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Reason причина синтаксической ошибки.
type Reason int

// Возможные причины синтаксических ошибок.
const (
	SyntaxReason Reason = iota
	MissingOperandReason
	MissingOperationReason
	UnpairedBracketsReason
	UnknownOperationReason
	IncorrectConstantReason
)

func (r Reason) String() string {
	switch r {
	case MissingOperandReason:
		return "missing_operand"
	case MissingOperationReason:
		return "missing_operation"
	case UnpairedBracketsReason:
		return "unpaired_brackets"
	case UnknownOperationReason:
		return "unknown_operation"
	case IncorrectConstantReason:
		return "incorrect_constant"
	default:
		return "syntax_error"
	}
}

const diagnosticRadius = 5

// ParsingError синтаксическая ошибка с координатой в исходном выражении.
type ParsingError struct {
	Reason     Reason
	Message    string
	Expression string
	// Index номер символа (не байта), на котором обнаружена ошибка, с нуля.
	Index int

	cause error
}

// NewParsingError создает ParsingError, offset задается в байтах expression.
func NewParsingError(reason Reason, msg string, expression string, offset int) *ParsingError {
	if offset > len(expression) {
		offset = len(expression)
	}
	return &ParsingError{
		Reason:     reason,
		Message:    msg,
		Expression: expression,
		Index:      utf8.RuneCountInString(expression[:offset]),
	}
}

func (e *ParsingError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s at index %d: %v", e.Message, e.Index+1, e.cause)
	}
	return fmt.Sprintf("%s at index %d", e.Message, e.Index+1)
}

// Unwrap возвращает ошибку домена для IncorrectConstantReason.
func (e *ParsingError) Unwrap() error {
	return e.cause
}

// Render возвращает диагностику: причину с позицией (с единицы),
// окно в ±5 символов вокруг ошибки и строку-указатель под ним.
func (e *ParsingError) Render() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s at index %d:\n", e.Message, e.Index+1)

	text := []rune(e.Expression)
	l, r := e.Index-diagnosticRadius, e.Index+diagnosticRadius
	if l < 0 {
		l = 0
	}
	if r > len(text) {
		r = len(text)
	}
	if l > r {
		l = r
	}

	b.WriteString(string(text[l:r]))
	b.WriteByte('\n')
	for i := l; i < r; i++ {
		if i == e.Index {
			b.WriteByte('^')
		} else {
			b.WriteByte('~')
		}
	}
	// ошибка в конце выражения указывает за последний символ.
	if e.Index >= len(text) {
		b.WriteByte('^')
	}
	b.WriteByte('\n')
	return b.String()
}

// AsParsingError извлекает ParsingError из цепочки ошибок.
func AsParsingError(err error) (*ParsingError, bool) {
	var parsingErr *ParsingError
	if errors.As(err, &parsingErr) {
		return parsingErr, true
	}
	return nil, false
}
