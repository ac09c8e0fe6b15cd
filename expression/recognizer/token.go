package recognizer

// Kind представляет вид лексемы.
type Kind int

const (
	// BeginKind начальное состояние курсора, до первой лексемы.
	BeginKind Kind = iota
	// EndKind конец выражения.
	EndKind
	// NumberKind числовой литерал.
	NumberKind
	// VariableKind переменная x, y или z.
	VariableKind
	// AddKind оператор сложения.
	AddKind
	// SubKind оператор вычитания или унарный минус.
	SubKind
	// MulKind оператор умножения.
	MulKind
	// DivKind оператор деления.
	DivKind
	// ModKind оператор остатка от деления.
	ModKind
	// AbsKind функция модуля.
	AbsKind
	// SquareKind функция возведения в квадрат.
	SquareKind
	// OpenBracketKind открывающая скобка.
	OpenBracketKind
	// CloseBracketKind закрывающая скобка.
	CloseBracketKind
)

func (k Kind) String() string {
	switch k {
	case BeginKind:
		return "BEG"
	case EndKind:
		return "END"
	case NumberKind:
		return "NUM"
	case VariableKind:
		return "VAR"
	case AddKind:
		return "ADD"
	case SubKind:
		return "SUB"
	case MulKind:
		return "MUL"
	case DivKind:
		return "DIV"
	case ModKind:
		return "MOD"
	case AbsKind:
		return "ABS"
	case SquareKind:
		return "SQR"
	case OpenBracketKind:
		return "LBR"
	case CloseBracketKind:
		return "RBR"
	default:
		return "UNK"
	}
}

// IsBinary сообщает, является ли лексема бинарным оператором.
// SubKind считается бинарным и в унарной позиции.
func (k Kind) IsBinary() bool {
	switch k {
	case AddKind, SubKind, MulKind, DivKind, ModKind:
		return true
	}
	return false
}

// IsUnaryFunction сообщает, является ли лексема именованной унарной функцией.
func (k Kind) IsUnaryFunction() bool {
	return k == AbsKind || k == SquareKind
}

// endsOperand сообщает, что после лексемы может стоять только оператор или конец.
func (k Kind) endsOperand() bool {
	return k == NumberKind || k == VariableKind || k == CloseBracketKind
}

// expectsOperand сообщает, что после лексемы обязан идти операнд.
func (k Kind) expectsOperand() bool {
	return k == BeginKind || k == OpenBracketKind || k.IsBinary() || k.IsUnaryFunction()
}

// Token лексема выражения над представлением T.
type Token[T any] struct {
	Kind Kind
	// Value значение литерала, только для NumberKind.
	Value T
	// Name имя переменной, только для VariableKind.
	Name string
	// Index смещение начала лексемы в исходном тексте.
	Index int
}

// Identifiers таблица соответствия идентификаторов видам лексем.
type Identifiers map[string]Kind

// DefaultIdentifiers возвращает таблицу идентификаторов языка выражений.
func DefaultIdentifiers() Identifiers {
	return Identifiers{
		"x":      VariableKind,
		"y":      VariableKind,
		"z":      VariableKind,
		"abs":    AbsKind,
		"mod":    ModKind,
		"square": SquareKind,
	}
}
