package tabulator

import (
	"math/big"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"github.com/GDVFox/gotabulator/expression/operations"
	"github.com/GDVFox/gotabulator/expression/parser"
	"github.com/GDVFox/gotabulator/expression/recognizer"
)

// Возможные ошибки
var (
	ErrUnknownMode = errors.New("unknown mode")
	ErrPanic       = errors.New("evaluation panicked")
)

// Domain числовой домен с заранее неизвестным типом представления.
type Domain interface {
	// Mode короткий идентификатор домена.
	Mode() string
	// Compile разбирает expression в выражение, привязанное к домену.
	Compile(expression string, idents recognizer.Identifiers) (Expression, error)
	// ParseValue преобразует текст значения в значение домена.
	ParseValue(s string) (interface{}, error)
}

// Expression разобранное выражение, готовое к вычислению.
type Expression interface {
	Mode() string
	// Source исходный текст выражения.
	Source() string
	String() string
	Describe() *parser.Description
	// Evaluate вычисляет выражение в точке (x, y, z).
	// Паника внутри домена возвращается как ErrPanic.
	Evaluate(x, y, z int) (interface{}, error)
	// Format возвращает текстовое представление значения, полученного из Evaluate.
	Format(value interface{}) string
}

type domain[T any] struct {
	mode string
	ops  operations.Operations[T]
}

// NewDomain создает Domain для представления T.
func NewDomain[T any](mode string, ops operations.Operations[T]) Domain {
	return &domain[T]{mode: mode, ops: ops}
}

func (d *domain[T]) Mode() string {
	return d.mode
}

func (d *domain[T]) Compile(expression string, idents recognizer.Identifiers) (Expression, error) {
	root, err := parser.NewSyntaxAnalyzer(d.ops, idents).Parse(expression)
	if err != nil {
		return nil, err
	}
	return &compiled[T]{domain: d, source: expression, root: root}, nil
}

func (d *domain[T]) ParseValue(s string) (interface{}, error) {
	return d.ops.ParseNumber(s)
}

type compiled[T any] struct {
	*domain[T]
	source string
	root   parser.Node[T]
}

func (e *compiled[T]) Source() string {
	return e.source
}

func (e *compiled[T]) String() string {
	return e.root.String()
}

func (e *compiled[T]) Describe() *parser.Description {
	return parser.Describe(e.root)
}

func (e *compiled[T]) Evaluate(x, y, z int) (value interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			value, err = nil, errors.Wrapf(ErrPanic, "%v", r)
		}
	}()
	return Calculate(e.root, e.ops, x, y, z)
}

func (e *compiled[T]) Format(value interface{}) string {
	v, ok := value.(T)
	if !ok {
		return ""
	}
	return e.ops.Format(v)
}

// Calculate вычисляет дерево root в целочисленной точке (x, y, z).
// Координаты переводятся в значения домена через ParseNumber.
func Calculate[T any](root parser.Node[T], ops operations.Operations[T], x, y, z int) (T, error) {
	var vars parser.Bindings[T]
	for _, c := range []struct {
		dst   *T
		coord int
	}{{&vars.X, x}, {&vars.Y, y}, {&vars.Z, z}} {
		v, err := ops.ParseNumber(strconv.Itoa(c.coord))
		if err != nil {
			var zero T
			return zero, err
		}
		*c.dst = v
	}
	return parser.Evaluate(root, ops, vars)
}

// Registry таблица доменов по их идентификаторам.
type Registry map[string]Domain

// NewRegistry создает таблицу со всеми поддерживаемыми доменами.
func NewRegistry() Registry {
	r := Registry{}
	r.Register(NewDomain[int32]("i", operations.NewIntegerOperations(true)))
	r.Register(NewDomain[int32]("u", operations.NewIntegerOperations(false)))
	r.Register(NewDomain[*big.Int]("bi", operations.NewBigIntegerOperations(true)))
	r.Register(NewDomain[float64]("d", operations.NewDoubleOperations()))
	r.Register(NewDomain[float32]("f", operations.NewFloatOperations()))
	r.Register(NewDomain[int8]("b", operations.NewByteOperations()))
	return r
}

// Register добавляет домен d под его идентификатором.
func (r Registry) Register(d Domain) {
	r[d.Mode()] = d
}

// Lookup возвращает домен по идентификатору mode.
func (r Registry) Lookup(mode string) (Domain, error) {
	d, ok := r[mode]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMode, "%q", mode)
	}
	return d, nil
}

// Modes возвращает отсортированный список идентификаторов.
func (r Registry) Modes() []string {
	modes := make([]string, 0, len(r))
	for mode := range r {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	return modes
}
