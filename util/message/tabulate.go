package message

import (
	"github.com/GDVFox/gotabulator/expression/parser"
	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/util/httplib"
)

// TabulateRequest запрос к tabulator_node на табулирование выражения.
type TabulateRequest struct {
	Mode       string `json:"mode" yaml:"mode"`
	Expression string `json:"expression" yaml:"expression"`
	tabulator.Bounds `yaml:",inline"`
	// Export выгрузить ли результат во внешнее хранилище.
	Export bool `json:"export,omitempty" yaml:"export,omitempty"`
}

// TabulateResponse ответ tabulator_node с результатом табулирования.
type TabulateResponse struct {
	*tabulator.EncodedGrid
	Cached bool `json:"cached"`
}

// ParseRequest запрос на разбор выражения.
type ParseRequest struct {
	Mode       string `json:"mode"`
	Expression string `json:"expression"`
}

// ParseResponse разобранное выражение.
type ParseResponse struct {
	Mode       string              `json:"mode"`
	Expression string              `json:"expression"`
	Tree       *parser.Description `json:"tree"`
}

// Expression именованное выражение из реестра.
type Expression struct {
	Name        string `json:"name" yaml:"name"`
	Mode        string `json:"mode" yaml:"mode"`
	Expression  string `json:"expression" yaml:"expression"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ExpressionList список имен выражений в реестре.
type ExpressionList struct {
	Expressions []string `json:"expressions"`
}

// Коды сообщений потока табулирования.
const (
	StreamPlaneCode = "plane"
	StreamDoneCode  = "done"
	StreamErrorCode = "error"
)

// StreamMessage сообщение, отправляемое по вебсокету при потоковом табулировании.
type StreamMessage struct {
	Code   string             `json:"code"`
	Index  int                `json:"index,omitempty"`
	X      int                `json:"x,omitempty"`
	Cells  [][]*string        `json:"cells,omitempty"`
	Failed int                `json:"failed,omitempty"`
	Error  *httplib.ErrorBody `json:"error,omitempty"`
}
