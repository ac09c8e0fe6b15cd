package httplib

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
)

// ContentType тип возвращаемого значения
type ContentType string

// Возможные типы ContentType
const (
	ContentTypeRaw  ContentType = "application/octet-stream"
	ContentTypeJSON ContentType = "application/json"
	ContentTypeHTML ContentType = "text/html"
	ContentTypeSVG  ContentType = "image/svg+xml"
)

// Response представляет ответ обработчика.
type Response struct {
	StatusCode  int
	Body        []byte
	ContentType ContentType
}

// WriteTo записывает response в w
func (r *Response) WriteTo(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", string(r.ContentType))
	w.WriteHeader(r.StatusCode)
	if _, err := w.Write(r.Body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}
	return nil
}

// NewOKResponse возвращает 200 OK, если body ненулевое и 204 No Content, если body нулевое.
func NewOKResponse(body []byte, t ContentType) *Response {
	if body == nil {
		return &Response{StatusCode: http.StatusNoContent}
	}
	return &Response{
		StatusCode:  http.StatusOK,
		Body:        body,
		ContentType: t,
	}
}

// NewBadRequestResponse возвращает Response с кодом 400 Bad Request
func NewBadRequestResponse(body []byte) *Response {
	return &Response{
		StatusCode:  http.StatusBadRequest,
		Body:        body,
		ContentType: ContentTypeJSON,
	}
}

// NewNotFoundResponse возвращает Response с кодом 404 Not Found
func NewNotFoundResponse(body []byte) *Response {
	return &Response{
		StatusCode:  http.StatusNotFound,
		Body:        body,
		ContentType: ContentTypeJSON,
	}
}

// NewConflictResponse возвращает Response с кодом 409 Conflict
func NewConflictResponse(body []byte) *Response {
	return &Response{
		StatusCode:  http.StatusConflict,
		Body:        body,
		ContentType: ContentTypeJSON,
	}
}

// NewInternalErrorResponse возвращает Response с кодом 500 Internal Server Error
func NewInternalErrorResponse(body []byte) *Response {
	return &Response{
		StatusCode:  http.StatusInternalServerError,
		Body:        body,
		ContentType: ContentTypeJSON,
	}
}

// NewJSONResponse сериализует body в JSON и возвращает Response с кодом code.
func NewJSONResponse(code int, body interface{}) (*Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "can not marshal response body")
	}
	return &Response{
		StatusCode:  code,
		Body:        data,
		ContentType: ContentTypeJSON,
	}, nil
}

// ErrorBody тело ответа, при возникновении ошибки.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Position позиция ошибки в выражении, начиная с 1.
	Position int `json:"position,omitempty"`
	// Diagnostic фрагмент выражения с отметкой места ошибки.
	Diagnostic string `json:"diagnostic,omitempty"`
}

// Error позволяет использовать ErrorBody на стороне клиента как ошибку.
func (b *ErrorBody) Error() string {
	if b.Position > 0 {
		return b.Code + ": " + b.Message + " at index " + strconv.Itoa(b.Position)
	}
	return b.Code + ": " + b.Message
}

// NewErrorBody создает новое тело ответа, содержащего ошибку
func NewErrorBody(c string, msg string) []byte {
	return MarshalErrorBody(&ErrorBody{
		Code:    c,
		Message: msg,
	})
}

// MarshalErrorBody сериализует произвольное тело ошибки.
func MarshalErrorBody(body *ErrorBody) []byte {
	data, err := json.Marshal(body)
	if err != nil {
		return nil
	}
	return data
}
