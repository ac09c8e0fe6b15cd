package common

import (
	"github.com/pkg/errors"

	"github.com/GDVFox/gotabulator/expression/recognizer"
	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/util/httplib"
)

// NewTabulationErrorBody переводит ошибку разбора или проверки запроса в тело ответа.
// Для остальных ошибок возвращает nil.
func NewTabulationErrorBody(err error) *httplib.ErrorBody {
	if perr, ok := recognizer.AsParsingError(err); ok {
		return &httplib.ErrorBody{
			Code:       BadExpressionErrorCode,
			Message:    perr.Reason.String() + ": " + perr.Message,
			Position:   perr.Index + 1,
			Diagnostic: perr.Render(),
		}
	}

	switch errors.Cause(err) {
	case tabulator.ErrUnknownMode:
		return &httplib.ErrorBody{Code: BadModeErrorCode, Message: err.Error()}
	case tabulator.ErrBadBounds:
		return &httplib.ErrorBody{Code: BadBoundsErrorCode, Message: err.Error()}
	}
	return nil
}

// NewTabulationErrorResponse возвращает 400 для ошибок запроса и 500 для остальных.
func NewTabulationErrorResponse(err error) *httplib.Response {
	if body := NewTabulationErrorBody(err); body != nil {
		return httplib.NewBadRequestResponse(httplib.MarshalErrorBody(body))
	}
	return httplib.NewInternalErrorResponse(httplib.NewErrorBody(InternalErrorCode, err.Error()))
}
