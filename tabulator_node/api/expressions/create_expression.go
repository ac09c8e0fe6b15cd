package expressions

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/GDVFox/gotabulator/tabulator_node/api/common"
	"github.com/GDVFox/gotabulator/tabulator_node/external"
	"github.com/GDVFox/gotabulator/util/httplib"
	"github.com/GDVFox/gotabulator/util/message"
	"github.com/GDVFox/gotabulator/util/storage"
)

// CreateExpression сохраняет выражение в реестре.
// Выражение предварительно разбирается, чтобы в реестр не попадали некорректные выражения.
func CreateExpression(r *http.Request) (*httplib.Response, error) {
	expr := &message.Expression{}
	if err := json.NewDecoder(r.Body).Decode(expr); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadUnmarshalRequestErrorCode, err.Error())), nil
	}
	if !nameRegexp.MatchString(expr.Name) {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "name must match "+nameRegexp.String())), nil
	}

	if _, err := external.Tabulator.Compile(expr.Mode, expr.Expression); err != nil {
		return common.NewTabulationErrorResponse(err), nil
	}

	if err := external.ETCD.RegisterExpression(r.Context(), expr); err != nil {
		if errors.Cause(err) == storage.ErrAlreadyExists {
			return httplib.NewConflictResponse(httplib.NewErrorBody(common.NameAlreadyExistsErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ETCDErrorCode, err.Error())), nil
	}
	return httplib.NewOKResponse(nil, httplib.ContentTypeJSON), nil
}
