package expressions

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/GDVFox/gotabulator/tabulator_node/api/common"
	"github.com/GDVFox/gotabulator/tabulator_node/external"
	"github.com/GDVFox/gotabulator/util/httplib"
	"github.com/GDVFox/gotabulator/util/storage"
)

// DeleteExpression удаляет выражение, если оно существует.
func DeleteExpression(r *http.Request) (*httplib.Response, error) {
	name := mux.Vars(r)["expression_name"]
	if name == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "expression_name must be not empty")), nil
	}

	if err := external.ETCD.DeleteExpression(r.Context(), name); err != nil {
		if errors.Cause(err) == storage.ErrNotFound {
			return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ETCDErrorCode, err.Error())), nil
	}
	return httplib.NewOKResponse(nil, httplib.ContentTypeJSON), nil
}
