package expressions

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/GDVFox/gotabulator/tabulator_node/api/common"
	"github.com/GDVFox/gotabulator/tabulator_node/external"
	"github.com/GDVFox/gotabulator/util/httplib"
	"github.com/GDVFox/gotabulator/util/message"
	"github.com/GDVFox/gotabulator/util/storage"
)

// GetExpression получает выражение по имени.
func GetExpression(r *http.Request) (*httplib.Response, error) {
	expr, resp := loadExpression(r)
	if resp != nil {
		return resp, nil
	}
	return httplib.NewJSONResponse(http.StatusOK, expr)
}

func loadExpression(r *http.Request) (*message.Expression, *httplib.Response) {
	name := mux.Vars(r)["expression_name"]
	if name == "" {
		return nil, httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "expression_name must be not empty"))
	}

	expr, err := external.ETCD.LoadExpression(r.Context(), name)
	if err != nil {
		if errors.Cause(err) == storage.ErrNotFound {
			return nil, httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error()))
		}
		return nil, httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ETCDErrorCode, err.Error()))
	}
	return expr, nil
}
