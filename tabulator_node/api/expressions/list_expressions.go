package expressions

import (
	"net/http"

	"github.com/GDVFox/gotabulator/tabulator_node/api/common"
	"github.com/GDVFox/gotabulator/tabulator_node/external"
	"github.com/GDVFox/gotabulator/util/httplib"
	"github.com/GDVFox/gotabulator/util/message"
)

// ListExpressions получает список имен выражений.
func ListExpressions(r *http.Request) (*httplib.Response, error) {
	names, err := external.ETCD.LoadExpressionNames(r.Context())
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.ETCDErrorCode, err.Error())), nil
	}
	return httplib.NewJSONResponse(http.StatusOK, &message.ExpressionList{Expressions: names})
}
