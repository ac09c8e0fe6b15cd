package expressions

import (
	"encoding/json"
	"net/http"

	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/tabulator_node/api/common"
	"github.com/GDVFox/gotabulator/tabulator_node/api/tabulate"
	"github.com/GDVFox/gotabulator/util"
	"github.com/GDVFox/gotabulator/util/httplib"
	"github.com/GDVFox/gotabulator/util/message"
)

type tabulateExpressionRequest struct {
	tabulator.Bounds
	Export bool `json:"export,omitempty"`
}

// TabulateExpression табулирует выражение из реестра на сетке из запроса.
func TabulateExpression(r *http.Request) (*httplib.Response, error) {
	logger := httplib.LoggerFromContext(r.Context(), util.NewNopLogger())

	expr, resp := loadExpression(r)
	if resp != nil {
		return resp, nil
	}

	req := &tabulateExpressionRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadUnmarshalRequestErrorCode, err.Error())), nil
	}

	result, err := tabulate.Execute(r.Context(), logger, &message.TabulateRequest{
		Mode:       expr.Mode,
		Expression: expr.Expression,
		Bounds:     req.Bounds,
		Export:     req.Export,
	})
	if err != nil {
		logger.Warnf("can not tabulate expression %s: %v", expr.Name, err)
		return common.NewTabulationErrorResponse(err), nil
	}
	return httplib.NewJSONResponse(http.StatusOK, result)
}
