package tabulate

import (
	"encoding/json"
	"net/http"

	"github.com/GDVFox/gotabulator/tabulator_node/api/common"
	"github.com/GDVFox/gotabulator/tabulator_node/external"
	"github.com/GDVFox/gotabulator/util"
	"github.com/GDVFox/gotabulator/util/httplib"
	"github.com/GDVFox/gotabulator/util/message"
)

// Tabulate вычисляет выражение на сетке из запроса.
func Tabulate(r *http.Request) (*httplib.Response, error) {
	logger := httplib.LoggerFromContext(r.Context(), util.NewNopLogger())

	req := &message.TabulateRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadUnmarshalRequestErrorCode, err.Error())), nil
	}

	resp, err := Execute(r.Context(), logger, req)
	if err != nil {
		logger.Warnf("can not tabulate %q: %v", req.Expression, err)
		return common.NewTabulationErrorResponse(err), nil
	}
	return httplib.NewJSONResponse(http.StatusOK, resp)
}

// Parse разбирает выражение и возвращает его дерево.
func Parse(r *http.Request) (*httplib.Response, error) {
	logger := httplib.LoggerFromContext(r.Context(), util.NewNopLogger())

	req := &message.ParseRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadUnmarshalRequestErrorCode, err.Error())), nil
	}

	expr, err := external.Tabulator.Compile(req.Mode, req.Expression)
	if err != nil {
		logger.Warnf("can not parse %q: %v", req.Expression, err)
		return common.NewTabulationErrorResponse(err), nil
	}

	return httplib.NewJSONResponse(http.StatusOK, &message.ParseResponse{
		Mode:       expr.Mode(),
		Expression: expr.String(),
		Tree:       expr.Describe(),
	})
}

// ListModes возвращает поддерживаемые домены.
func ListModes(r *http.Request) (*httplib.Response, error) {
	return httplib.NewJSONResponse(http.StatusOK, map[string][]string{"modes": external.Tabulator.Modes()})
}
