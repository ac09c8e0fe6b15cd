package tabulate

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDVFox/gotabulator/expression/recognizer"
	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/tabulator_node/api/common"
	"github.com/GDVFox/gotabulator/tabulator_node/external"
	"github.com/GDVFox/gotabulator/util"
	"github.com/GDVFox/gotabulator/util/httplib"
	"github.com/GDVFox/gotabulator/util/message"
)

func init() {
	external.Tabulator = tabulator.NewTabulator(tabulator.NewRegistry(), recognizer.DefaultIdentifiers(),
		tabulator.NewConfig(), util.NewNopLogger())
}

func doTabulate(t *testing.T, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/tabulate", strings.NewReader(body))
	httplib.CreateHandler(Tabulate, util.NewNopLogger())(w, r)
	return w
}

func TestTabulateHandler(t *testing.T) {
	w := doTabulate(t, `{"mode":"i","expression":"10/x","x1":-1,"x2":1,"y1":0,"y2":0,"z1":0,"z2":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(httplib.RequestIDHeader))

	resp := &message.TabulateResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), resp))
	assert.False(t, resp.Cached)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Cells, 3)
	assert.Equal(t, "-10", *resp.Cells[0][0][0])
	assert.Nil(t, resp.Cells[1][0][0])
	assert.Equal(t, "10", *resp.Cells[2][0][0])
}

func TestTabulateHandlerErrors(t *testing.T) {
	cases := []struct {
		body     string
		code     string
		position int
	}{
		{`{"mode":"i","expression":"2 3"}`, common.BadExpressionErrorCode, 3},
		{`{"mode":"i","expression":"1+2)"}`, common.BadExpressionErrorCode, 4},
		{`{"mode":"q","expression":"x"}`, common.BadModeErrorCode, 0},
		{`{"mode":"i","expression":"x","x1":2,"x2":1}`, common.BadBoundsErrorCode, 0},
		{`{"mode":`, common.BadUnmarshalRequestErrorCode, 0},
	}

	for i, c := range cases {
		w := doTabulate(t, c.body)
		assert.Equalf(t, http.StatusBadRequest, w.Code, "Failed #%d:", i)

		body := &httplib.ErrorBody{}
		require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), body), "Failed #%d:", i)
		assert.Equalf(t, c.code, body.Code, "Failed #%d:", i)
		assert.Equalf(t, c.position, body.Position, "Failed #%d:", i)
		if c.position > 0 {
			assert.NotEmptyf(t, body.Diagnostic, "Failed #%d:", i)
		}
	}
}

func TestParseHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/parse", bytes.NewBufferString(`{"mode":"bi","expression":"2+3*4"}`))
	httplib.CreateHandler(Parse, util.NewNopLogger())(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	resp := &message.ParseResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), resp))
	assert.Equal(t, "bi", resp.Mode)
	assert.Equal(t, "(2 + (3 * 4))", resp.Expression)
	assert.Equal(t, "+", resp.Tree.Label)
	assert.Len(t, resp.Tree.Children, 2)
}

func TestStream(t *testing.T) {
	srv := httptest.NewServer(httplib.CreateWSHandler(Stream, util.NewNopLogger()))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	req := &message.TabulateRequest{Mode: "i", Expression: "y/x", Bounds: tabulator.Bounds{X1: -1, X2: 1, Y1: 0, Y2: 1}}
	require.NoError(t, conn.WriteJSON(req))

	for i := 0; i < 3; i++ {
		msg := &message.StreamMessage{}
		require.NoError(t, conn.ReadJSON(msg))
		assert.Equalf(t, message.StreamPlaneCode, msg.Code, "Failed #%d:", i)
		assert.Equalf(t, i, msg.Index, "Failed #%d:", i)
		assert.Equalf(t, i-1, msg.X, "Failed #%d:", i)
		assert.Lenf(t, msg.Cells, 2, "Failed #%d:", i)
	}

	done := &message.StreamMessage{}
	require.NoError(t, conn.ReadJSON(done))
	assert.Equal(t, message.StreamDoneCode, done.Code)
	assert.Equal(t, 2, done.Failed)
}

func TestStreamParsingError(t *testing.T) {
	srv := httptest.NewServer(httplib.CreateWSHandler(Stream, util.NewNopLogger()))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(&message.TabulateRequest{Mode: "i", Expression: "x + foo"}))

	msg := &message.StreamMessage{}
	require.NoError(t, conn.ReadJSON(msg))
	assert.Equal(t, message.StreamErrorCode, msg.Code)
	require.NotNil(t, msg.Error)
	assert.Equal(t, common.BadExpressionErrorCode, msg.Error.Code)
	assert.Equal(t, 5, msg.Error.Position)
}
