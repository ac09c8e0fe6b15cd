package tabulate

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/tabulator_node/api/common"
	"github.com/GDVFox/gotabulator/tabulator_node/external"
	"github.com/GDVFox/gotabulator/util"
	"github.com/GDVFox/gotabulator/util/httplib"
	"github.com/GDVFox/gotabulator/util/message"
)

const (
	writeWait = 10 * time.Second
	readWait  = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Stream открывает вебсокет, принимает один TabulateRequest
// и отправляет по сообщению на каждую плоскость x, после чего сообщение done.
func Stream(w http.ResponseWriter, r *http.Request) error {
	logger := httplib.LoggerFromContext(r.Context(), util.NewNopLogger())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return errors.Wrap(err, "can not upgrade connection")
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(readWait))
	req := &message.TabulateRequest{}
	if err := conn.ReadJSON(req); err != nil {
		return writeStreamError(conn, &httplib.ErrorBody{Code: common.BadUnmarshalRequestErrorCode, Message: err.Error()})
	}

	failed := 0
	_, err = external.Tabulator.TabulateFunc(req.Mode, req.Expression, req.Bounds, func(i, x int, plane tabulator.Plane) error {
		planeFailed := plane.FailedCount()
		failed += planeFailed
		return writeStreamMessage(conn, &message.StreamMessage{
			Code:   message.StreamPlaneCode,
			Index:  i,
			X:      x,
			Cells:  plane.Texts(),
			Failed: planeFailed,
		})
	})
	if err != nil {
		if body := common.NewTabulationErrorBody(err); body != nil {
			logger.Warnf("can not tabulate %q: %v", req.Expression, err)
			return writeStreamError(conn, body)
		}
		return err
	}

	if err := writeStreamMessage(conn, &message.StreamMessage{Code: message.StreamDoneCode, Failed: failed}); err != nil {
		return err
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func writeStreamError(conn *websocket.Conn, body *httplib.ErrorBody) error {
	return writeStreamMessage(conn, &message.StreamMessage{Code: message.StreamErrorCode, Error: body})
}

func writeStreamMessage(conn *websocket.Conn, msg *message.StreamMessage) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(msg); err != nil {
		return errors.Wrap(err, "can not write stream message")
	}
	return nil
}
