package nodeclient

import (
	"context"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/GDVFox/gotabulator/util/message"
)

var wsScheme = "ws"

// StreamFunc получает очередное сообщение потока.
type StreamFunc func(msg *message.StreamMessage) error

// Stream табулирует выражение через вебсокет, передавая в onMessage
// каждую плоскость и итоговое сообщение done.
// Сообщение с ошибкой возвращается как *httplib.ErrorBody.
func (c *TabulatorNodeClient) Stream(ctx context.Context, req *message.TabulateRequest, onMessage StreamFunc) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url(wsScheme, streamPath), nil)
	if err != nil {
		return errors.Wrap(err, "can not open stream")
	}
	defer conn.Close()

	if err := conn.WriteJSON(req); err != nil {
		return errors.Wrap(err, "can not send request")
	}

	for {
		msg := &message.StreamMessage{}
		if err := conn.ReadJSON(msg); err != nil {
			return errors.Wrap(err, "can not read stream message")
		}

		switch msg.Code {
		case message.StreamErrorCode:
			if msg.Error == nil {
				return errors.New("stream failed without error description")
			}
			return msg.Error
		case message.StreamDoneCode:
			return onMessage(msg)
		}
		if err := onMessage(msg); err != nil {
			return err
		}
	}
}
