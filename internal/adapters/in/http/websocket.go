package http

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const writeWait = 10 * time.Second

type pong struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Notifications handles GET /ws/notifications. The connection is a notifier
// subscription: every broadcast event is written as a JSON text frame. Text
// frames sent by the client are echoed back as PONG messages.
//
// One goroutine reads, the handler goroutine is the only writer.
func (s *Server) Notifications(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already answered the client.
		s.logger.WithError(err).Debug("websocket upgrade failed")
		return nil
	}
	defer conn.Close()

	sub := s.hub.Subscribe()
	defer s.hub.Unsubscribe(sub)

	logger := s.logger.WithField("subscriber", sub.ID())
	logger.Info("websocket connected")

	replies := make(chan []byte)
	readerDone := make(chan struct{})
	writerDone := make(chan struct{})
	defer close(writerDone)

	go func() {
		defer close(readerDone)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			reply, err := json.Marshal(pong{Type: "PONG", Message: "Server received: " + string(data)})
			if err != nil {
				continue
			}
			select {
			case replies <- reply:
			case <-writerDone:
				return
			}
		}
	}()

	for {
		select {
		case <-readerDone:
			logger.Info("websocket disconnected")
			return nil

		case reply := <-replies:
			if err = s.write(conn, reply); err != nil {
				logger.WithError(err).Debug("websocket write failed")
				return nil
			}

		case event, ok := <-sub.C():
			if !ok {
				// the notifier dropped this subscriber for falling behind
				logger.Warn("subscriber removed by notifier")
				_ = conn.WriteControl(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "subscriber fell behind"),
					time.Now().Add(writeWait),
				)
				return nil
			}
			payload, err := event.Marshal()
			if err != nil {
				logger.WithError(err).Error("encode event")
				continue
			}
			if err = s.write(conn, payload); err != nil {
				logger.WithError(err).Debug("websocket write failed")
				return nil
			}
		}
	}
}

func (s *Server) write(conn *websocket.Conn, payload []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}
