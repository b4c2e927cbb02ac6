package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/gorilla/websocket"
	"github.com/lthibault/jitterbug/v2"

	"github.com/quickchat/quickchat/service/presence"
)

// Session WebSocketセッション
type Session interface {
	presence.Handle
	// UserID このセッションのUserID
	//
	// ハンドシェイクでユーザーIDが指定されなかった場合はuuid.Nil
	UserID() uuid.UUID
	// State このセッションの状態
	State() ConnState
}

type session struct {
	key    string
	userID uuid.UUID
	state  ConnState
	sync.RWMutex

	req      *http.Request
	conn     *websocket.Conn
	streamer *Streamer
	send     chan *rawMessage
}

func (s *session) readLoop() {
	pongWait := s.streamer.conf.pongWait()
	s.conn.SetReadLimit(maxReadMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		t, m, err := s.conn.ReadMessage()
		if err != nil {
			break
		}

		if t == websocket.TextMessage {
			s.commandHandler(string(m))
		}

		if t == websocket.BinaryMessage {
			// unsupported
			_ = s.writeMessage(&rawMessage{t: websocket.CloseMessage, data: websocket.FormatCloseMessage(websocket.CloseUnsupportedData, "binary message is not supported.")})
			break
		}
	}
}

// writeLoop 送信バッファを書き出します。終了時に接続を閉じます
func (s *session) writeLoop() {
	pingPeriod := s.streamer.conf.pingPeriod()
	ticker := jitterbug.New(pingPeriod, &jitterbug.Norm{Stdev: pingPeriod / 20})
	defer ticker.Stop()
	defer s.conn.Close()

	for {
		select {
		case msg, ok := <-s.send:
			if !ok {
				return
			}

			if err := s.write(msg.t, msg.data); err != nil {
				return
			}

			if msg.t == websocket.CloseMessage {
				return
			}

		case <-ticker.C:
			_ = s.write(websocket.PingMessage, []byte{})
		}
	}
}

func (s *session) writeMessage(msg *rawMessage) error {
	s.RLock()
	defer s.RUnlock()
	if s.state == StateClosed {
		return ErrAlreadyClosed
	}

	select {
	case s.send <- msg:
	default:
		return ErrBufferIsFull
	}
	return nil
}

func (s *session) write(messageType int, data []byte) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(messageType, data)
}

// transition 状態を遷移させます
//
// Closedへの遷移で送信バッファを閉じます。接続はwriteLoopがバッファを書き出した後に閉じます
func (s *session) transition(to ConnState) bool {
	s.Lock()
	defer s.Unlock()
	if !s.state.canTransitionTo(to) {
		return false
	}
	s.state = to
	if to == StateClosed {
		close(s.send)
	}
	return true
}

func (s *session) close() {
	s.transition(StateClosed)
}

// Key implements presence.Handle interface.
func (s *session) Key() string {
	return s.key
}

// Send implements presence.Handle interface.
func (s *session) Send(eventType string, body interface{}) error {
	return s.writeMessage(&rawMessage{
		t:    websocket.TextMessage,
		data: makeMessage(eventType, body).toJSON(),
	})
}

// UserID implements Session interface.
func (s *session) UserID() uuid.UUID {
	return s.userID
}

// State implements Session interface.
func (s *session) State() ConnState {
	s.RLock()
	defer s.RUnlock()
	return s.state
}
