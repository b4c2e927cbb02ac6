package ws

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/gorilla/websocket"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/service/presence"
	"github.com/quickchat/quickchat/utils/random"
)

// UserIDQueryParam ハンドシェイク時にユーザーIDを渡すクエリパラメータ
const UserIDQueryParam = "userId"

var (
	// ErrAlreadyClosed 既に閉じられています
	ErrAlreadyClosed = errors.New("already closed")
	// ErrBufferIsFull 送信バッファが溢れました
	ErrBufferIsFull = errors.New("buffer is full")
)

// Streamer WebSocketストリーマー
type Streamer struct {
	hub      *hub.Hub
	registry presence.Registry
	logger   *zap.Logger
	conf     Config
	gw       *gateway
	events   chan gatewayEvent
	sessions sync.WaitGroup
	closed   bool
	mu       sync.RWMutex
}

// NewStreamer WebSocketストリーマーを生成し起動します
func NewStreamer(hub *hub.Hub, registry presence.Registry, logger *zap.Logger, conf Config) *Streamer {
	s := &Streamer{
		hub:      hub,
		registry: registry,
		logger:   logger.Named("ws"),
		conf:     conf,
		events:   make(chan gatewayEvent, eventBufferSize),
	}
	s.gw = newGateway(registry, hub, s.logger)
	go s.run()
	return s
}

// run イベントループ
func (s *Streamer) run() {
	for ev := range s.events {
		switch {
		case ev.typ == shutdown:
			for _, h := range s.gw.shutdown() {
				closeHandle(h, websocket.CloseServiceRestart, "Server is stopping...")
			}
		case ev.typ == connected && s.gw.stopped:
			closeHandle(ev.handle, websocket.CloseServiceRestart, "Server is stopping...")
		default:
			s.gw.handle(ev)
		}
		if ev.done != nil {
			close(ev.done)
		}
	}
}

// dispatch イベントループにイベントを送り、処理されるまで待ちます
func (s *Streamer) dispatch(ev gatewayEvent) {
	ev.done = make(chan struct{})
	s.events <- ev
	<-ev.done
}

func closeHandle(h presence.Handle, code int, text string) {
	sess, ok := h.(*session)
	if !ok {
		return
	}
	_ = sess.writeMessage(&rawMessage{
		t:    websocket.CloseMessage,
		data: websocket.FormatCloseMessage(code, text),
	})
	sess.close()
}

// ServeHTTP http.Handlerインターフェイスの実装
func (s *Streamer) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	if s.closed {
		http.Error(rw, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		s.mu.RUnlock()
		return
	}
	s.sessions.Add(1)
	s.mu.RUnlock()
	defer s.sessions.Done()

	// 不正なIDは匿名接続として扱う
	userID := uuid.FromStringOrNil(r.URL.Query().Get(UserIDQueryParam))

	conn, err := upgrader.Upgrade(rw, r, rw.Header())
	if err != nil {
		return
	}

	session := &session{
		key:      random.AlphaNumeric(20),
		userID:   userID,
		state:    StateConnecting,
		req:      r,
		conn:     conn,
		streamer: s,
		send:     make(chan *rawMessage, s.conf.messageBufferSize()),
	}
	session.transition(StateOpen)
	go session.writeLoop()

	s.dispatch(gatewayEvent{typ: connected, userID: userID, handle: session})
	s.logger.Debug("connected", zap.String("key", session.key), zap.Stringer("userID", userID))

	session.readLoop()

	s.dispatch(gatewayEvent{typ: disconnected, userID: userID, handle: session})
	session.close()
	s.logger.Debug("disconnected", zap.String("key", session.key), zap.Stringer("userID", userID))
}

// Close ストリーマーを停止します
//
// 全ての接続を閉じ、それらの切断処理が終わるまで待ちます
func (s *Streamer) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrAlreadyClosed
	}
	s.closed = true
	s.mu.Unlock()

	s.dispatch(gatewayEvent{typ: shutdown})
	s.sessions.Wait()
	close(s.events)
	return nil
}
