package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
)

const (
	writeWait          = 10 * time.Second
	maxReadMessageSize = 1 << 9 // 512B

	defaultPongWait          = 60 * time.Second
	defaultMessageBufferSize = 256
	eventBufferSize          = 256
)

var (
	json     = jsoniter.ConfigFastest
	upgrader = &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

// Config WebSocketストリーマー設定
type Config struct {
	// MessageBufferSize セッション毎の送信バッファサイズ
	MessageBufferSize int
	// PongWait この時間内にpongが返ってこない接続を切断します
	PongWait time.Duration
}

func (c Config) messageBufferSize() int {
	if c.MessageBufferSize <= 0 {
		return defaultMessageBufferSize
	}
	return c.MessageBufferSize
}

func (c Config) pongWait() time.Duration {
	if c.PongWait <= 0 {
		return defaultPongWait
	}
	return c.PongWait
}

func (c Config) pingPeriod() time.Duration {
	return (c.pongWait() * 9) / 10
}
