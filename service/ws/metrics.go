package ws

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// リアルタイムイベントの送信結果
const (
	PushDelivered = "delivered"
	PushDropped   = "dropped"
	PushClosed    = "closed"
	PushOffline   = "offline"
)

var (
	onlineUsersGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "quickchat",
		Name:      "online_users",
		Help:      "Number of users registered in the presence registry.",
	})
	connectionsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "quickchat",
		Name:      "ws_connections",
		Help:      "Number of open WebSocket connections.",
	})
	pushesCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quickchat",
		Name:      "realtime_pushes_total",
		Help:      "Number of realtime events pushed to connections.",
	}, []string{"event", "result"})
)

// PushResult Sendが返したエラーを送信結果に変換します
func PushResult(err error) string {
	switch {
	case err == nil:
		return PushDelivered
	case errors.Is(err, ErrBufferIsFull):
		return PushDropped
	default:
		return PushClosed
	}
}

// RecordPush リアルタイムイベントの送信結果を記録します
func RecordPush(event, result string) {
	pushesCounter.WithLabelValues(event, result).Inc()
}
