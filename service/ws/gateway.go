package ws

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/event"
	"github.com/quickchat/quickchat/service/presence"
)

type gatewayEventType int

const (
	connected gatewayEventType = iota
	disconnected
	shutdown
)

type gatewayEvent struct {
	typ    gatewayEventType
	userID uuid.UUID
	handle presence.Handle
	done   chan struct{}
}

// gateway 接続状態の遷移をRegistryに反映し、オンラインユーザーをブロードキャストします
//
// Registryの更新とブロードキャストはイベントループのgoroutineからのみ行うこと
type gateway struct {
	registry presence.Registry
	hub      *hub.Hub
	logger   *zap.Logger
	conns    map[presence.Handle]uuid.UUID
	stopped  bool
	now      func() time.Time
}

func newGateway(registry presence.Registry, hub *hub.Hub, logger *zap.Logger) *gateway {
	return &gateway{
		registry: registry,
		hub:      hub,
		logger:   logger,
		conns:    map[presence.Handle]uuid.UUID{},
		now:      time.Now,
	}
}

// handle イベントを処理し、ブロードキャストを行ったかどうかを返します
func (g *gateway) handle(ev gatewayEvent) (broadcasted bool) {
	switch ev.typ {
	case connected:
		return g.connect(ev.userID, ev.handle)
	case disconnected:
		return g.disconnect(ev.userID, ev.handle)
	}
	return false
}

// connect Connecting -> Open
func (g *gateway) connect(userID uuid.UUID, h presence.Handle) bool {
	g.conns[h] = userID
	connectionsGauge.Set(float64(len(g.conns)))

	if userID == uuid.Nil {
		// 匿名接続はブロードキャストのみ受け取る
		return false
	}

	g.registry.Register(userID, h)
	g.broadcastOnlineUsers()
	return true
}

// disconnect Open -> Closed
func (g *gateway) disconnect(userID uuid.UUID, h presence.Handle) bool {
	delete(g.conns, h)
	connectionsGauge.Set(float64(len(g.conns)))

	if userID == uuid.Nil {
		return false
	}

	if !g.registry.Deregister(userID, h) {
		g.logger.Debug("skip deregistration of a replaced connection",
			zap.Stringer("userID", userID),
			zap.String("key", h.Key()))
		return false
	}

	g.hub.Publish(hub.Message{
		Name: event.UserOffline,
		Fields: hub.Fields{
			"user_id":  userID,
			"datetime": g.now(),
		},
	})
	g.broadcastOnlineUsers()
	return true
}

// shutdown 以降の接続を受け付けないようにし、開いている全ての接続を返します
func (g *gateway) shutdown() []presence.Handle {
	g.stopped = true
	handles := make([]presence.Handle, 0, len(g.conns))
	for h := range g.conns {
		handles = append(handles, h)
	}
	g.conns = map[presence.Handle]uuid.UUID{}
	connectionsGauge.Set(0)
	return handles
}

func (g *gateway) broadcastOnlineUsers() {
	ids := g.registry.Snapshot()
	onlineUsersGauge.Set(float64(len(ids)))

	for h, userID := range g.conns {
		err := h.Send(OnlineUsersEvent, ids)
		RecordPush(OnlineUsersEvent, PushResult(err))
		if err != nil {
			g.logger.Warn("failed to send online users",
				zap.Error(err),
				zap.Stringer("userID", userID),
				zap.String("key", h.Key()))
		}
	}
}
