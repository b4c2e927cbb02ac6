package notification

import (
	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/service/presence"
	"github.com/quickchat/quickchat/service/ws"
)

// Notifier 作成されたメッセージを受信者の接続に届けます
type Notifier struct {
	registry presence.Registry
	logger   *zap.Logger
}

// NewNotifier Notifierを生成します
func NewNotifier(registry presence.Registry, logger *zap.Logger) *Notifier {
	return &Notifier{
		registry: registry,
		logger:   logger.Named("notifier"),
	}
}

// Notify 受信者がオンラインの場合、メッセージをそのまま送信します
//
// 送信は一度だけ試み、失敗しても再送しません。受信者がオフラインの場合は何もしません。
// 接続に書き込めた場合にtrueを返します。
func (n *Notifier) Notify(m *model.Message) bool {
	h, ok := n.registry.Lookup(m.ReceiverID)
	if !ok {
		ws.RecordPush(ws.NewMessageEvent, ws.PushOffline)
		return false
	}

	err := h.Send(ws.NewMessageEvent, m)
	ws.RecordPush(ws.NewMessageEvent, ws.PushResult(err))
	if err != nil {
		n.logger.Warn("failed to push message",
			zap.Error(err),
			zap.Stringer("messageId", m.ID),
			zap.Stringer("receiverId", m.ReceiverID),
			zap.String("key", h.Key()))
		return false
	}
	return true
}

// SeenNotice 既読通知
type SeenNotice struct {
	ReaderID   uuid.UUID   `json:"readerId"`
	SenderID   uuid.UUID   `json:"-"`
	MessageIDs []uuid.UUID `json:"messageIds"`
}

// NotifySeen 送信者がオンラインの場合、メッセージが既読になったことを通知します
func (n *Notifier) NotifySeen(notice *SeenNotice) bool {
	h, ok := n.registry.Lookup(notice.SenderID)
	if !ok {
		ws.RecordPush(ws.MessageSeenEvent, ws.PushOffline)
		return false
	}

	err := h.Send(ws.MessageSeenEvent, notice)
	ws.RecordPush(ws.MessageSeenEvent, ws.PushResult(err))
	if err != nil {
		n.logger.Warn("failed to push seen notice",
			zap.Error(err),
			zap.Stringer("senderId", notice.SenderID),
			zap.String("key", h.Key()))
		return false
	}
	return true
}
