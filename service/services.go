package service

import (
	"github.com/quickchat/quickchat/service/message"
	"github.com/quickchat/quickchat/service/notification"
	"github.com/quickchat/quickchat/service/presence"
	"github.com/quickchat/quickchat/service/ws"
)

type Services struct {
	MessageManager message.Manager
	Notification   *notification.Service
	Notifier       *notification.Notifier
	Registry       presence.Registry
	WS             *ws.Streamer
}
