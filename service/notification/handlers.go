package notification

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/event"
	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/repository"
	"github.com/quickchat/quickchat/utils/optional"
)

type eventHandler func(ns *Service, ev hub.Message)

var handlerMap = map[string]eventHandler{
	event.MessageCreated: messageCreatedHandler,
	event.MessageSeen:    messageSeenHandler,
	event.UserOffline:    userOfflineHandler,
}

// blockingTopics ハンドラがブロックし得るトピック
var blockingTopics = map[string]bool{
	event.UserOffline: true,
}

func messageCreatedHandler(ns *Service, ev hub.Message) {
	m := ev.Fields["message"].(*model.Message)
	ns.notifier.Notify(m)
}

func messageSeenHandler(ns *Service, ev hub.Message) {
	ns.notifier.NotifySeen(&SeenNotice{
		ReaderID:   ev.Fields["reader_id"].(uuid.UUID),
		SenderID:   ev.Fields["sender_id"].(uuid.UUID),
		MessageIDs: ev.Fields["message_ids"].([]uuid.UUID),
	})
}

func userOfflineHandler(ns *Service, ev hub.Message) {
	userID := ev.Fields["user_id"].(uuid.UUID)
	datetime := ev.Fields["datetime"].(time.Time)

	err := ns.repo.UpdateUser(userID, repository.UpdateUserArgs{
		LastOnline: optional.From(datetime),
	})
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		ns.logger.Error("failed to update lastOnline", zap.Error(err), zap.Stringer("userId", userID))
	}
}
