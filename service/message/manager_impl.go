package message

import (
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/repository"
)

type manager struct {
	R repository.Repository
	L *zap.Logger
}

func NewMessageManager(repo repository.Repository, logger *zap.Logger) (Manager, error) {
	return &manager{
		R: repo,
		L: logger.Named("message_manager"),
	}, nil
}

func (m *manager) Send(senderID, receiverID uuid.UUID, text, image string) (*model.Message, error) {
	if len(text) == 0 && len(image) == 0 {
		return nil, ErrEmptyMessage
	}
	if receiverID == uuid.Nil {
		return nil, ErrNotFound
	}

	if _, err := m.R.GetUser(receiverID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to GetUser: %w", err)
	}

	// 受信者への通知は作成イベント経由で行われる
	msg, err := m.R.CreateMessage(repository.CreateMessageArgs{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		Image:      image,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to CreateMessage: %w", err)
	}
	return msg, nil
}

func (m *manager) GetConversation(me, partner uuid.UUID) ([]*model.Message, error) {
	messages, err := m.R.GetConversation(me, partner)
	if err != nil {
		return nil, fmt.Errorf("failed to GetConversation: %w", err)
	}

	if _, err := m.R.MarkConversationAsSeen(partner, me); err != nil {
		return nil, fmt.Errorf("failed to MarkConversationAsSeen: %w", err)
	}
	return messages, nil
}

func (m *manager) MarkSeen(readerID, messageID uuid.UUID) (*model.Message, error) {
	msg, err := m.R.GetMessageByID(messageID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to GetMessageByID: %w", err)
	}
	if msg.ReceiverID != readerID {
		return nil, ErrForbidden
	}

	if err := m.R.MarkMessageAsSeen(messageID); err != nil {
		return nil, fmt.Errorf("failed to MarkMessageAsSeen: %w", err)
	}
	msg.Seen = true
	return msg, nil
}

func (m *manager) GetSidebar(me uuid.UUID) (*Sidebar, error) {
	users, err := m.R.GetUsers(repository.UsersQuery{}.NotID(me))
	if err != nil {
		return nil, fmt.Errorf("failed to GetUsers: %w", err)
	}
	counts, err := m.R.GetUnseenMessageCounts(me)
	if err != nil {
		return nil, fmt.Errorf("failed to GetUnseenMessageCounts: %w", err)
	}

	unseen := make(map[uuid.UUID]int, len(counts))
	for _, u := range users {
		if c, ok := counts[u.ID]; ok && c > 0 {
			unseen[u.ID] = c
		}
	}
	return &Sidebar{Users: users, UnseenMessages: unseen}, nil
}
