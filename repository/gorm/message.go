package gorm

import (
	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/quickchat/quickchat/event"
	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/repository"
)

// CreateMessage implements MessageRepository interface.
func (repo *Repository) CreateMessage(args repository.CreateMessageArgs) (*model.Message, error) {
	if args.SenderID == uuid.Nil || args.ReceiverID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	if len(args.Text) == 0 && len(args.Image) == 0 {
		return nil, repository.ArgError("text", "text or image is required")
	}

	m := &model.Message{
		ID:         uuid.Must(uuid.NewV4()),
		SenderID:   args.SenderID,
		ReceiverID: args.ReceiverID,
		Text:       args.Text,
		Image:      args.Image,
	}
	if err := repo.db.Create(m).Error; err != nil {
		return nil, err
	}

	repo.hub.Publish(hub.Message{
		Name: event.MessageCreated,
		Fields: hub.Fields{
			"message_id": m.ID,
			"message":    m,
		},
	})
	return m, nil
}

// GetMessageByID implements MessageRepository interface.
func (repo *Repository) GetMessageByID(id uuid.UUID) (*model.Message, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var m model.Message
	if err := repo.db.First(&m, &model.Message{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &m, nil
}

// GetConversation implements MessageRepository interface.
func (repo *Repository) GetConversation(userA, userB uuid.UUID) ([]*model.Message, error) {
	messages := make([]*model.Message, 0)
	if userA == uuid.Nil || userB == uuid.Nil {
		return messages, nil
	}
	err := repo.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&messages).
		Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkMessageAsSeen implements MessageRepository interface.
func (repo *Repository) MarkMessageAsSeen(id uuid.UUID) error {
	m, err := repo.GetMessageByID(id)
	if err != nil {
		return err
	}
	if m.Seen {
		return nil
	}
	if err := repo.db.Model(&model.Message{}).Where("id = ?", id).Update("seen", true).Error; err != nil {
		return err
	}

	repo.hub.Publish(hub.Message{
		Name: event.MessageSeen,
		Fields: hub.Fields{
			"reader_id":   m.ReceiverID,
			"sender_id":   m.SenderID,
			"message_ids": []uuid.UUID{id},
		},
	})
	return nil
}

// MarkConversationAsSeen implements MessageRepository interface.
func (repo *Repository) MarkConversationAsSeen(senderID, receiverID uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	if senderID == uuid.Nil || receiverID == uuid.Nil {
		return ids, nil
	}

	err := repo.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Message{}).
			Where("sender_id = ? AND receiver_id = ? AND seen = ?", senderID, receiverID, false).
			Pluck("id", &ids).
			Error
		if err != nil || len(ids) == 0 {
			return err
		}
		return tx.Model(&model.Message{}).Where("id IN ?", ids).Update("seen", true).Error
	})
	if err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		repo.hub.Publish(hub.Message{
			Name: event.MessageSeen,
			Fields: hub.Fields{
				"reader_id":   receiverID,
				"sender_id":   senderID,
				"message_ids": ids,
			},
		})
	}
	return ids, nil
}

// GetUnseenMessageCounts implements MessageRepository interface.
func (repo *Repository) GetUnseenMessageCounts(receiverID uuid.UUID) (map[uuid.UUID]int, error) {
	type unseenCount struct {
		SenderID uuid.UUID
		Count    int
	}

	var counts []unseenCount
	err := repo.db.Model(&model.Message{}).
		Select("sender_id, COUNT(*) AS count").
		Where("receiver_id = ? AND seen = ?", receiverID, false).
		Group("sender_id").
		Scan(&counts).
		Error
	if err != nil {
		return nil, err
	}
	return lo.SliceToMap(counts, func(c unseenCount) (uuid.UUID, int) {
		return c.SenderID, c.Count
	}), nil
}
