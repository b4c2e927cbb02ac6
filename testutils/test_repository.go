package testutils

import (
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"

	"github.com/quickchat/quickchat/event"
	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/repository"
)

var _ repository.Repository = (*TestRepository)(nil)

// TestRepository テスト用のインメモリリポジトリ
//
// hubが渡された場合、gorm実装と同じイベントを発行します
type TestRepository struct {
	hub          *hub.Hub
	Users        map[uuid.UUID]model.User
	UsersLock    sync.RWMutex
	Messages     []model.Message
	MessagesLock sync.RWMutex
}

func NewTestRepository(hub *hub.Hub) *TestRepository {
	return &TestRepository{
		hub:      hub,
		Users:    map[uuid.UUID]model.User{},
		Messages: []model.Message{},
	}
}

func (repo *TestRepository) publish(name string, fields hub.Fields) {
	if repo.hub != nil {
		repo.hub.Publish(hub.Message{Name: name, Fields: fields})
	}
}

func (repo *TestRepository) CreateUser(args repository.CreateUserArgs) (*model.User, error) {
	now := time.Now()
	user := model.User{
		ID:         uuid.Must(uuid.NewV4()),
		Email:      args.Email,
		FullName:   args.FullName,
		Bio:        args.Bio,
		ProfilePic: args.ProfilePic,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := user.SetPassword(args.Password); err != nil {
		return nil, err
	}

	repo.UsersLock.Lock()
	for _, u := range repo.Users {
		if u.Email == args.Email {
			repo.UsersLock.Unlock()
			return nil, repository.ErrAlreadyExists
		}
	}
	repo.Users[user.ID] = user
	repo.UsersLock.Unlock()

	return &user, nil
}

func (repo *TestRepository) GetUser(id uuid.UUID) (*model.User, error) {
	repo.UsersLock.RLock()
	defer repo.UsersLock.RUnlock()
	u, ok := repo.Users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (repo *TestRepository) GetUserByEmail(email string) (*model.User, error) {
	repo.UsersLock.RLock()
	defer repo.UsersLock.RUnlock()
	for _, u := range repo.Users {
		if len(email) > 0 && u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (repo *TestRepository) GetUsers(query repository.UsersQuery) ([]*model.User, error) {
	repo.UsersLock.RLock()
	result := make([]*model.User, 0, len(repo.Users))
	for _, u := range repo.Users {
		if query.Exclude.Valid && u.ID == query.Exclude.V {
			continue
		}
		result = append(result, &u)
	}
	repo.UsersLock.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (repo *TestRepository) UpdateUser(id uuid.UUID, args repository.UpdateUserArgs) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}

	repo.UsersLock.Lock()
	u, ok := repo.Users[id]
	if !ok {
		repo.UsersLock.Unlock()
		return repository.ErrNotFound
	}
	if args.FullName.Valid {
		u.FullName = args.FullName.V
	}
	if args.Bio.Valid {
		u.Bio = args.Bio.V
	}
	if args.ProfilePic.Valid {
		u.ProfilePic = args.ProfilePic.V
	}
	if args.LastOnline.Valid {
		u.LastOnline = args.LastOnline
	}
	u.UpdatedAt = time.Now()
	repo.Users[id] = u
	repo.UsersLock.Unlock()
	return nil
}

func (repo *TestRepository) CreateMessage(args repository.CreateMessageArgs) (*model.Message, error) {
	if args.SenderID == uuid.Nil || args.ReceiverID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	if len(args.Text) == 0 && len(args.Image) == 0 {
		return nil, repository.ArgError("text", "text or image is required")
	}

	now := time.Now()
	m := model.Message{
		ID:         uuid.Must(uuid.NewV4()),
		SenderID:   args.SenderID,
		ReceiverID: args.ReceiverID,
		Text:       args.Text,
		Image:      args.Image,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	repo.MessagesLock.Lock()
	repo.Messages = append(repo.Messages, m)
	repo.MessagesLock.Unlock()

	repo.publish(event.MessageCreated, hub.Fields{
		"message_id": m.ID,
		"message":    &m,
	})
	return &m, nil
}

func (repo *TestRepository) GetMessageByID(id uuid.UUID) (*model.Message, error) {
	repo.MessagesLock.RLock()
	defer repo.MessagesLock.RUnlock()
	for _, m := range repo.Messages {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (repo *TestRepository) GetConversation(userA, userB uuid.UUID) ([]*model.Message, error) {
	repo.MessagesLock.RLock()
	defer repo.MessagesLock.RUnlock()
	result := make([]*model.Message, 0)
	for _, m := range repo.Messages {
		if (m.SenderID == userA && m.ReceiverID == userB) || (m.SenderID == userB && m.ReceiverID == userA) {
			result = append(result, &m)
		}
	}
	return result, nil
}

func (repo *TestRepository) MarkMessageAsSeen(id uuid.UUID) error {
	repo.MessagesLock.Lock()
	var target *model.Message
	for i := range repo.Messages {
		if repo.Messages[i].ID == id {
			target = &repo.Messages[i]
			break
		}
	}
	if target == nil {
		repo.MessagesLock.Unlock()
		return repository.ErrNotFound
	}
	if target.Seen {
		repo.MessagesLock.Unlock()
		return nil
	}
	target.Seen = true
	readerID, senderID := target.ReceiverID, target.SenderID
	repo.MessagesLock.Unlock()

	repo.publish(event.MessageSeen, hub.Fields{
		"reader_id":   readerID,
		"sender_id":   senderID,
		"message_ids": []uuid.UUID{id},
	})
	return nil
}

func (repo *TestRepository) MarkConversationAsSeen(senderID, receiverID uuid.UUID) ([]uuid.UUID, error) {
	repo.MessagesLock.Lock()
	ids := make([]uuid.UUID, 0)
	for i, m := range repo.Messages {
		if m.SenderID == senderID && m.ReceiverID == receiverID && !m.Seen {
			repo.Messages[i].Seen = true
			ids = append(ids, m.ID)
		}
	}
	repo.MessagesLock.Unlock()

	if len(ids) > 0 {
		repo.publish(event.MessageSeen, hub.Fields{
			"reader_id":   receiverID,
			"sender_id":   senderID,
			"message_ids": ids,
		})
	}
	return ids, nil
}

func (repo *TestRepository) GetUnseenMessageCounts(receiverID uuid.UUID) (map[uuid.UUID]int, error) {
	repo.MessagesLock.RLock()
	defer repo.MessagesLock.RUnlock()
	counts := map[uuid.UUID]int{}
	for _, m := range repo.Messages {
		if m.ReceiverID == receiverID && !m.Seen {
			counts[m.SenderID]++
		}
	}
	return counts, nil
}
