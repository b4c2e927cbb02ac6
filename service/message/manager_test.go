package message

import (
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/repository"
	"github.com/quickchat/quickchat/repository/mock_repository"
)

type Repo struct {
	*mock_repository.MockUserRepository
	*mock_repository.MockMessageRepository
}

func NewMockRepo(ctrl *gomock.Controller) *Repo {
	return &Repo{
		MockUserRepository:    mock_repository.NewMockUserRepository(ctrl),
		MockMessageRepository: mock_repository.NewMockMessageRepository(ctrl),
	}
}

func setupM(ctrl *gomock.Controller) (Manager, *Repo) {
	repo := NewMockRepo(ctrl)
	m, _ := NewMessageManager(repo, zap.NewNop())
	return m, repo
}

var (
	userA = uuid.NewV3(uuid.Nil, "a")
	userB = uuid.NewV3(uuid.Nil, "b")
	userC = uuid.NewV3(uuid.Nil, "c")
)

func TestManager_Send(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		m, _ := setupM(ctrl)

		_, err := m.Send(userA, userB, "", "")
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})

	t.Run("receiver not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		m, repo := setupM(ctrl)

		repo.MockUserRepository.
			EXPECT().
			GetUser(userB).
			Return(nil, repository.ErrNotFound).
			Times(1)

		_, err := m.Send(userA, userB, "hello", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		m, repo := setupM(ctrl)

		created := &model.Message{
			ID:         uuid.NewV3(uuid.Nil, "m1"),
			SenderID:   userA,
			ReceiverID: userB,
			Text:       "hello",
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		repo.MockUserRepository.
			EXPECT().
			GetUser(userB).
			Return(&model.User{ID: userB}, nil).
			Times(1)
		repo.MockMessageRepository.
			EXPECT().
			CreateMessage(repository.CreateMessageArgs{SenderID: userA, ReceiverID: userB, Text: "hello"}).
			Return(created, nil).
			Times(1)

		msg, err := m.Send(userA, userB, "hello", "")
		if assert.NoError(t, err) {
			assert.Equal(t, created, msg)
		}
	})

	t.Run("persistence failure", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		m, repo := setupM(ctrl)

		repo.MockUserRepository.
			EXPECT().
			GetUser(userB).
			Return(&model.User{ID: userB}, nil).
			Times(1)
		repo.MockMessageRepository.
			EXPECT().
			CreateMessage(gomock.Any()).
			Return(nil, errors.New("db error")).
			Times(1)

		_, err := m.Send(userA, userB, "", "https://example.com/a.png")
		assert.Error(t, err)
	})
}

func TestManager_GetConversation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	m, repo := setupM(ctrl)

	messages := []*model.Message{
		{ID: uuid.NewV3(uuid.Nil, "m1"), SenderID: userA, ReceiverID: userB, Text: "1"},
		{ID: uuid.NewV3(uuid.Nil, "m2"), SenderID: userB, ReceiverID: userA, Text: "2"},
	}
	gomock.InOrder(
		repo.MockMessageRepository.
			EXPECT().
			GetConversation(userA, userB).
			Return(messages, nil),
		repo.MockMessageRepository.
			EXPECT().
			MarkConversationAsSeen(userB, userA).
			Return([]uuid.UUID{messages[1].ID}, nil),
	)

	result, err := m.GetConversation(userA, userB)
	if assert.NoError(t, err) {
		assert.Equal(t, messages, result)
	}
}

func TestManager_MarkSeen(t *testing.T) {
	t.Parallel()

	newMsg := func() *model.Message {
		return &model.Message{ID: uuid.NewV3(uuid.Nil, "m1"), SenderID: userA, ReceiverID: userB, Text: "1"}
	}
	msg := newMsg()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		m, repo := setupM(ctrl)

		repo.MockMessageRepository.
			EXPECT().
			GetMessageByID(msg.ID).
			Return(nil, repository.ErrNotFound).
			Times(1)

		_, err := m.MarkSeen(userB, msg.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("forbidden", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		m, repo := setupM(ctrl)

		repo.MockMessageRepository.
			EXPECT().
			GetMessageByID(msg.ID).
			Return(newMsg(), nil).
			Times(1)

		_, err := m.MarkSeen(userA, msg.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		m, repo := setupM(ctrl)

		repo.MockMessageRepository.
			EXPECT().
			GetMessageByID(msg.ID).
			Return(newMsg(), nil).
			Times(1)
		repo.MockMessageRepository.
			EXPECT().
			MarkMessageAsSeen(msg.ID).
			Return(nil).
			Times(1)

		seen, err := m.MarkSeen(userB, msg.ID)
		if assert.NoError(t, err) {
			assert.True(t, seen.Seen)
		}
	})
}

func TestManager_GetSidebar(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	m, repo := setupM(ctrl)

	users := []*model.User{{ID: userB}, {ID: userC}}
	repo.MockUserRepository.
		EXPECT().
		GetUsers(repository.UsersQuery{}.NotID(userA)).
		Return(users, nil).
		Times(1)
	repo.MockMessageRepository.
		EXPECT().
		GetUnseenMessageCounts(userA).
		Return(map[uuid.UUID]int{userB: 3, uuid.NewV3(uuid.Nil, "deleted"): 1}, nil).
		Times(1)

	sidebar, err := m.GetSidebar(userA)
	if assert.NoError(t, err) {
		assert.Equal(t, users, sidebar.Users)
		assert.Equal(t, map[uuid.UUID]int{userB: 3}, sidebar.UnseenMessages)
	}
}
