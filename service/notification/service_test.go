package notification

import (
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/event"
	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/repository"
	"github.com/quickchat/quickchat/service/presence"
	"github.com/quickchat/quickchat/service/ws"
	"github.com/quickchat/quickchat/testutils"
)

type recorded struct {
	eventType string
	body      interface{}
}

type recordingHandle struct {
	mu     sync.Mutex
	events []recorded
}

func (h *recordingHandle) Key() string { return "recording" }

func (h *recordingHandle) Send(eventType string, body interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, recorded{eventType: eventType, body: body})
	return nil
}

func (h *recordingHandle) received() []*model.Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make([]*model.Message, 0, len(h.events))
	for _, ev := range h.events {
		if ev.eventType == ws.NewMessageEvent {
			res = append(res, ev.body.(*model.Message))
		}
	}
	return res
}

func (h *recordingHandle) seen() []*SeenNotice {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make([]*SeenNotice, 0, len(h.events))
	for _, ev := range h.events {
		if ev.eventType == ws.MessageSeenEvent {
			res = append(res, ev.body.(*SeenNotice))
		}
	}
	return res
}

func setupService(t *testing.T) (*Service, *testutils.TestRepository, presence.Registry, *hub.Hub) {
	t.Helper()
	h := hub.New()
	repo := testutils.NewTestRepository(h)
	registry := presence.NewRegistry()
	s := NewService(repo, NewNotifier(registry, zap.NewNop()), h, zap.NewNop())
	t.Cleanup(func() {
		s.Close()
		h.Close()
	})
	return s, repo, registry, h
}

func mustMakeUser(t *testing.T, repo repository.Repository, email string) *model.User {
	t.Helper()
	u, err := repo.CreateUser(repository.CreateUserArgs{
		Email:    email,
		FullName: email,
		Password: "password",
	})
	require.NoError(t, err)
	return u
}

func TestService_MessageCreated(t *testing.T) {
	t.Parallel()
	_, repo, registry, _ := setupService(t)

	a := mustMakeUser(t, repo, "a@example.com")
	b := mustMakeUser(t, repo, "b@example.com")
	hb := &recordingHandle{}
	registry.Register(b.ID, hb)

	m, err := repo.CreateMessage(repository.CreateMessageArgs{SenderID: a.ID, ReceiverID: b.ID, Text: "hi"})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return len(hb.received()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, m, hb.received()[0])

	// オフラインのユーザー宛てには何も送らない
	registry.Deregister(b.ID, hb)
	_, err = repo.CreateMessage(repository.CreateMessageArgs{SenderID: a.ID, ReceiverID: b.ID, Text: "again"})
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, hb.received(), 1)
}

func TestService_MessageCreatedOrder(t *testing.T) {
	t.Parallel()
	_, repo, registry, _ := setupService(t)

	a := mustMakeUser(t, repo, "a@example.com")
	b := mustMakeUser(t, repo, "b@example.com")
	hb := &recordingHandle{}
	registry.Register(b.ID, hb)

	const n = 50
	expected := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		m, err := repo.CreateMessage(repository.CreateMessageArgs{SenderID: a.ID, ReceiverID: b.ID, Text: "burst"})
		require.NoError(t, err)
		expected = append(expected, m.ID)
	}

	require.Eventually(t, func() bool { return len(hb.received()) == n }, 5*time.Second, 10*time.Millisecond)
	actual := make([]uuid.UUID, 0, n)
	for _, m := range hb.received() {
		actual = append(actual, m.ID)
	}
	assert.Equal(t, expected, actual)
}

func TestService_MessageSeen(t *testing.T) {
	t.Parallel()
	_, repo, registry, _ := setupService(t)

	a := mustMakeUser(t, repo, "a@example.com")
	b := mustMakeUser(t, repo, "b@example.com")
	ha := &recordingHandle{}
	registry.Register(a.ID, ha)

	m1, err := repo.CreateMessage(repository.CreateMessageArgs{SenderID: a.ID, ReceiverID: b.ID, Text: "1"})
	require.NoError(t, err)
	m2, err := repo.CreateMessage(repository.CreateMessageArgs{SenderID: a.ID, ReceiverID: b.ID, Text: "2"})
	require.NoError(t, err)

	_, err = repo.MarkConversationAsSeen(a.ID, b.ID)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return len(ha.seen()) == 1 }, time.Second, 10*time.Millisecond)
	notice := ha.seen()[0]
	assert.Equal(t, b.ID, notice.ReaderID)
	assert.Equal(t, a.ID, notice.SenderID)
	assert.Equal(t, []uuid.UUID{m1.ID, m2.ID}, notice.MessageIDs)
	// Aは送信者なのでnew-messageは届かない
	assert.Empty(t, ha.received())

	// 既読済みのメッセージは再通知しない
	require.NoError(t, repo.MarkMessageAsSeen(m1.ID))
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, ha.seen(), 1)
}

func TestService_UserOffline(t *testing.T) {
	t.Parallel()
	_, repo, _, h := setupService(t)

	u := mustMakeUser(t, repo, "offline@example.com")
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	h.Publish(hub.Message{
		Name: event.UserOffline,
		Fields: hub.Fields{
			"user_id":  u.ID,
			"datetime": now,
		},
	})

	require.Eventually(t, func() bool {
		got, err := repo.GetUser(u.ID)
		return err == nil && got.LastOnline.Valid
	}, time.Second, 10*time.Millisecond)
	got, err := repo.GetUser(u.ID)
	require.NoError(t, err)
	assert.True(t, now.Equal(got.LastOnline.V))

	// 存在しないユーザーは無視する
	h.Publish(hub.Message{
		Name: event.UserOffline,
		Fields: hub.Fields{
			"user_id":  uuid.Must(uuid.NewV4()),
			"datetime": now,
		},
	})
}
