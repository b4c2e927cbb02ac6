package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/repository"
	"github.com/quickchat/quickchat/router/extension"
	"github.com/quickchat/quickchat/service/message"
	"github.com/quickchat/quickchat/service/notification"
	"github.com/quickchat/quickchat/service/presence"
	"github.com/quickchat/quickchat/service/ws"
	"github.com/quickchat/quickchat/testutils"
	"github.com/quickchat/quickchat/utils/jwt"
	"github.com/quickchat/quickchat/utils/random"
)

const (
	rand           = "random"
	testPassword   = "testtesttest"
	accessTokenExp = time.Hour
)

func TestMain(m *testing.M) {
	privRaw, err := random.GenerateECDSAKey()
	if err != nil {
		panic(err)
	}
	if err := jwt.SetupSigner(privRaw); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// env テスト用のサーバー一式
type env struct {
	repo     *testutils.TestRepository
	registry presence.Registry
	streamer *ws.Streamer
	server   *httptest.Server
}

// Setup テストごとに独立したサーバーを立ち上げます
func Setup(t *testing.T) *env {
	t.Helper()

	h := hub.New()
	repo := testutils.NewTestRepository(h)
	registry := presence.NewRegistry()
	streamer := ws.NewStreamer(h, registry, zap.NewNop(), ws.Config{})
	ns := notification.NewService(repo, notification.NewNotifier(registry, zap.NewNop()), h, zap.NewNop())
	mm, err := message.NewMessageManager(repo, zap.NewNop())
	require.NoError(t, err)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(zap.NewNop())
	e.Use(extension.Wrap())

	handlers := &Handlers{
		Repo:     repo,
		Hub:      h,
		WS:       streamer,
		Registry: registry,
		MM:       mm,
		Logger:   zap.NewNop(),
		Config: Config{
			AccessTokenExp: accessTokenExp,
		},
	}
	handlers.Setup(e.Group("/api"))
	server := httptest.NewServer(e)

	t.Cleanup(func() {
		_ = streamer.Close()
		server.Close()
		ns.Close()
		h.Close()
	})
	return &env{
		repo:     repo,
		registry: registry,
		streamer: streamer,
		server:   server,
	}
}

// S 指定ユーザーのアクセストークンを発行
func S(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := jwt.IssueUserToken(userID, accessTokenExp)
	require.NoError(t, err)
	return token
}

// R リクエストテスターを作成
func R(t *testing.T, server *httptest.Server) *httpexpect.Expect {
	t.Helper()
	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  server.URL,
		Reporter: httpexpect.NewAssertReporter(t),
		Printers: []httpexpect.Printer{
			httpexpect.NewCurlPrinter(t),
			httpexpect.NewDebugPrinter(t, true),
		},
		Client: &http.Client{
			Jar:     nil, // クッキーは保持しない
			Timeout: time.Second * 30,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse // リダイレクトを自動処理しない
			},
		},
	})
}

// CreateUser ユーザーを必ず作成します
func CreateUser(t *testing.T, repo repository.Repository, email string) *model.User {
	t.Helper()
	if email == rand {
		email = random.AlphaNumeric(16) + "@example.com"
	}
	u, err := repo.CreateUser(repository.CreateUserArgs{
		Email:    email,
		FullName: "test user",
		Password: testPassword,
		Bio:      "hello",
	})
	require.NoError(t, err)
	return u
}

// CreateMessage メッセージを必ず作成します
func CreateMessage(t *testing.T, repo repository.Repository, senderID, receiverID uuid.UUID, text string) *model.Message {
	t.Helper()
	m, err := repo.CreateMessage(repository.CreateMessageArgs{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
	})
	require.NoError(t, err)
	return m
}
