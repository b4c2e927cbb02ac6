package api

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/repository"
	"github.com/quickchat/quickchat/router/consts"
	"github.com/quickchat/quickchat/router/middlewares"
	"github.com/quickchat/quickchat/service/message"
	"github.com/quickchat/quickchat/service/presence"
	"github.com/quickchat/quickchat/service/ws"
)

type Handlers struct {
	Repo     repository.Repository
	Hub      *hub.Hub
	WS       *ws.Streamer
	Registry presence.Registry
	MM       message.Manager
	Logger   *zap.Logger

	Config
}

type Config struct {
	// AccessTokenExp 発行するトークンの有効期間
	AccessTokenExp time.Duration
}

// Setup APIルーティングを行います
func (h *Handlers) Setup(e *echo.Group) {
	// middleware preparation
	requiresLogin := middlewares.UserAuthenticate(h.Repo)
	retrieve := middlewares.NewParamRetriever(h.Repo)
	limitBody := middlewares.RequestBodyLengthLimit(4 << 10)

	apiAuth := e.Group("/auth", limitBody)
	{
		apiAuth.POST("/signup", h.SignUp)
		apiAuth.POST("/login", h.Login)
		apiAuth.GET("/check", h.CheckAuth, requiresLogin)
		apiAuth.POST("/logout", h.Logout, requiresLogin)
		apiAuth.PUT("/update-profile", h.UpdateProfile, requiresLogin)
	}
	apiMessages := e.Group("/messages", requiresLogin, limitBody)
	{
		apiMessages.GET("/users", h.GetUsersForSidebar)
		apiMessages.GET("/:"+consts.ParamID, h.GetMessages, retrieve.UserID(consts.ParamID))
		apiMessages.POST("/send/:"+consts.ParamID, h.SendMessage)
		apiMessages.PUT("/mark/:"+consts.ParamID, h.MarkMessageAsSeen)
	}
	apiUsers := e.Group("/users")
	{
		apiUsers.GET("/online", h.GetOnlineUsers)
	}
	e.GET("/ws", h.ConnectWS)
}
