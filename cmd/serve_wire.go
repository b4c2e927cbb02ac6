//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/google/wire"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/repository"
	"github.com/quickchat/quickchat/router"
	"github.com/quickchat/quickchat/service"
	"github.com/quickchat/quickchat/service/message"
	"github.com/quickchat/quickchat/service/notification"
	"github.com/quickchat/quickchat/service/presence"
	"github.com/quickchat/quickchat/service/ws"
)

func newServer(hub *hub.Hub, repo repository.Repository, logger *zap.Logger, c *Config) (*Server, error) {
	wire.Build(
		message.NewMessageManager,
		notification.NewNotifier,
		notification.NewService,
		presence.NewRegistry,
		ws.NewStreamer,
		router.Setup,
		provideRouterConfig,
		provideWSConfig,
		wire.Struct(new(service.Services), "*"),
		wire.Struct(new(Server), "*"),
	)
	return nil, nil
}
