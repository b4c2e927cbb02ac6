package router

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/repository"
	"github.com/quickchat/quickchat/router/api"
	"github.com/quickchat/quickchat/router/consts"
	"github.com/quickchat/quickchat/router/extension"
	"github.com/quickchat/quickchat/router/middlewares"
	"github.com/quickchat/quickchat/service"
)

// Setup APIサーバーハンドラを構築します
func Setup(hub *hub.Hub, repo repository.Repository, ss *service.Services, logger *zap.Logger, config *Config) *echo.Echo {
	logger = logger.Named("router")
	e := newEcho(logger, config)

	handlers := &api.Handlers{
		Repo:     repo,
		Hub:      hub,
		WS:       ss.WS,
		Registry: ss.Registry,
		MM:       ss.MessageManager,
		Logger:   logger.Named("api_handler"),
		Config: api.Config{
			AccessTokenExp: config.AccessTokenExp,
		},
	}

	apiGroup := e.Group("/api")
	apiGroup.GET("/metrics", echoprometheus.NewHandler())
	apiGroup.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, http.StatusText(http.StatusOK)) })
	apiGroup.GET("/status", func(c echo.Context) error { return c.String(http.StatusOK, "Server is live") })
	handlers.Setup(apiGroup)

	return e
}

func newEcho(logger *zap.Logger, config *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(logger)

	// ミドルウェア設定
	e.Use(middlewares.ServerVersion(config.Version))
	e.Use(middlewares.RequestID())
	if config.AccessLogging {
		e.Use(middlewares.AccessLogging(logger.Named("access_log"), config.Development))
	}
	e.Use(middlewares.Recovery(logger))
	if config.Gzipped {
		e.Use(middlewares.Gzip())
	}
	e.Use(extension.Wrap())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     config.AllowOrigins,
		AllowCredentials: true,
		ExposeHeaders:    []string{consts.HeaderVersion, echo.HeaderXRequestID},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, consts.HeaderToken},
		MaxAge:           3600,
	}))
	e.Use(echoprometheus.NewMiddleware("quickchat"))

	return e
}
