package api

import (
	"github.com/labstack/echo/v4"
)

// ConnectWS GET /ws
//
// ユーザーIDはクエリパラメータuserIdで受け取ります
func (h *Handlers) ConnectWS(c echo.Context) error {
	h.WS.ServeHTTP(c.Response(), c.Request())
	return nil
}
