package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetOnlineUsers GET /users/online
func (h *Handlers) GetOnlineUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"users":   h.Registry.Snapshot(),
	})
}
