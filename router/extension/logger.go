package extension

import (
	"github.com/labstack/echo/v4"

	"github.com/quickchat/quickchat/utils/random"
)

// GetRequestID リクエストIDを返します
//
// RequestIDミドルウェアを通っている場合はレスポンスヘッダーに設定されたIDを返します
func GetRequestID(c echo.Context) string {
	if rid := c.Response().Header().Get(echo.HeaderXRequestID); len(rid) > 0 {
		return rid
	}
	rid := c.Request().Header.Get(echo.HeaderXRequestID)
	if len(rid) == 0 {
		rid = random.AlphaNumeric(32)
	}
	return rid
}
