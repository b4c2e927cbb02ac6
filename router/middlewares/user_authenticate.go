package middlewares

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/singleflight"

	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/repository"
	"github.com/quickchat/quickchat/router/consts"
	"github.com/quickchat/quickchat/router/extension/herror"
	"github.com/quickchat/quickchat/utils/jwt"
)

const authScheme = "Bearer"

// UserAuthenticate リクエスト認証ミドルウェア
//
// tokenヘッダー、またはAuthorization: Bearerで渡されたJWTを検証します
func UserAuthenticate(repo repository.Repository) echo.MiddlewareFunc {
	var sfUser singleflight.Group

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(consts.HeaderToken)
			if len(token) == 0 {
				if ah := c.Request().Header.Get(echo.HeaderAuthorization); len(ah) > 0 {
					// Authorizationスキーム検証
					l := len(authScheme)
					if !(len(ah) > l+1 && strings.EqualFold(ah[:l], authScheme)) {
						return herror.Unauthorized("invalid authorization scheme")
					}
					token = ah[l+1:]
				}
			}
			if len(token) == 0 {
				return herror.Unauthorized("You are not logged in")
			}

			uid, err := jwt.ParseUserToken(token)
			if err != nil {
				return herror.Unauthorized("invalid token")
			}

			// ユーザー取得
			uI, err, _ := sfUser.Do(uid.String(), func() (interface{}, error) { return repo.GetUser(uid) })
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return herror.Unauthorized("user not found")
				}
				return herror.InternalServerError(err)
			}
			user := uI.(*model.User)

			c.Set(consts.KeyUser, user)
			c.Set(consts.KeyUserID, user.ID)
			return next(c)
		}
	}
}
