package api

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"

	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/router/consts"
	"github.com/quickchat/quickchat/router/extension/herror"
)

// bindAndValidate 構造体iにFormDataまたはJsonをデシリアライズします
func bindAndValidate(c echo.Context, i interface{}) error {
	if err := c.Bind(i); err != nil {
		return herror.BadRequest(err)
	}
	if err := vd.Validate(i); err != nil {
		if e, ok := err.(vd.InternalError); ok {
			return herror.InternalServerError(e.InternalError())
		}
		return herror.BadRequest(err)
	}
	return nil
}

// getRequestUser リクエストしてきたユーザーの情報を取得
func getRequestUser(c echo.Context) *model.User {
	return c.Get(consts.KeyUser).(*model.User)
}

// getRequestUserID リクエストしてきたユーザーUUIDを取得
func getRequestUserID(c echo.Context) uuid.UUID {
	return c.Get(consts.KeyUserID).(uuid.UUID)
}

// getParamUser URLの:idパラメータのユーザーを取得
func getParamUser(c echo.Context) *model.User {
	return c.Get(consts.KeyParamUser).(*model.User)
}

// getParamAsUUID URLの:paramパラメータをUUIDとして取得
func getParamAsUUID(c echo.Context, param string) uuid.UUID {
	return uuid.FromStringOrNil(c.Param(param))
}
