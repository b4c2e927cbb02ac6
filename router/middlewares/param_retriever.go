package middlewares

import (
	"errors"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"

	"github.com/quickchat/quickchat/repository"
	"github.com/quickchat/quickchat/router/consts"
	"github.com/quickchat/quickchat/router/extension/herror"
)

// ParamRetriever リクエストパスパラメーターを検証・取得します
type ParamRetriever struct {
	repo repository.Repository
}

// NewParamRetriever ParamRetrieverを生成します
func NewParamRetriever(repo repository.Repository) *ParamRetriever {
	return &ParamRetriever{repo: repo}
}

func (pr *ParamRetriever) byString(key string, f func(c echo.Context, v string) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := f(c, c.Param(key)); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func (pr *ParamRetriever) byUUID(key string, f func(c echo.Context, v uuid.UUID) error) echo.MiddlewareFunc {
	return pr.byString(key, func(c echo.Context, v string) error {
		id := uuid.FromStringOrNil(v)
		if id == uuid.Nil {
			return herror.NotFound()
		}
		return f(c, id)
	})
}

func (pr *ParamRetriever) checkErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return herror.NotFound()
	}
	return herror.InternalServerError(err)
}

// UserID リクエストURLの`param`パラメータで指定されたユーザーを取得します
func (pr *ParamRetriever) UserID(param string) echo.MiddlewareFunc {
	return pr.byUUID(param, func(c echo.Context, v uuid.UUID) error {
		u, err := pr.repo.GetUser(v)
		if err != nil {
			return pr.checkErr(err)
		}
		c.Set(consts.KeyParamUser, u)
		return nil
	})
}
