package api

import (
	"net/http"
	"testing"
)

func TestHandlers_GetOnlineUsers(t *testing.T) {
	t.Parallel()
	path := "/api/users/online"
	env := Setup(t)

	t.Run("empty", func(t *testing.T) {
		e := R(t, env.server)
		e.GET(path).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("success", true).
			Value("users").Array().IsEmpty()
	})

	t.Run("registered", func(t *testing.T) {
		user := CreateUser(t, env.repo, rand)
		conn := dialWS(t, env, user.ID.String())
		readOnlineUsers(t, conn)

		e := R(t, env.server)
		e.GET(path).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("users").Array().
			IsEqual([]string{user.ID.String()})
	})
}
