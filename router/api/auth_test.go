package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/quickchat/quickchat/router/consts"
	"github.com/quickchat/quickchat/utils/jwt"
)

func TestHandlers_SignUp(t *testing.T) {
	t.Parallel()
	path := "/api/auth/signup"
	env := Setup(t)
	CreateUser(t, env.repo, "exists@example.com")

	t.Run("bad request", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		e.POST(path).
			WithJSON(echo.Map{"fullName": "a", "email": "a@example.com", "password": "password"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			HasValue("success", false)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		e.POST(path).
			WithJSON(echo.Map{"fullName": "a", "email": "not an email", "password": "password", "bio": "b"}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		e.POST(path).
			WithJSON(echo.Map{"fullName": "a", "email": "short@example.com", "password": "abc", "bio": "b"}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("conflict", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		e.POST(path).
			WithJSON(echo.Map{"fullName": "a", "email": "exists@example.com", "password": "password", "bio": "b"}).
			Expect().
			Status(http.StatusConflict).
			JSON().Object().
			HasValue("success", false).
			HasValue("message", "Account already exists")
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		obj := e.POST(path).
			WithJSON(echo.Map{"fullName": "new user", "email": "new@example.com", "password": "password", "bio": "hi"}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()

		obj.HasValue("success", true)
		obj.Value("message").String().NotEmpty()
		user := obj.Value("userData").Object()
		user.HasValue("email", "new@example.com")
		user.HasValue("fullName", "new user")
		user.HasValue("bio", "hi")
		user.NotContainsKey("password")

		id, err := jwt.ParseUserToken(obj.Value("token").String().Raw())
		if assert.NoError(t, err) {
			user.HasValue("_id", id.String())
		}
	})
}

func TestHandlers_Login(t *testing.T) {
	t.Parallel()
	path := "/api/auth/login"
	env := Setup(t)
	user := CreateUser(t, env.repo, "login@example.com")

	t.Run("bad request", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		e.POST(path).
			WithJSON(echo.Map{"email": "login@example.com"}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		e.POST(path).
			WithJSON(echo.Map{"email": "unknown@example.com", "password": testPassword}).
			Expect().
			Status(http.StatusUnauthorized).
			JSON().Object().
			HasValue("success", false)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		e.POST(path).
			WithJSON(echo.Map{"email": "login@example.com", "password": "wrong password"}).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		obj := e.POST(path).
			WithJSON(echo.Map{"email": "login@example.com", "password": testPassword}).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		obj.HasValue("success", true)
		obj.Value("userData").Object().HasValue("_id", user.ID.String())
		id, err := jwt.ParseUserToken(obj.Value("token").String().Raw())
		if assert.NoError(t, err) {
			assert.Equal(t, user.ID, id)
		}
	})
}

func TestHandlers_CheckAuth(t *testing.T) {
	t.Parallel()
	path := "/api/auth/check"
	env := Setup(t)
	user := CreateUser(t, env.repo, rand)
	token := S(t, user.ID)

	t.Run("not logged in", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		e.GET(path).
			Expect().
			Status(http.StatusUnauthorized).
			JSON().Object().
			HasValue("success", false)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		e.GET(path).
			WithHeader(consts.HeaderToken, "invalid").
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("invalid scheme", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		e.GET(path).
			WithHeader(echo.HeaderAuthorization, "Basic "+token).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("token header", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		e.GET(path).
			WithHeader(consts.HeaderToken, token).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("success", true).
			Value("user").Object().
			HasValue("_id", user.ID.String())
	})

	t.Run("bearer", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		e.GET(path).
			WithHeader(echo.HeaderAuthorization, "Bearer "+token).
			Expect().
			Status(http.StatusOK)
	})
}

func TestHandlers_Logout(t *testing.T) {
	t.Parallel()
	env := Setup(t)
	user := CreateUser(t, env.repo, rand)

	e := R(t, env.server)
	e.POST("/api/auth/logout").
		WithHeader(consts.HeaderToken, S(t, user.ID)).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		HasValue("success", true)
}

func TestHandlers_UpdateProfile(t *testing.T) {
	t.Parallel()
	path := "/api/auth/update-profile"
	env := Setup(t)

	t.Run("not logged in", func(t *testing.T) {
		t.Parallel()
		e := R(t, env.server)
		e.PUT(path).
			WithJSON(echo.Map{"bio": "new bio"}).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("empty fullName", func(t *testing.T) {
		t.Parallel()
		user := CreateUser(t, env.repo, rand)
		e := R(t, env.server)
		e.PUT(path).
			WithHeader(consts.HeaderToken, S(t, user.ID)).
			WithJSON(echo.Map{"fullName": ""}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("too long bio", func(t *testing.T) {
		t.Parallel()
		user := CreateUser(t, env.repo, rand)
		e := R(t, env.server)
		e.PUT(path).
			WithHeader(consts.HeaderToken, S(t, user.ID)).
			WithJSON(echo.Map{"bio": strings.Repeat("a", 501)}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		user := CreateUser(t, env.repo, rand)
		e := R(t, env.server)
		obj := e.PUT(path).
			WithHeader(consts.HeaderToken, S(t, user.ID)).
			WithJSON(echo.Map{"bio": "new bio", "profilePic": "https://example.com/a.png"}).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		obj.HasValue("success", true)
		u := obj.Value("user").Object()
		u.HasValue("bio", "new bio")
		u.HasValue("profilePic", "https://example.com/a.png")
		u.HasValue("fullName", user.FullName)

		updated, err := env.repo.GetUser(user.ID)
		if assert.NoError(t, err) {
			assert.Equal(t, "new bio", updated.Bio)
		}
	})
}
