package api

import (
	"errors"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/repository"
	"github.com/quickchat/quickchat/router/extension/herror"
	"github.com/quickchat/quickchat/utils/jwt"
	"github.com/quickchat/quickchat/utils/optional"
	"github.com/quickchat/quickchat/utils/validator"
)

// SignUpRequest POST /auth/signup リクエストボディ
type SignUpRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
}

func (r SignUpRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.FullName, validator.FullNameRuleRequired...),
		vd.Field(&r.Email, validator.EmailRuleRequired...),
		vd.Field(&r.Password, validator.PasswordRuleRequired...),
		vd.Field(&r.Bio, append([]vd.Rule{vd.Required}, validator.BioRule...)...),
	)
}

// SignUp POST /auth/signup
func (h *Handlers) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.Repo.CreateUser(repository.CreateUserArgs{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Bio:      req.Bio,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			return herror.Conflict("Account already exists")
		case repository.IsArgError(err):
			return herror.BadRequest(err)
		default:
			return herror.InternalServerError(err)
		}
	}

	token, err := jwt.IssueUserToken(user.ID, h.AccessTokenExp)
	if err != nil {
		return herror.InternalServerError(err)
	}

	h.Logger.Info("user signed up", zap.Stringer("userId", user.ID))
	return c.JSON(http.StatusCreated, echo.Map{
		"success":  true,
		"userData": user,
		"token":    token,
		"message":  "Account created successfully",
	})
}

// LoginRequest POST /auth/login リクエストボディ
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Email, vd.Required),
		vd.Field(&r.Password, vd.Required),
	)
}

// Login POST /auth/login
func (h *Handlers) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.Repo.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.Unauthorized("Invalid credentials")
		}
		return herror.InternalServerError(err)
	}
	if err := user.Authenticate(req.Password); err != nil {
		if errors.Is(err, model.ErrUserWrongPassword) {
			return herror.Unauthorized("Invalid credentials")
		}
		return herror.InternalServerError(err)
	}

	token, err := jwt.IssueUserToken(user.ID, h.AccessTokenExp)
	if err != nil {
		return herror.InternalServerError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"userData": user,
		"token":    token,
		"message":  "Login successful",
	})
}

// CheckAuth GET /auth/check
func (h *Handlers) CheckAuth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    getRequestUser(c),
	})
}

// Logout POST /auth/logout
//
// トークンはステートレスなので、クライアントが破棄する
func (h *Handlers) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Logged out",
	})
}

// UpdateProfileRequest PUT /auth/update-profile リクエストボディ
type UpdateProfileRequest struct {
	FullName   optional.Of[string] `json:"fullName"`
	Bio        optional.Of[string] `json:"bio"`
	ProfilePic optional.Of[string] `json:"profilePic"`
}

func (r UpdateProfileRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.FullName, append(validator.FullNameRule, validator.RequiredIfValid)...),
		vd.Field(&r.Bio, validator.BioRule...),
	)
}

// UpdateProfile PUT /auth/update-profile
func (h *Handlers) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	userID := getRequestUserID(c)
	if err := h.Repo.UpdateUser(userID, repository.UpdateUserArgs{
		FullName:   req.FullName,
		Bio:        req.Bio,
		ProfilePic: req.ProfilePic,
	}); err != nil {
		return herror.InternalServerError(err)
	}

	user, err := h.Repo.GetUser(userID)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    user,
	})
}
