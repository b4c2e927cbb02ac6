package api

import (
	"errors"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/quickchat/quickchat/router/consts"
	"github.com/quickchat/quickchat/router/extension/herror"
	"github.com/quickchat/quickchat/service/message"
	"github.com/quickchat/quickchat/utils/validator"
)

// GetUsersForSidebar GET /messages/users
func (h *Handlers) GetUsersForSidebar(c echo.Context) error {
	sidebar, err := h.MM.GetSidebar(getRequestUserID(c))
	if err != nil {
		return herror.InternalServerError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":        true,
		"users":          sidebar.Users,
		"unseenMessages": lo.MapKeys(sidebar.UnseenMessages, func(_ int, id uuid.UUID) string { return id.String() }),
	})
}

// GetMessages GET /messages/:id
func (h *Handlers) GetMessages(c echo.Context) error {
	partner := getParamUser(c)

	messages, err := h.MM.GetConversation(getRequestUserID(c), partner.ID)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"messages": messages,
	})
}

// PostMessageRequest POST /messages/send/:id リクエストボディ
type PostMessageRequest struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

func (r PostMessageRequest) Validate() error {
	if err := validator.OneOfRequired("text, image", r.Text, r.Image); err != nil {
		return err
	}
	return vd.ValidateStruct(&r,
		vd.Field(&r.Text, validator.MessageTextRule...),
	)
}

// SendMessage POST /messages/send/:id
func (h *Handlers) SendMessage(c echo.Context) error {
	var req PostMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	receiverID := getParamAsUUID(c, consts.ParamID)
	m, err := h.MM.Send(getRequestUserID(c), receiverID, req.Text, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrEmptyMessage):
			return herror.BadRequest(err)
		case errors.Is(err, message.ErrNotFound):
			return herror.NotFound("receiver not found")
		default:
			return herror.InternalServerError(err)
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":    true,
		"newMessage": m,
	})
}

// MarkMessageAsSeen PUT /messages/mark/:id
func (h *Handlers) MarkMessageAsSeen(c echo.Context) error {
	messageID := getParamAsUUID(c, consts.ParamID)

	m, err := h.MM.MarkSeen(getRequestUserID(c), messageID)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrNotFound):
			return herror.NotFound("message not found")
		case errors.Is(err, message.ErrForbidden):
			return herror.Forbidden("you are not the receiver of this message")
		default:
			return herror.InternalServerError(err)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": m,
	})
}
