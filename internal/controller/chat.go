package controller

import (
	"net/http"

	"foodshare-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

type chatRoutesHandler struct {
	chatService service.Chat
	validate    *validator.Validate
}

func newChatRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *chatRoutesHandler {
	h := &chatRoutesHandler{chatService: services.Chat, validate: v}
	outer.POST("/chat", h.PostMessage)

	return h
}

type chatInput struct {
	Message   string `json:"message" validate:"max=2000"`
	SessionId string `json:"sessionId" validate:"max=64"`
}

// /chat
func (h *chatRoutesHandler) PostMessage(c echo.Context) error {
	var input chatInput
	if ok, err := bindBody(c, h.validate, &input); !ok {
		return err
	}

	// a fresh session per message when the client keeps none
	if input.SessionId == "" {
		input.SessionId = uuid.NewString()
	}

	out, err := h.chatService.Chat(c.Request().Context(), viewerOf(c), input.SessionId, input.Message)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
