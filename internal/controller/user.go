package controller

import (
	"net/http"

	"foodshare-api/internal/common"
	"foodshare-api/internal/entity"
	"foodshare-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type userRoutesHandler struct {
	userService service.User
	validate    *validator.Validate
}

func newUserRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *userRoutesHandler {
	h := &userRoutesHandler{userService: services.User, validate: v}

	outer.POST("/users/me", h.PostProfile)
	outer.GET("/users/me", h.GetProfile)
	outer.PATCH("/users/me", h.PatchProfile)

	return h
}

type postProfileInput struct {
	Name  string `json:"name" validate:"max=80"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"max=32"`
	Role  string `json:"role" validate:"omitempty,oneof=donor receiver"`
}

// /users/me
func (h *userRoutesHandler) PostProfile(c echo.Context) error {
	var input postProfileInput
	if ok, err := bindBody(c, h.validate, &input); !ok {
		return err
	}

	model := &entity.CreateUserInput{
		Uid: viewerOf(c).Uid, Role: common.Role(input.Role),
		Name: input.Name, Email: input.Email, Phone: input.Phone,
	}

	user, err := h.userService.CreateProfile(c.Request().Context(), model)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// /users/me
func (h *userRoutesHandler) GetProfile(c echo.Context) error {
	user, err := h.userService.GetProfile(c.Request().Context(), viewerOf(c).Uid)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

type patchProfileInput struct {
	Name  string `json:"name" validate:"max=80"`
	Phone string `json:"phone" validate:"max=32"`
	Role  string `json:"role" validate:"omitempty,oneof=donor receiver"`
}

// /users/me
func (h *userRoutesHandler) PatchProfile(c echo.Context) error {
	var input patchProfileInput
	if ok, err := bindBody(c, h.validate, &input); !ok {
		return err
	}

	model := &entity.UpdateUserInput{Name: input.Name, Phone: input.Phone, Role: common.Role(input.Role)}

	user, err := h.userService.UpdateProfile(c.Request().Context(), viewerOf(c).Uid, model)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}
