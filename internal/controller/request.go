package controller

import (
	"net/http"

	"foodshare-api/internal/service"

	"github.com/labstack/echo"
)

type requestRoutesHandler struct {
	requestService service.Request
}

func newRequestRoutesHandler(outer *echo.Group, services *service.Services) *requestRoutesHandler {
	h := &requestRoutesHandler{requestService: services.Request}

	outer.GET("/requests/my", h.GetMyRequests)
	outer.GET("/requests/inbox", h.GetInbox)
	outer.GET("/requests/:requestId", h.GetRequest)
	outer.PUT("/requests/:requestId/accept", h.AcceptRequest)
	outer.PUT("/requests/:requestId/reject", h.RejectRequest)

	return h
}

// /requests/my
func (h *requestRoutesHandler) GetMyRequests(c echo.Context) error {
	requests, err := h.requestService.GetMyRequests(c.Request().Context(), viewerOf(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, requests)
}

// /requests/inbox?tab=active|history
func (h *requestRoutesHandler) GetInbox(c echo.Context) error {
	requests, err := h.requestService.GetInbox(c.Request().Context(), viewerOf(c), c.QueryParam("tab"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, requests)
}

// /requests/:requestId
func (h *requestRoutesHandler) GetRequest(c echo.Context) error {
	request, err := h.requestService.GetRequestById(c.Request().Context(), viewerOf(c), c.Param("requestId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, request)
}

// /requests/:requestId/accept
func (h *requestRoutesHandler) AcceptRequest(c echo.Context) error {
	request, err := h.requestService.AcceptRequest(c.Request().Context(), viewerOf(c), c.Param("requestId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, request)
}

// /requests/:requestId/reject
func (h *requestRoutesHandler) RejectRequest(c echo.Context) error {
	request, err := h.requestService.RejectRequest(c.Request().Context(), viewerOf(c), c.Param("requestId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, request)
}
