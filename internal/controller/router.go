package controller

import (
	"foodshare-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, jwtSecret string) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api", newAuthMiddleware([]byte(jwtSecret), services.User))
	newDiagnosticRoutesHandler(api, services)
	newUserRoutesHandler(api, services, validate)
	newListingRoutesHandler(api, services, validate)
	newRequestRoutesHandler(api, services)
	newChatRoutesHandler(api, services, validate)
	newLiveRoutesHandler(api, services)
}
