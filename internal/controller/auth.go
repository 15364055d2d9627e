package controller

import (
	"errors"
	"net/http"
	"strings"

	"foodshare-api/internal/entity"
	"foodshare-api/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo"
)

const viewerKey = "viewer"

// tokenQueryParam carries the token for websocket handshakes, which can't set headers from a browser.
const tokenQueryParam = "access_token"

var errInvalidToken = errors.New("invalid token")

// newAuthMiddleware resolves the caller into a viewer. No token means an anonymous viewer, a bad
// token is rejected.
func newAuthMiddleware(secret []byte, users service.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{err.Error()})
			}

			uid := ""
			if raw != "" {
				if uid, err = subjectOf(raw, secret); err != nil {
					return c.JSON(http.StatusUnauthorized, errorResponse{err.Error()})
				}
			}

			viewer, err := users.ResolveViewer(c.Request().Context(), uid)
			if err != nil {
				return respondError(c, err)
			}
			c.Set(viewerKey, viewer)

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return strings.TrimSpace(c.QueryParam(tokenQueryParam)), nil
	}

	if !strings.HasPrefix(header, "Bearer ") {
		return "", errors.New("authorization header should be a bearer token")
	}

	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")), nil
}

func subjectOf(raw string, secret []byte) (string, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", errInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errInvalidToken
	}

	return sub, nil
}

// viewerOf returns a copy of the request viewer so handlers can attach a location.
func viewerOf(c echo.Context) *entity.Viewer {
	v, ok := c.Get(viewerKey).(*entity.Viewer)
	if !ok || v == nil {
		return &entity.Viewer{}
	}

	viewer := *v

	return &viewer
}
