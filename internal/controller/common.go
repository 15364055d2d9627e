package controller

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"foodshare-api/internal/entity"
	"foodshare-api/internal/expiry"
	"foodshare-api/internal/geo"
	"foodshare-api/internal/service"

	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"
)

const (
	defaultLimit  = entity.DefaultLimit
	defaultOffset = 0
)

var log = logrus.WithField("prefix", "controller")

type errorResponse struct {
	Reason string `json:"reason"`
}

func getAllErrorMessages(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	var builder strings.Builder
	for _, fe := range fieldErrors {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return getMessageForString(fe)
	case reflect.Int, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		return getMessageForNumber(fe)
	}

	return "incorrect value passed"
}

func getMessageForNumber(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	case "email":
		return "should be an email address"
	case "url":
		return "should be a url"
	}

	return "incorrect value passed"
}

// statusOf maps the service error taxonomy onto http statuses. Specific errors are checked
// before their category.
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrNotListingOwner):
		return http.StatusForbidden
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrInvalidStateTransition):
		return http.StatusConflict
	case errors.Is(err, service.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

func respondError(c echo.Context, err error) error {
	status := statusOf(err)
	reason := err.Error()

	switch status {
	case http.StatusServiceUnavailable:
		log.WithError(err).WithField("path", c.Path()).Error("store unavailable")
		sentry.CaptureException(err)
		reason = "storage is unavailable, try again later"
	case http.StatusInternalServerError:
		log.WithError(err).WithField("path", c.Path()).Error("request failed")
		sentry.CaptureException(err)
		reason = "internal error"
	}

	return c.JSON(status, errorResponse{reason})
}

func badInput(c echo.Context, reason string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{reason})
}

// bindBody decodes and validates a json body. It writes the 400 itself and reports false when the
// body is unusable.
func bindBody(c echo.Context, v *validator.Validate, body interface{}) (bool, error) {
	if err := c.Bind(body); err != nil {
		return false, badInput(c, "Input data is not formed correctly")
	}

	if err := v.Struct(body); err != nil {
		return false, badInput(c, getAllErrorMessages(err))
	}

	return true, nil
}

type queryError struct {
	name, reason string
}

func (e *queryError) Error() string {
	return fmt.Sprintf("'%s': %s", e.name, e.reason)
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &queryError{name, "should be a number"}
	}

	return &f, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}

	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return 0, &queryError{name, "should be a non-negative integer"}
	}

	return i, nil
}

// queryLocation reads an optional lat/lon pair. Both or neither must be given.
func queryLocation(c echo.Context) (*geo.Point, error) {
	lat, err := queryFloat(c, "lat")
	if err != nil {
		return nil, err
	}
	lon, err := queryFloat(c, "lon")
	if err != nil {
		return nil, err
	}

	if lat == nil && lon == nil {
		return nil, nil
	}
	if lat == nil || lon == nil {
		return nil, service.ErrMissingCoordinates
	}

	p := geo.Point{Lat: *lat, Lon: *lon}
	if !p.Valid() {
		return nil, service.ErrMissingCoordinates
	}

	return &p, nil
}

func parseExpiry(raw string) (*time.Time, error) {
	t, err := expiry.Parse(raw)
	if err != nil {
		return nil, service.ErrMalformedExpiry
	}

	return t, nil
}

// respondQuery writes the 400 for a malformed query parameter.
func respondQuery(c echo.Context, err error) error {
	var qe *queryError
	if errors.As(err, &qe) {
		return badInput(c, qe.Error())
	}

	return respondError(c, err)
}
