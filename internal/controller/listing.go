package controller

import (
	"net/http"

	"foodshare-api/internal/entity"
	"foodshare-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type listingRoutesHandler struct {
	listingService service.Listing
	requestService service.Request
	validate       *validator.Validate
}

func newListingRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *listingRoutesHandler {
	h := &listingRoutesHandler{listingService: services.Listing, requestService: services.Request, validate: v}

	outer.GET("/listings", h.GetListings)
	outer.POST("/listings/new", h.PostListing)
	outer.GET("/listings/my", h.GetMyListings)
	outer.GET("/listings/:listingId", h.GetListing)
	outer.PATCH("/listings/:listingId/edit", h.EditListing)
	outer.PATCH("/listings/:listingId/status", h.SetListingStatus)
	outer.DELETE("/listings/:listingId", h.DeleteListing)
	outer.POST("/listings/:listingId/requests", h.PostRequest)

	return h
}

type listingBody struct {
	Title        string   `json:"title" validate:"max=120"`
	Description  string   `json:"description" validate:"max=1000"`
	Quantity     string   `json:"quantity" validate:"max=60"`
	Category     string   `json:"category" validate:"omitempty,oneof=veg non-veg"`
	LocationText string   `json:"locationText" validate:"max=200"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	ExpiryDate   string   `json:"expiryDate"`
	ImageUrl     *string  `json:"imageUrl" validate:"omitempty,url"`
	DonorName    string   `json:"donorName" validate:"max=80"`
}

// feedInput reads the browse query shared by the list and live endpoints and puts the optional
// location on the viewer.
func feedInput(c echo.Context) (*entity.Viewer, *entity.FeedFilter, error) {
	viewer := viewerOf(c)

	location, err := queryLocation(c)
	if err != nil {
		return nil, nil, err
	}
	viewer.Location = location

	maxDistance, err := queryFloat(c, "maxDistanceKm")
	if err != nil {
		return nil, nil, err
	}
	limit, err := queryInt(c, "limit", defaultLimit)
	if err != nil {
		return nil, nil, err
	}
	offset, err := queryInt(c, "offset", defaultOffset)
	if err != nil {
		return nil, nil, err
	}

	filter := &entity.FeedFilter{
		Category:      c.QueryParam("category"),
		MaxDistanceKm: maxDistance,
		Pagination:    entity.NewPaginationInput(limit, offset),
	}

	return viewer, filter, nil
}

// /listings
func (h *listingRoutesHandler) GetListings(c echo.Context) error {
	viewer, filter, err := feedInput(c)
	if err != nil {
		return respondQuery(c, err)
	}

	listings, err := h.listingService.GetAvailableListings(c.Request().Context(), viewer, filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, listings)
}

// /listings/new
func (h *listingRoutesHandler) PostListing(c echo.Context) error {
	var body listingBody
	if ok, err := bindBody(c, h.validate, &body); !ok {
		return err
	}

	expiryDate, err := parseExpiry(body.ExpiryDate)
	if err != nil {
		return respondError(c, err)
	}

	input := &entity.CreateListingInput{
		Title: body.Title, Description: body.Description, Quantity: body.Quantity,
		Category: body.Category, LocationText: body.LocationText,
		Latitude: body.Latitude, Longitude: body.Longitude,
		ExpiryDate: expiryDate, ImageUrl: body.ImageUrl, DonorName: body.DonorName,
	}

	listing, err := h.listingService.CreateListing(c.Request().Context(), viewerOf(c), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, listing)
}

// /listings/my
func (h *listingRoutesHandler) GetMyListings(c echo.Context) error {
	listings, err := h.listingService.GetDonorDashboard(c.Request().Context(), viewerOf(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, listings)
}

// /listings/:listingId
func (h *listingRoutesHandler) GetListing(c echo.Context) error {
	viewer := viewerOf(c)
	location, err := queryLocation(c)
	if err != nil {
		return respondQuery(c, err)
	}
	viewer.Location = location

	listing, err := h.listingService.GetListingById(c.Request().Context(), viewer, c.Param("listingId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, listing)
}

// /listings/:listingId/edit
func (h *listingRoutesHandler) EditListing(c echo.Context) error {
	var body listingBody
	if ok, err := bindBody(c, h.validate, &body); !ok {
		return err
	}

	expiryDate, err := parseExpiry(body.ExpiryDate)
	if err != nil {
		return respondError(c, err)
	}

	input := &entity.EditListingInput{
		Title: body.Title, Description: body.Description, Quantity: body.Quantity,
		Category: body.Category, LocationText: body.LocationText,
		Latitude: body.Latitude, Longitude: body.Longitude,
		ExpiryDate: expiryDate, ImageUrl: body.ImageUrl,
	}

	listing, err := h.listingService.EditListingById(c.Request().Context(), viewerOf(c), c.Param("listingId"), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, listing)
}

type statusBody struct {
	Status string `json:"status" validate:"required,oneof=available reserved"`
}

// /listings/:listingId/status
func (h *listingRoutesHandler) SetListingStatus(c echo.Context) error {
	var body statusBody
	if ok, err := bindBody(c, h.validate, &body); !ok {
		return err
	}

	listing, err := h.listingService.SetListingStatus(c.Request().Context(), viewerOf(c), c.Param("listingId"), body.Status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, listing)
}

// /listings/:listingId
func (h *listingRoutesHandler) DeleteListing(c echo.Context) error {
	if err := h.listingService.DeleteListingById(c.Request().Context(), viewerOf(c), c.Param("listingId")); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// /listings/:listingId/requests
func (h *listingRoutesHandler) PostRequest(c echo.Context) error {
	request, err := h.requestService.CreateRequest(c.Request().Context(), viewerOf(c), c.Param("listingId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, request)
}
