package entity

import (
	"time"

	"foodshare-api/internal/geo"

	"github.com/google/uuid"
)

// db model
type Listing struct {
	Id           uuid.UUID  `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	Description  string     `json:"description" db:"description"`
	Quantity     string     `json:"quantity" db:"quantity"`
	Category     string     `json:"category" db:"category"`
	LocationText string     `json:"locationText" db:"location_text"`
	Latitude     *float64   `json:"latitude" db:"latitude"`
	Longitude    *float64   `json:"longitude" db:"longitude"`
	ExpiryDate   *time.Time `json:"expiryDate" db:"expiry_date"`
	Status       string     `json:"status" db:"status"`
	DonorId      string     `json:"donorId" db:"donor_id"`
	DonorName    string     `json:"donorName" db:"donor_name"`
	ImageUrl     *string    `json:"imageUrl" db:"image_url"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// Location returns the listing coordinates when both are set.
func (l *Listing) Location() (geo.Point, bool) {
	if l.Latitude == nil || l.Longitude == nil {
		return geo.Point{}, false
	}

	return geo.Point{Lat: *l.Latitude, Lon: *l.Longitude}, true
}

// service + repo input model
type CreateListingInput struct {
	Title        string
	Description  string
	Quantity     string
	Category     string
	LocationText string
	Latitude     *float64
	Longitude    *float64
	ExpiryDate   *time.Time
	ImageUrl     *string
	DonorId      string // set from the viewer
	DonorName    string // set from the profile
	// Status is always "available"
	// Id and CreatedAt are set by the store
}

type EditListingInput struct {
	Title        string
	Description  string
	Quantity     string
	Category     string
	LocationText string
	Latitude     *float64
	Longitude    *float64
	ExpiryDate   *time.Time
	ImageUrl     *string
}

// equality filters, empty fields are ignored
type ListingFilter struct {
	Status   string
	DonorId  string
	Category string
}

// feed query as seen by the engine
type FeedFilter struct {
	Category      string
	MaxDistanceKm *float64
	Pagination    *PaginationInput
}

// controller model
type ListingOutputModel struct {
	Id           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Quantity     string   `json:"quantity"`
	Category     string   `json:"category"`
	LocationText string   `json:"locationText"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	ExpiryDate   string   `json:"expiryDate,omitempty"`
	Status       string   `json:"status"`
	DonorId      string   `json:"donorId"`
	DonorName    string   `json:"donorName"`
	ImageUrl     *string  `json:"imageUrl"`
	CreatedAt    string   `json:"createdAt"`
	DistanceKm   *float64 `json:"distanceKm,omitempty"`
	Actions      []string `json:"actions"`
}

// Listing is nil once the listing is gone; AcceptedRequest then carries its snapshot.
type ListingDetailOutputModel struct {
	Listing         *ListingOutputModel `json:"listing"`
	MyRequest       *RequestOutputModel `json:"myRequest,omitempty"`
	AcceptedRequest *RequestOutputModel `json:"acceptedRequest,omitempty"`
}
