package entity

import (
	"time"

	"github.com/google/uuid"
)

// listing fields frozen onto a request when it is accepted
type ListingSnapshot struct {
	Title        string     `json:"listingTitle" db:"listing_title"`
	Description  string     `json:"listingDescription" db:"listing_description"`
	Quantity     string     `json:"listingQuantity" db:"listing_quantity"`
	Category     string     `json:"listingCategory" db:"listing_category"`
	LocationText string     `json:"listingLocationText" db:"listing_location_text"`
	Latitude     *float64   `json:"listingLatitude" db:"listing_latitude"`
	Longitude    *float64   `json:"listingLongitude" db:"listing_longitude"`
	ImageUrl     *string    `json:"listingImageUrl" db:"listing_image_url"`
	ExpiryDate   *time.Time `json:"listingExpiryDate" db:"listing_expiry_date"`
}

func SnapshotOf(l *Listing) *ListingSnapshot {
	return &ListingSnapshot{
		Title:        l.Title,
		Description:  l.Description,
		Quantity:     l.Quantity,
		Category:     l.Category,
		LocationText: l.LocationText,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		ImageUrl:     l.ImageUrl,
		ExpiryDate:   l.ExpiryDate,
	}
}

// db model
type Request struct {
	Id             uuid.UUID        `json:"id" db:"id"`
	ListingId      uuid.UUID        `json:"listingId" db:"listing_id"`
	ListingDonorId string           `json:"listingDonorId" db:"listing_donor_id"`
	ReceiverId     string           `json:"receiverId" db:"receiver_id"`
	ReceiverName   string           `json:"receiverName" db:"receiver_name"`
	Status         string           `json:"status" db:"status"`
	RequestedAt    time.Time        `json:"requestedAt" db:"requested_at"`
	AcceptedAt     *time.Time       `json:"acceptedAt" db:"accepted_at"`
	DecidedAt      *time.Time       `json:"decidedAt" db:"decided_at"`
	Snapshot       *ListingSnapshot `json:"snapshot"`
}

// service + repo input model
type CreateRequestInput struct {
	ListingId    string
	ReceiverId   string
	ReceiverName string
	RequestedAt  time.Time
	// Status is always "pending"
	// ListingDonorId is copied from the listing by the store
}

// equality filters, empty fields are ignored
type RequestFilter struct {
	ListingId      string
	ListingIds     []string // any of; a non-nil empty slice matches nothing
	ReceiverId     string
	ListingDonorId string
	Status         string
}

// controller model
type RequestOutputModel struct {
	Id           string           `json:"id"`
	ListingId    string           `json:"listingId"`
	ReceiverId   string           `json:"receiverId"`
	ReceiverName string           `json:"receiverName"`
	Status       string           `json:"status"`
	RequestedAt  string           `json:"requestedAt"`
	AcceptedAt   string           `json:"acceptedAt,omitempty"`
	ListingTitle string           `json:"listingTitle,omitempty"`
	Snapshot     *ListingSnapshot `json:"snapshot,omitempty"`
	Actions      []string         `json:"actions"`
}

type RequestDetailOutputModel struct {
	Request *RequestOutputModel `json:"request"`
	Contact *ContactOutputModel `json:"contact,omitempty"`
}
