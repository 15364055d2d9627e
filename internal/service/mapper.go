package service

import (
	"time"

	"foodshare-api/internal/entity"
	"foodshare-api/internal/gate"
	"foodshare-api/internal/geo"
)

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}

func mapListing(l *entity.Listing, viewer *entity.Viewer) *entity.ListingOutputModel {
	out := &entity.ListingOutputModel{
		Id:           l.Id.String(),
		Title:        l.Title,
		Description:  l.Description,
		Quantity:     l.Quantity,
		Category:     l.Category,
		LocationText: l.LocationText,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		ExpiryDate:   formatTime(l.ExpiryDate),
		Status:       l.Status,
		DonorId:      l.DonorId,
		DonorName:    l.DonorName,
		ImageUrl:     l.ImageUrl,
		CreatedAt:    formatTime(&l.CreatedAt),
		Actions:      gate.ForListing(viewer, l).Names(),
	}

	if viewer != nil && viewer.Location != nil {
		if at, ok := l.Location(); ok {
			d := geo.DistanceKm(*viewer.Location, at)
			out.DistanceKm = &d
		}
	}

	return out
}

func mapListings(listings []entity.Listing, viewer *entity.Viewer) []entity.ListingOutputModel {
	s := make([]entity.ListingOutputModel, 0, len(listings))
	for i := range listings {
		s = append(s, *mapListing(&listings[i], viewer))
	}

	return s
}

// mapRequest fills the listing title from the snapshot, or from title when the listing is live.
func mapRequest(r *entity.Request, viewer *entity.Viewer, donorId string, title string) *entity.RequestOutputModel {
	out := &entity.RequestOutputModel{
		Id:           r.Id.String(),
		ListingId:    r.ListingId.String(),
		ReceiverId:   r.ReceiverId,
		ReceiverName: r.ReceiverName,
		Status:       r.Status,
		RequestedAt:  formatTime(&r.RequestedAt),
		AcceptedAt:   formatTime(r.AcceptedAt),
		ListingTitle: title,
		Snapshot:     r.Snapshot,
		Actions:      gate.ForRequest(viewer, r, donorId).Names(),
	}
	if r.Snapshot != nil {
		out.ListingTitle = r.Snapshot.Title
	}

	return out
}

func mapUser(u *entity.User) *entity.UserOutputModel {
	return &entity.UserOutputModel{
		Uid:       u.Uid,
		Role:      string(u.Role),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: formatTime(&u.CreatedAt),
	}
}
