package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"foodshare-api/internal/common"
	"foodshare-api/internal/entity"
	"foodshare-api/internal/feed"
	"foodshare-api/internal/gate"
	"foodshare-api/internal/geo"
	"foodshare-api/internal/repo"
	"foodshare-api/internal/repo/repo_errors"

	"github.com/uber-go/tally"
)

type ListingService struct {
	listingRepo repo.Listing
	requestRepo repo.Request
	hub         *feed.Hub
	reaper      *reaper
	created     tally.Counter
}

func NewListingService(deps Dependencies, r *reaper) *ListingService {
	return &ListingService{
		listingRepo: deps.Repos.Listing,
		requestRepo: deps.Repos.Request,
		hub:         deps.Hub,
		reaper:      r,
		created:     deps.Scope.Counter("listings_created"),
	}
}

type listingFields struct {
	title, quantity, locationText, category *string
	latitude, longitude                     *float64
	hasExpiry                               bool
}

// validateListing trims the text fields in place and defaults the category to veg.
func validateListing(f listingFields) error {
	*f.title = strings.TrimSpace(*f.title)
	*f.quantity = strings.TrimSpace(*f.quantity)
	*f.locationText = strings.TrimSpace(*f.locationText)
	if *f.title == "" || *f.quantity == "" || *f.locationText == "" || !f.hasExpiry {
		return ErrMissingListingFields
	}

	if f.latitude == nil || f.longitude == nil || !(geo.Point{Lat: *f.latitude, Lon: *f.longitude}).Valid() {
		return ErrMissingCoordinates
	}

	switch *f.category {
	case "":
		*f.category = common.Veg
	case common.Veg, common.NonVeg:
	default:
		return ErrInvalidCategory
	}

	return nil
}

func validCategoryFilter(category string) bool {
	return category == "" || category == common.Veg || category == common.NonVeg
}

func (s *ListingService) getListing(ctx context.Context, listingId string) (*entity.Listing, error) {
	l, err := s.listingRepo.GetListingById(ctx, listingId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrListingNotFound
		}

		return nil, storeError(err)
	}

	return l, nil
}

// getOwnListing loads a listing the viewer must own.
func (s *ListingService) getOwnListing(ctx context.Context, viewer *entity.Viewer, listingId string) (*entity.Listing, error) {
	if !viewer.Authenticated() {
		return nil, ErrSignInRequired
	}

	l, err := s.getListing(ctx, listingId)
	if err != nil {
		return nil, err
	}

	if !gate.ForListing(viewer, l).Has(gate.Edit) {
		return nil, ErrNotListingOwner
	}

	return l, nil
}

func (s *ListingService) CreateListing(ctx context.Context, viewer *entity.Viewer, input *entity.CreateListingInput) (*entity.ListingOutputModel, error) {
	if !viewer.Authenticated() {
		return nil, ErrSignInRequired
	}
	if !gate.CanCreateListing(viewer) {
		return nil, ErrDonorsOnly
	}

	err := validateListing(listingFields{
		title:        &input.Title,
		quantity:     &input.Quantity,
		locationText: &input.LocationText,
		category:     &input.Category,
		latitude:     input.Latitude,
		longitude:    input.Longitude,
		hasExpiry:    input.ExpiryDate != nil,
	})
	if err != nil {
		return nil, err
	}

	input.DonorId = viewer.Uid
	if strings.TrimSpace(input.DonorName) == "" {
		input.DonorName = displayName(viewer.Name)
	}

	id, err := s.listingRepo.CreateListing(ctx, input)
	if err != nil {
		return nil, storeError(err)
	}
	s.created.Inc(1)

	l, err := s.getListing(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapListing(l, viewer), nil
}

func (s *ListingService) EditListingById(ctx context.Context, viewer *entity.Viewer, listingId string, input *entity.EditListingInput) (*entity.ListingOutputModel, error) {
	if _, err := s.getOwnListing(ctx, viewer, listingId); err != nil {
		return nil, err
	}

	err := validateListing(listingFields{
		title:        &input.Title,
		quantity:     &input.Quantity,
		locationText: &input.LocationText,
		category:     &input.Category,
		latitude:     input.Latitude,
		longitude:    input.Longitude,
		hasExpiry:    input.ExpiryDate != nil,
	})
	if err != nil {
		return nil, err
	}

	if err = s.listingRepo.EditListingById(ctx, listingId, input); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrListingNotFound
		}

		return nil, storeError(err)
	}

	l, err := s.getListing(ctx, listingId)
	if err != nil {
		return nil, err
	}

	return mapListing(l, viewer), nil
}

func (s *ListingService) DeleteListingById(ctx context.Context, viewer *entity.Viewer, listingId string) error {
	if _, err := s.getOwnListing(ctx, viewer, listingId); err != nil {
		return err
	}

	// false means someone else removed it since the ownership check
	if _, err := s.listingRepo.DeleteListingById(ctx, listingId); err != nil {
		return storeError(err)
	}

	return nil
}

// SetListingStatus lets the owner mark a listing reserved or put it back on the feed. A reserved
// listing takes no requests and is never reaped.
func (s *ListingService) SetListingStatus(ctx context.Context, viewer *entity.Viewer, listingId string, status string) (*entity.ListingOutputModel, error) {
	if status != common.Available && status != common.Reserved {
		return nil, ErrInvalidStatus
	}

	l, err := s.getOwnListing(ctx, viewer, listingId)
	if err != nil {
		return nil, err
	}
	if l.Status == status {
		return mapListing(l, viewer), nil
	}

	if err = s.listingRepo.UpdateListingStatusById(ctx, listingId, status); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrListingNotFound
		}

		return nil, storeError(err)
	}

	if l, err = s.getListing(ctx, listingId); err != nil {
		return nil, err
	}

	return mapListing(l, viewer), nil
}

func (s *ListingService) GetListingById(ctx context.Context, viewer *entity.Viewer, listingId string) (*entity.ListingDetailOutputModel, error) {
	l, err := s.listingRepo.GetListingById(ctx, listingId)
	if err != nil && !errors.Is(err, repo_errors.ErrNotFound) {
		return nil, storeError(err)
	}

	if l != nil && s.reaper.reapOne(ctx, l) {
		l = nil
	}

	if l == nil {
		return s.getGoneListing(ctx, viewer, listingId)
	}

	listing := mapListing(l, viewer)
	if len(listing.Actions) == 0 {
		return nil, ErrListingNotFound
	}

	detail := &entity.ListingDetailOutputModel{Listing: listing}
	if viewer.Authenticated() && viewer.Role == common.Receiver {
		mine, err := s.requestRepo.GetRequests(ctx, &entity.RequestFilter{ListingId: listingId, ReceiverId: viewer.Uid})
		if err != nil {
			return nil, storeError(err)
		}
		if len(mine) > 0 {
			detail.MyRequest = mapRequest(&mine[0], viewer, l.DonorId, l.Title)
		}
	}

	return detail, nil
}

// getGoneListing serves the detail of a deleted listing to the parties of its accepted request.
func (s *ListingService) getGoneListing(ctx context.Context, viewer *entity.Viewer, listingId string) (*entity.ListingDetailOutputModel, error) {
	if !viewer.Authenticated() {
		return nil, ErrListingNotFound
	}

	accepted, err := s.requestRepo.GetRequests(ctx, &entity.RequestFilter{ListingId: listingId, Status: common.Accepted})
	if err != nil {
		return nil, storeError(err)
	}

	for i := range accepted {
		r := &accepted[i]
		if r.Snapshot == nil || (r.ReceiverId != viewer.Uid && r.ListingDonorId != viewer.Uid) {
			continue
		}

		out := mapRequest(r, viewer, r.ListingDonorId, "")
		detail := &entity.ListingDetailOutputModel{AcceptedRequest: out}
		if r.ReceiverId == viewer.Uid {
			detail.MyRequest = out
		}

		return detail, nil
	}

	return nil, ErrListingNotFound
}

func (s *ListingService) GetAvailableListings(ctx context.Context, viewer *entity.Viewer, filter *entity.FeedFilter) ([]entity.ListingOutputModel, error) {
	if filter == nil {
		filter = &entity.FeedFilter{}
	}
	if !validCategoryFilter(filter.Category) {
		return nil, ErrInvalidCategory
	}
	if d := filter.MaxDistanceKm; d != nil && (math.IsNaN(*d) || math.IsInf(*d, 0) || *d < 0) {
		return nil, ErrInvalidDistance
	}

	listingFilter := &entity.ListingFilter{Status: common.Available, Category: filter.Category}
	// donors only browse their own offers in the feed
	if gate.CanBrowseAsDonor(viewer) {
		listingFilter.DonorId = viewer.Uid
	}

	listings, err := s.listingRepo.GetListings(ctx, listingFilter)
	if err != nil {
		return nil, storeError(err)
	}
	listings = s.reaper.reap(ctx, listings)

	visible := make([]entity.Listing, 0, len(listings))
	for i := range listings {
		l := &listings[i]
		if !gate.ForListing(viewer, l).Has(gate.View) {
			continue
		}
		// without a viewer location the distance filter does not apply
		if filter.MaxDistanceKm != nil && viewer != nil && viewer.Location != nil {
			at, ok := l.Location()
			if !ok || !geo.Within(*viewer.Location, at, *filter.MaxDistanceKm) {
				continue
			}
		}
		visible = append(visible, *l)
	}

	return mapListings(entity.Paginate(visible, filter.Pagination), viewer), nil
}

func (s *ListingService) GetDonorDashboard(ctx context.Context, viewer *entity.Viewer) ([]entity.ListingOutputModel, error) {
	if !viewer.Authenticated() {
		return nil, ErrSignInRequired
	}
	if !gate.CanBrowseAsDonor(viewer) {
		return nil, ErrDonorsOnly
	}

	listings, err := s.listingRepo.GetListings(ctx, &entity.ListingFilter{DonorId: viewer.Uid})
	if err != nil {
		return nil, storeError(err)
	}

	return mapListings(s.reaper.reap(ctx, listings), viewer), nil
}

func (s *ListingService) WatchAvailableListings(ctx context.Context, viewer *entity.Viewer, filter *entity.FeedFilter) (*Watch[entity.ListingOutputModel], error) {
	return startWatch(ctx, s.hub, []feed.Collection{feed.Listings}, listingKey,
		func(ctx context.Context) ([]entity.ListingOutputModel, error) {
			return s.GetAvailableListings(ctx, viewer, filter)
		})
}

func (s *ListingService) WatchDonorDashboard(ctx context.Context, viewer *entity.Viewer) (*Watch[entity.ListingOutputModel], error) {
	return startWatch(ctx, s.hub, []feed.Collection{feed.Listings}, listingKey,
		func(ctx context.Context) ([]entity.ListingOutputModel, error) {
			return s.GetDonorDashboard(ctx, viewer)
		})
}

func displayName(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}

	return common.AnonymousName
}
