package memdb

import (
	"context"
	"sort"
	"time"

	"foodshare-api/internal/common"
	"foodshare-api/internal/entity"
	"foodshare-api/internal/feed"
	"foodshare-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

func (s *Store) CreateListing(ctx context.Context, input *entity.CreateListingInput) (uuid.UUID, error) {
	now := s.now()
	l := entity.Listing{
		Id:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		Quantity:     input.Quantity,
		Category:     input.Category,
		LocationText: input.LocationText,
		Latitude:     cloneFloat(input.Latitude),
		Longitude:    cloneFloat(input.Longitude),
		ExpiryDate:   cloneTime(input.ExpiryDate),
		Status:       common.Available,
		DonorId:      input.DonorId,
		DonorName:    input.DonorName,
		ImageUrl:     cloneString(input.ImageUrl),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.mu.Lock()
	s.listings[l.Id] = l
	s.mu.Unlock()

	s.publish(feed.Change{Collection: feed.Listings, Kind: feed.Added, Id: l.Id.String()})

	return l.Id, nil
}

func (s *Store) GetListingById(ctx context.Context, id string) (*entity.Listing, error) {
	uuidForm, err := parseId(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	l, ok := s.listings[uuidForm]
	s.mu.RUnlock()
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	l = cloneListing(l)

	return &l, nil
}

func (s *Store) EditListingById(ctx context.Context, id string, input *entity.EditListingInput) error {
	uuidForm, err := parseId(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	l, ok := s.listings[uuidForm]
	if !ok {
		s.mu.Unlock()
		return repo_errors.ErrNotFound
	}

	l.Title = input.Title
	l.Description = input.Description
	l.Quantity = input.Quantity
	l.Category = input.Category
	l.LocationText = input.LocationText
	l.Latitude = cloneFloat(input.Latitude)
	l.Longitude = cloneFloat(input.Longitude)
	l.ExpiryDate = cloneTime(input.ExpiryDate)
	l.ImageUrl = cloneString(input.ImageUrl)
	l.UpdatedAt = s.now()
	s.listings[uuidForm] = l
	s.mu.Unlock()

	s.publish(feed.Change{Collection: feed.Listings, Kind: feed.Modified, Id: id})

	return nil
}

func (s *Store) UpdateListingStatusById(ctx context.Context, id string, newStatus string) error {
	uuidForm, err := parseId(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	l, ok := s.listings[uuidForm]
	if !ok {
		s.mu.Unlock()
		return repo_errors.ErrNotFound
	}
	l.Status = newStatus
	l.UpdatedAt = s.now()
	s.listings[uuidForm] = l
	s.mu.Unlock()

	s.publish(feed.Change{Collection: feed.Listings, Kind: feed.Modified, Id: id})

	return nil
}

func (s *Store) DeleteListingById(ctx context.Context, id string) (bool, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	s.mu.Lock()
	_, ok := s.listings[uuidForm]
	delete(s.listings, uuidForm)
	s.mu.Unlock()

	if ok {
		s.publish(feed.Change{Collection: feed.Listings, Kind: feed.Removed, Id: id})
	}

	return ok, nil
}

func (s *Store) DeleteExpiredListingById(ctx context.Context, id string, now time.Time) (bool, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	s.mu.Lock()
	l, ok := s.listings[uuidForm]
	expired := ok && l.Status == common.Available && l.ExpiryDate != nil && l.ExpiryDate.Before(now)
	if expired {
		delete(s.listings, uuidForm)
	}
	s.mu.Unlock()

	if expired {
		s.publish(feed.Change{Collection: feed.Listings, Kind: feed.Removed, Id: id})
	}

	return expired, nil
}

func (s *Store) GetListings(ctx context.Context, filter *entity.ListingFilter) ([]entity.Listing, error) {
	if filter == nil {
		filter = &entity.ListingFilter{}
	}

	s.mu.RLock()
	listings := make([]entity.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.DonorId != "" && l.DonorId != filter.DonorId {
			continue
		}
		if filter.Category != "" && l.Category != filter.Category {
			continue
		}
		listings = append(listings, cloneListing(l))
	}
	s.mu.RUnlock()

	sort.Slice(listings, func(i, j int) bool {
		if listings[i].CreatedAt.Equal(listings[j].CreatedAt) {
			return listings[i].Id.String() < listings[j].Id.String()
		}

		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})

	return listings, nil
}
