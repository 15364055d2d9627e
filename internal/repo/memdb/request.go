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

func (s *Store) CreateRequest(ctx context.Context, input *entity.CreateRequestInput) (uuid.UUID, error) {
	listingId, err := parseId(input.ListingId)
	if err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	l, ok := s.listings[listingId]
	if !ok {
		s.mu.Unlock()
		return uuid.Nil, repo_errors.ErrNotFound
	}

	if l.Status != common.Available || (l.ExpiryDate != nil && l.ExpiryDate.Before(input.RequestedAt)) {
		s.mu.Unlock()
		return uuid.Nil, repo_errors.ErrListingUnavailable
	}

	for _, r := range s.requests {
		if r.ListingId == listingId && r.ReceiverId == input.ReceiverId && r.Status == common.Pending {
			s.mu.Unlock()
			return uuid.Nil, repo_errors.ErrConflict
		}
	}

	r := entity.Request{
		Id:             uuid.New(),
		ListingId:      listingId,
		ListingDonorId: l.DonorId,
		ReceiverId:     input.ReceiverId,
		ReceiverName:   input.ReceiverName,
		Status:         common.Pending,
		RequestedAt:    input.RequestedAt,
	}
	s.requests[r.Id] = r
	s.mu.Unlock()

	s.publish(feed.Change{Collection: feed.Requests, Kind: feed.Added, Id: r.Id.String()})

	return r.Id, nil
}

func (s *Store) GetRequestById(ctx context.Context, id string) (*entity.Request, error) {
	uuidForm, err := parseId(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	r, ok := s.requests[uuidForm]
	s.mu.RUnlock()
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	r = cloneRequest(r)

	return &r, nil
}

func (s *Store) GetRequests(ctx context.Context, filter *entity.RequestFilter) ([]entity.Request, error) {
	if filter == nil {
		filter = &entity.RequestFilter{}
	}

	var listingIds map[string]struct{}
	if filter.ListingIds != nil {
		listingIds = make(map[string]struct{}, len(filter.ListingIds))
		for _, id := range filter.ListingIds {
			listingIds[id] = struct{}{}
		}
	}

	s.mu.RLock()
	requests := make([]entity.Request, 0)
	for _, r := range s.requests {
		if filter.ListingId != "" && r.ListingId.String() != filter.ListingId {
			continue
		}
		if listingIds != nil {
			if _, ok := listingIds[r.ListingId.String()]; !ok {
				continue
			}
		}
		if filter.ReceiverId != "" && r.ReceiverId != filter.ReceiverId {
			continue
		}
		if filter.ListingDonorId != "" && r.ListingDonorId != filter.ListingDonorId {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		requests = append(requests, cloneRequest(r))
	}
	s.mu.RUnlock()

	sort.Slice(requests, func(i, j int) bool {
		if requests[i].RequestedAt.Equal(requests[j].RequestedAt) {
			return requests[i].Id.String() < requests[j].Id.String()
		}

		return requests[i].RequestedAt.After(requests[j].RequestedAt)
	})

	return requests, nil
}

func (s *Store) AcceptRequest(ctx context.Context, requestId string, acceptedAt time.Time) (*entity.Request, error) {
	uuidForm, err := parseId(requestId)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	r, ok := s.requests[uuidForm]
	if !ok {
		s.mu.Unlock()
		return nil, repo_errors.ErrNotFound
	}
	if r.Status != common.Pending {
		s.mu.Unlock()
		return nil, repo_errors.ErrRequestNotPending
	}

	l, ok := s.listings[r.ListingId]
	if !ok {
		s.mu.Unlock()
		return nil, repo_errors.ErrNotFound
	}

	at := acceptedAt
	r.Status = common.Accepted
	r.AcceptedAt = &at
	r.DecidedAt = cloneTime(&at)
	r.Snapshot = entity.SnapshotOf(&l)
	s.requests[uuidForm] = r
	delete(s.listings, l.Id)
	s.mu.Unlock()

	s.publish(
		feed.Change{Collection: feed.Requests, Kind: feed.Modified, Id: requestId},
		feed.Change{Collection: feed.Listings, Kind: feed.Removed, Id: l.Id.String()},
	)

	r = cloneRequest(r)

	return &r, nil
}

func (s *Store) RejectRequest(ctx context.Context, requestId string, decidedAt time.Time) error {
	uuidForm, err := parseId(requestId)
	if err != nil {
		return err
	}

	s.mu.Lock()
	r, ok := s.requests[uuidForm]
	if !ok {
		s.mu.Unlock()
		return repo_errors.ErrNotFound
	}
	if r.Status != common.Pending {
		s.mu.Unlock()
		return repo_errors.ErrRequestNotPending
	}

	at := decidedAt
	r.Status = common.Rejected
	r.DecidedAt = &at
	s.requests[uuidForm] = r
	s.mu.Unlock()

	s.publish(feed.Change{Collection: feed.Requests, Kind: feed.Modified, Id: requestId})

	return nil
}
