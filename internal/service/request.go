package service

import (
	"context"
	"errors"
	"sort"

	"foodshare-api/internal/common"
	"foodshare-api/internal/entity"
	"foodshare-api/internal/expiry"
	"foodshare-api/internal/feed"
	"foodshare-api/internal/gate"
	"foodshare-api/internal/repo"
	"foodshare-api/internal/repo/repo_errors"

	"github.com/google/uuid"
	"github.com/uber-go/tally"
)

type RequestService struct {
	listingRepo repo.Listing
	requestRepo repo.Request
	userRepo    repo.User
	hub         *feed.Hub
	policy      *expiry.Policy
	reaper      *reaper

	created  tally.Counter
	accepted tally.Counter
	rejected tally.Counter
}

func NewRequestService(deps Dependencies, r *reaper) *RequestService {
	return &RequestService{
		listingRepo: deps.Repos.Listing,
		requestRepo: deps.Repos.Request,
		userRepo:    deps.Repos.User,
		hub:         deps.Hub,
		policy:      deps.Policy,
		reaper:      r,
		created:     deps.Scope.Counter("requests_created"),
		accepted:    deps.Scope.Counter("requests_accepted"),
		rejected:    deps.Scope.Counter("requests_rejected"),
	}
}

// lookupListing returns nil without error when the listing is gone.
func (s *RequestService) lookupListing(ctx context.Context, listingId string) (*entity.Listing, error) {
	l, err := s.listingRepo.GetListingById(ctx, listingId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, nil
		}

		return nil, storeError(err)
	}

	return l, nil
}

// load returns a request with its listing, nil when gone, and the donor owning it.
func (s *RequestService) load(ctx context.Context, requestId string) (*entity.Request, *entity.Listing, string, error) {
	r, err := s.requestRepo.GetRequestById(ctx, requestId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, nil, "", ErrRequestNotFound
		}

		return nil, nil, "", storeError(err)
	}

	l, err := s.lookupListing(ctx, r.ListingId.String())
	if err != nil {
		return nil, nil, "", err
	}

	return r, l, donorOf(r, l), nil
}

func donorOf(r *entity.Request, l *entity.Listing) string {
	if l != nil {
		return l.DonorId
	}

	return r.ListingDonorId
}

func titleOf(l *entity.Listing) string {
	if l == nil {
		return ""
	}

	return l.Title
}

func (s *RequestService) CreateRequest(ctx context.Context, viewer *entity.Viewer, listingId string) (*entity.RequestOutputModel, error) {
	if !viewer.Authenticated() {
		return nil, ErrSignInRequired
	}
	if viewer.Role != common.Receiver {
		return nil, ErrReceiversOnly
	}

	l, err := s.lookupListing(ctx, listingId)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrListingNotFound
	}
	if l.DonorId == viewer.Uid {
		return nil, ErrOwnListing
	}
	if s.reaper.reapOne(ctx, l) {
		return nil, ErrListingUnavailable
	}
	if !gate.ForListing(viewer, l).Has(gate.Request) {
		return nil, ErrListingUnavailable
	}

	id, err := s.requestRepo.CreateRequest(ctx, &entity.CreateRequestInput{
		ListingId:    listingId,
		ReceiverId:   viewer.Uid,
		ReceiverName: displayName(viewer.Name),
		RequestedAt:  s.policy.Now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, repo_errors.ErrConflict):
			return nil, ErrDuplicateRequest
		case errors.Is(err, repo_errors.ErrListingUnavailable):
			return nil, ErrListingUnavailable
		case errors.Is(err, repo_errors.ErrNotFound):
			return nil, ErrListingNotFound
		}

		return nil, storeError(err)
	}
	s.created.Inc(1)

	r, err := s.requestRepo.GetRequestById(ctx, id.String())
	if err != nil {
		return nil, storeError(err)
	}

	return mapRequest(r, viewer, l.DonorId, l.Title), nil
}

// decide checks that viewer may accept or reject the request and that it is still pending.
func (s *RequestService) decide(ctx context.Context, viewer *entity.Viewer, requestId string, action gate.Action) (*entity.Request, *entity.Listing, string, error) {
	if !viewer.Authenticated() {
		return nil, nil, "", ErrSignInRequired
	}

	r, l, donorId, err := s.load(ctx, requestId)
	if err != nil {
		return nil, nil, "", err
	}

	if donorId == "" || donorId != viewer.Uid || viewer.Role != common.Donor {
		return nil, nil, "", ErrNotListingOwner
	}

	if !gate.ForRequest(viewer, r, donorId).Has(action) {
		if action == gate.Accept && r.Status == common.Accepted {
			return nil, nil, "", ErrAlreadyAccepted
		}

		return nil, nil, "", ErrRequestNotPending
	}

	return r, l, donorId, nil
}

func (s *RequestService) AcceptRequest(ctx context.Context, viewer *entity.Viewer, requestId string) (*entity.RequestOutputModel, error) {
	r, l, donorId, err := s.decide(ctx, viewer, requestId, gate.Accept)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrListingNotFound
	}

	accepted, err := s.requestRepo.AcceptRequest(ctx, r.Id.String(), s.policy.Now())
	if err != nil {
		switch {
		case errors.Is(err, repo_errors.ErrRequestNotPending):
			return nil, ErrConcurrentDecision
		case errors.Is(err, repo_errors.ErrNotFound):
			return nil, ErrListingNotFound
		}

		return nil, storeError(err)
	}
	s.accepted.Inc(1)

	return mapRequest(accepted, viewer, donorId, ""), nil
}

func (s *RequestService) RejectRequest(ctx context.Context, viewer *entity.Viewer, requestId string) (*entity.RequestOutputModel, error) {
	r, l, donorId, err := s.decide(ctx, viewer, requestId, gate.Reject)
	if err != nil {
		return nil, err
	}

	if err = s.requestRepo.RejectRequest(ctx, r.Id.String(), s.policy.Now()); err != nil {
		switch {
		case errors.Is(err, repo_errors.ErrRequestNotPending):
			return nil, ErrConcurrentDecision
		case errors.Is(err, repo_errors.ErrNotFound):
			return nil, ErrRequestNotFound
		}

		return nil, storeError(err)
	}
	s.rejected.Inc(1)

	rejected, err := s.requestRepo.GetRequestById(ctx, r.Id.String())
	if err != nil {
		return nil, storeError(err)
	}

	return mapRequest(rejected, viewer, donorId, titleOf(l)), nil
}

func (s *RequestService) GetRequestById(ctx context.Context, viewer *entity.Viewer, requestId string) (*entity.RequestDetailOutputModel, error) {
	if !viewer.Authenticated() {
		return nil, ErrSignInRequired
	}

	r, l, donorId, err := s.load(ctx, requestId)
	if err != nil {
		return nil, err
	}

	out := mapRequest(r, viewer, donorId, titleOf(l))
	if len(out.Actions) == 0 {
		return nil, ErrNotRequestParty
	}

	detail := &entity.RequestDetailOutputModel{Request: out}
	if r.Status == common.Accepted {
		if detail.Contact, err = s.contactFor(ctx, viewer, r, donorId); err != nil {
			return nil, err
		}
	}

	return detail, nil
}

// contactFor discloses the other party of an accepted request.
func (s *RequestService) contactFor(ctx context.Context, viewer *entity.Viewer, r *entity.Request, donorId string) (*entity.ContactOutputModel, error) {
	counterpart, fallbackName := donorId, ""
	if viewer.Uid == donorId {
		counterpart, fallbackName = r.ReceiverId, r.ReceiverName
	}
	if counterpart == "" {
		return nil, nil
	}

	u, err := s.userRepo.GetUserById(ctx, counterpart)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			if fallbackName == "" {
				return nil, nil
			}

			return &entity.ContactOutputModel{Name: fallbackName}, nil
		}

		return nil, storeError(err)
	}

	return &entity.ContactOutputModel{Name: displayName(u.Name), Email: u.Email, Phone: u.Phone}, nil
}

func (s *RequestService) GetMyRequests(ctx context.Context, viewer *entity.Viewer) ([]entity.RequestOutputModel, error) {
	if !viewer.Authenticated() {
		return nil, ErrSignInRequired
	}

	requests, err := s.requestRepo.GetRequests(ctx, &entity.RequestFilter{ReceiverId: viewer.Uid})
	if err != nil {
		return nil, storeError(err)
	}

	listings := make(map[uuid.UUID]*entity.Listing)
	out := make([]entity.RequestOutputModel, 0, len(requests))
	for i := range requests {
		r := &requests[i]

		l, seen := listings[r.ListingId]
		if !seen && r.Snapshot == nil {
			if l, err = s.lookupListing(ctx, r.ListingId.String()); err != nil {
				return nil, err
			}
			listings[r.ListingId] = l
		}

		out = append(out, *mapRequest(r, viewer, donorOf(r, l), titleOf(l)))
	}

	return out, nil
}

func (s *RequestService) GetInbox(ctx context.Context, viewer *entity.Viewer, tab string) ([]entity.RequestOutputModel, error) {
	if !viewer.Authenticated() {
		return nil, ErrSignInRequired
	}
	if !gate.CanBrowseAsDonor(viewer) {
		return nil, ErrDonorsOnly
	}

	var keep func(r *entity.Request) bool
	switch tab {
	case "", common.ActiveTab:
		keep = func(r *entity.Request) bool { return r.Status == common.Pending }
	case common.HistoryTab:
		keep = func(r *entity.Request) bool { return r.Status != common.Pending }
	default:
		return nil, ErrInvalidTab
	}

	owned, err := s.listingRepo.GetListings(ctx, &entity.ListingFilter{DonorId: viewer.Uid})
	if err != nil {
		return nil, storeError(err)
	}
	listings := make(map[uuid.UUID]*entity.Listing, len(owned))
	for i := range owned {
		listings[owned[i].Id] = &owned[i]
	}

	candidates, err := s.requestRepo.GetRequests(ctx, &entity.RequestFilter{ListingDonorId: viewer.Uid})
	if err != nil {
		return nil, storeError(err)
	}
	// requests recorded without a donor are only reachable through the live listing
	if len(listings) > 0 {
		owned := make([]string, 0, len(listings))
		for id := range listings {
			owned = append(owned, id.String())
		}

		more, err := s.requestRepo.GetRequests(ctx, &entity.RequestFilter{ListingIds: owned})
		if err != nil {
			return nil, storeError(err)
		}
		for _, r := range more {
			if r.ListingDonorId == "" {
				candidates = append(candidates, r)
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RequestedAt.After(candidates[j].RequestedAt)
	})

	out := make([]entity.RequestOutputModel, 0, len(candidates))
	for i := range candidates {
		r := &candidates[i]
		if !keep(r) {
			continue
		}

		l, ok := listings[r.ListingId]
		if !ok {
			// not among the donor's listings: either gone or someone else's
			if l, err = s.lookupListing(ctx, r.ListingId.String()); err != nil {
				return nil, err
			}
		}
		if !inInbox(r, l, viewer.Uid) {
			continue
		}

		out = append(out, *mapRequest(r, viewer, viewer.Uid, titleOf(l)))
	}

	return out, nil
}

// inInbox decides whether r belongs to donorId's inbox. l is nil when the listing is gone; a
// snapshot then proves the request was accepted by the listing owner.
func inInbox(r *entity.Request, l *entity.Listing, donorId string) bool {
	if l != nil {
		return l.DonorId == donorId
	}

	if r.Status == common.Pending || r.Snapshot == nil {
		return false
	}

	return r.ListingDonorId == "" || r.ListingDonorId == donorId
}

func (s *RequestService) WatchMyRequests(ctx context.Context, viewer *entity.Viewer) (*Watch[entity.RequestOutputModel], error) {
	return startWatch(ctx, s.hub, []feed.Collection{feed.Requests, feed.Listings}, requestKey,
		func(ctx context.Context) ([]entity.RequestOutputModel, error) {
			return s.GetMyRequests(ctx, viewer)
		})
}

func (s *RequestService) WatchInbox(ctx context.Context, viewer *entity.Viewer, tab string) (*Watch[entity.RequestOutputModel], error) {
	return startWatch(ctx, s.hub, []feed.Collection{feed.Requests, feed.Listings}, requestKey,
		func(ctx context.Context) ([]entity.RequestOutputModel, error) {
			return s.GetInbox(ctx, viewer, tab)
		})
}
