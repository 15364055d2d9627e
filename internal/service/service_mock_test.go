package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodshare-api/internal/common"
	"foodshare-api/internal/entity"
	"foodshare-api/internal/expiry"
	"foodshare-api/internal/repo"
	"foodshare-api/internal/repo/mocks"
	"foodshare-api/internal/repo/repo_errors"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
)

type mockedRepos struct {
	listings *mocks.MockListing
	requests *mocks.MockRequest
	users    *mocks.MockUser
	chatLogs *mocks.MockChatLog
}

func newMockedServices(t *testing.T, now time.Time) (*Services, mockedRepos, tally.TestScope) {
	ctrl := gomock.NewController(t)
	m := mockedRepos{
		listings: mocks.NewMockListing(ctrl),
		requests: mocks.NewMockRequest(ctrl),
		users:    mocks.NewMockUser(ctrl),
		chatLogs: mocks.NewMockChatLog(ctrl),
	}
	scope := tally.NewTestScope("", nil)

	services := NewServices(Dependencies{
		Repos: &repo.Repositories{
			Listing: m.listings,
			Request: m.requests,
			User:    m.users,
			ChatLog: m.chatLogs,
		},
		Policy: expiry.NewPolicy(func() time.Time { return now }),
		Scope:  scope,
	})

	return services, m, scope
}

var errConnection = errors.New("dial tcp: connection refused")

func TestStoreFailureIsStoreUnavailable(t *testing.T) {
	services, m, _ := newMockedServices(t, time.Now())
	ctx := context.Background()

	m.listings.EXPECT().GetListings(gomock.Any(), gomock.Any()).Return(nil, errConnection)
	_, err := services.Listing.GetAvailableListings(ctx, &entity.Viewer{}, nil)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, errConnection)

	m.users.EXPECT().GetUserById(gomock.Any(), "u1").Return(nil, errConnection)
	_, err = services.User.ResolveViewer(ctx, "u1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestFailedAcceptDoesNotDeleteListing(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	services, m, scope := newMockedServices(t, now)
	ctx := context.Background()

	listingId, requestId := uuid.New(), uuid.New()
	deadline := now.Add(time.Hour)
	listing := &entity.Listing{Id: listingId, DonorId: "d1", Status: common.Available, ExpiryDate: &deadline}
	request := &entity.Request{Id: requestId, ListingId: listingId, ListingDonorId: "d1", ReceiverId: "r1", Status: common.Pending}

	m.requests.EXPECT().GetRequestById(gomock.Any(), requestId.String()).Return(request, nil)
	m.listings.EXPECT().GetListingById(gomock.Any(), listingId.String()).Return(listing, nil)
	m.requests.EXPECT().AcceptRequest(gomock.Any(), requestId.String(), now).Return(nil, errConnection)
	m.listings.EXPECT().DeleteListingById(gomock.Any(), gomock.Any()).Times(0)
	m.listings.EXPECT().DeleteExpiredListingById(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := services.Request.AcceptRequest(ctx, &entity.Viewer{Uid: "d1", Role: common.Donor}, requestId.String())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, int64(0), counterValue(scope, "requests_accepted"))
}

func TestReapLosingRaceIsBenign(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	services, m, scope := newMockedServices(t, now)

	past := now.Add(-time.Minute)
	stale := entity.Listing{Id: uuid.New(), DonorId: "d1", Status: common.Available, ExpiryDate: &past}

	m.listings.EXPECT().GetListings(gomock.Any(), gomock.Any()).Return([]entity.Listing{stale}, nil)
	// an accept, another reader or an extending edit got there first
	m.listings.EXPECT().DeleteExpiredListingById(gomock.Any(), stale.Id.String(), now).Return(false, nil)

	got, err := services.Listing.GetAvailableListings(context.Background(), &entity.Viewer{}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, int64(0), counterValue(scope, "listings_reaped"))
}

func TestReapFailureStillHidesListing(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	services, m, _ := newMockedServices(t, now)

	past := now.Add(-time.Minute)
	stale := entity.Listing{Id: uuid.New(), DonorId: "d1", Status: common.Available, ExpiryDate: &past}

	m.listings.EXPECT().GetListings(gomock.Any(), gomock.Any()).Return([]entity.Listing{stale}, nil)
	m.listings.EXPECT().DeleteExpiredListingById(gomock.Any(), stale.Id.String(), now).Return(false, errConnection)

	got, err := services.Listing.GetAvailableListings(context.Background(), &entity.Viewer{}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListingWithoutExpiryIsNeverReaped(t *testing.T) {
	services, m, _ := newMockedServices(t, time.Now())

	legacy := entity.Listing{Id: uuid.New(), DonorId: "d1", Status: common.Available}
	m.listings.EXPECT().GetListings(gomock.Any(), gomock.Any()).Return([]entity.Listing{legacy}, nil)

	got, err := services.Listing.GetAvailableListings(context.Background(), &entity.Viewer{}, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestConcurrentDecisionIsConflict(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	services, m, _ := newMockedServices(t, now)

	listingId, requestId := uuid.New(), uuid.New()
	listing := &entity.Listing{Id: listingId, DonorId: "d1", Status: common.Available}
	request := &entity.Request{Id: requestId, ListingId: listingId, ListingDonorId: "d1", Status: common.Pending}

	m.requests.EXPECT().GetRequestById(gomock.Any(), requestId.String()).Return(request, nil)
	m.listings.EXPECT().GetListingById(gomock.Any(), listingId.String()).Return(listing, nil)
	m.requests.EXPECT().RejectRequest(gomock.Any(), requestId.String(), now).Return(repo_errors.ErrRequestNotPending)

	_, err := services.Request.RejectRequest(context.Background(), &entity.Viewer{Uid: "d1", Role: common.Donor}, requestId.String())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestChatLogFailureDoesNotFailReply(t *testing.T) {
	services, m, _ := newMockedServices(t, time.Now())

	m.chatLogs.EXPECT().CreateChatLog(gomock.Any(), gomock.Any()).Return(errConnection)

	out, err := services.Chat.Chat(context.Background(), &entity.Viewer{}, "s1", "is it safe?")
	require.NoError(t, err)
	require.NotNil(t, out.Intent)
	assert.Equal(t, "safety", *out.Intent)
}

func TestInboxReadsDonorlessRequestsInOneQuery(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	services, m, _ := newMockedServices(t, now)

	owned := []entity.Listing{
		{Id: uuid.New(), DonorId: "d1", Title: "Rice", Status: common.Available},
		{Id: uuid.New(), DonorId: "d1", Title: "Bread", Status: common.Available},
		{Id: uuid.New(), DonorId: "d1", Title: "Soup", Status: common.Available},
	}
	legacy := entity.Request{Id: uuid.New(), ListingId: owned[1].Id, ReceiverId: "r1", Status: common.Pending, RequestedAt: now}

	m.listings.EXPECT().GetListings(gomock.Any(), &entity.ListingFilter{DonorId: "d1"}).Return(owned, nil)
	m.requests.EXPECT().GetRequests(gomock.Any(), &entity.RequestFilter{ListingDonorId: "d1"}).Return(nil, nil)
	m.requests.EXPECT().GetRequests(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter *entity.RequestFilter) ([]entity.Request, error) {
			assert.ElementsMatch(t, []string{owned[0].Id.String(), owned[1].Id.String(), owned[2].Id.String()}, filter.ListingIds)
			return []entity.Request{legacy}, nil
		}).Times(1)

	got, err := services.Request.GetInbox(context.Background(), &entity.Viewer{Uid: "d1", Role: common.Donor}, common.ActiveTab)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, legacy.Id.String(), got[0].Id)
	assert.Equal(t, "Bread", got[0].ListingTitle)
}

func TestInboxWithoutListingsSkipsListingQuery(t *testing.T) {
	services, m, _ := newMockedServices(t, time.Now())

	m.listings.EXPECT().GetListings(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.requests.EXPECT().GetRequests(gomock.Any(), &entity.RequestFilter{ListingDonorId: "d1"}).Return(nil, nil).Times(1)

	got, err := services.Request.GetInbox(context.Background(), &entity.Viewer{Uid: "d1", Role: common.Donor}, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
