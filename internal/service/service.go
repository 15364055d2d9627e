package service

import (
	"context"

	"foodshare-api/internal/entity"
	"foodshare-api/internal/expiry"
	"foodshare-api/internal/feed"
	"foodshare-api/internal/repo"

	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

type Diagnostics interface {
	Ping() error
}

type Listing interface {
	CreateListing(ctx context.Context, viewer *entity.Viewer, input *entity.CreateListingInput) (*entity.ListingOutputModel, error)
	EditListingById(ctx context.Context, viewer *entity.Viewer, listingId string, input *entity.EditListingInput) (*entity.ListingOutputModel, error)
	DeleteListingById(ctx context.Context, viewer *entity.Viewer, listingId string) error
	SetListingStatus(ctx context.Context, viewer *entity.Viewer, listingId string, status string) (*entity.ListingOutputModel, error)

	GetListingById(ctx context.Context, viewer *entity.Viewer, listingId string) (*entity.ListingDetailOutputModel, error)
	GetAvailableListings(ctx context.Context, viewer *entity.Viewer, filter *entity.FeedFilter) ([]entity.ListingOutputModel, error)
	GetDonorDashboard(ctx context.Context, viewer *entity.Viewer) ([]entity.ListingOutputModel, error)

	WatchAvailableListings(ctx context.Context, viewer *entity.Viewer, filter *entity.FeedFilter) (*Watch[entity.ListingOutputModel], error)
	WatchDonorDashboard(ctx context.Context, viewer *entity.Viewer) (*Watch[entity.ListingOutputModel], error)
}

type Request interface {
	CreateRequest(ctx context.Context, viewer *entity.Viewer, listingId string) (*entity.RequestOutputModel, error)
	AcceptRequest(ctx context.Context, viewer *entity.Viewer, requestId string) (*entity.RequestOutputModel, error)
	RejectRequest(ctx context.Context, viewer *entity.Viewer, requestId string) (*entity.RequestOutputModel, error)

	GetRequestById(ctx context.Context, viewer *entity.Viewer, requestId string) (*entity.RequestDetailOutputModel, error)
	GetMyRequests(ctx context.Context, viewer *entity.Viewer) ([]entity.RequestOutputModel, error)
	GetInbox(ctx context.Context, viewer *entity.Viewer, tab string) ([]entity.RequestOutputModel, error)

	WatchMyRequests(ctx context.Context, viewer *entity.Viewer) (*Watch[entity.RequestOutputModel], error)
	WatchInbox(ctx context.Context, viewer *entity.Viewer, tab string) (*Watch[entity.RequestOutputModel], error)
}

type User interface {
	ResolveViewer(ctx context.Context, uid string) (*entity.Viewer, error)
	CreateProfile(ctx context.Context, input *entity.CreateUserInput) (*entity.UserOutputModel, error)
	GetProfile(ctx context.Context, uid string) (*entity.UserOutputModel, error)
	UpdateProfile(ctx context.Context, uid string, input *entity.UpdateUserInput) (*entity.UserOutputModel, error)
}

type Chat interface {
	Chat(ctx context.Context, viewer *entity.Viewer, sessionId string, message string) (*entity.ChatOutputModel, error)
}

type Services struct {
	Diagnostics Diagnostics
	Listing     Listing
	Request     Request
	User        User
	Chat        Chat
}

// Dependencies are shared by every service. Nil Policy and Scope fall back to the wall clock and
// a no-op scope.
type Dependencies struct {
	Repos  *repo.Repositories
	Hub    *feed.Hub
	Policy *expiry.Policy
	Scope  tally.Scope
}

func NewServices(deps Dependencies) *Services {
	if deps.Policy == nil {
		deps.Policy = expiry.NewPolicy(nil)
	}
	if deps.Scope == nil {
		deps.Scope = tally.NoopScope
	}
	if deps.Hub == nil {
		deps.Hub = feed.NewHub()
	}

	r := newReaper(deps.Repos.Listing, deps.Policy, deps.Scope)

	return &Services{
		Diagnostics: NewDiagnosticsService(deps.Repos),
		Listing:     NewListingService(deps, r),
		Request:     NewRequestService(deps, r),
		User:        NewUserService(deps.Repos),
		Chat:        NewChatService(deps.Repos, deps.Scope),
	}
}

var log = logrus.WithField("prefix", "service")
