package repo

import (
	"context"
	"time"

	"foodshare-api/internal/entity"
	"foodshare-api/internal/repo/memdb"
	"foodshare-api/internal/repo/pgdb"
	"foodshare-api/pkg/postgres"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repo.go -package=mocks foodshare-api/internal/repo Listing,Request,User,ChatLog

type Diagnostics interface {
	Ping() error
}

type Listing interface {
	CreateListing(ctx context.Context, input *entity.CreateListingInput) (uuid.UUID, error)
	GetListingById(ctx context.Context, id string) (*entity.Listing, error)
	EditListingById(ctx context.Context, id string, input *entity.EditListingInput) error
	UpdateListingStatusById(ctx context.Context, id string, newStatus string) error
	// DeleteListingById reports whether a listing was removed. Deleting an absent id is not an error.
	DeleteListingById(ctx context.Context, id string) (bool, error)
	// DeleteExpiredListingById removes the listing only if it is still available with an expiry
	// date before now, and reports whether it did.
	DeleteExpiredListingById(ctx context.Context, id string, now time.Time) (bool, error)
	GetListings(ctx context.Context, filter *entity.ListingFilter) ([]entity.Listing, error)
}

type Request interface {
	// CreateRequest atomically checks that the listing is available and unexpired at requestedAt
	// and that the receiver holds no pending request on it.
	CreateRequest(ctx context.Context, input *entity.CreateRequestInput) (uuid.UUID, error)
	GetRequestById(ctx context.Context, id string) (*entity.Request, error)
	GetRequests(ctx context.Context, filter *entity.RequestFilter) ([]entity.Request, error)
	// AcceptRequest marks a pending request accepted with a snapshot of its listing and deletes the
	// listing, all in one transaction.
	AcceptRequest(ctx context.Context, requestId string, acceptedAt time.Time) (*entity.Request, error)
	RejectRequest(ctx context.Context, requestId string, decidedAt time.Time) error
}

type User interface {
	CreateUser(ctx context.Context, input *entity.CreateUserInput) error
	GetUserById(ctx context.Context, uid string) (*entity.User, error)
	UpdateUserById(ctx context.Context, uid string, input *entity.UpdateUserInput) error
}

type ChatLog interface {
	CreateChatLog(ctx context.Context, log *entity.ChatLog) error
}

type Repositories struct {
	Diagnostics
	Listing
	Request
	User
	ChatLog
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Listing:     pgdb.NewListingRepo(p),
		Request:     pgdb.NewRequestRepo(p),
		User:        pgdb.NewUserRepo(p),
		ChatLog:     pgdb.NewChatLogRepo(p),
	}
}

// NewMemoryRepositories backs every repository with one in-process store.
func NewMemoryRepositories(store *memdb.Store) *Repositories {
	return &Repositories{
		Diagnostics: store,
		Listing:     store,
		Request:     store,
		User:        store,
		ChatLog:     store,
	}
}
