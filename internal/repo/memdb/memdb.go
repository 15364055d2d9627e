// Package memdb is an in-process document store with the same semantics as the PostgreSQL
// repositories. A single lock serializes writes, which makes request creation and acceptance
// atomic.
package memdb

import (
	"sync"
	"time"

	"foodshare-api/internal/entity"
	"foodshare-api/internal/feed"
	"foodshare-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	listings map[uuid.UUID]entity.Listing
	requests map[uuid.UUID]entity.Request
	users    map[string]entity.User
	chatLogs []entity.ChatLog

	hub feed.Publisher
	now func() time.Time
}

func NewStore(hub feed.Publisher) *Store {
	return &Store{
		listings: make(map[uuid.UUID]entity.Listing),
		requests: make(map[uuid.UUID]entity.Request),
		users:    make(map[string]entity.User),
		hub:      hub,
		now:      time.Now,
	}
}

func (s *Store) Ping() error {
	return nil
}

// publish must be called without holding the lock.
func (s *Store) publish(changes ...feed.Change) {
	if s.hub == nil || len(changes) == 0 {
		return
	}

	s.hub.Publish(changes...)
}

func parseId(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, repo_errors.ErrNotFound
	}

	return u, nil
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f

	return &v
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t

	return &v
}

func cloneListing(l entity.Listing) entity.Listing {
	l.Latitude = cloneFloat(l.Latitude)
	l.Longitude = cloneFloat(l.Longitude)
	l.ExpiryDate = cloneTime(l.ExpiryDate)
	l.ImageUrl = cloneString(l.ImageUrl)

	return l
}

func cloneRequest(r entity.Request) entity.Request {
	r.AcceptedAt = cloneTime(r.AcceptedAt)
	r.DecidedAt = cloneTime(r.DecidedAt)
	if r.Snapshot != nil {
		snap := *r.Snapshot
		snap.Latitude = cloneFloat(snap.Latitude)
		snap.Longitude = cloneFloat(snap.Longitude)
		snap.ImageUrl = cloneString(snap.ImageUrl)
		snap.ExpiryDate = cloneTime(snap.ExpiryDate)
		r.Snapshot = &snap
	}

	return r
}
