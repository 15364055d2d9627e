package feed

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type Collection string

const (
	Listings Collection = "listings"
	Requests Collection = "requests"
	Users    Collection = "users"
)

type Kind string

const (
	Added    Kind = "added"
	Modified Kind = "modified"
	Removed  Kind = "removed"
)

type Change struct {
	Collection Collection `json:"collection"`
	Kind       Kind       `json:"kind"`
	Id         string     `json:"id"`
}

// Publisher is the write side of the hub as seen by stores.
type Publisher interface {
	Publish(changes ...Change)
}

// Hub fans change notifications out to subscribers. Publishing never blocks: every subscriber
// holds a single pending signal, so bursts of changes coalesce into one wake-up.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
	log  *logrus.Entry
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[*Subscription]struct{}),
		log:  logrus.WithField("prefix", "feed"),
	}
}

type Subscription struct {
	hub         *Hub
	collections map[Collection]struct{}
	signal      chan struct{}
	once        sync.Once
}

// Subscribe registers interest in the given collections, or in all of them when none are given.
func (h *Hub) Subscribe(collections ...Collection) *Subscription {
	s := &Subscription{
		hub:         h,
		collections: make(map[Collection]struct{}, len(collections)),
		signal:      make(chan struct{}, 1),
	}
	for _, c := range collections {
		s.collections[c] = struct{}{}
	}

	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	return s
}

func (h *Hub) Publish(changes ...Change) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range changes {
		h.log.Debugf("%s %s %s", c.Collection, c.Kind, c.Id)
	}

	for s := range h.subs {
		if !s.interested(changes) {
			continue
		}

		select {
		case s.signal <- struct{}{}:
		default:
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}

func (s *Subscription) interested(changes []Change) bool {
	if len(s.collections) == 0 {
		return true
	}

	for _, c := range changes {
		if _, ok := s.collections[c.Collection]; ok {
			return true
		}
	}

	return false
}

// Notify yields a value whenever a relevant change happened since the last receive.
// It is closed by Close.
func (s *Subscription) Notify() <-chan struct{} {
	return s.signal
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s)
		close(s.signal)
		s.hub.mu.Unlock()
	})
}
