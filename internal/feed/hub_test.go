package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func received(s *Subscription) bool {
	select {
	case _, ok := <-s.Notify():
		return ok
	case <-time.After(50 * time.Millisecond):
		return false
	}
}

func TestPublishCoalesces(t *testing.T) {
	h := NewHub()
	s := h.Subscribe(Listings)
	defer s.Close()

	for i := 0; i < 100; i++ {
		h.Publish(Change{Collection: Listings, Kind: Added, Id: "l"})
	}

	assert.True(t, received(s))
	assert.False(t, received(s), "burst should collapse into a single signal")
}

func TestSubscribeFiltersCollections(t *testing.T) {
	h := NewHub()
	listings := h.Subscribe(Listings)
	all := h.Subscribe()
	defer listings.Close()
	defer all.Close()

	h.Publish(Change{Collection: Requests, Kind: Modified, Id: "r"})

	assert.False(t, received(listings))
	assert.True(t, received(all))
}

func TestCloseReleasesSubscription(t *testing.T) {
	h := NewHub()
	s := h.Subscribe(Requests)
	assert.Equal(t, 1, h.Subscribers())

	s.Close()
	s.Close()

	assert.Equal(t, 0, h.Subscribers())
	_, ok := <-s.Notify()
	assert.False(t, ok)

	h.Publish(Change{Collection: Requests, Kind: Removed, Id: "r"})
}
