package service

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"foodshare-api/internal/entity"
	"foodshare-api/internal/feed"
)

// Watch is a live view. The first event carries the whole view as added, later events carry the
// difference to the previous one. Events is closed once the watch stops.
type Watch[T any] struct {
	events chan entity.Diff[T]
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func (w *Watch[T]) Events() <-chan entity.Diff[T] {
	return w.events
}

// Close stops the watch and releases its subscription. It is safe to call more than once.
func (w *Watch[T]) Close() {
	w.once.Do(w.cancel)
	<-w.done
}

type deriveFunc[T any] func(ctx context.Context) ([]T, error)

// startWatch subscribes before deriving the initial view so no change falls between the two.
func startWatch[T any](ctx context.Context, hub *feed.Hub, collections []feed.Collection, key func(T) string, derive deriveFunc[T]) (*Watch[T], error) {
	sub := hub.Subscribe(collections...)

	initial, err := derive(ctx)
	if err != nil {
		sub.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watch[T]{
		events: make(chan entity.Diff[T], 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go w.run(ctx, sub, initial, key, derive)

	return w, nil
}

func (w *Watch[T]) run(ctx context.Context, sub *feed.Subscription, initial []T, key func(T) string, derive deriveFunc[T]) {
	defer close(w.done)
	defer close(w.events)
	defer sub.Close()

	prev := initial
	if !w.send(ctx, entity.Diff[T]{Added: initial, Modified: make([]T, 0), Removed: make([]string, 0)}) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-sub.Notify():
			if !ok {
				return
			}
		}

		next, err := derive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.WithError(err).Warn("live view refresh failed")
			continue
		}

		d := diffViews(prev, next, key)
		prev = next
		if d.Empty() {
			continue
		}
		if !w.send(ctx, d) {
			return
		}
	}
}

func (w *Watch[T]) send(ctx context.Context, d entity.Diff[T]) bool {
	select {
	case w.events <- d:
		return true
	case <-ctx.Done():
		return false
	}
}

// diffViews compares two derivations of a view by key, keeping the order of next.
func diffViews[T any](prev, next []T, key func(T) string) entity.Diff[T] {
	d := entity.Diff[T]{
		Added:    make([]T, 0),
		Modified: make([]T, 0),
		Removed:  make([]string, 0),
	}

	before := make(map[string]T, len(prev))
	for _, item := range prev {
		before[key(item)] = item
	}

	seen := make(map[string]struct{}, len(next))
	for _, item := range next {
		k := key(item)
		seen[k] = struct{}{}

		old, ok := before[k]
		switch {
		case !ok:
			d.Added = append(d.Added, item)
		case !reflect.DeepEqual(old, item):
			d.Modified = append(d.Modified, item)
		}
	}

	for k := range before {
		if _, ok := seen[k]; !ok {
			d.Removed = append(d.Removed, k)
		}
	}
	sort.Strings(d.Removed)

	return d
}

func listingKey(l entity.ListingOutputModel) string {
	return l.Id
}

func requestKey(r entity.RequestOutputModel) string {
	return r.Id
}
