package pgdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodshare-api/internal/feed"
	"foodshare-api/pkg/postgres"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// ChangesChannel is the NOTIFY channel written by the row triggers in the migrations.
const ChangesChannel = "foodshare_changes"

const listenerPingInterval = 90 * time.Second

// ChangeListener forwards row change notifications from PostgreSQL to the hub, so writes made
// by any process wake the live views of this one.
type ChangeListener struct {
	listener *pq.Listener
	hub      feed.Publisher
	log      *logrus.Entry
}

func NewChangeListener(pgdb *postgres.Postgres, hub feed.Publisher) (*ChangeListener, error) {
	log := logrus.WithField("prefix", "pg-listener")

	listener, err := pgdb.NewListener(ChangesChannel, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.WithError(err).Warn("listener connection event")
		}
	})
	if err != nil {
		return nil, err
	}

	return &ChangeListener{listener: listener, hub: hub, log: log}, nil
}

// Run consumes notifications until ctx is done.
func (l *ChangeListener) Run(ctx context.Context) {
	ticker := time.NewTicker(listenerPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-l.listener.Notify:
			if n == nil {
				// reconnected, notifications may have been lost
				l.hub.Publish(resync()...)
				continue
			}

			change, err := decodeNotification(n.Extra)
			if err != nil {
				l.log.WithError(err).Warn("dropping malformed notification")
				continue
			}
			l.hub.Publish(change)
		case <-ticker.C:
			if err := l.listener.Ping(); err != nil {
				l.log.WithError(err).Warn("listener ping failed")
			}
		}
	}
}

func (l *ChangeListener) Close() error {
	return l.listener.Close()
}

func decodeNotification(payload string) (feed.Change, error) {
	var change feed.Change
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		return feed.Change{}, fmt.Errorf("decode change notification: %w", err)
	}

	switch change.Collection {
	case feed.Listings, feed.Requests, feed.Users:
	default:
		return feed.Change{}, fmt.Errorf("unknown collection `%s`", change.Collection)
	}

	switch change.Kind {
	case feed.Added, feed.Modified, feed.Removed:
	default:
		return feed.Change{}, fmt.Errorf("unknown change kind `%s`", change.Kind)
	}

	return change, nil
}

func resync() []feed.Change {
	return []feed.Change{
		{Collection: feed.Listings, Kind: feed.Modified},
		{Collection: feed.Requests, Kind: feed.Modified},
	}
}
