package service

import (
	"context"

	"foodshare-api/internal/common"
	"foodshare-api/internal/entity"
	"foodshare-api/internal/expiry"
	"foodshare-api/internal/repo"

	"github.com/uber-go/tally"
)

// reaper deletes stale listings on read. The delete is conditional on the stored listing still
// being expired, so losing a race against another reaper, an accept or an edit that moved the
// expiry date is harmless and reports false.
type reaper struct {
	listingRepo repo.Listing
	policy      *expiry.Policy
	reaped      tally.Counter
}

func newReaper(listingRepo repo.Listing, policy *expiry.Policy, scope tally.Scope) *reaper {
	return &reaper{
		listingRepo: listingRepo,
		policy:      policy,
		reaped:      scope.Counter("listings_reaped"),
	}
}

func (r *reaper) stale(l *entity.Listing) bool {
	return l.Status == common.Available && r.policy.IsExpired(l.ExpiryDate)
}

// reapOne deletes l if it is stale and reports whether it was. A listing read as stale is left
// out of the current result either way.
func (r *reaper) reapOne(ctx context.Context, l *entity.Listing) bool {
	if !r.stale(l) {
		return false
	}

	deleted, err := r.listingRepo.DeleteExpiredListingById(ctx, l.Id.String(), r.policy.Now())
	if err != nil {
		log.WithError(err).WithField("listing", l.Id).Warn("reap failed")
	} else if deleted {
		r.reaped.Inc(1)
	}

	return true
}

// reap returns the listings that are not stale, deleting the rest.
func (r *reaper) reap(ctx context.Context, listings []entity.Listing) []entity.Listing {
	fresh := make([]entity.Listing, 0, len(listings))
	for i := range listings {
		if r.reapOne(ctx, &listings[i]) {
			continue
		}
		fresh = append(fresh, listings[i])
	}

	return fresh
}
