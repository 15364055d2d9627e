package expiry

import (
	"errors"
	"strings"
	"time"
)

var ErrMalformedExpiry = errors.New("malformed expiry date")

// layouts accepted for expiry dates, most specific first. The two zone-less datetime forms are
// what an HTML datetime-local input submits.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

type Policy struct {
	now func() time.Time
}

func NewPolicy(now func() time.Time) *Policy {
	if now == nil {
		now = time.Now
	}

	return &Policy{now: now}
}

func (p *Policy) Now() time.Time {
	return p.now()
}

// IsExpired reports whether the pickup deadline has passed. A missing deadline never expires.
func (p *Policy) IsExpired(expiryDate *time.Time) bool {
	if expiryDate == nil || expiryDate.IsZero() {
		return false
	}

	return expiryDate.Before(p.now())
}

// Parse reads an expiry date. Layouts without a zone are read as UTC. An empty string yields nil.
func Parse(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	return nil, ErrMalformedExpiry
}
