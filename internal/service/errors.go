package service

import (
	"errors"
	"fmt"
)

// categories, matched by handlers with errors.Is
var (
	ErrValidation             = errors.New("validation failed")
	ErrNotFound               = errors.New("not found")
	ErrConflict               = errors.New("conflict")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrStoreUnavailable       = errors.New("store unavailable")
	ErrForbidden              = errors.New("forbidden")
	ErrUnauthenticated        = errors.New("unauthenticated")
)

var (
	ErrListingNotFound = newError(ErrNotFound, "listing not found")
	ErrRequestNotFound = newError(ErrNotFound, "request not found")
	ErrUserNotFound    = newError(ErrNotFound, "user profile not found")

	ErrMissingListingFields = newError(ErrValidation, "title, quantity, location and expiry date are required")
	ErrMissingCoordinates   = newError(ErrValidation, "valid latitude and longitude are required")
	ErrInvalidCategory      = newError(ErrValidation, "category should be veg or non-veg")
	ErrMalformedExpiry      = newError(ErrValidation, "expiry date is malformed")
	ErrInvalidDistance      = newError(ErrValidation, "distance should be a non-negative number")
	ErrInvalidTab           = newError(ErrValidation, "tab should be active or history")
	ErrInvalidRole          = newError(ErrValidation, "role should be donor or receiver")
	ErrInvalidStatus        = newError(ErrValidation, "status should be available or reserved")
	ErrEmptyMessage         = newError(ErrValidation, "message is required")

	ErrDuplicateRequest   = newError(ErrConflict, "a pending request for this listing already exists")
	ErrAlreadyAccepted    = newError(ErrConflict, "request is already accepted")
	ErrConcurrentDecision = newError(ErrConflict, "request was decided concurrently")
	ErrProfileExists      = newError(ErrConflict, "user profile already exists")

	ErrListingUnavailable = newError(ErrInvalidStateTransition, "listing no longer available")
	ErrRequestNotPending  = newError(ErrInvalidStateTransition, "request is not pending")
	ErrNotListingOwner    = newError(ErrInvalidStateTransition, "only the listing owner can do this")
	ErrRoleAlreadySet     = newError(ErrInvalidStateTransition, "role can't be changed once set")

	ErrDonorsOnly      = newError(ErrForbidden, "only donors can do this")
	ErrReceiversOnly   = newError(ErrForbidden, "only receivers can do this")
	ErrOwnListing      = newError(ErrForbidden, "can't request your own listing")
	ErrNotRequestParty = newError(ErrForbidden, "request belongs to someone else")

	ErrSignInRequired = newError(ErrUnauthenticated, "sign in required")
)

type domainError struct {
	category error
	message  string
}

func newError(category error, message string) error {
	return &domainError{category: category, message: message}
}

func (e *domainError) Error() string {
	return e.message
}

func (e *domainError) Unwrap() error {
	return e.category
}

// storeError marks a failure of the backing store. The cause stays reachable for reporting.
func storeError(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
