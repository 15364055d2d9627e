package repo_errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflicting record exists")
	ErrListingUnavailable = errors.New("listing is not available")
	ErrRequestNotPending  = errors.New("request is not pending")
)
