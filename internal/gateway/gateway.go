// Package gateway defines the error taxonomy shared by all remote
// gateways. Callers branch on these sentinels with errors.Is instead of
// inspecting transport status codes.
package gateway

import "errors"

// ErrNotFound is returned when the requested record does not exist
// upstream. For mutations it signals a stale local view that the caller
// should reconcile with a fresh listing.
var ErrNotFound = errors.New("not found")

// ErrDuplicateReview is returned when the user already has a review for
// the movie. This is an expected business outcome, not a fault.
var ErrDuplicateReview = errors.New("review already exists for this movie")

// ErrNotPermitted is returned for any authorization failure. It is kept
// generic on purpose: callers never learn which rule was violated.
var ErrNotPermitted = errors.New("not permitted")

// ErrInvalidInput is returned when a payload fails validation before it
// is sent to the backend.
var ErrInvalidInput = errors.New("invalid input")
