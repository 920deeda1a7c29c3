package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// Authentication errors
	ErrAuthFailed = fmt.Errorf("authentication failed")
	ErrTimeout    = fmt.Errorf("operation timed out")

	// Remote fetch taxonomy: the coordinator branches on these three, so
	// every fetcher failure must wrap exactly one of them.
	ErrUnauthenticated = fmt.Errorf("unauthenticated")
	ErrUserNotFound    = fmt.Errorf("user record not found")
	ErrTransient       = fmt.Errorf("transient failure")

	// Trip state errors
	ErrTripNotFound = fmt.Errorf("trip not found")
	ErrNoItinerary  = fmt.Errorf("no itinerary available")
	ErrNoPointer    = fmt.Errorf("no progress pointer set")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
