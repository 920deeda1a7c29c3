package services

import (
	"context"

	"github.com/desertthunder/wayfarer/internal/models"
)

// TripService defines the client's view of the trip-planning service.
type TripService interface {
	// FetchSnapshot retrieves the authoritative state snapshot from the
	// consolidated hydration endpoint. Individual snapshot fields may be
	// absent; the server not having data yet is valid, not an error.
	//
	// Failures wrap exactly one of shared.ErrUnauthenticated,
	// shared.ErrUserNotFound, or shared.ErrTransient.
	FetchSnapshot(ctx context.Context) (*models.Snapshot, error)

	// StartTrip marks the trip as started on the server.
	StartTrip(ctx context.Context, tripID string) error

	// CompleteBlock marks a single day block as completed on the server.
	// Callers must not advance any local pointer until this returns nil.
	CompleteBlock(ctx context.Context, tripID string, dayIndex int, block models.BlockName) error

	// CompleteDay submits the end-of-day reflection and marks the day complete.
	CompleteDay(ctx context.Context, tripID string, dayIndex int, moods []string, journal string) error

	// Name returns the name of the service for display and logging.
	Name() string
}
