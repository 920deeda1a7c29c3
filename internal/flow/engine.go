package flow

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wayfarer/internal/models"
	"github.com/desertthunder/wayfarer/internal/services"
	"github.com/desertthunder/wayfarer/internal/shared"
	"github.com/desertthunder/wayfarer/internal/store"
)

// LiveEngine drives the live-trip flow. It calls the server's completion
// endpoints and moves the cached pointer only after the server confirms,
// so a failed call always leaves the user on the block they were on.
type LiveEngine struct {
	service     services.TripService
	cache       *store.Store
	reflections *store.ReflectionRepository
	logger      *log.Logger
}

// NewLiveEngine creates a new engine over the given service and cache.
func NewLiveEngine(service services.TripService, cache *store.Store, reflections *store.ReflectionRepository, logger *log.Logger) *LiveEngine {
	return &LiveEngine{
		service:     service,
		cache:       cache,
		reflections: reflections,
		logger:      logger,
	}
}

// StartTrip marks the trip started on the server, then seeds the local
// pointer at day 1, morning. Nothing is written locally on failure.
func (e *LiveEngine) StartTrip(ctx context.Context, trip models.Trip) (models.ProgressPointer, error) {
	if err := e.service.StartTrip(ctx, trip.ID); err != nil {
		return models.ProgressPointer{}, err
	}

	trip.StartedTrip = true
	pointer := InitialPointer()
	if err := e.cache.Save(models.Snapshot{Trip: &trip, Pointer: &pointer}); err != nil {
		return pointer, fmt.Errorf("failed to cache started trip: %w", err)
	}

	e.logger.Info("trip started", "trip", trip.ID)
	return pointer, nil
}

// CompleteBlock marks the pointer's current block complete on the server
// and advances. Local pointer advancement is gated on remote confirmation:
// when the server call fails the returned pointer equals the input pointer,
// so a retry re-attempts the same block rather than skipping it.
func (e *LiveEngine) CompleteBlock(ctx context.Context, trip models.Trip, pointer models.ProgressPointer, totalDays int) (models.ProgressPointer, Destination, error) {
	if totalDays < 1 {
		return pointer, Undecided, fmt.Errorf("%w: no days to advance through", shared.ErrNoItinerary)
	}

	if err := e.service.CompleteBlock(ctx, trip.ID, pointer.DayIndex, pointer.Block); err != nil {
		return pointer, Undecided, err
	}

	next, signal := Advance(pointer, totalDays)
	switch signal {
	case SignalTripComplete:
		trip.StartedTrip = true
		trip.TripComplete = true
		if err := e.cache.Save(models.Snapshot{Trip: &trip}); err != nil {
			return pointer, Undecided, fmt.Errorf("failed to cache completed trip: %w", err)
		}
		if err := e.cache.ClearPointer(); err != nil {
			return pointer, Undecided, fmt.Errorf("failed to clear pointer: %w", err)
		}
		e.logger.Info("trip complete", "trip", trip.ID)
		return next, TripComplete, nil
	case SignalDayComplete:
		if err := e.cache.SavePointer(next); err != nil {
			return pointer, Undecided, fmt.Errorf("failed to persist pointer: %w", err)
		}
		return next, DayReflection, nil
	default:
		if err := e.cache.SavePointer(next); err != nil {
			return pointer, Undecided, fmt.Errorf("failed to persist pointer: %w", err)
		}
		return next, LiveDayBlock, nil
	}
}

// CompleteDay submits the end-of-day reflection to the server and records
// it locally once the server accepts it.
func (e *LiveEngine) CompleteDay(ctx context.Context, tripID string, dayIndex int, moods []string, journal string) (*models.Reflection, error) {
	if err := e.service.CompleteDay(ctx, tripID, dayIndex, moods, journal); err != nil {
		return nil, err
	}

	reflection := models.NewReflection(0, tripID, dayIndex, moods, journal)
	if err := e.reflections.Create(reflection); err != nil {
		return nil, fmt.Errorf("failed to record reflection: %w", err)
	}

	e.logger.Info("day complete", "trip", tripID, "day", dayIndex)
	return reflection, nil
}

// PickDay is the explicit "jump to a day" override: it resets the cached
// pointer to that day's morning regardless of prior progress.
func (e *LiveEngine) PickDay(dayIndex, totalDays int) (models.ProgressPointer, error) {
	pointer, err := PickDay(dayIndex, totalDays)
	if err != nil {
		return pointer, err
	}

	if err := e.cache.SavePointer(pointer); err != nil {
		return pointer, fmt.Errorf("failed to persist pointer: %w", err)
	}

	return pointer, nil
}

// Resume decides where re-entering the live flow should land, based on the
// cached pointer. Without a pointer the trip has not started.
func (e *LiveEngine) Resume(pointer *models.ProgressPointer) Destination {
	if pointer == nil {
		return ResumeLiveTrip
	}
	return StartDay(*pointer)
}
