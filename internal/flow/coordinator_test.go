package flow

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/desertthunder/wayfarer/internal/models"
	"github.com/desertthunder/wayfarer/internal/shared"
	"github.com/desertthunder/wayfarer/internal/store"
	tu "github.com/desertthunder/wayfarer/internal/testing"
)

func newTestCoordinator(t *testing.T, mock *tu.MockTripService) (*Coordinator, *store.Store) {
	t.Helper()

	cache := store.NewStore(setupTestDB(t))
	coordinator := NewCoordinator(cache, mock, shared.NewLogger(io.Discard))

	return coordinator, cache
}

func mustBootstrap(t *testing.T, c *Coordinator, route string, authenticated bool) Action {
	t.Helper()

	action, err := c.Bootstrap(context.Background(), route, authenticated)
	if err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	return action
}

func TestCoordinator(t *testing.T) {
	t.Run("Self Managed Routes Stay", func(t *testing.T) {
		mock := &tu.MockTripService{}
		coordinator, _ := newTestCoordinator(t, mock)

		for _, route := range []string{"sign_in", "profile_setup", "live_day_overview", "live_day_block", "day_reflection"} {
			action := mustBootstrap(t, coordinator, route, true)
			if action.Kind != ActionStay {
				t.Errorf("expected Stay for route %s, got kind %d", route, action.Kind)
			}
		}

		if mock.FetchCalls != 0 {
			t.Errorf("expected no hydration for self-managed routes, got %d calls", mock.FetchCalls)
		}
	})

	t.Run("Fresh User Navigates To Sign In", func(t *testing.T) {
		mock := &tu.MockTripService{}
		coordinator, _ := newTestCoordinator(t, mock)

		action := mustBootstrap(t, coordinator, "pre_trip_hub", false)
		if action.Kind != ActionNavigate || action.Destination != SignIn {
			t.Errorf("expected Navigate(SignIn), got %+v", action)
		}
		if mock.FetchCalls != 0 {
			t.Errorf("expected no hydration without identity, got %d calls", mock.FetchCalls)
		}
	})

	t.Run("Incomplete Local Profile Stays", func(t *testing.T) {
		mock := &tu.MockTripService{}
		coordinator, cache := newTestCoordinator(t, mock)

		profile := &models.UserProfile{ID: "user-1", ProfileComplete: false}
		if err := cache.Save(models.Snapshot{Profile: profile}); err != nil {
			t.Fatalf("failed to seed cache: %v", err)
		}

		action := mustBootstrap(t, coordinator, "pre_trip_hub", true)
		if action.Kind != ActionStay {
			t.Errorf("expected Stay while profile setup owns the redirect, got %+v", action)
		}
		if mock.FetchCalls != 0 {
			t.Errorf("expected no hydration, got %d calls", mock.FetchCalls)
		}
	})

	t.Run("Cold Cache Hydrates And Persists", func(t *testing.T) {
		mock := &tu.MockTripService{
			Snapshot: &models.Snapshot{Profile: completeProfile(), Trip: plannedTrip()},
		}
		coordinator, cache := newTestCoordinator(t, mock)

		action := mustBootstrap(t, coordinator, "pre_trip_hub", true)
		if action.Kind != ActionNavigate || action.Destination != TripIntentForm {
			t.Errorf("expected Navigate(TripIntentForm), got %+v", action)
		}
		if mock.FetchCalls != 1 {
			t.Errorf("expected one hydration call, got %d", mock.FetchCalls)
		}

		snapshot, err := cache.Load()
		if err != nil {
			t.Fatalf("failed to load cache: %v", err)
		}
		if snapshot.Profile == nil || snapshot.Trip == nil {
			t.Error("expected hydrated snapshot persisted to cache")
		}
	})

	t.Run("Partial Hydration Keeps Local Fields", func(t *testing.T) {
		mock := &tu.MockTripService{
			Snapshot: &models.Snapshot{Profile: completeProfile(), Trip: plannedTrip()},
		}
		coordinator, cache := newTestCoordinator(t, mock)

		if err := cache.Save(models.Snapshot{Itinerary: fiveDayItinerary()}); err != nil {
			t.Fatalf("failed to seed cache: %v", err)
		}

		mustBootstrap(t, coordinator, "pre_trip_hub", true)

		snapshot, err := cache.Load()
		if err != nil {
			t.Fatalf("failed to load cache: %v", err)
		}
		if snapshot.Itinerary == nil || snapshot.Itinerary.TotalDays() != 5 {
			t.Error("expected locally cached itinerary to survive a partial hydration")
		}
	})

	t.Run("Stale Planning Cache Refreshes", func(t *testing.T) {
		remote := &models.Snapshot{
			Profile:   completeProfile(),
			Trip:      plannedTrip(),
			Intent:    &models.TripIntent{TripID: "trip-1", Pace: "relaxed"},
			Anchors:   &models.AnchorSelection{TripID: "trip-1", Anchors: []string{"Alfama"}},
			Itinerary: fiveDayItinerary(),
		}
		mock := &tu.MockTripService{Snapshot: remote}
		coordinator, cache := newTestCoordinator(t, mock)

		if err := cache.Save(models.Snapshot{Profile: completeProfile(), Trip: plannedTrip()}); err != nil {
			t.Fatalf("failed to seed cache: %v", err)
		}

		action := mustBootstrap(t, coordinator, "pre_trip_hub", true)
		if action.Kind != ActionNavigate || action.Destination != PreTripHub {
			t.Errorf("expected Navigate(PreTripHub) after refresh, got %+v", action)
		}
		if mock.FetchCalls != 1 {
			t.Errorf("expected one hydration call for stale planning state, got %d", mock.FetchCalls)
		}

		snapshot, err := cache.Load()
		if err != nil {
			t.Fatalf("failed to load cache: %v", err)
		}
		if snapshot.Itinerary == nil || snapshot.Intent == nil || snapshot.Anchors == nil {
			t.Error("expected server-side planning progress persisted to cache")
		}
	})

	t.Run("Transient Failure Degrades To Local", func(t *testing.T) {
		mock := &tu.MockTripService{FetchErr: fmt.Errorf("%w: status 503", shared.ErrTransient)}
		coordinator, cache := newTestCoordinator(t, mock)

		if err := cache.Save(models.Snapshot{Profile: completeProfile()}); err != nil {
			t.Fatalf("failed to seed cache: %v", err)
		}

		action := mustBootstrap(t, coordinator, "pre_trip_hub", true)
		if action.Kind != ActionNavigate || action.Destination != ChooseRole {
			t.Errorf("expected Navigate(ChooseRole) from local-only state, got %+v", action)
		}
	})

	t.Run("Unauthenticated Fetch Navigates To Sign In", func(t *testing.T) {
		mock := &tu.MockTripService{FetchErr: fmt.Errorf("%w: status 401", shared.ErrUnauthenticated)}
		coordinator, _ := newTestCoordinator(t, mock)

		action := mustBootstrap(t, coordinator, "pre_trip_hub", true)
		if action.Kind != ActionNavigate || action.Destination != SignIn {
			t.Errorf("expected Navigate(SignIn), got %+v", action)
		}
	})

	t.Run("User Not Found Clears Cache", func(t *testing.T) {
		mock := &tu.MockTripService{FetchErr: fmt.Errorf("%w: status 404", shared.ErrUserNotFound)}
		coordinator, cache := newTestCoordinator(t, mock)

		if err := cache.Save(models.Snapshot{Profile: completeProfile()}); err != nil {
			t.Fatalf("failed to seed cache: %v", err)
		}

		action := mustBootstrap(t, coordinator, "pre_trip_hub", true)
		if action.Kind != ActionNavigate || action.Destination != SignIn {
			t.Errorf("expected Navigate(SignIn), got %+v", action)
		}

		snapshot, err := cache.Load()
		if err != nil {
			t.Fatalf("failed to load cache: %v", err)
		}
		if !snapshot.IsEmpty() {
			t.Error("expected cache cleared after user-not-found hydration")
		}
	})

	t.Run("Started Trip Shows Resume Button", func(t *testing.T) {
		mock := &tu.MockTripService{}
		coordinator, cache := newTestCoordinator(t, mock)

		trip := plannedTrip()
		trip.StartedTrip = true
		seeded := models.Snapshot{
			Profile:   completeProfile(),
			Trip:      trip,
			Itinerary: fiveDayItinerary(),
			Pointer:   &models.ProgressPointer{DayIndex: 2, Block: models.BlockAfternoon},
		}
		if err := cache.Save(seeded); err != nil {
			t.Fatalf("failed to seed cache: %v", err)
		}

		action := mustBootstrap(t, coordinator, "pre_trip_hub", true)
		if action.Kind != ActionShowResumeButton || action.Destination != ResumeLiveTrip {
			t.Errorf("expected ShowResumeButton(ResumeLiveTrip), got %+v", action)
		}
		if mock.FetchCalls != 0 {
			t.Errorf("expected warm cache to skip hydration, got %d calls", mock.FetchCalls)
		}
	})

	t.Run("Completed Trip Navigates Directly", func(t *testing.T) {
		mock := &tu.MockTripService{}
		coordinator, cache := newTestCoordinator(t, mock)

		trip := plannedTrip()
		trip.StartedTrip = true
		trip.TripComplete = true
		if err := cache.Save(models.Snapshot{Profile: completeProfile(), Trip: trip}); err != nil {
			t.Fatalf("failed to seed cache: %v", err)
		}

		action := mustBootstrap(t, coordinator, "pre_trip_hub", true)
		if action.Kind != ActionNavigate || action.Destination != TripComplete {
			t.Errorf("expected Navigate(TripComplete), got %+v", action)
		}
	})

	t.Run("In Flight Guard Stays", func(t *testing.T) {
		mock := &tu.MockTripService{}
		coordinator, _ := newTestCoordinator(t, mock)

		coordinator.inFlight = true

		action := mustBootstrap(t, coordinator, "pre_trip_hub", true)
		if action.Kind != ActionStay {
			t.Errorf("expected Stay while a bootstrap is in flight, got %+v", action)
		}
		if mock.FetchCalls != 0 {
			t.Errorf("expected no hydration while in flight, got %d calls", mock.FetchCalls)
		}
	})
}
