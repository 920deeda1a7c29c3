package flow

import (
	"testing"

	"github.com/desertthunder/wayfarer/internal/models"
)

func completeProfile() *models.UserProfile {
	return &models.UserProfile{ID: "user-1", Email: "traveler@example.com", ProfileComplete: true}
}

func plannedTrip() *models.Trip {
	return &models.Trip{ID: "trip-1", Name: "Lisbon", Destination: "Lisbon"}
}

func fiveDayItinerary() *models.Itinerary {
	itinerary := &models.Itinerary{TripID: "trip-1"}
	for day := 1; day <= 5; day++ {
		itinerary.Days = append(itinerary.Days, models.Day{
			DayIndex: day,
			Blocks: map[models.BlockName]models.Block{
				models.BlockMorning:   {Title: "Morning"},
				models.BlockAfternoon: {Title: "Afternoon"},
				models.BlockEvening:   {Title: "Evening"},
			},
		})
	}
	return itinerary
}

func TestResolve(t *testing.T) {
	intent := &models.TripIntent{TripID: "trip-1", Pace: "relaxed"}
	anchors := &models.AnchorSelection{TripID: "trip-1", Anchors: []string{"Torre de Belém"}}

	startedTrip := plannedTrip()
	startedTrip.StartedTrip = true

	completedTrip := plannedTrip()
	completedTrip.StartedTrip = true
	completedTrip.TripComplete = true

	cases := []struct {
		name          string
		snapshot      models.Snapshot
		authenticated bool
		want          Destination
	}{
		{"Unauthenticated", models.Snapshot{}, false, SignIn},
		{"No Profile", models.Snapshot{}, true, ProfileSetup},
		{
			"Incomplete Profile",
			models.Snapshot{Profile: &models.UserProfile{ID: "user-1"}},
			true,
			ProfileSetup,
		},
		{
			"No Trip",
			models.Snapshot{Profile: completeProfile()},
			true,
			ChooseRole,
		},
		{
			"Trip Without ID",
			models.Snapshot{Profile: completeProfile(), Trip: &models.Trip{Name: "draft"}},
			true,
			ChooseRole,
		},
		{
			"Completed Trip",
			models.Snapshot{Profile: completeProfile(), Trip: completedTrip},
			true,
			TripComplete,
		},
		{
			"Started Trip",
			models.Snapshot{Profile: completeProfile(), Trip: startedTrip},
			true,
			ResumeLiveTrip,
		},
		{
			"No Intent",
			models.Snapshot{Profile: completeProfile(), Trip: plannedTrip()},
			true,
			TripIntentForm,
		},
		{
			"No Anchors",
			models.Snapshot{Profile: completeProfile(), Trip: plannedTrip(), Intent: intent},
			true,
			AnchorSelect,
		},
		{
			"Empty Anchor Set",
			models.Snapshot{
				Profile: completeProfile(),
				Trip:    plannedTrip(),
				Intent:  intent,
				Anchors: &models.AnchorSelection{TripID: "trip-1"},
			},
			true,
			AnchorSelect,
		},
		{
			"No Itinerary",
			models.Snapshot{Profile: completeProfile(), Trip: plannedTrip(), Intent: intent, Anchors: anchors},
			true,
			ItineraryBuild,
		},
		{
			"All Present",
			models.Snapshot{
				Profile:   completeProfile(),
				Trip:      plannedTrip(),
				Intent:    intent,
				Anchors:   anchors,
				Itinerary: fiveDayItinerary(),
			},
			true,
			PreTripHub,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.snapshot, tc.authenticated)
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}

	t.Run("Profile Gate Outranks Trip Completion", func(t *testing.T) {
		snapshot := models.Snapshot{
			Profile: &models.UserProfile{ID: "user-1", ProfileComplete: false},
			Trip:    completedTrip,
		}

		if got := Resolve(snapshot, true); got != ProfileSetup {
			t.Errorf("expected ProfileSetup to win over TripComplete, got %s", got)
		}
	})

	t.Run("Sign In Outranks Everything", func(t *testing.T) {
		snapshot := models.Snapshot{Profile: completeProfile(), Trip: startedTrip}

		if got := Resolve(snapshot, false); got != SignIn {
			t.Errorf("expected SignIn for unauthenticated user, got %s", got)
		}
	})
}
