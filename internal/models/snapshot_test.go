package models

import (
	"testing"
)

func fullSnapshot() Snapshot {
	return Snapshot{
		Profile:   &UserProfile{ID: "user-1", ProfileComplete: true},
		Trip:      &Trip{ID: "trip-1", Name: "Lisbon"},
		Intent:    &TripIntent{TripID: "trip-1", Pace: "relaxed"},
		Anchors:   &AnchorSelection{TripID: "trip-1", Anchors: []string{"Belém Tower"}},
		Itinerary: &Itinerary{TripID: "trip-1", Days: []Day{{DayIndex: 1}}},
		Pointer:   &ProgressPointer{DayIndex: 1, Block: BlockMorning},
	}
}

func TestSnapshot(t *testing.T) {
	t.Run("Merge", func(t *testing.T) {
		t.Run("partial remote leaves local fields untouched", func(t *testing.T) {
			local := fullSnapshot()
			remote := Snapshot{Profile: &UserProfile{ID: "user-1", Email: "new@example.com", ProfileComplete: true}}

			merged := local.Merge(remote)

			if merged.Profile.Email != "new@example.com" {
				t.Error("expected remote profile to replace local profile")
			}
			if merged.Trip != local.Trip {
				t.Error("expected local trip to survive a partial merge")
			}
			if merged.Itinerary != local.Itinerary {
				t.Error("expected local itinerary to survive a partial merge")
			}
			if merged.Anchors != local.Anchors {
				t.Error("expected local anchors to survive a partial merge")
			}
		})

		t.Run("empty remote is a no-op", func(t *testing.T) {
			local := fullSnapshot()
			merged := local.Merge(Snapshot{})

			if merged != local {
				t.Error("expected merge with empty snapshot to return local unchanged")
			}
		})

		t.Run("full remote replaces everything", func(t *testing.T) {
			local := fullSnapshot()
			remote := fullSnapshot()
			remote.Trip = &Trip{ID: "trip-2"}

			merged := local.Merge(remote)
			if merged.Trip.ID != "trip-2" {
				t.Errorf("expected trip-2, got %s", merged.Trip.ID)
			}
		})
	})

	t.Run("Predicates", func(t *testing.T) {
		empty := Snapshot{}
		if !empty.IsEmpty() {
			t.Error("expected empty snapshot")
		}
		if empty.ProfileReady() || empty.HasTrip() || empty.HasIntent() || empty.HasAnchors() || empty.HasItinerary() {
			t.Error("expected all predicates false on empty snapshot")
		}

		full := fullSnapshot()
		if full.IsEmpty() {
			t.Error("expected non-empty snapshot")
		}
		if !full.ProfileReady() || !full.HasTrip() || !full.HasIntent() || !full.HasAnchors() || !full.HasItinerary() {
			t.Error("expected all predicates true on full snapshot")
		}

		incomplete := Snapshot{Profile: &UserProfile{ID: "user-1"}}
		if incomplete.ProfileReady() {
			t.Error("expected incomplete profile to not be ready")
		}

		idless := Snapshot{Trip: &Trip{}}
		if idless.HasTrip() {
			t.Error("expected trip without id to not count")
		}

		emptyAnchors := Snapshot{Anchors: &AnchorSelection{TripID: "trip-1"}}
		if emptyAnchors.HasAnchors() {
			t.Error("expected empty anchor set to not count")
		}
	})

	t.Run("TotalDays", func(t *testing.T) {
		if (Snapshot{}).TotalDays() != 0 {
			t.Error("expected 0 days without itinerary")
		}
		if fullSnapshot().TotalDays() != 1 {
			t.Error("expected 1 day")
		}
	})
}
