package models

import (
	"testing"
)

func TestBlockName(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		for _, block := range BlockOrder {
			if !block.Valid() {
				t.Errorf("expected %s to be valid", block)
			}
		}
		if BlockName("midnight").Valid() {
			t.Error("expected unknown block to be invalid")
		}
	})

	t.Run("Next", func(t *testing.T) {
		next, ok := BlockMorning.Next()
		if !ok || next != BlockAfternoon {
			t.Errorf("expected morning -> afternoon, got %s (ok=%v)", next, ok)
		}

		next, ok = BlockAfternoon.Next()
		if !ok || next != BlockEvening {
			t.Errorf("expected afternoon -> evening, got %s (ok=%v)", next, ok)
		}

		if _, ok := BlockEvening.Next(); ok {
			t.Error("expected evening to end the day")
		}
	})
}

func TestAnchorSelection(t *testing.T) {
	t.Run("Add Deduplicates By Title", func(t *testing.T) {
		selection := AnchorSelection{TripID: "trip-1"}
		selection.Add("Old Town Walk")
		selection.Add("Harbor Ferry")
		selection.Add("Old Town Walk")

		if len(selection.Anchors) != 2 {
			t.Errorf("expected 2 anchors, got %d", len(selection.Anchors))
		}
		if !selection.Has("Harbor Ferry") {
			t.Error("expected Harbor Ferry to be selected")
		}
	})
}

func TestItinerary(t *testing.T) {
	itinerary := Itinerary{
		TripID: "trip-1",
		Days: []Day{
			{DayIndex: 1, Summary: "Arrival"},
			{DayIndex: 2, Summary: "Museums"},
		},
	}

	t.Run("TotalDays", func(t *testing.T) {
		if itinerary.TotalDays() != 2 {
			t.Errorf("expected 2 days, got %d", itinerary.TotalDays())
		}
	})

	t.Run("Day Lookup", func(t *testing.T) {
		day := itinerary.Day(2)
		if day == nil || day.Summary != "Museums" {
			t.Errorf("expected day 2 summary 'Museums', got %+v", day)
		}
		if itinerary.Day(3) != nil {
			t.Error("expected nil for out-of-range day")
		}
	})
}

func TestUserProfile(t *testing.T) {
	t.Run("DisplayName", func(t *testing.T) {
		full := UserProfile{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
		if full.DisplayName() != "Ada Lovelace" {
			t.Errorf("expected 'Ada Lovelace', got %s", full.DisplayName())
		}

		firstOnly := UserProfile{FirstName: "Ada", Email: "ada@example.com"}
		if firstOnly.DisplayName() != "Ada" {
			t.Errorf("expected 'Ada', got %s", firstOnly.DisplayName())
		}

		emailOnly := UserProfile{Email: "ada@example.com"}
		if emailOnly.DisplayName() != "ada@example.com" {
			t.Errorf("expected email fallback, got %s", emailOnly.DisplayName())
		}
	})
}

func TestReflection(t *testing.T) {
	t.Run("Validate", func(t *testing.T) {
		valid := NewReflection(1, "trip-1", 2, []string{"content"}, "Great day")
		if err := valid.Validate(); err != nil {
			t.Errorf("expected valid reflection, got %v", err)
		}

		missingTrip := NewReflection(1, "", 2, []string{"content"}, "")
		if err := missingTrip.Validate(); err == nil {
			t.Error("expected error for missing trip id")
		}

		badDay := NewReflection(1, "trip-1", 0, []string{"content"}, "")
		if err := badDay.Validate(); err == nil {
			t.Error("expected error for day index < 1")
		}

		noMoods := NewReflection(1, "trip-1", 2, nil, "")
		if err := noMoods.Validate(); err == nil {
			t.Error("expected error for missing moods")
		}
	})
}
