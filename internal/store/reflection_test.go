package store

import (
	"testing"

	"github.com/desertthunder/wayfarer/internal/models"
)

func TestReflectionRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewReflectionRepository(db)
		reflection := models.NewReflection(0, "trip-1", 1, []string{"content", "tired"}, "Long travel day")

		if err := repo.Create(reflection); err != nil {
			t.Fatalf("failed to create reflection: %v", err)
		}

		if reflection.ID() == "" {
			t.Error("reflection ID should be set after creation")
		}
	})

	t.Run("Create rejects invalid reflection", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewReflectionRepository(db)
		invalid := models.NewReflection(0, "", 1, []string{"content"}, "")

		if err := repo.Create(invalid); err == nil {
			t.Error("expected validation error for missing trip id")
		}
	})

	t.Run("Create enforces one reflection per day", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewReflectionRepository(db)
		first := models.NewReflection(0, "trip-1", 1, []string{"content"}, "")
		if err := repo.Create(first); err != nil {
			t.Fatalf("failed to create reflection: %v", err)
		}

		duplicate := models.NewReflection(0, "trip-1", 1, []string{"tired"}, "")
		if err := repo.Create(duplicate); err == nil {
			t.Error("expected unique constraint violation for duplicate day")
		}
	})

	t.Run("Get", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewReflectionRepository(db)
		reflection := models.NewReflection(0, "trip-1", 2, []string{"energized"}, "Best day so far")
		if err := repo.Create(reflection); err != nil {
			t.Fatalf("failed to create reflection: %v", err)
		}

		retrieved, err := repo.Get(reflection.ID())
		if err != nil {
			t.Fatalf("failed to get reflection: %v", err)
		}

		if retrieved.TripID() != "trip-1" || retrieved.DayIndex() != 2 {
			t.Errorf("unexpected reflection: trip %s day %d", retrieved.TripID(), retrieved.DayIndex())
		}
		if len(retrieved.Moods()) != 1 || retrieved.Moods()[0] != "energized" {
			t.Errorf("expected moods to round trip, got %v", retrieved.Moods())
		}
		if retrieved.Journal() != "Best day so far" {
			t.Errorf("expected journal to round trip, got %s", retrieved.Journal())
		}
	})

	t.Run("GetByDay", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewReflectionRepository(db)
		reflection := models.NewReflection(0, "trip-1", 3, []string{"content"}, "")
		if err := repo.Create(reflection); err != nil {
			t.Fatalf("failed to create reflection: %v", err)
		}

		retrieved, err := repo.GetByDay("trip-1", 3)
		if err != nil {
			t.Fatalf("failed to get reflection by day: %v", err)
		}
		if retrieved.ID() != reflection.ID() {
			t.Errorf("expected ID %s, got %s", reflection.ID(), retrieved.ID())
		}

		if _, err := repo.GetByDay("trip-1", 4); err == nil {
			t.Error("expected error for missing day")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewReflectionRepository(db)
		reflection := models.NewReflection(0, "trip-1", 1, []string{"content"}, "")
		if err := repo.Create(reflection); err != nil {
			t.Fatalf("failed to create reflection: %v", err)
		}

		if err := repo.Delete(reflection.ID()); err != nil {
			t.Fatalf("failed to delete reflection: %v", err)
		}

		if _, err := repo.Get(reflection.ID()); err == nil {
			t.Error("expected soft-deleted reflection to be hidden")
		}

		if err := repo.Delete(reflection.ID()); err == nil {
			t.Error("expected error deleting twice")
		}
	})

	t.Run("List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewReflectionRepository(db)
		for day := 3; day >= 1; day-- {
			reflection := models.NewReflection(0, "trip-1", day, []string{"content"}, "")
			if err := repo.Create(reflection); err != nil {
				t.Fatalf("failed to create reflection for day %d: %v", day, err)
			}
		}
		other := models.NewReflection(0, "trip-2", 1, []string{"content"}, "")
		if err := repo.Create(other); err != nil {
			t.Fatalf("failed to create reflection: %v", err)
		}

		reflections, err := repo.List(map[string]any{"trip_id": "trip-1"})
		if err != nil {
			t.Fatalf("failed to list reflections: %v", err)
		}

		if len(reflections) != 3 {
			t.Fatalf("expected 3 reflections, got %d", len(reflections))
		}
		for i, reflection := range reflections {
			if reflection.DayIndex() != i+1 {
				t.Errorf("expected day %d at position %d, got %d", i+1, i, reflection.DayIndex())
			}
		}
	})
}
