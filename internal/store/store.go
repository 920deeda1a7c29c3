package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/desertthunder/wayfarer/internal/models"
)

// Canonical cache keys, matching the server's hydration payload keys.
// Anchor data lives under exactly one key; no secondary aliases.
const (
	KeyUser      = "userData"
	KeyTrip      = "tripData"
	KeyIntent    = "tripIntentData"
	KeyAnchors   = "anchorSelectData"
	KeyItinerary = "itineraryData"
	KeyProgress  = "progressData"
)

// TrackedKeys lists every key the store owns, in hydration order.
var TrackedKeys = []string{KeyUser, KeyTrip, KeyIntent, KeyAnchors, KeyItinerary, KeyProgress}

// Store is the typed wrapper over the local snapshot cache.
//
// All access to the snapshot_cache table goes through this type; nothing
// else in the client reads or writes the cache keys directly.
type Store struct {
	db *sql.DB
}

// NewStore creates a new Store with the given database connection
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load reads every tracked key and assembles a [models.Snapshot].
//
// Missing rows and malformed JSON both yield a nil field; callers cannot
// distinguish a corrupt cache entry from an absent one. Only a failing
// query returns an error.
func (s *Store) Load() (models.Snapshot, error) {
	var snapshot models.Snapshot

	rows, err := s.db.Query("SELECT key, value FROM snapshot_cache")
	if err != nil {
		return snapshot, fmt.Errorf("failed to query snapshot cache: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return snapshot, fmt.Errorf("failed to scan cache row: %w", err)
		}
		decodeEntry(&snapshot, key, []byte(value))
	}

	if err := rows.Err(); err != nil {
		return snapshot, fmt.Errorf("row iteration error: %w", err)
	}

	return snapshot, nil
}

// decodeEntry unmarshals one cache row into its snapshot field.
// Unknown keys and unmarshal failures are ignored.
func decodeEntry(snapshot *models.Snapshot, key string, value []byte) {
	switch key {
	case KeyUser:
		var profile models.UserProfile
		if json.Unmarshal(value, &profile) == nil {
			snapshot.Profile = &profile
		}
	case KeyTrip:
		var trip models.Trip
		if json.Unmarshal(value, &trip) == nil {
			snapshot.Trip = &trip
		}
	case KeyIntent:
		var intent models.TripIntent
		if json.Unmarshal(value, &intent) == nil {
			snapshot.Intent = &intent
		}
	case KeyAnchors:
		var anchors models.AnchorSelection
		if json.Unmarshal(value, &anchors) == nil {
			snapshot.Anchors = &anchors
		}
	case KeyItinerary:
		var itinerary models.Itinerary
		if json.Unmarshal(value, &itinerary) == nil {
			snapshot.Itinerary = &itinerary
		}
	case KeyProgress:
		var pointer models.ProgressPointer
		if json.Unmarshal(value, &pointer) == nil {
			snapshot.Pointer = &pointer
		}
	}
}

// Save upserts only the fields present in partial, leaving other keys untouched.
func (s *Store) Save(partial models.Snapshot) error {
	entries := map[string]any{}
	if partial.Profile != nil {
		entries[KeyUser] = partial.Profile
	}
	if partial.Trip != nil {
		entries[KeyTrip] = partial.Trip
	}
	if partial.Intent != nil {
		entries[KeyIntent] = partial.Intent
	}
	if partial.Anchors != nil {
		entries[KeyAnchors] = partial.Anchors
	}
	if partial.Itinerary != nil {
		entries[KeyItinerary] = partial.Itinerary
	}
	if partial.Pointer != nil {
		entries[KeyProgress] = partial.Pointer
	}

	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO snapshot_cache (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	now := time.Now()
	for _, key := range TrackedKeys {
		entry, ok := entries[key]
		if !ok {
			continue
		}

		value, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", key, err)
		}

		if _, err := tx.Exec(query, key, string(value), now); err != nil {
			return fmt.Errorf("failed to upsert %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// SavePointer persists only the progress pointer.
func (s *Store) SavePointer(pointer models.ProgressPointer) error {
	return s.Save(models.Snapshot{Pointer: &pointer})
}

// ClearPointer removes the progress pointer (trip completed or abandoned).
func (s *Store) ClearPointer() error {
	return s.delete(KeyProgress)
}

// Clear removes every tracked key (logout/reset).
func (s *Store) Clear() error {
	return s.delete(TrackedKeys...)
}

func (s *Store) delete(keys ...string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err := tx.Exec("DELETE FROM snapshot_cache WHERE key = ?", key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}

	return tx.Commit()
}
