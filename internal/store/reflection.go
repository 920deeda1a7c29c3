package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/wayfarer/internal/models"
	"github.com/desertthunder/wayfarer/internal/shared"
)

const moodSeparator = ","

// ReflectionRepository implements [models.Repository] for [models.Reflection] persistence.
type ReflectionRepository struct {
	db *sql.DB
}

// NewReflectionRepository creates a new [ReflectionRepository] with the given database connection
func NewReflectionRepository(db *sql.DB) *ReflectionRepository {
	return &ReflectionRepository{db: db}
}

// NextSequence atomically increments and returns the next sequence number for the given table.
//
// Sequence numbers provide human-readable ordering for entities (e.g., reflection #3).
// They are NOT exposed in CLI output but used internally for sorting and debugging.
func NextSequence(db *sql.DB, table string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sequenceTable := table + "_sequence"

	_, err = tx.Exec(fmt.Sprintf("UPDATE %s SET value = value + 1 WHERE id = 1", sequenceTable))
	if err != nil {
		return 0, fmt.Errorf("failed to increment sequence: %w", err)
	}

	var sequence int
	err = tx.QueryRow(fmt.Sprintf("SELECT value FROM %s WHERE id = 1", sequenceTable)).Scan(&sequence)
	if err != nil {
		return 0, fmt.Errorf("failed to get sequence value: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit sequence transaction: %w", err)
	}

	return sequence, nil
}

// Create inserts a new reflection into the database with generated ID and sequence
func (r *ReflectionRepository) Create(reflection *models.Reflection) error {
	sequence, err := NextSequence(r.db, "reflections")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	reflection.SetID(id)

	if err := reflection.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO reflections (id, sequence, trip_id, day_index, moods, journal, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	moods := strings.Join(reflection.Moods(), moodSeparator)
	_, err = r.db.Exec(query, id, sequence, reflection.TripID(), reflection.DayIndex(),
		moods, reflection.Journal(), reflection.CreatedAt(), reflection.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert reflection: %w", err)
	}

	return nil
}

// Get retrieves a reflection by ID, excluding soft-deleted reflections
func (r *ReflectionRepository) Get(id string) (*models.Reflection, error) {
	query := `
		SELECT id, sequence, trip_id, day_index, moods, journal, created_at, updated_at, deleted_at
		FROM reflections
		WHERE id = ? AND deleted_at IS NULL
	`

	reflection, err := scanReflection(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("reflection not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query reflection: %w", err)
	}

	return reflection, nil
}

// GetByDay retrieves the reflection for a specific trip day, if one exists.
func (r *ReflectionRepository) GetByDay(tripID string, dayIndex int) (*models.Reflection, error) {
	query := `
		SELECT id, sequence, trip_id, day_index, moods, journal, created_at, updated_at, deleted_at
		FROM reflections
		WHERE trip_id = ? AND day_index = ? AND deleted_at IS NULL
	`

	reflection, err := scanReflection(r.db.QueryRow(query, tripID, dayIndex))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no reflection for trip %s day %d", tripID, dayIndex)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query reflection: %w", err)
	}

	return reflection, nil
}

// Update modifies an existing reflection in the database
func (r *ReflectionRepository) Update(reflection *models.Reflection) error {
	if err := reflection.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	reflection.SetUpdatedAt(now)

	query := `
		UPDATE reflections
		SET moods = ?, journal = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	moods := strings.Join(reflection.Moods(), moodSeparator)
	result, err := r.db.Exec(query, moods, reflection.Journal(), now, reflection.ID())
	if err != nil {
		return fmt.Errorf("failed to update reflection: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("reflection not found or already deleted: %s", reflection.ID())
	}

	return nil
}

// Delete soft-deletes a reflection by ID
func (r *ReflectionRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE reflections
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete reflection: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("reflection not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all reflections matching the given criteria, excluding soft-deleted reflections
func (r *ReflectionRepository) List(criteria map[string]any) ([]*models.Reflection, error) {
	query := `
		SELECT id, sequence, trip_id, day_index, moods, journal, created_at, updated_at, deleted_at
		FROM reflections
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if tripID, ok := criteria["trip_id"].(string); ok && tripID != "" {
		query += " AND trip_id = ?"
		args = append(args, tripID)
	}

	query += " ORDER BY day_index ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reflections: %w", err)
	}
	defer rows.Close()

	var reflections []*models.Reflection
	for rows.Next() {
		reflection, err := scanReflection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reflection: %w", err)
		}
		reflections = append(reflections, reflection)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return reflections, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanReflection.
type scanner interface {
	Scan(dest ...any) error
}

func scanReflection(row scanner) (*models.Reflection, error) {
	var (
		id        string
		sequence  int
		tripID    string
		dayIndex  int
		moods     string
		journal   string
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	if err := row.Scan(&id, &sequence, &tripID, &dayIndex, &moods, &journal, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}

	reflection := models.NewReflection(sequence, tripID, dayIndex, strings.Split(moods, moodSeparator), journal)
	reflection.SetID(id)
	reflection.SetCreatedAt(createdAt)
	reflection.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		reflection.SetDeletedAt(&deletedAt.Time)
	}

	return reflection, nil
}
