package models

import (
	"fmt"
	"time"
)

var _ Model = (*Reflection)(nil)

// Reflection is the end-of-day journal entry for a completed trip day.
// Created once per completed day and never edited afterwards.
type Reflection struct {
	id        string
	sequence  int
	tripID    string
	dayIndex  int
	moods     []string
	journal   string
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewReflection creates a reflection for the given trip day.
func NewReflection(sequence int, tripID string, dayIndex int, moods []string, journal string) *Reflection {
	now := time.Now()
	return &Reflection{
		sequence:  sequence,
		tripID:    tripID,
		dayIndex:  dayIndex,
		moods:     moods,
		journal:   journal,
		createdAt: now,
		updatedAt: now,
	}
}

func (r *Reflection) ID() string            { return r.id }
func (r *Reflection) Sequence() int         { return r.sequence }
func (r *Reflection) TripID() string        { return r.tripID }
func (r *Reflection) DayIndex() int         { return r.dayIndex }
func (r *Reflection) Moods() []string       { return r.moods }
func (r *Reflection) Journal() string       { return r.journal }
func (r *Reflection) CreatedAt() time.Time  { return r.createdAt }
func (r *Reflection) UpdatedAt() time.Time  { return r.updatedAt }
func (r *Reflection) DeletedAt() *time.Time { return r.deletedAt }

func (r *Reflection) SetID(id string)           { r.id = id }
func (r *Reflection) SetCreatedAt(t time.Time)  { r.createdAt = t }
func (r *Reflection) SetUpdatedAt(t time.Time)  { r.updatedAt = t }
func (r *Reflection) SetDeletedAt(t *time.Time) { r.deletedAt = t }

// Validate checks that the reflection targets a real trip day and carries at least one mood tag.
func (r *Reflection) Validate() error {
	if r.tripID == "" {
		return fmt.Errorf("reflection requires a trip id")
	}
	if r.dayIndex < 1 {
		return fmt.Errorf("reflection day index must be >= 1, got %d", r.dayIndex)
	}
	if len(r.moods) == 0 {
		return fmt.Errorf("reflection requires at least one mood tag")
	}
	return nil
}
