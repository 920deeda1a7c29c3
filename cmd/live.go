package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/wayfarer/internal/flow"
	"github.com/desertthunder/wayfarer/internal/shared"
	"github.com/urfave/cli/v3"
)

// LiveStart marks the cached trip as started and seeds the progress pointer.
func (r *Runner) LiveStart(ctx context.Context, cmd *cli.Command) error {
	engine, cache, err := r.openEngine()
	if err != nil {
		return err
	}

	snapshot, err := cache.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if !snapshot.HasTrip() {
		return fmt.Errorf("%w: no planned trip in the local cache, run 'wayfarer trip status' first", shared.ErrTripNotFound)
	}
	if !snapshot.HasItinerary() {
		return fmt.Errorf("%w: build an itinerary before starting the trip", shared.ErrNoItinerary)
	}
	if snapshot.Trip.StartedTrip {
		return r.writePlain("Trip already started. Continue with 'wayfarer live next'.\n")
	}

	pointer, err := engine.StartTrip(ctx, *snapshot.Trip)
	if err != nil {
		return fmt.Errorf("failed to start trip: %w", err)
	}

	r.writePlainln("✓ Trip started: %s", snapshot.Trip.Name)
	r.writePlain("Up first: day %d, %s\n", pointer.DayIndex, pointer.Block)
	return nil
}

// LiveNext marks the current block complete on the server and advances the
// local pointer. A failed server call leaves the pointer where it was.
func (r *Runner) LiveNext(ctx context.Context, cmd *cli.Command) error {
	engine, cache, err := r.openEngine()
	if err != nil {
		return err
	}

	snapshot, err := cache.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if !snapshot.HasTrip() || !snapshot.Trip.StartedTrip {
		return fmt.Errorf("%w: start the trip with 'wayfarer live start' first", shared.ErrTripNotFound)
	}
	if snapshot.Pointer == nil {
		return fmt.Errorf("%w: pick a day with 'wayfarer live pick-day --day N'", shared.ErrNoPointer)
	}

	pointer := *snapshot.Pointer
	next, destination, err := engine.CompleteBlock(ctx, *snapshot.Trip, pointer, snapshot.TotalDays())
	if err != nil {
		return fmt.Errorf("failed to complete block: %w", err)
	}

	r.writePlain("✓ Day %d %s complete\n", pointer.DayIndex, pointer.Block)

	switch destination {
	case flow.TripComplete:
		r.writePlainln("✓ Trip complete! Export it with 'wayfarer trip export'.")
	case flow.DayReflection:
		r.writePlainln("Day %d done. Record it with 'wayfarer live reflect --day %d --moods ...'.", pointer.DayIndex, pointer.DayIndex)
	default:
		r.writePlain("Up next: day %d, %s\n", next.DayIndex, next.Block)
	}

	return nil
}

// LivePick resets the pointer to the given day's morning block.
func (r *Runner) LivePick(ctx context.Context, cmd *cli.Command) error {
	dayIndex := int(cmd.Int("day"))

	engine, cache, err := r.openEngine()
	if err != nil {
		return err
	}

	snapshot, err := cache.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if !snapshot.HasItinerary() {
		return fmt.Errorf("%w: nothing to pick a day from", shared.ErrNoItinerary)
	}

	pointer, err := engine.PickDay(dayIndex, snapshot.TotalDays())
	if err != nil {
		return err
	}

	r.writePlain("✓ Jumped to day %d, %s\n", pointer.DayIndex, pointer.Block)
	return nil
}

// LiveReflect submits the end-of-day reflection and records it locally.
func (r *Runner) LiveReflect(ctx context.Context, cmd *cli.Command) error {
	dayIndex := int(cmd.Int("day"))
	journal := cmd.String("journal")

	var moods []string
	for _, mood := range strings.Split(cmd.String("moods"), ",") {
		if trimmed := strings.TrimSpace(mood); trimmed != "" {
			moods = append(moods, trimmed)
		}
	}
	if len(moods) == 0 {
		return fmt.Errorf("%w: at least one mood tag is required", shared.ErrMissingArgument)
	}

	engine, cache, err := r.openEngine()
	if err != nil {
		return err
	}

	snapshot, err := cache.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if !snapshot.HasTrip() {
		return fmt.Errorf("%w: no trip to reflect on", shared.ErrTripNotFound)
	}

	reflection, err := engine.CompleteDay(ctx, snapshot.Trip.ID, dayIndex, moods, journal)
	if err != nil {
		return fmt.Errorf("failed to record reflection: %w", err)
	}

	r.writePlain("✓ Reflection saved for day %d (%s)\n", dayIndex, strings.Join(reflection.Moods(), ", "))
	return nil
}
