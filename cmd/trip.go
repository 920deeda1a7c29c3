package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/wayfarer/internal/flow"
	"github.com/desertthunder/wayfarer/internal/formatter"
	"github.com/desertthunder/wayfarer/internal/models"
	"github.com/desertthunder/wayfarer/internal/shared"
	"github.com/desertthunder/wayfarer/internal/store"
	"github.com/urfave/cli/v3"
)

// TripStatus runs the bootstrap sequence (hydrating from the server when the
// cache is thin) and reports where the trip stands.
func (r *Runner) TripStatus(ctx context.Context, cmd *cli.Command) error {
	coordinator, cache, err := r.openCoordinator()
	if err != nil {
		return err
	}

	action, err := coordinator.Bootstrap(ctx, "status", r.authenticated())
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	snapshot, err := cache.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"destination": action.Destination.String(),
			"resumable":   action.Kind == flow.ActionShowResumeButton,
			"snapshot":    snapshot,
		}, true)
	}

	r.writePlainHeader("Trip status")

	if snapshot.Profile != nil {
		r.writePlain("Traveler: %s\n", snapshot.Profile.DisplayName())
	}
	if snapshot.Trip != nil {
		r.writePlain("Trip: %s (%s)\n", snapshot.Trip.Name, snapshot.Trip.Destination)
		if snapshot.Trip.StartDate != "" {
			r.writePlain("Dates: %s to %s\n", snapshot.Trip.StartDate, snapshot.Trip.EndDate)
		}
	}
	if snapshot.HasItinerary() {
		r.writePlain("Itinerary: %d days\n", snapshot.TotalDays())
	}
	if snapshot.Pointer != nil {
		r.writePlain("Progress: day %d, %s\n", snapshot.Pointer.DayIndex, snapshot.Pointer.Block)
	}

	switch action.Kind {
	case flow.ActionShowResumeButton:
		r.writePlainln("Trip in progress. Resume with 'wayfarer live next' or 'wayfarer tui'.")
	case flow.ActionNavigate:
		r.writePlainln("Next step: %s", action.Destination)
	}

	return nil
}

// TripResume reports where re-entering the live flow would land the user.
func (r *Runner) TripResume(ctx context.Context, cmd *cli.Command) error {
	engine, cache, err := r.openEngine()
	if err != nil {
		return err
	}

	snapshot, err := cache.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if !snapshot.HasTrip() || !snapshot.Trip.StartedTrip {
		return fmt.Errorf("%w: no started trip to resume", shared.ErrTripNotFound)
	}
	if snapshot.Trip.TripComplete {
		return r.writePlain("Trip is complete. Export it with 'wayfarer trip export'.\n")
	}

	destination := engine.Resume(snapshot.Pointer)
	if snapshot.Pointer != nil {
		r.writePlain("Resume at day %d, %s (%s)\n", snapshot.Pointer.DayIndex, snapshot.Pointer.Block, destination)
	} else {
		r.writePlain("Resume at: %s\n", destination)
	}
	r.writePlain("Continue with 'wayfarer live next' or 'wayfarer tui'.\n")
	return nil
}

// TripExport writes the itinerary and recorded reflections to disk.
func (r *Runner) TripExport(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	outputPath := cmd.String("output")

	cache, err := r.openStore()
	if err != nil {
		return err
	}

	snapshot, err := cache.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if !snapshot.HasTrip() {
		return fmt.Errorf("%w: nothing to export", shared.ErrTripNotFound)
	}
	if !snapshot.HasItinerary() {
		return fmt.Errorf("%w: nothing to export", shared.ErrNoItinerary)
	}

	db, err := r.database()
	if err != nil {
		return err
	}

	reflections, err := store.NewReflectionRepository(db).List(map[string]any{"trip_id": snapshot.Trip.ID})
	if err != nil {
		return fmt.Errorf("failed to list reflections: %w", err)
	}

	export := &models.TripExport{
		Trip:        *snapshot.Trip,
		Itinerary:   snapshot.Itinerary,
		Reflections: reflections,
	}

	switch format {
	case "csv":
		result, err := formatter.WriteCSVExport(export, outputPath)
		if err != nil {
			return fmt.Errorf("failed to export CSV: %w", err)
		}
		r.writePlain("✓ Itinerary exported to %s\n", result.ItineraryFile)
		r.writePlain("  Metadata: %s\n", result.MetadataFile)
	case "markdown", "md":
		path, err := formatter.WriteMarkdownExport(export, outputPath)
		if err != nil {
			return fmt.Errorf("failed to export Markdown: %w", err)
		}
		r.writePlain("✓ Trip exported to %s\n", path)
	case "text", "txt":
		path, err := formatter.WriteTextExport(export, outputPath)
		if err != nil {
			return fmt.Errorf("failed to export text: %w", err)
		}
		r.writePlain("✓ Itinerary exported to %s\n", path)
	default:
		return fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidFlag, format)
	}

	if len(reflections) > 0 {
		r.writePlain("  Reflections included: %d\n", len(reflections))
	}

	return nil
}
