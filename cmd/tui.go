package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/wayfarer/internal/shared"
	"github.com/desertthunder/wayfarer/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for walking a live trip.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/wayfarer-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	engine, cache, err := r.openEngine()
	if err != nil {
		return err
	}

	snapshot, err := cache.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if !snapshot.HasTrip() {
		return fmt.Errorf("%w: plan a trip before launching the TUI", shared.ErrTripNotFound)
	}
	if !snapshot.HasItinerary() {
		return fmt.Errorf("%w: build an itinerary before launching the TUI", shared.ErrNoItinerary)
	}

	model := ui.NewModel(ctx, engine, snapshot)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
