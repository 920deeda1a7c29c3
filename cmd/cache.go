package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// CacheShow prints the cached snapshot as JSON.
func (r *Runner) CacheShow(ctx context.Context, cmd *cli.Command) error {
	cache, err := r.openStore()
	if err != nil {
		return err
	}

	snapshot, err := cache.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if snapshot.IsEmpty() {
		return r.writePlain("Cache is empty\n")
	}

	return r.writeJSON(snapshot, cmd.Bool("pretty"))
}

// CacheClear removes every cached snapshot entry.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	cache, err := r.openStore()
	if err != nil {
		return err
	}

	if err := cache.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	r.logger.Info("snapshot cache cleared")
	return r.writePlain("✓ Cleared local trip state\n")
}
