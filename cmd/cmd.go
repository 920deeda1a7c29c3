// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for the database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// authCommand handles identity-provider authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with the identity provider using OAuth2",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Show current authentication state",
				Action: r.AuthStatus,
			},
			{
				Name:  "logout",
				Usage: "Discard stored tokens and clear cached trip state",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.AuthLogout,
			},
		},
	}
}

// tripCommand handles trip-level operations
func tripCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "trip",
		Usage: "Trip planning operations",
		Commands: []*cli.Command{
			{
				Name:  "status",
				Usage: "Hydrate state and show where the trip stands",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.TripStatus,
			},
			{
				Name:   "resume",
				Usage:  "Show where a started trip picks back up",
				Action: r.TripResume,
			},
			{
				Name:  "export",
				Usage: "Export the itinerary and reflections",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (csv, markdown, text)",
						Value:   "markdown",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file or directory path",
					},
				},
				Action: r.TripExport,
			},
		},
	}
}

// liveCommand handles day-by-day progression through a started trip
func liveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "live",
		Usage: "Walk a started trip block by block",
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start the planned trip at day 1, morning",
				Action: r.LiveStart,
			},
			{
				Name:   "next",
				Usage:  "Mark the current block complete and advance",
				Action: r.LiveNext,
			},
			{
				Name:    "pick-day",
				Aliases: []string{"pick"},
				Usage:   "Jump to a specific day's morning block",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "day",
						Usage:    "Day index to jump to (1-based)",
						Required: true,
					},
				},
				Action: r.LivePick,
			},
			{
				Name:  "reflect",
				Usage: "Record the end-of-day reflection",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "day",
						Usage:    "Day index the reflection covers",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "moods",
						Usage:    "Comma-separated mood tags",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "journal",
						Usage: "Optional journal entry",
					},
				},
				Action: r.LiveReflect,
			},
		},
	}
}

// cacheCommand handles inspection of the local snapshot cache
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect and manage the local snapshot cache",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the cached snapshot",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.CacheShow,
			},
			{
				Name:   "clear",
				Usage:  "Remove every cached snapshot entry",
				Action: r.CacheClear,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for walking a live trip interactively.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive live-trip TUI",
		Action:  r.TUI,
	}
}
