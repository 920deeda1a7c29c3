package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wayfarer/internal/flow"
	"github.com/desertthunder/wayfarer/internal/services"
	"github.com/desertthunder/wayfarer/internal/shared"
	"github.com/desertthunder/wayfarer/internal/store"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	service    services.TripService
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer

	// db is opened lazily on first use so commands that never touch the
	// cache do not create the database file.
	db *sql.DB
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Service    services.TripService
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Config.API.Timeout()}
	}
	if opts.Service == nil {
		api := services.NewAPIService(opts.Config.API.BaseURL, opts.HTTPClient)
		if token := opts.Config.Credentials.Identity.Token(); token != nil {
			tokens := opts.Config.Credentials.Identity.OAuthConfig().TokenSource(context.Background(), token)
			api = api.WithTokenSource(tokens)
		}
		opts.Service = api
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		service:    opts.Service,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// authenticated reports whether identity tokens are stored in the config.
func (r *Runner) authenticated() bool {
	return r.config.Credentials.Identity.Token() != nil
}

// database opens the configured database on first use and runs migrations.
func (r *Runner) database() (*sql.DB, error) {
	if r.db != nil {
		return r.db, nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	r.db = db
	return db, nil
}

// openStore returns the snapshot cache over the lazily opened database.
func (r *Runner) openStore() (*store.Store, error) {
	db, err := r.database()
	if err != nil {
		return nil, err
	}
	return store.NewStore(db), nil
}

// openEngine builds the live-trip engine and the cache it writes through.
func (r *Runner) openEngine() (*flow.LiveEngine, *store.Store, error) {
	db, err := r.database()
	if err != nil {
		return nil, nil, err
	}

	cache := store.NewStore(db)
	reflections := store.NewReflectionRepository(db)
	return flow.NewLiveEngine(r.service, cache, reflections, r.logger), cache, nil
}

// openCoordinator builds the bootstrap coordinator and its backing cache.
func (r *Runner) openCoordinator() (*flow.Coordinator, *store.Store, error) {
	cache, err := r.openStore()
	if err != nil {
		return nil, nil, err
	}
	return flow.NewCoordinator(cache, r.service, r.logger), cache, nil
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, tripCommand, liveCommand, cacheCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
