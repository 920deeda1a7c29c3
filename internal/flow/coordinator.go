package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wayfarer/internal/models"
	"github.com/desertthunder/wayfarer/internal/services"
	"github.com/desertthunder/wayfarer/internal/shared"
	"github.com/desertthunder/wayfarer/internal/store"
)

// ActionKind discriminates the coordinator's bootstrap outcomes.
type ActionKind int

const (
	ActionStay ActionKind = iota
	ActionNavigate
	ActionShowResumeButton
)

// Action is the coordinator's verdict for one protected-route entry.
type Action struct {
	Kind        ActionKind
	Destination Destination
}

// Stay leaves the current route in place.
func Stay() Action { return Action{Kind: ActionStay} }

// Navigate redirects to the destination immediately.
func Navigate(d Destination) Action { return Action{Kind: ActionNavigate, Destination: d} }

// ShowResumeButton offers the destination without forcing a redirect, so an
// in-progress session is resumed on the user's terms instead of yanking them.
func ShowResumeButton(d Destination) Action {
	return Action{Kind: ActionShowResumeButton, Destination: d}
}

// Routes that own their navigation outright.
var selfManagedRoutes = map[string]bool{
	SignIn.String():        true,
	ProfileSetup.String():  true,
	DayReflection.String(): true,
}

// selfManaged reports whether the coordinator must leave the route alone.
// Every live-trip route manages its own pointer, so the prefix is exempt.
func selfManaged(route string) bool {
	return selfManagedRoutes[route] || strings.HasPrefix(route, "live_")
}

// Coordinator runs the bootstrap sequence on protected-route entry: load
// local state, refresh from the server when it is too thin to route on,
// merge, resolve, and emit a single navigation action.
type Coordinator struct {
	cache   *store.Store
	service services.TripService
	logger  *log.Logger

	mu       sync.Mutex
	inFlight bool
}

// NewCoordinator creates a new Coordinator over the given cache and service.
func NewCoordinator(cache *store.Store, service services.TripService, logger *log.Logger) *Coordinator {
	return &Coordinator{cache: cache, service: service, logger: logger}
}

// Bootstrap decides where entering the given route should land the user.
//
// Rapid route changes can re-enter before a hydration call returns; a
// single in-flight guard turns the duplicate invocation into a Stay.
func (c *Coordinator) Bootstrap(ctx context.Context, route string, authenticated bool) (Action, error) {
	if selfManaged(route) {
		return Stay(), nil
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return Stay(), nil
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	if !authenticated {
		return Navigate(SignIn), nil
	}

	local, err := c.cache.Load()
	if err != nil {
		return Stay(), fmt.Errorf("failed to load local snapshot: %w", err)
	}

	// A profile that exists but is unfinished belongs to the profile-setup
	// screen exclusively; redirecting here would race its own navigation.
	if local.Profile != nil && !local.Profile.ProfileComplete {
		return Stay(), nil
	}

	if needsRefresh(local) {
		remote, err := c.service.FetchSnapshot(ctx)
		switch {
		case err == nil:
			local = local.Merge(*remote)
			if saveErr := c.cache.Save(*remote); saveErr != nil {
				c.logger.Warn("failed to persist refreshed snapshot", "error", saveErr)
			}
		case errors.Is(err, shared.ErrUnauthenticated):
			return Navigate(SignIn), nil
		case errors.Is(err, shared.ErrUserNotFound):
			// The cached identity no longer matches a server record, so the
			// whole cache is poison. Discard it before re-routing.
			if clearErr := c.cache.Clear(); clearErr != nil {
				c.logger.Warn("failed to clear stale cache", "error", clearErr)
			}
			return Navigate(SignIn), nil
		default:
			c.logger.Warn("hydration failed, continuing with local state", "error", err)
		}
	}

	destination := Resolve(local, authenticated)

	if local.Trip != nil && local.Trip.StartedTrip && !local.Trip.TripComplete {
		return ShowResumeButton(destination), nil
	}

	return Navigate(destination), nil
}

// needsRefresh reports whether the local snapshot is too thin to route on.
//
// Missing profile or trip data means the cache may simply be cold. The
// pre-trip planning entities (intent, anchors, itinerary) are created
// server-side and only ever arrive via hydration, so an unstarted trip with
// planning gaps is refreshed too; otherwise server-side progress made after
// the first hydration would never be observed.
func needsRefresh(s models.Snapshot) bool {
	if s.Profile == nil || s.Trip == nil {
		return true
	}
	if s.Trip.StartedTrip || s.Trip.TripComplete {
		return false
	}
	return !s.HasIntent() || !s.HasAnchors() || !s.HasItinerary()
}
