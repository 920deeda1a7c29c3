package flow

import "github.com/desertthunder/wayfarer/internal/models"

// Resolve maps a state snapshot to the single screen the user needs next.
//
// Rules run in a fixed priority order and the first match wins. Each rule
// gates the minimum prerequisite for the step after it, so a half-configured
// user can never be routed into trip screens ahead of an incomplete profile.
// The function is total: every well-typed snapshot, including the all-empty
// one, lands on exactly one destination.
func Resolve(snapshot models.Snapshot, authenticated bool) Destination {
	switch {
	case !authenticated:
		return SignIn
	case !snapshot.ProfileReady():
		return ProfileSetup
	case !snapshot.HasTrip():
		return ChooseRole
	case snapshot.Trip.TripComplete:
		return TripComplete
	case snapshot.Trip.StartedTrip:
		return ResumeLiveTrip
	case !snapshot.HasIntent():
		return TripIntentForm
	case !snapshot.HasAnchors():
		return AnchorSelect
	case !snapshot.HasItinerary():
		return ItineraryBuild
	default:
		return PreTripHub
	}
}
