package flow

// Destination names the screen the router should land the user on.
// The router consumes these values; this package never navigates itself.
type Destination int

const (
	// Undecided is the zero value. Resolve never returns it; it only
	// appears alongside a non-nil error.
	Undecided Destination = iota
	SignIn
	ProfileSetup
	ChooseRole
	TripComplete
	ResumeLiveTrip
	TripIntentForm
	AnchorSelect
	ItineraryBuild
	PreTripHub
	LiveDayOverview
	LiveDayBlock
	DayReflection
)

func (d Destination) String() string {
	switch d {
	case SignIn:
		return "sign_in"
	case ProfileSetup:
		return "profile_setup"
	case ChooseRole:
		return "choose_role"
	case TripComplete:
		return "trip_complete"
	case ResumeLiveTrip:
		return "resume_live_trip"
	case TripIntentForm:
		return "trip_intent_form"
	case AnchorSelect:
		return "anchor_select"
	case ItineraryBuild:
		return "itinerary_build"
	case PreTripHub:
		return "pre_trip_hub"
	case LiveDayOverview:
		return "live_day_overview"
	case LiveDayBlock:
		return "live_day_block"
	case DayReflection:
		return "day_reflection"
	default:
		return "undecided"
	}
}
