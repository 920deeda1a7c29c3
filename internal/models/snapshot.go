package models

// Snapshot is the full client-side view of trip state: every entity the
// hydration endpoint returns, plus the local progress pointer.
//
// Any field may be nil; the server not having created an entity yet is a
// valid state, not an error. JSON tags are the server's hydration keys,
// which double as the local cache keys.
type Snapshot struct {
	Profile   *UserProfile     `json:"userData,omitempty"`
	Trip      *Trip            `json:"tripData,omitempty"`
	Intent    *TripIntent      `json:"tripIntentData,omitempty"`
	Anchors   *AnchorSelection `json:"anchorSelectData,omitempty"`
	Itinerary *Itinerary       `json:"itineraryData,omitempty"`
	Pointer   *ProgressPointer `json:"progressData,omitempty"`
}

// Merge overlays remote onto s and returns the result. Only fields the
// remote snapshot actually carries replace local values; absent remote
// fields never null out local state.
func (s Snapshot) Merge(remote Snapshot) Snapshot {
	merged := s
	if remote.Profile != nil {
		merged.Profile = remote.Profile
	}
	if remote.Trip != nil {
		merged.Trip = remote.Trip
	}
	if remote.Intent != nil {
		merged.Intent = remote.Intent
	}
	if remote.Anchors != nil {
		merged.Anchors = remote.Anchors
	}
	if remote.Itinerary != nil {
		merged.Itinerary = remote.Itinerary
	}
	if remote.Pointer != nil {
		merged.Pointer = remote.Pointer
	}
	return merged
}

// IsEmpty reports whether no entity is present at all.
func (s Snapshot) IsEmpty() bool {
	return s.Profile == nil && s.Trip == nil && s.Intent == nil &&
		s.Anchors == nil && s.Itinerary == nil && s.Pointer == nil
}

// ProfileReady reports whether a profile exists and has been completed.
func (s Snapshot) ProfileReady() bool {
	return s.Profile != nil && s.Profile.ProfileComplete
}

// HasTrip reports whether a trip with an id exists.
func (s Snapshot) HasTrip() bool {
	return s.Trip != nil && s.Trip.ID != ""
}

// HasIntent reports whether the intent form has been submitted.
func (s Snapshot) HasIntent() bool {
	return s.Intent != nil
}

// HasAnchors reports whether at least one anchor has been selected.
func (s Snapshot) HasAnchors() bool {
	return s.Anchors != nil && len(s.Anchors.Anchors) > 0
}

// HasItinerary reports whether an itinerary with at least one day exists.
func (s Snapshot) HasItinerary() bool {
	return s.Itinerary != nil && len(s.Itinerary.Days) > 0
}

// TotalDays returns the itinerary length, or zero without an itinerary.
func (s Snapshot) TotalDays() int {
	if s.Itinerary == nil {
		return 0
	}
	return s.Itinerary.TotalDays()
}
