package models

// TripExport bundles everything the export commands write out: the trip,
// its itinerary, and any reflections recorded so far.
type TripExport struct {
	Trip        Trip          `json:"trip"`
	Itinerary   *Itinerary    `json:"itinerary,omitempty"`
	Reflections []*Reflection `json:"-"`
}

// TotalDays returns the itinerary length, or zero without an itinerary.
func (e TripExport) TotalDays() int {
	if e.Itinerary == nil {
		return 0
	}
	return e.Itinerary.TotalDays()
}
