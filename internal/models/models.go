package models

import (
	"time"
)

// Model defines the base interface for all persistent models in the wayfarer client.
// Implementations include Reflection.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// BlockName identifies one of the three fixed blocks in a trip day.
type BlockName string

const (
	BlockMorning   BlockName = "morning"
	BlockAfternoon BlockName = "afternoon"
	BlockEvening   BlockName = "evening"
)

// BlockOrder lists the blocks of a day in the order they are lived.
var BlockOrder = []BlockName{BlockMorning, BlockAfternoon, BlockEvening}

// Valid reports whether b is one of the three known block names.
func (b BlockName) Valid() bool {
	return b == BlockMorning || b == BlockAfternoon || b == BlockEvening
}

// Next returns the block that follows b within the same day.
// ok is false when b is the evening block (the day rolls over) or b is unknown.
func (b BlockName) Next() (next BlockName, ok bool) {
	switch b {
	case BlockMorning:
		return BlockAfternoon, true
	case BlockAfternoon:
		return BlockEvening, true
	default:
		return "", false
	}
}

// UserProfile is the cached summary of the signed-in user.
type UserProfile struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	HomeCity        string `json:"homeCity"`
	ProfileComplete bool   `json:"profileComplete"`
}

// DisplayName returns the profile's name parts joined for display.
func (p UserProfile) DisplayName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.Email
	}
}

// Trip is the one active trip this client tracks.
type Trip struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Destination  string `json:"destination"`
	Purpose      string `json:"purpose"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	PartySize    int    `json:"partySize"`
	JoinCode     string `json:"joinCode"`
	StartedTrip  bool   `json:"startedTrip"`
	TripComplete bool   `json:"tripComplete"`
}

// TripIntent captures the one-time intent form for a trip.
type TripIntent struct {
	TripID     string   `json:"tripId"`
	Priorities []string `json:"priorities"`
	Vibes      []string `json:"vibes"`
	Mobility   string   `json:"mobility"`
	Pace       string   `json:"pace"`
	Budget     string   `json:"budget"`
}

// AnchorSelection is the set of anchor titles chosen for a trip.
// Titles are unique within a trip; order carries no meaning.
type AnchorSelection struct {
	TripID  string   `json:"tripId"`
	Anchors []string `json:"anchors"`
}

// Has reports whether the selection already contains the given title.
func (a AnchorSelection) Has(title string) bool {
	for _, anchor := range a.Anchors {
		if anchor == title {
			return true
		}
	}
	return false
}

// Add appends a title if it is not already selected.
func (a *AnchorSelection) Add(title string) {
	if !a.Has(title) {
		a.Anchors = append(a.Anchors, title)
	}
}

// Block is one scheduled activity within a day.
type Block struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Ticketed    bool   `json:"ticketed,omitempty"`
	DayTrip     bool   `json:"dayTrip,omitempty"`
}

// Day is one itinerary day with its three named blocks.
type Day struct {
	DayIndex int                 `json:"dayIndex"`
	Summary  string              `json:"summary,omitempty"`
	Blocks   map[BlockName]Block `json:"blocks"`
}

// Itinerary is the ordered sequence of days for a trip.
// Day indexes are 1-based, unique, and contiguous from 1.
type Itinerary struct {
	TripID string `json:"tripId"`
	Days   []Day  `json:"days"`
}

// TotalDays returns the number of days in the itinerary.
func (i Itinerary) TotalDays() int {
	return len(i.Days)
}

// Day returns the day with the given 1-based index, or nil if out of range.
func (i Itinerary) Day(dayIndex int) *Day {
	for idx := range i.Days {
		if i.Days[idx].DayIndex == dayIndex {
			return &i.Days[idx]
		}
	}
	return nil
}

// ProgressPointer tracks where the user is inside a started trip.
//
// DayIndex may reach TotalDays+1, which marks "trip just completed"; it is
// only meaningful while the trip is started and not complete.
type ProgressPointer struct {
	DayIndex int       `json:"currentDayIndex"`
	Block    BlockName `json:"currentBlockName"`
}
