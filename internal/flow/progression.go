package flow

import (
	"fmt"

	"github.com/desertthunder/wayfarer/internal/models"
	"github.com/desertthunder/wayfarer/internal/shared"
)

// Signal is the side channel Advance emits alongside the next pointer.
type Signal int

const (
	SignalNextBlock    Signal = iota // more blocks remain in the current day
	SignalDayComplete                // the day just ended, reflection is due
	SignalTripComplete               // the last day just ended
)

// InitialPointer is where a freshly started trip begins.
func InitialPointer() models.ProgressPointer {
	return models.ProgressPointer{DayIndex: 1, Block: models.BlockMorning}
}

// Advance moves the pointer one step forward. Completing an evening block
// rolls over to the next day's morning; rolling past the last day yields
// SignalTripComplete with the pointer parked at totalDays+1, never beyond.
func Advance(p models.ProgressPointer, totalDays int) (models.ProgressPointer, Signal) {
	if next, ok := p.Block.Next(); ok {
		return models.ProgressPointer{DayIndex: p.DayIndex, Block: next}, SignalNextBlock
	}

	nextDay := p.DayIndex + 1
	if nextDay > totalDays {
		return models.ProgressPointer{DayIndex: totalDays + 1, Block: models.BlockMorning}, SignalTripComplete
	}

	return models.ProgressPointer{DayIndex: nextDay, Block: models.BlockMorning}, SignalDayComplete
}

// StartDay decides how to enter the pointer's current day: the full day
// overview when the day has not begun, or directly into the in-progress
// block when resuming mid-day. Re-entry never resets progress; only an
// explicit PickDay does that.
func StartDay(p models.ProgressPointer) Destination {
	if p.Block == models.BlockMorning {
		return LiveDayOverview
	}
	return LiveDayBlock
}

// PickDay resets the pointer to the morning of the chosen day, discarding
// prior progress. Valid for days 1 through totalDays.
func PickDay(dayIndex, totalDays int) (models.ProgressPointer, error) {
	if dayIndex < 1 || dayIndex > totalDays {
		return models.ProgressPointer{}, fmt.Errorf("%w: day %d outside 1..%d", shared.ErrInvalidArgument, dayIndex, totalDays)
	}
	return models.ProgressPointer{DayIndex: dayIndex, Block: models.BlockMorning}, nil
}
