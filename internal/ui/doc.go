// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for the live-trip experience:
//  1. [DayListView] : Browse itinerary days and jump to one (resets that day to morning)
//  2. [DayOverviewView] : See the full day before starting it
//  3. [BlockView] : The current block, completed with a confirmed server call
//  4. [ReflectionView] : End-of-day mood tags and journal entry
//  5. [TripCompleteView] : Shown once the last block of the last day is done
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Block and day completion run through the flow.LiveEngine, so the on-screen
// pointer only moves after the server has confirmed the completion.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, space, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
